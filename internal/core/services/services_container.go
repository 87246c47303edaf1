package services

import (
	portsrepo "github.com/fairsplit/fairsplit/internal/core/ports/repositories"
	portssvc "github.com/fairsplit/fairsplit/internal/core/ports/services"
	"github.com/fairsplit/fairsplit/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. balanceCache may be nil when no cache backend
// is configured; balance reads then always replay from the store.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, balanceCache portsrepo.BalanceCache) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Auth = NewAuthService(repos.UserRepo, cfg)
	container.User = NewUserService(repos.UserRepo)
	container.Group = NewGroupService(repos.GroupRepo, repos.UserRepo)
	container.Notifier = NewNotificationService(repos.NotificationRepo)
	container.Debt = NewDebtService(repos.DebtRepo)

	settlement := NewSettlementService(repos.DebtRepo, cfg.SettleKeywordFallback)

	container.Expense = NewExpenseService(
		repos.ExpenseRepo,
		repos.ShareRepo,
		repos.UserRepo,
		repos.GroupRepo,
		container.Group,
		settlement,
		container.Notifier,
		balanceCache,
	)
	container.Balance = NewBalanceService(
		repos.ExpenseRepo,
		repos.ShareRepo,
		repos.UserRepo,
		container.Group,
		balanceCache,
	)

	return container
}
