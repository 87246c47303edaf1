package services

// ServiceContainer holds all service interfaces needed by the handlers.
type ServiceContainer struct {
	Auth     AuthSvcFacade
	User     UserSvcFacade
	Group    GroupSvcFacade
	Expense  ExpenseSvcFacade
	Debt     DebtSvcFacade
	Balance  BalanceSvcFacade
	Notifier NotifierSvc
}
