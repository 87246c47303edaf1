package services_test

import (
	"context"
	"time"

	"github.com/fairsplit/fairsplit/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsersByIDs(ctx context.Context, userIDs []string) (map[string]domain.User, error) {
	args := m.Called(ctx, userIDs)
	var users map[string]domain.User
	if args.Get(0) != nil {
		users = args.Get(0).(map[string]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedBy string, deletedAt time.Time) error {
	args := m.Called(ctx, userID, deletedBy, deletedAt)
	return args.Error(0)
}

// --- Mock GroupRepository ---

type MockGroupRepository struct {
	mock.Mock
}

func (m *MockGroupRepository) FindGroupByID(ctx context.Context, groupID string) (*domain.Group, error) {
	args := m.Called(ctx, groupID)
	var group *domain.Group
	if args.Get(0) != nil {
		group = args.Get(0).(*domain.Group)
	}
	return group, args.Error(1)
}

func (m *MockGroupRepository) ListGroupsForUser(ctx context.Context, userID string) ([]domain.Group, error) {
	args := m.Called(ctx, userID)
	var groups []domain.Group
	if args.Get(0) != nil {
		groups = args.Get(0).([]domain.Group)
	}
	return groups, args.Error(1)
}

func (m *MockGroupRepository) ListMembers(ctx context.Context, groupID string) ([]domain.GroupMember, error) {
	args := m.Called(ctx, groupID)
	var members []domain.GroupMember
	if args.Get(0) != nil {
		members = args.Get(0).([]domain.GroupMember)
	}
	return members, args.Error(1)
}

func (m *MockGroupRepository) FindMembership(ctx context.Context, groupID string, userID string) (*domain.GroupMember, error) {
	args := m.Called(ctx, groupID, userID)
	var member *domain.GroupMember
	if args.Get(0) != nil {
		member = args.Get(0).(*domain.GroupMember)
	}
	return member, args.Error(1)
}

func (m *MockGroupRepository) SaveGroup(ctx context.Context, group domain.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupRepository) AddMember(ctx context.Context, member domain.GroupMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockGroupRepository) RemoveMember(ctx context.Context, groupID string, userID string) error {
	args := m.Called(ctx, groupID, userID)
	return args.Error(0)
}

// --- Mock ExpenseRepository ---

type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	var expense *domain.Expense
	if args.Get(0) != nil {
		expense = args.Get(0).(*domain.Expense)
	}
	return expense, args.Error(1)
}

func (m *MockExpenseRepository) ListExpensesByGroup(ctx context.Context, groupID string) ([]domain.Expense, error) {
	args := m.Called(ctx, groupID)
	var expenses []domain.Expense
	if args.Get(0) != nil {
		expenses = args.Get(0).([]domain.Expense)
	}
	return expenses, args.Error(1)
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpenseWithSplit(ctx context.Context, expenseID string) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

func (m *MockExpenseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	var tx pgx.Tx
	if args.Get(0) != nil {
		tx = args.Get(0).(pgx.Tx)
	}
	return tx, args.Error(1)
}

func (m *MockExpenseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockExpenseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock ShareRepository ---

type MockShareRepository struct {
	mock.Mock
}

func (m *MockShareRepository) FindShareByID(ctx context.Context, shareID string) (*domain.Share, error) {
	args := m.Called(ctx, shareID)
	var share *domain.Share
	if args.Get(0) != nil {
		share = args.Get(0).(*domain.Share)
	}
	return share, args.Error(1)
}

func (m *MockShareRepository) FindSharesByExpense(ctx context.Context, expenseID string) ([]domain.Share, error) {
	args := m.Called(ctx, expenseID)
	var shares []domain.Share
	if args.Get(0) != nil {
		shares = args.Get(0).([]domain.Share)
	}
	return shares, args.Error(1)
}

func (m *MockShareRepository) FindSharesByUser(ctx context.Context, userID string) ([]domain.Share, error) {
	args := m.Called(ctx, userID)
	var shares []domain.Share
	if args.Get(0) != nil {
		shares = args.Get(0).([]domain.Share)
	}
	return shares, args.Error(1)
}

func (m *MockShareRepository) ListSharesByGroup(ctx context.Context, groupID string) ([]domain.Share, error) {
	args := m.Called(ctx, groupID)
	var shares []domain.Share
	if args.Get(0) != nil {
		shares = args.Get(0).([]domain.Share)
	}
	return shares, args.Error(1)
}

func (m *MockShareRepository) ReplaceSplit(ctx context.Context, expenseID string, shares []domain.Share, debts []domain.Debt) error {
	args := m.Called(ctx, expenseID, shares, debts)
	return args.Error(0)
}

func (m *MockShareRepository) UpdateShareStatus(ctx context.Context, shareID string, status domain.ShareStatus, updatedBy string) (*domain.Share, error) {
	args := m.Called(ctx, shareID, status, updatedBy)
	var share *domain.Share
	if args.Get(0) != nil {
		share = args.Get(0).(*domain.Share)
	}
	return share, args.Error(1)
}

func (m *MockShareRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	var tx pgx.Tx
	if args.Get(0) != nil {
		tx = args.Get(0).(pgx.Tx)
	}
	return tx, args.Error(1)
}

func (m *MockShareRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockShareRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock DebtRepository ---

type MockDebtRepository struct {
	mock.Mock
}

func (m *MockDebtRepository) FindDebtByID(ctx context.Context, debtID string) (*domain.Debt, error) {
	args := m.Called(ctx, debtID)
	var debt *domain.Debt
	if args.Get(0) != nil {
		debt = args.Get(0).(*domain.Debt)
	}
	return debt, args.Error(1)
}

func (m *MockDebtRepository) FindUnsettledBetween(ctx context.Context, fromUserID, toUserID, groupID string) ([]domain.Debt, error) {
	args := m.Called(ctx, fromUserID, toUserID, groupID)
	var debts []domain.Debt
	if args.Get(0) != nil {
		debts = args.Get(0).([]domain.Debt)
	}
	return debts, args.Error(1)
}

func (m *MockDebtRepository) FindByExpenseAndDebtor(ctx context.Context, expenseID, userID string) ([]domain.Debt, error) {
	args := m.Called(ctx, expenseID, userID)
	var debts []domain.Debt
	if args.Get(0) != nil {
		debts = args.Get(0).([]domain.Debt)
	}
	return debts, args.Error(1)
}

func (m *MockDebtRepository) FindAllForUser(ctx context.Context, userID string) ([]domain.Debt, error) {
	args := m.Called(ctx, userID)
	var debts []domain.Debt
	if args.Get(0) != nil {
		debts = args.Get(0).([]domain.Debt)
	}
	return debts, args.Error(1)
}

func (m *MockDebtRepository) CreateDebts(ctx context.Context, debts []domain.Debt) error {
	args := m.Called(ctx, debts)
	return args.Error(0)
}

func (m *MockDebtRepository) DeleteDebtsForExpense(ctx context.Context, expenseID string) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

func (m *MockDebtRepository) MarkDebtsSettled(ctx context.Context, debtIDs []string, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, debtIDs, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockDebtRepository) UpdateDebtStatus(ctx context.Context, debtID string, status domain.DebtStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, debtID, status, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock NotificationRepository ---

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) SaveNotification(ctx context.Context, n domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) ListForUser(ctx context.Context, userID string, limit int, offset int) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, limit, offset)
	var notifications []domain.Notification
	if args.Get(0) != nil {
		notifications = args.Get(0).([]domain.Notification)
	}
	return notifications, args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, notificationID string, userID string) error {
	args := m.Called(ctx, notificationID, userID)
	return args.Error(0)
}

// --- Mock GroupAuthorizer ---

type MockGroupAuthorizer struct {
	mock.Mock
}

func (m *MockGroupAuthorizer) AuthorizeMember(ctx context.Context, groupID string, userID string) error {
	args := m.Called(ctx, groupID, userID)
	return args.Error(0)
}

// --- Mock SettlementSvc ---

type MockSettlementSvc struct {
	mock.Mock
}

func (m *MockSettlementSvc) ApplyPaymentNetting(ctx context.Context, expense domain.Expense, shares []domain.Share) {
	m.Called(ctx, expense, shares)
}

func (m *MockSettlementSvc) IsPayment(expense domain.Expense) bool {
	args := m.Called(expense)
	return args.Bool(0)
}

// --- Mock NotifierSvc ---

type MockNotifierSvc struct {
	mock.Mock
}

func (m *MockNotifierSvc) NotifyDebtCreated(ctx context.Context, debt domain.Debt, groupName string) {
	m.Called(ctx, debt, groupName)
}

func (m *MockNotifierSvc) ListNotifications(ctx context.Context, userID string, limit, offset int) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, limit, offset)
	var notifications []domain.Notification
	if args.Get(0) != nil {
		notifications = args.Get(0).([]domain.Notification)
	}
	return notifications, args.Error(1)
}

func (m *MockNotifierSvc) MarkNotificationRead(ctx context.Context, notificationID string, userID string) error {
	args := m.Called(ctx, notificationID, userID)
	return args.Error(0)
}

// --- Mock BalanceCache ---

type MockBalanceCache struct {
	mock.Mock
}

func (m *MockBalanceCache) GetGroupBalances(ctx context.Context, groupID string) ([]domain.Balance, bool) {
	args := m.Called(ctx, groupID)
	var balances []domain.Balance
	if args.Get(0) != nil {
		balances = args.Get(0).([]domain.Balance)
	}
	return balances, args.Bool(1)
}

func (m *MockBalanceCache) SetGroupBalances(ctx context.Context, groupID string, balances []domain.Balance) {
	m.Called(ctx, groupID, balances)
}

func (m *MockBalanceCache) InvalidateGroup(ctx context.Context, groupID string) {
	m.Called(ctx, groupID)
}
