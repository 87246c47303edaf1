package services_test

import (
	"context"
	"testing"

	"github.com/fairsplit/fairsplit/internal/apperrors"
	"github.com/fairsplit/fairsplit/internal/core/domain"
	portssvc "github.com/fairsplit/fairsplit/internal/core/ports/services"
	"github.com/fairsplit/fairsplit/internal/core/services"
	"github.com/fairsplit/fairsplit/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ExpenseServiceTestSuite struct {
	suite.Suite
	mockExpenseRepo *MockExpenseRepository
	mockShareRepo   *MockShareRepository
	mockUserRepo    *MockUserRepository
	mockGroupRepo   *MockGroupRepository
	mockGroupSvc    *MockGroupAuthorizer
	mockSettlement  *MockSettlementSvc
	mockNotifier    *MockNotifierSvc
	service         portssvc.ExpenseSvcFacade
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockShareRepo = new(MockShareRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockGroupRepo = new(MockGroupRepository)
	suite.mockGroupSvc = new(MockGroupAuthorizer)
	suite.mockSettlement = new(MockSettlementSvc)
	suite.mockNotifier = new(MockNotifierSvc)
	suite.service = services.NewExpenseService(
		suite.mockExpenseRepo,
		suite.mockShareRepo,
		suite.mockUserRepo,
		suite.mockGroupRepo,
		suite.mockGroupSvc,
		suite.mockSettlement,
		suite.mockNotifier,
		nil,
	)
}

func storedExpense(amount string) *domain.Expense {
	return &domain.Expense{
		ExpenseID:   "e1",
		GroupID:     "trip",
		Description: "Dinner",
		Amount:      dec(amount),
		PaidBy:      "alice",
	}
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Description: "Dinner",
		Amount:      dec("300"),
		PaidBy:      "alice",
	}

	suite.mockGroupSvc.On("AuthorizeMember", ctx, "trip", "alice").Return(nil).Twice()
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, "trip", req, "alice")

	suite.NoError(err)
	suite.NotEmpty(expense.ExpenseID)
	suite.Equal("trip", expense.GroupID)
	suite.True(expense.Amount.Equal(dec("300")))
	suite.Equal("alice", expense.CreatedBy)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpenseRejectsNonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{Description: "Dinner", Amount: decimal.Zero, PaidBy: "alice"}

	suite.mockGroupSvc.On("AuthorizeMember", ctx, "trip", "alice").Return(nil).Once()

	_, err := suite.service.CreateExpense(ctx, "trip", req, "alice")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestSaveSplitOrchestration() {
	ctx := context.Background()
	expense := storedExpense("300")
	req := dto.SaveSplitRequest{
		TotalAmount: dec("300"),
		Shares: []dto.SplitShareInput{
			{UserID: "alice", Amount: dec("100")},
			{UserID: "bob", Amount: dec("120")},
			{UserID: "carol", Amount: dec("80")},
		},
	}
	users := map[string]domain.User{
		"alice": {UserID: "alice", Name: "Alice"},
		"bob":   {UserID: "bob", Name: "Bob"},
		"carol": {UserID: "carol", Name: "Carol"},
	}

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, "e1").Return(expense, nil).Once()
	suite.mockGroupSvc.On("AuthorizeMember", ctx, "trip", "alice").Return(nil).Once()
	suite.mockUserRepo.On("FindUsersByIDs", ctx, []string{"alice", "bob", "carol"}).Return(users, nil).Once()
	suite.mockShareRepo.On("ReplaceSplit", ctx, "e1",
		mock.MatchedBy(func(shares []domain.Share) bool { return len(shares) == 3 }),
		mock.MatchedBy(func(debts []domain.Debt) bool {
			// Only non-payer shares become debts, all owed to the payer.
			return len(debts) == 2 && debts[0].ToUserID == "alice" && debts[1].ToUserID == "alice"
		}),
	).Return(nil).Once()
	suite.mockGroupRepo.On("FindGroupByID", ctx, "trip").Return(&domain.Group{GroupID: "trip", Name: "Road Trip"}, nil).Once()
	suite.mockNotifier.On("NotifyDebtCreated", ctx, mock.AnythingOfType("domain.Debt"), "Road Trip").Twice()
	suite.mockSettlement.On("ApplyPaymentNetting", ctx, mock.AnythingOfType("domain.Expense"), mock.Anything).Once()

	shares, err := suite.service.SaveSplit(ctx, "e1", req, "alice")

	suite.NoError(err)
	suite.Len(shares, 3)
	for _, sh := range shares {
		suite.NotEmpty(sh.ShareID)
		suite.Equal("e1", sh.ExpenseID)
	}
	suite.mockShareRepo.AssertExpectations(suite.T())
	suite.mockNotifier.AssertExpectations(suite.T())
	suite.mockSettlement.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestSaveSplitRejectsTotalMismatch() {
	ctx := context.Background()
	expense := storedExpense("300")
	req := dto.SaveSplitRequest{
		TotalAmount: dec("250"),
		Shares:      []dto.SplitShareInput{{UserID: "alice", Amount: dec("250")}},
	}

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, "e1").Return(expense, nil).Once()
	suite.mockGroupSvc.On("AuthorizeMember", ctx, "trip", "alice").Return(nil).Once()

	_, err := suite.service.SaveSplit(ctx, "e1", req, "alice")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockShareRepo.AssertNotCalled(suite.T(), "ReplaceSplit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestSaveSplitRejectsUnknownParticipant() {
	ctx := context.Background()
	expense := storedExpense("300")
	req := dto.SaveSplitRequest{
		TotalAmount: dec("300"),
		Shares: []dto.SplitShareInput{
			{UserID: "alice", Amount: dec("150")},
			{UserID: "ghost", Amount: dec("150")},
		},
	}
	users := map[string]domain.User{"alice": {UserID: "alice", Name: "Alice"}}

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, "e1").Return(expense, nil).Once()
	suite.mockGroupSvc.On("AuthorizeMember", ctx, "trip", "alice").Return(nil).Once()
	suite.mockUserRepo.On("FindUsersByIDs", ctx, []string{"alice", "ghost"}).Return(users, nil).Once()

	_, err := suite.service.SaveSplit(ctx, "e1", req, "alice")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockShareRepo.AssertNotCalled(suite.T(), "ReplaceSplit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestSaveSplitRejectsInvalidShares() {
	ctx := context.Background()
	expense := storedExpense("300")
	req := dto.SaveSplitRequest{
		TotalAmount: dec("300"),
		Shares: []dto.SplitShareInput{
			{UserID: "alice", Amount: dec("400")},
			{UserID: "bob", Amount: dec("-100")},
		},
	}
	users := map[string]domain.User{
		"alice": {UserID: "alice", Name: "Alice"},
		"bob":   {UserID: "bob", Name: "Bob"},
	}

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, "e1").Return(expense, nil).Once()
	suite.mockGroupSvc.On("AuthorizeMember", ctx, "trip", "alice").Return(nil).Once()
	suite.mockUserRepo.On("FindUsersByIDs", ctx, []string{"alice", "bob"}).Return(users, nil).Once()

	_, err := suite.service.SaveSplit(ctx, "e1", req, "alice")

	suite.ErrorIs(err, apperrors.ErrInvalidSplit)
	suite.mockShareRepo.AssertNotCalled(suite.T(), "ReplaceSplit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// A changed amount invalidates the saved split, so the shares and debts are
// discarded along with the update.
func (suite *ExpenseServiceTestSuite) TestUpdateExpenseAmountDiscardsSplit() {
	ctx := context.Background()
	expense := storedExpense("300")
	newAmount := dec("350")
	req := dto.UpdateExpenseRequest{Amount: &newAmount}

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, "e1").Return(expense, nil).Once()
	suite.mockGroupSvc.On("AuthorizeMember", ctx, "trip", "alice").Return(nil).Once()
	suite.mockExpenseRepo.On("UpdateExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()
	suite.mockShareRepo.On("ReplaceSplit", ctx, "e1", []domain.Share(nil), []domain.Debt(nil)).Return(nil).Once()

	updated, err := suite.service.UpdateExpense(ctx, "e1", req, "alice")

	suite.NoError(err)
	suite.True(updated.Amount.Equal(newAmount))
	suite.mockShareRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpenseDescriptionKeepsSplit() {
	ctx := context.Background()
	expense := storedExpense("300")
	desc := "Dinner at the pier"
	req := dto.UpdateExpenseRequest{Description: &desc}

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, "e1").Return(expense, nil).Once()
	suite.mockGroupSvc.On("AuthorizeMember", ctx, "trip", "alice").Return(nil).Once()
	suite.mockExpenseRepo.On("UpdateExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()

	updated, err := suite.service.UpdateExpense(ctx, "e1", req, "alice")

	suite.NoError(err)
	suite.Equal(desc, updated.Description)
	suite.mockShareRepo.AssertNotCalled(suite.T(), "ReplaceSplit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpenseRemovesSplit() {
	ctx := context.Background()
	expense := storedExpense("300")

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, "e1").Return(expense, nil).Once()
	suite.mockGroupSvc.On("AuthorizeMember", ctx, "trip", "alice").Return(nil).Once()
	suite.mockExpenseRepo.On("DeleteExpenseWithSplit", ctx, "e1").Return(nil).Once()

	err := suite.service.DeleteExpense(ctx, "e1", "alice")

	suite.NoError(err)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestGetExpenseRequiresMembership() {
	ctx := context.Background()
	expense := storedExpense("300")

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, "e1").Return(expense, nil).Once()
	suite.mockGroupSvc.On("AuthorizeMember", ctx, "trip", "mallory").Return(apperrors.ErrForbidden).Once()

	_, err := suite.service.GetExpenseByID(ctx, "e1", "mallory")

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ExpenseServiceTestSuite) TestUpdateShareStatus() {
	ctx := context.Background()
	expense := storedExpense("300")
	stored := &domain.Share{ShareID: "s1", ExpenseID: "e1", UserID: "bob", Status: domain.ShareUnpaid}
	updated := &domain.Share{ShareID: "s1", ExpenseID: "e1", UserID: "bob", Status: domain.SharePaid}

	suite.mockShareRepo.On("FindShareByID", ctx, "s1").Return(stored, nil).Once()
	suite.mockExpenseRepo.On("FindExpenseByID", ctx, "e1").Return(expense, nil).Once()
	suite.mockGroupSvc.On("AuthorizeMember", ctx, "trip", "bob").Return(nil).Once()
	suite.mockShareRepo.On("UpdateShareStatus", ctx, "s1", domain.SharePaid, "bob").Return(updated, nil).Once()

	got, err := suite.service.UpdateShareStatus(ctx, "s1", domain.SharePaid, "bob")

	suite.NoError(err)
	suite.Equal(domain.SharePaid, got.Status)
	suite.mockShareRepo.AssertExpectations(suite.T())
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
