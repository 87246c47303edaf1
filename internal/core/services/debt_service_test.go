package services_test

import (
	"context"
	"testing"

	"github.com/fairsplit/fairsplit/internal/apperrors"
	"github.com/fairsplit/fairsplit/internal/core/domain"
	portssvc "github.com/fairsplit/fairsplit/internal/core/ports/services"
	"github.com/fairsplit/fairsplit/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DebtServiceTestSuite struct {
	suite.Suite
	mockDebtRepo *MockDebtRepository
	service      portssvc.DebtSvcFacade
}

func (suite *DebtServiceTestSuite) SetupTest() {
	suite.mockDebtRepo = new(MockDebtRepository)
	suite.service = services.NewDebtService(suite.mockDebtRepo)
}

func (suite *DebtServiceTestSuite) TestSettleDebtByCreditor() {
	ctx := context.Background()
	debt := &domain.Debt{
		DebtID:     "d1",
		FromUserID: "bob",
		ToUserID:   "alice",
		Amount:     dec("100"),
		Status:     domain.DebtUnsettled,
	}

	suite.mockDebtRepo.On("FindDebtByID", ctx, "d1").Return(debt, nil).Once()
	suite.mockDebtRepo.On("UpdateDebtStatus", ctx, "d1", domain.DebtSettled, "alice", mock.Anything).Return(nil).Once()

	settled, err := suite.service.SettleDebt(ctx, "d1", "alice")

	suite.NoError(err)
	suite.Equal(domain.DebtSettled, settled.Status)
	suite.Equal("alice", settled.LastUpdatedBy)
	suite.mockDebtRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestSettleDebtByDebtorIsForbidden() {
	ctx := context.Background()
	debt := &domain.Debt{
		DebtID:     "d1",
		FromUserID: "bob",
		ToUserID:   "alice",
		Status:     domain.DebtUnsettled,
	}

	suite.mockDebtRepo.On("FindDebtByID", ctx, "d1").Return(debt, nil).Once()

	_, err := suite.service.SettleDebt(ctx, "d1", "bob")

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockDebtRepo.AssertNotCalled(suite.T(), "UpdateDebtStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DebtServiceTestSuite) TestSettleAlreadySettledIsNoOp() {
	ctx := context.Background()
	debt := &domain.Debt{
		DebtID:     "d1",
		FromUserID: "bob",
		ToUserID:   "alice",
		Status:     domain.DebtSettled,
	}

	suite.mockDebtRepo.On("FindDebtByID", ctx, "d1").Return(debt, nil).Once()

	settled, err := suite.service.SettleDebt(ctx, "d1", "alice")

	suite.NoError(err)
	suite.Equal(domain.DebtSettled, settled.Status)
	suite.mockDebtRepo.AssertNotCalled(suite.T(), "UpdateDebtStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DebtServiceTestSuite) TestSettleUnknownDebt() {
	ctx := context.Background()

	suite.mockDebtRepo.On("FindDebtByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.SettleDebt(ctx, "missing", "alice")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *DebtServiceTestSuite) TestListDebtsForUser() {
	ctx := context.Background()
	debts := []domain.Debt{
		{DebtID: "d2", FromUserID: "alice", ToUserID: "bob", Amount: dec("20")},
		{DebtID: "d1", FromUserID: "bob", ToUserID: "alice", Amount: dec("100")},
	}

	suite.mockDebtRepo.On("FindAllForUser", ctx, "alice").Return(debts, nil).Once()

	got, err := suite.service.ListDebtsForUser(ctx, "alice")

	suite.NoError(err)
	suite.Equal(debts, got)
}

func TestDebtServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DebtServiceTestSuite))
}
