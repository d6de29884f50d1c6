package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/quocbank/qbank_backend/internal/apperrors"
	"github.com/quocbank/qbank_backend/internal/core/domain"
	portssvc "github.com/quocbank/qbank_backend/internal/core/ports/services"
	"github.com/quocbank/qbank_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SavingsServiceTestSuite struct {
	suite.Suite
	mockSavings  *MockSavingsRepository
	mockAccounts *MockAccountRepository
	mockNotifier *MockNotifier
	service      portssvc.SavingsSvcFacade
}

func (suite *SavingsServiceTestSuite) SetupTest() {
	suite.mockSavings = new(MockSavingsRepository)
	suite.mockAccounts = new(MockAccountRepository)
	suite.mockNotifier = new(MockNotifier)
	suite.service = services.NewSavingsService(suite.mockSavings, suite.mockAccounts, suite.mockNotifier)
}

func (suite *SavingsServiceTestSuite) TestListRates() {
	rates := suite.service.ListRates(context.Background())

	suite.Require().Len(rates, 5)
	suite.Equal(domain.SavingsFlexible, rates[0].SavingsType)
	suite.True(rates[0].RatePercent.Equal(decimal.NewFromFloat(0.5)))
	suite.Equal(domain.SavingsFixed12M, rates[4].SavingsType)
	suite.True(rates[4].RatePercent.Equal(decimal.NewFromFloat(6.5)))
}

func (suite *SavingsServiceTestSuite) TestOpenSavings_Success() {
	ctx := context.Background()
	cmd := domain.OpenSavingsCommand{
		UserID:      uuid.NewString(),
		SavingsType: domain.SavingsFixed3M,
		Amount:      5_000_000,
	}
	sa := &domain.SavingsAccount{
		SavingsID:   uuid.NewString(),
		SavingsType: cmd.SavingsType,
		Balance:     cmd.Amount,
		RatePercent: decimal.NewFromFloat(4.5),
	}

	suite.mockSavings.On("OpenSavingsAccount", ctx, cmd, mock.AnythingOfType("time.Time")).Return(sa, nil).Once()
	suite.mockNotifier.On("Dispatch", ctx, cmd.UserID, domain.NotifySavings, "Mở sổ tiết kiệm thành công", mock.AnythingOfType("string")).Once()

	got, err := suite.service.OpenSavings(ctx, cmd)

	suite.Require().NoError(err)
	suite.Equal(sa, got)
	suite.mockSavings.AssertExpectations(suite.T())
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *SavingsServiceTestSuite) TestOpenSavings_UnknownType() {
	ctx := context.Background()
	cmd := domain.OpenSavingsCommand{UserID: uuid.NewString(), SavingsType: "FIXED_24M", Amount: 5_000_000}

	sa, err := suite.service.OpenSavings(ctx, cmd)

	suite.Require().Error(err)
	suite.Nil(sa)
	suite.ErrorIs(err, services.ErrUnknownSavingsType)
	suite.mockSavings.AssertNotCalled(suite.T(), "OpenSavingsAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SavingsServiceTestSuite) TestOpenSavings_DepositOutOfRange() {
	ctx := context.Background()

	for _, amount := range []int64{domain.SavingsMinDeposit - 1, domain.SavingsMaxDeposit + 1} {
		cmd := domain.OpenSavingsCommand{UserID: uuid.NewString(), SavingsType: domain.SavingsFlexible, Amount: amount}
		sa, err := suite.service.OpenSavings(ctx, cmd)
		suite.Require().Error(err, "amount %d", amount)
		suite.Nil(sa)
		suite.ErrorIs(err, services.ErrDepositOutOfRange)
	}
}

func (suite *SavingsServiceTestSuite) TestWithdraw_Success() {
	ctx := context.Background()
	cmd := domain.SavingsWithdrawalCommand{UserID: uuid.NewString(), SavingsID: uuid.NewString()}
	outcome := &domain.SavingsWithdrawalOutcome{
		Settlement: domain.WithdrawalSettlement{Principal: 5_000_000, Interest: 6_164, DaysElapsed: 10, Closes: true},
		Savings:    domain.SavingsAccount{SavingsID: cmd.SavingsID, Status: domain.SavingsClosed},
		Account:    domain.Account{Balance: 15_006_164},
	}

	suite.mockSavings.On("WithdrawFromSavings", ctx, cmd, mock.AnythingOfType("time.Time")).Return(outcome, nil).Once()
	suite.mockNotifier.On("Dispatch", ctx, cmd.UserID, domain.NotifySavings, "Rút tiền tiết kiệm", mock.MatchedBy(func(msg string) bool {
		return !strings.Contains(msg, "phí rút trước hạn")
	})).Once()

	got, err := suite.service.Withdraw(ctx, cmd)

	suite.Require().NoError(err)
	suite.Equal(outcome, got)
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *SavingsServiceTestSuite) TestWithdraw_PenaltyMentioned() {
	ctx := context.Background()
	cmd := domain.SavingsWithdrawalCommand{UserID: uuid.NewString(), SavingsID: uuid.NewString(), Amount: 2_000_000}
	outcome := &domain.SavingsWithdrawalOutcome{
		Settlement: domain.WithdrawalSettlement{Principal: 2_000_000, Interest: 500, Penalty: 1_200},
		Savings:    domain.SavingsAccount{SavingsID: cmd.SavingsID, Status: domain.SavingsActive},
	}

	suite.mockSavings.On("WithdrawFromSavings", ctx, cmd, mock.AnythingOfType("time.Time")).Return(outcome, nil).Once()
	suite.mockNotifier.On("Dispatch", ctx, cmd.UserID, domain.NotifySavings, "Rút tiền tiết kiệm", mock.MatchedBy(func(msg string) bool {
		return strings.Contains(msg, "phí rút trước hạn")
	})).Once()

	_, err := suite.service.Withdraw(ctx, cmd)

	suite.Require().NoError(err)
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *SavingsServiceTestSuite) TestWithdraw_NegativeAmount() {
	ctx := context.Background()
	cmd := domain.SavingsWithdrawalCommand{UserID: uuid.NewString(), SavingsID: uuid.NewString(), Amount: -1}

	outcome, err := suite.service.Withdraw(ctx, cmd)

	suite.Require().Error(err)
	suite.Nil(outcome)
	suite.ErrorIs(err, services.ErrAmountNotPositive)
	suite.mockSavings.AssertNotCalled(suite.T(), "WithdrawFromSavings", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SavingsServiceTestSuite) TestListSavings_Projections() {
	ctx := context.Background()
	userID := uuid.NewString()
	account := &domain.Account{AccountID: uuid.NewString(), UserID: userID}
	start := time.Now().UTC().AddDate(0, 0, -10)
	list := []domain.SavingsAccount{{
		SavingsID:   uuid.NewString(),
		AccountID:   account.AccountID,
		Balance:     5_000_000,
		RatePercent: decimal.NewFromFloat(4.5),
		StartDate:   start,
	}}

	suite.mockAccounts.On("FindActiveAccountByUserID", ctx, userID).Return(account, nil).Once()
	suite.mockSavings.On("ListSavingsByAccountID", ctx, account.AccountID).Return(list, nil).Once()

	projections, err := suite.service.ListSavings(ctx, userID)

	suite.Require().NoError(err)
	suite.Require().Len(projections, 1)
	suite.Equal(10, projections[0].DaysElapsed)
	// 5,000,000 * 4.5% * 10/365, truncated
	suite.Equal(int64(6_164), projections[0].AccruedInterest)
}

func (suite *SavingsServiceTestSuite) TestGetSavings_Forbidden() {
	ctx := context.Background()
	userID := uuid.NewString()
	sa := &domain.SavingsAccount{SavingsID: uuid.NewString(), AccountID: uuid.NewString()}
	owner := &domain.Account{AccountID: sa.AccountID, UserID: uuid.NewString()}

	suite.mockSavings.On("FindSavingsByID", ctx, sa.SavingsID).Return(sa, nil).Once()
	suite.mockAccounts.On("FindAccountByID", ctx, sa.AccountID).Return(owner, nil).Once()

	projection, err := suite.service.GetSavings(ctx, userID, sa.SavingsID)

	suite.Require().Error(err)
	suite.Nil(projection)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func TestSavingsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SavingsServiceTestSuite))
}
