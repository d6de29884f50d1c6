package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/quocbank/qbank_backend/internal/apperrors"
	"github.com/quocbank/qbank_backend/internal/core/domain"
	portssvc "github.com/quocbank/qbank_backend/internal/core/ports/services"
	"github.com/quocbank/qbank_backend/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransferServiceTestSuite struct {
	suite.Suite
	mockLedger   *MockLedgerRepository
	mockAccounts *MockAccountRepository
	mockNotifier *MockNotifier
	service      portssvc.TransferSvcFacade
}

func (suite *TransferServiceTestSuite) SetupTest() {
	suite.mockLedger = new(MockLedgerRepository)
	suite.mockAccounts = new(MockAccountRepository)
	suite.mockNotifier = new(MockNotifier)
	suite.service = services.NewTransferService(suite.mockLedger, suite.mockAccounts, suite.mockNotifier)
}

func (suite *TransferServiceTestSuite) TestExecuteTransfer_Success() {
	ctx := context.Background()
	cmd := domain.TransferCommand{
		FromUserID:      uuid.NewString(),
		ToAccountNumber: "1234567890",
		Amount:          500_000,
		Message:         "Tien an trua",
	}
	outcome := &domain.TransferOutcome{
		Transaction: domain.Transaction{TransactionID: uuid.NewString(), Amount: cmd.Amount},
		FromAccount: domain.Account{AccountID: uuid.NewString(), UserID: cmd.FromUserID, Balance: 9_500_000},
		ToAccount:   domain.Account{AccountID: uuid.NewString(), UserID: uuid.NewString(), Balance: 500_000},
		FromUser:    domain.User{FullName: "Nguyễn Văn A"},
		ToUser:      domain.User{FullName: "Trần Thị B"},
	}

	suite.mockLedger.On("ExecuteTransfer", ctx, cmd, mock.AnythingOfType("time.Time")).Return(outcome, nil).Once()
	suite.mockNotifier.On("Dispatch", ctx, outcome.FromAccount.UserID, domain.NotifyTransaction, "Chuyển tiền thành công", mock.AnythingOfType("string")).Once()
	suite.mockNotifier.On("Dispatch", ctx, outcome.ToAccount.UserID, domain.NotifyTransaction, "Nhận tiền", mock.AnythingOfType("string")).Once()

	got, err := suite.service.ExecuteTransfer(ctx, cmd)

	suite.Require().NoError(err)
	suite.Equal(outcome, got)
	suite.mockLedger.AssertExpectations(suite.T())
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *TransferServiceTestSuite) TestExecuteTransfer_DefaultsEmptyMessage() {
	ctx := context.Background()
	cmd := domain.TransferCommand{
		FromUserID:      uuid.NewString(),
		ToAccountNumber: "1234567890",
		Amount:          100_000,
	}
	outcome := &domain.TransferOutcome{
		FromAccount: domain.Account{UserID: cmd.FromUserID},
		ToAccount:   domain.Account{UserID: uuid.NewString()},
	}

	suite.mockLedger.On("ExecuteTransfer", ctx, mock.MatchedBy(func(c domain.TransferCommand) bool {
		return c.Message == "Chuyển tiền"
	}), mock.AnythingOfType("time.Time")).Return(outcome, nil).Once()
	suite.mockNotifier.On("Dispatch", ctx, mock.AnythingOfType("string"), domain.NotifyTransaction, mock.AnythingOfType("string"), mock.AnythingOfType("string")).Twice()

	_, err := suite.service.ExecuteTransfer(ctx, cmd)

	suite.Require().NoError(err)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *TransferServiceTestSuite) TestExecuteTransfer_AmountNotPositive() {
	ctx := context.Background()
	cmd := domain.TransferCommand{FromUserID: uuid.NewString(), ToAccountNumber: "1234567890", Amount: 0}

	outcome, err := suite.service.ExecuteTransfer(ctx, cmd)

	suite.Require().Error(err)
	suite.Nil(outcome)
	suite.ErrorIs(err, services.ErrAmountNotPositive)
	suite.mockLedger.AssertNotCalled(suite.T(), "ExecuteTransfer", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransferServiceTestSuite) TestExecuteTransfer_OverLimit() {
	ctx := context.Background()
	cmd := domain.TransferCommand{FromUserID: uuid.NewString(), ToAccountNumber: "1234567890", Amount: domain.TransferLimit + 1}

	outcome, err := suite.service.ExecuteTransfer(ctx, cmd)

	suite.Require().Error(err)
	suite.Nil(outcome)
	suite.ErrorIs(err, services.ErrTransferOverLimit)
}

func (suite *TransferServiceTestSuite) TestExecuteTransfer_InvalidAccountNumber() {
	ctx := context.Background()

	for _, number := range []string{"", "12345", "123456789a", "12345678901"} {
		cmd := domain.TransferCommand{FromUserID: uuid.NewString(), ToAccountNumber: number, Amount: 100_000}
		outcome, err := suite.service.ExecuteTransfer(ctx, cmd)
		suite.Require().Error(err, "account number %q", number)
		suite.Nil(outcome)
		suite.ErrorIs(err, services.ErrInvalidAccountNo)
	}
	suite.mockLedger.AssertNotCalled(suite.T(), "ExecuteTransfer", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransferServiceTestSuite) TestExecuteTransfer_InsufficientFunds() {
	ctx := context.Background()
	cmd := domain.TransferCommand{FromUserID: uuid.NewString(), ToAccountNumber: "1234567890", Amount: 100_000, Message: "x"}

	suite.mockLedger.On("ExecuteTransfer", ctx, cmd, mock.AnythingOfType("time.Time")).Return(nil, apperrors.ErrInsufficientFunds).Once()

	outcome, err := suite.service.ExecuteTransfer(ctx, cmd)

	suite.Require().Error(err)
	suite.Nil(outcome)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.mockNotifier.AssertNotCalled(suite.T(), "Dispatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransferServiceTestSuite) TestListTransactions_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	account := &domain.Account{AccountID: uuid.NewString(), UserID: userID}
	expected := []domain.Transaction{{TransactionID: uuid.NewString()}}
	token := "next-token"

	suite.mockAccounts.On("FindActiveAccountByUserID", ctx, userID).Return(account, nil).Once()
	suite.mockLedger.On("ListTransactionsByAccountID", ctx, account.AccountID, 20, (*string)(nil)).Return(expected, &token, nil).Once()

	txns, nextToken, err := suite.service.ListTransactions(ctx, userID, 20, nil)

	suite.Require().NoError(err)
	suite.Equal(expected, txns)
	suite.Require().NotNil(nextToken)
	suite.Equal(token, *nextToken)
	suite.mockAccounts.AssertExpectations(suite.T())
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *TransferServiceTestSuite) TestListTransactions_NoAccount() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockAccounts.On("FindActiveAccountByUserID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	txns, nextToken, err := suite.service.ListTransactions(ctx, userID, 20, nil)

	suite.Require().Error(err)
	suite.Nil(txns)
	suite.Nil(nextToken)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestTransferServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransferServiceTestSuite))
}
