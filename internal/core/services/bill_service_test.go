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

type BillServiceTestSuite struct {
	suite.Suite
	mockBills    *MockBillRepository
	mockAccounts *MockAccountRepository
	mockNotifier *MockNotifier
	service      portssvc.BillSvcFacade
}

func (suite *BillServiceTestSuite) SetupTest() {
	suite.mockBills = new(MockBillRepository)
	suite.mockAccounts = new(MockAccountRepository)
	suite.mockNotifier = new(MockNotifier)
	suite.service = services.NewBillService(suite.mockBills, suite.mockAccounts, suite.mockNotifier)
}

func (suite *BillServiceTestSuite) TestPayBill_Success() {
	ctx := context.Background()
	cmd := domain.BillPaymentCommand{
		UserID:       uuid.NewString(),
		ProviderID:   uuid.NewString(),
		CustomerCode: "PE0400012345",
		Amount:       850_000,
		BillMonth:    "2026-08",
	}
	outcome := &domain.BillPaymentOutcome{
		Payment:  domain.BillPayment{PaymentID: uuid.NewString(), Amount: cmd.Amount},
		Provider: domain.BillProvider{ProviderID: cmd.ProviderID, Name: "EVN Hà Nội"},
		Account:  domain.Account{Balance: 9_150_000},
	}

	suite.mockBills.On("ExecuteBillPayment", ctx, cmd, mock.AnythingOfType("time.Time")).Return(outcome, nil).Once()
	suite.mockNotifier.On("Dispatch", ctx, cmd.UserID, domain.NotifyBill, "Thanh toán hóa đơn thành công", mock.AnythingOfType("string")).Once()

	got, err := suite.service.PayBill(ctx, cmd)

	suite.Require().NoError(err)
	suite.Equal(outcome, got)
	suite.mockBills.AssertExpectations(suite.T())
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestPayBill_OverLimit() {
	ctx := context.Background()
	cmd := domain.BillPaymentCommand{UserID: uuid.NewString(), ProviderID: uuid.NewString(), CustomerCode: "X1", Amount: domain.BillPaymentLimit + 1}

	outcome, err := suite.service.PayBill(ctx, cmd)

	suite.Require().Error(err)
	suite.Nil(outcome)
	suite.ErrorIs(err, services.ErrBillOverLimit)
	suite.mockBills.AssertNotCalled(suite.T(), "ExecuteBillPayment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BillServiceTestSuite) TestPayBill_BlankCustomerCode() {
	ctx := context.Background()
	cmd := domain.BillPaymentCommand{UserID: uuid.NewString(), ProviderID: uuid.NewString(), CustomerCode: "   ", Amount: 100_000}

	outcome, err := suite.service.PayBill(ctx, cmd)

	suite.Require().Error(err)
	suite.Nil(outcome)
	suite.ErrorIs(err, services.ErrCustomerCodeEmpty)
}

func (suite *BillServiceTestSuite) TestPayBill_RepoError() {
	ctx := context.Background()
	cmd := domain.BillPaymentCommand{UserID: uuid.NewString(), ProviderID: uuid.NewString(), CustomerCode: "X1", Amount: 100_000}

	suite.mockBills.On("ExecuteBillPayment", ctx, cmd, mock.AnythingOfType("time.Time")).Return(nil, apperrors.ErrInsufficientFunds).Once()

	outcome, err := suite.service.PayBill(ctx, cmd)

	suite.Require().Error(err)
	suite.Nil(outcome)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.mockNotifier.AssertNotCalled(suite.T(), "Dispatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BillServiceTestSuite) TestCreateTemplate_DefaultName() {
	ctx := context.Background()
	userID := uuid.NewString()
	provider := &domain.BillProvider{ProviderID: uuid.NewString(), Name: "SAWACO"}
	account := &domain.Account{AccountID: uuid.NewString(), UserID: userID}

	suite.mockBills.On("FindProviderByID", ctx, provider.ProviderID).Return(provider, nil).Once()
	suite.mockAccounts.On("FindActiveAccountByUserID", ctx, userID).Return(account, nil).Once()
	suite.mockBills.On("SaveTemplate", ctx, mock.MatchedBy(func(t domain.BillTemplate) bool {
		return t.AccountID == account.AccountID && t.Name == "SAWACO - WA123"
	})).Return(nil).Once()

	template, err := suite.service.CreateTemplate(ctx, userID, provider.ProviderID, "WA123", "")

	suite.Require().NoError(err)
	suite.Require().NotNil(template)
	suite.Equal("SAWACO - WA123", template.Name)
	suite.mockBills.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestDeleteTemplate_Forbidden() {
	ctx := context.Background()
	userID := uuid.NewString()
	template := &domain.BillTemplate{TemplateID: uuid.NewString(), AccountID: uuid.NewString()}
	account := &domain.Account{AccountID: uuid.NewString(), UserID: userID}

	suite.mockBills.On("FindTemplateByID", ctx, template.TemplateID).Return(template, nil).Once()
	suite.mockAccounts.On("FindActiveAccountByUserID", ctx, userID).Return(account, nil).Once()

	err := suite.service.DeleteTemplate(ctx, userID, template.TemplateID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockBills.AssertNotCalled(suite.T(), "DeleteTemplate", mock.Anything, mock.Anything)
}

func (suite *BillServiceTestSuite) TestDeleteTemplate_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	account := &domain.Account{AccountID: uuid.NewString(), UserID: userID}
	template := &domain.BillTemplate{TemplateID: uuid.NewString(), AccountID: account.AccountID}

	suite.mockBills.On("FindTemplateByID", ctx, template.TemplateID).Return(template, nil).Once()
	suite.mockAccounts.On("FindActiveAccountByUserID", ctx, userID).Return(account, nil).Once()
	suite.mockBills.On("DeleteTemplate", ctx, template.TemplateID).Return(nil).Once()

	err := suite.service.DeleteTemplate(ctx, userID, template.TemplateID)

	suite.Require().NoError(err)
	suite.mockBills.AssertExpectations(suite.T())
}

func TestBillServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BillServiceTestSuite))
}
