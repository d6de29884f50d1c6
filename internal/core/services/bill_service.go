package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/quocbank/qbank_backend/internal/apperrors"
	"github.com/quocbank/qbank_backend/internal/core/domain"
	portsrepo "github.com/quocbank/qbank_backend/internal/core/ports/repositories"
	portssvc "github.com/quocbank/qbank_backend/internal/core/ports/services"
	"github.com/quocbank/qbank_backend/internal/middleware"
	"github.com/quocbank/qbank_backend/internal/utils"
)

var (
	ErrBillOverLimit     = errors.New("amount exceeds the single bill payment limit")
	ErrCustomerCodeEmpty = errors.New("customer code is required")
)

// billService validates bill payments and manages providers and templates.
type billService struct {
	billRepo    portsrepo.BillRepository
	accountRepo portsrepo.AccountRepositoryFacade
	notifier    portssvc.NotificationDispatcherSvc
}

// NewBillService creates a new BillService.
func NewBillService(billRepo portsrepo.BillRepository, accountRepo portsrepo.AccountRepositoryFacade, notifier portssvc.NotificationDispatcherSvc) portssvc.BillSvcFacade {
	return &billService{
		billRepo:    billRepo,
		accountRepo: accountRepo,
		notifier:    notifier,
	}
}

var _ portssvc.BillSvcFacade = (*billService)(nil)

// ListProviders retrieves active providers, optionally filtered by category.
func (s *billService) ListProviders(ctx context.Context, category string) ([]domain.BillProvider, error) {
	return s.billRepo.ListProviders(ctx, category)
}

// PayBill validates and runs one bill payment, then notifies the payer.
func (s *billService) PayBill(ctx context.Context, cmd domain.BillPaymentCommand) (*domain.BillPaymentOutcome, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if cmd.Amount <= 0 {
		return nil, ErrAmountNotPositive
	}
	if cmd.Amount > domain.BillPaymentLimit {
		return nil, fmt.Errorf("%w: %d", ErrBillOverLimit, cmd.Amount)
	}
	if strings.TrimSpace(cmd.CustomerCode) == "" {
		return nil, ErrCustomerCodeEmpty
	}

	outcome, err := s.billRepo.ExecuteBillPayment(ctx, cmd, time.Now().UTC())
	if err != nil {
		logger.Warn("Bill payment failed", slog.String("error", err.Error()), slog.String("user_id", cmd.UserID), slog.String("provider_id", cmd.ProviderID))
		return nil, err
	}

	logger.Info("Bill payment completed",
		slog.String("payment_id", outcome.Payment.PaymentID),
		slog.String("provider_id", outcome.Provider.ProviderID),
		slog.Int64("amount", cmd.Amount))

	s.notifier.Dispatch(ctx, cmd.UserID, domain.NotifyBill,
		"Thanh toán hóa đơn thành công",
		fmt.Sprintf("Bạn đã thanh toán %s cho %s (mã %s)", utils.FormatVND(cmd.Amount), outcome.Provider.Name, cmd.CustomerCode))

	return outcome, nil
}

// ListPayments retrieves the caller's settled payments, newest first.
func (s *billService) ListPayments(ctx context.Context, userID string, limit int) ([]domain.BillPayment, error) {
	acc, err := s.accountRepo.FindActiveAccountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.billRepo.ListPaymentsByAccountID(ctx, acc.AccountID, limit)
}

// CreateTemplate saves a provider/customer pairing for reuse. Templates live
// in their own table and are never part of payment history or settlement.
func (s *billService) CreateTemplate(ctx context.Context, userID string, providerID string, customerCode string, templateName string) (*domain.BillTemplate, error) {
	if strings.TrimSpace(customerCode) == "" {
		return nil, ErrCustomerCodeEmpty
	}
	provider, err := s.billRepo.FindProviderByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	acc, err := s.accountRepo.FindActiveAccountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if templateName == "" {
		templateName = fmt.Sprintf("%s - %s", provider.Name, customerCode)
	}
	now := time.Now().UTC()
	template := domain.BillTemplate{
		TemplateID:   uuid.NewString(),
		AccountID:    acc.AccountID,
		ProviderID:   provider.ProviderID,
		CustomerCode: customerCode,
		Name:         templateName,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.billRepo.SaveTemplate(ctx, template); err != nil {
		return nil, err
	}
	return &template, nil
}

// ListTemplates retrieves the caller's saved templates.
func (s *billService) ListTemplates(ctx context.Context, userID string) ([]domain.BillTemplate, error) {
	acc, err := s.accountRepo.FindActiveAccountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.billRepo.ListTemplatesByAccountID(ctx, acc.AccountID)
}

// DeleteTemplate removes one of the caller's templates.
func (s *billService) DeleteTemplate(ctx context.Context, userID string, templateID string) error {
	template, err := s.billRepo.FindTemplateByID(ctx, templateID)
	if err != nil {
		return err
	}
	acc, err := s.accountRepo.FindActiveAccountByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if template.AccountID != acc.AccountID {
		return fmt.Errorf("%w: bill template %s", apperrors.ErrForbidden, templateID)
	}
	return s.billRepo.DeleteTemplate(ctx, templateID)
}
