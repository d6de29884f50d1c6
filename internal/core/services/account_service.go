package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/quocbank/qbank_backend/internal/apperrors"
	"github.com/quocbank/qbank_backend/internal/core/domain"
	portsrepo "github.com/quocbank/qbank_backend/internal/core/ports/repositories"
	portssvc "github.com/quocbank/qbank_backend/internal/core/ports/services"
	"github.com/quocbank/qbank_backend/internal/middleware"
	"github.com/quocbank/qbank_backend/internal/utils"
)

// accountNumberRetries bounds regeneration attempts on a number collision.
const accountNumberRetries = 3

// accountService serves account reads and first-use provisioning.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	savingsRepo portsrepo.SavingsRepository
	userRepo    portsrepo.UserRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, savingsRepo portsrepo.SavingsRepository, userRepo portsrepo.UserRepository) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: accountRepo,
		savingsRepo: savingsRepo,
		userRepo:    userRepo,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// GetMyAccount retrieves the caller's payment account, provisioning one with
// a fresh 10-digit number on first use. Identities come from the external
// provider, so the first authenticated request is the creation point.
func (s *accountService) GetMyAccount(ctx context.Context, userID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	acc, err := s.accountRepo.FindActiveAccountByUserID(ctx, userID)
	if err == nil {
		return acc, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	// Verify the identity exists before provisioning.
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	for attempt := 0; attempt < accountNumberRetries; attempt++ {
		number, err := utils.GenerateAccountNumber()
		if err != nil {
			return nil, err
		}
		account := domain.Account{
			AccountID:     uuid.NewString(),
			UserID:        userID,
			AccountNumber: number,
			Balance:       0,
			AccountType:   domain.Payment,
			Status:        domain.AccountActive,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
		err = s.accountRepo.SaveAccount(ctx, account)
		if err == nil {
			logger.Info("Payment account provisioned", slog.String("account_id", account.AccountID), slog.String("user_id", userID))
			return &account, nil
		}
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Account number collision, regenerating", slog.String("account_number", number))
			continue
		}
		return nil, err
	}
	return nil, apperrors.NewAppError(500, "could not allocate a unique account number", apperrors.ErrInternal)
}

// GetAccountSummary retrieves the caller's account plus the aggregate balance
// of its open savings accounts.
func (s *accountService) GetAccountSummary(ctx context.Context, userID string) (*domain.AccountSummary, error) {
	acc, err := s.GetMyAccount(ctx, userID)
	if err != nil {
		return nil, err
	}
	total, err := s.savingsRepo.TotalActiveSavingsBalance(ctx, acc.AccountID)
	if err != nil {
		return nil, err
	}
	return &domain.AccountSummary{Account: *acc, TotalSavingsBalance: total}, nil
}

// LookupRecipient resolves a destination account number to its owner's
// display name for pre-transfer confirmation.
func (s *accountService) LookupRecipient(ctx context.Context, userID string, accountNumber string) (*domain.Recipient, error) {
	acc, err := s.accountRepo.FindActiveAccountByNumber(ctx, accountNumber)
	if err != nil {
		return nil, err
	}
	owner, err := s.userRepo.FindUserByID(ctx, acc.UserID)
	if err != nil {
		return nil, err
	}
	return &domain.Recipient{AccountNumber: acc.AccountNumber, FullName: owner.FullName}, nil
}
