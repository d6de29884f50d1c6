package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/quocbank/qbank_backend/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// Shared repository mocks for the service tests in this package.

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindActiveAccountByUserID(ctx context.Context, userID string) (*domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindActiveAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, tx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) AdjustBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, delta int64, userID string, now time.Time) error {
	args := m.Called(ctx, tx, accountID, delta, userID, now)
	return args.Error(0)
}

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) ExecuteTransfer(ctx context.Context, cmd domain.TransferCommand, now time.Time) (*domain.TransferOutcome, error) {
	args := m.Called(ctx, cmd, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransferOutcome), args.Error(1)
}

func (m *MockLedgerRepository) ListTransactionsByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, accountID, limit, nextToken)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return txns, token, args.Error(2)
}

// --- Mock BillRepository ---
type MockBillRepository struct {
	mock.Mock
}

func (m *MockBillRepository) ListProviders(ctx context.Context, category string) ([]domain.BillProvider, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BillProvider), args.Error(1)
}

func (m *MockBillRepository) FindProviderByID(ctx context.Context, providerID string) (*domain.BillProvider, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BillProvider), args.Error(1)
}

func (m *MockBillRepository) ExecuteBillPayment(ctx context.Context, cmd domain.BillPaymentCommand, now time.Time) (*domain.BillPaymentOutcome, error) {
	args := m.Called(ctx, cmd, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BillPaymentOutcome), args.Error(1)
}

func (m *MockBillRepository) ListPaymentsByAccountID(ctx context.Context, accountID string, limit int) ([]domain.BillPayment, error) {
	args := m.Called(ctx, accountID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BillPayment), args.Error(1)
}

func (m *MockBillRepository) SaveTemplate(ctx context.Context, template domain.BillTemplate) error {
	args := m.Called(ctx, template)
	return args.Error(0)
}

func (m *MockBillRepository) ListTemplatesByAccountID(ctx context.Context, accountID string) ([]domain.BillTemplate, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BillTemplate), args.Error(1)
}

func (m *MockBillRepository) FindTemplateByID(ctx context.Context, templateID string) (*domain.BillTemplate, error) {
	args := m.Called(ctx, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BillTemplate), args.Error(1)
}

func (m *MockBillRepository) DeleteTemplate(ctx context.Context, templateID string) error {
	args := m.Called(ctx, templateID)
	return args.Error(0)
}

// --- Mock SavingsRepository ---
type MockSavingsRepository struct {
	mock.Mock
}

func (m *MockSavingsRepository) OpenSavingsAccount(ctx context.Context, cmd domain.OpenSavingsCommand, now time.Time) (*domain.SavingsAccount, error) {
	args := m.Called(ctx, cmd, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavingsAccount), args.Error(1)
}

func (m *MockSavingsRepository) WithdrawFromSavings(ctx context.Context, cmd domain.SavingsWithdrawalCommand, now time.Time) (*domain.SavingsWithdrawalOutcome, error) {
	args := m.Called(ctx, cmd, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavingsWithdrawalOutcome), args.Error(1)
}

func (m *MockSavingsRepository) FindSavingsByID(ctx context.Context, savingsID string) (*domain.SavingsAccount, error) {
	args := m.Called(ctx, savingsID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavingsAccount), args.Error(1)
}

func (m *MockSavingsRepository) ListSavingsByAccountID(ctx context.Context, accountID string) ([]domain.SavingsAccount, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SavingsAccount), args.Error(1)
}

func (m *MockSavingsRepository) TotalActiveSavingsBalance(ctx context.Context, accountID string) (int64, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock ScheduledTransferRepository ---
type MockScheduledTransferRepository struct {
	mock.Mock
}

func (m *MockScheduledTransferRepository) SaveScheduledTransfer(ctx context.Context, st domain.ScheduledTransfer) error {
	args := m.Called(ctx, st)
	return args.Error(0)
}

func (m *MockScheduledTransferRepository) FindScheduleByID(ctx context.Context, scheduleID string) (*domain.ScheduledTransfer, error) {
	args := m.Called(ctx, scheduleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScheduledTransfer), args.Error(1)
}

func (m *MockScheduledTransferRepository) ListSchedulesByAccountID(ctx context.Context, accountID string) ([]domain.ScheduledTransfer, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScheduledTransfer), args.Error(1)
}

func (m *MockScheduledTransferRepository) UpdateScheduleStatus(ctx context.Context, scheduleID string, from, to domain.ScheduleStatus, userID string, now time.Time) error {
	args := m.Called(ctx, scheduleID, from, to, userID, now)
	return args.Error(0)
}

func (m *MockScheduledTransferRepository) ListDueSchedules(ctx context.Context, now time.Time) ([]domain.DueSchedule, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DueSchedule), args.Error(1)
}

func (m *MockScheduledTransferRepository) ExecuteDueTransfer(ctx context.Context, scheduleID string, now time.Time) (*domain.ScheduledRunOutcome, error) {
	args := m.Called(ctx, scheduleID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScheduledRunOutcome), args.Error(1)
}

// --- Mock NotificationRepository ---
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) SaveNotification(ctx context.Context, n domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) ListNotificationsByUserID(ctx context.Context, userID string, limit int, unreadOnly bool) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, limit, unreadOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) CountUnreadByUserID(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationRepository) FindNotificationByID(ctx context.Context, notificationID string) (*domain.Notification, error) {
	args := m.Called(ctx, notificationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkNotificationRead(ctx context.Context, notificationID string) error {
	args := m.Called(ctx, notificationID)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockNotificationRepository) DeleteNotification(ctx context.Context, notificationID string) error {
	args := m.Called(ctx, notificationID)
	return args.Error(0)
}

func (m *MockNotificationRepository) DeleteAllRead(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock NotificationDispatcher ---
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Dispatch(ctx context.Context, userID string, nType domain.NotificationType, title string, message string) {
	m.Called(ctx, userID, nType, title, message)
}
