package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/quocbank/qbank_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool, accountRepo)
	billRepo := newPgxBillRepository(dbPool, accountRepo)
	savingsRepo := newPgxSavingsRepository(dbPool, accountRepo)
	scheduledRepo := newPgxScheduledTransferRepository(dbPool, accountRepo)
	notificationRepo := newPgxNotificationRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:      accountRepo,
		LedgerRepo:       ledgerRepo,
		BillRepo:         billRepo,
		SavingsRepo:      savingsRepo,
		ScheduledRepo:    scheduledRepo,
		NotificationRepo: notificationRepo,
		UserRepo:         userRepo,
	}
}
