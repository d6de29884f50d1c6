package repositories

// RepositoryProvider groups the repository implementations for injection
// into the service container.
type RepositoryProvider struct {
	AccountRepo      AccountRepositoryFacade
	LedgerRepo       LedgerRepository
	BillRepo         BillRepository
	SavingsRepo      SavingsRepository
	ScheduledRepo    ScheduledTransferRepository
	NotificationRepo NotificationRepository
	UserRepo         UserRepository
}
