package services

import (
	portsrepo "github.com/quocbank/qbank_backend/internal/core/ports/repositories"
	portssvc "github.com/quocbank/qbank_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Notification first: the money-moving services dispatch through it.
	container.Notification = NewNotificationService(repos.NotificationRepo)
	notifier := container.Notification.(portssvc.NotificationDispatcherSvc)

	container.Account = NewAccountService(repos.AccountRepo, repos.SavingsRepo, repos.UserRepo)
	container.Transfer = NewTransferService(repos.LedgerRepo, repos.AccountRepo, notifier)
	container.Bill = NewBillService(repos.BillRepo, repos.AccountRepo, notifier)
	container.Savings = NewSavingsService(repos.SavingsRepo, repos.AccountRepo, notifier)
	container.Scheduled = NewScheduledTransferService(repos.ScheduledRepo, repos.AccountRepo, repos.UserRepo, notifier)

	return container
}

// Compile time checks for the service implementations
var (
	_ portssvc.AccountSvcFacade           = (*accountService)(nil)
	_ portssvc.TransferSvcFacade          = (*transferService)(nil)
	_ portssvc.BillSvcFacade              = (*billService)(nil)
	_ portssvc.SavingsSvcFacade           = (*savingsService)(nil)
	_ portssvc.ScheduledTransferSvcFacade = (*scheduledTransferService)(nil)
	_ portssvc.NotificationSvcFacade      = (*notificationService)(nil)
)
