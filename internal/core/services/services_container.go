package services

import (
	"github.com/SscSPs/autoinvest_app/internal/core/domain"
	portsrepo "github.com/SscSPs/autoinvest_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/autoinvest_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, catalog domain.Catalog, accrualWorkers int, options ...ServiceOption) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The ledger and the log are shared by every service that mutates a balance.
	container.Ledger = NewLedgerService(repos.AccountRepo, options...)
	container.TransactionLog = NewTransactionLogService(repos.TransactionRepo, options...)

	container.Asset = NewAssetService(
		repos.TxManager,
		repos.AssetRepo,
		container.Ledger,
		container.TransactionLog,
		catalog,
		accrualWorkers,
		options...,
	)
	container.Wallet = NewWalletService(
		repos.TxManager,
		repos.AccountRepo,
		repos.TransactionRepo,
		container.Ledger,
		container.TransactionLog,
		options...,
	)
	container.Account = NewAccountService(repos.AccountRepo, options...)

	return container
}
