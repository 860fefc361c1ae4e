package pgsql

import (
	portsrepo "github.com/SscSPs/autoinvest_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:       &BaseRepository{Pool: dbPool},
		AccountRepo:     newPgxAccountRepository(dbPool),
		AssetRepo:       newPgxAssetRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
	}
}
