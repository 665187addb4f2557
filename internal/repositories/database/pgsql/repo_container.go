package pgsql

import (
	portsrepo "github.com/SscSPs/edu_backoffice/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CompanyRepo: newPgxCompanyRepository(dbPool),
		EntryRepo:   newPgxFinancialEntryRepository(dbPool),
		DebtRepo:    newPgxDebtRepository(dbPool),
		ContactRepo: newPgxContactRepository(dbPool),
		APIKeyRepo:  newPgxAPIKeyRepository(dbPool),
	}
}
