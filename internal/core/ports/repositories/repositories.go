package repositories

// RepositoryProvider holds all repository interfaces needed by services.
type RepositoryProvider struct {
	CompanyRepo CompanyRepositoryFacade
	EntryRepo   FinancialEntryRepositoryFacade
	DebtRepo    DebtRepositoryFacade
	ContactRepo ContactRepositoryFacade
	APIKeyRepo  APIKeyRepository
}
