package services

// ServiceContainer holds instances of all the application services.
// It is built once in main and handed to the handlers.
type ServiceContainer struct {
	Company CompanySvcFacade
	Entry   FinancialEntrySvcFacade
	Debt    DebtSvcFacade
	Contact ContactSvcFacade
	APIKey  APIKeySvcFacade
	Export  ExportSvc
}
