package services

import (
	portsrepo "github.com/SscSPs/edu_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/edu_backoffice/internal/core/ports/services"
	"github.com/SscSPs/edu_backoffice/internal/platform/config"
	"github.com/SscSPs/edu_backoffice/internal/platform/lock"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, locker lock.Locker) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// every other service guards its company through this one
	container.Company = NewCompanyService(repos.CompanyRepo)
	guard := container.Company

	container.Entry = NewFinancialEntryService(
		repos.EntryRepo,
		guard,
		WithDebtRepository(repos.DebtRepo),
		WithHorizonYears(cfg.RecurrenceHorizonYears),
	)
	container.Debt = NewDebtService(repos.DebtRepo, guard, WithLocker(locker))
	container.Contact = NewContactService(repos.ContactRepo, guard, cfg.DefaultPhoneRegion)
	container.APIKey = NewAPIKeyService(repos.APIKeyRepo, guard)
	container.Export = NewExportService(repos.EntryRepo, guard)

	return container
}
