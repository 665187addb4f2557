package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/edu_backoffice/internal/apperrors"
	"github.com/SscSPs/edu_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/edu_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/edu_backoffice/internal/core/ports/services"
	"github.com/SscSPs/edu_backoffice/internal/dto"
	"github.com/SscSPs/edu_backoffice/internal/utils/pagination"
	"github.com/SscSPs/edu_backoffice/internal/utils/schedule"
	"github.com/google/uuid"
)

const (
	defaultEntryPageSize = 50
	maxEntryPageSize     = 200
)

type financialEntryService struct {
	BaseService
	entryRepo    portsrepo.FinancialEntryRepositoryFacade
	debtRepo     portsrepo.DebtRepositoryFacade
	horizonYears int
}

// EntryServiceOption is a functional option for configuring the entry service
type EntryServiceOption func(*financialEntryService)

// WithDebtRepository lets paying the last installment settle the debt.
func WithDebtRepository(repo portsrepo.DebtRepositoryFacade) EntryServiceOption {
	return func(s *financialEntryService) {
		s.debtRepo = repo
	}
}

// WithHorizonYears sets how far open-ended recurring series are generated.
func WithHorizonYears(years int) EntryServiceOption {
	return func(s *financialEntryService) {
		s.horizonYears = years
	}
}

// WithEntryClock overrides the time source.
func WithEntryClock(clock func() time.Time) EntryServiceOption {
	return func(s *financialEntryService) {
		s.clock = clock
	}
}

func NewFinancialEntryService(entryRepo portsrepo.FinancialEntryRepositoryFacade, guard portssvc.CompanyGuardSvc, options ...EntryServiceOption) portssvc.FinancialEntrySvcFacade {
	svc := &financialEntryService{
		BaseService:  BaseService{CompanyGuard: guard},
		entryRepo:    entryRepo,
		horizonYears: schedule.DefaultHorizonYears,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.FinancialEntrySvcFacade = (*financialEntryService)(nil)

// loadEntry fetches an entry and hides entries of other companies.
func (s *financialEntryService) loadEntry(ctx context.Context, companyID, entryID string) (*domain.FinancialEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Lançamento não encontrado")
		}
		s.LogError(ctx, err, "Failed to find entry", slog.String("entry_id", entryID))
		return nil, err
	}
	if entry.CompanyID != companyID {
		s.LogWarn(ctx, "Entry requested through another company",
			slog.String("entry_id", entryID),
			slog.String("company_id", companyID))
		return nil, apperrors.NewNotFoundError("Lançamento não encontrado")
	}
	return entry, nil
}

// resolve loads the entries an operation with scope applies to.
func (s *financialEntryService) resolve(ctx context.Context, target *domain.FinancialEntry, scope domain.UpdateScope) ([]domain.FinancialEntry, error) {
	if scope != domain.ScopeFuture || target.SeriesID == nil {
		return []domain.FinancialEntry{*target}, nil
	}
	series, err := s.entryRepo.FindEntriesBySeriesID(ctx, target.CompanyID, *target.SeriesID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load series", slog.String("series_id", *target.SeriesID))
		return nil, err
	}
	return schedule.ResolveScope(*target, series, scope), nil
}

func (s *financialEntryService) GetEntry(ctx context.Context, companyID, entryID, userID string) (*domain.FinancialEntry, error) {
	if err := s.AuthorizeCompany(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.loadEntry(ctx, companyID, entryID)
}

func (s *financialEntryService) ListEntries(ctx context.Context, companyID string, params dto.ListEntriesParams, userID string) (*dto.ListEntriesResponse, error) {
	if err := s.AuthorizeCompany(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	filter, err := params.ToFilter()
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, apperrors.NewValidationError("A data inicial deve ser anterior à data final")
	}

	limit := pagination.ClampLimit(params.Limit, defaultEntryPageSize, maxEntryPageSize)
	entries, next, err := s.entryRepo.ListEntries(ctx, companyID, filter, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries", slog.String("company_id", companyID))
		return nil, err
	}
	return &dto.ListEntriesResponse{Entries: dto.ToEntryResponses(entries), NextToken: next}, nil
}

func (s *financialEntryService) GetSummary(ctx context.Context, companyID string, params dto.SummaryParams, userID string) (*dto.SummaryResponse, error) {
	if err := s.AuthorizeCompany(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	from, err := dto.ParseOptionalDate(params.From)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	to, err := dto.ParseOptionalDate(params.To)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, apperrors.NewValidationError("A data inicial deve ser anterior à data final")
	}

	summary, err := s.entryRepo.SummarizeEntries(ctx, companyID, from, to, domain.DateOnly(s.Now()))
	if err != nil {
		s.LogError(ctx, err, "Failed to summarize entries", slog.String("company_id", companyID))
		return nil, err
	}
	resp := dto.ToSummaryResponse(summary, from, to)
	return &resp, nil
}

func (s *financialEntryService) CreateEntries(ctx context.Context, companyID string, req dto.CreateEntryRequest, userID string) ([]domain.FinancialEntry, error) {
	if err := s.AuthorizeCompany(ctx, userID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("O valor deve ser maior que zero")
	}
	if !domain.IsCents(req.Amount) {
		return nil, apperrors.NewValidationError(msgAmountPrecision)
	}
	if !req.Kind.Valid() {
		return nil, apperrors.NewValidationError("Tipo de lançamento inválido")
	}
	if req.DueDate == nil || req.DueDate.IsZero() {
		return nil, apperrors.NewValidationError("A data de vencimento é obrigatória")
	}
	if req.TaxRate != nil && req.TaxRate.IsNegative() {
		return nil, apperrors.NewValidationError("A alíquota não pode ser negativa")
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, apperrors.NewValidationError("A descrição é obrigatória")
	}

	now := s.Now()
	template := domain.FinancialEntry{
		CompanyID:   companyID,
		Kind:        req.Kind,
		Description: description,
		Amount:      req.Amount,
		DueDate:     domain.DateOnly(req.DueDate.Time),
		Status:      domain.EntryPending,
		Category:    strings.TrimSpace(req.Category),
		TaxRate:     req.TaxRate,
	}
	template.Stamp(now, userID)

	var entries []domain.FinancialEntry
	if req.IsRecurring {
		if req.Recurrence == nil || !req.Recurrence.Frequency.Valid() {
			return nil, apperrors.NewValidationError("Lançamentos recorrentes exigem uma frequência válida")
		}
		series, err := s.buildSeries(template, req.Recurrence)
		if err != nil {
			return nil, err
		}
		entries = series
	} else {
		template.EntryID = uuid.NewString()
		entries = []domain.FinancialEntry{template}
	}

	for i := range entries {
		if err := entries[i].Validate(); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	if err := s.entryRepo.SaveEntries(ctx, entries); err != nil {
		s.LogError(ctx, err, "Failed to save entries",
			slog.String("company_id", companyID),
			slog.Int("count", len(entries)))
		return nil, err
	}

	s.LogInfo(ctx, "Entries created",
		slog.String("company_id", companyID),
		slog.Int("count", len(entries)),
		slog.Bool("recurring", req.IsRecurring))
	return entries, nil
}

// buildSeries expands a recurring template into one entry per due date, all
// sharing a fresh series id.
func (s *financialEntryService) buildSeries(template domain.FinancialEntry, rec *dto.RecurrenceRequest) ([]domain.FinancialEntry, error) {
	var end *time.Time
	if rec.EndDate != nil && !rec.EndDate.IsZero() {
		e := domain.DateOnly(rec.EndDate.Time)
		end = &e
	}

	occurrences, err := schedule.GenerateSeries(template.Amount, template.DueDate, rec.Frequency, end, s.horizonYears)
	if err != nil {
		if errors.Is(err, schedule.ErrTooManyOccurrences) {
			return nil, apperrors.NewValidationError("A recorrência gera lançamentos demais; reduza o período")
		}
		return nil, apperrors.NewValidationError(err.Error())
	}

	seriesID := uuid.NewString()
	recurrence := domain.Recurrence{Frequency: rec.Frequency, EndDate: end}
	entries := make([]domain.FinancialEntry, len(occurrences))
	for i, occ := range occurrences {
		e := template
		e.EntryID = uuid.NewString()
		e.Amount = occ.Amount
		e.DueDate = occ.DueDate
		e.IsRecurring = true
		r := recurrence
		e.Recurrence = &r
		sid := seriesID
		e.SeriesID = &sid
		entries[i] = e
	}
	return entries, nil
}

func (s *financialEntryService) UpdateEntry(ctx context.Context, companyID, entryID string, scope domain.UpdateScope, req dto.UpdateEntryRequest, userID string) ([]domain.FinancialEntry, error) {
	if err := s.AuthorizeCompany(ctx, userID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}
	if req.IsEmpty() {
		return nil, apperrors.NewValidationError("Nenhum campo informado para atualização")
	}
	if req.Amount != nil && !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("O valor deve ser maior que zero")
	}
	if req.Amount != nil && !domain.IsCents(*req.Amount) {
		return nil, apperrors.NewValidationError(msgAmountPrecision)
	}
	if req.TaxRate != nil && req.TaxRate.IsNegative() {
		return nil, apperrors.NewValidationError("A alíquota não pode ser negativa")
	}
	if req.Description != nil && strings.TrimSpace(*req.Description) == "" {
		return nil, apperrors.NewValidationError("A descrição é obrigatória")
	}

	target, err := s.loadEntry(ctx, companyID, entryID)
	if err != nil {
		return nil, err
	}
	if scope == domain.ScopeSingle && target.IsPaid() && (req.Amount != nil || req.DueDate != nil) {
		return nil, apperrors.NewValidationError("Não é possível alterar valor ou vencimento de um lançamento pago")
	}

	resolved, err := s.resolve(ctx, target, scope)
	if err != nil {
		return nil, err
	}

	// a due date edit moves every pending entry in scope by the same number of days
	var shift time.Duration
	if req.DueDate != nil {
		shift = domain.DateOnly(req.DueDate.Time).Sub(target.DueDate)
	}

	now := s.Now()
	for i := range resolved {
		e := &resolved[i]
		if req.Description != nil {
			e.Description = strings.TrimSpace(*req.Description)
		}
		if req.Category != nil {
			e.Category = strings.TrimSpace(*req.Category)
		}
		if req.TaxRate != nil {
			rate := *req.TaxRate
			e.TaxRate = &rate
		}
		if !e.IsPaid() {
			if req.Amount != nil {
				e.Amount = *req.Amount
			}
			if req.DueDate != nil {
				e.DueDate = domain.DateOnly(e.DueDate.Add(shift))
			}
		}
		e.Touch(now, userID)
		if err := e.Validate(); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	if err := s.entryRepo.UpdateEntries(ctx, resolved); err != nil {
		s.LogError(ctx, err, "Failed to update entries",
			slog.String("entry_id", entryID),
			slog.String("scope", string(scope)))
		return nil, err
	}

	s.LogInfo(ctx, "Entries updated",
		slog.String("entry_id", entryID),
		slog.String("scope", string(scope)),
		slog.Int("count", len(resolved)))
	return resolved, nil
}

func (s *financialEntryService) MarkEntryPaid(ctx context.Context, companyID, entryID, userID string) (*domain.FinancialEntry, error) {
	if err := s.AuthorizeCompany(ctx, userID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}
	entry, err := s.loadEntry(ctx, companyID, entryID)
	if err != nil {
		return nil, err
	}

	if !entry.MarkPaid(s.Now(), userID) {
		s.LogDebug(ctx, "Entry already paid", slog.String("entry_id", entryID))
		return entry, nil
	}

	if err := s.entryRepo.UpdateEntries(ctx, []domain.FinancialEntry{*entry}); err != nil {
		s.LogError(ctx, err, "Failed to mark entry paid", slog.String("entry_id", entryID))
		return nil, err
	}

	if entry.SourceDebtID != nil {
		s.settleDebtIfComplete(ctx, companyID, *entry.SourceDebtID, userID)
	}
	return entry, nil
}

// settleDebtIfComplete moves a debt to paid once every linked entry is paid.
// Failures are logged only; the payment itself already succeeded.
func (s *financialEntryService) settleDebtIfComplete(ctx context.Context, companyID, debtID, userID string) {
	if s.debtRepo == nil {
		return
	}
	linked, err := s.entryRepo.FindEntriesBySourceDebtID(ctx, companyID, debtID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load debt installments", slog.String("debt_id", debtID))
		return
	}
	if len(linked) == 0 {
		return
	}
	for i := range linked {
		if !linked[i].IsPaid() {
			return
		}
	}

	debt, err := s.debtRepo.FindDebtByID(ctx, debtID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load debt", slog.String("debt_id", debtID))
		return
	}
	if debt.Status == domain.DebtPaid {
		return
	}
	if err := s.debtRepo.UpdateDebtStatus(ctx, debtID, domain.DebtPaid, userID, s.Now()); err != nil {
		s.LogError(ctx, err, "Failed to mark debt paid", slog.String("debt_id", debtID))
		return
	}
	s.LogInfo(ctx, "Debt settled", slog.String("debt_id", debtID))
}

func (s *financialEntryService) DeleteEntry(ctx context.Context, companyID, entryID string, scope domain.UpdateScope, userID string) ([]string, error) {
	if err := s.AuthorizeCompany(ctx, userID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}
	target, err := s.loadEntry(ctx, companyID, entryID)
	if err != nil {
		return nil, err
	}
	resolved, err := s.resolve(ctx, target, scope)
	if err != nil {
		return nil, err
	}

	ids := schedule.EntryIDs(resolved)
	if _, err := s.entryRepo.DeleteEntries(ctx, companyID, ids); err != nil {
		s.LogError(ctx, err, "Failed to delete entries",
			slog.String("entry_id", entryID),
			slog.String("scope", string(scope)))
		return nil, err
	}

	s.LogInfo(ctx, "Entries deleted",
		slog.String("entry_id", entryID),
		slog.String("scope", string(scope)),
		slog.Int("count", len(ids)),
		slog.String("user_id", userID))
	return ids, nil
}
