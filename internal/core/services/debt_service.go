package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/edu_backoffice/internal/apperrors"
	"github.com/SscSPs/edu_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/edu_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/edu_backoffice/internal/core/ports/services"
	"github.com/SscSPs/edu_backoffice/internal/dto"
	"github.com/SscSPs/edu_backoffice/internal/platform/lock"
	"github.com/SscSPs/edu_backoffice/internal/utils/pagination"
	"github.com/SscSPs/edu_backoffice/internal/utils/schedule"
	"github.com/google/uuid"
)

const negotiationLockTTL = 30 * time.Second

type debtService struct {
	BaseService
	debtRepo portsrepo.DebtRepositoryFacade
	locker   lock.Locker
}

// DebtServiceOption is a functional option for configuring the debt service
type DebtServiceOption func(*debtService)

// WithLocker serializes negotiations of the same debt across instances.
func WithLocker(locker lock.Locker) DebtServiceOption {
	return func(s *debtService) {
		s.locker = locker
	}
}

// WithDebtClock overrides the time source.
func WithDebtClock(clock func() time.Time) DebtServiceOption {
	return func(s *debtService) {
		s.clock = clock
	}
}

func NewDebtService(debtRepo portsrepo.DebtRepositoryFacade, guard portssvc.CompanyGuardSvc, options ...DebtServiceOption) portssvc.DebtSvcFacade {
	svc := &debtService{
		BaseService: BaseService{CompanyGuard: guard},
		debtRepo:    debtRepo,
	}
	for _, option := range options {
		option(svc)
	}
	if svc.locker == nil {
		svc.locker = lock.NewLocalLocker()
	}
	return svc
}

var _ portssvc.DebtSvcFacade = (*debtService)(nil)

func (s *debtService) loadDebt(ctx context.Context, companyID, debtID string) (*domain.Debt, error) {
	debt, err := s.debtRepo.FindDebtByID(ctx, debtID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Dívida não encontrada")
		}
		s.LogError(ctx, err, "Failed to find debt", slog.String("debt_id", debtID))
		return nil, err
	}
	if debt.CompanyID != companyID {
		return nil, apperrors.NewNotFoundError("Dívida não encontrada")
	}
	return debt, nil
}

func (s *debtService) GetDebt(ctx context.Context, companyID, debtID, userID string) (*domain.Debt, error) {
	if err := s.AuthorizeCompany(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.loadDebt(ctx, companyID, debtID)
}

func (s *debtService) ListDebts(ctx context.Context, companyID string, params dto.ListDebtsParams, userID string) ([]domain.Debt, error) {
	if err := s.AuthorizeCompany(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	debts, err := s.debtRepo.ListDebts(ctx, companyID, pagination.ClampLimit(params.Limit, 20, 100), max(params.Offset, 0))
	if err != nil {
		s.LogError(ctx, err, "Failed to list debts", slog.String("company_id", companyID))
		return nil, err
	}
	if debts == nil {
		return []domain.Debt{}, nil
	}
	return debts, nil
}

func (s *debtService) CreateDebt(ctx context.Context, companyID string, req dto.CreateDebtRequest, userID string) (*domain.Debt, error) {
	if err := s.AuthorizeCompany(ctx, userID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}
	if !domain.IsCents(req.TotalAmount) {
		return nil, apperrors.NewValidationError(msgAmountPrecision)
	}

	installments := 1
	if req.IsInstallment {
		if req.TotalInstallments < 1 {
			return nil, apperrors.NewValidationError("Informe a quantidade de parcelas")
		}
		installments = req.TotalInstallments
	}

	debt := domain.Debt{
		DebtID:            uuid.NewString(),
		CompanyID:         companyID,
		Description:       strings.TrimSpace(req.Description),
		Creditor:          strings.TrimSpace(req.Creditor),
		TotalAmount:       req.TotalAmount,
		InterestRate:      req.InterestRate,
		IsInstallment:     req.IsInstallment,
		TotalInstallments: installments,
		Status:            domain.DebtActive,
	}
	debt.Stamp(s.Now(), userID)
	if err := debt.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.debtRepo.SaveDebt(ctx, debt); err != nil {
		s.LogError(ctx, err, "Failed to save debt", slog.String("debt_id", debt.DebtID))
		return nil, err
	}

	s.LogInfo(ctx, "Debt created", slog.String("debt_id", debt.DebtID), slog.String("company_id", companyID))
	return &debt, nil
}

// plan resolves the negotiation terms, falling back to the debt's own, and amortizes it.
func (s *debtService) plan(debt *domain.Debt, req dto.NegotiateDebtRequest) ([]schedule.Installment, int, error) {
	if req.FirstDueDate == nil || req.FirstDueDate.IsZero() {
		return nil, 0, apperrors.NewValidationError("A data da primeira parcela é obrigatória")
	}
	n := debt.TotalInstallments
	if req.Installments != nil {
		n = *req.Installments
	}
	rate := debt.InterestRate
	if req.InterestRate != nil {
		rate = *req.InterestRate
	}

	plan, err := schedule.Amortize(debt.TotalAmount, rate, n, domain.DateOnly(req.FirstDueDate.Time))
	if err != nil {
		return nil, 0, apperrors.NewValidationError(err.Error())
	}
	return plan, n, nil
}

func (s *debtService) PreviewNegotiation(ctx context.Context, companyID, debtID string, req dto.NegotiateDebtRequest, userID string) ([]schedule.Installment, error) {
	if err := s.AuthorizeCompany(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	debt, err := s.loadDebt(ctx, companyID, debtID)
	if err != nil {
		return nil, err
	}
	plan, _, err := s.plan(debt, req)
	return plan, err
}

func (s *debtService) NegotiateDebt(ctx context.Context, companyID, debtID string, req dto.NegotiateDebtRequest, userID string) (*domain.Debt, []domain.FinancialEntry, error) {
	if err := s.AuthorizeCompany(ctx, userID, companyID, domain.RoleMember); err != nil {
		return nil, nil, err
	}

	lk, err := s.locker.Obtain(ctx, "debt-negotiation:"+debtID, negotiationLockTTL)
	if err != nil {
		if errors.Is(err, lock.ErrNotObtained) {
			return nil, nil, apperrors.NewConflictError("Esta dívida já está sendo negociada")
		}
		s.LogError(ctx, err, "Failed to obtain negotiation lock", slog.String("debt_id", debtID))
		return nil, nil, err
	}
	defer func() {
		// release even when the request was canceled mid-negotiation
		if err := lk.Release(context.WithoutCancel(ctx)); err != nil {
			s.LogWarn(ctx, "Failed to release negotiation lock", slog.String("debt_id", debtID), slog.String("error", err.Error()))
		}
	}()

	debt, err := s.loadDebt(ctx, companyID, debtID)
	if err != nil {
		return nil, nil, err
	}
	if !debt.CanNegotiate() {
		return nil, nil, apperrors.NewConflictError("Esta dívida já foi negociada")
	}

	plan, n, err := s.plan(debt, req)
	if err != nil {
		return nil, nil, err
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = domain.DefaultDebtCategory
	}

	now := s.Now()
	seriesID := uuid.NewString()
	entries := make([]domain.FinancialEntry, len(plan))
	for i, inst := range plan {
		number, total := inst.Number, n
		sid, src := seriesID, debt.DebtID
		e := domain.FinancialEntry{
			EntryID:           uuid.NewString(),
			CompanyID:         companyID,
			Kind:              domain.Payable,
			Description:       installmentDescription(debt, number, total),
			Amount:            inst.Amount,
			DueDate:           inst.DueDate,
			Status:            domain.EntryPending,
			Category:          category,
			SourceDebtID:      &src,
			SeriesID:          &sid,
			InstallmentNumber: &number,
			InstallmentTotal:  &total,
		}
		e.Stamp(now, userID)
		entries[i] = e
	}

	negotiated := *debt
	negotiated.Status = domain.DebtNegotiated
	negotiated.NegotiatedAt = &now
	negotiated.TotalInstallments = n
	negotiated.IsInstallment = n > 1
	if req.InterestRate != nil {
		negotiated.InterestRate = *req.InterestRate
	}
	negotiated.Touch(now, userID)

	if err := s.debtRepo.SaveNegotiation(ctx, negotiated, entries); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to save negotiation", slog.String("debt_id", debtID))
		}
		return nil, nil, err
	}

	s.LogInfo(ctx, "Debt negotiated",
		slog.String("debt_id", debtID),
		slog.Int("installments", n),
		slog.String("series_id", seriesID))
	return &negotiated, entries, nil
}

func installmentDescription(debt *domain.Debt, number, total int) string {
	return fmt.Sprintf("%s (%s) - Parcela %d/%d", debt.Description, debt.Creditor, number, total)
}

func (s *debtService) DeleteDebt(ctx context.Context, companyID, debtID, userID string) (int64, error) {
	if err := s.AuthorizeCompany(ctx, userID, companyID, domain.RoleMember); err != nil {
		return 0, err
	}
	if _, err := s.loadDebt(ctx, companyID, debtID); err != nil {
		return 0, err
	}

	removed, err := s.debtRepo.DeleteDebtCascade(ctx, companyID, debtID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return 0, apperrors.NewNotFoundError("Dívida não encontrada")
		}
		s.LogError(ctx, err, "Failed to delete debt", slog.String("debt_id", debtID))
		return 0, err
	}

	s.LogInfo(ctx, "Debt deleted",
		slog.String("debt_id", debtID),
		slog.Int64("entries_removed", removed),
		slog.String("user_id", userID))
	return removed, nil
}
