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
	"github.com/google/uuid"
)

type companyService struct {
	BaseService
	companyRepo portsrepo.CompanyRepositoryFacade
}

// CompanyServiceOption is a functional option for configuring the company service
type CompanyServiceOption func(*companyService)

// WithCompanyClock overrides the time source.
func WithCompanyClock(clock func() time.Time) CompanyServiceOption {
	return func(s *companyService) {
		s.clock = clock
	}
}

func NewCompanyService(companyRepo portsrepo.CompanyRepositoryFacade, options ...CompanyServiceOption) portssvc.CompanySvcFacade {
	svc := &companyService{companyRepo: companyRepo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

func (s *companyService) findCompany(ctx context.Context, companyID string) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Empresa não encontrada")
		}
		s.LogError(ctx, err, "Failed to find company", slog.String("company_id", companyID))
		return nil, err
	}
	return company, nil
}

// authorizeMember checks the role only; inactive companies stay reachable so
// an admin can read and reactivate them.
func (s *companyService) authorizeMember(ctx context.Context, userID, companyID string, required domain.MemberRole) error {
	member, err := s.companyRepo.FindMember(ctx, companyID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "User not a member of company",
				slog.String("user_id", userID),
				slog.String("company_id", companyID))
			return apperrors.NewForbiddenError("Você não tem acesso a esta empresa")
		}
		s.LogError(ctx, err, "Failed to find company member",
			slog.String("user_id", userID),
			slog.String("company_id", companyID))
		return err
	}
	if !member.Role.Allows(required) {
		s.LogDebug(ctx, "User does not have required role",
			slog.String("user_id", userID),
			slog.String("company_id", companyID),
			slog.String("user_role", string(member.Role)),
			slog.String("required_role", string(required)))
		return apperrors.NewForbiddenError("Permissão insuficiente para esta operação")
	}
	return nil
}

func (s *companyService) GetCompanyByID(ctx context.Context, companyID, userID string) (*domain.Company, error) {
	if err := s.authorizeMember(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.findCompany(ctx, companyID)
}

func (s *companyService) ListCompanies(ctx context.Context, params dto.ListCompaniesParams, userID string) ([]domain.Company, error) {
	limit := pagination.ClampLimit(params.Limit, 20, 100)
	offset := max(params.Offset, 0)
	companies, err := s.companyRepo.ListCompaniesByUserID(ctx, userID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list companies", slog.String("user_id", userID))
		return nil, err
	}
	if companies == nil {
		return []domain.Company{}, nil
	}
	return companies, nil
}

func (s *companyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, creatorUserID string) (*domain.Company, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("O nome da empresa é obrigatório")
	}

	now := s.Now()
	company := domain.Company{
		CompanyID: uuid.NewString(),
		Name:      name,
		Document:  strings.TrimSpace(req.Document),
		IsActive:  true,
	}
	company.Stamp(now, creatorUserID)
	admin := domain.CompanyMember{CompanyID: company.CompanyID, UserID: creatorUserID, Role: domain.RoleAdmin}
	admin.Stamp(now, creatorUserID)

	if err := s.companyRepo.SaveCompany(ctx, company, admin); err != nil {
		s.LogError(ctx, err, "Failed to save company", slog.String("company_id", company.CompanyID))
		return nil, err
	}

	s.LogInfo(ctx, "Company created",
		slog.String("company_id", company.CompanyID),
		slog.String("creator_id", creatorUserID))
	return &company, nil
}

func (s *companyService) UpdateCompany(ctx context.Context, companyID string, req dto.UpdateCompanyRequest, userID string) (*domain.Company, error) {
	if err := s.authorizeMember(ctx, userID, companyID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	company, err := s.findCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("O nome da empresa é obrigatório")
		}
		company.Name = name
	}
	if req.Document != nil {
		company.Document = strings.TrimSpace(*req.Document)
	}
	if req.IsActive != nil {
		company.IsActive = *req.IsActive
	}
	company.Touch(s.Now(), userID)

	if err := s.companyRepo.UpdateCompany(ctx, *company); err != nil {
		s.LogError(ctx, err, "Failed to update company", slog.String("company_id", companyID))
		return nil, err
	}
	return company, nil
}

func (s *companyService) ListMembers(ctx context.Context, companyID, userID string) ([]domain.CompanyMember, error) {
	if err := s.authorizeMember(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	members, err := s.companyRepo.ListMembers(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list members", slog.String("company_id", companyID))
		return nil, err
	}
	if members == nil {
		return []domain.CompanyMember{}, nil
	}
	return members, nil
}

func (s *companyService) AddMember(ctx context.Context, companyID string, req dto.AddMemberRequest, userID string) (*domain.CompanyMember, error) {
	if err := s.EnsureCompanyAccess(ctx, userID, companyID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	targetID := strings.TrimSpace(req.UserID)
	if targetID == "" {
		return nil, apperrors.NewValidationError("O usuário é obrigatório")
	}
	if !req.Role.Valid() {
		return nil, apperrors.NewValidationError("Papel inválido")
	}
	// an admin demoting itself could leave the company without admins
	if targetID == userID {
		return nil, apperrors.NewValidationError("Não é possível alterar o próprio papel")
	}

	member := domain.CompanyMember{CompanyID: companyID, UserID: targetID, Role: req.Role}
	member.Stamp(s.Now(), userID)
	if err := s.companyRepo.SaveMember(ctx, member); err != nil {
		s.LogError(ctx, err, "Failed to save member",
			slog.String("company_id", companyID),
			slog.String("target_user_id", targetID))
		return nil, err
	}

	s.LogInfo(ctx, "Member saved",
		slog.String("company_id", companyID),
		slog.String("target_user_id", targetID),
		slog.String("role", string(req.Role)))
	return &member, nil
}

func (s *companyService) EnsureActiveCompany(ctx context.Context, companyID string) error {
	company, err := s.findCompany(ctx, companyID)
	if err != nil {
		return err
	}
	if !company.IsActive {
		return apperrors.NewForbiddenError("Empresa inativa")
	}
	return nil
}

func (s *companyService) EnsureCompanyAccess(ctx context.Context, userID, companyID string, required domain.MemberRole) error {
	if err := s.authorizeMember(ctx, userID, companyID, required); err != nil {
		return err
	}
	return s.EnsureActiveCompany(ctx, companyID)
}
