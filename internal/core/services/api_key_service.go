package services

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/edu_backoffice/internal/apperrors"
	"github.com/SscSPs/edu_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/edu_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/edu_backoffice/internal/core/ports/services"
	"github.com/SscSPs/edu_backoffice/internal/dto"
	"github.com/SscSPs/edu_backoffice/internal/utils"
	"github.com/google/uuid"
)

type apiKeyService struct {
	BaseService
	keyRepo portsrepo.APIKeyRepository
}

func NewAPIKeyService(keyRepo portsrepo.APIKeyRepository, guard portssvc.CompanyGuardSvc) portssvc.APIKeySvcFacade {
	return &apiKeyService{
		BaseService: BaseService{CompanyGuard: guard},
		keyRepo:     keyRepo,
	}
}

var _ portssvc.APIKeySvcFacade = (*apiKeyService)(nil)

func errInvalidAPIKey() error {
	return apperrors.NewAppError(http.StatusUnauthorized, "Chave de API inválida", apperrors.ErrUnauthorized)
}

func (s *apiKeyService) IssueAPIKey(ctx context.Context, companyID string, req dto.CreateAPIKeyRequest, userID string) (*domain.CompanyAPIKey, string, error) {
	if err := s.AuthorizeCompany(ctx, userID, companyID, domain.RoleAdmin); err != nil {
		return nil, "", err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, "", apperrors.NewValidationError("O nome da chave é obrigatório")
	}

	generated, err := utils.GenerateAPIKey()
	if err != nil {
		s.LogError(ctx, err, "Failed to generate API key")
		return nil, "", err
	}

	key := domain.CompanyAPIKey{
		KeyID:     uuid.NewString(),
		CompanyID: companyID,
		Name:      name,
		KeyPrefix: generated.Prefix,
		KeyHash:   generated.Hash,
		CreatedAt: s.Now(),
		CreatedBy: userID,
	}
	if err := s.keyRepo.SaveAPIKey(ctx, key); err != nil {
		s.LogError(ctx, err, "Failed to save API key", slog.String("company_id", companyID))
		return nil, "", err
	}

	s.LogInfo(ctx, "API key issued", slog.String("company_id", companyID), slog.String("key_id", key.KeyID))
	return &key, generated.Plaintext, nil
}

func (s *apiKeyService) ListAPIKeys(ctx context.Context, companyID, userID string) ([]domain.CompanyAPIKey, error) {
	if err := s.AuthorizeCompany(ctx, userID, companyID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	keys, err := s.keyRepo.ListAPIKeys(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list API keys", slog.String("company_id", companyID))
		return nil, err
	}
	if keys == nil {
		return []domain.CompanyAPIKey{}, nil
	}
	return keys, nil
}

func (s *apiKeyService) RevokeAPIKey(ctx context.Context, companyID, keyID, userID string) error {
	if err := s.AuthorizeCompany(ctx, userID, companyID, domain.RoleAdmin); err != nil {
		return err
	}
	if err := s.keyRepo.RevokeAPIKey(ctx, companyID, keyID, s.Now()); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("Chave de API não encontrada")
		}
		s.LogError(ctx, err, "Failed to revoke API key", slog.String("key_id", keyID))
		return err
	}
	s.LogInfo(ctx, "API key revoked", slog.String("key_id", keyID), slog.String("user_id", userID))
	return nil
}

func (s *apiKeyService) ValidateAPIKey(ctx context.Context, plaintext string) (string, error) {
	prefix, ok := utils.APIKeyPrefix(plaintext)
	if !ok {
		return "", errInvalidAPIKey()
	}

	candidates, err := s.keyRepo.FindActiveAPIKeysByPrefix(ctx, prefix)
	if err != nil {
		s.LogError(ctx, err, "Failed to look up API keys")
		return "", err
	}

	for _, key := range candidates {
		if !utils.CheckAPIKey(plaintext, key.KeyHash) {
			continue
		}
		if err := s.EnsureCompany(ctx, key.CompanyID); err != nil {
			return "", err
		}
		if err := s.keyRepo.TouchAPIKey(ctx, key.KeyID, s.Now()); err != nil {
			s.LogWarn(ctx, "Failed to record API key usage", slog.String("key_id", key.KeyID), slog.String("error", err.Error()))
		}
		return key.CompanyID, nil
	}
	return "", errInvalidAPIKey()
}
