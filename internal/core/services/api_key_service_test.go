package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/SscSPs/edu_backoffice/internal/apperrors"
	"github.com/SscSPs/edu_backoffice/internal/core/domain"
	"github.com/SscSPs/edu_backoffice/internal/core/services"
	"github.com/SscSPs/edu_backoffice/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAPIKeyService_IssueThenValidate(t *testing.T) {
	repo := new(MockAPIKeyRepository)
	guard := new(MockCompanyGuard)
	guard.On("EnsureActiveCompany", mock.Anything, "c1").Return(nil)
	guard.On("EnsureCompanyAccess", mock.Anything, "u1", "c1", domain.RoleAdmin).Return(nil)
	svc := services.NewAPIKeyService(repo, guard)
	ctx := context.Background()

	var stored domain.CompanyAPIKey
	repo.On("SaveAPIKey", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(domain.CompanyAPIKey)
	}).Return(nil).Once()

	key, plaintext, err := svc.IssueAPIKey(ctx, "c1", dto.CreateAPIKeyRequest{Name: "checkout"}, "u1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(plaintext, "bo_"+key.KeyPrefix+"_"))
	assert.NotContains(t, stored.KeyHash, plaintext)

	repo.On("FindActiveAPIKeysByPrefix", mock.Anything, key.KeyPrefix).Return([]domain.CompanyAPIKey{stored}, nil)
	repo.On("TouchAPIKey", mock.Anything, stored.KeyID, mock.Anything).Return(nil).Once()

	companyID, err := svc.ValidateAPIKey(ctx, plaintext)
	require.NoError(t, err)
	assert.Equal(t, "c1", companyID)

	_, err = svc.ValidateAPIKey(ctx, "bo_"+key.KeyPrefix+"_wrongsecret")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAPIKeyService_ValidateRejectsMalformedAndUnknown(t *testing.T) {
	repo := new(MockAPIKeyRepository)
	svc := services.NewAPIKeyService(repo, new(MockCompanyGuard))
	ctx := context.Background()

	_, err := svc.ValidateAPIKey(ctx, "not-a-key")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	repo.AssertNotCalled(t, "FindActiveAPIKeysByPrefix", mock.Anything, mock.Anything)

	repo.On("FindActiveAPIKeysByPrefix", mock.Anything, "0011aabb").Return(nil, nil).Once()
	_, err = svc.ValidateAPIKey(ctx, "bo_0011aabb_deadbeef")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAPIKeyService_RevokeUnknownIsNotFound(t *testing.T) {
	repo := new(MockAPIKeyRepository)
	guard := new(MockCompanyGuard)
	guard.On("EnsureCompanyAccess", mock.Anything, "u1", "c1", domain.RoleAdmin).Return(nil)
	svc := services.NewAPIKeyService(repo, guard)
	repo.On("RevokeAPIKey", mock.Anything, "c1", "k1", mock.Anything).Return(apperrors.ErrNotFound).Once()

	err := svc.RevokeAPIKey(context.Background(), "c1", "k1", "u1")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAPIKeyService_IssueRequiresAdmin(t *testing.T) {
	repo := new(MockAPIKeyRepository)
	guard := new(MockCompanyGuard)
	guard.On("EnsureCompanyAccess", mock.Anything, "clerk", "c1", domain.RoleAdmin).
		Return(apperrors.NewForbiddenError("Permissão insuficiente para esta operação")).Once()
	svc := services.NewAPIKeyService(repo, guard)

	_, _, err := svc.IssueAPIKey(context.Background(), "c1", dto.CreateAPIKeyRequest{Name: "checkout"}, "clerk")

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	repo.AssertNotCalled(t, "SaveAPIKey", mock.Anything, mock.Anything)
}
