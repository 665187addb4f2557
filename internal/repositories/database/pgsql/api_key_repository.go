package pgsql

import (
	"context"
	"net/http"
	"time"

	"github.com/SscSPs/edu_backoffice/internal/apperrors"
	"github.com/SscSPs/edu_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/edu_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/edu_backoffice/internal/models"
	"github.com/SscSPs/edu_backoffice/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAPIKeyRepository struct {
	BaseRepository
}

func newPgxAPIKeyRepository(pool *pgxpool.Pool) *PgxAPIKeyRepository {
	return &PgxAPIKeyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.APIKeyRepository = (*PgxAPIKeyRepository)(nil)

const apiKeySelectQuery = `
SELECT key_id, company_id, name, key_prefix, key_hash, last_used_at, revoked_at, created_at, created_by
FROM company_api_keys
`

func (r *PgxAPIKeyRepository) SaveAPIKey(ctx context.Context, key domain.CompanyAPIKey) error {
	m := mapping.ToModelCompanyAPIKey(key)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO company_api_keys (key_id, company_id, name, key_prefix, key_hash, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`, m.KeyID, m.CompanyID, m.Name, m.KeyPrefix, m.KeyHash, m.CreatedAt, m.CreatedBy)
	if err != nil {
		return translateWriteError(err, "failed to save api key")
	}
	return nil
}

func (r *PgxAPIKeyRepository) collect(ctx context.Context, query string, args ...any) ([]domain.CompanyAPIKey, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query api keys", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.CompanyAPIKey])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect api key rows", err)
	}
	return mapping.ToDomainCompanyAPIKeySlice(ms), nil
}

func (r *PgxAPIKeyRepository) FindActiveAPIKeysByPrefix(ctx context.Context, prefix string) ([]domain.CompanyAPIKey, error) {
	return r.collect(ctx, apiKeySelectQuery+` WHERE key_prefix = $1 AND revoked_at IS NULL`, prefix)
}

func (r *PgxAPIKeyRepository) ListAPIKeys(ctx context.Context, companyID string) ([]domain.CompanyAPIKey, error) {
	return r.collect(ctx, apiKeySelectQuery+` WHERE company_id = $1 ORDER BY created_at DESC`, companyID)
}

func (r *PgxAPIKeyRepository) RevokeAPIKey(ctx context.Context, companyID, keyID string, at time.Time) error {
	tag, err := r.Pool.Exec(ctx,
		`UPDATE company_api_keys SET revoked_at = $3 WHERE company_id = $1 AND key_id = $2 AND revoked_at IS NULL;`,
		companyID, keyID, at)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to revoke api key "+keyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAPIKeyRepository) TouchAPIKey(ctx context.Context, keyID string, at time.Time) error {
	_, err := r.Pool.Exec(ctx, `UPDATE company_api_keys SET last_used_at = $2 WHERE key_id = $1;`, keyID, at)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to touch api key "+keyID, err)
	}
	return nil
}
