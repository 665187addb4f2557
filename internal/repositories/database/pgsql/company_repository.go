package pgsql

import (
	"context"
	"errors"
	"net/http"

	"github.com/SscSPs/edu_backoffice/internal/apperrors"
	"github.com/SscSPs/edu_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/edu_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/edu_backoffice/internal/models"
	"github.com/SscSPs/edu_backoffice/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCompanyRepository struct {
	BaseRepository
}

func newPgxCompanyRepository(pool *pgxpool.Pool) *PgxCompanyRepository {
	return &PgxCompanyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

const companySelectQuery = `
SELECT company_id, name, document, is_active,
       created_at, created_by, last_updated_at, last_updated_by
FROM companies
`

const memberColumns = `company_id, user_id, role, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company, creator domain.CompanyMember) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelCompany(company)
	query := `
		INSERT INTO companies (company_id, name, document, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, query,
		m.CompanyID, m.Name, m.Document, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "failed to save company "+m.CompanyID)
	}
	if err := insertMember(ctx, tx, creator); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func insertMember(ctx context.Context, q execer, member domain.CompanyMember) error {
	m := mapping.ToModelCompanyMember(member)
	query := `
		INSERT INTO company_members (` + memberColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (company_id, user_id)
		DO UPDATE SET role = EXCLUDED.role, last_updated_at = EXCLUDED.last_updated_at, last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := q.Exec(ctx, query,
		m.CompanyID, m.UserID, m.Role,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "failed to save member "+m.UserID+" of company "+m.CompanyID)
	}
	return nil
}

func (r *PgxCompanyRepository) SaveMember(ctx context.Context, member domain.CompanyMember) error {
	return insertMember(ctx, r.Pool, member)
}

func (r *PgxCompanyRepository) FindMember(ctx context.Context, companyID, userID string) (*domain.CompanyMember, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT `+memberColumns+` FROM company_members WHERE company_id = $1 AND user_id = $2`, companyID, userID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query member "+userID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.CompanyMember])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan member "+userID, err)
	}
	member := mapping.ToDomainCompanyMember(m)
	return &member, nil
}

func (r *PgxCompanyRepository) ListMembers(ctx context.Context, companyID string) ([]domain.CompanyMember, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT `+memberColumns+` FROM company_members WHERE company_id = $1 ORDER BY created_at ASC, user_id ASC`, companyID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query members of company "+companyID, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.CompanyMember])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect member rows", err)
	}
	return mapping.ToDomainCompanyMemberSlice(ms), nil
}

func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	rows, err := r.Pool.Query(ctx, companySelectQuery+" WHERE company_id = $1", companyID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query company "+companyID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Company])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan company "+companyID, err)
	}
	c := mapping.ToDomainCompany(m)
	return &c, nil
}

func (r *PgxCompanyRepository) ListCompaniesByUserID(ctx context.Context, userID string, limit, offset int) ([]domain.Company, error) {
	query := `
		SELECT c.company_id, c.name, c.document, c.is_active,
		       c.created_at, c.created_by, c.last_updated_at, c.last_updated_by
		FROM companies c
		JOIN company_members cm ON cm.company_id = c.company_id
		WHERE cm.user_id = $1
		ORDER BY c.name ASC, c.company_id ASC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.Pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query companies for user "+userID, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Company])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect company rows", err)
	}
	return mapping.ToDomainCompanySlice(ms), nil
}

func (r *PgxCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	m := mapping.ToModelCompany(company)
	query := `
		UPDATE companies
		SET name = $2, document = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6
		WHERE company_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.CompanyID, m.Name, m.Document, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return translateWriteError(err, "failed to update company "+m.CompanyID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
