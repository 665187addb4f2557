package pgsql

import (
	"context"
	"net/http"

	"github.com/SscSPs/edu_backoffice/internal/apperrors"
	"github.com/SscSPs/edu_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/edu_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/edu_backoffice/internal/models"
	"github.com/SscSPs/edu_backoffice/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxContactRepository struct {
	BaseRepository
}

func newPgxContactRepository(pool *pgxpool.Pool) *PgxContactRepository {
	return &PgxContactRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ContactRepositoryFacade = (*PgxContactRepository)(nil)

const contactColumns = `contact_id, company_id, name, email, phone, product_name, source, student_access_granted,
	created_at, created_by, last_updated_at, last_updated_by`

// UpsertContact keeps the original id, creation audit and source of an existing contact.
func (r *PgxContactRepository) UpsertContact(ctx context.Context, contact domain.Contact) (*domain.Contact, error) {
	m := mapping.ToModelContact(contact)
	query := `
		INSERT INTO contacts (` + contactColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (company_id, email) DO UPDATE SET
			name = EXCLUDED.name,
			phone = COALESCE(EXCLUDED.phone, contacts.phone),
			product_name = COALESCE(EXCLUDED.product_name, contacts.product_name),
			student_access_granted = contacts.student_access_granted OR EXCLUDED.student_access_granted,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by
		RETURNING ` + contactColumns + `;
	`
	rows, err := r.Pool.Query(ctx, query,
		m.ContactID, m.CompanyID, m.Name, m.Email, m.Phone, m.ProductName, m.Source, m.StudentAccessGranted,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return nil, translateWriteError(err, "failed to upsert contact "+m.Email)
	}
	stored, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Contact])
	if err != nil {
		return nil, translateWriteError(err, "failed to upsert contact "+m.Email)
	}
	c := mapping.ToDomainContact(stored)
	return &c, nil
}

func (r *PgxContactRepository) ListContacts(ctx context.Context, companyID string, limit, offset int) ([]domain.Contact, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE company_id = $1 ORDER BY created_at DESC, contact_id ASC LIMIT $2 OFFSET $3`,
		companyID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query contacts for company "+companyID, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Contact])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect contact rows", err)
	}
	return mapping.ToDomainContactSlice(ms), nil
}
