package pgsql

import (
	"context"
	"errors"
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

type PgxDebtRepository struct {
	BaseRepository
}

func newPgxDebtRepository(pool *pgxpool.Pool) *PgxDebtRepository {
	return &PgxDebtRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DebtRepositoryFacade = (*PgxDebtRepository)(nil)

// paid_installments is derived, never stored.
const debtSelectQuery = `
SELECT d.debt_id, d.company_id, d.description, d.creditor, d.total_amount, d.interest_rate,
       d.is_installment, d.total_installments,
       (SELECT COUNT(*)::int4 FROM financial_entries fe
         WHERE fe.source_debt_id = d.debt_id AND fe.status = 'PAID') AS paid_installments,
       d.status, d.negotiated_at,
       d.created_at, d.created_by, d.last_updated_at, d.last_updated_by
FROM debts d
`

func (r *PgxDebtRepository) SaveDebt(ctx context.Context, debt domain.Debt) error {
	m := mapping.ToModelDebt(debt)
	query := `
		INSERT INTO debts (
			debt_id, company_id, description, creditor, total_amount, interest_rate,
			is_installment, total_installments, status, negotiated_at,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DebtID, m.CompanyID, m.Description, m.Creditor, m.TotalAmount, m.InterestRate,
		m.IsInstallment, m.TotalInstallments, m.Status, m.NegotiatedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "failed to save debt "+m.DebtID)
	}
	return nil
}

func (r *PgxDebtRepository) FindDebtByID(ctx context.Context, debtID string) (*domain.Debt, error) {
	rows, err := r.Pool.Query(ctx, debtSelectQuery+` WHERE d.debt_id = $1`, debtID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query debt "+debtID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Debt])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan debt "+debtID, err)
	}
	d := mapping.ToDomainDebt(m)
	return &d, nil
}

func (r *PgxDebtRepository) ListDebts(ctx context.Context, companyID string, limit, offset int) ([]domain.Debt, error) {
	rows, err := r.Pool.Query(ctx,
		debtSelectQuery+` WHERE d.company_id = $1 ORDER BY d.created_at DESC, d.debt_id ASC LIMIT $2 OFFSET $3`,
		companyID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query debts for company "+companyID, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Debt])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect debt rows", err)
	}
	return mapping.ToDomainDebtSlice(ms), nil
}

// SaveNegotiation flips the debt to negotiated only if it is still active, then
// inserts the installments, all in one transaction.
func (r *PgxDebtRepository) SaveNegotiation(ctx context.Context, debt domain.Debt, installments []domain.FinancialEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelDebt(debt)
	tag, err := tx.Exec(ctx, `
		UPDATE debts
		SET status = $3, negotiated_at = $4, total_installments = $5, interest_rate = $6,
		    last_updated_at = $7, last_updated_by = $8
		WHERE debt_id = $1 AND company_id = $2 AND status = 'ACTIVE';
	`, m.DebtID, m.CompanyID, m.Status, m.NegotiatedAt, m.TotalInstallments, m.InterestRate, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return translateWriteError(err, "failed to update debt "+m.DebtID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewConflictError("Esta dívida já foi negociada")
	}

	batch := &pgx.Batch{}
	for _, e := range installments {
		queueEntryInsert(batch, e)
	}
	if _, err := execBatch(ctx, tx, batch); err != nil {
		return translateWriteError(err, "failed to insert installments for debt "+m.DebtID)
	}
	return r.Commit(ctx, tx)
}

func (r *PgxDebtRepository) UpdateDebtStatus(ctx context.Context, debtID string, status domain.DebtStatus, userID string, at time.Time) error {
	tag, err := r.Pool.Exec(ctx,
		`UPDATE debts SET status = $2, last_updated_at = $3, last_updated_by = $4 WHERE debt_id = $1;`,
		debtID, string(status), at, userID)
	if err != nil {
		return translateWriteError(err, "failed to update status of debt "+debtID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteDebtCascade removes the linked entries first, then the debt.
func (r *PgxDebtRepository) DeleteDebtCascade(ctx context.Context, companyID, debtID string) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	batch.Queue(`DELETE FROM financial_entries WHERE company_id = $1 AND source_debt_id = $2;`, companyID, debtID)
	batch.Queue(`DELETE FROM debts WHERE company_id = $1 AND debt_id = $2;`, companyID, debtID)
	affected, err := execBatch(ctx, tx, batch)
	if err != nil {
		return 0, apperrors.NewAppError(http.StatusInternalServerError, "failed to delete debt "+debtID, err)
	}
	if affected[1] == 0 {
		return 0, apperrors.ErrNotFound
	}
	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return affected[0], nil
}
