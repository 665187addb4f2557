package pgsql

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/edu_backoffice/internal/apperrors"
	"github.com/SscSPs/edu_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/edu_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/edu_backoffice/internal/models"
	"github.com/SscSPs/edu_backoffice/internal/utils/mapping"
	"github.com/SscSPs/edu_backoffice/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFinancialEntryRepository struct {
	BaseRepository
}

func newPgxFinancialEntryRepository(pool *pgxpool.Pool) *PgxFinancialEntryRepository {
	return &PgxFinancialEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.FinancialEntryRepositoryFacade = (*PgxFinancialEntryRepository)(nil)

const entryColumns = `entry_id, company_id, kind, description, amount, due_date, status, paid_at,
	category, tax_rate, is_recurring, recurrence_frequency, recurrence_end_date,
	source_debt_id, series_id, installment_number, installment_total,
	created_at, created_by, last_updated_at, last_updated_by`

const entrySelectQuery = `SELECT ` + entryColumns + ` FROM financial_entries`

const insertEntryQuery = `
	INSERT INTO financial_entries (` + entryColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
`

const updateEntryQuery = `
	UPDATE financial_entries
	SET description = $3, amount = $4, due_date = $5, status = $6, paid_at = $7,
	    category = $8, tax_rate = $9, last_updated_at = $10, last_updated_by = $11
	WHERE entry_id = $1 AND company_id = $2;
`

// queueEntryInsert adds the insert of one entry to batch. Shared with the
// debt repository so negotiation writes installments in its own transaction.
func queueEntryInsert(batch *pgx.Batch, e domain.FinancialEntry) {
	m := mapping.ToModelFinancialEntry(e)
	batch.Queue(insertEntryQuery,
		m.EntryID, m.CompanyID, m.Kind, m.Description, m.Amount, m.DueDate, m.Status, m.PaidAt,
		m.Category, m.TaxRate, m.IsRecurring, m.RecurrenceFrequency, m.RecurrenceEndDate,
		m.SourceDebtID, m.SeriesID, m.InstallmentNumber, m.InstallmentTotal,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
}

// execBatch sends batch on tx and returns the rows affected by each queued statement.
func execBatch(ctx context.Context, tx pgx.Tx, batch *pgx.Batch) ([]int64, error) {
	br := tx.SendBatch(ctx, batch)
	affected := make([]int64, 0, batch.Len())
	for i := 0; i < batch.Len(); i++ {
		tag, err := br.Exec()
		if err != nil {
			_ = br.Close()
			return nil, err
		}
		affected = append(affected, tag.RowsAffected())
	}
	if err := br.Close(); err != nil {
		return nil, err
	}
	return affected, nil
}

// SaveEntries inserts every entry in one batch inside one transaction.
func (r *PgxFinancialEntryRepository) SaveEntries(ctx context.Context, entries []domain.FinancialEntry) error {
	if len(entries) == 0 {
		return nil
	}
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, e := range entries {
		queueEntryInsert(batch, e)
	}
	if _, err := execBatch(ctx, tx, batch); err != nil {
		return translateWriteError(err, "failed to insert financial entries")
	}
	return r.Commit(ctx, tx)
}

// UpdateEntries rewrites the mutable columns of every entry atomically. A
// missing entry aborts the whole update with apperrors.ErrNotFound.
func (r *PgxFinancialEntryRepository) UpdateEntries(ctx context.Context, entries []domain.FinancialEntry) error {
	if len(entries) == 0 {
		return nil
	}
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, e := range entries {
		m := mapping.ToModelFinancialEntry(e)
		batch.Queue(updateEntryQuery,
			m.EntryID, m.CompanyID, m.Description, m.Amount, m.DueDate, m.Status, m.PaidAt,
			m.Category, m.TaxRate, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}
	affected, err := execBatch(ctx, tx, batch)
	if err != nil {
		return translateWriteError(err, "failed to update financial entries")
	}
	for _, n := range affected {
		if n != 1 {
			return apperrors.ErrNotFound
		}
	}
	return r.Commit(ctx, tx)
}

// DeleteEntries removes the given entries of a company in one transaction.
func (r *PgxFinancialEntryRepository) DeleteEntries(ctx context.Context, companyID string, entryIDs []string) (int64, error) {
	if len(entryIDs) == 0 {
		return 0, nil
	}
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, id := range entryIDs {
		batch.Queue(`DELETE FROM financial_entries WHERE company_id = $1 AND entry_id = $2;`, companyID, id)
	}
	affected, err := execBatch(ctx, tx, batch)
	if err != nil {
		return 0, apperrors.NewAppError(http.StatusInternalServerError, "failed to delete financial entries", err)
	}
	var total int64
	for _, n := range affected {
		total += n
	}
	if total == 0 {
		return 0, apperrors.ErrNotFound
	}
	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *PgxFinancialEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.FinancialEntry, error) {
	rows, err := r.Pool.Query(ctx, entrySelectQuery+` WHERE entry_id = $1`, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query financial entry "+entryID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.FinancialEntry])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan financial entry "+entryID, err)
	}
	e := mapping.ToDomainFinancialEntry(m)
	return &e, nil
}

func (r *PgxFinancialEntryRepository) queryEntries(ctx context.Context, query string, args ...any) ([]domain.FinancialEntry, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query financial entries", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.FinancialEntry])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect financial entry rows", err)
	}
	return mapping.ToDomainFinancialEntrySlice(ms), nil
}

func (r *PgxFinancialEntryRepository) FindEntriesBySeriesID(ctx context.Context, companyID, seriesID string) ([]domain.FinancialEntry, error) {
	return r.queryEntries(ctx,
		entrySelectQuery+` WHERE company_id = $1 AND series_id = $2 ORDER BY due_date ASC, entry_id ASC`,
		companyID, seriesID)
}

func (r *PgxFinancialEntryRepository) FindEntriesBySourceDebtID(ctx context.Context, companyID, debtID string) ([]domain.FinancialEntry, error) {
	return r.queryEntries(ctx,
		entrySelectQuery+` WHERE company_id = $1 AND source_debt_id = $2 ORDER BY due_date ASC, entry_id ASC`,
		companyID, debtID)
}

// filterClause renders the WHERE clause for a filter, starting from $1 = company id.
func filterClause(companyID string, filter domain.EntryFilter) (string, []any) {
	conds := []string{"company_id = $1"}
	args := []any{companyID}
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, strings.ReplaceAll(cond, "?", "$"+strconv.Itoa(len(args))))
	}
	if filter.Kind != nil {
		add("kind = ?", string(*filter.Kind))
	}
	if filter.Status != nil {
		add("status = ?", string(*filter.Status))
	}
	if filter.From != nil {
		add("due_date >= ?", *filter.From)
	}
	if filter.To != nil {
		add("due_date <= ?", *filter.To)
	}
	if filter.Category != nil {
		add("category = ?", *filter.Category)
	}
	if filter.SeriesID != nil {
		add("series_id = ?", *filter.SeriesID)
	}
	if filter.SourceDebtID != nil {
		add("source_debt_id = ?", *filter.SourceDebtID)
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// ListEntries uses keyset pagination over (due_date, created_at, entry_id).
func (r *PgxFinancialEntryRepository) ListEntries(ctx context.Context, companyID string, filter domain.EntryFilter, limit int, nextToken *string) ([]domain.FinancialEntry, *string, error) {
	if limit <= 0 {
		limit = 50
	}
	// One extra row tells whether there is a next page.
	fetchLimit := limit + 1

	where, args := filterClause(companyID, filter)
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(http.StatusBadRequest, "Token de paginação inválido", apperrors.ErrValidation)
		}
		n := len(args)
		where += " AND (due_date, created_at, entry_id) > ($" + strconv.Itoa(n+1) + ", $" + strconv.Itoa(n+2) + ", $" + strconv.Itoa(n+3) + ")"
		args = append(args, cursor.DueDate, cursor.CreatedAt, cursor.ID)
	}
	args = append(args, fetchLimit)
	query := entrySelectQuery + where + " ORDER BY due_date ASC, created_at ASC, entry_id ASC LIMIT $" + strconv.Itoa(len(args))

	entries, err := r.queryEntries(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}

	var next *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		token := pagination.EncodeToken(pagination.Cursor{DueDate: last.DueDate, CreatedAt: last.CreatedAt, ID: last.EntryID})
		next = &token
	}
	return entries, next, nil
}

func (r *PgxFinancialEntryRepository) SummarizeEntries(ctx context.Context, companyID string, from, to *time.Time, asOf time.Time) (*domain.EntrySummary, error) {
	where, args := filterClause(companyID, domain.EntryFilter{From: from, To: to})
	args = append(args, domain.DateOnly(asOf))
	asOfParam := "$" + strconv.Itoa(len(args))
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE kind = 'PAYABLE' AND status = 'PENDING'), 0)    AS payable_pending,
			COALESCE(SUM(amount) FILTER (WHERE kind = 'PAYABLE' AND status = 'PAID'), 0)       AS payable_paid,
			COALESCE(SUM(amount) FILTER (WHERE kind = 'RECEIVABLE' AND status = 'PENDING'), 0) AS receivable_pending,
			COALESCE(SUM(amount) FILTER (WHERE kind = 'RECEIVABLE' AND status = 'PAID'), 0)    AS receivable_paid,
			COUNT(*) FILTER (WHERE status = 'PENDING' AND due_date < ` + asOfParam + `)         AS overdue_count
		FROM financial_entries` + where

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to summarize financial entries", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.EntrySummary])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan entry summary", err)
	}
	s := mapping.ToDomainEntrySummary(m)
	return &s, nil
}
