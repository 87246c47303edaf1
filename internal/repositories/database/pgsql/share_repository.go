package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fairsplit/fairsplit/internal/apperrors"
	"github.com/fairsplit/fairsplit/internal/core/domain"
	portsrepo "github.com/fairsplit/fairsplit/internal/core/ports/repositories"
	"github.com/fairsplit/fairsplit/internal/models"
	"github.com/fairsplit/fairsplit/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxShareRepository struct {
	BaseRepository
}

func newPgxShareRepository(db *pgxpool.Pool) portsrepo.ShareRepositoryWithTx {
	return &PgxShareRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ShareRepositoryWithTx = (*PgxShareRepository)(nil)

const shareColumns = `share_id, expense_id, user_id, share_amount, share_percentage, status, created_at, created_by, last_updated_at, last_updated_by`

func scanShare(row pgx.Row) (models.Share, error) {
	var m models.Share
	err := row.Scan(
		&m.ShareID,
		&m.ExpenseID,
		&m.UserID,
		&m.Amount,
		&m.Percentage,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxShareRepository) FindShareByID(ctx context.Context, shareID string) (*domain.Share, error) {
	query := `SELECT ` + shareColumns + ` FROM shares WHERE share_id = $1;`
	m, err := scanShare(r.Pool.QueryRow(ctx, query, shareID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find share by ID %s: %w", shareID, err)
	}
	d := mapping.ToDomainShare(m)
	return &d, nil
}

func (r *PgxShareRepository) FindSharesByExpense(ctx context.Context, expenseID string) ([]domain.Share, error) {
	query := `SELECT ` + shareColumns + ` FROM shares WHERE expense_id = $1 ORDER BY created_at ASC;`
	return r.queryShares(ctx, query, expenseID)
}

func (r *PgxShareRepository) FindSharesByUser(ctx context.Context, userID string) ([]domain.Share, error) {
	query := `SELECT ` + shareColumns + ` FROM shares WHERE user_id = $1 ORDER BY created_at DESC;`
	return r.queryShares(ctx, query, userID)
}

func (r *PgxShareRepository) ListSharesByGroup(ctx context.Context, groupID string) ([]domain.Share, error) {
	query := `
		SELECT s.share_id, s.expense_id, s.user_id, s.share_amount, s.share_percentage, s.status,
			s.created_at, s.created_by, s.last_updated_at, s.last_updated_by
		FROM shares s
		JOIN expenses e ON e.expense_id = s.expense_id
		WHERE e.group_id = $1
		ORDER BY e.created_at ASC, s.created_at ASC;
	`
	return r.queryShares(ctx, query, groupID)
}

func (r *PgxShareRepository) queryShares(ctx context.Context, query string, args ...any) ([]domain.Share, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query shares: %w", err)
	}
	defer rows.Close()

	modelShares := []models.Share{}
	for rows.Next() {
		m, err := scanShare(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan share row: %w", err)
		}
		modelShares = append(modelShares, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating share rows: %w", rows.Err())
	}
	return mapping.ToDomainShareSlice(modelShares), nil
}

// ReplaceSplit discards the expense's existing shares and debts and inserts
// the replacements in one transaction. An empty replacement clears the split.
func (r *PgxShareRepository) ReplaceSplit(ctx context.Context, expenseID string, shares []domain.Share, debts []domain.Debt) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM debts WHERE expense_id = $1;`, expenseID); err != nil {
		return fmt.Errorf("failed to delete debts of expense %s: %w", expenseID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM shares WHERE expense_id = $1;`, expenseID); err != nil {
		return fmt.Errorf("failed to delete shares of expense %s: %w", expenseID, err)
	}

	batch := &pgx.Batch{}
	shareQuery := `
		INSERT INTO shares (` + shareColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	for _, sh := range shares {
		m := mapping.ToModelShare(sh)
		batch.Queue(shareQuery,
			m.ShareID, m.ExpenseID, m.UserID, m.Amount, m.Percentage, m.Status,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}
	debtQuery := `
		INSERT INTO debts (debt_id, expense_id, from_user_id, to_user_id, amount, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	for _, d := range debts {
		m := mapping.ToModelDebt(d)
		batch.Queue(debtQuery,
			m.DebtID, m.ExpenseID, m.FromUserID, m.ToUserID, m.Amount, m.Status,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}

	if batch.Len() > 0 {
		br := tx.SendBatch(ctx, batch)
		for i := 0; i < batch.Len(); i++ {
			if _, err := br.Exec(); err != nil {
				br.Close()
				return fmt.Errorf("failed to insert split rows for expense %s: %w", expenseID, err)
			}
		}
		if err := br.Close(); err != nil {
			return fmt.Errorf("failed to close split insert batch: %w", err)
		}
	}

	return r.Commit(ctx, tx)
}

// UpdateShareStatus flips a share between PAID and UNPAID and keeps the
// matching debts of (expense, user) in sync within the same transaction.
func (r *PgxShareRepository) UpdateShareStatus(ctx context.Context, shareID string, status domain.ShareStatus, updatedBy string) (*domain.Share, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	now := time.Now().UTC()

	updateQuery := `
		UPDATE shares
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE share_id = $4
		RETURNING ` + shareColumns + `;
	`
	m, err := scanShare(tx.QueryRow(ctx, updateQuery, models.ShareStatus(status), now, updatedBy, shareID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update status of share %s: %w", shareID, err)
	}

	debtStatus := models.DebtUnsettled
	if status == domain.SharePaid {
		debtStatus = models.DebtSettled
	}
	debtQuery := `
		UPDATE debts
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE expense_id = $4 AND from_user_id = $5;
	`
	if _, err := tx.Exec(ctx, debtQuery, debtStatus, now, updatedBy, m.ExpenseID, m.UserID); err != nil {
		return nil, fmt.Errorf("failed to sync debts for share %s: %w", shareID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	d := mapping.ToDomainShare(m)
	return &d, nil
}
