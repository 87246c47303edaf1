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

type PgxDebtRepository struct {
	db *pgxpool.Pool
}

func newPgxDebtRepository(db *pgxpool.Pool) portsrepo.DebtRepositoryFacade {
	return &PgxDebtRepository{db: db}
}

var _ portsrepo.DebtRepositoryFacade = (*PgxDebtRepository)(nil)

const debtColumns = `debt_id, expense_id, from_user_id, to_user_id, amount, status, created_at, created_by, last_updated_at, last_updated_by`

func scanDebt(row pgx.Row) (models.Debt, error) {
	var m models.Debt
	err := row.Scan(
		&m.DebtID,
		&m.ExpenseID,
		&m.FromUserID,
		&m.ToUserID,
		&m.Amount,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxDebtRepository) FindDebtByID(ctx context.Context, debtID string) (*domain.Debt, error) {
	query := `SELECT ` + debtColumns + ` FROM debts WHERE debt_id = $1;`
	m, err := scanDebt(r.db.QueryRow(ctx, query, debtID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find debt by ID %s: %w", debtID, err)
	}
	d := mapping.ToDomainDebt(m)
	return &d, nil
}

// FindUnsettledBetween orders by the originating expense's creation time.
// Settlement walks this list head-first, so the order is part of the contract.
func (r *PgxDebtRepository) FindUnsettledBetween(ctx context.Context, fromUserID, toUserID, groupID string) ([]domain.Debt, error) {
	query := `
		SELECT d.debt_id, d.expense_id, d.from_user_id, d.to_user_id, d.amount, d.status,
			d.created_at, d.created_by, d.last_updated_at, d.last_updated_by
		FROM debts d
		JOIN expenses e ON e.expense_id = d.expense_id
		WHERE d.from_user_id = $1 AND d.to_user_id = $2 AND e.group_id = $3 AND d.status = $4
		ORDER BY e.created_at ASC, d.created_at ASC;
	`
	return r.queryDebts(ctx, query, fromUserID, toUserID, groupID, models.DebtUnsettled)
}

func (r *PgxDebtRepository) FindByExpenseAndDebtor(ctx context.Context, expenseID, userID string) ([]domain.Debt, error) {
	query := `SELECT ` + debtColumns + ` FROM debts WHERE expense_id = $1 AND from_user_id = $2 ORDER BY created_at ASC;`
	return r.queryDebts(ctx, query, expenseID, userID)
}

func (r *PgxDebtRepository) FindAllForUser(ctx context.Context, userID string) ([]domain.Debt, error) {
	query := `
		SELECT ` + debtColumns + `
		FROM debts
		WHERE from_user_id = $1 OR to_user_id = $1
		ORDER BY created_at DESC;
	`
	return r.queryDebts(ctx, query, userID)
}

func (r *PgxDebtRepository) queryDebts(ctx context.Context, query string, args ...any) ([]domain.Debt, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query debts: %w", err)
	}
	defer rows.Close()

	modelDebts := []models.Debt{}
	for rows.Next() {
		m, err := scanDebt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan debt row: %w", err)
		}
		modelDebts = append(modelDebts, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating debt rows: %w", rows.Err())
	}
	return mapping.ToDomainDebtSlice(modelDebts), nil
}

func (r *PgxDebtRepository) CreateDebts(ctx context.Context, debts []domain.Debt) error {
	if len(debts) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `
		INSERT INTO debts (` + debtColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	for _, d := range debts {
		m := mapping.ToModelDebt(d)
		batch.Queue(query,
			m.DebtID, m.ExpenseID, m.FromUserID, m.ToUserID, m.Amount, m.Status,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}

	br := r.db.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to insert debt rows: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close debt insert batch: %w", err)
	}
	return nil
}

func (r *PgxDebtRepository) DeleteDebtsForExpense(ctx context.Context, expenseID string) error {
	query := `DELETE FROM debts WHERE expense_id = $1;`
	if _, err := r.db.Exec(ctx, query, expenseID); err != nil {
		return fmt.Errorf("failed to delete debts of expense %s: %w", expenseID, err)
	}
	return nil
}

// MarkDebtsSettled flips all given debts in one statement. Rows already
// SETTLED are excluded, so replaying the same IDs is a no-op.
func (r *PgxDebtRepository) MarkDebtsSettled(ctx context.Context, debtIDs []string, updatedBy string, updatedAt time.Time) error {
	if len(debtIDs) == 0 {
		return nil
	}
	query := `
		UPDATE debts
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE debt_id = ANY($4) AND status = $5;
	`
	_, err := r.db.Exec(ctx, query, models.DebtSettled, updatedAt, updatedBy, debtIDs, models.DebtUnsettled)
	if err != nil {
		return fmt.Errorf("failed to mark debts settled: %w", err)
	}
	return nil
}

func (r *PgxDebtRepository) UpdateDebtStatus(ctx context.Context, debtID string, status domain.DebtStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE debts
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE debt_id = $4;
	`
	tag, err := r.db.Exec(ctx, query, models.DebtStatus(status), updatedAt, updatedBy, debtID)
	if err != nil {
		return fmt.Errorf("failed to update status of debt %s: %w", debtID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
