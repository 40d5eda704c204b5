package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/studentportal/internal/app/models"
)

// TransactionRepository handles financial transaction database operations
type TransactionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(db *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create records a transaction on a student account
func (r *TransactionRepository) Create(ctx context.Context, tx *models.Transaction) (int64, error) {
	sql, args, err := r.sb.Insert("transactions").
		Columns("student_id", "amount_cents", "description", "is_credit").
		Values(tx.StudentID, tx.AmountCents, tx.Description, tx.IsCredit).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create transaction query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating transaction: %w", err)
	}
	return id, nil
}

// GetByStudent retrieves a student's transactions, newest first.
func (r *TransactionRepository) GetByStudent(ctx context.Context, studentID int64) ([]models.Transaction, error) {
	sql, args, err := r.sb.Select("id", "student_id", "amount_cents", "description", "is_credit", "created_at").
		From("transactions").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get transactions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying transactions: %w", err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(
			&tx.ID,
			&tx.StudentID,
			&tx.AmountCents,
			&tx.Description,
			&tx.IsCredit,
			&tx.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning transaction row: %w", err)
		}
		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return transactions, nil
}

// Count returns the total number of transactions
func (r *TransactionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM transactions").Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting transactions: %w", err)
	}
	return count, nil
}

// SumAmounts sums transaction amounts in one direction. COALESCE keeps
// the result at zero when no rows match.
func (r *TransactionRepository) SumAmounts(ctx context.Context, isCredit bool) (int64, error) {
	sql, args, err := r.sb.Select("COALESCE(SUM(amount_cents), 0)").
		From("transactions").
		Where(squirrel.Eq{"is_credit": isCredit}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sum transactions query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error summing transactions: %w", err)
	}
	return total, nil
}
