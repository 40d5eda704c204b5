package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/studentportal/internal/app/models"
)

// FAQRepository handles FAQ database operations
type FAQRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFAQRepository creates a new FAQRepository
func NewFAQRepository(db *pgxpool.Pool) *FAQRepository {
	return &FAQRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create adds a FAQ entry
func (r *FAQRepository) Create(ctx context.Context, faq *models.FAQ) (int64, error) {
	sql, args, err := r.sb.Insert("faqs").
		Columns("question", "answer", "category").
		Values(faq.Question, faq.Answer, faq.Category).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create faq query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating faq: %w", err)
	}
	return id, nil
}

// GetAll retrieves all FAQ entries in insertion order
func (r *FAQRepository) GetAll(ctx context.Context) ([]models.FAQ, error) {
	sql, args, err := r.sb.Select("id", "question", "answer", "category").
		From("faqs").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get faqs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying faqs: %w", err)
	}
	defer rows.Close()

	faqs := []models.FAQ{}
	for rows.Next() {
		var faq models.FAQ
		if err := rows.Scan(&faq.ID, &faq.Question, &faq.Answer, &faq.Category); err != nil {
			return nil, fmt.Errorf("error scanning faq row: %w", err)
		}
		faqs = append(faqs, faq)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating faq rows: %w", err)
	}
	return faqs, nil
}
