package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/studentportal/internal/app/models"
)

// LibraryRepository handles library item database operations
type LibraryRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewLibraryRepository creates a new LibraryRepository
func NewLibraryRepository(db *pgxpool.Pool) *LibraryRepository {
	return &LibraryRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create adds a library item
func (r *LibraryRepository) Create(ctx context.Context, item *models.LibraryItem) (int64, error) {
	sql, args, err := r.sb.Insert("library_items").
		Columns("title", "author", "description", "file_url").
		Values(item.Title, item.Author, item.Description, item.FileURL).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create library item query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating library item: %w", err)
	}
	return id, nil
}

// GetAll retrieves all library items ordered by title
func (r *LibraryRepository) GetAll(ctx context.Context) ([]models.LibraryItem, error) {
	sql, args, err := r.sb.Select("id", "title", "author", "description", "file_url", "added_at").
		From("library_items").
		OrderBy("title ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get library items query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying library items: %w", err)
	}
	defer rows.Close()

	items := []models.LibraryItem{}
	for rows.Next() {
		var item models.LibraryItem
		if err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Author,
			&item.Description,
			&item.FileURL,
			&item.AddedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning library item row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating library item rows: %w", err)
	}
	return items, nil
}
