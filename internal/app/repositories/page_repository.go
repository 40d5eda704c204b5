package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/studentportal/internal/app/models"
)

// Page related errors
var (
	ErrPageNotFound     = ErrNotFound
	ErrHomePageNotFound = ErrNotFound
)

const pageColumns = "id, page_key, heading, main_content, courses_content, grades_content, " +
	"finance_content, library_content, events_content, help_content, profile_content"

// PageRepository handles portal page and home page database operations
type PageRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPageRepository creates a new PageRepository
func NewPageRepository(db *pgxpool.Pool) *PageRepository {
	return &PageRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanPage(row pgx.Row) (*models.PortalPage, error) {
	var page models.PortalPage
	err := row.Scan(
		&page.ID,
		&page.PageKey,
		&page.Heading,
		&page.MainContent,
		&page.CoursesContent,
		&page.GradesContent,
		&page.FinanceContent,
		&page.LibraryContent,
		&page.EventsContent,
		&page.HelpContent,
		&page.ProfileContent,
	)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// GetByKey retrieves the page configured for a page key
func (r *PageRepository) GetByKey(ctx context.Context, key models.PageKey) (*models.PortalPage, error) {
	sql, args, err := r.sb.Select(pageColumns).
		From("portal_pages").
		Where(squirrel.Eq{"page_key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get page query: %w", err)
	}

	page, err := scanPage(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPageNotFound
		}
		return nil, fmt.Errorf("error getting page by key: %w", err)
	}
	return page, nil
}

// GetAll retrieves every configured page in navigation order
func (r *PageRepository) GetAll(ctx context.Context) ([]models.PortalPage, error) {
	sql, args, err := r.sb.Select(pageColumns).
		From("portal_pages").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get pages query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying pages: %w", err)
	}
	defer rows.Close()

	pages := []models.PortalPage{}
	for rows.Next() {
		page, err := scanPage(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning page row: %w", err)
		}
		pages = append(pages, *page)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating page rows: %w", err)
	}
	return pages, nil
}

// Upsert inserts a page or updates its heading and content columns when
// the page key already exists. Used by seeding.
func (r *PageRepository) Upsert(ctx context.Context, page *models.PortalPage) error {
	sql, args, err := r.sb.Insert("portal_pages").
		Columns("page_key", "heading", "main_content", "courses_content", "grades_content",
			"finance_content", "library_content", "events_content", "help_content", "profile_content").
		Values(page.PageKey, page.Heading, page.MainContent, page.CoursesContent, page.GradesContent,
			page.FinanceContent, page.LibraryContent, page.EventsContent, page.HelpContent, page.ProfileContent).
		Suffix("ON CONFLICT (page_key) DO UPDATE SET heading = EXCLUDED.heading RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert page query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&page.ID); err != nil {
		return fmt.Errorf("error upserting page: %w", err)
	}
	return nil
}

// GetHomePage retrieves the landing page configuration. The first row
// wins when several exist.
func (r *PageRepository) GetHomePage(ctx context.Context) (*models.HomePage, error) {
	sql, args, err := r.sb.Select("id", "title", "subtitle", "welcome_message", "background_image_url").
		From("home_pages").
		OrderBy("id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get home page query: %w", err)
	}

	var home models.HomePage
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&home.ID,
		&home.Title,
		&home.Subtitle,
		&home.WelcomeMessage,
		&home.BackgroundImageURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrHomePageNotFound
		}
		return nil, fmt.Errorf("error getting home page: %w", err)
	}
	return &home, nil
}

// CreateHomePage inserts a landing page row
func (r *PageRepository) CreateHomePage(ctx context.Context, home *models.HomePage) error {
	sql, args, err := r.sb.Insert("home_pages").
		Columns("title", "subtitle", "welcome_message", "background_image_url").
		Values(home.Title, home.Subtitle, home.WelcomeMessage, home.BackgroundImageURL).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create home page query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&home.ID); err != nil {
		return fmt.Errorf("error creating home page: %w", err)
	}
	return nil
}

// CountHomePages returns how many landing page rows exist
func (r *PageRepository) CountHomePages(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM home_pages").Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting home pages: %w", err)
	}
	return count, nil
}
