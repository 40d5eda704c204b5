package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/campushq/studentportal/internal/app/models"
	"github.com/campushq/studentportal/internal/app/models/dto"
	"github.com/campushq/studentportal/internal/app/repositories"
	"github.com/campushq/studentportal/internal/pkg/apperrors"
	"github.com/campushq/studentportal/internal/pkg/search"
)

// PageStore is the portal page persistence surface.
type PageStore interface {
	GetByKey(ctx context.Context, key models.PageKey) (*models.PortalPage, error)
	GetAll(ctx context.Context) ([]models.PortalPage, error)
	GetHomePage(ctx context.Context) (*models.HomePage, error)
}

// EnrollmentStore lists a student's enrollments.
type EnrollmentStore interface {
	GetByStudent(ctx context.Context, studentID int64) ([]models.Enrollment, error)
}

// GradeStore lists a student's grades.
type GradeStore interface {
	GetByStudent(ctx context.Context, studentID int64) ([]models.Grade, error)
}

// TransactionStore lists a student's transactions.
type TransactionStore interface {
	GetByStudent(ctx context.Context, studentID int64) ([]models.Transaction, error)
}

// LibraryStore lists shared library items.
type LibraryStore interface {
	GetAll(ctx context.Context) ([]models.LibraryItem, error)
}

// EventStore lists campus events.
type EventStore interface {
	GetAll(ctx context.Context) ([]models.Event, error)
}

// FAQStore lists help entries.
type FAQStore interface {
	GetAll(ctx context.Context) ([]models.FAQ, error)
}

// ProfileStore is the profile persistence surface.
type ProfileStore interface {
	GetOrCreate(ctx context.Context, userID int64) (*models.Profile, error)
	Update(ctx context.Context, profile *models.Profile) error
}

// PortalService resolves portal pages into their rendering context.
type PortalService struct {
	pages        PageStore
	enrollments  EnrollmentStore
	grades       GradeStore
	transactions TransactionStore
	library      LibraryStore
	events       EventStore
	faqs         FAQStore
	profiles     ProfileStore
}

// NewPortalService creates a new PortalService
func NewPortalService(
	pages PageStore,
	enrollments EnrollmentStore,
	grades GradeStore,
	transactions TransactionStore,
	library LibraryStore,
	events EventStore,
	faqs FAQStore,
	profiles ProfileStore,
) *PortalService {
	return &PortalService{
		pages:        pages,
		enrollments:  enrollments,
		grades:       grades,
		transactions: transactions,
		library:      library,
		events:       events,
		faqs:         faqs,
		profiles:     profiles,
	}
}

// Home builds the public landing page context. A missing home page row is
// not an error; the navigation list still renders.
func (s *PortalService) Home(ctx context.Context) (*dto.HomeResponse, error) {
	home, err := s.pages.GetHomePage(ctx)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("error loading home page: %w", err)
		}
		home = nil
	}

	pages, err := s.pages.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing pages: %w", err)
	}

	nav := make([]dto.PageListItem, 0, len(pages))
	for _, page := range pages {
		nav = append(nav, dto.PageListItem{PageKey: page.PageKey, Heading: page.Heading})
	}

	return &dto.HomeResponse{HomePage: home, Pages: nav}, nil
}

// GetPage resolves a page key for the given student, loading the page's
// content plus the entity listing that key calls for, with the query's
// filters applied.
func (s *PortalService) GetPage(ctx context.Context, studentID int64, key models.PageKey, query dto.PageQuery) (*dto.PageResponse, error) {
	if !key.Valid() {
		return nil, apperrors.ErrPageNotFound
	}

	page, err := s.pages.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrPageNotFound
		}
		return nil, fmt.Errorf("error loading page %q: %w", key, err)
	}

	resp := &dto.PageResponse{
		Page:        page,
		Content:     page.ActiveContent(),
		SearchQuery: query.Search,
	}

	switch key {
	case models.PageCourses:
		err = s.loadCourses(ctx, studentID, query, resp)
	case models.PageGrades:
		err = s.loadGrades(ctx, studentID, query, resp)
	case models.PageFinance:
		err = s.loadFinance(ctx, studentID, query, resp)
	case models.PageLibrary:
		err = s.loadLibrary(ctx, query, resp)
	case models.PageEvents:
		err = s.loadEvents(ctx, query, resp)
	case models.PageHelp:
		err = s.loadHelp(ctx, query, resp)
	case models.PageProfile:
		err = s.loadProfile(ctx, studentID, resp)
	case models.PageDashboard:
		// Content only, nothing to list.
	}
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *PortalService) loadCourses(ctx context.Context, studentID int64, query dto.PageQuery, resp *dto.PageResponse) error {
	enrollments, err := s.enrollments.GetByStudent(ctx, studentID)
	if err != nil {
		return fmt.Errorf("error loading enrollments: %w", err)
	}

	resp.Enrollments = search.Apply(enrollments,
		search.TextMatch(query.Search, func(e models.Enrollment) []string {
			if e.Course == nil {
				return nil
			}
			return []string{e.Course.Code, e.Course.Name, e.Course.Description}
		}))
	return nil
}

func (s *PortalService) loadGrades(ctx context.Context, studentID int64, query dto.PageQuery, resp *dto.PageResponse) error {
	grades, err := s.grades.GetByStudent(ctx, studentID)
	if err != nil {
		return fmt.Errorf("error loading grades: %w", err)
	}

	resp.Grades = search.Apply(grades,
		search.TextMatch(query.Search, func(g models.Grade) []string {
			fields := []string{g.Grade}
			if g.Course != nil {
				fields = append(fields, g.Course.Code, g.Course.Name)
			}
			return fields
		}))
	return nil
}

func (s *PortalService) loadFinance(ctx context.Context, studentID int64, query dto.PageQuery, resp *dto.PageResponse) error {
	transactions, err := s.transactions.GetByStudent(ctx, studentID)
	if err != nil {
		return fmt.Errorf("error loading transactions: %w", err)
	}

	// Unknown type values impose no constraint, same as an absent one.
	var typeFilter search.Predicate[models.Transaction]
	switch query.Type {
	case models.TransactionTypeCredit, models.TransactionTypeDebit:
		resp.TypeFilter = query.Type
		typeFilter = search.Equals(query.Type, func(t models.Transaction) string { return t.TypeString() })
	}

	resp.Transactions = search.Apply(transactions,
		search.TextMatch(query.Search, func(t models.Transaction) []string {
			return []string{t.Description}
		}),
		typeFilter)
	resp.Categories = []string{models.TransactionTypeCredit, models.TransactionTypeDebit}
	return nil
}

func (s *PortalService) loadLibrary(ctx context.Context, query dto.PageQuery, resp *dto.PageResponse) error {
	items, err := s.library.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("error loading library items: %w", err)
	}

	resp.LibraryItems = search.Apply(items,
		search.TextMatch(query.Search, func(i models.LibraryItem) []string {
			return []string{i.Title, i.Author, i.Description}
		}))
	return nil
}

func (s *PortalService) loadEvents(ctx context.Context, query dto.PageQuery, resp *dto.PageResponse) error {
	events, err := s.events.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("error loading events: %w", err)
	}

	if models.EventCategory(query.Category).Valid() {
		resp.CategoryFilter = query.Category
	}
	resp.Events = search.Apply(events,
		search.TextMatch(query.Search, func(e models.Event) []string {
			return []string{e.Title, e.Location, e.Description}
		}),
		search.Equals(resp.CategoryFilter, func(e models.Event) string { return string(e.Category) }))

	resp.Categories = make([]string, 0, len(models.EventCategories))
	for _, cat := range models.EventCategories {
		resp.Categories = append(resp.Categories, string(cat))
	}
	return nil
}

func (s *PortalService) loadHelp(ctx context.Context, query dto.PageQuery, resp *dto.PageResponse) error {
	faqs, err := s.faqs.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("error loading faqs: %w", err)
	}

	if models.FAQCategory(query.Category).Valid() {
		resp.CategoryFilter = query.Category
	}
	resp.FAQs = search.Apply(faqs,
		search.TextMatch(query.Search, func(f models.FAQ) []string {
			return []string{f.Question, f.Answer}
		}),
		search.Equals(resp.CategoryFilter, func(f models.FAQ) string { return string(f.Category) }))

	resp.Categories = make([]string, 0, len(models.FAQCategories))
	for _, cat := range models.FAQCategories {
		resp.Categories = append(resp.Categories, string(cat))
	}
	return nil
}

func (s *PortalService) loadProfile(ctx context.Context, studentID int64, resp *dto.PageResponse) error {
	profile, err := s.profiles.GetOrCreate(ctx, studentID)
	if err != nil {
		return fmt.Errorf("error loading profile: %w", err)
	}
	resp.Profile = profile
	return nil
}
