package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/campushq/studentportal/internal/app/models"
	"github.com/campushq/studentportal/internal/app/repositories"
)

// In-memory fakes for the store interfaces, shared across service tests.

type fakePages struct {
	pages []models.PortalPage
	home  *models.HomePage
}

func newFakePages() *fakePages {
	f := &fakePages{}
	for _, key := range models.PageKeys {
		f.pages = append(f.pages, models.PortalPage{
			ID:      int64(len(f.pages) + 1),
			PageKey: key,
			Heading: "Heading " + string(key),
		})
	}
	return f
}

func (f *fakePages) GetByKey(_ context.Context, key models.PageKey) (*models.PortalPage, error) {
	for i := range f.pages {
		if f.pages[i].PageKey == key {
			page := f.pages[i]
			return &page, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakePages) GetAll(_ context.Context) ([]models.PortalPage, error) {
	return f.pages, nil
}

func (f *fakePages) GetHomePage(_ context.Context) (*models.HomePage, error) {
	if f.home == nil {
		return nil, repositories.ErrNotFound
	}
	return f.home, nil
}

type fakeEnrollments struct{ items []models.Enrollment }

func (f *fakeEnrollments) GetByStudent(_ context.Context, studentID int64) ([]models.Enrollment, error) {
	out := []models.Enrollment{}
	for _, e := range f.items {
		if e.StudentID == studentID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeGrades struct{ items []models.Grade }

func (f *fakeGrades) GetByStudent(_ context.Context, studentID int64) ([]models.Grade, error) {
	out := []models.Grade{}
	for _, g := range f.items {
		if g.StudentID == studentID {
			out = append(out, g)
		}
	}
	return out, nil
}

type fakeTransactions struct{ items []models.Transaction }

func (f *fakeTransactions) GetByStudent(_ context.Context, studentID int64) ([]models.Transaction, error) {
	out := []models.Transaction{}
	for _, tx := range f.items {
		if tx.StudentID == studentID {
			out = append(out, tx)
		}
	}
	return out, nil
}

type fakeLibrary struct{ items []models.LibraryItem }

func (f *fakeLibrary) GetAll(_ context.Context) ([]models.LibraryItem, error) { return f.items, nil }

type fakeEvents struct{ items []models.Event }

func (f *fakeEvents) GetAll(_ context.Context) ([]models.Event, error) { return f.items, nil }

type fakeFAQs struct{ items []models.FAQ }

func (f *fakeFAQs) GetAll(_ context.Context) ([]models.FAQ, error) { return f.items, nil }

type fakeProfiles struct {
	profiles map[int64]*models.Profile
	nextID   int64
	created  int
	updates  int
}

func newFakeProfiles() *fakeProfiles {
	return &fakeProfiles{profiles: map[int64]*models.Profile{}, nextID: 1}
}

func (f *fakeProfiles) GetOrCreate(_ context.Context, userID int64) (*models.Profile, error) {
	if p, ok := f.profiles[userID]; ok {
		copied := *p
		return &copied, nil
	}
	p := &models.Profile{ID: f.nextID, UserID: userID}
	f.nextID++
	f.created++
	f.profiles[userID] = p
	copied := *p
	return &copied, nil
}

func (f *fakeProfiles) Update(_ context.Context, profile *models.Profile) error {
	if _, ok := f.profiles[profile.UserID]; !ok {
		return repositories.ErrNotFound
	}
	f.updates++
	copied := *profile
	f.profiles[profile.UserID] = &copied
	return nil
}

type fakeUsers struct {
	byUsername map[string]*models.User
	nextID     int64
	profiles   int
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byUsername: map[string]*models.User{}, nextID: 1}
}

func (f *fakeUsers) GetByUsername(_ context.Context, username string) (*models.User, error) {
	if u, ok := f.byUsername[username]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUsers) UsernameExists(_ context.Context, username string) (bool, error) {
	_, ok := f.byUsername[username]
	return ok, nil
}

func (f *fakeUsers) CreateWithProfile(_ context.Context, user *models.User) (int64, error) {
	if _, ok := f.byUsername[user.Username]; ok {
		return 0, repositories.ErrUsernameAlreadyExists
	}
	user.ID = f.nextID
	user.IsActive = true
	f.nextID++
	f.profiles++
	copied := *user
	f.byUsername[user.Username] = &copied
	return user.ID, nil
}

type fakeTokens struct{ issued int }

func (f *fakeTokens) GenerateToken(userID int64, username string, isStaff bool) (string, int, error) {
	f.issued++
	return fmt.Sprintf("token-%d", userID), 3600, nil
}

type fakeStorage struct {
	saved   []string
	deleted []string
}

func (f *fakeStorage) SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	path := "/uploads/" + subPath + "/" + fileHeader.Filename
	f.saved = append(f.saved, path)
	return path, nil
}

func (f *fakeStorage) DeleteFile(filePath string) error {
	f.deleted = append(f.deleted, filePath)
	return nil
}
