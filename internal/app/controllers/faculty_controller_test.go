package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/smartschool/backend/internal/app/models"
	"github.com/smartschool/backend/internal/app/upload"
	"github.com/smartschool/backend/internal/pkg/apperrors"
)

type mockFacultyStore struct {
	listFn   func(ctx context.Context) ([]models.Faculty, error)
	createFn func(ctx context.Context, member *models.Faculty) error
	updateFn func(ctx context.Context, id string, upd models.FacultyUpdate) (*models.Faculty, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockFacultyStore) List(ctx context.Context) ([]models.Faculty, error) {
	return m.listFn(ctx)
}

func (m *mockFacultyStore) Create(ctx context.Context, member *models.Faculty) error {
	return m.createFn(ctx, member)
}

func (m *mockFacultyStore) Update(ctx context.Context, id string, upd models.FacultyUpdate) (*models.Faculty, error) {
	return m.updateFn(ctx, id, upd)
}

func (m *mockFacultyStore) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

func facultyRouter(store FacultyStore, storage *memoryStorage) func(r *gin.Engine) {
	ctrl := NewFacultyController(store, upload.NewPipeline(storage))
	return func(r *gin.Engine) {
		r.GET("/api/faculty", ctrl.List)
		r.POST("/api/faculty", ctrl.Create)
		r.PUT("/api/faculty/:id", ctrl.Update)
		r.DELETE("/api/faculty/:id", ctrl.Delete)
	}
}

func TestFacultyCreateWithPhoto(t *testing.T) {
	var got *models.Faculty
	store := &mockFacultyStore{
		createFn: func(_ context.Context, member *models.Faculty) error {
			got = member
			return nil
		},
	}

	req := formRequest(t, http.MethodPost, "/api/faculty",
		map[string]string{"name": "Dr. Rao", "department": "Science", "position": "HOD"},
		map[string][]string{"image": {"portrait.jpg"}})

	w := perform(facultyRouter(store, &memoryStorage{}), req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if got == nil || got.Name != "Dr. Rao" || got.Department != "Science" {
		t.Fatalf("persisted member = %+v", got)
	}
	if got.ImageURL != "/uploads/stored-portrait.jpg" {
		t.Errorf("imageUrl = %q", got.ImageURL)
	}
}

func TestFacultyCreateWithoutPhoto(t *testing.T) {
	var got *models.Faculty
	store := &mockFacultyStore{
		createFn: func(_ context.Context, member *models.Faculty) error {
			got = member
			return nil
		},
	}

	req := formRequest(t, http.MethodPost, "/api/faculty",
		map[string]string{"name": "Dr. Rao"}, nil)

	w := perform(facultyRouter(store, &memoryStorage{}), req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if got == nil || got.ImageURL != "" {
		t.Errorf("persisted member = %+v", got)
	}
}

func TestFacultyUpdateKeepsPhotoWithoutFile(t *testing.T) {
	var gotUpd models.FacultyUpdate
	store := &mockFacultyStore{
		updateFn: func(_ context.Context, id string, upd models.FacultyUpdate) (*models.Faculty, error) {
			gotUpd = upd
			return &models.Faculty{}, nil
		},
	}

	req := formRequest(t, http.MethodPut, "/api/faculty/64f1b2a3c4d5e6f708192a3b",
		map[string]string{"department": "Mathematics"}, nil)

	w := perform(facultyRouter(store, &memoryStorage{}), req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if gotUpd.Department == nil || *gotUpd.Department != "Mathematics" {
		t.Errorf("department = %v", gotUpd.Department)
	}
	// No file attached, so the stored photo must be left alone.
	if gotUpd.ImageURL != nil {
		t.Errorf("imageUrl = %q, want nil", *gotUpd.ImageURL)
	}
	if gotUpd.Name != nil || gotUpd.Position != nil || gotUpd.Email != nil || gotUpd.Phone != nil {
		t.Errorf("unexpected fields set: %+v", gotUpd)
	}
}

func TestFacultyUpdateWithNewPhoto(t *testing.T) {
	var gotUpd models.FacultyUpdate
	store := &mockFacultyStore{
		updateFn: func(_ context.Context, id string, upd models.FacultyUpdate) (*models.Faculty, error) {
			gotUpd = upd
			return &models.Faculty{}, nil
		},
	}

	req := formRequest(t, http.MethodPut, "/api/faculty/64f1b2a3c4d5e6f708192a3b",
		nil, map[string][]string{"image": {"new.jpg"}})

	w := perform(facultyRouter(store, &memoryStorage{}), req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if gotUpd.ImageURL == nil || *gotUpd.ImageURL != "/uploads/stored-new.jpg" {
		t.Errorf("imageUrl = %v", gotUpd.ImageURL)
	}
}

func TestFacultyDeleteNotFound(t *testing.T) {
	store := &mockFacultyStore{
		deleteFn: func(_ context.Context, id string) error {
			return apperrors.NewNotFoundError("faculty member not found")
		},
	}

	req := jsonRequest(http.MethodDelete, "/api/faculty/64f1b2a3c4d5e6f708192a3b", "")

	w := perform(facultyRouter(store, &memoryStorage{}), req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
