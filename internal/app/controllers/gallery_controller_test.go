package controllers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/smartschool/backend/internal/app/models"
	"github.com/smartschool/backend/internal/app/upload"
	"github.com/smartschool/backend/internal/pkg/apperrors"
)

type mockGalleryStore struct {
	listFn       func(ctx context.Context) ([]models.GalleryImage, error)
	createManyFn func(ctx context.Context, images []models.GalleryImage) error
	deleteFn     func(ctx context.Context, id string) error
}

func (m *mockGalleryStore) List(ctx context.Context) ([]models.GalleryImage, error) {
	return m.listFn(ctx)
}

func (m *mockGalleryStore) CreateMany(ctx context.Context, images []models.GalleryImage) error {
	return m.createManyFn(ctx, images)
}

func (m *mockGalleryStore) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

func galleryRouter(store GalleryStore, storage *memoryStorage) func(r *gin.Engine) {
	ctrl := NewGalleryController(store, upload.NewPipeline(storage))
	return func(r *gin.Engine) {
		r.GET("/api/gallery", ctrl.List)
		r.POST("/api/gallery", ctrl.Create)
		r.DELETE("/api/gallery/:id", ctrl.Delete)
	}
}

func TestGalleryCreatePersistsOneRecordPerFile(t *testing.T) {
	var got []models.GalleryImage
	store := &mockGalleryStore{
		createManyFn: func(_ context.Context, images []models.GalleryImage) error {
			got = images
			return nil
		},
	}

	req := formRequest(t, http.MethodPost, "/api/gallery",
		map[string]string{"category": "Sports", "adminId": "64f1b2a3c4d5e6f708192a3b"},
		map[string][]string{"images": {"a.jpg", "b.jpg"}})

	w := perform(galleryRouter(store, &memoryStorage{}), req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if len(got) != 2 {
		t.Fatalf("persisted %d records, want 2", len(got))
	}
	for _, img := range got {
		if img.Category != "Sports" {
			t.Errorf("category = %q, want Sports", img.Category)
		}
		if img.UploadedBy == nil || img.UploadedBy.Hex() != "64f1b2a3c4d5e6f708192a3b" {
			t.Errorf("uploadedBy = %v", img.UploadedBy)
		}
		if !strings.HasPrefix(img.ImageURL, "/uploads/stored-") {
			t.Errorf("imageUrl = %q", img.ImageURL)
		}
	}
}

func TestGalleryCreateEmptyBatch(t *testing.T) {
	// A multipart form with no files is a batch of zero: it succeeds
	// and persists no records.
	var got []models.GalleryImage
	called := false
	store := &mockGalleryStore{
		createManyFn: func(_ context.Context, images []models.GalleryImage) error {
			called = true
			got = images
			return nil
		},
	}

	req := formRequest(t, http.MethodPost, "/api/gallery",
		map[string]string{"category": "Sports"}, nil)

	w := perform(galleryRouter(store, &memoryStorage{}), req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for an empty batch (body %s)", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"success":true`) {
		t.Errorf("body = %s", w.Body.String())
	}
	if called && len(got) != 0 {
		t.Errorf("persisted %d records, want none", len(got))
	}
}

func TestGalleryCreateAbortsWhenOneUploadFails(t *testing.T) {
	store := &mockGalleryStore{
		createManyFn: func(context.Context, []models.GalleryImage) error {
			t.Fatal("CreateMany must not be called when an upload fails")
			return nil
		},
	}

	req := formRequest(t, http.MethodPost, "/api/gallery", nil,
		map[string][]string{"images": {"a.jpg", "bad.jpg", "c.jpg"}})

	w := perform(galleryRouter(store, &memoryStorage{failOn: "bad.jpg"}), req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

func TestGalleryCreateUnparseableAdminID(t *testing.T) {
	var got []models.GalleryImage
	store := &mockGalleryStore{
		createManyFn: func(_ context.Context, images []models.GalleryImage) error {
			got = images
			return nil
		},
	}

	req := formRequest(t, http.MethodPost, "/api/gallery",
		map[string]string{"adminId": "not-an-object-id"},
		map[string][]string{"images": {"a.jpg"}})

	w := perform(galleryRouter(store, &memoryStorage{}), req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if len(got) != 1 || got[0].UploadedBy != nil {
		t.Errorf("expected one record with no uploader, got %+v", got)
	}
}

func TestGalleryDeleteNotFound(t *testing.T) {
	store := &mockGalleryStore{
		deleteFn: func(_ context.Context, id string) error {
			return apperrors.NewNotFoundError("gallery image not found")
		},
	}

	req := jsonRequest(http.MethodDelete, "/api/gallery/64f1b2a3c4d5e6f708192a3b", "")

	w := perform(galleryRouter(store, &memoryStorage{}), req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
