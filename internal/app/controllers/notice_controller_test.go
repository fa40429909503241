package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/smartschool/backend/internal/app/models"
	"github.com/smartschool/backend/internal/app/upload"
)

type mockNoticeStore struct {
	listFn   func(ctx context.Context, activeOnly bool) ([]models.Notice, error)
	createFn func(ctx context.Context, notice *models.Notice) error
	updateFn func(ctx context.Context, id string, upd models.NoticeUpdate) (*models.Notice, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockNoticeStore) List(ctx context.Context, activeOnly bool) ([]models.Notice, error) {
	return m.listFn(ctx, activeOnly)
}

func (m *mockNoticeStore) Create(ctx context.Context, notice *models.Notice) error {
	return m.createFn(ctx, notice)
}

func (m *mockNoticeStore) Update(ctx context.Context, id string, upd models.NoticeUpdate) (*models.Notice, error) {
	return m.updateFn(ctx, id, upd)
}

func (m *mockNoticeStore) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

func noticeRouter(store NoticeStore, storage *memoryStorage) func(r *gin.Engine) {
	ctrl := NewNoticeController(store, upload.NewPipeline(storage))
	return func(r *gin.Engine) {
		r.GET("/api/notices", ctrl.List)
		r.GET("/api/notices/all", ctrl.ListAll)
		r.POST("/api/notices", ctrl.Create)
		r.PUT("/api/notices/:id", ctrl.Update)
		r.DELETE("/api/notices/:id", ctrl.Delete)
	}
}

func TestNoticeListFiltersActive(t *testing.T) {
	cases := []struct {
		target     string
		wantActive bool
	}{
		{"/api/notices", true},
		{"/api/notices/all", false},
	}
	for _, tc := range cases {
		var gotFlag bool
		store := &mockNoticeStore{
			listFn: func(_ context.Context, activeOnly bool) ([]models.Notice, error) {
				gotFlag = activeOnly
				return []models.Notice{}, nil
			},
		}

		w := perform(noticeRouter(store, &memoryStorage{}), jsonRequest(http.MethodGet, tc.target, ""))

		if w.Code != http.StatusOK {
			t.Fatalf("%s: status = %d", tc.target, w.Code)
		}
		if gotFlag != tc.wantActive {
			t.Errorf("%s: activeOnly = %v, want %v", tc.target, gotFlag, tc.wantActive)
		}
	}
}

func TestNoticeCreateWithImage(t *testing.T) {
	var got *models.Notice
	store := &mockNoticeStore{
		createFn: func(_ context.Context, notice *models.Notice) error {
			got = notice
			return nil
		},
	}

	req := formRequest(t, http.MethodPost, "/api/notices",
		map[string]string{"title": "Holiday", "content": "School closed", "priority": "High"},
		map[string][]string{"image": {"poster.png"}})

	w := perform(noticeRouter(store, &memoryStorage{}), req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if got == nil || got.Title != "Holiday" || got.Priority != "High" {
		t.Fatalf("persisted notice = %+v", got)
	}
	if got.ImageURL != "/uploads/stored-poster.png" {
		t.Errorf("imageUrl = %q", got.ImageURL)
	}
}

func TestNoticeCreateWithoutImage(t *testing.T) {
	var got *models.Notice
	store := &mockNoticeStore{
		createFn: func(_ context.Context, notice *models.Notice) error {
			got = notice
			return nil
		},
	}

	req := formRequest(t, http.MethodPost, "/api/notices",
		map[string]string{"title": "Holiday", "content": "School closed"}, nil)

	w := perform(noticeRouter(store, &memoryStorage{}), req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if got == nil || got.ImageURL != "" {
		t.Errorf("persisted notice = %+v", got)
	}
}

func TestNoticeUpdateTogglesActive(t *testing.T) {
	var gotUpd models.NoticeUpdate
	var gotID string
	store := &mockNoticeStore{
		updateFn: func(_ context.Context, id string, upd models.NoticeUpdate) (*models.Notice, error) {
			gotID = id
			gotUpd = upd
			return &models.Notice{}, nil
		},
	}

	req := formRequest(t, http.MethodPut, "/api/notices/64f1b2a3c4d5e6f708192a3b",
		map[string]string{"isActive": "false"}, nil)

	w := perform(noticeRouter(store, &memoryStorage{}), req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if gotID != "64f1b2a3c4d5e6f708192a3b" {
		t.Errorf("id = %q", gotID)
	}
	if gotUpd.IsActive == nil || *gotUpd.IsActive {
		t.Errorf("isActive = %v, want false", gotUpd.IsActive)
	}
	// Untouched fields stay nil so the store leaves them alone.
	if gotUpd.Title != nil || gotUpd.Content != nil || gotUpd.ImageURL != nil {
		t.Errorf("unexpected fields set: %+v", gotUpd)
	}
}

func TestNoticeUpdateBadBool(t *testing.T) {
	store := &mockNoticeStore{
		updateFn: func(context.Context, string, models.NoticeUpdate) (*models.Notice, error) {
			t.Fatal("Update must not be called with an unparseable isActive")
			return nil, nil
		},
	}

	req := formRequest(t, http.MethodPut, "/api/notices/64f1b2a3c4d5e6f708192a3b",
		map[string]string{"isActive": "maybe"}, nil)

	w := perform(noticeRouter(store, &memoryStorage{}), req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}
