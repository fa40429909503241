package upload

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/smartschool/backend/internal/pkg/apperrors"
)

// stubStorage records saves and can be told to fail on one filename.
type stubStorage struct {
	mu     sync.Mutex
	saved  []string
	failOn string
}

func (s *stubStorage) SaveFile(_ context.Context, _ string, fh *multipart.FileHeader) (string, error) {
	if fh.Filename == s.failOn {
		return "", errors.New("backend unavailable")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = append(s.saved, fh.Filename)
	return "/uploads/stored-" + fh.Filename, nil
}

func (s *stubStorage) DeleteFile(context.Context, string) error { return nil }

func (s *stubStorage) savedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.saved)
}

// multipartRequest builds a request carrying one file part per filename
// under the given field.
func multipartRequest(t *testing.T, field string, filenames ...string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, name := range filenames {
		fw, err := w.CreateFormFile(field, name)
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		if _, err := fw.Write([]byte("content of " + name)); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestSingleRequiredMissing(t *testing.T) {
	p := NewPipeline(&stubStorage{})
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))

	_, err := p.Single(context.Background(), req, "image", true)
	if !errors.Is(err, apperrors.ErrFileRequired) {
		t.Fatalf("Single error = %v, want ErrFileRequired", err)
	}
}

func TestSingleOptionalMissing(t *testing.T) {
	p := NewPipeline(&stubStorage{})
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))

	ref, err := p.Single(context.Background(), req, "image", false)
	if err != nil {
		t.Fatalf("Single: %v", err)
	}
	if ref != "" {
		t.Errorf("reference = %q, want empty", ref)
	}
}

func TestSingleStoresFirstFile(t *testing.T) {
	storage := &stubStorage{}
	p := NewPipeline(storage)
	req := multipartRequest(t, "image", "a.jpg")

	ref, err := p.Single(context.Background(), req, "image", true)
	if err != nil {
		t.Fatalf("Single: %v", err)
	}
	if ref != "/uploads/stored-a.jpg" {
		t.Errorf("reference = %q", ref)
	}
}

func TestBatchNoFiles(t *testing.T) {
	p := NewPipeline(&stubStorage{})
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))

	stored, err := p.Batch(context.Background(), req, "images")
	if err != nil {
		t.Fatalf("Batch: %v", err)
	}
	if stored != nil {
		t.Errorf("stored = %v, want nil", stored)
	}
}

func TestBatchStoresAllInOrder(t *testing.T) {
	storage := &stubStorage{}
	p := NewPipeline(storage)
	req := multipartRequest(t, "images", "a.jpg", "b.jpg", "c.jpg")

	stored, err := p.Batch(context.Background(), req, "images")
	if err != nil {
		t.Fatalf("Batch: %v", err)
	}
	if len(stored) != 3 {
		t.Fatalf("len(stored) = %d, want 3", len(stored))
	}
	// Results line up with the request's part order even though the
	// stores run concurrently.
	for i, want := range []string{"a.jpg", "b.jpg", "c.jpg"} {
		if stored[i].Name != want {
			t.Errorf("stored[%d].Name = %q, want %q", i, stored[i].Name, want)
		}
		if stored[i].URL != "/uploads/stored-"+want {
			t.Errorf("stored[%d].URL = %q", i, stored[i].URL)
		}
	}
}

func TestBatchFailureReturnsNothing(t *testing.T) {
	storage := &stubStorage{failOn: "b.jpg"}
	p := NewPipeline(storage)
	req := multipartRequest(t, "images", "a.jpg", "b.jpg", "c.jpg")

	stored, err := p.Batch(context.Background(), req, "images")
	if err == nil {
		t.Fatal("expected an error when one store fails")
	}
	if stored != nil {
		t.Errorf("stored = %v, want nil on failure", stored)
	}
}
