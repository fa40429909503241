package filestorage

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// uploadedFile builds a *multipart.FileHeader the way gin hands one to
// the storage layer, by round-tripping a real multipart body.
func uploadedFile(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("ParseMultipartForm: %v", err)
	}
	return req.MultipartForm.File["file"][0]
}

func TestLocalStorageSaveFile(t *testing.T) {
	dir := t.TempDir()
	ls, err := NewLocalStorage(dir, "/uploads/")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	ref, err := ls.SaveFile(context.Background(), "image", uploadedFile(t, "photo.PNG", "fake image bytes"))
	if err != nil {
		t.Fatalf("SaveFile: %v", err)
	}

	if !strings.HasPrefix(ref, "/uploads/") {
		t.Errorf("reference %q does not start with the serving prefix", ref)
	}
	if !strings.HasSuffix(ref, ".png") {
		t.Errorf("reference %q should keep the lowercased extension", ref)
	}
	if strings.Contains(ref, "photo") {
		t.Errorf("reference %q should not leak the original filename", ref)
	}

	data, err := os.ReadFile(filepath.Join(dir, filepath.Base(ref)))
	if err != nil {
		t.Fatalf("reading stored file: %v", err)
	}
	if string(data) != "fake image bytes" {
		t.Errorf("stored content = %q, want %q", data, "fake image bytes")
	}
}

func TestLocalStorageUniqueNames(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		ref, err := ls.SaveFile(context.Background(), "image", uploadedFile(t, "same.jpg", "x"))
		if err != nil {
			t.Fatalf("SaveFile: %v", err)
		}
		if _, dup := seen[ref]; dup {
			t.Fatalf("duplicate reference %q", ref)
		}
		seen[ref] = struct{}{}
	}
}

func TestLocalStorageDeleteFile(t *testing.T) {
	dir := t.TempDir()
	ls, err := NewLocalStorage(dir, "/uploads")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	ref, err := ls.SaveFile(context.Background(), "image", uploadedFile(t, "photo.jpg", "x"))
	if err != nil {
		t.Fatalf("SaveFile: %v", err)
	}

	if err := ls.DeleteFile(context.Background(), ref); err != nil {
		t.Fatalf("DeleteFile: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, filepath.Base(ref))); !os.IsNotExist(err) {
		t.Errorf("file still exists after delete")
	}

	// Deleting the same reference twice is not an error.
	if err := ls.DeleteFile(context.Background(), ref); err != nil {
		t.Errorf("second DeleteFile: %v", err)
	}
	if err := ls.DeleteFile(context.Background(), ""); err != nil {
		t.Errorf("DeleteFile with empty reference: %v", err)
	}
}

func TestNewLocalStorageCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	if _, err := NewLocalStorage(dir, "/uploads"); err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("storage directory was not created: %v", err)
	}
}
