package controllers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// perform runs one request through a fresh router configured by setup.
func perform(setup func(r *gin.Engine), req *http.Request) *httptest.ResponseRecorder {
	r := gin.New()
	setup(r)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// jsonRequest builds a request with a JSON body.
func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// formRequest builds a multipart request from form fields and file parts.
func formRequest(t *testing.T, method, target string, fields map[string]string, files map[string][]string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			t.Fatalf("WriteField: %v", err)
		}
	}
	for field, names := range files {
		for _, name := range names {
			fw, err := w.CreateFormFile(field, name)
			if err != nil {
				t.Fatalf("CreateFormFile: %v", err)
			}
			if _, err := io.WriteString(fw, "content of "+name); err != nil {
				t.Fatalf("write part: %v", err)
			}
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

// memoryStorage is a storage backend that keeps nothing and answers with
// predictable references. It can be told to fail on one filename.
type memoryStorage struct {
	failOn string
}

func (m *memoryStorage) SaveFile(_ context.Context, _ string, fh *multipart.FileHeader) (string, error) {
	if fh.Filename == m.failOn {
		return "", errors.New("backend unavailable")
	}
	return "/uploads/stored-" + fh.Filename, nil
}

func (m *memoryStorage) DeleteFile(context.Context, string) error { return nil }
