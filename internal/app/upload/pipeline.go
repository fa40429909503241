// Package upload drives the storage backend for the file parts of a
// multipart request. Resolved references are buffered and handed back to
// the caller, which persists records only after every attachment has
// been stored: a failed attachment fails the whole batch.
package upload

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/smartschool/backend/internal/pkg/apperrors"
	"github.com/smartschool/backend/internal/pkg/filestorage"
)

// maxUploadMemory bounds the in-memory portion of multipart parsing;
// larger files spill to temp files.
const maxUploadMemory = 32 << 20

// StoredFile describes one attachment after its binary has been handed
// to the storage backend.
type StoredFile struct {
	Field string // multipart field the file arrived under
	Name  string // original filename
	URL   string // reference returned by the backend
}

// Pipeline resolves the file attachments of a request into reference URLs.
type Pipeline struct {
	storage filestorage.FileStorage
}

// NewPipeline creates a Pipeline over the given storage backend.
func NewPipeline(storage filestorage.FileStorage) *Pipeline {
	return &Pipeline{storage: storage}
}

// fileHeaders returns the attachments under field, parsing the multipart
// form on first use. A request without a multipart body simply has no
// attachments.
func fileHeaders(req *http.Request, field string) []*multipart.FileHeader {
	if req.MultipartForm == nil {
		if err := req.ParseMultipartForm(maxUploadMemory); err != nil {
			return nil
		}
	}
	if req.MultipartForm == nil || req.MultipartForm.File == nil {
		return nil
	}
	return req.MultipartForm.File[field]
}

// Single resolves at most one attachment under field. When required is
// set, a missing attachment is a validation failure; otherwise an empty
// reference is returned.
func (p *Pipeline) Single(ctx context.Context, req *http.Request, field string, required bool) (string, error) {
	files := fileHeaders(req, field)
	if len(files) == 0 {
		if required {
			return "", &apperrors.CustomError{
				Err:     apperrors.ErrFileRequired,
				Message: fmt.Sprintf("file field %q is required", field),
			}
		}
		return "", nil
	}
	return p.storage.SaveFile(ctx, field, files[0])
}

// Batch resolves every attachment under field, storing them concurrently.
// Completion order is not significant. If any store fails the whole batch
// fails and no references are returned, so the caller persists nothing.
func (p *Pipeline) Batch(ctx context.Context, req *http.Request, field string) ([]StoredFile, error) {
	files := fileHeaders(req, field)
	if len(files) == 0 {
		return nil, nil
	}

	stored := make([]StoredFile, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for i, fh := range files {
		i, fh := i, fh
		g.Go(func() error {
			url, err := p.storage.SaveFile(gctx, field, fh)
			if err != nil {
				return err
			}
			stored[i] = StoredFile{Field: field, Name: fh.Filename, URL: url}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stored, nil
}
