package filestorage

import (
	"context"
	"mime/multipart"
)

// FileStorage is the pluggable destination for uploaded binary content.
// Implementations must generate names that do not collide under
// concurrent writes, and the returned reference must be retrievable
// over plain HTTP GET as soon as SaveFile returns.
type FileStorage interface {
	// SaveFile stores one uploaded file and returns its reference URL.
	// fieldName is the multipart field the file arrived under.
	SaveFile(ctx context.Context, fieldName string, fileHeader *multipart.FileHeader) (string, error)

	// DeleteFile removes a previously stored file by its reference.
	// A missing file is not an error.
	DeleteFile(ctx context.Context, ref string) error
}
