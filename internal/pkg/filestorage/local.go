package filestorage

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/smartschool/backend/internal/pkg/apperrors"
	"github.com/smartschool/backend/internal/pkg/logger"
)

// LocalStorage writes uploaded files to a served directory on the local
// filesystem and returns paths rooted at the static-serving prefix.
type LocalStorage struct {
	basePath string // directory files are written to
	baseURL  string // URL prefix the directory is served under
}

// NewLocalStorage creates a LocalStorage rooted at basePath.
// The directory is created if it does not exist.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// uniqueFilename generates an epoch-millis plus random-suffix name.
// The random component keeps two writes within the same millisecond
// from colliding.
func uniqueFilename(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.Int63n(1_000_000_000), ext)
}

// SaveFile stores one uploaded file under a generated name and returns
// its served path.
func (ls *LocalStorage) SaveFile(_ context.Context, fieldName string, fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", apperrors.NewStorageError(err, "failed to open uploaded file")
	}
	defer file.Close()

	filename := uniqueFilename(fileHeader.Filename)
	dstPath := filepath.Join(ls.basePath, filename)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", apperrors.NewStorageError(err, "failed to create destination file")
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		// Remove the partially written file
		_ = os.Remove(dstPath)
		return "", apperrors.NewStorageError(err, "failed to save file content")
	}

	ref := ls.baseURL + "/" + filename
	logger.Info().Str("field", fieldName).Str("filename", fileHeader.Filename).Str("saved_as", filename).Msg("File saved")
	return ref, nil
}

// DeleteFile removes a stored file given its served path. Deleting a
// file that no longer exists succeeds.
func (ls *LocalStorage) DeleteFile(_ context.Context, ref string) error {
	if ref == "" {
		return nil
	}

	filename := filepath.Base(ref)
	if filename == "" || filename == "." || filename == "/" {
		return fmt.Errorf("invalid file reference: %s", ref)
	}

	physicalPath := filepath.Join(ls.basePath, filename)
	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}
