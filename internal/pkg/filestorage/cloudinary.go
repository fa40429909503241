package filestorage

import (
	"context"
	"fmt"
	"math/rand"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/smartschool/backend/internal/pkg/apperrors"
	"github.com/smartschool/backend/internal/pkg/logger"
)

// allowedFormats is the fixed set of image formats the remote host accepts.
var allowedFormats = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"gif":  {},
	"webp": {},
}

// CloudinaryStorage uploads files to Cloudinary and returns the absolute
// secure URL the service assigns.
type CloudinaryStorage struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryStorage creates a CloudinaryStorage from account credentials.
func NewCloudinaryStorage(cloudName, apiKey, apiSecret, folder string) (*CloudinaryStorage, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary client: %w", err)
	}
	cld.Config.URL.Secure = true

	return &CloudinaryStorage{
		cld:    cld,
		folder: folder,
	}, nil
}

// formatOf extracts the lowercase extension without the leading dot.
func formatOf(filename string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
}

// FormatAllowed reports whether the file's extension is in the accepted set.
func FormatAllowed(filename string) bool {
	_, ok := allowedFormats[formatOf(filename)]
	return ok
}

// publicID generates an epoch-millis plus random-suffix identifier,
// unique with overwhelming probability under concurrent uploads.
func publicID() string {
	return fmt.Sprintf("%d-%d", time.Now().UnixMilli(), rand.Int63n(1_000_000_000))
}

// SaveFile uploads one file to the configured folder. Files outside the
// allowed format set are rejected before any network call.
func (cs *CloudinaryStorage) SaveFile(ctx context.Context, fieldName string, fileHeader *multipart.FileHeader) (string, error) {
	if !FormatAllowed(fileHeader.Filename) {
		return "", apperrors.NewStorageError(apperrors.ErrFormatNotAllowed,
			fmt.Sprintf("file format %q is not allowed", formatOf(fileHeader.Filename)))
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", apperrors.NewStorageError(err, "failed to open uploaded file")
	}
	defer file.Close()

	resp, err := cs.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:     publicID(),
		Folder:       cs.folder,
		ResourceType: "auto",
	})
	if err != nil {
		logger.Error().Err(err).Str("field", fieldName).Str("filename", fileHeader.Filename).Msg("Cloudinary upload failed")
		return "", apperrors.NewStorageError(err, "cloudinary upload failed")
	}
	if resp.Error.Message != "" {
		logger.Error().Str("message", resp.Error.Message).Str("filename", fileHeader.Filename).Msg("Cloudinary rejected upload")
		return "", apperrors.NewStorageError(apperrors.ErrStorageFailed, resp.Error.Message)
	}

	logger.Info().Str("field", fieldName).Str("filename", fileHeader.Filename).Str("url", resp.SecureURL).Msg("File uploaded to cloudinary")
	return resp.SecureURL, nil
}

// DeleteFile destroys an uploaded asset by its URL. Best effort: an
// unparseable reference or a missing asset is not an error.
func (cs *CloudinaryStorage) DeleteFile(ctx context.Context, ref string) error {
	if ref == "" {
		return nil
	}

	base := filepath.Base(ref)
	id := strings.TrimSuffix(base, filepath.Ext(base))
	if id == "" {
		return nil
	}
	if cs.folder != "" {
		id = cs.folder + "/" + id
	}

	_, err := cs.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: id})
	if err != nil {
		logger.Warn().Err(err).Str("publicID", id).Msg("Failed to destroy cloudinary asset")
	}
	return nil
}
