package filestorage

import (
	"context"
	"errors"
	"testing"

	"github.com/smartschool/backend/internal/pkg/apperrors"
)

func TestFormatAllowed(t *testing.T) {
	cases := []struct {
		filename string
		want     bool
	}{
		{"photo.jpg", true},
		{"photo.JPEG", true},
		{"banner.png", true},
		{"anim.gif", true},
		{"modern.webp", true},
		{"notes.txt", false},
		{"archive.zip", false},
		{"noextension", false},
		{"", false},
		{"double.tar.gz", false},
		{"spaced name.PNG", true},
	}
	for _, tc := range cases {
		if got := FormatAllowed(tc.filename); got != tc.want {
			t.Errorf("FormatAllowed(%q) = %v, want %v", tc.filename, got, tc.want)
		}
	}
}

func TestPublicIDUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := publicID()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate public id %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestCloudinarySaveFileRejectsDisallowedFormat(t *testing.T) {
	cs, err := NewCloudinaryStorage("demo", "key", "secret", "rp-school")
	if err != nil {
		t.Fatalf("NewCloudinaryStorage: %v", err)
	}

	// The format gate fires before any network call, so fake credentials
	// are never exercised.
	_, err = cs.SaveFile(context.Background(), "image", uploadedFile(t, "notes.txt", "plain text"))
	if !errors.Is(err, apperrors.ErrFormatNotAllowed) {
		t.Fatalf("SaveFile error = %v, want ErrFormatNotAllowed", err)
	}
}

func TestNewCloudinaryStorageRequiresCloudName(t *testing.T) {
	if _, err := NewCloudinaryStorage("", "key", "secret", ""); err == nil {
		t.Fatal("expected an error for empty cloud name")
	}
}
