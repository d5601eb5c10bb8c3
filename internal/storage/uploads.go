package storage

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/inkwell-dev/inkwell/internal/apperr"
)

const (
	// MaxUploadSize caps uploaded images at 5 MB.
	MaxUploadSize = 5 << 20

	publicPrefix = "/uploads"
)

// LocalStore keeps uploaded images in a directory on disk and hands out
// the public paths that get persisted on blog records.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Dir() string {
	return s.dir
}

// Save validates and writes an uploaded image, returning its public path.
func (s *LocalStore) Save(file *multipart.FileHeader) (string, error) {
	if file.Size > MaxUploadSize {
		return "", apperr.Validation("Image must be 5MB or smaller")
	}

	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return "", apperr.Validation("Only image files are allowed")
	}

	name := fmt.Sprintf("image-%s%s", uuid.NewString(), filepath.Ext(file.Filename))

	src, err := file.Open()
	if err != nil {
		return "", apperr.Internal(err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", apperr.Internal(err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", apperr.Internal(err)
	}

	return path.Join(publicPrefix, name), nil
}

// Remove deletes the file behind a stored public path. Best effort: a
// missing file is fine, anything else is logged and swallowed.
func (s *LocalStore) Remove(publicPath string) {
	if publicPath == "" {
		return
	}

	fullPath := filepath.Join(s.dir, path.Base(publicPath))

	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to delete image %s: %v", fullPath, err)
	}
}
