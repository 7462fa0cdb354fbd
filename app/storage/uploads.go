// Package storage keeps uploaded post images on local disk. Stored files are
// served back by the router under URLPrefix.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"boardapp/app/apperrors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// URLPrefix is the path under which stored images are served.
const URLPrefix = "/uploads/"

// ImageStore saves and removes post images.
type ImageStore interface {
	Save(src io.ReadSeeker) (string, error)
	Remove(ref string) error
}

// FileStore stores images as files under a directory.
type FileStore struct {
	dir string
}

// NewFileStore returns a FileStore rooted at dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %v", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory holding the stored files.
func (s *FileStore) Dir() string {
	return s.dir
}

// Save writes src to a new file and returns the URL it is served under.
// Content that is not an image is rejected with apperrors.ErrValidation.
func (s *FileStore) Save(src io.ReadSeeker) (string, error) {
	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %v", err)
	}
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", fmt.Errorf("%w: uploaded file is %s, not an image", apperrors.ErrValidation, mtype.String())
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind upload: %v", err)
	}

	name := uuid.NewString() + mtype.Extension()
	dst, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %v", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write image file: %v", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("failed to close image file: %v", err)
	}

	return URLPrefix + name, nil
}

// Remove deletes the file behind an URL returned by Save. Removing a file
// that is already gone is not an error.
func (s *FileStore) Remove(ref string) error {
	name := path.Base(strings.TrimPrefix(ref, URLPrefix))
	if name == "." || name == "/" || name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
