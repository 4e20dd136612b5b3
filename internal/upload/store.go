package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/tjwls11/diary111/internal/domain"
)

// PublicPrefix is the URL prefix under which stored files are served.
const PublicPrefix = "/uploads/"

// allowedExts lists the accepted image file extensions.
var allowedExts = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".webp": {},
}

// Store persists uploaded images on local disk under a single directory.
// Stored files get random names so uploads can never collide or overwrite
// each other.
type Store struct {
	dir string
}

// NewStore creates the upload directory if needed and returns a store over it.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("upload: create dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory files are stored in.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes the file to disk under a random name, keeping the original
// extension, and returns the public URL path of the stored file. Returns a
// validation error for extensions that are not an accepted image type.
func (s *Store) Save(originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if _, ok := allowedExts[ext]; !ok {
		return "", domain.NewValidationError("file", "unsupported file type")
	}

	name := uuid.New().String() + ext
	dst := filepath.Join(s.dir, name)

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("upload: create %s: %w", dst, err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(dst)
		return "", fmt.Errorf("upload: write %s: %w", dst, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("upload: close %s: %w", dst, err)
	}

	return PublicPrefix + name, nil
}

// Remove deletes a previously stored file given its public URL path.
// Unknown paths are ignored.
func (s *Store) Remove(publicPath string) error {
	name, ok := strings.CutPrefix(publicPath, PublicPrefix)
	if !ok || name == "" || strings.Contains(name, "/") {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("upload: remove %s: %w", name, err)
	}
	return nil
}
