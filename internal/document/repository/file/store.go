package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"table-checkbox-sync/internal/document"
	pkgLog "table-checkbox-sync/pkg/log"
)

const filePerm os.FileMode = 0o644

type implRepository struct {
	fs afero.Fs
	l  pkgLog.Logger
}

// New creates a document store over fsys. Document ids are slash-separated
// paths relative to the root of fsys, e.g. "projects/todo.md".
func New(fsys afero.Fs, l pkgLog.Logger) document.Store {
	return &implRepository{fs: fsys, l: l}
}

// NewOS creates a document store rooted at dir on the local filesystem.
func NewOS(dir string, l pkgLog.Logger) document.Store {
	return New(afero.NewBasePathFs(afero.NewOsFs(), dir), l)
}

func (r *implRepository) ReadWholeText(ctx context.Context, docID string) (string, error) {
	name, err := cleanID(docID)
	if err != nil {
		return "", err
	}

	raw, err := afero.ReadFile(r.fs, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", document.ErrDocumentNotFound, docID)
		}
		return "", fmt.Errorf("file repository: read %s: %w", docID, err)
	}
	return string(raw), nil
}

func (r *implRepository) ReadLine(ctx context.Context, docID string, lineIndex int) (string, error) {
	text, err := r.ReadWholeText(ctx, docID)
	if err != nil {
		return "", err
	}
	return document.LineAt(text, lineIndex)
}

// WriteWholeText writes to a sibling temp file and renames it over the
// target so readers never observe a half-written document.
func (r *implRepository) WriteWholeText(ctx context.Context, docID string, text string) error {
	name, err := cleanID(docID)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(name); dir != "." {
		if err := r.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("file repository: mkdir %s: %w", dir, err)
		}
	}

	tmp := name + ".tmp"
	if err := afero.WriteFile(r.fs, tmp, []byte(text), filePerm); err != nil {
		return fmt.Errorf("file repository: write %s: %w", docID, err)
	}
	if err := r.fs.Rename(tmp, name); err != nil {
		_ = r.fs.Remove(tmp)
		return fmt.Errorf("file repository: rename %s: %w", docID, err)
	}

	r.l.Debugf(ctx, "file repository: wrote %s (%d bytes)", docID, len(text))
	return nil
}

// cleanID rejects ids that would escape the store root.
func cleanID(docID string) (string, error) {
	if docID == "" || strings.ContainsRune(docID, 0) {
		return "", document.ErrInvalidID
	}
	p := path.Clean(strings.ReplaceAll(docID, "\\", "/"))
	if p == "." || p == ".." || path.IsAbs(p) || strings.HasPrefix(p, "../") {
		return "", fmt.Errorf("%w: %s", document.ErrInvalidID, docID)
	}
	return filepath.FromSlash(p), nil
}
