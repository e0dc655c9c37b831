package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"table-checkbox-sync/internal/document"
)

const sqliteTimeLayout = time.RFC3339Nano

// Repository is a document store backed by a sqlite database.
type Repository struct {
	db  *sql.DB
	now func() time.Time
}

var (
	_ document.Store     = (*Repository)(nil)
	_ document.Versioned = (*Repository)(nil)
)

func NewRepository(db *sql.DB) (*Repository, error) {
	if db == nil {
		return nil, errors.New("sqlite repository: nil db")
	}
	if err := MigrateUp(db); err != nil {
		return nil, err
	}
	return &Repository{db: db, now: time.Now}, nil
}

// Open opens (or creates) the database at path and applies migrations.
func Open(path string) (*Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One connection keeps ":memory:" databases shared and writes ordered.
	db.SetMaxOpenConns(1)

	repo, err := NewRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) ReadWholeText(ctx context.Context, docID string) (string, error) {
	var content string
	err := r.db.QueryRowContext(ctx, `SELECT content FROM documents WHERE id = ?`, docID).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", document.ErrDocumentNotFound, docID)
	}
	if err != nil {
		return "", fmt.Errorf("sqlite repository: read %s: %w", docID, err)
	}
	return content, nil
}

func (r *Repository) ReadLine(ctx context.Context, docID string, lineIndex int) (string, error) {
	text, err := r.ReadWholeText(ctx, docID)
	if err != nil {
		return "", err
	}
	return document.LineAt(text, lineIndex)
}

func (r *Repository) WriteWholeText(ctx context.Context, docID string, text string) error {
	if docID == "" {
		return document.ErrInvalidID
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO documents (id, content, revision, updated_at)
		VALUES (?, ?, 1, ?)
		ON CONFLICT(id) DO UPDATE SET
			content = excluded.content,
			revision = documents.revision + 1,
			updated_at = excluded.updated_at`,
		docID, text, r.now().UTC().Format(sqliteTimeLayout),
	)
	if err != nil {
		return fmt.Errorf("sqlite repository: write %s: %w", docID, err)
	}
	return nil
}

// Revision returns how many times docID has been written.
func (r *Repository) Revision(ctx context.Context, docID string) (int, error) {
	var rev int
	err := r.db.QueryRowContext(ctx, `SELECT revision FROM documents WHERE id = ?`, docID).Scan(&rev)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: %s", document.ErrDocumentNotFound, docID)
	}
	if err != nil {
		return 0, fmt.Errorf("sqlite repository: revision %s: %w", docID, err)
	}
	return rev, nil
}
