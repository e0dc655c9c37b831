package memory

import (
	"context"
	"fmt"
	"sync"

	"table-checkbox-sync/internal/document"
)

type implRepository struct {
	mu   sync.RWMutex
	docs map[string]string
}

// New creates an in-memory document store, optionally seeded with docs.
func New(seed map[string]string) document.Store {
	docs := make(map[string]string, len(seed))
	for k, v := range seed {
		docs[k] = v
	}
	return &implRepository{docs: docs}
}

func (r *implRepository) ReadWholeText(ctx context.Context, docID string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	text, ok := r.docs[docID]
	if !ok {
		return "", fmt.Errorf("%w: %s", document.ErrDocumentNotFound, docID)
	}
	return text, nil
}

func (r *implRepository) ReadLine(ctx context.Context, docID string, lineIndex int) (string, error) {
	text, err := r.ReadWholeText(ctx, docID)
	if err != nil {
		return "", err
	}
	return document.LineAt(text, lineIndex)
}

func (r *implRepository) WriteWholeText(ctx context.Context, docID string, text string) error {
	if docID == "" {
		return document.ErrInvalidID
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.docs[docID] = text
	return nil
}
