package document

import "context"

// Store owns document text. The core reads lines or whole-text snapshots
// and submits whole-text replacements; it never patches a store partially.
type Store interface {
	// ReadWholeText returns the current text of docID.
	ReadWholeText(ctx context.Context, docID string) (string, error)

	// ReadLine returns line lineIndex (zero-based) of docID without its newline.
	ReadLine(ctx context.Context, docID string, lineIndex int) (string, error)

	// WriteWholeText replaces the text of docID, creating it when missing.
	WriteWholeText(ctx context.Context, docID string, text string) error
}

// Versioned is implemented by stores that count writes per document.
type Versioned interface {
	Revision(ctx context.Context, docID string) (int, error)
}
