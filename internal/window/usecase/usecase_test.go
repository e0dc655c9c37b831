package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"table-checkbox-sync/internal/document"
	"table-checkbox-sync/internal/document/repository/memory"
	sqliteRepo "table-checkbox-sync/internal/document/repository/sqlite"
	"table-checkbox-sync/internal/identifier"
	"table-checkbox-sync/internal/model"
	"table-checkbox-sync/internal/window"
	"table-checkbox-sync/internal/window/usecase"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// toggleStore fails writes while failing is set.
type toggleStore struct {
	document.Store
	failing atomic.Bool
}

func (s *toggleStore) WriteWholeText(ctx context.Context, docID, text string) error {
	if s.failing.Load() {
		return errors.New("disk full")
	}
	return s.Store.WriteWholeText(ctx, docID, text)
}

func sequence() identifier.Generator {
	var n int
	return func() (string, error) {
		n++
		return fmt.Sprintf("id%04d", n), nil
	}
}

func newUseCase(store document.Store) window.UseCase {
	l := &mockLogger{}
	alloc := identifier.New(l, identifier.DefaultLength, identifier.WithGenerator(sequence()))
	reg := window.NewRegistry(l, store, nil, alloc, window.Config{})
	return usecase.New(l, store, reg)
}

func ptr(s string) *string { return &s }

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects empty document id", func(t *testing.T) {
		uc := newUseCase(memory.New(nil))
		if _, err := uc.Open(ctx, window.OpenInput{}); !errors.Is(err, window.ErrInvalidInput) {
			t.Fatalf("Open() error = %v, want ErrInvalidInput", err)
		}
	})

	t.Run("creates missing document", func(t *testing.T) {
		store := memory.New(nil)
		uc := newUseCase(store)
		out, err := uc.Open(ctx, window.OpenInput{DocumentID: "new.md"})
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		if out.WindowID == "" || out.DocumentID != "new.md" {
			t.Fatalf("Open() = %+v", out)
		}
		if _, err := store.ReadWholeText(ctx, "new.md"); err != nil {
			t.Fatalf("document not created: %v", err)
		}
	})

	t.Run("seeds text", func(t *testing.T) {
		uc := newUseCase(memory.New(map[string]string{"a.md": "old"}))
		out, err := uc.Open(ctx, window.OpenInput{DocumentID: "a.md", Text: ptr("new")})
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		doc, err := uc.Document(ctx, out.WindowID)
		if err != nil || doc.Text != "new" {
			t.Fatalf("Document() = %+v, %v", doc, err)
		}
	})

	t.Run("distinct window ids", func(t *testing.T) {
		uc := newUseCase(memory.New(nil))
		a, _ := uc.Open(ctx, window.OpenInput{DocumentID: "a.md"})
		b, _ := uc.Open(ctx, window.OpenInput{DocumentID: "a.md"})
		if a.WindowID == b.WindowID {
			t.Fatalf("window ids collide: %s", a.WindowID)
		}
	})
}

func TestClose(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(memory.New(nil))
	out, _ := uc.Open(ctx, window.OpenInput{DocumentID: "a.md"})

	if err := uc.Close(ctx, out.WindowID); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := uc.Close(ctx, out.WindowID); !errors.Is(err, window.ErrWindowNotFound) {
		t.Fatalf("second Close() error = %v, want ErrWindowNotFound", err)
	}
	if _, err := uc.Input(ctx, window.InputInput{WindowID: out.WindowID, Text: "]"}); !errors.Is(err, window.ErrWindowNotFound) {
		t.Fatalf("Input() after Close error = %v, want ErrWindowNotFound", err)
	}
}

func TestInputConvertsAndChangeToggles(t *testing.T) {
	ctx := context.Background()
	store := memory.New(nil)
	uc := newUseCase(store)
	out, err := uc.Open(ctx, window.OpenInput{DocumentID: "todo.md", Text: ptr("| a | - [ ] |")})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	res, err := uc.Input(ctx, window.InputInput{
		WindowID: out.WindowID,
		Text:     "]",
		Position: model.Position{Line: 0, Ch: 11},
	})
	if err != nil {
		t.Fatalf("Input() error = %v", err)
	}
	control := `<input type="checkbox" unchecked id="id0001">`
	if !res.Handled {
		t.Fatal("Input() not handled")
	}
	if len(res.Edits) != 1 || res.Edits[0].Text != control {
		t.Fatalf("Input() edits = %+v", res.Edits)
	}
	if res.Edits[0].From != (model.Position{Line: 0, Ch: 6}) || res.Edits[0].To != (model.Position{Line: 0, Ch: 11}) {
		t.Fatalf("Input() edit range = %+v..%+v", res.Edits[0].From, res.Edits[0].To)
	}
	if want := (model.Position{Line: 0, Ch: 6 + len(control)}); res.Cursor != want {
		t.Fatalf("Input() cursor = %+v, want %+v", res.Cursor, want)
	}

	doc, _ := uc.Document(ctx, out.WindowID)
	if doc.Text != "| a | "+control+" |" {
		t.Fatalf("document = %q", doc.Text)
	}

	res, err = uc.Change(ctx, window.ChangeInput{
		WindowID:   out.WindowID,
		Tag:        "INPUT",
		Attributes: map[string]string{"type": "checkbox", "id": "id0001"},
		Checked:    true,
	})
	if err != nil {
		t.Fatalf("Change() error = %v", err)
	}
	if !res.Handled {
		t.Fatal("Change() not handled")
	}

	stats, err := uc.Stats(ctx, out.WindowID)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.Total != 1 || stats.Completed != 1 {
		t.Fatalf("Stats() = %+v", stats)
	}
}

func TestInputIgnored(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(memory.New(nil))
	out, _ := uc.Open(ctx, window.OpenInput{DocumentID: "a.md", Text: ptr("- [ ] outside a table")})

	res, err := uc.Input(ctx, window.InputInput{WindowID: out.WindowID, Text: "]", Position: model.Position{Ch: 5}})
	if err != nil {
		t.Fatalf("Input() error = %v", err)
	}
	if res.Handled || len(res.Edits) != 0 {
		t.Fatalf("Input() = %+v, want unhandled", res)
	}
}

func TestInputInvalid(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(memory.New(nil))
	out, _ := uc.Open(ctx, window.OpenInput{DocumentID: "a.md"})

	tests := []struct {
		name  string
		input window.InputInput
		want  error
	}{
		{"empty text", window.InputInput{WindowID: out.WindowID}, window.ErrInvalidEvent},
		{"negative line", window.InputInput{WindowID: out.WindowID, Text: "]", Position: model.Position{Line: -1}}, window.ErrInvalidEvent},
		{"line past end", window.InputInput{WindowID: out.WindowID, Text: "]", Position: model.Position{Line: 9}}, document.ErrLineOutOfRange},
		{"unknown window", window.InputInput{WindowID: "nope", Text: "]"}, window.ErrWindowNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.Input(ctx, tt.input); !errors.Is(err, tt.want) {
				t.Fatalf("Input() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestChangeUnrelatedElement(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(memory.New(nil))
	text := `| <input type="checkbox" unchecked id="abcdef12"> |`
	out, _ := uc.Open(ctx, window.OpenInput{DocumentID: "a.md", Text: &text})

	if _, err := uc.Change(ctx, window.ChangeInput{WindowID: out.WindowID}); !errors.Is(err, window.ErrInvalidEvent) {
		t.Fatalf("Change() without tag error = %v, want ErrInvalidEvent", err)
	}

	res, err := uc.Change(ctx, window.ChangeInput{
		WindowID:   out.WindowID,
		Tag:        "select",
		Attributes: map[string]string{"id": "abcdef12"},
		Checked:    true,
	})
	if err != nil {
		t.Fatalf("Change() error = %v", err)
	}
	if res.Handled {
		t.Fatal("Change() on a select was handled")
	}
}

func TestInputWriteFailureRaisesNotice(t *testing.T) {
	ctx := context.Background()
	store := &toggleStore{Store: memory.New(nil)}
	uc := newUseCase(store)
	out, err := uc.Open(ctx, window.OpenInput{DocumentID: "a.md", Text: ptr("| - [ ] |")})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	store.failing.Store(true)
	res, err := uc.Input(ctx, window.InputInput{WindowID: out.WindowID, Text: "]", Position: model.Position{Ch: 7}})
	if err != nil {
		t.Fatalf("Input() error = %v, want notice only", err)
	}
	if res.Handled || len(res.Edits) != 0 {
		t.Fatalf("Input() = %+v, want no edit", res)
	}
	if len(res.Notices) != 1 || res.Notices[0].Kind != model.NoticeStoreWriteFailure {
		t.Fatalf("Input() notices = %+v", res.Notices)
	}
	if !strings.Contains(res.Notices[0].Message, "disk full") {
		t.Fatalf("notice message = %q", res.Notices[0].Message)
	}

	doc, _ := uc.Document(ctx, out.WindowID)
	if doc.Text != "| - [ ] |" {
		t.Fatalf("document changed on failed write: %q", doc.Text)
	}
}

func TestSyncThenInputConverts(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(memory.New(nil))
	out, err := uc.Open(ctx, window.OpenInput{DocumentID: "todo.md", Text: ptr("| a | - [ |")})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	// The host typed ']' but has not pushed its text: the stored line has no token.
	in := window.InputInput{WindowID: out.WindowID, Text: "]", Position: model.Position{Ch: 11}}
	res, err := uc.Input(ctx, in)
	if err != nil || res.Handled {
		t.Fatalf("Input() before Sync = %+v, %v; want unhandled", res, err)
	}

	doc, err := uc.Sync(ctx, window.SyncInput{WindowID: out.WindowID, Text: "| a | - [ ]|"})
	if err != nil {
		t.Fatalf("Sync() error = %v", err)
	}
	if doc.Text != "| a | - [ ]|" {
		t.Fatalf("Sync() text = %q", doc.Text)
	}

	res, err = uc.Input(ctx, in)
	if err != nil || !res.Handled || len(res.Edits) != 1 {
		t.Fatalf("Input() after Sync = %+v, %v; want one edit", res, err)
	}
	doc, _ = uc.Document(ctx, out.WindowID)
	if doc.Text != `| a | <input type="checkbox" unchecked id="id0001">|` {
		t.Fatalf("document = %q", doc.Text)
	}
}

func TestSyncUnknownWindow(t *testing.T) {
	uc := newUseCase(memory.New(nil))
	if _, err := uc.Sync(context.Background(), window.SyncInput{WindowID: "nope"}); !errors.Is(err, window.ErrWindowNotFound) {
		t.Fatalf("Sync() error = %v, want ErrWindowNotFound", err)
	}
}

func TestSyncReachesOtherWindows(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(memory.New(nil))
	a, _ := uc.Open(ctx, window.OpenInput{DocumentID: "a.md", Text: ptr("")})
	b, _ := uc.Open(ctx, window.OpenInput{DocumentID: "a.md"})

	if _, err := uc.Sync(ctx, window.SyncInput{WindowID: a.WindowID, Text: "| - [ ] |"}); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}
	res, err := uc.Input(ctx, window.InputInput{WindowID: b.WindowID, Text: "]", Position: model.Position{Ch: 7}})
	if err != nil || !res.Handled {
		t.Fatalf("Input() in the second window = %+v, %v", res, err)
	}
}

func TestChangeHandledReflectsWrite(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(memory.New(nil))
	text := `| <input type="checkbox" unchecked id="abcdef12"> |`
	out, _ := uc.Open(ctx, window.OpenInput{DocumentID: "a.md", Text: &text})

	change := window.ChangeInput{
		WindowID:   out.WindowID,
		Tag:        "input",
		Attributes: map[string]string{"type": "checkbox", "id": "abcdef12"},
	}
	res, err := uc.Change(ctx, change)
	if err != nil || res.Handled {
		t.Fatalf("Change() to the stored state = %+v, %v; want unhandled", res, err)
	}

	change.Checked = true
	res, err = uc.Change(ctx, change)
	if err != nil || !res.Handled {
		t.Fatalf("Change() to checked = %+v, %v; want handled", res, err)
	}
}

func TestDocumentRevision(t *testing.T) {
	ctx := context.Background()
	repo, err := sqliteRepo.Open(":memory:")
	if err != nil {
		t.Fatalf("sqlite Open: %v", err)
	}
	defer repo.Close()

	uc := newUseCase(repo)
	out, err := uc.Open(ctx, window.OpenInput{DocumentID: "a.md", Text: ptr("v1")})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	doc, err := uc.Sync(ctx, window.SyncInput{WindowID: out.WindowID, Text: "v2"})
	if err != nil {
		t.Fatalf("Sync() error = %v", err)
	}
	if doc.Revision != 2 {
		t.Fatalf("revision after Sync = %d, want 2", doc.Revision)
	}

	mem := newUseCase(memory.New(nil))
	out, _ = mem.Open(ctx, window.OpenInput{DocumentID: "a.md"})
	if doc, _ := mem.Document(ctx, out.WindowID); doc.Revision != 0 {
		t.Fatalf("memory store revision = %d, want 0", doc.Revision)
	}
}
