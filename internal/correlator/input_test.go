package correlator_test

import (
	"context"
	"errors"
	"testing"

	"table-checkbox-sync/internal/checkbox"
	"table-checkbox-sync/internal/correlator"
	"table-checkbox-sync/internal/document"
	"table-checkbox-sync/internal/document/repository/memory"
	"table-checkbox-sync/internal/model"
	"table-checkbox-sync/internal/surface"
	"table-checkbox-sync/pkg/utf16x"
)

const docID = "todo.md"

func newInput(t *testing.T, store document.Store, strategy correlator.Strategy, n correlator.Notifier) (*correlator.InputCorrelator, *surface.Buffer, *fixedAllocator) {
	t.Helper()
	buf := surface.NewBuffer(store, docID)
	alloc := &fixedAllocator{ids: []string{"X1y2Z3a4", "B5c6D7e8"}}
	c, err := correlator.NewInput(correlator.InputConfig{
		Logger:    &mockLogger{},
		Store:     store,
		Surface:   buf,
		Allocator: alloc,
		Notifier:  n,
		Strategy:  strategy,
	})
	if err != nil {
		t.Fatalf("NewInput: %v", err)
	}
	return c, buf, alloc
}

func TestHandleInsertConvertsTableCheckbox(t *testing.T) {
	ctx := context.Background()
	store := memory.New(map[string]string{docID: "# Todo\n| a | - [ ] |\n"})
	c, buf, alloc := newInput(t, store, correlator.StrategyApplied, nil)

	converted, err := c.HandleInsert(ctx, model.InsertEvent{Text: "]", Position: model.Position{Line: 1, Ch: 11}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !converted {
		t.Fatal("expected conversion")
	}

	text, _ := store.ReadWholeText(ctx, docID)
	want := "# Todo\n| a | <input type=\"checkbox\" unchecked id=\"X1y2Z3a4\"> |\n"
	if text != want {
		t.Errorf("got %q, want %q", text, want)
	}

	edits := buf.Drain()
	if len(edits) != 1 {
		t.Fatalf("expected 1 edit, got %d", len(edits))
	}
	if edits[0].From != (model.Position{Line: 1, Ch: 6}) || edits[0].To != (model.Position{Line: 1, Ch: 11}) {
		t.Errorf("expected the 5-character token range, got %+v", edits[0])
	}

	control := checkbox.TokenToControl("X1y2Z3a4")
	if got := buf.Cursor(); got != (model.Position{Line: 1, Ch: 6 + utf16x.Len(control)}) {
		t.Errorf("unexpected cursor %+v", got)
	}

	if len(alloc.seen) != 1 || alloc.seen[0] != "# Todo\n| a | - [ ] |\n" {
		t.Errorf("allocator must see the whole document, got %q", alloc.seen)
	}
	if c.State() != correlator.StateIdle {
		t.Errorf("expected idle after the event, got %s", c.State())
	}
}

func TestHandleInsertIgnored(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		ev   model.InsertEvent
	}{
		{"other character", "| a | - [ ] |", model.InsertEvent{Text: "x", Position: model.Position{Ch: 11}}},
		{"list item", "- [ ] buy milk", model.InsertEvent{Text: "]", Position: model.Position{Ch: 5}}},
		{"bracket outside checkbox", "| a | arr[0] |", model.InsertEvent{Text: "]", Position: model.Position{Ch: 12}}},
		{"token not at cursor", "| - [ ] | x] |", model.InsertEvent{Text: "]", Position: model.Position{Ch: 12}}},
		{"already converted", `| a | <input type="checkbox" unchecked id="abc123"> |`, model.InsertEvent{Text: "]", Position: model.Position{Ch: 20}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := memory.New(map[string]string{docID: tt.doc})
			c, buf, alloc := newInput(t, store, correlator.StrategyApplied, nil)

			converted, err := c.HandleInsert(ctx, tt.ev)
			if err != nil || converted {
				t.Fatalf("expected no-op, got converted=%v err=%v", converted, err)
			}
			text, _ := store.ReadWholeText(ctx, docID)
			if text != tt.doc {
				t.Errorf("text changed to %q", text)
			}
			if len(buf.Drain()) != 0 || alloc.calls != 0 {
				t.Error("no edit or allocation expected")
			}
		})
	}
}

func TestHandleInsertIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := memory.New(map[string]string{docID: "| a | - [ ] |"})
	c, _, _ := newInput(t, store, correlator.StrategyApplied, nil)
	ev := model.InsertEvent{Text: "]", Position: model.Position{Ch: 11}}

	if ok, err := c.HandleInsert(ctx, ev); !ok || err != nil {
		t.Fatalf("first event: %v %v", ok, err)
	}
	once, _ := store.ReadWholeText(ctx, docID)

	if ok, err := c.HandleInsert(ctx, ev); ok || err != nil {
		t.Fatalf("second event should be a no-op: %v %v", ok, err)
	}
	twice, _ := store.ReadWholeText(ctx, docID)
	if once != twice {
		t.Errorf("re-evaluation changed the text: %q", twice)
	}
}

func TestHandleInsertPendingStrategy(t *testing.T) {
	// The host has not applied ']' yet; the cursor sits where it will go.
	tests := []struct {
		name     string
		stored   string
		ch       int
		want     string
		wantFrom int
		wantTo   int
	}{
		{
			name:     "space before closing pipe",
			stored:   "| a | - [  |",
			ch:       10,
			want:     `| a | <input type="checkbox" unchecked id="X1y2Z3a4"> |`,
			wantFrom: 6,
			wantTo:   10,
		},
		{
			name:     "token against closing pipe",
			stored:   "| a | - [|",
			ch:       9,
			want:     `| a | <input type="checkbox" unchecked id="X1y2Z3a4">|`,
			wantFrom: 6,
			wantTo:   9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := memory.New(map[string]string{docID: tt.stored})
			c, buf, _ := newInput(t, store, correlator.StrategyPending, nil)

			converted, err := c.HandleInsert(ctx, model.InsertEvent{Text: "]", Position: model.Position{Ch: tt.ch}})
			if err != nil || !converted {
				t.Fatalf("expected conversion, got %v %v", converted, err)
			}

			text, _ := store.ReadWholeText(ctx, docID)
			if text != tt.want {
				t.Errorf("unexpected text %q", text)
			}
			edits := buf.Drain()
			if len(edits) != 1 || edits[0].From.Ch != tt.wantFrom || edits[0].To.Ch != tt.wantTo {
				t.Errorf("unexpected edits %+v", edits)
			}
		})
	}
}

func TestHandleInsertMultiByteLine(t *testing.T) {
	ctx := context.Background()
	line := "| 日本😀 | - [ ] |"
	store := memory.New(map[string]string{docID: line})
	c, buf, _ := newInput(t, store, correlator.StrategyApplied, nil)

	// Cursor after ']' in UTF-16 units.
	ch := utf16x.Len("| 日本😀 | - [ ]")
	converted, err := c.HandleInsert(ctx, model.InsertEvent{Text: "]", Position: model.Position{Ch: ch}})
	if err != nil || !converted {
		t.Fatalf("expected conversion, got %v %v", converted, err)
	}

	text, _ := store.ReadWholeText(ctx, docID)
	if text != `| 日本😀 | <input type="checkbox" unchecked id="X1y2Z3a4"> |` {
		t.Errorf("unexpected text %q", text)
	}
	edits := buf.Drain()
	if edits[0].From.Ch != utf16x.Len("| 日本😀 | ") {
		t.Errorf("unexpected start %d", edits[0].From.Ch)
	}
}

func TestHandleInsertSecondTokenOnLine(t *testing.T) {
	ctx := context.Background()
	store := memory.New(map[string]string{docID: `| <input type="checkbox" unchecked id="abc123"> | - [] |`})
	c, _, _ := newInput(t, store, correlator.StrategyApplied, nil)

	ch := len(`| <input type="checkbox" unchecked id="abc123"> | - []`)
	converted, err := c.HandleInsert(ctx, model.InsertEvent{Text: "]", Position: model.Position{Ch: ch}})
	if err != nil || !converted {
		t.Fatalf("expected conversion, got %v %v", converted, err)
	}
	text, _ := store.ReadWholeText(ctx, docID)
	want := `| <input type="checkbox" unchecked id="abc123"> | <input type="checkbox" unchecked id="X1y2Z3a4"> |`
	if text != want {
		t.Errorf("got %q", text)
	}
}

func TestHandleInsertWriteFailure(t *testing.T) {
	ctx := context.Background()
	base := memory.New(map[string]string{docID: "| a | - [ ] |"})
	boom := errors.New("read-only vault")
	rec := &noticeRecorder{}
	c, _, _ := newInput(t, failingStore{Store: base, err: boom}, correlator.StrategyApplied, rec)

	converted, err := c.HandleInsert(ctx, model.InsertEvent{Text: "]", Position: model.Position{Ch: 11}})
	if converted {
		t.Error("failed write must not report a conversion")
	}
	if !errors.Is(err, correlator.ErrStoreWrite) || !errors.Is(err, boom) {
		t.Errorf("expected ErrStoreWrite wrapping the cause, got %v", err)
	}
	if len(rec.notices) != 1 || rec.notices[0].Kind != model.NoticeStoreWriteFailure {
		t.Errorf("expected one store-failure notice, got %+v", rec.notices)
	}
	text, _ := base.ReadWholeText(ctx, docID)
	if text != "| a | - [ ] |" {
		t.Errorf("text changed: %q", text)
	}
}

func TestHandleInsertMissingLine(t *testing.T) {
	store := memory.New(map[string]string{docID: "one line"})
	c, _, _ := newInput(t, store, correlator.StrategyApplied, nil)

	_, err := c.HandleInsert(context.Background(), model.InsertEvent{Text: "]", Position: model.Position{Line: 4}})
	if !errors.Is(err, document.ErrLineOutOfRange) {
		t.Errorf("expected ErrLineOutOfRange, got %v", err)
	}
}

func TestNewInputStrategy(t *testing.T) {
	if _, err := correlator.NewInput(correlator.InputConfig{Strategy: "sometimes"}); !errors.Is(err, correlator.ErrUnknownStrategy) {
		t.Errorf("expected ErrUnknownStrategy, got %v", err)
	}
	if _, err := correlator.NewInput(correlator.InputConfig{}); err != nil {
		t.Errorf("empty strategy should default to applied, got %v", err)
	}
}
