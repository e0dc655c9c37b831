package correlator_test

import (
	"context"
	"sync"

	"table-checkbox-sync/internal/document"
	"table-checkbox-sync/internal/model"
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

// fixedAllocator returns ids in order and records the text it was given.
type fixedAllocator struct {
	ids   []string
	calls int
	seen  []string
}

func (a *fixedAllocator) Allocate(ctx context.Context, currentText string) (string, error) {
	a.seen = append(a.seen, currentText)
	id := a.ids[a.calls%len(a.ids)]
	a.calls++
	return id, nil
}

// failingStore rejects every write.
type failingStore struct {
	document.Store
	err error
}

func (f failingStore) WriteWholeText(ctx context.Context, docID, text string) error { return f.err }

type noticeRecorder struct {
	mu      sync.Mutex
	notices []model.Notice
}

func (r *noticeRecorder) Notify(ctx context.Context, n model.Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}
