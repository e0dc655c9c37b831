package window

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"table-checkbox-sync/internal/correlator"
	"table-checkbox-sync/internal/document"
	"table-checkbox-sync/internal/events"
	pkgLog "table-checkbox-sync/pkg/log"
)

// Registry tracks open windows. Each attached window owns exactly one
// InputCorrelator and one ToggleCorrelator subscribed to its events, and an
// event source serves at most one window.
type Registry struct {
	l         pkgLog.Logger
	store     document.Store
	guard     *document.Guard
	allocator correlator.Allocator
	cfg       Config

	mu       sync.Mutex
	attached map[string]*attachment
	sources  map[events.Source]string
}

type attachment struct {
	window  Window
	release []func()
}

// NewRegistry creates an empty Registry. guard may be shared with other
// components writing to the same store.
func NewRegistry(l pkgLog.Logger, store document.Store, guard *document.Guard, allocator correlator.Allocator, cfg Config) *Registry {
	if guard == nil {
		guard = document.NewGuard()
	}
	return &Registry{
		l:         l,
		store:     store,
		guard:     guard,
		allocator: allocator,
		cfg:       cfg,
		attached:  make(map[string]*attachment),
		sources:   make(map[events.Source]string),
	}
}

// Attach subscribes the correlator pair to w. It reports false when w is
// already attached, in which case nothing changes. w.Events must be a
// comparable value, normally a pointer, and may not already serve a window
// with another id.
func (r *Registry) Attach(ctx context.Context, w Window) (bool, error) {
	if w.ID == "" || w.Surface == nil || w.Events == nil || !reflect.TypeOf(w.Events).Comparable() {
		return false, ErrInvalidWindow
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.attached[w.ID]; ok {
		return false, nil
	}
	if owner, ok := r.sources[w.Events]; ok {
		return false, fmt.Errorf("%w: %s", ErrSourceAttached, owner)
	}

	input, err := correlator.NewInput(correlator.InputConfig{
		Logger:    r.l,
		Store:     r.store,
		Guard:     r.guard,
		Surface:   w.Surface,
		Allocator: r.allocator,
		Notifier:  w.Notifier,
		Strategy:  r.cfg.Strategy,
	})
	if err != nil {
		return false, fmt.Errorf("window.Attach %s: %w", w.ID, err)
	}
	toggle := correlator.NewToggle(correlator.ToggleConfig{
		Logger:       r.l,
		Store:        r.store,
		Guard:        r.guard,
		DocumentID:   w.Surface.DocumentID(),
		Notifier:     w.Notifier,
		NativeMarker: r.cfg.NativeMarker,
	})

	r.sources[w.Events] = w.ID
	r.attached[w.ID] = &attachment{
		window: w,
		release: []func(){
			w.Events.OnInsert(input.HandleInsert),
			w.Events.OnChange(toggle.HandleChange),
		},
	}
	r.l.Infof(ctx, "window.Attach: %s on %s", w.ID, w.Surface.DocumentID())
	return true, nil
}

// Detach releases the listeners of window id. It reports whether the
// window was attached.
func (r *Registry) Detach(ctx context.Context, id string) bool {
	r.mu.Lock()
	a, ok := r.attached[id]
	if ok {
		delete(r.attached, id)
		delete(r.sources, a.window.Events)
	}
	r.mu.Unlock()

	if !ok {
		return false
	}
	for _, release := range a.release {
		release()
	}
	r.l.Infof(ctx, "window.Detach: %s", id)
	return true
}

// Close detaches every tracked window.
func (r *Registry) Close(ctx context.Context) {
	r.mu.Lock()
	ids := make([]string, 0, len(r.attached))
	for id := range r.attached {
		ids = append(ids, id)
	}
	r.mu.Unlock()

	for _, id := range ids {
		r.Detach(ctx, id)
	}
}

// Guard returns the per-document lock shared by every correlator of the
// registry. Other writers to the same store must take it too.
func (r *Registry) Guard() *document.Guard { return r.guard }

// Get returns the attached window id.
func (r *Registry) Get(id string) (Window, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.attached[id]
	if !ok {
		return Window{}, false
	}
	return a.window, true
}

// Len returns the number of attached windows.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.attached)
}
