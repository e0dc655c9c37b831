package events

import (
	"context"
	"errors"
	"sync"

	"table-checkbox-sync/internal/model"
)

// Emitter is an in-process Source. Dispatch is synchronous and serialized:
// one event runs all its handlers to completion before the next starts.
type Emitter struct {
	dispatch sync.Mutex

	mu       sync.Mutex
	nextID   int
	inserts  map[int]InsertHandler
	changes  map[int]ChangeHandler
	insertIx []int
	changeIx []int
}

var _ Source = (*Emitter)(nil)

// NewEmitter creates an Emitter with no listeners.
func NewEmitter() *Emitter {
	return &Emitter{
		inserts: make(map[int]InsertHandler),
		changes: make(map[int]ChangeHandler),
	}
}

func (e *Emitter) OnInsert(h InsertHandler) func() {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextID
	e.nextID++
	e.inserts[id] = h
	e.insertIx = append(e.insertIx, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Lock()
			defer e.mu.Unlock()
			delete(e.inserts, id)
			e.insertIx = without(e.insertIx, id)
		})
	}
}

func (e *Emitter) OnChange(h ChangeHandler) func() {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextID
	e.nextID++
	e.changes[id] = h
	e.changeIx = append(e.changeIx, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Lock()
			defer e.mu.Unlock()
			delete(e.changes, id)
			e.changeIx = without(e.changeIx, id)
		})
	}
}

// EmitInsert runs every insert handler in subscription order. The event is
// handled if any handler consumed it; handler errors are joined.
func (e *Emitter) EmitInsert(ctx context.Context, ev model.InsertEvent) (bool, error) {
	e.dispatch.Lock()
	defer e.dispatch.Unlock()

	var (
		handled bool
		errs    []error
	)
	for _, h := range e.insertHandlers() {
		ok, err := h(ctx, ev)
		if err != nil {
			errs = append(errs, err)
		}
		handled = handled || ok
	}
	return handled, errors.Join(errs...)
}

// EmitChange runs every change handler in subscription order. The event is
// handled if any handler changed the document.
func (e *Emitter) EmitChange(ctx context.Context, ev model.ChangeEvent) (bool, error) {
	e.dispatch.Lock()
	defer e.dispatch.Unlock()

	var (
		handled bool
		errs    []error
	)
	for _, h := range e.changeHandlers() {
		ok, err := h(ctx, ev)
		if err != nil {
			errs = append(errs, err)
		}
		handled = handled || ok
	}
	return handled, errors.Join(errs...)
}

// Listeners returns the number of insert and change subscriptions.
func (e *Emitter) Listeners() (inserts, changes int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.inserts), len(e.changes)
}

func (e *Emitter) insertHandlers() []InsertHandler {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]InsertHandler, 0, len(e.insertIx))
	for _, id := range e.insertIx {
		out = append(out, e.inserts[id])
	}
	return out
}

func (e *Emitter) changeHandlers() []ChangeHandler {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]ChangeHandler, 0, len(e.changeIx))
	for _, id := range e.changeIx {
		out = append(out, e.changes[id])
	}
	return out
}

func without(ids []int, id int) []int {
	for i, v := range ids {
		if v == id {
			return append(ids[:i:i], ids[i+1:]...)
		}
	}
	return ids
}
