package document

import "sync"

// Guard serializes read-modify-write cycles per document so that two
// windows over the same document never interleave their writes.
type Guard struct {
	mu    sync.Mutex
	locks map[string]*docLock
}

type docLock struct {
	mu   sync.Mutex
	refs int
}

// NewGuard creates an empty Guard.
func NewGuard() *Guard {
	return &Guard{locks: make(map[string]*docLock)}
}

// Do runs fn while holding the lock of docID.
func (g *Guard) Do(docID string, fn func() error) error {
	g.mu.Lock()
	l, ok := g.locks[docID]
	if !ok {
		l = &docLock{}
		g.locks[docID] = l
	}
	l.refs++
	g.mu.Unlock()

	l.mu.Lock()
	defer func() {
		l.mu.Unlock()
		g.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(g.locks, docID)
		}
		g.mu.Unlock()
	}()

	return fn()
}
