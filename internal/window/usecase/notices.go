package usecase

import (
	"context"
	"sync"

	"table-checkbox-sync/internal/model"
)

// noticeQueue buffers notices raised while an event is dispatched.
type noticeQueue struct {
	mu      sync.Mutex
	pending []model.Notice
}

func (q *noticeQueue) Notify(ctx context.Context, n model.Notice) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, n)
}

func (q *noticeQueue) drain() []model.Notice {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.pending
	q.pending = nil
	return out
}
