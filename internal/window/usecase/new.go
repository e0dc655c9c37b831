package usecase

import (
	"sync"

	"table-checkbox-sync/internal/document"
	"table-checkbox-sync/internal/events"
	"table-checkbox-sync/internal/surface"
	"table-checkbox-sync/internal/window"
	pkgLog "table-checkbox-sync/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	store    document.Store
	registry *window.Registry

	mu       sync.RWMutex
	sessions map[string]*session
}

// session is the host-side state of one open window.
type session struct {
	id      string
	buffer  *surface.Buffer
	emitter *events.Emitter
	notices *noticeQueue
}

// New creates a new window UseCase instance. Windows opened through it are
// attached to registry.
func New(l pkgLog.Logger, store document.Store, registry *window.Registry) window.UseCase {
	return &implUseCase{
		l:        l,
		store:    store,
		registry: registry,
		sessions: make(map[string]*session),
	}
}
