package correlator

import (
	"fmt"

	"table-checkbox-sync/internal/document"
	"table-checkbox-sync/internal/surface"
	pkgLog "table-checkbox-sync/pkg/log"
)

// InputCorrelator turns a just-completed checkbox token inside a table row
// into an identified control. One instance serves one editing surface.
type InputCorrelator struct {
	l         pkgLog.Logger
	store     document.Store
	guard     *document.Guard
	surface   surface.Surface
	allocator Allocator
	notifier  Notifier
	strategy  Strategy
	state     State
}

// InputConfig is the dependency bag for NewInput.
type InputConfig struct {
	Logger    pkgLog.Logger
	Store     document.Store
	Guard     *document.Guard
	Surface   surface.Surface
	Allocator Allocator
	Notifier  Notifier
	Strategy  Strategy
}

// NewInput creates an InputCorrelator.
func NewInput(cfg InputConfig) (*InputCorrelator, error) {
	strategy := cfg.Strategy
	if strategy == "" {
		strategy = StrategyApplied
	}
	if strategy != StrategyApplied && strategy != StrategyPending {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, cfg.Strategy)
	}
	guard := cfg.Guard
	if guard == nil {
		guard = document.NewGuard()
	}
	return &InputCorrelator{
		l:         cfg.Logger,
		store:     cfg.Store,
		guard:     guard,
		surface:   cfg.Surface,
		allocator: cfg.Allocator,
		notifier:  cfg.Notifier,
		strategy:  strategy,
	}, nil
}

// ToggleCorrelator maps a state change of a rendered control back onto the
// control tag in the document text.
type ToggleCorrelator struct {
	l            pkgLog.Logger
	store        document.Store
	guard        *document.Guard
	docID        string
	notifier     Notifier
	nativeMarker string
}

// ToggleConfig is the dependency bag for NewToggle.
type ToggleConfig struct {
	Logger       pkgLog.Logger
	Store        document.Store
	Guard        *document.Guard
	DocumentID   string
	Notifier     Notifier
	NativeMarker string
}

// NewToggle creates a ToggleCorrelator.
func NewToggle(cfg ToggleConfig) *ToggleCorrelator {
	marker := cfg.NativeMarker
	if marker == "" {
		marker = DefaultNativeMarker
	}
	guard := cfg.Guard
	if guard == nil {
		guard = document.NewGuard()
	}
	return &ToggleCorrelator{
		l:            cfg.Logger,
		store:        cfg.Store,
		guard:        guard,
		docID:        cfg.DocumentID,
		notifier:     cfg.Notifier,
		nativeMarker: marker,
	}
}
