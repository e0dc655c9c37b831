package correlator

import "errors"

var (
	// ErrStoreWrite wraps a rejected document write. The user gets one notice per event.
	ErrStoreWrite = errors.New("document store rejected the write")
	// ErrUnknownStrategy is returned for a Strategy other than applied or pending.
	ErrUnknownStrategy = errors.New("unknown line acquisition strategy")
)
