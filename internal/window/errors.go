package window

import "errors"

var (
	ErrWindowNotFound = errors.New("window not found")
	ErrInvalidWindow  = errors.New("incomplete window")
	ErrSourceAttached = errors.New("event source already attached to another window")
	ErrInvalidEvent   = errors.New("invalid event")
	ErrInvalidInput   = errors.New("invalid input")
)
