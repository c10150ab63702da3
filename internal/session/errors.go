package session

import "errors"

// ErrEmptyLabel is returned when a label commit carries no usable text.
var ErrEmptyLabel = errors.New("label text is empty")

// ErrItemNotFound is returned when a label targets an id the session does
// not contain.
var ErrItemNotFound = errors.New("item not found in session")

// ErrLocked is returned when another process holds the session lock.
var ErrLocked = errors.New("session is locked by another process")
