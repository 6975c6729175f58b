package cache

import (
	"errors"
	"fmt"
)

// Kind classifies a cache [Error]. New kinds may be added; callers should
// switch on Kind with a default branch.
type Kind uint8

const (
	// KindUnknown is reported by [KindOf] for errors that did not originate
	// from a backend.
	KindUnknown Kind = iota
	// KindKeyAlreadyPresent means Store was called with a key that already
	// holds a value.
	KindKeyAlreadyPresent
)

// String returns a stable, lower-case name suitable for metric labels.
func (k Kind) String() string {
	switch k {
	case KindKeyAlreadyPresent:
		return "key_already_present"
	default:
		return "unknown"
	}
}

// ErrKeyAlreadyPresent matches any [Error] of kind [KindKeyAlreadyPresent]
// via errors.Is.
var ErrKeyAlreadyPresent = errors.New("cache: key already present")

// Error is the error type returned by backends. Error values are comparable,
// so a test can check a result with ==.
type Error struct {
	Kind Kind
	Key  Key
}

// KeyAlreadyPresent returns the error Store reports for a duplicate key.
func KeyAlreadyPresent(key Key) *Error {
	return &Error{Kind: KindKeyAlreadyPresent, Key: key}
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindKeyAlreadyPresent:
		return fmt.Sprintf("cache: key %d already present", e.Key)
	default:
		return fmt.Sprintf("cache: %s error on key %d", e.Kind, e.Key)
	}
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	return e.Kind == KindKeyAlreadyPresent && target == ErrKeyAlreadyPresent
}

// KindOf returns the kind of the first [Error] in err's chain, or
// [KindUnknown] when there is none.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindUnknown
}
