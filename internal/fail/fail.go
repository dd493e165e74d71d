// Package fail normalizes SDL's failure signaling into Go errors.
//
// Every SDL call reports failure through a sentinel return value (false, a
// null pointer, a negative count, a zero id) and leaves a human-readable
// diagnostic in a per-thread buffer readable via SDL_GetError. The helpers
// here compare a result against its sentinel, capture the diagnostic, notify
// the registered observer, and hand the caller a single uniform error kind.
//
// The diagnostic buffer is owned by SDL and is overwritten by the next
// failing call on the same thread. The helpers copy it into the returned
// error immediately, so callers never touch the volatile buffer themselves.
package fail

import (
	"errors"
	"fmt"
	"sync/atomic"
	"unsafe"
)

// ErrNative is the uniform failure reported for every native call that
// signals its sentinel value. Distinctions between failure causes live only
// in the diagnostic text, matching SDL's own error model. Use errors.Is to
// match it.
var ErrNative = errors.New("sdl3: native call failed")

// Error carries the diagnostic string captured at the moment a native call
// failed. It wraps ErrNative so errors.Is(err, ErrNative) holds.
type Error struct {
	// Message is a copy of SDL's diagnostic string. It may be empty when
	// the native library set no error text.
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return "sdl3: unknown error"
	}
	return "sdl3: " + e.Message
}

func (e *Error) Unwrap() error { return ErrNative }

// Store abstracts the diagnostic string storage. The cgo layer registers a
// store backed by SDL_GetError/SDL_SetError/SDL_ClearError at init time;
// until then a process-global in-memory store is used, which keeps the
// trampoline logic runnable (and testable) without the native library.
type Store interface {
	// LastError returns the current diagnostic string, or "" when clear.
	LastError() string
	// SetError replaces the diagnostic string.
	SetError(msg string)
	// ClearError resets the diagnostic string to "no error".
	ClearError()
}

type storeBox struct{ s Store }

var store atomic.Pointer[storeBox]

func init() {
	store.Store(&storeBox{s: &memStore{}})
}

// SetStore installs the diagnostic store. Called once from the cgo layer's
// init; tests may swap in a fake and restore the previous store afterwards.
func SetStore(s Store) (prev Store) {
	old := store.Swap(&storeBox{s: s})
	return old.s
}

func current() Store { return store.Load().s }

// LastError returns the current diagnostic string without consuming it.
func LastError() string { return current().LastError() }

// ClearError resets the diagnostic string so the next read reports no error.
func ClearError() { current().ClearError() }

type observerBox struct{ fn func(msg string) }

var observer atomic.Pointer[observerBox]

// SetObserver registers a hook invoked exactly once for every failure the
// trampoline signals, with the diagnostic string captured for that failure.
// Pass nil to remove the hook. The previous hook is returned so callers can
// chain or restore it.
//
// The hook runs on whatever goroutine triggered the failing call and must
// not call back into the bindings.
func SetObserver(fn func(msg string)) (prev func(msg string)) {
	old := observer.Swap(&observerBox{fn: fn})
	if old == nil {
		return nil
	}
	return old.fn
}

func notify(msg string) {
	if box := observer.Load(); box != nil && box.fn != nil {
		box.fn(msg)
	}
}

// Err captures the current diagnostic, notifies the observer, and returns
// the uniform failure. It is the terminal step of every trampoline below.
func Err() error {
	msg := current().LastError()
	notify(msg)
	return &Error{Message: msg}
}

// CheckBool maps SDL's boolean convention: true is success, false means the
// diagnostic string describes what went wrong.
func CheckBool(ok bool) error {
	if ok {
		return nil
	}
	return Err()
}

// CheckPtr maps SDL's pointer convention: a null result signals failure.
// On success the pointer is returned unchanged.
func CheckPtr(p unsafe.Pointer) (unsafe.Pointer, error) {
	if p == nil {
		return nil, Err()
	}
	return p, nil
}

// CheckCode maps SDL's count convention: a negative result signals failure,
// anything else is the successful value, returned unchanged.
func CheckCode(code int) (int, error) {
	if code < 0 {
		return code, Err()
	}
	return code, nil
}

// CheckID maps SDL's id convention: zero is the reserved invalid id.
func CheckID(id uint64) (uint64, error) {
	if id == 0 {
		return 0, Err()
	}
	return id, nil
}

// SetError stores a formatted diagnostic and reports failure, mirroring
// SDL_SetError's always-false contract. The observer sees the message once.
func SetError(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	current().SetError(msg)
	notify(msg)
	return &Error{Message: msg}
}

// InvalidParam stores the canonical invalid-parameter diagnostic for the
// named parameter and reports failure.
func InvalidParam(name string) error {
	return SetError("Parameter '%s' is invalid", name)
}
