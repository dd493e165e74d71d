package fail

import (
	"errors"
	"testing"
	"unsafe"
)

// Verify at compile time that Error unwraps to the uniform failure.
var _ interface{ Unwrap() error } = (*Error)(nil)

// withFakeStore swaps in a fresh in-memory store for the duration of a test
// and restores whatever was registered before.
func withFakeStore(t *testing.T) *memStore {
	t.Helper()
	s := &memStore{}
	prev := SetStore(s)
	t.Cleanup(func() { SetStore(prev) })
	return s
}

func withObserver(t *testing.T) *[]string {
	t.Helper()
	var seen []string
	prev := SetObserver(func(msg string) { seen = append(seen, msg) })
	t.Cleanup(func() { SetObserver(prev) })
	return &seen
}

func TestCheckBool(t *testing.T) {
	s := withFakeStore(t)
	seen := withObserver(t)

	if err := CheckBool(true); err != nil {
		t.Fatalf("CheckBool(true) = %v, want nil", err)
	}
	if len(*seen) != 0 {
		t.Fatalf("observer called %d times on success, want 0", len(*seen))
	}

	s.SetError("window creation failed")
	err := CheckBool(false)
	if err == nil {
		t.Fatal("CheckBool(false) = nil, want error")
	}
	if !errors.Is(err, ErrNative) {
		t.Errorf("errors.Is(err, ErrNative) = false")
	}
	var e *Error
	if !errors.As(err, &e) || e.Message != "window creation failed" {
		t.Errorf("captured message = %q, want %q", e.Message, "window creation failed")
	}
	if len(*seen) != 1 || (*seen)[0] != "window creation failed" {
		t.Errorf("observer saw %v, want exactly one call with the diagnostic", *seen)
	}
}

func TestCheckPtr(t *testing.T) {
	s := withFakeStore(t)
	seen := withObserver(t)

	var x int
	p, err := CheckPtr(unsafe.Pointer(&x))
	if err != nil {
		t.Fatalf("CheckPtr(non-nil) = %v, want nil", err)
	}
	if p != unsafe.Pointer(&x) {
		t.Error("CheckPtr changed the successful value")
	}
	if len(*seen) != 0 {
		t.Fatalf("observer called on success")
	}

	s.SetError("out of memory")
	if _, err := CheckPtr(nil); err == nil {
		t.Fatal("CheckPtr(nil) = nil, want error")
	}
	if len(*seen) != 1 || (*seen)[0] != "out of memory" {
		t.Errorf("observer saw %v", *seen)
	}
}

func TestCheckCode(t *testing.T) {
	withFakeStore(t)
	tests := []struct {
		name    string
		code    int
		wantErr bool
	}{
		{"zero is success", 0, false},
		{"positive count passes through", 42, false},
		{"negative signals failure", -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CheckCode(tt.code)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckCode(%d) err = %v, wantErr %v", tt.code, err, tt.wantErr)
			}
			if got != tt.code {
				t.Errorf("CheckCode(%d) = %d, result must be unchanged", tt.code, got)
			}
		})
	}
}

func TestCheckID(t *testing.T) {
	withFakeStore(t)
	if _, err := CheckID(0); err == nil {
		t.Error("CheckID(0) = nil, want error")
	}
	id, err := CheckID(7)
	if err != nil || id != 7 {
		t.Errorf("CheckID(7) = (%d, %v), want (7, nil)", id, err)
	}
}

func TestSetErrorAndClear(t *testing.T) {
	withFakeStore(t)

	err := SetError("Hello world")
	if err == nil {
		t.Fatal("SetError must report failure to the caller")
	}
	if got := LastError(); got != "Hello world" {
		t.Errorf("LastError() = %q, want %q", got, "Hello world")
	}

	// The next set overwrites, the way SDL's per-thread buffer does.
	_ = SetError("second")
	if got := LastError(); got != "second" {
		t.Errorf("LastError() after overwrite = %q, want %q", got, "second")
	}

	ClearError()
	if got := LastError(); got != "" {
		t.Errorf("LastError() after clear = %q, want empty", got)
	}
}

func TestInvalidParam(t *testing.T) {
	withFakeStore(t)
	seen := withObserver(t)

	err := InvalidParam("Hello world")
	if err == nil {
		t.Fatal("InvalidParam must report failure")
	}
	const want = "Parameter 'Hello world' is invalid"
	if got := LastError(); got != want {
		t.Errorf("LastError() = %q, want %q", got, want)
	}
	if err.Error() != "sdl3: "+want {
		t.Errorf("err.Error() = %q", err.Error())
	}
	if len(*seen) != 1 || (*seen)[0] != want {
		t.Errorf("observer saw %v, want one call with %q", *seen, want)
	}
}

func TestErrEmptyDiagnostic(t *testing.T) {
	withFakeStore(t)
	err := Err()
	if err.Error() != "sdl3: unknown error" {
		t.Errorf("Err() with no diagnostic = %q", err.Error())
	}
}

func TestObserverRemoval(t *testing.T) {
	s := withFakeStore(t)
	calls := 0
	prev := SetObserver(func(string) { calls++ })
	t.Cleanup(func() { SetObserver(prev) })

	s.SetError("boom")
	_ = CheckBool(false)
	SetObserver(nil)
	_ = CheckBool(false)
	if calls != 1 {
		t.Errorf("observer called %d times, want 1 (removed before second failure)", calls)
	}
}
