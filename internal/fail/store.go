package fail

import "sync"

// memStore is the fallback diagnostic store used when the cgo layer has not
// registered SDL's native per-thread buffer. Unlike the native store it is
// process-global rather than per-thread; it exists so pure-Go consumers of
// the trampoline (tooling, tests) observe the same set/clear/read contract.
type memStore struct {
	mu  sync.Mutex
	msg string
}

func (m *memStore) LastError() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.msg
}

func (m *memStore) SetError(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.msg = msg
}

func (m *memStore) ClearError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.msg = ""
}
