package utils

import (
	"sync"
	"sync/atomic"

	"github.com/petermattis/goid"
)

// OwnedMutex is a sync.Mutex that remembers which goroutine holds it, so code running under the
// lock can recognize its own reentrant calls instead of deadlocking on them
type OwnedMutex struct {
	mutex sync.Mutex
	owner atomic.Int64
}

func (m *OwnedMutex) Lock() {
	m.mutex.Lock()
	m.owner.Store(goid.Get())
}

func (m *OwnedMutex) Unlock() {
	m.owner.Store(0)
	m.mutex.Unlock()
}

// HeldByCurrent reports whether the calling goroutine holds the lock. Only the owner can ever
// observe its own id here, so the answer is exact for the caller even without the lock.
func (m *OwnedMutex) HeldByCurrent() bool {
	return m.owner.Load() == goid.Get()
}
