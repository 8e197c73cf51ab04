package heaptest

import (
	"sync/atomic"
	"unsafe"

	"github.com/vkngwrapper/freetrim/heap"
)

// RecordingHook is a deallocation observer that counts the deallocations it sees and completes
// each one with the host's real deallocation primitive
type RecordingHook struct {
	host  *heap.Host
	calls atomic.Int64
}

func NewRecordingHook(host *heap.Host) *RecordingHook {
	return &RecordingHook{host: host}
}

// Hook returns a new heap.Hook for this observer, ready to be registered with the host
func (r *RecordingHook) Hook(name string) *heap.Hook {
	return &heap.Hook{
		Name:        name,
		Deallocator: r,
	}
}

func (r *RecordingHook) Deallocate(ptr unsafe.Pointer) {
	r.calls.Add(1)
	r.host.FreeDirect(ptr)
}

// Calls returns the number of deallocations observed so far
func (r *RecordingHook) Calls() int {
	return int(r.calls.Load())
}
