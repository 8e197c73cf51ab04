//go:build !cgo

package heap

import (
	"runtime/debug"
	"unsafe"
)

// Without cgo there is no C heap, so the default host fronts the Go runtime: memory is reclaimed
// by the garbage collector and trimming forces the scavenger to run.
func newDefaultHost() *Host {
	return NewHost(
		DeallocatorFunc(func(unsafe.Pointer) {}),
		TrimmerFunc(func(int) bool {
			debug.FreeOSMemory()
			return true
		}),
	)
}
