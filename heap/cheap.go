//go:build cgo

package heap

// #include <stdlib.h>
import "C"
import "unsafe"

func newDefaultHost() *Host {
	return NewHost(DeallocatorFunc(cFree), TrimmerFunc(mallocTrim))
}

func cFree(ptr unsafe.Pointer) {
	C.free(ptr)
}

// Malloc allocates size bytes from the C heap. The memory is not zeroed. It returns nil if the
// allocation failed.
func Malloc(size int) unsafe.Pointer {
	return C.malloc(C.size_t(size))
}

// Free releases memory obtained from Malloc through the Default host, so any registered hook
// observes it
func Free(ptr unsafe.Pointer) {
	Default().Free(ptr)
}
