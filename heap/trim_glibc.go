//go:build cgo && !noglibc

package heap

// #cgo CFLAGS: -std=c11
// #include <malloc.h>
import "C"

// Go never hands freed C memory back to the OS on its own; glibc only does it when asked.
func mallocTrim(pad int) bool {
	return C.malloc_trim(C.size_t(pad)) > 0
}
