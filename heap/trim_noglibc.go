//go:build cgo && noglibc

package heap

// malloc_trim is a glibc extension; other libcs have nothing to call
func mallocTrim(pad int) bool {
	return false
}
