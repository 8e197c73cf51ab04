// Package heap describes the host allocator that the freetrim layer sits on top of: a
// deallocation primitive, a heap compaction primitive, and one process-wide slot for a
// deallocation hook through which every Host.Free is dispatched.
//
// Default returns the Host for the process's C heap when cgo is available. Go code that owns
// memory obtained from Malloc (or from any C library using the same libc allocator) should
// release it with Free so that a registered hook can observe it.
package heap
