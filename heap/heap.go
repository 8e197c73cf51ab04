package heap

import (
	"sync/atomic"
	"unsafe"
)

//go:generate mockgen -source heap.go -destination ../mocks/heap.go -package mocks

// Deallocator releases a single block of memory back to the allocator that produced it
type Deallocator interface {
	Deallocate(ptr unsafe.Pointer)
}

// DeallocatorFunc adapts an ordinary function to the Deallocator interface
type DeallocatorFunc func(ptr unsafe.Pointer)

func (f DeallocatorFunc) Deallocate(ptr unsafe.Pointer) {
	f(ptr)
}

// Trimmer asks the allocator to return unused pages at the top of the heap to the operating
// system. pad is the number of bytes of slack to leave untrimmed; 0 requests maximal release.
//
// Trim returns true if any memory was released. Returning false is not an error: there was
// simply nothing to release.
type Trimmer interface {
	Trim(pad int) bool
}

// TrimmerFunc adapts an ordinary function to the Trimmer interface
type TrimmerFunc func(pad int) bool

func (f TrimmerFunc) Trim(pad int) bool {
	return f(pad)
}

// Hook is a deallocation observer registered with a Host. While a Hook is registered,
// Host.Free hands every pointer to the Hook instead of releasing it, so the Hook is responsible
// for completing the deallocation, usually by forwarding to whatever was registered before it
// or to Host.FreeDirect.
//
// Hooks are compared by identity, never by value.
type Hook struct {
	// Name is used only for diagnostics
	Name        string
	Deallocator Deallocator
}

// Host is the allocator as this module sees it: a real deallocation primitive, a compaction
// primitive, and a single process-wide slot for a deallocation Hook.
type Host struct {
	free Deallocator
	trim Trimmer
	hook atomic.Pointer[Hook]
}

// NewHost creates a Host around the provided primitives. trim may be nil, in which case Trim
// never releases anything.
func NewHost(free Deallocator, trim Trimmer) *Host {
	if trim == nil {
		trim = TrimmerFunc(func(int) bool { return false })
	}

	return &Host{
		free: free,
		trim: trim,
	}
}

// Hook returns the currently-registered deallocation hook, or nil if there is none
func (h *Host) Hook() *Hook {
	return h.hook.Load()
}

// SetHook registers hook unconditionally, replacing whatever was registered. Passing nil
// clears the slot.
func (h *Host) SetHook(hook *Hook) {
	h.hook.Store(hook)
}

// CompareAndSwapHook registers newHook only if oldHook is the hook currently registered. It
// returns false, and leaves the slot untouched, otherwise.
func (h *Host) CompareAndSwapHook(oldHook, newHook *Hook) bool {
	return h.hook.CompareAndSwap(oldHook, newHook)
}

// Free is the deallocation entry point. If a hook is registered, ptr is passed to it (nil
// included) and the hook decides what happens next. Otherwise ptr is released directly.
func (h *Host) Free(ptr unsafe.Pointer) {
	hook := h.hook.Load()
	if hook != nil {
		hook.Deallocator.Deallocate(ptr)
		return
	}

	h.free.Deallocate(ptr)
}

// FreeDirect releases ptr with the real deallocation primitive without consulting the hook slot
func (h *Host) FreeDirect(ptr unsafe.Pointer) {
	h.free.Deallocate(ptr)
}

// Trim runs the compaction primitive
func (h *Host) Trim(pad int) bool {
	return h.trim.Trim(pad)
}
