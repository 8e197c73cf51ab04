// Package heaptest provides an in-memory heap.Host for testing code that intercepts
// deallocations.
package heaptest

import (
	"sync"
	"unsafe"

	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/freetrim/heap"
)

// FakeHeap is a heap.Deallocator and heap.Trimmer backed by Go memory. It keeps every block it
// hands out alive until the block is deallocated, and records every deallocation and trim it
// receives. It is safe for concurrent use.
type FakeHeap struct {
	// OnTrim, if set, is called by Trim before it returns, without any of the heap's locks
	// held. It can be used to simulate a compaction primitive that deallocates internally.
	OnTrim func(pad int)
	// TrimResult is the value Trim returns
	TrimResult bool

	mutex        sync.Mutex
	live         *swiss.Map[uintptr, []byte]
	frees        int
	invalidFrees int
	pads         []int
}

var _ heap.Deallocator = &FakeHeap{}
var _ heap.Trimmer = &FakeHeap{}

func NewFakeHeap() *FakeHeap {
	return &FakeHeap{
		live: swiss.NewMap[uintptr, []byte](64),
	}
}

// Host returns a new heap.Host that deallocates and trims through this FakeHeap
func (h *FakeHeap) Host() *heap.Host {
	return heap.NewHost(h, h)
}

// Malloc hands out a block of size bytes. size must be greater than 0.
func (h *FakeHeap) Malloc(size int) unsafe.Pointer {
	block := make([]byte, size)
	ptr := unsafe.Pointer(&block[0])

	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.live.Put(uintptr(ptr), block)
	return ptr
}

// Deallocate releases a block handed out by Malloc. Deallocating nil does nothing. Deallocating
// anything else that is not live is recorded as an invalid free.
func (h *FakeHeap) Deallocate(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, ok := h.live.Get(uintptr(ptr)); !ok {
		h.invalidFrees++
		return
	}

	h.live.Delete(uintptr(ptr))
	h.frees++
}

func (h *FakeHeap) Trim(pad int) bool {
	h.mutex.Lock()
	h.pads = append(h.pads, pad)
	h.mutex.Unlock()

	if h.OnTrim != nil {
		h.OnTrim(pad)
	}

	return h.TrimResult
}

// Frees returns the number of valid deallocations so far
func (h *FakeHeap) Frees() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	return h.frees
}

// InvalidFrees returns the number of double frees and frees of unknown pointers so far
func (h *FakeHeap) InvalidFrees() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	return h.invalidFrees
}

// Live returns the number of blocks handed out and not yet deallocated
func (h *FakeHeap) Live() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	return h.live.Count()
}

// Trims returns the number of times Trim was called
func (h *FakeHeap) Trims() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	return len(h.pads)
}

// Pads returns the pad passed to each Trim call, in order
func (h *FakeHeap) Pads() []int {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	pads := make([]int, len(h.pads))
	copy(pads, h.pads)
	return pads
}
