//go:build cgo

package heap

import (
	"sync/atomic"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestDefault_MallocFreeThroughHook(t *testing.T) {
	host := Default()
	require.Same(t, host, Default())

	var seen atomic.Int64
	hook := &Hook{
		Name: "test",
		Deallocator: DeallocatorFunc(func(ptr unsafe.Pointer) {
			seen.Add(1)
			host.FreeDirect(ptr)
		}),
	}

	previous := host.Hook()
	require.True(t, host.CompareAndSwapHook(previous, hook))
	defer host.SetHook(previous)

	for i := 0; i < 100; i++ {
		ptr := Malloc(256)
		require.NotNil(t, ptr)
		Free(ptr)
	}

	require.Equal(t, int64(100), seen.Load())

	// Whether anything is released depends on the state of the heap; it must simply not fail
	host.Trim(0)
}
