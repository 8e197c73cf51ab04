package freetrim

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/freetrim/heap"
)

func TestTrigger_Observe(t *testing.T) {
	trigger, err := NewTrigger(3, 0, heap.TrimmerFunc(func(int) bool { return false }))
	require.NoError(t, err)

	var due []bool
	for i := 0; i < 7; i++ {
		due = append(due, trigger.Observe())
	}

	require.Equal(t, []bool{false, false, true, false, false, true, false}, due)
	require.Equal(t, uint64(7), trigger.Count())
}

func TestTrigger_CounterWraps(t *testing.T) {
	trigger, err := NewTrigger(DefaultThreshold, 0, heap.TrimmerFunc(func(int) bool { return false }))
	require.NoError(t, err)

	trigger.count = math.MaxUint64 - 1
	require.False(t, trigger.Observe())

	// wrapping to 0 lands on a multiple of the threshold
	require.True(t, trigger.Observe())
	require.Equal(t, uint64(0), trigger.Count())

	require.False(t, trigger.Observe())
	require.Equal(t, uint64(1), trigger.Count())
}

func TestTrigger_InvalidOptions(t *testing.T) {
	trimmer := heap.TrimmerFunc(func(int) bool { return false })

	_, err := NewTrigger(0, 0, trimmer)
	require.Error(t, err)

	_, err = NewTrigger(10, -5, trimmer)
	require.Error(t, err)
	require.Contains(t, err.Error(), "-5")
}

func TestTrigger_TrimRecoversPanics(t *testing.T) {
	cause := errors.New("no heap")

	trigger, err := NewTrigger(1, 64, heap.TrimmerFunc(func(pad int) bool {
		require.Equal(t, 64, pad)
		panic(cause)
	}))
	require.NoError(t, err)

	released, err := trigger.Trim()
	require.False(t, released)
	require.ErrorIs(t, err, cause)

	trigger, err = NewTrigger(1, 0, heap.TrimmerFunc(func(int) bool {
		panic("not an error")
	}))
	require.NoError(t, err)

	released, err = trigger.Trim()
	require.False(t, released)
	require.ErrorContains(t, err, "not an error")
}
