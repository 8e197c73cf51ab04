package utils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOwnedMutex_HeldByCurrent(t *testing.T) {
	var m OwnedMutex
	require.False(t, m.HeldByCurrent())

	m.Lock()
	require.True(t, m.HeldByCurrent())

	var wg sync.WaitGroup
	var heldElsewhere bool
	wg.Add(1)
	go func() {
		defer wg.Done()
		heldElsewhere = m.HeldByCurrent()
	}()
	wg.Wait()
	require.False(t, heldElsewhere)

	m.Unlock()
	require.False(t, m.HeldByCurrent())
}

func TestOwnedMutex_Serializes(t *testing.T) {
	var m OwnedMutex
	var wg sync.WaitGroup
	counter := 0

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				m.Lock()
				counter++
				m.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 16000, counter)
}
