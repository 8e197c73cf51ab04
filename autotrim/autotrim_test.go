package autotrim

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/freetrim"
	"github.com/vkngwrapper/freetrim/heap"
)

func TestInstalledAtInit(t *testing.T) {
	controller, err := freetrim.Default()
	require.NoError(t, err)
	require.True(t, controller.Installed())

	hook := heap.Default().Hook()
	require.NotNil(t, hook)
	require.Same(t, controller, hook.Deallocator)

	require.NoError(t, freetrim.InstallDefault())
}
