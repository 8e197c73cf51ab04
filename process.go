package freetrim

import (
	"sync"

	"github.com/vkngwrapper/freetrim/heap"
)

var (
	defaultOnce       sync.Once
	defaultController *Controller
	defaultErr        error

	installDefaultOnce sync.Once
	installDefaultErr  error
)

// Default returns the process-wide Controller for heap.Default, created with DefaultThreshold
// and DefaultPad on first use. There is only ever one, and it lives until the process exits.
func Default() (*Controller, error) {
	defaultOnce.Do(func() {
		defaultController, defaultErr = New(nil, heap.Default(), CreateOptions{})
	})

	return defaultController, defaultErr
}

// InstallDefault installs the Default controller. Only the first call does any work; later
// calls return the first call's result.
func InstallDefault() error {
	installDefaultOnce.Do(func() {
		var controller *Controller
		controller, installDefaultErr = Default()
		if installDefaultErr != nil {
			return
		}

		installDefaultErr = controller.Install()
	})

	return installDefaultErr
}
