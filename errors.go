package freetrim

import "github.com/pkg/errors"

// ErrAlreadyInstalled is returned from Controller.Install if the controller's hook is already registered
var ErrAlreadyInstalled error = errors.New("deallocation hook is already installed")

// ErrNotInstalled is returned from Controller.Uninstall if the controller's hook is not registered
var ErrNotInstalled error = errors.New("deallocation hook is not installed")

// ErrHookChanged is returned from Controller.Install or Controller.Uninstall when the host's hook
// slot did not hold the expected hook at the moment of the swap. The slot is left as it was found.
var ErrHookChanged error = errors.New("deallocation hook slot changed underneath the controller")
