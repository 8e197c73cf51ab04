package freetrim

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/freetrim/heap"
	"github.com/vkngwrapper/freetrim/internal/utils"
	"golang.org/x/exp/slog"
)

// Controller intercepts every deallocation routed through a heap.Host, counts it, and asks the
// host to compact its heap once every Threshold deallocations.
//
// All counting, compaction and forwarding happens under a single process-wide lock, so every
// deallocation through the host is serialized while the controller is installed. Deallocations
// that the compaction primitive or the real free issue on the same goroutine while the lock is
// held are recognized as nested: they go straight to the real deallocation and are not counted.
type Controller struct {
	logger *slog.Logger
	host   *heap.Host

	guard     utils.OwnedMutex
	trigger   *Trigger
	self      *heap.Hook
	previous  *heap.Hook
	installed bool
	stats     Statistics
}

var _ heap.Deallocator = &Controller{}

// guarded runs fn under the controller's lock, or directly if the calling goroutine already
// holds it
func (c *Controller) guarded(fn func()) {
	if c.guard.HeldByCurrent() {
		fn()
		return
	}

	c.guard.Lock()
	defer c.guard.Unlock()

	fn()
}

// Install registers the controller as the host's deallocation hook. Whatever hook was
// registered before (possibly none) is remembered, and every deallocation the controller
// intercepts is forwarded to it.
//
// If the controller is already installed, or the host's hook slot changes between reading the
// previous hook and registering the controller, Install returns an error and the hook slot is
// left exactly as it was found. The host keeps working either way; compaction just never
// happens.
func (c *Controller) Install() error {
	var err error
	c.guarded(func() {
		if c.installed {
			err = ErrAlreadyInstalled
			return
		}

		previous := c.host.Hook()
		if !c.host.CompareAndSwapHook(previous, c.self) {
			err = errors.Wrap(ErrHookChanged, "failed to install freetrim hook")
			return
		}

		c.previous = previous
		c.installed = true
		c.logger.Debug("Controller::Install", slog.String("previous", hookName(previous)))
	})

	return err
}

// Uninstall registers the hook that was in place before Install. It fails with
// ErrHookChanged if some other hook has been registered on top of the controller since, since
// restoring would silently unregister that hook.
func (c *Controller) Uninstall() error {
	var err error
	c.guarded(func() {
		if !c.installed {
			err = ErrNotInstalled
			return
		}

		if !c.host.CompareAndSwapHook(c.self, c.previous) {
			err = errors.Wrapf(ErrHookChanged, "failed to uninstall freetrim hook, %s is registered on top of it",
				hookName(c.host.Hook()))
			return
		}

		c.installed = false
		c.logger.Debug("Controller::Uninstall", slog.String("restored", hookName(c.previous)))
	})

	return err
}

// Deallocate is the interception callback the host invokes for every deallocation while the
// controller is installed. It always completes the deallocation exactly once, by passing ptr to
// the previously-registered hook if there was one, or to the host's real deallocation primitive.
func (c *Controller) Deallocate(ptr unsafe.Pointer) {
	if c.guard.HeldByCurrent() {
		c.stats.NestedDeallocations++
		c.forward(ptr)
		return
	}

	c.guard.Lock()
	defer c.guard.Unlock()

	c.stats.Deallocations++
	if c.trigger.Observe() {
		c.trim()
	}

	c.forward(ptr)

	DebugValidate(c)
}

func (c *Controller) trim() {
	c.stats.TrimCount++

	released, err := c.trigger.Trim()
	if err != nil {
		c.stats.TrimFailures++
		c.logger.Warn("Controller::trim", slog.Any("error", err))
		return
	}

	if released {
		c.stats.TrimReleased++
	}

	c.logger.Debug("Controller::trim",
		slog.Uint64("deallocations", c.trigger.Count()),
		slog.Bool("released", released),
	)
}

func (c *Controller) forward(ptr unsafe.Pointer) {
	if c.previous != nil {
		c.previous.Deallocator.Deallocate(ptr)
		return
	}

	c.host.FreeDirect(ptr)
}

// Installed reports whether the controller is currently registered with its host
func (c *Controller) Installed() bool {
	var installed bool
	c.guarded(func() {
		installed = c.installed
	})

	return installed
}

// Count returns the number of deallocations counted so far, modulo 2^64
func (c *Controller) Count() uint64 {
	var count uint64
	c.guarded(func() {
		count = c.trigger.Count()
	})

	return count
}

// Statistics adds the controller's statistics to stats
func (c *Controller) Statistics(stats *Statistics) {
	c.guarded(func() {
		stats.AddStatistics(&c.stats)
	})
}

// BuildStatsString returns a JSON document describing the controller's configuration and
// statistics
func (c *Controller) BuildStatsString() string {
	var stats Statistics
	var installed bool
	var count uint64
	var previous string

	c.guarded(func() {
		stats = c.stats
		installed = c.installed
		count = c.trigger.Count()
		previous = hookName(c.previous)
	})

	writer := jwriter.NewWriter()
	obj := writer.Object()

	obj.Name("Installed").Bool(installed)
	obj.Name("Previous").String(previous)
	obj.Name("Threshold").Int(int(c.trigger.Threshold()))
	obj.Name("Pad").Int(c.trigger.Pad())
	obj.Name("Count").Int(int(count))

	statsObj := obj.Name("Statistics").Object()
	stats.PrintJson(&statsObj)
	statsObj.End()

	obj.End()

	return string(writer.Bytes())
}

// Validate checks that the controller's view of the host's hook slot is consistent. It is not
// synchronized and is meant to be called with the controller's lock held.
func (c *Controller) Validate() error {
	if c.trigger.Threshold() == 0 {
		return errors.New("trim threshold is 0")
	}

	current := c.host.Hook()
	if c.installed && current == c.previous {
		return errors.Wrapf(ErrHookChanged, "controller is installed but %s was restored over it", hookName(current))
	}

	if !c.installed && current == c.self {
		return errors.New("controller is not installed but its hook is registered")
	}

	return nil
}

func hookName(hook *heap.Hook) string {
	if hook == nil {
		return "none"
	}

	return hook.Name
}
