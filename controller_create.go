package freetrim

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/freetrim/heap"
	"golang.org/x/exp/slog"
)

const (
	// DefaultThreshold is the value used as CreateOptions.Threshold when none is provided:
	// a compaction is requested once every 10,000 deallocations.
	DefaultThreshold uint64 = 10000
	// DefaultPad is the slack passed to the compaction primitive. 0 asks the allocator to release
	// everything it can.
	DefaultPad int = 0
)

// CreateOptions contains optional settings when creating a Controller. It is valid to leave
// all the fields blank.
type CreateOptions struct {
	// Threshold is the number of deallocations between compactions. 0 means DefaultThreshold.
	Threshold uint64
	// Pad is the number of bytes of slack the compaction primitive should keep at the top of
	// the heap. It must not be negative.
	Pad int
}

// New creates a Controller for host. The controller does nothing until Install is called.
//
// logger - Receives debug output about installation and compactions. If nil, nothing is logged.
//
// host - The allocator whose deallocations will be intercepted
//
// options - Optional parameters: it is valid to leave all the fields blank
func New(logger *slog.Logger, host *heap.Host, options CreateOptions) (*Controller, error) {
	if host == nil {
		return nil, errors.New("freetrim.New requires a host allocator")
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	threshold := options.Threshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}

	trigger, err := NewTrigger(threshold, options.Pad, host)
	if err != nil {
		return nil, errors.Wrap(err, "invalid freetrim.CreateOptions")
	}

	controller := &Controller{
		logger:  logger,
		host:    host,
		trigger: trigger,
	}
	controller.self = &heap.Hook{
		Name:        "freetrim",
		Deallocator: controller,
	}

	return controller, nil
}
