package freetrim

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/freetrim/heap"
)

// Trigger is the fixed-threshold trim policy: every threshold-th observed deallocation is due a
// compaction. It is not synchronized; the Controller serializes all access to it.
type Trigger struct {
	threshold uint64
	pad       int
	trimmer   heap.Trimmer

	// count wraps on overflow, which only shifts the phase of the trims
	count uint64
}

// NewTrigger creates a Trigger that asks trimmer to compact, keeping pad bytes of slack,
// once every threshold deallocations. threshold must not be 0.
func NewTrigger(threshold uint64, pad int, trimmer heap.Trimmer) (*Trigger, error) {
	if threshold == 0 {
		return nil, errors.New("trim threshold must be greater than 0")
	}
	if pad < 0 {
		return nil, errors.Newf("trim pad must not be negative, but was %d", pad)
	}

	return &Trigger{
		threshold: threshold,
		pad:       pad,
		trimmer:   trimmer,
	}, nil
}

// Observe counts one deallocation and reports whether a compaction is now due
func (t *Trigger) Observe() bool {
	t.count++
	return t.count%t.threshold == 0
}

// Count is the number of deallocations observed so far, modulo 2^64
func (t *Trigger) Count() uint64 {
	return t.count
}

func (t *Trigger) Threshold() uint64 {
	return t.threshold
}

func (t *Trigger) Pad() int {
	return t.pad
}

// Trim invokes the compaction primitive. A panic inside the primitive is recovered and
// returned as an error so the deallocation that triggered it can still complete.
func (t *Trigger) Trim() (released bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			released = false
			if rErr, ok := r.(error); ok {
				err = errors.Wrap(rErr, "trim primitive panicked")
			} else {
				err = errors.Newf("trim primitive panicked: %v", r)
			}
		}
	}()

	return t.trimmer.Trim(t.pad), nil
}
