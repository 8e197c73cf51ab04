package freetrim

import "github.com/launchdarkly/go-jsonstream/v3/jwriter"

// Statistics describes the work a Controller has done since it was created
type Statistics struct {
	// Deallocations is the number of deallocations that were counted. Nested deallocations are not
	// included.
	Deallocations uint64
	// NestedDeallocations is the number of deallocations issued while the controller was already
	// handling one on the same goroutine (by the trim primitive or the real free). These go
	// straight to the real deallocation.
	NestedDeallocations uint64
	// TrimCount is the number of times the compaction primitive was invoked
	TrimCount uint64
	// TrimReleased is the number of compactions that reported releasing memory
	TrimReleased uint64
	// TrimFailures is the number of compactions that panicked
	TrimFailures uint64
}

func (s *Statistics) Clear() {
	s.Deallocations = 0
	s.NestedDeallocations = 0
	s.TrimCount = 0
	s.TrimReleased = 0
	s.TrimFailures = 0
}

func (s *Statistics) AddStatistics(other *Statistics) {
	s.Deallocations += other.Deallocations
	s.NestedDeallocations += other.NestedDeallocations
	s.TrimCount += other.TrimCount
	s.TrimReleased += other.TrimReleased
	s.TrimFailures += other.TrimFailures
}

func (s *Statistics) PrintJson(obj *jwriter.ObjectState) {
	obj.Name("Deallocations").Int(int(s.Deallocations))
	obj.Name("NestedDeallocations").Int(int(s.NestedDeallocations))
	obj.Name("TrimCount").Int(int(s.TrimCount))
	obj.Name("TrimReleased").Int(int(s.TrimReleased))
	obj.Name("TrimFailures").Int(int(s.TrimFailures))
}
