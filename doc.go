// Package freetrim watches the deallocations of a heap.Host and periodically asks the allocator
// to hand unused pages back to the operating system.
//
// A Controller registers itself as the host's deallocation hook. Every deallocation it observes
// is counted, and every Threshold-th one (10,000 by default) calls the host's compaction
// primitive, malloc_trim(0) for the C heap, before the deallocation itself is forwarded to
// whichever hook was registered earlier, or to the real free. Counting, compaction and
// forwarding are serialized by a single lock, trading deallocation throughput for an exact
// count.
//
// Most programs only need the process-wide controller, which can be installed before main runs
// with a blank import:
//
//	import _ "github.com/vkngwrapper/freetrim/autotrim"
package freetrim
