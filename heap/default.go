package heap

import "sync"

var (
	defaultOnce sync.Once
	defaultHost *Host
)

// Default returns the Host for the process heap. It is created on first use and lives for the
// lifetime of the process.
func Default() *Host {
	defaultOnce.Do(func() {
		defaultHost = newDefaultHost()
	})

	return defaultHost
}
