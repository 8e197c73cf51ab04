// Package autotrim installs the process-wide freetrim controller on the process heap when it is
// imported. It has no API:
//
//	import _ "github.com/vkngwrapper/freetrim/autotrim"
//
// If the controller cannot be installed, the program runs normally and its heap is simply never
// trimmed.
package autotrim

import "github.com/vkngwrapper/freetrim"

func init() {
	_ = freetrim.InstallDefault()
}
