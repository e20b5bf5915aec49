package platform

import "syscall"

// ProcessAPI defines the interface for platform-specific child process setup
type ProcessAPI interface {
	// CommandAttributes returns the process attributes to apply when launching
	// the external CLI tool. May return nil when the platform needs none.
	CommandAttributes() *syscall.SysProcAttr
}
