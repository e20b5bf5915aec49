//go:build linux

package platform

import "syscall"

// LinuxAPI implements ProcessAPI for the Linux platform
type LinuxAPI struct{}

// NewLinuxAPI creates a new Linux API instance
func NewLinuxAPI() *LinuxAPI {
	return &LinuxAPI{}
}

// NewProcessAPI creates a new ProcessAPI instance for Linux
func NewProcessAPI() ProcessAPI {
	return NewLinuxAPI()
}

// CommandAttributes returns nil; child processes need no special attributes on Linux
func (l *LinuxAPI) CommandAttributes() *syscall.SysProcAttr {
	return nil
}
