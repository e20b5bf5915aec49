//go:build darwin

package platform

import "syscall"

// DarwinAPI implements ProcessAPI for the macOS platform
type DarwinAPI struct{}

// NewDarwinAPI creates a new macOS API instance
func NewDarwinAPI() *DarwinAPI {
	return &DarwinAPI{}
}

// NewProcessAPI creates a new ProcessAPI instance for macOS
func NewProcessAPI() ProcessAPI {
	return NewDarwinAPI()
}

// CommandAttributes returns nil; child processes need no special attributes on macOS
func (d *DarwinAPI) CommandAttributes() *syscall.SysProcAttr {
	return nil
}
