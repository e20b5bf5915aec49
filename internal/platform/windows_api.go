//go:build windows

package platform

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// WindowsAPI implements ProcessAPI for the Windows platform
type WindowsAPI struct{}

// NewWindowsAPI creates a new Windows API instance
func NewWindowsAPI() *WindowsAPI {
	return &WindowsAPI{}
}

// NewProcessAPI creates a new ProcessAPI instance for Windows
func NewProcessAPI() ProcessAPI {
	return NewWindowsAPI()
}

// CommandAttributes suppresses the console window that would otherwise flash
// up each time the GUI shell launches the CLI tool
func (w *WindowsAPI) CommandAttributes() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: windows.CREATE_NO_WINDOW,
	}
}
