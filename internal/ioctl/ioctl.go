//go:build linux

// Package ioctl wraps the SYS_IOCTL syscall used for framebuffer
// descriptor queries.
package ioctl

import (
	"fmt"
	"syscall"
	"unsafe"
)

// Command to be sent over ioctl.
type Command uintptr

func (c Command) String() string {
	return fmt.Sprintf("ioctl 0x%04x", uintptr(c))
}

// Read issues a read-only ioctl that fills the structure at ptr.
func Read(fd uintptr, command Command, ptr unsafe.Pointer) error {
	if _, _, errno := syscall.Syscall(syscall.SYS_IOCTL, fd, uintptr(command), uintptr(ptr)); errno != 0 {
		return fmt.Errorf("%s failed: %w", command, errno)
	}
	return nil
}
