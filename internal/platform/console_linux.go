//go:build linux

package platform

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Linux console ioctls from <linux/kd.h>.
const (
	kdskbmute = 0x4B51
	kdskbmode = 0x4B45
	kXlate    = 0x01
)

// ResetConsoleKeyboard unmutes the console keyboard and restores translated
// mode, which SDL may leave raw when run from a virtual terminal. It does
// nothing when stdin is not a terminal.
func ResetConsoleKeyboard() error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}
	if err := unix.IoctlSetInt(fd, kdskbmute, 0); err != nil && err != unix.ENOTTY && err != unix.EINVAL {
		return fmt.Errorf("unmute console keyboard: %w", err)
	}
	if err := unix.IoctlSetInt(fd, kdskbmode, kXlate); err != nil && err != unix.ENOTTY && err != unix.EINVAL {
		return fmt.Errorf("restore console keyboard mode: %w", err)
	}
	return nil
}
