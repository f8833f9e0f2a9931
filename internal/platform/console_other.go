//go:build !linux

package platform

// ResetConsoleKeyboard is a no-op off Linux.
func ResetConsoleKeyboard() error { return nil }
