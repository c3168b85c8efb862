//go:build windows

package ovr

// ProcessId mirrors ovrProcessId, a DWORD on Windows.
type ProcessId uint32
