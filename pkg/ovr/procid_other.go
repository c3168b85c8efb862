//go:build !windows

package ovr

// ProcessId mirrors ovrProcessId, a pid_t elsewhere.
type ProcessId int32
