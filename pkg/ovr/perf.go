package ovr

// #include "../../include/libovr/ovr_capi.h"
import "C"

import "unsafe"

// GetPerfStats returns performance counters for up to the last
// MaxProvidedFrameStats compositor frames.
func GetPerfStats(sess Session) (PerfStats, Result) {
	var c C.ovrPerfStats
	r := C.ovr_GetPerfStats(csess(sess), &c)
	return *(*PerfStats)(unsafe.Pointer(&c)), Result(r)
}

// ResetPerfStats zeroes the frame counters, e.g. when switching scenes.
func ResetPerfStats(sess Session) Result {
	return Result(C.ovr_ResetPerfStats(csess(sess)))
}
