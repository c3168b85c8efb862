package ovr

// #include "../../include/libovr/ovr_capi.h"
import "C"

import (
	"fmt"
	"unsafe"
)

// Result is the runtime's ovrResult. Negative values are failures, zero is
// unqualified success and positive values are qualified successes that carry
// extra information. Values outside the constants below can appear when the
// runtime is newer than the binding and must be passed through as-is.
type Result int32

// IsSuccess reports whether the call succeeded, qualified or not.
// Mirrors OVR_SUCCESS.
func (r Result) IsSuccess() bool { return r >= 0 }

// IsUnqualifiedSuccess reports complete success. Mirrors OVR_UNQUALIFIED_SUCCESS.
func (r Result) IsUnqualifiedSuccess() bool { return r == Success }

// IsFailure mirrors OVR_FAILURE.
func (r Result) IsFailure() bool { return r < 0 }

// Success codes.
const (
	Success Result = 0

	// The call succeeded but the session is not visible to the HMD wearer;
	// skip rendering and resume once visible again.
	SuccessNotVisible Result = 1000

	SuccessBoundaryInvalid   Result = 1001
	SuccessDeviceUnavailable Result = 1002
)

// General errors.
const (
	ErrorMemoryAllocationFailure   Result = -1000
	ErrorInvalidSession            Result = -1002
	ErrorTimeout                   Result = -1003
	ErrorNotInitialized            Result = -1004
	ErrorInvalidParameter          Result = -1005
	ErrorServiceError              Result = -1006
	ErrorNoHmd                     Result = -1007
	ErrorUnsupported               Result = -1009
	ErrorDeviceUnavailable         Result = -1010
	ErrorInvalidHeadsetOrientation Result = -1011
	ErrorClientSkippedDestroy      Result = -1012
	ErrorClientSkippedShutdown     Result = -1013
	ErrorServiceDeadlockDetected   Result = -1014
	ErrorInvalidOperation          Result = -1015
)

// Audio errors.
const (
	ErrorAudioDeviceNotFound Result = -2001
	ErrorAudioComError       Result = -2002
)

// Initialization errors.
const (
	ErrorInitialize                 Result = -3000
	ErrorLibLoadFailed              Result = -3001
	ErrorLibVersion                 Result = -3002
	ErrorServiceConnection          Result = -3003
	ErrorServiceVersion             Result = -3004
	ErrorIncompatibleOS             Result = -3005
	ErrorDisplayInit                Result = -3006
	ErrorServerStart                Result = -3007
	ErrorReinitialization           Result = -3008
	ErrorMismatchedAdapters         Result = -3009
	ErrorLeakingResources           Result = -3010
	ErrorClientVersion              Result = -3011
	ErrorOutOfDateOS                Result = -3012
	ErrorOutOfDateGfxDriver         Result = -3013
	ErrorIncompatibleGPU            Result = -3014
	ErrorNoValidVRDisplaySystem     Result = -3015
	ErrorObsolete                   Result = -3016
	ErrorDisabledOrDefaultAdapter   Result = -3017
	ErrorHybridGraphicsNotSupported Result = -3018
	ErrorDisplayManagerInit         Result = -3019
	ErrorTrackerDriverInit          Result = -3020
	ErrorLibSignCheck               Result = -3021
	ErrorLibPath                    Result = -3022
	ErrorLibSymbols                 Result = -3023
	ErrorRemoteSession              Result = -3024
)

// Rendering errors.
const (
	ErrorDisplayLost                   Result = -6000
	ErrorTextureSwapChainFull          Result = -6001
	ErrorTextureSwapChainInvalid       Result = -6002
	ErrorGraphicsDeviceReset           Result = -6003
	ErrorDisplayRemoved                Result = -6004
	ErrorContentProtectionNotAvailable Result = -6005
	ErrorApplicationInvisible          Result = -6006
	ErrorDisallowed                    Result = -6007
	ErrorDisplayPluggedIncorrectly     Result = -6008
)

// Fatal errors.
const (
	ErrorRuntimeException Result = -7000
)

// Calibration errors.
const (
	ErrorNoCalibration     Result = -9000
	ErrorOldVersion        Result = -9001
	ErrorMisformattedBlock Result = -9002
)

// ErrorInfo carries the last failure observed on the calling thread,
// as reported by GetLastErrorInfo.
type ErrorInfo struct {
	Result      Result
	ErrorString [512]byte
}

// String returns the runtime's message, without the trailing NULs.
func (e *ErrorInfo) String() string {
	return cstr(e.ErrorString[:])
}

// GetLastErrorInfo returns details about the most recent failure on this
// thread. Only meaningful immediately after a call reported failure.
func GetLastErrorInfo() ErrorInfo {
	var c C.ovrErrorInfo
	C.ovr_GetLastErrorInfo(&c)
	return *(*ErrorInfo)(unsafe.Pointer(&c))
}

// Err converts a Result into a Go error at the application boundary. The
// binding itself never interprets results; this is a convenience for callers
// that want to bail out with %w-style wrapping. Success values return nil.
func (r Result) Err() error {
	if r.IsSuccess() {
		return nil
	}
	return resultError(r)
}

type resultError Result

func (e resultError) Error() string {
	return fmt.Sprintf("ovr: result %d", int32(e))
}

// cstr interprets b as a NUL-terminated C string.
func cstr(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
