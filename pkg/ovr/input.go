package ovr

// #include "../../include/libovr/ovr_capi.h"
import "C"

import "unsafe"

// GetInputState snapshots the most recent input from the given controllers.
// Succeeds even while the device is unavailable; check
// GetConnectedControllerTypes for liveness.
func GetInputState(sess Session, controllerType ControllerType) (InputState, Result) {
	var c C.ovrInputState
	r := C.ovr_GetInputState(csess(sess), C.ovrControllerType(controllerType), &c)
	return *(*InputState)(unsafe.Pointer(&c)), Result(r)
}

// GetConnectedControllerTypes returns the bitmask of controllers currently
// connected.
func GetConnectedControllerTypes(sess Session) ControllerType {
	return ControllerType(C.ovr_GetConnectedControllerTypes(csess(sess)))
}

// GetTouchHapticsDesc describes the haptics engine of the given controller.
func GetTouchHapticsDesc(sess Session, controllerType ControllerType) TouchHapticsDesc {
	c := C.ovr_GetTouchHapticsDesc(csess(sess), C.ovrControllerType(controllerType))
	return *(*TouchHapticsDesc)(unsafe.Pointer(&c))
}

// SetControllerVibration drives the legacy continuous vibration interface.
// The effect is limited to 2.5 seconds per call; frequency is clamped to
// 0.0, 0.5 or 1.0 and amplitude to [0, 1].
func SetControllerVibration(sess Session, controllerType ControllerType, frequency, amplitude float32) Result {
	return Result(C.ovr_SetControllerVibration(csess(sess), C.ovrControllerType(controllerType), C.float(frequency), C.float(amplitude)))
}

// SubmitControllerVibration queues buffered haptics samples. buf.Samples
// must stay valid for the duration of the call.
func SubmitControllerVibration(sess Session, controllerType ControllerType, buf *HapticsBuffer) Result {
	cbuf := C.ovrHapticsBuffer{
		Samples:      buf.Samples,
		SamplesCount: C.int(buf.SamplesCount),
		SubmitMode:   C.ovrHapticsBufferSubmitMode(buf.SubmitMode),
	}
	return Result(C.ovr_SubmitControllerVibration(csess(sess), C.ovrControllerType(controllerType), &cbuf))
}

// GetControllerVibrationState reports the haptics queue state of the given
// controller.
func GetControllerVibrationState(sess Session, controllerType ControllerType) (HapticsPlaybackState, Result) {
	var c C.ovrHapticsPlaybackState
	r := C.ovr_GetControllerVibrationState(csess(sess), C.ovrControllerType(controllerType), &c)
	return *(*HapticsPlaybackState)(unsafe.Pointer(&c)), Result(r)
}
