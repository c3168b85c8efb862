package ovr

// #include "../../include/libovr/ovr_capi.h"
import "C"

import "unsafe"

// Detect probes for the Oculus service and an attached headset without
// initializing the runtime. timeoutMilliseconds zero returns immediately
// with the current state.
func Detect(timeoutMilliseconds int32) DetectResult {
	c := C.ovr_Detect(C.int(timeoutMilliseconds))
	return *(*DetectResult)(unsafe.Pointer(&c))
}

// Matrix4fProjection builds a projection matrix for the given FOV port.
// projectionModFlags is a combination of the Projection* bits.
func Matrix4fProjection(fov FovPort, znear, zfar float32, projectionModFlags uint32) Matrix4f {
	c := C.ovrMatrix4f_Projection(*(*C.ovrFovPort)(unsafe.Pointer(&fov)), C.float(znear), C.float(zfar), C.uint(projectionModFlags))
	return *(*Matrix4f)(unsafe.Pointer(&c))
}

// TimewarpProjectionDescFromProjection extracts the terms the compositor
// needs for timewarp from a projection matrix. The flags must match the
// ones the projection was built with.
func TimewarpProjectionDescFromProjection(projection Matrix4f, projectionModFlags uint32) TimewarpProjectionDesc {
	c := C.ovrTimewarpProjectionDesc_FromProjection(*(*C.ovrMatrix4f)(unsafe.Pointer(&projection)), C.uint(projectionModFlags))
	return *(*TimewarpProjectionDesc)(unsafe.Pointer(&c))
}

// Matrix4fOrthoSubProjection builds an orthographic projection nested
// inside projection, for monoscopic UI rendering.
func Matrix4fOrthoSubProjection(projection Matrix4f, orthoScale Vector2f, orthoDistance, hmdToEyeOffsetX float32) Matrix4f {
	c := C.ovrMatrix4f_OrthoSubProjection(
		*(*C.ovrMatrix4f)(unsafe.Pointer(&projection)),
		*(*C.ovrVector2f)(unsafe.Pointer(&orthoScale)),
		C.float(orthoDistance), C.float(hmdToEyeOffsetX))
	return *(*Matrix4f)(unsafe.Pointer(&c))
}

// CalcEyePoses derives per-eye poses from a head pose and the per-eye
// offsets reported by GetRenderDesc.
func CalcEyePoses(headPose Posef, hmdToEyeOffset [2]Vector3f) [2]Posef {
	var out [2]Posef
	C.ovr_CalcEyePoses(
		*(*C.ovrPosef)(unsafe.Pointer(&headPose)),
		(*C.ovrVector3f)(unsafe.Pointer(&hmdToEyeOffset[0])),
		(*C.ovrPosef)(unsafe.Pointer(&out[0])))
	return out
}

// GetEyePoses returns predicted eye poses for the frame along with the
// sensor sample time to report in the layer. Equivalent to
// GetPredictedDisplayTime + GetTrackingState + CalcEyePoses.
func GetEyePoses(sess Session, frameIndex int64, latencyMarker bool, hmdToEyeOffset [2]Vector3f) (poses [2]Posef, sensorSampleTime float64) {
	var t C.double
	C.ovr_GetEyePoses(csess(sess), C.longlong(frameIndex), cBool(latencyMarker),
		(*C.ovrVector3f)(unsafe.Pointer(&hmdToEyeOffset[0])),
		(*C.ovrPosef)(unsafe.Pointer(&poses[0])), &t)
	return poses, float64(t)
}

// PosefFlipHandedness converts a pose between left- and right-handed
// coordinate systems by negating the x axis.
func PosefFlipHandedness(in Posef) Posef {
	var out C.ovrPosef
	C.ovrPosef_FlipHandedness((*C.ovrPosef)(unsafe.Pointer(&in)), &out)
	return *(*Posef)(unsafe.Pointer(&out))
}
