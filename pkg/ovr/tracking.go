package ovr

// #include "../../include/libovr/ovr_capi.h"
import "C"

import "unsafe"

// SetTrackingOriginType sets the origin reported by subsequent tracking
// calls; it does not affect poses already in flight.
func SetTrackingOriginType(sess Session, origin TrackingOrigin) Result {
	return Result(C.ovr_SetTrackingOriginType(csess(sess), C.ovrTrackingOrigin(origin)))
}

// GetTrackingOriginType returns the session's current tracking origin.
func GetTrackingOriginType(sess Session) TrackingOrigin {
	return TrackingOrigin(C.ovr_GetTrackingOriginType(csess(sess)))
}

// RecenterTrackingOrigin re-centers on the headset's current pose, keeping
// gravity alignment. Handles in flight keep their old frame; re-query
// render poses afterwards.
func RecenterTrackingOrigin(sess Session) Result {
	return Result(C.ovr_RecenterTrackingOrigin(csess(sess)))
}

// SpecifyTrackingOrigin re-centers on an explicit pose instead of the
// headset's current one. The pose's roll and pitch are ignored.
func SpecifyTrackingOrigin(sess Session, originPose Posef) Result {
	return Result(C.ovr_SpecifyTrackingOrigin(csess(sess), *(*C.ovrPosef)(unsafe.Pointer(&originPose))))
}

// ClearShouldRecenterFlag dismisses SessionStatus.ShouldRecenter for
// applications that handle recentering themselves.
func ClearShouldRecenterFlag(sess Session) {
	C.ovr_ClearShouldRecenterFlag(csess(sess))
}

// GetTrackingState predicts head and hand poses at absTime, in seconds as
// returned by GetTimeInSeconds; pass zero for the most recent sample. Set
// latencyMarker when the state feeds directly into a rendered frame.
func GetTrackingState(sess Session, absTime float64, latencyMarker bool) TrackingState {
	c := C.ovr_GetTrackingState(csess(sess), C.double(absTime), cBool(latencyMarker))
	return *(*TrackingState)(unsafe.Pointer(&c))
}

// GetDevicePoses predicts poses for an explicit device list at absTime.
// outPoses must be at least as long as deviceTypes; the call panics before
// touching the runtime otherwise.
func GetDevicePoses(sess Session, deviceTypes []TrackedDeviceType, absTime float64, outPoses []PoseStatef) Result {
	if len(deviceTypes) == 0 {
		return Result(C.ovr_GetDevicePoses(csess(sess), nil, 0, C.double(absTime), nil))
	}
	if len(outPoses) < len(deviceTypes) {
		panic("ovr: outPoses shorter than deviceTypes")
	}
	return Result(C.ovr_GetDevicePoses(
		csess(sess),
		(*C.ovrTrackedDeviceType)(unsafe.Pointer(&deviceTypes[0])),
		C.int(len(deviceTypes)),
		C.double(absTime),
		(*C.ovrPoseStatef)(unsafe.Pointer(&outPoses[0])),
	))
}

// GetTrackerPose returns the pose of sensor trackerPoseIndex.
func GetTrackerPose(sess Session, trackerPoseIndex uint32) TrackerPose {
	c := C.ovr_GetTrackerPose(csess(sess), C.uint(trackerPoseIndex))
	return *(*TrackerPose)(unsafe.Pointer(&c))
}
