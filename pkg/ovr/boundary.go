package ovr

// #include "../../include/libovr/ovr_capi.h"
import "C"

import "unsafe"

// TestBoundary tests the devices in deviceBitmask against the given
// boundary. Returns SuccessBoundaryInvalid while the boundary is not
// defined, and SuccessDeviceUnavailable for absent devices.
func TestBoundary(sess Session, deviceBitmask TrackedDeviceType, boundaryType BoundaryType) (BoundaryTestResult, Result) {
	var c C.ovrBoundaryTestResult
	r := C.ovr_TestBoundary(csess(sess), C.ovrTrackedDeviceType(deviceBitmask), C.ovrBoundaryType(boundaryType), &c)
	return *(*BoundaryTestResult)(unsafe.Pointer(&c)), Result(r)
}

// TestBoundaryPoint tests an arbitrary tracking-space point against the
// given boundary.
func TestBoundaryPoint(sess Session, point Vector3f, boundaryType BoundaryType) (BoundaryTestResult, Result) {
	var c C.ovrBoundaryTestResult
	r := C.ovr_TestBoundaryPoint(csess(sess), (*C.ovrVector3f)(unsafe.Pointer(&point)), C.ovrBoundaryType(boundaryType), &c)
	return *(*BoundaryTestResult)(unsafe.Pointer(&c)), Result(r)
}

// SetBoundaryLookAndFeel overrides the boundary's rendered color for this
// session.
func SetBoundaryLookAndFeel(sess Session, lookAndFeel *BoundaryLookAndFeel) Result {
	return Result(C.ovr_SetBoundaryLookAndFeel(csess(sess), (*C.ovrBoundaryLookAndFeel)(unsafe.Pointer(lookAndFeel))))
}

// ResetBoundaryLookAndFeel restores the system default boundary color.
func ResetBoundaryLookAndFeel(sess Session) Result {
	return Result(C.ovr_ResetBoundaryLookAndFeel(csess(sess)))
}

// GetBoundaryGeometry copies the boundary's floor outline into out and
// returns the point count. Pass nil to query the count alone; the runtime
// never writes more than len(out) points either way.
func GetBoundaryGeometry(sess Session, boundaryType BoundaryType, out []Vector3f) (int32, Result) {
	var (
		count C.int
		dst   *C.ovrVector3f
	)
	if len(out) > 0 {
		dst = (*C.ovrVector3f)(unsafe.Pointer(&out[0]))
		count = C.int(len(out))
	}
	r := C.ovr_GetBoundaryGeometry(csess(sess), C.ovrBoundaryType(boundaryType), dst, &count)
	return int32(count), Result(r)
}

// GetBoundaryDimensions returns the axis-aligned extent of the given
// boundary.
func GetBoundaryDimensions(sess Session, boundaryType BoundaryType) (Vector3f, Result) {
	var c C.ovrVector3f
	r := C.ovr_GetBoundaryDimensions(csess(sess), C.ovrBoundaryType(boundaryType), &c)
	return *(*Vector3f)(unsafe.Pointer(&c)), Result(r)
}

// GetBoundaryVisible reports whether the runtime is drawing the boundary.
func GetBoundaryVisible(sess Session) (bool, Result) {
	var v C.ovrBool
	r := C.ovr_GetBoundaryVisible(csess(sess), &v)
	return v != 0, Result(r)
}

// RequestBoundaryVisible asks the runtime to show or stop forcing the
// boundary; the runtime may keep it up for its own reasons.
func RequestBoundaryVisible(sess Session, visible bool) Result {
	return Result(C.ovr_RequestBoundaryVisible(csess(sess), cBool(visible)))
}
