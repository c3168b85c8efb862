package ovr

// #include <stdlib.h>
// #include "../../include/libovr/ovr_capi.h"
import "C"

import "unsafe"

// The handle types have unsafe.Pointer as their underlying type, which rules
// out methods, so the C conversions live here as package-level helpers.

func csess(s Session) C.ovrSession {
	return C.ovrSession(unsafe.Pointer(s))
}

func cchain(tc TextureSwapChain) C.ovrTextureSwapChain {
	return C.ovrTextureSwapChain(unsafe.Pointer(tc))
}

func cmirror(mt MirrorTexture) C.ovrMirrorTexture {
	return C.ovrMirrorTexture(unsafe.Pointer(mt))
}

func cBool(b bool) C.ovrBool {
	if b {
		return 1
	}
	return 0
}

// Initialize starts the runtime connection. It must succeed before any other
// call except Detect; pass nil params for defaults. Safe to call again after
// a failure or a Shutdown.
func Initialize(params *InitParams) Result {
	return Result(C.ovr_Initialize((*C.ovrInitParams)(unsafe.Pointer(params))))
}

// Shutdown releases the runtime connection. All sessions must be destroyed
// first; the handles are invalid afterwards.
func Shutdown() {
	C.ovr_Shutdown()
}

// GetVersionString returns the runtime's version string. The pointer the
// runtime hands back is process-global, so the copy here is cheap and safe.
func GetVersionString() string {
	return C.GoString(C.ovr_GetVersionString())
}

// TraceMessage writes a message to the runtime's log. Returns the number of
// characters recorded, or a negative value on error.
func TraceMessage(level LogLevel, message string) int32 {
	cmsg := C.CString(message)
	defer C.free(unsafe.Pointer(cmsg))
	return int32(C.ovr_TraceMessage(C.int(level), cmsg))
}

// IdentifyClient tags the session with application identity metadata, a
// newline-delimited key=value string. Must be called between Initialize
// and Create.
func IdentifyClient(identity string) Result {
	cid := C.CString(identity)
	defer C.free(unsafe.Pointer(cid))
	return Result(C.ovr_IdentifyClient(cid))
}

// Create opens a session against the attached headset and reports the LUID
// of the adapter the compositor runs on; the application must render on the
// same adapter.
func Create() (Session, GraphicsLuid, Result) {
	var (
		sess C.ovrSession
		luid C.ovrGraphicsLuid
	)
	r := C.ovr_Create(&sess, &luid)
	return Session(unsafe.Pointer(sess)), *(*GraphicsLuid)(unsafe.Pointer(&luid)), Result(r)
}

// Destroy closes the session. The handle must not be used afterwards.
func Destroy(sess Session) {
	C.ovr_Destroy(csess(sess))
}

// GetSessionStatus reports the session's standing with the runtime.
func GetSessionStatus(sess Session) (SessionStatus, Result) {
	var c C.ovrSessionStatus
	r := C.ovr_GetSessionStatus(csess(sess), &c)
	return *(*SessionStatus)(unsafe.Pointer(&c)), Result(r)
}

// GetHmdDesc describes the attached headset. A nil session is allowed and
// reports HmdNone in Type when no headset is present.
func GetHmdDesc(sess Session) HmdDesc {
	c := C.ovr_GetHmdDesc(csess(sess))
	return *(*HmdDesc)(unsafe.Pointer(&c))
}

// GetTrackerCount returns the number of attached sensors.
func GetTrackerCount(sess Session) uint32 {
	return uint32(C.ovr_GetTrackerCount(csess(sess)))
}

// GetTrackerDesc describes sensor trackerDescIndex; zeroed when the index is
// out of range.
func GetTrackerDesc(sess Session, trackerDescIndex uint32) TrackerDesc {
	c := C.ovr_GetTrackerDesc(csess(sess), C.uint(trackerDescIndex))
	return *(*TrackerDesc)(unsafe.Pointer(&c))
}
