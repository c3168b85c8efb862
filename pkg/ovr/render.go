package ovr

// #include <stdlib.h>
// #include "../../include/libovr/ovr_capi.h"
import "C"

import "unsafe"

// Swap chain creation lives in the graphics subpackages (opengl, vulkan,
// directx); the calls here work on any chain regardless of origin.

// GetTextureSwapChainLength returns the number of buffers in the chain.
func GetTextureSwapChainLength(sess Session, chain TextureSwapChain) (int32, Result) {
	var n C.int
	r := C.ovr_GetTextureSwapChainLength(csess(sess), cchain(chain), &n)
	return int32(n), Result(r)
}

// GetTextureSwapChainCurrentIndex returns the index the application should
// render into next.
func GetTextureSwapChainCurrentIndex(sess Session, chain TextureSwapChain) (int32, Result) {
	var i C.int
	r := C.ovr_GetTextureSwapChainCurrentIndex(csess(sess), cchain(chain), &i)
	return int32(i), Result(r)
}

// GetTextureSwapChainDesc returns the descriptor the chain was created with.
func GetTextureSwapChainDesc(sess Session, chain TextureSwapChain) (TextureSwapChainDesc, Result) {
	var c C.ovrTextureSwapChainDesc
	r := C.ovr_GetTextureSwapChainDesc(csess(sess), cchain(chain), &c)
	return *(*TextureSwapChainDesc)(unsafe.Pointer(&c)), Result(r)
}

// CommitTextureSwapChain seals the current buffer and advances the index.
// Returns ErrorTextureSwapChainFull when committed more than chain-length
// times without an intervening SubmitFrame.
func CommitTextureSwapChain(sess Session, chain TextureSwapChain) Result {
	return Result(C.ovr_CommitTextureSwapChain(csess(sess), cchain(chain)))
}

// DestroyTextureSwapChain frees the chain. The handle must not be used
// afterwards.
func DestroyTextureSwapChain(sess Session, chain TextureSwapChain) {
	C.ovr_DestroyTextureSwapChain(csess(sess), cchain(chain))
}

// DestroyMirrorTexture frees the mirror texture. The handle must not be
// used afterwards.
func DestroyMirrorTexture(sess Session, mirrorTexture MirrorTexture) {
	C.ovr_DestroyMirrorTexture(csess(sess), cmirror(mirrorTexture))
}

// GetFovTextureSize returns the texture size that yields the given pixel
// density at the center of the eye's view.
func GetFovTextureSize(sess Session, eye EyeType, fov FovPort, pixelsPerDisplayPixel float32) Sizei {
	c := C.ovr_GetFovTextureSize(csess(sess), C.ovrEyeType(eye), *(*C.ovrFovPort)(unsafe.Pointer(&fov)), C.float(pixelsPerDisplayPixel))
	return *(*Sizei)(unsafe.Pointer(&c))
}

// GetRenderDesc computes the rendering parameters for one eye at the given
// FOV. Call again whenever the profile could have changed, e.g. after
// SessionStatus reports HmdMounted going true.
func GetRenderDesc(sess Session, eye EyeType, fov FovPort) EyeRenderDesc {
	c := C.ovr_GetRenderDesc(csess(sess), C.ovrEyeType(eye), *(*C.ovrFovPort)(unsafe.Pointer(&fov)))
	return *(*EyeRenderDesc)(unsafe.Pointer(&c))
}

// SubmitFrame hands the layer list to the compositor. Layers are composited
// in order, at most MaxLayerCount of them; a nil entry and LayerTypeDisabled
// both mean "no layer". viewScaleDesc may be nil for default scaling.
//
// Pass the address of each layer struct's Header field. The pointer list is
// staged in C memory for the call so the runtime never sees Go-managed
// pointer storage.
func SubmitFrame(sess Session, frameIndex int64, viewScaleDesc *ViewScaleDesc, layers []*LayerHeader) Result {
	if len(layers) == 0 {
		return Result(C.ovr_SubmitFrame(csess(sess), C.longlong(frameIndex),
			(*C.ovrViewScaleDesc)(unsafe.Pointer(viewScaleDesc)), nil, 0))
	}

	list := C.malloc(C.size_t(uintptr(len(layers)) * unsafe.Sizeof(uintptr(0))))
	defer C.free(list)
	slots := unsafe.Slice((**C.ovrLayerHeader)(list), len(layers))
	for i, l := range layers {
		slots[i] = (*C.ovrLayerHeader)(unsafe.Pointer(l))
	}

	return Result(C.ovr_SubmitFrame(csess(sess), C.longlong(frameIndex),
		(*C.ovrViewScaleDesc)(unsafe.Pointer(viewScaleDesc)),
		(**C.ovrLayerHeader)(list), C.uint(len(layers))))
}

// GetPredictedDisplayTime returns the midpoint scanout time of the given
// frame; feed it to GetTrackingState for render pose prediction.
func GetPredictedDisplayTime(sess Session, frameIndex int64) float64 {
	return float64(C.ovr_GetPredictedDisplayTime(csess(sess), C.longlong(frameIndex)))
}

// GetTimeInSeconds returns absolute runtime time.
func GetTimeInSeconds() float64 {
	return float64(C.ovr_GetTimeInSeconds())
}
