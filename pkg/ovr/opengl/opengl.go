// Package opengl creates runtime texture swap chains and mirror textures
// backed by OpenGL textures. This is the most portable interop path and the
// one the examples use; buffers come back as plain GL texture names ready
// for glBindTexture or glFramebufferTexture2D.
package opengl

// #include "../../../include/libovr/ovr_capi_gl.h"
import "C"

import (
	"unsafe"

	"github.com/govr/libovr/pkg/ovr"
)

// CreateTextureSwapChainGL creates a swap chain of GL textures. The chain
// must be destroyed with ovr.DestroyTextureSwapChain before the session.
func CreateTextureSwapChainGL(sess ovr.Session, desc *ovr.TextureSwapChainDesc) (ovr.TextureSwapChain, ovr.Result) {
	var chain C.ovrTextureSwapChain
	r := C.ovr_CreateTextureSwapChainGL(
		C.ovrSession(unsafe.Pointer(sess)),
		(*C.ovrTextureSwapChainDesc)(unsafe.Pointer(desc)),
		&chain)
	return ovr.TextureSwapChain(unsafe.Pointer(chain)), ovr.Result(r)
}

// GetTextureSwapChainBufferGL returns the GL texture name of buffer index
// in the chain. Use ovr.GetTextureSwapChainCurrentIndex to find the buffer
// to render into.
func GetTextureSwapChainBufferGL(sess ovr.Session, chain ovr.TextureSwapChain, index int32) (uint32, ovr.Result) {
	var tex C.uint
	r := C.ovr_GetTextureSwapChainBufferGL(
		C.ovrSession(unsafe.Pointer(sess)),
		C.ovrTextureSwapChain(unsafe.Pointer(chain)),
		C.int(index), &tex)
	return uint32(tex), ovr.Result(r)
}

// CreateMirrorTextureGL creates a GL texture that the compositor keeps
// updated with the distortion-corrected headset view. Destroy it with
// ovr.DestroyMirrorTexture before the session.
func CreateMirrorTextureGL(sess ovr.Session, desc *ovr.MirrorTextureDesc) (ovr.MirrorTexture, ovr.Result) {
	var mirror C.ovrMirrorTexture
	r := C.ovr_CreateMirrorTextureGL(
		C.ovrSession(unsafe.Pointer(sess)),
		(*C.ovrMirrorTextureDesc)(unsafe.Pointer(desc)),
		&mirror)
	return ovr.MirrorTexture(unsafe.Pointer(mirror)), ovr.Result(r)
}

// GetMirrorTextureBufferGL returns the GL texture name behind the mirror
// texture. The name is stable for the mirror texture's lifetime.
func GetMirrorTextureBufferGL(sess ovr.Session, mirrorTexture ovr.MirrorTexture) (uint32, ovr.Result) {
	var tex C.uint
	r := C.ovr_GetMirrorTextureBufferGL(
		C.ovrSession(unsafe.Pointer(sess)),
		C.ovrMirrorTexture(unsafe.Pointer(mirrorTexture)),
		&tex)
	return uint32(tex), ovr.Result(r)
}
