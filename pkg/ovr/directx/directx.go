//go:build windows

// Package directx creates runtime texture swap chains and mirror textures
// backed by D3D11 or D3D12 resources. Windows only; on other platforms an
// importing build fails with a build-constraint diagnostic naming this
// package.
//
// COM interface pointers cross the boundary as unsafe.Pointer. The caller
// owns the reference each Get call adds, and releases it through the
// interface's own Release once done.
package directx

// #include "../../../include/libovr/ovr_capi_d3d.h"
import "C"

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/govr/libovr/pkg/ovr"
)

// IIDs commonly requested from the buffer getters.
var (
	IID_ID3D11Texture2D = windows.GUID{Data1: 0x6f15aaf2, Data2: 0xd208, Data3: 0x4e89,
		Data4: [8]byte{0x9a, 0xb4, 0x48, 0x95, 0x35, 0xd3, 0x4f, 0x9c}}
	IID_ID3D12Resource = windows.GUID{Data1: 0x696442be, Data2: 0xa72e, Data3: 0x4059,
		Data4: [8]byte{0xbc, 0x79, 0x5b, 0x5c, 0x98, 0x04, 0x0f, 0xad}}
)

// CreateTextureSwapChainDX creates a swap chain of D3D textures. d3dPtr is
// an ID3D11Device, ID3D11DeviceContext or ID3D12CommandQueue. The chain
// must be destroyed with ovr.DestroyTextureSwapChain before the session.
func CreateTextureSwapChainDX(sess ovr.Session, d3dPtr unsafe.Pointer, desc *ovr.TextureSwapChainDesc) (ovr.TextureSwapChain, ovr.Result) {
	var chain C.ovrTextureSwapChain
	r := C.ovr_CreateTextureSwapChainDX(
		C.ovrSession(unsafe.Pointer(sess)),
		d3dPtr,
		(*C.ovrTextureSwapChainDesc)(unsafe.Pointer(desc)),
		&chain)
	return ovr.TextureSwapChain(unsafe.Pointer(chain)), ovr.Result(r)
}

// GetTextureSwapChainBufferDX returns buffer index of the chain as the
// interface named by iid, with one reference added for the caller.
func GetTextureSwapChainBufferDX(sess ovr.Session, chain ovr.TextureSwapChain, index int32, iid windows.GUID) (unsafe.Pointer, ovr.Result) {
	var buf unsafe.Pointer
	r := C.ovr_GetTextureSwapChainBufferDX(
		C.ovrSession(unsafe.Pointer(sess)),
		C.ovrTextureSwapChain(unsafe.Pointer(chain)),
		C.int(index),
		*(*C.ovrIID)(unsafe.Pointer(&iid)),
		&buf)
	return buf, ovr.Result(r)
}

// CreateMirrorTextureDX creates a D3D texture that the compositor keeps
// updated with the distortion-corrected headset view. Destroy it with
// ovr.DestroyMirrorTexture before the session.
func CreateMirrorTextureDX(sess ovr.Session, d3dPtr unsafe.Pointer, desc *ovr.MirrorTextureDesc) (ovr.MirrorTexture, ovr.Result) {
	var mirror C.ovrMirrorTexture
	r := C.ovr_CreateMirrorTextureDX(
		C.ovrSession(unsafe.Pointer(sess)),
		d3dPtr,
		(*C.ovrMirrorTextureDesc)(unsafe.Pointer(desc)),
		&mirror)
	return ovr.MirrorTexture(unsafe.Pointer(mirror)), ovr.Result(r)
}

// GetMirrorTextureBufferDX returns the mirror texture as the interface
// named by iid, with one reference added for the caller.
func GetMirrorTextureBufferDX(sess ovr.Session, mirrorTexture ovr.MirrorTexture, iid windows.GUID) (unsafe.Pointer, ovr.Result) {
	var buf unsafe.Pointer
	r := C.ovr_GetMirrorTextureBufferDX(
		C.ovrSession(unsafe.Pointer(sess)),
		C.ovrMirrorTexture(unsafe.Pointer(mirrorTexture)),
		*(*C.ovrIID)(unsafe.Pointer(&iid)),
		&buf)
	return buf, ovr.Result(r)
}
