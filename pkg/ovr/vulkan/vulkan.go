//go:build windows || linux

// Package vulkan creates runtime texture swap chains and mirror textures
// backed by VkImages and binds a session to a Vulkan device and queue.
// Handles interoperate directly with github.com/vulkan-go/vulkan.
//
// The package only builds on windows and linux; elsewhere an importing
// build fails with a build-constraint diagnostic naming this package.
package vulkan

// #include "../../../include/libovr/ovr_capi_vk.h"
import "C"

import (
	"unsafe"

	vk "github.com/vulkan-go/vulkan"

	"github.com/govr/libovr/pkg/ovr"
)

// ovrVkImage carries the handle as its 64-bit bit pattern; vulkan-go models
// VkImage as the pointer typedef, so the bits route through uintptr.
func vkImage(image C.ovrVkImage) vk.Image {
	return vk.Image(unsafe.Pointer(uintptr(image)))
}

// GetSessionPhysicalDeviceVk returns the VkPhysicalDevice matching the LUID
// reported by ovr.Create. The application must create its VkDevice on this
// physical device.
func GetSessionPhysicalDeviceVk(sess ovr.Session, luid ovr.GraphicsLuid, instance vk.Instance) (vk.PhysicalDevice, ovr.Result) {
	var pd C.ovrVkPhysicalDevice
	r := C.ovr_GetSessionPhysicalDeviceVk(
		C.ovrSession(unsafe.Pointer(sess)),
		*(*C.ovrGraphicsLuid)(unsafe.Pointer(&luid)),
		C.ovrVkInstance(unsafe.Pointer(instance)),
		&pd)
	return vk.PhysicalDevice(pd), ovr.Result(r)
}

// SetSynchonizationQueueVk tells the compositor which queue to synchronize
// against; call it once before the first SubmitFrame. The missing "r" is in
// the exported symbol itself, so the binding keeps the name.
func SetSynchonizationQueueVk(sess ovr.Session, queue vk.Queue) ovr.Result {
	return ovr.Result(C.ovr_SetSynchonizationQueueVk(
		C.ovrSession(unsafe.Pointer(sess)),
		C.ovrVkQueue(unsafe.Pointer(queue))))
}

// CreateTextureSwapChainVk creates a swap chain of VkImages on the given
// device. The chain must be destroyed with ovr.DestroyTextureSwapChain
// before the session.
func CreateTextureSwapChainVk(sess ovr.Session, device vk.Device, desc *ovr.TextureSwapChainDesc) (ovr.TextureSwapChain, ovr.Result) {
	var chain C.ovrTextureSwapChain
	r := C.ovr_CreateTextureSwapChainVk(
		C.ovrSession(unsafe.Pointer(sess)),
		C.ovrVkDevice(unsafe.Pointer(device)),
		(*C.ovrTextureSwapChainDesc)(unsafe.Pointer(desc)),
		&chain)
	return ovr.TextureSwapChain(unsafe.Pointer(chain)), ovr.Result(r)
}

// GetTextureSwapChainBufferVk returns the VkImage of buffer index in the
// chain.
func GetTextureSwapChainBufferVk(sess ovr.Session, chain ovr.TextureSwapChain, index int32) (vk.Image, ovr.Result) {
	var image C.ovrVkImage
	r := C.ovr_GetTextureSwapChainBufferVk(
		C.ovrSession(unsafe.Pointer(sess)),
		C.ovrTextureSwapChain(unsafe.Pointer(chain)),
		C.int(index), &image)
	return vkImage(image), ovr.Result(r)
}

// CreateMirrorTextureWithOptionsVk creates a VkImage that the compositor
// keeps updated with the distortion-corrected headset view. Destroy it with
// ovr.DestroyMirrorTexture before the session.
func CreateMirrorTextureWithOptionsVk(sess ovr.Session, device vk.Device, desc *ovr.MirrorTextureDesc) (ovr.MirrorTexture, ovr.Result) {
	var mirror C.ovrMirrorTexture
	r := C.ovr_CreateMirrorTextureWithOptionsVk(
		C.ovrSession(unsafe.Pointer(sess)),
		C.ovrVkDevice(unsafe.Pointer(device)),
		(*C.ovrMirrorTextureDesc)(unsafe.Pointer(desc)),
		&mirror)
	return ovr.MirrorTexture(unsafe.Pointer(mirror)), ovr.Result(r)
}

// GetMirrorTextureBufferVk returns the VkImage behind the mirror texture.
func GetMirrorTextureBufferVk(sess ovr.Session, mirrorTexture ovr.MirrorTexture) (vk.Image, ovr.Result) {
	var image C.ovrVkImage
	r := C.ovr_GetMirrorTextureBufferVk(
		C.ovrSession(unsafe.Pointer(sess)),
		C.ovrMirrorTexture(unsafe.Pointer(mirrorTexture)),
		&image)
	return vkImage(image), ovr.Result(r)
}
