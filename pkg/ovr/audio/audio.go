//go:build windows

// Package audio identifies the headset's audio endpoints and converts audio
// data into Touch haptics clips. Windows only; on other platforms an
// importing build fails with a build-constraint diagnostic naming this
// package.
package audio

// #include "../../../include/libovr/ovr_capi_audio.h"
import "C"

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/govr/libovr/pkg/ovr"
)

// MaxDeviceStrSize is the size of the WCHAR buffers the GuidStr calls fill.
const MaxDeviceStrSize = 128

// GetAudioDeviceOutWaveId returns the waveform-audio output device backing
// the headset speakers.
func GetAudioDeviceOutWaveId() (uint32, ovr.Result) {
	var id C.uint
	r := C.ovr_GetAudioDeviceOutWaveId(&id)
	return uint32(id), ovr.Result(r)
}

// GetAudioDeviceInWaveId returns the waveform-audio input device backing
// the headset microphone.
func GetAudioDeviceInWaveId() (uint32, ovr.Result) {
	var id C.uint
	r := C.ovr_GetAudioDeviceInWaveId(&id)
	return uint32(id), ovr.Result(r)
}

// GetAudioDeviceOutGuidStr returns the IMMDevice identifier string of the
// headset speakers.
func GetAudioDeviceOutGuidStr() (string, ovr.Result) {
	var buf [MaxDeviceStrSize]uint16
	r := C.ovr_GetAudioDeviceOutGuidStr((*C.ovrWCHAR)(unsafe.Pointer(&buf[0])))
	return windows.UTF16ToString(buf[:]), ovr.Result(r)
}

// GetAudioDeviceOutGuid returns the GUID of the headset speakers.
func GetAudioDeviceOutGuid() (windows.GUID, ovr.Result) {
	var guid C.ovrIID
	r := C.ovr_GetAudioDeviceOutGuid(&guid)
	return *(*windows.GUID)(unsafe.Pointer(&guid)), ovr.Result(r)
}

// GetAudioDeviceInGuidStr returns the IMMDevice identifier string of the
// headset microphone.
func GetAudioDeviceInGuidStr() (string, ovr.Result) {
	var buf [MaxDeviceStrSize]uint16
	r := C.ovr_GetAudioDeviceInGuidStr((*C.ovrWCHAR)(unsafe.Pointer(&buf[0])))
	return windows.UTF16ToString(buf[:]), ovr.Result(r)
}

// GetAudioDeviceInGuid returns the GUID of the headset microphone.
func GetAudioDeviceInGuid() (windows.GUID, ovr.Result) {
	var guid C.ovrIID
	r := C.ovr_GetAudioDeviceInGuid(&guid)
	return *(*windows.GUID)(unsafe.Pointer(&guid)), ovr.Result(r)
}

// HapticsGenMode selects how GenHapticsFromAudioData resamples audio into
// haptics samples.
type HapticsGenMode int32

const (
	// HapticsGenModePointSample keeps the audio's sample values, only
	// adjusting the rate.
	HapticsGenModePointSample HapticsGenMode = 0
	HapticsGenModeCount       HapticsGenMode = 1
)

// AudioChannelData is one decoded audio channel, runtime-owned. Release
// with ReleaseAudioChannelData.
type AudioChannelData struct {
	Samples      unsafe.Pointer
	SamplesCount int32
	Frequency    int32
}

// HapticsClip is a converted haptics sample buffer, runtime-owned. Release
// with ReleaseHapticsClip.
type HapticsClip struct {
	Samples      unsafe.Pointer
	SamplesCount int32
}

// Buffer wraps the clip for ovr.SubmitControllerVibration. The clip must
// not be released while a submission is in flight.
func (c *HapticsClip) Buffer(mode ovr.HapticsBufferSubmitMode) ovr.HapticsBuffer {
	return ovr.HapticsBuffer{
		Samples:      c.Samples,
		SamplesCount: c.SamplesCount,
		SubmitMode:   mode,
	}
}

// ReadWavFromBuffer decodes an in-memory WAV file and returns one channel
// of it. stereoChannelToUse selects the channel for multi-channel input.
func ReadWavFromBuffer(wav []byte, stereoChannelToUse int32) (AudioChannelData, ovr.Result) {
	var c C.ovrAudioChannelData
	var p unsafe.Pointer
	if len(wav) > 0 {
		p = unsafe.Pointer(&wav[0])
	}
	r := C.ovr_ReadWavFromBuffer(&c, p, C.int(len(wav)), C.int(stereoChannelToUse))
	return *(*AudioChannelData)(unsafe.Pointer(&c)), ovr.Result(r)
}

// GenHapticsFromAudioData converts a decoded audio channel into a Touch
// haptics clip.
func GenHapticsFromAudioData(channel *AudioChannelData, genMode HapticsGenMode) (HapticsClip, ovr.Result) {
	var c C.ovrHapticsClip
	r := C.ovr_GenHapticsFromAudioData(&c,
		(*C.ovrAudioChannelData)(unsafe.Pointer(channel)),
		C.ovrHapticsGenMode(genMode))
	return *(*HapticsClip)(unsafe.Pointer(&c)), ovr.Result(r)
}

// ReleaseAudioChannelData frees the runtime-owned samples and zeroes the
// struct.
func ReleaseAudioChannelData(channel *AudioChannelData) {
	C.ovr_ReleaseAudioChannelData((*C.ovrAudioChannelData)(unsafe.Pointer(channel)))
}

// ReleaseHapticsClip frees the runtime-owned samples and zeroes the struct.
func ReleaseHapticsClip(clip *HapticsClip) {
	C.ovr_ReleaseHapticsClip((*C.ovrHapticsClip)(unsafe.Pointer(clip)))
}
