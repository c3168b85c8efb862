//go:build 386 || arm

package ovr

import (
	"testing"
	"unsafe"
)

// 32-bit counterpart of layout_test.go: sizes and offsets from the vendor
// headers for 32-bit targets. Handle fields shrink to 4 bytes, so the layer
// structs and HmdDesc differ from the 64-bit values; everything without a
// pointer-sized field keeps them.
//
// One caveat is tail padding. On 386 Go aligns 64-bit scalars to 4 where the
// runtime ABI aligns them to 8, so TrackingState loses the ABI's 4 tail
// bytes there. Every field offset still matches, which is what the by-value
// copies in this package rely on.

func TestStructSizes32(t *testing.T) {
	word := unsafe.Alignof(uint64(0))
	trackingStateSize := (308 + word - 1) &^ (word - 1)

	tests := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"Posef", unsafe.Sizeof(Posef{}), 28},
		{"PoseStatef", unsafe.Sizeof(PoseStatef{}), 88},
		{"GraphicsLuid", unsafe.Sizeof(GraphicsLuid{}), 8},
		{"HmdDesc", unsafe.Sizeof(HmdDesc{}), 256},
		{"TrackerDesc", unsafe.Sizeof(TrackerDesc{}), 16},
		{"TrackerPose", unsafe.Sizeof(TrackerPose{}), 64},
		{"TrackingState", unsafe.Sizeof(TrackingState{}), trackingStateSize},
		{"EyeRenderDesc", unsafe.Sizeof(EyeRenderDesc{}), 56},
		{"ViewScaleDesc", unsafe.Sizeof(ViewScaleDesc{}), 28},
		{"TextureSwapChainDesc", unsafe.Sizeof(TextureSwapChainDesc{}), 40},
		{"MirrorTextureDesc", unsafe.Sizeof(MirrorTextureDesc{}), 16},
		{"TouchHapticsDesc", unsafe.Sizeof(TouchHapticsDesc{}), 24},
		{"HapticsBuffer", unsafe.Sizeof(HapticsBuffer{}), 12},
		{"BoundaryTestResult", unsafe.Sizeof(BoundaryTestResult{}), 32},
		{"InputState", unsafe.Sizeof(InputState{}), 120},
		{"InitParams", unsafe.Sizeof(InitParams{}), 24},
		{"SessionStatus", unsafe.Sizeof(SessionStatus{}), 6},
		{"LayerHeader", unsafe.Sizeof(LayerHeader{}), 8},
		{"LayerEyeFov", unsafe.Sizeof(LayerEyeFov{}), 144},
		{"LayerEyeMatrix", unsafe.Sizeof(LayerEyeMatrix{}), 240},
		{"LayerQuad", unsafe.Sizeof(LayerQuad{}), 64},
		{"PerfStatsPerCompositorFrame", unsafe.Sizeof(PerfStatsPerCompositorFrame{}), 72},
		{"PerfStats", unsafe.Sizeof(PerfStats{}), 380},
		{"ErrorInfo", unsafe.Sizeof(ErrorInfo{}), 516},
		{"DetectResult", unsafe.Sizeof(DetectResult{}), 8},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("sizeof(%s) = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestStructAlignments32(t *testing.T) {
	// word is 8 on arm and 4 on 386; the 386 value under-aligns the ABI's
	// 8-byte requirement, see the file comment.
	word := unsafe.Alignof(uint64(0))
	tests := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"PoseStatef", unsafe.Alignof(PoseStatef{}), word},
		{"TrackerPose", unsafe.Alignof(TrackerPose{}), word},
		{"TrackingState", unsafe.Alignof(TrackingState{}), word},
		{"InitParams", unsafe.Alignof(InitParams{}), word},
		{"DetectResult", unsafe.Alignof(DetectResult{}), word},
		{"GraphicsLuid", unsafe.Alignof(GraphicsLuid{}), 4},
		{"HmdDesc", unsafe.Alignof(HmdDesc{}), 4},
		{"LayerHeader", unsafe.Alignof(LayerHeader{}), 4},
		{"LayerEyeFov", unsafe.Alignof(LayerEyeFov{}), word},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("alignof(%s) = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestStructOffsets32(t *testing.T) {
	var (
		ps  PoseStatef
		hd  HmdDesc
		ts  TrackingState
		is  InputState
		lf  LayerEyeFov
		pf  PerfStats
		ei  ErrorInfo
		ip  InitParams
		tsd TextureSwapChainDesc
	)
	tests := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"PoseStatef.TimeInSeconds", unsafe.Offsetof(ps.TimeInSeconds), 80},
		{"HmdDesc.ProductName", unsafe.Offsetof(hd.ProductName), 4},
		{"HmdDesc.SerialNumber", unsafe.Offsetof(hd.SerialNumber), 136},
		{"HmdDesc.DefaultEyeFov", unsafe.Offsetof(hd.DefaultEyeFov), 180},
		{"HmdDesc.DisplayRefreshRate", unsafe.Offsetof(hd.DisplayRefreshRate), 252},
		{"TrackingState.StatusFlags", unsafe.Offsetof(ts.StatusFlags), 88},
		{"TrackingState.HandPoses", unsafe.Offsetof(ts.HandPoses), 96},
		{"TrackingState.CalibratedOrigin", unsafe.Offsetof(ts.CalibratedOrigin), 280},
		{"InputState.ControllerType", unsafe.Offsetof(is.ControllerType), 48},
		{"InputState.ThumbstickRaw", unsafe.Offsetof(is.ThumbstickRaw), 100},
		{"LayerEyeFov.RenderPose", unsafe.Offsetof(lf.RenderPose), 80},
		{"LayerEyeFov.SensorSampleTime", unsafe.Offsetof(lf.SensorSampleTime), 136},
		{"PerfStats.VisibleProcessId", unsafe.Offsetof(pf.VisibleProcessId), 376},
		{"ErrorInfo.ErrorString", unsafe.Offsetof(ei.ErrorString), 4},
		{"InitParams.LogCallback", unsafe.Offsetof(ip.LogCallback), 8},
		{"InitParams.ConnectionTimeoutMS", unsafe.Offsetof(ip.ConnectionTimeoutMS), 16},
		{"TextureSwapChainDesc.MiscFlags", unsafe.Offsetof(tsd.MiscFlags), 32},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("offsetof(%s) = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}
