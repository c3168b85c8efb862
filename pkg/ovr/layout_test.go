//go:build amd64 || arm64

package ovr

import (
	"testing"
	"unsafe"
)

// The runtime reads and writes these structs directly, so their Go layout
// must match the C layout bit for bit. Sizes and offsets below are the
// 64-bit values from the vendor headers; a failure here means the mirror
// drifted and every call passing that struct is unsound.

func TestStructSizes(t *testing.T) {
	tests := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"Colorf", unsafe.Sizeof(Colorf{}), 16},
		{"Vector2i", unsafe.Sizeof(Vector2i{}), 8},
		{"Sizei", unsafe.Sizeof(Sizei{}), 8},
		{"Recti", unsafe.Sizeof(Recti{}), 16},
		{"Quatf", unsafe.Sizeof(Quatf{}), 16},
		{"Vector2f", unsafe.Sizeof(Vector2f{}), 8},
		{"Vector3f", unsafe.Sizeof(Vector3f{}), 12},
		{"Matrix4f", unsafe.Sizeof(Matrix4f{}), 64},
		{"Posef", unsafe.Sizeof(Posef{}), 28},
		{"PoseStatef", unsafe.Sizeof(PoseStatef{}), 88},
		{"FovPort", unsafe.Sizeof(FovPort{}), 16},
		{"GraphicsLuid", unsafe.Sizeof(GraphicsLuid{}), 8},
		{"HmdDesc", unsafe.Sizeof(HmdDesc{}), 264},
		{"TrackerDesc", unsafe.Sizeof(TrackerDesc{}), 16},
		{"TrackerPose", unsafe.Sizeof(TrackerPose{}), 64},
		{"TrackingState", unsafe.Sizeof(TrackingState{}), 312},
		{"EyeRenderDesc", unsafe.Sizeof(EyeRenderDesc{}), 56},
		{"TimewarpProjectionDesc", unsafe.Sizeof(TimewarpProjectionDesc{}), 12},
		{"ViewScaleDesc", unsafe.Sizeof(ViewScaleDesc{}), 28},
		{"TextureSwapChainDesc", unsafe.Sizeof(TextureSwapChainDesc{}), 40},
		{"MirrorTextureDesc", unsafe.Sizeof(MirrorTextureDesc{}), 16},
		{"TouchHapticsDesc", unsafe.Sizeof(TouchHapticsDesc{}), 24},
		{"HapticsBuffer", unsafe.Sizeof(HapticsBuffer{}), 16},
		{"HapticsPlaybackState", unsafe.Sizeof(HapticsPlaybackState{}), 8},
		{"BoundaryLookAndFeel", unsafe.Sizeof(BoundaryLookAndFeel{}), 16},
		{"BoundaryTestResult", unsafe.Sizeof(BoundaryTestResult{}), 32},
		{"InputState", unsafe.Sizeof(InputState{}), 120},
		{"InitParams", unsafe.Sizeof(InitParams{}), 32},
		{"SessionStatus", unsafe.Sizeof(SessionStatus{}), 6},
		{"LayerHeader", unsafe.Sizeof(LayerHeader{}), 8},
		{"LayerEyeFov", unsafe.Sizeof(LayerEyeFov{}), 152},
		{"LayerEyeMatrix", unsafe.Sizeof(LayerEyeMatrix{}), 248},
		{"LayerQuad", unsafe.Sizeof(LayerQuad{}), 72},
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

func TestStructAlignments(t *testing.T) {
	tests := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"PoseStatef", unsafe.Alignof(PoseStatef{}), 8},
		{"GraphicsLuid", unsafe.Alignof(GraphicsLuid{}), 8},
		{"HmdDesc", unsafe.Alignof(HmdDesc{}), 8},
		{"TrackerPose", unsafe.Alignof(TrackerPose{}), 8},
		{"TrackingState", unsafe.Alignof(TrackingState{}), 8},
		{"InitParams", unsafe.Alignof(InitParams{}), 8},
		{"LayerHeader", unsafe.Alignof(LayerHeader{}), 8},
		{"LayerEyeFov", unsafe.Alignof(LayerEyeFov{}), 8},
		{"DetectResult", unsafe.Alignof(DetectResult{}), 8},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("alignof(%s) = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestStructOffsets(t *testing.T) {
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
		{"HmdDesc.ProductName", unsafe.Offsetof(hd.ProductName), 8},
		{"HmdDesc.SerialNumber", unsafe.Offsetof(hd.SerialNumber), 140},
		{"HmdDesc.DefaultEyeFov", unsafe.Offsetof(hd.DefaultEyeFov), 184},
		{"HmdDesc.DisplayRefreshRate", unsafe.Offsetof(hd.DisplayRefreshRate), 256},
		{"TrackingState.StatusFlags", unsafe.Offsetof(ts.StatusFlags), 88},
		{"TrackingState.HandPoses", unsafe.Offsetof(ts.HandPoses), 96},
		{"TrackingState.CalibratedOrigin", unsafe.Offsetof(ts.CalibratedOrigin), 280},
		{"InputState.ControllerType", unsafe.Offsetof(is.ControllerType), 48},
		{"InputState.ThumbstickRaw", unsafe.Offsetof(is.ThumbstickRaw), 100},
		{"LayerEyeFov.RenderPose", unsafe.Offsetof(lf.RenderPose), 88},
		{"LayerEyeFov.SensorSampleTime", unsafe.Offsetof(lf.SensorSampleTime), 144},
		{"PerfStats.VisibleProcessId", unsafe.Offsetof(pf.VisibleProcessId), 376},
		{"ErrorInfo.ErrorString", unsafe.Offsetof(ei.ErrorString), 4},
		{"InitParams.LogCallback", unsafe.Offsetof(ip.LogCallback), 8},
		{"InitParams.ConnectionTimeoutMS", unsafe.Offsetof(ip.ConnectionTimeoutMS), 24},
		{"TextureSwapChainDesc.MiscFlags", unsafe.Offsetof(tsd.MiscFlags), 32},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("offsetof(%s) = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}
