package ovr

import "unsafe"

// The structs in this file mirror the runtime's memory layout exactly.
// Explicit pad fields and the zero-length alignment fields are part of the
// 1.15 contract; do not reorder, rename or remove anything without
// re-checking layout_test.go against the vendor headers.
//
// On 386 Go aligns 64-bit scalars to 4 while the runtime ABI aligns them
// to 8, so a Go-allocated struct can land on a 4-byte boundary there. The
// explicit pads keep every field offset correct regardless; x86 tolerates
// the weaker allocation alignment.

// Bool mirrors ovrBool, a one-byte truth value.
type Bool byte

const (
	False Bool = 0
	True  Bool = 1
)

// Opaque runtime handles. Pointer-sized, never dereferenced by the binding,
// owned by exactly one caller until the matching destroy call.
type (
	Session          unsafe.Pointer
	TextureSwapChain unsafe.Pointer
	MirrorTexture    unsafe.Pointer
)

type Colorf struct {
	R, G, B, A float32
}

type Vector2i struct {
	X, Y int32
}

type Sizei struct {
	W, H int32
}

type Recti struct {
	Pos  Vector2i
	Size Sizei
}

type Quatf struct {
	X, Y, Z, W float32
}

type Vector2f struct {
	X, Y float32
}

type Vector3f struct {
	X, Y, Z float32
}

// Matrix4f is a row-major 4x4 matrix.
type Matrix4f struct {
	M [4][4]float32
}

// Posef is a rigid body pose: rotation then translation.
type Posef struct {
	Orientation Quatf
	Position    Vector3f
}

// PoseStatef is a full rigid body configuration with first and second
// derivatives, sampled at TimeInSeconds.
type PoseStatef struct {
	_                   [0]uint64
	ThePose             Posef
	AngularVelocity     Vector3f
	LinearVelocity      Vector3f
	AngularAcceleration Vector3f
	LinearAcceleration  Vector3f
	_pad0               [4]byte
	TimeInSeconds       float64
}

// FovPort describes a field of view as tangents of the half-angles from the
// center line to each edge.
type FovPort struct {
	UpTan    float32
	DownTan  float32
	LeftTan  float32
	RightTan float32
}

// GraphicsLuid identifies the graphics adapter the runtime renders on.
// Opaque; compare byte-wise against OS adapter LUIDs.
type GraphicsLuid struct {
	_        [0]uintptr
	Reserved [8]byte
}

// TrackerDesc describes a position tracker's frustum.
type TrackerDesc struct {
	_                    [0]uintptr
	FrustumHFovInRadians float32
	FrustumVFovInRadians float32
	FrustumNearZInMeters float32
	FrustumFarZInMeters  float32
}

// TrackerPose is the pose of a sensor at a moment in time.
type TrackerPose struct {
	_            [0]uint64
	TrackerFlags uint32
	Pose         Posef
	LeveledPose  Posef
	_pad0        [4]byte
}

// TrackingState is a snapshot of head and hand tracking, predicted to the
// absTime passed to GetTrackingState.
type TrackingState struct {
	_                [0]uint64
	HeadPose         PoseStatef
	StatusFlags      uint32
	_pad0            [4]byte
	HandPoses        [2]PoseStatef
	HandStatusFlags  [2]uint32
	CalibratedOrigin Posef
}

// EyeRenderDesc carries the rendering information for one eye, computed by
// GetRenderDesc from the HMD's configuration and the requested FOV.
type EyeRenderDesc struct {
	Eye                       EyeType
	Fov                       FovPort
	DistortedViewport         Recti
	PixelsPerTanAngleAtCenter Vector2f
	HmdToEyeOffset            Vector3f
}

// TimewarpProjectionDesc is the projection matrix terms the compositor needs
// for timewarp; produce it with TimewarpProjectionDescFromProjection.
type TimewarpProjectionDesc struct {
	Projection22 float32
	Projection23 float32
	Projection32 float32
}

// ViewScaleDesc scales the default eye separation and maps HMD space to
// world units for SubmitFrame.
type ViewScaleDesc struct {
	HmdToEyeOffset               [2]Vector3f
	HmdSpaceToWorldScaleInMeters float32
}

// TextureSwapChainDesc configures swap chain creation.
type TextureSwapChainDesc struct {
	Type        TextureType
	Format      TextureFormat
	ArraySize   int32
	Width       int32
	Height      int32
	MipLevels   int32
	SampleCount int32
	StaticImage Bool
	_pad0       [3]byte
	MiscFlags   uint32
	BindFlags   uint32
}

// MirrorTextureDesc configures mirror texture creation.
type MirrorTextureDesc struct {
	Format    TextureFormat
	Width     int32
	Height    int32
	MiscFlags uint32
}

// TouchHapticsDesc describes the haptics engine of a Touch controller.
type TouchHapticsDesc struct {
	_                             [0]uintptr
	SampleRateHz                  int32
	SampleSizeInBytes             int32
	QueueMinSizeToAvoidStarvation int32
	SubmitMinSamples              int32
	SubmitMaxSamples              int32
	SubmitOptimalSamples          int32
}

// HapticsBuffer points at raw amplitude samples for SubmitControllerVibration.
// Samples must stay valid for the duration of the call; clips produced by the
// audio subpackage hand out runtime-owned memory that satisfies this.
type HapticsBuffer struct {
	Samples      unsafe.Pointer
	SamplesCount int32
	SubmitMode   HapticsBufferSubmitMode
}

// HapticsPlaybackState reports the queue state of a controller's haptics
// engine.
type HapticsPlaybackState struct {
	RemainingQueueSpace int32
	SamplesQueued       int32
}

// BoundaryLookAndFeel configures the boundary's rendered color. Alpha is
// ignored by the runtime.
type BoundaryLookAndFeel struct {
	Color Colorf
}

// BoundaryTestResult is the outcome of testing a device or point against the
// boundary system.
type BoundaryTestResult struct {
	IsTriggering       Bool
	_pad0              [3]byte
	ClosestDistance    float32
	ClosestPoint       Vector3f
	ClosestPointNormal Vector3f
}

// InputState is a snapshot of controller input.
type InputState struct {
	TimeInSeconds          float64
	Buttons                uint32
	Touches                uint32
	IndexTrigger           [2]float32
	HandTrigger            [2]float32
	Thumbstick             [2]Vector2f
	ControllerType         ControllerType
	IndexTriggerNoDeadzone [2]float32
	HandTriggerNoDeadzone  [2]float32
	ThumbstickNoDeadzone   [2]Vector2f
	IndexTriggerRaw        [2]float32
	HandTriggerRaw         [2]float32
	ThumbstickRaw          [2]Vector2f
}

// InitParams configures Initialize. LogCallback is a C function pointer; Go
// callbacks are not supported, pass zero or a pointer obtained from C code.
// The callback may fire from any thread.
type InitParams struct {
	_                     [0]uint64
	Flags                 InitFlags
	RequestedMinorVersion uint32
	LogCallback           uintptr
	UserData              uintptr
	ConnectionTimeoutMS   uint32
	_pad0                 [4]byte
}

// SessionStatus reports the session's standing with the runtime; poll it
// every frame and honor ShouldQuit and ShouldRecenter.
type SessionStatus struct {
	IsVisible      Bool
	HmdPresent     Bool
	HmdMounted     Bool
	DisplayLost    Bool
	ShouldQuit     Bool
	ShouldRecenter Bool
}

// LayerHeader leads every layer struct; Type tells the compositor how to
// interpret the rest.
type LayerHeader struct {
	_     [0]uintptr
	Type  LayerType
	Flags uint32
}

// LayerEyeFov is the standard stereo world layer.
type LayerEyeFov struct {
	_                [0]uintptr
	Header           LayerHeader
	ColorTexture     [2]TextureSwapChain
	Viewport         [2]Recti
	Fov              [2]FovPort
	RenderPose       [2]Posef
	SensorSampleTime float64
}

// LayerEyeMatrix is like LayerEyeFov but maps through an explicit
// projection matrix per eye instead of a FOV port.
type LayerEyeMatrix struct {
	_                [0]uintptr
	Header           LayerHeader
	ColorTexture     [2]TextureSwapChain
	Viewport         [2]Recti
	RenderPose       [2]Posef
	Matrix           [2]Matrix4f
	SensorSampleTime float64
}

// LayerQuad is a flat quad positioned in space, typically for UI.
type LayerQuad struct {
	_              [0]uintptr
	Header         LayerHeader
	ColorTexture   TextureSwapChain
	Viewport       Recti
	QuadPoseCenter Posef
	QuadSize       Vector2f
}

// PerfStatsPerCompositorFrame is one frame's worth of performance counters.
type PerfStatsPerCompositorFrame struct {
	HmdVsyncIndex                         int32
	AppFrameIndex                         int32
	AppDroppedFrameCount                  int32
	AppMotionToPhotonLatency              float32
	AppQueueAheadTime                     float32
	AppCpuElapsedTime                     float32
	AppGpuElapsedTime                     float32
	CompositorFrameIndex                  int32
	CompositorDroppedFrameCount           int32
	CompositorLatency                     float32
	CompositorCpuElapsedTime              float32
	CompositorGpuElapsedTime              float32
	CompositorCpuStartToGpuEndElapsedTime float32
	CompositorGpuEndToVsyncElapsedTime    float32
	AswIsActive                           Bool
	_pad0                                 [3]byte
	AswActivatedToggleCount               int32
	AswPresentedFrameCount                int32
	AswFailedFrameCount                   int32
}

// PerfStats is the rolling window returned by GetPerfStats. FrameStats[0] is
// the most recent frame; FrameStatsCount says how many entries are fresh.
type PerfStats struct {
	FrameStats                  [MaxProvidedFrameStats]PerfStatsPerCompositorFrame
	FrameStatsCount             int32
	AnyFrameStatsDropped        Bool
	_pad0                       [3]byte
	AdaptiveGpuPerformanceScale float32
	AswIsAvailable              Bool
	_pad1                       [3]byte
	VisibleProcessId            ProcessId
}

// DetectResult is returned by Detect; usable before Initialize.
type DetectResult struct {
	_                      [0]uint64
	IsOculusServiceRunning Bool
	IsOculusHMDConnected   Bool
	_pad0                  [6]byte
}
