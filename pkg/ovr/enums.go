package ovr

// Numeric values in this file are frozen to the LibOVR 1.15 contract.
// The runtime may report values a given binding build does not know about;
// unknown values travel through untouched.

// HmdType identifies a headset model.
type HmdType int32

const (
	HmdNone   HmdType = 0
	HmdDK1    HmdType = 3
	HmdDKHD   HmdType = 4
	HmdDK2    HmdType = 6
	HmdCB     HmdType = 8
	HmdOther  HmdType = 9
	HmdE32015 HmdType = 10
	HmdES06   HmdType = 11
	HmdES09   HmdType = 12
	HmdES11   HmdType = 13
	HmdCV1    HmdType = 14
)

// HMD capability bits, reported in HmdDesc.
const (
	HmdCapDebugDevice = 0x0010
)

// Tracking capability bits, reported in HmdDesc.
const (
	TrackingCapOrientation      = 0x0010
	TrackingCapMagYawCorrection = 0x0020
	TrackingCapPosition         = 0x0040
)

// EyeType selects an eye for FOV and render queries. Left is always 0,
// which also serves as the mono eye.
type EyeType int32

const (
	EyeLeft  EyeType = 0
	EyeRight EyeType = 1
	EyeCount EyeType = 2
)

// TrackingOrigin selects the coordinate origin reported by tracking calls.
type TrackingOrigin int32

const (
	TrackingOriginEyeLevel   TrackingOrigin = 0
	TrackingOriginFloorLevel TrackingOrigin = 1
	TrackingOriginCount      TrackingOrigin = 2
)

// Status bits in TrackingState.StatusFlags and HandStatusFlags.
const (
	StatusOrientationTracked = 0x0001
	StatusPositionTracked    = 0x0002
)

// Bits in TrackerPose.TrackerFlags.
const (
	TrackerConnected   = 0x0020
	TrackerPoseTracked = 0x0004
)

// TextureType selects the kind of texture resource in a swap chain.
type TextureType int32

const (
	TextureType2D         TextureType = 0
	TextureType2DExternal TextureType = 1
	TextureTypeCube       TextureType = 2
	TextureTypeCount      TextureType = 3
)

// Texture bind flag bits for TextureSwapChainDesc.BindFlags.
const (
	TextureBindNone              = 0
	TextureBindDXRenderTarget    = 0x0001
	TextureBindDXUnorderedAccess = 0x0002
	TextureBindDXDepthStencil    = 0x0004
)

// TextureFormat names a pixel format. The sRGB formats are the ones the
// compositor treats as gamma-correct; see the swap chain docs before
// choosing a linear format.
type TextureFormat int32

const (
	FormatUnknown           TextureFormat = 0
	FormatB5G6R5Unorm       TextureFormat = 1
	FormatB5G5R5A1Unorm     TextureFormat = 2
	FormatB4G4R4A4Unorm     TextureFormat = 3
	FormatR8G8B8A8Unorm     TextureFormat = 4
	FormatR8G8B8A8UnormSrgb TextureFormat = 5
	FormatB8G8R8A8Unorm     TextureFormat = 6
	FormatB8G8R8A8UnormSrgb TextureFormat = 7
	FormatB8G8R8X8Unorm     TextureFormat = 8
	FormatB8G8R8X8UnormSrgb TextureFormat = 9
	FormatR16G16B16A16Float TextureFormat = 10
	FormatR11G11B10Float    TextureFormat = 25
	FormatD16Unorm          TextureFormat = 11
	FormatD24UnormS8Uint    TextureFormat = 12
	FormatD32Float          TextureFormat = 13
	FormatD32FloatS8X24Uint TextureFormat = 14
	FormatBC1Unorm          TextureFormat = 15
	FormatBC1UnormSrgb      TextureFormat = 16
	FormatBC2Unorm          TextureFormat = 17
	FormatBC2UnormSrgb      TextureFormat = 18
	FormatBC3Unorm          TextureFormat = 19
	FormatBC3UnormSrgb      TextureFormat = 20
	FormatBC6HUF16          TextureFormat = 21
	FormatBC6HSF16          TextureFormat = 22
	FormatBC7Unorm          TextureFormat = 23
	FormatBC7UnormSrgb      TextureFormat = 24
)

// Texture misc flag bits for TextureSwapChainDesc.MiscFlags.
const (
	TextureMiscNone              = 0
	TextureMiscDXTypeless        = 0x0001
	TextureMiscAllowGenerateMips = 0x0002
	TextureMiscProtectedContent  = 0x0004
)

// Button bits in InputState.Buttons.
const (
	ButtonA         = 0x00000001
	ButtonB         = 0x00000002
	ButtonRThumb    = 0x00000004
	ButtonRShoulder = 0x00000008
	ButtonX         = 0x00000100
	ButtonY         = 0x00000200
	ButtonLThumb    = 0x00000400
	ButtonLShoulder = 0x00000800

	ButtonUp      = 0x00010000
	ButtonDown    = 0x00020000
	ButtonLeft    = 0x00040000
	ButtonRight   = 0x00080000
	ButtonEnter   = 0x00100000
	ButtonBack    = 0x00200000
	ButtonVolUp   = 0x00400000
	ButtonVolDown = 0x00800000
	ButtonHome    = 0x01000000

	ButtonPrivate = ButtonVolUp | ButtonVolDown | ButtonHome
	ButtonRMask   = ButtonA | ButtonB | ButtonRThumb | ButtonRShoulder
	ButtonLMask   = ButtonX | ButtonY | ButtonLThumb | ButtonLShoulder | ButtonEnter
)

// Touch bits in InputState.Touches. The pose bits report detected finger
// gestures rather than capacitive contact.
const (
	TouchA             = 0x00000001
	TouchB             = 0x00000002
	TouchRThumb        = 0x00000004
	TouchRThumbRest    = 0x00000008
	TouchRIndexTrigger = 0x00000010
	TouchX             = 0x00000100
	TouchY             = 0x00000200
	TouchLThumb        = 0x00000400
	TouchLThumbRest    = 0x00000800
	TouchLIndexTrigger = 0x00001000

	TouchRIndexPointing = 0x00000020
	TouchRThumbUp       = 0x00000040
	TouchLIndexPointing = 0x00002000
	TouchLThumbUp       = 0x00004000

	TouchRButtonMask = TouchA | TouchB | TouchRThumb | TouchRThumbRest | TouchRIndexTrigger
	TouchRPoseMask   = TouchRIndexPointing | TouchRThumbUp
	TouchLButtonMask = TouchX | TouchY | TouchLThumb | TouchLThumbRest | TouchLIndexTrigger
	TouchLPoseMask   = TouchLIndexPointing | TouchLThumbUp
)

// ControllerType selects controllers for input and haptics calls; the values
// combine as a bitmask.
type ControllerType int32

const (
	ControllerNone   ControllerType = 0x0000
	ControllerLTouch ControllerType = 0x0001
	ControllerRTouch ControllerType = 0x0002
	ControllerTouch  ControllerType = 0x0003
	ControllerRemote ControllerType = 0x0004
	ControllerXBox   ControllerType = 0x0010
	ControllerActive ControllerType = 0x00ff
)

// HapticsBufferSubmitMode selects how a haptics buffer is queued.
type HapticsBufferSubmitMode int32

const (
	HapticsBufferSubmitEnqueue HapticsBufferSubmitMode = 0
)

// TrackedDeviceType is a bitmask of devices for pose and boundary queries.
type TrackedDeviceType int32

const (
	TrackedDeviceHmd    TrackedDeviceType = 0x0001
	TrackedDeviceLTouch TrackedDeviceType = 0x0002
	TrackedDeviceRTouch TrackedDeviceType = 0x0004
	TrackedDeviceTouch  TrackedDeviceType = 0x0006
	TrackedDeviceAll    TrackedDeviceType = 0xffff
)

// BoundaryType selects which boundary the query runs against.
type BoundaryType int32

const (
	BoundaryOuter    BoundaryType = 0x0001
	BoundaryPlayArea BoundaryType = 0x0100
)

// HandType indexes per-hand arrays such as TrackingState.HandPoses.
type HandType int32

const (
	HandLeft  HandType = 0
	HandRight HandType = 1
	HandCount HandType = 2
)

// InitFlags configure Initialize.
type InitFlags int32

const (
	// InitDebug connects to a debug runtime when one is present.
	InitDebug InitFlags = 0x00000001
	// InitRequestVersion makes Initialize fail unless the runtime is at
	// least InitParams.RequestedMinorVersion.
	InitRequestVersion InitFlags = 0x00000004

	InitWritableBits InitFlags = 0x00ffffff
)

// LogLevel is the severity passed to the log callback and TraceMessage.
type LogLevel int32

const (
	LogLevelDebug LogLevel = 0
	LogLevelInfo  LogLevel = 1
	LogLevelError LogLevel = 2
)

// LayerType discriminates the layer structs in a SubmitFrame list.
type LayerType int32

const (
	LayerTypeDisabled  LayerType = 0
	LayerTypeEyeFov    LayerType = 1
	LayerTypeQuad      LayerType = 3
	LayerTypeEyeMatrix LayerType = 5
)

// Layer flag bits for LayerHeader.Flags.
const (
	LayerFlagHighQuality               = 0x01
	LayerFlagTextureOriginAtBottomLeft = 0x02
	LayerFlagHeadLocked                = 0x04
)

// MaxLayerCount is the most layers SubmitFrame accepts.
const MaxLayerCount = 16

// PerfHudMode values for the KeyPerfHudMode property.
type PerfHudMode int32

const (
	PerfHudOff              PerfHudMode = 0
	PerfHudPerfSummary      PerfHudMode = 1
	PerfHudLatencyTiming    PerfHudMode = 2
	PerfHudAppRenderTiming  PerfHudMode = 3
	PerfHudCompRenderTiming PerfHudMode = 4
	PerfHudVersionInfo      PerfHudMode = 5
	PerfHudCount            PerfHudMode = 6
)

// LayerHudMode values for the KeyLayerHudMode property.
type LayerHudMode int32

const (
	LayerHudOff  LayerHudMode = 0
	LayerHudInfo LayerHudMode = 1
)

// DebugHudStereoMode values for the KeyDebugHudStereoMode property.
type DebugHudStereoMode int32

const (
	DebugHudStereoOff                 DebugHudStereoMode = 0
	DebugHudStereoQuad                DebugHudStereoMode = 1
	DebugHudStereoQuadWithCrosshair   DebugHudStereoMode = 2
	DebugHudStereoCrosshairAtInfinity DebugHudStereoMode = 3
	DebugHudStereoCount               DebugHudStereoMode = 4
)

// Projection modifier bits for Matrix4fProjection and
// TimewarpProjectionDescFromProjection.
const (
	ProjectionNone              = 0x00
	ProjectionLeftHanded        = 0x01
	ProjectionFarLessThanNear   = 0x02
	ProjectionFarClipAtInfinity = 0x04
	ProjectionClipRangeOpenGL   = 0x08
)

// MaxProvidedFrameStats is the depth of the PerfStats frame window.
const MaxProvidedFrameStats = 5
