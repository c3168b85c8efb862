package ovr

// Version of the runtime contract this binding is written against. Moving to
// a newer runtime means re-checking every struct layout and constant below;
// the layout tests are the probe for that.
const (
	ProductVersion = 1
	MajorVersion   = 1
	MinorVersion   = 15
	PatchVersion   = 0
	BuildNumber    = 0
)

// Property keys accepted by GetBool, GetInt, GetFloat, GetFloatArray,
// GetString and their setters.
const (
	KeyUser              = "User"
	KeyName              = "Name"
	KeyGender            = "Gender"
	KeyPlayerHeight      = "PlayerHeight"
	KeyEyeHeight         = "EyeHeight"
	KeyNeckToEyeDistance = "NeckEyeDistance"
	KeyEyeToNoseDistance = "EyeToNoseDist"

	KeyPerfHudMode                     = "PerfHudMode"
	KeyLayerHudMode                    = "LayerHudMode"
	KeyLayerHudCurrentLayer            = "LayerHudCurrentLayer"
	KeyLayerHudShowAllLayers           = "LayerHudShowAll"
	KeyDebugHudStereoMode              = "DebugHudStereoMode"
	KeyDebugHudStereoGuideInfoEnable   = "DebugHudStereoGuideInfoEnable"
	KeyDebugHudStereoGuideSize2f       = "DebugHudStereoGuideSize2f"
	KeyDebugHudStereoGuidePosition3f   = "DebugHudStereoGuidePosition3f"
	KeyDebugHudStereoGuideYawPitchRoll = "DebugHudStereoGuideYawPitchRoll3f"
	KeyDebugHudStereoGuideColor        = "DebugHudStereoGuideColor4f"
)

// Defaults the runtime falls back to when a user profile carries no value.
const (
	DefaultGender              = "Unknown"
	DefaultPlayerHeight        = 1.778
	DefaultEyeHeight           = 1.675
	DefaultNeckToEyeHorizontal = 0.0805
	DefaultNeckToEyeVertical   = 0.075
)
