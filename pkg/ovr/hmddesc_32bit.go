//go:build 386 || arm

package ovr

// HmdDesc describes the attached headset. 32-bit layout; see
// hmddesc_64bit.go for the 64-bit variant.
type HmdDesc struct {
	_                     [0]uintptr
	Type                  HmdType
	ProductName           [64]byte
	Manufacturer          [64]byte
	VendorId              int16
	ProductId             int16
	SerialNumber          [24]byte
	FirmwareMajor         int16
	FirmwareMinor         int16
	AvailableHmdCaps      uint32
	DefaultHmdCaps        uint32
	AvailableTrackingCaps uint32
	DefaultTrackingCaps   uint32
	DefaultEyeFov         [2]FovPort
	MaxEyeFov             [2]FovPort
	Resolution            Sizei
	DisplayRefreshRate    float32
}
