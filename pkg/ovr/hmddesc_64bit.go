//go:build amd64 || arm64

package ovr

// HmdDesc describes the attached headset. The pointer-width alignment of
// the C struct introduces two pad fields on 64-bit targets; the 32-bit
// variant lives in hmddesc_32bit.go.
type HmdDesc struct {
	_                     [0]uintptr
	Type                  HmdType
	_pad0                 [4]byte
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
	_pad1                 [4]byte
}
