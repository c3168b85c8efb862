package ovr

// #include <stdlib.h>
// #include "../../include/libovr/ovr_capi.h"
import "C"

import "unsafe"

// Property access. Keys are the Key* constants in version.go; unknown keys
// fall back to the provided default on reads and report false on writes.

// GetBool reads a boolean property.
func GetBool(sess Session, name string, defaultVal bool) bool {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return C.ovr_GetBool(csess(sess), cname, cBool(defaultVal)) != 0
}

// SetBool writes a boolean property; false when the property is read-only
// or typed differently.
func SetBool(sess Session, name string, value bool) bool {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return C.ovr_SetBool(csess(sess), cname, cBool(value)) != 0
}

// GetInt reads an integer property.
func GetInt(sess Session, name string, defaultVal int32) int32 {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return int32(C.ovr_GetInt(csess(sess), cname, C.int(defaultVal)))
}

// SetInt writes an integer property.
func SetInt(sess Session, name string, value int32) bool {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return C.ovr_SetInt(csess(sess), cname, C.int(value)) != 0
}

// GetFloat reads a float property.
func GetFloat(sess Session, name string, defaultVal float32) float32 {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return float32(C.ovr_GetFloat(csess(sess), cname, C.float(defaultVal)))
}

// SetFloat writes a float property.
func SetFloat(sess Session, name string, value float32) bool {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return C.ovr_SetFloat(csess(sess), cname, C.float(value)) != 0
}

// GetFloatArray fills values from a float array property and returns the
// number of elements written.
func GetFloatArray(sess Session, name string, values []float32) uint32 {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	var p *C.float
	if len(values) > 0 {
		p = (*C.float)(unsafe.Pointer(&values[0]))
	}
	return uint32(C.ovr_GetFloatArray(csess(sess), cname, p, C.uint(len(values))))
}

// SetFloatArray writes a float array property.
func SetFloatArray(sess Session, name string, values []float32) bool {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	var p *C.float
	if len(values) > 0 {
		p = (*C.float)(unsafe.Pointer(&values[0]))
	}
	return C.ovr_SetFloatArray(csess(sess), cname, p, C.uint(len(values))) != 0
}

// GetString reads a string property. The runtime's buffer is only valid
// until the next call, so the value is copied out immediately.
func GetString(sess Session, name string, defaultVal string) string {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	cdef := C.CString(defaultVal)
	defer C.free(unsafe.Pointer(cdef))
	return C.GoString(C.ovr_GetString(csess(sess), cname, cdef))
}

// SetString writes a string property.
func SetString(sess Session, name string, value string) bool {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	cval := C.CString(value)
	defer C.free(unsafe.Pointer(cval))
	return C.ovr_SetString(csess(sess), cname, cval) != 0
}
