// Package ovr is a raw cgo binding to LibOVR, the Oculus Rift PC runtime,
// pinned to version 1.15.0.
//
// The package mirrors the C API one to one: structs match the runtime's
// memory layout byte for byte, enum and flag values are frozen to the 1.15
// contract, and every call forwards its ovrResult untouched. The binding
// holds no state, spawns no goroutines and never caches a handle; session,
// swap chain and mirror texture lifetimes are the caller's responsibility,
// exactly as they are in C.
//
// Graphics interop lives in subpackages (opengl, vulkan, directx, audio).
// Importing a subpackage is the opt-in; platforms that cannot satisfy a
// subpackage's preconditions fail at build time, never at run time.
//
// The vendor import library is not redistributed. Linking expects the
// LibOVR 1.15 binaries under lib/windows/x86_64 or lib/windows/x86 at the
// repository root; see the README.
package ovr
