package ovr

// The runtime only ships link libraries for Windows. Other platforms can
// still compile this package (the declarations are self-contained) but the
// final link will fail unless a LibOVR import library is provided.

// #cgo windows,amd64 LDFLAGS: -L${SRCDIR}/../../lib/windows/x86_64 -lLibOVR
// #cgo windows,386 LDFLAGS: -L${SRCDIR}/../../lib/windows/x86 -lLibOVR
import "C"
