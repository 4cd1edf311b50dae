package pstoedit

/*
#cgo LDFLAGS: -lpstoedit
#cgo pstoedit4 CFLAGS: -DPSTOEDIT4
#include <stdlib.h>
#include "native.h"
*/
import "C"

import (
	"sync"
	"unsafe"
)

// nativeMu serializes every call into the native library. pstoedit does
// not document thread-safety for its plainC interface, so the binding
// never issues two native calls concurrently.
var nativeMu sync.Mutex

// DLLVersion is the plainC interface version this binding was compiled
// against: 301 for pstoedit 3.17-3.78, 401 under the pstoedit4 build tag.
const DLLVersion = int(C.pstoeditdllversion)

// FormatGroupSupported reports whether the compiled interface version
// carries the per-driver format group field (pstoedit 4.x only).
const FormatGroupSupported = C.PSTOEDIT_HAS_FORMAT_GROUP != 0

// Init verifies that the loaded pstoedit library is compatible with the
// interface version this binding was compiled against. It must be called
// successfully before Run, Drivers or NativeDrivers; it is safe to call
// more than once.
//
// The native library itself records that initialization happened; the
// binding keeps no state of its own, so a later call re-checks rather
// than short-circuits.
func Init() error {
	nativeMu.Lock()
	defer nativeMu.Unlock()
	if C.pstoedit_checkversion(C.int(C.pstoeditdllversion)) == 0 {
		return ErrIncompatibleVersion
	}
	return nil
}

// runNative copies each argument and the optional interpreter path to
// the C heap, issues the conversion entry point, and frees every buffer
// before returning. The argv array is rebuilt on every invocation; no
// pointer outlives the call.
//
// Arguments must already be NUL-free (Command checks at add time).
func runNative(args []string, gs string, hasGs bool) error {
	argv := make([]*C.char, len(args))
	for i, arg := range args {
		argv[i] = C.CString(arg)
	}
	defer func() {
		for _, p := range argv {
			C.free(unsafe.Pointer(p))
		}
	}()

	var cgs *C.char
	if hasGs {
		cgs = C.CString(gs)
		defer C.free(unsafe.Pointer(cgs))
	}

	var argvPtr **C.char
	if len(argv) > 0 {
		argvPtr = &argv[0]
	}

	nativeMu.Lock()
	defer nativeMu.Unlock()
	return statusToError(int(C.pstoedit_plainC(C.int(len(argv)), argvPtr, cgs)))
}

// statusToError maps the pstoedit_plainC return code onto the error
// model: 0 success, -1 uninitialized, anything else a native error code
// surfaced verbatim.
func statusToError(code int) error {
	switch code {
	case 0:
		return nil
	case -1:
		return ErrNotInitialized
	default:
		return ConversionError{Code: code}
	}
}

func fetchDrivers(nativeOnly bool) (*DriverInfo, error) {
	nativeMu.Lock()
	defer nativeMu.Unlock()

	var ptr *C.struct_DriverDescription_S
	if nativeOnly {
		ptr = C.getPstoeditNativeDriverInfo_plainC()
	} else {
		ptr = C.getPstoeditDriverInfo_plainC()
	}
	// pstoedit returns a null catalog precisely when it was never
	// initialized.
	if ptr == nil {
		return nil, ErrNotInitialized
	}
	return &DriverInfo{ptr: ptr}, nil
}

func releaseDrivers(ptr *C.struct_DriverDescription_S) {
	nativeMu.Lock()
	defer nativeMu.Unlock()
	C.clearPstoeditDriverInfo_plainC(ptr)
}
