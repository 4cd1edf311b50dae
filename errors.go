package pstoedit

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInitialized is returned when pstoedit is used before a
	// successful Init. The native library reports this itself (a -1
	// status or a nil driver catalog); the binding does not track
	// initialization state on its own.
	ErrNotInitialized = errors.New("pstoedit was not initialized")

	// ErrIncompatibleVersion is returned by Init when the loaded
	// pstoedit library rejects the plainC ABI version this binding was
	// compiled against.
	ErrIncompatibleVersion = errors.New("incompatible pstoedit version")
)

// ConversionError is a non-zero status code returned by the native
// conversion entry point. pstoedit multiplexes its own errors and
// ghostscript's through this code, so the binding surfaces it verbatim.
type ConversionError struct {
	Code int
}

func (e ConversionError) Error() string {
	return fmt.Sprintf("pstoedit exited with error code %d", e.Code)
}

// ArgumentError is returned when a command argument or interpreter path
// contains an embedded NUL byte and cannot be passed as a C string. The
// offending text never reaches the native library.
type ArgumentError struct {
	Arg string
}

func (e ArgumentError) Error() string {
	return fmt.Sprintf("argument contains embedded NUL byte: %q", e.Arg)
}

// DecodeError is returned by DriverInfo accessors when a string coming
// back from the native library is not valid UTF-8. Only non-conforming
// third-party drivers are expected to trigger this.
type DecodeError struct {
	Field string
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("driver field %s is not valid UTF-8", e.Field)
}
