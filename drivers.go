package pstoedit

/*
#cgo pstoedit4 CFLAGS: -DPSTOEDIT4
#include "native.h"
*/
import "C"

import (
	"unicode/utf8"
	"unsafe"
)

// DriverInfo is a catalog of pstoedit output drivers. The backing array
// is allocated by the native library and must be handed back to it via
// Close; until then it can be traversed any number of times with Iter.
//
// The array carries no length. It ends at the first element whose
// symbolic-name field is null, and Iter stops there.
//
// A DriverInfo is single-owner and not safe for concurrent use: Close
// and traversal must not race. nativeMu only serializes the calls into
// the native library, not access to the handle itself.
type DriverInfo struct {
	ptr *C.struct_DriverDescription_S
}

// Drivers fetches the catalog of all output drivers, including those
// delegated to external programs. Returns ErrNotInitialized if Init has
// not succeeded. The caller must Close the catalog when done.
func Drivers() (*DriverInfo, error) {
	return fetchDrivers(false)
}

// NativeDrivers fetches the catalog of drivers built into pstoedit
// itself. Every driver listed here also appears in Drivers.
func NativeDrivers() (*DriverInfo, error) {
	return fetchDrivers(true)
}

// Close returns the catalog's backing array to the native allocator.
// Only the first call releases; later calls are no-ops. Driver views and
// iterators obtained from this catalog must not be used after Close.
func (d *DriverInfo) Close() {
	if d.ptr == nil {
		return
	}
	ptr := d.ptr
	d.ptr = nil
	releaseDrivers(ptr)
}

// Iter starts a traversal over the catalog. Traversals are independent:
// calling Iter again restarts from the first driver.
func (d *DriverInfo) Iter() *DriverIter {
	return &DriverIter{info: d}
}

// Records decodes the whole catalog into owned DriverRecord values,
// which remain valid after the catalog is closed.
func (d *DriverInfo) Records() ([]DriverRecord, error) {
	var records []DriverRecord
	for it := d.Iter(); ; {
		drv, ok := it.Next()
		if !ok {
			break
		}
		rec, err := drv.Record()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// DriverIter walks a DriverInfo catalog in array order.
type DriverIter struct {
	info   *DriverInfo
	offset uintptr
}

// Next returns the next driver view, or ok=false once the terminating
// sentinel is reached or the catalog has been closed.
func (it *DriverIter) Next() (Driver, bool) {
	base := it.info.ptr
	if base == nil {
		return Driver{}, false
	}
	cur := (*C.struct_DriverDescription_S)(unsafe.Add(
		unsafe.Pointer(base),
		it.offset*unsafe.Sizeof(*base),
	))
	if cur.symbolicname == nil {
		return Driver{}, false
	}
	it.offset++
	return Driver{d: cur}, true
}

// Driver is a read-only view of one catalog element, borrowed from the
// native array. It is valid only until the owning DriverInfo is closed.
type Driver struct {
	d *C.struct_DriverDescription_S
}

// decodeField converts a native string, rejecting invalid UTF-8 rather
// than letting it leak into output. pstoedit's own drivers always emit
// plain ASCII here; only third-party drivers are known to misbehave.
func decodeField(field string, p *C.char) (string, error) {
	return validateField(field, C.GoString(p))
}

func validateField(field, s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", DecodeError{Field: field}
	}
	return s, nil
}

// SymbolicName is the unique name identifying the driver, as passed to
// pstoedit's -f option.
func (d Driver) SymbolicName() (string, error) {
	return decodeField("symbolicname", d.d.symbolicname)
}

// Extension is the file name extension associated with the driver's
// output format.
func (d Driver) Extension() (string, error) {
	return decodeField("suffix", d.d.suffix)
}

// Explanation is a short human-readable description of the driver.
func (d Driver) Explanation() (string, error) {
	return decodeField("explanation", d.d.explanation)
}

// AdditionalInfo is free-text extra information, often empty.
func (d Driver) AdditionalInfo() (string, error) {
	return decodeField("additionalInfo", d.d.additionalInfo)
}

// SupportsSubpaths reports whether the driver's backend handles subpaths.
func (d Driver) SupportsSubpaths() bool {
	return d.d.backendSupportsSubPaths != 0
}

// SupportsCurveto reports whether the backend handles curveto elements.
func (d Driver) SupportsCurveto() bool {
	return d.d.backendSupportsCurveto != 0
}

// SupportsMerging reports whether the backend can merge shapes.
func (d Driver) SupportsMerging() bool {
	return d.d.backendSupportsMerging != 0
}

// SupportsText reports whether the backend handles text elements.
func (d Driver) SupportsText() bool {
	return d.d.backendSupportsText != 0
}

// SupportsImages reports whether the backend handles embedded images.
func (d Driver) SupportsImages() bool {
	return d.d.backendSupportsImages != 0
}

// SupportsMultiplePages reports whether the backend can emit more than
// one page per document.
func (d Driver) SupportsMultiplePages() bool {
	return d.d.backendSupportsMultiplePages != 0
}

// FormatGroup returns the driver's format group. Drivers in the same
// group share driver-specific options. Only available when the binding
// targets pstoedit 4.x (see FormatGroupSupported); ok is false otherwise.
func (d Driver) FormatGroup() (group int, ok bool) {
	if !FormatGroupSupported {
		return 0, false
	}
	return int(C.pstoeditFormatGroup(d.d)), true
}

// DriverRecord is an owned snapshot of a Driver, safe to keep after the
// catalog is released and ready for structured output.
type DriverRecord struct {
	SymbolicName   string `json:"symbolic_name" yaml:"symbolic_name" pretty:"label=Format"`
	Extension      string `json:"extension" yaml:"extension" pretty:"label=Extension"`
	Explanation    string `json:"explanation" yaml:"explanation" pretty:"label=Explanation"`
	AdditionalInfo string `json:"additional_info,omitempty" yaml:"additional_info,omitempty" pretty:"label=Additional Info,omitempty"`

	Subpaths      bool `json:"subpaths" yaml:"subpaths" pretty:"label=Subpaths"`
	Curveto       bool `json:"curveto" yaml:"curveto" pretty:"label=Curveto"`
	Merging       bool `json:"merging" yaml:"merging" pretty:"label=Merging"`
	Text          bool `json:"text" yaml:"text" pretty:"label=Text"`
	Images        bool `json:"images" yaml:"images" pretty:"label=Images"`
	MultiplePages bool `json:"multiple_pages" yaml:"multiple_pages" pretty:"label=Pages"`

	FormatGroup *int `json:"format_group,omitempty" yaml:"format_group,omitempty" pretty:"label=Group,omitempty"`
}

// Record decodes every field of the driver into an owned snapshot.
func (d Driver) Record() (DriverRecord, error) {
	var rec DriverRecord
	var err error

	if rec.SymbolicName, err = d.SymbolicName(); err != nil {
		return DriverRecord{}, err
	}
	if rec.Extension, err = d.Extension(); err != nil {
		return DriverRecord{}, err
	}
	if rec.Explanation, err = d.Explanation(); err != nil {
		return DriverRecord{}, err
	}
	if rec.AdditionalInfo, err = d.AdditionalInfo(); err != nil {
		return DriverRecord{}, err
	}

	rec.Subpaths = d.SupportsSubpaths()
	rec.Curveto = d.SupportsCurveto()
	rec.Merging = d.SupportsMerging()
	rec.Text = d.SupportsText()
	rec.Images = d.SupportsImages()
	rec.MultiplePages = d.SupportsMultiplePages()

	if group, ok := d.FormatGroup(); ok {
		rec.FormatGroup = &group
	}
	return rec, nil
}

// Capabilities lists the record's capability names in pstoedit's
// conventional order, e.g. ["subpaths", "text", "images"].
func (r DriverRecord) Capabilities() []string {
	var caps []string
	if r.Subpaths {
		caps = append(caps, "subpaths")
	}
	if r.Curveto {
		caps = append(caps, "curveto")
	}
	if r.Merging {
		caps = append(caps, "merging")
	}
	if r.Text {
		caps = append(caps, "text")
	}
	if r.Images {
		caps = append(caps, "images")
	}
	if r.MultiplePages {
		caps = append(caps, "multiple pages")
	}
	return caps
}
