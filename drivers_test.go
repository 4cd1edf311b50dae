package pstoedit

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fetchNames(t *testing.T, info *DriverInfo) []string {
	t.Helper()
	var names []string
	for it := info.Iter(); ; {
		drv, ok := it.Next()
		if !ok {
			break
		}
		name, err := drv.SymbolicName()
		require.NoError(t, err)
		names = append(names, name)
	}
	return names
}

func TestDrivers(t *testing.T) {
	require.NoError(t, Init())

	info, err := Drivers()
	require.NoError(t, err)
	defer info.Close()

	names := fetchNames(t, info)
	assert.NotEmpty(t, names)
}

func TestNativeDriversAreSubset(t *testing.T) {
	require.NoError(t, Init())

	all, err := Drivers()
	require.NoError(t, err)
	defer all.Close()
	native, err := NativeDrivers()
	require.NoError(t, err)
	defer native.Close()

	allNames := fetchNames(t, all)
	nativeNames := fetchNames(t, native)

	assert.GreaterOrEqual(t, len(allNames), len(nativeNames))
	for _, name := range nativeNames {
		assert.Contains(t, allNames, name)
	}
}

func TestDriverNamesAreUnique(t *testing.T) {
	require.NoError(t, Init())

	info, err := Drivers()
	require.NoError(t, err)
	defer info.Close()

	names := fetchNames(t, info)
	assert.Len(t, lo.Uniq(names), len(names))
}

func TestIterRestartable(t *testing.T) {
	require.NoError(t, Init())

	info, err := Drivers()
	require.NoError(t, err)
	defer info.Close()

	first := fetchNames(t, info)
	second := fetchNames(t, info)
	assert.Equal(t, first, second, "two traversals of the same catalog must agree")
}

func TestDriverFieldsDecode(t *testing.T) {
	require.NoError(t, Init())

	info, err := Drivers()
	require.NoError(t, err)
	defer info.Close()

	for it := info.Iter(); ; {
		drv, ok := it.Next()
		if !ok {
			break
		}
		_, err := drv.SymbolicName()
		assert.NoError(t, err)
		_, err = drv.Extension()
		assert.NoError(t, err)
		_, err = drv.Explanation()
		assert.NoError(t, err)
		_, err = drv.AdditionalInfo()
		assert.NoError(t, err)
	}
}

// The psf driver ships with every pstoedit release and has documented
// capabilities, which makes it a stable reference point.
func TestPsfDriver(t *testing.T) {
	require.NoError(t, Init())

	info, err := Drivers()
	require.NoError(t, err)
	defer info.Close()

	records, err := info.Records()
	require.NoError(t, err)

	psf, found := lo.Find(records, func(r DriverRecord) bool {
		return r.SymbolicName == "psf"
	})
	require.True(t, found, "psf driver missing from catalog")

	assert.Equal(t, "fps", psf.Extension)
	assert.True(t, psf.Subpaths)
	assert.False(t, psf.Curveto)
	assert.True(t, psf.Merging)
	assert.True(t, psf.Text)
	assert.True(t, psf.Images)
	assert.True(t, psf.MultiplePages)
}

func TestCloseIsIdempotent(t *testing.T) {
	require.NoError(t, Init())

	info, err := Drivers()
	require.NoError(t, err)

	info.Close()
	info.Close() // only the first call releases

	// A closed catalog yields no drivers instead of touching freed memory.
	_, ok := info.Iter().Next()
	assert.False(t, ok)
}

func TestRecordsSurviveClose(t *testing.T) {
	require.NoError(t, Init())

	info, err := Drivers()
	require.NoError(t, err)

	records, err := info.Records()
	require.NoError(t, err)
	info.Close()

	require.NotEmpty(t, records)
	assert.NotEmpty(t, records[0].SymbolicName)
}

func TestValidateFieldRejectsInvalidUTF8(t *testing.T) {
	_, err := validateField("suffix", "\xff\xfe")

	var decErr DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, "suffix", decErr.Field)

	s, err := validateField("symbolicname", "psf")
	require.NoError(t, err)
	assert.Equal(t, "psf", s)
}

func TestCapabilities(t *testing.T) {
	rec := DriverRecord{Subpaths: true, Text: true, MultiplePages: true}
	assert.Equal(t, []string{"subpaths", "text", "multiple pages"}, rec.Capabilities())

	assert.Empty(t, DriverRecord{}.Capabilities())
}
