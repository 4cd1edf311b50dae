package preview

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="50" viewBox="0 0 100 50">
  <rect x="10" y="10" width="80" height="30" fill="#336699"/>
</svg>`

func writeSVG(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.svg")
	require.NoError(t, os.WriteFile(path, []byte(testSVG), 0o644))
	return path
}

func TestRender(t *testing.T) {
	svgPath := writeSVG(t)
	pngPath := filepath.Join(t.TempDir(), "preview.png")

	require.NoError(t, Render(svgPath, pngPath, Options{}))

	f, err := os.Open(pngPath)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 50, img.Bounds().Dy())
}

func TestRenderScaled(t *testing.T) {
	svgPath := writeSVG(t)
	pngPath := filepath.Join(t.TempDir(), "preview.png")

	require.NoError(t, Render(svgPath, pngPath, Options{Width: 200}))

	f, err := os.Open(pngPath)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())
}

func TestRenderMissingInput(t *testing.T) {
	err := Render(filepath.Join(t.TempDir(), "missing.svg"), "out.png", Options{})
	assert.Error(t, err)
}
