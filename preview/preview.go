// Package preview rasterizes an SVG conversion result to PNG, giving a
// quick visual check of the output without an SVG viewer.
package preview

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/flanksource/commons/logger"
)

// Options controls rasterization.
type Options struct {
	// Width overrides the SVG's own width; 0 keeps the viewbox size.
	Width int
}

// Render rasterizes the SVG at svgPath into a PNG at pngPath.
func Render(svgPath, pngPath string, opts Options) error {
	icon, err := oksvg.ReadIcon(svgPath, oksvg.WarnErrorMode)
	if err != nil {
		return fmt.Errorf("preview: cannot parse %s: %w", svgPath, err)
	}

	w := int(icon.ViewBox.W)
	h := int(icon.ViewBox.H)
	if w <= 0 || h <= 0 {
		return fmt.Errorf("preview: %s has an empty viewbox", svgPath)
	}
	if opts.Width > 0 {
		h = h * opts.Width / w
		w = opts.Width
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.SetTarget(0, 0, float64(w), float64(h))
	icon.Draw(raster, 1.0)

	out, err := os.Create(pngPath)
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("preview: encoding %s: %w", pngPath, err)
	}
	logger.Debugf("preview: rendered %s (%dx%d) from %s", pngPath, w, h, svgPath)
	return nil
}
