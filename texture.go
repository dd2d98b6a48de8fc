package smoke

import (
	"fmt"
	"image"
	_ "image/png" // register PNG decoding for LoadTexture
	"os"
	"sync"

	xdraw "golang.org/x/image/draw"
)

// Texture is a pixmap plus the UV sub-region quads map onto, in [0,1]
// texture space. Sub-regions make atlas textures cheap: several trails
// can share one pixmap with different regions.
type Texture struct {
	pixmap *Pixmap
	region Rect
}

// NewTexture wraps a pixmap as a texture covering the full UV range.
func NewTexture(pm *Pixmap) *Texture {
	return &Texture{
		pixmap: pm,
		region: RectOf(0, 0, 1, 1),
	}
}

var (
	defaultTexOnce sync.Once
	defaultTex     *Texture
)

// DefaultTexture returns the shared fallback texture: a single opaque
// white pixel. Trails configured without a texture render with it, so a
// missing texture never fails a frame.
func DefaultTexture() *Texture {
	defaultTexOnce.Do(func() {
		pm := NewPixmap(1, 1)
		pm.SetPixel(0, 0, White)
		defaultTex = NewTexture(pm)
	})
	return defaultTex
}

// SubRegion returns a texture sharing the same pixmap but mapping quads
// onto the given UV rectangle.
func (t *Texture) SubRegion(region Rect) *Texture {
	return &Texture{pixmap: t.pixmap, region: region}
}

// Region returns the UV rectangle quads map onto.
func (t *Texture) Region() Rect {
	return t.region
}

// Pixmap returns the backing pixel buffer.
func (t *Texture) Pixmap() *Pixmap {
	return t.pixmap
}

// Sample returns the texel at (u, v) with nearest filtering. The
// coordinates are clamped to [0,1]; they address the texture's full
// pixmap (regions are resolved by the geometry builder when it assigns
// per-vertex UVs).
func (t *Texture) Sample(u, v float64) RGBA {
	if t.pixmap == nil || t.pixmap.width == 0 || t.pixmap.height == 0 {
		return White
	}
	u = clamp01(u)
	v = clamp01(v)
	x := int(u * float64(t.pixmap.width))
	y := int(v * float64(t.pixmap.height))
	if x >= t.pixmap.width {
		x = t.pixmap.width - 1
	}
	if y >= t.pixmap.height {
		y = t.pixmap.height - 1
	}
	return t.pixmap.GetPixel(x, y)
}

// TextureFromImage converts an image into a texture, rescaling it to
// size×size pixels with bilinear filtering when it does not already
// match. A non-positive size keeps the source dimensions.
func TextureFromImage(img image.Image, size int) *Texture {
	bounds := img.Bounds()
	if size <= 0 || (bounds.Dx() == size && bounds.Dy() == size) {
		return NewTexture(PixmapFromImage(img))
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)
	return NewTexture(PixmapFromImage(dst))
}

// LoadTexture reads and decodes an image file (PNG or any registered
// format) into a texture at its native size.
func LoadTexture(path string) (*Texture, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("smoke: open texture %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("smoke: decode texture %s: %w", path, err)
	}
	return TextureFromImage(img, 0), nil
}
