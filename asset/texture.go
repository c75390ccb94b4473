// Package asset decodes on-disk mesh and texture assets (OBJ+PNG, and a
// supplemental glTF path) into the plain in-memory types the rasterizer
// consumes. Decoding itself is an external collaborator per the system
// spec; this package exists only to produce the boundary types.
package asset

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
)

// Texture is a read-only CPU-side view of a decoded image: explicit width,
// height, and RGBA8 pixels, row-major, top-to-bottom. This is the single
// representation the rasterizer samples from, regardless of whether the
// texture arrived via PNG or an embedded glTF image.
type Texture struct {
	Width, Height int
	Pixels        []byte // 4 bytes per pixel: R,G,B,A
}

// At returns the RGBA color at texel (x,y), wrapping out-of-range
// coordinates by modulo so a texture never panics on a stray index.
func (t *Texture) At(x, y int) (r, g, b, a uint8) {
	if t.Width == 0 || t.Height == 0 {
		return 0, 0, 0, 0
	}
	x = ((x % t.Width) + t.Width) % t.Width
	y = ((y % t.Height) + t.Height) % t.Height
	i := (y*t.Width + x) * 4
	return t.Pixels[i], t.Pixels[i+1], t.Pixels[i+2], t.Pixels[i+3]
}

// LoadTexturePNG reads a PNG file from disk and converts it to an RGBA8
// Texture.
func LoadTexturePNG(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", path, err)
	}
	return textureFromImage(img), nil
}

func textureFromImage(img image.Image) *Texture {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	rgba := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rgba.Set(x, y, img.At(x, y))
		}
	}

	return &Texture{Width: w, Height: h, Pixels: rgba.Pix}
}

// SolidTexture returns a 1x1 texture of the given RGBA color.
func SolidTexture(r, g, b, a uint8) *Texture {
	return &Texture{Width: 1, Height: 1, Pixels: []byte{r, g, b, a}}
}
