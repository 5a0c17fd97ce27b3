// Package texture loads texture images and builds the fixed texture-material
// descriptor handed to the renderer.
package texture

import (
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
)

// Material is the statically typed stand-in for a texture shading graph:
// one diffuse image, nothing else.
type Material struct {
	Texture *image.NRGBA
}

// NewMaterial wraps a decoded image as a material.
func NewMaterial(img image.Image) *Material {
	return &Material{Texture: toNRGBA(img)}
}

// LoadMaterial reads a texture image (png, jpeg, tga, or bmp) and returns a
// material referencing it. A missing file fails before any rendering starts.
//
// Decoders are routed by extension rather than registered for sniffing: the
// tga format has no magic bytes, so it can never take part in content
// detection without shadowing every other format.
func LoadMaterial(path string) (*Material, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: open %s: %w", path, err)
	}
	defer f.Close()

	var img image.Image
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		img, err = png.Decode(f)
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(f)
	case ".tga":
		img, err = tga.Decode(f)
	case ".bmp":
		img, err = bmp.Decode(f)
	default:
		return nil, fmt.Errorf("texture: unsupported format %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}
	return NewMaterial(img), nil
}

// toNRGBA converts any image to NRGBA so the rasterizer can sample Pix
// directly.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
