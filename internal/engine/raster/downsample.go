package raster

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample reduces the image with premultiplied-alpha-aware CatmullRom
// filtering. Premultiplying first prevents dark halos at transparent edges.
func Downsample(img *image.NRGBA, targetW, targetH int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= targetW && b.Dy() <= targetH {
		return img
	}

	premul := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			si := img.PixOffset(x, y)
			di := premul.PixOffset(x, y)
			a := float64(img.Pix[si+3]) / 255.0
			premul.Pix[di] = uint8(float64(img.Pix[si])*a + 0.5)
			premul.Pix[di+1] = uint8(float64(img.Pix[si+1])*a + 0.5)
			premul.Pix[di+2] = uint8(float64(img.Pix[si+2])*a + 0.5)
			premul.Pix[di+3] = img.Pix[si+3]
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, targetW, targetH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), premul, premul.Bounds(), draw.Src, nil)

	// Back to straight alpha.
	out := image.NewNRGBA(dst.Bounds())
	for y := 0; y < targetH; y++ {
		for x := 0; x < targetW; x++ {
			si := dst.PixOffset(x, y)
			di := out.PixOffset(x, y)
			a := dst.Pix[si+3]
			if a == 0 {
				continue
			}
			fa := 255.0 / float64(a)
			r := float64(dst.Pix[si]) * fa
			g := float64(dst.Pix[si+1]) * fa
			bl := float64(dst.Pix[si+2]) * fa
			if r > 255 {
				r = 255
			}
			if g > 255 {
				g = 255
			}
			if bl > 255 {
				bl = 255
			}
			out.Pix[di] = uint8(r + 0.5)
			out.Pix[di+1] = uint8(g + 0.5)
			out.Pix[di+2] = uint8(bl + 0.5)
			out.Pix[di+3] = a
		}
	}
	return out
}
