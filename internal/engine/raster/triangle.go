package raster

import (
	"image"
	"math"
)

// screenVert is a projected vertex ready for rasterization. uOverW/vOverW
// and invW carry the perspective-correct interpolation terms.
type screenVert struct {
	x, y   float64
	invW   float64
	uOverW float64
	vOverW float64
}

// rasterizeTriangle fills one triangle into the framebuffer with
// perspective-correct UV interpolation and a single flat shade factor.
//
// This is the hot path; the inner loop allocates nothing.
func rasterizeTriangle(fb *FrameBuffer, v0, v1, v2 screenVert, tex *image.NRGBA, shade float64) {
	// Screen-space bounding box, clamped.
	minX := int(math.Min(math.Min(v0.x, v1.x), v2.x))
	maxX := int(math.Max(math.Max(v0.x, v1.x), v2.x)) + 1
	minY := int(math.Min(math.Min(v0.y, v1.y), v2.y))
	maxY := int(math.Max(math.Max(v0.y, v1.y), v2.y)) + 1

	if minX < 0 {
		minX = 0
	}
	if maxX > fb.Width-1 {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY > fb.Height-1 {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup.
	det := (v1.y-v2.y)*(v0.x-v2.x) + (v2.x-v1.x)*(v0.y-v2.y)
	if det > -1e-12 && det < 1e-12 {
		return
	}
	invDet := 1.0 / det

	dy12 := v1.y - v2.y
	dx21 := v2.x - v1.x
	dy20 := v2.y - v0.y
	dx02 := v0.x - v2.x

	for y := minY; y <= maxY; y++ {
		fy := float64(y) + 0.5
		rowOff := y * fb.Width
		for x := minX; x <= maxX; x++ {
			fx := float64(x) + 0.5

			l0 := (dy12*(fx-v2.x) + dx21*(fy-v2.y)) * invDet
			l1 := (dy20*(fx-v2.x) + dx02*(fy-v2.y)) * invDet
			l2 := 1 - l0 - l1
			if l0 < 0 || l1 < 0 || l2 < 0 {
				continue
			}

			// 1/w is linear in screen space; depth is its reciprocal.
			invW := l0*v0.invW + l1*v1.invW + l2*v2.invW
			if invW <= 0 {
				continue
			}
			depth := 1.0 / invW

			zi := rowOff + x
			if depth >= fb.ZBuf[zi] {
				continue
			}

			var r, g, b, a uint8 = 200, 200, 200, 255
			if tex != nil {
				u := (l0*v0.uOverW + l1*v1.uOverW + l2*v2.uOverW) * depth
				v := (l0*v0.vOverW + l1*v1.vOverW + l2*v2.vOverW) * depth
				r, g, b, a = SampleTexture(tex, u, v)
			}
			if a == 0 {
				continue
			}

			fr := float64(r) * shade
			fg := float64(g) * shade
			fbv := float64(b) * shade
			if fr > 255 {
				fr = 255
			}
			if fg > 255 {
				fg = 255
			}
			if fbv > 255 {
				fbv = 255
			}

			fb.ZBuf[zi] = depth
			ci := zi * 4
			fb.Color[ci] = uint8(fr)
			fb.Color[ci+1] = uint8(fg)
			fb.Color[ci+2] = uint8(fbv)
			fb.Color[ci+3] = a
		}
	}
}
