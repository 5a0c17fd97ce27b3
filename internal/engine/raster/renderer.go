package raster

import (
	"image"

	"github.com/naga-k/multiview/internal/engine/camera"
	"github.com/naga-k/multiview/internal/engine/lighting"
	"github.com/naga-k/multiview/internal/engine/model"
	"github.com/naga-k/multiview/internal/engine/texture"
	"github.com/naga-k/multiview/pkg/math"
)

// Params bundles everything one frame needs.
type Params struct {
	Mesh     *model.Mesh
	Material *texture.Material
	Camera   *camera.Camera
	Light    *lighting.Spot
	Ambient  float64

	Width       int
	Height      int
	Supersample int
	Transparent bool
}

const (
	nearPlane = 0.01
	farPlane  = 100.0

	// Scales the spot irradiance into display range.
	lightExposure = 0.35
)

// Render rasterizes the mesh from the camera's pose into an NRGBA image at
// Width x Height, rendering at Supersample resolution and downsampling.
func Render(p Params) *image.NRGBA {
	ss := p.Supersample
	if ss < 1 {
		ss = 1
	}
	w := p.Width * ss
	h := p.Height * ss

	fb := NewFrameBuffer(w, h)
	if !p.Transparent {
		fb.Fill(255, 255, 255, 255)
	}

	aspect := float64(p.Width) / float64(p.Height)
	view := p.Camera.ViewMatrix()
	proj := math.Perspective(p.Camera.AngleY(aspect), aspect, nearPlane, farPlane)
	vp := proj.Mul(view)

	var tex *image.NRGBA
	if p.Material != nil {
		tex = p.Material.Texture
	}

	halfW := float64(w) / 2
	halfH := float64(h) / 2

	for _, tri := range p.Mesh.Triangles {
		var sv [3]screenVert
		behind := false
		for i, vert := range [3]model.Vertex{tri.V1, tri.V2, tri.V3} {
			clip, cw := vp.TransformPointW(vert.Position)
			if cw <= nearPlane {
				behind = true
				break
			}
			invW := 1.0 / cw
			// NDC to screen; OBJ texture origin is bottom-left, so V flips.
			sv[i] = screenVert{
				x:      (clip.X*invW + 1) * halfW,
				y:      (1 - clip.Y*invW) * halfH,
				invW:   invW,
				uOverW: vert.UV.X * invW,
				vOverW: (1 - vert.UV.Y) * invW,
			}
		}
		if behind {
			continue
		}

		rasterizeTriangle(fb, sv[0], sv[1], sv[2], tex, shadeFace(tri, p))
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, fb.Color)

	if ss > 1 {
		img = Downsample(img, p.Width, p.Height)
	}
	return img
}

// shadeFace computes the flat shade factor for a triangle: world ambient
// plus double-sided lambert lit by the spot at the face centroid.
func shadeFace(tri *model.Triangle, p Params) float64 {
	shade := p.Ambient
	if p.Light != nil {
		centroid := tri.V1.Position.Add(tri.V2.Position).Add(tri.V3.Position).Scale(1.0 / 3.0)
		n := tri.Normal()
		toLight := p.Light.Position.Sub(centroid).Normalize()
		lambert := n.Dot(toLight)
		if lambert < 0 {
			lambert = -lambert
		}
		shade += lambert * p.Light.Irradiance(centroid) * lightExposure
	}
	return shade
}
