// Package plot renders a self-contained HTML diagnostic of a run: the mesh
// vertices as a height-colored point cloud with the camera and light
// positions overlaid. Opening the file in a browser is the quickest way to
// confirm the trajectory actually surrounds the subject.
package plot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fogleman/simplify"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/naga-k/multiview/internal/engine/model"
	"github.com/naga-k/multiview/pkg/math"
)

// MaxPlotTriangles caps the number of mesh triangles fed to the scatter
// plot. Dense scans produce multi-megabyte HTML files that stall the
// browser, so anything above the cap is decimated first.
const MaxPlotTriangles = 5000

// SampleMesh returns vertex positions for plotting, decimating the mesh
// with quadric edge collapse when it exceeds maxTriangles.
func SampleMesh(m *model.Mesh, maxTriangles int) []math.Vec3 {
	if len(m.Triangles) <= maxTriangles {
		return m.Vertices()
	}

	tris := make([]*simplify.Triangle, len(m.Triangles))
	for i, t := range m.Triangles {
		tris[i] = simplify.NewTriangle(
			toSimplify(t.V1.Position),
			toSimplify(t.V2.Position),
			toSimplify(t.V3.Position),
		)
	}

	factor := float64(maxTriangles) / float64(len(m.Triangles))
	decimated := simplify.NewMesh(tris).Simplify(factor)

	out := make([]math.Vec3, 0, len(decimated.Triangles)*3)
	for _, t := range decimated.Triangles {
		out = append(out,
			fromSimplify(t.V1),
			fromSimplify(t.V2),
			fromSimplify(t.V3),
		)
	}
	return out
}

// WriteHTML writes the scatter diagnostic. Vertices are colored by height,
// cameras drawn in red and lights in yellow.
func WriteHTML(path string, vertices, cameras, lights []math.Vec3) error {
	minZ, maxZ := heightRange(vertices)

	scatter := charts.NewScatter3D()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "camera trajectory",
			Width:     "1200px",
			Height:    "800px",
		}),
		charts.WithTitleOpts(opts.Title{Title: "Mesh and camera positions"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: true,
			Min:        float32(minZ),
			Max:        float32(maxZ),
			InRange: &opts.VisualMapInRange{
				Color: []string{"#50a3ba", "#eac736", "#d94e5d"},
			},
		}),
	)

	scatter.AddSeries("vertices", toChartData(vertices))
	scatter.AddSeries("cameras", toChartData(cameras),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "red"}))
	scatter.AddSeries("lights", toChartData(lights),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "yellow"}))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("plot: create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("plot: create %s: %w", path, err)
	}
	defer f.Close()

	if err := scatter.Render(f); err != nil {
		return fmt.Errorf("plot: render %s: %w", path, err)
	}
	return nil
}

func toChartData(points []math.Vec3) []opts.Chart3DData {
	data := make([]opts.Chart3DData, len(points))
	for i, p := range points {
		data[i] = opts.Chart3DData{Value: []interface{}{p.X, p.Y, p.Z}}
	}
	return data
}

func heightRange(points []math.Vec3) (minZ, maxZ float64) {
	if len(points) == 0 {
		return -1, 1
	}
	minZ, maxZ = points[0].Z, points[0].Z
	for _, p := range points[1:] {
		if p.Z < minZ {
			minZ = p.Z
		}
		if p.Z > maxZ {
			maxZ = p.Z
		}
	}
	if minZ == maxZ {
		maxZ = minZ + 1
	}
	return minZ, maxZ
}

func toSimplify(v math.Vec3) simplify.Vector {
	return simplify.Vector{X: v.X, Y: v.Y, Z: v.Z}
}

func fromSimplify(v simplify.Vector) math.Vec3 {
	return math.Vec3{X: v.X, Y: v.Y, Z: v.Z}
}
