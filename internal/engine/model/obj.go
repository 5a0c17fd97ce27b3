package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/naga-k/multiview/pkg/math"
)

// LoadOBJ reads a Wavefront OBJ file from disk. A missing file surfaces the
// underlying os error before any scene state is touched.
func LoadOBJ(path string) (*Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("model: open %s: %w", path, err)
	}
	defer file.Close()

	mesh, err := LoadOBJFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("model: parse %s: %w", path, err)
	}
	return mesh, nil
}

// LoadOBJFromReader parses OBJ data: v/vt/vn records and faces with any of
// the v, v/vt, v//vn, v/vt/vn reference forms. Polygons are fan-triangulated
// and negative indices resolved relative to the current element count.
// Material library references (mtllib/usemtl) are skipped; the pipeline
// assigns its own texture material.
func LoadOBJFromReader(r io.Reader) (*Mesh, error) {
	vs := make([]math.Vec3, 1, 1024)
	vts := make([]math.Vec2, 1, 1024)
	vns := make([]math.Vec3, 1, 1024)

	var triangles []*Triangle
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 2 || line[0] == '#' {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("short vertex record: %q", line)
			}
			vs = append(vs, math.Vec3{X: pf(fields[1]), Y: pf(fields[2]), Z: pf(fields[3])})
		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("short texcoord record: %q", line)
			}
			vts = append(vts, math.Vec2{X: pf(fields[1]), Y: pf(fields[2])})
		case "vn":
			if len(fields) < 4 {
				return nil, fmt.Errorf("short normal record: %q", line)
			}
			vns = append(vns, math.Vec3{X: pf(fields[1]), Y: pf(fields[2]), Z: pf(fields[3])})
		case "f":
			args := fields[1:]
			fvs := make([]int, len(args))
			fvts := make([]int, len(args))
			fvns := make([]int, len(args))

			for i, arg := range args {
				vertex := strings.Split(arg+"//", "/")
				fvs[i] = fixIndex(vertex[0], len(vs))
				fvts[i] = fixIndex(vertex[1], len(vts))
				fvns[i] = fixIndex(vertex[2], len(vns))
			}

			for i := 1; i < len(fvs)-1; i++ {
				i1, i2, i3 := 0, i, i+1
				if fvs[i1] <= 0 || fvs[i2] <= 0 || fvs[i3] <= 0 {
					return nil, fmt.Errorf("face references missing vertex: %q", line)
				}

				t := &Triangle{}
				t.V1.Position = vs[fvs[i1]]
				t.V2.Position = vs[fvs[i2]]
				t.V3.Position = vs[fvs[i3]]

				if fvns[i1] > 0 {
					t.V1.Normal = vns[fvns[i1]]
					t.V2.Normal = vns[fvns[i2]]
					t.V3.Normal = vns[fvns[i3]]
				} else {
					n := t.Normal()
					t.V1.Normal = n
					t.V2.Normal = n
					t.V3.Normal = n
				}
				if fvts[i1] > 0 {
					t.V1.UV = vts[fvts[i1]]
					t.V2.UV = vts[fvts[i2]]
					t.V3.UV = vts[fvts[i3]]
				}
				triangles = append(triangles, t)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(triangles) == 0 {
		return nil, fmt.Errorf("no faces found")
	}

	return NewMesh(triangles), nil
}

func pf(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

// fixIndex resolves 1-based and negative OBJ indices. Returns 0 for an
// absent reference.
func fixIndex(s string, count int) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	if n < 0 {
		return count + n
	}
	return n
}
