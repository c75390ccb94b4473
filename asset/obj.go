package asset

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"softraster/math"
)

// OBJFace mirrors the wire-level mesh.Face shape but stays in this package
// so the OBJ parser has no dependency on the mesh package (mesh depends on
// asset, not the other way around).
type OBJFace struct {
	A, B, C       int
	AUV, BUV, CUV math.Tex2
}

// OBJData is the parsed result of an OBJ file: positions and faces. OBJ
// has no notion of a flat face color; the caller supplies it.
type OBJData struct {
	Positions []math.Vec3
	Faces     []OBJFace
}

// LoadOBJ parses a Wavefront .obj file, recognising only `v`, `vt`, and
// `f` directives; `vn`, comments, and all other directives are ignored.
// `f` supports the four standard vertex/uv/normal index forms. Vertex and
// UV indices are 1-based in the file and stored 0-based.
func LoadOBJ(path string) (*OBJData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj %q: %w", path, err)
	}
	defer f.Close()

	var positions []math.Vec3
	var uvs []math.Tex2
	var faces []OBJFace

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "v":
			if len(parts) < 4 {
				continue
			}
			x, _ := strconv.ParseFloat(parts[1], 32)
			y, _ := strconv.ParseFloat(parts[2], 32)
			z, _ := strconv.ParseFloat(parts[3], 32)
			positions = append(positions, math.NewVec3(float32(x), float32(y), float32(z)))

		case "vt":
			if len(parts) < 3 {
				continue
			}
			u, _ := strconv.ParseFloat(parts[1], 32)
			v, _ := strconv.ParseFloat(parts[2], 32)
			uvs = append(uvs, math.NewTex2(float32(u), float32(v)))

		case "f":
			if len(parts) < 4 {
				continue
			}
			idx := make([]int, 0, len(parts)-1)
			uv := make([]math.Tex2, 0, len(parts)-1)
			for _, spec := range parts[1:] {
				vi, uvi := parseFaceVertex(spec)
				idx = append(idx, resolveIndex(vi, len(positions)))
				if uvi != 0 {
					uv = append(uv, uvs[resolveIndex(uvi, len(uvs))])
				} else {
					uv = append(uv, math.Tex2{})
				}
			}
			// Fan-triangulate n-gon faces, matching the triangulation
			// convention the clipper itself uses for clipped polygons.
			for i := 2; i < len(idx); i++ {
				faces = append(faces, OBJFace{
					A: idx[0], B: idx[i-1], C: idx[i],
					AUV: uv[0], BUV: uv[i-1], CUV: uv[i],
				})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj %q: %w", path, err)
	}
	if len(positions) == 0 || len(faces) == 0 {
		return nil, fmt.Errorf("no mesh data found in obj %q", path)
	}

	return &OBJData{Positions: positions, Faces: faces}, nil
}

// parseFaceVertex parses one face-vertex token ("v", "v/vt", "v/vt/vn", or
// "v//vn") and returns the raw 1-based vertex and UV indices (0 when
// absent). Normal indices are read implicitly by the "//" split but never
// retained, per the OBJ contract.
func parseFaceVertex(spec string) (vertex, uv int) {
	parts := strings.Split(spec, "/")
	if len(parts) >= 1 && parts[0] != "" {
		vertex, _ = strconv.Atoi(parts[0])
	}
	if len(parts) >= 2 && parts[1] != "" {
		uv, _ = strconv.Atoi(parts[1])
	}
	return vertex, uv
}

// resolveIndex converts a 1-based OBJ index (negative indices count back
// from the end of the array) to a 0-based index.
func resolveIndex(i, count int) int {
	if i < 0 {
		return count + i
	}
	return i - 1
}
