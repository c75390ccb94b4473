// Package mesh owns the fixed-capacity collection of loaded meshes: each a
// vertex array, a face array, a bound texture, and a per-mesh transform
// triple. It is the consumer of the asset package's OBJ/PNG/glTF loaders.
package mesh

import (
	"fmt"
	"os"

	"softraster/asset"
	"softraster/buffer"
	"softraster/math"
)

// storeCapacity bounds the number of meshes a Store will hold; attempts to
// load beyond it are silently dropped (a CapacityExceeded condition).
const storeCapacity = 10

// MaxTrianglesPerMesh caps the number of screen-space triangles a single
// mesh may submit in one frame; excess triangles are silently dropped by
// the pipeline driver, not by this package.
const MaxTrianglesPerMesh = 10000

// Face is three 0-based vertex indices into the owning Mesh's vertex
// array, their matching UVs, and the flat per-face color.
type Face struct {
	A, B, C       int
	AUV, BUV, CUV math.Tex2
	Color         buffer.Color
}

// Mesh owns a vertex array, a face array, an optional bound texture, and
// the scale/rotation/translation triple the pipeline composes into a
// world matrix.
type Mesh struct {
	Vertices []math.Vec3
	Faces    []Face

	Texture *asset.Texture

	Scale       math.Vec3
	Rotation    math.Vec3
	Translation math.Vec3
}

// defaultFaceColor is the flat color assigned to faces from OBJ/glTF
// sources, which carry no per-face color of their own.
var defaultFaceColor = buffer.White

// AssetLoadFailure wraps an error from the asset package, naming the
// path that failed to load. LoadMesh/LoadMeshGLTF log these and skip the
// mesh rather than returning them, so the store tolerates partial load
// failures; callers that do see one (e.g. from a custom loader built on
// top of asset directly) can errors.As against it.
type AssetLoadFailure struct {
	Path string
	Err  error
}

func (e *AssetLoadFailure) Error() string {
	return fmt.Sprintf("asset load failure (%s): %v", e.Path, e.Err)
}

func (e *AssetLoadFailure) Unwrap() error { return e.Err }

func fromOBJ(data *asset.OBJData) *Mesh {
	faces := make([]Face, len(data.Faces))
	for i, f := range data.Faces {
		faces[i] = Face{
			A: f.A, B: f.B, C: f.C,
			AUV: f.AUV, BUV: f.BUV, CUV: f.CUV,
			Color: defaultFaceColor,
		}
	}
	return &Mesh{
		Vertices: data.Positions,
		Faces:    faces,
		Scale:    math.NewVec3(1, 1, 1),
	}
}

// Store is a fixed-capacity collection of loaded meshes.
type Store struct {
	meshes []*Mesh
}

// NewStore returns an empty mesh store.
func NewStore() *Store {
	return &Store{meshes: make([]*Mesh, 0, storeCapacity)}
}

// Inject appends an already-constructed mesh directly, bypassing asset
// loading; used by procedural mesh sources and tests. Respects the same
// capacity cap as LoadMesh.
func (s *Store) Inject(m *Mesh) {
	if len(s.meshes) >= storeCapacity {
		return
	}
	s.meshes = append(s.meshes, m)
}

// LoadMesh parses an OBJ file and, if pngPath is non-empty, a PNG
// texture, and appends the resulting mesh with the given transform. A
// missing or malformed OBJ/PNG is reported to stderr and the mesh is
// skipped (AssetLoadFailure); the store itself never returns an error
// for this reason, since the pipeline must tolerate partial load
// failures and keep running with whatever meshes did load.
func (s *Store) LoadMesh(objPath, pngPath string, scale, translation, rotation math.Vec3) {
	if len(s.meshes) >= storeCapacity {
		fmt.Fprintf(os.Stderr, "mesh store at capacity (%d); dropping %q\n", storeCapacity, objPath)
		return
	}

	data, err := asset.LoadOBJ(objPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, &AssetLoadFailure{Path: objPath, Err: err})
		return
	}

	m := fromOBJ(data)
	m.Scale = scale
	m.Translation = translation
	m.Rotation = rotation

	if pngPath != "" {
		tex, err := asset.LoadTexturePNG(pngPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, &AssetLoadFailure{Path: pngPath, Err: err})
			return
		} else {
			m.Texture = tex
		}
	}

	s.meshes = append(s.meshes, m)
}

// LoadMeshGLTF parses a .gltf/.glb document via the supplemental glTF
// loader and appends the resulting mesh with the given transform,
// following the same AssetLoadFailure tolerance as LoadMesh.
func (s *Store) LoadMeshGLTF(path string, scale, translation, rotation math.Vec3) {
	if len(s.meshes) >= storeCapacity {
		fmt.Fprintf(os.Stderr, "mesh store at capacity (%d); dropping %q\n", storeCapacity, path)
		return
	}

	data, err := asset.LoadGLTF(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, &AssetLoadFailure{Path: path, Err: err})
		return
	}

	faces := make([]Face, len(data.Faces))
	for i, f := range data.Faces {
		faces[i] = Face{
			A: f.A, B: f.B, C: f.C,
			AUV: f.AUV, BUV: f.BUV, CUV: f.CUV,
			Color: defaultFaceColor,
		}
	}

	s.meshes = append(s.meshes, &Mesh{
		Vertices:    data.Positions,
		Faces:       faces,
		Texture:     data.Texture,
		Scale:       scale,
		Rotation:    rotation,
		Translation: translation,
	})
}

// NumMeshes returns the number of currently loaded meshes.
func (s *Store) NumMeshes() int { return len(s.meshes) }

// GetMesh returns the mesh at index i, or nil if out of range.
func (s *Store) GetMesh(i int) *Mesh {
	if i < 0 || i >= len(s.meshes) {
		return nil
	}
	return s.meshes[i]
}

// FreeMeshes releases all owned meshes, returning the store to empty.
func (s *Store) FreeMeshes() {
	s.meshes = s.meshes[:0]
}
