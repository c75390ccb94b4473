package mesh

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"softraster/math"
)

func writeTempOBJ(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "model.obj")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write temp obj: %v", err)
	}
	return path
}

const triangleOBJ = `
v -1 -1 0
v 1 -1 0
v 0 1 0
vt 0 0
vt 1 0
vt 0.5 1
f 1/1 2/2 3/3
`

func TestLoadMeshAppendsWithTransform(t *testing.T) {
	s := NewStore()
	objPath := writeTempOBJ(t, triangleOBJ)

	scale := math.NewVec3(2, 2, 2)
	translation := math.NewVec3(0, 0, 5)
	rotation := math.NewVec3(0, 0, 0)
	s.LoadMesh(objPath, "", scale, translation, rotation)

	if s.NumMeshes() != 1 {
		t.Fatalf("expected 1 mesh, got %d", s.NumMeshes())
	}
	m := s.GetMesh(0)
	if len(m.Vertices) != 3 || len(m.Faces) != 1 {
		t.Fatalf("expected 3 vertices and 1 face, got %d/%d", len(m.Vertices), len(m.Faces))
	}
	if m.Scale != scale || m.Translation != translation {
		t.Errorf("expected transform to be stored as-is, got scale=%v translation=%v", m.Scale, m.Translation)
	}
	if m.Texture != nil {
		t.Errorf("expected no texture when pngPath is empty")
	}
}

func TestLoadMeshMissingFileIsSkippedNotFatal(t *testing.T) {
	s := NewStore()
	s.LoadMesh("/nonexistent/model.obj", "", math.Vec3{}, math.Vec3{}, math.Vec3{})
	if s.NumMeshes() != 0 {
		t.Errorf("expected load failure to be skipped, got %d meshes", s.NumMeshes())
	}
}

func TestLoadMeshRespectsCapacity(t *testing.T) {
	s := NewStore()
	objPath := writeTempOBJ(t, triangleOBJ)
	for i := 0; i < storeCapacity+3; i++ {
		s.LoadMesh(objPath, "", math.Vec3{}, math.Vec3{}, math.Vec3{})
	}
	if s.NumMeshes() != storeCapacity {
		t.Errorf("expected store capped at %d, got %d", storeCapacity, s.NumMeshes())
	}
}

func TestFreeMeshesEmptiesStore(t *testing.T) {
	s := NewStore()
	objPath := writeTempOBJ(t, triangleOBJ)
	s.LoadMesh(objPath, "", math.Vec3{}, math.Vec3{}, math.Vec3{})
	s.FreeMeshes()
	if s.NumMeshes() != 0 {
		t.Errorf("expected 0 meshes after FreeMeshes, got %d", s.NumMeshes())
	}
}

func TestGetMeshOutOfRangeReturnsNil(t *testing.T) {
	s := NewStore()
	if s.GetMesh(0) != nil {
		t.Errorf("expected nil for out-of-range index on empty store")
	}
}

func TestAssetLoadFailureUnwrapsToUnderlyingError(t *testing.T) {
	underlying := os.ErrNotExist
	wrapped := &AssetLoadFailure{Path: "missing.obj", Err: underlying}

	var failure *AssetLoadFailure
	if !errors.As(error(wrapped), &failure) {
		t.Fatalf("expected errors.As to match *AssetLoadFailure")
	}
	if !errors.Is(wrapped, underlying) {
		t.Errorf("expected errors.Is to reach the wrapped underlying error")
	}
}
