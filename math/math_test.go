package math

import (
	"math"
	"testing"
)

func TestVec3Add(t *testing.T) {
	got := NewVec3(1, 2, 3).Add(NewVec3(4, 5, 6))
	want := NewVec3(5, 7, 9)
	if got != want {
		t.Errorf("Add: expected %v, got %v", want, got)
	}
}

func TestVec3Sub(t *testing.T) {
	got := NewVec3(4, 5, 6).Sub(NewVec3(1, 2, 3))
	want := NewVec3(3, 3, 3)
	if got != want {
		t.Errorf("Sub: expected %v, got %v", want, got)
	}
}

func TestVec3ScalarMul(t *testing.T) {
	got := NewVec3(1, 2, 3).Mul(2)
	want := NewVec3(2, 4, 6)
	if got != want {
		t.Errorf("Mul: expected %v, got %v", want, got)
	}
}

func TestVec3DotProduct(t *testing.T) {
	got := NewVec3(1, 2, 3).Dot(NewVec3(4, 5, 6))
	want := float32(1*4 + 2*5 + 3*6)
	if got != want {
		t.Errorf("Dot: expected %v, got %v", want, got)
	}
}

func TestVec3CrossProductRightHanded(t *testing.T) {
	got := Vec3Right.Cross(Vec3Up)
	if got != Vec3Front {
		t.Errorf("Cross: expected Right x Up = Front (%v), got %v", Vec3Front, got)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 0, 0)
	normalized := v.Normalize()
	expected := NewVec3(1, 0, 0)

	if normalized != expected {
		t.Errorf("Normalize: expected %v, got %v", expected, normalized)
	}

	length := normalized.Length()
	if math.Abs(float64(length-1)) > 0.0001 {
		t.Errorf("Normalize: expected length 1, got %v", length)
	}
}

func TestVec3NormalizeAllNonzero(t *testing.T) {
	vs := []Vec3{
		NewVec3(1, 2, 3), NewVec3(-5, 0.2, 9), NewVec3(0.001, 0, 0), NewVec3(7, -7, 7),
	}
	for _, v := range vs {
		n := v.Normalize()
		if math.Abs(float64(n.Length()-1)) > 1e-5 {
			t.Errorf("Normalize(%v): expected unit length, got %v", v, n.Length())
		}
	}
}

func TestMat4IdentityIsItsOwnWorldMatrix(t *testing.T) {
	// A world matrix with unit scale, no rotation, and no translation
	// degenerates to the raw identity matrix.
	world := Mat4World(NewVec3(1, 1, 1), Vec3{}, Vec3{})
	id := Mat4Identity()

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if world[i][j] != id[i][j] {
				t.Errorf("World(1,0,0): expected [%d][%d]=%v, got %v", i, j, id[i][j], world[i][j])
			}
		}
	}
}

func TestMat4WorldWithIdentityScaleRotationIsTranslation(t *testing.T) {
	translation := NewVec3(2, -3, 7)
	world := Mat4World(NewVec3(1, 1, 1), Vec3{}, translation)
	direct := Mat4Translation(translation)

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math.Abs(float64(world[i][j]-direct[i][j])) > 1e-4 {
				t.Errorf("World vs Translation: expected [%d][%d]=%v, got %v", i, j, direct[i][j], world[i][j])
			}
		}
	}
}

func TestMat4MultiplicationIdentity(t *testing.T) {
	a := Mat4World(NewVec3(2, 3, 4), NewVec3(0.3, 0.1, 0.2), NewVec3(5, -1, 2))
	id := Mat4Identity()

	left := a.Mul(id)
	right := id.Mul(a)

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math.Abs(float64(left[i][j]-a[i][j])) > 1e-4 {
				t.Errorf("A*I: expected [%d][%d]=%v, got %v", i, j, a[i][j], left[i][j])
			}
			if math.Abs(float64(right[i][j]-a[i][j])) > 1e-4 {
				t.Errorf("I*A: expected [%d][%d]=%v, got %v", i, j, a[i][j], right[i][j])
			}
		}
	}
}

func TestMat4TranslationMovesOriginPoint(t *testing.T) {
	translation := NewVec3(1, 2, 3)
	m := Mat4Translation(translation)

	point := NewVec4(0, 0, 0, 1)
	result := m.MulVec4(point)

	if result.ToVec3() != translation {
		t.Errorf("Translation: expected %v, got %v", translation, result.ToVec3())
	}
}

func TestMat4Perspective(t *testing.T) {
	fov := float32(math.Pi / 4)
	aspect := float32(9.0 / 16.0)
	near := float32(0.1)
	far := float32(100.0)

	m := Mat4Perspective(fov, aspect, near, far)

	if m[0][0] == 0 {
		t.Error("Perspective: expected non-zero X scale")
	}
	if m[1][1] == 0 {
		t.Error("Perspective: expected non-zero Y scale")
	}

	// A point on the near plane center should map to z=0 after divide.
	near_pt := NewVec4(0, 0, near, 1)
	projected := m.MulVec4Project(near_pt)
	if math.Abs(float64(projected.Z)) > 1e-3 {
		t.Errorf("Perspective: expected z=0 at near plane, got %v", projected.Z)
	}

	// A point on the far plane center should map to z=1 after divide.
	far_pt := NewVec4(0, 0, far, 1)
	projectedFar := m.MulVec4Project(far_pt)
	if math.Abs(float64(projectedFar.Z-1)) > 1e-3 {
		t.Errorf("Perspective: expected z=1 at far plane, got %v", projectedFar.Z)
	}
}

func TestMat4LookAtEyeMapsToOrigin(t *testing.T) {
	eye := NewVec3(0, 0, 5)
	target := NewVec3(0, 0, 0)
	up := Vec3Up

	m := Mat4LookAt(eye, target, up)

	point := eye.ToVec4(1)
	result := m.MulVec4(point)

	tolerance := float32(0.001)
	if math.Abs(float64(result.X)) > float64(tolerance) ||
		math.Abs(float64(result.Y)) > float64(tolerance) ||
		math.Abs(float64(result.Z)) > float64(tolerance) {
		t.Errorf("LookAt: expected eye to transform to origin, got (%v,%v,%v)", result.X, result.Y, result.Z)
	}
}

// TestMat4LookAtNegatesRightAxis pins down a property the pipeline's
// backface-culling math depends on: looking down +Z with +Y up gives a
// right basis vector of forward.Cross(up) = (0,0,1)x(0,1,0) = (-1,0,0),
// so the "identity" camera view matrix is not the identity transform on
// X — a point to the world's +X maps to the view's -X.
func TestMat4LookAtNegatesRightAxis(t *testing.T) {
	m := Mat4LookAt(Vec3{}, NewVec3(0, 0, 1), Vec3Up)

	point := NewVec4(1, 0, 5, 1)
	result := m.MulVec4(point)

	if result.X >= 0 {
		t.Errorf("LookAt: expected +X world point to land on the -X side of view space, got X=%v", result.X)
	}
}

func BenchmarkVec3Add(b *testing.B) {
	vecs := make([]Vec3, 8)
	for i := range vecs {
		vecs[i] = NewVec3(float32(i), float32(i*2), float32(i*3))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = vecs[i%len(vecs)].Add(vecs[(i+1)%len(vecs)])
	}
}

func BenchmarkMat4Mul(b *testing.B) {
	view := Mat4LookAt(NewVec3(0, 0, -10), Vec3{}, Vec3Up)
	world := Mat4World(NewVec3(1, 1, 1), NewVec3(0.3, 0.5, 0.1), NewVec3(2, 0, 5))

	for i := 0; i < b.N; i++ {
		_ = view.Mul(world)
	}
}
