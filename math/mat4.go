package math

import "math"

// Mat4 is a row-major 4x4 matrix. M.MulVec4(v) treats v as a column vector:
// row i of M dotted with v.
type Mat4 [4][4]float32

func Mat4Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

func Mat4Zero() Mat4 {
	return Mat4{}
}

// Mul computes the matrix product m*other.
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[i][k] * other[k][j]
			}
			result[i][j] = sum
		}
	}
	return result
}

// MulVec4 applies the matrix to v treated as a column vector: row i of m
// dotted with v, for all four components including W.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return v.MulMat(m)
}

// MulVec4Project multiplies m by v and, if the resulting w is non-zero,
// divides x, y, z by w. The original w is retained (not overwritten by 1)
// so it stays available for perspective-correct attribute interpolation
// downstream in the rasterizer.
func (m Mat4) MulVec4Project(v Vec4) Vec4 {
	return m.MulVec4(v).ProjectDivide()
}

// MulPoint transforms a point (implicit w=1) and divides by the resulting
// w, returning xyz only.
func (m Mat4) MulPoint(v Vec3) Vec3 {
	return m.MulVec4(v.ToVec4(1)).ToVec3DivW()
}

// MulDirection transforms a direction (implicit w=0); no perspective divide
// is meaningful for a direction.
func (m Mat4) MulDirection(v Vec3) Vec3 {
	return m.MulVec4(v.ToVec4(0)).ToVec3()
}

func (m Mat4) Transpose() Mat4 {
	return Mat4{
		{m[0][0], m[1][0], m[2][0], m[3][0]},
		{m[0][1], m[1][1], m[2][1], m[3][1]},
		{m[0][2], m[1][2], m[2][2], m[3][2]},
		{m[0][3], m[1][3], m[2][3], m[3][3]},
	}
}

func Mat4Translation(t Vec3) Mat4 {
	m := Mat4Identity()
	m[0][3] = t.X
	m[1][3] = t.Y
	m[2][3] = t.Z
	return m
}

func Mat4Scale(s Vec3) Mat4 {
	m := Mat4Identity()
	m[0][0] = s.X
	m[1][1] = s.Y
	m[2][2] = s.Z
	return m
}

// Mat4RotationX is a right-handed rotation about the X axis.
func Mat4RotationX(angle float32) Mat4 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return Mat4{
		{1, 0, 0, 0},
		{0, c, -s, 0},
		{0, s, c, 0},
		{0, 0, 0, 1},
	}
}

// Mat4RotationY is a right-handed rotation about the Y axis.
func Mat4RotationY(angle float32) Mat4 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return Mat4{
		{c, 0, s, 0},
		{0, 1, 0, 0},
		{-s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

// Mat4RotationZ is a right-handed rotation about the Z axis.
func Mat4RotationZ(angle float32) Mat4 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return Mat4{
		{c, -s, 0, 0},
		{s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mat4RotationEuler builds the composite rotation the pipeline applies to a
// mesh's world transform: Z, then Y, then X, applied left-to-right to a
// point (M = Rx * Ry * Rz).
func Mat4RotationEuler(euler Vec3) Mat4 {
	return Mat4RotationX(euler.X).Mul(Mat4RotationY(euler.Y)).Mul(Mat4RotationZ(euler.Z))
}

// Mat4Perspective builds a projection matrix such that applying it to a
// view-space point and dividing by w yields NDC with x,y in [-1,1] inside
// the frustum and z mapped to [0,1].
func Mat4Perspective(fovy, aspect, znear, zfar float32) Mat4 {
	var m Mat4
	invTan := 1.0 / float32(math.Tan(float64(fovy)/2))
	m[0][0] = aspect * invTan
	m[1][1] = invTan
	m[2][2] = zfar / (zfar - znear)
	m[2][3] = -(zfar * znear) / (zfar - znear)
	m[3][2] = 1
	return m
}

// Mat4LookAt builds a view matrix from an orthonormal basis (right, up,
// forward) and the inverse translation of eye.
func Mat4LookAt(eye, target, up Vec3) Mat4 {
	forward := target.Sub(eye).Normalize()
	right := forward.Cross(up).Normalize()
	newUp := right.Cross(forward)

	return Mat4{
		{right.X, right.Y, right.Z, -right.Dot(eye)},
		{newUp.X, newUp.Y, newUp.Z, -newUp.Dot(eye)},
		{forward.X, forward.Y, forward.Z, -forward.Dot(eye)},
		{0, 0, 0, 1},
	}
}

// Mat4World builds the per-mesh model matrix: scale first, then Z, Y, X
// rotation, then translation, applied left-to-right to a point.
func Mat4World(scale, rotation, translation Vec3) Mat4 {
	return Mat4Translation(translation).Mul(Mat4RotationEuler(rotation)).Mul(Mat4Scale(scale))
}
