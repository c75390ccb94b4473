package math

import "math"

// Vec2 is a plain 2-component float vector, used for screen-space pixel
// coordinates.
type Vec2 struct {
	X, Y float32
}

func NewVec2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

func (v Vec2) Mul(scalar float32) Vec2 {
	return Vec2{X: v.X * scalar, Y: v.Y * scalar}
}

func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the 2D cross product: the scalar z-component of the 3D
// cross product of the two vectors extended with z=0.
func (v Vec2) Cross(other Vec2) float32 {
	return v.X*other.Y - v.Y*other.X
}

func (v Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	if length > 0 {
		return v.Mul(1.0 / length)
	}
	return v
}

func (v Vec2) Lerp(other Vec2, t float32) Vec2 {
	return v.Add(other.Sub(v).Mul(t))
}

// Tex2 is a texture coordinate, nominally in [0,1]. Out-of-range values are
// handled by the rasterizer via a modulo wrap of the texel index, not here.
type Tex2 struct {
	U, V float32
}

func NewTex2(u, v float32) Tex2 {
	return Tex2{U: u, V: v}
}

func (t Tex2) Lerp(other Tex2, f float32) Tex2 {
	return Tex2{
		U: t.U + (other.U-t.U)*f,
		V: t.V + (other.V-t.V)*f,
	}
}
