package pipeline

import (
	"softraster/asset"
	"softraster/buffer"
	"softraster/math"
)

// screenVertex is one vertex of a render-ready triangle: screen-space
// pixel X/Y, NDC Z, and the original pre-divide view-space W retained for
// perspective-correct interpolation.
type screenVertex struct {
	X, Y float32
	Z    float32
	W    float32
	UV   math.Tex2
}

func (v screenVertex) xy() math.Vec2 {
	return math.NewVec2(v.X, v.Y)
}

// ScreenTriangle is a fully projected, screen-space triangle ready for
// scan conversion: three vertices, a flat shaded color, and an optional
// bound texture for textured fill.
type ScreenTriangle struct {
	A, B, C screenVertex
	Color   buffer.Color
	Texture *asset.Texture
}
