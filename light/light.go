// Package light implements the single flat directional light the
// pipeline shades faces with.
package light

import (
	"softraster/buffer"
	"softraster/math"
)

// Light is a single directional light with a unit direction.
type Light struct {
	direction math.Vec3
}

// New returns a Light pointed along dir, normalized.
func New(dir math.Vec3) Light {
	return Light{direction: dir.Normalize()}
}

func (l Light) Direction() math.Vec3 {
	return l.direction
}

func (l *Light) SetDirection(dir math.Vec3) {
	l.direction = dir.Normalize()
}

// Intensity returns max(0, -dot(normal, light.direction)) for a face with
// the given (unit) normal.
func (l Light) Intensity(normal math.Vec3) float32 {
	i := -normal.Dot(l.direction)
	if i < 0 {
		return 0
	}
	return i
}

// ApplyIntensity scales the R, G, B channels of c by intensity, preserving
// A. Intensity outside [0,1] is clamped.
func ApplyIntensity(c buffer.Color, intensity float32) buffer.Color {
	return c.Scale(intensity)
}
