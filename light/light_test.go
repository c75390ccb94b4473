package light

import (
	"testing"

	"softraster/buffer"
	"softraster/math"
)

func TestIntensityFacingLight(t *testing.T) {
	l := New(math.NewVec3(0, 0, 1)) // points along +Z

	// Normal facing straight back at the light -> full intensity.
	i := l.Intensity(math.NewVec3(0, 0, -1))
	if i < 0.999 || i > 1.001 {
		t.Errorf("Intensity: expected ~1.0 facing the light, got %v", i)
	}
}

func TestIntensityClampsNegative(t *testing.T) {
	l := New(math.NewVec3(0, 0, 1))

	// Normal facing away from the light would give a negative dot; clamp to 0.
	i := l.Intensity(math.NewVec3(0, 0, 1))
	if i != 0 {
		t.Errorf("Intensity: expected 0 for back-facing normal, got %v", i)
	}
}

func TestApplyIntensityScalesPreservesAlpha(t *testing.T) {
	c := buffer.RGBA(200, 100, 50, 128)
	out := ApplyIntensity(c, 0.5)

	if out.R() != 100 || out.G() != 50 || out.B() != 25 {
		t.Errorf("ApplyIntensity: expected halved RGB, got (%d,%d,%d)", out.R(), out.G(), out.B())
	}
	if out.A() != 128 {
		t.Errorf("ApplyIntensity: expected alpha preserved, got %v", out.A())
	}
}
