package pipeline

import (
	"testing"

	"softraster/math"
)

func TestBarycentricWeightsSumToOneInsideTriangle(t *testing.T) {
	a := math.NewVec2(0, 0)
	b := math.NewVec2(10, 0)
	c := math.NewVec2(0, 10)
	p := math.NewVec2(2, 2)

	alpha, beta, gamma := barycentricWeights(p, a, b, c)
	if sum := alpha + beta + gamma; sum < 0.999 || sum > 1.001 {
		t.Errorf("expected weights to sum to 1, got %v", sum)
	}
	if alpha < 0 || beta < 0 || gamma < 0 {
		t.Errorf("expected all weights non-negative for an interior point, got %v %v %v", alpha, beta, gamma)
	}
}

func TestBarycentricWeightsOutsideTriangleHasNegativeWeight(t *testing.T) {
	a := math.NewVec2(0, 0)
	b := math.NewVec2(10, 0)
	c := math.NewVec2(0, 10)
	p := math.NewVec2(20, 20)

	alpha, beta, gamma := barycentricWeights(p, a, b, c)
	if alpha >= 0 && beta >= 0 && gamma >= 0 {
		t.Errorf("expected at least one negative weight outside the triangle, got %v %v %v", alpha, beta, gamma)
	}
}

func TestBarycentricWeightsAtVertexIsUnit(t *testing.T) {
	a := math.NewVec2(0, 0)
	b := math.NewVec2(10, 0)
	c := math.NewVec2(0, 10)

	alpha, beta, gamma := barycentricWeights(a, a, b, c)
	if alpha < 0.999 || beta > 0.001 || gamma > 0.001 {
		t.Errorf("expected weights (1,0,0) at vertex a, got %v %v %v", alpha, beta, gamma)
	}
}

func TestScanTriangleCoversExpectedPixelCount(t *testing.T) {
	a := math.NewVec2(0, 0)
	b := math.NewVec2(10, 0)
	c := math.NewVec2(0, 10)

	count := 0
	scanTriangle(a, b, c, func(x, y int) { count++ })
	if count == 0 {
		t.Errorf("expected scanTriangle to visit a non-zero number of pixels")
	}
}

func TestScanTriangleDegenerateIsEmpty(t *testing.T) {
	a := math.NewVec2(5, 5)
	b := math.NewVec2(5, 5)
	c := math.NewVec2(5, 5)

	count := 0
	scanTriangle(a, b, c, func(x, y int) { count++ })
	if count != 0 {
		t.Errorf("expected a zero-area triangle to rasterize no pixels, got %d", count)
	}
}

func TestRenderModeBitset(t *testing.T) {
	mode := ModeSolid | ModeWire
	if !mode.Has(ModeSolid) || !mode.Has(ModeWire) {
		t.Errorf("expected mode to have both Solid and Wire set")
	}
	if mode.Has(ModeTexture) || mode.Has(ModeDot) {
		t.Errorf("expected mode not to have Texture or Dot set")
	}
}
