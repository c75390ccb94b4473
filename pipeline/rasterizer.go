package pipeline

import (
	rmath "math"

	"softraster/buffer"
	"softraster/math"
)

// barycentricWeights returns the weights (alpha, beta, gamma) of point p
// within triangle (a,b,c); all three sum to 1 and are each non-negative
// iff p lies inside the triangle.
func barycentricWeights(p, a, b, c math.Vec2) (alpha, beta, gamma float32) {
	ac := c.Sub(a)
	ab := b.Sub(a)
	ap := p.Sub(a)
	pc := c.Sub(p)
	pb := b.Sub(p)

	area := ac.Cross(ab)
	if area == 0 {
		return 0, 0, 0
	}

	alpha = pc.Cross(pb) / area
	beta = ac.Cross(ap) / area
	gamma = 1 - alpha - beta
	return alpha, beta, gamma
}

// scanTriangle walks every integer pixel inside the triangle (a,b,c) in
// top-to-bottom, left-to-right order, calling emit for each. It sorts the
// vertices by y, then splits into a flat-bottom top half and a flat-top
// bottom half, matching the classic scanline decomposition; either half
// is skipped when its y-extent is zero.
func scanTriangle(a, b, c math.Vec2, emit func(x, y int)) {
	pts := [3]math.Vec2{a, b, c}
	if pts[0].Y > pts[1].Y {
		pts[0], pts[1] = pts[1], pts[0]
	}
	if pts[1].Y > pts[2].Y {
		pts[1], pts[2] = pts[2], pts[1]
	}
	if pts[0].Y > pts[1].Y {
		pts[0], pts[1] = pts[1], pts[0]
	}
	p0, p1, p2 := pts[0], pts[1], pts[2]

	if p1.Y != p0.Y {
		invSlope1 := (p1.X - p0.X) / (p1.Y - p0.Y)
		invSlope2 := (p2.X - p0.X) / (p2.Y - p0.Y)
		scanHalf(p0.Y, p1.Y, p0.X, invSlope1, p0.X, invSlope2, emit)
	}
	if p2.Y != p1.Y {
		invSlope3 := (p2.X - p1.X) / (p2.Y - p1.Y)
		invSlope4 := (p2.X - p0.X) / (p2.Y - p0.Y)
		scanHalf(p1.Y, p2.Y, p1.X, invSlope3, p0.X+(p1.Y-p0.Y)*invSlope4, invSlope4, emit)
	}
}

func scanHalf(yStart, yEnd, xStartBase, slopeStart, xEndBase, slopeEnd float32, emit func(x, y int)) {
	y0 := int(rmath.Ceil(float64(yStart)))
	y1 := int(rmath.Ceil(float64(yEnd)))
	for y := y0; y < y1; y++ {
		dy := float32(y) - yStart
		xStart := xStartBase + dy*slopeStart
		xEnd := xEndBase + dy*slopeEnd
		if xEnd < xStart {
			xStart, xEnd = xEnd, xStart
		}
		x0 := int(rmath.Ceil(float64(xStart)))
		x1 := int(rmath.Ceil(float64(xEnd)))
		for x := x0; x < x1; x++ {
			emit(x, y)
		}
	}
}

// depthTest computes the stored depth for a pixel with interpolated
// inverse-w invW (= alpha/Aw + beta/Bw + gamma/Cw) and writes through to
// cb/db only if it is strictly nearer than what is already buffered.
func depthTest(cb *buffer.ColorBuffer, db *buffer.DepthBuffer, x, y int, invW float32, color buffer.Color) {
	depth := 1 - invW
	if depth < db.At(x, y) {
		cb.Plot(x, y, color)
		db.Update(x, y, depth)
	}
}

// DrawFilledTriangle scan-converts tri with its flat Color, depth-tested
// per pixel.
func DrawFilledTriangle(cb *buffer.ColorBuffer, db *buffer.DepthBuffer, tri ScreenTriangle) {
	a, b, c := tri.A.xy(), tri.B.xy(), tri.C.xy()
	scanTriangle(a, b, c, func(x, y int) {
		p := math.NewVec2(float32(x)+0.5, float32(y)+0.5)
		alpha, beta, gamma := barycentricWeights(p, a, b, c)
		if alpha < 0 || beta < 0 || gamma < 0 {
			return
		}
		invW := alpha/tri.A.W + beta/tri.B.W + gamma/tri.C.W
		depthTest(cb, db, x, y, invW, tri.Color)
	})
}

// DrawTexturedTriangle scan-converts tri sampling color from tex with
// perspective-correct UV interpolation, depth-tested per pixel. V is
// flipped once at entry (OBJ/glTF UV origin is bottom-left, image origin
// is top-left).
func DrawTexturedTriangle(cb *buffer.ColorBuffer, db *buffer.DepthBuffer, tri ScreenTriangle) {
	if tri.Texture == nil {
		DrawFilledTriangle(cb, db, tri)
		return
	}
	a, b, c := tri.A.xy(), tri.B.xy(), tri.C.xy()
	auv, buv, cuv := tri.A.UV, tri.B.UV, tri.C.UV
	auv.V, buv.V, cuv.V = 1-auv.V, 1-buv.V, 1-cuv.V

	tex := tri.Texture
	texW, texH := tex.Width, tex.Height
	total := texW * texH

	scanTriangle(a, b, c, func(x, y int) {
		p := math.NewVec2(float32(x)+0.5, float32(y)+0.5)
		alpha, beta, gamma := barycentricWeights(p, a, b, c)
		if alpha < 0 || beta < 0 || gamma < 0 {
			return
		}

		invW := alpha/tri.A.W + beta/tri.B.W + gamma/tri.C.W
		uOverW := alpha*auv.U/tri.A.W + beta*buv.U/tri.B.W + gamma*cuv.U/tri.C.W
		vOverW := alpha*auv.V/tri.A.W + beta*buv.V/tri.B.W + gamma*cuv.V/tri.C.W
		u := uOverW / invW
		v := vOverW / invW

		texX := int(u * float32(texW))
		texY := int(v * float32(texH))
		if texX < 0 {
			texX = -texX
		}
		if texY < 0 {
			texY = -texY
		}
		idx := 0
		if total > 0 {
			idx = (texY*texW + texX) % total
			if idx < 0 {
				idx += total
			}
		}
		px := idx * 4
		color := buffer.RGBA(tex.Pixels[px], tex.Pixels[px+1], tex.Pixels[px+2], tex.Pixels[px+3])
		depthTest(cb, db, x, y, invW, color)
	})
}

// DrawWireframeTriangle draws the triangle's three edges with DDA lines.
func DrawWireframeTriangle(cb *buffer.ColorBuffer, tri ScreenTriangle) {
	drawLineDDA(cb, tri.A.X, tri.A.Y, tri.B.X, tri.B.Y, tri.Color)
	drawLineDDA(cb, tri.B.X, tri.B.Y, tri.C.X, tri.C.Y, tri.Color)
	drawLineDDA(cb, tri.C.X, tri.C.Y, tri.A.X, tri.A.Y, tri.Color)
}

// DrawVertexPoints draws a small rectangle at each of the triangle's
// three vertices.
func DrawVertexPoints(cb *buffer.ColorBuffer, tri ScreenTriangle) {
	drawPoint(cb, tri.A.X, tri.A.Y, tri.Color)
	drawPoint(cb, tri.B.X, tri.B.Y, tri.Color)
	drawPoint(cb, tri.C.X, tri.C.Y, tri.Color)
}

const pointSize = 6

func drawPoint(cb *buffer.ColorBuffer, x, y float32, color buffer.Color) {
	cx, cy := int(x), int(y)
	half := pointSize / 2
	for dy := -half; dy < pointSize-half; dy++ {
		for dx := -half; dx < pointSize-half; dx++ {
			cb.Plot(cx+dx, cy+dy, color)
		}
	}
}

// drawLineDDA walks the longer axis of (x0,y0)-(x1,y1) one step per
// pixel, rounding float coordinates to the nearest pixel.
func drawLineDDA(cb *buffer.ColorBuffer, x0, y0, x1, y1 float32, color buffer.Color) {
	dx := x1 - x0
	dy := y1 - y0
	longest := rmath.Abs(float64(dx))
	if absDy := rmath.Abs(float64(dy)); absDy > longest {
		longest = absDy
	}
	if longest == 0 {
		cb.Plot(int(rmath.Round(float64(x0))), int(rmath.Round(float64(y0))), color)
		return
	}

	xInc := dx / float32(longest)
	yInc := dy / float32(longest)
	x, y := x0, y0
	steps := int(longest)
	for i := 0; i <= steps; i++ {
		cb.Plot(int(rmath.Round(float64(x))), int(rmath.Round(float64(y))), color)
		x += xInc
		y += yInc
	}
}
