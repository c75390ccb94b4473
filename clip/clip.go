// Package clip implements frustum clipping: the six view-space planes, a
// fixed-capacity polygon, Sutherland-Hodgman clipping against one plane,
// and fan triangulation of the result.
package clip

import (
	rmath "math"

	"softraster/math"
)

// polyCapacity bounds a Polygon's vertex count. A triangle clipped
// against six planes can gain at most one vertex per plane, so 3+6=9 is
// the true bound; 10 leaves headroom for the loop's temporary append.
const polyCapacity = 10

// Plane is a point on the plane and its inward-pointing unit normal
// (positive signed distance means "inside").
type Plane struct {
	Point  math.Vec3
	Normal math.Vec3
}

// DistanceTo returns the signed distance from v to the plane along its
// normal; positive means inside.
func (p Plane) DistanceTo(v math.Vec3) float32 {
	return v.Sub(p.Point).Dot(p.Normal)
}

// Frustum holds the six view-space clipping planes, in the fixed order
// clipping must apply them: LEFT, RIGHT, TOP, BOTTOM, NEAR, FAR.
type Frustum struct {
	Left, Right, Top, Bottom, Near, Far Plane
}

// Planes returns the six planes in clip order.
func (f Frustum) Planes() [6]Plane {
	return [6]Plane{f.Left, f.Right, f.Top, f.Bottom, f.Near, f.Far}
}

// NewFrustum builds the six planes from a vertical field of view, the
// width/height used to derive the horizontal field of view, and the near
// and far clip distances.
func NewFrustum(fovy, width, height, znear, zfar float32) Frustum {
	fovx := 2 * float32(rmath.Atan(float64(rmath.Tan(float64(fovy/2))*float64(width/height))))
	cosHalfX := float32(rmath.Cos(float64(fovx / 2)))
	sinHalfX := float32(rmath.Sin(float64(fovx / 2)))
	cosHalfY := float32(rmath.Cos(float64(fovy / 2)))
	sinHalfY := float32(rmath.Sin(float64(fovy / 2)))

	origin := math.Vec3{}
	return Frustum{
		Left:   Plane{Point: origin, Normal: math.NewVec3(cosHalfX, 0, sinHalfX)},
		Right:  Plane{Point: origin, Normal: math.NewVec3(-cosHalfX, 0, sinHalfX)},
		Top:    Plane{Point: origin, Normal: math.NewVec3(0, -cosHalfY, sinHalfY)},
		Bottom: Plane{Point: origin, Normal: math.NewVec3(0, cosHalfY, sinHalfY)},
		Near:   Plane{Point: math.NewVec3(0, 0, znear), Normal: math.NewVec3(0, 0, 1)},
		Far:    Plane{Point: math.NewVec3(0, 0, zfar), Normal: math.NewVec3(0, 0, -1)},
	}
}

// Polygon is a fixed-capacity sequence of vertices and matching UVs,
// produced per-face during clipping and consumed immediately by
// triangulation; it never outlives one face's processing.
type Polygon struct {
	Vertices [polyCapacity]math.Vec3
	UVs      [polyCapacity]math.Tex2
	Count    int
}

// NewTrianglePolygon seeds a Polygon from a triangle's three vertices and
// UVs.
func NewTrianglePolygon(a, b, c math.Vec3, auv, buv, cuv math.Tex2) Polygon {
	var p Polygon
	p.Vertices[0], p.Vertices[1], p.Vertices[2] = a, b, c
	p.UVs[0], p.UVs[1], p.UVs[2] = auv, buv, cuv
	p.Count = 3
	return p
}

// ClipPolygon runs Sutherland-Hodgman clipping of poly against each plane
// in turn, returning the (possibly empty, possibly degenerate) result.
func ClipPolygon(poly Polygon, planes [6]Plane) Polygon {
	for _, plane := range planes {
		poly = clipAgainstPlane(poly, plane)
		if poly.Count == 0 {
			break
		}
	}
	return poly
}

func clipAgainstPlane(poly Polygon, plane Plane) Polygon {
	if poly.Count == 0 {
		return poly
	}

	var out Polygon
	prevIdx := poly.Count - 1
	prevVert, prevUV := poly.Vertices[prevIdx], poly.UVs[prevIdx]
	prevDist := plane.DistanceTo(prevVert)

	for i := 0; i < poly.Count; i++ {
		curVert, curUV := poly.Vertices[i], poly.UVs[i]
		curDist := plane.DistanceTo(curVert)

		if prevDist*curDist < 0 {
			t := prevDist / (prevDist - curDist)
			interVert := lerpVec3(prevVert, curVert, t)
			interUV := prevUV.Lerp(curUV, t)
			out = appendVertex(out, interVert, interUV)
		}
		if curDist > 0 {
			out = appendVertex(out, curVert, curUV)
		}

		prevVert, prevUV, prevDist = curVert, curUV, curDist
	}
	return out
}

func appendVertex(p Polygon, v math.Vec3, uv math.Tex2) Polygon {
	if p.Count >= polyCapacity {
		return p
	}
	p.Vertices[p.Count] = v
	p.UVs[p.Count] = uv
	p.Count++
	return p
}

func lerpVec3(a, b math.Vec3, t float32) math.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// Triangle is one fan-triangulated output of a clipped polygon: three
// vertices and matching UVs, still in view space.
type Triangle struct {
	A, B, C       math.Vec3
	AUV, BUV, CUV math.Tex2
}

// TrianglesFromPolygon fan-triangulates poly, sharing vertex 0 across all
// output triangles. A polygon of fewer than 3 vertices yields none.
func TrianglesFromPolygon(poly Polygon) []Triangle {
	if poly.Count < 3 {
		return nil
	}
	tris := make([]Triangle, 0, poly.Count-2)
	for i := 1; i < poly.Count-1; i++ {
		tris = append(tris, Triangle{
			A: poly.Vertices[0], B: poly.Vertices[i], C: poly.Vertices[i+1],
			AUV: poly.UVs[0], BUV: poly.UVs[i], CUV: poly.UVs[i+1],
		})
	}
	return tris
}
