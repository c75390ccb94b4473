// Package pipeline composes the math kernel, frame buffers, mesh store,
// camera, clipper, light, and rasterizer into the per-frame rendering
// pass: the Pipeline type owns all of that state and exposes one method,
// Frame, as the per-tick entry point.
package pipeline

import (
	"fmt"

	"softraster/buffer"
	"softraster/camera"
	"softraster/clip"
	"softraster/light"
	"softraster/math"
	"softraster/mesh"
)

const (
	defaultFovY  = 3.14159265 / 3 // 60 degrees
	defaultZNear = 0.1
	defaultZFar  = 100.0
)

// InputState is the set of per-frame intents the host input handler
// reports to the pipeline; each bool/flag reflects what happened since
// the previous tick.
type InputState struct {
	Quit bool

	MoveForward, MoveBackward bool
	YawLeft, YawRight         bool
	PitchUp, PitchDown        bool
	MoveUp, MoveDown          bool

	ToggleCulling  bool
	ToggleDepthVis bool

	// SetMode, when non-zero, replaces the current render mode.
	SetMode RenderMode
}

// Pipeline owns every piece of shared per-frame state: the color and
// depth buffers, the mesh store, the camera, the frustum planes, and the
// light. Frame is its one per-tick entry point.
type Pipeline struct {
	Color *buffer.ColorBuffer
	Depth *buffer.DepthBuffer

	Meshes *mesh.Store
	Camera *camera.Camera
	Light  light.Light

	Frustum    clip.Frustum
	Perspective math.Mat4

	Width, Height int
	FovY, Aspect  float32
	ZNear, ZFar   float32

	Mode           RenderMode
	CullingEnabled bool
	DepthVisEnabled bool
}

// New builds a Pipeline sized width x height, owning store and cam, with
// a default light pointing along +Z and culling enabled.
func New(width, height int, store *mesh.Store, cam *camera.Camera) *Pipeline {
	fovy := float32(defaultFovY)
	aspect := float32(height) / float32(width)

	return &Pipeline{
		Color:  buffer.NewColorBuffer(width, height),
		Depth:  buffer.NewDepthBuffer(width, height),
		Meshes: store,
		Camera: cam,
		Light:  light.New(math.NewVec3(0, 0, 1)),

		Frustum:     clip.NewFrustum(fovy, float32(width), float32(height), defaultZNear, defaultZFar),
		Perspective: math.Mat4Perspective(fovy, aspect, defaultZNear, defaultZFar),

		Width: width, Height: height,
		FovY: fovy, Aspect: aspect,
		ZNear: defaultZNear, ZFar: defaultZFar,

		Mode:           ModeWire | ModeDot,
		CullingEnabled: true,
	}
}

// applyInput mutates the camera and render toggles per the reported
// intents, at the fixed rates named in the external key-binding table.
func (p *Pipeline) applyInput(dt float32, in InputState) {
	const moveSpeed = 5.0
	const turnRate = 1.0
	const verticalRate = 3.0

	if in.MoveForward {
		p.Camera.MoveForward(moveSpeed, dt)
	}
	if in.MoveBackward {
		p.Camera.MoveBackward(moveSpeed, dt)
	}
	if in.YawLeft {
		p.Camera.RotateYaw(-turnRate, dt)
	}
	if in.YawRight {
		p.Camera.RotateYaw(turnRate, dt)
	}
	if in.PitchUp {
		p.Camera.RotatePitch(turnRate, dt)
	}
	if in.PitchDown {
		p.Camera.RotatePitch(-turnRate, dt)
	}
	if in.MoveUp {
		p.Camera.MoveVertical(verticalRate, dt)
	}
	if in.MoveDown {
		p.Camera.MoveVertical(-verticalRate, dt)
	}
	if in.ToggleCulling {
		p.CullingEnabled = !p.CullingEnabled
	}
	if in.ToggleDepthVis {
		p.DepthVisEnabled = !p.DepthVisEnabled
	}
	if in.SetMode != 0 {
		p.Mode = in.SetMode
	}
}

// Frame runs one full pass: clear buffers, update the camera, transform
// and clip every mesh face, scan-convert the resulting triangles per the
// current render mode, and optionally replace the color buffer with a
// depth visualization.
func (p *Pipeline) Frame(dt float32, in InputState) error {
	if p.Color == nil || p.Depth == nil {
		return fmt.Errorf("pipeline: buffers not initialized")
	}

	p.Color.Clear(buffer.Black)
	p.Depth.Clear()

	p.applyInput(dt, in)
	p.Camera.UpdateDirection()

	view := math.Mat4LookAt(p.Camera.Position, p.Camera.Target(), math.Vec3Up)
	planes := p.Frustum.Planes()

	for i := 0; i < p.Meshes.NumMeshes(); i++ {
		m := p.Meshes.GetMesh(i)
		world := math.Mat4World(m.Scale, m.Rotation, m.Translation)
		modelView := view.Mul(world)

		queued := 0
		for _, face := range m.Faces {
			if queued >= mesh.MaxTrianglesPerMesh {
				break
			}
			if face.A >= len(m.Vertices) || face.B >= len(m.Vertices) || face.C >= len(m.Vertices) {
				continue
			}

			viewA := modelView.MulPoint(m.Vertices[face.A])
			viewB := modelView.MulPoint(m.Vertices[face.B])
			viewC := modelView.MulPoint(m.Vertices[face.C])

			ab := viewB.Sub(viewA).Normalize()
			ac := viewC.Sub(viewA).Normalize()
			normal := ab.Cross(ac).Normalize()

			if p.CullingEnabled && normal.Dot(viewA.Negate()) < 0 {
				continue
			}

			poly := clip.NewTrianglePolygon(viewA, viewB, viewC, face.AUV, face.BUV, face.CUV)
			poly = clip.ClipPolygon(poly, planes)
			tris := clip.TrianglesFromPolygon(poly)
			if len(tris) == 0 {
				continue
			}

			faceColor := light.ApplyIntensity(face.Color, p.Light.Intensity(normal))

			for _, tri := range tris {
				if queued >= mesh.MaxTrianglesPerMesh {
					break
				}
				screen := ScreenTriangle{
					A:       p.projectToScreen(tri.A, tri.AUV),
					B:       p.projectToScreen(tri.B, tri.BUV),
					C:       p.projectToScreen(tri.C, tri.CUV),
					Color:   faceColor,
					Texture: m.Texture,
				}
				p.renderTriangle(screen)
				queued++
			}
		}
	}

	if p.DepthVisEnabled {
		p.Color.Clear(buffer.Black)
		p.Depth.ToVisual(p.Color)
	}

	return nil
}

// projectToScreen applies the perspective matrix to a view-space point,
// divides by w, and maps the result into pixel coordinates. The
// pre-divide w is retained in the returned vertex for perspective-correct
// interpolation downstream.
func (p *Pipeline) projectToScreen(v math.Vec3, uv math.Tex2) screenVertex {
	raw := p.Perspective.MulVec4(v.ToVec4(1))
	projected := raw.ProjectDivide()

	screenX := projected.X*float32(p.Width)/2 + float32(p.Width)/2
	screenY := -projected.Y*float32(p.Height)/2 + float32(p.Height)/2

	return screenVertex{X: screenX, Y: screenY, Z: projected.Z, W: projected.W, UV: uv}
}

// renderTriangle scan-converts tri according to the current mode bits;
// solid and textured fills happen first so wireframe and vertex dots
// remain visible on top.
func (p *Pipeline) renderTriangle(tri ScreenTriangle) {
	if tri.A.W == 0 || tri.B.W == 0 || tri.C.W == 0 {
		return
	}
	if p.Mode.Has(ModeSolid) {
		DrawFilledTriangle(p.Color, p.Depth, tri)
	}
	if p.Mode.Has(ModeTexture) {
		DrawTexturedTriangle(p.Color, p.Depth, tri)
	}
	if p.Mode.Has(ModeWire) {
		DrawWireframeTriangle(p.Color, tri)
	}
	if p.Mode.Has(ModeDot) {
		DrawVertexPoints(p.Color, tri)
	}
}
