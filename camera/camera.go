// Package camera implements the movable viewer: position, forward
// direction, yaw/pitch, and the read/write accessors the pipeline and the
// input handler use each frame.
package camera

import "softraster/math"

// Camera holds the five fields the pipeline reads every frame. Direction is
// recomputed from yaw/pitch once per frame, when the pipeline driver calls
// UpdateDirection.
type Camera struct {
	Position        math.Vec3
	Direction       math.Vec3
	ForwardVelocity math.Vec3
	Yaw             float32
	Pitch           float32
}

// New returns a camera at the origin looking down +Z.
func New() *Camera {
	return &Camera{
		Direction: math.NewVec3(0, 0, 1),
	}
}

func (c *Camera) SetPosition(p math.Vec3) { c.Position = p }
func (c *Camera) GetPosition() math.Vec3  { return c.Position }

func (c *Camera) SetDirection(d math.Vec3) { c.Direction = d }
func (c *Camera) GetDirection() math.Vec3  { return c.Direction }

func (c *Camera) SetForwardVelocity(v math.Vec3) { c.ForwardVelocity = v }
func (c *Camera) GetForwardVelocity() math.Vec3  { return c.ForwardVelocity }

func (c *Camera) SetYaw(yaw float32) { c.Yaw = yaw }
func (c *Camera) GetYaw() float32    { return c.Yaw }

func (c *Camera) SetPitch(pitch float32) { c.Pitch = pitch }
func (c *Camera) GetPitch() float32      { return c.Pitch }

// UpdateDirection recomputes Direction as the +Z unit vector rotated by
// pitch about X, then yaw about Y, applied in that order to match the
// inverse of the view matrix (§4.3 and Design Note).
func (c *Camera) UpdateDirection() {
	rot := math.Mat4RotationY(c.Yaw).Mul(math.Mat4RotationX(c.Pitch))
	c.Direction = rot.MulDirection(math.NewVec3(0, 0, 1)).Normalize()
}

// Target returns the point the view matrix should look at this frame.
func (c *Camera) Target() math.Vec3 {
	return c.Position.Add(c.Direction)
}

// MoveForward advances the camera along its current direction by
// speed*dt, storing the applied displacement as ForwardVelocity.
func (c *Camera) MoveForward(speed, dt float32) {
	c.ForwardVelocity = c.Direction.Mul(speed * dt)
	c.Position = c.Position.Add(c.ForwardVelocity)
}

// MoveBackward is MoveForward with the displacement negated.
func (c *Camera) MoveBackward(speed, dt float32) {
	c.ForwardVelocity = c.Direction.Mul(speed * dt)
	c.Position = c.Position.Sub(c.ForwardVelocity)
}

// RotateYaw adjusts yaw by rate*dt (positive turns right).
func (c *Camera) RotateYaw(rate, dt float32) {
	c.Yaw += rate * dt
}

// RotatePitch adjusts pitch by rate*dt (positive tilts the direction from
// +Z toward -Y).
func (c *Camera) RotatePitch(rate, dt float32) {
	c.Pitch += rate * dt
}

// MoveVertical translates position.y by rate*dt.
func (c *Camera) MoveVertical(rate, dt float32) {
	c.Position.Y += rate * dt
}
