package camera

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/der-antikeks/nightcity/math"
)

const (
	DefaultSpeed       = 10
	DefaultFastSpeed   = 25
	DefaultSensitivity = 0.1

	MaxPitch = 89
)

// FlyCamera is a free first person camera, angles in degrees
type FlyCamera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3

	Yaw, Pitch float32

	Speed, FastSpeed float32
	Sensitivity      float32

	Fov, Near, Far float32
}

func NewFlyCamera() *FlyCamera {
	c := &FlyCamera{
		Position: mgl32.Vec3{0, 20, 50},
		Up:       mgl32.Vec3{0, 1, 0},

		Yaw:   -90,
		Pitch: 0,

		Speed:       DefaultSpeed,
		FastSpeed:   DefaultFastSpeed,
		Sensitivity: DefaultSensitivity,

		Fov:  45,
		Near: 0.1,
		Far:  200,
	}
	c.updateFront()

	return c
}

// Move translates the camera by the held movement keys
func (c *FlyCamera) Move(in *Input, delta time.Duration) {
	if delta <= 0 {
		return
	}

	speed := c.Speed
	if in.IsKeyDown(KeyLeftControl) {
		speed = c.FastSpeed
	}
	velocity := speed * float32(delta.Seconds())

	right := c.Front.Cross(c.Up).Normalize()

	if in.IsKeyDown(KeyW) {
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	}
	if in.IsKeyDown(KeyS) {
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	}
	if in.IsKeyDown(KeyA) {
		c.Position = c.Position.Sub(right.Mul(velocity))
	}
	if in.IsKeyDown(KeyD) {
		c.Position = c.Position.Add(right.Mul(velocity))
	}
	if in.IsKeyDown(KeySpace) {
		c.Position = c.Position.Add(c.Up.Mul(velocity))
	}
	if in.IsKeyDown(KeyLeftShift) {
		c.Position = c.Position.Sub(c.Up.Mul(velocity))
	}
}

// Look turns the camera by a mouse offset in pixels
func (c *FlyCamera) Look(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}

	c.Yaw += float32(dx) * c.Sensitivity
	c.Pitch = math.Clamp(c.Pitch+float32(dy)*c.Sensitivity, -MaxPitch, MaxPitch)
	c.updateFront()
}

func (c *FlyCamera) updateFront() {
	ysin, ycos := math.SinCos(mgl32.DegToRad(c.Yaw))
	psin, pcos := math.SinCos(mgl32.DegToRad(c.Pitch))

	c.Front = mgl32.Vec3{ycos * pcos, psin, ysin * pcos}.Normalize()
}

func (c *FlyCamera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

func (c *FlyCamera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Fov), aspect, c.Near, c.Far)
}
