package city

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/der-antikeks/nightcity/math"
)

var (
	vehicleScale   = mgl32.Vec3{1.5, 0.5, 3}
	billboardScale = mgl32.Vec3{3, 2, 0.1}
	yAxis          = mgl32.Vec3{0, 1, 0}
)

const (
	vehicleEmission   = 0.8
	billboardEmission = 0.9
)

// Material is the uniform set submitted with every draw
type Material struct {
	Color            mgl32.Vec3
	EmissionStrength float32
	EmissionColor    mgl32.Vec3
}

// Drawable is anything rendered as a transformed unit cube
type Drawable interface {
	Model() mgl32.Mat4
	Material() Material
}

// Building is immutable after generation
type Building struct {
	Position         mgl32.Vec3
	Scale            mgl32.Vec3
	Color            mgl32.Vec3
	EmissionStrength float32
	EmissionColor    mgl32.Vec3
}

func (b *Building) Model() mgl32.Mat4 {
	return mgl32.Translate3D(b.Position[0], b.Position[1], b.Position[2]).
		Mul4(mgl32.Scale3D(b.Scale[0], b.Scale[1], b.Scale[2]))
}

func (b *Building) Material() Material {
	return Material{
		Color:            b.Color,
		EmissionStrength: b.EmissionStrength,
		EmissionColor:    b.EmissionColor,
	}
}

// Vehicle flies on a circle of Radius around the world origin at Height.
type Vehicle struct {
	Direction mgl32.Vec3 // not used for rendering
	Speed     float32    // radians per second
	Color     mgl32.Vec3
	Height    float32
	Radius    float32
	Angle     float32 // radians, kept in [0, 2π)
}

func (v *Vehicle) Position() mgl32.Vec3 {
	sin, cos := math.SinCos(v.Angle)
	return mgl32.Vec3{v.Radius * cos, v.Height, v.Radius * sin}
}

func (v *Vehicle) Update(delta time.Duration) {
	v.Angle = math.WrapRadians(v.Angle + v.Speed*seconds(delta))
}

func (v *Vehicle) Model() mgl32.Mat4 {
	p := v.Position()
	return mgl32.Translate3D(p[0], p[1], p[2]).
		Mul4(mgl32.Scale3D(vehicleScale[0], vehicleScale[1], vehicleScale[2]))
}

func (v *Vehicle) Material() Material {
	return Material{
		Color:            v.Color,
		EmissionStrength: vehicleEmission,
		EmissionColor:    v.Color,
	}
}

// Billboard spins around the y axis at a fixed position.
type Billboard struct {
	Position      mgl32.Vec3
	Rotation      float32 // degrees, kept in [0, 360)
	RotationSpeed float32 // degrees per second
	Color         mgl32.Vec3
}

func (b *Billboard) Update(delta time.Duration) {
	b.Rotation = math.WrapDegrees(b.Rotation + b.RotationSpeed*seconds(delta))
}

func (b *Billboard) Model() mgl32.Mat4 {
	return mgl32.Translate3D(b.Position[0], b.Position[1], b.Position[2]).
		Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(b.Rotation), yAxis)).
		Mul4(mgl32.Scale3D(billboardScale[0], billboardScale[1], billboardScale[2]))
}

func (b *Billboard) Material() Material {
	return Material{
		Color:            b.Color,
		EmissionStrength: billboardEmission,
		EmissionColor:    b.Color,
	}
}

// negative deltas do not rewind the animation
func seconds(delta time.Duration) float32 {
	if delta <= 0 {
		return 0
	}
	return float32(delta.Seconds())
}
