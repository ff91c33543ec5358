package engine

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"github.com/der-antikeks/nightcity/city"
	"github.com/der-antikeks/nightcity/geometry"
)

type Light struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
}

// DefaultLight is a dim blue moon above the city center
var DefaultLight = Light{
	Position: mgl32.Vec3{0, 50, 0},
	Color:    mgl32.Vec3{0.3, 0.3, 0.7},
}

// Frame holds the per frame camera state
type Frame struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Eye        mgl32.Vec3
}

// Renderer owns the program and the shared unit cube
type Renderer struct {
	log     zerolog.Logger
	program *Program
	mesh    *Mesh
	light   Light
}

// NewRenderer compiles the phong program and uploads the cube. A broken
// program is logged and kept, drawing with it will show nothing.
func NewRenderer(log zerolog.Logger, light Light) (*Renderer, error) {
	prg, err := LoadProgram("phong")
	if prg == nil {
		return nil, err
	}
	if err != nil {
		log.Error().Err(err).Msg("shader program is unusable")
	}

	geo := geometry.NewCube(1)
	r := &Renderer{
		log:     log,
		program: prg,
		mesh:    NewMesh(geo),
		light:   light,
	}

	log.Debug().
		Int("vertices", geo.VerticesCount()).
		Int("faces", geo.FaceCount()).
		Msg("renderer ready")

	return r, nil
}

// Render draws every drawable as a transformed unit cube, in order
func (r *Renderer) Render(frame Frame, drawables []city.Drawable) error {
	r.program.Use()
	r.mesh.Bind()
	defer r.mesh.Unbind()

	for n, v := range map[string]interface{}{
		"viewMatrix":       frame.View,
		"projectionMatrix": frame.Projection,
		"viewPosition":     frame.Eye,
		"lightPosition":    r.light.Position,
		"lightColor":       r.light.Color,
	} {
		if err := r.UpdateUniform(n, v); err != nil {
			return err
		}
	}

	for _, d := range drawables {
		if err := r.draw(d); err != nil {
			return err
		}
	}

	return nil
}

func (r *Renderer) draw(d city.Drawable) error {
	m := d.Material()

	if err := r.UpdateUniform("modelMatrix", d.Model()); err != nil {
		return err
	}
	if err := r.UpdateUniform("objectColor", m.Color); err != nil {
		return err
	}
	if err := r.UpdateUniform("emissionStrength", m.EmissionStrength); err != nil {
		return err
	}
	if err := r.UpdateUniform("emissionColor", m.EmissionColor); err != nil {
		return err
	}

	r.mesh.Draw()
	return nil
}

// UpdateUniform uploads a value to the current program, set after Use
func (r *Renderer) UpdateUniform(name string, value interface{}) error {
	location, found := r.program.Uniform(name)
	if !found {
		return fmt.Errorf("unsupported uniform: %v", name)
	}

	switch t := value.(type) {
	default:
		return fmt.Errorf("%v has unknown type: %T", name, t)

	case float32:
		gl.Uniform1f(location, t)
	case mgl32.Mat4:
		gl.UniformMatrix4fv(location, 1, false, &t[0])
	case mgl32.Vec3:
		gl.Uniform3f(location, t[0], t[1], t[2])
	}

	return nil
}

func (r *Renderer) Dispose() {
	r.mesh.Dispose()
	r.program.Dispose()
}
