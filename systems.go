package main

import (
	"time"

	"github.com/der-antikeks/nightcity/camera"
	"github.com/der-antikeks/nightcity/city"
	"github.com/der-antikeks/nightcity/engine"
	"github.com/der-antikeks/nightcity/system"
)

// ControlSystem steers the fly camera from the collected input
type ControlSystem struct {
	cam   *camera.FlyCamera
	input *camera.Input
}

func NewControlSystem(cam *camera.FlyCamera, input *camera.Input) system.System {
	return &ControlSystem{
		cam:   cam,
		input: input,
	}
}

func (s *ControlSystem) Name() string                           { return "control" }
func (s *ControlSystem) Priority() system.Priority              { return system.PriorityInput }
func (s *ControlSystem) AddedToEngine(*system.Engine) error     { return nil }
func (s *ControlSystem) RemovedFromEngine(*system.Engine) error { return nil }

func (s *ControlSystem) Update(delta time.Duration) error {
	s.cam.Look(s.input.MouseDelta())
	s.cam.Move(s.input, delta)
	return nil
}

// AnimationSystem advances vehicles and billboards
type AnimationSystem struct {
	scene *city.City
}

func NewAnimationSystem(scene *city.City) system.System {
	return &AnimationSystem{scene: scene}
}

func (s *AnimationSystem) Name() string                           { return "animation" }
func (s *AnimationSystem) Priority() system.Priority              { return system.PriorityBeforeRender }
func (s *AnimationSystem) AddedToEngine(*system.Engine) error     { return nil }
func (s *AnimationSystem) RemovedFromEngine(*system.Engine) error { return nil }

func (s *AnimationSystem) Update(delta time.Duration) error {
	s.scene.Update(delta)
	return nil
}

// RenderSystem draws the whole city from the camera's point of view
type RenderSystem struct {
	ctx      *engine.Context
	renderer *engine.Renderer
	cam      *camera.FlyCamera
	scene    *city.City
}

func NewRenderSystem(ctx *engine.Context, r *engine.Renderer, cam *camera.FlyCamera, scene *city.City) system.System {
	return &RenderSystem{
		ctx:      ctx,
		renderer: r,
		cam:      cam,
		scene:    scene,
	}
}

func (s *RenderSystem) Name() string                           { return "render" }
func (s *RenderSystem) Priority() system.Priority              { return system.PriorityRender }
func (s *RenderSystem) AddedToEngine(*system.Engine) error     { return nil }
func (s *RenderSystem) RemovedFromEngine(*system.Engine) error { return nil }

func (s *RenderSystem) Update(delta time.Duration) error {
	s.ctx.Clear()

	return s.renderer.Render(engine.Frame{
		View:       s.cam.View(),
		Projection: s.cam.Projection(s.ctx.Aspect()),
		Eye:        s.cam.Position,
	}, s.scene.Drawables())
}

// PresentSystem swaps buffers, polls events and ends the loop once the
// window wants to close
type PresentSystem struct {
	engine *system.Engine
	ctx    *engine.Context
}

func NewPresentSystem(ctx *engine.Context) system.System {
	return &PresentSystem{ctx: ctx}
}

func (s *PresentSystem) Name() string { return "present" }

// after stats, last in every frame
func (s *PresentSystem) Priority() system.Priority { return system.PriorityAfterRender + 5 }

func (s *PresentSystem) AddedToEngine(e *system.Engine) error {
	s.engine = e
	return nil
}

func (s *PresentSystem) RemovedFromEngine(*system.Engine) error {
	s.engine = nil
	return nil
}

func (s *PresentSystem) Update(delta time.Duration) error {
	s.ctx.Update()

	if s.ctx.ShouldClose() && s.engine != nil {
		s.engine.Stop()
	}
	return nil
}
