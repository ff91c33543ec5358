package system

import (
	"time"
)

type Priority int

const (
	PriorityInput Priority = iota * 10
	PriorityBeforeRender
	PriorityRender
	PriorityAfterRender
)

type System interface {
	Name() string
	Priority() Priority
	AddedToEngine(*Engine) error
	RemovedFromEngine(*Engine) error
	Update(time.Duration) error
}

type updateSystem struct {
	name     string
	priority Priority
	update   func(time.Duration) error
}

// Creates a simple update loop System
func UpdateSystem(name string, p Priority, update func(time.Duration) error) System {
	return &updateSystem{
		name:     name,
		priority: p,
		update:   update,
	}
}

func (s *updateSystem) Name() string                    { return s.name }
func (s *updateSystem) Priority() Priority              { return s.priority }
func (s *updateSystem) AddedToEngine(*Engine) error     { return nil }
func (s *updateSystem) RemovedFromEngine(*Engine) error { return nil }

func (s *updateSystem) Update(delta time.Duration) error {
	return s.update(delta)
}
