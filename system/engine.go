package system

import (
	"fmt"
	"sort"
	"time"
)

// Engine collects Systems and updates them in order of priority
type Engine struct {
	systems        []System // prioritised list
	updatePriority bool
	running        bool
}

func NewEngine() *Engine {
	return &Engine{
		systems: []System{},
		running: true,
	}
}

// Add System to Engine. Calls AddedToEngine of the System.
func (e *Engine) AddSystem(s System) error {
	if err := s.AddedToEngine(e); err != nil {
		return fmt.Errorf("adding system %s: %w", s.Name(), err)
	}

	e.systems = append(e.systems, s)
	e.updatePriority = true
	return nil
}

// Remove System from Engine. Calls RemovedFromEngine of the System.
func (e *Engine) RemoveSystem(s System) error {
	for i, f := range e.systems {
		if f == s {
			// found, remove from slice
			copy(e.systems[i:], e.systems[i+1:])
			e.systems[len(e.systems)-1] = nil
			e.systems = e.systems[:len(e.systems)-1]

			if err := s.RemovedFromEngine(e); err != nil {
				return fmt.Errorf("removing system %s: %w", s.Name(), err)
			}
			return nil
		}
	}

	return fmt.Errorf("unknown system %s", s.Name())
}

// ByPriority attaches the methods of sort.Interface to []System, sorting in increasing order of priority.
type ByPriority []System

func (a ByPriority) Len() int           { return len(a) }
func (a ByPriority) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a ByPriority) Less(i, j int) bool { return a[i].Priority() < a[j].Priority() }

// Update each System in order of priority, stops at the first error
func (e *Engine) Update(delta time.Duration) error {
	if e.updatePriority {
		sort.Stable(ByPriority(e.systems))
		e.updatePriority = false
	}

	for _, s := range e.systems {
		if err := s.Update(delta); err != nil {
			return fmt.Errorf("error in system %s: %w", s.Name(), err)
		}
	}

	return nil
}

// Stop ends the main loop after the current frame
func (e *Engine) Stop() {
	e.running = false
}

func (e *Engine) IsRunning() bool {
	return e.running
}
