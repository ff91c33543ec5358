package system

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"
)

type testSortSystem struct {
	priority Priority
	update   func() error
	added    func() error
	removed  func() error
}

func (s *testSortSystem) Name() string {
	return fmt.Sprintf("test-%d", s.priority)
}
func (s *testSortSystem) Priority() Priority {
	return s.priority
}
func (s *testSortSystem) AddedToEngine(*Engine) error {
	if s.added != nil {
		return s.added()
	}
	return fmt.Errorf("test system was not properly initialized")
}
func (s *testSortSystem) RemovedFromEngine(*Engine) error {
	if s.removed != nil {
		return s.removed()
	}
	return fmt.Errorf("test system was not properly initialized")
}
func (s *testSortSystem) Update(time.Duration) error {
	if s.update != nil {
		return s.update()
	}
	return fmt.Errorf("test system was not properly initialized")
}

func newTestSystem(p Priority, out *[]Priority) *testSortSystem {
	return &testSortSystem{
		priority: p,
		update: func() error {
			*out = append(*out, p)
			return nil
		},
		added:   func() error { return nil },
		removed: func() error { return nil },
	}
}

func TestEngineSortSystems(t *testing.T) {
	engine := NewEngine()
	var out []Priority
	n := 10

	for i := 0; i < n; i++ {
		p := Priority(rand.Intn(100))
		if err := engine.AddSystem(newTestSystem(p, &out)); err != nil {
			t.Fatal(err)
		}
	}

	if err := engine.Update(0); err != nil {
		t.Fatal(err)
	}

	if len(out) != n {
		t.Fatalf("updated %v systems instead of %v", len(out), n)
	}

	var prev Priority
	for _, p := range out {
		if p < prev {
			t.Errorf("unsorted: %v < %v", p, prev)
		}
		prev = p
	}
}

func TestEngineStopsOnError(t *testing.T) {
	engine := NewEngine()
	var out []Priority

	failing := newTestSystem(PriorityBeforeRender, &out)
	errBroken := errors.New("broken")
	failing.update = func() error { return errBroken }

	engine.AddSystem(newTestSystem(PriorityRender, &out))
	engine.AddSystem(failing)
	engine.AddSystem(newTestSystem(PriorityInput, &out))

	err := engine.Update(time.Millisecond)
	if err == nil {
		t.Fatal("failing system did not stop the update")
	}
	if len(out) != 1 || out[0] != PriorityInput {
		t.Errorf("systems updated before the failure: %v, want [%v]", out, PriorityInput)
	}
	if !errors.Is(err, errBroken) || err.Error() != "error in system test-10: broken" {
		t.Errorf("unexpected error %q", err)
	}
}

func TestEngineAddRemove(t *testing.T) {
	engine := NewEngine()
	var out []Priority

	broken := &testSortSystem{priority: 1}
	if err := engine.AddSystem(broken); err == nil {
		t.Errorf("uninitialized system was added")
	}

	s := newTestSystem(5, &out)
	if err := engine.AddSystem(s); err != nil {
		t.Fatal(err)
	}
	if err := engine.RemoveSystem(s); err != nil {
		t.Fatal(err)
	}
	if err := engine.RemoveSystem(s); err == nil {
		t.Errorf("removing an unknown system succeeded")
	}

	engine.Update(0)
	if len(out) != 0 {
		t.Errorf("removed system was updated")
	}
}

func TestUpdateSystem(t *testing.T) {
	engine := NewEngine()

	var got time.Duration
	engine.AddSystem(UpdateSystem("delta", PriorityRender, func(d time.Duration) error {
		got = d
		return nil
	}))

	engine.Update(16 * time.Millisecond)
	if got != 16*time.Millisecond {
		t.Errorf("update system received %v instead of 16ms", got)
	}
}

func TestEngineStop(t *testing.T) {
	engine := NewEngine()

	if !engine.IsRunning() {
		t.Errorf("new engine is not running")
	}
	engine.Stop()
	if engine.IsRunning() {
		t.Errorf("stopped engine is still running")
	}
}
