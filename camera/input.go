package camera

import (
	"github.com/willf/bitset"
)

// Key is a keyboard key code, values follow glfw
type Key uint

const (
	KeySpace       Key = 32
	KeyA           Key = 65
	KeyD           Key = 68
	KeyS           Key = 83
	KeyW           Key = 87
	KeyEscape      Key = 256
	KeyLeftShift   Key = 340
	KeyLeftControl Key = 341

	// size of the key state table
	MaxKey Key = 1024
)

// Input collects key states and relative mouse movement between frames.
type Input struct {
	keys *bitset.BitSet

	lastX, lastY float64
	dx, dy       float64
	firstMouse   bool
}

func NewInput() *Input {
	return &Input{
		keys:       bitset.New(uint(MaxKey)),
		firstMouse: true,
	}
}

// Press and Release ignore keys outside the table
func (in *Input) Press(k Key) {
	if k < MaxKey {
		in.keys.Set(uint(k))
	}
}

func (in *Input) Release(k Key) {
	if k < MaxKey {
		in.keys.Clear(uint(k))
	}
}

func (in *Input) IsKeyDown(k Key) bool {
	return k < MaxKey && in.keys.Test(uint(k))
}

func (in *Input) AnyKeyDown() bool {
	return in.keys.Any()
}

// MouseMove records an absolute cursor position. The first sample only
// sets the reference point.
func (in *Input) MouseMove(x, y float64) {
	if in.firstMouse {
		in.lastX, in.lastY = x, y
		in.firstMouse = false
	}

	// screen y grows downwards
	in.dx += x - in.lastX
	in.dy += in.lastY - y
	in.lastX, in.lastY = x, y
}

// MouseDelta returns and resets the movement accumulated since the last call
func (in *Input) MouseDelta() (dx, dy float64) {
	dx, dy = in.dx, in.dy
	in.dx, in.dy = 0, 0
	return
}
