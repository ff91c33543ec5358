package engine

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// uniform errors are reported before any gl call
func TestRenderer_UpdateUniformErrors(t *testing.T) {
	r := &Renderer{
		program: &Program{
			uniforms: map[string]int32{"modelMatrix": 0},
		},
	}

	tests := []struct {
		Name     string
		Value    interface{}
		Expected string
	}{
		{"unknownMatrix", mgl32.Ident4(), "unsupported uniform"},
		{"modelMatrix", 1, "unknown type: int"},
		{"modelMatrix", mgl32.Vec4{}, "unknown type: mgl32.Vec4"},
		{"modelMatrix", true, "unknown type: bool"},
	}

	for _, c := range tests {
		err := r.UpdateUniform(c.Name, c.Value)
		if err == nil || !strings.Contains(err.Error(), c.Expected) {
			t.Errorf("UpdateUniform(%v, %T) != %q (got %v)", c.Name, c.Value, c.Expected, err)
		}
	}
}
