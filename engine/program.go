package engine

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

type Program struct {
	program  uint32
	uniforms map[string]int32
}

// CompileProgram compiles and links a vertex and fragment shader. A compile
// or link failure is returned together with the program object, which may
// be unusable.
func CompileProgram(vertex, fragment string, uniforms []string) (*Program, error) {
	var errs []string

	vshader, err := compileShader(vertex, gl.VERTEX_SHADER)
	if err != nil {
		errs = append(errs, fmt.Sprintf("vertex shader error: %v", err))
	}
	defer gl.DeleteShader(vshader)

	fshader, err := compileShader(fragment, gl.FRAGMENT_SHADER)
	if err != nil {
		errs = append(errs, fmt.Sprintf("fragment shader error: %v", err))
	}
	defer gl.DeleteShader(fshader)

	prg := &Program{
		program:  gl.CreateProgram(),
		uniforms: make(map[string]int32),
	}

	gl.AttachShader(prg.program, vshader)
	gl.AttachShader(prg.program, fshader)
	gl.LinkProgram(prg.program)

	var status int32
	gl.GetProgramiv(prg.program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetProgramiv(prg.program, gl.INFO_LOG_LENGTH, &length)

		info := strings.Repeat("\x00", int(length+1))
		gl.GetProgramInfoLog(prg.program, length, nil, gl.Str(info))
		errs = append(errs, fmt.Sprintf("linker error: %v", strings.TrimRight(info, "\x00")))
	}

	// locations, -1 for unknown or optimized away uniforms
	for _, u := range uniforms {
		prg.uniforms[u] = gl.GetUniformLocation(prg.program, gl.Str(u+"\x00"))
	}

	if len(errs) > 0 {
		return prg, fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return prg, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)

		info := strings.Repeat("\x00", int(length+1))
		gl.GetShaderInfoLog(shader, length, nil, gl.Str(info))
		return shader, fmt.Errorf("%v", strings.TrimRight(info, "\x00"))
	}

	return shader, nil
}

func (p *Program) Use() {
	gl.UseProgram(p.program)
}

func (p *Program) Dispose() {
	gl.DeleteProgram(p.program)
}

// Uniform returns the location of a registered uniform
func (p *Program) Uniform(name string) (int32, bool) {
	l, ok := p.uniforms[name]
	return l, ok
}
