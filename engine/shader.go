package engine

import (
	"fmt"
)

// vertex attribute locations, fixed in the shader source
const (
	positionLocation = 0
	normalLocation   = 1
	uvLocation       = 2
)

type shaderSource struct {
	vertex, fragment string
	uniforms         []string
}

var programLibrary = map[string]shaderSource{
	// phong lighting with a single point light plus additive emission
	"phong": {
		vertex: `
			#version 330 core

			layout (location = 0) in vec3 vertexPosition;
			layout (location = 1) in vec3 vertexNormal;
			layout (location = 2) in vec2 vertexUV;

			uniform mat4 projectionMatrix;
			uniform mat4 viewMatrix;
			uniform mat4 modelMatrix;

			out vec3 Position;
			out vec3 Normal;
			out vec2 UV;

			void main() {
				Position = vec3(modelMatrix * vec4(vertexPosition, 1.0));
				Normal = mat3(transpose(inverse(modelMatrix))) * vertexNormal;
				UV = vertexUV;

				gl_Position = projectionMatrix * viewMatrix * vec4(Position, 1.0);
			}`,
		fragment: `
			#version 330 core

			in vec3 Position;
			in vec3 Normal;
			in vec2 UV;

			uniform vec3 viewPosition;
			uniform vec3 lightPosition;
			uniform vec3 lightColor;

			uniform vec3 objectColor;
			uniform float emissionStrength;
			uniform vec3 emissionColor;

			out vec4 fragmentColor;

			const float ambientStrength = 0.2;
			const float specularStrength = 0.5;
			const float shininess = 32.0;

			void main() {
				vec3 ambient = ambientStrength * lightColor;

				vec3 norm = normalize(Normal);
				vec3 lightDir = normalize(lightPosition - Position);
				vec3 diffuse = max(dot(norm, lightDir), 0.0) * lightColor;

				vec3 viewDir = normalize(viewPosition - Position);
				vec3 reflectDir = reflect(-lightDir, norm);
				vec3 specular = specularStrength * pow(max(dot(viewDir, reflectDir), 0.0), shininess) * lightColor;

				vec3 emission = emissionStrength * emissionColor;

				fragmentColor = vec4((ambient + diffuse + specular) * objectColor + emission, 1.0);
			}`,
		uniforms: []string{
			"projectionMatrix",
			"viewMatrix",
			"modelMatrix",

			"viewPosition",
			"lightPosition",
			"lightColor",

			"objectColor",
			"emissionStrength",
			"emissionColor",
		},
	},
}

// LoadProgram compiles a program from the library, see CompileProgram for
// the failure semantics.
func LoadProgram(name string) (*Program, error) {
	src, found := programLibrary[name]
	if !found {
		return nil, fmt.Errorf("unknown shader name: %v", name)
	}

	return CompileProgram(src.vertex, src.fragment, src.uniforms)
}
