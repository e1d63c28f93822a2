package render

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Program is the linked shader program drawing plot geometry.
type Program struct {
	id         uint32
	uTransform int32 // uniform location for the canvas to NDC matrix
}

// Vertex shader. Applies the canvas to NDC matrix and forwards the color.
const vertexShaderSource = `
#version 330 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec4 aColor;

uniform mat4 uTransform;

out vec4 vColor;

void main() {
    gl_Position = uTransform * vec4(aPos, 0.0, 1.0);
    vColor = aColor;
}
` + "\x00"

// Fragment shader. Plot colors are opaque; markers and strokes are drawn
// over the card in order.
const fragmentShaderSource = `
#version 330 core
in vec4 vColor;
out vec4 FragColor;

void main() {
    FragColor = vColor;
}
` + "\x00"

// NewProgram compiles and links the shaders and makes the program current.
func NewProgram() (*Program, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	p := &Program{id: gl.CreateProgram()}
	gl.AttachShader(p.id, vertexShader)
	gl.AttachShader(p.id, fragmentShader)
	gl.LinkProgram(p.id)

	var status int32
	gl.GetProgramiv(p.id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(p.id, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(p.id, logLength, nil, gl.Str(logText))
		gl.DeleteProgram(p.id)
		return nil, fmt.Errorf("shader linking failed: %s", strings.TrimRight(logText, "\x00"))
	}

	p.uTransform = gl.GetUniformLocation(p.id, gl.Str("uTransform\x00"))
	gl.UseProgram(p.id)
	return p, nil
}

// SetTransform sets the uniform transformation matrix.
func (p *Program) SetTransform(matrix [16]float32) {
	gl.UniformMatrix4fv(p.uTransform, 1, false, &matrix[0])
}

func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compilation failed: %s", strings.TrimRight(logText, "\x00"))
	}
	return shader, nil
}
