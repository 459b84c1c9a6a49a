// Package shader compiles and links GLSL programs.
package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Stage is a shader pipeline stage.
type Stage string

const (
	Vertex   Stage = "vertex"
	Fragment Stage = "fragment"
)

// CompileError reports a shader that failed to compile. Log is the driver's
// info log.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("error in %s shader: %s", e.Stage, e.Log)
}

// LinkError reports a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "link error in program: " + e.Log
}

// CompileProgram compiles vertex and fragment shaders and links them into a program.
// Nothing is left allocated on failure.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, Vertex)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, Fragment)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := infoLog(logLen, func(buf []byte) {
			gl.GetProgramInfoLog(program, logLen, nil, &buf[0])
		})
		gl.DeleteProgram(program)
		return 0, &LinkError{Log: log}
	}

	return program, nil
}

func compileShader(source string, shaderType uint32, stage Stage) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := infoLog(logLen, func(buf []byte) {
			gl.GetShaderInfoLog(shader, logLen, nil, &buf[0])
		})
		gl.DeleteShader(shader)
		return 0, &CompileError{Stage: stage, Log: log}
	}

	return shader, nil
}

// infoLog reads a driver log of n bytes and trims the terminator.
func infoLog(n int32, read func(buf []byte)) string {
	if n <= 0 {
		return "(no log)"
	}
	buf := make([]byte, n)
	read(buf)
	return strings.TrimRight(string(buf), "\x00\n ")
}

// GetUniform returns the uniform location for the given name, or -1 if the
// uniform is not found or inactive.
func GetUniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
