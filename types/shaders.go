package types

import (
	"strings"

	"GLTutorial/harness"

	"github.com/go-gl/gl/v3.2-core/gl"
)

func shaderType(stage harness.Stage) uint32 {

	if stage == harness.FragmentStage {
		return gl.FRAGMENT_SHADER
	}

	return gl.VERTEX_SHADER

}

// NewShader compiles source for one stage. A failed shader object is deleted
// before the error is returned.
func NewShader(source string, stage harness.Stage) (uint32, error) {

	shader := gl.CreateShader(shaderType(stage))

	// Add source into shader object

	shaderSources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, shaderSources, nil)
	free()

	// Compile the shader

	gl.CompileShader(shader)

	// Check to make sure shader compiled correctly

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)

	if status == gl.FALSE {

		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		gl.DeleteShader(shader)

		return 0, &harness.ShaderError{Stage: stage, Log: strings.TrimRight(log, "\x00\n")}

	}

	return shader, nil

}

// NewShaderProgram links the shaders with fragOutput bound to color number 0.
// The shaders stay owned by the caller.
func NewShaderProgram(shaders []uint32, fragOutput string) (uint32, error) {

	// Create shader program

	var shaderProgram uint32 = gl.CreateProgram()

	// Attach all shaders provided

	for i := 0; i < len(shaders); i++ {

		gl.AttachShader(shaderProgram, shaders[i])

	}

	gl.BindFragDataLocation(shaderProgram, 0, gl.Str(fragOutput+"\x00"))

	// Link the program to context

	gl.LinkProgram(shaderProgram)

	// Check if there was an error linking to context

	var status int32
	gl.GetProgramiv(shaderProgram, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(shaderProgram, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(shaderProgram, logLength, nil, gl.Str(log))

		gl.DeleteProgram(shaderProgram)

		return 0, &harness.LinkError{Log: strings.TrimRight(log, "\x00\n")}
	}

	return shaderProgram, nil

}

func (d *GLDriver) CompileShader(stage harness.Stage, source string) (harness.Handle, error) {

	shader, err := NewShader(source, stage)

	return harness.Handle(shader), err

}

func (d *GLDriver) LinkProgram(shaders []harness.Handle, fragOutput string) (harness.Handle, error) {

	ids := make([]uint32, len(shaders))
	for i, s := range shaders {
		ids[i] = uint32(s)
	}

	program, err := NewShaderProgram(ids, fragOutput)

	return harness.Handle(program), err

}
