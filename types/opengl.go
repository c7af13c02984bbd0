package types

import (
	"GLTutorial/harness"
	Log "GLTutorial/logging"

	"github.com/go-gl/gl/v3.2-core/gl"
)

// GLDriver issues harness calls against the current OpenGL context.
type GLDriver struct{}

var _ harness.Driver = (*GLDriver)(nil)

// NewGLDriver loads the GL entry points for the context current on this thread.
func NewGLDriver() (*GLDriver, error) {

	profiler := ProfilerStart("opengl")

	Log.NewLog("OpenGL(Glow) Context Creating..")

	err := gl.Init()

	if err != nil {
		Log.NewLog("Could not initialize OpenGL")
		return nil, err
	}

	TimeTook := profiler.End()

	Log.NewLog("OpenGL Context Created - Time:", TimeTook)

	version := gl.GoStr(gl.GetString(gl.VERSION))
	renderer := gl.GoStr(gl.GetString(gl.RENDERER))

	Log.Logger().Info("loaded OpenGL", "version", version, "renderer", renderer)

	return &GLDriver{}, nil

}

func (d *GLDriver) UseProgram(program harness.Handle) {
	gl.UseProgram(uint32(program))
}

func (d *GLDriver) DeleteProgram(program harness.Handle) {
	gl.DeleteProgram(uint32(program))
}

func (d *GLDriver) DeleteShader(shader harness.Handle) {
	gl.DeleteShader(uint32(shader))
}

func (d *GLDriver) AttribLocation(program harness.Handle, name string) int32 {
	return gl.GetAttribLocation(uint32(program), gl.Str(name+"\x00"))
}

func (d *GLDriver) VertexAttrib(location int32, components, stride, offset int) {

	gl.EnableVertexAttribArray(uint32(location))
	gl.VertexAttribPointerWithOffset(uint32(location), int32(components), gl.FLOAT, false, int32(stride), uintptr(offset))

}

func (d *GLDriver) UniformLocation(program harness.Handle, name string) int32 {
	return gl.GetUniformLocation(uint32(program), gl.Str(name+"\x00"))
}

func (d *GLDriver) SetUniformInt(location int32, v int32) {
	gl.Uniform1i(location, v)
}

func (d *GLDriver) SetUniformFloat(location int32, v float32) {
	gl.Uniform1f(location, v)
}

func (d *GLDriver) Clear(r, g, b, a float32) {

	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT)

}

func (d *GLDriver) DrawArrays(count int) {
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))
}

func (d *GLDriver) DrawElements(count int) {
	gl.DrawElements(gl.TRIANGLES, int32(count), gl.UNSIGNED_INT, nil)
}

func (d *GLDriver) Err() error {
	return glError()
}
