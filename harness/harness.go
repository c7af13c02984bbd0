// Package harness runs a single-scene immediate-mode renderer: it acquires a
// window and context, uploads static geometry, builds the shader program,
// binds textures, then draws one call per frame until the window asks to quit.
package harness

import (
	"fmt"
	"time"

	"GLTutorial/logging"
)

type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {

	if s == Running {
		return "running"
	}

	return "stopped"

}

type Options struct {
	Window WindowConfig
	// MaxFrames stops the loop after that many presented frames. Zero runs until quit.
	MaxFrames int
}

type Stats struct {
	Frames   int
	Duration time.Duration
}

type Harness struct {
	Platform Platform
	Images   ImageLoader
	Options  Options

	state State
}

func New(platform Platform, images ImageLoader, opts Options) *Harness {

	return &Harness{
		Platform: platform,
		Images:   images,
		Options:  opts,
		state:    Stopped,
	}

}

func (h *Harness) State() State {
	return h.state
}

// Run sets the scene up, loops until quit and releases everything it created,
// in reverse order, whether or not an error occurred.
func (h *Harness) Run(scene *Scene) (stats Stats, err error) {

	if err := scene.Validate(); err != nil {
		return stats, err
	}

	if len(scene.Textures) > 0 && h.Images == nil {
		return stats, &SetupError{Phase: "textures", Err: fmt.Errorf("scene %q needs an image loader", scene.Name)}
	}

	log := logging.Logger().With("scene", scene.Name)

	var resources releaseStack
	defer resources.drain()

	if err := h.Platform.Init(); err != nil {
		return stats, &SetupError{Phase: "windowing init", Err: err}
	}
	resources.push("windowing", h.Platform.Terminate)

	window, err := h.Platform.CreateWindow(h.Options.Window)
	if err != nil {
		return stats, &SetupError{Phase: "window", Err: err}
	}
	resources.push("window", window.Destroy)

	driver, err := window.LoadDriver()
	if err != nil {
		return stats, &SetupError{Phase: "context", Err: err}
	}

	uploadGeometry(driver, scene, &resources)

	program, err := buildProgram(driver, scene, &resources)
	if err != nil {
		return stats, err
	}

	bindAttributes(driver, program, scene.Layout)

	if err := h.bindTextures(driver, program, scene.Textures, &resources); err != nil {
		return stats, err
	}

	uniformLocation := int32(-1)
	if scene.Uniform != nil {
		uniformLocation = driver.UniformLocation(program, scene.Uniform.Name)
	}

	log.Info("setup complete", "vertices", scene.VertexCount(), "indexed", scene.Indexed(), "textures", len(scene.Textures))

	started := h.Platform.Elapsed()
	stats, err = h.loop(window, driver, scene, uniformLocation)
	stats.Duration = h.Platform.Elapsed() - started

	log.Info("frame loop stopped", "frames", stats.Frames, "duration", stats.Duration)

	return stats, err

}

func (h *Harness) loop(window Window, driver Driver, scene *Scene, uniformLocation int32) (stats Stats, err error) {

	h.state = Running
	defer func() { h.state = Stopped }()

	count := scene.DrawCount()

	for h.state == Running {

		if window.PollEvent().Kind == EventQuit {
			h.state = Stopped
			break
		}

		if scene.Uniform != nil {
			driver.SetUniformFloat(uniformLocation, scene.Uniform.Value(h.Platform.Elapsed()))
		}

		driver.Clear(0, 0, 0, 1)

		if scene.Indexed() {
			driver.DrawElements(count)
		} else {
			driver.DrawArrays(count)
		}

		if err := driver.Err(); err != nil {
			return stats, &DrawError{Frame: stats.Frames, Err: err}
		}

		window.Present()
		stats.Frames++

		if h.Options.MaxFrames > 0 && stats.Frames >= h.Options.MaxFrames {
			h.state = Stopped
		}

	}

	return stats, nil

}

func uploadGeometry(driver Driver, scene *Scene, resources *releaseStack) {

	vao := driver.CreateVertexArray()
	resources.push("vertex array", func() { driver.DeleteVertexArray(vao) })

	vbo := driver.CreateBuffer(ArrayBuffer, float32Bytes(scene.Vertices))
	resources.push("vertex buffer", func() { driver.DeleteBuffer(vbo) })

	if scene.Indexed() {
		ebo := driver.CreateBuffer(ElementArrayBuffer, uint32Bytes(scene.Indices))
		resources.push("element buffer", func() { driver.DeleteBuffer(ebo) })
	}

}

func buildProgram(driver Driver, scene *Scene, resources *releaseStack) (Handle, error) {

	stages := []struct {
		stage  Stage
		source string
	}{
		{VertexStage, scene.VertexShader},
		{FragmentStage, scene.FragmentShader},
	}

	shaders := make([]Handle, 0, len(stages))

	for _, s := range stages {

		shader, err := driver.CompileShader(s.stage, s.source)
		if err != nil {
			return 0, err
		}

		resources.push(s.stage.String()+" shader", func() { driver.DeleteShader(shader) })
		shaders = append(shaders, shader)

	}

	program, err := driver.LinkProgram(shaders, scene.FragOutput)
	if err != nil {
		return 0, err
	}
	resources.push("program", func() { driver.DeleteProgram(program) })

	driver.UseProgram(program)

	return program, nil

}

// bindAttributes points every named attribute the linker kept at its place in
// the interleaved buffer. Inputs the linker optimised away report -1 and are skipped.
func bindAttributes(driver Driver, program Handle, layout VertexLayout) {

	for _, attr := range layout.Attributes {

		location := driver.AttribLocation(program, attr.Name)
		if location < 0 {
			logging.Logger().Warn("attribute not active in program", "attribute", attr.Name)
			continue
		}

		driver.VertexAttrib(location, attr.Components, layout.Stride, attr.Offset)

	}

}

func (h *Harness) bindTextures(driver Driver, program Handle, sources []TextureSource, resources *releaseStack) error {

	params := TextureParams{Wrap: WrapRepeat, Filter: FilterLinear}

	for unit, src := range sources {

		img, err := h.Images.Load(src.Path)
		if err != nil {
			return &TextureError{Path: src.Path, Err: err}
		}

		if img == nil || img.Width <= 0 || img.Height <= 0 || len(img.Pix) != img.Width*img.Height*3 {
			return &TextureError{Path: src.Path, Err: ErrMalformedImage}
		}

		tex := driver.CreateTexture(unit, img, params)
		resources.push("texture "+src.Uniform, func() { driver.DeleteTexture(tex) })

		driver.SetUniformInt(driver.UniformLocation(program, src.Uniform), int32(unit))

		logging.Logger().Debug("texture bound", "path", src.Path, "unit", unit, "width", img.Width, "height", img.Height)

	}

	return nil

}
