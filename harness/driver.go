package harness

import "time"

// Handle names an object owned by the graphics driver.
type Handle uint32

type Stage int

const (
	VertexStage Stage = iota
	FragmentStage
)

func (s Stage) String() string {

	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}

	return "unknown"

}

type BufferTarget int

const (
	ArrayBuffer BufferTarget = iota
	ElementArrayBuffer
)

type WrapMode int

const (
	WrapRepeat WrapMode = iota
	WrapClampToEdge
)

type FilterMode int

const (
	FilterLinear FilterMode = iota
	FilterNearest
)

type TextureParams struct {
	Wrap   WrapMode
	Filter FilterMode
}

// Image is a decoded picture in tightly packed 8-bit RGB.
type Image struct {
	Width  int
	Height int
	Pix    []byte
}

type EventKind int

const (
	EventNone EventKind = iota
	EventQuit
	EventOther
)

type Event struct {
	Kind EventKind
}

type WindowConfig struct {
	Title  string
	X, Y   int
	Width  int
	Height int

	ContextMajor      int
	ContextMinor      int
	CoreProfile       bool
	ForwardCompatible bool
	StencilBits       int
}

// Platform is the windowing subsystem.
type Platform interface {
	Init() error
	CreateWindow(cfg WindowConfig) (Window, error)
	// Elapsed reports the time since Init.
	Elapsed() time.Duration
	Terminate()
}

// Window owns the native window and its rendering context.
type Window interface {
	// LoadDriver makes the context current and loads the graphics entry points.
	LoadDriver() (Driver, error)
	// PollEvent drains at most one pending event without blocking.
	PollEvent() Event
	Present()
	Destroy()
}

// Driver is the subset of the graphics API the harness issues.
type Driver interface {
	CreateVertexArray() Handle
	DeleteVertexArray(vao Handle)

	// CreateBuffer allocates a buffer and uploads data once with a static usage hint.
	CreateBuffer(target BufferTarget, data []byte) Handle
	DeleteBuffer(buf Handle)

	CompileShader(stage Stage, source string) (Handle, error)
	DeleteShader(shader Handle)

	// LinkProgram attaches the shaders, binds fragOutput to color slot 0 and links.
	LinkProgram(shaders []Handle, fragOutput string) (Handle, error)
	UseProgram(program Handle)
	DeleteProgram(program Handle)

	AttribLocation(program Handle, name string) int32
	VertexAttrib(location int32, components, stride, offset int)
	UniformLocation(program Handle, name string) int32
	SetUniformInt(location int32, v int32)
	SetUniformFloat(location int32, v float32)

	CreateTexture(unit int, img *Image, params TextureParams) Handle
	DeleteTexture(tex Handle)

	Clear(r, g, b, a float32)
	DrawArrays(count int)
	DrawElements(count int)

	// Err returns the first pending driver error, if any.
	Err() error
}

type ImageLoader interface {
	Load(path string) (*Image, error)
}
