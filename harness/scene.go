package harness

import (
	"fmt"
	"time"
)

type TextureSource struct {
	// Uniform is the sampler the texture unit is assigned to.
	Uniform string
	Path    string
}

// FrameUniform is a float uniform recomputed from elapsed time every frame.
type FrameUniform struct {
	Name  string
	Value func(elapsed time.Duration) float32
}

// Scene describes one configuration of the harness: the static geometry,
// the program that draws it, and the optional textures and frame uniform.
type Scene struct {
	Name string

	Vertices []float32
	Layout   VertexLayout
	// Indices selects indexed drawing when non-empty.
	Indices []uint32

	VertexShader   string
	FragmentShader string
	FragOutput     string

	Textures []TextureSource
	Uniform  *FrameUniform
}

func (s *Scene) VertexCount() int {

	per := s.Layout.FloatsPerVertex()
	if per == 0 {
		return 0
	}

	return len(s.Vertices) / per

}

func (s *Scene) Indexed() bool {
	return len(s.Indices) > 0
}

// DrawCount is the number of vertices or indices submitted per frame.
func (s *Scene) DrawCount() int {

	if s.Indexed() {
		return len(s.Indices)
	}

	return s.VertexCount()

}

func (s *Scene) Validate() error {

	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w %q: %s", ErrInvalidScene, s.Name, fmt.Sprintf(format, args...))
	}

	if len(s.Layout.Attributes) == 0 || s.Layout.Stride == 0 {
		return invalid("empty vertex layout")
	}

	per := s.Layout.FloatsPerVertex()

	if len(s.Vertices) == 0 || len(s.Vertices)%per != 0 {
		return invalid("%d floats is not a whole number of %d-float vertices", len(s.Vertices), per)
	}

	if s.Indexed() && len(s.Indices)%3 != 0 {
		return invalid("%d indices do not form whole triangles", len(s.Indices))
	}

	if !s.Indexed() && s.VertexCount()%3 != 0 {
		return invalid("%d vertices do not form whole triangles", s.VertexCount())
	}

	for i, idx := range s.Indices {
		if int(idx) >= s.VertexCount() {
			return invalid("index %d refers to vertex %d of %d", i, idx, s.VertexCount())
		}
	}

	if s.VertexShader == "" || s.FragmentShader == "" {
		return invalid("missing shader source")
	}

	if s.FragOutput == "" {
		return invalid("missing fragment output name")
	}

	for _, tex := range s.Textures {
		if tex.Uniform == "" || tex.Path == "" {
			return invalid("texture needs both a sampler uniform and a path")
		}
	}

	if s.Uniform != nil && (s.Uniform.Name == "" || s.Uniform.Value == nil) {
		return invalid("frame uniform needs a name and a value function")
	}

	return nil

}
