package harness

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidScene   = errors.New("invalid scene")
	ErrMalformedImage = errors.New("decoded image is not packed RGB")
)

// SetupError reports a failure while acquiring the window, context or geometry.
type SetupError struct {
	Phase string
	Err   error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("setup failed during %s: %v", e.Phase, e.Err)
}

func (e *SetupError) Unwrap() error { return e.Err }

type ShaderError struct {
	Stage Stage
	Log   string
}

func (e *ShaderError) Error() string {

	if e.Log == "" {
		return fmt.Sprintf("%s shader failed to compile", e.Stage)
	}

	return fmt.Sprintf("%s shader failed to compile: %s", e.Stage, e.Log)

}

type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link program: %s", e.Log)
}

type TextureError struct {
	Path string
	Err  error
}

func (e *TextureError) Error() string {
	return fmt.Sprintf("texture %q: %v", e.Path, e.Err)
}

func (e *TextureError) Unwrap() error { return e.Err }

// DrawError is a driver error observed after a frame was submitted.
type DrawError struct {
	Frame int
	Err   error
}

func (e *DrawError) Error() string {
	return fmt.Sprintf("frame %d: %v", e.Frame, e.Err)
}

func (e *DrawError) Unwrap() error { return e.Err }
