package types

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"runtime/debug"

	Log "GLTutorial/logging"

	"github.com/go-gl/gl/v3.2-core/gl"
)

var (
	ErrInvalidEnum        = errors.New("GL_INVALID_ENUM")
	ErrInvalidValue       = errors.New("GL_INVALID_VALUE")
	ErrInvalidOperation   = errors.New("GL_INVALID_OPERATION")
	ErrInvalidFramebuffer = errors.New("GL_INVALID_FRAMEBUFFER_OPERATION")
	ErrOutOfMemory        = errors.New("GL_OUT_OF_MEMORY")
)

// glError drains the GL error queue and reports the first entry.
func glError() error {

	var first error

	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		if first == nil {
			first = glErrorFor(code)
		}
	}

	return first

}

func glErrorFor(code uint32) error {

	switch code {
	case gl.INVALID_ENUM:
		return ErrInvalidEnum
	case gl.INVALID_VALUE:
		return ErrInvalidValue
	case gl.INVALID_OPERATION:
		return ErrInvalidOperation
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return ErrInvalidFramebuffer
	case gl.OUT_OF_MEMORY:
		return ErrOutOfMemory
	}

	return fmt.Errorf("GL error 0x%04x", code)

}

// CheckError exits with status 1 when err is set. The stack is only printed
// with debug logging on.
func CheckError(err error) {

	if err != nil {

		if Log.Logger().Enabled(context.Background(), slog.LevelDebug) {
			fmt.Println(string(debug.Stack()))
		}

		log.Fatalln("Error has occured:", err.Error())

	}

}
