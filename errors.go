package glpipe

import (
	"errors"
	"fmt"
)

// MaxInfoLog bounds the driver diagnostic log carried by compile and link errors.
const MaxInfoLog = 1024

// Precondition errors. They indicate a caller bug, not a driver failure.
var (
	ErrIncompleteStages = errors.New("program needs at least one vertex and one fragment stage")
	ErrReleased         = errors.New("resource already released")
	ErrNotBound         = errors.New("resource is not bound")
	ErrNoArrayBuffer    = errors.New("no buffer bound to ARRAY_BUFFER")
	ErrProgramNotActive = errors.New("program is not the active program")
	ErrInvalidAttribute = errors.New("invalid vertex attribute")
	ErrNoIndexType      = errors.New("element buffer has no index type")
	ErrDuplicateStage   = errors.New("stage passed more than once")
)

// CompileError is returned when the driver compiler rejects a stage source.
type CompileError struct {
	Kind StageKind
	Log  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Kind, e.Log)
}

// LinkError is returned when the driver rejects a program link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("shader program linking failed: %s", e.Log)
}

// ResourceError reports that the driver refused to allocate an object.
// It usually means the context was lost or exhausted; treat it as fatal.
type ResourceError struct {
	Resource string
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("driver failed to create %s", e.Resource)
}

// DriverError wraps a non-zero code from the driver error flag.
type DriverError struct {
	Code uint32
}

func (e *DriverError) Error() string {
	var name string
	switch e.Code {
	case InvalidEnum:
		name = "GL_INVALID_ENUM"
	case InvalidValue:
		name = "GL_INVALID_VALUE"
	case InvalidOperation:
		name = "GL_INVALID_OPERATION"
	case OutOfMemory:
		name = "GL_OUT_OF_MEMORY"
	default:
		name = "unknown"
	}
	return fmt.Sprintf("driver error %#x (%s)", e.Code, name)
}

// trimLog bounds a driver log and substitutes a placeholder for an empty one,
// so a failure never carries an empty diagnostic.
func trimLog(log string) string {
	for len(log) > 0 && (log[len(log)-1] == 0 || log[len(log)-1] == '\n') {
		log = log[:len(log)-1]
	}
	if len(log) > MaxInfoLog {
		log = log[:MaxInfoLog]
	}
	if log == "" {
		return "(driver returned an empty info log)"
	}
	return log
}
