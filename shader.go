package glpipe

import "strings"

// Stage is a compiled shader object for one pipeline stage.
type Stage struct {
	ctx  *Context
	id   ShaderID
	kind StageKind
}

// CompileStage compiles source for the given stage. The source is passed to
// the driver NUL-terminated; a terminator is appended when missing.
//
// Compilation never partially succeeds: on failure the shader object is
// deleted and a *CompileError carrying the driver log is returned.
func CompileStage(ctx *Context, kind StageKind, source string) (*Stage, error) {
	id := ctx.drv.CreateShader(kind)
	if id == 0 {
		return nil, &ResourceError{Resource: kind.String() + " shader"}
	}

	if !strings.HasSuffix(source, "\x00") {
		source += "\x00"
	}
	ctx.drv.ShaderSource(id, source)
	ctx.drv.CompileShader(id)

	if !ctx.drv.ShaderCompileStatus(id) {
		log := trimLog(ctx.drv.ShaderInfoLog(id))
		ctx.drv.DeleteShader(id)
		return nil, &CompileError{Kind: kind, Log: log}
	}

	ctx.log.Debug("shader compiled", "kind", kind, "id", id)
	return &Stage{ctx: ctx, id: id, kind: kind}, nil
}

// ID returns the native handle, or 0 once released.
func (s *Stage) ID() ShaderID { return s.id }

// Kind returns the stage kind.
func (s *Stage) Kind() StageKind { return s.kind }

// Released reports whether the shader object has been deleted.
func (s *Stage) Released() bool { return s == nil || s.id == 0 }

// Release deletes the shader object. Safe to call more than once.
func (s *Stage) Release() {
	if s.Released() {
		return
	}
	s.ctx.drv.DeleteShader(s.id)
	s.ctx.log.Debug("shader released", "kind", s.kind, "id", s.id)
	s.id = 0
}
