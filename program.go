package glpipe

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Program is a linked shader program. A *Program only exists once linking
// succeeded, so every live Program is usable for draws.
type Program struct {
	ctx       *Context
	id        ProgramID
	locations map[string]int32
}

// Uniform is a resolved uniform reference. Location is -1 when the name does
// not exist in the linked program (possibly optimized away by the compiler).
type Uniform struct {
	Program  ProgramID
	Name     string
	Location int32
}

// Valid reports whether the uniform resolved to a real location.
func (u Uniform) Valid() bool { return u.Location != -1 }

// Link attaches stages to a new program, links it and detaches them again.
// At least one vertex and one fragment stage are required.
//
// The stages remain owned by the caller; they may be linked into other
// programs and must be released separately.
func Link(ctx *Context, stages ...*Stage) (*Program, error) {
	var vertex, fragment bool
	seen := make(map[ShaderID]bool, len(stages))
	for i, s := range stages {
		if s.Released() {
			return nil, fmt.Errorf("stage %d: %w", i, ErrReleased)
		}
		if seen[s.id] {
			return nil, fmt.Errorf("stage %d (shader %d): %w", i, s.id, ErrDuplicateStage)
		}
		seen[s.id] = true
		switch s.kind {
		case StageVertex:
			vertex = true
		case StageFragment:
			fragment = true
		}
	}
	if !vertex || !fragment {
		return nil, ErrIncompleteStages
	}

	id := ctx.drv.CreateProgram()
	if id == 0 {
		return nil, &ResourceError{Resource: "program"}
	}

	for _, s := range stages {
		ctx.drv.AttachShader(id, s.id)
	}
	ctx.drv.LinkProgram(id)
	for _, s := range stages {
		ctx.drv.DetachShader(id, s.id)
	}

	if !ctx.drv.ProgramLinkStatus(id) {
		log := trimLog(ctx.drv.ProgramInfoLog(id))
		ctx.drv.DeleteProgram(id)
		return nil, &LinkError{Log: log}
	}

	ctx.log.Info("shader program linked", "id", id, "stages", len(stages))
	return &Program{ctx: ctx, id: id, locations: make(map[string]int32)}, nil
}

// NewProgram compiles a vertex and a fragment source and links them. The
// intermediate stages are released whatever the outcome.
func NewProgram(ctx *Context, vertexSource, fragmentSource string) (*Program, error) {
	vs, err := CompileStage(ctx, StageVertex, vertexSource)
	if err != nil {
		return nil, err
	}
	defer vs.Release()
	fs, err := CompileStage(ctx, StageFragment, fragmentSource)
	if err != nil {
		return nil, err
	}
	defer fs.Release()
	return Link(ctx, vs, fs)
}

// ID returns the native handle, or 0 once released.
func (p *Program) ID() ProgramID { return p.id }

// Released reports whether the program has been deleted.
func (p *Program) Released() bool { return p == nil || p.id == 0 }

// Use makes p the active program of the context for subsequent draws.
// Only one program is active at a time.
func (p *Program) Use() error {
	if p.Released() {
		return ErrReleased
	}
	p.ctx.useProgram(p.id)
	return nil
}

// Active reports whether p is the context's active program.
func (p *Program) Active() bool {
	return !p.Released() && p.ctx.program == p.id
}

// UniformLocation returns the location of the named uniform, or -1.
// Results are cached; a missing uniform is not an error.
func (p *Program) UniformLocation(name string) int32 {
	if p.Released() {
		return -1
	}
	loc, ok := p.locations[name]
	if !ok {
		loc = p.ctx.drv.GetUniformLocation(p.id, name)
		p.locations[name] = loc
		if loc == -1 {
			p.ctx.log.Debug("uniform not found", "program", p.id, "name", name)
		}
	}
	return loc
}

// Uniform resolves name into a uniform reference.
func (p *Program) Uniform(name string) Uniform {
	return Uniform{Program: p.id, Name: name, Location: p.UniformLocation(name)}
}

// uniformTarget checks that u can be written. It returns false with a nil
// error when the write should be skipped because u did not resolve.
func (p *Program) uniformTarget(u Uniform) (bool, error) {
	if p.Released() {
		return false, ErrReleased
	}
	if !u.Valid() {
		return false, nil
	}
	if u.Program != p.id {
		return false, fmt.Errorf("uniform %q belongs to program %d, not %d", u.Name, u.Program, p.id)
	}
	if !p.Active() {
		return false, fmt.Errorf("set uniform %q: %w", u.Name, ErrProgramNotActive)
	}
	return true, nil
}

// SetInt writes an int (or sampler) uniform. p must be active.
func (p *Program) SetInt(u Uniform, v int32) error {
	ok, err := p.uniformTarget(u)
	if ok {
		p.ctx.drv.Uniform1i(u.Location, v)
	}
	return err
}

// SetFloat writes a float uniform. p must be active.
func (p *Program) SetFloat(u Uniform, v float32) error {
	ok, err := p.uniformTarget(u)
	if ok {
		p.ctx.drv.Uniform1f(u.Location, v)
	}
	return err
}

// SetVec3 writes a vec3 uniform. p must be active.
func (p *Program) SetVec3(u Uniform, v mgl32.Vec3) error {
	ok, err := p.uniformTarget(u)
	if ok {
		p.ctx.drv.Uniform3f(u.Location, v[0], v[1], v[2])
	}
	return err
}

// SetVec4 writes a vec4 uniform. p must be active.
func (p *Program) SetVec4(u Uniform, v mgl32.Vec4) error {
	ok, err := p.uniformTarget(u)
	if ok {
		p.ctx.drv.Uniform4f(u.Location, v[0], v[1], v[2], v[3])
	}
	return err
}

// SetMat4 writes a column-major mat4 uniform. p must be active.
func (p *Program) SetMat4(u Uniform, m mgl32.Mat4) error {
	ok, err := p.uniformTarget(u)
	if ok {
		p.ctx.drv.UniformMatrix4fv(u.Location, m)
	}
	return err
}

// Release deletes the program. Safe to call more than once.
func (p *Program) Release() {
	if p.Released() {
		return
	}
	p.ctx.drv.DeleteProgram(p.id)
	p.ctx.forgetProgram(p.id)
	p.ctx.log.Debug("program released", "id", p.id)
	p.id = 0
}
