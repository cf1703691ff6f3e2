package glpipe_test

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/glpipe"
)

func TestLink_Valid(t *testing.T) {
	ctx, drv := newContext(t)

	vs, err := glpipe.CompileStage(ctx, glpipe.StageVertex, vertexSource)
	require.NoError(t, err)
	defer vs.Release()
	fs, err := glpipe.CompileStage(ctx, glpipe.StageFragment, fragmentSource)
	require.NoError(t, err)
	defer fs.Release()

	p, err := glpipe.Link(ctx, vs, fs)
	require.NoError(t, err)
	defer p.Release()

	assert.NotZero(t, p.ID())
	assert.False(t, p.Active())

	// Stages are detached but stay alive for the caller.
	assert.Empty(t, drv.Attached(p.ID()))
	assert.False(t, vs.Released())
	assert.Equal(t, 2, drv.Live().Shaders)
	assert.Equal(t, 1, drv.Live().Programs)

	vs.Release()
	fs.Release()
	assert.Equal(t, 0, drv.Live().Shaders)
	assert.Equal(t, 1, drv.Live().Programs)
}

func TestLink_ReuseStages(t *testing.T) {
	ctx, drv := newContext(t)

	vs, err := glpipe.CompileStage(ctx, glpipe.StageVertex, vertexSource)
	require.NoError(t, err)
	defer vs.Release()
	fs, err := glpipe.CompileStage(ctx, glpipe.StageFragment, fragmentSource)
	require.NoError(t, err)
	defer fs.Release()

	a, err := glpipe.Link(ctx, vs, fs)
	require.NoError(t, err)
	defer a.Release()
	b, err := glpipe.Link(ctx, vs, fs)
	require.NoError(t, err)
	defer b.Release()

	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, 2, drv.Live().Programs)
	assert.NoError(t, ctx.CheckError())
}

func TestNewProgram_ReleasesStages(t *testing.T) {
	ctx, drv := newContext(t)
	p := newProgram(t, ctx)

	assert.NotZero(t, p.ID())
	assert.Equal(t, 0, drv.Live().Shaders)
}

func TestLink_IncompleteStages(t *testing.T) {
	ctx, drv := newContext(t)

	vs, err := glpipe.CompileStage(ctx, glpipe.StageVertex, vertexSource)
	require.NoError(t, err)
	defer vs.Release()

	p, err := glpipe.Link(ctx, vs)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, glpipe.ErrIncompleteStages)
	assert.Equal(t, 0, drv.Live().Programs)
	assert.Equal(t, 1, drv.Live().Shaders)
}

func TestLink_ReleasedStage(t *testing.T) {
	ctx, _ := newContext(t)

	vs, err := glpipe.CompileStage(ctx, glpipe.StageVertex, vertexSource)
	require.NoError(t, err)
	fs, err := glpipe.CompileStage(ctx, glpipe.StageFragment, fragmentSource)
	require.NoError(t, err)
	defer vs.Release()
	fs.Release()

	_, err = glpipe.Link(ctx, vs, fs)
	assert.ErrorIs(t, err, glpipe.ErrReleased)
	assert.False(t, vs.Released())

	_, err = glpipe.Link(ctx, vs, nil)
	assert.ErrorIs(t, err, glpipe.ErrReleased)
}

func TestLink_DuplicateStage(t *testing.T) {
	ctx, drv := newContext(t)

	vs, err := glpipe.CompileStage(ctx, glpipe.StageVertex, vertexSource)
	require.NoError(t, err)
	defer vs.Release()
	fs, err := glpipe.CompileStage(ctx, glpipe.StageFragment, fragmentSource)
	require.NoError(t, err)
	defer fs.Release()

	p, err := glpipe.Link(ctx, vs, vs, fs)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, glpipe.ErrDuplicateStage)
	assert.Contains(t, err.Error(), "stage 1")

	// Rejected before any driver call.
	assert.Equal(t, 0, drv.Live().Programs)
	assert.NoError(t, ctx.CheckError())
	assert.False(t, vs.Released())

	p, err = glpipe.Link(ctx, vs, fs)
	require.NoError(t, err)
	defer p.Release()
	assert.NoError(t, ctx.CheckError())
}

func TestLink_InterfaceMismatch(t *testing.T) {
	ctx, drv := newContext(t)

	fragment := `#version 410 core
in vec4 vertexColor;
out vec4 FragColor;
void main() { FragColor = vertexColor; }
`
	_, err := glpipe.NewProgram(ctx, vertexSource, fragment)
	require.Error(t, err)

	var lerr *glpipe.LinkError
	require.True(t, errors.As(err, &lerr))
	assert.Contains(t, lerr.Log, "vertexColor")
	assert.Equal(t, 0, drv.Live().Programs)
	assert.Equal(t, 0, drv.Live().Shaders)
}

func TestLink_MissingOutput(t *testing.T) {
	ctx, _ := newContext(t)

	fragment := `#version 410 core
in vec3 normal;
out vec4 FragColor;
void main() { FragColor = vec4(normal, 1.0); }
`
	_, err := glpipe.NewProgram(ctx, vertexSource, fragment)
	var lerr *glpipe.LinkError
	require.ErrorAs(t, err, &lerr)
	assert.NotEmpty(t, lerr.Log)
}

func TestLink_ResourceError(t *testing.T) {
	ctx, drv := newContext(t)
	drv.FailProgram = true

	_, err := glpipe.NewProgram(ctx, vertexSource, fragmentSource)
	var rerr *glpipe.ResourceError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, 0, drv.Live().Shaders)
}

func TestNewProgram_FragmentCompileError(t *testing.T) {
	ctx, drv := newContext(t)

	_, err := glpipe.NewProgram(ctx, vertexSource, "#version 410 core\nvoid main() {")
	var cerr *glpipe.CompileError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, glpipe.StageFragment, cerr.Kind)

	// The vertex stage does not leak.
	assert.Equal(t, 0, drv.Live().Shaders)
}

func TestProgram_Use(t *testing.T) {
	ctx, drv := newContext(t)
	a := newProgram(t, ctx)
	b := newProgram(t, ctx)

	require.NoError(t, a.Use())
	assert.True(t, a.Active())
	assert.Equal(t, a.ID(), ctx.ActiveProgram())
	assert.Equal(t, a.ID(), drv.CurrentProgram())

	require.NoError(t, b.Use())
	assert.False(t, a.Active())
	assert.True(t, b.Active())

	b.Release()
	assert.Zero(t, ctx.ActiveProgram())
	assert.Zero(t, drv.CurrentProgram())
	assert.ErrorIs(t, b.Use(), glpipe.ErrReleased)
}

func TestProgram_UniformLocation(t *testing.T) {
	ctx, _ := newContext(t)
	p := newProgram(t, ctx)

	assert.Equal(t, int32(0), p.UniformLocation("offset"))
	assert.Equal(t, int32(1), p.UniformLocation("alpha"))

	// Declared but unreferenced, then never declared.
	assert.Equal(t, int32(-1), p.UniformLocation("unused"))
	assert.Equal(t, int32(-1), p.UniformLocation("doesNotExist"))

	u := p.Uniform("doesNotExist")
	assert.False(t, u.Valid())
	assert.Equal(t, p.ID(), u.Program)
}

func TestProgram_SetUniforms(t *testing.T) {
	ctx, drv := newContext(t)
	p := newProgram(t, ctx)
	require.NoError(t, p.Use())

	require.NoError(t, p.SetVec4(p.Uniform("offset"), mgl32.Vec4{0.1, 0.2, 0.3, 0}))
	require.NoError(t, p.SetFloat(p.Uniform("alpha"), 0.5))

	assert.Equal(t, []float32{0.1, 0.2, 0.3, 0}, drv.UniformValue(p.ID(), "offset"))
	assert.Equal(t, []float32{0.5}, drv.UniformValue(p.ID(), "alpha"))
	require.NoError(t, ctx.CheckError())
}

func TestProgram_SetMissingUniformIsNoop(t *testing.T) {
	ctx, drv := newContext(t)
	p := newProgram(t, ctx)
	require.NoError(t, p.Use())
	require.NoError(t, p.SetFloat(p.Uniform("alpha"), 0.25))

	drv.ResetCalls()
	missing := p.Uniform("doesNotExist")
	assert.NoError(t, p.SetFloat(missing, 1))
	assert.NoError(t, p.SetVec3(missing, mgl32.Vec3{1, 2, 3}))
	assert.NoError(t, p.SetVec4(missing, mgl32.Vec4{1, 2, 3, 4}))
	assert.NoError(t, p.SetMat4(missing, mgl32.Ident4()))
	assert.NoError(t, p.SetInt(missing, 7))

	assert.Empty(t, drv.Calls())
	assert.Equal(t, []float32{0.25}, drv.UniformValue(p.ID(), "alpha"))
	assert.NoError(t, ctx.CheckError())
}

func TestProgram_SetUniformNotActive(t *testing.T) {
	ctx, drv := newContext(t)
	p := newProgram(t, ctx)

	err := p.SetFloat(p.Uniform("alpha"), 0.5)
	assert.ErrorIs(t, err, glpipe.ErrProgramNotActive)
	assert.Nil(t, drv.UniformValue(p.ID(), "alpha"))
}

func TestProgram_SetUniformOfOtherProgram(t *testing.T) {
	ctx, _ := newContext(t)
	a := newProgram(t, ctx)
	b := newProgram(t, ctx)
	require.NoError(t, b.Use())

	err := b.SetFloat(a.Uniform("alpha"), 0.5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "belongs to program")
}

func TestProgram_UniformsPersistAcrossUse(t *testing.T) {
	ctx, drv := newContext(t)
	a := newProgram(t, ctx)
	b := newProgram(t, ctx)

	require.NoError(t, a.Use())
	require.NoError(t, a.SetFloat(a.Uniform("alpha"), 0.75))
	require.NoError(t, b.Use())
	require.NoError(t, b.SetFloat(b.Uniform("alpha"), 0.1))

	assert.Equal(t, []float32{0.75}, drv.UniformValue(a.ID(), "alpha"))
	assert.Equal(t, []float32{0.1}, drv.UniformValue(b.ID(), "alpha"))
}

func TestProgram_ReleaseTwice(t *testing.T) {
	ctx, drv := newContext(t)
	p, err := glpipe.NewProgram(ctx, vertexSource, fragmentSource)
	require.NoError(t, err)

	p.Release()
	p.Release()
	assert.Equal(t, 0, drv.Live().Programs)
	assert.Equal(t, int32(-1), p.UniformLocation("alpha"))
	assert.ErrorIs(t, p.SetFloat(glpipe.Uniform{Location: 1}, 1), glpipe.ErrReleased)
}
