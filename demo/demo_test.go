package demo_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/glpipe"
	"github.com/go-theft-auto/glpipe/config"
	"github.com/go-theft-auto/glpipe/demo"
	"github.com/go-theft-auto/glpipe/fakegl"
)

func newContext() (*glpipe.Context, *fakegl.Driver) {
	drv := fakegl.New()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return glpipe.NewContext(drv, glpipe.WithLogger(log)), drv
}

func TestGLSLVersion(t *testing.T) {
	assert.Equal(t, "#version 410 core", demo.GLSLVersion(config.Default().GL))
	assert.Equal(t, "#version 330", demo.GLSLVersion(config.GL{Major: 3, Minor: 3}))
}

func TestShapes_Frame(t *testing.T) {
	ctx, drv := newContext()
	scene, err := demo.Build(ctx, config.SceneShapes, config.Default().GL)
	require.NoError(t, err)
	require.Len(t, scene.Drawables, 2)
	assert.Equal(t, glpipe.ClearColor, scene.ClearMask)

	win := fakegl.NewWindow(1000, 1000)
	loop := glpipe.NewFrameLoop(ctx, win,
		glpipe.WithClearMask(scene.ClearMask),
		glpipe.WithDrawables(scene.Drawables...),
		glpipe.WithErrorCheck(true),
		glpipe.WithMaxFrames(1),
	)
	require.NoError(t, loop.Run())
	assert.Equal(t, 1, win.Swaps())

	draws := drv.Draws()
	require.Len(t, draws, 2)

	quad := draws[0]
	assert.True(t, quad.Indexed)
	assert.Equal(t, []uint32{0, 1, 2, 1, 2, 3}, quad.Indices)
	require.Len(t, quad.Invocations, 6)
	// Bottom right vertex is white.
	assert.Equal(t, []float32{-0.25, -0.75, 0.0}, quad.Invocations[5].Attribs[0])
	assert.Equal(t, []float32{1, 1, 1}, quad.Invocations[5].Attribs[1])

	tri := draws[1]
	assert.False(t, tri.Indexed)
	require.Len(t, tri.Invocations, 3)
	assert.Equal(t, []float32{0.5, 0.6, 0.0}, tri.Invocations[0].Attribs[0])
	assert.Equal(t, demo.OurColor[:], tri.Uniforms["ourColor"])
	ident := mgl32.Ident4()
	assert.Equal(t, ident[:], tri.Uniforms["transform"])

	scene.Release()
	scene.Release()
	assert.Equal(t, fakegl.Counts{}, drv.Live())
}

func TestShapes_ReleasesOnError(t *testing.T) {
	ctx, drv := newContext()
	drv.FailVertexArray = true

	scene, err := demo.Shapes(ctx, demo.GLSLVersion(config.Default().GL))
	var rerr *glpipe.ResourceError
	require.ErrorAs(t, err, &rerr)
	assert.Nil(t, scene)
	assert.Equal(t, fakegl.Counts{}, drv.Live())
}

func TestShapes_BadVersion(t *testing.T) {
	ctx, drv := newContext()

	_, err := demo.Shapes(ctx, "")
	var cerr *glpipe.CompileError
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, err.Error(), "shapes program")
	assert.Equal(t, fakegl.Counts{}, drv.Live())
}

func TestClear(t *testing.T) {
	ctx, drv := newContext()
	scene, err := demo.Build(ctx, config.SceneClear, config.Default().GL)
	require.NoError(t, err)
	defer scene.Release()

	assert.Equal(t, glpipe.ClearDepth, scene.ClearMask)
	assert.Empty(t, scene.Drawables)

	win := fakegl.NewWindow(1000, 1000)
	loop := glpipe.NewFrameLoop(ctx, win, glpipe.WithClearMask(scene.ClearMask), glpipe.WithMaxFrames(2))
	require.NoError(t, loop.Run())
	assert.Equal(t, []glpipe.ClearMask{glpipe.ClearDepth, glpipe.ClearDepth}, drv.Clears())
	assert.Empty(t, drv.Draws())
}

func TestBuild_UnknownScene(t *testing.T) {
	ctx, _ := newContext()
	_, err := demo.Build(ctx, "cube", config.Default().GL)
	assert.Error(t, err)
}
