package glpipe_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/glpipe"
	"github.com/go-theft-auto/glpipe/fakegl"
)

const vertexSource = `#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;

out vec3 vertexColor;

uniform vec4 offset;

void main() {
    gl_Position = vec4(aPos, 1.0) + offset;
    vertexColor = aColor;
}
`

const fragmentSource = `#version 410 core
in vec3 vertexColor;

out vec4 FragColor;

uniform float alpha;
uniform vec4 unused;

void main() {
    FragColor = vec4(vertexColor, alpha);
}
`

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newContext(t *testing.T) (*glpipe.Context, *fakegl.Driver) {
	t.Helper()
	drv := fakegl.New()
	return glpipe.NewContext(drv, glpipe.WithLogger(quietLogger())), drv
}

func newProgram(t *testing.T, ctx *glpipe.Context) *glpipe.Program {
	t.Helper()
	p, err := glpipe.NewProgram(ctx, vertexSource, fragmentSource)
	require.NoError(t, err)
	t.Cleanup(p.Release)
	return p
}

// newInterleaved builds a layout over 4 vertices of position+color.
func newInterleaved(t *testing.T, ctx *glpipe.Context) (*glpipe.VertexLayout, *glpipe.Buffer) {
	t.Helper()
	vertices := []float32{
		-0.5, -0.25, 0.0, 0.7, 0.2, 0.2,
		0.0, -0.25, 0.0, 0.2, 0.7, 0.2,
		-0.75, -0.75, 0.0, 0.2, 0.2, 0.7,
		-0.25, -0.75, 0.0, 1.0, 1.0, 1.0,
	}
	vbo, err := glpipe.NewBuffer(ctx, glpipe.TargetArray)
	require.NoError(t, err)
	t.Cleanup(vbo.Release)
	require.NoError(t, vbo.Load(glpipe.Float32Bytes(vertices), glpipe.UsageStatic))

	vao, err := glpipe.NewVertexLayout(ctx)
	require.NoError(t, err)
	t.Cleanup(vao.Release)
	require.NoError(t, vao.Attach(vbo,
		glpipe.Attribute{Slot: 0, Components: 3, Type: glpipe.TypeFloat, Stride: 24},
		glpipe.Attribute{Slot: 1, Components: 3, Type: glpipe.TypeFloat, Stride: 24, Offset: 12},
	))
	return vao, vbo
}
