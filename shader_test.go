package glpipe_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/glpipe"
	"github.com/go-theft-auto/glpipe/fakegl"
)

func TestCompileStage_Valid(t *testing.T) {
	ctx, drv := newContext(t)

	vs, err := glpipe.CompileStage(ctx, glpipe.StageVertex, vertexSource)
	require.NoError(t, err)
	assert.NotZero(t, vs.ID())
	assert.Equal(t, glpipe.StageVertex, vs.Kind())
	assert.Equal(t, 1, drv.Live().Shaders)

	vs.Release()
	assert.True(t, vs.Released())
	assert.Equal(t, 0, drv.Live().Shaders)
}

func TestCompileStage_AppendsTerminator(t *testing.T) {
	ctx, _ := newContext(t)

	// The fake compiler rejects sources without a NUL terminator.
	_, err := glpipe.CompileStage(ctx, glpipe.StageFragment, fragmentSource)
	require.NoError(t, err)

	_, err = glpipe.CompileStage(ctx, glpipe.StageFragment, fragmentSource+"\x00")
	require.NoError(t, err)
}

func TestCompileStage_InvalidSource(t *testing.T) {
	sources := map[string]string{
		"unbalanced braces": "#version 410 core\nvoid main() {\n",
		"no main":           "#version 410 core\nout vec4 c;\n",
		"no version":        "void main() {}\n",
		"error directive":   "#version 410 core\n#error broken on purpose\nvoid main() {}\n",
	}
	for _, kind := range []glpipe.StageKind{glpipe.StageVertex, glpipe.StageFragment} {
		for name, src := range sources {
			t.Run(kind.String()+"/"+name, func(t *testing.T) {
				ctx, drv := newContext(t)

				st, err := glpipe.CompileStage(ctx, kind, src)
				require.Error(t, err)
				assert.Nil(t, st)

				var cerr *glpipe.CompileError
				require.True(t, errors.As(err, &cerr))
				assert.Equal(t, kind, cerr.Kind)
				assert.NotEmpty(t, cerr.Log)
				assert.Contains(t, err.Error(), kind.String())

				// No handle escapes a failed compile.
				assert.Equal(t, 0, drv.Live().Shaders)
			})
		}
	}
}

func TestCompileStage_ErrorLogVerbatim(t *testing.T) {
	ctx, _ := newContext(t)

	_, err := glpipe.CompileStage(ctx, glpipe.StageVertex, "#version 410 core\n#error custom diagnostic\nvoid main() {}")
	var cerr *glpipe.CompileError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "0:2(1): error: #error custom diagnostic", cerr.Log)
}

// longLogDriver reports an oversized info log for every shader.
type longLogDriver struct {
	*fakegl.Driver
}

func (d longLogDriver) ShaderInfoLog(glpipe.ShaderID) string {
	return strings.Repeat("x", 4*glpipe.MaxInfoLog)
}

func (d longLogDriver) ShaderCompileStatus(glpipe.ShaderID) bool { return false }

func TestCompileStage_LogTruncated(t *testing.T) {
	drv := longLogDriver{fakegl.New()}
	ctx := glpipe.NewContext(drv, glpipe.WithLogger(quietLogger()))

	_, err := glpipe.CompileStage(ctx, glpipe.StageVertex, vertexSource)
	var cerr *glpipe.CompileError
	require.ErrorAs(t, err, &cerr)
	assert.Len(t, cerr.Log, glpipe.MaxInfoLog)
	assert.Equal(t, 0, drv.Live().Shaders)
}

func TestCompileStage_ResourceError(t *testing.T) {
	ctx, drv := newContext(t)
	drv.FailShader = true

	_, err := glpipe.CompileStage(ctx, glpipe.StageVertex, vertexSource)
	var rerr *glpipe.ResourceError
	require.ErrorAs(t, err, &rerr)
	assert.Contains(t, rerr.Resource, "vertex")
}

func TestStage_ReleaseTwice(t *testing.T) {
	ctx, drv := newContext(t)

	vs, err := glpipe.CompileStage(ctx, glpipe.StageVertex, vertexSource)
	require.NoError(t, err)

	drv.ResetCalls()
	vs.Release()
	vs.Release()
	assert.Equal(t, []string{"DeleteShader(1)"}, drv.Calls())
	assert.Zero(t, vs.ID())
}
