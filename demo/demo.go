// Package demo builds the scenes of the triangle program: an indexed,
// vertex-colored parallelogram next to a uniform-colored triangle, and a
// minimal depth-clear scene with nothing to draw.
package demo

import (
	"embed"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/glpipe"
	"github.com/go-theft-auto/glpipe/config"
)

//go:embed shaders
var shaderFS embed.FS

// OurColor is the color of the triangle in the shapes scene.
var OurColor = mgl32.Vec4{1.0, 0.6, 0.93, 1.0}

// Parallelogram vertices: position (3 floats) then color (3 floats).
var parallelogramVertices = []float32{
	-0.5, -0.25, 0.0, 0.7, 0.2, 0.2, // top left
	0.0, -0.25, 0.0, 0.2, 0.7, 0.2, // top right
	-0.75, -0.75, 0.0, 0.2, 0.2, 0.7, // bottom left
	-0.25, -0.75, 0.0, 1.0, 1.0, 1.0, // bottom right
}

var parallelogramIndices = []uint32{
	0, 1, 2,
	1, 2, 3,
}

var triangleVertices = []float32{
	0.5, 0.6, 0.0,
	0.3, 0.3, 0.0,
	0.7, 0.3, 0.0,
}

// Scene is a set of drawables with the resources backing them.
type Scene struct {
	Name      string
	ClearMask glpipe.ClearMask
	Drawables []*glpipe.Drawable

	resources *glpipe.ResourceSet
}

// Release frees every GPU resource of the scene.
func (s *Scene) Release() {
	if s.resources != nil {
		s.resources.Release()
	}
}

// GLSLVersion returns the #version directive matching a GL context version,
// e.g. "#version 410 core".
func GLSLVersion(gc config.GL) string {
	profile := ""
	if gc.Core {
		profile = " core"
	}
	return fmt.Sprintf("#version %d%d0%s", gc.Major, gc.Minor, profile)
}

// Build creates the named scene.
func Build(ctx *glpipe.Context, name string, gc config.GL) (*Scene, error) {
	switch name {
	case config.SceneShapes:
		return Shapes(ctx, GLSLVersion(gc))
	case config.SceneClear:
		return Clear(), nil
	default:
		return nil, fmt.Errorf("unknown scene %q", name)
	}
}

// Clear is the minimal scene: depth clear only, no drawables.
func Clear() *Scene {
	return &Scene{Name: config.SceneClear, ClearMask: glpipe.ClearDepth}
}

// Shapes builds the parallelogram and triangle scene. On error every
// resource created so far is released.
func Shapes(ctx *glpipe.Context, version string) (*Scene, error) {
	var rs glpipe.ResourceSet
	defer rs.Release()

	colored, err := loadProgram(ctx, version, "shapes")
	if err != nil {
		return nil, err
	}
	rs.Add(colored)

	quad, quadIdx, err := parallelogram(ctx, &rs)
	if err != nil {
		return nil, err
	}

	flat, err := loadProgram(ctx, version, "triangle")
	if err != nil {
		return nil, err
	}
	rs.Add(flat)

	// Uniform values persist in the program, so they are set once here.
	if err := flat.Use(); err != nil {
		return nil, err
	}
	color := flat.Uniform("ourColor")
	ctx.Logger().Info("uniform location", "name", color.Name, "location", color.Location)
	if err := flat.SetVec4(color, OurColor); err != nil {
		return nil, err
	}
	if err := flat.SetMat4(flat.Uniform("transform"), mgl32.Ident4()); err != nil {
		return nil, err
	}

	tri, err := triangle(ctx, &rs)
	if err != nil {
		return nil, err
	}

	return &Scene{
		Name:      config.SceneShapes,
		ClearMask: glpipe.ClearColor,
		Drawables: []*glpipe.Drawable{
			{
				Name:      "parallelogram",
				Program:   colored,
				Layout:    quad,
				Primitive: glpipe.Triangles,
				Indices:   quadIdx,
			},
			{
				Name:      "triangle",
				Program:   flat,
				Layout:    tri,
				Primitive: glpipe.Triangles,
				Count:     int32(len(triangleVertices) / 3),
			},
		},
		resources: rs.Detach(),
	}, nil
}

func loadProgram(ctx *glpipe.Context, version, name string) (*glpipe.Program, error) {
	vs, err := shaderFS.ReadFile("shaders/" + name + ".vert")
	if err != nil {
		return nil, err
	}
	fs, err := shaderFS.ReadFile("shaders/" + name + ".frag")
	if err != nil {
		return nil, err
	}
	p, err := glpipe.NewProgram(ctx, version+"\n"+string(vs), version+"\n"+string(fs))
	if err != nil {
		return nil, fmt.Errorf("%s program: %w", name, err)
	}
	return p, nil
}

func parallelogram(ctx *glpipe.Context, rs *glpipe.ResourceSet) (*glpipe.VertexLayout, *glpipe.Buffer, error) {
	vbo, err := glpipe.NewBuffer(ctx, glpipe.TargetArray)
	if err != nil {
		return nil, nil, err
	}
	rs.Add(vbo)
	if err := vbo.Load(glpipe.Float32Bytes(parallelogramVertices), glpipe.UsageStatic); err != nil {
		return nil, nil, err
	}

	vao, err := glpipe.NewVertexLayout(ctx)
	if err != nil {
		return nil, nil, err
	}
	rs.Add(vao)
	const stride = 6 * 4
	err = vao.Attach(vbo,
		glpipe.Attribute{Slot: 0, Components: 3, Type: glpipe.TypeFloat, Stride: stride},
		glpipe.Attribute{Slot: 1, Components: 3, Type: glpipe.TypeFloat, Stride: stride, Offset: 3 * 4},
	)
	if err != nil {
		return nil, nil, err
	}

	ebo, err := glpipe.NewBuffer(ctx, glpipe.TargetElementArray)
	if err != nil {
		return nil, nil, err
	}
	rs.Add(ebo)
	if err := ebo.LoadIndices(parallelogramIndices, glpipe.UsageStatic); err != nil {
		return nil, nil, err
	}
	if err := vao.SetIndexBuffer(ebo); err != nil {
		return nil, nil, err
	}
	return vao, ebo, nil
}

func triangle(ctx *glpipe.Context, rs *glpipe.ResourceSet) (*glpipe.VertexLayout, error) {
	vbo, err := glpipe.NewBuffer(ctx, glpipe.TargetArray)
	if err != nil {
		return nil, err
	}
	rs.Add(vbo)
	if err := vbo.Load(glpipe.Float32Bytes(triangleVertices), glpipe.UsageStatic); err != nil {
		return nil, err
	}

	vao, err := glpipe.NewVertexLayout(ctx)
	if err != nil {
		return nil, err
	}
	rs.Add(vao)
	err = vao.Attach(vbo, glpipe.Attribute{Slot: 0, Components: 3, Type: glpipe.TypeFloat, Stride: 3 * 4})
	if err != nil {
		return nil, err
	}
	return vao, nil
}
