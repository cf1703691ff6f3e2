/*
Package glpipe is a thin, checked layer over the OpenGL 4.1 core pipeline:
shader stages, linked programs, buffers, vertex layouts and a frame loop.

# Overview

The driver keeps its binding points (active program, array buffer, vertex
array, element buffer) as global mutable state. A Context mirrors that state
so every operation can check its preconditions and fail with a Go error
instead of a silent GL_INVALID_OPERATION. The driver itself sits behind the
Driver interface: backend/opengl binds it to go-gl, and fakegl provides a
software implementation for tests.

# Quick Start

	// GLFW must own the main thread.
	runtime.LockOSThread()

	win, _ := opengl.OpenWindow(cfg.Window, cfg.GL)
	defer win.Close()
	drv, _ := opengl.NewDriver()
	ctx := glpipe.NewContext(drv)

	prog, err := glpipe.NewProgram(ctx, vertexSrc, fragmentSrc)
	if err != nil {
	    var cerr *glpipe.CompileError
	    if errors.As(err, &cerr) {
	        log.Fatal(cerr.Log)
	    }
	}

	vbo, _ := glpipe.NewBuffer(ctx, glpipe.TargetArray)
	vbo.Load(glpipe.Float32Bytes(vertices), glpipe.UsageStatic)

	vao, _ := glpipe.NewVertexLayout(ctx)
	vao.Attach(vbo, glpipe.Attribute{Slot: 0, Components: 3, Type: glpipe.TypeFloat})

	loop := glpipe.NewFrameLoop(ctx, win, glpipe.WithDrawables(&glpipe.Drawable{
	    Program:   prog,
	    Layout:    vao,
	    Primitive: glpipe.Triangles,
	    Count:     3,
	}))
	loop.Run()

# Binding Order

A vertex attribute captures the buffer bound to the array target at the
moment it is described. The required order is:

	layout.Bind()
	buffer.Bind()
	layout.EnableSlot(i)
	layout.DescribeSlot(attr)
	buffer.Unbind()
	layout.Unbind()

VertexLayout.Attach performs exactly this sequence. The element buffer is
vertex array state: binding one while a layout is bound records it in that
layout, and it stays recorded after the layout is unbound.

# Resource Lifetime

Every resource has an idempotent Release. Stages outlive the programs they
are linked into; NewProgram releases its own stages once linking is done.
ResourceSet releases a group in reverse creation order and is the usual way
to clean up after a failed setup:

	var rs glpipe.ResourceSet
	defer rs.Release()
	// ... create resources, rs.Add each ...
	owned := rs.Detach() // setup succeeded; the deferred Release is a no-op

# Errors

Compile and link failures carry the driver log (*CompileError, *LinkError).
A zero handle from the driver is a *ResourceError. Precondition violations
wrap a sentinel such as ErrNotBound or ErrProgramNotActive. Writing a
uniform at location -1 is not an error and does nothing.

# Threading

A Context and everything created from it must only be used from the thread
that owns the GL context.
*/
package glpipe
