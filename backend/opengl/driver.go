// Package opengl provides the OpenGL 4.1 core driver and a GLFW window for
// the glpipe package.
package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/glpipe"
)

// Driver implements glpipe.Driver on go-gl. The glpipe enums carry the GL
// enumerant values, so they are passed through unchanged.
type Driver struct{}

var _ glpipe.Driver = (*Driver)(nil)

// NewDriver loads the GL function pointers. A GL context must be current on
// the calling thread.
func NewDriver() (*Driver, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	return &Driver{}, nil
}

// Version returns the GL_VERSION string of the current context.
func (d *Driver) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// Renderer returns the GL_RENDERER string of the current context.
func (d *Driver) Renderer() string {
	return gl.GoStr(gl.GetString(gl.RENDERER))
}

func (d *Driver) CreateShader(kind glpipe.StageKind) glpipe.ShaderID {
	return glpipe.ShaderID(gl.CreateShader(uint32(kind)))
}

// ShaderSource expects a NUL-terminated source.
func (d *Driver) ShaderSource(shader glpipe.ShaderID, source string) {
	csource, free := gl.Strs(source)
	gl.ShaderSource(uint32(shader), 1, csource, nil)
	free()
}

func (d *Driver) CompileShader(shader glpipe.ShaderID) {
	gl.CompileShader(uint32(shader))
}

func (d *Driver) ShaderCompileStatus(shader glpipe.ShaderID) bool {
	var status int32
	gl.GetShaderiv(uint32(shader), gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (d *Driver) ShaderInfoLog(shader glpipe.ShaderID) string {
	var logLength int32
	gl.GetShaderiv(uint32(shader), gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetShaderInfoLog(uint32(shader), logLength, nil, &log[0])
	return gl.GoStr(&log[0])
}

func (d *Driver) DeleteShader(shader glpipe.ShaderID) {
	gl.DeleteShader(uint32(shader))
}

func (d *Driver) CreateProgram() glpipe.ProgramID {
	return glpipe.ProgramID(gl.CreateProgram())
}

func (d *Driver) AttachShader(program glpipe.ProgramID, shader glpipe.ShaderID) {
	gl.AttachShader(uint32(program), uint32(shader))
}

func (d *Driver) DetachShader(program glpipe.ProgramID, shader glpipe.ShaderID) {
	gl.DetachShader(uint32(program), uint32(shader))
}

func (d *Driver) LinkProgram(program glpipe.ProgramID) {
	gl.LinkProgram(uint32(program))
}

func (d *Driver) ProgramLinkStatus(program glpipe.ProgramID) bool {
	var status int32
	gl.GetProgramiv(uint32(program), gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (d *Driver) ProgramInfoLog(program glpipe.ProgramID) string {
	var logLength int32
	gl.GetProgramiv(uint32(program), gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetProgramInfoLog(uint32(program), logLength, nil, &log[0])
	return gl.GoStr(&log[0])
}

func (d *Driver) UseProgram(program glpipe.ProgramID) {
	gl.UseProgram(uint32(program))
}

func (d *Driver) DeleteProgram(program glpipe.ProgramID) {
	gl.DeleteProgram(uint32(program))
}

func (d *Driver) GetUniformLocation(program glpipe.ProgramID, name string) int32 {
	return gl.GetUniformLocation(uint32(program), gl.Str(name+"\x00"))
}

func (d *Driver) Uniform1i(location int32, v int32) { gl.Uniform1i(location, v) }

func (d *Driver) Uniform1f(location int32, v float32) { gl.Uniform1f(location, v) }

func (d *Driver) Uniform3f(location int32, x, y, z float32) { gl.Uniform3f(location, x, y, z) }

func (d *Driver) Uniform4f(location int32, x, y, z, w float32) { gl.Uniform4f(location, x, y, z, w) }

func (d *Driver) UniformMatrix4fv(location int32, m [16]float32) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (d *Driver) GenBuffer() glpipe.BufferID {
	var id uint32
	gl.GenBuffers(1, &id)
	return glpipe.BufferID(id)
}

func (d *Driver) BindBuffer(target glpipe.BufferTarget, buffer glpipe.BufferID) {
	gl.BindBuffer(uint32(target), uint32(buffer))
}

func (d *Driver) BufferData(target glpipe.BufferTarget, data []byte, usage glpipe.Usage) {
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = gl.Ptr(data)
	}
	gl.BufferData(uint32(target), len(data), ptr, uint32(usage))
}

func (d *Driver) BufferSize(target glpipe.BufferTarget) int {
	var size int32
	gl.GetBufferParameteriv(uint32(target), gl.BUFFER_SIZE, &size)
	return int(size)
}

func (d *Driver) GetBufferSubData(target glpipe.BufferTarget, offset int, dst []byte) {
	if len(dst) == 0 {
		return
	}
	gl.GetBufferSubData(uint32(target), offset, len(dst), gl.Ptr(dst))
}

func (d *Driver) DeleteBuffer(buffer glpipe.BufferID) {
	id := uint32(buffer)
	gl.DeleteBuffers(1, &id)
}

func (d *Driver) GenVertexArray() glpipe.VertexArrayID {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return glpipe.VertexArrayID(id)
}

func (d *Driver) BindVertexArray(vao glpipe.VertexArrayID) {
	gl.BindVertexArray(uint32(vao))
}

func (d *Driver) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (d *Driver) VertexAttribPointer(index uint32, size int32, typ glpipe.ComponentType, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, uint32(typ), normalized, stride, offset)
}

func (d *Driver) DeleteVertexArray(vao glpipe.VertexArrayID) {
	id := uint32(vao)
	gl.DeleteVertexArrays(1, &id)
}

func (d *Driver) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (d *Driver) Clear(mask glpipe.ClearMask) { gl.Clear(uint32(mask)) }

func (d *Driver) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

func (d *Driver) Enable(c glpipe.Capability) { gl.Enable(uint32(c)) }

func (d *Driver) Disable(c glpipe.Capability) { gl.Disable(uint32(c)) }

func (d *Driver) DrawArrays(mode glpipe.Primitive, first, count int32) {
	gl.DrawArrays(uint32(mode), first, count)
}

func (d *Driver) DrawElements(mode glpipe.Primitive, count int32, typ glpipe.ComponentType, offset uintptr) {
	gl.DrawElementsWithOffset(uint32(mode), count, uint32(typ), offset)
}

// ReadPixels reads RGBA8 pixels from the read framebuffer, bottom row first.
func (d *Driver) ReadPixels(x, y, width, height int32) []byte {
	if width <= 0 || height <= 0 {
		return nil
	}
	pixels := make([]byte, int(width)*int(height)*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(x, y, width, height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}

func (d *Driver) MaxVertexAttribs() int32 {
	var n int32
	gl.GetIntegerv(gl.MAX_VERTEX_ATTRIBS, &n)
	return n
}

func (d *Driver) GetError() uint32 { return gl.GetError() }
