package glpipe

import "fmt"

// Handle types. The driver API uses bare integers for every object kind;
// these keep a buffer name from being passed where a program is expected.
type (
	ShaderID      uint32
	ProgramID     uint32
	BufferID      uint32
	VertexArrayID uint32
)

// StageKind selects the pipeline stage a shader is compiled for.
// Values match the OpenGL enumerants.
type StageKind uint32

const (
	StageVertex   StageKind = 0x8B31
	StageFragment StageKind = 0x8B30
)

func (k StageKind) String() string {
	switch k {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return fmt.Sprintf("StageKind(%#x)", uint32(k))
	}
}

// BufferTarget is a buffer binding point.
type BufferTarget uint32

const (
	TargetArray        BufferTarget = 0x8892
	TargetElementArray BufferTarget = 0x8893
)

func (t BufferTarget) String() string {
	switch t {
	case TargetArray:
		return "ARRAY_BUFFER"
	case TargetElementArray:
		return "ELEMENT_ARRAY_BUFFER"
	default:
		return fmt.Sprintf("BufferTarget(%#x)", uint32(t))
	}
}

// Usage is the data store usage hint passed with an upload.
type Usage uint32

const (
	UsageStatic  Usage = 0x88E4
	UsageDynamic Usage = 0x88E8
	UsageStream  Usage = 0x88E0
)

func (u Usage) String() string {
	switch u {
	case UsageStatic:
		return "STATIC_DRAW"
	case UsageDynamic:
		return "DYNAMIC_DRAW"
	case UsageStream:
		return "STREAM_DRAW"
	default:
		return fmt.Sprintf("Usage(%#x)", uint32(u))
	}
}

// ComponentType is the scalar type of a vertex attribute component or an index.
type ComponentType uint32

const (
	TypeByte          ComponentType = 0x1400
	TypeUnsignedByte  ComponentType = 0x1401
	TypeShort         ComponentType = 0x1402
	TypeUnsignedShort ComponentType = 0x1403
	TypeInt           ComponentType = 0x1404
	TypeUnsignedInt   ComponentType = 0x1405
	TypeFloat         ComponentType = 0x1406
)

// Size returns the size in bytes of one component, or 0 for an unknown type.
func (t ComponentType) Size() int {
	switch t {
	case TypeByte, TypeUnsignedByte:
		return 1
	case TypeShort, TypeUnsignedShort:
		return 2
	case TypeInt, TypeUnsignedInt, TypeFloat:
		return 4
	default:
		return 0
	}
}

func (t ComponentType) String() string {
	switch t {
	case TypeByte:
		return "BYTE"
	case TypeUnsignedByte:
		return "UNSIGNED_BYTE"
	case TypeShort:
		return "SHORT"
	case TypeUnsignedShort:
		return "UNSIGNED_SHORT"
	case TypeInt:
		return "INT"
	case TypeUnsignedInt:
		return "UNSIGNED_INT"
	case TypeFloat:
		return "FLOAT"
	default:
		return fmt.Sprintf("ComponentType(%#x)", uint32(t))
	}
}

// Primitive is the assembly mode of a draw call.
type Primitive uint32

const (
	Points        Primitive = 0x0000
	Lines         Primitive = 0x0001
	TriangleStrip Primitive = 0x0005
	Triangles     Primitive = 0x0004
)

// ClearMask selects the framebuffer planes cleared by Clear.
type ClearMask uint32

const (
	ClearDepth   ClearMask = 0x00000100
	ClearStencil ClearMask = 0x00000400
	ClearColor   ClearMask = 0x00004000
)

// Capability is a server-side capability toggled with Enable/Disable.
type Capability uint32

const CapDepthTest Capability = 0x0B71

// Driver error codes as returned by GetError.
const (
	NoError          uint32 = 0
	InvalidEnum      uint32 = 0x0500
	InvalidValue     uint32 = 0x0501
	InvalidOperation uint32 = 0x0502
	OutOfMemory      uint32 = 0x0505
)

// Driver is the raw GPU API. Every call operates on the single implicit
// binding context of the current GL context; it is not safe for concurrent use.
type Driver interface {
	CreateShader(kind StageKind) ShaderID
	ShaderSource(shader ShaderID, source string)
	CompileShader(shader ShaderID)
	ShaderCompileStatus(shader ShaderID) bool
	ShaderInfoLog(shader ShaderID) string
	DeleteShader(shader ShaderID)

	CreateProgram() ProgramID
	AttachShader(program ProgramID, shader ShaderID)
	DetachShader(program ProgramID, shader ShaderID)
	LinkProgram(program ProgramID)
	ProgramLinkStatus(program ProgramID) bool
	ProgramInfoLog(program ProgramID) string
	UseProgram(program ProgramID)
	DeleteProgram(program ProgramID)

	GetUniformLocation(program ProgramID, name string) int32
	Uniform1i(location int32, v int32)
	Uniform1f(location int32, v float32)
	Uniform3f(location int32, x, y, z float32)
	Uniform4f(location int32, x, y, z, w float32)
	UniformMatrix4fv(location int32, m [16]float32)

	GenBuffer() BufferID
	BindBuffer(target BufferTarget, buffer BufferID)
	BufferData(target BufferTarget, data []byte, usage Usage)
	BufferSize(target BufferTarget) int
	GetBufferSubData(target BufferTarget, offset int, dst []byte)
	DeleteBuffer(buffer BufferID)

	GenVertexArray() VertexArrayID
	BindVertexArray(vao VertexArrayID)
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, typ ComponentType, normalized bool, stride int32, offset uintptr)
	DeleteVertexArray(vao VertexArrayID)

	ClearColor(r, g, b, a float32)
	Clear(mask ClearMask)
	Viewport(x, y, width, height int32)
	Enable(c Capability)
	Disable(c Capability)
	DrawArrays(mode Primitive, first, count int32)
	DrawElements(mode Primitive, count int32, typ ComponentType, offset uintptr)
	ReadPixels(x, y, width, height int32) []byte

	MaxVertexAttribs() int32
	GetError() uint32
}
