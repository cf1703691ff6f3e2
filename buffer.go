package glpipe

import (
	"fmt"
	"unsafe"
)

// Buffer is a GPU buffer object for one binding target.
type Buffer struct {
	ctx       *Context
	id        BufferID
	target    BufferTarget
	length    int
	usage     Usage
	indexType ComponentType
}

// NewBuffer allocates a buffer name for target. The data store is empty
// until the first Upload.
func NewBuffer(ctx *Context, target BufferTarget) (*Buffer, error) {
	id := ctx.drv.GenBuffer()
	if id == 0 {
		return nil, &ResourceError{Resource: "buffer"}
	}
	ctx.log.Debug("buffer created", "target", target, "id", id)
	return &Buffer{ctx: ctx, id: id, target: target, usage: UsageStatic}, nil
}

// ID returns the native handle, or 0 once released.
func (b *Buffer) ID() BufferID { return b.id }

// Target returns the binding target the buffer was created for.
func (b *Buffer) Target() BufferTarget { return b.target }

// Len returns the size of the uploaded data store in bytes.
func (b *Buffer) Len() int { return b.length }

// Usage returns the usage hint of the last upload.
func (b *Buffer) Usage() Usage { return b.usage }

// Released reports whether the buffer has been deleted.
func (b *Buffer) Released() bool { return b == nil || b.id == 0 }

// Bound reports whether b is bound to its target.
func (b *Buffer) Bound() bool {
	return !b.Released() && b.ctx.Bound(b.target, b.id)
}

// Bind binds b to its target. For an element buffer this also records b in
// the state of the currently bound layout.
func (b *Buffer) Bind() error {
	if b.Released() {
		return ErrReleased
	}
	b.ctx.bindBuffer(b.target, b.id)
	return nil
}

// Unbind binds the zero buffer to b's target. Unbinding an element buffer
// while a layout is bound removes it from that layout.
func (b *Buffer) Unbind() {
	b.ctx.bindBuffer(b.target, 0)
}

// Upload replaces the whole data store with data. b must be bound.
func (b *Buffer) Upload(data []byte, usage Usage) error {
	if b.Released() {
		return ErrReleased
	}
	if !b.Bound() {
		return fmt.Errorf("upload to buffer %d: %w", b.id, ErrNotBound)
	}
	b.ctx.drv.BufferData(b.target, data, usage)
	b.length = len(data)
	b.usage = usage
	return nil
}

// Load binds b, uploads data and unbinds again, leaving the target unbound.
//
// Loading an element buffer while a layout is bound would detach it from
// that layout on unbind, so Load refuses element uploads in that state.
func (b *Buffer) Load(data []byte, usage Usage) error {
	if b.Released() {
		return ErrReleased
	}
	if b.target == TargetElementArray && b.ctx.layout != 0 {
		return fmt.Errorf("load element buffer %d with layout %d bound: unbind the layout first", b.id, b.ctx.layout)
	}
	if err := b.Bind(); err != nil {
		return err
	}
	defer b.Unbind()
	return b.Upload(data, usage)
}

// Read returns a copy of the data store. b must be bound.
func (b *Buffer) Read() ([]byte, error) {
	if b.Released() {
		return nil, ErrReleased
	}
	if !b.Bound() {
		return nil, fmt.Errorf("read buffer %d: %w", b.id, ErrNotBound)
	}
	size := b.ctx.drv.BufferSize(b.target)
	out := make([]byte, size)
	if size > 0 {
		b.ctx.drv.GetBufferSubData(b.target, 0, out)
	}
	return out, nil
}

// SetIndexType declares the index type of an element buffer.
func (b *Buffer) SetIndexType(t ComponentType) error {
	switch t {
	case TypeUnsignedByte, TypeUnsignedShort, TypeUnsignedInt:
		b.indexType = t
		return nil
	default:
		return fmt.Errorf("index type %s: %w", t, ErrInvalidAttribute)
	}
}

// IndexType returns the declared index type, or 0.
func (b *Buffer) IndexType() ComponentType { return b.indexType }

// IndexCount returns the number of indices in an element buffer.
func (b *Buffer) IndexCount() int {
	if size := b.indexType.Size(); size > 0 {
		return b.length / size
	}
	return 0
}

// LoadIndices uploads 32-bit indices into an element buffer and sets its
// index type.
func (b *Buffer) LoadIndices(indices []uint32, usage Usage) error {
	if err := b.Load(Uint32Bytes(indices), usage); err != nil {
		return err
	}
	b.indexType = TypeUnsignedInt
	return nil
}

// Release deletes the buffer. Safe to call more than once.
func (b *Buffer) Release() {
	if b.Released() {
		return
	}
	b.ctx.drv.DeleteBuffer(b.id)
	b.ctx.forgetBuffer(b.id)
	b.ctx.log.Debug("buffer released", "target", b.target, "id", b.id)
	b.id = 0
}

// Float32Bytes views a float32 slice as bytes without copying.
func Float32Bytes(v []float32) []byte {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*4)
}

// Uint32Bytes views a uint32 slice as bytes without copying.
func Uint32Bytes(v []uint32) []byte {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*4)
}

// Uint16Bytes views a uint16 slice as bytes without copying.
func Uint16Bytes(v []uint16) []byte {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*2)
}
