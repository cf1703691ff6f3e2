package glpipe

import "fmt"

// Attribute describes one vertex attribute slot: how the vertex stage input
// at Slot is fetched from the buffer bound when the slot is described.
type Attribute struct {
	Slot       uint32
	Components int32
	Type       ComponentType
	Normalized bool
	Stride     int32
	Offset     uintptr

	// Source is the array buffer captured at describe time. Set by
	// DescribeSlot; ignored on input.
	Source BufferID
}

// VertexLayout is a vertex array object: a set of attribute descriptors and
// an optional element buffer.
type VertexLayout struct {
	ctx     *Context
	id      VertexArrayID
	attribs []Attribute
	enabled map[uint32]bool
}

// NewVertexLayout allocates a vertex array object.
func NewVertexLayout(ctx *Context) (*VertexLayout, error) {
	id := ctx.drv.GenVertexArray()
	if id == 0 {
		return nil, &ResourceError{Resource: "vertex array"}
	}
	ctx.log.Debug("vertex layout created", "id", id)
	return &VertexLayout{ctx: ctx, id: id, enabled: make(map[uint32]bool)}, nil
}

// ID returns the native handle, or 0 once released.
func (l *VertexLayout) ID() VertexArrayID { return l.id }

// Released reports whether the layout has been deleted.
func (l *VertexLayout) Released() bool { return l == nil || l.id == 0 }

// Bound reports whether l is the bound layout.
func (l *VertexLayout) Bound() bool {
	return !l.Released() && l.ctx.layout == l.id
}

// Bind makes l the bound layout. Its element buffer becomes the element
// binding of the context.
func (l *VertexLayout) Bind() error {
	if l.Released() {
		return ErrReleased
	}
	l.ctx.bindLayout(l.id)
	return nil
}

// Unbind restores the zero layout.
func (l *VertexLayout) Unbind() {
	l.ctx.bindLayout(0)
}

// EnableSlot enables the attribute array at index. l must be bound.
func (l *VertexLayout) EnableSlot(index uint32) error {
	if l.Released() {
		return ErrReleased
	}
	if !l.Bound() {
		return fmt.Errorf("enable slot %d on layout %d: %w", index, l.id, ErrNotBound)
	}
	if err := l.checkSlot(index); err != nil {
		return err
	}
	l.ctx.drv.EnableVertexAttribArray(index)
	l.enabled[index] = true
	return nil
}

// DescribeSlot registers an attribute descriptor. The buffer bound to the
// array target at this moment becomes the slot's source, so the required
// order is: bind the layout, bind the source buffer, then describe.
func (l *VertexLayout) DescribeSlot(a Attribute) error {
	if l.Released() {
		return ErrReleased
	}
	if !l.Bound() {
		return fmt.Errorf("describe slot %d on layout %d: %w", a.Slot, l.id, ErrNotBound)
	}
	if l.ctx.array == 0 {
		return fmt.Errorf("describe slot %d on layout %d: %w", a.Slot, l.id, ErrNoArrayBuffer)
	}
	if err := l.checkSlot(a.Slot); err != nil {
		return err
	}
	if a.Components < 1 || a.Components > 4 {
		return fmt.Errorf("slot %d: %d components: %w", a.Slot, a.Components, ErrInvalidAttribute)
	}
	if a.Type.Size() == 0 {
		return fmt.Errorf("slot %d: type %s: %w", a.Slot, a.Type, ErrInvalidAttribute)
	}
	if a.Stride < 0 {
		return fmt.Errorf("slot %d: stride %d: %w", a.Slot, a.Stride, ErrInvalidAttribute)
	}

	l.ctx.drv.VertexAttribPointer(a.Slot, a.Components, a.Type, a.Normalized, a.Stride, a.Offset)

	a.Source = l.ctx.array
	for i := range l.attribs {
		if l.attribs[i].Slot == a.Slot {
			l.attribs[i] = a
			return nil
		}
	}
	l.attribs = append(l.attribs, a)
	return nil
}

func (l *VertexLayout) checkSlot(index uint32) error {
	if limit := l.ctx.maxAttribs; limit > 0 && index >= limit {
		return fmt.Errorf("slot %d exceeds %d vertex attribs: %w", index, limit, ErrInvalidAttribute)
	}
	return nil
}

// Attach wires attrs to buf in the required order: bind the layout, bind
// buf, enable and describe every slot, unbind buf, unbind the layout.
func (l *VertexLayout) Attach(buf *Buffer, attrs ...Attribute) error {
	if buf.Released() {
		return ErrReleased
	}
	if buf.Target() != TargetArray {
		return fmt.Errorf("attach buffer %d: target %s is not %s", buf.ID(), buf.Target(), TargetArray)
	}
	if err := l.Bind(); err != nil {
		return err
	}
	defer l.Unbind()
	if err := buf.Bind(); err != nil {
		return err
	}
	defer buf.Unbind()

	for _, a := range attrs {
		if err := l.EnableSlot(a.Slot); err != nil {
			return err
		}
		if err := l.DescribeSlot(a); err != nil {
			return err
		}
	}
	return nil
}

// SetIndexBuffer makes buf the layout's element buffer. The association
// persists in the layout; the element target is left bound inside it.
func (l *VertexLayout) SetIndexBuffer(buf *Buffer) error {
	if buf.Released() {
		return ErrReleased
	}
	if buf.Target() != TargetElementArray {
		return fmt.Errorf("index buffer %d: target %s is not %s", buf.ID(), buf.Target(), TargetElementArray)
	}
	if err := l.Bind(); err != nil {
		return err
	}
	defer l.Unbind()
	return buf.Bind()
}

// IndexBuffer returns the element buffer recorded in the layout, or 0.
func (l *VertexLayout) IndexBuffer() BufferID {
	if l.Released() {
		return 0
	}
	return l.ctx.elements[l.id]
}

// Attributes returns the registered descriptors in registration order.
func (l *VertexLayout) Attributes() []Attribute {
	out := make([]Attribute, len(l.attribs))
	copy(out, l.attribs)
	return out
}

// SlotEnabled reports whether the attribute array at index is enabled.
func (l *VertexLayout) SlotEnabled(index uint32) bool { return l.enabled[index] }

// Release deletes the vertex array object. Safe to call more than once.
func (l *VertexLayout) Release() {
	if l.Released() {
		return
	}
	l.ctx.drv.DeleteVertexArray(l.id)
	l.ctx.forgetLayout(l.id)
	l.ctx.log.Debug("vertex layout released", "id", l.id)
	l.id = 0
}
