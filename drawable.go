package glpipe

import "fmt"

// Drawable is one draw call: a program, a layout and either a vertex range
// or an element buffer.
type Drawable struct {
	Name      string
	Program   *Program
	Layout    *VertexLayout
	Primitive Primitive

	// Non-indexed range, used when Indices is nil.
	First int32
	Count int32

	// Indices selects an indexed draw over all of its elements.
	Indices *Buffer

	// OnUse runs after the program is activated, before the draw; set
	// per-frame uniforms here.
	OnUse func(p *Program) error
}

// Indexed reports whether d issues an indexed draw.
func (d *Drawable) Indexed() bool { return d.Indices != nil }

// Draw activates the program, binds the layout (and element buffer), issues
// exactly one draw call and restores the zero layout and element binding.
func (d *Drawable) Draw(ctx *Context) error {
	if d.Program == nil || d.Layout == nil {
		return fmt.Errorf("drawable %q: program and layout are required", d.Name)
	}
	if err := d.Program.Use(); err != nil {
		return fmt.Errorf("drawable %q: use program: %w", d.Name, err)
	}
	if d.OnUse != nil {
		if err := d.OnUse(d.Program); err != nil {
			return fmt.Errorf("drawable %q: %w", d.Name, err)
		}
	}

	if err := d.Layout.Bind(); err != nil {
		return fmt.Errorf("drawable %q: bind layout: %w", d.Name, err)
	}

	if d.Indices == nil {
		ctx.drv.DrawArrays(d.Primitive, d.First, d.Count)
		d.Layout.Unbind()
		return nil
	}

	typ := d.Indices.IndexType()
	if typ == 0 {
		d.Layout.Unbind()
		return fmt.Errorf("drawable %q: %w", d.Name, ErrNoIndexType)
	}
	if err := d.Indices.Bind(); err != nil {
		d.Layout.Unbind()
		return fmt.Errorf("drawable %q: bind indices: %w", d.Name, err)
	}
	ctx.drv.DrawElements(d.Primitive, int32(d.Indices.IndexCount()), typ, 0)

	// Unbind the layout first so the element unbind does not strip the
	// index buffer from it.
	d.Layout.Unbind()
	d.Indices.Unbind()
	return nil
}
