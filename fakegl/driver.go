// Package fakegl is a software implementation of glpipe.Driver for tests.
//
// It models the core-profile object and binding rules the pipeline depends
// on: separate name spaces per object kind, the global array binding point,
// element bindings owned by vertex arrays, attribute sources captured when
// an attribute is described, the sticky error flag and per-program uniform
// storage. Draw calls do not rasterize; they run vertex fetch and record
// one Invocation per vertex shader invocation.
package fakegl

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-theft-auto/glpipe"
)

type shader struct {
	kind     glpipe.StageKind
	source   string
	compiled *compiled
	log      string
	deleted  bool
	attached int
}

type program struct {
	attached []glpipe.ShaderID
	linked   bool
	log      string
	uniforms map[string]int32
	inputs   map[int]string
	values   map[int32][]float32
	deleted  bool
}

type attrib struct {
	enabled    bool
	described  bool
	size       int32
	typ        glpipe.ComponentType
	normalized bool
	stride     int32
	offset     uintptr
	buffer     glpipe.BufferID
}

type vertexArray struct {
	attribs map[uint32]*attrib
	element glpipe.BufferID
}

type buffer struct {
	data  []byte
	usage glpipe.Usage
}

// Invocation is one vertex shader invocation of a recorded draw.
type Invocation struct {
	Index   uint32
	Attribs map[uint32][]float32
}

// DrawCall is a recorded draw.
type DrawCall struct {
	Program     glpipe.ProgramID
	VertexArray glpipe.VertexArrayID
	Mode        glpipe.Primitive
	Indexed     bool
	Indices     []uint32
	Invocations []Invocation
	// Uniforms is a snapshot of the program's uniform values by name.
	Uniforms map[string][]float32
}

// Counts is the number of live objects of each kind.
type Counts struct {
	Shaders      int
	Programs     int
	Buffers      int
	VertexArrays int
}

// Driver is a software GL context. The zero value is not usable; call New.
type Driver struct {
	// MaxAttribs is reported as MAX_VERTEX_ATTRIBS.
	MaxAttribs int32

	// Allocation failure injection: the matching create call returns 0.
	FailShader      bool
	FailProgram     bool
	FailBuffer      bool
	FailVertexArray bool

	nextShader  glpipe.ShaderID
	nextProgram glpipe.ProgramID
	nextBuffer  glpipe.BufferID
	nextVAO     glpipe.VertexArrayID

	shaders  map[glpipe.ShaderID]*shader
	programs map[glpipe.ProgramID]*program
	buffers  map[glpipe.BufferID]*buffer
	vaos     map[glpipe.VertexArrayID]*vertexArray

	current glpipe.ProgramID
	array   glpipe.BufferID
	vao     glpipe.VertexArrayID

	clearColor [4]float32
	viewport   [4]int32
	depthTest  bool
	clears     []glpipe.ClearMask
	draws      []DrawCall
	errFlag    uint32
	errCount   int
	calls      []string
}

var _ glpipe.Driver = (*Driver)(nil)

// New returns a driver with 16 vertex attribute slots.
func New() *Driver {
	return &Driver{
		MaxAttribs: 16,
		shaders:    make(map[glpipe.ShaderID]*shader),
		programs:   make(map[glpipe.ProgramID]*program),
		buffers:    make(map[glpipe.BufferID]*buffer),
		// Vertex array 0 holds the element binding while no layout is bound.
		vaos: map[glpipe.VertexArrayID]*vertexArray{
			0: {attribs: make(map[uint32]*attrib)},
		},
	}
}

func (d *Driver) record(format string, args ...any) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

// setError keeps the first error until GetError clears it.
func (d *Driver) setError(code uint32) {
	d.errCount++
	if d.errFlag == glpipe.NoError {
		d.errFlag = code
	}
}

// Calls returns the driver calls made since the last ResetCalls.
func (d *Driver) Calls() []string {
	out := make([]string, len(d.calls))
	copy(out, d.calls)
	return out
}

// ResetCalls clears the call log.
func (d *Driver) ResetCalls() { d.calls = nil }

// ErrorCount returns how many driver errors were raised in total, including
// those coalesced in the error flag.
func (d *Driver) ErrorCount() int { return d.errCount }

// Live returns the number of objects not yet deleted.
func (d *Driver) Live() Counts {
	var c Counts
	for _, s := range d.shaders {
		if !s.deleted {
			c.Shaders++
		}
	}
	for _, p := range d.programs {
		if !p.deleted {
			c.Programs++
		}
	}
	c.Buffers = len(d.buffers)
	c.VertexArrays = len(d.vaos) - 1
	return c
}

// Draws returns the recorded draw calls.
func (d *Driver) Draws() []DrawCall { return d.draws }

// ResetDraws clears the recorded draws and clears.
func (d *Driver) ResetDraws() {
	d.draws = nil
	d.clears = nil
}

// Clears returns the recorded clear masks.
func (d *Driver) Clears() []glpipe.ClearMask { return d.clears }

// CurrentProgram returns the program in use.
func (d *Driver) CurrentProgram() glpipe.ProgramID { return d.current }

// ArrayBinding returns the buffer bound to ARRAY_BUFFER.
func (d *Driver) ArrayBinding() glpipe.BufferID { return d.array }

// VertexArrayBinding returns the bound vertex array.
func (d *Driver) VertexArrayBinding() glpipe.VertexArrayID { return d.vao }

// ElementBinding returns the element buffer recorded in vertex array vao.
func (d *Driver) ElementBinding(vao glpipe.VertexArrayID) glpipe.BufferID {
	if v, ok := d.vaos[vao]; ok {
		return v.element
	}
	return 0
}

// AttribSource returns the buffer captured by slot index of vertex array
// vao, and whether the slot was ever described.
func (d *Driver) AttribSource(vao glpipe.VertexArrayID, index uint32) (glpipe.BufferID, bool) {
	v, ok := d.vaos[vao]
	if !ok {
		return 0, false
	}
	a, ok := v.attribs[index]
	if !ok || !a.described {
		return 0, false
	}
	return a.buffer, true
}

// BufferContents returns a copy of a buffer's data store.
func (d *Driver) BufferContents(id glpipe.BufferID) []byte {
	b, ok := d.buffers[id]
	if !ok {
		return nil
	}
	return append([]byte(nil), b.data...)
}

// UniformValue returns the stored value of a uniform of program p.
func (d *Driver) UniformValue(p glpipe.ProgramID, name string) []float32 {
	prog, ok := d.programs[p]
	if !ok {
		return nil
	}
	loc, ok := prog.uniforms[name]
	if !ok {
		return nil
	}
	return prog.values[loc]
}

// Attached returns the shaders currently attached to program p.
func (d *Driver) Attached(p glpipe.ProgramID) []glpipe.ShaderID {
	if prog, ok := d.programs[p]; ok {
		return append([]glpipe.ShaderID(nil), prog.attached...)
	}
	return nil
}

// ViewportRect returns the last viewport rectangle.
func (d *Driver) ViewportRect() [4]int32 { return d.viewport }

// DepthTestEnabled reports whether DEPTH_TEST is enabled.
func (d *Driver) DepthTestEnabled() bool { return d.depthTest }

// ClearColorValue returns the current clear color.
func (d *Driver) ClearColorValue() [4]float32 { return d.clearColor }

// Shaders.

func (d *Driver) CreateShader(kind glpipe.StageKind) glpipe.ShaderID {
	d.record("CreateShader(%s)", kind)
	if kind != glpipe.StageVertex && kind != glpipe.StageFragment {
		d.setError(glpipe.InvalidEnum)
		return 0
	}
	if d.FailShader {
		return 0
	}
	d.nextShader++
	d.shaders[d.nextShader] = &shader{kind: kind}
	return d.nextShader
}

func (d *Driver) liveShader(id glpipe.ShaderID) *shader {
	s, ok := d.shaders[id]
	if !ok || s.deleted {
		d.setError(glpipe.InvalidValue)
		return nil
	}
	return s
}

func (d *Driver) ShaderSource(id glpipe.ShaderID, source string) {
	d.record("ShaderSource(%d)", id)
	if s := d.liveShader(id); s != nil {
		s.source = source
	}
}

func (d *Driver) CompileShader(id glpipe.ShaderID) {
	d.record("CompileShader(%d)", id)
	s := d.liveShader(id)
	if s == nil {
		return
	}
	s.compiled, s.log = compile(s.kind, s.source)
}

func (d *Driver) ShaderCompileStatus(id glpipe.ShaderID) bool {
	s := d.liveShader(id)
	return s != nil && s.compiled != nil
}

func (d *Driver) ShaderInfoLog(id glpipe.ShaderID) string {
	if s := d.liveShader(id); s != nil {
		return s.log
	}
	return ""
}

func (d *Driver) DeleteShader(id glpipe.ShaderID) {
	d.record("DeleteShader(%d)", id)
	if id == 0 {
		return
	}
	if s := d.liveShader(id); s != nil {
		s.deleted = true
	}
}

// Programs.

func (d *Driver) CreateProgram() glpipe.ProgramID {
	d.record("CreateProgram()")
	if d.FailProgram {
		return 0
	}
	d.nextProgram++
	d.programs[d.nextProgram] = &program{values: make(map[int32][]float32)}
	return d.nextProgram
}

func (d *Driver) liveProgram(id glpipe.ProgramID) *program {
	p, ok := d.programs[id]
	if !ok || p.deleted {
		d.setError(glpipe.InvalidValue)
		return nil
	}
	return p
}

func (d *Driver) AttachShader(pid glpipe.ProgramID, sid glpipe.ShaderID) {
	d.record("AttachShader(%d, %d)", pid, sid)
	p, s := d.liveProgram(pid), d.liveShader(sid)
	if p == nil || s == nil {
		return
	}
	for _, a := range p.attached {
		if a == sid {
			d.setError(glpipe.InvalidOperation)
			return
		}
	}
	p.attached = append(p.attached, sid)
	s.attached++
}

func (d *Driver) DetachShader(pid glpipe.ProgramID, sid glpipe.ShaderID) {
	d.record("DetachShader(%d, %d)", pid, sid)
	p := d.liveProgram(pid)
	if p == nil {
		return
	}
	for i, a := range p.attached {
		if a == sid {
			p.attached = append(p.attached[:i], p.attached[i+1:]...)
			d.shaders[sid].attached--
			return
		}
	}
	d.setError(glpipe.InvalidOperation)
}

func (d *Driver) LinkProgram(pid glpipe.ProgramID) {
	d.record("LinkProgram(%d)", pid)
	p := d.liveProgram(pid)
	if p == nil {
		return
	}
	var vertex, fragment []*compiled
	for _, sid := range p.attached {
		s := d.shaders[sid]
		if s.compiled == nil {
			p.linked = false
			p.log = fmt.Sprintf("error: linking with uncompiled %s shader %d\n", s.kind, sid)
			return
		}
		if s.kind == glpipe.StageVertex {
			vertex = append(vertex, s.compiled)
		} else {
			fragment = append(fragment, s.compiled)
		}
	}
	uniforms, inputs, log := link(vertex, fragment)
	p.linked = log == ""
	p.log = log
	p.uniforms = uniforms
	p.inputs = inputs
	p.values = make(map[int32][]float32)
}

func (d *Driver) ProgramLinkStatus(pid glpipe.ProgramID) bool {
	p := d.liveProgram(pid)
	return p != nil && p.linked
}

func (d *Driver) ProgramInfoLog(pid glpipe.ProgramID) string {
	if p := d.liveProgram(pid); p != nil {
		return p.log
	}
	return ""
}

func (d *Driver) UseProgram(pid glpipe.ProgramID) {
	d.record("UseProgram(%d)", pid)
	if pid == 0 {
		d.current = 0
		return
	}
	p := d.liveProgram(pid)
	if p == nil {
		return
	}
	if !p.linked {
		d.setError(glpipe.InvalidOperation)
		return
	}
	d.current = pid
}

func (d *Driver) DeleteProgram(pid glpipe.ProgramID) {
	d.record("DeleteProgram(%d)", pid)
	if pid == 0 {
		return
	}
	p := d.liveProgram(pid)
	if p == nil {
		return
	}
	p.deleted = true
	for _, sid := range p.attached {
		d.shaders[sid].attached--
	}
	p.attached = nil
	if d.current == pid {
		d.current = 0
	}
}

// Uniforms.

func (d *Driver) GetUniformLocation(pid glpipe.ProgramID, name string) int32 {
	p := d.liveProgram(pid)
	if p == nil {
		return -1
	}
	if !p.linked {
		d.setError(glpipe.InvalidOperation)
		return -1
	}
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (d *Driver) setUniform(loc int32, v ...float32) {
	if d.current == 0 {
		d.setError(glpipe.InvalidOperation)
		return
	}
	// Location -1 is silently ignored.
	if loc == -1 {
		return
	}
	p := d.programs[d.current]
	for _, l := range p.uniforms {
		if l == loc {
			p.values[loc] = v
			return
		}
	}
	d.setError(glpipe.InvalidOperation)
}

func (d *Driver) Uniform1i(loc int32, v int32) {
	d.record("Uniform1i(%d)", loc)
	d.setUniform(loc, float32(v))
}

func (d *Driver) Uniform1f(loc int32, v float32) {
	d.record("Uniform1f(%d)", loc)
	d.setUniform(loc, v)
}

func (d *Driver) Uniform3f(loc int32, x, y, z float32) {
	d.record("Uniform3f(%d)", loc)
	d.setUniform(loc, x, y, z)
}

func (d *Driver) Uniform4f(loc int32, x, y, z, w float32) {
	d.record("Uniform4f(%d)", loc)
	d.setUniform(loc, x, y, z, w)
}

func (d *Driver) UniformMatrix4fv(loc int32, m [16]float32) {
	d.record("UniformMatrix4fv(%d)", loc)
	d.setUniform(loc, m[:]...)
}

// Buffers.

func (d *Driver) GenBuffer() glpipe.BufferID {
	d.record("GenBuffer()")
	if d.FailBuffer {
		return 0
	}
	d.nextBuffer++
	d.buffers[d.nextBuffer] = &buffer{}
	return d.nextBuffer
}

func (d *Driver) BindBuffer(target glpipe.BufferTarget, id glpipe.BufferID) {
	d.record("BindBuffer(%s, %d)", target, id)
	if id != 0 {
		if _, ok := d.buffers[id]; !ok {
			d.setError(glpipe.InvalidOperation)
			return
		}
	}
	switch target {
	case glpipe.TargetArray:
		d.array = id
	case glpipe.TargetElementArray:
		d.vaos[d.vao].element = id
	default:
		d.setError(glpipe.InvalidEnum)
	}
}

func (d *Driver) bound(target glpipe.BufferTarget) *buffer {
	var id glpipe.BufferID
	switch target {
	case glpipe.TargetArray:
		id = d.array
	case glpipe.TargetElementArray:
		id = d.vaos[d.vao].element
	default:
		d.setError(glpipe.InvalidEnum)
		return nil
	}
	if id == 0 {
		d.setError(glpipe.InvalidOperation)
		return nil
	}
	return d.buffers[id]
}

func (d *Driver) BufferData(target glpipe.BufferTarget, data []byte, usage glpipe.Usage) {
	d.record("BufferData(%s, %d, %s)", target, len(data), usage)
	if b := d.bound(target); b != nil {
		b.data = append([]byte(nil), data...)
		b.usage = usage
	}
}

func (d *Driver) BufferSize(target glpipe.BufferTarget) int {
	if b := d.bound(target); b != nil {
		return len(b.data)
	}
	return 0
}

func (d *Driver) GetBufferSubData(target glpipe.BufferTarget, offset int, dst []byte) {
	d.record("GetBufferSubData(%s, %d, %d)", target, offset, len(dst))
	b := d.bound(target)
	if b == nil {
		return
	}
	if offset < 0 || offset+len(dst) > len(b.data) {
		d.setError(glpipe.InvalidValue)
		return
	}
	copy(dst, b.data[offset:])
}

func (d *Driver) DeleteBuffer(id glpipe.BufferID) {
	d.record("DeleteBuffer(%d)", id)
	if _, ok := d.buffers[id]; !ok {
		return
	}
	delete(d.buffers, id)
	if d.array == id {
		d.array = 0
	}
	if v := d.vaos[d.vao]; v.element == id {
		v.element = 0
	}
}

// Vertex arrays.

func (d *Driver) GenVertexArray() glpipe.VertexArrayID {
	d.record("GenVertexArray()")
	if d.FailVertexArray {
		return 0
	}
	d.nextVAO++
	d.vaos[d.nextVAO] = &vertexArray{attribs: make(map[uint32]*attrib)}
	return d.nextVAO
}

func (d *Driver) BindVertexArray(id glpipe.VertexArrayID) {
	d.record("BindVertexArray(%d)", id)
	if _, ok := d.vaos[id]; !ok {
		d.setError(glpipe.InvalidOperation)
		return
	}
	d.vao = id
}

func (d *Driver) attribSlot(index uint32) *attrib {
	if d.vao == 0 {
		d.setError(glpipe.InvalidOperation)
		return nil
	}
	if int32(index) >= d.MaxAttribs {
		d.setError(glpipe.InvalidValue)
		return nil
	}
	v := d.vaos[d.vao]
	a, ok := v.attribs[index]
	if !ok {
		a = &attrib{}
		v.attribs[index] = a
	}
	return a
}

func (d *Driver) EnableVertexAttribArray(index uint32) {
	d.record("EnableVertexAttribArray(%d)", index)
	if a := d.attribSlot(index); a != nil {
		a.enabled = true
	}
}

func (d *Driver) VertexAttribPointer(index uint32, size int32, typ glpipe.ComponentType, normalized bool, stride int32, offset uintptr) {
	d.record("VertexAttribPointer(%d, %d, %s, %t, %d, %d)", index, size, typ, normalized, stride, offset)
	if size < 1 || size > 4 || stride < 0 {
		d.setError(glpipe.InvalidValue)
		return
	}
	if d.array == 0 {
		d.setError(glpipe.InvalidOperation)
		return
	}
	a := d.attribSlot(index)
	if a == nil {
		return
	}
	a.described = true
	a.size = size
	a.typ = typ
	a.normalized = normalized
	a.stride = stride
	a.offset = offset
	a.buffer = d.array
}

func (d *Driver) DeleteVertexArray(id glpipe.VertexArrayID) {
	d.record("DeleteVertexArray(%d)", id)
	if id == 0 {
		return
	}
	if _, ok := d.vaos[id]; !ok {
		return
	}
	delete(d.vaos, id)
	if d.vao == id {
		d.vao = 0
	}
}

// Framebuffer state.

func (d *Driver) ClearColor(r, g, b, a float32) {
	d.record("ClearColor(%g, %g, %g, %g)", r, g, b, a)
	d.clearColor = [4]float32{r, g, b, a}
}

func (d *Driver) Clear(mask glpipe.ClearMask) {
	d.record("Clear(%#x)", uint32(mask))
	d.clears = append(d.clears, mask)
}

func (d *Driver) Viewport(x, y, w, h int32) {
	d.record("Viewport(%d, %d, %d, %d)", x, y, w, h)
	if w < 0 || h < 0 {
		d.setError(glpipe.InvalidValue)
		return
	}
	d.viewport = [4]int32{x, y, w, h}
}

func (d *Driver) Enable(c glpipe.Capability) {
	d.record("Enable(%#x)", uint32(c))
	if c == glpipe.CapDepthTest {
		d.depthTest = true
	}
}

func (d *Driver) Disable(c glpipe.Capability) {
	d.record("Disable(%#x)", uint32(c))
	if c == glpipe.CapDepthTest {
		d.depthTest = false
	}
}

// ReadPixels returns RGBA8 pixels. Nothing is rasterized, so every pixel
// holds the clear color.
func (d *Driver) ReadPixels(x, y, w, h int32) []byte {
	d.record("ReadPixels(%d, %d, %d, %d)", x, y, w, h)
	if w < 0 || h < 0 {
		d.setError(glpipe.InvalidValue)
		return nil
	}
	var px [4]byte
	for i, c := range d.clearColor {
		px[i] = byte(math.Round(float64(clamp01(c)) * 255))
	}
	out := make([]byte, 0, int(w)*int(h)*4)
	for i := int32(0); i < w*h; i++ {
		out = append(out, px[:]...)
	}
	return out
}

func clamp01(v float32) float32 {
	return float32(math.Max(0, math.Min(1, float64(v))))
}

// Draws.

func (d *Driver) drawable() bool {
	if d.current == 0 || d.vao == 0 {
		d.setError(glpipe.InvalidOperation)
		return false
	}
	return true
}

func (d *Driver) DrawArrays(mode glpipe.Primitive, first, count int32) {
	d.record("DrawArrays(%d, %d, %d)", mode, first, count)
	if first < 0 || count < 0 {
		d.setError(glpipe.InvalidValue)
		return
	}
	if !d.drawable() {
		return
	}
	call := d.newDrawCall(mode, false)
	for i := first; i < first+count; i++ {
		call.Invocations = append(call.Invocations, d.fetch(uint32(i)))
	}
	d.draws = append(d.draws, call)
}

func (d *Driver) DrawElements(mode glpipe.Primitive, count int32, typ glpipe.ComponentType, offset uintptr) {
	d.record("DrawElements(%d, %d, %s, %d)", mode, count, typ, offset)
	if count < 0 {
		d.setError(glpipe.InvalidValue)
		return
	}
	size := typ.Size()
	if typ != glpipe.TypeUnsignedByte && typ != glpipe.TypeUnsignedShort && typ != glpipe.TypeUnsignedInt {
		d.setError(glpipe.InvalidEnum)
		return
	}
	if !d.drawable() {
		return
	}
	eid := d.vaos[d.vao].element
	if eid == 0 {
		d.setError(glpipe.InvalidOperation)
		return
	}
	data := d.buffers[eid].data
	start := int(offset)
	if start+int(count)*size > len(data) {
		d.setError(glpipe.InvalidOperation)
		return
	}

	call := d.newDrawCall(mode, true)
	for i := 0; i < int(count); i++ {
		p := start + i*size
		var idx uint32
		switch size {
		case 1:
			idx = uint32(data[p])
		case 2:
			idx = uint32(binary.LittleEndian.Uint16(data[p:]))
		default:
			idx = binary.LittleEndian.Uint32(data[p:])
		}
		call.Indices = append(call.Indices, idx)
		call.Invocations = append(call.Invocations, d.fetch(idx))
	}
	d.draws = append(d.draws, call)
}

func (d *Driver) newDrawCall(mode glpipe.Primitive, indexed bool) DrawCall {
	prog := d.programs[d.current]
	uniforms := make(map[string][]float32)
	for name, loc := range prog.uniforms {
		if v, ok := prog.values[loc]; ok {
			uniforms[name] = append([]float32(nil), v...)
		}
	}
	return DrawCall{
		Program:     d.current,
		VertexArray: d.vao,
		Mode:        mode,
		Indexed:     indexed,
		Uniforms:    uniforms,
	}
}

// fetch reads every enabled attribute of vertex index from its source.
func (d *Driver) fetch(index uint32) Invocation {
	inv := Invocation{Index: index, Attribs: make(map[uint32][]float32)}
	for slot, a := range d.vaos[d.vao].attribs {
		if !a.enabled || !a.described {
			continue
		}
		b, ok := d.buffers[a.buffer]
		if !ok {
			d.setError(glpipe.InvalidOperation)
			continue
		}
		csize := a.typ.Size()
		stride := int(a.stride)
		if stride == 0 {
			stride = int(a.size) * csize
		}
		base := int(a.offset) + int(index)*stride
		if base+int(a.size)*csize > len(b.data) {
			d.setError(glpipe.InvalidOperation)
			continue
		}
		vals := make([]float32, a.size)
		for c := 0; c < int(a.size); c++ {
			vals[c] = decode(b.data[base+c*csize:], a.typ, a.normalized)
		}
		inv.Attribs[slot] = vals
	}
	return inv
}

func decode(p []byte, typ glpipe.ComponentType, normalized bool) float32 {
	switch typ {
	case glpipe.TypeFloat:
		return math.Float32frombits(binary.LittleEndian.Uint32(p))
	case glpipe.TypeUnsignedByte:
		if normalized {
			return float32(p[0]) / 255
		}
		return float32(p[0])
	case glpipe.TypeByte:
		if normalized {
			return float32(math.Max(float64(int8(p[0]))/127, -1))
		}
		return float32(int8(p[0]))
	case glpipe.TypeUnsignedShort:
		v := binary.LittleEndian.Uint16(p)
		if normalized {
			return float32(v) / 65535
		}
		return float32(v)
	case glpipe.TypeShort:
		v := int16(binary.LittleEndian.Uint16(p))
		if normalized {
			return float32(math.Max(float64(v)/32767, -1))
		}
		return float32(v)
	case glpipe.TypeUnsignedInt:
		return float32(binary.LittleEndian.Uint32(p))
	case glpipe.TypeInt:
		return float32(int32(binary.LittleEndian.Uint32(p)))
	}
	return 0
}

// Queries.

func (d *Driver) MaxVertexAttribs() int32 { return d.MaxAttribs }

func (d *Driver) GetError() uint32 {
	code := d.errFlag
	d.errFlag = glpipe.NoError
	return code
}
