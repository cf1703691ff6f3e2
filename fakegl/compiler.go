package fakegl

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-theft-auto/glpipe"
)

var (
	mainRe = regexp.MustCompile(`\bvoid\s+main\s*\(\s*\)`)
	declRe = regexp.MustCompile(`(?m)^\s*(?:layout\s*\(\s*location\s*=\s*(\d+)\s*\)\s*)?(in|out|uniform)\s+(\w+)\s+(\w+)\s*;`)
	errRe  = regexp.MustCompile(`(?m)^\s*#error\s*(.*)$`)
)

// decl is one global in/out/uniform declaration.
type decl struct {
	location int // -1 without a layout qualifier
	storage  string
	typ      string
	name     string
}

type compiled struct {
	ins      []decl
	outs     []decl
	uniforms []decl
}

// compile checks source the way a strict driver would for the subset of
// GLSL the tests use. It returns the lowered declarations or an info log.
func compile(kind glpipe.StageKind, source string) (*compiled, string) {
	if !strings.HasSuffix(source, "\x00") {
		return nil, "0:0(0): error: shader source is not NUL-terminated\n"
	}
	src := strings.TrimSuffix(source, "\x00")

	if m := errRe.FindStringSubmatch(src); m != nil {
		return nil, fmt.Sprintf("0:%d(1): error: #error %s\n", lineOf(src, m[0]), strings.TrimSpace(m[1]))
	}
	if !strings.HasPrefix(strings.TrimSpace(src), "#version") {
		return nil, "0:1(1): error: #version directive is required in the core profile\n"
	}
	last := strings.Count(src, "\n") + 1
	if balance(src, '{', '}') != 0 {
		return nil, fmt.Sprintf("0:%d(1): error: syntax error, unexpected end of file, unbalanced braces\n", last)
	}
	if balance(src, '(', ')') != 0 {
		return nil, fmt.Sprintf("0:%d(1): error: syntax error, unbalanced parentheses\n", last)
	}
	if !mainRe.MatchString(src) {
		return nil, "0:1(1): error: function `main' is not defined\n"
	}

	c := &compiled{}
	for _, m := range declRe.FindAllStringSubmatch(src, -1) {
		d := decl{location: -1, storage: m[2], typ: m[3], name: m[4]}
		if m[1] != "" {
			fmt.Sscanf(m[1], "%d", &d.location)
		}
		switch d.storage {
		case "in":
			c.ins = append(c.ins, d)
		case "out":
			c.outs = append(c.outs, d)
		case "uniform":
			// Unreferenced uniforms are optimized away.
			if len(regexp.MustCompile(`\b`+regexp.QuoteMeta(d.name)+`\b`).FindAllStringIndex(src, -1)) > 1 {
				c.uniforms = append(c.uniforms, d)
			}
		}
	}
	if kind == glpipe.StageFragment {
		for _, d := range c.ins {
			if d.location >= 0 {
				return nil, fmt.Sprintf("0:%d(1): error: layout(location) on fragment input `%s' is not supported\n",
					lineOf(src, d.name), d.name)
			}
		}
	}
	return c, ""
}

func balance(src string, open, close byte) int {
	depth := 0
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case open:
			depth++
		case close:
			depth--
			if depth < 0 {
				return depth
			}
		}
	}
	return depth
}

func lineOf(src, fragment string) int {
	i := strings.Index(src, fragment)
	if i < 0 {
		return 1
	}
	return strings.Count(src[:i], "\n") + 1
}

// link checks stage interfaces and assigns uniform locations in declaration
// order, vertex stage first.
func link(vertex, fragment []*compiled) (map[string]int32, map[int]string, string) {
	if len(vertex) == 0 {
		return nil, nil, "error: linking with uncompiled/missing vertex shader\n"
	}
	if len(fragment) == 0 {
		return nil, nil, "error: linking with uncompiled/missing fragment shader\n"
	}

	outs := make(map[string]string)
	for _, c := range vertex {
		for _, d := range c.outs {
			outs[d.name] = d.typ
		}
	}
	for _, c := range fragment {
		for _, d := range c.ins {
			typ, ok := outs[d.name]
			if !ok {
				return nil, nil, fmt.Sprintf("error: fragment shader input `%s' has no matching output in the previous stage\n", d.name)
			}
			if typ != d.typ {
				return nil, nil, fmt.Sprintf("error: `%s' declared as type `%s' and type `%s'\n", d.name, typ, d.typ)
			}
		}
	}

	inputs := make(map[int]string)
	for _, c := range vertex {
		for _, d := range c.ins {
			if d.location >= 0 {
				inputs[d.location] = d.name
			}
		}
	}

	uniforms := make(map[string]int32)
	next := int32(0)
	for _, cs := range [][]*compiled{vertex, fragment} {
		for _, c := range cs {
			for _, d := range c.uniforms {
				if _, ok := uniforms[d.name]; !ok {
					uniforms[d.name] = next
					next++
				}
			}
		}
	}
	return uniforms, inputs, ""
}
