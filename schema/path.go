package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// PathRef builds JSON Pointer paths in a chain-safe way and creates Issues.
type PathRef interface {
	Field(name string) PathRef
	Index(i int) PathRef
	Pointer() string
	Issue(code, msg string, kv ...any) Issue
}

// Root returns the PathRef for the document root.
func Root() PathRef { return &pathRef{} }

// At parses an existing pointer into a PathRef.
func At(ptr string) PathRef {
	if ptr == "" || ptr == "/" {
		return Root()
	}
	parts := []string{}
	for _, p := range strings.Split(ptr, "/") {
		if p == "" {
			continue
		}
		parts = append(parts, p)
	}
	return &pathRef{parts: parts}
}

type pathRef struct {
	parts []string
}

func (p *pathRef) Field(name string) PathRef {
	if name == "" {
		return p
	}
	return &pathRef{parts: append(append([]string{}, p.parts...), EscapeToken(name))}
}

func (p *pathRef) Index(i int) PathRef {
	return &pathRef{parts: append(append([]string{}, p.parts...), strconv.Itoa(i))}
}

func (p *pathRef) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

func (p *pathRef) Issue(code, msg string, kv ...any) Issue {
	var m map[string]any
	if len(kv) > 1 {
		m = make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			m[fmt.Sprint(kv[i])] = kv[i+1]
		}
	}
	return Issue{Path: p.Pointer(), Code: code, Message: msg, Params: m}
}

// EscapeToken escapes a reference token per RFC 6901 ('~' -> '~0', '/' -> '~1').
func EscapeToken(s string) string {
	if !strings.ContainsAny(s, "~/") {
		return s
	}
	return strings.ReplaceAll(strings.ReplaceAll(s, "~", "~0"), "/", "~1")
}

// JoinPointer appends the child pointer p to base. A root child ("" or "/")
// yields base unchanged.
func JoinPointer(base, p string) string {
	if base == "" || base == "/" {
		if p == "" {
			return "/"
		}
		if p[0] != '/' {
			return "/" + p
		}
		return p
	}
	switch {
	case p == "" || p == "/":
		return base
	case p[0] == '/':
		return base + p
	default:
		return base + "/" + p
	}
}
