package dsl

import (
	"context"
	"strconv"

	"github.com/reoring/infakt/schema"
	"github.com/reoring/infakt/schema/i18n"
	js "github.com/reoring/infakt/schema/jsonschema"
)

// ArrayBuilder exposes chaining methods for array schemas while implementing Schema[[]E].
type ArrayBuilder[E any] interface {
	schema.Schema[[]E]
	// Min requires at least n elements; msg overrides the message.
	Min(n int, msg ...string) ArrayBuilder[E]
	// Max allows at most n elements.
	Max(n int, msg ...string) ArrayBuilder[E]
}

// Array returns an array schema with the given element schema.
func Array[E any](elem schema.Schema[E]) ArrayBuilder[E] {
	return arraySchema[E]{elem: elem, minLen: -1, maxLen: -1}
}

// ArrayOf adapts Array[E] to AnyAdapter for use in object builders.
// Example: Field("services", d.ArrayOf[map[string]any](service))
func ArrayOf[E any](elem schema.Schema[E]) AnyAdapter {
	return SchemaOf[[]E](Array[E](elem))
}

type arraySchema[E any] struct {
	elem           schema.Schema[E]
	minLen, maxLen int
	minMsg, maxMsg string
}

func (a arraySchema[E]) Min(n int, msg ...string) ArrayBuilder[E] {
	a.minLen, a.minMsg = n, firstMsg(msg)
	return a
}

func (a arraySchema[E]) Max(n int, msg ...string) ArrayBuilder[E] {
	a.maxLen, a.maxMsg = n, firstMsg(msg)
	return a
}

func (a arraySchema[E]) Parse(ctx context.Context, v any) ([]E, error) {
	out, _, err := a.parse(ctx, v, nil)
	return out, err
}

func (a arraySchema[E]) ParseWithMeta(ctx context.Context, v any) (schema.Decoded[[]E], error) {
	pm := schema.PresenceMap{"/": schema.PresenceSeen}
	out, pm, err := a.parse(ctx, v, pm)
	if err != nil {
		return schema.Decoded[[]E]{Presence: pm}, err
	}
	return schema.Decoded[[]E]{Value: out, Presence: pm}, nil
}

// parse validates every element, rebasing element issues under "/i". When pm
// is non-nil, element presence is merged into it.
func (a arraySchema[E]) parse(ctx context.Context, v any, pm schema.PresenceMap) ([]E, schema.PresenceMap, error) {
	src, ok := v.([]any)
	if !ok {
		return nil, pm, invalidType("array")
	}
	var iss schema.Issues
	res := make([]E, 0, len(src))
	for i := range src {
		base := "/" + strconv.Itoa(i)
		var (
			ev  E
			err error
		)
		if pm != nil {
			pm[base] |= schema.PresenceSeen
			var d schema.Decoded[E]
			d, err = a.elem.ParseWithMeta(ctx, src[i])
			ev = d.Value
			if err == nil {
				pm.MergeUnder(base, d.Presence)
			}
		} else {
			ev, err = a.elem.Parse(ctx, src[i])
		}
		if err != nil {
			iss = schema.AppendIssues(iss, schema.Rebase(schema.IssuesFromErr("/", err), base)...)
			if schema.IsFailFast(ctx) {
				return nil, pm, iss
			}
			continue
		}
		res = append(res, ev)
	}
	if a.minLen >= 0 && len(src) < a.minLen {
		iss = schema.AppendIssues(iss, schema.Root().Issue(schema.CodeTooShort, orMsg(a.minMsg, schema.CodeTooShort), "min", a.minLen, "got", len(src)))
	}
	if a.maxLen >= 0 && len(src) > a.maxLen {
		iss = schema.AppendIssues(iss, schema.Root().Issue(schema.CodeTooLong, orMsg(a.maxMsg, schema.CodeTooLong), "max", a.maxLen, "got", len(src)))
	}
	if len(iss) > 0 {
		return nil, pm, iss
	}
	return res, pm, nil
}

func (a arraySchema[E]) JSONSchema() (*js.Schema, error) {
	items, err := a.elem.JSONSchema()
	if err != nil {
		return nil, err
	}
	s := &js.Schema{Type: "array", Items: items}
	if a.minLen >= 0 {
		s.MinItems = js.IntPtr(a.minLen)
	}
	if a.maxLen >= 0 {
		s.MaxItems = js.IntPtr(a.maxLen)
	}
	return s, nil
}

func orMsg(custom, code string) string {
	if custom != "" {
		return custom
	}
	return i18n.T(code, nil)
}
