package dsl

import (
	"context"
	"fmt"
	"slices"

	"github.com/reoring/infakt/schema"
	js "github.com/reoring/infakt/schema/jsonschema"
)

type objectBuilder struct {
	fields        map[string]AnyAdapter
	order         []string
	required      map[string]struct{}
	unknownPolicy schema.UnknownPolicy
	unknownTarget string
}

type fieldStep struct {
	b    *objectBuilder
	name string
}

// Object creates a new object builder with safe defaults (UnknownStrict).
func Object() *objectBuilder {
	return &objectBuilder{
		fields:        map[string]AnyAdapter{},
		required:      map[string]struct{}{},
		unknownPolicy: schema.UnknownStrict,
	}
}

// Extend starts a builder from an object schema built by this package,
// copying its fields, required set, and unknown policy. Fields registered
// afterwards replace inherited ones of the same name.
func Extend(base schema.Schema[map[string]any]) *objectBuilder {
	b := Object()
	os, ok := base.(*objectSchema)
	if !ok {
		panic(fmt.Sprintf("dsl.Extend: %T is not an object schema", base))
	}
	for _, k := range os.order {
		b.fields[k] = os.fields[k]
	}
	b.order = slices.Clone(os.order)
	for k := range os.required {
		b.required[k] = struct{}{}
	}
	b.unknownPolicy, b.unknownTarget = os.unknownPolicy, os.unknownTarget
	return b
}

// Field registers a field with its adapter. Registering an existing name
// replaces the adapter, keeps the position, and makes the field optional.
func (b *objectBuilder) Field(name string, ad AnyAdapter) *fieldStep {
	if _, exists := b.fields[name]; !exists {
		b.order = append(b.order, name)
	}
	b.fields[name] = ad
	delete(b.required, name)
	return &fieldStep{b: b, name: name}
}

// Omit removes fields from the builder.
func (b *objectBuilder) Omit(names ...string) *objectBuilder {
	for _, n := range names {
		delete(b.fields, n)
		delete(b.required, n)
	}
	b.order = slices.DeleteFunc(b.order, func(k string) bool {
		_, ok := b.fields[k]
		return !ok
	})
	return b
}

// Required marks the field as required and returns the builder.
func (f *fieldStep) Required() *objectBuilder {
	f.b.required[f.name] = struct{}{}
	return f.b
}

// Optional marks the field as optional (default) and returns the builder.
func (f *fieldStep) Optional() *objectBuilder {
	delete(f.b.required, f.name)
	return f.b
}

// Default sets a default for the current field and exports it to JSON Schema.
// The default is parsed through the field schema when applied.
func (f *fieldStep) Default(v any) *objectBuilder {
	ad := f.b.fields[f.name]
	parse := ad.parse
	ad.applyDefault = func(ctx context.Context) (any, error) { return parse(ctx, v) }
	prev := ad.jsonSchema
	ad.jsonSchema = func() (*js.Schema, error) {
		s, err := prev()
		if err != nil {
			return nil, err
		}
		s.Default = v
		return s, nil
	}
	f.b.fields[f.name] = ad
	return f.b
}

func (f *fieldStep) Field(name string, ad AnyAdapter) *fieldStep    { return f.b.Field(name, ad) }
func (f *fieldStep) Require(names ...string) *objectBuilder          { return f.b.Require(names...) }
func (f *fieldStep) UnknownStrict() *objectBuilder                   { return f.b.UnknownStrict() }
func (f *fieldStep) UnknownStrip() *objectBuilder                    { return f.b.UnknownStrip() }
func (f *fieldStep) Build() (schema.Schema[map[string]any], error)   { return f.b.Build() }
func (f *fieldStep) MustBuild() schema.Schema[map[string]any]        { return f.b.MustBuild() }
func (f *fieldStep) UnknownPassthrough(target string) *objectBuilder { return f.b.UnknownPassthrough(target) }

// Require marks one or more fields as required.
func (b *objectBuilder) Require(names ...string) *objectBuilder {
	for _, n := range names {
		b.required[n] = struct{}{}
	}
	return b
}

// UnknownStrict sets unknown policy to Strict.
func (b *objectBuilder) UnknownStrict() *objectBuilder {
	b.unknownPolicy, b.unknownTarget = schema.UnknownStrict, ""
	return b
}

// UnknownStrip sets unknown policy to Strip.
func (b *objectBuilder) UnknownStrip() *objectBuilder {
	b.unknownPolicy, b.unknownTarget = schema.UnknownStrip, ""
	return b
}

// UnknownPassthrough sets unknown policy to Passthrough with a target field.
func (b *objectBuilder) UnknownPassthrough(target string) *objectBuilder {
	b.unknownPolicy, b.unknownTarget = schema.UnknownPassthrough, target
	return b
}

// Build validates the builder and returns a Schema.
func (b *objectBuilder) Build() (schema.Schema[map[string]any], error) {
	for k := range b.required {
		if _, ok := b.fields[k]; !ok {
			return nil, schema.Issues{schema.Issue{Path: "/" + schema.EscapeToken(k), Code: schema.CodeRequired, Message: "required field is not declared"}}
		}
	}
	if b.unknownPolicy == schema.UnknownPassthrough {
		if _, ok := b.fields[b.unknownTarget]; !ok || b.unknownTarget == "" {
			return nil, schema.Issues{schema.Issue{Path: "/", Code: schema.CodeParseError, Message: "unknown_target missing for passthrough"}}
		}
	}
	fields := make(map[string]AnyAdapter, len(b.fields))
	for k, v := range b.fields {
		fields[k] = v
	}
	required := make(map[string]struct{}, len(b.required))
	for k := range b.required {
		required[k] = struct{}{}
	}
	return &objectSchema{
		fields:        fields,
		order:         slices.Clone(b.order),
		required:      required,
		unknownPolicy: b.unknownPolicy,
		unknownTarget: b.unknownTarget,
	}, nil
}

// MustBuild is like Build but panics on error.
func (b *objectBuilder) MustBuild() schema.Schema[map[string]any] {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// KeysOf returns the declared keys of an object schema in declaration order,
// or nil when s is not an object schema built by this package.
func KeysOf[T any](s schema.Schema[T]) []string {
	switch o := any(s).(type) {
	case *objectSchema:
		return slices.Clone(o.order)
	case interface{ Keys() []string }:
		return o.Keys()
	}
	return nil
}
