package dsl

import (
	"bytes"
	"context"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/reoring/infakt/schema"
	js "github.com/reoring/infakt/schema/jsonschema"
)

// TypedSchema is an object schema bound to struct type T.
type TypedSchema[T any] interface {
	schema.Schema[T]
	// Check validates a value already typed as T by re-encoding it to the
	// wire shape and parsing it with the underlying object schema.
	Check(ctx context.Context, v T) error
	// Keys returns the wire keys in declaration order.
	Keys() []string
}

// Bind binds an object schema to struct type T. Every schema key must map to
// an exported struct field (json tag or field name).
func Bind[T any](s schema.Schema[map[string]any]) (TypedSchema[T], error) {
	os, ok := s.(*objectSchema)
	if !ok {
		return nil, schema.Issues{schema.Issue{Path: "/", Code: schema.CodeParseError, Message: "unexpected schema type for Bind"}}
	}
	rt := reflect.TypeOf((*T)(nil)).Elem()
	if rt.Kind() != reflect.Struct {
		return nil, schema.Issues{schema.Issue{Path: "/", Code: schema.CodeParseError, Message: "Bind[T] requires struct T"}}
	}
	have := map[string]bool{}
	for _, k := range schema.StructKeys(rt) {
		have[k] = true
	}
	var missing []string
	for _, k := range os.order {
		if !have[k] {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("dsl.Bind[%s]: no struct field for keys %s", rt.Name(), strings.Join(missing, ", "))
	}
	return &typedObjectSchema[T]{inner: os}, nil
}

// MustBind is like Bind but panics on error.
func MustBind[T any](s schema.Schema[map[string]any]) TypedSchema[T] {
	ts, err := Bind[T](s)
	if err != nil {
		panic(err)
	}
	return ts
}

// typedObjectSchema projects the validated map onto T through a JSON round
// trip and hands presence to every embedded schema.Meta.
type typedObjectSchema[T any] struct {
	inner *objectSchema
}

func (s *typedObjectSchema[T]) Keys() []string { return s.inner.Keys() }

func (s *typedObjectSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	d, err := s.ParseWithMeta(ctx, v)
	return d.Value, err
}

func (s *typedObjectSchema[T]) ParseWithMeta(ctx context.Context, v any) (schema.Decoded[T], error) {
	var out schema.Decoded[T]
	dm, err := s.inner.ParseWithMeta(ctx, v)
	out.Presence = dm.Presence
	if err != nil {
		return out, err
	}
	b, err := json.Marshal(dm.Value)
	if err != nil {
		return out, schema.IssuesFromErr("/", err)
	}
	if err := json.Unmarshal(b, &out.Value); err != nil {
		return out, schema.IssuesFromErr("/", err)
	}
	distributePresence(reflect.ValueOf(&out.Value).Elem(), dm.Presence)
	return out, nil
}

func (s *typedObjectSchema[T]) Check(ctx context.Context, v T) error {
	b, err := json.Marshal(v)
	if err != nil {
		return schema.IssuesFromErr("/", err)
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return schema.IssuesFromErr("/", err)
	}
	_, err = s.inner.Parse(ctx, raw)
	return err
}

func (s *typedObjectSchema[T]) JSONSchema() (*js.Schema, error) { return s.inner.JSONSchema() }

var setterType = reflect.TypeOf((*schema.PresenceSetter)(nil)).Elem()

// distributePresence sets the presence of rv (an addressable struct) and of
// every nested struct, pointer, or slice element that embeds schema.Meta,
// re-rooting the map at each level.
func distributePresence(rv reflect.Value, pm schema.PresenceMap) {
	if rv.Kind() != reflect.Struct || !rv.CanAddr() {
		return
	}
	if ps, ok := rv.Addr().Interface().(schema.PresenceSetter); ok {
		ps.SetPresence(pm)
	}
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if sf.Anonymous || !sf.IsExported() {
			continue
		}
		key := schema.ResolveStructKey(sf)
		if key == "-" || key == "" {
			continue
		}
		walkPresence(rv.Field(i), pm.Sub("/"+schema.EscapeToken(key)))
	}
}

func walkPresence(fv reflect.Value, pm schema.PresenceMap) {
	switch fv.Kind() {
	case reflect.Pointer:
		if !fv.IsNil() {
			walkPresence(fv.Elem(), pm)
		}
	case reflect.Struct:
		if reflect.PointerTo(fv.Type()).Implements(setterType) {
			distributePresence(fv, pm)
		}
	case reflect.Slice:
		if !bindsPresence(fv.Type().Elem()) {
			return
		}
		for i := 0; i < fv.Len(); i++ {
			walkPresence(fv.Index(i), pm.Sub("/"+strconv.Itoa(i)))
		}
	}
}

func bindsPresence(t reflect.Type) bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct && reflect.PointerTo(t).Implements(setterType)
}
