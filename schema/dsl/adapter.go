package dsl

import (
	"context"
	"reflect"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/reoring/infakt/schema"
	"github.com/reoring/infakt/schema/i18n"
	js "github.com/reoring/infakt/schema/jsonschema"
)

// AnyAdapter adapts Schema[T] to an any-typed DSL wrapper used by object
// fields. Modifiers (Nullable, Min, Max, Positive) return a new adapter and
// leave the receiver untouched.
type AnyAdapter struct {
	parse         func(context.Context, any) (any, error)
	parseWithMeta func(context.Context, any) (any, schema.PresenceMap, error)
	applyDefault  func(context.Context) (any, error)
	jsonSchema    func() (*js.Schema, error)
}

// SchemaOf wraps a strongly typed Schema[T] as AnyAdapter for Field builders.
func SchemaOf[T any](s schema.Schema[T]) AnyAdapter {
	return AnyAdapter{
		parse: func(ctx context.Context, v any) (any, error) { return s.Parse(ctx, v) },
		parseWithMeta: func(ctx context.Context, v any) (any, schema.PresenceMap, error) {
			d, err := s.ParseWithMeta(ctx, v)
			if err != nil {
				return nil, nil, err
			}
			return d.Value, d.Presence, nil
		},
		jsonSchema: s.JSONSchema,
	}
}

// Schema exposes the adapter as a Schema[any], e.g. for array elements.
func (ad AnyAdapter) Schema() schema.Schema[any] { return adapterSchema{ad: ad} }

type adapterSchema struct{ ad AnyAdapter }

func (a adapterSchema) Parse(ctx context.Context, v any) (any, error) { return a.ad.parse(ctx, v) }

func (a adapterSchema) ParseWithMeta(ctx context.Context, v any) (schema.Decoded[any], error) {
	out, pm, err := a.ad.parseWithMeta(ctx, v)
	if pm == nil {
		pm = schema.PresenceMap{"/": schema.PresenceSeen}
	}
	return schema.Decoded[any]{Value: out, Presence: pm}, err
}

func (a adapterSchema) JSONSchema() (*js.Schema, error) { return a.ad.jsonSchema() }

// Nullable accepts JSON null in addition to the wrapped schema.
func (ad AnyAdapter) Nullable() AnyAdapter {
	prevParse, prevMeta, prevJSON := ad.parse, ad.parseWithMeta, ad.jsonSchema
	out := ad
	out.parse = func(ctx context.Context, v any) (any, error) {
		if v == nil {
			return nil, nil
		}
		return prevParse(ctx, v)
	}
	out.parseWithMeta = func(ctx context.Context, v any) (any, schema.PresenceMap, error) {
		if v == nil {
			return nil, nil, nil
		}
		return prevMeta(ctx, v)
	}
	out.jsonSchema = func() (*js.Schema, error) {
		s, err := prevJSON()
		if err != nil {
			return nil, err
		}
		s.Nullable = true
		return s, nil
	}
	return out
}

// Min sets a numeric minimum (inclusive) constraint at runtime and in JSON Schema.
// Non-numeric values are ignored by this guard (type errors are handled elsewhere).
func (ad AnyAdapter) Min(n float64) AnyAdapter {
	return ad.withCheck(func(f float64) bool { return f >= n }, schema.CodeTooSmall, map[string]any{"min": n},
		func(s *js.Schema) { s.Minimum = js.FloatPtr(n) })
}

// Max sets a numeric maximum (inclusive) constraint.
func (ad AnyAdapter) Max(n float64) AnyAdapter {
	return ad.withCheck(func(f float64) bool { return f <= n }, schema.CodeTooBig, map[string]any{"max": n},
		func(s *js.Schema) { s.Maximum = js.FloatPtr(n) })
}

// Positive requires a value strictly greater than zero.
func (ad AnyAdapter) Positive() AnyAdapter {
	return ad.withCheck(func(f float64) bool { return f > 0 }, schema.CodeTooSmall, map[string]any{"exclusiveMin": 0},
		func(s *js.Schema) { s.ExclusiveMinimum = js.FloatPtr(0) })
}

// NonNegative is Min(0).
func (ad AnyAdapter) NonNegative() AnyAdapter { return ad.Min(0) }

func (ad AnyAdapter) withCheck(ok func(float64) bool, code string, params map[string]any, decorate func(*js.Schema)) AnyAdapter {
	prevParse, prevMeta, prevJSON := ad.parse, ad.parseWithMeta, ad.jsonSchema
	check := func(v any) error {
		f, isNum := toFloat(v)
		if !isNum || ok(f) {
			return nil
		}
		return schema.Issues{schema.Issue{Path: "/", Code: code, Message: i18n.T(code, nil), Params: params}}
	}
	out := ad
	out.parse = func(ctx context.Context, v any) (any, error) {
		val, err := prevParse(ctx, v)
		if err != nil {
			return nil, err
		}
		if err := check(val); err != nil {
			return nil, err
		}
		return val, nil
	}
	out.parseWithMeta = func(ctx context.Context, v any) (any, schema.PresenceMap, error) {
		val, pm, err := prevMeta(ctx, v)
		if err != nil {
			return nil, pm, err
		}
		if err := check(val); err != nil {
			return nil, pm, err
		}
		return val, pm, nil
	}
	out.jsonSchema = func() (*js.Schema, error) {
		s, err := prevJSON()
		if err != nil {
			return nil, err
		}
		decorate(s)
		if s.Type == "" {
			s.Type = "number"
		}
		return s, nil
	}
	return out
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := strconv.ParseFloat(string(n), 64)
		return f, err == nil
	}
	// named numeric types such as model.MinorUnits
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
