package dsl

import (
	"context"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	json "github.com/goccy/go-json"

	"github.com/reoring/infakt/schema"
	"github.com/reoring/infakt/schema/i18n"
	js "github.com/reoring/infakt/schema/jsonschema"
)

// StringBuilder exposes chaining options for string schemas while
// implementing Schema[string]. Each option returns a copy.
type StringBuilder interface {
	schema.Schema[string]
	// Min requires at least n characters; msg overrides the message.
	Min(n int, msg ...string) StringBuilder
	// Max allows at most n characters.
	Max(n int, msg ...string) StringBuilder
	// Length requires exactly n characters.
	Length(n int, msg ...string) StringBuilder
	// Regex requires a full match of pattern; msg overrides the message.
	Regex(pattern string, msg ...string) StringBuilder
	// DateTime requires an RFC 3339 timestamp with a zone offset.
	DateTime(msg ...string) StringBuilder
	// URL requires an absolute URL.
	URL(msg ...string) StringBuilder
}

// String returns a string schema with no constraints.
func String() StringBuilder { return stringSchema{minLen: -1, maxLen: -1} }

// StringOf returns an AnyAdapter producing T. An optional builder supplies
// the constraints; String() is used otherwise.
func StringOf[T ~string](b ...StringBuilder) AnyAdapter {
	var base StringBuilder = String()
	if len(b) > 0 && b[0] != nil {
		base = b[0]
	}
	return SchemaOf[T](stringAs[T]{inner: base})
}

type stringSchema struct {
	minLen, maxLen int
	minMsg, maxMsg string
	pattern        *regexp.Regexp
	patternMsg     string
	format         string
	formatMsg      string
}

func firstMsg(msg []string) string {
	if len(msg) > 0 {
		return msg[0]
	}
	return ""
}

func (s stringSchema) Min(n int, msg ...string) StringBuilder {
	s.minLen, s.minMsg = n, firstMsg(msg)
	return s
}

func (s stringSchema) Max(n int, msg ...string) StringBuilder {
	s.maxLen, s.maxMsg = n, firstMsg(msg)
	return s
}

func (s stringSchema) Length(n int, msg ...string) StringBuilder {
	m := firstMsg(msg)
	s.minLen, s.maxLen, s.minMsg, s.maxMsg = n, n, m, m
	return s
}

func (s stringSchema) Regex(pattern string, msg ...string) StringBuilder {
	s.pattern, s.patternMsg = regexp.MustCompile(pattern), firstMsg(msg)
	return s
}

func (s stringSchema) DateTime(msg ...string) StringBuilder {
	s.format, s.formatMsg = "date-time", firstMsg(msg)
	return s
}

func (s stringSchema) URL(msg ...string) StringBuilder {
	s.format, s.formatMsg = "uri", firstMsg(msg)
	return s
}

func (s stringSchema) Parse(ctx context.Context, v any) (string, error) {
	str, ok := v.(string)
	if !ok {
		return "", invalidType("string")
	}
	if iss := s.check(ctx, str); len(iss) > 0 {
		return "", iss
	}
	return str, nil
}

func (s stringSchema) ParseWithMeta(ctx context.Context, v any) (schema.Decoded[string], error) {
	str, err := s.Parse(ctx, v)
	return schema.Decoded[string]{Value: str, Presence: schema.PresenceMap{"/": schema.PresenceSeen}}, err
}

func (s stringSchema) check(ctx context.Context, str string) schema.Issues {
	var iss schema.Issues
	add := func(code, custom string, kv ...any) bool {
		msg := custom
		if msg == "" {
			msg = i18n.T(code, nil)
		}
		iss = schema.AppendIssues(iss, schema.Root().Issue(code, msg, kv...))
		return schema.IsFailFast(ctx)
	}
	n := utf8.RuneCountInString(str)
	if s.minLen >= 0 && n < s.minLen {
		if add(schema.CodeTooShort, s.minMsg, "min", s.minLen, "got", n) {
			return iss
		}
	}
	if s.maxLen >= 0 && n > s.maxLen {
		if add(schema.CodeTooLong, s.maxMsg, "max", s.maxLen, "got", n) {
			return iss
		}
	}
	if s.pattern != nil && !s.pattern.MatchString(str) {
		if add(schema.CodePattern, s.patternMsg, "pattern", s.pattern.String()) {
			return iss
		}
	}
	switch s.format {
	case "date-time":
		if _, err := time.Parse(time.RFC3339Nano, str); err != nil {
			add(schema.CodeInvalidFormat, s.formatMsg, "format", s.format)
		}
	case "uri":
		if u, err := url.Parse(str); err != nil || u.Scheme == "" || u.Host == "" {
			add(schema.CodeInvalidFormat, s.formatMsg, "format", s.format)
		}
	}
	return iss
}

func (s stringSchema) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{Type: "string", Format: s.format}
	if s.minLen > 0 {
		out.MinLength = js.IntPtr(s.minLen)
	}
	if s.maxLen >= 0 {
		out.MaxLength = js.IntPtr(s.maxLen)
	}
	if s.pattern != nil {
		out.Pattern = s.pattern.String()
	}
	return out, nil
}

// stringAs projects a string schema to a domain type T with underlying string.
type stringAs[T ~string] struct{ inner StringBuilder }

func (s stringAs[T]) Parse(ctx context.Context, v any) (T, error) {
	str, err := s.inner.Parse(ctx, v)
	return T(str), err
}

func (s stringAs[T]) ParseWithMeta(ctx context.Context, v any) (schema.Decoded[T], error) {
	d, err := s.inner.ParseWithMeta(ctx, v)
	return schema.Decoded[T]{Value: T(d.Value), Presence: d.Presence}, err
}

func (s stringAs[T]) JSONSchema() (*js.Schema, error) { return s.inner.JSONSchema() }

// Enum returns a schema accepting exactly the given string values.
func Enum[T ~string](values ...T) schema.Schema[T] {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[string(v)] = struct{}{}
	}
	return enumSchema[T]{values: values, set: set}
}

// EnumOf adapts Enum for object fields.
func EnumOf[T ~string](values ...T) AnyAdapter { return SchemaOf[T](Enum(values...)) }

type enumSchema[T ~string] struct {
	values []T
	set    map[string]struct{}
}

func (e enumSchema[T]) Parse(_ context.Context, v any) (T, error) {
	str, ok := v.(string)
	if !ok {
		return "", invalidType("string")
	}
	if _, ok := e.set[str]; !ok {
		opts := make([]string, len(e.values))
		for i, x := range e.values {
			opts[i] = strconv.Quote(string(x))
		}
		return "", schema.Issues{schema.Issue{
			Path:    "/",
			Code:    schema.CodeInvalidEnum,
			Message: i18n.T(schema.CodeInvalidEnum, nil),
			Hint:    "expected one of " + strings.Join(opts, "|"),
			Params:  map[string]any{"got": str},
		}}
	}
	return T(str), nil
}

func (e enumSchema[T]) ParseWithMeta(ctx context.Context, v any) (schema.Decoded[T], error) {
	t, err := e.Parse(ctx, v)
	return schema.Decoded[T]{Value: t, Presence: schema.PresenceMap{"/": schema.PresenceSeen}}, err
}

func (e enumSchema[T]) JSONSchema() (*js.Schema, error) {
	vals := make([]any, len(e.values))
	for i, x := range e.values {
		vals[i] = string(x)
	}
	return &js.Schema{Type: "string", Enum: vals}, nil
}

// Bool returns the bool schema.
func Bool() schema.Schema[bool] { return boolAs[bool]{} }

// BoolOf returns an AnyAdapter for a bool projected to domain type T.
func BoolOf[T ~bool]() AnyAdapter { return SchemaOf[T](boolAs[T]{}) }

type boolAs[T ~bool] struct{}

func (boolAs[T]) Parse(_ context.Context, v any) (T, error) {
	b, ok := v.(bool)
	if !ok {
		return false, invalidType("boolean")
	}
	return T(b), nil
}

func (s boolAs[T]) ParseWithMeta(ctx context.Context, v any) (schema.Decoded[T], error) {
	b, err := s.Parse(ctx, v)
	return schema.Decoded[T]{Value: b, Presence: schema.PresenceMap{"/": schema.PresenceSeen}}, err
}

func (boolAs[T]) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "boolean"}, nil }

// Int returns an integer schema producing int64.
func Int() schema.Schema[int64] { return intAs[int64]{} }

// IntOf returns an AnyAdapter for an integer projected to domain type T.
// Fractional numbers fail with invalid_type.
func IntOf[T ~int64]() AnyAdapter { return SchemaOf[T](intAs[T]{}) }

type intAs[T ~int64] struct{}

func (intAs[T]) Parse(_ context.Context, v any) (T, error) {
	switch n := v.(type) {
	case json.Number:
		if i, err := strconv.ParseInt(string(n), 10, 64); err == nil {
			return T(i), nil
		}
		f, err := strconv.ParseFloat(string(n), 64)
		if err != nil {
			return 0, invalidType("integer")
		}
		return intFromFloat[T](f)
	case int:
		return T(n), nil
	case int64:
		return T(n), nil
	case float64:
		return intFromFloat[T](n)
	}
	return 0, invalidType("integer")
}

func intFromFloat[T ~int64](f float64) (T, error) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, invalidType("integer")
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, schema.Issues{schema.Issue{Path: "/", Code: schema.CodeTooBig, Message: i18n.T(schema.CodeTooBig, nil), Hint: "int64 overflow"}}
	}
	return T(int64(f)), nil
}

func (s intAs[T]) ParseWithMeta(ctx context.Context, v any) (schema.Decoded[T], error) {
	i, err := s.Parse(ctx, v)
	return schema.Decoded[T]{Value: i, Presence: schema.PresenceMap{"/": schema.PresenceSeen}}, err
}

func (intAs[T]) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "integer"}, nil }

// FloatOf returns an AnyAdapter for any JSON number projected to T.
func FloatOf[T ~float64]() AnyAdapter { return SchemaOf[T](floatAs[T]{}) }

type floatAs[T ~float64] struct{}

func (floatAs[T]) Parse(_ context.Context, v any) (T, error) {
	f, ok := toFloat(v)
	if !ok {
		return 0, invalidType("number")
	}
	return T(f), nil
}

func (s floatAs[T]) ParseWithMeta(ctx context.Context, v any) (schema.Decoded[T], error) {
	f, err := s.Parse(ctx, v)
	return schema.Decoded[T]{Value: f, Presence: schema.PresenceMap{"/": schema.PresenceSeen}}, err
}

func (floatAs[T]) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "number"}, nil }

func invalidType(expected string) schema.Issues {
	return schema.Issues{schema.Issue{
		Path:    "/",
		Code:    schema.CodeInvalidType,
		Message: i18n.T(schema.CodeInvalidType, map[string]string{"expected": expected}),
		Params:  map[string]any{"expected": expected},
	}}
}
