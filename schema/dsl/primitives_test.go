package dsl_test

import (
	"context"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/reoring/infakt/schema"
	d "github.com/reoring/infakt/schema/dsl"
)

func firstCode(t *testing.T, err error) string {
	t.Helper()
	iss, ok := schema.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected Issues error, got %v", err)
	}
	return iss[0].Code
}

func TestStringSchema_Basic(t *testing.T) {
	s := d.String()
	ctx := context.Background()

	v, err := s.Parse(ctx, "hello")
	if err != nil || v != "hello" {
		t.Fatalf("parse ok expected, got v=%v err=%v", v, err)
	}
	_, err = s.Parse(ctx, 1)
	if code := firstCode(t, err); code != schema.CodeInvalidType {
		t.Fatalf("expected invalid_type, got %s", code)
	}

	dv, err := s.ParseWithMeta(ctx, "x")
	if err != nil {
		t.Fatalf("parse with meta err: %v", err)
	}
	if !dv.Presence.Seen("/") {
		t.Fatalf("expected PresenceSeen at root")
	}
}

// Min, Length and Regex report their own codes and honor custom messages.
func TestStringSchema_Constraints(t *testing.T) {
	ctx := context.Background()

	_, err := d.String().Min(1, "name required").Parse(ctx, "")
	iss, _ := schema.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != schema.CodeTooShort || iss[0].Message != "name required" {
		t.Fatalf("min: got %+v", iss)
	}

	two := d.String().Length(2)
	if _, err := two.Parse(ctx, "PL"); err != nil {
		t.Fatalf("length ok: %v", err)
	}
	if code := firstCode(t, func() error { _, e := two.Parse(ctx, "POL"); return e }()); code != schema.CodeTooLong {
		t.Fatalf("length long: %s", code)
	}
	if code := firstCode(t, func() error { _, e := two.Parse(ctx, "P"); return e }()); code != schema.CodeTooShort {
		t.Fatalf("length short: %s", code)
	}

	digits := d.String().Regex(`^\d+$`, "digits only")
	if _, err := digits.Parse(ctx, "1234567890"); err != nil {
		t.Fatalf("regex ok: %v", err)
	}
	_, err = digits.Parse(ctx, "123-456")
	iss, _ = schema.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != schema.CodePattern || iss[0].Message != "digits only" {
		t.Fatalf("regex: got %+v", iss)
	}
}

func TestStringSchema_Formats(t *testing.T) {
	ctx := context.Background()
	dt := d.String().DateTime()
	for _, ok := range []string{"2024-01-15T10:00:00Z", "2024-01-15T10:00:00+01:00", "2024-01-15T10:00:00.123+02:00"} {
		if _, err := dt.Parse(ctx, ok); err != nil {
			t.Fatalf("datetime %q: %v", ok, err)
		}
	}
	for _, bad := range []string{"2024-01-15", "2024-01-15T10:00:00", "yesterday"} {
		if code := firstCode(t, func() error { _, e := dt.Parse(ctx, bad); return e }()); code != schema.CodeInvalidFormat {
			t.Fatalf("datetime %q: %s", bad, code)
		}
	}

	u := d.String().URL()
	if _, err := u.Parse(ctx, "https://api.infakt.pl/api/v3/invoices.json?offset=10"); err != nil {
		t.Fatalf("url ok: %v", err)
	}
	if code := firstCode(t, func() error { _, e := u.Parse(ctx, "/invoices.json"); return e }()); code != schema.CodeInvalidFormat {
		t.Fatalf("relative url: %s", code)
	}
}

type color string

func TestEnum(t *testing.T) {
	ctx := context.Background()
	s := d.Enum[color]("red", "green")
	v, err := s.Parse(ctx, "green")
	if err != nil || v != color("green") {
		t.Fatalf("enum ok: v=%v err=%v", v, err)
	}
	_, err = s.Parse(ctx, "blue")
	iss, _ := schema.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != schema.CodeInvalidEnum || iss[0].Hint == "" {
		t.Fatalf("enum bad: %+v", iss)
	}
	js, _ := s.JSONSchema()
	if len(js.Enum) != 2 {
		t.Fatalf("enum json schema: %+v", js)
	}
}

// Integers accept integral json.Number values and reject fractions.
func TestInt(t *testing.T) {
	ctx := context.Background()
	s := d.Int()
	for in, want := range map[json.Number]int64{"42": 42, "1e3": 1000, "-7": -7, "2.0": 2} {
		got, err := s.Parse(ctx, in)
		if err != nil || got != want {
			t.Fatalf("int %s: got %d err=%v", in, got, err)
		}
	}
	if code := firstCode(t, func() error { _, e := s.Parse(ctx, json.Number("1.5")); return e }()); code != schema.CodeInvalidType {
		t.Fatalf("fraction: %s", code)
	}
	if code := firstCode(t, func() error { _, e := s.Parse(ctx, "42"); return e }()); code != schema.CodeInvalidType {
		t.Fatalf("string: %s", code)
	}
}

func TestAdapterBounds(t *testing.T) {
	ctx := context.Background()
	obj := d.Object().
		Field("price", d.IntOf[int64]().NonNegative()).
		Field("qty", d.FloatOf[float64]().Positive()).
		Field("gtu", d.IntOf[int64]().Positive().Nullable()).
		MustBuild()

	if _, err := obj.Parse(ctx, map[string]any{"price": json.Number("0"), "qty": json.Number("0.5"), "gtu": nil}); err != nil {
		t.Fatalf("bounds ok: %v", err)
	}
	_, err := obj.Parse(ctx, map[string]any{"price": json.Number("-1"), "qty": json.Number("0"), "gtu": json.Number("0")})
	iss, _ := schema.AsIssues(err)
	if len(iss) != 3 {
		t.Fatalf("expected 3 issues, got %v", iss)
	}
	for _, p := range []string{"/price", "/qty", "/gtu"} {
		if !iss.Has(p, schema.CodeTooSmall) {
			t.Fatalf("missing too_small at %s: %v", p, iss)
		}
	}
}

func TestMapAny(t *testing.T) {
	ctx := context.Background()
	m, err := d.MapAny().Parse(ctx, map[string]any{"anything": []any{1, "x"}})
	if err != nil || len(m) != 1 {
		t.Fatalf("map any: %v %v", m, err)
	}
	if code := firstCode(t, func() error { _, e := d.MapAny().Parse(ctx, "x"); return e }()); code != schema.CodeInvalidType {
		t.Fatalf("map any type: %s", code)
	}
}
