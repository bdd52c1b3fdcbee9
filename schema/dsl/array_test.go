package dsl_test

import (
	"context"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/reoring/infakt/schema"
	d "github.com/reoring/infakt/schema/dsl"
)

// Element issues are rebased under their index inside the parent field.
func TestArrayOfObjects_PathRebase(t *testing.T) {
	ctx := context.Background()
	doc := d.Object().
		Field("services", d.SchemaOf[[]map[string]any](d.Array(line()).Min(1, "at least one line"))).Required().
		MustBuild()

	_, err := doc.Parse(ctx, map[string]any{"services": []any{
		map[string]any{"id": json.Number("1"), "name": "ok"},
		map[string]any{"id": json.Number("2"), "name": ""},
	}})
	iss, _ := schema.AsIssues(err)
	if len(iss) != 1 || iss[0].Path != "/services/1/name" || iss[0].Code != schema.CodeTooShort {
		t.Fatalf("rebase: %v", iss)
	}

	_, err = doc.Parse(ctx, map[string]any{"services": []any{}})
	iss, _ = schema.AsIssues(err)
	if len(iss) != 1 || iss[0].Path != "/services" || iss[0].Message != "at least one line" {
		t.Fatalf("min: %+v", iss)
	}
}

func TestArrayOfAdapters(t *testing.T) {
	ctx := context.Background()
	ids := d.Array(d.IntOf[int64]().Positive().Schema())
	got, err := ids.Parse(ctx, []any{json.Number("1"), json.Number("7")})
	if err != nil || len(got) != 2 || got[1] != int64(7) {
		t.Fatalf("ids: %v %v", got, err)
	}
	_, err = ids.Parse(ctx, []any{json.Number("1"), json.Number("0"), json.Number("-2")})
	iss, _ := schema.AsIssues(err)
	if len(iss) != 2 || iss[0].Path != "/1" || iss[1].Path != "/2" {
		t.Fatalf("element issues: %v", iss)
	}
	if _, err := ids.Parse(ctx, "nope"); err == nil {
		t.Fatalf("expected invalid_type for non-array")
	}
}

// Nested presence is tracked per element.
func TestArray_PresenceWithMeta(t *testing.T) {
	ctx := context.Background()
	dm, err := d.Array(line()).ParseWithMeta(ctx, []any{
		map[string]any{"id": json.Number("1"), "name": "a", "note": nil},
		map[string]any{"id": json.Number("2"), "name": "b"},
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !dm.Presence.WasNull("/0/note") || dm.Presence.Seen("/1/note") || !dm.Presence.Seen("/1/name") {
		t.Fatalf("presence: %v", dm.Presence)
	}
}
