package dsl_test

import (
	"context"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/reoring/infakt/schema"
	d "github.com/reoring/infakt/schema/dsl"
)

type lineT struct {
	schema.Meta
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	Note *string `json:"note,omitempty"`
}

type docT struct {
	schema.Meta
	Title *string `json:"title,omitempty"`
	Lines []lineT `json:"lines"`
}

func docSchema() d.TypedSchema[docT] {
	obj := d.Object().
		Field("title", d.StringOf[string]().Nullable()).
		Field("lines", d.ArrayOf[map[string]any](line())).Required().
		MustBuild()
	return d.MustBind[docT](obj)
}

// Bind projects onto the struct and hands re-rooted presence to nested Meta.
func TestBind_ProjectionAndPresence(t *testing.T) {
	ctx := context.Background()
	var raw any
	if err := json.Unmarshal([]byte(`{"title":null,"lines":[{"id":1,"name":"a","note":"n"},{"id":2,"name":"b"}]}`), &raw); err != nil {
		t.Fatal(err)
	}
	v, err := docSchema().Parse(ctx, raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if v.Title != nil || len(v.Lines) != 2 || v.Lines[1].ID != 2 || *v.Lines[0].Note != "n" {
		t.Fatalf("projection: %+v", v)
	}
	if !v.WasNull("title") || v.Seen("missing") {
		t.Fatalf("root presence: %v", v.Presence())
	}
	if !v.Lines[0].Seen("note") || v.Lines[1].Seen("note") {
		t.Fatalf("element presence: %v / %v", v.Lines[0].Presence(), v.Lines[1].Presence())
	}
}

// Bind refuses a struct that cannot hold every schema key.
func TestBind_MissingField(t *testing.T) {
	type partial struct {
		ID int64 `json:"id"`
	}
	if _, err := d.Bind[partial](line()); err == nil {
		t.Fatalf("expected error for missing struct fields")
	}
}

// Check validates an already typed value through the wire schema.
func TestBind_Check(t *testing.T) {
	ctx := context.Background()
	s := docSchema()
	if err := s.Check(ctx, docT{Lines: []lineT{{ID: 1, Name: "x"}}}); err != nil {
		t.Fatalf("check ok: %v", err)
	}
	err := s.Check(ctx, docT{Lines: []lineT{{ID: 1}}})
	iss, _ := schema.AsIssues(err)
	if !iss.Has("/lines/0/name", schema.CodeTooShort) {
		t.Fatalf("check bad: %v", err)
	}
}
