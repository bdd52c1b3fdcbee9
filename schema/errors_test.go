package schema_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/reoring/infakt/schema"
)

// Error() shows the first three issues and the total.
func TestIssues_ErrorSummary(t *testing.T) {
	iss := schema.Issues{
		{Path: "/a", Code: schema.CodeRequired},
		{Path: "/b", Code: schema.CodeInvalidType},
		{Path: "/c", Code: schema.CodePattern},
		{Path: "/d", Code: schema.CodeTooSmall},
	}
	want := "required at /a; invalid_type at /b; pattern at /c; ... (total 4)"
	if got := iss.Error(); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if schema.Issues(nil).Error() != "" {
		t.Fatalf("empty issues should render empty")
	}
}

// AsIssues sees through wrapping.
func TestAsIssues_Wrapped(t *testing.T) {
	base := schema.Issues{{Path: "/x", Code: schema.CodeRequired}}
	err := fmt.Errorf("op: %w", base)
	iss, ok := schema.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Path != "/x" {
		t.Fatalf("AsIssues: %v %v", iss, ok)
	}
	if _, ok := schema.AsIssues(errors.New("plain")); ok {
		t.Fatalf("plain error is not Issues")
	}
}

func TestRebaseAndJoin(t *testing.T) {
	iss := schema.Rebase(schema.Issues{{Path: "/"}, {Path: "/name"}, {Path: "0"}}, "/services/2")
	want := []string{"/services/2", "/services/2/name", "/services/2/0"}
	for i, p := range iss.Paths() {
		if p != want[i] {
			t.Fatalf("rebase[%d]: got %s want %s", i, p, want[i])
		}
	}
	if got := schema.JoinPointer("/", "/a"); got != "/a" {
		t.Fatalf("join root: %s", got)
	}
	if got := schema.Root().Field("a/b").Index(3).Field("t~").Pointer(); got != "/a~1b/3/t~0" {
		t.Fatalf("escape: %s", got)
	}
}

func TestPresenceMap_Sub(t *testing.T) {
	pm := schema.PresenceMap{
		"/":                schema.PresenceSeen,
		"/services":        schema.PresenceSeen,
		"/services/0":      schema.PresenceSeen,
		"/services/0/cn":   schema.PresenceSeen | schema.PresenceWasNull,
		"/services_extra":  schema.PresenceSeen,
		"/currency":        schema.PresenceDefaultApplied,
	}
	sub := pm.Sub("/services/0")
	if !sub.Seen("/") || !sub.WasNull("cn") || len(sub) != 2 {
		t.Fatalf("sub: %v", sub)
	}
	if len(pm.Sub("/services")) != 3 {
		t.Fatalf("prefix must respect segment boundaries: %v", pm.Sub("/services"))
	}
	if !pm.DefaultApplied("currency") || pm.Seen("currency") {
		t.Fatalf("flags: %v", pm)
	}
}
