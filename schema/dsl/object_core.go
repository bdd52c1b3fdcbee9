package dsl

import (
	"context"
	"sort"

	"github.com/reoring/infakt/schema"
	"github.com/reoring/infakt/schema/i18n"
	js "github.com/reoring/infakt/schema/jsonschema"
)

type objectSchema struct {
	fields        map[string]AnyAdapter
	order         []string
	required      map[string]struct{}
	unknownPolicy schema.UnknownPolicy
	unknownTarget string
}

var _ schema.Schema[map[string]any] = (*objectSchema)(nil)

// Keys returns the declared keys in declaration order.
func (o *objectSchema) Keys() []string { return append([]string(nil), o.order...) }

// handleExistingField parses a present field value and records presence flags.
// Child issues are rebased under "/field".
func (o *objectSchema) handleExistingField(ctx context.Context, k string, ad AnyAdapter, val any, pm schema.PresenceMap) (any, schema.Issues) {
	base := "/" + schema.EscapeToken(k)
	if pm != nil {
		pm[base] |= schema.PresenceSeen
		if val == nil {
			pm[base] |= schema.PresenceWasNull
		}
		parsed, child, err := ad.parseWithMeta(ctx, val)
		if err != nil {
			return nil, schema.Rebase(schema.IssuesFromErr("/", err), base)
		}
		pm.MergeUnder(base, child)
		return parsed, nil
	}
	parsed, err := ad.parse(ctx, val)
	if err != nil {
		return nil, schema.Rebase(schema.IssuesFromErr("/", err), base)
	}
	return parsed, nil
}

// handleMissingField applies a default when available and records presence;
// returns handled=true if the default path executed.
func (o *objectSchema) handleMissingField(ctx context.Context, k string, ad AnyAdapter, pm schema.PresenceMap) (any, schema.Issues, bool) {
	if ad.applyDefault == nil {
		return nil, nil, false
	}
	base := "/" + schema.EscapeToken(k)
	dv, err := ad.applyDefault(ctx)
	if err != nil {
		return nil, schema.Rebase(schema.IssuesFromErr("/", err), base), true
	}
	if pm != nil {
		pm[base] |= schema.PresenceDefaultApplied
	}
	return dv, nil, true
}

// collectKnown parses known fields in declaration order, applies defaults,
// and enforces required keys.
func (o *objectSchema) collectKnown(ctx context.Context, src map[string]any, pm schema.PresenceMap) (map[string]any, schema.Issues) {
	out := make(map[string]any, len(src))
	var iss schema.Issues
	for _, k := range o.order {
		ad := o.fields[k]
		if val, exists := src[k]; exists {
			parsed, i2 := o.handleExistingField(ctx, k, ad, val, pm)
			if len(i2) > 0 {
				iss = schema.AppendIssues(iss, i2...)
				if schema.IsFailFast(ctx) {
					return out, iss
				}
				continue
			}
			out[k] = parsed
			continue
		}
		if dv, i2, handled := o.handleMissingField(ctx, k, ad, pm); handled {
			if len(i2) > 0 {
				iss = schema.AppendIssues(iss, i2...)
				if schema.IsFailFast(ctx) {
					return out, iss
				}
			} else {
				out[k] = dv
			}
			continue
		}
		if _, req := o.required[k]; req {
			iss = schema.AppendIssues(iss, schema.Issue{Path: "/" + schema.EscapeToken(k), Code: schema.CodeRequired, Message: i18n.T(schema.CodeRequired, nil)})
			if schema.IsFailFast(ctx) {
				return out, iss
			}
		}
	}
	return out, iss
}

// collectUnknown processes unknown keys according to unknownPolicy and may
// write into out for passthrough.
func (o *objectSchema) collectUnknown(src map[string]any, out map[string]any) schema.Issues {
	var iss schema.Issues
	uks := make([]string, 0, len(src))
	for k := range src {
		if _, known := o.fields[k]; !known {
			uks = append(uks, k)
		}
	}
	sort.Strings(uks)
	for _, k := range uks {
		switch o.unknownPolicy {
		case schema.UnknownStrict:
			iss = schema.AppendIssues(iss, schema.Issue{Path: "/" + schema.EscapeToken(k), Code: schema.CodeUnknownKey, Message: i18n.T(schema.CodeUnknownKey, nil)})
		case schema.UnknownStrip:
			// drop
		case schema.UnknownPassthrough:
			extra, _ := out[o.unknownTarget].(map[string]any)
			if extra == nil {
				extra = map[string]any{}
			}
			extra[k] = src[k]
			out[o.unknownTarget] = extra
		}
	}
	return iss
}

func (o *objectSchema) parse(ctx context.Context, v any, pm schema.PresenceMap) (map[string]any, error) {
	src, ok := v.(map[string]any)
	if !ok {
		return nil, invalidType("object")
	}
	out, iss := o.collectKnown(ctx, src, pm)
	if schema.IsFailFast(ctx) && len(iss) > 0 {
		return nil, iss
	}
	iss = append(iss, o.collectUnknown(src, out)...)
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (o *objectSchema) Parse(ctx context.Context, v any) (map[string]any, error) {
	return o.parse(ctx, v, nil)
}

func (o *objectSchema) ParseWithMeta(ctx context.Context, v any) (schema.Decoded[map[string]any], error) {
	pm := schema.PresenceMap{"/": schema.PresenceSeen}
	m, err := o.parse(ctx, v, pm)
	return schema.Decoded[map[string]any]{Value: m, Presence: pm}, err
}

func (o *objectSchema) JSONSchema() (*js.Schema, error) {
	props := make(map[string]*js.Schema, len(o.fields))
	for k, ad := range o.fields {
		ps, err := ad.jsonSchema()
		if err != nil {
			return nil, err
		}
		props[k] = ps
	}
	req := make([]string, 0, len(o.required))
	for k := range o.required {
		req = append(req, k)
	}
	sort.Strings(req)
	// Strip accepts then discards unknown keys, so it exports as true.
	additional := o.unknownPolicy != schema.UnknownStrict
	return &js.Schema{Type: "object", Properties: props, Required: req, AdditionalProperties: additional}, nil
}
