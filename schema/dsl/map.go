package dsl

import (
	"context"

	"github.com/reoring/infakt/schema"
	js "github.com/reoring/infakt/schema/jsonschema"
)

// MapAny returns a loose dictionary schema: any JSON object is accepted and
// returned as is.
func MapAny() schema.Schema[map[string]any] { return mapAnySchema{} }

type mapAnySchema struct{}

func (mapAnySchema) Parse(_ context.Context, v any) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, invalidType("object")
	}
	return m, nil
}

func (s mapAnySchema) ParseWithMeta(ctx context.Context, v any) (schema.Decoded[map[string]any], error) {
	m, err := s.Parse(ctx, v)
	return schema.Decoded[map[string]any]{Value: m, Presence: schema.PresenceMap{"/": schema.PresenceSeen}}, err
}

func (mapAnySchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "object", AdditionalProperties: true}, nil
}
