// Package schema is the validation engine behind the inFakt models.
//
// A Schema[T] turns an untyped wire value (the result of decoding JSON or YAML
// into any) into T, or reports every violation it finds as Issues. Issues carry
// a JSON Pointer path, a stable code, and a localized message, so callers can
// map failures back to the offending field (for example /services/0/name).
//
// Schemas are built with the schema/dsl package and are immutable once built,
// which makes them safe to share between goroutines.
//
// Entry points:
//
//	ParseFrom(ctx, s, JSONBytes(b))
//	ParseFromWithMeta(ctx, s, YAMLBytes(b))
//	StreamParse(ctx, s, resp.Body, ParseOpt{MaxBytes: 1 << 20})
//
// WithMeta variants additionally return a PresenceMap that distinguishes an
// absent key from an explicit null and from a default applied by the schema.
package schema
