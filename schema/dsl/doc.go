// Package dsl provides the builder DSL for schema.
//
// Object schemas are assembled field by field; every field takes an AnyAdapter
// produced by one of the *Of helpers or by SchemaOf:
//
//	service := dsl.Object().
//		Field("id", dsl.IntOf[int64]()).Required().
//		Field("name", dsl.StringOf[string](dsl.String().Min(1, "name is required"))).Required().
//		Field("quantity", dsl.FloatOf[float64]().Positive()).
//		UnknownStrict().
//		MustBuild()
//
// Adapters compose modifiers: Nullable accepts JSON null, Min/Max/Positive
// bound numbers. A field that is not Required is optional; Default fills an
// absent field and records PresenceDefaultApplied.
//
// Extend and Omit derive one object schema from another, and Bind projects a
// map-level schema onto a struct:
//
//	create := dsl.Extend(invoice).Omit("id", "status").
//		Field("currency", dsl.EnumOf(currencies...)).Default("PLN").
//		MustBuild()
//	typed := dsl.MustBind[InvoiceCreate](create)
//
// Unknown keys are rejected by default (UnknownStrict). UnknownStrip drops
// them and UnknownPassthrough collects them under a target field.
package dsl
