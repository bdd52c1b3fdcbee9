// Package model holds the inFakt invoice resources: their wire schemas and the
// typed Go values the schemas bind to.
//
// Read models (Invoice, InvoicesResponse) accept every field as optional and
// nullable; the embedded schema.Meta tells an absent key from an explicit null.
// The write model (InvoiceCreate) drops read-only fields, requires
// invoice_date and at least one service line, and defaults currency to PLN
// and kind to vat.
//
// Monetary amounts are integers in minor currency units (grosze); see
// MinorUnits.
package model
