package model

import (
	"context"
	"strings"

	"github.com/reoring/infakt/schema"
	d "github.com/reoring/infakt/schema/dsl"
)

// MetaInfo is the pagination block of list responses. Next and Previous are
// absolute URLs or null.
type MetaInfo struct {
	schema.Meta
	Count      int64   `json:"count"`
	TotalCount int64   `json:"total_count"`
	Next       *string `json:"next"`
	Previous   *string `json:"previous"`
}

// InvoicesResponse is the body of GET /invoices.json.
type InvoicesResponse struct {
	schema.Meta
	MetaInfo MetaInfo  `json:"metainfo"`
	Entities []Invoice `json:"entities"`
}

// InvoicesParams are the query options of the invoice list. A nil Fields
// requests the server's default projection.
type InvoicesParams struct {
	Fields []InvoiceField `json:"fields,omitempty"`
}

var invoicesParamsSchema = d.Object().
	Field("fields", d.ArrayOf(d.Enum(invoiceFields...)).Nullable()).
	UnknownStrict().
	MustBuild()

var typedInvoicesParams = d.MustBind[InvoicesParams](invoicesParamsSchema)

// InvoicesParamsSchema validates list query options.
func InvoicesParamsSchema() d.TypedSchema[InvoicesParams] { return typedInvoicesParams }

// Validate reports unknown field names as invalid_enum issues at /fields/i.
func (p InvoicesParams) Validate(ctx context.Context) error {
	return typedInvoicesParams.Check(ctx, p)
}

// Query renders the fields projection as the comma-joined value of the
// "fields" query parameter, or "" when no projection is requested.
func (p InvoicesParams) Query() string {
	return strings.Join(fieldNames(p.Fields), ",")
}

// ParseFields splits a comma-separated list into InvoiceFields. It does not
// validate; use InvoicesParams.Validate.
func ParseFields(s string) []InvoiceField {
	var out []InvoiceField
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, InvoiceField(part))
		}
	}
	return out
}
