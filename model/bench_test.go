package model_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/reoring/infakt/model"
	"github.com/reoring/infakt/schema"
)

// generateInvoicesPage returns a list response with n invoices of three
// service lines each.
func generateInvoicesPage(n int) []byte {
	var buf bytes.Buffer
	buf.Grow(n * 512)
	fmt.Fprintf(&buf, `{"metainfo":{"count":%d,"total_count":%d,"next":null,"previous":null},"entities":[`, n, n*3)
	for i := 0; i < n; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, `{"id":%d,"number":"%d/2024","status":"sent","currency":"PLN","kind":"vat",`, i+1, i+1)
		fmt.Fprintf(&buf, `"invoice_date":"2024-05-01","net_price":%d,"gross_price":%d,"client_company_name":"c%d",`, i*100, i*123, i)
		buf.WriteString(`"services":[`)
		for k := 0; k < 3; k++ {
			if k > 0 {
				buf.WriteByte(',')
			}
			fmt.Fprintf(&buf, `{"id":%d,"related_id":null,"name":"line %d","quantity":1,"net_price":%d}`, k+1, k, k*100)
		}
		buf.WriteString(`]}`)
	}
	buf.WriteString(`]}`)
	return buf.Bytes()
}

func BenchmarkParseInvoicesResponse(b *testing.B) {
	ctx := context.Background()
	for _, n := range []int{1, 25, 100} {
		data := generateInvoicesPage(n)
		b.Run(fmt.Sprintf("entities=%d", n), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			for b.Loop() {
				if _, err := schema.StreamParse[model.InvoicesResponse](ctx, model.InvoicesResponseSchema(), bytes.NewReader(data)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkInvoiceCreateValidate(b *testing.B) {
	ctx := context.Background()
	c := model.InvoiceCreate{
		Currency:    model.CurrencyPLN,
		Kind:        model.KindVAT,
		InvoiceDate: "2024-05-01",
		Services:    []model.Service{{ID: 1, Name: "Audit", NetPrice: model.Ptr(model.MinorUnits(10000))}},
	}
	b.ReportAllocs()
	for b.Loop() {
		if err := c.Validate(ctx); err != nil {
			b.Fatal(err)
		}
	}
}
