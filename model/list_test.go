package model_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/reoring/infakt/model"
	"github.com/reoring/infakt/schema"
)

const listBody = `{
	"metainfo": {"count": 2, "total_count": 41, "next": "https://api.infakt.pl/api/v3/invoices.json?offset=2", "previous": null},
	"entities": [
		{"id": 1, "number": "1/01/2024", "gross_price": 12300, "services": [{"id": 9, "related_id": null, "name": "Hosting"}]},
		{"id": 2, "number": null, "currency": "EUR"}
	]
}`

func TestInvoicesResponse_Parse(t *testing.T) {
	res, err := schema.StreamParse[model.InvoicesResponse](context.Background(), model.InvoicesResponseSchema(), strings.NewReader(listBody))
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.MetaInfo.Count)
	assert.Equal(t, int64(41), res.MetaInfo.TotalCount)
	require.NotNil(t, res.MetaInfo.Next)
	assert.Nil(t, res.MetaInfo.Previous)
	assert.True(t, res.MetaInfo.WasNull("previous"))

	require.Len(t, res.Entities, 2)
	assert.Equal(t, "123.00", model.Format(res.Entities[0].GrossPrice))
	assert.Equal(t, "Hosting", res.Entities[0].Services[0].Name)
	assert.True(t, res.Entities[1].WasNull("number"))
	assert.False(t, res.Entities[1].Seen("services"))
	assert.Equal(t, model.CurrencyEUR, *res.Entities[1].Currency)
}

func TestInvoicesResponse_Invalid(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name string
		body string
		path string
		code string
	}{
		{"missing metainfo", `{"entities":[]}`, "/metainfo", schema.CodeRequired},
		{"missing next", `{"metainfo":{"count":0,"total_count":0,"previous":null},"entities":[]}`, "/metainfo/next", schema.CodeRequired},
		{"relative next", `{"metainfo":{"count":0,"total_count":0,"next":"/invoices.json","previous":null},"entities":[]}`, "/metainfo/next", schema.CodeInvalidFormat},
		{"negative count", `{"metainfo":{"count":-1,"total_count":0,"next":null,"previous":null},"entities":[]}`, "/metainfo/count", schema.CodeTooSmall},
		{"bad entity", `{"metainfo":{"count":1,"total_count":1,"next":null,"previous":null},"entities":[{"kind":"receipt"}]}`, "/entities/0/kind", schema.CodeInvalidEnum},
		{"entities not array", `{"metainfo":{"count":0,"total_count":0,"next":null,"previous":null},"entities":{}}`, "/entities", schema.CodeInvalidType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := schema.ParseFrom[model.InvoicesResponse](ctx, model.InvoicesResponseSchema(), schema.JSONBytes([]byte(tc.body)))
			iss, ok := schema.AsIssues(err)
			require.True(t, ok, "err=%v", err)
			assert.True(t, iss.Has(tc.path, tc.code), "issues=%v", iss)
		})
	}
}

func TestInvoicesParams(t *testing.T) {
	ctx := context.Background()

	var p model.InvoicesParams
	require.NoError(t, p.Validate(ctx))
	assert.Equal(t, "", p.Query())

	p.Fields = []model.InvoiceField{model.FieldID, model.FieldNumber}
	require.NoError(t, p.Validate(ctx))
	assert.Equal(t, "id,number", p.Query())

	p.Fields = append(p.Fields, "total")
	iss, ok := schema.AsIssues(p.Validate(ctx))
	require.True(t, ok)
	require.Len(t, iss, 1)
	assert.Equal(t, "/fields/2", iss[0].Path)
	assert.Equal(t, schema.CodeInvalidEnum, iss[0].Code)

	assert.Equal(t, []model.InvoiceField{"id", "number"}, model.ParseFields(" id, ,number,"))
	assert.Nil(t, model.ParseFields(""))
}

// Query and ParseFields are inverses over valid field lists.
func TestInvoicesParams_QueryRoundTrip(t *testing.T) {
	fields := model.InvoiceFields()
	rapid.Check(t, func(t *rapid.T) {
		sel := rapid.SliceOfN(rapid.SampledFrom(fields), 1, 10).Draw(t, "fields")
		p := model.InvoicesParams{Fields: sel}
		if err := p.Validate(context.Background()); err != nil {
			t.Fatalf("valid fields rejected: %v", err)
		}
		got := model.ParseFields(p.Query())
		if len(got) != len(sel) {
			t.Fatalf("round trip: %v != %v", got, sel)
		}
		for i := range sel {
			if got[i] != sel[i] {
				t.Fatalf("round trip: %v != %v", got, sel)
			}
		}
	})
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, "123.45", model.MinorUnits(12345).String())
	assert.Equal(t, "0.05", model.MinorUnits(5).String())
	assert.Equal(t, "-", model.Format(nil))
	assert.Equal(t, model.MinorUnits(1999), model.MinorUnitsFromDecimal(decimal.RequireFromString("19.985")))
	assert.Equal(t, model.MinorUnits(1998), model.MinorUnitsFromDecimal(decimal.RequireFromString("19.984")))

	rapid.Check(t, func(t *rapid.T) {
		m := model.MinorUnits(rapid.Int64Range(-1<<40, 1<<40).Draw(t, "m"))
		if got := model.MinorUnitsFromDecimal(m.Decimal()); got != m {
			t.Fatalf("%d -> %s -> %d", m, m.Decimal(), got)
		}
	})
}
