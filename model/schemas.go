package model

import (
	"github.com/reoring/infakt/schema"
	d "github.com/reoring/infakt/schema/dsl"
)

// Messages surfaced verbatim to API users.
const (
	MsgDateYMD         = "Use YYYY-MM-DD"
	MsgServiceName     = "Nazwa pozycji jest wymagana"
	MsgServicesMinimum = "At least one service line is required"
)

// DateYMD matches a calendar date written as YYYY-MM-DD. Only the shape is
// checked; 2024-13-45 passes.
func DateYMD() d.StringBuilder { return d.String().Regex(`^\d{4}-\d{2}-\d{2}$`, MsgDateYMD) }

func optString() d.AnyAdapter  { return d.StringOf[string]().Nullable() }
func optDate() d.AnyAdapter    { return d.StringOf[string](DateYMD()).Nullable() }
func optBool() d.AnyAdapter    { return d.BoolOf[bool]().Nullable() }
func optMoney() d.AnyAdapter   { return d.IntOf[MinorUnits]().NonNegative().Nullable() }
func optRef() d.AnyAdapter     { return d.IntOf[int64]().Positive().Nullable() }
func looseDict() d.AnyAdapter  { return d.SchemaOf(d.MapAny()).Nullable() }
func positiveIDs() d.AnyAdapter { return d.ArrayOf(d.IntOf[int64]().Positive().Schema()).Nullable() }

var serviceSchema = d.Object().
	Field("id", d.IntOf[int64]()).Required().
	Field("related_id", d.IntOf[int64]().Nullable()).Required().
	Field("name", d.StringOf[string](d.String().Min(1, MsgServiceName))).Required().
	Field("tax_symbol", d.StringOf[string]()).
	Field("unit", d.StringOf[string]()).
	Field("quantity", d.FloatOf[float64]().Positive()).
	Field("unit_net_price", d.IntOf[MinorUnits]().NonNegative()).
	Field("net_price", d.IntOf[MinorUnits]().NonNegative()).
	Field("gross_price", d.IntOf[MinorUnits]().NonNegative()).
	Field("tax_price", d.IntOf[MinorUnits]().NonNegative()).
	Field("symbol", d.StringOf[string]()).
	Field("pkwiu", d.StringOf[string]()).
	Field("cn", optString()).
	Field("pkob", optString()).
	Field("flat_rate_tax_symbol", d.StringOf[string]()).
	Field("discount", d.StringOf[string]()).
	Field("unit_net_price_before_discount", d.IntOf[MinorUnits]().NonNegative()).
	Field("gtu_id", optRef()).
	Field("vat_date_value", d.EnumOf(vatDateValues...)).
	Field("occasional_sale", d.BoolOf[bool]()).
	UnknownStrict().
	MustBuild()

var extensionsSchema = d.Object().
	Field("payments", d.SchemaOf(d.Object().
		Field("link", optString()).
		Field("available", d.BoolOf[bool]()).
		UnknownStrip().
		MustBuild())).
	Field("shares", d.SchemaOf(d.Object().
		Field("link", optString()).
		Field("available", d.BoolOf[bool]()).
		Field("valid_until", optDate()).
		UnknownStrip().
		MustBuild())).
	UnknownStrip().
	MustBuild()

// invoiceSchema is the read model. Its key set defines InvoiceField.
var invoiceSchema = d.Object().
	// read-only
	Field("id", d.IntOf[int64]().NonNegative().Nullable()).
	Field("status", d.EnumOf(invoiceStatuses...).Nullable()).
	Field("created_at", d.StringOf[string](d.String().DateTime()).Nullable()).
	Field("local_government_seller_address", looseDict()).
	Field("ksef_data", looseDict()).
	Field("extensions", d.SchemaOf(extensionsSchema).Nullable()).
	// editable
	Field("number", optString()).
	Field("currency", d.EnumOf(Currencies...).Nullable()).
	Field("paid_price", optMoney()).
	Field("notes", optString()).
	Field("kind", d.EnumOf(invoiceKinds...).Nullable()).
	Field("payment_method", d.EnumOf(paymentMethods...).Nullable()).
	Field("split_payment_available", optBool()).
	Field("split_payment_type", d.EnumOf(splitPaymentTypes...).Nullable()).
	Field("recipient_signature", optString()).
	Field("seller_signature", optString()).
	Field("invoice_date", optDate()).
	Field("sale_date", optDate()).
	Field("payment_date", optDate()).
	Field("paid_date", optDate()).
	Field("net_price", optMoney()).
	Field("tax_price", optMoney()).
	Field("gross_price", optMoney()).
	Field("left_to_pay", optMoney()).
	Field("client_id", optRef()).
	Field("client_company_name", optString()).
	Field("client_first_name", optString()).
	Field("client_last_name", optString()).
	Field("client_business_activity_kind", d.EnumOf(clientKinds...).Nullable()).
	Field("client_street", optString()).
	Field("client_street_number", optString()).
	Field("client_flat_number", optString()).
	Field("client_city", optString()).
	Field("client_post_code", optString()).
	Field("client_tax_code", optString()).
	Field("clean_client_nip", d.StringOf[string](d.String().Regex(`^\d+$`)).Nullable()).
	Field("client_country", d.StringOf[string](d.String().Length(2)).Nullable()).
	Field("check_duplicate_number", optBool()).
	Field("bank_name", optString()).
	Field("bank_account", optString()).
	Field("swift", optString()).
	Field("sale_type", d.EnumOf(saleTypes...).Nullable()).
	Field("invoice_date_kind", d.EnumOf(invoiceDateKinds...).Nullable()).
	Field("continuous_service_start_on", optDate()).
	Field("continuous_service_end_on", optDate()).
	Field("services", d.ArrayOf(serviceSchema).Nullable()).
	Field("vat_exemption_reason", optRef()).
	Field("bdo_code", optString()).
	Field("transaction_kind_id", optRef()).
	Field("document_markings_ids", positiveIDs()).
	Field("receipt_number", optString()).
	Field("not_income", optBool()).
	Field("vat_exchange_date_kind", d.EnumOf(vatExchangeKinds...).Nullable()).
	Field("local_government_recipient_address", looseDict()).
	UnknownStrip().
	MustBuild()

// ReadOnlyFields are present on Invoice but never accepted on create.
var ReadOnlyFields = []InvoiceField{
	FieldID, FieldStatus, FieldCreatedAt, FieldExtensions, FieldKsefData,
	FieldLocalGovernmentSellerAddress, FieldCleanClientNIP,
}

var invoiceCreateSchema = d.Extend(invoiceSchema).
	Omit(fieldNames(ReadOnlyFields)...).
	Field("currency", d.EnumOf(Currencies...)).Default(string(CurrencyPLN)).
	Field("kind", d.EnumOf(invoiceKinds...)).Default(string(KindVAT)).
	Field("invoice_date", d.StringOf[string](DateYMD())).Required().
	Field("services", d.SchemaOf[[]map[string]any](d.Array(serviceSchema).Min(1, MsgServicesMinimum))).Required().
	MustBuild()

var metaInfoSchema = d.Object().
	Field("count", d.IntOf[int64]().NonNegative()).Required().
	Field("total_count", d.IntOf[int64]().NonNegative()).Required().
	Field("next", d.StringOf[string](d.String().URL()).Nullable()).Required().
	Field("previous", d.StringOf[string](d.String().URL()).Nullable()).Required().
	UnknownStrip().
	MustBuild()

var invoicesResponseSchema = d.Object().
	Field("metainfo", d.SchemaOf(metaInfoSchema)).Required().
	Field("entities", d.ArrayOf(invoiceSchema)).Required().
	UnknownStrip().
	MustBuild()

var (
	typedService          = d.MustBind[Service](serviceSchema)
	typedInvoice          = d.MustBind[Invoice](invoiceSchema)
	typedInvoiceCreate    = d.MustBind[InvoiceCreate](invoiceCreateSchema)
	typedMetaInfo         = d.MustBind[MetaInfo](metaInfoSchema)
	typedInvoicesResponse = d.MustBind[InvoicesResponse](invoicesResponseSchema)
)

// ServiceSchema validates a single invoice line. Unknown keys are rejected.
func ServiceSchema() d.TypedSchema[Service] { return typedService }

// InvoiceSchema validates the invoice read model.
func InvoiceSchema() d.TypedSchema[Invoice] { return typedInvoice }

// InvoiceCreateSchema validates a create payload and applies defaults.
func InvoiceCreateSchema() d.TypedSchema[InvoiceCreate] { return typedInvoiceCreate }

// MetaInfoSchema validates list pagination metadata.
func MetaInfoSchema() d.TypedSchema[MetaInfo] { return typedMetaInfo }

// InvoicesResponseSchema validates the body of GET /invoices.json.
func InvoicesResponseSchema() d.TypedSchema[InvoicesResponse] { return typedInvoicesResponse }

// Schemas maps the names used by tooling (CLI, JSON Schema export) to the
// map-level schemas.
func Schemas() map[string]schema.Schema[map[string]any] {
	return map[string]schema.Schema[map[string]any]{
		"invoice":           invoiceSchema,
		"invoice-create":    invoiceCreateSchema,
		"service":           serviceSchema,
		"metainfo":          metaInfoSchema,
		"invoices-response": invoicesResponseSchema,
		"invoices-params":   invoicesParamsSchema,
	}
}
