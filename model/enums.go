package model

// Currency is an ISO 4217 code accepted by inFakt.
type Currency string

const (
	CurrencyPLN Currency = "PLN"
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
	CurrencyCHF Currency = "CHF"
)

// Currencies lists every accepted currency code.
var Currencies = []Currency{
	"PLN", "THB", "USD", "AUD", "HKD", "CAD", "NZD", "SGD", "EUR", "HUF",
	"CHF", "GBP", "UAH", "JPY", "CZK", "DKK", "ISK", "NOK", "SEK", "HRK",
	"RON", "BGN", "TRY", "LTL", "LVL", "PHP", "MXN", "ZAR", "BRL", "MYR",
	"RUB", "IDR", "KRW", "CNY", "INR",
}

type InvoiceKind string

const (
	KindProforma InvoiceKind = "proforma"
	KindVAT      InvoiceKind = "vat"
)

type PaymentMethod string

const (
	PaymentTransfer       PaymentMethod = "transfer"
	PaymentCash           PaymentMethod = "cash"
	PaymentCard           PaymentMethod = "card"
	PaymentBarter         PaymentMethod = "barter"
	PaymentCheck          PaymentMethod = "check"
	PaymentBillOfSale     PaymentMethod = "bill_of_sale"
	PaymentDelivery       PaymentMethod = "delivery"
	PaymentCompensation   PaymentMethod = "compensation"
	PaymentAccredited     PaymentMethod = "accredited"
	PaymentPaypal         PaymentMethod = "paypal"
	PaymentInstalmentSale PaymentMethod = "instalment_sale"
	PaymentPayU           PaymentMethod = "payu"
	PaymentTpay           PaymentMethod = "tpay"
	PaymentPrzelewy24     PaymentMethod = "przelewy24"
	PaymentDotpay         PaymentMethod = "dotpay"
	PaymentOther          PaymentMethod = "other"
)

// SplitPaymentType applies only when the split payment mechanism is used.
type SplitPaymentType string

const (
	SplitPaymentRequired SplitPaymentType = "required"
	SplitPaymentOptional SplitPaymentType = "optional"
)

type InvoiceStatus string

const (
	StatusDraft   InvoiceStatus = "draft"
	StatusSent    InvoiceStatus = "sent"
	StatusPrinted InvoiceStatus = "printed"
	StatusPaid    InvoiceStatus = "paid"
)

type ClientBusinessActivityKind string

const (
	ClientPrivatePerson ClientBusinessActivityKind = "private_person"
	ClientSelfEmployed  ClientBusinessActivityKind = "self_employed"
	ClientOtherBusiness ClientBusinessActivityKind = "other_business"
)

// SaleType is used for foreign customers; the empty string is a valid value.
type SaleType string

const (
	SaleService     SaleType = "service"
	SaleMerchandise SaleType = "merchandise"
	SaleUnspecified SaleType = ""
)

type InvoiceDateKind string

const (
	DateKindSale                InvoiceDateKind = "sale_date"
	DateKindService             InvoiceDateKind = "service_date"
	DateKindCargo               InvoiceDateKind = "cargo_date"
	DateKindContinuousDateEndOn InvoiceDateKind = "continuous_date_end_on"
)

type VatExchangeDateKind string

const (
	VatExchangeVAT VatExchangeDateKind = "vat"
	VatExchangePIT VatExchangeDateKind = "pit"
)

// VatDateValue selects which date drives the VAT date of a service line.
type VatDateValue string

const (
	VatDateIssue VatDateValue = "issue_date"
	VatDateSale  VatDateValue = "sale_date"
	VatDatePaid  VatDateValue = "paid_date"
)

var (
	invoiceKinds      = []InvoiceKind{KindProforma, KindVAT}
	paymentMethods    = []PaymentMethod{PaymentTransfer, PaymentCash, PaymentCard, PaymentBarter, PaymentCheck, PaymentBillOfSale, PaymentDelivery, PaymentCompensation, PaymentAccredited, PaymentPaypal, PaymentInstalmentSale, PaymentPayU, PaymentTpay, PaymentPrzelewy24, PaymentDotpay, PaymentOther}
	splitPaymentTypes = []SplitPaymentType{SplitPaymentRequired, SplitPaymentOptional}
	invoiceStatuses   = []InvoiceStatus{StatusDraft, StatusSent, StatusPrinted, StatusPaid}
	clientKinds       = []ClientBusinessActivityKind{ClientPrivatePerson, ClientSelfEmployed, ClientOtherBusiness}
	saleTypes         = []SaleType{SaleService, SaleMerchandise, SaleUnspecified}
	invoiceDateKinds  = []InvoiceDateKind{DateKindSale, DateKindService, DateKindCargo, DateKindContinuousDateEndOn}
	vatExchangeKinds  = []VatExchangeDateKind{VatExchangeVAT, VatExchangePIT}
	vatDateValues     = []VatDateValue{VatDateIssue, VatDateSale, VatDatePaid}
)
