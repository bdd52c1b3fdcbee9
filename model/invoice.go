package model

import (
	"context"

	"github.com/reoring/infakt/schema"
)

// Service is one invoice line. Prices are in minor units.
type Service struct {
	schema.Meta
	ID        int64  `json:"id"`
	RelatedID *int64 `json:"related_id"`
	Name      string `json:"name"`

	TaxSymbol *string  `json:"tax_symbol,omitempty"`
	Unit      *string  `json:"unit,omitempty"`
	Quantity  *float64 `json:"quantity,omitempty"`

	UnitNetPrice *MinorUnits `json:"unit_net_price,omitempty"`
	NetPrice     *MinorUnits `json:"net_price,omitempty"`
	GrossPrice   *MinorUnits `json:"gross_price,omitempty"`
	TaxPrice     *MinorUnits `json:"tax_price,omitempty"`

	// Symbol is the deprecated combined PKWiU/CN/PKOB classification.
	Symbol *string `json:"symbol,omitempty"`
	PKWiU  *string `json:"pkwiu,omitempty"`
	CN     *string `json:"cn,omitempty"`
	PKOB   *string `json:"pkob,omitempty"`

	FlatRateTaxSymbol          *string       `json:"flat_rate_tax_symbol,omitempty"`
	Discount                   *string       `json:"discount,omitempty"`
	UnitNetPriceBeforeDiscount *MinorUnits   `json:"unit_net_price_before_discount,omitempty"`
	GTUID                      *int64        `json:"gtu_id,omitempty"`
	VatDateValue               *VatDateValue `json:"vat_date_value,omitempty"`
	OccasionalSale             *bool         `json:"occasional_sale,omitempty"`
}

// PaymentsExtension describes the online payment link of an invoice.
type PaymentsExtension struct {
	Link      *string `json:"link,omitempty"`
	Available *bool   `json:"available,omitempty"`
}

// SharesExtension describes the public share link of an invoice.
type SharesExtension struct {
	Link       *string `json:"link,omitempty"`
	Available  *bool   `json:"available,omitempty"`
	ValidUntil *string `json:"valid_until,omitempty"`
}

type Extensions struct {
	Payments *PaymentsExtension `json:"payments,omitempty"`
	Shares   *SharesExtension   `json:"shares,omitempty"`
}

// Invoice is the read model returned by the API. Every field is optional and
// nullable; use the embedded Meta to tell an absent key from a null one.
type Invoice struct {
	schema.Meta

	ID                           *int64         `json:"id,omitempty"`
	Status                       *InvoiceStatus `json:"status,omitempty"`
	CreatedAt                    *string        `json:"created_at,omitempty"`
	LocalGovernmentSellerAddress map[string]any `json:"local_government_seller_address,omitempty"`
	KsefData                     map[string]any `json:"ksef_data,omitempty"`
	Extensions                   *Extensions    `json:"extensions,omitempty"`

	Number        *string        `json:"number,omitempty"`
	Currency      *Currency      `json:"currency,omitempty"`
	PaidPrice     *MinorUnits    `json:"paid_price,omitempty"`
	Notes         *string        `json:"notes,omitempty"`
	Kind          *InvoiceKind   `json:"kind,omitempty"`
	PaymentMethod *PaymentMethod `json:"payment_method,omitempty"`

	SplitPaymentAvailable *bool             `json:"split_payment_available,omitempty"`
	SplitPaymentType      *SplitPaymentType `json:"split_payment_type,omitempty"`

	RecipientSignature *string `json:"recipient_signature,omitempty"`
	SellerSignature    *string `json:"seller_signature,omitempty"`

	InvoiceDate *string `json:"invoice_date,omitempty"`
	SaleDate    *string `json:"sale_date,omitempty"`
	PaymentDate *string `json:"payment_date,omitempty"`
	PaidDate    *string `json:"paid_date,omitempty"`

	NetPrice   *MinorUnits `json:"net_price,omitempty"`
	TaxPrice   *MinorUnits `json:"tax_price,omitempty"`
	GrossPrice *MinorUnits `json:"gross_price,omitempty"`
	LeftToPay  *MinorUnits `json:"left_to_pay,omitempty"`

	ClientID                   *int64                      `json:"client_id,omitempty"`
	ClientCompanyName          *string                     `json:"client_company_name,omitempty"`
	ClientFirstName            *string                     `json:"client_first_name,omitempty"`
	ClientLastName             *string                     `json:"client_last_name,omitempty"`
	ClientBusinessActivityKind *ClientBusinessActivityKind `json:"client_business_activity_kind,omitempty"`
	ClientStreet               *string                     `json:"client_street,omitempty"`
	ClientStreetNumber         *string                     `json:"client_street_number,omitempty"`
	ClientFlatNumber           *string                     `json:"client_flat_number,omitempty"`
	ClientCity                 *string                     `json:"client_city,omitempty"`
	ClientPostCode             *string                     `json:"client_post_code,omitempty"`
	ClientTaxCode              *string                     `json:"client_tax_code,omitempty"`
	CleanClientNIP             *string                     `json:"clean_client_nip,omitempty"`
	ClientCountry              *string                     `json:"client_country,omitempty"`

	CheckDuplicateNumber *bool `json:"check_duplicate_number,omitempty"`

	BankName    *string `json:"bank_name,omitempty"`
	BankAccount *string `json:"bank_account,omitempty"`
	Swift       *string `json:"swift,omitempty"`

	SaleType *SaleType `json:"sale_type,omitempty"`

	InvoiceDateKind          *InvoiceDateKind `json:"invoice_date_kind,omitempty"`
	ContinuousServiceStartOn *string          `json:"continuous_service_start_on,omitempty"`
	ContinuousServiceEndOn   *string          `json:"continuous_service_end_on,omitempty"`

	Services []Service `json:"services,omitempty"`

	VatExemptionReason  *int64  `json:"vat_exemption_reason,omitempty"`
	BDOCode             *string `json:"bdo_code,omitempty"`
	TransactionKindID   *int64  `json:"transaction_kind_id,omitempty"`
	DocumentMarkingsIDs []int64 `json:"document_markings_ids,omitempty"`

	ReceiptNumber *string `json:"receipt_number,omitempty"`
	NotIncome     *bool   `json:"not_income,omitempty"`

	VatExchangeDateKind             *VatExchangeDateKind `json:"vat_exchange_date_kind,omitempty"`
	LocalGovernmentRecipientAddress map[string]any       `json:"local_government_recipient_address,omitempty"`
}

// InvoiceCreate is the write payload. Required on the wire: invoice_date and
// services. Currency and Kind are always set after parsing because the schema
// defaults them.
type InvoiceCreate struct {
	schema.Meta

	Number        *string        `json:"number,omitempty"`
	Currency      Currency       `json:"currency"`
	PaidPrice     *MinorUnits    `json:"paid_price,omitempty"`
	Notes         *string        `json:"notes,omitempty"`
	Kind          InvoiceKind    `json:"kind"`
	PaymentMethod *PaymentMethod `json:"payment_method,omitempty"`

	SplitPaymentAvailable *bool             `json:"split_payment_available,omitempty"`
	SplitPaymentType      *SplitPaymentType `json:"split_payment_type,omitempty"`

	RecipientSignature *string `json:"recipient_signature,omitempty"`
	SellerSignature    *string `json:"seller_signature,omitempty"`

	InvoiceDate string  `json:"invoice_date"`
	SaleDate    *string `json:"sale_date,omitempty"`
	PaymentDate *string `json:"payment_date,omitempty"`
	PaidDate    *string `json:"paid_date,omitempty"`

	NetPrice   *MinorUnits `json:"net_price,omitempty"`
	TaxPrice   *MinorUnits `json:"tax_price,omitempty"`
	GrossPrice *MinorUnits `json:"gross_price,omitempty"`
	LeftToPay  *MinorUnits `json:"left_to_pay,omitempty"`

	ClientID                   *int64                      `json:"client_id,omitempty"`
	ClientCompanyName          *string                     `json:"client_company_name,omitempty"`
	ClientFirstName            *string                     `json:"client_first_name,omitempty"`
	ClientLastName             *string                     `json:"client_last_name,omitempty"`
	ClientBusinessActivityKind *ClientBusinessActivityKind `json:"client_business_activity_kind,omitempty"`
	ClientStreet               *string                     `json:"client_street,omitempty"`
	ClientStreetNumber         *string                     `json:"client_street_number,omitempty"`
	ClientFlatNumber           *string                     `json:"client_flat_number,omitempty"`
	ClientCity                 *string                     `json:"client_city,omitempty"`
	ClientPostCode             *string                     `json:"client_post_code,omitempty"`
	ClientTaxCode              *string                     `json:"client_tax_code,omitempty"`
	ClientCountry              *string                     `json:"client_country,omitempty"`

	CheckDuplicateNumber *bool `json:"check_duplicate_number,omitempty"`

	BankName    *string `json:"bank_name,omitempty"`
	BankAccount *string `json:"bank_account,omitempty"`
	Swift       *string `json:"swift,omitempty"`

	SaleType *SaleType `json:"sale_type,omitempty"`

	InvoiceDateKind          *InvoiceDateKind `json:"invoice_date_kind,omitempty"`
	ContinuousServiceStartOn *string          `json:"continuous_service_start_on,omitempty"`
	ContinuousServiceEndOn   *string          `json:"continuous_service_end_on,omitempty"`

	Services []Service `json:"services"`

	VatExemptionReason  *int64  `json:"vat_exemption_reason,omitempty"`
	BDOCode             *string `json:"bdo_code,omitempty"`
	TransactionKindID   *int64  `json:"transaction_kind_id,omitempty"`
	DocumentMarkingsIDs []int64 `json:"document_markings_ids,omitempty"`

	ReceiptNumber *string `json:"receipt_number,omitempty"`
	NotIncome     *bool   `json:"not_income,omitempty"`

	VatExchangeDateKind             *VatExchangeDateKind `json:"vat_exchange_date_kind,omitempty"`
	LocalGovernmentRecipientAddress map[string]any       `json:"local_government_recipient_address,omitempty"`
}

// ParseInvoiceCreate validates a create payload read from src and applies
// the currency and kind defaults.
func ParseInvoiceCreate(ctx context.Context, src schema.Source, opts ...schema.ParseOpt) (InvoiceCreate, error) {
	return schema.ParseFrom[InvoiceCreate](ctx, typedInvoiceCreate, src, opts...)
}

// Validate checks an InvoiceCreate built in Go code against the wire schema.
// Empty Currency and Kind are reported as invalid, not defaulted.
func (c InvoiceCreate) Validate(ctx context.Context) error {
	return typedInvoiceCreate.Check(ctx, c)
}

// Ptr returns a pointer to v, for filling optional fields.
func Ptr[T any](v T) *T { return &v }
