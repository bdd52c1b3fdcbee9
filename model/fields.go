package model

import (
	d "github.com/reoring/infakt/schema/dsl"
)

// InvoiceField names one key of the Invoice read model. The accepted set is
// derived from the Invoice schema itself; see InvoiceFields.
type InvoiceField string

const (
	FieldID                              InvoiceField = "id"
	FieldStatus                          InvoiceField = "status"
	FieldCreatedAt                       InvoiceField = "created_at"
	FieldLocalGovernmentSellerAddress    InvoiceField = "local_government_seller_address"
	FieldKsefData                        InvoiceField = "ksef_data"
	FieldExtensions                      InvoiceField = "extensions"
	FieldNumber                          InvoiceField = "number"
	FieldCurrency                        InvoiceField = "currency"
	FieldPaidPrice                       InvoiceField = "paid_price"
	FieldNotes                           InvoiceField = "notes"
	FieldKind                            InvoiceField = "kind"
	FieldPaymentMethod                   InvoiceField = "payment_method"
	FieldSplitPaymentAvailable           InvoiceField = "split_payment_available"
	FieldSplitPaymentType                InvoiceField = "split_payment_type"
	FieldRecipientSignature              InvoiceField = "recipient_signature"
	FieldSellerSignature                 InvoiceField = "seller_signature"
	FieldInvoiceDate                     InvoiceField = "invoice_date"
	FieldSaleDate                        InvoiceField = "sale_date"
	FieldPaymentDate                     InvoiceField = "payment_date"
	FieldPaidDate                        InvoiceField = "paid_date"
	FieldNetPrice                        InvoiceField = "net_price"
	FieldTaxPrice                        InvoiceField = "tax_price"
	FieldGrossPrice                      InvoiceField = "gross_price"
	FieldLeftToPay                       InvoiceField = "left_to_pay"
	FieldClientID                        InvoiceField = "client_id"
	FieldClientCompanyName               InvoiceField = "client_company_name"
	FieldClientFirstName                 InvoiceField = "client_first_name"
	FieldClientLastName                  InvoiceField = "client_last_name"
	FieldClientBusinessActivityKind      InvoiceField = "client_business_activity_kind"
	FieldClientStreet                    InvoiceField = "client_street"
	FieldClientStreetNumber              InvoiceField = "client_street_number"
	FieldClientFlatNumber                InvoiceField = "client_flat_number"
	FieldClientCity                      InvoiceField = "client_city"
	FieldClientPostCode                  InvoiceField = "client_post_code"
	FieldClientTaxCode                   InvoiceField = "client_tax_code"
	FieldCleanClientNIP                  InvoiceField = "clean_client_nip"
	FieldClientCountry                   InvoiceField = "client_country"
	FieldCheckDuplicateNumber            InvoiceField = "check_duplicate_number"
	FieldBankName                        InvoiceField = "bank_name"
	FieldBankAccount                     InvoiceField = "bank_account"
	FieldSwift                           InvoiceField = "swift"
	FieldSaleType                        InvoiceField = "sale_type"
	FieldInvoiceDateKind                 InvoiceField = "invoice_date_kind"
	FieldContinuousServiceStartOn        InvoiceField = "continuous_service_start_on"
	FieldContinuousServiceEndOn          InvoiceField = "continuous_service_end_on"
	FieldServices                        InvoiceField = "services"
	FieldVatExemptionReason              InvoiceField = "vat_exemption_reason"
	FieldBDOCode                         InvoiceField = "bdo_code"
	FieldTransactionKindID               InvoiceField = "transaction_kind_id"
	FieldDocumentMarkingsIDs             InvoiceField = "document_markings_ids"
	FieldReceiptNumber                   InvoiceField = "receipt_number"
	FieldNotIncome                       InvoiceField = "not_income"
	FieldVatExchangeDateKind             InvoiceField = "vat_exchange_date_kind"
	FieldLocalGovernmentRecipientAddress InvoiceField = "local_government_recipient_address"
)

var invoiceFields = func() []InvoiceField {
	keys := d.KeysOf(invoiceSchema)
	out := make([]InvoiceField, len(keys))
	for i, k := range keys {
		out[i] = InvoiceField(k)
	}
	return out
}()

// InvoiceFields returns every valid InvoiceField in schema declaration order.
func InvoiceFields() []InvoiceField { return append([]InvoiceField(nil), invoiceFields...) }

// Valid reports whether f is a key of the Invoice schema.
func (f InvoiceField) Valid() bool {
	for _, k := range invoiceFields {
		if k == f {
			return true
		}
	}
	return false
}

func fieldNames(fs []InvoiceField) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = string(f)
	}
	return out
}
