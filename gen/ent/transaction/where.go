// Code generated by ent, DO NOT EDIT.

package transaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/daydreamers/ops-backend/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldID, id))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldDate, v))
}

// Type applies equality check predicate on the "type" field. It's identical to TypeEQ.
func Type(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldType, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v float64) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldAmount, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldSource, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldStatus, v))
}

// PreTaxAmount applies equality check predicate on the "pre_tax_amount" field. It's identical to PreTaxAmountEQ.
func PreTaxAmount(v float64) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldPreTaxAmount, v))
}

// TaxAmount applies equality check predicate on the "tax_amount" field. It's identical to TaxAmountEQ.
func TaxAmount(v float64) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldTaxAmount, v))
}

// Tip applies equality check predicate on the "tip" field. It's identical to TipEQ.
func Tip(v float64) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldTip, v))
}

// IsTaxable applies equality check predicate on the "is_taxable" field. It's identical to IsTaxableEQ.
func IsTaxable(v bool) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldIsTaxable, v))
}

// Draft applies equality check predicate on the "draft" field. It's identical to DraftEQ.
func Draft(v bool) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldDraft, v))
}

// Customer applies equality check predicate on the "customer" field. It's identical to CustomerEQ.
func Customer(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldCustomer, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldEmail, v))
}

// PaymentMethod applies equality check predicate on the "payment_method" field. It's identical to PaymentMethodEQ.
func PaymentMethod(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldPaymentMethod, v))
}

// SupplierID applies equality check predicate on the "supplier_id" field. It's identical to SupplierIDEQ.
func SupplierID(v uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldSupplierID, v))
}

// ExternalID applies equality check predicate on the "external_id" field. It's identical to ExternalIDEQ.
func ExternalID(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldExternalID, v))
}

// ShopifyOrderID applies equality check predicate on the "shopify_order_id" field. It's identical to ShopifyOrderIDEQ.
func ShopifyOrderID(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldShopifyOrderID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldUpdatedAt, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldDate, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldType, vs...))
}

// TypeGT applies the GT predicate on the "type" field.
func TypeGT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldType, v))
}

// TypeGTE applies the GTE predicate on the "type" field.
func TypeGTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldType, v))
}

// TypeLT applies the LT predicate on the "type" field.
func TypeLT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldType, v))
}

// TypeLTE applies the LTE predicate on the "type" field.
func TypeLTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldType, v))
}

// TypeContains applies the Contains predicate on the "type" field.
func TypeContains(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContains(FieldType, v))
}

// TypeHasPrefix applies the HasPrefix predicate on the "type" field.
func TypeHasPrefix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasPrefix(FieldType, v))
}

// TypeHasSuffix applies the HasSuffix predicate on the "type" field.
func TypeHasSuffix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasSuffix(FieldType, v))
}

// TypeEqualFold applies the EqualFold predicate on the "type" field.
func TypeEqualFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEqualFold(FieldType, v))
}

// TypeContainsFold applies the ContainsFold predicate on the "type" field.
func TypeContainsFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContainsFold(FieldType, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v float64) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v float64) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...float64) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...float64) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v float64) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v float64) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v float64) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v float64) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldAmount, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContainsFold(FieldSource, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContainsFold(FieldStatus, v))
}

// ProductsIsNil applies the IsNil predicate on the "products" field.
func ProductsIsNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldIsNull(FieldProducts))
}

// ProductsNotNil applies the NotNil predicate on the "products" field.
func ProductsNotNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldNotNull(FieldProducts))
}

// LineItemsIsNil applies the IsNil predicate on the "line_items" field.
func LineItemsIsNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldIsNull(FieldLineItems))
}

// LineItemsNotNil applies the NotNil predicate on the "line_items" field.
func LineItemsNotNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldNotNull(FieldLineItems))
}

// PreTaxAmountEQ applies the EQ predicate on the "pre_tax_amount" field.
func PreTaxAmountEQ(v float64) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldPreTaxAmount, v))
}

// PreTaxAmountNEQ applies the NEQ predicate on the "pre_tax_amount" field.
func PreTaxAmountNEQ(v float64) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldPreTaxAmount, v))
}

// PreTaxAmountIn applies the In predicate on the "pre_tax_amount" field.
func PreTaxAmountIn(vs ...float64) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldPreTaxAmount, vs...))
}

// PreTaxAmountNotIn applies the NotIn predicate on the "pre_tax_amount" field.
func PreTaxAmountNotIn(vs ...float64) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldPreTaxAmount, vs...))
}

// PreTaxAmountGT applies the GT predicate on the "pre_tax_amount" field.
func PreTaxAmountGT(v float64) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldPreTaxAmount, v))
}

// PreTaxAmountGTE applies the GTE predicate on the "pre_tax_amount" field.
func PreTaxAmountGTE(v float64) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldPreTaxAmount, v))
}

// PreTaxAmountLT applies the LT predicate on the "pre_tax_amount" field.
func PreTaxAmountLT(v float64) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldPreTaxAmount, v))
}

// PreTaxAmountLTE applies the LTE predicate on the "pre_tax_amount" field.
func PreTaxAmountLTE(v float64) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldPreTaxAmount, v))
}

// PreTaxAmountIsNil applies the IsNil predicate on the "pre_tax_amount" field.
func PreTaxAmountIsNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldIsNull(FieldPreTaxAmount))
}

// PreTaxAmountNotNil applies the NotNil predicate on the "pre_tax_amount" field.
func PreTaxAmountNotNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldNotNull(FieldPreTaxAmount))
}

// TaxAmountEQ applies the EQ predicate on the "tax_amount" field.
func TaxAmountEQ(v float64) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldTaxAmount, v))
}

// TaxAmountNEQ applies the NEQ predicate on the "tax_amount" field.
func TaxAmountNEQ(v float64) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldTaxAmount, v))
}

// TaxAmountIn applies the In predicate on the "tax_amount" field.
func TaxAmountIn(vs ...float64) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldTaxAmount, vs...))
}

// TaxAmountNotIn applies the NotIn predicate on the "tax_amount" field.
func TaxAmountNotIn(vs ...float64) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldTaxAmount, vs...))
}

// TaxAmountGT applies the GT predicate on the "tax_amount" field.
func TaxAmountGT(v float64) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldTaxAmount, v))
}

// TaxAmountGTE applies the GTE predicate on the "tax_amount" field.
func TaxAmountGTE(v float64) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldTaxAmount, v))
}

// TaxAmountLT applies the LT predicate on the "tax_amount" field.
func TaxAmountLT(v float64) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldTaxAmount, v))
}

// TaxAmountLTE applies the LTE predicate on the "tax_amount" field.
func TaxAmountLTE(v float64) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldTaxAmount, v))
}

// TaxAmountIsNil applies the IsNil predicate on the "tax_amount" field.
func TaxAmountIsNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldIsNull(FieldTaxAmount))
}

// TaxAmountNotNil applies the NotNil predicate on the "tax_amount" field.
func TaxAmountNotNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldNotNull(FieldTaxAmount))
}

// TipEQ applies the EQ predicate on the "tip" field.
func TipEQ(v float64) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldTip, v))
}

// TipNEQ applies the NEQ predicate on the "tip" field.
func TipNEQ(v float64) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldTip, v))
}

// TipIn applies the In predicate on the "tip" field.
func TipIn(vs ...float64) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldTip, vs...))
}

// TipNotIn applies the NotIn predicate on the "tip" field.
func TipNotIn(vs ...float64) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldTip, vs...))
}

// TipGT applies the GT predicate on the "tip" field.
func TipGT(v float64) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldTip, v))
}

// TipGTE applies the GTE predicate on the "tip" field.
func TipGTE(v float64) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldTip, v))
}

// TipLT applies the LT predicate on the "tip" field.
func TipLT(v float64) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldTip, v))
}

// TipLTE applies the LTE predicate on the "tip" field.
func TipLTE(v float64) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldTip, v))
}

// TipIsNil applies the IsNil predicate on the "tip" field.
func TipIsNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldIsNull(FieldTip))
}

// TipNotNil applies the NotNil predicate on the "tip" field.
func TipNotNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldNotNull(FieldTip))
}

// IsTaxableEQ applies the EQ predicate on the "is_taxable" field.
func IsTaxableEQ(v bool) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldIsTaxable, v))
}

// IsTaxableNEQ applies the NEQ predicate on the "is_taxable" field.
func IsTaxableNEQ(v bool) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldIsTaxable, v))
}

// IsTaxableIsNil applies the IsNil predicate on the "is_taxable" field.
func IsTaxableIsNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldIsNull(FieldIsTaxable))
}

// IsTaxableNotNil applies the NotNil predicate on the "is_taxable" field.
func IsTaxableNotNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldNotNull(FieldIsTaxable))
}

// DraftEQ applies the EQ predicate on the "draft" field.
func DraftEQ(v bool) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldDraft, v))
}

// DraftNEQ applies the NEQ predicate on the "draft" field.
func DraftNEQ(v bool) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldDraft, v))
}

// DraftIsNil applies the IsNil predicate on the "draft" field.
func DraftIsNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldIsNull(FieldDraft))
}

// DraftNotNil applies the NotNil predicate on the "draft" field.
func DraftNotNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldNotNull(FieldDraft))
}

// CustomerEQ applies the EQ predicate on the "customer" field.
func CustomerEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldCustomer, v))
}

// CustomerNEQ applies the NEQ predicate on the "customer" field.
func CustomerNEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldCustomer, v))
}

// CustomerIn applies the In predicate on the "customer" field.
func CustomerIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldCustomer, vs...))
}

// CustomerNotIn applies the NotIn predicate on the "customer" field.
func CustomerNotIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldCustomer, vs...))
}

// CustomerGT applies the GT predicate on the "customer" field.
func CustomerGT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldCustomer, v))
}

// CustomerGTE applies the GTE predicate on the "customer" field.
func CustomerGTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldCustomer, v))
}

// CustomerLT applies the LT predicate on the "customer" field.
func CustomerLT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldCustomer, v))
}

// CustomerLTE applies the LTE predicate on the "customer" field.
func CustomerLTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldCustomer, v))
}

// CustomerContains applies the Contains predicate on the "customer" field.
func CustomerContains(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContains(FieldCustomer, v))
}

// CustomerHasPrefix applies the HasPrefix predicate on the "customer" field.
func CustomerHasPrefix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasPrefix(FieldCustomer, v))
}

// CustomerHasSuffix applies the HasSuffix predicate on the "customer" field.
func CustomerHasSuffix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasSuffix(FieldCustomer, v))
}

// CustomerIsNil applies the IsNil predicate on the "customer" field.
func CustomerIsNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldIsNull(FieldCustomer))
}

// CustomerNotNil applies the NotNil predicate on the "customer" field.
func CustomerNotNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldNotNull(FieldCustomer))
}

// CustomerEqualFold applies the EqualFold predicate on the "customer" field.
func CustomerEqualFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEqualFold(FieldCustomer, v))
}

// CustomerContainsFold applies the ContainsFold predicate on the "customer" field.
func CustomerContainsFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContainsFold(FieldCustomer, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContainsFold(FieldEmail, v))
}

// PaymentMethodEQ applies the EQ predicate on the "payment_method" field.
func PaymentMethodEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldPaymentMethod, v))
}

// PaymentMethodNEQ applies the NEQ predicate on the "payment_method" field.
func PaymentMethodNEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldPaymentMethod, v))
}

// PaymentMethodIn applies the In predicate on the "payment_method" field.
func PaymentMethodIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldPaymentMethod, vs...))
}

// PaymentMethodNotIn applies the NotIn predicate on the "payment_method" field.
func PaymentMethodNotIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldPaymentMethod, vs...))
}

// PaymentMethodGT applies the GT predicate on the "payment_method" field.
func PaymentMethodGT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldPaymentMethod, v))
}

// PaymentMethodGTE applies the GTE predicate on the "payment_method" field.
func PaymentMethodGTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldPaymentMethod, v))
}

// PaymentMethodLT applies the LT predicate on the "payment_method" field.
func PaymentMethodLT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldPaymentMethod, v))
}

// PaymentMethodLTE applies the LTE predicate on the "payment_method" field.
func PaymentMethodLTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldPaymentMethod, v))
}

// PaymentMethodContains applies the Contains predicate on the "payment_method" field.
func PaymentMethodContains(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContains(FieldPaymentMethod, v))
}

// PaymentMethodHasPrefix applies the HasPrefix predicate on the "payment_method" field.
func PaymentMethodHasPrefix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasPrefix(FieldPaymentMethod, v))
}

// PaymentMethodHasSuffix applies the HasSuffix predicate on the "payment_method" field.
func PaymentMethodHasSuffix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasSuffix(FieldPaymentMethod, v))
}

// PaymentMethodIsNil applies the IsNil predicate on the "payment_method" field.
func PaymentMethodIsNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldIsNull(FieldPaymentMethod))
}

// PaymentMethodNotNil applies the NotNil predicate on the "payment_method" field.
func PaymentMethodNotNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldNotNull(FieldPaymentMethod))
}

// PaymentMethodEqualFold applies the EqualFold predicate on the "payment_method" field.
func PaymentMethodEqualFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEqualFold(FieldPaymentMethod, v))
}

// PaymentMethodContainsFold applies the ContainsFold predicate on the "payment_method" field.
func PaymentMethodContainsFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContainsFold(FieldPaymentMethod, v))
}

// SupplierIDEQ applies the EQ predicate on the "supplier_id" field.
func SupplierIDEQ(v uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldSupplierID, v))
}

// SupplierIDNEQ applies the NEQ predicate on the "supplier_id" field.
func SupplierIDNEQ(v uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldSupplierID, v))
}

// SupplierIDIn applies the In predicate on the "supplier_id" field.
func SupplierIDIn(vs ...uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldSupplierID, vs...))
}

// SupplierIDNotIn applies the NotIn predicate on the "supplier_id" field.
func SupplierIDNotIn(vs ...uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldSupplierID, vs...))
}

// SupplierIDIsNil applies the IsNil predicate on the "supplier_id" field.
func SupplierIDIsNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldIsNull(FieldSupplierID))
}

// SupplierIDNotNil applies the NotNil predicate on the "supplier_id" field.
func SupplierIDNotNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldNotNull(FieldSupplierID))
}

// ExternalIDEQ applies the EQ predicate on the "external_id" field.
func ExternalIDEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldExternalID, v))
}

// ExternalIDNEQ applies the NEQ predicate on the "external_id" field.
func ExternalIDNEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldExternalID, v))
}

// ExternalIDIn applies the In predicate on the "external_id" field.
func ExternalIDIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldExternalID, vs...))
}

// ExternalIDNotIn applies the NotIn predicate on the "external_id" field.
func ExternalIDNotIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldExternalID, vs...))
}

// ExternalIDGT applies the GT predicate on the "external_id" field.
func ExternalIDGT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldExternalID, v))
}

// ExternalIDGTE applies the GTE predicate on the "external_id" field.
func ExternalIDGTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldExternalID, v))
}

// ExternalIDLT applies the LT predicate on the "external_id" field.
func ExternalIDLT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldExternalID, v))
}

// ExternalIDLTE applies the LTE predicate on the "external_id" field.
func ExternalIDLTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldExternalID, v))
}

// ExternalIDContains applies the Contains predicate on the "external_id" field.
func ExternalIDContains(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContains(FieldExternalID, v))
}

// ExternalIDHasPrefix applies the HasPrefix predicate on the "external_id" field.
func ExternalIDHasPrefix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasPrefix(FieldExternalID, v))
}

// ExternalIDHasSuffix applies the HasSuffix predicate on the "external_id" field.
func ExternalIDHasSuffix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasSuffix(FieldExternalID, v))
}

// ExternalIDIsNil applies the IsNil predicate on the "external_id" field.
func ExternalIDIsNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldIsNull(FieldExternalID))
}

// ExternalIDNotNil applies the NotNil predicate on the "external_id" field.
func ExternalIDNotNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldNotNull(FieldExternalID))
}

// ExternalIDEqualFold applies the EqualFold predicate on the "external_id" field.
func ExternalIDEqualFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEqualFold(FieldExternalID, v))
}

// ExternalIDContainsFold applies the ContainsFold predicate on the "external_id" field.
func ExternalIDContainsFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContainsFold(FieldExternalID, v))
}

// ShopifyOrderIDEQ applies the EQ predicate on the "shopify_order_id" field.
func ShopifyOrderIDEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldShopifyOrderID, v))
}

// ShopifyOrderIDNEQ applies the NEQ predicate on the "shopify_order_id" field.
func ShopifyOrderIDNEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldShopifyOrderID, v))
}

// ShopifyOrderIDIn applies the In predicate on the "shopify_order_id" field.
func ShopifyOrderIDIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldShopifyOrderID, vs...))
}

// ShopifyOrderIDNotIn applies the NotIn predicate on the "shopify_order_id" field.
func ShopifyOrderIDNotIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldShopifyOrderID, vs...))
}

// ShopifyOrderIDGT applies the GT predicate on the "shopify_order_id" field.
func ShopifyOrderIDGT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldShopifyOrderID, v))
}

// ShopifyOrderIDGTE applies the GTE predicate on the "shopify_order_id" field.
func ShopifyOrderIDGTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldShopifyOrderID, v))
}

// ShopifyOrderIDLT applies the LT predicate on the "shopify_order_id" field.
func ShopifyOrderIDLT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldShopifyOrderID, v))
}

// ShopifyOrderIDLTE applies the LTE predicate on the "shopify_order_id" field.
func ShopifyOrderIDLTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldShopifyOrderID, v))
}

// ShopifyOrderIDContains applies the Contains predicate on the "shopify_order_id" field.
func ShopifyOrderIDContains(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContains(FieldShopifyOrderID, v))
}

// ShopifyOrderIDHasPrefix applies the HasPrefix predicate on the "shopify_order_id" field.
func ShopifyOrderIDHasPrefix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasPrefix(FieldShopifyOrderID, v))
}

// ShopifyOrderIDHasSuffix applies the HasSuffix predicate on the "shopify_order_id" field.
func ShopifyOrderIDHasSuffix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasSuffix(FieldShopifyOrderID, v))
}

// ShopifyOrderIDIsNil applies the IsNil predicate on the "shopify_order_id" field.
func ShopifyOrderIDIsNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldIsNull(FieldShopifyOrderID))
}

// ShopifyOrderIDNotNil applies the NotNil predicate on the "shopify_order_id" field.
func ShopifyOrderIDNotNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldNotNull(FieldShopifyOrderID))
}

// ShopifyOrderIDEqualFold applies the EqualFold predicate on the "shopify_order_id" field.
func ShopifyOrderIDEqualFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEqualFold(FieldShopifyOrderID, v))
}

// ShopifyOrderIDContainsFold applies the ContainsFold predicate on the "shopify_order_id" field.
func ShopifyOrderIDContainsFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContainsFold(FieldShopifyOrderID, v))
}

// PlatformMetadataIsNil applies the IsNil predicate on the "platform_metadata" field.
func PlatformMetadataIsNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldIsNull(FieldPlatformMetadata))
}

// PlatformMetadataNotNil applies the NotNil predicate on the "platform_metadata" field.
func PlatformMetadataNotNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldNotNull(FieldPlatformMetadata))
}

// PaymentProcessingIsNil applies the IsNil predicate on the "payment_processing" field.
func PaymentProcessingIsNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldIsNull(FieldPaymentProcessing))
}

// PaymentProcessingNotNil applies the NotNil predicate on the "payment_processing" field.
func PaymentProcessingNotNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldNotNull(FieldPaymentProcessing))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSupplier applies the HasEdge predicate on the "supplier" edge.
func HasSupplier() predicate.Transaction {
	return predicate.Transaction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SupplierTable, SupplierColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSupplierWith applies the HasEdge predicate on the "supplier" edge with a given conditions (other predicates).
func HasSupplierWith(preds ...predicate.Supplier) predicate.Transaction {
	return predicate.Transaction(func(s *sql.Selector) {
		step := newSupplierStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Transaction) predicate.Transaction {
	return predicate.Transaction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Transaction) predicate.Transaction {
	return predicate.Transaction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Transaction) predicate.Transaction {
	return predicate.Transaction(sql.NotPredicates(p))
}
