// Code generated by ent, DO NOT EDIT.

package invoiceemail

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/daydreamers/ops-backend/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldLTE(FieldID, id))
}

// EmailID applies equality check predicate on the "email_id" field. It's identical to EmailIDEQ.
func EmailID(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldEQ(FieldEmailID, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v time.Time) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldEQ(FieldDate, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldEQ(FieldSubject, v))
}

// From applies equality check predicate on the "from" field. It's identical to FromEQ.
func From(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldEQ(FieldFrom, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldEQ(FieldBody, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldEQ(FieldStatus, v))
}

// SupplierID applies equality check predicate on the "supplier_id" field. It's identical to SupplierIDEQ.
func SupplierID(v uuid.UUID) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldEQ(FieldSupplierID, v))
}

// TransactionID applies equality check predicate on the "transaction_id" field. It's identical to TransactionIDEQ.
func TransactionID(v uuid.UUID) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldEQ(FieldTransactionID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldEQ(FieldUpdatedAt, v))
}

// EmailIDEQ applies the EQ predicate on the "email_id" field.
func EmailIDEQ(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldEQ(FieldEmailID, v))
}

// EmailIDNEQ applies the NEQ predicate on the "email_id" field.
func EmailIDNEQ(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldNEQ(FieldEmailID, v))
}

// EmailIDIn applies the In predicate on the "email_id" field.
func EmailIDIn(vs ...string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldIn(FieldEmailID, vs...))
}

// EmailIDNotIn applies the NotIn predicate on the "email_id" field.
func EmailIDNotIn(vs ...string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldNotIn(FieldEmailID, vs...))
}

// EmailIDGT applies the GT predicate on the "email_id" field.
func EmailIDGT(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldGT(FieldEmailID, v))
}

// EmailIDGTE applies the GTE predicate on the "email_id" field.
func EmailIDGTE(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldGTE(FieldEmailID, v))
}

// EmailIDLT applies the LT predicate on the "email_id" field.
func EmailIDLT(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldLT(FieldEmailID, v))
}

// EmailIDLTE applies the LTE predicate on the "email_id" field.
func EmailIDLTE(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldLTE(FieldEmailID, v))
}

// EmailIDContains applies the Contains predicate on the "email_id" field.
func EmailIDContains(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldContains(FieldEmailID, v))
}

// EmailIDHasPrefix applies the HasPrefix predicate on the "email_id" field.
func EmailIDHasPrefix(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldHasPrefix(FieldEmailID, v))
}

// EmailIDHasSuffix applies the HasSuffix predicate on the "email_id" field.
func EmailIDHasSuffix(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldHasSuffix(FieldEmailID, v))
}

// EmailIDEqualFold applies the EqualFold predicate on the "email_id" field.
func EmailIDEqualFold(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldEqualFold(FieldEmailID, v))
}

// EmailIDContainsFold applies the ContainsFold predicate on the "email_id" field.
func EmailIDContainsFold(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldContainsFold(FieldEmailID, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v time.Time) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v time.Time) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...time.Time) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...time.Time) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v time.Time) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v time.Time) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v time.Time) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v time.Time) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldLTE(FieldDate, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectIsNil applies the IsNil predicate on the "subject" field.
func SubjectIsNil() predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldIsNull(FieldSubject))
}

// SubjectNotNil applies the NotNil predicate on the "subject" field.
func SubjectNotNil() predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldNotNull(FieldSubject))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldContainsFold(FieldSubject, v))
}

// FromEQ applies the EQ predicate on the "from" field.
func FromEQ(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldEQ(FieldFrom, v))
}

// FromNEQ applies the NEQ predicate on the "from" field.
func FromNEQ(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldNEQ(FieldFrom, v))
}

// FromIn applies the In predicate on the "from" field.
func FromIn(vs ...string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldIn(FieldFrom, vs...))
}

// FromNotIn applies the NotIn predicate on the "from" field.
func FromNotIn(vs ...string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldNotIn(FieldFrom, vs...))
}

// FromGT applies the GT predicate on the "from" field.
func FromGT(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldGT(FieldFrom, v))
}

// FromGTE applies the GTE predicate on the "from" field.
func FromGTE(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldGTE(FieldFrom, v))
}

// FromLT applies the LT predicate on the "from" field.
func FromLT(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldLT(FieldFrom, v))
}

// FromLTE applies the LTE predicate on the "from" field.
func FromLTE(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldLTE(FieldFrom, v))
}

// FromContains applies the Contains predicate on the "from" field.
func FromContains(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldContains(FieldFrom, v))
}

// FromHasPrefix applies the HasPrefix predicate on the "from" field.
func FromHasPrefix(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldHasPrefix(FieldFrom, v))
}

// FromHasSuffix applies the HasSuffix predicate on the "from" field.
func FromHasSuffix(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldHasSuffix(FieldFrom, v))
}

// FromIsNil applies the IsNil predicate on the "from" field.
func FromIsNil() predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldIsNull(FieldFrom))
}

// FromNotNil applies the NotNil predicate on the "from" field.
func FromNotNil() predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldNotNull(FieldFrom))
}

// FromEqualFold applies the EqualFold predicate on the "from" field.
func FromEqualFold(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldEqualFold(FieldFrom, v))
}

// FromContainsFold applies the ContainsFold predicate on the "from" field.
func FromContainsFold(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldContainsFold(FieldFrom, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldHasSuffix(FieldBody, v))
}

// BodyIsNil applies the IsNil predicate on the "body" field.
func BodyIsNil() predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldIsNull(FieldBody))
}

// BodyNotNil applies the NotNil predicate on the "body" field.
func BodyNotNil() predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldNotNull(FieldBody))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldContainsFold(FieldBody, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldContainsFold(FieldStatus, v))
}

// SupplierIDEQ applies the EQ predicate on the "supplier_id" field.
func SupplierIDEQ(v uuid.UUID) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldEQ(FieldSupplierID, v))
}

// SupplierIDNEQ applies the NEQ predicate on the "supplier_id" field.
func SupplierIDNEQ(v uuid.UUID) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldNEQ(FieldSupplierID, v))
}

// SupplierIDIn applies the In predicate on the "supplier_id" field.
func SupplierIDIn(vs ...uuid.UUID) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldIn(FieldSupplierID, vs...))
}

// SupplierIDNotIn applies the NotIn predicate on the "supplier_id" field.
func SupplierIDNotIn(vs ...uuid.UUID) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldNotIn(FieldSupplierID, vs...))
}

// SupplierIDIsNil applies the IsNil predicate on the "supplier_id" field.
func SupplierIDIsNil() predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldIsNull(FieldSupplierID))
}

// SupplierIDNotNil applies the NotNil predicate on the "supplier_id" field.
func SupplierIDNotNil() predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldNotNull(FieldSupplierID))
}

// TransactionIDEQ applies the EQ predicate on the "transaction_id" field.
func TransactionIDEQ(v uuid.UUID) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldEQ(FieldTransactionID, v))
}

// TransactionIDNEQ applies the NEQ predicate on the "transaction_id" field.
func TransactionIDNEQ(v uuid.UUID) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldNEQ(FieldTransactionID, v))
}

// TransactionIDIn applies the In predicate on the "transaction_id" field.
func TransactionIDIn(vs ...uuid.UUID) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldIn(FieldTransactionID, vs...))
}

// TransactionIDNotIn applies the NotIn predicate on the "transaction_id" field.
func TransactionIDNotIn(vs ...uuid.UUID) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldNotIn(FieldTransactionID, vs...))
}

// TransactionIDGT applies the GT predicate on the "transaction_id" field.
func TransactionIDGT(v uuid.UUID) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldGT(FieldTransactionID, v))
}

// TransactionIDGTE applies the GTE predicate on the "transaction_id" field.
func TransactionIDGTE(v uuid.UUID) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldGTE(FieldTransactionID, v))
}

// TransactionIDLT applies the LT predicate on the "transaction_id" field.
func TransactionIDLT(v uuid.UUID) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldLT(FieldTransactionID, v))
}

// TransactionIDLTE applies the LTE predicate on the "transaction_id" field.
func TransactionIDLTE(v uuid.UUID) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldLTE(FieldTransactionID, v))
}

// TransactionIDIsNil applies the IsNil predicate on the "transaction_id" field.
func TransactionIDIsNil() predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldIsNull(FieldTransactionID))
}

// TransactionIDNotNil applies the NotNil predicate on the "transaction_id" field.
func TransactionIDNotNil() predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldNotNull(FieldTransactionID))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSupplier applies the HasEdge predicate on the "supplier" edge.
func HasSupplier() predicate.InvoiceEmail {
	return predicate.InvoiceEmail(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SupplierTable, SupplierColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSupplierWith applies the HasEdge predicate on the "supplier" edge with a given conditions (other predicates).
func HasSupplierWith(preds ...predicate.Supplier) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(func(s *sql.Selector) {
		step := newSupplierStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InvoiceEmail) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InvoiceEmail) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InvoiceEmail) predicate.InvoiceEmail {
	return predicate.InvoiceEmail(sql.NotPredicates(p))
}
