// Code generated by ent, DO NOT EDIT.

package supplier

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/daydreamers/ops-backend/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Supplier {
	return predicate.Supplier(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Supplier {
	return predicate.Supplier(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Supplier {
	return predicate.Supplier(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Supplier {
	return predicate.Supplier(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Supplier {
	return predicate.Supplier(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Supplier {
	return predicate.Supplier(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Supplier {
	return predicate.Supplier(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Supplier {
	return predicate.Supplier(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Supplier {
	return predicate.Supplier(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldEQ(FieldName, v))
}

// InvoiceEmail applies equality check predicate on the "invoice_email" field. It's identical to InvoiceEmailEQ.
func InvoiceEmail(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldEQ(FieldInvoiceEmail, v))
}

// InvoiceSubject applies equality check predicate on the "invoice_subject" field. It's identical to InvoiceSubjectEQ.
func InvoiceSubject(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldEQ(FieldInvoiceSubject, v))
}

// SkuPrefix applies equality check predicate on the "sku_prefix" field. It's identical to SkuPrefixEQ.
func SkuPrefix(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldEQ(FieldSkuPrefix, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Supplier {
	return predicate.Supplier(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Supplier {
	return predicate.Supplier(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Supplier {
	return predicate.Supplier(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Supplier {
	return predicate.Supplier(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldContainsFold(FieldName, v))
}

// AliasesIsNil applies the IsNil predicate on the "aliases" field.
func AliasesIsNil() predicate.Supplier {
	return predicate.Supplier(sql.FieldIsNull(FieldAliases))
}

// AliasesNotNil applies the NotNil predicate on the "aliases" field.
func AliasesNotNil() predicate.Supplier {
	return predicate.Supplier(sql.FieldNotNull(FieldAliases))
}

// InvoiceEmailEQ applies the EQ predicate on the "invoice_email" field.
func InvoiceEmailEQ(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldEQ(FieldInvoiceEmail, v))
}

// InvoiceEmailNEQ applies the NEQ predicate on the "invoice_email" field.
func InvoiceEmailNEQ(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldNEQ(FieldInvoiceEmail, v))
}

// InvoiceEmailIn applies the In predicate on the "invoice_email" field.
func InvoiceEmailIn(vs ...string) predicate.Supplier {
	return predicate.Supplier(sql.FieldIn(FieldInvoiceEmail, vs...))
}

// InvoiceEmailNotIn applies the NotIn predicate on the "invoice_email" field.
func InvoiceEmailNotIn(vs ...string) predicate.Supplier {
	return predicate.Supplier(sql.FieldNotIn(FieldInvoiceEmail, vs...))
}

// InvoiceEmailGT applies the GT predicate on the "invoice_email" field.
func InvoiceEmailGT(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldGT(FieldInvoiceEmail, v))
}

// InvoiceEmailGTE applies the GTE predicate on the "invoice_email" field.
func InvoiceEmailGTE(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldGTE(FieldInvoiceEmail, v))
}

// InvoiceEmailLT applies the LT predicate on the "invoice_email" field.
func InvoiceEmailLT(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldLT(FieldInvoiceEmail, v))
}

// InvoiceEmailLTE applies the LTE predicate on the "invoice_email" field.
func InvoiceEmailLTE(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldLTE(FieldInvoiceEmail, v))
}

// InvoiceEmailContains applies the Contains predicate on the "invoice_email" field.
func InvoiceEmailContains(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldContains(FieldInvoiceEmail, v))
}

// InvoiceEmailHasPrefix applies the HasPrefix predicate on the "invoice_email" field.
func InvoiceEmailHasPrefix(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldHasPrefix(FieldInvoiceEmail, v))
}

// InvoiceEmailHasSuffix applies the HasSuffix predicate on the "invoice_email" field.
func InvoiceEmailHasSuffix(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldHasSuffix(FieldInvoiceEmail, v))
}

// InvoiceEmailIsNil applies the IsNil predicate on the "invoice_email" field.
func InvoiceEmailIsNil() predicate.Supplier {
	return predicate.Supplier(sql.FieldIsNull(FieldInvoiceEmail))
}

// InvoiceEmailNotNil applies the NotNil predicate on the "invoice_email" field.
func InvoiceEmailNotNil() predicate.Supplier {
	return predicate.Supplier(sql.FieldNotNull(FieldInvoiceEmail))
}

// InvoiceEmailEqualFold applies the EqualFold predicate on the "invoice_email" field.
func InvoiceEmailEqualFold(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldEqualFold(FieldInvoiceEmail, v))
}

// InvoiceEmailContainsFold applies the ContainsFold predicate on the "invoice_email" field.
func InvoiceEmailContainsFold(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldContainsFold(FieldInvoiceEmail, v))
}

// InvoiceSubjectEQ applies the EQ predicate on the "invoice_subject" field.
func InvoiceSubjectEQ(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldEQ(FieldInvoiceSubject, v))
}

// InvoiceSubjectNEQ applies the NEQ predicate on the "invoice_subject" field.
func InvoiceSubjectNEQ(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldNEQ(FieldInvoiceSubject, v))
}

// InvoiceSubjectIn applies the In predicate on the "invoice_subject" field.
func InvoiceSubjectIn(vs ...string) predicate.Supplier {
	return predicate.Supplier(sql.FieldIn(FieldInvoiceSubject, vs...))
}

// InvoiceSubjectNotIn applies the NotIn predicate on the "invoice_subject" field.
func InvoiceSubjectNotIn(vs ...string) predicate.Supplier {
	return predicate.Supplier(sql.FieldNotIn(FieldInvoiceSubject, vs...))
}

// InvoiceSubjectGT applies the GT predicate on the "invoice_subject" field.
func InvoiceSubjectGT(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldGT(FieldInvoiceSubject, v))
}

// InvoiceSubjectGTE applies the GTE predicate on the "invoice_subject" field.
func InvoiceSubjectGTE(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldGTE(FieldInvoiceSubject, v))
}

// InvoiceSubjectLT applies the LT predicate on the "invoice_subject" field.
func InvoiceSubjectLT(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldLT(FieldInvoiceSubject, v))
}

// InvoiceSubjectLTE applies the LTE predicate on the "invoice_subject" field.
func InvoiceSubjectLTE(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldLTE(FieldInvoiceSubject, v))
}

// InvoiceSubjectContains applies the Contains predicate on the "invoice_subject" field.
func InvoiceSubjectContains(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldContains(FieldInvoiceSubject, v))
}

// InvoiceSubjectHasPrefix applies the HasPrefix predicate on the "invoice_subject" field.
func InvoiceSubjectHasPrefix(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldHasPrefix(FieldInvoiceSubject, v))
}

// InvoiceSubjectHasSuffix applies the HasSuffix predicate on the "invoice_subject" field.
func InvoiceSubjectHasSuffix(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldHasSuffix(FieldInvoiceSubject, v))
}

// InvoiceSubjectIsNil applies the IsNil predicate on the "invoice_subject" field.
func InvoiceSubjectIsNil() predicate.Supplier {
	return predicate.Supplier(sql.FieldIsNull(FieldInvoiceSubject))
}

// InvoiceSubjectNotNil applies the NotNil predicate on the "invoice_subject" field.
func InvoiceSubjectNotNil() predicate.Supplier {
	return predicate.Supplier(sql.FieldNotNull(FieldInvoiceSubject))
}

// InvoiceSubjectEqualFold applies the EqualFold predicate on the "invoice_subject" field.
func InvoiceSubjectEqualFold(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldEqualFold(FieldInvoiceSubject, v))
}

// InvoiceSubjectContainsFold applies the ContainsFold predicate on the "invoice_subject" field.
func InvoiceSubjectContainsFold(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldContainsFold(FieldInvoiceSubject, v))
}

// SkuPrefixEQ applies the EQ predicate on the "sku_prefix" field.
func SkuPrefixEQ(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldEQ(FieldSkuPrefix, v))
}

// SkuPrefixNEQ applies the NEQ predicate on the "sku_prefix" field.
func SkuPrefixNEQ(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldNEQ(FieldSkuPrefix, v))
}

// SkuPrefixIn applies the In predicate on the "sku_prefix" field.
func SkuPrefixIn(vs ...string) predicate.Supplier {
	return predicate.Supplier(sql.FieldIn(FieldSkuPrefix, vs...))
}

// SkuPrefixNotIn applies the NotIn predicate on the "sku_prefix" field.
func SkuPrefixNotIn(vs ...string) predicate.Supplier {
	return predicate.Supplier(sql.FieldNotIn(FieldSkuPrefix, vs...))
}

// SkuPrefixGT applies the GT predicate on the "sku_prefix" field.
func SkuPrefixGT(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldGT(FieldSkuPrefix, v))
}

// SkuPrefixGTE applies the GTE predicate on the "sku_prefix" field.
func SkuPrefixGTE(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldGTE(FieldSkuPrefix, v))
}

// SkuPrefixLT applies the LT predicate on the "sku_prefix" field.
func SkuPrefixLT(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldLT(FieldSkuPrefix, v))
}

// SkuPrefixLTE applies the LTE predicate on the "sku_prefix" field.
func SkuPrefixLTE(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldLTE(FieldSkuPrefix, v))
}

// SkuPrefixContains applies the Contains predicate on the "sku_prefix" field.
func SkuPrefixContains(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldContains(FieldSkuPrefix, v))
}

// SkuPrefixHasPrefix applies the HasPrefix predicate on the "sku_prefix" field.
func SkuPrefixHasPrefix(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldHasPrefix(FieldSkuPrefix, v))
}

// SkuPrefixHasSuffix applies the HasSuffix predicate on the "sku_prefix" field.
func SkuPrefixHasSuffix(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldHasSuffix(FieldSkuPrefix, v))
}

// SkuPrefixIsNil applies the IsNil predicate on the "sku_prefix" field.
func SkuPrefixIsNil() predicate.Supplier {
	return predicate.Supplier(sql.FieldIsNull(FieldSkuPrefix))
}

// SkuPrefixNotNil applies the NotNil predicate on the "sku_prefix" field.
func SkuPrefixNotNil() predicate.Supplier {
	return predicate.Supplier(sql.FieldNotNull(FieldSkuPrefix))
}

// SkuPrefixEqualFold applies the EqualFold predicate on the "sku_prefix" field.
func SkuPrefixEqualFold(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldEqualFold(FieldSkuPrefix, v))
}

// SkuPrefixContainsFold applies the ContainsFold predicate on the "sku_prefix" field.
func SkuPrefixContainsFold(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldContainsFold(FieldSkuPrefix, v))
}

// ParsingConfigIsNil applies the IsNil predicate on the "parsing_config" field.
func ParsingConfigIsNil() predicate.Supplier {
	return predicate.Supplier(sql.FieldIsNull(FieldParsingConfig))
}

// ParsingConfigNotNil applies the NotNil predicate on the "parsing_config" field.
func ParsingConfigNotNil() predicate.Supplier {
	return predicate.Supplier(sql.FieldNotNull(FieldParsingConfig))
}

// TrainingSamplesIsNil applies the IsNil predicate on the "training_samples" field.
func TrainingSamplesIsNil() predicate.Supplier {
	return predicate.Supplier(sql.FieldIsNull(FieldTrainingSamples))
}

// TrainingSamplesNotNil applies the NotNil predicate on the "training_samples" field.
func TrainingSamplesNotNil() predicate.Supplier {
	return predicate.Supplier(sql.FieldNotNull(FieldTrainingSamples))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Supplier {
	return predicate.Supplier(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Supplier {
	return predicate.Supplier(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Supplier {
	return predicate.Supplier(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Supplier {
	return predicate.Supplier(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Supplier {
	return predicate.Supplier(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Supplier {
	return predicate.Supplier(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Supplier {
	return predicate.Supplier(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Supplier {
	return predicate.Supplier(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Supplier {
	return predicate.Supplier(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Supplier {
	return predicate.Supplier(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Supplier {
	return predicate.Supplier(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Supplier {
	return predicate.Supplier(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Supplier {
	return predicate.Supplier(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Supplier {
	return predicate.Supplier(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Supplier {
	return predicate.Supplier(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Supplier {
	return predicate.Supplier(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasEmails applies the HasEdge predicate on the "emails" edge.
func HasEmails() predicate.Supplier {
	return predicate.Supplier(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EmailsTable, EmailsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEmailsWith applies the HasEdge predicate on the "emails" edge with a given conditions (other predicates).
func HasEmailsWith(preds ...predicate.InvoiceEmail) predicate.Supplier {
	return predicate.Supplier(func(s *sql.Selector) {
		step := newEmailsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTransactions applies the HasEdge predicate on the "transactions" edge.
func HasTransactions() predicate.Supplier {
	return predicate.Supplier(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TransactionsTable, TransactionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTransactionsWith applies the HasEdge predicate on the "transactions" edge with a given conditions (other predicates).
func HasTransactionsWith(preds ...predicate.Transaction) predicate.Supplier {
	return predicate.Supplier(func(s *sql.Selector) {
		step := newTransactionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Supplier) predicate.Supplier {
	return predicate.Supplier(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Supplier) predicate.Supplier {
	return predicate.Supplier(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Supplier) predicate.Supplier {
	return predicate.Supplier(sql.NotPredicates(p))
}
