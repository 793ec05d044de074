// Code generated by ent, DO NOT EDIT.

package inventorychange

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/daydreamers/ops-backend/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldLTE(FieldID, id))
}

// ProductID applies equality check predicate on the "product_id" field. It's identical to ProductIDEQ.
func ProductID(v uuid.UUID) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldEQ(FieldProductID, v))
}

// TransactionID applies equality check predicate on the "transaction_id" field. It's identical to TransactionIDEQ.
func TransactionID(v uuid.UUID) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldEQ(FieldTransactionID, v))
}

// QuantityChange applies equality check predicate on the "quantity_change" field. It's identical to QuantityChangeEQ.
func QuantityChange(v int) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldEQ(FieldQuantityChange, v))
}

// ChangeType applies equality check predicate on the "change_type" field. It's identical to ChangeTypeEQ.
func ChangeType(v string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldEQ(FieldChangeType, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldEQ(FieldSource, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldEQ(FieldReason, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldEQ(FieldTimestamp, v))
}

// ProductIDEQ applies the EQ predicate on the "product_id" field.
func ProductIDEQ(v uuid.UUID) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldEQ(FieldProductID, v))
}

// ProductIDNEQ applies the NEQ predicate on the "product_id" field.
func ProductIDNEQ(v uuid.UUID) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldNEQ(FieldProductID, v))
}

// ProductIDIn applies the In predicate on the "product_id" field.
func ProductIDIn(vs ...uuid.UUID) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldIn(FieldProductID, vs...))
}

// ProductIDNotIn applies the NotIn predicate on the "product_id" field.
func ProductIDNotIn(vs ...uuid.UUID) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldNotIn(FieldProductID, vs...))
}

// TransactionIDEQ applies the EQ predicate on the "transaction_id" field.
func TransactionIDEQ(v uuid.UUID) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldEQ(FieldTransactionID, v))
}

// TransactionIDNEQ applies the NEQ predicate on the "transaction_id" field.
func TransactionIDNEQ(v uuid.UUID) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldNEQ(FieldTransactionID, v))
}

// TransactionIDIn applies the In predicate on the "transaction_id" field.
func TransactionIDIn(vs ...uuid.UUID) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldIn(FieldTransactionID, vs...))
}

// TransactionIDNotIn applies the NotIn predicate on the "transaction_id" field.
func TransactionIDNotIn(vs ...uuid.UUID) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldNotIn(FieldTransactionID, vs...))
}

// TransactionIDGT applies the GT predicate on the "transaction_id" field.
func TransactionIDGT(v uuid.UUID) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldGT(FieldTransactionID, v))
}

// TransactionIDGTE applies the GTE predicate on the "transaction_id" field.
func TransactionIDGTE(v uuid.UUID) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldGTE(FieldTransactionID, v))
}

// TransactionIDLT applies the LT predicate on the "transaction_id" field.
func TransactionIDLT(v uuid.UUID) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldLT(FieldTransactionID, v))
}

// TransactionIDLTE applies the LTE predicate on the "transaction_id" field.
func TransactionIDLTE(v uuid.UUID) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldLTE(FieldTransactionID, v))
}

// TransactionIDIsNil applies the IsNil predicate on the "transaction_id" field.
func TransactionIDIsNil() predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldIsNull(FieldTransactionID))
}

// TransactionIDNotNil applies the NotNil predicate on the "transaction_id" field.
func TransactionIDNotNil() predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldNotNull(FieldTransactionID))
}

// QuantityChangeEQ applies the EQ predicate on the "quantity_change" field.
func QuantityChangeEQ(v int) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldEQ(FieldQuantityChange, v))
}

// QuantityChangeNEQ applies the NEQ predicate on the "quantity_change" field.
func QuantityChangeNEQ(v int) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldNEQ(FieldQuantityChange, v))
}

// QuantityChangeIn applies the In predicate on the "quantity_change" field.
func QuantityChangeIn(vs ...int) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldIn(FieldQuantityChange, vs...))
}

// QuantityChangeNotIn applies the NotIn predicate on the "quantity_change" field.
func QuantityChangeNotIn(vs ...int) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldNotIn(FieldQuantityChange, vs...))
}

// QuantityChangeGT applies the GT predicate on the "quantity_change" field.
func QuantityChangeGT(v int) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldGT(FieldQuantityChange, v))
}

// QuantityChangeGTE applies the GTE predicate on the "quantity_change" field.
func QuantityChangeGTE(v int) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldGTE(FieldQuantityChange, v))
}

// QuantityChangeLT applies the LT predicate on the "quantity_change" field.
func QuantityChangeLT(v int) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldLT(FieldQuantityChange, v))
}

// QuantityChangeLTE applies the LTE predicate on the "quantity_change" field.
func QuantityChangeLTE(v int) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldLTE(FieldQuantityChange, v))
}

// ChangeTypeEQ applies the EQ predicate on the "change_type" field.
func ChangeTypeEQ(v string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldEQ(FieldChangeType, v))
}

// ChangeTypeNEQ applies the NEQ predicate on the "change_type" field.
func ChangeTypeNEQ(v string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldNEQ(FieldChangeType, v))
}

// ChangeTypeIn applies the In predicate on the "change_type" field.
func ChangeTypeIn(vs ...string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldIn(FieldChangeType, vs...))
}

// ChangeTypeNotIn applies the NotIn predicate on the "change_type" field.
func ChangeTypeNotIn(vs ...string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldNotIn(FieldChangeType, vs...))
}

// ChangeTypeGT applies the GT predicate on the "change_type" field.
func ChangeTypeGT(v string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldGT(FieldChangeType, v))
}

// ChangeTypeGTE applies the GTE predicate on the "change_type" field.
func ChangeTypeGTE(v string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldGTE(FieldChangeType, v))
}

// ChangeTypeLT applies the LT predicate on the "change_type" field.
func ChangeTypeLT(v string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldLT(FieldChangeType, v))
}

// ChangeTypeLTE applies the LTE predicate on the "change_type" field.
func ChangeTypeLTE(v string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldLTE(FieldChangeType, v))
}

// ChangeTypeContains applies the Contains predicate on the "change_type" field.
func ChangeTypeContains(v string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldContains(FieldChangeType, v))
}

// ChangeTypeHasPrefix applies the HasPrefix predicate on the "change_type" field.
func ChangeTypeHasPrefix(v string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldHasPrefix(FieldChangeType, v))
}

// ChangeTypeHasSuffix applies the HasSuffix predicate on the "change_type" field.
func ChangeTypeHasSuffix(v string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldHasSuffix(FieldChangeType, v))
}

// ChangeTypeEqualFold applies the EqualFold predicate on the "change_type" field.
func ChangeTypeEqualFold(v string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldEqualFold(FieldChangeType, v))
}

// ChangeTypeContainsFold applies the ContainsFold predicate on the "change_type" field.
func ChangeTypeContainsFold(v string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldContainsFold(FieldChangeType, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldHasSuffix(FieldSource, v))
}

// SourceIsNil applies the IsNil predicate on the "source" field.
func SourceIsNil() predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldIsNull(FieldSource))
}

// SourceNotNil applies the NotNil predicate on the "source" field.
func SourceNotNil() predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldNotNull(FieldSource))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldContainsFold(FieldSource, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonIsNil applies the IsNil predicate on the "reason" field.
func ReasonIsNil() predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldIsNull(FieldReason))
}

// ReasonNotNil applies the NotNil predicate on the "reason" field.
func ReasonNotNil() predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldNotNull(FieldReason))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldContainsFold(FieldReason, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.InventoryChange {
	return predicate.InventoryChange(sql.FieldLTE(FieldTimestamp, v))
}

// HasProduct applies the HasEdge predicate on the "product" edge.
func HasProduct() predicate.InventoryChange {
	return predicate.InventoryChange(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProductTable, ProductColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProductWith applies the HasEdge predicate on the "product" edge with a given conditions (other predicates).
func HasProductWith(preds ...predicate.Product) predicate.InventoryChange {
	return predicate.InventoryChange(func(s *sql.Selector) {
		step := newProductStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InventoryChange) predicate.InventoryChange {
	return predicate.InventoryChange(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InventoryChange) predicate.InventoryChange {
	return predicate.InventoryChange(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InventoryChange) predicate.InventoryChange {
	return predicate.InventoryChange(sql.NotPredicates(p))
}
