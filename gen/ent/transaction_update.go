// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/daydreamers/ops-backend/gen/ent/predicate"
	"github.com/daydreamers/ops-backend/gen/ent/supplier"
	"github.com/daydreamers/ops-backend/gen/ent/transaction"
	"github.com/daydreamers/ops-backend/internal/entity"
	"github.com/google/uuid"
)

// TransactionUpdate is the builder for updating Transaction entities.
type TransactionUpdate struct {
	config
	hooks    []Hook
	mutation *TransactionMutation
}

// Where appends a list predicates to the TransactionUpdate builder.
func (_u *TransactionUpdate) Where(ps ...predicate.Transaction) *TransactionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDate sets the "date" field.
func (_u *TransactionUpdate) SetDate(v time.Time) *TransactionUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableDate(v *time.Time) *TransactionUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *TransactionUpdate) SetType(v string) *TransactionUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableType(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *TransactionUpdate) SetAmount(v float64) *TransactionUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableAmount(v *float64) *TransactionUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *TransactionUpdate) AddAmount(v float64) *TransactionUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *TransactionUpdate) SetSource(v string) *TransactionUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableSource(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TransactionUpdate) SetStatus(v string) *TransactionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableStatus(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProducts sets the "products" field.
func (_u *TransactionUpdate) SetProducts(v []entity.TransactionProduct) *TransactionUpdate {
	_u.mutation.SetProducts(v)
	return _u
}

// AppendProducts appends value to the "products" field.
func (_u *TransactionUpdate) AppendProducts(v []entity.TransactionProduct) *TransactionUpdate {
	_u.mutation.AppendProducts(v)
	return _u
}

// ClearProducts clears the value of the "products" field.
func (_u *TransactionUpdate) ClearProducts() *TransactionUpdate {
	_u.mutation.ClearProducts()
	return _u
}

// SetLineItems sets the "line_items" field.
func (_u *TransactionUpdate) SetLineItems(v []entity.TransactionProduct) *TransactionUpdate {
	_u.mutation.SetLineItems(v)
	return _u
}

// AppendLineItems appends value to the "line_items" field.
func (_u *TransactionUpdate) AppendLineItems(v []entity.TransactionProduct) *TransactionUpdate {
	_u.mutation.AppendLineItems(v)
	return _u
}

// ClearLineItems clears the value of the "line_items" field.
func (_u *TransactionUpdate) ClearLineItems() *TransactionUpdate {
	_u.mutation.ClearLineItems()
	return _u
}

// SetPreTaxAmount sets the "pre_tax_amount" field.
func (_u *TransactionUpdate) SetPreTaxAmount(v float64) *TransactionUpdate {
	_u.mutation.ResetPreTaxAmount()
	_u.mutation.SetPreTaxAmount(v)
	return _u
}

// SetNillablePreTaxAmount sets the "pre_tax_amount" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillablePreTaxAmount(v *float64) *TransactionUpdate {
	if v != nil {
		_u.SetPreTaxAmount(*v)
	}
	return _u
}

// AddPreTaxAmount adds value to the "pre_tax_amount" field.
func (_u *TransactionUpdate) AddPreTaxAmount(v float64) *TransactionUpdate {
	_u.mutation.AddPreTaxAmount(v)
	return _u
}

// ClearPreTaxAmount clears the value of the "pre_tax_amount" field.
func (_u *TransactionUpdate) ClearPreTaxAmount() *TransactionUpdate {
	_u.mutation.ClearPreTaxAmount()
	return _u
}

// SetTaxAmount sets the "tax_amount" field.
func (_u *TransactionUpdate) SetTaxAmount(v float64) *TransactionUpdate {
	_u.mutation.ResetTaxAmount()
	_u.mutation.SetTaxAmount(v)
	return _u
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableTaxAmount(v *float64) *TransactionUpdate {
	if v != nil {
		_u.SetTaxAmount(*v)
	}
	return _u
}

// AddTaxAmount adds value to the "tax_amount" field.
func (_u *TransactionUpdate) AddTaxAmount(v float64) *TransactionUpdate {
	_u.mutation.AddTaxAmount(v)
	return _u
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (_u *TransactionUpdate) ClearTaxAmount() *TransactionUpdate {
	_u.mutation.ClearTaxAmount()
	return _u
}

// SetTip sets the "tip" field.
func (_u *TransactionUpdate) SetTip(v float64) *TransactionUpdate {
	_u.mutation.ResetTip()
	_u.mutation.SetTip(v)
	return _u
}

// SetNillableTip sets the "tip" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableTip(v *float64) *TransactionUpdate {
	if v != nil {
		_u.SetTip(*v)
	}
	return _u
}

// AddTip adds value to the "tip" field.
func (_u *TransactionUpdate) AddTip(v float64) *TransactionUpdate {
	_u.mutation.AddTip(v)
	return _u
}

// ClearTip clears the value of the "tip" field.
func (_u *TransactionUpdate) ClearTip() *TransactionUpdate {
	_u.mutation.ClearTip()
	return _u
}

// SetIsTaxable sets the "is_taxable" field.
func (_u *TransactionUpdate) SetIsTaxable(v bool) *TransactionUpdate {
	_u.mutation.SetIsTaxable(v)
	return _u
}

// SetNillableIsTaxable sets the "is_taxable" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableIsTaxable(v *bool) *TransactionUpdate {
	if v != nil {
		_u.SetIsTaxable(*v)
	}
	return _u
}

// ClearIsTaxable clears the value of the "is_taxable" field.
func (_u *TransactionUpdate) ClearIsTaxable() *TransactionUpdate {
	_u.mutation.ClearIsTaxable()
	return _u
}

// SetDraft sets the "draft" field.
func (_u *TransactionUpdate) SetDraft(v bool) *TransactionUpdate {
	_u.mutation.SetDraft(v)
	return _u
}

// SetNillableDraft sets the "draft" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableDraft(v *bool) *TransactionUpdate {
	if v != nil {
		_u.SetDraft(*v)
	}
	return _u
}

// ClearDraft clears the value of the "draft" field.
func (_u *TransactionUpdate) ClearDraft() *TransactionUpdate {
	_u.mutation.ClearDraft()
	return _u
}

// SetCustomer sets the "customer" field.
func (_u *TransactionUpdate) SetCustomer(v string) *TransactionUpdate {
	_u.mutation.SetCustomer(v)
	return _u
}

// SetNillableCustomer sets the "customer" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableCustomer(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetCustomer(*v)
	}
	return _u
}

// ClearCustomer clears the value of the "customer" field.
func (_u *TransactionUpdate) ClearCustomer() *TransactionUpdate {
	_u.mutation.ClearCustomer()
	return _u
}

// SetEmail sets the "email" field.
func (_u *TransactionUpdate) SetEmail(v string) *TransactionUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableEmail(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *TransactionUpdate) ClearEmail() *TransactionUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetPaymentMethod sets the "payment_method" field.
func (_u *TransactionUpdate) SetPaymentMethod(v string) *TransactionUpdate {
	_u.mutation.SetPaymentMethod(v)
	return _u
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillablePaymentMethod(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetPaymentMethod(*v)
	}
	return _u
}

// ClearPaymentMethod clears the value of the "payment_method" field.
func (_u *TransactionUpdate) ClearPaymentMethod() *TransactionUpdate {
	_u.mutation.ClearPaymentMethod()
	return _u
}

// SetSupplierID sets the "supplier_id" field.
func (_u *TransactionUpdate) SetSupplierID(v uuid.UUID) *TransactionUpdate {
	_u.mutation.SetSupplierID(v)
	return _u
}

// SetNillableSupplierID sets the "supplier_id" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableSupplierID(v *uuid.UUID) *TransactionUpdate {
	if v != nil {
		_u.SetSupplierID(*v)
	}
	return _u
}

// ClearSupplierID clears the value of the "supplier_id" field.
func (_u *TransactionUpdate) ClearSupplierID() *TransactionUpdate {
	_u.mutation.ClearSupplierID()
	return _u
}

// SetExternalID sets the "external_id" field.
func (_u *TransactionUpdate) SetExternalID(v string) *TransactionUpdate {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableExternalID(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// ClearExternalID clears the value of the "external_id" field.
func (_u *TransactionUpdate) ClearExternalID() *TransactionUpdate {
	_u.mutation.ClearExternalID()
	return _u
}

// SetShopifyOrderID sets the "shopify_order_id" field.
func (_u *TransactionUpdate) SetShopifyOrderID(v string) *TransactionUpdate {
	_u.mutation.SetShopifyOrderID(v)
	return _u
}

// SetNillableShopifyOrderID sets the "shopify_order_id" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableShopifyOrderID(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetShopifyOrderID(*v)
	}
	return _u
}

// ClearShopifyOrderID clears the value of the "shopify_order_id" field.
func (_u *TransactionUpdate) ClearShopifyOrderID() *TransactionUpdate {
	_u.mutation.ClearShopifyOrderID()
	return _u
}

// SetPlatformMetadata sets the "platform_metadata" field.
func (_u *TransactionUpdate) SetPlatformMetadata(v *entity.PlatformMetadata) *TransactionUpdate {
	_u.mutation.SetPlatformMetadata(v)
	return _u
}

// ClearPlatformMetadata clears the value of the "platform_metadata" field.
func (_u *TransactionUpdate) ClearPlatformMetadata() *TransactionUpdate {
	_u.mutation.ClearPlatformMetadata()
	return _u
}

// SetPaymentProcessing sets the "payment_processing" field.
func (_u *TransactionUpdate) SetPaymentProcessing(v *entity.PaymentProcessing) *TransactionUpdate {
	_u.mutation.SetPaymentProcessing(v)
	return _u
}

// ClearPaymentProcessing clears the value of the "payment_processing" field.
func (_u *TransactionUpdate) ClearPaymentProcessing() *TransactionUpdate {
	_u.mutation.ClearPaymentProcessing()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TransactionUpdate) SetCreatedAt(v time.Time) *TransactionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableCreatedAt(v *time.Time) *TransactionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TransactionUpdate) SetUpdatedAt(v time.Time) *TransactionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSupplier sets the "supplier" edge to the Supplier entity.
func (_u *TransactionUpdate) SetSupplier(v *Supplier) *TransactionUpdate {
	return _u.SetSupplierID(v.ID)
}

// Mutation returns the TransactionMutation object of the builder.
func (_u *TransactionUpdate) Mutation() *TransactionMutation {
	return _u.mutation
}

// ClearSupplier clears the "supplier" edge to the Supplier entity.
func (_u *TransactionUpdate) ClearSupplier() *TransactionUpdate {
	_u.mutation.ClearSupplier()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TransactionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TransactionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TransactionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TransactionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TransactionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := transaction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *TransactionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(transaction.Table, transaction.Columns, sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(transaction.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(transaction.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(transaction.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(transaction.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(transaction.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(transaction.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Products(); ok {
		_spec.SetField(transaction.FieldProducts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProducts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, transaction.FieldProducts, value)
		})
	}
	if _u.mutation.ProductsCleared() {
		_spec.ClearField(transaction.FieldProducts, field.TypeJSON)
	}
	if value, ok := _u.mutation.LineItems(); ok {
		_spec.SetField(transaction.FieldLineItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLineItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, transaction.FieldLineItems, value)
		})
	}
	if _u.mutation.LineItemsCleared() {
		_spec.ClearField(transaction.FieldLineItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.PreTaxAmount(); ok {
		_spec.SetField(transaction.FieldPreTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPreTaxAmount(); ok {
		_spec.AddField(transaction.FieldPreTaxAmount, field.TypeFloat64, value)
	}
	if _u.mutation.PreTaxAmountCleared() {
		_spec.ClearField(transaction.FieldPreTaxAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TaxAmount(); ok {
		_spec.SetField(transaction.FieldTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxAmount(); ok {
		_spec.AddField(transaction.FieldTaxAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TaxAmountCleared() {
		_spec.ClearField(transaction.FieldTaxAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Tip(); ok {
		_spec.SetField(transaction.FieldTip, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTip(); ok {
		_spec.AddField(transaction.FieldTip, field.TypeFloat64, value)
	}
	if _u.mutation.TipCleared() {
		_spec.ClearField(transaction.FieldTip, field.TypeFloat64)
	}
	if value, ok := _u.mutation.IsTaxable(); ok {
		_spec.SetField(transaction.FieldIsTaxable, field.TypeBool, value)
	}
	if _u.mutation.IsTaxableCleared() {
		_spec.ClearField(transaction.FieldIsTaxable, field.TypeBool)
	}
	if value, ok := _u.mutation.Draft(); ok {
		_spec.SetField(transaction.FieldDraft, field.TypeBool, value)
	}
	if _u.mutation.DraftCleared() {
		_spec.ClearField(transaction.FieldDraft, field.TypeBool)
	}
	if value, ok := _u.mutation.Customer(); ok {
		_spec.SetField(transaction.FieldCustomer, field.TypeString, value)
	}
	if _u.mutation.CustomerCleared() {
		_spec.ClearField(transaction.FieldCustomer, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(transaction.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(transaction.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentMethod(); ok {
		_spec.SetField(transaction.FieldPaymentMethod, field.TypeString, value)
	}
	if _u.mutation.PaymentMethodCleared() {
		_spec.ClearField(transaction.FieldPaymentMethod, field.TypeString)
	}
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(transaction.FieldExternalID, field.TypeString, value)
	}
	if _u.mutation.ExternalIDCleared() {
		_spec.ClearField(transaction.FieldExternalID, field.TypeString)
	}
	if value, ok := _u.mutation.ShopifyOrderID(); ok {
		_spec.SetField(transaction.FieldShopifyOrderID, field.TypeString, value)
	}
	if _u.mutation.ShopifyOrderIDCleared() {
		_spec.ClearField(transaction.FieldShopifyOrderID, field.TypeString)
	}
	if value, ok := _u.mutation.PlatformMetadata(); ok {
		_spec.SetField(transaction.FieldPlatformMetadata, field.TypeJSON, value)
	}
	if _u.mutation.PlatformMetadataCleared() {
		_spec.ClearField(transaction.FieldPlatformMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.PaymentProcessing(); ok {
		_spec.SetField(transaction.FieldPaymentProcessing, field.TypeJSON, value)
	}
	if _u.mutation.PaymentProcessingCleared() {
		_spec.ClearField(transaction.FieldPaymentProcessing, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(transaction.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(transaction.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SupplierCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   transaction.SupplierTable,
			Columns: []string{transaction.SupplierColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(supplier.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SupplierIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   transaction.SupplierTable,
			Columns: []string{transaction.SupplierColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(supplier.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TransactionUpdateOne is the builder for updating a single Transaction entity.
type TransactionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TransactionMutation
}

// SetDate sets the "date" field.
func (_u *TransactionUpdateOne) SetDate(v time.Time) *TransactionUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableDate(v *time.Time) *TransactionUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *TransactionUpdateOne) SetType(v string) *TransactionUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableType(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *TransactionUpdateOne) SetAmount(v float64) *TransactionUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableAmount(v *float64) *TransactionUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *TransactionUpdateOne) AddAmount(v float64) *TransactionUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *TransactionUpdateOne) SetSource(v string) *TransactionUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableSource(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TransactionUpdateOne) SetStatus(v string) *TransactionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableStatus(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProducts sets the "products" field.
func (_u *TransactionUpdateOne) SetProducts(v []entity.TransactionProduct) *TransactionUpdateOne {
	_u.mutation.SetProducts(v)
	return _u
}

// AppendProducts appends value to the "products" field.
func (_u *TransactionUpdateOne) AppendProducts(v []entity.TransactionProduct) *TransactionUpdateOne {
	_u.mutation.AppendProducts(v)
	return _u
}

// ClearProducts clears the value of the "products" field.
func (_u *TransactionUpdateOne) ClearProducts() *TransactionUpdateOne {
	_u.mutation.ClearProducts()
	return _u
}

// SetLineItems sets the "line_items" field.
func (_u *TransactionUpdateOne) SetLineItems(v []entity.TransactionProduct) *TransactionUpdateOne {
	_u.mutation.SetLineItems(v)
	return _u
}

// AppendLineItems appends value to the "line_items" field.
func (_u *TransactionUpdateOne) AppendLineItems(v []entity.TransactionProduct) *TransactionUpdateOne {
	_u.mutation.AppendLineItems(v)
	return _u
}

// ClearLineItems clears the value of the "line_items" field.
func (_u *TransactionUpdateOne) ClearLineItems() *TransactionUpdateOne {
	_u.mutation.ClearLineItems()
	return _u
}

// SetPreTaxAmount sets the "pre_tax_amount" field.
func (_u *TransactionUpdateOne) SetPreTaxAmount(v float64) *TransactionUpdateOne {
	_u.mutation.ResetPreTaxAmount()
	_u.mutation.SetPreTaxAmount(v)
	return _u
}

// SetNillablePreTaxAmount sets the "pre_tax_amount" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillablePreTaxAmount(v *float64) *TransactionUpdateOne {
	if v != nil {
		_u.SetPreTaxAmount(*v)
	}
	return _u
}

// AddPreTaxAmount adds value to the "pre_tax_amount" field.
func (_u *TransactionUpdateOne) AddPreTaxAmount(v float64) *TransactionUpdateOne {
	_u.mutation.AddPreTaxAmount(v)
	return _u
}

// ClearPreTaxAmount clears the value of the "pre_tax_amount" field.
func (_u *TransactionUpdateOne) ClearPreTaxAmount() *TransactionUpdateOne {
	_u.mutation.ClearPreTaxAmount()
	return _u
}

// SetTaxAmount sets the "tax_amount" field.
func (_u *TransactionUpdateOne) SetTaxAmount(v float64) *TransactionUpdateOne {
	_u.mutation.ResetTaxAmount()
	_u.mutation.SetTaxAmount(v)
	return _u
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableTaxAmount(v *float64) *TransactionUpdateOne {
	if v != nil {
		_u.SetTaxAmount(*v)
	}
	return _u
}

// AddTaxAmount adds value to the "tax_amount" field.
func (_u *TransactionUpdateOne) AddTaxAmount(v float64) *TransactionUpdateOne {
	_u.mutation.AddTaxAmount(v)
	return _u
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (_u *TransactionUpdateOne) ClearTaxAmount() *TransactionUpdateOne {
	_u.mutation.ClearTaxAmount()
	return _u
}

// SetTip sets the "tip" field.
func (_u *TransactionUpdateOne) SetTip(v float64) *TransactionUpdateOne {
	_u.mutation.ResetTip()
	_u.mutation.SetTip(v)
	return _u
}

// SetNillableTip sets the "tip" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableTip(v *float64) *TransactionUpdateOne {
	if v != nil {
		_u.SetTip(*v)
	}
	return _u
}

// AddTip adds value to the "tip" field.
func (_u *TransactionUpdateOne) AddTip(v float64) *TransactionUpdateOne {
	_u.mutation.AddTip(v)
	return _u
}

// ClearTip clears the value of the "tip" field.
func (_u *TransactionUpdateOne) ClearTip() *TransactionUpdateOne {
	_u.mutation.ClearTip()
	return _u
}

// SetIsTaxable sets the "is_taxable" field.
func (_u *TransactionUpdateOne) SetIsTaxable(v bool) *TransactionUpdateOne {
	_u.mutation.SetIsTaxable(v)
	return _u
}

// SetNillableIsTaxable sets the "is_taxable" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableIsTaxable(v *bool) *TransactionUpdateOne {
	if v != nil {
		_u.SetIsTaxable(*v)
	}
	return _u
}

// ClearIsTaxable clears the value of the "is_taxable" field.
func (_u *TransactionUpdateOne) ClearIsTaxable() *TransactionUpdateOne {
	_u.mutation.ClearIsTaxable()
	return _u
}

// SetDraft sets the "draft" field.
func (_u *TransactionUpdateOne) SetDraft(v bool) *TransactionUpdateOne {
	_u.mutation.SetDraft(v)
	return _u
}

// SetNillableDraft sets the "draft" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableDraft(v *bool) *TransactionUpdateOne {
	if v != nil {
		_u.SetDraft(*v)
	}
	return _u
}

// ClearDraft clears the value of the "draft" field.
func (_u *TransactionUpdateOne) ClearDraft() *TransactionUpdateOne {
	_u.mutation.ClearDraft()
	return _u
}

// SetCustomer sets the "customer" field.
func (_u *TransactionUpdateOne) SetCustomer(v string) *TransactionUpdateOne {
	_u.mutation.SetCustomer(v)
	return _u
}

// SetNillableCustomer sets the "customer" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableCustomer(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetCustomer(*v)
	}
	return _u
}

// ClearCustomer clears the value of the "customer" field.
func (_u *TransactionUpdateOne) ClearCustomer() *TransactionUpdateOne {
	_u.mutation.ClearCustomer()
	return _u
}

// SetEmail sets the "email" field.
func (_u *TransactionUpdateOne) SetEmail(v string) *TransactionUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableEmail(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *TransactionUpdateOne) ClearEmail() *TransactionUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetPaymentMethod sets the "payment_method" field.
func (_u *TransactionUpdateOne) SetPaymentMethod(v string) *TransactionUpdateOne {
	_u.mutation.SetPaymentMethod(v)
	return _u
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillablePaymentMethod(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetPaymentMethod(*v)
	}
	return _u
}

// ClearPaymentMethod clears the value of the "payment_method" field.
func (_u *TransactionUpdateOne) ClearPaymentMethod() *TransactionUpdateOne {
	_u.mutation.ClearPaymentMethod()
	return _u
}

// SetSupplierID sets the "supplier_id" field.
func (_u *TransactionUpdateOne) SetSupplierID(v uuid.UUID) *TransactionUpdateOne {
	_u.mutation.SetSupplierID(v)
	return _u
}

// SetNillableSupplierID sets the "supplier_id" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableSupplierID(v *uuid.UUID) *TransactionUpdateOne {
	if v != nil {
		_u.SetSupplierID(*v)
	}
	return _u
}

// ClearSupplierID clears the value of the "supplier_id" field.
func (_u *TransactionUpdateOne) ClearSupplierID() *TransactionUpdateOne {
	_u.mutation.ClearSupplierID()
	return _u
}

// SetExternalID sets the "external_id" field.
func (_u *TransactionUpdateOne) SetExternalID(v string) *TransactionUpdateOne {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableExternalID(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// ClearExternalID clears the value of the "external_id" field.
func (_u *TransactionUpdateOne) ClearExternalID() *TransactionUpdateOne {
	_u.mutation.ClearExternalID()
	return _u
}

// SetShopifyOrderID sets the "shopify_order_id" field.
func (_u *TransactionUpdateOne) SetShopifyOrderID(v string) *TransactionUpdateOne {
	_u.mutation.SetShopifyOrderID(v)
	return _u
}

// SetNillableShopifyOrderID sets the "shopify_order_id" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableShopifyOrderID(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetShopifyOrderID(*v)
	}
	return _u
}

// ClearShopifyOrderID clears the value of the "shopify_order_id" field.
func (_u *TransactionUpdateOne) ClearShopifyOrderID() *TransactionUpdateOne {
	_u.mutation.ClearShopifyOrderID()
	return _u
}

// SetPlatformMetadata sets the "platform_metadata" field.
func (_u *TransactionUpdateOne) SetPlatformMetadata(v *entity.PlatformMetadata) *TransactionUpdateOne {
	_u.mutation.SetPlatformMetadata(v)
	return _u
}

// ClearPlatformMetadata clears the value of the "platform_metadata" field.
func (_u *TransactionUpdateOne) ClearPlatformMetadata() *TransactionUpdateOne {
	_u.mutation.ClearPlatformMetadata()
	return _u
}

// SetPaymentProcessing sets the "payment_processing" field.
func (_u *TransactionUpdateOne) SetPaymentProcessing(v *entity.PaymentProcessing) *TransactionUpdateOne {
	_u.mutation.SetPaymentProcessing(v)
	return _u
}

// ClearPaymentProcessing clears the value of the "payment_processing" field.
func (_u *TransactionUpdateOne) ClearPaymentProcessing() *TransactionUpdateOne {
	_u.mutation.ClearPaymentProcessing()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TransactionUpdateOne) SetCreatedAt(v time.Time) *TransactionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableCreatedAt(v *time.Time) *TransactionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TransactionUpdateOne) SetUpdatedAt(v time.Time) *TransactionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSupplier sets the "supplier" edge to the Supplier entity.
func (_u *TransactionUpdateOne) SetSupplier(v *Supplier) *TransactionUpdateOne {
	return _u.SetSupplierID(v.ID)
}

// Mutation returns the TransactionMutation object of the builder.
func (_u *TransactionUpdateOne) Mutation() *TransactionMutation {
	return _u.mutation
}

// ClearSupplier clears the "supplier" edge to the Supplier entity.
func (_u *TransactionUpdateOne) ClearSupplier() *TransactionUpdateOne {
	_u.mutation.ClearSupplier()
	return _u
}

// Where appends a list predicates to the TransactionUpdate builder.
func (_u *TransactionUpdateOne) Where(ps ...predicate.Transaction) *TransactionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TransactionUpdateOne) Select(field string, fields ...string) *TransactionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Transaction entity.
func (_u *TransactionUpdateOne) Save(ctx context.Context) (*Transaction, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TransactionUpdateOne) SaveX(ctx context.Context) *Transaction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TransactionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TransactionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TransactionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := transaction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *TransactionUpdateOne) sqlSave(ctx context.Context) (_node *Transaction, err error) {
	_spec := sqlgraph.NewUpdateSpec(transaction.Table, transaction.Columns, sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Transaction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, transaction.FieldID)
		for _, f := range fields {
			if !transaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != transaction.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(transaction.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(transaction.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(transaction.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(transaction.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(transaction.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(transaction.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Products(); ok {
		_spec.SetField(transaction.FieldProducts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProducts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, transaction.FieldProducts, value)
		})
	}
	if _u.mutation.ProductsCleared() {
		_spec.ClearField(transaction.FieldProducts, field.TypeJSON)
	}
	if value, ok := _u.mutation.LineItems(); ok {
		_spec.SetField(transaction.FieldLineItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLineItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, transaction.FieldLineItems, value)
		})
	}
	if _u.mutation.LineItemsCleared() {
		_spec.ClearField(transaction.FieldLineItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.PreTaxAmount(); ok {
		_spec.SetField(transaction.FieldPreTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPreTaxAmount(); ok {
		_spec.AddField(transaction.FieldPreTaxAmount, field.TypeFloat64, value)
	}
	if _u.mutation.PreTaxAmountCleared() {
		_spec.ClearField(transaction.FieldPreTaxAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TaxAmount(); ok {
		_spec.SetField(transaction.FieldTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxAmount(); ok {
		_spec.AddField(transaction.FieldTaxAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TaxAmountCleared() {
		_spec.ClearField(transaction.FieldTaxAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Tip(); ok {
		_spec.SetField(transaction.FieldTip, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTip(); ok {
		_spec.AddField(transaction.FieldTip, field.TypeFloat64, value)
	}
	if _u.mutation.TipCleared() {
		_spec.ClearField(transaction.FieldTip, field.TypeFloat64)
	}
	if value, ok := _u.mutation.IsTaxable(); ok {
		_spec.SetField(transaction.FieldIsTaxable, field.TypeBool, value)
	}
	if _u.mutation.IsTaxableCleared() {
		_spec.ClearField(transaction.FieldIsTaxable, field.TypeBool)
	}
	if value, ok := _u.mutation.Draft(); ok {
		_spec.SetField(transaction.FieldDraft, field.TypeBool, value)
	}
	if _u.mutation.DraftCleared() {
		_spec.ClearField(transaction.FieldDraft, field.TypeBool)
	}
	if value, ok := _u.mutation.Customer(); ok {
		_spec.SetField(transaction.FieldCustomer, field.TypeString, value)
	}
	if _u.mutation.CustomerCleared() {
		_spec.ClearField(transaction.FieldCustomer, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(transaction.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(transaction.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentMethod(); ok {
		_spec.SetField(transaction.FieldPaymentMethod, field.TypeString, value)
	}
	if _u.mutation.PaymentMethodCleared() {
		_spec.ClearField(transaction.FieldPaymentMethod, field.TypeString)
	}
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(transaction.FieldExternalID, field.TypeString, value)
	}
	if _u.mutation.ExternalIDCleared() {
		_spec.ClearField(transaction.FieldExternalID, field.TypeString)
	}
	if value, ok := _u.mutation.ShopifyOrderID(); ok {
		_spec.SetField(transaction.FieldShopifyOrderID, field.TypeString, value)
	}
	if _u.mutation.ShopifyOrderIDCleared() {
		_spec.ClearField(transaction.FieldShopifyOrderID, field.TypeString)
	}
	if value, ok := _u.mutation.PlatformMetadata(); ok {
		_spec.SetField(transaction.FieldPlatformMetadata, field.TypeJSON, value)
	}
	if _u.mutation.PlatformMetadataCleared() {
		_spec.ClearField(transaction.FieldPlatformMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.PaymentProcessing(); ok {
		_spec.SetField(transaction.FieldPaymentProcessing, field.TypeJSON, value)
	}
	if _u.mutation.PaymentProcessingCleared() {
		_spec.ClearField(transaction.FieldPaymentProcessing, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(transaction.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(transaction.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SupplierCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   transaction.SupplierTable,
			Columns: []string{transaction.SupplierColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(supplier.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SupplierIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   transaction.SupplierTable,
			Columns: []string{transaction.SupplierColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(supplier.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Transaction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
