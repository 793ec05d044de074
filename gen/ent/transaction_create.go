// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/daydreamers/ops-backend/gen/ent/supplier"
	"github.com/daydreamers/ops-backend/gen/ent/transaction"
	"github.com/daydreamers/ops-backend/internal/entity"
	"github.com/google/uuid"
)

// TransactionCreate is the builder for creating a Transaction entity.
type TransactionCreate struct {
	config
	mutation *TransactionMutation
	hooks    []Hook
}

// SetDate sets the "date" field.
func (_c *TransactionCreate) SetDate(v time.Time) *TransactionCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetType sets the "type" field.
func (_c *TransactionCreate) SetType(v string) *TransactionCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableType(v *string) *TransactionCreate {
	if v != nil {
		_c.SetType(*v)
	}
	return _c
}

// SetAmount sets the "amount" field.
func (_c *TransactionCreate) SetAmount(v float64) *TransactionCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *TransactionCreate) SetSource(v string) *TransactionCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TransactionCreate) SetStatus(v string) *TransactionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableStatus(v *string) *TransactionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetProducts sets the "products" field.
func (_c *TransactionCreate) SetProducts(v []entity.TransactionProduct) *TransactionCreate {
	_c.mutation.SetProducts(v)
	return _c
}

// SetLineItems sets the "line_items" field.
func (_c *TransactionCreate) SetLineItems(v []entity.TransactionProduct) *TransactionCreate {
	_c.mutation.SetLineItems(v)
	return _c
}

// SetPreTaxAmount sets the "pre_tax_amount" field.
func (_c *TransactionCreate) SetPreTaxAmount(v float64) *TransactionCreate {
	_c.mutation.SetPreTaxAmount(v)
	return _c
}

// SetNillablePreTaxAmount sets the "pre_tax_amount" field if the given value is not nil.
func (_c *TransactionCreate) SetNillablePreTaxAmount(v *float64) *TransactionCreate {
	if v != nil {
		_c.SetPreTaxAmount(*v)
	}
	return _c
}

// SetTaxAmount sets the "tax_amount" field.
func (_c *TransactionCreate) SetTaxAmount(v float64) *TransactionCreate {
	_c.mutation.SetTaxAmount(v)
	return _c
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableTaxAmount(v *float64) *TransactionCreate {
	if v != nil {
		_c.SetTaxAmount(*v)
	}
	return _c
}

// SetTip sets the "tip" field.
func (_c *TransactionCreate) SetTip(v float64) *TransactionCreate {
	_c.mutation.SetTip(v)
	return _c
}

// SetNillableTip sets the "tip" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableTip(v *float64) *TransactionCreate {
	if v != nil {
		_c.SetTip(*v)
	}
	return _c
}

// SetIsTaxable sets the "is_taxable" field.
func (_c *TransactionCreate) SetIsTaxable(v bool) *TransactionCreate {
	_c.mutation.SetIsTaxable(v)
	return _c
}

// SetNillableIsTaxable sets the "is_taxable" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableIsTaxable(v *bool) *TransactionCreate {
	if v != nil {
		_c.SetIsTaxable(*v)
	}
	return _c
}

// SetDraft sets the "draft" field.
func (_c *TransactionCreate) SetDraft(v bool) *TransactionCreate {
	_c.mutation.SetDraft(v)
	return _c
}

// SetNillableDraft sets the "draft" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableDraft(v *bool) *TransactionCreate {
	if v != nil {
		_c.SetDraft(*v)
	}
	return _c
}

// SetCustomer sets the "customer" field.
func (_c *TransactionCreate) SetCustomer(v string) *TransactionCreate {
	_c.mutation.SetCustomer(v)
	return _c
}

// SetNillableCustomer sets the "customer" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableCustomer(v *string) *TransactionCreate {
	if v != nil {
		_c.SetCustomer(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *TransactionCreate) SetEmail(v string) *TransactionCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableEmail(v *string) *TransactionCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetPaymentMethod sets the "payment_method" field.
func (_c *TransactionCreate) SetPaymentMethod(v string) *TransactionCreate {
	_c.mutation.SetPaymentMethod(v)
	return _c
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_c *TransactionCreate) SetNillablePaymentMethod(v *string) *TransactionCreate {
	if v != nil {
		_c.SetPaymentMethod(*v)
	}
	return _c
}

// SetSupplierID sets the "supplier_id" field.
func (_c *TransactionCreate) SetSupplierID(v uuid.UUID) *TransactionCreate {
	_c.mutation.SetSupplierID(v)
	return _c
}

// SetNillableSupplierID sets the "supplier_id" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableSupplierID(v *uuid.UUID) *TransactionCreate {
	if v != nil {
		_c.SetSupplierID(*v)
	}
	return _c
}

// SetExternalID sets the "external_id" field.
func (_c *TransactionCreate) SetExternalID(v string) *TransactionCreate {
	_c.mutation.SetExternalID(v)
	return _c
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableExternalID(v *string) *TransactionCreate {
	if v != nil {
		_c.SetExternalID(*v)
	}
	return _c
}

// SetShopifyOrderID sets the "shopify_order_id" field.
func (_c *TransactionCreate) SetShopifyOrderID(v string) *TransactionCreate {
	_c.mutation.SetShopifyOrderID(v)
	return _c
}

// SetNillableShopifyOrderID sets the "shopify_order_id" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableShopifyOrderID(v *string) *TransactionCreate {
	if v != nil {
		_c.SetShopifyOrderID(*v)
	}
	return _c
}

// SetPlatformMetadata sets the "platform_metadata" field.
func (_c *TransactionCreate) SetPlatformMetadata(v *entity.PlatformMetadata) *TransactionCreate {
	_c.mutation.SetPlatformMetadata(v)
	return _c
}

// SetPaymentProcessing sets the "payment_processing" field.
func (_c *TransactionCreate) SetPaymentProcessing(v *entity.PaymentProcessing) *TransactionCreate {
	_c.mutation.SetPaymentProcessing(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TransactionCreate) SetCreatedAt(v time.Time) *TransactionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableCreatedAt(v *time.Time) *TransactionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TransactionCreate) SetUpdatedAt(v time.Time) *TransactionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableUpdatedAt(v *time.Time) *TransactionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TransactionCreate) SetID(v uuid.UUID) *TransactionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableID(v *uuid.UUID) *TransactionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSupplier sets the "supplier" edge to the Supplier entity.
func (_c *TransactionCreate) SetSupplier(v *Supplier) *TransactionCreate {
	return _c.SetSupplierID(v.ID)
}

// Mutation returns the TransactionMutation object of the builder.
func (_c *TransactionCreate) Mutation() *TransactionMutation {
	return _c.mutation
}

// Save creates the Transaction in the database.
func (_c *TransactionCreate) Save(ctx context.Context) (*Transaction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TransactionCreate) SaveX(ctx context.Context) *Transaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TransactionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TransactionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TransactionCreate) defaults() {
	if _, ok := _c.mutation.GetType(); !ok {
		v := transaction.DefaultType
		_c.mutation.SetType(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := transaction.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := transaction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := transaction.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := transaction.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TransactionCreate) check() error {
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "Transaction.date"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Transaction.type"`)}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "Transaction.amount"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Transaction.source"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Transaction.status"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Transaction.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Transaction.updated_at"`)}
	}
	return nil
}

func (_c *TransactionCreate) sqlSave(ctx context.Context) (*Transaction, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TransactionCreate) createSpec() (*Transaction, *sqlgraph.CreateSpec) {
	var (
		_node = &Transaction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(transaction.Table, sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(transaction.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(transaction.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(transaction.FieldAmount, field.TypeFloat64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(transaction.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(transaction.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Products(); ok {
		_spec.SetField(transaction.FieldProducts, field.TypeJSON, value)
		_node.Products = value
	}
	if value, ok := _c.mutation.LineItems(); ok {
		_spec.SetField(transaction.FieldLineItems, field.TypeJSON, value)
		_node.LineItems = value
	}
	if value, ok := _c.mutation.PreTaxAmount(); ok {
		_spec.SetField(transaction.FieldPreTaxAmount, field.TypeFloat64, value)
		_node.PreTaxAmount = &value
	}
	if value, ok := _c.mutation.TaxAmount(); ok {
		_spec.SetField(transaction.FieldTaxAmount, field.TypeFloat64, value)
		_node.TaxAmount = &value
	}
	if value, ok := _c.mutation.Tip(); ok {
		_spec.SetField(transaction.FieldTip, field.TypeFloat64, value)
		_node.Tip = &value
	}
	if value, ok := _c.mutation.IsTaxable(); ok {
		_spec.SetField(transaction.FieldIsTaxable, field.TypeBool, value)
		_node.IsTaxable = &value
	}
	if value, ok := _c.mutation.Draft(); ok {
		_spec.SetField(transaction.FieldDraft, field.TypeBool, value)
		_node.Draft = &value
	}
	if value, ok := _c.mutation.Customer(); ok {
		_spec.SetField(transaction.FieldCustomer, field.TypeString, value)
		_node.Customer = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(transaction.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.PaymentMethod(); ok {
		_spec.SetField(transaction.FieldPaymentMethod, field.TypeString, value)
		_node.PaymentMethod = value
	}
	if value, ok := _c.mutation.ExternalID(); ok {
		_spec.SetField(transaction.FieldExternalID, field.TypeString, value)
		_node.ExternalID = value
	}
	if value, ok := _c.mutation.ShopifyOrderID(); ok {
		_spec.SetField(transaction.FieldShopifyOrderID, field.TypeString, value)
		_node.ShopifyOrderID = value
	}
	if value, ok := _c.mutation.PlatformMetadata(); ok {
		_spec.SetField(transaction.FieldPlatformMetadata, field.TypeJSON, value)
		_node.PlatformMetadata = value
	}
	if value, ok := _c.mutation.PaymentProcessing(); ok {
		_spec.SetField(transaction.FieldPaymentProcessing, field.TypeJSON, value)
		_node.PaymentProcessing = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(transaction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(transaction.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SupplierIDs(); len(nodes) > 0 {
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
		_node.SupplierID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TransactionCreateBulk is the builder for creating many Transaction entities in bulk.
type TransactionCreateBulk struct {
	config
	err      error
	builders []*TransactionCreate
}

// Save creates the Transaction entities in the database.
func (_c *TransactionCreateBulk) Save(ctx context.Context) ([]*Transaction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Transaction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TransactionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TransactionCreateBulk) SaveX(ctx context.Context) []*Transaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TransactionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TransactionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
