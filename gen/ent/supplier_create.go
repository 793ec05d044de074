// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/daydreamers/ops-backend/gen/ent/invoiceemail"
	"github.com/daydreamers/ops-backend/gen/ent/supplier"
	"github.com/daydreamers/ops-backend/gen/ent/transaction"
	"github.com/daydreamers/ops-backend/internal/entity"
	"github.com/google/uuid"
)

// SupplierCreate is the builder for creating a Supplier entity.
type SupplierCreate struct {
	config
	mutation *SupplierMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *SupplierCreate) SetName(v string) *SupplierCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetAliases sets the "aliases" field.
func (_c *SupplierCreate) SetAliases(v []string) *SupplierCreate {
	_c.mutation.SetAliases(v)
	return _c
}

// SetInvoiceEmail sets the "invoice_email" field.
func (_c *SupplierCreate) SetInvoiceEmail(v string) *SupplierCreate {
	_c.mutation.SetInvoiceEmail(v)
	return _c
}

// SetNillableInvoiceEmail sets the "invoice_email" field if the given value is not nil.
func (_c *SupplierCreate) SetNillableInvoiceEmail(v *string) *SupplierCreate {
	if v != nil {
		_c.SetInvoiceEmail(*v)
	}
	return _c
}

// SetInvoiceSubject sets the "invoice_subject" field.
func (_c *SupplierCreate) SetInvoiceSubject(v string) *SupplierCreate {
	_c.mutation.SetInvoiceSubject(v)
	return _c
}

// SetNillableInvoiceSubject sets the "invoice_subject" field if the given value is not nil.
func (_c *SupplierCreate) SetNillableInvoiceSubject(v *string) *SupplierCreate {
	if v != nil {
		_c.SetInvoiceSubject(*v)
	}
	return _c
}

// SetSkuPrefix sets the "sku_prefix" field.
func (_c *SupplierCreate) SetSkuPrefix(v string) *SupplierCreate {
	_c.mutation.SetSkuPrefix(v)
	return _c
}

// SetNillableSkuPrefix sets the "sku_prefix" field if the given value is not nil.
func (_c *SupplierCreate) SetNillableSkuPrefix(v *string) *SupplierCreate {
	if v != nil {
		_c.SetSkuPrefix(*v)
	}
	return _c
}

// SetParsingConfig sets the "parsing_config" field.
func (_c *SupplierCreate) SetParsingConfig(v entity.EmailParsingConfig) *SupplierCreate {
	_c.mutation.SetParsingConfig(v)
	return _c
}

// SetNillableParsingConfig sets the "parsing_config" field if the given value is not nil.
func (_c *SupplierCreate) SetNillableParsingConfig(v *entity.EmailParsingConfig) *SupplierCreate {
	if v != nil {
		_c.SetParsingConfig(*v)
	}
	return _c
}

// SetTrainingSamples sets the "training_samples" field.
func (_c *SupplierCreate) SetTrainingSamples(v []entity.TrainingSample) *SupplierCreate {
	_c.mutation.SetTrainingSamples(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SupplierCreate) SetCreatedAt(v time.Time) *SupplierCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SupplierCreate) SetNillableCreatedAt(v *time.Time) *SupplierCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SupplierCreate) SetUpdatedAt(v time.Time) *SupplierCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SupplierCreate) SetNillableUpdatedAt(v *time.Time) *SupplierCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SupplierCreate) SetID(v uuid.UUID) *SupplierCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SupplierCreate) SetNillableID(v *uuid.UUID) *SupplierCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddEmailIDs adds the "emails" edge to the InvoiceEmail entity by IDs.
func (_c *SupplierCreate) AddEmailIDs(ids ...uuid.UUID) *SupplierCreate {
	_c.mutation.AddEmailIDs(ids...)
	return _c
}

// AddEmails adds the "emails" edges to the InvoiceEmail entity.
func (_c *SupplierCreate) AddEmails(v ...*InvoiceEmail) *SupplierCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEmailIDs(ids...)
}

// AddTransactionIDs adds the "transactions" edge to the Transaction entity by IDs.
func (_c *SupplierCreate) AddTransactionIDs(ids ...uuid.UUID) *SupplierCreate {
	_c.mutation.AddTransactionIDs(ids...)
	return _c
}

// AddTransactions adds the "transactions" edges to the Transaction entity.
func (_c *SupplierCreate) AddTransactions(v ...*Transaction) *SupplierCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTransactionIDs(ids...)
}

// Mutation returns the SupplierMutation object of the builder.
func (_c *SupplierCreate) Mutation() *SupplierMutation {
	return _c.mutation
}

// Save creates the Supplier in the database.
func (_c *SupplierCreate) Save(ctx context.Context) (*Supplier, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SupplierCreate) SaveX(ctx context.Context) *Supplier {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SupplierCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SupplierCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SupplierCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := supplier.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := supplier.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := supplier.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SupplierCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Supplier.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := supplier.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Supplier.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Supplier.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Supplier.updated_at"`)}
	}
	return nil
}

func (_c *SupplierCreate) sqlSave(ctx context.Context) (*Supplier, error) {
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

func (_c *SupplierCreate) createSpec() (*Supplier, *sqlgraph.CreateSpec) {
	var (
		_node = &Supplier{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(supplier.Table, sqlgraph.NewFieldSpec(supplier.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(supplier.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Aliases(); ok {
		_spec.SetField(supplier.FieldAliases, field.TypeJSON, value)
		_node.Aliases = value
	}
	if value, ok := _c.mutation.InvoiceEmail(); ok {
		_spec.SetField(supplier.FieldInvoiceEmail, field.TypeString, value)
		_node.InvoiceEmail = value
	}
	if value, ok := _c.mutation.InvoiceSubject(); ok {
		_spec.SetField(supplier.FieldInvoiceSubject, field.TypeString, value)
		_node.InvoiceSubject = value
	}
	if value, ok := _c.mutation.SkuPrefix(); ok {
		_spec.SetField(supplier.FieldSkuPrefix, field.TypeString, value)
		_node.SkuPrefix = value
	}
	if value, ok := _c.mutation.ParsingConfig(); ok {
		_spec.SetField(supplier.FieldParsingConfig, field.TypeJSON, value)
		_node.ParsingConfig = value
	}
	if value, ok := _c.mutation.TrainingSamples(); ok {
		_spec.SetField(supplier.FieldTrainingSamples, field.TypeJSON, value)
		_node.TrainingSamples = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(supplier.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(supplier.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.EmailsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   supplier.EmailsTable,
			Columns: []string{supplier.EmailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceemail.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TransactionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   supplier.TransactionsTable,
			Columns: []string{supplier.TransactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SupplierCreateBulk is the builder for creating many Supplier entities in bulk.
type SupplierCreateBulk struct {
	config
	err      error
	builders []*SupplierCreate
}

// Save creates the Supplier entities in the database.
func (_c *SupplierCreateBulk) Save(ctx context.Context) ([]*Supplier, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Supplier, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SupplierMutation)
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
func (_c *SupplierCreateBulk) SaveX(ctx context.Context) []*Supplier {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SupplierCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SupplierCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
