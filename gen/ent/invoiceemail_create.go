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
	"github.com/google/uuid"
)

// InvoiceEmailCreate is the builder for creating a InvoiceEmail entity.
type InvoiceEmailCreate struct {
	config
	mutation *InvoiceEmailMutation
	hooks    []Hook
}

// SetEmailID sets the "email_id" field.
func (_c *InvoiceEmailCreate) SetEmailID(v string) *InvoiceEmailCreate {
	_c.mutation.SetEmailID(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *InvoiceEmailCreate) SetDate(v time.Time) *InvoiceEmailCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *InvoiceEmailCreate) SetSubject(v string) *InvoiceEmailCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *InvoiceEmailCreate) SetNillableSubject(v *string) *InvoiceEmailCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetFrom sets the "from" field.
func (_c *InvoiceEmailCreate) SetFrom(v string) *InvoiceEmailCreate {
	_c.mutation.SetFrom(v)
	return _c
}

// SetNillableFrom sets the "from" field if the given value is not nil.
func (_c *InvoiceEmailCreate) SetNillableFrom(v *string) *InvoiceEmailCreate {
	if v != nil {
		_c.SetFrom(*v)
	}
	return _c
}

// SetBody sets the "body" field.
func (_c *InvoiceEmailCreate) SetBody(v string) *InvoiceEmailCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_c *InvoiceEmailCreate) SetNillableBody(v *string) *InvoiceEmailCreate {
	if v != nil {
		_c.SetBody(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *InvoiceEmailCreate) SetStatus(v string) *InvoiceEmailCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *InvoiceEmailCreate) SetNillableStatus(v *string) *InvoiceEmailCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSupplierID sets the "supplier_id" field.
func (_c *InvoiceEmailCreate) SetSupplierID(v uuid.UUID) *InvoiceEmailCreate {
	_c.mutation.SetSupplierID(v)
	return _c
}

// SetNillableSupplierID sets the "supplier_id" field if the given value is not nil.
func (_c *InvoiceEmailCreate) SetNillableSupplierID(v *uuid.UUID) *InvoiceEmailCreate {
	if v != nil {
		_c.SetSupplierID(*v)
	}
	return _c
}

// SetTransactionID sets the "transaction_id" field.
func (_c *InvoiceEmailCreate) SetTransactionID(v uuid.UUID) *InvoiceEmailCreate {
	_c.mutation.SetTransactionID(v)
	return _c
}

// SetNillableTransactionID sets the "transaction_id" field if the given value is not nil.
func (_c *InvoiceEmailCreate) SetNillableTransactionID(v *uuid.UUID) *InvoiceEmailCreate {
	if v != nil {
		_c.SetTransactionID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InvoiceEmailCreate) SetCreatedAt(v time.Time) *InvoiceEmailCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InvoiceEmailCreate) SetNillableCreatedAt(v *time.Time) *InvoiceEmailCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InvoiceEmailCreate) SetUpdatedAt(v time.Time) *InvoiceEmailCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InvoiceEmailCreate) SetNillableUpdatedAt(v *time.Time) *InvoiceEmailCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InvoiceEmailCreate) SetID(v uuid.UUID) *InvoiceEmailCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InvoiceEmailCreate) SetNillableID(v *uuid.UUID) *InvoiceEmailCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSupplier sets the "supplier" edge to the Supplier entity.
func (_c *InvoiceEmailCreate) SetSupplier(v *Supplier) *InvoiceEmailCreate {
	return _c.SetSupplierID(v.ID)
}

// Mutation returns the InvoiceEmailMutation object of the builder.
func (_c *InvoiceEmailCreate) Mutation() *InvoiceEmailMutation {
	return _c.mutation
}

// Save creates the InvoiceEmail in the database.
func (_c *InvoiceEmailCreate) Save(ctx context.Context) (*InvoiceEmail, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InvoiceEmailCreate) SaveX(ctx context.Context) *InvoiceEmail {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceEmailCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceEmailCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InvoiceEmailCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := invoiceemail.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := invoiceemail.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := invoiceemail.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := invoiceemail.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InvoiceEmailCreate) check() error {
	if _, ok := _c.mutation.EmailID(); !ok {
		return &ValidationError{Name: "email_id", err: errors.New(`ent: missing required field "InvoiceEmail.email_id"`)}
	}
	if v, ok := _c.mutation.EmailID(); ok {
		if err := invoiceemail.EmailIDValidator(v); err != nil {
			return &ValidationError{Name: "email_id", err: fmt.Errorf(`ent: validator failed for field "InvoiceEmail.email_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "InvoiceEmail.date"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "InvoiceEmail.status"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "InvoiceEmail.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "InvoiceEmail.updated_at"`)}
	}
	return nil
}

func (_c *InvoiceEmailCreate) sqlSave(ctx context.Context) (*InvoiceEmail, error) {
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

func (_c *InvoiceEmailCreate) createSpec() (*InvoiceEmail, *sqlgraph.CreateSpec) {
	var (
		_node = &InvoiceEmail{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(invoiceemail.Table, sqlgraph.NewFieldSpec(invoiceemail.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.EmailID(); ok {
		_spec.SetField(invoiceemail.FieldEmailID, field.TypeString, value)
		_node.EmailID = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(invoiceemail.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(invoiceemail.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.From(); ok {
		_spec.SetField(invoiceemail.FieldFrom, field.TypeString, value)
		_node.From = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(invoiceemail.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(invoiceemail.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TransactionID(); ok {
		_spec.SetField(invoiceemail.FieldTransactionID, field.TypeUUID, value)
		_node.TransactionID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(invoiceemail.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(invoiceemail.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SupplierIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoiceemail.SupplierTable,
			Columns: []string{invoiceemail.SupplierColumn},
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

// InvoiceEmailCreateBulk is the builder for creating many InvoiceEmail entities in bulk.
type InvoiceEmailCreateBulk struct {
	config
	err      error
	builders []*InvoiceEmailCreate
}

// Save creates the InvoiceEmail entities in the database.
func (_c *InvoiceEmailCreateBulk) Save(ctx context.Context) ([]*InvoiceEmail, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InvoiceEmail, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvoiceEmailMutation)
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
func (_c *InvoiceEmailCreateBulk) SaveX(ctx context.Context) []*InvoiceEmail {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceEmailCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceEmailCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
