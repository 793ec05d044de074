// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/daydreamers/ops-backend/gen/ent/inventorychange"
	"github.com/daydreamers/ops-backend/gen/ent/product"
	"github.com/google/uuid"
)

// InventoryChangeCreate is the builder for creating a InventoryChange entity.
type InventoryChangeCreate struct {
	config
	mutation *InventoryChangeMutation
	hooks    []Hook
}

// SetProductID sets the "product_id" field.
func (_c *InventoryChangeCreate) SetProductID(v uuid.UUID) *InventoryChangeCreate {
	_c.mutation.SetProductID(v)
	return _c
}

// SetTransactionID sets the "transaction_id" field.
func (_c *InventoryChangeCreate) SetTransactionID(v uuid.UUID) *InventoryChangeCreate {
	_c.mutation.SetTransactionID(v)
	return _c
}

// SetNillableTransactionID sets the "transaction_id" field if the given value is not nil.
func (_c *InventoryChangeCreate) SetNillableTransactionID(v *uuid.UUID) *InventoryChangeCreate {
	if v != nil {
		_c.SetTransactionID(*v)
	}
	return _c
}

// SetQuantityChange sets the "quantity_change" field.
func (_c *InventoryChangeCreate) SetQuantityChange(v int) *InventoryChangeCreate {
	_c.mutation.SetQuantityChange(v)
	return _c
}

// SetChangeType sets the "change_type" field.
func (_c *InventoryChangeCreate) SetChangeType(v string) *InventoryChangeCreate {
	_c.mutation.SetChangeType(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *InventoryChangeCreate) SetSource(v string) *InventoryChangeCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *InventoryChangeCreate) SetNillableSource(v *string) *InventoryChangeCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetReason sets the "reason" field.
func (_c *InventoryChangeCreate) SetReason(v string) *InventoryChangeCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *InventoryChangeCreate) SetNillableReason(v *string) *InventoryChangeCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *InventoryChangeCreate) SetTimestamp(v time.Time) *InventoryChangeCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *InventoryChangeCreate) SetNillableTimestamp(v *time.Time) *InventoryChangeCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InventoryChangeCreate) SetID(v uuid.UUID) *InventoryChangeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InventoryChangeCreate) SetNillableID(v *uuid.UUID) *InventoryChangeCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProduct sets the "product" edge to the Product entity.
func (_c *InventoryChangeCreate) SetProduct(v *Product) *InventoryChangeCreate {
	return _c.SetProductID(v.ID)
}

// Mutation returns the InventoryChangeMutation object of the builder.
func (_c *InventoryChangeCreate) Mutation() *InventoryChangeMutation {
	return _c.mutation
}

// Save creates the InventoryChange in the database.
func (_c *InventoryChangeCreate) Save(ctx context.Context) (*InventoryChange, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InventoryChangeCreate) SaveX(ctx context.Context) *InventoryChange {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InventoryChangeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InventoryChangeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InventoryChangeCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := inventorychange.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := inventorychange.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InventoryChangeCreate) check() error {
	if _, ok := _c.mutation.ProductID(); !ok {
		return &ValidationError{Name: "product_id", err: errors.New(`ent: missing required field "InventoryChange.product_id"`)}
	}
	if _, ok := _c.mutation.QuantityChange(); !ok {
		return &ValidationError{Name: "quantity_change", err: errors.New(`ent: missing required field "InventoryChange.quantity_change"`)}
	}
	if _, ok := _c.mutation.ChangeType(); !ok {
		return &ValidationError{Name: "change_type", err: errors.New(`ent: missing required field "InventoryChange.change_type"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "InventoryChange.timestamp"`)}
	}
	if len(_c.mutation.ProductIDs()) == 0 {
		return &ValidationError{Name: "product", err: errors.New(`ent: missing required edge "InventoryChange.product"`)}
	}
	return nil
}

func (_c *InventoryChangeCreate) sqlSave(ctx context.Context) (*InventoryChange, error) {
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

func (_c *InventoryChangeCreate) createSpec() (*InventoryChange, *sqlgraph.CreateSpec) {
	var (
		_node = &InventoryChange{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(inventorychange.Table, sqlgraph.NewFieldSpec(inventorychange.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.TransactionID(); ok {
		_spec.SetField(inventorychange.FieldTransactionID, field.TypeUUID, value)
		_node.TransactionID = &value
	}
	if value, ok := _c.mutation.QuantityChange(); ok {
		_spec.SetField(inventorychange.FieldQuantityChange, field.TypeInt, value)
		_node.QuantityChange = value
	}
	if value, ok := _c.mutation.ChangeType(); ok {
		_spec.SetField(inventorychange.FieldChangeType, field.TypeString, value)
		_node.ChangeType = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(inventorychange.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(inventorychange.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(inventorychange.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if nodes := _c.mutation.ProductIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   inventorychange.ProductTable,
			Columns: []string{inventorychange.ProductColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProductID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InventoryChangeCreateBulk is the builder for creating many InventoryChange entities in bulk.
type InventoryChangeCreateBulk struct {
	config
	err      error
	builders []*InventoryChangeCreate
}

// Save creates the InventoryChange entities in the database.
func (_c *InventoryChangeCreateBulk) Save(ctx context.Context) ([]*InventoryChange, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InventoryChange, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InventoryChangeMutation)
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
func (_c *InventoryChangeCreateBulk) SaveX(ctx context.Context) []*InventoryChange {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InventoryChangeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InventoryChangeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
