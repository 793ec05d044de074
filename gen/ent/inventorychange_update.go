// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/daydreamers/ops-backend/gen/ent/inventorychange"
	"github.com/daydreamers/ops-backend/gen/ent/predicate"
	"github.com/daydreamers/ops-backend/gen/ent/product"
	"github.com/google/uuid"
)

// InventoryChangeUpdate is the builder for updating InventoryChange entities.
type InventoryChangeUpdate struct {
	config
	hooks    []Hook
	mutation *InventoryChangeMutation
}

// Where appends a list predicates to the InventoryChangeUpdate builder.
func (_u *InventoryChangeUpdate) Where(ps ...predicate.InventoryChange) *InventoryChangeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProductID sets the "product_id" field.
func (_u *InventoryChangeUpdate) SetProductID(v uuid.UUID) *InventoryChangeUpdate {
	_u.mutation.SetProductID(v)
	return _u
}

// SetNillableProductID sets the "product_id" field if the given value is not nil.
func (_u *InventoryChangeUpdate) SetNillableProductID(v *uuid.UUID) *InventoryChangeUpdate {
	if v != nil {
		_u.SetProductID(*v)
	}
	return _u
}

// SetTransactionID sets the "transaction_id" field.
func (_u *InventoryChangeUpdate) SetTransactionID(v uuid.UUID) *InventoryChangeUpdate {
	_u.mutation.SetTransactionID(v)
	return _u
}

// SetNillableTransactionID sets the "transaction_id" field if the given value is not nil.
func (_u *InventoryChangeUpdate) SetNillableTransactionID(v *uuid.UUID) *InventoryChangeUpdate {
	if v != nil {
		_u.SetTransactionID(*v)
	}
	return _u
}

// ClearTransactionID clears the value of the "transaction_id" field.
func (_u *InventoryChangeUpdate) ClearTransactionID() *InventoryChangeUpdate {
	_u.mutation.ClearTransactionID()
	return _u
}

// SetProduct sets the "product" edge to the Product entity.
func (_u *InventoryChangeUpdate) SetProduct(v *Product) *InventoryChangeUpdate {
	return _u.SetProductID(v.ID)
}

// Mutation returns the InventoryChangeMutation object of the builder.
func (_u *InventoryChangeUpdate) Mutation() *InventoryChangeMutation {
	return _u.mutation
}

// ClearProduct clears the "product" edge to the Product entity.
func (_u *InventoryChangeUpdate) ClearProduct() *InventoryChangeUpdate {
	_u.mutation.ClearProduct()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InventoryChangeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InventoryChangeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InventoryChangeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InventoryChangeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InventoryChangeUpdate) check() error {
	if _u.mutation.ProductCleared() && len(_u.mutation.ProductIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InventoryChange.product"`)
	}
	return nil
}

func (_u *InventoryChangeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(inventorychange.Table, inventorychange.Columns, sqlgraph.NewFieldSpec(inventorychange.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TransactionID(); ok {
		_spec.SetField(inventorychange.FieldTransactionID, field.TypeUUID, value)
	}
	if _u.mutation.TransactionIDCleared() {
		_spec.ClearField(inventorychange.FieldTransactionID, field.TypeUUID)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(inventorychange.FieldSource, field.TypeString)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(inventorychange.FieldReason, field.TypeString)
	}
	if _u.mutation.ProductCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProductIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inventorychange.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InventoryChangeUpdateOne is the builder for updating a single InventoryChange entity.
type InventoryChangeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InventoryChangeMutation
}

// SetProductID sets the "product_id" field.
func (_u *InventoryChangeUpdateOne) SetProductID(v uuid.UUID) *InventoryChangeUpdateOne {
	_u.mutation.SetProductID(v)
	return _u
}

// SetNillableProductID sets the "product_id" field if the given value is not nil.
func (_u *InventoryChangeUpdateOne) SetNillableProductID(v *uuid.UUID) *InventoryChangeUpdateOne {
	if v != nil {
		_u.SetProductID(*v)
	}
	return _u
}

// SetTransactionID sets the "transaction_id" field.
func (_u *InventoryChangeUpdateOne) SetTransactionID(v uuid.UUID) *InventoryChangeUpdateOne {
	_u.mutation.SetTransactionID(v)
	return _u
}

// SetNillableTransactionID sets the "transaction_id" field if the given value is not nil.
func (_u *InventoryChangeUpdateOne) SetNillableTransactionID(v *uuid.UUID) *InventoryChangeUpdateOne {
	if v != nil {
		_u.SetTransactionID(*v)
	}
	return _u
}

// ClearTransactionID clears the value of the "transaction_id" field.
func (_u *InventoryChangeUpdateOne) ClearTransactionID() *InventoryChangeUpdateOne {
	_u.mutation.ClearTransactionID()
	return _u
}

// SetProduct sets the "product" edge to the Product entity.
func (_u *InventoryChangeUpdateOne) SetProduct(v *Product) *InventoryChangeUpdateOne {
	return _u.SetProductID(v.ID)
}

// Mutation returns the InventoryChangeMutation object of the builder.
func (_u *InventoryChangeUpdateOne) Mutation() *InventoryChangeMutation {
	return _u.mutation
}

// ClearProduct clears the "product" edge to the Product entity.
func (_u *InventoryChangeUpdateOne) ClearProduct() *InventoryChangeUpdateOne {
	_u.mutation.ClearProduct()
	return _u
}

// Where appends a list predicates to the InventoryChangeUpdate builder.
func (_u *InventoryChangeUpdateOne) Where(ps ...predicate.InventoryChange) *InventoryChangeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InventoryChangeUpdateOne) Select(field string, fields ...string) *InventoryChangeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InventoryChange entity.
func (_u *InventoryChangeUpdateOne) Save(ctx context.Context) (*InventoryChange, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InventoryChangeUpdateOne) SaveX(ctx context.Context) *InventoryChange {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InventoryChangeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InventoryChangeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InventoryChangeUpdateOne) check() error {
	if _u.mutation.ProductCleared() && len(_u.mutation.ProductIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InventoryChange.product"`)
	}
	return nil
}

func (_u *InventoryChangeUpdateOne) sqlSave(ctx context.Context) (_node *InventoryChange, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(inventorychange.Table, inventorychange.Columns, sqlgraph.NewFieldSpec(inventorychange.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InventoryChange.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, inventorychange.FieldID)
		for _, f := range fields {
			if !inventorychange.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != inventorychange.FieldID {
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
	if value, ok := _u.mutation.TransactionID(); ok {
		_spec.SetField(inventorychange.FieldTransactionID, field.TypeUUID, value)
	}
	if _u.mutation.TransactionIDCleared() {
		_spec.ClearField(inventorychange.FieldTransactionID, field.TypeUUID)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(inventorychange.FieldSource, field.TypeString)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(inventorychange.FieldReason, field.TypeString)
	}
	if _u.mutation.ProductCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProductIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &InventoryChange{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inventorychange.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
