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
	"github.com/daydreamers/ops-backend/internal/entity"
	"github.com/google/uuid"
)

// ProductCreate is the builder for creating a Product entity.
type ProductCreate struct {
	config
	mutation *ProductMutation
	hooks    []Hook
}

// SetBaseProductName sets the "base_product_name" field.
func (_c *ProductCreate) SetBaseProductName(v string) *ProductCreate {
	_c.mutation.SetBaseProductName(v)
	return _c
}

// SetVariantName sets the "variant_name" field.
func (_c *ProductCreate) SetVariantName(v string) *ProductCreate {
	_c.mutation.SetVariantName(v)
	return _c
}

// SetNillableVariantName sets the "variant_name" field if the given value is not nil.
func (_c *ProductCreate) SetNillableVariantName(v *string) *ProductCreate {
	if v != nil {
		_c.SetVariantName(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *ProductCreate) SetName(v string) *ProductCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSku sets the "sku" field.
func (_c *ProductCreate) SetSku(v string) *ProductCreate {
	_c.mutation.SetSku(v)
	return _c
}

// SetPrice sets the "price" field.
func (_c *ProductCreate) SetPrice(v float64) *ProductCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_c *ProductCreate) SetNillablePrice(v *float64) *ProductCreate {
	if v != nil {
		_c.SetPrice(*v)
	}
	return _c
}

// SetStock sets the "stock" field.
func (_c *ProductCreate) SetStock(v int) *ProductCreate {
	_c.mutation.SetStock(v)
	return _c
}

// SetNillableStock sets the "stock" field if the given value is not nil.
func (_c *ProductCreate) SetNillableStock(v *int) *ProductCreate {
	if v != nil {
		_c.SetStock(*v)
	}
	return _c
}

// SetAverageCost sets the "average_cost" field.
func (_c *ProductCreate) SetAverageCost(v float64) *ProductCreate {
	_c.mutation.SetAverageCost(v)
	return _c
}

// SetNillableAverageCost sets the "average_cost" field if the given value is not nil.
func (_c *ProductCreate) SetNillableAverageCost(v *float64) *ProductCreate {
	if v != nil {
		_c.SetAverageCost(*v)
	}
	return _c
}

// SetTotalSpent sets the "total_spent" field.
func (_c *ProductCreate) SetTotalSpent(v float64) *ProductCreate {
	_c.mutation.SetTotalSpent(v)
	return _c
}

// SetNillableTotalSpent sets the "total_spent" field if the given value is not nil.
func (_c *ProductCreate) SetNillableTotalSpent(v *float64) *ProductCreate {
	if v != nil {
		_c.SetTotalSpent(*v)
	}
	return _c
}

// SetTotalPurchased sets the "total_purchased" field.
func (_c *ProductCreate) SetTotalPurchased(v float64) *ProductCreate {
	_c.mutation.SetTotalPurchased(v)
	return _c
}

// SetNillableTotalPurchased sets the "total_purchased" field if the given value is not nil.
func (_c *ProductCreate) SetNillableTotalPurchased(v *float64) *ProductCreate {
	if v != nil {
		_c.SetTotalPurchased(*v)
	}
	return _c
}

// SetCostHistory sets the "cost_history" field.
func (_c *ProductCreate) SetCostHistory(v []entity.CostHistoryEntry) *ProductCreate {
	_c.mutation.SetCostHistory(v)
	return _c
}

// SetPlatformSyncs sets the "platform_syncs" field.
func (_c *ProductCreate) SetPlatformSyncs(v []entity.PlatformSync) *ProductCreate {
	_c.mutation.SetPlatformSyncs(v)
	return _c
}

// SetSupplierAliases sets the "supplier_aliases" field.
func (_c *ProductCreate) SetSupplierAliases(v []entity.SupplierAlias) *ProductCreate {
	_c.mutation.SetSupplierAliases(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProductCreate) SetCreatedAt(v time.Time) *ProductCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProductCreate) SetNillableCreatedAt(v *time.Time) *ProductCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProductCreate) SetUpdatedAt(v time.Time) *ProductCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProductCreate) SetNillableUpdatedAt(v *time.Time) *ProductCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProductCreate) SetID(v uuid.UUID) *ProductCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProductCreate) SetNillableID(v *uuid.UUID) *ProductCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddInventoryChangeIDs adds the "inventory_changes" edge to the InventoryChange entity by IDs.
func (_c *ProductCreate) AddInventoryChangeIDs(ids ...uuid.UUID) *ProductCreate {
	_c.mutation.AddInventoryChangeIDs(ids...)
	return _c
}

// AddInventoryChanges adds the "inventory_changes" edges to the InventoryChange entity.
func (_c *ProductCreate) AddInventoryChanges(v ...*InventoryChange) *ProductCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddInventoryChangeIDs(ids...)
}

// Mutation returns the ProductMutation object of the builder.
func (_c *ProductCreate) Mutation() *ProductMutation {
	return _c.mutation
}

// Save creates the Product in the database.
func (_c *ProductCreate) Save(ctx context.Context) (*Product, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProductCreate) SaveX(ctx context.Context) *Product {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProductCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProductCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProductCreate) defaults() {
	if _, ok := _c.mutation.VariantName(); !ok {
		v := product.DefaultVariantName
		_c.mutation.SetVariantName(v)
	}
	if _, ok := _c.mutation.Price(); !ok {
		v := product.DefaultPrice
		_c.mutation.SetPrice(v)
	}
	if _, ok := _c.mutation.Stock(); !ok {
		v := product.DefaultStock
		_c.mutation.SetStock(v)
	}
	if _, ok := _c.mutation.AverageCost(); !ok {
		v := product.DefaultAverageCost
		_c.mutation.SetAverageCost(v)
	}
	if _, ok := _c.mutation.TotalSpent(); !ok {
		v := product.DefaultTotalSpent
		_c.mutation.SetTotalSpent(v)
	}
	if _, ok := _c.mutation.TotalPurchased(); !ok {
		v := product.DefaultTotalPurchased
		_c.mutation.SetTotalPurchased(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := product.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := product.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := product.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProductCreate) check() error {
	if _, ok := _c.mutation.BaseProductName(); !ok {
		return &ValidationError{Name: "base_product_name", err: errors.New(`ent: missing required field "Product.base_product_name"`)}
	}
	if v, ok := _c.mutation.BaseProductName(); ok {
		if err := product.BaseProductNameValidator(v); err != nil {
			return &ValidationError{Name: "base_product_name", err: fmt.Errorf(`ent: validator failed for field "Product.base_product_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.VariantName(); !ok {
		return &ValidationError{Name: "variant_name", err: errors.New(`ent: missing required field "Product.variant_name"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Product.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := product.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Product.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Sku(); !ok {
		return &ValidationError{Name: "sku", err: errors.New(`ent: missing required field "Product.sku"`)}
	}
	if v, ok := _c.mutation.Sku(); ok {
		if err := product.SkuValidator(v); err != nil {
			return &ValidationError{Name: "sku", err: fmt.Errorf(`ent: validator failed for field "Product.sku": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`ent: missing required field "Product.price"`)}
	}
	if _, ok := _c.mutation.Stock(); !ok {
		return &ValidationError{Name: "stock", err: errors.New(`ent: missing required field "Product.stock"`)}
	}
	if _, ok := _c.mutation.AverageCost(); !ok {
		return &ValidationError{Name: "average_cost", err: errors.New(`ent: missing required field "Product.average_cost"`)}
	}
	if _, ok := _c.mutation.TotalSpent(); !ok {
		return &ValidationError{Name: "total_spent", err: errors.New(`ent: missing required field "Product.total_spent"`)}
	}
	if _, ok := _c.mutation.TotalPurchased(); !ok {
		return &ValidationError{Name: "total_purchased", err: errors.New(`ent: missing required field "Product.total_purchased"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Product.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Product.updated_at"`)}
	}
	return nil
}

func (_c *ProductCreate) sqlSave(ctx context.Context) (*Product, error) {
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

func (_c *ProductCreate) createSpec() (*Product, *sqlgraph.CreateSpec) {
	var (
		_node = &Product{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(product.Table, sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.BaseProductName(); ok {
		_spec.SetField(product.FieldBaseProductName, field.TypeString, value)
		_node.BaseProductName = value
	}
	if value, ok := _c.mutation.VariantName(); ok {
		_spec.SetField(product.FieldVariantName, field.TypeString, value)
		_node.VariantName = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(product.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Sku(); ok {
		_spec.SetField(product.FieldSku, field.TypeString, value)
		_node.Sku = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(product.FieldPrice, field.TypeFloat64, value)
		_node.Price = value
	}
	if value, ok := _c.mutation.Stock(); ok {
		_spec.SetField(product.FieldStock, field.TypeInt, value)
		_node.Stock = value
	}
	if value, ok := _c.mutation.AverageCost(); ok {
		_spec.SetField(product.FieldAverageCost, field.TypeFloat64, value)
		_node.AverageCost = value
	}
	if value, ok := _c.mutation.TotalSpent(); ok {
		_spec.SetField(product.FieldTotalSpent, field.TypeFloat64, value)
		_node.TotalSpent = value
	}
	if value, ok := _c.mutation.TotalPurchased(); ok {
		_spec.SetField(product.FieldTotalPurchased, field.TypeFloat64, value)
		_node.TotalPurchased = value
	}
	if value, ok := _c.mutation.CostHistory(); ok {
		_spec.SetField(product.FieldCostHistory, field.TypeJSON, value)
		_node.CostHistory = value
	}
	if value, ok := _c.mutation.PlatformSyncs(); ok {
		_spec.SetField(product.FieldPlatformSyncs, field.TypeJSON, value)
		_node.PlatformSyncs = value
	}
	if value, ok := _c.mutation.SupplierAliases(); ok {
		_spec.SetField(product.FieldSupplierAliases, field.TypeJSON, value)
		_node.SupplierAliases = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(product.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(product.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.InventoryChangesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   product.InventoryChangesTable,
			Columns: []string{product.InventoryChangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inventorychange.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProductCreateBulk is the builder for creating many Product entities in bulk.
type ProductCreateBulk struct {
	config
	err      error
	builders []*ProductCreate
}

// Save creates the Product entities in the database.
func (_c *ProductCreateBulk) Save(ctx context.Context) ([]*Product, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Product, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProductMutation)
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
func (_c *ProductCreateBulk) SaveX(ctx context.Context) []*Product {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProductCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProductCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
