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
	"github.com/daydreamers/ops-backend/gen/ent/inventorychange"
	"github.com/daydreamers/ops-backend/gen/ent/predicate"
	"github.com/daydreamers/ops-backend/gen/ent/product"
	"github.com/daydreamers/ops-backend/internal/entity"
	"github.com/google/uuid"
)

// ProductUpdate is the builder for updating Product entities.
type ProductUpdate struct {
	config
	hooks    []Hook
	mutation *ProductMutation
}

// Where appends a list predicates to the ProductUpdate builder.
func (_u *ProductUpdate) Where(ps ...predicate.Product) *ProductUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBaseProductName sets the "base_product_name" field.
func (_u *ProductUpdate) SetBaseProductName(v string) *ProductUpdate {
	_u.mutation.SetBaseProductName(v)
	return _u
}

// SetNillableBaseProductName sets the "base_product_name" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableBaseProductName(v *string) *ProductUpdate {
	if v != nil {
		_u.SetBaseProductName(*v)
	}
	return _u
}

// SetVariantName sets the "variant_name" field.
func (_u *ProductUpdate) SetVariantName(v string) *ProductUpdate {
	_u.mutation.SetVariantName(v)
	return _u
}

// SetNillableVariantName sets the "variant_name" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableVariantName(v *string) *ProductUpdate {
	if v != nil {
		_u.SetVariantName(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ProductUpdate) SetName(v string) *ProductUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableName(v *string) *ProductUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSku sets the "sku" field.
func (_u *ProductUpdate) SetSku(v string) *ProductUpdate {
	_u.mutation.SetSku(v)
	return _u
}

// SetNillableSku sets the "sku" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableSku(v *string) *ProductUpdate {
	if v != nil {
		_u.SetSku(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *ProductUpdate) SetPrice(v float64) *ProductUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *ProductUpdate) SetNillablePrice(v *float64) *ProductUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *ProductUpdate) AddPrice(v float64) *ProductUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// SetStock sets the "stock" field.
func (_u *ProductUpdate) SetStock(v int) *ProductUpdate {
	_u.mutation.ResetStock()
	_u.mutation.SetStock(v)
	return _u
}

// SetNillableStock sets the "stock" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableStock(v *int) *ProductUpdate {
	if v != nil {
		_u.SetStock(*v)
	}
	return _u
}

// AddStock adds value to the "stock" field.
func (_u *ProductUpdate) AddStock(v int) *ProductUpdate {
	_u.mutation.AddStock(v)
	return _u
}

// SetAverageCost sets the "average_cost" field.
func (_u *ProductUpdate) SetAverageCost(v float64) *ProductUpdate {
	_u.mutation.ResetAverageCost()
	_u.mutation.SetAverageCost(v)
	return _u
}

// SetNillableAverageCost sets the "average_cost" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableAverageCost(v *float64) *ProductUpdate {
	if v != nil {
		_u.SetAverageCost(*v)
	}
	return _u
}

// AddAverageCost adds value to the "average_cost" field.
func (_u *ProductUpdate) AddAverageCost(v float64) *ProductUpdate {
	_u.mutation.AddAverageCost(v)
	return _u
}

// SetTotalSpent sets the "total_spent" field.
func (_u *ProductUpdate) SetTotalSpent(v float64) *ProductUpdate {
	_u.mutation.ResetTotalSpent()
	_u.mutation.SetTotalSpent(v)
	return _u
}

// SetNillableTotalSpent sets the "total_spent" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableTotalSpent(v *float64) *ProductUpdate {
	if v != nil {
		_u.SetTotalSpent(*v)
	}
	return _u
}

// AddTotalSpent adds value to the "total_spent" field.
func (_u *ProductUpdate) AddTotalSpent(v float64) *ProductUpdate {
	_u.mutation.AddTotalSpent(v)
	return _u
}

// SetTotalPurchased sets the "total_purchased" field.
func (_u *ProductUpdate) SetTotalPurchased(v float64) *ProductUpdate {
	_u.mutation.ResetTotalPurchased()
	_u.mutation.SetTotalPurchased(v)
	return _u
}

// SetNillableTotalPurchased sets the "total_purchased" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableTotalPurchased(v *float64) *ProductUpdate {
	if v != nil {
		_u.SetTotalPurchased(*v)
	}
	return _u
}

// AddTotalPurchased adds value to the "total_purchased" field.
func (_u *ProductUpdate) AddTotalPurchased(v float64) *ProductUpdate {
	_u.mutation.AddTotalPurchased(v)
	return _u
}

// SetCostHistory sets the "cost_history" field.
func (_u *ProductUpdate) SetCostHistory(v []entity.CostHistoryEntry) *ProductUpdate {
	_u.mutation.SetCostHistory(v)
	return _u
}

// AppendCostHistory appends value to the "cost_history" field.
func (_u *ProductUpdate) AppendCostHistory(v []entity.CostHistoryEntry) *ProductUpdate {
	_u.mutation.AppendCostHistory(v)
	return _u
}

// ClearCostHistory clears the value of the "cost_history" field.
func (_u *ProductUpdate) ClearCostHistory() *ProductUpdate {
	_u.mutation.ClearCostHistory()
	return _u
}

// SetPlatformSyncs sets the "platform_syncs" field.
func (_u *ProductUpdate) SetPlatformSyncs(v []entity.PlatformSync) *ProductUpdate {
	_u.mutation.SetPlatformSyncs(v)
	return _u
}

// AppendPlatformSyncs appends value to the "platform_syncs" field.
func (_u *ProductUpdate) AppendPlatformSyncs(v []entity.PlatformSync) *ProductUpdate {
	_u.mutation.AppendPlatformSyncs(v)
	return _u
}

// ClearPlatformSyncs clears the value of the "platform_syncs" field.
func (_u *ProductUpdate) ClearPlatformSyncs() *ProductUpdate {
	_u.mutation.ClearPlatformSyncs()
	return _u
}

// SetSupplierAliases sets the "supplier_aliases" field.
func (_u *ProductUpdate) SetSupplierAliases(v []entity.SupplierAlias) *ProductUpdate {
	_u.mutation.SetSupplierAliases(v)
	return _u
}

// AppendSupplierAliases appends value to the "supplier_aliases" field.
func (_u *ProductUpdate) AppendSupplierAliases(v []entity.SupplierAlias) *ProductUpdate {
	_u.mutation.AppendSupplierAliases(v)
	return _u
}

// ClearSupplierAliases clears the value of the "supplier_aliases" field.
func (_u *ProductUpdate) ClearSupplierAliases() *ProductUpdate {
	_u.mutation.ClearSupplierAliases()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProductUpdate) SetCreatedAt(v time.Time) *ProductUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableCreatedAt(v *time.Time) *ProductUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProductUpdate) SetUpdatedAt(v time.Time) *ProductUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddInventoryChangeIDs adds the "inventory_changes" edge to the InventoryChange entity by IDs.
func (_u *ProductUpdate) AddInventoryChangeIDs(ids ...uuid.UUID) *ProductUpdate {
	_u.mutation.AddInventoryChangeIDs(ids...)
	return _u
}

// AddInventoryChanges adds the "inventory_changes" edges to the InventoryChange entity.
func (_u *ProductUpdate) AddInventoryChanges(v ...*InventoryChange) *ProductUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInventoryChangeIDs(ids...)
}

// Mutation returns the ProductMutation object of the builder.
func (_u *ProductUpdate) Mutation() *ProductMutation {
	return _u.mutation
}

// ClearInventoryChanges clears all "inventory_changes" edges to the InventoryChange entity.
func (_u *ProductUpdate) ClearInventoryChanges() *ProductUpdate {
	_u.mutation.ClearInventoryChanges()
	return _u
}

// RemoveInventoryChangeIDs removes the "inventory_changes" edge to InventoryChange entities by IDs.
func (_u *ProductUpdate) RemoveInventoryChangeIDs(ids ...uuid.UUID) *ProductUpdate {
	_u.mutation.RemoveInventoryChangeIDs(ids...)
	return _u
}

// RemoveInventoryChanges removes "inventory_changes" edges to InventoryChange entities.
func (_u *ProductUpdate) RemoveInventoryChanges(v ...*InventoryChange) *ProductUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInventoryChangeIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProductUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProductUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProductUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProductUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProductUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := product.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProductUpdate) check() error {
	if v, ok := _u.mutation.BaseProductName(); ok {
		if err := product.BaseProductNameValidator(v); err != nil {
			return &ValidationError{Name: "base_product_name", err: fmt.Errorf(`ent: validator failed for field "Product.base_product_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := product.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Product.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Sku(); ok {
		if err := product.SkuValidator(v); err != nil {
			return &ValidationError{Name: "sku", err: fmt.Errorf(`ent: validator failed for field "Product.sku": %w`, err)}
		}
	}
	return nil
}

func (_u *ProductUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(product.Table, product.Columns, sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BaseProductName(); ok {
		_spec.SetField(product.FieldBaseProductName, field.TypeString, value)
	}
	if value, ok := _u.mutation.VariantName(); ok {
		_spec.SetField(product.FieldVariantName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(product.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sku(); ok {
		_spec.SetField(product.FieldSku, field.TypeString, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(product.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(product.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Stock(); ok {
		_spec.SetField(product.FieldStock, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStock(); ok {
		_spec.AddField(product.FieldStock, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AverageCost(); ok {
		_spec.SetField(product.FieldAverageCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageCost(); ok {
		_spec.AddField(product.FieldAverageCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalSpent(); ok {
		_spec.SetField(product.FieldTotalSpent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalSpent(); ok {
		_spec.AddField(product.FieldTotalSpent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalPurchased(); ok {
		_spec.SetField(product.FieldTotalPurchased, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalPurchased(); ok {
		_spec.AddField(product.FieldTotalPurchased, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CostHistory(); ok {
		_spec.SetField(product.FieldCostHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCostHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, product.FieldCostHistory, value)
		})
	}
	if _u.mutation.CostHistoryCleared() {
		_spec.ClearField(product.FieldCostHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.PlatformSyncs(); ok {
		_spec.SetField(product.FieldPlatformSyncs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPlatformSyncs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, product.FieldPlatformSyncs, value)
		})
	}
	if _u.mutation.PlatformSyncsCleared() {
		_spec.ClearField(product.FieldPlatformSyncs, field.TypeJSON)
	}
	if value, ok := _u.mutation.SupplierAliases(); ok {
		_spec.SetField(product.FieldSupplierAliases, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSupplierAliases(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, product.FieldSupplierAliases, value)
		})
	}
	if _u.mutation.SupplierAliasesCleared() {
		_spec.ClearField(product.FieldSupplierAliases, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(product.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(product.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.InventoryChangesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInventoryChangesIDs(); len(nodes) > 0 && !_u.mutation.InventoryChangesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InventoryChangesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{product.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProductUpdateOne is the builder for updating a single Product entity.
type ProductUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProductMutation
}

// SetBaseProductName sets the "base_product_name" field.
func (_u *ProductUpdateOne) SetBaseProductName(v string) *ProductUpdateOne {
	_u.mutation.SetBaseProductName(v)
	return _u
}

// SetNillableBaseProductName sets the "base_product_name" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableBaseProductName(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetBaseProductName(*v)
	}
	return _u
}

// SetVariantName sets the "variant_name" field.
func (_u *ProductUpdateOne) SetVariantName(v string) *ProductUpdateOne {
	_u.mutation.SetVariantName(v)
	return _u
}

// SetNillableVariantName sets the "variant_name" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableVariantName(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetVariantName(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ProductUpdateOne) SetName(v string) *ProductUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableName(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSku sets the "sku" field.
func (_u *ProductUpdateOne) SetSku(v string) *ProductUpdateOne {
	_u.mutation.SetSku(v)
	return _u
}

// SetNillableSku sets the "sku" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableSku(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetSku(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *ProductUpdateOne) SetPrice(v float64) *ProductUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillablePrice(v *float64) *ProductUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *ProductUpdateOne) AddPrice(v float64) *ProductUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// SetStock sets the "stock" field.
func (_u *ProductUpdateOne) SetStock(v int) *ProductUpdateOne {
	_u.mutation.ResetStock()
	_u.mutation.SetStock(v)
	return _u
}

// SetNillableStock sets the "stock" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableStock(v *int) *ProductUpdateOne {
	if v != nil {
		_u.SetStock(*v)
	}
	return _u
}

// AddStock adds value to the "stock" field.
func (_u *ProductUpdateOne) AddStock(v int) *ProductUpdateOne {
	_u.mutation.AddStock(v)
	return _u
}

// SetAverageCost sets the "average_cost" field.
func (_u *ProductUpdateOne) SetAverageCost(v float64) *ProductUpdateOne {
	_u.mutation.ResetAverageCost()
	_u.mutation.SetAverageCost(v)
	return _u
}

// SetNillableAverageCost sets the "average_cost" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableAverageCost(v *float64) *ProductUpdateOne {
	if v != nil {
		_u.SetAverageCost(*v)
	}
	return _u
}

// AddAverageCost adds value to the "average_cost" field.
func (_u *ProductUpdateOne) AddAverageCost(v float64) *ProductUpdateOne {
	_u.mutation.AddAverageCost(v)
	return _u
}

// SetTotalSpent sets the "total_spent" field.
func (_u *ProductUpdateOne) SetTotalSpent(v float64) *ProductUpdateOne {
	_u.mutation.ResetTotalSpent()
	_u.mutation.SetTotalSpent(v)
	return _u
}

// SetNillableTotalSpent sets the "total_spent" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableTotalSpent(v *float64) *ProductUpdateOne {
	if v != nil {
		_u.SetTotalSpent(*v)
	}
	return _u
}

// AddTotalSpent adds value to the "total_spent" field.
func (_u *ProductUpdateOne) AddTotalSpent(v float64) *ProductUpdateOne {
	_u.mutation.AddTotalSpent(v)
	return _u
}

// SetTotalPurchased sets the "total_purchased" field.
func (_u *ProductUpdateOne) SetTotalPurchased(v float64) *ProductUpdateOne {
	_u.mutation.ResetTotalPurchased()
	_u.mutation.SetTotalPurchased(v)
	return _u
}

// SetNillableTotalPurchased sets the "total_purchased" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableTotalPurchased(v *float64) *ProductUpdateOne {
	if v != nil {
		_u.SetTotalPurchased(*v)
	}
	return _u
}

// AddTotalPurchased adds value to the "total_purchased" field.
func (_u *ProductUpdateOne) AddTotalPurchased(v float64) *ProductUpdateOne {
	_u.mutation.AddTotalPurchased(v)
	return _u
}

// SetCostHistory sets the "cost_history" field.
func (_u *ProductUpdateOne) SetCostHistory(v []entity.CostHistoryEntry) *ProductUpdateOne {
	_u.mutation.SetCostHistory(v)
	return _u
}

// AppendCostHistory appends value to the "cost_history" field.
func (_u *ProductUpdateOne) AppendCostHistory(v []entity.CostHistoryEntry) *ProductUpdateOne {
	_u.mutation.AppendCostHistory(v)
	return _u
}

// ClearCostHistory clears the value of the "cost_history" field.
func (_u *ProductUpdateOne) ClearCostHistory() *ProductUpdateOne {
	_u.mutation.ClearCostHistory()
	return _u
}

// SetPlatformSyncs sets the "platform_syncs" field.
func (_u *ProductUpdateOne) SetPlatformSyncs(v []entity.PlatformSync) *ProductUpdateOne {
	_u.mutation.SetPlatformSyncs(v)
	return _u
}

// AppendPlatformSyncs appends value to the "platform_syncs" field.
func (_u *ProductUpdateOne) AppendPlatformSyncs(v []entity.PlatformSync) *ProductUpdateOne {
	_u.mutation.AppendPlatformSyncs(v)
	return _u
}

// ClearPlatformSyncs clears the value of the "platform_syncs" field.
func (_u *ProductUpdateOne) ClearPlatformSyncs() *ProductUpdateOne {
	_u.mutation.ClearPlatformSyncs()
	return _u
}

// SetSupplierAliases sets the "supplier_aliases" field.
func (_u *ProductUpdateOne) SetSupplierAliases(v []entity.SupplierAlias) *ProductUpdateOne {
	_u.mutation.SetSupplierAliases(v)
	return _u
}

// AppendSupplierAliases appends value to the "supplier_aliases" field.
func (_u *ProductUpdateOne) AppendSupplierAliases(v []entity.SupplierAlias) *ProductUpdateOne {
	_u.mutation.AppendSupplierAliases(v)
	return _u
}

// ClearSupplierAliases clears the value of the "supplier_aliases" field.
func (_u *ProductUpdateOne) ClearSupplierAliases() *ProductUpdateOne {
	_u.mutation.ClearSupplierAliases()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProductUpdateOne) SetCreatedAt(v time.Time) *ProductUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableCreatedAt(v *time.Time) *ProductUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProductUpdateOne) SetUpdatedAt(v time.Time) *ProductUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddInventoryChangeIDs adds the "inventory_changes" edge to the InventoryChange entity by IDs.
func (_u *ProductUpdateOne) AddInventoryChangeIDs(ids ...uuid.UUID) *ProductUpdateOne {
	_u.mutation.AddInventoryChangeIDs(ids...)
	return _u
}

// AddInventoryChanges adds the "inventory_changes" edges to the InventoryChange entity.
func (_u *ProductUpdateOne) AddInventoryChanges(v ...*InventoryChange) *ProductUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInventoryChangeIDs(ids...)
}

// Mutation returns the ProductMutation object of the builder.
func (_u *ProductUpdateOne) Mutation() *ProductMutation {
	return _u.mutation
}

// ClearInventoryChanges clears all "inventory_changes" edges to the InventoryChange entity.
func (_u *ProductUpdateOne) ClearInventoryChanges() *ProductUpdateOne {
	_u.mutation.ClearInventoryChanges()
	return _u
}

// RemoveInventoryChangeIDs removes the "inventory_changes" edge to InventoryChange entities by IDs.
func (_u *ProductUpdateOne) RemoveInventoryChangeIDs(ids ...uuid.UUID) *ProductUpdateOne {
	_u.mutation.RemoveInventoryChangeIDs(ids...)
	return _u
}

// RemoveInventoryChanges removes "inventory_changes" edges to InventoryChange entities.
func (_u *ProductUpdateOne) RemoveInventoryChanges(v ...*InventoryChange) *ProductUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInventoryChangeIDs(ids...)
}

// Where appends a list predicates to the ProductUpdate builder.
func (_u *ProductUpdateOne) Where(ps ...predicate.Product) *ProductUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProductUpdateOne) Select(field string, fields ...string) *ProductUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Product entity.
func (_u *ProductUpdateOne) Save(ctx context.Context) (*Product, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProductUpdateOne) SaveX(ctx context.Context) *Product {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProductUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProductUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProductUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := product.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProductUpdateOne) check() error {
	if v, ok := _u.mutation.BaseProductName(); ok {
		if err := product.BaseProductNameValidator(v); err != nil {
			return &ValidationError{Name: "base_product_name", err: fmt.Errorf(`ent: validator failed for field "Product.base_product_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := product.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Product.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Sku(); ok {
		if err := product.SkuValidator(v); err != nil {
			return &ValidationError{Name: "sku", err: fmt.Errorf(`ent: validator failed for field "Product.sku": %w`, err)}
		}
	}
	return nil
}

func (_u *ProductUpdateOne) sqlSave(ctx context.Context) (_node *Product, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(product.Table, product.Columns, sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Product.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, product.FieldID)
		for _, f := range fields {
			if !product.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != product.FieldID {
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
	if value, ok := _u.mutation.BaseProductName(); ok {
		_spec.SetField(product.FieldBaseProductName, field.TypeString, value)
	}
	if value, ok := _u.mutation.VariantName(); ok {
		_spec.SetField(product.FieldVariantName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(product.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sku(); ok {
		_spec.SetField(product.FieldSku, field.TypeString, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(product.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(product.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Stock(); ok {
		_spec.SetField(product.FieldStock, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStock(); ok {
		_spec.AddField(product.FieldStock, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AverageCost(); ok {
		_spec.SetField(product.FieldAverageCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageCost(); ok {
		_spec.AddField(product.FieldAverageCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalSpent(); ok {
		_spec.SetField(product.FieldTotalSpent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalSpent(); ok {
		_spec.AddField(product.FieldTotalSpent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalPurchased(); ok {
		_spec.SetField(product.FieldTotalPurchased, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalPurchased(); ok {
		_spec.AddField(product.FieldTotalPurchased, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CostHistory(); ok {
		_spec.SetField(product.FieldCostHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCostHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, product.FieldCostHistory, value)
		})
	}
	if _u.mutation.CostHistoryCleared() {
		_spec.ClearField(product.FieldCostHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.PlatformSyncs(); ok {
		_spec.SetField(product.FieldPlatformSyncs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPlatformSyncs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, product.FieldPlatformSyncs, value)
		})
	}
	if _u.mutation.PlatformSyncsCleared() {
		_spec.ClearField(product.FieldPlatformSyncs, field.TypeJSON)
	}
	if value, ok := _u.mutation.SupplierAliases(); ok {
		_spec.SetField(product.FieldSupplierAliases, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSupplierAliases(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, product.FieldSupplierAliases, value)
		})
	}
	if _u.mutation.SupplierAliasesCleared() {
		_spec.ClearField(product.FieldSupplierAliases, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(product.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(product.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.InventoryChangesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInventoryChangesIDs(); len(nodes) > 0 && !_u.mutation.InventoryChangesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InventoryChangesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Product{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{product.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
