// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/daydreamers/ops-backend/gen/ent/product"
	"github.com/daydreamers/ops-backend/internal/entity"
	"github.com/google/uuid"
)

// Product is the model entity for the Product schema.
type Product struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// BaseProductName holds the value of the "base_product_name" field.
	BaseProductName string `json:"base_product_name,omitempty"`
	// VariantName holds the value of the "variant_name" field.
	VariantName string `json:"variant_name,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Sku holds the value of the "sku" field.
	Sku string `json:"sku,omitempty"`
	// Price holds the value of the "price" field.
	Price float64 `json:"price,omitempty"`
	// Stock holds the value of the "stock" field.
	Stock int `json:"stock,omitempty"`
	// AverageCost holds the value of the "average_cost" field.
	AverageCost float64 `json:"average_cost,omitempty"`
	// TotalSpent holds the value of the "total_spent" field.
	TotalSpent float64 `json:"total_spent,omitempty"`
	// TotalPurchased holds the value of the "total_purchased" field.
	TotalPurchased float64 `json:"total_purchased,omitempty"`
	// CostHistory holds the value of the "cost_history" field.
	CostHistory []entity.CostHistoryEntry `json:"cost_history,omitempty"`
	// PlatformSyncs holds the value of the "platform_syncs" field.
	PlatformSyncs []entity.PlatformSync `json:"platform_syncs,omitempty"`
	// SupplierAliases holds the value of the "supplier_aliases" field.
	SupplierAliases []entity.SupplierAlias `json:"supplier_aliases,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProductQuery when eager-loading is set.
	Edges        ProductEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProductEdges holds the relations/edges for other nodes in the graph.
type ProductEdges struct {
	// InventoryChanges holds the value of the inventory_changes edge.
	InventoryChanges []*InventoryChange `json:"inventory_changes,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// InventoryChangesOrErr returns the InventoryChanges value or an error if the edge
// was not loaded in eager-loading.
func (e ProductEdges) InventoryChangesOrErr() ([]*InventoryChange, error) {
	if e.loadedTypes[0] {
		return e.InventoryChanges, nil
	}
	return nil, &NotLoadedError{edge: "inventory_changes"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Product) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case product.FieldCostHistory, product.FieldPlatformSyncs, product.FieldSupplierAliases:
			values[i] = new([]byte)
		case product.FieldPrice, product.FieldAverageCost, product.FieldTotalSpent, product.FieldTotalPurchased:
			values[i] = new(sql.NullFloat64)
		case product.FieldStock:
			values[i] = new(sql.NullInt64)
		case product.FieldBaseProductName, product.FieldVariantName, product.FieldName, product.FieldSku:
			values[i] = new(sql.NullString)
		case product.FieldCreatedAt, product.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case product.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Product fields.
func (_m *Product) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case product.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case product.FieldBaseProductName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field base_product_name", values[i])
			} else if value.Valid {
				_m.BaseProductName = value.String
			}
		case product.FieldVariantName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field variant_name", values[i])
			} else if value.Valid {
				_m.VariantName = value.String
			}
		case product.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case product.FieldSku:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sku", values[i])
			} else if value.Valid {
				_m.Sku = value.String
			}
		case product.FieldPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field price", values[i])
			} else if value.Valid {
				_m.Price = value.Float64
			}
		case product.FieldStock:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stock", values[i])
			} else if value.Valid {
				_m.Stock = int(value.Int64)
			}
		case product.FieldAverageCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field average_cost", values[i])
			} else if value.Valid {
				_m.AverageCost = value.Float64
			}
		case product.FieldTotalSpent:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_spent", values[i])
			} else if value.Valid {
				_m.TotalSpent = value.Float64
			}
		case product.FieldTotalPurchased:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_purchased", values[i])
			} else if value.Valid {
				_m.TotalPurchased = value.Float64
			}
		case product.FieldCostHistory:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field cost_history", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CostHistory); err != nil {
					return fmt.Errorf("unmarshal field cost_history: %w", err)
				}
			}
		case product.FieldPlatformSyncs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field platform_syncs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PlatformSyncs); err != nil {
					return fmt.Errorf("unmarshal field platform_syncs: %w", err)
				}
			}
		case product.FieldSupplierAliases:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field supplier_aliases", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SupplierAliases); err != nil {
					return fmt.Errorf("unmarshal field supplier_aliases: %w", err)
				}
			}
		case product.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case product.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Product.
// This includes values selected through modifiers, order, etc.
func (_m *Product) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryInventoryChanges queries the "inventory_changes" edge of the Product entity.
func (_m *Product) QueryInventoryChanges() *InventoryChangeQuery {
	return NewProductClient(_m.config).QueryInventoryChanges(_m)
}

// Update returns a builder for updating this Product.
// Note that you need to call Product.Unwrap() before calling this method if this Product
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Product) Update() *ProductUpdateOne {
	return NewProductClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Product entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Product) Unwrap() *Product {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Product is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Product) String() string {
	var builder strings.Builder
	builder.WriteString("Product(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("base_product_name=")
	builder.WriteString(_m.BaseProductName)
	builder.WriteString(", ")
	builder.WriteString("variant_name=")
	builder.WriteString(_m.VariantName)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("sku=")
	builder.WriteString(_m.Sku)
	builder.WriteString(", ")
	builder.WriteString("price=")
	builder.WriteString(fmt.Sprintf("%v", _m.Price))
	builder.WriteString(", ")
	builder.WriteString("stock=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stock))
	builder.WriteString(", ")
	builder.WriteString("average_cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.AverageCost))
	builder.WriteString(", ")
	builder.WriteString("total_spent=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalSpent))
	builder.WriteString(", ")
	builder.WriteString("total_purchased=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalPurchased))
	builder.WriteString(", ")
	builder.WriteString("cost_history=")
	builder.WriteString(fmt.Sprintf("%v", _m.CostHistory))
	builder.WriteString(", ")
	builder.WriteString("platform_syncs=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlatformSyncs))
	builder.WriteString(", ")
	builder.WriteString("supplier_aliases=")
	builder.WriteString(fmt.Sprintf("%v", _m.SupplierAliases))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Products is a parsable slice of Product.
type Products []*Product
