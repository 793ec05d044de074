// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/daydreamers/ops-backend/gen/ent/inventorychange"
	"github.com/daydreamers/ops-backend/gen/ent/product"
	"github.com/google/uuid"
)

// InventoryChange is the model entity for the InventoryChange schema.
type InventoryChange struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProductID holds the value of the "product_id" field.
	ProductID uuid.UUID `json:"product_id,omitempty"`
	// TransactionID holds the value of the "transaction_id" field.
	TransactionID *uuid.UUID `json:"transaction_id,omitempty"`
	// QuantityChange holds the value of the "quantity_change" field.
	QuantityChange int `json:"quantity_change,omitempty"`
	// ChangeType holds the value of the "change_type" field.
	ChangeType string `json:"change_type,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason string `json:"reason,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InventoryChangeQuery when eager-loading is set.
	Edges        InventoryChangeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InventoryChangeEdges holds the relations/edges for other nodes in the graph.
type InventoryChangeEdges struct {
	// Product holds the value of the product edge.
	Product *Product `json:"product,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProductOrErr returns the Product value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InventoryChangeEdges) ProductOrErr() (*Product, error) {
	if e.Product != nil {
		return e.Product, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: product.Label}
	}
	return nil, &NotLoadedError{edge: "product"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InventoryChange) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case inventorychange.FieldTransactionID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case inventorychange.FieldQuantityChange:
			values[i] = new(sql.NullInt64)
		case inventorychange.FieldChangeType, inventorychange.FieldSource, inventorychange.FieldReason:
			values[i] = new(sql.NullString)
		case inventorychange.FieldTimestamp:
			values[i] = new(sql.NullTime)
		case inventorychange.FieldID, inventorychange.FieldProductID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InventoryChange fields.
func (_m *InventoryChange) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case inventorychange.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case inventorychange.FieldProductID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field product_id", values[i])
			} else if value != nil {
				_m.ProductID = *value
			}
		case inventorychange.FieldTransactionID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field transaction_id", values[i])
			} else if value.Valid {
				_m.TransactionID = new(uuid.UUID)
				*_m.TransactionID = *value.S.(*uuid.UUID)
			}
		case inventorychange.FieldQuantityChange:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quantity_change", values[i])
			} else if value.Valid {
				_m.QuantityChange = int(value.Int64)
			}
		case inventorychange.FieldChangeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field change_type", values[i])
			} else if value.Valid {
				_m.ChangeType = value.String
			}
		case inventorychange.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case inventorychange.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case inventorychange.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InventoryChange.
// This includes values selected through modifiers, order, etc.
func (_m *InventoryChange) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProduct queries the "product" edge of the InventoryChange entity.
func (_m *InventoryChange) QueryProduct() *ProductQuery {
	return NewInventoryChangeClient(_m.config).QueryProduct(_m)
}

// Update returns a builder for updating this InventoryChange.
// Note that you need to call InventoryChange.Unwrap() before calling this method if this InventoryChange
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InventoryChange) Update() *InventoryChangeUpdateOne {
	return NewInventoryChangeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InventoryChange entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InventoryChange) Unwrap() *InventoryChange {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InventoryChange is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InventoryChange) String() string {
	var builder strings.Builder
	builder.WriteString("InventoryChange(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("product_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProductID))
	builder.WriteString(", ")
	if v := _m.TransactionID; v != nil {
		builder.WriteString("transaction_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("quantity_change=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuantityChange))
	builder.WriteString(", ")
	builder.WriteString("change_type=")
	builder.WriteString(_m.ChangeType)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// InventoryChanges is a parsable slice of InventoryChange.
type InventoryChanges []*InventoryChange
