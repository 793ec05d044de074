// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/daydreamers/ops-backend/gen/ent/supplier"
	"github.com/daydreamers/ops-backend/internal/entity"
	"github.com/google/uuid"
)

// Supplier is the model entity for the Supplier schema.
type Supplier struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Aliases holds the value of the "aliases" field.
	Aliases []string `json:"aliases,omitempty"`
	// InvoiceEmail holds the value of the "invoice_email" field.
	InvoiceEmail string `json:"invoice_email,omitempty"`
	// InvoiceSubject holds the value of the "invoice_subject" field.
	InvoiceSubject string `json:"invoice_subject,omitempty"`
	// SkuPrefix holds the value of the "sku_prefix" field.
	SkuPrefix string `json:"sku_prefix,omitempty"`
	// ParsingConfig holds the value of the "parsing_config" field.
	ParsingConfig entity.EmailParsingConfig `json:"parsing_config,omitempty"`
	// TrainingSamples holds the value of the "training_samples" field.
	TrainingSamples []entity.TrainingSample `json:"training_samples,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SupplierQuery when eager-loading is set.
	Edges        SupplierEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SupplierEdges holds the relations/edges for other nodes in the graph.
type SupplierEdges struct {
	// Emails holds the value of the emails edge.
	Emails []*InvoiceEmail `json:"emails,omitempty"`
	// Transactions holds the value of the transactions edge.
	Transactions []*Transaction `json:"transactions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// EmailsOrErr returns the Emails value or an error if the edge
// was not loaded in eager-loading.
func (e SupplierEdges) EmailsOrErr() ([]*InvoiceEmail, error) {
	if e.loadedTypes[0] {
		return e.Emails, nil
	}
	return nil, &NotLoadedError{edge: "emails"}
}

// TransactionsOrErr returns the Transactions value or an error if the edge
// was not loaded in eager-loading.
func (e SupplierEdges) TransactionsOrErr() ([]*Transaction, error) {
	if e.loadedTypes[1] {
		return e.Transactions, nil
	}
	return nil, &NotLoadedError{edge: "transactions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Supplier) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case supplier.FieldAliases, supplier.FieldParsingConfig, supplier.FieldTrainingSamples:
			values[i] = new([]byte)
		case supplier.FieldName, supplier.FieldInvoiceEmail, supplier.FieldInvoiceSubject, supplier.FieldSkuPrefix:
			values[i] = new(sql.NullString)
		case supplier.FieldCreatedAt, supplier.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case supplier.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Supplier fields.
func (_m *Supplier) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case supplier.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case supplier.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case supplier.FieldAliases:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field aliases", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Aliases); err != nil {
					return fmt.Errorf("unmarshal field aliases: %w", err)
				}
			}
		case supplier.FieldInvoiceEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_email", values[i])
			} else if value.Valid {
				_m.InvoiceEmail = value.String
			}
		case supplier.FieldInvoiceSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_subject", values[i])
			} else if value.Valid {
				_m.InvoiceSubject = value.String
			}
		case supplier.FieldSkuPrefix:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sku_prefix", values[i])
			} else if value.Valid {
				_m.SkuPrefix = value.String
			}
		case supplier.FieldParsingConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field parsing_config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ParsingConfig); err != nil {
					return fmt.Errorf("unmarshal field parsing_config: %w", err)
				}
			}
		case supplier.FieldTrainingSamples:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field training_samples", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TrainingSamples); err != nil {
					return fmt.Errorf("unmarshal field training_samples: %w", err)
				}
			}
		case supplier.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case supplier.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Supplier.
// This includes values selected through modifiers, order, etc.
func (_m *Supplier) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEmails queries the "emails" edge of the Supplier entity.
func (_m *Supplier) QueryEmails() *InvoiceEmailQuery {
	return NewSupplierClient(_m.config).QueryEmails(_m)
}

// QueryTransactions queries the "transactions" edge of the Supplier entity.
func (_m *Supplier) QueryTransactions() *TransactionQuery {
	return NewSupplierClient(_m.config).QueryTransactions(_m)
}

// Update returns a builder for updating this Supplier.
// Note that you need to call Supplier.Unwrap() before calling this method if this Supplier
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Supplier) Update() *SupplierUpdateOne {
	return NewSupplierClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Supplier entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Supplier) Unwrap() *Supplier {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Supplier is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Supplier) String() string {
	var builder strings.Builder
	builder.WriteString("Supplier(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("aliases=")
	builder.WriteString(fmt.Sprintf("%v", _m.Aliases))
	builder.WriteString(", ")
	builder.WriteString("invoice_email=")
	builder.WriteString(_m.InvoiceEmail)
	builder.WriteString(", ")
	builder.WriteString("invoice_subject=")
	builder.WriteString(_m.InvoiceSubject)
	builder.WriteString(", ")
	builder.WriteString("sku_prefix=")
	builder.WriteString(_m.SkuPrefix)
	builder.WriteString(", ")
	builder.WriteString("parsing_config=")
	builder.WriteString(fmt.Sprintf("%v", _m.ParsingConfig))
	builder.WriteString(", ")
	builder.WriteString("training_samples=")
	builder.WriteString(fmt.Sprintf("%v", _m.TrainingSamples))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Suppliers is a parsable slice of Supplier.
type Suppliers []*Supplier
