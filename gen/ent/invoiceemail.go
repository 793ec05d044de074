// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/daydreamers/ops-backend/gen/ent/invoiceemail"
	"github.com/daydreamers/ops-backend/gen/ent/supplier"
	"github.com/google/uuid"
)

// InvoiceEmail is the model entity for the InvoiceEmail schema.
type InvoiceEmail struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// EmailID holds the value of the "email_id" field.
	EmailID string `json:"email_id,omitempty"`
	// Date holds the value of the "date" field.
	Date time.Time `json:"date,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// From holds the value of the "from" field.
	From string `json:"from,omitempty"`
	// Body holds the value of the "body" field.
	Body string `json:"body,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// SupplierID holds the value of the "supplier_id" field.
	SupplierID *uuid.UUID `json:"supplier_id,omitempty"`
	// TransactionID holds the value of the "transaction_id" field.
	TransactionID *uuid.UUID `json:"transaction_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InvoiceEmailQuery when eager-loading is set.
	Edges        InvoiceEmailEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InvoiceEmailEdges holds the relations/edges for other nodes in the graph.
type InvoiceEmailEdges struct {
	// Supplier holds the value of the supplier edge.
	Supplier *Supplier `json:"supplier,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SupplierOrErr returns the Supplier value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InvoiceEmailEdges) SupplierOrErr() (*Supplier, error) {
	if e.Supplier != nil {
		return e.Supplier, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: supplier.Label}
	}
	return nil, &NotLoadedError{edge: "supplier"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InvoiceEmail) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case invoiceemail.FieldSupplierID, invoiceemail.FieldTransactionID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case invoiceemail.FieldEmailID, invoiceemail.FieldSubject, invoiceemail.FieldFrom, invoiceemail.FieldBody, invoiceemail.FieldStatus:
			values[i] = new(sql.NullString)
		case invoiceemail.FieldDate, invoiceemail.FieldCreatedAt, invoiceemail.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case invoiceemail.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InvoiceEmail fields.
func (_m *InvoiceEmail) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case invoiceemail.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case invoiceemail.FieldEmailID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email_id", values[i])
			} else if value.Valid {
				_m.EmailID = value.String
			}
		case invoiceemail.FieldDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.Time
			}
		case invoiceemail.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case invoiceemail.FieldFrom:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from", values[i])
			} else if value.Valid {
				_m.From = value.String
			}
		case invoiceemail.FieldBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value.Valid {
				_m.Body = value.String
			}
		case invoiceemail.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case invoiceemail.FieldSupplierID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field supplier_id", values[i])
			} else if value.Valid {
				_m.SupplierID = new(uuid.UUID)
				*_m.SupplierID = *value.S.(*uuid.UUID)
			}
		case invoiceemail.FieldTransactionID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field transaction_id", values[i])
			} else if value.Valid {
				_m.TransactionID = new(uuid.UUID)
				*_m.TransactionID = *value.S.(*uuid.UUID)
			}
		case invoiceemail.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case invoiceemail.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the InvoiceEmail.
// This includes values selected through modifiers, order, etc.
func (_m *InvoiceEmail) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySupplier queries the "supplier" edge of the InvoiceEmail entity.
func (_m *InvoiceEmail) QuerySupplier() *SupplierQuery {
	return NewInvoiceEmailClient(_m.config).QuerySupplier(_m)
}

// Update returns a builder for updating this InvoiceEmail.
// Note that you need to call InvoiceEmail.Unwrap() before calling this method if this InvoiceEmail
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InvoiceEmail) Update() *InvoiceEmailUpdateOne {
	return NewInvoiceEmailClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InvoiceEmail entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InvoiceEmail) Unwrap() *InvoiceEmail {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InvoiceEmail is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InvoiceEmail) String() string {
	var builder strings.Builder
	builder.WriteString("InvoiceEmail(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("email_id=")
	builder.WriteString(_m.EmailID)
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(_m.Date.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("from=")
	builder.WriteString(_m.From)
	builder.WriteString(", ")
	builder.WriteString("body=")
	builder.WriteString(_m.Body)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.SupplierID; v != nil {
		builder.WriteString("supplier_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TransactionID; v != nil {
		builder.WriteString("transaction_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// InvoiceEmails is a parsable slice of InvoiceEmail.
type InvoiceEmails []*InvoiceEmail
