// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/daydreamers/ops-backend/gen/ent/invoiceemail"
	"github.com/daydreamers/ops-backend/gen/ent/predicate"
	"github.com/daydreamers/ops-backend/gen/ent/supplier"
	"github.com/google/uuid"
)

// InvoiceEmailUpdate is the builder for updating InvoiceEmail entities.
type InvoiceEmailUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceEmailMutation
}

// Where appends a list predicates to the InvoiceEmailUpdate builder.
func (_u *InvoiceEmailUpdate) Where(ps ...predicate.InvoiceEmail) *InvoiceEmailUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmailID sets the "email_id" field.
func (_u *InvoiceEmailUpdate) SetEmailID(v string) *InvoiceEmailUpdate {
	_u.mutation.SetEmailID(v)
	return _u
}

// SetNillableEmailID sets the "email_id" field if the given value is not nil.
func (_u *InvoiceEmailUpdate) SetNillableEmailID(v *string) *InvoiceEmailUpdate {
	if v != nil {
		_u.SetEmailID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *InvoiceEmailUpdate) SetDate(v time.Time) *InvoiceEmailUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *InvoiceEmailUpdate) SetNillableDate(v *time.Time) *InvoiceEmailUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *InvoiceEmailUpdate) SetSubject(v string) *InvoiceEmailUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *InvoiceEmailUpdate) SetNillableSubject(v *string) *InvoiceEmailUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *InvoiceEmailUpdate) ClearSubject() *InvoiceEmailUpdate {
	_u.mutation.ClearSubject()
	return _u
}

// SetFrom sets the "from" field.
func (_u *InvoiceEmailUpdate) SetFrom(v string) *InvoiceEmailUpdate {
	_u.mutation.SetFrom(v)
	return _u
}

// SetNillableFrom sets the "from" field if the given value is not nil.
func (_u *InvoiceEmailUpdate) SetNillableFrom(v *string) *InvoiceEmailUpdate {
	if v != nil {
		_u.SetFrom(*v)
	}
	return _u
}

// ClearFrom clears the value of the "from" field.
func (_u *InvoiceEmailUpdate) ClearFrom() *InvoiceEmailUpdate {
	_u.mutation.ClearFrom()
	return _u
}

// SetBody sets the "body" field.
func (_u *InvoiceEmailUpdate) SetBody(v string) *InvoiceEmailUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *InvoiceEmailUpdate) SetNillableBody(v *string) *InvoiceEmailUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// ClearBody clears the value of the "body" field.
func (_u *InvoiceEmailUpdate) ClearBody() *InvoiceEmailUpdate {
	_u.mutation.ClearBody()
	return _u
}

// SetStatus sets the "status" field.
func (_u *InvoiceEmailUpdate) SetStatus(v string) *InvoiceEmailUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InvoiceEmailUpdate) SetNillableStatus(v *string) *InvoiceEmailUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSupplierID sets the "supplier_id" field.
func (_u *InvoiceEmailUpdate) SetSupplierID(v uuid.UUID) *InvoiceEmailUpdate {
	_u.mutation.SetSupplierID(v)
	return _u
}

// SetNillableSupplierID sets the "supplier_id" field if the given value is not nil.
func (_u *InvoiceEmailUpdate) SetNillableSupplierID(v *uuid.UUID) *InvoiceEmailUpdate {
	if v != nil {
		_u.SetSupplierID(*v)
	}
	return _u
}

// ClearSupplierID clears the value of the "supplier_id" field.
func (_u *InvoiceEmailUpdate) ClearSupplierID() *InvoiceEmailUpdate {
	_u.mutation.ClearSupplierID()
	return _u
}

// SetTransactionID sets the "transaction_id" field.
func (_u *InvoiceEmailUpdate) SetTransactionID(v uuid.UUID) *InvoiceEmailUpdate {
	_u.mutation.SetTransactionID(v)
	return _u
}

// SetNillableTransactionID sets the "transaction_id" field if the given value is not nil.
func (_u *InvoiceEmailUpdate) SetNillableTransactionID(v *uuid.UUID) *InvoiceEmailUpdate {
	if v != nil {
		_u.SetTransactionID(*v)
	}
	return _u
}

// ClearTransactionID clears the value of the "transaction_id" field.
func (_u *InvoiceEmailUpdate) ClearTransactionID() *InvoiceEmailUpdate {
	_u.mutation.ClearTransactionID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceEmailUpdate) SetCreatedAt(v time.Time) *InvoiceEmailUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceEmailUpdate) SetNillableCreatedAt(v *time.Time) *InvoiceEmailUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceEmailUpdate) SetUpdatedAt(v time.Time) *InvoiceEmailUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSupplier sets the "supplier" edge to the Supplier entity.
func (_u *InvoiceEmailUpdate) SetSupplier(v *Supplier) *InvoiceEmailUpdate {
	return _u.SetSupplierID(v.ID)
}

// Mutation returns the InvoiceEmailMutation object of the builder.
func (_u *InvoiceEmailUpdate) Mutation() *InvoiceEmailMutation {
	return _u.mutation
}

// ClearSupplier clears the "supplier" edge to the Supplier entity.
func (_u *InvoiceEmailUpdate) ClearSupplier() *InvoiceEmailUpdate {
	_u.mutation.ClearSupplier()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceEmailUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceEmailUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceEmailUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceEmailUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceEmailUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoiceemail.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceEmailUpdate) check() error {
	if v, ok := _u.mutation.EmailID(); ok {
		if err := invoiceemail.EmailIDValidator(v); err != nil {
			return &ValidationError{Name: "email_id", err: fmt.Errorf(`ent: validator failed for field "InvoiceEmail.email_id": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceEmailUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoiceemail.Table, invoiceemail.Columns, sqlgraph.NewFieldSpec(invoiceemail.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EmailID(); ok {
		_spec.SetField(invoiceemail.FieldEmailID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(invoiceemail.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(invoiceemail.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(invoiceemail.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.From(); ok {
		_spec.SetField(invoiceemail.FieldFrom, field.TypeString, value)
	}
	if _u.mutation.FromCleared() {
		_spec.ClearField(invoiceemail.FieldFrom, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(invoiceemail.FieldBody, field.TypeString, value)
	}
	if _u.mutation.BodyCleared() {
		_spec.ClearField(invoiceemail.FieldBody, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(invoiceemail.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TransactionID(); ok {
		_spec.SetField(invoiceemail.FieldTransactionID, field.TypeUUID, value)
	}
	if _u.mutation.TransactionIDCleared() {
		_spec.ClearField(invoiceemail.FieldTransactionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoiceemail.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoiceemail.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SupplierCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SupplierIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoiceemail.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceEmailUpdateOne is the builder for updating a single InvoiceEmail entity.
type InvoiceEmailUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceEmailMutation
}

// SetEmailID sets the "email_id" field.
func (_u *InvoiceEmailUpdateOne) SetEmailID(v string) *InvoiceEmailUpdateOne {
	_u.mutation.SetEmailID(v)
	return _u
}

// SetNillableEmailID sets the "email_id" field if the given value is not nil.
func (_u *InvoiceEmailUpdateOne) SetNillableEmailID(v *string) *InvoiceEmailUpdateOne {
	if v != nil {
		_u.SetEmailID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *InvoiceEmailUpdateOne) SetDate(v time.Time) *InvoiceEmailUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *InvoiceEmailUpdateOne) SetNillableDate(v *time.Time) *InvoiceEmailUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *InvoiceEmailUpdateOne) SetSubject(v string) *InvoiceEmailUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *InvoiceEmailUpdateOne) SetNillableSubject(v *string) *InvoiceEmailUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *InvoiceEmailUpdateOne) ClearSubject() *InvoiceEmailUpdateOne {
	_u.mutation.ClearSubject()
	return _u
}

// SetFrom sets the "from" field.
func (_u *InvoiceEmailUpdateOne) SetFrom(v string) *InvoiceEmailUpdateOne {
	_u.mutation.SetFrom(v)
	return _u
}

// SetNillableFrom sets the "from" field if the given value is not nil.
func (_u *InvoiceEmailUpdateOne) SetNillableFrom(v *string) *InvoiceEmailUpdateOne {
	if v != nil {
		_u.SetFrom(*v)
	}
	return _u
}

// ClearFrom clears the value of the "from" field.
func (_u *InvoiceEmailUpdateOne) ClearFrom() *InvoiceEmailUpdateOne {
	_u.mutation.ClearFrom()
	return _u
}

// SetBody sets the "body" field.
func (_u *InvoiceEmailUpdateOne) SetBody(v string) *InvoiceEmailUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *InvoiceEmailUpdateOne) SetNillableBody(v *string) *InvoiceEmailUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// ClearBody clears the value of the "body" field.
func (_u *InvoiceEmailUpdateOne) ClearBody() *InvoiceEmailUpdateOne {
	_u.mutation.ClearBody()
	return _u
}

// SetStatus sets the "status" field.
func (_u *InvoiceEmailUpdateOne) SetStatus(v string) *InvoiceEmailUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InvoiceEmailUpdateOne) SetNillableStatus(v *string) *InvoiceEmailUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSupplierID sets the "supplier_id" field.
func (_u *InvoiceEmailUpdateOne) SetSupplierID(v uuid.UUID) *InvoiceEmailUpdateOne {
	_u.mutation.SetSupplierID(v)
	return _u
}

// SetNillableSupplierID sets the "supplier_id" field if the given value is not nil.
func (_u *InvoiceEmailUpdateOne) SetNillableSupplierID(v *uuid.UUID) *InvoiceEmailUpdateOne {
	if v != nil {
		_u.SetSupplierID(*v)
	}
	return _u
}

// ClearSupplierID clears the value of the "supplier_id" field.
func (_u *InvoiceEmailUpdateOne) ClearSupplierID() *InvoiceEmailUpdateOne {
	_u.mutation.ClearSupplierID()
	return _u
}

// SetTransactionID sets the "transaction_id" field.
func (_u *InvoiceEmailUpdateOne) SetTransactionID(v uuid.UUID) *InvoiceEmailUpdateOne {
	_u.mutation.SetTransactionID(v)
	return _u
}

// SetNillableTransactionID sets the "transaction_id" field if the given value is not nil.
func (_u *InvoiceEmailUpdateOne) SetNillableTransactionID(v *uuid.UUID) *InvoiceEmailUpdateOne {
	if v != nil {
		_u.SetTransactionID(*v)
	}
	return _u
}

// ClearTransactionID clears the value of the "transaction_id" field.
func (_u *InvoiceEmailUpdateOne) ClearTransactionID() *InvoiceEmailUpdateOne {
	_u.mutation.ClearTransactionID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceEmailUpdateOne) SetCreatedAt(v time.Time) *InvoiceEmailUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceEmailUpdateOne) SetNillableCreatedAt(v *time.Time) *InvoiceEmailUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceEmailUpdateOne) SetUpdatedAt(v time.Time) *InvoiceEmailUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSupplier sets the "supplier" edge to the Supplier entity.
func (_u *InvoiceEmailUpdateOne) SetSupplier(v *Supplier) *InvoiceEmailUpdateOne {
	return _u.SetSupplierID(v.ID)
}

// Mutation returns the InvoiceEmailMutation object of the builder.
func (_u *InvoiceEmailUpdateOne) Mutation() *InvoiceEmailMutation {
	return _u.mutation
}

// ClearSupplier clears the "supplier" edge to the Supplier entity.
func (_u *InvoiceEmailUpdateOne) ClearSupplier() *InvoiceEmailUpdateOne {
	_u.mutation.ClearSupplier()
	return _u
}

// Where appends a list predicates to the InvoiceEmailUpdate builder.
func (_u *InvoiceEmailUpdateOne) Where(ps ...predicate.InvoiceEmail) *InvoiceEmailUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceEmailUpdateOne) Select(field string, fields ...string) *InvoiceEmailUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InvoiceEmail entity.
func (_u *InvoiceEmailUpdateOne) Save(ctx context.Context) (*InvoiceEmail, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceEmailUpdateOne) SaveX(ctx context.Context) *InvoiceEmail {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceEmailUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceEmailUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceEmailUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoiceemail.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceEmailUpdateOne) check() error {
	if v, ok := _u.mutation.EmailID(); ok {
		if err := invoiceemail.EmailIDValidator(v); err != nil {
			return &ValidationError{Name: "email_id", err: fmt.Errorf(`ent: validator failed for field "InvoiceEmail.email_id": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceEmailUpdateOne) sqlSave(ctx context.Context) (_node *InvoiceEmail, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoiceemail.Table, invoiceemail.Columns, sqlgraph.NewFieldSpec(invoiceemail.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InvoiceEmail.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoiceemail.FieldID)
		for _, f := range fields {
			if !invoiceemail.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoiceemail.FieldID {
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
	if value, ok := _u.mutation.EmailID(); ok {
		_spec.SetField(invoiceemail.FieldEmailID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(invoiceemail.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(invoiceemail.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(invoiceemail.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.From(); ok {
		_spec.SetField(invoiceemail.FieldFrom, field.TypeString, value)
	}
	if _u.mutation.FromCleared() {
		_spec.ClearField(invoiceemail.FieldFrom, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(invoiceemail.FieldBody, field.TypeString, value)
	}
	if _u.mutation.BodyCleared() {
		_spec.ClearField(invoiceemail.FieldBody, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(invoiceemail.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TransactionID(); ok {
		_spec.SetField(invoiceemail.FieldTransactionID, field.TypeUUID, value)
	}
	if _u.mutation.TransactionIDCleared() {
		_spec.ClearField(invoiceemail.FieldTransactionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoiceemail.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoiceemail.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SupplierCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SupplierIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &InvoiceEmail{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoiceemail.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
