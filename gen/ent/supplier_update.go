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
	"github.com/daydreamers/ops-backend/gen/ent/invoiceemail"
	"github.com/daydreamers/ops-backend/gen/ent/predicate"
	"github.com/daydreamers/ops-backend/gen/ent/supplier"
	"github.com/daydreamers/ops-backend/gen/ent/transaction"
	"github.com/daydreamers/ops-backend/internal/entity"
	"github.com/google/uuid"
)

// SupplierUpdate is the builder for updating Supplier entities.
type SupplierUpdate struct {
	config
	hooks    []Hook
	mutation *SupplierMutation
}

// Where appends a list predicates to the SupplierUpdate builder.
func (_u *SupplierUpdate) Where(ps ...predicate.Supplier) *SupplierUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *SupplierUpdate) SetName(v string) *SupplierUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SupplierUpdate) SetNillableName(v *string) *SupplierUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAliases sets the "aliases" field.
func (_u *SupplierUpdate) SetAliases(v []string) *SupplierUpdate {
	_u.mutation.SetAliases(v)
	return _u
}

// AppendAliases appends value to the "aliases" field.
func (_u *SupplierUpdate) AppendAliases(v []string) *SupplierUpdate {
	_u.mutation.AppendAliases(v)
	return _u
}

// ClearAliases clears the value of the "aliases" field.
func (_u *SupplierUpdate) ClearAliases() *SupplierUpdate {
	_u.mutation.ClearAliases()
	return _u
}

// SetInvoiceEmail sets the "invoice_email" field.
func (_u *SupplierUpdate) SetInvoiceEmail(v string) *SupplierUpdate {
	_u.mutation.SetInvoiceEmail(v)
	return _u
}

// SetNillableInvoiceEmail sets the "invoice_email" field if the given value is not nil.
func (_u *SupplierUpdate) SetNillableInvoiceEmail(v *string) *SupplierUpdate {
	if v != nil {
		_u.SetInvoiceEmail(*v)
	}
	return _u
}

// ClearInvoiceEmail clears the value of the "invoice_email" field.
func (_u *SupplierUpdate) ClearInvoiceEmail() *SupplierUpdate {
	_u.mutation.ClearInvoiceEmail()
	return _u
}

// SetInvoiceSubject sets the "invoice_subject" field.
func (_u *SupplierUpdate) SetInvoiceSubject(v string) *SupplierUpdate {
	_u.mutation.SetInvoiceSubject(v)
	return _u
}

// SetNillableInvoiceSubject sets the "invoice_subject" field if the given value is not nil.
func (_u *SupplierUpdate) SetNillableInvoiceSubject(v *string) *SupplierUpdate {
	if v != nil {
		_u.SetInvoiceSubject(*v)
	}
	return _u
}

// ClearInvoiceSubject clears the value of the "invoice_subject" field.
func (_u *SupplierUpdate) ClearInvoiceSubject() *SupplierUpdate {
	_u.mutation.ClearInvoiceSubject()
	return _u
}

// SetSkuPrefix sets the "sku_prefix" field.
func (_u *SupplierUpdate) SetSkuPrefix(v string) *SupplierUpdate {
	_u.mutation.SetSkuPrefix(v)
	return _u
}

// SetNillableSkuPrefix sets the "sku_prefix" field if the given value is not nil.
func (_u *SupplierUpdate) SetNillableSkuPrefix(v *string) *SupplierUpdate {
	if v != nil {
		_u.SetSkuPrefix(*v)
	}
	return _u
}

// ClearSkuPrefix clears the value of the "sku_prefix" field.
func (_u *SupplierUpdate) ClearSkuPrefix() *SupplierUpdate {
	_u.mutation.ClearSkuPrefix()
	return _u
}

// SetParsingConfig sets the "parsing_config" field.
func (_u *SupplierUpdate) SetParsingConfig(v entity.EmailParsingConfig) *SupplierUpdate {
	_u.mutation.SetParsingConfig(v)
	return _u
}

// SetNillableParsingConfig sets the "parsing_config" field if the given value is not nil.
func (_u *SupplierUpdate) SetNillableParsingConfig(v *entity.EmailParsingConfig) *SupplierUpdate {
	if v != nil {
		_u.SetParsingConfig(*v)
	}
	return _u
}

// ClearParsingConfig clears the value of the "parsing_config" field.
func (_u *SupplierUpdate) ClearParsingConfig() *SupplierUpdate {
	_u.mutation.ClearParsingConfig()
	return _u
}

// SetTrainingSamples sets the "training_samples" field.
func (_u *SupplierUpdate) SetTrainingSamples(v []entity.TrainingSample) *SupplierUpdate {
	_u.mutation.SetTrainingSamples(v)
	return _u
}

// AppendTrainingSamples appends value to the "training_samples" field.
func (_u *SupplierUpdate) AppendTrainingSamples(v []entity.TrainingSample) *SupplierUpdate {
	_u.mutation.AppendTrainingSamples(v)
	return _u
}

// ClearTrainingSamples clears the value of the "training_samples" field.
func (_u *SupplierUpdate) ClearTrainingSamples() *SupplierUpdate {
	_u.mutation.ClearTrainingSamples()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SupplierUpdate) SetCreatedAt(v time.Time) *SupplierUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SupplierUpdate) SetNillableCreatedAt(v *time.Time) *SupplierUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SupplierUpdate) SetUpdatedAt(v time.Time) *SupplierUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddEmailIDs adds the "emails" edge to the InvoiceEmail entity by IDs.
func (_u *SupplierUpdate) AddEmailIDs(ids ...uuid.UUID) *SupplierUpdate {
	_u.mutation.AddEmailIDs(ids...)
	return _u
}

// AddEmails adds the "emails" edges to the InvoiceEmail entity.
func (_u *SupplierUpdate) AddEmails(v ...*InvoiceEmail) *SupplierUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEmailIDs(ids...)
}

// AddTransactionIDs adds the "transactions" edge to the Transaction entity by IDs.
func (_u *SupplierUpdate) AddTransactionIDs(ids ...uuid.UUID) *SupplierUpdate {
	_u.mutation.AddTransactionIDs(ids...)
	return _u
}

// AddTransactions adds the "transactions" edges to the Transaction entity.
func (_u *SupplierUpdate) AddTransactions(v ...*Transaction) *SupplierUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTransactionIDs(ids...)
}

// Mutation returns the SupplierMutation object of the builder.
func (_u *SupplierUpdate) Mutation() *SupplierMutation {
	return _u.mutation
}

// ClearEmails clears all "emails" edges to the InvoiceEmail entity.
func (_u *SupplierUpdate) ClearEmails() *SupplierUpdate {
	_u.mutation.ClearEmails()
	return _u
}

// RemoveEmailIDs removes the "emails" edge to InvoiceEmail entities by IDs.
func (_u *SupplierUpdate) RemoveEmailIDs(ids ...uuid.UUID) *SupplierUpdate {
	_u.mutation.RemoveEmailIDs(ids...)
	return _u
}

// RemoveEmails removes "emails" edges to InvoiceEmail entities.
func (_u *SupplierUpdate) RemoveEmails(v ...*InvoiceEmail) *SupplierUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEmailIDs(ids...)
}

// ClearTransactions clears all "transactions" edges to the Transaction entity.
func (_u *SupplierUpdate) ClearTransactions() *SupplierUpdate {
	_u.mutation.ClearTransactions()
	return _u
}

// RemoveTransactionIDs removes the "transactions" edge to Transaction entities by IDs.
func (_u *SupplierUpdate) RemoveTransactionIDs(ids ...uuid.UUID) *SupplierUpdate {
	_u.mutation.RemoveTransactionIDs(ids...)
	return _u
}

// RemoveTransactions removes "transactions" edges to Transaction entities.
func (_u *SupplierUpdate) RemoveTransactions(v ...*Transaction) *SupplierUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTransactionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SupplierUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SupplierUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SupplierUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SupplierUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SupplierUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := supplier.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SupplierUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := supplier.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Supplier.name": %w`, err)}
		}
	}
	return nil
}

func (_u *SupplierUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(supplier.Table, supplier.Columns, sqlgraph.NewFieldSpec(supplier.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(supplier.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Aliases(); ok {
		_spec.SetField(supplier.FieldAliases, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAliases(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, supplier.FieldAliases, value)
		})
	}
	if _u.mutation.AliasesCleared() {
		_spec.ClearField(supplier.FieldAliases, field.TypeJSON)
	}
	if value, ok := _u.mutation.InvoiceEmail(); ok {
		_spec.SetField(supplier.FieldInvoiceEmail, field.TypeString, value)
	}
	if _u.mutation.InvoiceEmailCleared() {
		_spec.ClearField(supplier.FieldInvoiceEmail, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceSubject(); ok {
		_spec.SetField(supplier.FieldInvoiceSubject, field.TypeString, value)
	}
	if _u.mutation.InvoiceSubjectCleared() {
		_spec.ClearField(supplier.FieldInvoiceSubject, field.TypeString)
	}
	if value, ok := _u.mutation.SkuPrefix(); ok {
		_spec.SetField(supplier.FieldSkuPrefix, field.TypeString, value)
	}
	if _u.mutation.SkuPrefixCleared() {
		_spec.ClearField(supplier.FieldSkuPrefix, field.TypeString)
	}
	if value, ok := _u.mutation.ParsingConfig(); ok {
		_spec.SetField(supplier.FieldParsingConfig, field.TypeJSON, value)
	}
	if _u.mutation.ParsingConfigCleared() {
		_spec.ClearField(supplier.FieldParsingConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.TrainingSamples(); ok {
		_spec.SetField(supplier.FieldTrainingSamples, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTrainingSamples(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, supplier.FieldTrainingSamples, value)
		})
	}
	if _u.mutation.TrainingSamplesCleared() {
		_spec.ClearField(supplier.FieldTrainingSamples, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(supplier.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(supplier.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EmailsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   supplier.EmailsTable,
			Columns: []string{supplier.EmailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceemail.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEmailsIDs(); len(nodes) > 0 && !_u.mutation.EmailsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   supplier.EmailsTable,
			Columns: []string{supplier.EmailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceemail.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EmailsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   supplier.EmailsTable,
			Columns: []string{supplier.EmailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceemail.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TransactionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   supplier.TransactionsTable,
			Columns: []string{supplier.TransactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTransactionsIDs(); len(nodes) > 0 && !_u.mutation.TransactionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   supplier.TransactionsTable,
			Columns: []string{supplier.TransactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TransactionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   supplier.TransactionsTable,
			Columns: []string{supplier.TransactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{supplier.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SupplierUpdateOne is the builder for updating a single Supplier entity.
type SupplierUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SupplierMutation
}

// SetName sets the "name" field.
func (_u *SupplierUpdateOne) SetName(v string) *SupplierUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SupplierUpdateOne) SetNillableName(v *string) *SupplierUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAliases sets the "aliases" field.
func (_u *SupplierUpdateOne) SetAliases(v []string) *SupplierUpdateOne {
	_u.mutation.SetAliases(v)
	return _u
}

// AppendAliases appends value to the "aliases" field.
func (_u *SupplierUpdateOne) AppendAliases(v []string) *SupplierUpdateOne {
	_u.mutation.AppendAliases(v)
	return _u
}

// ClearAliases clears the value of the "aliases" field.
func (_u *SupplierUpdateOne) ClearAliases() *SupplierUpdateOne {
	_u.mutation.ClearAliases()
	return _u
}

// SetInvoiceEmail sets the "invoice_email" field.
func (_u *SupplierUpdateOne) SetInvoiceEmail(v string) *SupplierUpdateOne {
	_u.mutation.SetInvoiceEmail(v)
	return _u
}

// SetNillableInvoiceEmail sets the "invoice_email" field if the given value is not nil.
func (_u *SupplierUpdateOne) SetNillableInvoiceEmail(v *string) *SupplierUpdateOne {
	if v != nil {
		_u.SetInvoiceEmail(*v)
	}
	return _u
}

// ClearInvoiceEmail clears the value of the "invoice_email" field.
func (_u *SupplierUpdateOne) ClearInvoiceEmail() *SupplierUpdateOne {
	_u.mutation.ClearInvoiceEmail()
	return _u
}

// SetInvoiceSubject sets the "invoice_subject" field.
func (_u *SupplierUpdateOne) SetInvoiceSubject(v string) *SupplierUpdateOne {
	_u.mutation.SetInvoiceSubject(v)
	return _u
}

// SetNillableInvoiceSubject sets the "invoice_subject" field if the given value is not nil.
func (_u *SupplierUpdateOne) SetNillableInvoiceSubject(v *string) *SupplierUpdateOne {
	if v != nil {
		_u.SetInvoiceSubject(*v)
	}
	return _u
}

// ClearInvoiceSubject clears the value of the "invoice_subject" field.
func (_u *SupplierUpdateOne) ClearInvoiceSubject() *SupplierUpdateOne {
	_u.mutation.ClearInvoiceSubject()
	return _u
}

// SetSkuPrefix sets the "sku_prefix" field.
func (_u *SupplierUpdateOne) SetSkuPrefix(v string) *SupplierUpdateOne {
	_u.mutation.SetSkuPrefix(v)
	return _u
}

// SetNillableSkuPrefix sets the "sku_prefix" field if the given value is not nil.
func (_u *SupplierUpdateOne) SetNillableSkuPrefix(v *string) *SupplierUpdateOne {
	if v != nil {
		_u.SetSkuPrefix(*v)
	}
	return _u
}

// ClearSkuPrefix clears the value of the "sku_prefix" field.
func (_u *SupplierUpdateOne) ClearSkuPrefix() *SupplierUpdateOne {
	_u.mutation.ClearSkuPrefix()
	return _u
}

// SetParsingConfig sets the "parsing_config" field.
func (_u *SupplierUpdateOne) SetParsingConfig(v entity.EmailParsingConfig) *SupplierUpdateOne {
	_u.mutation.SetParsingConfig(v)
	return _u
}

// SetNillableParsingConfig sets the "parsing_config" field if the given value is not nil.
func (_u *SupplierUpdateOne) SetNillableParsingConfig(v *entity.EmailParsingConfig) *SupplierUpdateOne {
	if v != nil {
		_u.SetParsingConfig(*v)
	}
	return _u
}

// ClearParsingConfig clears the value of the "parsing_config" field.
func (_u *SupplierUpdateOne) ClearParsingConfig() *SupplierUpdateOne {
	_u.mutation.ClearParsingConfig()
	return _u
}

// SetTrainingSamples sets the "training_samples" field.
func (_u *SupplierUpdateOne) SetTrainingSamples(v []entity.TrainingSample) *SupplierUpdateOne {
	_u.mutation.SetTrainingSamples(v)
	return _u
}

// AppendTrainingSamples appends value to the "training_samples" field.
func (_u *SupplierUpdateOne) AppendTrainingSamples(v []entity.TrainingSample) *SupplierUpdateOne {
	_u.mutation.AppendTrainingSamples(v)
	return _u
}

// ClearTrainingSamples clears the value of the "training_samples" field.
func (_u *SupplierUpdateOne) ClearTrainingSamples() *SupplierUpdateOne {
	_u.mutation.ClearTrainingSamples()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SupplierUpdateOne) SetCreatedAt(v time.Time) *SupplierUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SupplierUpdateOne) SetNillableCreatedAt(v *time.Time) *SupplierUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SupplierUpdateOne) SetUpdatedAt(v time.Time) *SupplierUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddEmailIDs adds the "emails" edge to the InvoiceEmail entity by IDs.
func (_u *SupplierUpdateOne) AddEmailIDs(ids ...uuid.UUID) *SupplierUpdateOne {
	_u.mutation.AddEmailIDs(ids...)
	return _u
}

// AddEmails adds the "emails" edges to the InvoiceEmail entity.
func (_u *SupplierUpdateOne) AddEmails(v ...*InvoiceEmail) *SupplierUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEmailIDs(ids...)
}

// AddTransactionIDs adds the "transactions" edge to the Transaction entity by IDs.
func (_u *SupplierUpdateOne) AddTransactionIDs(ids ...uuid.UUID) *SupplierUpdateOne {
	_u.mutation.AddTransactionIDs(ids...)
	return _u
}

// AddTransactions adds the "transactions" edges to the Transaction entity.
func (_u *SupplierUpdateOne) AddTransactions(v ...*Transaction) *SupplierUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTransactionIDs(ids...)
}

// Mutation returns the SupplierMutation object of the builder.
func (_u *SupplierUpdateOne) Mutation() *SupplierMutation {
	return _u.mutation
}

// ClearEmails clears all "emails" edges to the InvoiceEmail entity.
func (_u *SupplierUpdateOne) ClearEmails() *SupplierUpdateOne {
	_u.mutation.ClearEmails()
	return _u
}

// RemoveEmailIDs removes the "emails" edge to InvoiceEmail entities by IDs.
func (_u *SupplierUpdateOne) RemoveEmailIDs(ids ...uuid.UUID) *SupplierUpdateOne {
	_u.mutation.RemoveEmailIDs(ids...)
	return _u
}

// RemoveEmails removes "emails" edges to InvoiceEmail entities.
func (_u *SupplierUpdateOne) RemoveEmails(v ...*InvoiceEmail) *SupplierUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEmailIDs(ids...)
}

// ClearTransactions clears all "transactions" edges to the Transaction entity.
func (_u *SupplierUpdateOne) ClearTransactions() *SupplierUpdateOne {
	_u.mutation.ClearTransactions()
	return _u
}

// RemoveTransactionIDs removes the "transactions" edge to Transaction entities by IDs.
func (_u *SupplierUpdateOne) RemoveTransactionIDs(ids ...uuid.UUID) *SupplierUpdateOne {
	_u.mutation.RemoveTransactionIDs(ids...)
	return _u
}

// RemoveTransactions removes "transactions" edges to Transaction entities.
func (_u *SupplierUpdateOne) RemoveTransactions(v ...*Transaction) *SupplierUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTransactionIDs(ids...)
}

// Where appends a list predicates to the SupplierUpdate builder.
func (_u *SupplierUpdateOne) Where(ps ...predicate.Supplier) *SupplierUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SupplierUpdateOne) Select(field string, fields ...string) *SupplierUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Supplier entity.
func (_u *SupplierUpdateOne) Save(ctx context.Context) (*Supplier, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SupplierUpdateOne) SaveX(ctx context.Context) *Supplier {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SupplierUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SupplierUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SupplierUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := supplier.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SupplierUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := supplier.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Supplier.name": %w`, err)}
		}
	}
	return nil
}

func (_u *SupplierUpdateOne) sqlSave(ctx context.Context) (_node *Supplier, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(supplier.Table, supplier.Columns, sqlgraph.NewFieldSpec(supplier.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Supplier.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, supplier.FieldID)
		for _, f := range fields {
			if !supplier.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != supplier.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(supplier.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Aliases(); ok {
		_spec.SetField(supplier.FieldAliases, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAliases(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, supplier.FieldAliases, value)
		})
	}
	if _u.mutation.AliasesCleared() {
		_spec.ClearField(supplier.FieldAliases, field.TypeJSON)
	}
	if value, ok := _u.mutation.InvoiceEmail(); ok {
		_spec.SetField(supplier.FieldInvoiceEmail, field.TypeString, value)
	}
	if _u.mutation.InvoiceEmailCleared() {
		_spec.ClearField(supplier.FieldInvoiceEmail, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceSubject(); ok {
		_spec.SetField(supplier.FieldInvoiceSubject, field.TypeString, value)
	}
	if _u.mutation.InvoiceSubjectCleared() {
		_spec.ClearField(supplier.FieldInvoiceSubject, field.TypeString)
	}
	if value, ok := _u.mutation.SkuPrefix(); ok {
		_spec.SetField(supplier.FieldSkuPrefix, field.TypeString, value)
	}
	if _u.mutation.SkuPrefixCleared() {
		_spec.ClearField(supplier.FieldSkuPrefix, field.TypeString)
	}
	if value, ok := _u.mutation.ParsingConfig(); ok {
		_spec.SetField(supplier.FieldParsingConfig, field.TypeJSON, value)
	}
	if _u.mutation.ParsingConfigCleared() {
		_spec.ClearField(supplier.FieldParsingConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.TrainingSamples(); ok {
		_spec.SetField(supplier.FieldTrainingSamples, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTrainingSamples(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, supplier.FieldTrainingSamples, value)
		})
	}
	if _u.mutation.TrainingSamplesCleared() {
		_spec.ClearField(supplier.FieldTrainingSamples, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(supplier.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(supplier.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EmailsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   supplier.EmailsTable,
			Columns: []string{supplier.EmailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceemail.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEmailsIDs(); len(nodes) > 0 && !_u.mutation.EmailsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   supplier.EmailsTable,
			Columns: []string{supplier.EmailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceemail.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EmailsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   supplier.EmailsTable,
			Columns: []string{supplier.EmailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceemail.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TransactionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   supplier.TransactionsTable,
			Columns: []string{supplier.TransactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTransactionsIDs(); len(nodes) > 0 && !_u.mutation.TransactionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   supplier.TransactionsTable,
			Columns: []string{supplier.TransactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TransactionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   supplier.TransactionsTable,
			Columns: []string{supplier.TransactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Supplier{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{supplier.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
