// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/daydreamers/ops-backend/gen/ent/inventorychange"
	"github.com/daydreamers/ops-backend/gen/ent/invoiceemail"
	"github.com/daydreamers/ops-backend/gen/ent/predicate"
	"github.com/daydreamers/ops-backend/gen/ent/product"
	"github.com/daydreamers/ops-backend/gen/ent/smartmapping"
	"github.com/daydreamers/ops-backend/gen/ent/supplier"
	"github.com/daydreamers/ops-backend/gen/ent/transaction"
	"github.com/daydreamers/ops-backend/internal/entity"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeInventoryChange = "InventoryChange"
	TypeInvoiceEmail    = "InvoiceEmail"
	TypeProduct         = "Product"
	TypeSmartMapping    = "SmartMapping"
	TypeSupplier        = "Supplier"
	TypeTransaction     = "Transaction"
)

// InventoryChangeMutation represents an operation that mutates the InventoryChange nodes in the graph.
type InventoryChangeMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	transaction_id     *uuid.UUID
	quantity_change    *int
	addquantity_change *int
	change_type        *string
	source             *string
	reason             *string
	timestamp          *time.Time
	clearedFields      map[string]struct{}
	product            *uuid.UUID
	clearedproduct     bool
	done               bool
	oldValue           func(context.Context) (*InventoryChange, error)
	predicates         []predicate.InventoryChange
}

var _ ent.Mutation = (*InventoryChangeMutation)(nil)

// inventorychangeOption allows management of the mutation configuration using functional options.
type inventorychangeOption func(*InventoryChangeMutation)

// newInventoryChangeMutation creates new mutation for the InventoryChange entity.
func newInventoryChangeMutation(c config, op Op, opts ...inventorychangeOption) *InventoryChangeMutation {
	m := &InventoryChangeMutation{
		config:        c,
		op:            op,
		typ:           TypeInventoryChange,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInventoryChangeID sets the ID field of the mutation.
func withInventoryChangeID(id uuid.UUID) inventorychangeOption {
	return func(m *InventoryChangeMutation) {
		var (
			err   error
			once  sync.Once
			value *InventoryChange
		)
		m.oldValue = func(ctx context.Context) (*InventoryChange, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InventoryChange.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInventoryChange sets the old InventoryChange of the mutation.
func withInventoryChange(node *InventoryChange) inventorychangeOption {
	return func(m *InventoryChangeMutation) {
		m.oldValue = func(context.Context) (*InventoryChange, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InventoryChangeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InventoryChangeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InventoryChange entities.
func (m *InventoryChangeMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InventoryChangeMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InventoryChangeMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InventoryChange.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProductID sets the "product_id" field.
func (m *InventoryChangeMutation) SetProductID(u uuid.UUID) {
	m.product = &u
}

// ProductID returns the value of the "product_id" field in the mutation.
func (m *InventoryChangeMutation) ProductID() (r uuid.UUID, exists bool) {
	v := m.product
	if v == nil {
		return
	}
	return *v, true
}

// OldProductID returns the old "product_id" field's value of the InventoryChange entity.
// If the InventoryChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryChangeMutation) OldProductID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProductID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProductID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProductID: %w", err)
	}
	return oldValue.ProductID, nil
}

// ResetProductID resets all changes to the "product_id" field.
func (m *InventoryChangeMutation) ResetProductID() {
	m.product = nil
}

// SetTransactionID sets the "transaction_id" field.
func (m *InventoryChangeMutation) SetTransactionID(u uuid.UUID) {
	m.transaction_id = &u
}

// TransactionID returns the value of the "transaction_id" field in the mutation.
func (m *InventoryChangeMutation) TransactionID() (r uuid.UUID, exists bool) {
	v := m.transaction_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTransactionID returns the old "transaction_id" field's value of the InventoryChange entity.
// If the InventoryChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryChangeMutation) OldTransactionID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransactionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransactionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransactionID: %w", err)
	}
	return oldValue.TransactionID, nil
}

// ClearTransactionID clears the value of the "transaction_id" field.
func (m *InventoryChangeMutation) ClearTransactionID() {
	m.transaction_id = nil
	m.clearedFields[inventorychange.FieldTransactionID] = struct{}{}
}

// TransactionIDCleared returns if the "transaction_id" field was cleared in this mutation.
func (m *InventoryChangeMutation) TransactionIDCleared() bool {
	_, ok := m.clearedFields[inventorychange.FieldTransactionID]
	return ok
}

// ResetTransactionID resets all changes to the "transaction_id" field.
func (m *InventoryChangeMutation) ResetTransactionID() {
	m.transaction_id = nil
	delete(m.clearedFields, inventorychange.FieldTransactionID)
}

// SetQuantityChange sets the "quantity_change" field.
func (m *InventoryChangeMutation) SetQuantityChange(i int) {
	m.quantity_change = &i
	m.addquantity_change = nil
}

// QuantityChange returns the value of the "quantity_change" field in the mutation.
func (m *InventoryChangeMutation) QuantityChange() (r int, exists bool) {
	v := m.quantity_change
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantityChange returns the old "quantity_change" field's value of the InventoryChange entity.
// If the InventoryChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryChangeMutation) OldQuantityChange(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantityChange is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantityChange requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantityChange: %w", err)
	}
	return oldValue.QuantityChange, nil
}

// AddQuantityChange adds i to the "quantity_change" field.
func (m *InventoryChangeMutation) AddQuantityChange(i int) {
	if m.addquantity_change != nil {
		*m.addquantity_change += i
	} else {
		m.addquantity_change = &i
	}
}

// AddedQuantityChange returns the value that was added to the "quantity_change" field in this mutation.
func (m *InventoryChangeMutation) AddedQuantityChange() (r int, exists bool) {
	v := m.addquantity_change
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuantityChange resets all changes to the "quantity_change" field.
func (m *InventoryChangeMutation) ResetQuantityChange() {
	m.quantity_change = nil
	m.addquantity_change = nil
}

// SetChangeType sets the "change_type" field.
func (m *InventoryChangeMutation) SetChangeType(s string) {
	m.change_type = &s
}

// ChangeType returns the value of the "change_type" field in the mutation.
func (m *InventoryChangeMutation) ChangeType() (r string, exists bool) {
	v := m.change_type
	if v == nil {
		return
	}
	return *v, true
}

// OldChangeType returns the old "change_type" field's value of the InventoryChange entity.
// If the InventoryChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryChangeMutation) OldChangeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChangeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChangeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChangeType: %w", err)
	}
	return oldValue.ChangeType, nil
}

// ResetChangeType resets all changes to the "change_type" field.
func (m *InventoryChangeMutation) ResetChangeType() {
	m.change_type = nil
}

// SetSource sets the "source" field.
func (m *InventoryChangeMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *InventoryChangeMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the InventoryChange entity.
// If the InventoryChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryChangeMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ClearSource clears the value of the "source" field.
func (m *InventoryChangeMutation) ClearSource() {
	m.source = nil
	m.clearedFields[inventorychange.FieldSource] = struct{}{}
}

// SourceCleared returns if the "source" field was cleared in this mutation.
func (m *InventoryChangeMutation) SourceCleared() bool {
	_, ok := m.clearedFields[inventorychange.FieldSource]
	return ok
}

// ResetSource resets all changes to the "source" field.
func (m *InventoryChangeMutation) ResetSource() {
	m.source = nil
	delete(m.clearedFields, inventorychange.FieldSource)
}

// SetReason sets the "reason" field.
func (m *InventoryChangeMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *InventoryChangeMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the InventoryChange entity.
// If the InventoryChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryChangeMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *InventoryChangeMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[inventorychange.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *InventoryChangeMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[inventorychange.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *InventoryChangeMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, inventorychange.FieldReason)
}

// SetTimestamp sets the "timestamp" field.
func (m *InventoryChangeMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *InventoryChangeMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the InventoryChange entity.
// If the InventoryChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryChangeMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *InventoryChangeMutation) ResetTimestamp() {
	m.timestamp = nil
}

// ClearProduct clears the "product" edge to the Product entity.
func (m *InventoryChangeMutation) ClearProduct() {
	m.clearedproduct = true
	m.clearedFields[inventorychange.FieldProductID] = struct{}{}
}

// ProductCleared reports if the "product" edge to the Product entity was cleared.
func (m *InventoryChangeMutation) ProductCleared() bool {
	return m.clearedproduct
}

// ProductIDs returns the "product" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProductID instead. It exists only for internal usage by the builders.
func (m *InventoryChangeMutation) ProductIDs() (ids []uuid.UUID) {
	if id := m.product; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProduct resets all changes to the "product" edge.
func (m *InventoryChangeMutation) ResetProduct() {
	m.product = nil
	m.clearedproduct = false
}

// Where appends a list predicates to the InventoryChangeMutation builder.
func (m *InventoryChangeMutation) Where(ps ...predicate.InventoryChange) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InventoryChangeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InventoryChangeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InventoryChange, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InventoryChangeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InventoryChangeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InventoryChange).
func (m *InventoryChangeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InventoryChangeMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.product != nil {
		fields = append(fields, inventorychange.FieldProductID)
	}
	if m.transaction_id != nil {
		fields = append(fields, inventorychange.FieldTransactionID)
	}
	if m.quantity_change != nil {
		fields = append(fields, inventorychange.FieldQuantityChange)
	}
	if m.change_type != nil {
		fields = append(fields, inventorychange.FieldChangeType)
	}
	if m.source != nil {
		fields = append(fields, inventorychange.FieldSource)
	}
	if m.reason != nil {
		fields = append(fields, inventorychange.FieldReason)
	}
	if m.timestamp != nil {
		fields = append(fields, inventorychange.FieldTimestamp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InventoryChangeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case inventorychange.FieldProductID:
		return m.ProductID()
	case inventorychange.FieldTransactionID:
		return m.TransactionID()
	case inventorychange.FieldQuantityChange:
		return m.QuantityChange()
	case inventorychange.FieldChangeType:
		return m.ChangeType()
	case inventorychange.FieldSource:
		return m.Source()
	case inventorychange.FieldReason:
		return m.Reason()
	case inventorychange.FieldTimestamp:
		return m.Timestamp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InventoryChangeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case inventorychange.FieldProductID:
		return m.OldProductID(ctx)
	case inventorychange.FieldTransactionID:
		return m.OldTransactionID(ctx)
	case inventorychange.FieldQuantityChange:
		return m.OldQuantityChange(ctx)
	case inventorychange.FieldChangeType:
		return m.OldChangeType(ctx)
	case inventorychange.FieldSource:
		return m.OldSource(ctx)
	case inventorychange.FieldReason:
		return m.OldReason(ctx)
	case inventorychange.FieldTimestamp:
		return m.OldTimestamp(ctx)
	}
	return nil, fmt.Errorf("unknown InventoryChange field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InventoryChangeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case inventorychange.FieldProductID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProductID(v)
		return nil
	case inventorychange.FieldTransactionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransactionID(v)
		return nil
	case inventorychange.FieldQuantityChange:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantityChange(v)
		return nil
	case inventorychange.FieldChangeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChangeType(v)
		return nil
	case inventorychange.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case inventorychange.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case inventorychange.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown InventoryChange field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InventoryChangeMutation) AddedFields() []string {
	var fields []string
	if m.addquantity_change != nil {
		fields = append(fields, inventorychange.FieldQuantityChange)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InventoryChangeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case inventorychange.FieldQuantityChange:
		return m.AddedQuantityChange()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InventoryChangeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case inventorychange.FieldQuantityChange:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantityChange(v)
		return nil
	}
	return fmt.Errorf("unknown InventoryChange numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InventoryChangeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(inventorychange.FieldTransactionID) {
		fields = append(fields, inventorychange.FieldTransactionID)
	}
	if m.FieldCleared(inventorychange.FieldSource) {
		fields = append(fields, inventorychange.FieldSource)
	}
	if m.FieldCleared(inventorychange.FieldReason) {
		fields = append(fields, inventorychange.FieldReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InventoryChangeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InventoryChangeMutation) ClearField(name string) error {
	switch name {
	case inventorychange.FieldTransactionID:
		m.ClearTransactionID()
		return nil
	case inventorychange.FieldSource:
		m.ClearSource()
		return nil
	case inventorychange.FieldReason:
		m.ClearReason()
		return nil
	}
	return fmt.Errorf("unknown InventoryChange nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InventoryChangeMutation) ResetField(name string) error {
	switch name {
	case inventorychange.FieldProductID:
		m.ResetProductID()
		return nil
	case inventorychange.FieldTransactionID:
		m.ResetTransactionID()
		return nil
	case inventorychange.FieldQuantityChange:
		m.ResetQuantityChange()
		return nil
	case inventorychange.FieldChangeType:
		m.ResetChangeType()
		return nil
	case inventorychange.FieldSource:
		m.ResetSource()
		return nil
	case inventorychange.FieldReason:
		m.ResetReason()
		return nil
	case inventorychange.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	}
	return fmt.Errorf("unknown InventoryChange field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InventoryChangeMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.product != nil {
		edges = append(edges, inventorychange.EdgeProduct)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InventoryChangeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case inventorychange.EdgeProduct:
		if id := m.product; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InventoryChangeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InventoryChangeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InventoryChangeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproduct {
		edges = append(edges, inventorychange.EdgeProduct)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InventoryChangeMutation) EdgeCleared(name string) bool {
	switch name {
	case inventorychange.EdgeProduct:
		return m.clearedproduct
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InventoryChangeMutation) ClearEdge(name string) error {
	switch name {
	case inventorychange.EdgeProduct:
		m.ClearProduct()
		return nil
	}
	return fmt.Errorf("unknown InventoryChange unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InventoryChangeMutation) ResetEdge(name string) error {
	switch name {
	case inventorychange.EdgeProduct:
		m.ResetProduct()
		return nil
	}
	return fmt.Errorf("unknown InventoryChange edge %s", name)
}

// InvoiceEmailMutation represents an operation that mutates the InvoiceEmail nodes in the graph.
type InvoiceEmailMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	email_id        *string
	date            *time.Time
	subject         *string
	from            *string
	body            *string
	status          *string
	transaction_id  *uuid.UUID
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	supplier        *uuid.UUID
	clearedsupplier bool
	done            bool
	oldValue        func(context.Context) (*InvoiceEmail, error)
	predicates      []predicate.InvoiceEmail
}

var _ ent.Mutation = (*InvoiceEmailMutation)(nil)

// invoiceemailOption allows management of the mutation configuration using functional options.
type invoiceemailOption func(*InvoiceEmailMutation)

// newInvoiceEmailMutation creates new mutation for the InvoiceEmail entity.
func newInvoiceEmailMutation(c config, op Op, opts ...invoiceemailOption) *InvoiceEmailMutation {
	m := &InvoiceEmailMutation{
		config:        c,
		op:            op,
		typ:           TypeInvoiceEmail,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInvoiceEmailID sets the ID field of the mutation.
func withInvoiceEmailID(id uuid.UUID) invoiceemailOption {
	return func(m *InvoiceEmailMutation) {
		var (
			err   error
			once  sync.Once
			value *InvoiceEmail
		)
		m.oldValue = func(ctx context.Context) (*InvoiceEmail, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InvoiceEmail.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInvoiceEmail sets the old InvoiceEmail of the mutation.
func withInvoiceEmail(node *InvoiceEmail) invoiceemailOption {
	return func(m *InvoiceEmailMutation) {
		m.oldValue = func(context.Context) (*InvoiceEmail, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InvoiceEmailMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InvoiceEmailMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InvoiceEmail entities.
func (m *InvoiceEmailMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InvoiceEmailMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InvoiceEmailMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InvoiceEmail.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmailID sets the "email_id" field.
func (m *InvoiceEmailMutation) SetEmailID(s string) {
	m.email_id = &s
}

// EmailID returns the value of the "email_id" field in the mutation.
func (m *InvoiceEmailMutation) EmailID() (r string, exists bool) {
	v := m.email_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailID returns the old "email_id" field's value of the InvoiceEmail entity.
// If the InvoiceEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceEmailMutation) OldEmailID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailID: %w", err)
	}
	return oldValue.EmailID, nil
}

// ResetEmailID resets all changes to the "email_id" field.
func (m *InvoiceEmailMutation) ResetEmailID() {
	m.email_id = nil
}

// SetDate sets the "date" field.
func (m *InvoiceEmailMutation) SetDate(t time.Time) {
	m.date = &t
}

// Date returns the value of the "date" field in the mutation.
func (m *InvoiceEmailMutation) Date() (r time.Time, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the InvoiceEmail entity.
// If the InvoiceEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceEmailMutation) OldDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *InvoiceEmailMutation) ResetDate() {
	m.date = nil
}

// SetSubject sets the "subject" field.
func (m *InvoiceEmailMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *InvoiceEmailMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the InvoiceEmail entity.
// If the InvoiceEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceEmailMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ClearSubject clears the value of the "subject" field.
func (m *InvoiceEmailMutation) ClearSubject() {
	m.subject = nil
	m.clearedFields[invoiceemail.FieldSubject] = struct{}{}
}

// SubjectCleared returns if the "subject" field was cleared in this mutation.
func (m *InvoiceEmailMutation) SubjectCleared() bool {
	_, ok := m.clearedFields[invoiceemail.FieldSubject]
	return ok
}

// ResetSubject resets all changes to the "subject" field.
func (m *InvoiceEmailMutation) ResetSubject() {
	m.subject = nil
	delete(m.clearedFields, invoiceemail.FieldSubject)
}

// SetFrom sets the "from" field.
func (m *InvoiceEmailMutation) SetFrom(s string) {
	m.from = &s
}

// From returns the value of the "from" field in the mutation.
func (m *InvoiceEmailMutation) From() (r string, exists bool) {
	v := m.from
	if v == nil {
		return
	}
	return *v, true
}

// OldFrom returns the old "from" field's value of the InvoiceEmail entity.
// If the InvoiceEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceEmailMutation) OldFrom(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFrom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFrom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFrom: %w", err)
	}
	return oldValue.From, nil
}

// ClearFrom clears the value of the "from" field.
func (m *InvoiceEmailMutation) ClearFrom() {
	m.from = nil
	m.clearedFields[invoiceemail.FieldFrom] = struct{}{}
}

// FromCleared returns if the "from" field was cleared in this mutation.
func (m *InvoiceEmailMutation) FromCleared() bool {
	_, ok := m.clearedFields[invoiceemail.FieldFrom]
	return ok
}

// ResetFrom resets all changes to the "from" field.
func (m *InvoiceEmailMutation) ResetFrom() {
	m.from = nil
	delete(m.clearedFields, invoiceemail.FieldFrom)
}

// SetBody sets the "body" field.
func (m *InvoiceEmailMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *InvoiceEmailMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the InvoiceEmail entity.
// If the InvoiceEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceEmailMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ClearBody clears the value of the "body" field.
func (m *InvoiceEmailMutation) ClearBody() {
	m.body = nil
	m.clearedFields[invoiceemail.FieldBody] = struct{}{}
}

// BodyCleared returns if the "body" field was cleared in this mutation.
func (m *InvoiceEmailMutation) BodyCleared() bool {
	_, ok := m.clearedFields[invoiceemail.FieldBody]
	return ok
}

// ResetBody resets all changes to the "body" field.
func (m *InvoiceEmailMutation) ResetBody() {
	m.body = nil
	delete(m.clearedFields, invoiceemail.FieldBody)
}

// SetStatus sets the "status" field.
func (m *InvoiceEmailMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *InvoiceEmailMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the InvoiceEmail entity.
// If the InvoiceEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceEmailMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *InvoiceEmailMutation) ResetStatus() {
	m.status = nil
}

// SetSupplierID sets the "supplier_id" field.
func (m *InvoiceEmailMutation) SetSupplierID(u uuid.UUID) {
	m.supplier = &u
}

// SupplierID returns the value of the "supplier_id" field in the mutation.
func (m *InvoiceEmailMutation) SupplierID() (r uuid.UUID, exists bool) {
	v := m.supplier
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierID returns the old "supplier_id" field's value of the InvoiceEmail entity.
// If the InvoiceEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceEmailMutation) OldSupplierID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierID: %w", err)
	}
	return oldValue.SupplierID, nil
}

// ClearSupplierID clears the value of the "supplier_id" field.
func (m *InvoiceEmailMutation) ClearSupplierID() {
	m.supplier = nil
	m.clearedFields[invoiceemail.FieldSupplierID] = struct{}{}
}

// SupplierIDCleared returns if the "supplier_id" field was cleared in this mutation.
func (m *InvoiceEmailMutation) SupplierIDCleared() bool {
	_, ok := m.clearedFields[invoiceemail.FieldSupplierID]
	return ok
}

// ResetSupplierID resets all changes to the "supplier_id" field.
func (m *InvoiceEmailMutation) ResetSupplierID() {
	m.supplier = nil
	delete(m.clearedFields, invoiceemail.FieldSupplierID)
}

// SetTransactionID sets the "transaction_id" field.
func (m *InvoiceEmailMutation) SetTransactionID(u uuid.UUID) {
	m.transaction_id = &u
}

// TransactionID returns the value of the "transaction_id" field in the mutation.
func (m *InvoiceEmailMutation) TransactionID() (r uuid.UUID, exists bool) {
	v := m.transaction_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTransactionID returns the old "transaction_id" field's value of the InvoiceEmail entity.
// If the InvoiceEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceEmailMutation) OldTransactionID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransactionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransactionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransactionID: %w", err)
	}
	return oldValue.TransactionID, nil
}

// ClearTransactionID clears the value of the "transaction_id" field.
func (m *InvoiceEmailMutation) ClearTransactionID() {
	m.transaction_id = nil
	m.clearedFields[invoiceemail.FieldTransactionID] = struct{}{}
}

// TransactionIDCleared returns if the "transaction_id" field was cleared in this mutation.
func (m *InvoiceEmailMutation) TransactionIDCleared() bool {
	_, ok := m.clearedFields[invoiceemail.FieldTransactionID]
	return ok
}

// ResetTransactionID resets all changes to the "transaction_id" field.
func (m *InvoiceEmailMutation) ResetTransactionID() {
	m.transaction_id = nil
	delete(m.clearedFields, invoiceemail.FieldTransactionID)
}

// SetCreatedAt sets the "created_at" field.
func (m *InvoiceEmailMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InvoiceEmailMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InvoiceEmail entity.
// If the InvoiceEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceEmailMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InvoiceEmailMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InvoiceEmailMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InvoiceEmailMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the InvoiceEmail entity.
// If the InvoiceEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceEmailMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InvoiceEmailMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearSupplier clears the "supplier" edge to the Supplier entity.
func (m *InvoiceEmailMutation) ClearSupplier() {
	m.clearedsupplier = true
	m.clearedFields[invoiceemail.FieldSupplierID] = struct{}{}
}

// SupplierCleared reports if the "supplier" edge to the Supplier entity was cleared.
func (m *InvoiceEmailMutation) SupplierCleared() bool {
	return m.SupplierIDCleared() || m.clearedsupplier
}

// SupplierIDs returns the "supplier" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SupplierID instead. It exists only for internal usage by the builders.
func (m *InvoiceEmailMutation) SupplierIDs() (ids []uuid.UUID) {
	if id := m.supplier; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSupplier resets all changes to the "supplier" edge.
func (m *InvoiceEmailMutation) ResetSupplier() {
	m.supplier = nil
	m.clearedsupplier = false
}

// Where appends a list predicates to the InvoiceEmailMutation builder.
func (m *InvoiceEmailMutation) Where(ps ...predicate.InvoiceEmail) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InvoiceEmailMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InvoiceEmailMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InvoiceEmail, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InvoiceEmailMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InvoiceEmailMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InvoiceEmail).
func (m *InvoiceEmailMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InvoiceEmailMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.email_id != nil {
		fields = append(fields, invoiceemail.FieldEmailID)
	}
	if m.date != nil {
		fields = append(fields, invoiceemail.FieldDate)
	}
	if m.subject != nil {
		fields = append(fields, invoiceemail.FieldSubject)
	}
	if m.from != nil {
		fields = append(fields, invoiceemail.FieldFrom)
	}
	if m.body != nil {
		fields = append(fields, invoiceemail.FieldBody)
	}
	if m.status != nil {
		fields = append(fields, invoiceemail.FieldStatus)
	}
	if m.supplier != nil {
		fields = append(fields, invoiceemail.FieldSupplierID)
	}
	if m.transaction_id != nil {
		fields = append(fields, invoiceemail.FieldTransactionID)
	}
	if m.created_at != nil {
		fields = append(fields, invoiceemail.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, invoiceemail.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InvoiceEmailMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case invoiceemail.FieldEmailID:
		return m.EmailID()
	case invoiceemail.FieldDate:
		return m.Date()
	case invoiceemail.FieldSubject:
		return m.Subject()
	case invoiceemail.FieldFrom:
		return m.From()
	case invoiceemail.FieldBody:
		return m.Body()
	case invoiceemail.FieldStatus:
		return m.Status()
	case invoiceemail.FieldSupplierID:
		return m.SupplierID()
	case invoiceemail.FieldTransactionID:
		return m.TransactionID()
	case invoiceemail.FieldCreatedAt:
		return m.CreatedAt()
	case invoiceemail.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InvoiceEmailMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case invoiceemail.FieldEmailID:
		return m.OldEmailID(ctx)
	case invoiceemail.FieldDate:
		return m.OldDate(ctx)
	case invoiceemail.FieldSubject:
		return m.OldSubject(ctx)
	case invoiceemail.FieldFrom:
		return m.OldFrom(ctx)
	case invoiceemail.FieldBody:
		return m.OldBody(ctx)
	case invoiceemail.FieldStatus:
		return m.OldStatus(ctx)
	case invoiceemail.FieldSupplierID:
		return m.OldSupplierID(ctx)
	case invoiceemail.FieldTransactionID:
		return m.OldTransactionID(ctx)
	case invoiceemail.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case invoiceemail.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown InvoiceEmail field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceEmailMutation) SetField(name string, value ent.Value) error {
	switch name {
	case invoiceemail.FieldEmailID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailID(v)
		return nil
	case invoiceemail.FieldDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case invoiceemail.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case invoiceemail.FieldFrom:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFrom(v)
		return nil
	case invoiceemail.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case invoiceemail.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case invoiceemail.FieldSupplierID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierID(v)
		return nil
	case invoiceemail.FieldTransactionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransactionID(v)
		return nil
	case invoiceemail.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case invoiceemail.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown InvoiceEmail field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InvoiceEmailMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InvoiceEmailMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceEmailMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown InvoiceEmail numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InvoiceEmailMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(invoiceemail.FieldSubject) {
		fields = append(fields, invoiceemail.FieldSubject)
	}
	if m.FieldCleared(invoiceemail.FieldFrom) {
		fields = append(fields, invoiceemail.FieldFrom)
	}
	if m.FieldCleared(invoiceemail.FieldBody) {
		fields = append(fields, invoiceemail.FieldBody)
	}
	if m.FieldCleared(invoiceemail.FieldSupplierID) {
		fields = append(fields, invoiceemail.FieldSupplierID)
	}
	if m.FieldCleared(invoiceemail.FieldTransactionID) {
		fields = append(fields, invoiceemail.FieldTransactionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InvoiceEmailMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InvoiceEmailMutation) ClearField(name string) error {
	switch name {
	case invoiceemail.FieldSubject:
		m.ClearSubject()
		return nil
	case invoiceemail.FieldFrom:
		m.ClearFrom()
		return nil
	case invoiceemail.FieldBody:
		m.ClearBody()
		return nil
	case invoiceemail.FieldSupplierID:
		m.ClearSupplierID()
		return nil
	case invoiceemail.FieldTransactionID:
		m.ClearTransactionID()
		return nil
	}
	return fmt.Errorf("unknown InvoiceEmail nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InvoiceEmailMutation) ResetField(name string) error {
	switch name {
	case invoiceemail.FieldEmailID:
		m.ResetEmailID()
		return nil
	case invoiceemail.FieldDate:
		m.ResetDate()
		return nil
	case invoiceemail.FieldSubject:
		m.ResetSubject()
		return nil
	case invoiceemail.FieldFrom:
		m.ResetFrom()
		return nil
	case invoiceemail.FieldBody:
		m.ResetBody()
		return nil
	case invoiceemail.FieldStatus:
		m.ResetStatus()
		return nil
	case invoiceemail.FieldSupplierID:
		m.ResetSupplierID()
		return nil
	case invoiceemail.FieldTransactionID:
		m.ResetTransactionID()
		return nil
	case invoiceemail.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case invoiceemail.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown InvoiceEmail field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InvoiceEmailMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.supplier != nil {
		edges = append(edges, invoiceemail.EdgeSupplier)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InvoiceEmailMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case invoiceemail.EdgeSupplier:
		if id := m.supplier; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InvoiceEmailMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InvoiceEmailMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InvoiceEmailMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsupplier {
		edges = append(edges, invoiceemail.EdgeSupplier)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InvoiceEmailMutation) EdgeCleared(name string) bool {
	switch name {
	case invoiceemail.EdgeSupplier:
		return m.clearedsupplier
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InvoiceEmailMutation) ClearEdge(name string) error {
	switch name {
	case invoiceemail.EdgeSupplier:
		m.ClearSupplier()
		return nil
	}
	return fmt.Errorf("unknown InvoiceEmail unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InvoiceEmailMutation) ResetEdge(name string) error {
	switch name {
	case invoiceemail.EdgeSupplier:
		m.ResetSupplier()
		return nil
	}
	return fmt.Errorf("unknown InvoiceEmail edge %s", name)
}

// ProductMutation represents an operation that mutates the Product nodes in the graph.
type ProductMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	base_product_name        *string
	variant_name             *string
	name                     *string
	sku                      *string
	price                    *float64
	addprice                 *float64
	stock                    *int
	addstock                 *int
	average_cost             *float64
	addaverage_cost          *float64
	total_spent              *float64
	addtotal_spent           *float64
	total_purchased          *float64
	addtotal_purchased       *float64
	cost_history             *[]entity.CostHistoryEntry
	appendcost_history       []entity.CostHistoryEntry
	platform_syncs           *[]entity.PlatformSync
	appendplatform_syncs     []entity.PlatformSync
	supplier_aliases         *[]entity.SupplierAlias
	appendsupplier_aliases   []entity.SupplierAlias
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	inventory_changes        map[uuid.UUID]struct{}
	removedinventory_changes map[uuid.UUID]struct{}
	clearedinventory_changes bool
	done                     bool
	oldValue                 func(context.Context) (*Product, error)
	predicates               []predicate.Product
}

var _ ent.Mutation = (*ProductMutation)(nil)

// productOption allows management of the mutation configuration using functional options.
type productOption func(*ProductMutation)

// newProductMutation creates new mutation for the Product entity.
func newProductMutation(c config, op Op, opts ...productOption) *ProductMutation {
	m := &ProductMutation{
		config:        c,
		op:            op,
		typ:           TypeProduct,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProductID sets the ID field of the mutation.
func withProductID(id uuid.UUID) productOption {
	return func(m *ProductMutation) {
		var (
			err   error
			once  sync.Once
			value *Product
		)
		m.oldValue = func(ctx context.Context) (*Product, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Product.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProduct sets the old Product of the mutation.
func withProduct(node *Product) productOption {
	return func(m *ProductMutation) {
		m.oldValue = func(context.Context) (*Product, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProductMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProductMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Product entities.
func (m *ProductMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProductMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProductMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Product.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBaseProductName sets the "base_product_name" field.
func (m *ProductMutation) SetBaseProductName(s string) {
	m.base_product_name = &s
}

// BaseProductName returns the value of the "base_product_name" field in the mutation.
func (m *ProductMutation) BaseProductName() (r string, exists bool) {
	v := m.base_product_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBaseProductName returns the old "base_product_name" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldBaseProductName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaseProductName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaseProductName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaseProductName: %w", err)
	}
	return oldValue.BaseProductName, nil
}

// ResetBaseProductName resets all changes to the "base_product_name" field.
func (m *ProductMutation) ResetBaseProductName() {
	m.base_product_name = nil
}

// SetVariantName sets the "variant_name" field.
func (m *ProductMutation) SetVariantName(s string) {
	m.variant_name = &s
}

// VariantName returns the value of the "variant_name" field in the mutation.
func (m *ProductMutation) VariantName() (r string, exists bool) {
	v := m.variant_name
	if v == nil {
		return
	}
	return *v, true
}

// OldVariantName returns the old "variant_name" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldVariantName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVariantName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVariantName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVariantName: %w", err)
	}
	return oldValue.VariantName, nil
}

// ResetVariantName resets all changes to the "variant_name" field.
func (m *ProductMutation) ResetVariantName() {
	m.variant_name = nil
}

// SetName sets the "name" field.
func (m *ProductMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProductMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProductMutation) ResetName() {
	m.name = nil
}

// SetSku sets the "sku" field.
func (m *ProductMutation) SetSku(s string) {
	m.sku = &s
}

// Sku returns the value of the "sku" field in the mutation.
func (m *ProductMutation) Sku() (r string, exists bool) {
	v := m.sku
	if v == nil {
		return
	}
	return *v, true
}

// OldSku returns the old "sku" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldSku(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSku is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSku requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSku: %w", err)
	}
	return oldValue.Sku, nil
}

// ResetSku resets all changes to the "sku" field.
func (m *ProductMutation) ResetSku() {
	m.sku = nil
}

// SetPrice sets the "price" field.
func (m *ProductMutation) SetPrice(f float64) {
	m.price = &f
	m.addprice = nil
}

// Price returns the value of the "price" field in the mutation.
func (m *ProductMutation) Price() (r float64, exists bool) {
	v := m.price
	if v == nil {
		return
	}
	return *v, true
}

// OldPrice returns the old "price" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldPrice(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrice: %w", err)
	}
	return oldValue.Price, nil
}

// AddPrice adds f to the "price" field.
func (m *ProductMutation) AddPrice(f float64) {
	if m.addprice != nil {
		*m.addprice += f
	} else {
		m.addprice = &f
	}
}

// AddedPrice returns the value that was added to the "price" field in this mutation.
func (m *ProductMutation) AddedPrice() (r float64, exists bool) {
	v := m.addprice
	if v == nil {
		return
	}
	return *v, true
}

// ResetPrice resets all changes to the "price" field.
func (m *ProductMutation) ResetPrice() {
	m.price = nil
	m.addprice = nil
}

// SetStock sets the "stock" field.
func (m *ProductMutation) SetStock(i int) {
	m.stock = &i
	m.addstock = nil
}

// Stock returns the value of the "stock" field in the mutation.
func (m *ProductMutation) Stock() (r int, exists bool) {
	v := m.stock
	if v == nil {
		return
	}
	return *v, true
}

// OldStock returns the old "stock" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldStock(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStock is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStock requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStock: %w", err)
	}
	return oldValue.Stock, nil
}

// AddStock adds i to the "stock" field.
func (m *ProductMutation) AddStock(i int) {
	if m.addstock != nil {
		*m.addstock += i
	} else {
		m.addstock = &i
	}
}

// AddedStock returns the value that was added to the "stock" field in this mutation.
func (m *ProductMutation) AddedStock() (r int, exists bool) {
	v := m.addstock
	if v == nil {
		return
	}
	return *v, true
}

// ResetStock resets all changes to the "stock" field.
func (m *ProductMutation) ResetStock() {
	m.stock = nil
	m.addstock = nil
}

// SetAverageCost sets the "average_cost" field.
func (m *ProductMutation) SetAverageCost(f float64) {
	m.average_cost = &f
	m.addaverage_cost = nil
}

// AverageCost returns the value of the "average_cost" field in the mutation.
func (m *ProductMutation) AverageCost() (r float64, exists bool) {
	v := m.average_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldAverageCost returns the old "average_cost" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldAverageCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAverageCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAverageCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAverageCost: %w", err)
	}
	return oldValue.AverageCost, nil
}

// AddAverageCost adds f to the "average_cost" field.
func (m *ProductMutation) AddAverageCost(f float64) {
	if m.addaverage_cost != nil {
		*m.addaverage_cost += f
	} else {
		m.addaverage_cost = &f
	}
}

// AddedAverageCost returns the value that was added to the "average_cost" field in this mutation.
func (m *ProductMutation) AddedAverageCost() (r float64, exists bool) {
	v := m.addaverage_cost
	if v == nil {
		return
	}
	return *v, true
}

// ResetAverageCost resets all changes to the "average_cost" field.
func (m *ProductMutation) ResetAverageCost() {
	m.average_cost = nil
	m.addaverage_cost = nil
}

// SetTotalSpent sets the "total_spent" field.
func (m *ProductMutation) SetTotalSpent(f float64) {
	m.total_spent = &f
	m.addtotal_spent = nil
}

// TotalSpent returns the value of the "total_spent" field in the mutation.
func (m *ProductMutation) TotalSpent() (r float64, exists bool) {
	v := m.total_spent
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalSpent returns the old "total_spent" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldTotalSpent(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalSpent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalSpent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalSpent: %w", err)
	}
	return oldValue.TotalSpent, nil
}

// AddTotalSpent adds f to the "total_spent" field.
func (m *ProductMutation) AddTotalSpent(f float64) {
	if m.addtotal_spent != nil {
		*m.addtotal_spent += f
	} else {
		m.addtotal_spent = &f
	}
}

// AddedTotalSpent returns the value that was added to the "total_spent" field in this mutation.
func (m *ProductMutation) AddedTotalSpent() (r float64, exists bool) {
	v := m.addtotal_spent
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalSpent resets all changes to the "total_spent" field.
func (m *ProductMutation) ResetTotalSpent() {
	m.total_spent = nil
	m.addtotal_spent = nil
}

// SetTotalPurchased sets the "total_purchased" field.
func (m *ProductMutation) SetTotalPurchased(f float64) {
	m.total_purchased = &f
	m.addtotal_purchased = nil
}

// TotalPurchased returns the value of the "total_purchased" field in the mutation.
func (m *ProductMutation) TotalPurchased() (r float64, exists bool) {
	v := m.total_purchased
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalPurchased returns the old "total_purchased" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldTotalPurchased(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalPurchased is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalPurchased requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalPurchased: %w", err)
	}
	return oldValue.TotalPurchased, nil
}

// AddTotalPurchased adds f to the "total_purchased" field.
func (m *ProductMutation) AddTotalPurchased(f float64) {
	if m.addtotal_purchased != nil {
		*m.addtotal_purchased += f
	} else {
		m.addtotal_purchased = &f
	}
}

// AddedTotalPurchased returns the value that was added to the "total_purchased" field in this mutation.
func (m *ProductMutation) AddedTotalPurchased() (r float64, exists bool) {
	v := m.addtotal_purchased
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalPurchased resets all changes to the "total_purchased" field.
func (m *ProductMutation) ResetTotalPurchased() {
	m.total_purchased = nil
	m.addtotal_purchased = nil
}

// SetCostHistory sets the "cost_history" field.
func (m *ProductMutation) SetCostHistory(ehe []entity.CostHistoryEntry) {
	m.cost_history = &ehe
	m.appendcost_history = nil
}

// CostHistory returns the value of the "cost_history" field in the mutation.
func (m *ProductMutation) CostHistory() (r []entity.CostHistoryEntry, exists bool) {
	v := m.cost_history
	if v == nil {
		return
	}
	return *v, true
}

// OldCostHistory returns the old "cost_history" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldCostHistory(ctx context.Context) (v []entity.CostHistoryEntry, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostHistory: %w", err)
	}
	return oldValue.CostHistory, nil
}

// AppendCostHistory adds ehe to the "cost_history" field.
func (m *ProductMutation) AppendCostHistory(ehe []entity.CostHistoryEntry) {
	m.appendcost_history = append(m.appendcost_history, ehe...)
}

// AppendedCostHistory returns the list of values that were appended to the "cost_history" field in this mutation.
func (m *ProductMutation) AppendedCostHistory() ([]entity.CostHistoryEntry, bool) {
	if len(m.appendcost_history) == 0 {
		return nil, false
	}
	return m.appendcost_history, true
}

// ClearCostHistory clears the value of the "cost_history" field.
func (m *ProductMutation) ClearCostHistory() {
	m.cost_history = nil
	m.appendcost_history = nil
	m.clearedFields[product.FieldCostHistory] = struct{}{}
}

// CostHistoryCleared returns if the "cost_history" field was cleared in this mutation.
func (m *ProductMutation) CostHistoryCleared() bool {
	_, ok := m.clearedFields[product.FieldCostHistory]
	return ok
}

// ResetCostHistory resets all changes to the "cost_history" field.
func (m *ProductMutation) ResetCostHistory() {
	m.cost_history = nil
	m.appendcost_history = nil
	delete(m.clearedFields, product.FieldCostHistory)
}

// SetPlatformSyncs sets the "platform_syncs" field.
func (m *ProductMutation) SetPlatformSyncs(es []entity.PlatformSync) {
	m.platform_syncs = &es
	m.appendplatform_syncs = nil
}

// PlatformSyncs returns the value of the "platform_syncs" field in the mutation.
func (m *ProductMutation) PlatformSyncs() (r []entity.PlatformSync, exists bool) {
	v := m.platform_syncs
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatformSyncs returns the old "platform_syncs" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldPlatformSyncs(ctx context.Context) (v []entity.PlatformSync, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatformSyncs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatformSyncs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatformSyncs: %w", err)
	}
	return oldValue.PlatformSyncs, nil
}

// AppendPlatformSyncs adds es to the "platform_syncs" field.
func (m *ProductMutation) AppendPlatformSyncs(es []entity.PlatformSync) {
	m.appendplatform_syncs = append(m.appendplatform_syncs, es...)
}

// AppendedPlatformSyncs returns the list of values that were appended to the "platform_syncs" field in this mutation.
func (m *ProductMutation) AppendedPlatformSyncs() ([]entity.PlatformSync, bool) {
	if len(m.appendplatform_syncs) == 0 {
		return nil, false
	}
	return m.appendplatform_syncs, true
}

// ClearPlatformSyncs clears the value of the "platform_syncs" field.
func (m *ProductMutation) ClearPlatformSyncs() {
	m.platform_syncs = nil
	m.appendplatform_syncs = nil
	m.clearedFields[product.FieldPlatformSyncs] = struct{}{}
}

// PlatformSyncsCleared returns if the "platform_syncs" field was cleared in this mutation.
func (m *ProductMutation) PlatformSyncsCleared() bool {
	_, ok := m.clearedFields[product.FieldPlatformSyncs]
	return ok
}

// ResetPlatformSyncs resets all changes to the "platform_syncs" field.
func (m *ProductMutation) ResetPlatformSyncs() {
	m.platform_syncs = nil
	m.appendplatform_syncs = nil
	delete(m.clearedFields, product.FieldPlatformSyncs)
}

// SetSupplierAliases sets the "supplier_aliases" field.
func (m *ProductMutation) SetSupplierAliases(ea []entity.SupplierAlias) {
	m.supplier_aliases = &ea
	m.appendsupplier_aliases = nil
}

// SupplierAliases returns the value of the "supplier_aliases" field in the mutation.
func (m *ProductMutation) SupplierAliases() (r []entity.SupplierAlias, exists bool) {
	v := m.supplier_aliases
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierAliases returns the old "supplier_aliases" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldSupplierAliases(ctx context.Context) (v []entity.SupplierAlias, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierAliases is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierAliases requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierAliases: %w", err)
	}
	return oldValue.SupplierAliases, nil
}

// AppendSupplierAliases adds ea to the "supplier_aliases" field.
func (m *ProductMutation) AppendSupplierAliases(ea []entity.SupplierAlias) {
	m.appendsupplier_aliases = append(m.appendsupplier_aliases, ea...)
}

// AppendedSupplierAliases returns the list of values that were appended to the "supplier_aliases" field in this mutation.
func (m *ProductMutation) AppendedSupplierAliases() ([]entity.SupplierAlias, bool) {
	if len(m.appendsupplier_aliases) == 0 {
		return nil, false
	}
	return m.appendsupplier_aliases, true
}

// ClearSupplierAliases clears the value of the "supplier_aliases" field.
func (m *ProductMutation) ClearSupplierAliases() {
	m.supplier_aliases = nil
	m.appendsupplier_aliases = nil
	m.clearedFields[product.FieldSupplierAliases] = struct{}{}
}

// SupplierAliasesCleared returns if the "supplier_aliases" field was cleared in this mutation.
func (m *ProductMutation) SupplierAliasesCleared() bool {
	_, ok := m.clearedFields[product.FieldSupplierAliases]
	return ok
}

// ResetSupplierAliases resets all changes to the "supplier_aliases" field.
func (m *ProductMutation) ResetSupplierAliases() {
	m.supplier_aliases = nil
	m.appendsupplier_aliases = nil
	delete(m.clearedFields, product.FieldSupplierAliases)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProductMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProductMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProductMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProductMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProductMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProductMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddInventoryChangeIDs adds the "inventory_changes" edge to the InventoryChange entity by ids.
func (m *ProductMutation) AddInventoryChangeIDs(ids ...uuid.UUID) {
	if m.inventory_changes == nil {
		m.inventory_changes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.inventory_changes[ids[i]] = struct{}{}
	}
}

// ClearInventoryChanges clears the "inventory_changes" edge to the InventoryChange entity.
func (m *ProductMutation) ClearInventoryChanges() {
	m.clearedinventory_changes = true
}

// InventoryChangesCleared reports if the "inventory_changes" edge to the InventoryChange entity was cleared.
func (m *ProductMutation) InventoryChangesCleared() bool {
	return m.clearedinventory_changes
}

// RemoveInventoryChangeIDs removes the "inventory_changes" edge to the InventoryChange entity by IDs.
func (m *ProductMutation) RemoveInventoryChangeIDs(ids ...uuid.UUID) {
	if m.removedinventory_changes == nil {
		m.removedinventory_changes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.inventory_changes, ids[i])
		m.removedinventory_changes[ids[i]] = struct{}{}
	}
}

// RemovedInventoryChanges returns the removed IDs of the "inventory_changes" edge to the InventoryChange entity.
func (m *ProductMutation) RemovedInventoryChangesIDs() (ids []uuid.UUID) {
	for id := range m.removedinventory_changes {
		ids = append(ids, id)
	}
	return
}

// InventoryChangesIDs returns the "inventory_changes" edge IDs in the mutation.
func (m *ProductMutation) InventoryChangesIDs() (ids []uuid.UUID) {
	for id := range m.inventory_changes {
		ids = append(ids, id)
	}
	return
}

// ResetInventoryChanges resets all changes to the "inventory_changes" edge.
func (m *ProductMutation) ResetInventoryChanges() {
	m.inventory_changes = nil
	m.clearedinventory_changes = false
	m.removedinventory_changes = nil
}

// Where appends a list predicates to the ProductMutation builder.
func (m *ProductMutation) Where(ps ...predicate.Product) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProductMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProductMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Product, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProductMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProductMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Product).
func (m *ProductMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProductMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.base_product_name != nil {
		fields = append(fields, product.FieldBaseProductName)
	}
	if m.variant_name != nil {
		fields = append(fields, product.FieldVariantName)
	}
	if m.name != nil {
		fields = append(fields, product.FieldName)
	}
	if m.sku != nil {
		fields = append(fields, product.FieldSku)
	}
	if m.price != nil {
		fields = append(fields, product.FieldPrice)
	}
	if m.stock != nil {
		fields = append(fields, product.FieldStock)
	}
	if m.average_cost != nil {
		fields = append(fields, product.FieldAverageCost)
	}
	if m.total_spent != nil {
		fields = append(fields, product.FieldTotalSpent)
	}
	if m.total_purchased != nil {
		fields = append(fields, product.FieldTotalPurchased)
	}
	if m.cost_history != nil {
		fields = append(fields, product.FieldCostHistory)
	}
	if m.platform_syncs != nil {
		fields = append(fields, product.FieldPlatformSyncs)
	}
	if m.supplier_aliases != nil {
		fields = append(fields, product.FieldSupplierAliases)
	}
	if m.created_at != nil {
		fields = append(fields, product.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, product.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProductMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case product.FieldBaseProductName:
		return m.BaseProductName()
	case product.FieldVariantName:
		return m.VariantName()
	case product.FieldName:
		return m.Name()
	case product.FieldSku:
		return m.Sku()
	case product.FieldPrice:
		return m.Price()
	case product.FieldStock:
		return m.Stock()
	case product.FieldAverageCost:
		return m.AverageCost()
	case product.FieldTotalSpent:
		return m.TotalSpent()
	case product.FieldTotalPurchased:
		return m.TotalPurchased()
	case product.FieldCostHistory:
		return m.CostHistory()
	case product.FieldPlatformSyncs:
		return m.PlatformSyncs()
	case product.FieldSupplierAliases:
		return m.SupplierAliases()
	case product.FieldCreatedAt:
		return m.CreatedAt()
	case product.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProductMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case product.FieldBaseProductName:
		return m.OldBaseProductName(ctx)
	case product.FieldVariantName:
		return m.OldVariantName(ctx)
	case product.FieldName:
		return m.OldName(ctx)
	case product.FieldSku:
		return m.OldSku(ctx)
	case product.FieldPrice:
		return m.OldPrice(ctx)
	case product.FieldStock:
		return m.OldStock(ctx)
	case product.FieldAverageCost:
		return m.OldAverageCost(ctx)
	case product.FieldTotalSpent:
		return m.OldTotalSpent(ctx)
	case product.FieldTotalPurchased:
		return m.OldTotalPurchased(ctx)
	case product.FieldCostHistory:
		return m.OldCostHistory(ctx)
	case product.FieldPlatformSyncs:
		return m.OldPlatformSyncs(ctx)
	case product.FieldSupplierAliases:
		return m.OldSupplierAliases(ctx)
	case product.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case product.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Product field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProductMutation) SetField(name string, value ent.Value) error {
	switch name {
	case product.FieldBaseProductName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaseProductName(v)
		return nil
	case product.FieldVariantName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVariantName(v)
		return nil
	case product.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case product.FieldSku:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSku(v)
		return nil
	case product.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrice(v)
		return nil
	case product.FieldStock:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStock(v)
		return nil
	case product.FieldAverageCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAverageCost(v)
		return nil
	case product.FieldTotalSpent:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalSpent(v)
		return nil
	case product.FieldTotalPurchased:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalPurchased(v)
		return nil
	case product.FieldCostHistory:
		v, ok := value.([]entity.CostHistoryEntry)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostHistory(v)
		return nil
	case product.FieldPlatformSyncs:
		v, ok := value.([]entity.PlatformSync)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatformSyncs(v)
		return nil
	case product.FieldSupplierAliases:
		v, ok := value.([]entity.SupplierAlias)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierAliases(v)
		return nil
	case product.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case product.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Product field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProductMutation) AddedFields() []string {
	var fields []string
	if m.addprice != nil {
		fields = append(fields, product.FieldPrice)
	}
	if m.addstock != nil {
		fields = append(fields, product.FieldStock)
	}
	if m.addaverage_cost != nil {
		fields = append(fields, product.FieldAverageCost)
	}
	if m.addtotal_spent != nil {
		fields = append(fields, product.FieldTotalSpent)
	}
	if m.addtotal_purchased != nil {
		fields = append(fields, product.FieldTotalPurchased)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProductMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case product.FieldPrice:
		return m.AddedPrice()
	case product.FieldStock:
		return m.AddedStock()
	case product.FieldAverageCost:
		return m.AddedAverageCost()
	case product.FieldTotalSpent:
		return m.AddedTotalSpent()
	case product.FieldTotalPurchased:
		return m.AddedTotalPurchased()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProductMutation) AddField(name string, value ent.Value) error {
	switch name {
	case product.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrice(v)
		return nil
	case product.FieldStock:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStock(v)
		return nil
	case product.FieldAverageCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAverageCost(v)
		return nil
	case product.FieldTotalSpent:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalSpent(v)
		return nil
	case product.FieldTotalPurchased:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalPurchased(v)
		return nil
	}
	return fmt.Errorf("unknown Product numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProductMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(product.FieldCostHistory) {
		fields = append(fields, product.FieldCostHistory)
	}
	if m.FieldCleared(product.FieldPlatformSyncs) {
		fields = append(fields, product.FieldPlatformSyncs)
	}
	if m.FieldCleared(product.FieldSupplierAliases) {
		fields = append(fields, product.FieldSupplierAliases)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProductMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProductMutation) ClearField(name string) error {
	switch name {
	case product.FieldCostHistory:
		m.ClearCostHistory()
		return nil
	case product.FieldPlatformSyncs:
		m.ClearPlatformSyncs()
		return nil
	case product.FieldSupplierAliases:
		m.ClearSupplierAliases()
		return nil
	}
	return fmt.Errorf("unknown Product nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProductMutation) ResetField(name string) error {
	switch name {
	case product.FieldBaseProductName:
		m.ResetBaseProductName()
		return nil
	case product.FieldVariantName:
		m.ResetVariantName()
		return nil
	case product.FieldName:
		m.ResetName()
		return nil
	case product.FieldSku:
		m.ResetSku()
		return nil
	case product.FieldPrice:
		m.ResetPrice()
		return nil
	case product.FieldStock:
		m.ResetStock()
		return nil
	case product.FieldAverageCost:
		m.ResetAverageCost()
		return nil
	case product.FieldTotalSpent:
		m.ResetTotalSpent()
		return nil
	case product.FieldTotalPurchased:
		m.ResetTotalPurchased()
		return nil
	case product.FieldCostHistory:
		m.ResetCostHistory()
		return nil
	case product.FieldPlatformSyncs:
		m.ResetPlatformSyncs()
		return nil
	case product.FieldSupplierAliases:
		m.ResetSupplierAliases()
		return nil
	case product.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case product.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Product field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProductMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.inventory_changes != nil {
		edges = append(edges, product.EdgeInventoryChanges)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProductMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case product.EdgeInventoryChanges:
		ids := make([]ent.Value, 0, len(m.inventory_changes))
		for id := range m.inventory_changes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProductMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedinventory_changes != nil {
		edges = append(edges, product.EdgeInventoryChanges)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProductMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case product.EdgeInventoryChanges:
		ids := make([]ent.Value, 0, len(m.removedinventory_changes))
		for id := range m.removedinventory_changes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProductMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinventory_changes {
		edges = append(edges, product.EdgeInventoryChanges)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProductMutation) EdgeCleared(name string) bool {
	switch name {
	case product.EdgeInventoryChanges:
		return m.clearedinventory_changes
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProductMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Product unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProductMutation) ResetEdge(name string) error {
	switch name {
	case product.EdgeInventoryChanges:
		m.ResetInventoryChanges()
		return nil
	}
	return fmt.Errorf("unknown Product edge %s", name)
}

// SmartMappingMutation represents an operation that mutates the SmartMapping nodes in the graph.
type SmartMappingMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	mapping_type   *string
	source         *string
	target         *string
	target_id      *uuid.UUID
	confidence     *int
	addconfidence  *int
	usage_count    *int
	addusage_count *int
	score          *int
	addscore       *int
	metadata       *map[string]string
	last_used      *time.Time
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*SmartMapping, error)
	predicates     []predicate.SmartMapping
}

var _ ent.Mutation = (*SmartMappingMutation)(nil)

// smartmappingOption allows management of the mutation configuration using functional options.
type smartmappingOption func(*SmartMappingMutation)

// newSmartMappingMutation creates new mutation for the SmartMapping entity.
func newSmartMappingMutation(c config, op Op, opts ...smartmappingOption) *SmartMappingMutation {
	m := &SmartMappingMutation{
		config:        c,
		op:            op,
		typ:           TypeSmartMapping,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSmartMappingID sets the ID field of the mutation.
func withSmartMappingID(id uuid.UUID) smartmappingOption {
	return func(m *SmartMappingMutation) {
		var (
			err   error
			once  sync.Once
			value *SmartMapping
		)
		m.oldValue = func(ctx context.Context) (*SmartMapping, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SmartMapping.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSmartMapping sets the old SmartMapping of the mutation.
func withSmartMapping(node *SmartMapping) smartmappingOption {
	return func(m *SmartMappingMutation) {
		m.oldValue = func(context.Context) (*SmartMapping, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SmartMappingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SmartMappingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SmartMapping entities.
func (m *SmartMappingMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SmartMappingMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SmartMappingMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SmartMapping.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMappingType sets the "mapping_type" field.
func (m *SmartMappingMutation) SetMappingType(s string) {
	m.mapping_type = &s
}

// MappingType returns the value of the "mapping_type" field in the mutation.
func (m *SmartMappingMutation) MappingType() (r string, exists bool) {
	v := m.mapping_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMappingType returns the old "mapping_type" field's value of the SmartMapping entity.
// If the SmartMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SmartMappingMutation) OldMappingType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMappingType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMappingType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMappingType: %w", err)
	}
	return oldValue.MappingType, nil
}

// ResetMappingType resets all changes to the "mapping_type" field.
func (m *SmartMappingMutation) ResetMappingType() {
	m.mapping_type = nil
}

// SetSource sets the "source" field.
func (m *SmartMappingMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *SmartMappingMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the SmartMapping entity.
// If the SmartMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SmartMappingMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *SmartMappingMutation) ResetSource() {
	m.source = nil
}

// SetTarget sets the "target" field.
func (m *SmartMappingMutation) SetTarget(s string) {
	m.target = &s
}

// Target returns the value of the "target" field in the mutation.
func (m *SmartMappingMutation) Target() (r string, exists bool) {
	v := m.target
	if v == nil {
		return
	}
	return *v, true
}

// OldTarget returns the old "target" field's value of the SmartMapping entity.
// If the SmartMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SmartMappingMutation) OldTarget(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTarget is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTarget requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTarget: %w", err)
	}
	return oldValue.Target, nil
}

// ResetTarget resets all changes to the "target" field.
func (m *SmartMappingMutation) ResetTarget() {
	m.target = nil
}

// SetTargetID sets the "target_id" field.
func (m *SmartMappingMutation) SetTargetID(u uuid.UUID) {
	m.target_id = &u
}

// TargetID returns the value of the "target_id" field in the mutation.
func (m *SmartMappingMutation) TargetID() (r uuid.UUID, exists bool) {
	v := m.target_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetID returns the old "target_id" field's value of the SmartMapping entity.
// If the SmartMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SmartMappingMutation) OldTargetID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetID: %w", err)
	}
	return oldValue.TargetID, nil
}

// ClearTargetID clears the value of the "target_id" field.
func (m *SmartMappingMutation) ClearTargetID() {
	m.target_id = nil
	m.clearedFields[smartmapping.FieldTargetID] = struct{}{}
}

// TargetIDCleared returns if the "target_id" field was cleared in this mutation.
func (m *SmartMappingMutation) TargetIDCleared() bool {
	_, ok := m.clearedFields[smartmapping.FieldTargetID]
	return ok
}

// ResetTargetID resets all changes to the "target_id" field.
func (m *SmartMappingMutation) ResetTargetID() {
	m.target_id = nil
	delete(m.clearedFields, smartmapping.FieldTargetID)
}

// SetConfidence sets the "confidence" field.
func (m *SmartMappingMutation) SetConfidence(i int) {
	m.confidence = &i
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *SmartMappingMutation) Confidence() (r int, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the SmartMapping entity.
// If the SmartMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SmartMappingMutation) OldConfidence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds i to the "confidence" field.
func (m *SmartMappingMutation) AddConfidence(i int) {
	if m.addconfidence != nil {
		*m.addconfidence += i
	} else {
		m.addconfidence = &i
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *SmartMappingMutation) AddedConfidence() (r int, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *SmartMappingMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetUsageCount sets the "usage_count" field.
func (m *SmartMappingMutation) SetUsageCount(i int) {
	m.usage_count = &i
	m.addusage_count = nil
}

// UsageCount returns the value of the "usage_count" field in the mutation.
func (m *SmartMappingMutation) UsageCount() (r int, exists bool) {
	v := m.usage_count
	if v == nil {
		return
	}
	return *v, true
}

// OldUsageCount returns the old "usage_count" field's value of the SmartMapping entity.
// If the SmartMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SmartMappingMutation) OldUsageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsageCount: %w", err)
	}
	return oldValue.UsageCount, nil
}

// AddUsageCount adds i to the "usage_count" field.
func (m *SmartMappingMutation) AddUsageCount(i int) {
	if m.addusage_count != nil {
		*m.addusage_count += i
	} else {
		m.addusage_count = &i
	}
}

// AddedUsageCount returns the value that was added to the "usage_count" field in this mutation.
func (m *SmartMappingMutation) AddedUsageCount() (r int, exists bool) {
	v := m.addusage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetUsageCount resets all changes to the "usage_count" field.
func (m *SmartMappingMutation) ResetUsageCount() {
	m.usage_count = nil
	m.addusage_count = nil
}

// SetScore sets the "score" field.
func (m *SmartMappingMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *SmartMappingMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the SmartMapping entity.
// If the SmartMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SmartMappingMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *SmartMappingMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *SmartMappingMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *SmartMappingMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetMetadata sets the "metadata" field.
func (m *SmartMappingMutation) SetMetadata(value map[string]string) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *SmartMappingMutation) Metadata() (r map[string]string, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the SmartMapping entity.
// If the SmartMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SmartMappingMutation) OldMetadata(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *SmartMappingMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[smartmapping.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *SmartMappingMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[smartmapping.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *SmartMappingMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, smartmapping.FieldMetadata)
}

// SetLastUsed sets the "last_used" field.
func (m *SmartMappingMutation) SetLastUsed(t time.Time) {
	m.last_used = &t
}

// LastUsed returns the value of the "last_used" field in the mutation.
func (m *SmartMappingMutation) LastUsed() (r time.Time, exists bool) {
	v := m.last_used
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUsed returns the old "last_used" field's value of the SmartMapping entity.
// If the SmartMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SmartMappingMutation) OldLastUsed(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUsed: %w", err)
	}
	return oldValue.LastUsed, nil
}

// ResetLastUsed resets all changes to the "last_used" field.
func (m *SmartMappingMutation) ResetLastUsed() {
	m.last_used = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SmartMappingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SmartMappingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SmartMapping entity.
// If the SmartMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SmartMappingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SmartMappingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SmartMappingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SmartMappingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SmartMapping entity.
// If the SmartMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SmartMappingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SmartMappingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SmartMappingMutation builder.
func (m *SmartMappingMutation) Where(ps ...predicate.SmartMapping) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SmartMappingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SmartMappingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SmartMapping, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SmartMappingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SmartMappingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SmartMapping).
func (m *SmartMappingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SmartMappingMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.mapping_type != nil {
		fields = append(fields, smartmapping.FieldMappingType)
	}
	if m.source != nil {
		fields = append(fields, smartmapping.FieldSource)
	}
	if m.target != nil {
		fields = append(fields, smartmapping.FieldTarget)
	}
	if m.target_id != nil {
		fields = append(fields, smartmapping.FieldTargetID)
	}
	if m.confidence != nil {
		fields = append(fields, smartmapping.FieldConfidence)
	}
	if m.usage_count != nil {
		fields = append(fields, smartmapping.FieldUsageCount)
	}
	if m.score != nil {
		fields = append(fields, smartmapping.FieldScore)
	}
	if m.metadata != nil {
		fields = append(fields, smartmapping.FieldMetadata)
	}
	if m.last_used != nil {
		fields = append(fields, smartmapping.FieldLastUsed)
	}
	if m.created_at != nil {
		fields = append(fields, smartmapping.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, smartmapping.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SmartMappingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case smartmapping.FieldMappingType:
		return m.MappingType()
	case smartmapping.FieldSource:
		return m.Source()
	case smartmapping.FieldTarget:
		return m.Target()
	case smartmapping.FieldTargetID:
		return m.TargetID()
	case smartmapping.FieldConfidence:
		return m.Confidence()
	case smartmapping.FieldUsageCount:
		return m.UsageCount()
	case smartmapping.FieldScore:
		return m.Score()
	case smartmapping.FieldMetadata:
		return m.Metadata()
	case smartmapping.FieldLastUsed:
		return m.LastUsed()
	case smartmapping.FieldCreatedAt:
		return m.CreatedAt()
	case smartmapping.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SmartMappingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case smartmapping.FieldMappingType:
		return m.OldMappingType(ctx)
	case smartmapping.FieldSource:
		return m.OldSource(ctx)
	case smartmapping.FieldTarget:
		return m.OldTarget(ctx)
	case smartmapping.FieldTargetID:
		return m.OldTargetID(ctx)
	case smartmapping.FieldConfidence:
		return m.OldConfidence(ctx)
	case smartmapping.FieldUsageCount:
		return m.OldUsageCount(ctx)
	case smartmapping.FieldScore:
		return m.OldScore(ctx)
	case smartmapping.FieldMetadata:
		return m.OldMetadata(ctx)
	case smartmapping.FieldLastUsed:
		return m.OldLastUsed(ctx)
	case smartmapping.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case smartmapping.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SmartMapping field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SmartMappingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case smartmapping.FieldMappingType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMappingType(v)
		return nil
	case smartmapping.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case smartmapping.FieldTarget:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTarget(v)
		return nil
	case smartmapping.FieldTargetID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetID(v)
		return nil
	case smartmapping.FieldConfidence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case smartmapping.FieldUsageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsageCount(v)
		return nil
	case smartmapping.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case smartmapping.FieldMetadata:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case smartmapping.FieldLastUsed:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUsed(v)
		return nil
	case smartmapping.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case smartmapping.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SmartMapping field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SmartMappingMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, smartmapping.FieldConfidence)
	}
	if m.addusage_count != nil {
		fields = append(fields, smartmapping.FieldUsageCount)
	}
	if m.addscore != nil {
		fields = append(fields, smartmapping.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SmartMappingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case smartmapping.FieldConfidence:
		return m.AddedConfidence()
	case smartmapping.FieldUsageCount:
		return m.AddedUsageCount()
	case smartmapping.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SmartMappingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case smartmapping.FieldConfidence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case smartmapping.FieldUsageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUsageCount(v)
		return nil
	case smartmapping.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown SmartMapping numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SmartMappingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(smartmapping.FieldTargetID) {
		fields = append(fields, smartmapping.FieldTargetID)
	}
	if m.FieldCleared(smartmapping.FieldMetadata) {
		fields = append(fields, smartmapping.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SmartMappingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SmartMappingMutation) ClearField(name string) error {
	switch name {
	case smartmapping.FieldTargetID:
		m.ClearTargetID()
		return nil
	case smartmapping.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown SmartMapping nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SmartMappingMutation) ResetField(name string) error {
	switch name {
	case smartmapping.FieldMappingType:
		m.ResetMappingType()
		return nil
	case smartmapping.FieldSource:
		m.ResetSource()
		return nil
	case smartmapping.FieldTarget:
		m.ResetTarget()
		return nil
	case smartmapping.FieldTargetID:
		m.ResetTargetID()
		return nil
	case smartmapping.FieldConfidence:
		m.ResetConfidence()
		return nil
	case smartmapping.FieldUsageCount:
		m.ResetUsageCount()
		return nil
	case smartmapping.FieldScore:
		m.ResetScore()
		return nil
	case smartmapping.FieldMetadata:
		m.ResetMetadata()
		return nil
	case smartmapping.FieldLastUsed:
		m.ResetLastUsed()
		return nil
	case smartmapping.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case smartmapping.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SmartMapping field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SmartMappingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SmartMappingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SmartMappingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SmartMappingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SmartMappingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SmartMappingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SmartMappingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SmartMapping unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SmartMappingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SmartMapping edge %s", name)
}

// SupplierMutation represents an operation that mutates the Supplier nodes in the graph.
type SupplierMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	name                   *string
	aliases                *[]string
	appendaliases          []string
	invoice_email          *string
	invoice_subject        *string
	sku_prefix             *string
	parsing_config         *entity.EmailParsingConfig
	training_samples       *[]entity.TrainingSample
	appendtraining_samples []entity.TrainingSample
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	emails                 map[uuid.UUID]struct{}
	removedemails          map[uuid.UUID]struct{}
	clearedemails          bool
	transactions           map[uuid.UUID]struct{}
	removedtransactions    map[uuid.UUID]struct{}
	clearedtransactions    bool
	done                   bool
	oldValue               func(context.Context) (*Supplier, error)
	predicates             []predicate.Supplier
}

var _ ent.Mutation = (*SupplierMutation)(nil)

// supplierOption allows management of the mutation configuration using functional options.
type supplierOption func(*SupplierMutation)

// newSupplierMutation creates new mutation for the Supplier entity.
func newSupplierMutation(c config, op Op, opts ...supplierOption) *SupplierMutation {
	m := &SupplierMutation{
		config:        c,
		op:            op,
		typ:           TypeSupplier,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSupplierID sets the ID field of the mutation.
func withSupplierID(id uuid.UUID) supplierOption {
	return func(m *SupplierMutation) {
		var (
			err   error
			once  sync.Once
			value *Supplier
		)
		m.oldValue = func(ctx context.Context) (*Supplier, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Supplier.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSupplier sets the old Supplier of the mutation.
func withSupplier(node *Supplier) supplierOption {
	return func(m *SupplierMutation) {
		m.oldValue = func(context.Context) (*Supplier, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SupplierMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SupplierMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Supplier entities.
func (m *SupplierMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SupplierMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SupplierMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Supplier.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *SupplierMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SupplierMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Supplier entity.
// If the Supplier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SupplierMutation) ResetName() {
	m.name = nil
}

// SetAliases sets the "aliases" field.
func (m *SupplierMutation) SetAliases(s []string) {
	m.aliases = &s
	m.appendaliases = nil
}

// Aliases returns the value of the "aliases" field in the mutation.
func (m *SupplierMutation) Aliases() (r []string, exists bool) {
	v := m.aliases
	if v == nil {
		return
	}
	return *v, true
}

// OldAliases returns the old "aliases" field's value of the Supplier entity.
// If the Supplier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierMutation) OldAliases(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAliases is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAliases requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAliases: %w", err)
	}
	return oldValue.Aliases, nil
}

// AppendAliases adds s to the "aliases" field.
func (m *SupplierMutation) AppendAliases(s []string) {
	m.appendaliases = append(m.appendaliases, s...)
}

// AppendedAliases returns the list of values that were appended to the "aliases" field in this mutation.
func (m *SupplierMutation) AppendedAliases() ([]string, bool) {
	if len(m.appendaliases) == 0 {
		return nil, false
	}
	return m.appendaliases, true
}

// ClearAliases clears the value of the "aliases" field.
func (m *SupplierMutation) ClearAliases() {
	m.aliases = nil
	m.appendaliases = nil
	m.clearedFields[supplier.FieldAliases] = struct{}{}
}

// AliasesCleared returns if the "aliases" field was cleared in this mutation.
func (m *SupplierMutation) AliasesCleared() bool {
	_, ok := m.clearedFields[supplier.FieldAliases]
	return ok
}

// ResetAliases resets all changes to the "aliases" field.
func (m *SupplierMutation) ResetAliases() {
	m.aliases = nil
	m.appendaliases = nil
	delete(m.clearedFields, supplier.FieldAliases)
}

// SetInvoiceEmail sets the "invoice_email" field.
func (m *SupplierMutation) SetInvoiceEmail(s string) {
	m.invoice_email = &s
}

// InvoiceEmail returns the value of the "invoice_email" field in the mutation.
func (m *SupplierMutation) InvoiceEmail() (r string, exists bool) {
	v := m.invoice_email
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceEmail returns the old "invoice_email" field's value of the Supplier entity.
// If the Supplier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierMutation) OldInvoiceEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceEmail: %w", err)
	}
	return oldValue.InvoiceEmail, nil
}

// ClearInvoiceEmail clears the value of the "invoice_email" field.
func (m *SupplierMutation) ClearInvoiceEmail() {
	m.invoice_email = nil
	m.clearedFields[supplier.FieldInvoiceEmail] = struct{}{}
}

// InvoiceEmailCleared returns if the "invoice_email" field was cleared in this mutation.
func (m *SupplierMutation) InvoiceEmailCleared() bool {
	_, ok := m.clearedFields[supplier.FieldInvoiceEmail]
	return ok
}

// ResetInvoiceEmail resets all changes to the "invoice_email" field.
func (m *SupplierMutation) ResetInvoiceEmail() {
	m.invoice_email = nil
	delete(m.clearedFields, supplier.FieldInvoiceEmail)
}

// SetInvoiceSubject sets the "invoice_subject" field.
func (m *SupplierMutation) SetInvoiceSubject(s string) {
	m.invoice_subject = &s
}

// InvoiceSubject returns the value of the "invoice_subject" field in the mutation.
func (m *SupplierMutation) InvoiceSubject() (r string, exists bool) {
	v := m.invoice_subject
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceSubject returns the old "invoice_subject" field's value of the Supplier entity.
// If the Supplier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierMutation) OldInvoiceSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceSubject: %w", err)
	}
	return oldValue.InvoiceSubject, nil
}

// ClearInvoiceSubject clears the value of the "invoice_subject" field.
func (m *SupplierMutation) ClearInvoiceSubject() {
	m.invoice_subject = nil
	m.clearedFields[supplier.FieldInvoiceSubject] = struct{}{}
}

// InvoiceSubjectCleared returns if the "invoice_subject" field was cleared in this mutation.
func (m *SupplierMutation) InvoiceSubjectCleared() bool {
	_, ok := m.clearedFields[supplier.FieldInvoiceSubject]
	return ok
}

// ResetInvoiceSubject resets all changes to the "invoice_subject" field.
func (m *SupplierMutation) ResetInvoiceSubject() {
	m.invoice_subject = nil
	delete(m.clearedFields, supplier.FieldInvoiceSubject)
}

// SetSkuPrefix sets the "sku_prefix" field.
func (m *SupplierMutation) SetSkuPrefix(s string) {
	m.sku_prefix = &s
}

// SkuPrefix returns the value of the "sku_prefix" field in the mutation.
func (m *SupplierMutation) SkuPrefix() (r string, exists bool) {
	v := m.sku_prefix
	if v == nil {
		return
	}
	return *v, true
}

// OldSkuPrefix returns the old "sku_prefix" field's value of the Supplier entity.
// If the Supplier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierMutation) OldSkuPrefix(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkuPrefix is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkuPrefix requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkuPrefix: %w", err)
	}
	return oldValue.SkuPrefix, nil
}

// ClearSkuPrefix clears the value of the "sku_prefix" field.
func (m *SupplierMutation) ClearSkuPrefix() {
	m.sku_prefix = nil
	m.clearedFields[supplier.FieldSkuPrefix] = struct{}{}
}

// SkuPrefixCleared returns if the "sku_prefix" field was cleared in this mutation.
func (m *SupplierMutation) SkuPrefixCleared() bool {
	_, ok := m.clearedFields[supplier.FieldSkuPrefix]
	return ok
}

// ResetSkuPrefix resets all changes to the "sku_prefix" field.
func (m *SupplierMutation) ResetSkuPrefix() {
	m.sku_prefix = nil
	delete(m.clearedFields, supplier.FieldSkuPrefix)
}

// SetParsingConfig sets the "parsing_config" field.
func (m *SupplierMutation) SetParsingConfig(epc entity.EmailParsingConfig) {
	m.parsing_config = &epc
}

// ParsingConfig returns the value of the "parsing_config" field in the mutation.
func (m *SupplierMutation) ParsingConfig() (r entity.EmailParsingConfig, exists bool) {
	v := m.parsing_config
	if v == nil {
		return
	}
	return *v, true
}

// OldParsingConfig returns the old "parsing_config" field's value of the Supplier entity.
// If the Supplier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierMutation) OldParsingConfig(ctx context.Context) (v entity.EmailParsingConfig, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParsingConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParsingConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParsingConfig: %w", err)
	}
	return oldValue.ParsingConfig, nil
}

// ClearParsingConfig clears the value of the "parsing_config" field.
func (m *SupplierMutation) ClearParsingConfig() {
	m.parsing_config = nil
	m.clearedFields[supplier.FieldParsingConfig] = struct{}{}
}

// ParsingConfigCleared returns if the "parsing_config" field was cleared in this mutation.
func (m *SupplierMutation) ParsingConfigCleared() bool {
	_, ok := m.clearedFields[supplier.FieldParsingConfig]
	return ok
}

// ResetParsingConfig resets all changes to the "parsing_config" field.
func (m *SupplierMutation) ResetParsingConfig() {
	m.parsing_config = nil
	delete(m.clearedFields, supplier.FieldParsingConfig)
}

// SetTrainingSamples sets the "training_samples" field.
func (m *SupplierMutation) SetTrainingSamples(es []entity.TrainingSample) {
	m.training_samples = &es
	m.appendtraining_samples = nil
}

// TrainingSamples returns the value of the "training_samples" field in the mutation.
func (m *SupplierMutation) TrainingSamples() (r []entity.TrainingSample, exists bool) {
	v := m.training_samples
	if v == nil {
		return
	}
	return *v, true
}

// OldTrainingSamples returns the old "training_samples" field's value of the Supplier entity.
// If the Supplier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierMutation) OldTrainingSamples(ctx context.Context) (v []entity.TrainingSample, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrainingSamples is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrainingSamples requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrainingSamples: %w", err)
	}
	return oldValue.TrainingSamples, nil
}

// AppendTrainingSamples adds es to the "training_samples" field.
func (m *SupplierMutation) AppendTrainingSamples(es []entity.TrainingSample) {
	m.appendtraining_samples = append(m.appendtraining_samples, es...)
}

// AppendedTrainingSamples returns the list of values that were appended to the "training_samples" field in this mutation.
func (m *SupplierMutation) AppendedTrainingSamples() ([]entity.TrainingSample, bool) {
	if len(m.appendtraining_samples) == 0 {
		return nil, false
	}
	return m.appendtraining_samples, true
}

// ClearTrainingSamples clears the value of the "training_samples" field.
func (m *SupplierMutation) ClearTrainingSamples() {
	m.training_samples = nil
	m.appendtraining_samples = nil
	m.clearedFields[supplier.FieldTrainingSamples] = struct{}{}
}

// TrainingSamplesCleared returns if the "training_samples" field was cleared in this mutation.
func (m *SupplierMutation) TrainingSamplesCleared() bool {
	_, ok := m.clearedFields[supplier.FieldTrainingSamples]
	return ok
}

// ResetTrainingSamples resets all changes to the "training_samples" field.
func (m *SupplierMutation) ResetTrainingSamples() {
	m.training_samples = nil
	m.appendtraining_samples = nil
	delete(m.clearedFields, supplier.FieldTrainingSamples)
}

// SetCreatedAt sets the "created_at" field.
func (m *SupplierMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SupplierMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Supplier entity.
// If the Supplier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SupplierMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SupplierMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SupplierMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Supplier entity.
// If the Supplier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SupplierMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddEmailIDs adds the "emails" edge to the InvoiceEmail entity by ids.
func (m *SupplierMutation) AddEmailIDs(ids ...uuid.UUID) {
	if m.emails == nil {
		m.emails = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.emails[ids[i]] = struct{}{}
	}
}

// ClearEmails clears the "emails" edge to the InvoiceEmail entity.
func (m *SupplierMutation) ClearEmails() {
	m.clearedemails = true
}

// EmailsCleared reports if the "emails" edge to the InvoiceEmail entity was cleared.
func (m *SupplierMutation) EmailsCleared() bool {
	return m.clearedemails
}

// RemoveEmailIDs removes the "emails" edge to the InvoiceEmail entity by IDs.
func (m *SupplierMutation) RemoveEmailIDs(ids ...uuid.UUID) {
	if m.removedemails == nil {
		m.removedemails = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.emails, ids[i])
		m.removedemails[ids[i]] = struct{}{}
	}
}

// RemovedEmails returns the removed IDs of the "emails" edge to the InvoiceEmail entity.
func (m *SupplierMutation) RemovedEmailsIDs() (ids []uuid.UUID) {
	for id := range m.removedemails {
		ids = append(ids, id)
	}
	return
}

// EmailsIDs returns the "emails" edge IDs in the mutation.
func (m *SupplierMutation) EmailsIDs() (ids []uuid.UUID) {
	for id := range m.emails {
		ids = append(ids, id)
	}
	return
}

// ResetEmails resets all changes to the "emails" edge.
func (m *SupplierMutation) ResetEmails() {
	m.emails = nil
	m.clearedemails = false
	m.removedemails = nil
}

// AddTransactionIDs adds the "transactions" edge to the Transaction entity by ids.
func (m *SupplierMutation) AddTransactionIDs(ids ...uuid.UUID) {
	if m.transactions == nil {
		m.transactions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.transactions[ids[i]] = struct{}{}
	}
}

// ClearTransactions clears the "transactions" edge to the Transaction entity.
func (m *SupplierMutation) ClearTransactions() {
	m.clearedtransactions = true
}

// TransactionsCleared reports if the "transactions" edge to the Transaction entity was cleared.
func (m *SupplierMutation) TransactionsCleared() bool {
	return m.clearedtransactions
}

// RemoveTransactionIDs removes the "transactions" edge to the Transaction entity by IDs.
func (m *SupplierMutation) RemoveTransactionIDs(ids ...uuid.UUID) {
	if m.removedtransactions == nil {
		m.removedtransactions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.transactions, ids[i])
		m.removedtransactions[ids[i]] = struct{}{}
	}
}

// RemovedTransactions returns the removed IDs of the "transactions" edge to the Transaction entity.
func (m *SupplierMutation) RemovedTransactionsIDs() (ids []uuid.UUID) {
	for id := range m.removedtransactions {
		ids = append(ids, id)
	}
	return
}

// TransactionsIDs returns the "transactions" edge IDs in the mutation.
func (m *SupplierMutation) TransactionsIDs() (ids []uuid.UUID) {
	for id := range m.transactions {
		ids = append(ids, id)
	}
	return
}

// ResetTransactions resets all changes to the "transactions" edge.
func (m *SupplierMutation) ResetTransactions() {
	m.transactions = nil
	m.clearedtransactions = false
	m.removedtransactions = nil
}

// Where appends a list predicates to the SupplierMutation builder.
func (m *SupplierMutation) Where(ps ...predicate.Supplier) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SupplierMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SupplierMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Supplier, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SupplierMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SupplierMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Supplier).
func (m *SupplierMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SupplierMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.name != nil {
		fields = append(fields, supplier.FieldName)
	}
	if m.aliases != nil {
		fields = append(fields, supplier.FieldAliases)
	}
	if m.invoice_email != nil {
		fields = append(fields, supplier.FieldInvoiceEmail)
	}
	if m.invoice_subject != nil {
		fields = append(fields, supplier.FieldInvoiceSubject)
	}
	if m.sku_prefix != nil {
		fields = append(fields, supplier.FieldSkuPrefix)
	}
	if m.parsing_config != nil {
		fields = append(fields, supplier.FieldParsingConfig)
	}
	if m.training_samples != nil {
		fields = append(fields, supplier.FieldTrainingSamples)
	}
	if m.created_at != nil {
		fields = append(fields, supplier.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, supplier.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SupplierMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case supplier.FieldName:
		return m.Name()
	case supplier.FieldAliases:
		return m.Aliases()
	case supplier.FieldInvoiceEmail:
		return m.InvoiceEmail()
	case supplier.FieldInvoiceSubject:
		return m.InvoiceSubject()
	case supplier.FieldSkuPrefix:
		return m.SkuPrefix()
	case supplier.FieldParsingConfig:
		return m.ParsingConfig()
	case supplier.FieldTrainingSamples:
		return m.TrainingSamples()
	case supplier.FieldCreatedAt:
		return m.CreatedAt()
	case supplier.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SupplierMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case supplier.FieldName:
		return m.OldName(ctx)
	case supplier.FieldAliases:
		return m.OldAliases(ctx)
	case supplier.FieldInvoiceEmail:
		return m.OldInvoiceEmail(ctx)
	case supplier.FieldInvoiceSubject:
		return m.OldInvoiceSubject(ctx)
	case supplier.FieldSkuPrefix:
		return m.OldSkuPrefix(ctx)
	case supplier.FieldParsingConfig:
		return m.OldParsingConfig(ctx)
	case supplier.FieldTrainingSamples:
		return m.OldTrainingSamples(ctx)
	case supplier.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case supplier.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Supplier field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SupplierMutation) SetField(name string, value ent.Value) error {
	switch name {
	case supplier.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case supplier.FieldAliases:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAliases(v)
		return nil
	case supplier.FieldInvoiceEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceEmail(v)
		return nil
	case supplier.FieldInvoiceSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceSubject(v)
		return nil
	case supplier.FieldSkuPrefix:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkuPrefix(v)
		return nil
	case supplier.FieldParsingConfig:
		v, ok := value.(entity.EmailParsingConfig)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParsingConfig(v)
		return nil
	case supplier.FieldTrainingSamples:
		v, ok := value.([]entity.TrainingSample)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrainingSamples(v)
		return nil
	case supplier.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case supplier.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Supplier field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SupplierMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SupplierMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SupplierMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Supplier numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SupplierMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(supplier.FieldAliases) {
		fields = append(fields, supplier.FieldAliases)
	}
	if m.FieldCleared(supplier.FieldInvoiceEmail) {
		fields = append(fields, supplier.FieldInvoiceEmail)
	}
	if m.FieldCleared(supplier.FieldInvoiceSubject) {
		fields = append(fields, supplier.FieldInvoiceSubject)
	}
	if m.FieldCleared(supplier.FieldSkuPrefix) {
		fields = append(fields, supplier.FieldSkuPrefix)
	}
	if m.FieldCleared(supplier.FieldParsingConfig) {
		fields = append(fields, supplier.FieldParsingConfig)
	}
	if m.FieldCleared(supplier.FieldTrainingSamples) {
		fields = append(fields, supplier.FieldTrainingSamples)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SupplierMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SupplierMutation) ClearField(name string) error {
	switch name {
	case supplier.FieldAliases:
		m.ClearAliases()
		return nil
	case supplier.FieldInvoiceEmail:
		m.ClearInvoiceEmail()
		return nil
	case supplier.FieldInvoiceSubject:
		m.ClearInvoiceSubject()
		return nil
	case supplier.FieldSkuPrefix:
		m.ClearSkuPrefix()
		return nil
	case supplier.FieldParsingConfig:
		m.ClearParsingConfig()
		return nil
	case supplier.FieldTrainingSamples:
		m.ClearTrainingSamples()
		return nil
	}
	return fmt.Errorf("unknown Supplier nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SupplierMutation) ResetField(name string) error {
	switch name {
	case supplier.FieldName:
		m.ResetName()
		return nil
	case supplier.FieldAliases:
		m.ResetAliases()
		return nil
	case supplier.FieldInvoiceEmail:
		m.ResetInvoiceEmail()
		return nil
	case supplier.FieldInvoiceSubject:
		m.ResetInvoiceSubject()
		return nil
	case supplier.FieldSkuPrefix:
		m.ResetSkuPrefix()
		return nil
	case supplier.FieldParsingConfig:
		m.ResetParsingConfig()
		return nil
	case supplier.FieldTrainingSamples:
		m.ResetTrainingSamples()
		return nil
	case supplier.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case supplier.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Supplier field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SupplierMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.emails != nil {
		edges = append(edges, supplier.EdgeEmails)
	}
	if m.transactions != nil {
		edges = append(edges, supplier.EdgeTransactions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SupplierMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case supplier.EdgeEmails:
		ids := make([]ent.Value, 0, len(m.emails))
		for id := range m.emails {
			ids = append(ids, id)
		}
		return ids
	case supplier.EdgeTransactions:
		ids := make([]ent.Value, 0, len(m.transactions))
		for id := range m.transactions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SupplierMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedemails != nil {
		edges = append(edges, supplier.EdgeEmails)
	}
	if m.removedtransactions != nil {
		edges = append(edges, supplier.EdgeTransactions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SupplierMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case supplier.EdgeEmails:
		ids := make([]ent.Value, 0, len(m.removedemails))
		for id := range m.removedemails {
			ids = append(ids, id)
		}
		return ids
	case supplier.EdgeTransactions:
		ids := make([]ent.Value, 0, len(m.removedtransactions))
		for id := range m.removedtransactions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SupplierMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedemails {
		edges = append(edges, supplier.EdgeEmails)
	}
	if m.clearedtransactions {
		edges = append(edges, supplier.EdgeTransactions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SupplierMutation) EdgeCleared(name string) bool {
	switch name {
	case supplier.EdgeEmails:
		return m.clearedemails
	case supplier.EdgeTransactions:
		return m.clearedtransactions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SupplierMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Supplier unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SupplierMutation) ResetEdge(name string) error {
	switch name {
	case supplier.EdgeEmails:
		m.ResetEmails()
		return nil
	case supplier.EdgeTransactions:
		m.ResetTransactions()
		return nil
	}
	return fmt.Errorf("unknown Supplier edge %s", name)
}

// TransactionMutation represents an operation that mutates the Transaction nodes in the graph.
type TransactionMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	date               *time.Time
	_type              *string
	amount             *float64
	addamount          *float64
	source             *string
	status             *string
	products           *[]entity.TransactionProduct
	appendproducts     []entity.TransactionProduct
	line_items         *[]entity.TransactionProduct
	appendline_items   []entity.TransactionProduct
	pre_tax_amount     *float64
	addpre_tax_amount  *float64
	tax_amount         *float64
	addtax_amount      *float64
	tip                *float64
	addtip             *float64
	is_taxable         *bool
	draft              *bool
	customer           *string
	email              *string
	payment_method     *string
	external_id        *string
	shopify_order_id   *string
	platform_metadata  **entity.PlatformMetadata
	payment_processing **entity.PaymentProcessing
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	supplier           *uuid.UUID
	clearedsupplier    bool
	done               bool
	oldValue           func(context.Context) (*Transaction, error)
	predicates         []predicate.Transaction
}

var _ ent.Mutation = (*TransactionMutation)(nil)

// transactionOption allows management of the mutation configuration using functional options.
type transactionOption func(*TransactionMutation)

// newTransactionMutation creates new mutation for the Transaction entity.
func newTransactionMutation(c config, op Op, opts ...transactionOption) *TransactionMutation {
	m := &TransactionMutation{
		config:        c,
		op:            op,
		typ:           TypeTransaction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTransactionID sets the ID field of the mutation.
func withTransactionID(id uuid.UUID) transactionOption {
	return func(m *TransactionMutation) {
		var (
			err   error
			once  sync.Once
			value *Transaction
		)
		m.oldValue = func(ctx context.Context) (*Transaction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Transaction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTransaction sets the old Transaction of the mutation.
func withTransaction(node *Transaction) transactionOption {
	return func(m *TransactionMutation) {
		m.oldValue = func(context.Context) (*Transaction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TransactionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TransactionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Transaction entities.
func (m *TransactionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TransactionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TransactionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Transaction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDate sets the "date" field.
func (m *TransactionMutation) SetDate(t time.Time) {
	m.date = &t
}

// Date returns the value of the "date" field in the mutation.
func (m *TransactionMutation) Date() (r time.Time, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *TransactionMutation) ResetDate() {
	m.date = nil
}

// SetType sets the "type" field.
func (m *TransactionMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *TransactionMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *TransactionMutation) ResetType() {
	m._type = nil
}

// SetAmount sets the "amount" field.
func (m *TransactionMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *TransactionMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *TransactionMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *TransactionMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *TransactionMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetSource sets the "source" field.
func (m *TransactionMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *TransactionMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *TransactionMutation) ResetSource() {
	m.source = nil
}

// SetStatus sets the "status" field.
func (m *TransactionMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *TransactionMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TransactionMutation) ResetStatus() {
	m.status = nil
}

// SetProducts sets the "products" field.
func (m *TransactionMutation) SetProducts(ep []entity.TransactionProduct) {
	m.products = &ep
	m.appendproducts = nil
}

// Products returns the value of the "products" field in the mutation.
func (m *TransactionMutation) Products() (r []entity.TransactionProduct, exists bool) {
	v := m.products
	if v == nil {
		return
	}
	return *v, true
}

// OldProducts returns the old "products" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldProducts(ctx context.Context) (v []entity.TransactionProduct, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProducts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProducts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProducts: %w", err)
	}
	return oldValue.Products, nil
}

// AppendProducts adds ep to the "products" field.
func (m *TransactionMutation) AppendProducts(ep []entity.TransactionProduct) {
	m.appendproducts = append(m.appendproducts, ep...)
}

// AppendedProducts returns the list of values that were appended to the "products" field in this mutation.
func (m *TransactionMutation) AppendedProducts() ([]entity.TransactionProduct, bool) {
	if len(m.appendproducts) == 0 {
		return nil, false
	}
	return m.appendproducts, true
}

// ClearProducts clears the value of the "products" field.
func (m *TransactionMutation) ClearProducts() {
	m.products = nil
	m.appendproducts = nil
	m.clearedFields[transaction.FieldProducts] = struct{}{}
}

// ProductsCleared returns if the "products" field was cleared in this mutation.
func (m *TransactionMutation) ProductsCleared() bool {
	_, ok := m.clearedFields[transaction.FieldProducts]
	return ok
}

// ResetProducts resets all changes to the "products" field.
func (m *TransactionMutation) ResetProducts() {
	m.products = nil
	m.appendproducts = nil
	delete(m.clearedFields, transaction.FieldProducts)
}

// SetLineItems sets the "line_items" field.
func (m *TransactionMutation) SetLineItems(ep []entity.TransactionProduct) {
	m.line_items = &ep
	m.appendline_items = nil
}

// LineItems returns the value of the "line_items" field in the mutation.
func (m *TransactionMutation) LineItems() (r []entity.TransactionProduct, exists bool) {
	v := m.line_items
	if v == nil {
		return
	}
	return *v, true
}

// OldLineItems returns the old "line_items" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldLineItems(ctx context.Context) (v []entity.TransactionProduct, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLineItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLineItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLineItems: %w", err)
	}
	return oldValue.LineItems, nil
}

// AppendLineItems adds ep to the "line_items" field.
func (m *TransactionMutation) AppendLineItems(ep []entity.TransactionProduct) {
	m.appendline_items = append(m.appendline_items, ep...)
}

// AppendedLineItems returns the list of values that were appended to the "line_items" field in this mutation.
func (m *TransactionMutation) AppendedLineItems() ([]entity.TransactionProduct, bool) {
	if len(m.appendline_items) == 0 {
		return nil, false
	}
	return m.appendline_items, true
}

// ClearLineItems clears the value of the "line_items" field.
func (m *TransactionMutation) ClearLineItems() {
	m.line_items = nil
	m.appendline_items = nil
	m.clearedFields[transaction.FieldLineItems] = struct{}{}
}

// LineItemsCleared returns if the "line_items" field was cleared in this mutation.
func (m *TransactionMutation) LineItemsCleared() bool {
	_, ok := m.clearedFields[transaction.FieldLineItems]
	return ok
}

// ResetLineItems resets all changes to the "line_items" field.
func (m *TransactionMutation) ResetLineItems() {
	m.line_items = nil
	m.appendline_items = nil
	delete(m.clearedFields, transaction.FieldLineItems)
}

// SetPreTaxAmount sets the "pre_tax_amount" field.
func (m *TransactionMutation) SetPreTaxAmount(f float64) {
	m.pre_tax_amount = &f
	m.addpre_tax_amount = nil
}

// PreTaxAmount returns the value of the "pre_tax_amount" field in the mutation.
func (m *TransactionMutation) PreTaxAmount() (r float64, exists bool) {
	v := m.pre_tax_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldPreTaxAmount returns the old "pre_tax_amount" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldPreTaxAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreTaxAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreTaxAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreTaxAmount: %w", err)
	}
	return oldValue.PreTaxAmount, nil
}

// AddPreTaxAmount adds f to the "pre_tax_amount" field.
func (m *TransactionMutation) AddPreTaxAmount(f float64) {
	if m.addpre_tax_amount != nil {
		*m.addpre_tax_amount += f
	} else {
		m.addpre_tax_amount = &f
	}
}

// AddedPreTaxAmount returns the value that was added to the "pre_tax_amount" field in this mutation.
func (m *TransactionMutation) AddedPreTaxAmount() (r float64, exists bool) {
	v := m.addpre_tax_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearPreTaxAmount clears the value of the "pre_tax_amount" field.
func (m *TransactionMutation) ClearPreTaxAmount() {
	m.pre_tax_amount = nil
	m.addpre_tax_amount = nil
	m.clearedFields[transaction.FieldPreTaxAmount] = struct{}{}
}

// PreTaxAmountCleared returns if the "pre_tax_amount" field was cleared in this mutation.
func (m *TransactionMutation) PreTaxAmountCleared() bool {
	_, ok := m.clearedFields[transaction.FieldPreTaxAmount]
	return ok
}

// ResetPreTaxAmount resets all changes to the "pre_tax_amount" field.
func (m *TransactionMutation) ResetPreTaxAmount() {
	m.pre_tax_amount = nil
	m.addpre_tax_amount = nil
	delete(m.clearedFields, transaction.FieldPreTaxAmount)
}

// SetTaxAmount sets the "tax_amount" field.
func (m *TransactionMutation) SetTaxAmount(f float64) {
	m.tax_amount = &f
	m.addtax_amount = nil
}

// TaxAmount returns the value of the "tax_amount" field in the mutation.
func (m *TransactionMutation) TaxAmount() (r float64, exists bool) {
	v := m.tax_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTaxAmount returns the old "tax_amount" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldTaxAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaxAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaxAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaxAmount: %w", err)
	}
	return oldValue.TaxAmount, nil
}

// AddTaxAmount adds f to the "tax_amount" field.
func (m *TransactionMutation) AddTaxAmount(f float64) {
	if m.addtax_amount != nil {
		*m.addtax_amount += f
	} else {
		m.addtax_amount = &f
	}
}

// AddedTaxAmount returns the value that was added to the "tax_amount" field in this mutation.
func (m *TransactionMutation) AddedTaxAmount() (r float64, exists bool) {
	v := m.addtax_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (m *TransactionMutation) ClearTaxAmount() {
	m.tax_amount = nil
	m.addtax_amount = nil
	m.clearedFields[transaction.FieldTaxAmount] = struct{}{}
}

// TaxAmountCleared returns if the "tax_amount" field was cleared in this mutation.
func (m *TransactionMutation) TaxAmountCleared() bool {
	_, ok := m.clearedFields[transaction.FieldTaxAmount]
	return ok
}

// ResetTaxAmount resets all changes to the "tax_amount" field.
func (m *TransactionMutation) ResetTaxAmount() {
	m.tax_amount = nil
	m.addtax_amount = nil
	delete(m.clearedFields, transaction.FieldTaxAmount)
}

// SetTip sets the "tip" field.
func (m *TransactionMutation) SetTip(f float64) {
	m.tip = &f
	m.addtip = nil
}

// Tip returns the value of the "tip" field in the mutation.
func (m *TransactionMutation) Tip() (r float64, exists bool) {
	v := m.tip
	if v == nil {
		return
	}
	return *v, true
}

// OldTip returns the old "tip" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldTip(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTip is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTip requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTip: %w", err)
	}
	return oldValue.Tip, nil
}

// AddTip adds f to the "tip" field.
func (m *TransactionMutation) AddTip(f float64) {
	if m.addtip != nil {
		*m.addtip += f
	} else {
		m.addtip = &f
	}
}

// AddedTip returns the value that was added to the "tip" field in this mutation.
func (m *TransactionMutation) AddedTip() (r float64, exists bool) {
	v := m.addtip
	if v == nil {
		return
	}
	return *v, true
}

// ClearTip clears the value of the "tip" field.
func (m *TransactionMutation) ClearTip() {
	m.tip = nil
	m.addtip = nil
	m.clearedFields[transaction.FieldTip] = struct{}{}
}

// TipCleared returns if the "tip" field was cleared in this mutation.
func (m *TransactionMutation) TipCleared() bool {
	_, ok := m.clearedFields[transaction.FieldTip]
	return ok
}

// ResetTip resets all changes to the "tip" field.
func (m *TransactionMutation) ResetTip() {
	m.tip = nil
	m.addtip = nil
	delete(m.clearedFields, transaction.FieldTip)
}

// SetIsTaxable sets the "is_taxable" field.
func (m *TransactionMutation) SetIsTaxable(b bool) {
	m.is_taxable = &b
}

// IsTaxable returns the value of the "is_taxable" field in the mutation.
func (m *TransactionMutation) IsTaxable() (r bool, exists bool) {
	v := m.is_taxable
	if v == nil {
		return
	}
	return *v, true
}

// OldIsTaxable returns the old "is_taxable" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldIsTaxable(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsTaxable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsTaxable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsTaxable: %w", err)
	}
	return oldValue.IsTaxable, nil
}

// ClearIsTaxable clears the value of the "is_taxable" field.
func (m *TransactionMutation) ClearIsTaxable() {
	m.is_taxable = nil
	m.clearedFields[transaction.FieldIsTaxable] = struct{}{}
}

// IsTaxableCleared returns if the "is_taxable" field was cleared in this mutation.
func (m *TransactionMutation) IsTaxableCleared() bool {
	_, ok := m.clearedFields[transaction.FieldIsTaxable]
	return ok
}

// ResetIsTaxable resets all changes to the "is_taxable" field.
func (m *TransactionMutation) ResetIsTaxable() {
	m.is_taxable = nil
	delete(m.clearedFields, transaction.FieldIsTaxable)
}

// SetDraft sets the "draft" field.
func (m *TransactionMutation) SetDraft(b bool) {
	m.draft = &b
}

// Draft returns the value of the "draft" field in the mutation.
func (m *TransactionMutation) Draft() (r bool, exists bool) {
	v := m.draft
	if v == nil {
		return
	}
	return *v, true
}

// OldDraft returns the old "draft" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldDraft(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDraft is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDraft requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDraft: %w", err)
	}
	return oldValue.Draft, nil
}

// ClearDraft clears the value of the "draft" field.
func (m *TransactionMutation) ClearDraft() {
	m.draft = nil
	m.clearedFields[transaction.FieldDraft] = struct{}{}
}

// DraftCleared returns if the "draft" field was cleared in this mutation.
func (m *TransactionMutation) DraftCleared() bool {
	_, ok := m.clearedFields[transaction.FieldDraft]
	return ok
}

// ResetDraft resets all changes to the "draft" field.
func (m *TransactionMutation) ResetDraft() {
	m.draft = nil
	delete(m.clearedFields, transaction.FieldDraft)
}

// SetCustomer sets the "customer" field.
func (m *TransactionMutation) SetCustomer(s string) {
	m.customer = &s
}

// Customer returns the value of the "customer" field in the mutation.
func (m *TransactionMutation) Customer() (r string, exists bool) {
	v := m.customer
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomer returns the old "customer" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldCustomer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomer: %w", err)
	}
	return oldValue.Customer, nil
}

// ClearCustomer clears the value of the "customer" field.
func (m *TransactionMutation) ClearCustomer() {
	m.customer = nil
	m.clearedFields[transaction.FieldCustomer] = struct{}{}
}

// CustomerCleared returns if the "customer" field was cleared in this mutation.
func (m *TransactionMutation) CustomerCleared() bool {
	_, ok := m.clearedFields[transaction.FieldCustomer]
	return ok
}

// ResetCustomer resets all changes to the "customer" field.
func (m *TransactionMutation) ResetCustomer() {
	m.customer = nil
	delete(m.clearedFields, transaction.FieldCustomer)
}

// SetEmail sets the "email" field.
func (m *TransactionMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *TransactionMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *TransactionMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[transaction.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *TransactionMutation) EmailCleared() bool {
	_, ok := m.clearedFields[transaction.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *TransactionMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, transaction.FieldEmail)
}

// SetPaymentMethod sets the "payment_method" field.
func (m *TransactionMutation) SetPaymentMethod(s string) {
	m.payment_method = &s
}

// PaymentMethod returns the value of the "payment_method" field in the mutation.
func (m *TransactionMutation) PaymentMethod() (r string, exists bool) {
	v := m.payment_method
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentMethod returns the old "payment_method" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldPaymentMethod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentMethod: %w", err)
	}
	return oldValue.PaymentMethod, nil
}

// ClearPaymentMethod clears the value of the "payment_method" field.
func (m *TransactionMutation) ClearPaymentMethod() {
	m.payment_method = nil
	m.clearedFields[transaction.FieldPaymentMethod] = struct{}{}
}

// PaymentMethodCleared returns if the "payment_method" field was cleared in this mutation.
func (m *TransactionMutation) PaymentMethodCleared() bool {
	_, ok := m.clearedFields[transaction.FieldPaymentMethod]
	return ok
}

// ResetPaymentMethod resets all changes to the "payment_method" field.
func (m *TransactionMutation) ResetPaymentMethod() {
	m.payment_method = nil
	delete(m.clearedFields, transaction.FieldPaymentMethod)
}

// SetSupplierID sets the "supplier_id" field.
func (m *TransactionMutation) SetSupplierID(u uuid.UUID) {
	m.supplier = &u
}

// SupplierID returns the value of the "supplier_id" field in the mutation.
func (m *TransactionMutation) SupplierID() (r uuid.UUID, exists bool) {
	v := m.supplier
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierID returns the old "supplier_id" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldSupplierID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierID: %w", err)
	}
	return oldValue.SupplierID, nil
}

// ClearSupplierID clears the value of the "supplier_id" field.
func (m *TransactionMutation) ClearSupplierID() {
	m.supplier = nil
	m.clearedFields[transaction.FieldSupplierID] = struct{}{}
}

// SupplierIDCleared returns if the "supplier_id" field was cleared in this mutation.
func (m *TransactionMutation) SupplierIDCleared() bool {
	_, ok := m.clearedFields[transaction.FieldSupplierID]
	return ok
}

// ResetSupplierID resets all changes to the "supplier_id" field.
func (m *TransactionMutation) ResetSupplierID() {
	m.supplier = nil
	delete(m.clearedFields, transaction.FieldSupplierID)
}

// SetExternalID sets the "external_id" field.
func (m *TransactionMutation) SetExternalID(s string) {
	m.external_id = &s
}

// ExternalID returns the value of the "external_id" field in the mutation.
func (m *TransactionMutation) ExternalID() (r string, exists bool) {
	v := m.external_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalID returns the old "external_id" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldExternalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalID: %w", err)
	}
	return oldValue.ExternalID, nil
}

// ClearExternalID clears the value of the "external_id" field.
func (m *TransactionMutation) ClearExternalID() {
	m.external_id = nil
	m.clearedFields[transaction.FieldExternalID] = struct{}{}
}

// ExternalIDCleared returns if the "external_id" field was cleared in this mutation.
func (m *TransactionMutation) ExternalIDCleared() bool {
	_, ok := m.clearedFields[transaction.FieldExternalID]
	return ok
}

// ResetExternalID resets all changes to the "external_id" field.
func (m *TransactionMutation) ResetExternalID() {
	m.external_id = nil
	delete(m.clearedFields, transaction.FieldExternalID)
}

// SetShopifyOrderID sets the "shopify_order_id" field.
func (m *TransactionMutation) SetShopifyOrderID(s string) {
	m.shopify_order_id = &s
}

// ShopifyOrderID returns the value of the "shopify_order_id" field in the mutation.
func (m *TransactionMutation) ShopifyOrderID() (r string, exists bool) {
	v := m.shopify_order_id
	if v == nil {
		return
	}
	return *v, true
}

// OldShopifyOrderID returns the old "shopify_order_id" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldShopifyOrderID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShopifyOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShopifyOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShopifyOrderID: %w", err)
	}
	return oldValue.ShopifyOrderID, nil
}

// ClearShopifyOrderID clears the value of the "shopify_order_id" field.
func (m *TransactionMutation) ClearShopifyOrderID() {
	m.shopify_order_id = nil
	m.clearedFields[transaction.FieldShopifyOrderID] = struct{}{}
}

// ShopifyOrderIDCleared returns if the "shopify_order_id" field was cleared in this mutation.
func (m *TransactionMutation) ShopifyOrderIDCleared() bool {
	_, ok := m.clearedFields[transaction.FieldShopifyOrderID]
	return ok
}

// ResetShopifyOrderID resets all changes to the "shopify_order_id" field.
func (m *TransactionMutation) ResetShopifyOrderID() {
	m.shopify_order_id = nil
	delete(m.clearedFields, transaction.FieldShopifyOrderID)
}

// SetPlatformMetadata sets the "platform_metadata" field.
func (m *TransactionMutation) SetPlatformMetadata(em *entity.PlatformMetadata) {
	m.platform_metadata = &em
}

// PlatformMetadata returns the value of the "platform_metadata" field in the mutation.
func (m *TransactionMutation) PlatformMetadata() (r *entity.PlatformMetadata, exists bool) {
	v := m.platform_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatformMetadata returns the old "platform_metadata" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldPlatformMetadata(ctx context.Context) (v *entity.PlatformMetadata, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatformMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatformMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatformMetadata: %w", err)
	}
	return oldValue.PlatformMetadata, nil
}

// ClearPlatformMetadata clears the value of the "platform_metadata" field.
func (m *TransactionMutation) ClearPlatformMetadata() {
	m.platform_metadata = nil
	m.clearedFields[transaction.FieldPlatformMetadata] = struct{}{}
}

// PlatformMetadataCleared returns if the "platform_metadata" field was cleared in this mutation.
func (m *TransactionMutation) PlatformMetadataCleared() bool {
	_, ok := m.clearedFields[transaction.FieldPlatformMetadata]
	return ok
}

// ResetPlatformMetadata resets all changes to the "platform_metadata" field.
func (m *TransactionMutation) ResetPlatformMetadata() {
	m.platform_metadata = nil
	delete(m.clearedFields, transaction.FieldPlatformMetadata)
}

// SetPaymentProcessing sets the "payment_processing" field.
func (m *TransactionMutation) SetPaymentProcessing(ep *entity.PaymentProcessing) {
	m.payment_processing = &ep
}

// PaymentProcessing returns the value of the "payment_processing" field in the mutation.
func (m *TransactionMutation) PaymentProcessing() (r *entity.PaymentProcessing, exists bool) {
	v := m.payment_processing
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentProcessing returns the old "payment_processing" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldPaymentProcessing(ctx context.Context) (v *entity.PaymentProcessing, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentProcessing is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentProcessing requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentProcessing: %w", err)
	}
	return oldValue.PaymentProcessing, nil
}

// ClearPaymentProcessing clears the value of the "payment_processing" field.
func (m *TransactionMutation) ClearPaymentProcessing() {
	m.payment_processing = nil
	m.clearedFields[transaction.FieldPaymentProcessing] = struct{}{}
}

// PaymentProcessingCleared returns if the "payment_processing" field was cleared in this mutation.
func (m *TransactionMutation) PaymentProcessingCleared() bool {
	_, ok := m.clearedFields[transaction.FieldPaymentProcessing]
	return ok
}

// ResetPaymentProcessing resets all changes to the "payment_processing" field.
func (m *TransactionMutation) ResetPaymentProcessing() {
	m.payment_processing = nil
	delete(m.clearedFields, transaction.FieldPaymentProcessing)
}

// SetCreatedAt sets the "created_at" field.
func (m *TransactionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TransactionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TransactionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TransactionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TransactionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TransactionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearSupplier clears the "supplier" edge to the Supplier entity.
func (m *TransactionMutation) ClearSupplier() {
	m.clearedsupplier = true
	m.clearedFields[transaction.FieldSupplierID] = struct{}{}
}

// SupplierCleared reports if the "supplier" edge to the Supplier entity was cleared.
func (m *TransactionMutation) SupplierCleared() bool {
	return m.SupplierIDCleared() || m.clearedsupplier
}

// SupplierIDs returns the "supplier" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SupplierID instead. It exists only for internal usage by the builders.
func (m *TransactionMutation) SupplierIDs() (ids []uuid.UUID) {
	if id := m.supplier; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSupplier resets all changes to the "supplier" edge.
func (m *TransactionMutation) ResetSupplier() {
	m.supplier = nil
	m.clearedsupplier = false
}

// Where appends a list predicates to the TransactionMutation builder.
func (m *TransactionMutation) Where(ps ...predicate.Transaction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TransactionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TransactionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Transaction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TransactionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TransactionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Transaction).
func (m *TransactionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TransactionMutation) Fields() []string {
	fields := make([]string, 0, 22)
	if m.date != nil {
		fields = append(fields, transaction.FieldDate)
	}
	if m._type != nil {
		fields = append(fields, transaction.FieldType)
	}
	if m.amount != nil {
		fields = append(fields, transaction.FieldAmount)
	}
	if m.source != nil {
		fields = append(fields, transaction.FieldSource)
	}
	if m.status != nil {
		fields = append(fields, transaction.FieldStatus)
	}
	if m.products != nil {
		fields = append(fields, transaction.FieldProducts)
	}
	if m.line_items != nil {
		fields = append(fields, transaction.FieldLineItems)
	}
	if m.pre_tax_amount != nil {
		fields = append(fields, transaction.FieldPreTaxAmount)
	}
	if m.tax_amount != nil {
		fields = append(fields, transaction.FieldTaxAmount)
	}
	if m.tip != nil {
		fields = append(fields, transaction.FieldTip)
	}
	if m.is_taxable != nil {
		fields = append(fields, transaction.FieldIsTaxable)
	}
	if m.draft != nil {
		fields = append(fields, transaction.FieldDraft)
	}
	if m.customer != nil {
		fields = append(fields, transaction.FieldCustomer)
	}
	if m.email != nil {
		fields = append(fields, transaction.FieldEmail)
	}
	if m.payment_method != nil {
		fields = append(fields, transaction.FieldPaymentMethod)
	}
	if m.supplier != nil {
		fields = append(fields, transaction.FieldSupplierID)
	}
	if m.external_id != nil {
		fields = append(fields, transaction.FieldExternalID)
	}
	if m.shopify_order_id != nil {
		fields = append(fields, transaction.FieldShopifyOrderID)
	}
	if m.platform_metadata != nil {
		fields = append(fields, transaction.FieldPlatformMetadata)
	}
	if m.payment_processing != nil {
		fields = append(fields, transaction.FieldPaymentProcessing)
	}
	if m.created_at != nil {
		fields = append(fields, transaction.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, transaction.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TransactionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case transaction.FieldDate:
		return m.Date()
	case transaction.FieldType:
		return m.GetType()
	case transaction.FieldAmount:
		return m.Amount()
	case transaction.FieldSource:
		return m.Source()
	case transaction.FieldStatus:
		return m.Status()
	case transaction.FieldProducts:
		return m.Products()
	case transaction.FieldLineItems:
		return m.LineItems()
	case transaction.FieldPreTaxAmount:
		return m.PreTaxAmount()
	case transaction.FieldTaxAmount:
		return m.TaxAmount()
	case transaction.FieldTip:
		return m.Tip()
	case transaction.FieldIsTaxable:
		return m.IsTaxable()
	case transaction.FieldDraft:
		return m.Draft()
	case transaction.FieldCustomer:
		return m.Customer()
	case transaction.FieldEmail:
		return m.Email()
	case transaction.FieldPaymentMethod:
		return m.PaymentMethod()
	case transaction.FieldSupplierID:
		return m.SupplierID()
	case transaction.FieldExternalID:
		return m.ExternalID()
	case transaction.FieldShopifyOrderID:
		return m.ShopifyOrderID()
	case transaction.FieldPlatformMetadata:
		return m.PlatformMetadata()
	case transaction.FieldPaymentProcessing:
		return m.PaymentProcessing()
	case transaction.FieldCreatedAt:
		return m.CreatedAt()
	case transaction.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TransactionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case transaction.FieldDate:
		return m.OldDate(ctx)
	case transaction.FieldType:
		return m.OldType(ctx)
	case transaction.FieldAmount:
		return m.OldAmount(ctx)
	case transaction.FieldSource:
		return m.OldSource(ctx)
	case transaction.FieldStatus:
		return m.OldStatus(ctx)
	case transaction.FieldProducts:
		return m.OldProducts(ctx)
	case transaction.FieldLineItems:
		return m.OldLineItems(ctx)
	case transaction.FieldPreTaxAmount:
		return m.OldPreTaxAmount(ctx)
	case transaction.FieldTaxAmount:
		return m.OldTaxAmount(ctx)
	case transaction.FieldTip:
		return m.OldTip(ctx)
	case transaction.FieldIsTaxable:
		return m.OldIsTaxable(ctx)
	case transaction.FieldDraft:
		return m.OldDraft(ctx)
	case transaction.FieldCustomer:
		return m.OldCustomer(ctx)
	case transaction.FieldEmail:
		return m.OldEmail(ctx)
	case transaction.FieldPaymentMethod:
		return m.OldPaymentMethod(ctx)
	case transaction.FieldSupplierID:
		return m.OldSupplierID(ctx)
	case transaction.FieldExternalID:
		return m.OldExternalID(ctx)
	case transaction.FieldShopifyOrderID:
		return m.OldShopifyOrderID(ctx)
	case transaction.FieldPlatformMetadata:
		return m.OldPlatformMetadata(ctx)
	case transaction.FieldPaymentProcessing:
		return m.OldPaymentProcessing(ctx)
	case transaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case transaction.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Transaction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TransactionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case transaction.FieldDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case transaction.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case transaction.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case transaction.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case transaction.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case transaction.FieldProducts:
		v, ok := value.([]entity.TransactionProduct)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProducts(v)
		return nil
	case transaction.FieldLineItems:
		v, ok := value.([]entity.TransactionProduct)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLineItems(v)
		return nil
	case transaction.FieldPreTaxAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreTaxAmount(v)
		return nil
	case transaction.FieldTaxAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaxAmount(v)
		return nil
	case transaction.FieldTip:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTip(v)
		return nil
	case transaction.FieldIsTaxable:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsTaxable(v)
		return nil
	case transaction.FieldDraft:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDraft(v)
		return nil
	case transaction.FieldCustomer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomer(v)
		return nil
	case transaction.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case transaction.FieldPaymentMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentMethod(v)
		return nil
	case transaction.FieldSupplierID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierID(v)
		return nil
	case transaction.FieldExternalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalID(v)
		return nil
	case transaction.FieldShopifyOrderID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShopifyOrderID(v)
		return nil
	case transaction.FieldPlatformMetadata:
		v, ok := value.(*entity.PlatformMetadata)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatformMetadata(v)
		return nil
	case transaction.FieldPaymentProcessing:
		v, ok := value.(*entity.PaymentProcessing)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentProcessing(v)
		return nil
	case transaction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case transaction.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Transaction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TransactionMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, transaction.FieldAmount)
	}
	if m.addpre_tax_amount != nil {
		fields = append(fields, transaction.FieldPreTaxAmount)
	}
	if m.addtax_amount != nil {
		fields = append(fields, transaction.FieldTaxAmount)
	}
	if m.addtip != nil {
		fields = append(fields, transaction.FieldTip)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TransactionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case transaction.FieldAmount:
		return m.AddedAmount()
	case transaction.FieldPreTaxAmount:
		return m.AddedPreTaxAmount()
	case transaction.FieldTaxAmount:
		return m.AddedTaxAmount()
	case transaction.FieldTip:
		return m.AddedTip()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TransactionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case transaction.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	case transaction.FieldPreTaxAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPreTaxAmount(v)
		return nil
	case transaction.FieldTaxAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTaxAmount(v)
		return nil
	case transaction.FieldTip:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTip(v)
		return nil
	}
	return fmt.Errorf("unknown Transaction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TransactionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(transaction.FieldProducts) {
		fields = append(fields, transaction.FieldProducts)
	}
	if m.FieldCleared(transaction.FieldLineItems) {
		fields = append(fields, transaction.FieldLineItems)
	}
	if m.FieldCleared(transaction.FieldPreTaxAmount) {
		fields = append(fields, transaction.FieldPreTaxAmount)
	}
	if m.FieldCleared(transaction.FieldTaxAmount) {
		fields = append(fields, transaction.FieldTaxAmount)
	}
	if m.FieldCleared(transaction.FieldTip) {
		fields = append(fields, transaction.FieldTip)
	}
	if m.FieldCleared(transaction.FieldIsTaxable) {
		fields = append(fields, transaction.FieldIsTaxable)
	}
	if m.FieldCleared(transaction.FieldDraft) {
		fields = append(fields, transaction.FieldDraft)
	}
	if m.FieldCleared(transaction.FieldCustomer) {
		fields = append(fields, transaction.FieldCustomer)
	}
	if m.FieldCleared(transaction.FieldEmail) {
		fields = append(fields, transaction.FieldEmail)
	}
	if m.FieldCleared(transaction.FieldPaymentMethod) {
		fields = append(fields, transaction.FieldPaymentMethod)
	}
	if m.FieldCleared(transaction.FieldSupplierID) {
		fields = append(fields, transaction.FieldSupplierID)
	}
	if m.FieldCleared(transaction.FieldExternalID) {
		fields = append(fields, transaction.FieldExternalID)
	}
	if m.FieldCleared(transaction.FieldShopifyOrderID) {
		fields = append(fields, transaction.FieldShopifyOrderID)
	}
	if m.FieldCleared(transaction.FieldPlatformMetadata) {
		fields = append(fields, transaction.FieldPlatformMetadata)
	}
	if m.FieldCleared(transaction.FieldPaymentProcessing) {
		fields = append(fields, transaction.FieldPaymentProcessing)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TransactionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TransactionMutation) ClearField(name string) error {
	switch name {
	case transaction.FieldProducts:
		m.ClearProducts()
		return nil
	case transaction.FieldLineItems:
		m.ClearLineItems()
		return nil
	case transaction.FieldPreTaxAmount:
		m.ClearPreTaxAmount()
		return nil
	case transaction.FieldTaxAmount:
		m.ClearTaxAmount()
		return nil
	case transaction.FieldTip:
		m.ClearTip()
		return nil
	case transaction.FieldIsTaxable:
		m.ClearIsTaxable()
		return nil
	case transaction.FieldDraft:
		m.ClearDraft()
		return nil
	case transaction.FieldCustomer:
		m.ClearCustomer()
		return nil
	case transaction.FieldEmail:
		m.ClearEmail()
		return nil
	case transaction.FieldPaymentMethod:
		m.ClearPaymentMethod()
		return nil
	case transaction.FieldSupplierID:
		m.ClearSupplierID()
		return nil
	case transaction.FieldExternalID:
		m.ClearExternalID()
		return nil
	case transaction.FieldShopifyOrderID:
		m.ClearShopifyOrderID()
		return nil
	case transaction.FieldPlatformMetadata:
		m.ClearPlatformMetadata()
		return nil
	case transaction.FieldPaymentProcessing:
		m.ClearPaymentProcessing()
		return nil
	}
	return fmt.Errorf("unknown Transaction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TransactionMutation) ResetField(name string) error {
	switch name {
	case transaction.FieldDate:
		m.ResetDate()
		return nil
	case transaction.FieldType:
		m.ResetType()
		return nil
	case transaction.FieldAmount:
		m.ResetAmount()
		return nil
	case transaction.FieldSource:
		m.ResetSource()
		return nil
	case transaction.FieldStatus:
		m.ResetStatus()
		return nil
	case transaction.FieldProducts:
		m.ResetProducts()
		return nil
	case transaction.FieldLineItems:
		m.ResetLineItems()
		return nil
	case transaction.FieldPreTaxAmount:
		m.ResetPreTaxAmount()
		return nil
	case transaction.FieldTaxAmount:
		m.ResetTaxAmount()
		return nil
	case transaction.FieldTip:
		m.ResetTip()
		return nil
	case transaction.FieldIsTaxable:
		m.ResetIsTaxable()
		return nil
	case transaction.FieldDraft:
		m.ResetDraft()
		return nil
	case transaction.FieldCustomer:
		m.ResetCustomer()
		return nil
	case transaction.FieldEmail:
		m.ResetEmail()
		return nil
	case transaction.FieldPaymentMethod:
		m.ResetPaymentMethod()
		return nil
	case transaction.FieldSupplierID:
		m.ResetSupplierID()
		return nil
	case transaction.FieldExternalID:
		m.ResetExternalID()
		return nil
	case transaction.FieldShopifyOrderID:
		m.ResetShopifyOrderID()
		return nil
	case transaction.FieldPlatformMetadata:
		m.ResetPlatformMetadata()
		return nil
	case transaction.FieldPaymentProcessing:
		m.ResetPaymentProcessing()
		return nil
	case transaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case transaction.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Transaction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TransactionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.supplier != nil {
		edges = append(edges, transaction.EdgeSupplier)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TransactionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case transaction.EdgeSupplier:
		if id := m.supplier; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TransactionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TransactionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TransactionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsupplier {
		edges = append(edges, transaction.EdgeSupplier)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TransactionMutation) EdgeCleared(name string) bool {
	switch name {
	case transaction.EdgeSupplier:
		return m.clearedsupplier
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TransactionMutation) ClearEdge(name string) error {
	switch name {
	case transaction.EdgeSupplier:
		m.ClearSupplier()
		return nil
	}
	return fmt.Errorf("unknown Transaction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TransactionMutation) ResetEdge(name string) error {
	switch name {
	case transaction.EdgeSupplier:
		m.ResetSupplier()
		return nil
	}
	return fmt.Errorf("unknown Transaction edge %s", name)
}
