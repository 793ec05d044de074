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
	"github.com/daydreamers/ops-backend/gen/ent/predicate"
	"github.com/daydreamers/ops-backend/gen/ent/smartmapping"
	"github.com/google/uuid"
)

// SmartMappingUpdate is the builder for updating SmartMapping entities.
type SmartMappingUpdate struct {
	config
	hooks    []Hook
	mutation *SmartMappingMutation
}

// Where appends a list predicates to the SmartMappingUpdate builder.
func (_u *SmartMappingUpdate) Where(ps ...predicate.SmartMapping) *SmartMappingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMappingType sets the "mapping_type" field.
func (_u *SmartMappingUpdate) SetMappingType(v string) *SmartMappingUpdate {
	_u.mutation.SetMappingType(v)
	return _u
}

// SetNillableMappingType sets the "mapping_type" field if the given value is not nil.
func (_u *SmartMappingUpdate) SetNillableMappingType(v *string) *SmartMappingUpdate {
	if v != nil {
		_u.SetMappingType(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *SmartMappingUpdate) SetSource(v string) *SmartMappingUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *SmartMappingUpdate) SetNillableSource(v *string) *SmartMappingUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetTarget sets the "target" field.
func (_u *SmartMappingUpdate) SetTarget(v string) *SmartMappingUpdate {
	_u.mutation.SetTarget(v)
	return _u
}

// SetNillableTarget sets the "target" field if the given value is not nil.
func (_u *SmartMappingUpdate) SetNillableTarget(v *string) *SmartMappingUpdate {
	if v != nil {
		_u.SetTarget(*v)
	}
	return _u
}

// SetTargetID sets the "target_id" field.
func (_u *SmartMappingUpdate) SetTargetID(v uuid.UUID) *SmartMappingUpdate {
	_u.mutation.SetTargetID(v)
	return _u
}

// SetNillableTargetID sets the "target_id" field if the given value is not nil.
func (_u *SmartMappingUpdate) SetNillableTargetID(v *uuid.UUID) *SmartMappingUpdate {
	if v != nil {
		_u.SetTargetID(*v)
	}
	return _u
}

// ClearTargetID clears the value of the "target_id" field.
func (_u *SmartMappingUpdate) ClearTargetID() *SmartMappingUpdate {
	_u.mutation.ClearTargetID()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *SmartMappingUpdate) SetConfidence(v int) *SmartMappingUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *SmartMappingUpdate) SetNillableConfidence(v *int) *SmartMappingUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *SmartMappingUpdate) AddConfidence(v int) *SmartMappingUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetUsageCount sets the "usage_count" field.
func (_u *SmartMappingUpdate) SetUsageCount(v int) *SmartMappingUpdate {
	_u.mutation.ResetUsageCount()
	_u.mutation.SetUsageCount(v)
	return _u
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (_u *SmartMappingUpdate) SetNillableUsageCount(v *int) *SmartMappingUpdate {
	if v != nil {
		_u.SetUsageCount(*v)
	}
	return _u
}

// AddUsageCount adds value to the "usage_count" field.
func (_u *SmartMappingUpdate) AddUsageCount(v int) *SmartMappingUpdate {
	_u.mutation.AddUsageCount(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *SmartMappingUpdate) SetScore(v int) *SmartMappingUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *SmartMappingUpdate) SetNillableScore(v *int) *SmartMappingUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *SmartMappingUpdate) AddScore(v int) *SmartMappingUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *SmartMappingUpdate) SetMetadata(v map[string]string) *SmartMappingUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *SmartMappingUpdate) ClearMetadata() *SmartMappingUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetLastUsed sets the "last_used" field.
func (_u *SmartMappingUpdate) SetLastUsed(v time.Time) *SmartMappingUpdate {
	_u.mutation.SetLastUsed(v)
	return _u
}

// SetNillableLastUsed sets the "last_used" field if the given value is not nil.
func (_u *SmartMappingUpdate) SetNillableLastUsed(v *time.Time) *SmartMappingUpdate {
	if v != nil {
		_u.SetLastUsed(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SmartMappingUpdate) SetCreatedAt(v time.Time) *SmartMappingUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SmartMappingUpdate) SetNillableCreatedAt(v *time.Time) *SmartMappingUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SmartMappingUpdate) SetUpdatedAt(v time.Time) *SmartMappingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SmartMappingMutation object of the builder.
func (_u *SmartMappingUpdate) Mutation() *SmartMappingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SmartMappingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SmartMappingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SmartMappingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SmartMappingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SmartMappingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := smartmapping.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SmartMappingUpdate) check() error {
	if v, ok := _u.mutation.MappingType(); ok {
		if err := smartmapping.MappingTypeValidator(v); err != nil {
			return &ValidationError{Name: "mapping_type", err: fmt.Errorf(`ent: validator failed for field "SmartMapping.mapping_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := smartmapping.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "SmartMapping.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Target(); ok {
		if err := smartmapping.TargetValidator(v); err != nil {
			return &ValidationError{Name: "target", err: fmt.Errorf(`ent: validator failed for field "SmartMapping.target": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := smartmapping.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "SmartMapping.confidence": %w`, err)}
		}
	}
	return nil
}

func (_u *SmartMappingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(smartmapping.Table, smartmapping.Columns, sqlgraph.NewFieldSpec(smartmapping.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MappingType(); ok {
		_spec.SetField(smartmapping.FieldMappingType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(smartmapping.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Target(); ok {
		_spec.SetField(smartmapping.FieldTarget, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetID(); ok {
		_spec.SetField(smartmapping.FieldTargetID, field.TypeUUID, value)
	}
	if _u.mutation.TargetIDCleared() {
		_spec.ClearField(smartmapping.FieldTargetID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(smartmapping.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(smartmapping.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UsageCount(); ok {
		_spec.SetField(smartmapping.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsageCount(); ok {
		_spec.AddField(smartmapping.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(smartmapping.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(smartmapping.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(smartmapping.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(smartmapping.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastUsed(); ok {
		_spec.SetField(smartmapping.FieldLastUsed, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(smartmapping.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(smartmapping.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{smartmapping.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SmartMappingUpdateOne is the builder for updating a single SmartMapping entity.
type SmartMappingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SmartMappingMutation
}

// SetMappingType sets the "mapping_type" field.
func (_u *SmartMappingUpdateOne) SetMappingType(v string) *SmartMappingUpdateOne {
	_u.mutation.SetMappingType(v)
	return _u
}

// SetNillableMappingType sets the "mapping_type" field if the given value is not nil.
func (_u *SmartMappingUpdateOne) SetNillableMappingType(v *string) *SmartMappingUpdateOne {
	if v != nil {
		_u.SetMappingType(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *SmartMappingUpdateOne) SetSource(v string) *SmartMappingUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *SmartMappingUpdateOne) SetNillableSource(v *string) *SmartMappingUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetTarget sets the "target" field.
func (_u *SmartMappingUpdateOne) SetTarget(v string) *SmartMappingUpdateOne {
	_u.mutation.SetTarget(v)
	return _u
}

// SetNillableTarget sets the "target" field if the given value is not nil.
func (_u *SmartMappingUpdateOne) SetNillableTarget(v *string) *SmartMappingUpdateOne {
	if v != nil {
		_u.SetTarget(*v)
	}
	return _u
}

// SetTargetID sets the "target_id" field.
func (_u *SmartMappingUpdateOne) SetTargetID(v uuid.UUID) *SmartMappingUpdateOne {
	_u.mutation.SetTargetID(v)
	return _u
}

// SetNillableTargetID sets the "target_id" field if the given value is not nil.
func (_u *SmartMappingUpdateOne) SetNillableTargetID(v *uuid.UUID) *SmartMappingUpdateOne {
	if v != nil {
		_u.SetTargetID(*v)
	}
	return _u
}

// ClearTargetID clears the value of the "target_id" field.
func (_u *SmartMappingUpdateOne) ClearTargetID() *SmartMappingUpdateOne {
	_u.mutation.ClearTargetID()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *SmartMappingUpdateOne) SetConfidence(v int) *SmartMappingUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *SmartMappingUpdateOne) SetNillableConfidence(v *int) *SmartMappingUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *SmartMappingUpdateOne) AddConfidence(v int) *SmartMappingUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetUsageCount sets the "usage_count" field.
func (_u *SmartMappingUpdateOne) SetUsageCount(v int) *SmartMappingUpdateOne {
	_u.mutation.ResetUsageCount()
	_u.mutation.SetUsageCount(v)
	return _u
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (_u *SmartMappingUpdateOne) SetNillableUsageCount(v *int) *SmartMappingUpdateOne {
	if v != nil {
		_u.SetUsageCount(*v)
	}
	return _u
}

// AddUsageCount adds value to the "usage_count" field.
func (_u *SmartMappingUpdateOne) AddUsageCount(v int) *SmartMappingUpdateOne {
	_u.mutation.AddUsageCount(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *SmartMappingUpdateOne) SetScore(v int) *SmartMappingUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *SmartMappingUpdateOne) SetNillableScore(v *int) *SmartMappingUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *SmartMappingUpdateOne) AddScore(v int) *SmartMappingUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *SmartMappingUpdateOne) SetMetadata(v map[string]string) *SmartMappingUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *SmartMappingUpdateOne) ClearMetadata() *SmartMappingUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetLastUsed sets the "last_used" field.
func (_u *SmartMappingUpdateOne) SetLastUsed(v time.Time) *SmartMappingUpdateOne {
	_u.mutation.SetLastUsed(v)
	return _u
}

// SetNillableLastUsed sets the "last_used" field if the given value is not nil.
func (_u *SmartMappingUpdateOne) SetNillableLastUsed(v *time.Time) *SmartMappingUpdateOne {
	if v != nil {
		_u.SetLastUsed(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SmartMappingUpdateOne) SetCreatedAt(v time.Time) *SmartMappingUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SmartMappingUpdateOne) SetNillableCreatedAt(v *time.Time) *SmartMappingUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SmartMappingUpdateOne) SetUpdatedAt(v time.Time) *SmartMappingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SmartMappingMutation object of the builder.
func (_u *SmartMappingUpdateOne) Mutation() *SmartMappingMutation {
	return _u.mutation
}

// Where appends a list predicates to the SmartMappingUpdate builder.
func (_u *SmartMappingUpdateOne) Where(ps ...predicate.SmartMapping) *SmartMappingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SmartMappingUpdateOne) Select(field string, fields ...string) *SmartMappingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SmartMapping entity.
func (_u *SmartMappingUpdateOne) Save(ctx context.Context) (*SmartMapping, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SmartMappingUpdateOne) SaveX(ctx context.Context) *SmartMapping {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SmartMappingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SmartMappingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SmartMappingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := smartmapping.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SmartMappingUpdateOne) check() error {
	if v, ok := _u.mutation.MappingType(); ok {
		if err := smartmapping.MappingTypeValidator(v); err != nil {
			return &ValidationError{Name: "mapping_type", err: fmt.Errorf(`ent: validator failed for field "SmartMapping.mapping_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := smartmapping.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "SmartMapping.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Target(); ok {
		if err := smartmapping.TargetValidator(v); err != nil {
			return &ValidationError{Name: "target", err: fmt.Errorf(`ent: validator failed for field "SmartMapping.target": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := smartmapping.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "SmartMapping.confidence": %w`, err)}
		}
	}
	return nil
}

func (_u *SmartMappingUpdateOne) sqlSave(ctx context.Context) (_node *SmartMapping, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(smartmapping.Table, smartmapping.Columns, sqlgraph.NewFieldSpec(smartmapping.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SmartMapping.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, smartmapping.FieldID)
		for _, f := range fields {
			if !smartmapping.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != smartmapping.FieldID {
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
	if value, ok := _u.mutation.MappingType(); ok {
		_spec.SetField(smartmapping.FieldMappingType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(smartmapping.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Target(); ok {
		_spec.SetField(smartmapping.FieldTarget, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetID(); ok {
		_spec.SetField(smartmapping.FieldTargetID, field.TypeUUID, value)
	}
	if _u.mutation.TargetIDCleared() {
		_spec.ClearField(smartmapping.FieldTargetID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(smartmapping.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(smartmapping.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UsageCount(); ok {
		_spec.SetField(smartmapping.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsageCount(); ok {
		_spec.AddField(smartmapping.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(smartmapping.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(smartmapping.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(smartmapping.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(smartmapping.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastUsed(); ok {
		_spec.SetField(smartmapping.FieldLastUsed, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(smartmapping.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(smartmapping.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SmartMapping{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{smartmapping.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
