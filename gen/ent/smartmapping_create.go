// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/daydreamers/ops-backend/gen/ent/smartmapping"
	"github.com/google/uuid"
)

// SmartMappingCreate is the builder for creating a SmartMapping entity.
type SmartMappingCreate struct {
	config
	mutation *SmartMappingMutation
	hooks    []Hook
}

// SetMappingType sets the "mapping_type" field.
func (_c *SmartMappingCreate) SetMappingType(v string) *SmartMappingCreate {
	_c.mutation.SetMappingType(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *SmartMappingCreate) SetSource(v string) *SmartMappingCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetTarget sets the "target" field.
func (_c *SmartMappingCreate) SetTarget(v string) *SmartMappingCreate {
	_c.mutation.SetTarget(v)
	return _c
}

// SetTargetID sets the "target_id" field.
func (_c *SmartMappingCreate) SetTargetID(v uuid.UUID) *SmartMappingCreate {
	_c.mutation.SetTargetID(v)
	return _c
}

// SetNillableTargetID sets the "target_id" field if the given value is not nil.
func (_c *SmartMappingCreate) SetNillableTargetID(v *uuid.UUID) *SmartMappingCreate {
	if v != nil {
		_c.SetTargetID(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *SmartMappingCreate) SetConfidence(v int) *SmartMappingCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *SmartMappingCreate) SetNillableConfidence(v *int) *SmartMappingCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetUsageCount sets the "usage_count" field.
func (_c *SmartMappingCreate) SetUsageCount(v int) *SmartMappingCreate {
	_c.mutation.SetUsageCount(v)
	return _c
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (_c *SmartMappingCreate) SetNillableUsageCount(v *int) *SmartMappingCreate {
	if v != nil {
		_c.SetUsageCount(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *SmartMappingCreate) SetScore(v int) *SmartMappingCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *SmartMappingCreate) SetNillableScore(v *int) *SmartMappingCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *SmartMappingCreate) SetMetadata(v map[string]string) *SmartMappingCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetLastUsed sets the "last_used" field.
func (_c *SmartMappingCreate) SetLastUsed(v time.Time) *SmartMappingCreate {
	_c.mutation.SetLastUsed(v)
	return _c
}

// SetNillableLastUsed sets the "last_used" field if the given value is not nil.
func (_c *SmartMappingCreate) SetNillableLastUsed(v *time.Time) *SmartMappingCreate {
	if v != nil {
		_c.SetLastUsed(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SmartMappingCreate) SetCreatedAt(v time.Time) *SmartMappingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SmartMappingCreate) SetNillableCreatedAt(v *time.Time) *SmartMappingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SmartMappingCreate) SetUpdatedAt(v time.Time) *SmartMappingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SmartMappingCreate) SetNillableUpdatedAt(v *time.Time) *SmartMappingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SmartMappingCreate) SetID(v uuid.UUID) *SmartMappingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SmartMappingCreate) SetNillableID(v *uuid.UUID) *SmartMappingCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the SmartMappingMutation object of the builder.
func (_c *SmartMappingCreate) Mutation() *SmartMappingMutation {
	return _c.mutation
}

// Save creates the SmartMapping in the database.
func (_c *SmartMappingCreate) Save(ctx context.Context) (*SmartMapping, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SmartMappingCreate) SaveX(ctx context.Context) *SmartMapping {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SmartMappingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SmartMappingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SmartMappingCreate) defaults() {
	if _, ok := _c.mutation.Confidence(); !ok {
		v := smartmapping.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.UsageCount(); !ok {
		v := smartmapping.DefaultUsageCount
		_c.mutation.SetUsageCount(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := smartmapping.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.LastUsed(); !ok {
		v := smartmapping.DefaultLastUsed()
		_c.mutation.SetLastUsed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := smartmapping.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := smartmapping.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := smartmapping.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SmartMappingCreate) check() error {
	if _, ok := _c.mutation.MappingType(); !ok {
		return &ValidationError{Name: "mapping_type", err: errors.New(`ent: missing required field "SmartMapping.mapping_type"`)}
	}
	if v, ok := _c.mutation.MappingType(); ok {
		if err := smartmapping.MappingTypeValidator(v); err != nil {
			return &ValidationError{Name: "mapping_type", err: fmt.Errorf(`ent: validator failed for field "SmartMapping.mapping_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "SmartMapping.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := smartmapping.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "SmartMapping.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Target(); !ok {
		return &ValidationError{Name: "target", err: errors.New(`ent: missing required field "SmartMapping.target"`)}
	}
	if v, ok := _c.mutation.Target(); ok {
		if err := smartmapping.TargetValidator(v); err != nil {
			return &ValidationError{Name: "target", err: fmt.Errorf(`ent: validator failed for field "SmartMapping.target": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "SmartMapping.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := smartmapping.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "SmartMapping.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UsageCount(); !ok {
		return &ValidationError{Name: "usage_count", err: errors.New(`ent: missing required field "SmartMapping.usage_count"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "SmartMapping.score"`)}
	}
	if _, ok := _c.mutation.LastUsed(); !ok {
		return &ValidationError{Name: "last_used", err: errors.New(`ent: missing required field "SmartMapping.last_used"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SmartMapping.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SmartMapping.updated_at"`)}
	}
	return nil
}

func (_c *SmartMappingCreate) sqlSave(ctx context.Context) (*SmartMapping, error) {
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

func (_c *SmartMappingCreate) createSpec() (*SmartMapping, *sqlgraph.CreateSpec) {
	var (
		_node = &SmartMapping{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(smartmapping.Table, sqlgraph.NewFieldSpec(smartmapping.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.MappingType(); ok {
		_spec.SetField(smartmapping.FieldMappingType, field.TypeString, value)
		_node.MappingType = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(smartmapping.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Target(); ok {
		_spec.SetField(smartmapping.FieldTarget, field.TypeString, value)
		_node.Target = value
	}
	if value, ok := _c.mutation.TargetID(); ok {
		_spec.SetField(smartmapping.FieldTargetID, field.TypeUUID, value)
		_node.TargetID = &value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(smartmapping.FieldConfidence, field.TypeInt, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.UsageCount(); ok {
		_spec.SetField(smartmapping.FieldUsageCount, field.TypeInt, value)
		_node.UsageCount = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(smartmapping.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(smartmapping.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.LastUsed(); ok {
		_spec.SetField(smartmapping.FieldLastUsed, field.TypeTime, value)
		_node.LastUsed = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(smartmapping.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(smartmapping.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SmartMappingCreateBulk is the builder for creating many SmartMapping entities in bulk.
type SmartMappingCreateBulk struct {
	config
	err      error
	builders []*SmartMappingCreate
}

// Save creates the SmartMapping entities in the database.
func (_c *SmartMappingCreateBulk) Save(ctx context.Context) ([]*SmartMapping, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SmartMapping, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SmartMappingMutation)
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
func (_c *SmartMappingCreateBulk) SaveX(ctx context.Context) []*SmartMapping {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SmartMappingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SmartMappingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
