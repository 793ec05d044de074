// Code generated by ent, DO NOT EDIT.

package smartmapping

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/daydreamers/ops-backend/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldLTE(FieldID, id))
}

// MappingType applies equality check predicate on the "mapping_type" field. It's identical to MappingTypeEQ.
func MappingType(v string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldEQ(FieldMappingType, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldEQ(FieldSource, v))
}

// Target applies equality check predicate on the "target" field. It's identical to TargetEQ.
func Target(v string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldEQ(FieldTarget, v))
}

// TargetID applies equality check predicate on the "target_id" field. It's identical to TargetIDEQ.
func TargetID(v uuid.UUID) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldEQ(FieldTargetID, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v int) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldEQ(FieldConfidence, v))
}

// UsageCount applies equality check predicate on the "usage_count" field. It's identical to UsageCountEQ.
func UsageCount(v int) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldEQ(FieldUsageCount, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldEQ(FieldScore, v))
}

// LastUsed applies equality check predicate on the "last_used" field. It's identical to LastUsedEQ.
func LastUsed(v time.Time) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldEQ(FieldLastUsed, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldEQ(FieldUpdatedAt, v))
}

// MappingTypeEQ applies the EQ predicate on the "mapping_type" field.
func MappingTypeEQ(v string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldEQ(FieldMappingType, v))
}

// MappingTypeNEQ applies the NEQ predicate on the "mapping_type" field.
func MappingTypeNEQ(v string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldNEQ(FieldMappingType, v))
}

// MappingTypeIn applies the In predicate on the "mapping_type" field.
func MappingTypeIn(vs ...string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldIn(FieldMappingType, vs...))
}

// MappingTypeNotIn applies the NotIn predicate on the "mapping_type" field.
func MappingTypeNotIn(vs ...string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldNotIn(FieldMappingType, vs...))
}

// MappingTypeGT applies the GT predicate on the "mapping_type" field.
func MappingTypeGT(v string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldGT(FieldMappingType, v))
}

// MappingTypeGTE applies the GTE predicate on the "mapping_type" field.
func MappingTypeGTE(v string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldGTE(FieldMappingType, v))
}

// MappingTypeLT applies the LT predicate on the "mapping_type" field.
func MappingTypeLT(v string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldLT(FieldMappingType, v))
}

// MappingTypeLTE applies the LTE predicate on the "mapping_type" field.
func MappingTypeLTE(v string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldLTE(FieldMappingType, v))
}

// MappingTypeContains applies the Contains predicate on the "mapping_type" field.
func MappingTypeContains(v string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldContains(FieldMappingType, v))
}

// MappingTypeHasPrefix applies the HasPrefix predicate on the "mapping_type" field.
func MappingTypeHasPrefix(v string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldHasPrefix(FieldMappingType, v))
}

// MappingTypeHasSuffix applies the HasSuffix predicate on the "mapping_type" field.
func MappingTypeHasSuffix(v string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldHasSuffix(FieldMappingType, v))
}

// MappingTypeEqualFold applies the EqualFold predicate on the "mapping_type" field.
func MappingTypeEqualFold(v string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldEqualFold(FieldMappingType, v))
}

// MappingTypeContainsFold applies the ContainsFold predicate on the "mapping_type" field.
func MappingTypeContainsFold(v string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldContainsFold(FieldMappingType, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldContainsFold(FieldSource, v))
}

// TargetEQ applies the EQ predicate on the "target" field.
func TargetEQ(v string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldEQ(FieldTarget, v))
}

// TargetNEQ applies the NEQ predicate on the "target" field.
func TargetNEQ(v string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldNEQ(FieldTarget, v))
}

// TargetIn applies the In predicate on the "target" field.
func TargetIn(vs ...string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldIn(FieldTarget, vs...))
}

// TargetNotIn applies the NotIn predicate on the "target" field.
func TargetNotIn(vs ...string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldNotIn(FieldTarget, vs...))
}

// TargetGT applies the GT predicate on the "target" field.
func TargetGT(v string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldGT(FieldTarget, v))
}

// TargetGTE applies the GTE predicate on the "target" field.
func TargetGTE(v string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldGTE(FieldTarget, v))
}

// TargetLT applies the LT predicate on the "target" field.
func TargetLT(v string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldLT(FieldTarget, v))
}

// TargetLTE applies the LTE predicate on the "target" field.
func TargetLTE(v string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldLTE(FieldTarget, v))
}

// TargetContains applies the Contains predicate on the "target" field.
func TargetContains(v string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldContains(FieldTarget, v))
}

// TargetHasPrefix applies the HasPrefix predicate on the "target" field.
func TargetHasPrefix(v string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldHasPrefix(FieldTarget, v))
}

// TargetHasSuffix applies the HasSuffix predicate on the "target" field.
func TargetHasSuffix(v string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldHasSuffix(FieldTarget, v))
}

// TargetEqualFold applies the EqualFold predicate on the "target" field.
func TargetEqualFold(v string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldEqualFold(FieldTarget, v))
}

// TargetContainsFold applies the ContainsFold predicate on the "target" field.
func TargetContainsFold(v string) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldContainsFold(FieldTarget, v))
}

// TargetIDEQ applies the EQ predicate on the "target_id" field.
func TargetIDEQ(v uuid.UUID) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldEQ(FieldTargetID, v))
}

// TargetIDNEQ applies the NEQ predicate on the "target_id" field.
func TargetIDNEQ(v uuid.UUID) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldNEQ(FieldTargetID, v))
}

// TargetIDIn applies the In predicate on the "target_id" field.
func TargetIDIn(vs ...uuid.UUID) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldIn(FieldTargetID, vs...))
}

// TargetIDNotIn applies the NotIn predicate on the "target_id" field.
func TargetIDNotIn(vs ...uuid.UUID) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldNotIn(FieldTargetID, vs...))
}

// TargetIDGT applies the GT predicate on the "target_id" field.
func TargetIDGT(v uuid.UUID) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldGT(FieldTargetID, v))
}

// TargetIDGTE applies the GTE predicate on the "target_id" field.
func TargetIDGTE(v uuid.UUID) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldGTE(FieldTargetID, v))
}

// TargetIDLT applies the LT predicate on the "target_id" field.
func TargetIDLT(v uuid.UUID) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldLT(FieldTargetID, v))
}

// TargetIDLTE applies the LTE predicate on the "target_id" field.
func TargetIDLTE(v uuid.UUID) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldLTE(FieldTargetID, v))
}

// TargetIDIsNil applies the IsNil predicate on the "target_id" field.
func TargetIDIsNil() predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldIsNull(FieldTargetID))
}

// TargetIDNotNil applies the NotNil predicate on the "target_id" field.
func TargetIDNotNil() predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldNotNull(FieldTargetID))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v int) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v int) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...int) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...int) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v int) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v int) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v int) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v int) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldLTE(FieldConfidence, v))
}

// UsageCountEQ applies the EQ predicate on the "usage_count" field.
func UsageCountEQ(v int) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldEQ(FieldUsageCount, v))
}

// UsageCountNEQ applies the NEQ predicate on the "usage_count" field.
func UsageCountNEQ(v int) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldNEQ(FieldUsageCount, v))
}

// UsageCountIn applies the In predicate on the "usage_count" field.
func UsageCountIn(vs ...int) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldIn(FieldUsageCount, vs...))
}

// UsageCountNotIn applies the NotIn predicate on the "usage_count" field.
func UsageCountNotIn(vs ...int) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldNotIn(FieldUsageCount, vs...))
}

// UsageCountGT applies the GT predicate on the "usage_count" field.
func UsageCountGT(v int) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldGT(FieldUsageCount, v))
}

// UsageCountGTE applies the GTE predicate on the "usage_count" field.
func UsageCountGTE(v int) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldGTE(FieldUsageCount, v))
}

// UsageCountLT applies the LT predicate on the "usage_count" field.
func UsageCountLT(v int) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldLT(FieldUsageCount, v))
}

// UsageCountLTE applies the LTE predicate on the "usage_count" field.
func UsageCountLTE(v int) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldLTE(FieldUsageCount, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldLTE(FieldScore, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldNotNull(FieldMetadata))
}

// LastUsedEQ applies the EQ predicate on the "last_used" field.
func LastUsedEQ(v time.Time) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldEQ(FieldLastUsed, v))
}

// LastUsedNEQ applies the NEQ predicate on the "last_used" field.
func LastUsedNEQ(v time.Time) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldNEQ(FieldLastUsed, v))
}

// LastUsedIn applies the In predicate on the "last_used" field.
func LastUsedIn(vs ...time.Time) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldIn(FieldLastUsed, vs...))
}

// LastUsedNotIn applies the NotIn predicate on the "last_used" field.
func LastUsedNotIn(vs ...time.Time) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldNotIn(FieldLastUsed, vs...))
}

// LastUsedGT applies the GT predicate on the "last_used" field.
func LastUsedGT(v time.Time) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldGT(FieldLastUsed, v))
}

// LastUsedGTE applies the GTE predicate on the "last_used" field.
func LastUsedGTE(v time.Time) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldGTE(FieldLastUsed, v))
}

// LastUsedLT applies the LT predicate on the "last_used" field.
func LastUsedLT(v time.Time) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldLT(FieldLastUsed, v))
}

// LastUsedLTE applies the LTE predicate on the "last_used" field.
func LastUsedLTE(v time.Time) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldLTE(FieldLastUsed, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SmartMapping {
	return predicate.SmartMapping(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SmartMapping) predicate.SmartMapping {
	return predicate.SmartMapping(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SmartMapping) predicate.SmartMapping {
	return predicate.SmartMapping(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SmartMapping) predicate.SmartMapping {
	return predicate.SmartMapping(sql.NotPredicates(p))
}
