// Code generated by ent, DO NOT EDIT.

package product

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/daydreamers/ops-backend/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldID, id))
}

// BaseProductName applies equality check predicate on the "base_product_name" field. It's identical to BaseProductNameEQ.
func BaseProductName(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldBaseProductName, v))
}

// VariantName applies equality check predicate on the "variant_name" field. It's identical to VariantNameEQ.
func VariantName(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldVariantName, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldName, v))
}

// Sku applies equality check predicate on the "sku" field. It's identical to SkuEQ.
func Sku(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldSku, v))
}

// Price applies equality check predicate on the "price" field. It's identical to PriceEQ.
func Price(v float64) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldPrice, v))
}

// Stock applies equality check predicate on the "stock" field. It's identical to StockEQ.
func Stock(v int) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldStock, v))
}

// AverageCost applies equality check predicate on the "average_cost" field. It's identical to AverageCostEQ.
func AverageCost(v float64) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldAverageCost, v))
}

// TotalSpent applies equality check predicate on the "total_spent" field. It's identical to TotalSpentEQ.
func TotalSpent(v float64) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldTotalSpent, v))
}

// TotalPurchased applies equality check predicate on the "total_purchased" field. It's identical to TotalPurchasedEQ.
func TotalPurchased(v float64) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldTotalPurchased, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldUpdatedAt, v))
}

// BaseProductNameEQ applies the EQ predicate on the "base_product_name" field.
func BaseProductNameEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldBaseProductName, v))
}

// BaseProductNameNEQ applies the NEQ predicate on the "base_product_name" field.
func BaseProductNameNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldBaseProductName, v))
}

// BaseProductNameIn applies the In predicate on the "base_product_name" field.
func BaseProductNameIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldBaseProductName, vs...))
}

// BaseProductNameNotIn applies the NotIn predicate on the "base_product_name" field.
func BaseProductNameNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldBaseProductName, vs...))
}

// BaseProductNameGT applies the GT predicate on the "base_product_name" field.
func BaseProductNameGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldBaseProductName, v))
}

// BaseProductNameGTE applies the GTE predicate on the "base_product_name" field.
func BaseProductNameGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldBaseProductName, v))
}

// BaseProductNameLT applies the LT predicate on the "base_product_name" field.
func BaseProductNameLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldBaseProductName, v))
}

// BaseProductNameLTE applies the LTE predicate on the "base_product_name" field.
func BaseProductNameLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldBaseProductName, v))
}

// BaseProductNameContains applies the Contains predicate on the "base_product_name" field.
func BaseProductNameContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldBaseProductName, v))
}

// BaseProductNameHasPrefix applies the HasPrefix predicate on the "base_product_name" field.
func BaseProductNameHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldBaseProductName, v))
}

// BaseProductNameHasSuffix applies the HasSuffix predicate on the "base_product_name" field.
func BaseProductNameHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldBaseProductName, v))
}

// BaseProductNameEqualFold applies the EqualFold predicate on the "base_product_name" field.
func BaseProductNameEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldBaseProductName, v))
}

// BaseProductNameContainsFold applies the ContainsFold predicate on the "base_product_name" field.
func BaseProductNameContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldBaseProductName, v))
}

// VariantNameEQ applies the EQ predicate on the "variant_name" field.
func VariantNameEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldVariantName, v))
}

// VariantNameNEQ applies the NEQ predicate on the "variant_name" field.
func VariantNameNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldVariantName, v))
}

// VariantNameIn applies the In predicate on the "variant_name" field.
func VariantNameIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldVariantName, vs...))
}

// VariantNameNotIn applies the NotIn predicate on the "variant_name" field.
func VariantNameNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldVariantName, vs...))
}

// VariantNameGT applies the GT predicate on the "variant_name" field.
func VariantNameGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldVariantName, v))
}

// VariantNameGTE applies the GTE predicate on the "variant_name" field.
func VariantNameGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldVariantName, v))
}

// VariantNameLT applies the LT predicate on the "variant_name" field.
func VariantNameLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldVariantName, v))
}

// VariantNameLTE applies the LTE predicate on the "variant_name" field.
func VariantNameLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldVariantName, v))
}

// VariantNameContains applies the Contains predicate on the "variant_name" field.
func VariantNameContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldVariantName, v))
}

// VariantNameHasPrefix applies the HasPrefix predicate on the "variant_name" field.
func VariantNameHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldVariantName, v))
}

// VariantNameHasSuffix applies the HasSuffix predicate on the "variant_name" field.
func VariantNameHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldVariantName, v))
}

// VariantNameEqualFold applies the EqualFold predicate on the "variant_name" field.
func VariantNameEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldVariantName, v))
}

// VariantNameContainsFold applies the ContainsFold predicate on the "variant_name" field.
func VariantNameContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldVariantName, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldName, v))
}

// SkuEQ applies the EQ predicate on the "sku" field.
func SkuEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldSku, v))
}

// SkuNEQ applies the NEQ predicate on the "sku" field.
func SkuNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldSku, v))
}

// SkuIn applies the In predicate on the "sku" field.
func SkuIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldSku, vs...))
}

// SkuNotIn applies the NotIn predicate on the "sku" field.
func SkuNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldSku, vs...))
}

// SkuGT applies the GT predicate on the "sku" field.
func SkuGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldSku, v))
}

// SkuGTE applies the GTE predicate on the "sku" field.
func SkuGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldSku, v))
}

// SkuLT applies the LT predicate on the "sku" field.
func SkuLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldSku, v))
}

// SkuLTE applies the LTE predicate on the "sku" field.
func SkuLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldSku, v))
}

// SkuContains applies the Contains predicate on the "sku" field.
func SkuContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldSku, v))
}

// SkuHasPrefix applies the HasPrefix predicate on the "sku" field.
func SkuHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldSku, v))
}

// SkuHasSuffix applies the HasSuffix predicate on the "sku" field.
func SkuHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldSku, v))
}

// SkuEqualFold applies the EqualFold predicate on the "sku" field.
func SkuEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldSku, v))
}

// SkuContainsFold applies the ContainsFold predicate on the "sku" field.
func SkuContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldSku, v))
}

// PriceEQ applies the EQ predicate on the "price" field.
func PriceEQ(v float64) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldPrice, v))
}

// PriceNEQ applies the NEQ predicate on the "price" field.
func PriceNEQ(v float64) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldPrice, v))
}

// PriceIn applies the In predicate on the "price" field.
func PriceIn(vs ...float64) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldPrice, vs...))
}

// PriceNotIn applies the NotIn predicate on the "price" field.
func PriceNotIn(vs ...float64) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldPrice, vs...))
}

// PriceGT applies the GT predicate on the "price" field.
func PriceGT(v float64) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldPrice, v))
}

// PriceGTE applies the GTE predicate on the "price" field.
func PriceGTE(v float64) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldPrice, v))
}

// PriceLT applies the LT predicate on the "price" field.
func PriceLT(v float64) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldPrice, v))
}

// PriceLTE applies the LTE predicate on the "price" field.
func PriceLTE(v float64) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldPrice, v))
}

// StockEQ applies the EQ predicate on the "stock" field.
func StockEQ(v int) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldStock, v))
}

// StockNEQ applies the NEQ predicate on the "stock" field.
func StockNEQ(v int) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldStock, v))
}

// StockIn applies the In predicate on the "stock" field.
func StockIn(vs ...int) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldStock, vs...))
}

// StockNotIn applies the NotIn predicate on the "stock" field.
func StockNotIn(vs ...int) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldStock, vs...))
}

// StockGT applies the GT predicate on the "stock" field.
func StockGT(v int) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldStock, v))
}

// StockGTE applies the GTE predicate on the "stock" field.
func StockGTE(v int) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldStock, v))
}

// StockLT applies the LT predicate on the "stock" field.
func StockLT(v int) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldStock, v))
}

// StockLTE applies the LTE predicate on the "stock" field.
func StockLTE(v int) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldStock, v))
}

// AverageCostEQ applies the EQ predicate on the "average_cost" field.
func AverageCostEQ(v float64) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldAverageCost, v))
}

// AverageCostNEQ applies the NEQ predicate on the "average_cost" field.
func AverageCostNEQ(v float64) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldAverageCost, v))
}

// AverageCostIn applies the In predicate on the "average_cost" field.
func AverageCostIn(vs ...float64) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldAverageCost, vs...))
}

// AverageCostNotIn applies the NotIn predicate on the "average_cost" field.
func AverageCostNotIn(vs ...float64) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldAverageCost, vs...))
}

// AverageCostGT applies the GT predicate on the "average_cost" field.
func AverageCostGT(v float64) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldAverageCost, v))
}

// AverageCostGTE applies the GTE predicate on the "average_cost" field.
func AverageCostGTE(v float64) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldAverageCost, v))
}

// AverageCostLT applies the LT predicate on the "average_cost" field.
func AverageCostLT(v float64) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldAverageCost, v))
}

// AverageCostLTE applies the LTE predicate on the "average_cost" field.
func AverageCostLTE(v float64) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldAverageCost, v))
}

// TotalSpentEQ applies the EQ predicate on the "total_spent" field.
func TotalSpentEQ(v float64) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldTotalSpent, v))
}

// TotalSpentNEQ applies the NEQ predicate on the "total_spent" field.
func TotalSpentNEQ(v float64) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldTotalSpent, v))
}

// TotalSpentIn applies the In predicate on the "total_spent" field.
func TotalSpentIn(vs ...float64) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldTotalSpent, vs...))
}

// TotalSpentNotIn applies the NotIn predicate on the "total_spent" field.
func TotalSpentNotIn(vs ...float64) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldTotalSpent, vs...))
}

// TotalSpentGT applies the GT predicate on the "total_spent" field.
func TotalSpentGT(v float64) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldTotalSpent, v))
}

// TotalSpentGTE applies the GTE predicate on the "total_spent" field.
func TotalSpentGTE(v float64) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldTotalSpent, v))
}

// TotalSpentLT applies the LT predicate on the "total_spent" field.
func TotalSpentLT(v float64) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldTotalSpent, v))
}

// TotalSpentLTE applies the LTE predicate on the "total_spent" field.
func TotalSpentLTE(v float64) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldTotalSpent, v))
}

// TotalPurchasedEQ applies the EQ predicate on the "total_purchased" field.
func TotalPurchasedEQ(v float64) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldTotalPurchased, v))
}

// TotalPurchasedNEQ applies the NEQ predicate on the "total_purchased" field.
func TotalPurchasedNEQ(v float64) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldTotalPurchased, v))
}

// TotalPurchasedIn applies the In predicate on the "total_purchased" field.
func TotalPurchasedIn(vs ...float64) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldTotalPurchased, vs...))
}

// TotalPurchasedNotIn applies the NotIn predicate on the "total_purchased" field.
func TotalPurchasedNotIn(vs ...float64) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldTotalPurchased, vs...))
}

// TotalPurchasedGT applies the GT predicate on the "total_purchased" field.
func TotalPurchasedGT(v float64) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldTotalPurchased, v))
}

// TotalPurchasedGTE applies the GTE predicate on the "total_purchased" field.
func TotalPurchasedGTE(v float64) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldTotalPurchased, v))
}

// TotalPurchasedLT applies the LT predicate on the "total_purchased" field.
func TotalPurchasedLT(v float64) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldTotalPurchased, v))
}

// TotalPurchasedLTE applies the LTE predicate on the "total_purchased" field.
func TotalPurchasedLTE(v float64) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldTotalPurchased, v))
}

// CostHistoryIsNil applies the IsNil predicate on the "cost_history" field.
func CostHistoryIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldCostHistory))
}

// CostHistoryNotNil applies the NotNil predicate on the "cost_history" field.
func CostHistoryNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldCostHistory))
}

// PlatformSyncsIsNil applies the IsNil predicate on the "platform_syncs" field.
func PlatformSyncsIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldPlatformSyncs))
}

// PlatformSyncsNotNil applies the NotNil predicate on the "platform_syncs" field.
func PlatformSyncsNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldPlatformSyncs))
}

// SupplierAliasesIsNil applies the IsNil predicate on the "supplier_aliases" field.
func SupplierAliasesIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldSupplierAliases))
}

// SupplierAliasesNotNil applies the NotNil predicate on the "supplier_aliases" field.
func SupplierAliasesNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldSupplierAliases))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasInventoryChanges applies the HasEdge predicate on the "inventory_changes" edge.
func HasInventoryChanges() predicate.Product {
	return predicate.Product(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, InventoryChangesTable, InventoryChangesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInventoryChangesWith applies the HasEdge predicate on the "inventory_changes" edge with a given conditions (other predicates).
func HasInventoryChangesWith(preds ...predicate.InventoryChange) predicate.Product {
	return predicate.Product(func(s *sql.Selector) {
		step := newInventoryChangesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Product) predicate.Product {
	return predicate.Product(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Product) predicate.Product {
	return predicate.Product(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Product) predicate.Product {
	return predicate.Product(sql.NotPredicates(p))
}
