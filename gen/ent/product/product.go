// Code generated by ent, DO NOT EDIT.

package product

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the product type in the database.
	Label = "product"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBaseProductName holds the string denoting the base_product_name field in the database.
	FieldBaseProductName = "base_product_name"
	// FieldVariantName holds the string denoting the variant_name field in the database.
	FieldVariantName = "variant_name"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldSku holds the string denoting the sku field in the database.
	FieldSku = "sku"
	// FieldPrice holds the string denoting the price field in the database.
	FieldPrice = "price"
	// FieldStock holds the string denoting the stock field in the database.
	FieldStock = "stock"
	// FieldAverageCost holds the string denoting the average_cost field in the database.
	FieldAverageCost = "average_cost"
	// FieldTotalSpent holds the string denoting the total_spent field in the database.
	FieldTotalSpent = "total_spent"
	// FieldTotalPurchased holds the string denoting the total_purchased field in the database.
	FieldTotalPurchased = "total_purchased"
	// FieldCostHistory holds the string denoting the cost_history field in the database.
	FieldCostHistory = "cost_history"
	// FieldPlatformSyncs holds the string denoting the platform_syncs field in the database.
	FieldPlatformSyncs = "platform_syncs"
	// FieldSupplierAliases holds the string denoting the supplier_aliases field in the database.
	FieldSupplierAliases = "supplier_aliases"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeInventoryChanges holds the string denoting the inventory_changes edge name in mutations.
	EdgeInventoryChanges = "inventory_changes"
	// Table holds the table name of the product in the database.
	Table = "products"
	// InventoryChangesTable is the table that holds the inventory_changes relation/edge.
	InventoryChangesTable = "inventory_changes"
	// InventoryChangesInverseTable is the table name for the InventoryChange entity.
	// It exists in this package in order to avoid circular dependency with the "inventorychange" package.
	InventoryChangesInverseTable = "inventory_changes"
	// InventoryChangesColumn is the table column denoting the inventory_changes relation/edge.
	InventoryChangesColumn = "product_id"
)

// Columns holds all SQL columns for product fields.
var Columns = []string{
	FieldID,
	FieldBaseProductName,
	FieldVariantName,
	FieldName,
	FieldSku,
	FieldPrice,
	FieldStock,
	FieldAverageCost,
	FieldTotalSpent,
	FieldTotalPurchased,
	FieldCostHistory,
	FieldPlatformSyncs,
	FieldSupplierAliases,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// BaseProductNameValidator is a validator for the "base_product_name" field. It is called by the builders before save.
	BaseProductNameValidator func(string) error
	// DefaultVariantName holds the default value on creation for the "variant_name" field.
	DefaultVariantName string
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// SkuValidator is a validator for the "sku" field. It is called by the builders before save.
	SkuValidator func(string) error
	// DefaultPrice holds the default value on creation for the "price" field.
	DefaultPrice float64
	// DefaultStock holds the default value on creation for the "stock" field.
	DefaultStock int
	// DefaultAverageCost holds the default value on creation for the "average_cost" field.
	DefaultAverageCost float64
	// DefaultTotalSpent holds the default value on creation for the "total_spent" field.
	DefaultTotalSpent float64
	// DefaultTotalPurchased holds the default value on creation for the "total_purchased" field.
	DefaultTotalPurchased float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Product queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBaseProductName orders the results by the base_product_name field.
func ByBaseProductName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBaseProductName, opts...).ToFunc()
}

// ByVariantName orders the results by the variant_name field.
func ByVariantName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVariantName, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// BySku orders the results by the sku field.
func BySku(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSku, opts...).ToFunc()
}

// ByPrice orders the results by the price field.
func ByPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrice, opts...).ToFunc()
}

// ByStock orders the results by the stock field.
func ByStock(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStock, opts...).ToFunc()
}

// ByAverageCost orders the results by the average_cost field.
func ByAverageCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAverageCost, opts...).ToFunc()
}

// ByTotalSpent orders the results by the total_spent field.
func ByTotalSpent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalSpent, opts...).ToFunc()
}

// ByTotalPurchased orders the results by the total_purchased field.
func ByTotalPurchased(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalPurchased, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByInventoryChangesCount orders the results by inventory_changes count.
func ByInventoryChangesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newInventoryChangesStep(), opts...)
	}
}

// ByInventoryChanges orders the results by inventory_changes terms.
func ByInventoryChanges(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInventoryChangesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newInventoryChangesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InventoryChangesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, InventoryChangesTable, InventoryChangesColumn),
	)
}
