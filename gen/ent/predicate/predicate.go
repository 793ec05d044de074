// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// InventoryChange is the predicate function for inventorychange builders.
type InventoryChange func(*sql.Selector)

// InvoiceEmail is the predicate function for invoiceemail builders.
type InvoiceEmail func(*sql.Selector)

// Product is the predicate function for product builders.
type Product func(*sql.Selector)

// SmartMapping is the predicate function for smartmapping builders.
type SmartMapping func(*sql.Selector)

// Supplier is the predicate function for supplier builders.
type Supplier func(*sql.Selector)

// Transaction is the predicate function for transaction builders.
type Transaction func(*sql.Selector)
