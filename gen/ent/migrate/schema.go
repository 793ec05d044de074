// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// InventoryChangesColumns holds the columns for the "inventory_changes" table.
	InventoryChangesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "transaction_id", Type: field.TypeUUID, Nullable: true},
		{Name: "quantity_change", Type: field.TypeInt},
		{Name: "change_type", Type: field.TypeString},
		{Name: "source", Type: field.TypeString, Nullable: true},
		{Name: "reason", Type: field.TypeString, Nullable: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "product_id", Type: field.TypeUUID},
	}
	// InventoryChangesTable holds the schema information for the "inventory_changes" table.
	InventoryChangesTable = &schema.Table{
		Name:       "inventory_changes",
		Columns:    InventoryChangesColumns,
		PrimaryKey: []*schema.Column{InventoryChangesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "inventory_changes_products_inventory_changes",
				Columns:    []*schema.Column{InventoryChangesColumns[7]},
				RefColumns: []*schema.Column{ProductsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "inventorychange_product_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{InventoryChangesColumns[7], InventoryChangesColumns[6]},
			},
		},
	}
	// InvoiceEmailsColumns holds the columns for the "invoice_emails" table.
	InvoiceEmailsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "email_id", Type: field.TypeString, Unique: true},
		{Name: "date", Type: field.TypeTime},
		{Name: "subject", Type: field.TypeString, Nullable: true},
		{Name: "from", Type: field.TypeString, Nullable: true},
		{Name: "body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "transaction_id", Type: field.TypeUUID, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "supplier_id", Type: field.TypeUUID, Nullable: true},
	}
	// InvoiceEmailsTable holds the schema information for the "invoice_emails" table.
	InvoiceEmailsTable = &schema.Table{
		Name:       "invoice_emails",
		Columns:    InvoiceEmailsColumns,
		PrimaryKey: []*schema.Column{InvoiceEmailsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoice_emails_suppliers_emails",
				Columns:    []*schema.Column{InvoiceEmailsColumns[10]},
				RefColumns: []*schema.Column{SuppliersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// ProductsColumns holds the columns for the "products" table.
	ProductsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "base_product_name", Type: field.TypeString},
		{Name: "variant_name", Type: field.TypeString, Default: "Default"},
		{Name: "name", Type: field.TypeString},
		{Name: "sku", Type: field.TypeString, Unique: true},
		{Name: "price", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "stock", Type: field.TypeInt, Default: 0},
		{Name: "average_cost", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,4)"}},
		{Name: "total_spent", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "total_purchased", Type: field.TypeFloat64, Default: 0},
		{Name: "cost_history", Type: field.TypeJSON, Nullable: true},
		{Name: "platform_syncs", Type: field.TypeJSON, Nullable: true},
		{Name: "supplier_aliases", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProductsTable holds the schema information for the "products" table.
	ProductsTable = &schema.Table{
		Name:       "products",
		Columns:    ProductsColumns,
		PrimaryKey: []*schema.Column{ProductsColumns[0]},
	}
	// SmartMappingsColumns holds the columns for the "smart_mappings" table.
	SmartMappingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "mapping_type", Type: field.TypeString},
		{Name: "source", Type: field.TypeString},
		{Name: "target", Type: field.TypeString},
		{Name: "target_id", Type: field.TypeUUID, Nullable: true},
		{Name: "confidence", Type: field.TypeInt, Default: 80},
		{Name: "usage_count", Type: field.TypeInt, Default: 1},
		{Name: "score", Type: field.TypeInt, Default: 80},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "last_used", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SmartMappingsTable holds the schema information for the "smart_mappings" table.
	SmartMappingsTable = &schema.Table{
		Name:       "smart_mappings",
		Columns:    SmartMappingsColumns,
		PrimaryKey: []*schema.Column{SmartMappingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "smartmapping_mapping_type_source",
				Unique:  true,
				Columns: []*schema.Column{SmartMappingsColumns[1], SmartMappingsColumns[2]},
			},
			{
				Name:    "smartmapping_mapping_type_score",
				Unique:  false,
				Columns: []*schema.Column{SmartMappingsColumns[1], SmartMappingsColumns[7]},
			},
		},
	}
	// SuppliersColumns holds the columns for the "suppliers" table.
	SuppliersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "aliases", Type: field.TypeJSON, Nullable: true},
		{Name: "invoice_email", Type: field.TypeString, Nullable: true},
		{Name: "invoice_subject", Type: field.TypeString, Nullable: true},
		{Name: "sku_prefix", Type: field.TypeString, Nullable: true},
		{Name: "parsing_config", Type: field.TypeJSON, Nullable: true},
		{Name: "training_samples", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SuppliersTable holds the schema information for the "suppliers" table.
	SuppliersTable = &schema.Table{
		Name:       "suppliers",
		Columns:    SuppliersColumns,
		PrimaryKey: []*schema.Column{SuppliersColumns[0]},
	}
	// TransactionsColumns holds the columns for the "transactions" table.
	TransactionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "date", Type: field.TypeTime},
		{Name: "type", Type: field.TypeString, Default: "sale"},
		{Name: "amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "source", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "completed"},
		{Name: "products", Type: field.TypeJSON, Nullable: true},
		{Name: "line_items", Type: field.TypeJSON, Nullable: true},
		{Name: "pre_tax_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "tax_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "tip", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "is_taxable", Type: field.TypeBool, Nullable: true},
		{Name: "draft", Type: field.TypeBool, Nullable: true},
		{Name: "customer", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "payment_method", Type: field.TypeString, Nullable: true},
		{Name: "external_id", Type: field.TypeString, Nullable: true},
		{Name: "shopify_order_id", Type: field.TypeString, Nullable: true},
		{Name: "platform_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "payment_processing", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "supplier_id", Type: field.TypeUUID, Nullable: true},
	}
	// TransactionsTable holds the schema information for the "transactions" table.
	TransactionsTable = &schema.Table{
		Name:       "transactions",
		Columns:    TransactionsColumns,
		PrimaryKey: []*schema.Column{TransactionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "transactions_suppliers_transactions",
				Columns:    []*schema.Column{TransactionsColumns[22]},
				RefColumns: []*schema.Column{SuppliersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "transaction_source_date",
				Unique:  false,
				Columns: []*schema.Column{TransactionsColumns[4], TransactionsColumns[1]},
			},
			{
				Name:    "transaction_external_id",
				Unique:  false,
				Columns: []*schema.Column{TransactionsColumns[16]},
			},
			{
				Name:    "transaction_shopify_order_id",
				Unique:  false,
				Columns: []*schema.Column{TransactionsColumns[17]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		InventoryChangesTable,
		InvoiceEmailsTable,
		ProductsTable,
		SmartMappingsTable,
		SuppliersTable,
		TransactionsTable,
	}
)

func init() {
	InventoryChangesTable.ForeignKeys[0].RefTable = ProductsTable
	InventoryChangesTable.Annotation = &entsql.Annotation{
		Table: "inventory_changes",
	}
	InvoiceEmailsTable.ForeignKeys[0].RefTable = SuppliersTable
	InvoiceEmailsTable.Annotation = &entsql.Annotation{
		Table: "invoice_emails",
	}
	ProductsTable.Annotation = &entsql.Annotation{
		Table: "products",
	}
	SmartMappingsTable.Annotation = &entsql.Annotation{
		Table: "smart_mappings",
	}
	SuppliersTable.Annotation = &entsql.Annotation{
		Table: "suppliers",
	}
	TransactionsTable.ForeignKeys[0].RefTable = SuppliersTable
	TransactionsTable.Annotation = &entsql.Annotation{
		Table: "transactions",
	}
}
