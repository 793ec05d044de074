// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/daydreamers/ops-backend/db/ent/schema"
	"github.com/daydreamers/ops-backend/gen/ent/inventorychange"
	"github.com/daydreamers/ops-backend/gen/ent/invoiceemail"
	"github.com/daydreamers/ops-backend/gen/ent/product"
	"github.com/daydreamers/ops-backend/gen/ent/smartmapping"
	"github.com/daydreamers/ops-backend/gen/ent/supplier"
	"github.com/daydreamers/ops-backend/gen/ent/transaction"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	inventorychangeFields := schema.InventoryChange{}.Fields()
	_ = inventorychangeFields
	// inventorychangeDescTimestamp is the schema descriptor for timestamp field.
	inventorychangeDescTimestamp := inventorychangeFields[7].Descriptor()
	// inventorychange.DefaultTimestamp holds the default value on creation for the timestamp field.
	inventorychange.DefaultTimestamp = inventorychangeDescTimestamp.Default.(func() time.Time)
	// inventorychangeDescID is the schema descriptor for id field.
	inventorychangeDescID := inventorychangeFields[0].Descriptor()
	// inventorychange.DefaultID holds the default value on creation for the id field.
	inventorychange.DefaultID = inventorychangeDescID.Default.(func() uuid.UUID)
	invoiceemailFields := schema.InvoiceEmail{}.Fields()
	_ = invoiceemailFields
	// invoiceemailDescEmailID is the schema descriptor for email_id field.
	invoiceemailDescEmailID := invoiceemailFields[1].Descriptor()
	// invoiceemail.EmailIDValidator is a validator for the "email_id" field. It is called by the builders before save.
	invoiceemail.EmailIDValidator = invoiceemailDescEmailID.Validators[0].(func(string) error)
	// invoiceemailDescStatus is the schema descriptor for status field.
	invoiceemailDescStatus := invoiceemailFields[6].Descriptor()
	// invoiceemail.DefaultStatus holds the default value on creation for the status field.
	invoiceemail.DefaultStatus = invoiceemailDescStatus.Default.(string)
	// invoiceemailDescCreatedAt is the schema descriptor for created_at field.
	invoiceemailDescCreatedAt := invoiceemailFields[9].Descriptor()
	// invoiceemail.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoiceemail.DefaultCreatedAt = invoiceemailDescCreatedAt.Default.(func() time.Time)
	// invoiceemailDescUpdatedAt is the schema descriptor for updated_at field.
	invoiceemailDescUpdatedAt := invoiceemailFields[10].Descriptor()
	// invoiceemail.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoiceemail.DefaultUpdatedAt = invoiceemailDescUpdatedAt.Default.(func() time.Time)
	// invoiceemail.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoiceemail.UpdateDefaultUpdatedAt = invoiceemailDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invoiceemailDescID is the schema descriptor for id field.
	invoiceemailDescID := invoiceemailFields[0].Descriptor()
	// invoiceemail.DefaultID holds the default value on creation for the id field.
	invoiceemail.DefaultID = invoiceemailDescID.Default.(func() uuid.UUID)
	productFields := schema.Product{}.Fields()
	_ = productFields
	// productDescBaseProductName is the schema descriptor for base_product_name field.
	productDescBaseProductName := productFields[1].Descriptor()
	// product.BaseProductNameValidator is a validator for the "base_product_name" field. It is called by the builders before save.
	product.BaseProductNameValidator = productDescBaseProductName.Validators[0].(func(string) error)
	// productDescVariantName is the schema descriptor for variant_name field.
	productDescVariantName := productFields[2].Descriptor()
	// product.DefaultVariantName holds the default value on creation for the variant_name field.
	product.DefaultVariantName = productDescVariantName.Default.(string)
	// productDescName is the schema descriptor for name field.
	productDescName := productFields[3].Descriptor()
	// product.NameValidator is a validator for the "name" field. It is called by the builders before save.
	product.NameValidator = productDescName.Validators[0].(func(string) error)
	// productDescSku is the schema descriptor for sku field.
	productDescSku := productFields[4].Descriptor()
	// product.SkuValidator is a validator for the "sku" field. It is called by the builders before save.
	product.SkuValidator = productDescSku.Validators[0].(func(string) error)
	// productDescPrice is the schema descriptor for price field.
	productDescPrice := productFields[5].Descriptor()
	// product.DefaultPrice holds the default value on creation for the price field.
	product.DefaultPrice = productDescPrice.Default.(float64)
	// productDescStock is the schema descriptor for stock field.
	productDescStock := productFields[6].Descriptor()
	// product.DefaultStock holds the default value on creation for the stock field.
	product.DefaultStock = productDescStock.Default.(int)
	// productDescAverageCost is the schema descriptor for average_cost field.
	productDescAverageCost := productFields[7].Descriptor()
	// product.DefaultAverageCost holds the default value on creation for the average_cost field.
	product.DefaultAverageCost = productDescAverageCost.Default.(float64)
	// productDescTotalSpent is the schema descriptor for total_spent field.
	productDescTotalSpent := productFields[8].Descriptor()
	// product.DefaultTotalSpent holds the default value on creation for the total_spent field.
	product.DefaultTotalSpent = productDescTotalSpent.Default.(float64)
	// productDescTotalPurchased is the schema descriptor for total_purchased field.
	productDescTotalPurchased := productFields[9].Descriptor()
	// product.DefaultTotalPurchased holds the default value on creation for the total_purchased field.
	product.DefaultTotalPurchased = productDescTotalPurchased.Default.(float64)
	// productDescCreatedAt is the schema descriptor for created_at field.
	productDescCreatedAt := productFields[13].Descriptor()
	// product.DefaultCreatedAt holds the default value on creation for the created_at field.
	product.DefaultCreatedAt = productDescCreatedAt.Default.(func() time.Time)
	// productDescUpdatedAt is the schema descriptor for updated_at field.
	productDescUpdatedAt := productFields[14].Descriptor()
	// product.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	product.DefaultUpdatedAt = productDescUpdatedAt.Default.(func() time.Time)
	// product.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	product.UpdateDefaultUpdatedAt = productDescUpdatedAt.UpdateDefault.(func() time.Time)
	// productDescID is the schema descriptor for id field.
	productDescID := productFields[0].Descriptor()
	// product.DefaultID holds the default value on creation for the id field.
	product.DefaultID = productDescID.Default.(func() uuid.UUID)
	smartmappingFields := schema.SmartMapping{}.Fields()
	_ = smartmappingFields
	// smartmappingDescMappingType is the schema descriptor for mapping_type field.
	smartmappingDescMappingType := smartmappingFields[1].Descriptor()
	// smartmapping.MappingTypeValidator is a validator for the "mapping_type" field. It is called by the builders before save.
	smartmapping.MappingTypeValidator = smartmappingDescMappingType.Validators[0].(func(string) error)
	// smartmappingDescSource is the schema descriptor for source field.
	smartmappingDescSource := smartmappingFields[2].Descriptor()
	// smartmapping.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	smartmapping.SourceValidator = smartmappingDescSource.Validators[0].(func(string) error)
	// smartmappingDescTarget is the schema descriptor for target field.
	smartmappingDescTarget := smartmappingFields[3].Descriptor()
	// smartmapping.TargetValidator is a validator for the "target" field. It is called by the builders before save.
	smartmapping.TargetValidator = smartmappingDescTarget.Validators[0].(func(string) error)
	// smartmappingDescConfidence is the schema descriptor for confidence field.
	smartmappingDescConfidence := smartmappingFields[5].Descriptor()
	// smartmapping.DefaultConfidence holds the default value on creation for the confidence field.
	smartmapping.DefaultConfidence = smartmappingDescConfidence.Default.(int)
	// smartmapping.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	smartmapping.ConfidenceValidator = func() func(int) error {
		validators := smartmappingDescConfidence.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(confidence int) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// smartmappingDescUsageCount is the schema descriptor for usage_count field.
	smartmappingDescUsageCount := smartmappingFields[6].Descriptor()
	// smartmapping.DefaultUsageCount holds the default value on creation for the usage_count field.
	smartmapping.DefaultUsageCount = smartmappingDescUsageCount.Default.(int)
	// smartmappingDescScore is the schema descriptor for score field.
	smartmappingDescScore := smartmappingFields[7].Descriptor()
	// smartmapping.DefaultScore holds the default value on creation for the score field.
	smartmapping.DefaultScore = smartmappingDescScore.Default.(int)
	// smartmappingDescLastUsed is the schema descriptor for last_used field.
	smartmappingDescLastUsed := smartmappingFields[9].Descriptor()
	// smartmapping.DefaultLastUsed holds the default value on creation for the last_used field.
	smartmapping.DefaultLastUsed = smartmappingDescLastUsed.Default.(func() time.Time)
	// smartmappingDescCreatedAt is the schema descriptor for created_at field.
	smartmappingDescCreatedAt := smartmappingFields[10].Descriptor()
	// smartmapping.DefaultCreatedAt holds the default value on creation for the created_at field.
	smartmapping.DefaultCreatedAt = smartmappingDescCreatedAt.Default.(func() time.Time)
	// smartmappingDescUpdatedAt is the schema descriptor for updated_at field.
	smartmappingDescUpdatedAt := smartmappingFields[11].Descriptor()
	// smartmapping.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	smartmapping.DefaultUpdatedAt = smartmappingDescUpdatedAt.Default.(func() time.Time)
	// smartmapping.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	smartmapping.UpdateDefaultUpdatedAt = smartmappingDescUpdatedAt.UpdateDefault.(func() time.Time)
	// smartmappingDescID is the schema descriptor for id field.
	smartmappingDescID := smartmappingFields[0].Descriptor()
	// smartmapping.DefaultID holds the default value on creation for the id field.
	smartmapping.DefaultID = smartmappingDescID.Default.(func() uuid.UUID)
	supplierFields := schema.Supplier{}.Fields()
	_ = supplierFields
	// supplierDescName is the schema descriptor for name field.
	supplierDescName := supplierFields[1].Descriptor()
	// supplier.NameValidator is a validator for the "name" field. It is called by the builders before save.
	supplier.NameValidator = supplierDescName.Validators[0].(func(string) error)
	// supplierDescCreatedAt is the schema descriptor for created_at field.
	supplierDescCreatedAt := supplierFields[8].Descriptor()
	// supplier.DefaultCreatedAt holds the default value on creation for the created_at field.
	supplier.DefaultCreatedAt = supplierDescCreatedAt.Default.(func() time.Time)
	// supplierDescUpdatedAt is the schema descriptor for updated_at field.
	supplierDescUpdatedAt := supplierFields[9].Descriptor()
	// supplier.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	supplier.DefaultUpdatedAt = supplierDescUpdatedAt.Default.(func() time.Time)
	// supplier.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	supplier.UpdateDefaultUpdatedAt = supplierDescUpdatedAt.UpdateDefault.(func() time.Time)
	// supplierDescID is the schema descriptor for id field.
	supplierDescID := supplierFields[0].Descriptor()
	// supplier.DefaultID holds the default value on creation for the id field.
	supplier.DefaultID = supplierDescID.Default.(func() uuid.UUID)
	transactionFields := schema.Transaction{}.Fields()
	_ = transactionFields
	// transactionDescType is the schema descriptor for type field.
	transactionDescType := transactionFields[2].Descriptor()
	// transaction.DefaultType holds the default value on creation for the type field.
	transaction.DefaultType = transactionDescType.Default.(string)
	// transactionDescStatus is the schema descriptor for status field.
	transactionDescStatus := transactionFields[5].Descriptor()
	// transaction.DefaultStatus holds the default value on creation for the status field.
	transaction.DefaultStatus = transactionDescStatus.Default.(string)
	// transactionDescCreatedAt is the schema descriptor for created_at field.
	transactionDescCreatedAt := transactionFields[21].Descriptor()
	// transaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	transaction.DefaultCreatedAt = transactionDescCreatedAt.Default.(func() time.Time)
	// transactionDescUpdatedAt is the schema descriptor for updated_at field.
	transactionDescUpdatedAt := transactionFields[22].Descriptor()
	// transaction.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	transaction.DefaultUpdatedAt = transactionDescUpdatedAt.Default.(func() time.Time)
	// transaction.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	transaction.UpdateDefaultUpdatedAt = transactionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// transactionDescID is the schema descriptor for id field.
	transactionDescID := transactionFields[0].Descriptor()
	// transaction.DefaultID holds the default value on creation for the id field.
	transaction.DefaultID = transactionDescID.Default.(func() uuid.UUID)
}
