package constants

// MappingType namespaces learned smart mappings.
type MappingType string

const (
	MappingProduct       MappingType = "product"
	MappingEmailSupplier MappingType = "email_supplier"
	MappingExcelColumn   MappingType = "excel_column"
)

// Smart-mapping trust parameters. Confidence starts at InitialConfidence on
// first recording and steps to RepeatConfidence once a mapping has been used
// twice. Mappings at or above AutoConfirmThreshold with at least
// AutoConfirmMinUsage uses may be applied without operator review.
const (
	InitialConfidence    = 80
	RepeatConfidence     = 85
	AutoConfirmThreshold = 85
	AutoConfirmMinUsage  = 3
)

// MaxTrainingSamples caps the per-supplier few-shot ring buffer.
const MaxTrainingSamples = 10
