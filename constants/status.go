package constants

// TransactionType is the canonical type for rows in transactions.
type TransactionType string

// Stable values (store these exact strings in DB).
const (
	TxTypeSale     TransactionType = "sale"
	TxTypePurchase TransactionType = "purchase"
	TxTypeRefund   TransactionType = "refund"
)

// TransactionSource identifies which external system created a transaction.
type TransactionSource string

const (
	SourceSquare  TransactionSource = "square"
	SourceShopify TransactionSource = "shopify"
	SourceGmail   TransactionSource = "gmail"
	SourceManual  TransactionSource = "manual"
)

// TransactionStatus is the settlement status of a ledger entry.
type TransactionStatus string

const (
	TxStatusCompleted TransactionStatus = "completed"
	TxStatusCancelled TransactionStatus = "cancelled"
	TxStatusRefunded  TransactionStatus = "refunded"
)

// EmailStatus tracks the lifecycle of a captured invoice email.
type EmailStatus string

const (
	EmailPending   EmailStatus = "pending"
	EmailProcessed EmailStatus = "processed"
	EmailIgnored   EmailStatus = "ignored"
)

// ChangeType classifies an inventory ledger event.
type ChangeType string

const (
	ChangeSale       ChangeType = "sale"
	ChangeExpense    ChangeType = "expense"
	ChangeAdjustment ChangeType = "adjustment"
)
