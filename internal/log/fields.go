package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldID        = "id"
	FieldKind      = "kind"
	FieldAmount    = "amount"
	FieldCategory  = "category"
	FieldDBPath    = "db_path"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentStorage = "storage"
	ComponentLedger  = "ledger"
	ComponentCLI     = "cli"
)

// Operations defines standard operation names
const (
	OpAppend    = "append"
	OpSum       = "sum"
	OpSummarize = "summarize"
	OpMigrate   = "migrate"
	OpStartup   = "startup"
)
