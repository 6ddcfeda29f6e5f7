package logging

// Field names shared by every component so ledger logs can be filtered
// consistently regardless of which command produced them.
const (
	FieldTransactionID = "transaction_id"
	FieldCustomer      = "customer"
	FieldPurpose       = "purpose"
	FieldAmount        = "amount"
	FieldBillType      = "bill_type"
	FieldBudget        = "budget"
	FieldOperation     = "operation"
	FieldBackend       = "backend"
	FieldKey           = "key"
	FieldProvider      = "provider"
	FieldFormat        = "format"
	FieldError         = "error"
	FieldDuration      = "duration_ms"
	FieldCount         = "count"
	FieldInputFile     = "input_file"
	FieldOutputFile    = "output_file"
)
