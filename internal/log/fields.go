package log

import "github.com/shopspring/decimal"

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldEntity    = "entity"
	FieldID        = "id"
	FieldAmount    = "amount"
	FieldCategory  = "category"
	FieldMonth     = "month"
	FieldCount     = "count"
	FieldDuration  = "duration_ms"
	FieldCacheKey  = "cache_key"
	FieldError     = "error"
	FieldErrorType = "error_type"
)

// Components defines standard component names
const (
	ComponentApp        = "app"
	ComponentStore      = "store"
	ComponentBudgetSync = "budget_sync"
	ComponentDashboard  = "dashboard"
	ComponentCache      = "cache"
	ComponentCharts     = "charts"
	ComponentBackend    = "backend"
	ComponentCLI        = "cli"
)

// Operations defines standard operation names
const (
	OpCreate    = "create"
	OpRead      = "read"
	OpUpdate    = "update"
	OpDelete    = "delete"
	OpList      = "list"
	OpQuery     = "query"
	OpAddToGoal = "add_to_goal"
	OpSync      = "sync"
	OpLoad      = "load"
	OpRender    = "render"
	OpStartup   = "startup"
)

// ErrorTypes defines standard error type categories
const (
	ErrorTypeValidation = "validation_error"
	ErrorTypeNotFound   = "not_found_error"
	ErrorTypeInvariant  = "invariant_error"
	ErrorTypeCanceled   = "canceled_error"
	ErrorTypeInternal   = "internal_error"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithEntity names the record an operation touched. id <= 0 is omitted.
func (f LogFields) WithEntity(entity string, id int) LogFields {
	f[FieldEntity] = entity
	if id > 0 {
		f[FieldID] = id
	}
	return f
}

func (f LogFields) WithAmount(amount decimal.Decimal) LogFields {
	f[FieldAmount] = amount.String()
	return f
}

func (f LogFields) WithCategory(category string) LogFields {
	f[FieldCategory] = category
	return f
}

func (f LogFields) WithMonth(monthKey string) LogFields {
	f[FieldMonth] = monthKey
	return f
}

func (f LogFields) WithCacheKey(key string) LogFields {
	f[FieldCacheKey] = key
	return f
}

func (f LogFields) WithCount(n int) LogFields {
	f[FieldCount] = n
	return f
}

// WithError adds the error and its category
func (f LogFields) WithError(err error, errorType string) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
		f[FieldErrorType] = errorType
	}
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
