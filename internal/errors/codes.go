package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidAmount ErrorCode = "VALIDATION_005"
	ValidationInvalidDate   ErrorCode = "VALIDATION_006"
	ValidationInvalidType   ErrorCode = "VALIDATION_007"
)

// Mutation error codes (MUTATION_*)
const (
	MutationCreateFailed        ErrorCode = "MUTATION_001"
	MutationUpdateFailed        ErrorCode = "MUTATION_002"
	MutationDeleteFailed        ErrorCode = "MUTATION_003"
	MutationTransactionNotFound ErrorCode = "MUTATION_004"
	MutationNotConfirmed        ErrorCode = "MUTATION_005"
)

// State invariant error codes (STATE_*)
const (
	StateCoordinateOutOfBounds ErrorCode = "STATE_001"
	StateUnknownRow            ErrorCode = "STATE_002"
	StateMalformedDate         ErrorCode = "STATE_003"
)

// Grid error codes (GRID_*)
const (
	GridInvalidMonth     ErrorCode = "GRID_001"
	GridCategoryNotFound ErrorCode = "GRID_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidAmount: "Amount is not a valid decimal number",
	ValidationInvalidDate:   "Invalid date format or range",
	ValidationInvalidType:   "Invalid transaction type",

	// Mutation errors
	MutationCreateFailed:        "Failed to create transaction",
	MutationUpdateFailed:        "Failed to update transaction",
	MutationDeleteFailed:        "Failed to delete transaction",
	MutationTransactionNotFound: "Transaction not found",
	MutationNotConfirmed:        "Deletion requires confirmation",

	// State invariant errors
	StateCoordinateOutOfBounds: "Cell coordinate is outside the grid",
	StateUnknownRow:            "Cell coordinate does not address any row",
	StateMalformedDate:         "Transaction carries a malformed date",

	// Grid errors
	GridInvalidMonth:     "Invalid year or month for grid view",
	GridCategoryNotFound: "Category definition not found",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
