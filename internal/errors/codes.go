package errors

// ErrorCode represents a standardized error code used throughout the service
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
)

// Category error codes (CATEGORY_*)
const (
	CategoryInvalid ErrorCode = "CATEGORY_001"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound  ErrorCode = "TRANSACTION_001"
	TransactionInvalidID ErrorCode = "TRANSACTION_002"
)

// Component error codes (COMPONENT_*)
const (
	ComponentUnknown      ErrorCode = "COMPONENT_001"
	ComponentRenderFailed ErrorCode = "COMPONENT_002"
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
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",

	CategoryInvalid: "Unknown category",

	TransactionNotFound:  "Transaction not found",
	TransactionInvalidID: "Invalid transaction ID format",

	ComponentUnknown:      "Unknown component",
	ComponentRenderFailed: "Component could not be rendered",

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
