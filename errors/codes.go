package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Resource errors.

	// CodeNotFound indicates a repository, revision or path does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// Validation errors.

	// CodeInvalidInput indicates the provided input is invalid or malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig indicates a configuration error prevents the operation.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// Execution errors.

	// CodeExecutionFailed indicates an external command exited unsuccessfully.
	// The command, exit code and stderr travel in the error context.
	CodeExecutionFailed ErrorCode = "EXECUTION_FAILED"

	// CodeTimeout indicates an operation exceeded its time limit.
	CodeTimeout ErrorCode = "TIMEOUT"

	// Repository content errors.

	// CodeNotADirectory indicates a path at a revision is not a tree.
	CodeNotADirectory ErrorCode = "NOT_A_DIRECTORY"

	// CodeParseFailed indicates command output did not match its expected format.
	CodeParseFailed ErrorCode = "PARSE_FAILED"

	// System errors.

	// CodeInternal indicates an unexpected internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an error with no specific classification.
	// Errors that are not PlatformErrors report this code.
	CodeUnknown ErrorCode = "UNKNOWN"
)
