package errors

// PlatformError is an error with a code, a retry classification and
// optional context fields.
type PlatformError interface {
	error

	// Code returns the error code.
	Code() ErrorCode

	// Classification reports whether the error is retryable.
	Classification() ErrorClassification

	// Message returns the message without the cause appended.
	Message() string

	// Context returns a copy of the attached fields, or nil.
	Context() map[string]interface{}

	// Unwrap returns the cause, or nil.
	Unwrap() error
}
