package errors

// ErrorClassification indicates whether an error should trigger a retry.
// Callers of the git layer use it to tell a slow or stuck git process apart
// from a request that can never succeed.
type ErrorClassification string

const (
	// ClassificationRetryable indicates temporary failures that may succeed on retry.
	// Examples: a git invocation killed by the configured timeout.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on retry.
	// Examples: unknown revision, missing path, malformed git output.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps error codes to their default classification.
// This determines the default retry behavior for each error type.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	// Retryable errors (temporary failures)
	CodeTimeout: ClassificationRetryable,

	// Permanent errors (will not succeed on retry)
	CodeNotFound:      ClassificationPermanent,
	CodeInvalidInput:  ClassificationPermanent,
	CodeInvalidConfig: ClassificationPermanent,

	// Git errors (permanent - the same revision and path fail the same way)
	CodeExecutionFailed: ClassificationPermanent,
	CodeNotADirectory:   ClassificationPermanent,
	CodeParseFailed:     ClassificationPermanent,

	// System errors (often permanent, but may be transient)
	CodeInternal: ClassificationPermanent,
	CodeUnknown:  ClassificationPermanent,
}

// getDefaultClassification returns the default classification for an error code.
// Returns ClassificationPermanent if the code is not in the map (safe default).
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent // Safe default
}
