// Package errors provides the structured error type shared by every package
// in this module.
//
// A PlatformError carries an ErrorCode, a retry classification, a message,
// optional context fields and an optional cause. It stays compatible with
// the standard library, so errors.Is, errors.As and errors.Unwrap keep
// working across wrapping layers.
//
// Creating and wrapping:
//
//	err := errors.New(errors.CodeNotFound, "repository not found")
//	err = errors.Wrap(cause, errors.CodeExecutionFailed, "git show failed")
//
// Inspecting:
//
//	switch errors.GetCode(err) {
//	case errors.CodeNotADirectory:
//	    // path resolved to a blob
//	case errors.CodeTimeout:
//	    // errors.IsRetryable(err) reports true
//	}
//
// Serialising for command output:
//
//	json.NewEncoder(os.Stderr).Encode(errors.ToJSON(err))
package errors
