package detect

import "errors"

// Code is a stable error code carried by every service error.
type Code string

const (
	// CodeNotInitialized: detection was attempted before a successful
	// Initialize. Caller-side sequencing bug; not worth retrying.
	CodeNotInitialized Code = "not_initialized"
	// CodeModelLoadFailed: the backend/load sequence of an Initialize
	// attempt did not succeed. The service is retryable afterwards.
	CodeModelLoadFailed Code = "model_load_failed"
	// CodeDetectionFailed: one segmentation invocation did not succeed.
	// The service stays Ready; only the one frame is lost.
	CodeDetectionFailed Code = "detection_failed"
)

// Error is the typed error returned by Service operations.
type Error struct {
	Code  Code
	msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.cause }

func errNotInitialized() error {
	return &Error{Code: CodeNotInitialized, msg: "detection service not initialized"}
}

func errModelLoadFailed(cause error) error {
	return &Error{Code: CodeModelLoadFailed, msg: "model load failed", cause: cause}
}

func errDetectionFailed(cause error) error {
	return &Error{Code: CodeDetectionFailed, msg: "detection failed", cause: cause}
}

func hasCode(err error, c Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == c
	}
	return false
}

// IsNotInitialized reports whether err carries CodeNotInitialized.
func IsNotInitialized(err error) bool { return hasCode(err, CodeNotInitialized) }

// IsModelLoadFailed reports whether err carries CodeModelLoadFailed.
func IsModelLoadFailed(err error) bool { return hasCode(err, CodeModelLoadFailed) }

// IsDetectionFailed reports whether err carries CodeDetectionFailed.
func IsDetectionFailed(err error) bool { return hasCode(err, CodeDetectionFailed) }
