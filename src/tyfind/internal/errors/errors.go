// Package errors defines the daemon's error taxonomy. Every failure that
// crosses the wire is assigned one of the codes below; handlers translate
// internal errors into these before replying.
package errors

import (
	stderr "errors"
	"fmt"
)

// JSON-RPC error codes returned by the daemon.
const (
	// CodeInvalidRequest reports a malformed request, e.g. a missing
	// required parameter.
	CodeInvalidRequest int32 = -32600
	// CodeMethodNotFound reports an unknown method.
	CodeMethodNotFound int32 = -32601
	// CodeInternal reports an unexpected daemon fault.
	CodeInternal int32 = -32603
	// CodeAnalyzerFailed reports that the analyzer returned an error or an
	// unexpected payload.
	CodeAnalyzerFailed int32 = -32000
	// CodeAnalyzerUnavailable reports that the analyzer child could not be
	// spawned or has terminated.
	CodeAnalyzerUnavailable int32 = -32001
	// CodeNotFound reports a missing or unreadable file or workspace.
	CodeNotFound int32 = -32002
	// CodeTimeout reports that the analyzer did not answer within the
	// request budget.
	CodeTimeout int32 = -32003
)

// RPCError is an error carrying a wire code. Data, when set, is marshaled
// into the JSON-RPC error's data field.
type RPCError struct {
	Code    int32
	Message string
	Data    interface{}
}

// Error is an implementation of the error interface.
func (e *RPCError) Error() string {
	return e.Message
}

// New returns an error that formats as the given text.
func New(msg string) error {
	return stderr.New(msg)
}

// InvalidRequest reports a malformed request.
func InvalidRequest(format string, args ...interface{}) *RPCError {
	return &RPCError{Code: CodeInvalidRequest, Message: fmt.Sprintf(format, args...)}
}

// MethodNotFound reports an unknown method name.
func MethodNotFound(method string) *RPCError {
	return &RPCError{Code: CodeMethodNotFound, Message: fmt.Sprintf("method not found: %s", method)}
}

// Internal reports an unexpected daemon fault.
func Internal(format string, args ...interface{}) *RPCError {
	return &RPCError{Code: CodeInternal, Message: fmt.Sprintf(format, args...)}
}

// AnalyzerFailed reports an analyzer-level failure for the given operation.
func AnalyzerFailed(format string, args ...interface{}) *RPCError {
	return &RPCError{Code: CodeAnalyzerFailed, Message: fmt.Sprintf(format, args...)}
}

// AnalyzerUnavailable reports that no analyzer child is serving the workspace.
func AnalyzerUnavailable(format string, args ...interface{}) *RPCError {
	return &RPCError{Code: CodeAnalyzerUnavailable, Message: fmt.Sprintf(format, args...)}
}

// NotFound reports a missing file or workspace. The offending path is carried
// in the error data.
func NotFound(what, path string) *RPCError {
	return &RPCError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found: %s", what, path),
		Data:    map[string]string{"path": path},
	}
}

// Timeout reports that the named operation exceeded its budget.
func Timeout(operation string) *RPCError {
	return &RPCError{
		Code:    CodeTimeout,
		Message: fmt.Sprintf("operation timed out: %s", operation),
		Data:    map[string]string{"operation": operation},
	}
}

// CodeOf extracts the wire code from err, walking wrapped errors. Errors
// without an assigned code map to CodeInternal.
func CodeOf(err error) int32 {
	var rpcErr *RPCError
	if stderr.As(err, &rpcErr) {
		return rpcErr.Code
	}
	return CodeInternal
}

// AsRPC returns err as an *RPCError, wrapping uncoded errors as CodeInternal.
func AsRPC(err error) *RPCError {
	var rpcErr *RPCError
	if stderr.As(err, &rpcErr) {
		return rpcErr
	}
	return &RPCError{Code: CodeInternal, Message: err.Error()}
}
