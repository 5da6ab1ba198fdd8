package observe

import "errors"

// ErrIndexOutOfRange is returned when an array element is accessed beyond
// the array's fixed size.
var ErrIndexOutOfRange = errors.New("observe: array index out of range")

// ErrPathNotFound indicates that no registered node matched a requested
// path. Registry.UpdateByPath reports this condition through its boolean
// result; the sentinel exists for callers (such as the control server)
// that need to surface the miss as an error.
var ErrPathNotFound = errors.New("observe: path not found")

// ErrMalformedValue is returned when a string cannot be parsed into the
// target node's type. The prior value is always left unchanged.
var ErrMalformedValue = errors.New("observe: malformed value")

// ErrUnsupportedOperation is returned when a string update targets a Group
// node. No structured format for group values is defined; each child is
// addressable under its own path instead.
var ErrUnsupportedOperation = errors.New("observe: unsupported operation")
