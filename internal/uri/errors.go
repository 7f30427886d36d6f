package uri

import (
	"errors"
	"fmt"

	"github.com/kpumuk/urispan/internal/text"
)

// ErrorCode identifies a URI span error category.
type ErrorCode string

// ErrorCode values.
const (
	// ErrBufferExhausted means the buffer ended before a component's expected length.
	ErrBufferExhausted ErrorCode = "URI_BUFFER_EXHAUSTED"
	// ErrMissingDelimiter means an expected delimiter byte was not found.
	ErrMissingDelimiter ErrorCode = "URI_MISSING_DELIMITER"
	// ErrTrailingBytes means relocation finished before the end of the buffer.
	ErrTrailingBytes ErrorCode = "URI_TRAILING_BYTES"
	// ErrForeignSpan means a span points into a buffer other than the expected one.
	ErrForeignSpan ErrorCode = "URI_FOREIGN_SPAN"
	// ErrSpanBounds means a span lies outside its buffer.
	ErrSpanBounds ErrorCode = "URI_SPAN_BOUNDS"
	// ErrSpanOrder means spans overlap or break component order.
	ErrSpanOrder ErrorCode = "URI_SPAN_ORDER"
	// ErrAbsentPart means an operation needed a component that is absent.
	ErrAbsentPart ErrorCode = "URI_ABSENT_PART"
)

var codeMessages = map[ErrorCode]string{
	ErrBufferExhausted:  "buffer exhausted during relocation",
	ErrMissingDelimiter: "missing expected delimiter",
	ErrTrailingBytes:    "buffer not fully consumed",
	ErrForeignSpan:      "span references foreign buffer",
	ErrSpanBounds:       "span out of bounds",
	ErrSpanOrder:        "spans out of order",
	ErrAbsentPart:       "component absent",
}

// Error is a URI span error tied to a component and buffer offset.
type Error struct {
	Code   ErrorCode
	Kind   Kind // KindNone when not tied to a component
	Offset text.ByteOffset
	Detail string
}

func newError(code ErrorCode, kind Kind, off text.ByteOffset, format string, args ...any) *Error {
	return &Error{
		Code:   code,
		Kind:   kind,
		Offset: off,
		Detail: fmt.Sprintf(format, args...),
	}
}

func (e *Error) Error() string {
	msg := codeMessages[e.Code]
	if msg == "" {
		msg = string(e.Code)
	}
	prefix := "uri"
	if e.Kind != KindNone {
		prefix = "uri: " + e.Kind.String()
	}
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s at offset %d", prefix, msg, e.Offset)
	}
	return fmt.Sprintf("%s: %s at offset %d: %s", prefix, msg, e.Offset, e.Detail)
}

// CodeOf returns the ErrorCode carried by err, if any.
func CodeOf(err error) (ErrorCode, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return "", false
}

// IsBufferExhausted reports whether err is an ErrBufferExhausted error.
func IsBufferExhausted(err error) bool {
	code, ok := CodeOf(err)
	return ok && code == ErrBufferExhausted
}

// IsMissingDelimiter reports whether err is an ErrMissingDelimiter error.
func IsMissingDelimiter(err error) bool {
	code, ok := CodeOf(err)
	return ok && code == ErrMissingDelimiter
}
