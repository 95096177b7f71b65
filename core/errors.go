package core

import (
	"errors"
	"fmt"
)

// ErrorCode classifies errors of the layout engine.
type ErrorCode int

// Error codes used throughout the layout engine.
const (
	NOERROR    ErrorCode = 0
	EMISSING   ErrorCode = 122 // required input does not exist
	EINVALID   ErrorCode = 123 // validation failed
	ESTRUCTURE ErrorCode = 124 // flow tree would become malformed
	EINTERNAL  ErrorCode = 125 // internal error
)

var errorTexts = map[ErrorCode]string{
	NOERROR:    "OK",
	EMISSING:   "not found",
	EINVALID:   "invalid",
	ESTRUCTURE: "malformed flow tree",
	EINTERNAL:  "internal error",
}

func (code ErrorCode) String() string {
	if text, ok := errorTexts[code]; ok {
		return text
	}
	return "undefined error"
}

// Error lets an error code act as a target for errors.Is:
//
//	errors.Is(err, core.EINVALID)
func (code ErrorCode) Error() string {
	return fmt.Sprintf("[%d] %s", int(code), code.String())
}

// AppError is an error with an associated error code and a user-message.
type AppError interface {
	error
	ErrorCode() ErrorCode
	UserMessage() string
}

type coreError struct {
	cause error
	code  ErrorCode
	msg   string
}

var _ AppError = coreError{}

func (e coreError) Unwrap() error {
	return e.cause
}

// Is matches error codes.
func (e coreError) Is(target error) bool {
	code, ok := target.(ErrorCode)
	return ok && code == e.code
}

func (e coreError) Error() string {
	if e.msg == "" || e.msg == e.cause.Error() {
		return fmt.Sprintf("[%d] %v", int(e.code), e.cause)
	}
	return fmt.Sprintf("[%d] %s: %v", int(e.code), e.msg, e.cause)
}

func (e coreError) ErrorCode() ErrorCode {
	return e.code
}

func (e coreError) UserMessage() string {
	return e.msg
}

// Error creates an error with an error code and a user-message.
func Error(code ErrorCode, format string, v ...interface{}) error {
	return coreError{
		cause: errors.New(code.String()),
		code:  code,
		msg:   fmt.Sprintf(format, v...),
	}
}

// WrapError wraps an error in a core error, featuring an error code and
// a user message. A nil err is replaced by the text of code.
func WrapError(err error, code ErrorCode, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(code.String())
	}
	return coreError{cause: err, code: code, msg: fmt.Sprintf(format, v...)}
}

// ErrorWithCode adds an error code to err's error chain, using the code's
// text as user message. It wraps a nil error, too.
func ErrorWithCode(err error, code ErrorCode) error {
	return WrapError(err, code, "%s", code.String())
}

// Code returns the error code of the first AppError in err's chain.
// It returns NOERROR for nil and EINTERNAL for errors without code.
func Code(err error) ErrorCode {
	if err == nil {
		return NOERROR
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user message associated with an error, or the
// text of its code.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.UserMessage()
	}
	return Code(err).String()
}
