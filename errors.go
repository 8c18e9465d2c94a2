package sole

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorCode uint16

const (
	ErrCodeUnknown ErrorCode = iota
	ErrCodeInvalidTarget
	ErrCodeNotDefined
	ErrCodeAlreadyDefined
	ErrCodeSubclassNotAllowed
	ErrCodeSubclassNotSingleton
	ErrCodeConstructFailed
	ErrCodeInitFailed
	ErrCodeArgumentMismatch
)

var codeNames = map[ErrorCode]string{
	ErrCodeUnknown:              "UNKNOWN",
	ErrCodeInvalidTarget:        "INVALID_TARGET",
	ErrCodeNotDefined:           "NOT_DEFINED",
	ErrCodeAlreadyDefined:       "ALREADY_DEFINED",
	ErrCodeSubclassNotAllowed:   "SUBCLASS_NOT_ALLOWED",
	ErrCodeSubclassNotSingleton: "SUBCLASS_NOT_SINGLETON",
	ErrCodeConstructFailed:      "CONSTRUCT_FAILED",
	ErrCodeInitFailed:           "INIT_FAILED",
	ErrCodeArgumentMismatch:     "ARGUMENT_MISMATCH",
}

func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", c)
}

type Error struct {
	Code    ErrorCode
	Message string
	Type    string
	Cause   error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s]", e.Code))

	if e.Type != "" {
		b.WriteString(fmt.Sprintf(" type=%q:", e.Type))
	}

	b.WriteString(" ")
	b.WriteString(e.Message)

	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}

	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

func (e *Error) WithType(typeName string) *Error {
	e.Type = typeName
	return e
}

func newError(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func errInvalidTarget(typeName string) *Error {
	return newError(
		ErrCodeInvalidTarget,
		fmt.Sprintf("singleton can only be defined for struct types, got %s", typeName),
		nil,
	).WithType(typeName)
}

func errNotDefined(typeName string) *Error {
	return newError(
		ErrCodeNotDefined,
		fmt.Sprintf("type %s is not defined as a singleton", typeName),
		nil,
	).WithType(typeName)
}

func errAlreadyDefined(typeName string) *Error {
	return newError(
		ErrCodeAlreadyDefined,
		fmt.Sprintf("singleton already defined for type %s", typeName),
		nil,
	).WithType(typeName)
}

func errSubclassNotAllowed(parentName string) *Error {
	return newError(
		ErrCodeSubclassNotAllowed,
		fmt.Sprintf("singleton type %s cannot be inherited", parentName),
		nil,
	).WithType(parentName)
}

func errSubclassNotSingleton(subclassName string) *Error {
	return newError(
		ErrCodeSubclassNotSingleton,
		fmt.Sprintf("subclass %s must also be a singleton", subclassName),
		nil,
	).WithType(subclassName)
}

func errConstructFailed(typeName string, cause error) *Error {
	return newError(
		ErrCodeConstructFailed,
		fmt.Sprintf("construction logic for %s returned error", typeName),
		cause,
	).WithType(typeName)
}

func errInitFailed(typeName string, cause error) *Error {
	return newError(
		ErrCodeInitFailed,
		fmt.Sprintf("initialization logic for %s returned error", typeName),
		cause,
	).WithType(typeName)
}

func errArgumentMismatch(typeName string) *Error {
	return newError(
		ErrCodeArgumentMismatch,
		fmt.Sprintf("argument type does not match the definition of %s", typeName),
		nil,
	).WithType(typeName)
}

func IsInvalidTarget(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeInvalidTarget
}

func IsNotDefined(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeNotDefined
}

func IsAlreadyDefined(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeAlreadyDefined
}

func IsSubclassNotAllowed(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeSubclassNotAllowed
}

func IsSubclassNotSingleton(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeSubclassNotSingleton
}

func IsConstructFailed(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeConstructFailed
}

func IsInitFailed(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeInitFailed
}

func IsArgumentMismatch(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeArgumentMismatch
}
