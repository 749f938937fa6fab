package model

import (
	"errors"
	"fmt"
)

// Sentinel errors for schema failures
var (
	ErrMissingField = errors.New("missing required field")
	ErrUnknownCode  = errors.New("unknown enum code")
)

// MissingFieldError reports a required wire field absent from a response.
type MissingFieldError struct {
	Resource string
	Field    string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Resource, e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// DecodeError reports a structurally incompatible response payload.
type DecodeError struct {
	Resource string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decoding response: %v", e.Resource, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// UnknownCodeError reports a wire code outside a closed enumeration.
type UnknownCodeError struct {
	Enum string
	Code int64
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("unknown %s code %d", e.Enum, e.Code)
}

func (e *UnknownCodeError) Unwrap() error {
	return ErrUnknownCode
}
