// ABOUTME: Typed errors shared by the storage, config, and session layers.
// ABOUTME: Kind classifies a failure so the CLI can print a message per category.
package models

import (
	"errors"
	"fmt"
)

// Kind classifies an Error.
type Kind int

const (
	KindUnknown Kind = iota
	KindIO
	KindDecode
	KindConfig
	KindInvalidInput
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io error"
	case KindDecode:
		return "decode error"
	case KindConfig:
		return "configuration error"
	case KindInvalidInput:
		return "invalid input"
	}
	return "error"
}

// Error is a failure tagged with its Kind and the operation that produced it.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: failed to %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IOError wraps err as a KindIO failure.
func IOError(op string, err error) error {
	return &Error{Kind: KindIO, Op: op, Err: err}
}

// DecodeError wraps err as a KindDecode failure.
func DecodeError(op string, err error) error {
	return &Error{Kind: KindDecode, Op: op, Err: err}
}

// ConfigError wraps err as a KindConfig failure.
func ConfigError(op string, err error) error {
	return &Error{Kind: KindConfig, Op: op, Err: err}
}

// InvalidInput wraps err as a KindInvalidInput failure.
func InvalidInput(op string, err error) error {
	return &Error{Kind: KindInvalidInput, Op: op, Err: err}
}
