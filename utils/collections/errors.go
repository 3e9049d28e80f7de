package collections

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// Side names the direction a lookup was made in.
type Side int

const (
	KeySide Side = iota
	ValueSide
)

func (s Side) String() string {
	switch s {
	case KeySide:
		return "key"
	case ValueSide:
		return "value"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

// NotFoundError is returned when a key or value is absent, or when popping from an empty map.
// It unwraps to ErrNotFound.
type NotFoundError struct {
	Side Side
	Item interface{}
}

func (e *NotFoundError) Error() string {
	if e.Item == nil {
		return fmt.Sprintf("%s not found: map is empty", e.Side)
	}
	return fmt.Sprintf("%s %v not found", e.Side, e.Item)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return "invalid argument: " + e.Reason
}

func (e *InvalidArgumentError) Unwrap() error { return ErrInvalidArgument }

// UnsupportedOperationError is returned by operations that cannot keep the bijection intact.
type UnsupportedOperationError struct {
	Op string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("unsupported operation %s: a default in one direction cannot pick its counterpart", e.Op)
}

func (e *UnsupportedOperationError) Unwrap() error { return ErrUnsupportedOperation }
