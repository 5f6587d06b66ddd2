package registry

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrCollision    = errors.New("key collision")
)

// InvalidInputError is returned by Shorten for an unusable URL.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return e.Reason
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NotFoundError is returned by Resolve when the key has no link.
type NotFoundError struct {
	Key uint32
}

func (e *NotFoundError) Error() string {
	return "Invalid or expired link"
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// CollisionError is returned under PolicyRetry when every generated key was taken.
type CollisionError struct {
	Attempts int
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("no free key after %d attempts", e.Attempts)
}

func (e *CollisionError) Is(target error) bool {
	return target == ErrCollision
}
