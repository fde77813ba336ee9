package utils

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned when a grid dimension or rule parameter is rejected
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfRange is returned when a cell position lies outside the grid
	ErrOutOfRange = errors.New("out of range")
)
