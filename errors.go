package interm

import "errors"

var (
	ErrEmptyLineSet  = errors.New("interm: line set is empty")
	ErrTooManyLines  = errors.New("interm: line set exceeds 255 lines")
	ErrSlotNotFound  = errors.New("interm: slot not found")
	ErrIndexNotFound = errors.New("interm: index not found")
	ErrIO            = errors.New("interm: terminal write failed")
)
