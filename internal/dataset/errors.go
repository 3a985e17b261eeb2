package dataset

import "errors"

var (
	// ErrEmptyFile is returned when the dataset file has no content
	ErrEmptyFile = errors.New("dataset file is empty")

	// ErrInvalidEncoding is returned when the dataset file is not valid UTF-8
	ErrInvalidEncoding = errors.New("dataset file is not valid UTF-8")

	// ErrMissingHeader is returned when the dataset file has no header row
	ErrMissingHeader = errors.New("dataset file missing header row")

	// ErrMissingColumn is returned when a required column is absent from the header
	ErrMissingColumn = errors.New("dataset file missing required column")

	// ErrInvalidRow is returned when a row cannot be converted to a customer
	ErrInvalidRow = errors.New("invalid dataset row")
)
