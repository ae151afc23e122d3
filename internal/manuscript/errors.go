package manuscript

import "errors"

var (
	// ErrNotFound means the input path does not exist. Callers abort the
	// operation and clean up anything they already wrote for it.
	ErrNotFound = errors.New("input file not found")

	// ErrInvalidFormat means the file exists but is not a well-formed
	// document of the expected kind. Fatal for that stage only.
	ErrInvalidFormat = errors.New("invalid document format")
)
