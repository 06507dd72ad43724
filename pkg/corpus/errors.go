package corpus

import "errors"

var (
	ErrReadFile     = errors.New("failed to read corpus file")
	ErrDecodeFile   = errors.New("failed to decode corpus file")
	ErrMissingField = errors.New("corpus rule is missing a required field")
	ErrInvalidShape = errors.New("unexpected corpus document structure")
)
