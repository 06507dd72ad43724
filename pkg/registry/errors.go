package registry

import "errors"

var (
	ErrDuplicateCode  = errors.New("duplicate registry code")
	ErrDuplicateName  = errors.New("duplicate registry name")
	ErrEmptyEntry     = errors.New("empty registry code or name")
	ErrUnknownCode    = errors.New("unknown registry code")
	ErrAliasCollision = errors.New("alias collides with a canonical name")
)
