package parser

import "errors"

var (
	ErrUnknownName       = errors.New("rule name missing from registry")
	ErrUnknownBrand      = errors.New("device brand missing from registry")
	ErrUnknownEngine     = errors.New("unknown browser engine")
	ErrUnknownDeviceType = errors.New("unknown device type")
	ErrInvalidModelRule  = errors.New("invalid device model rule")
)
