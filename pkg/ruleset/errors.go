package ruleset

import "errors"

var ErrInvalidRule = errors.New("invalid rule")
