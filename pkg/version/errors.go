package version

import "errors"

var ErrInvalidLevel = errors.New("invalid version truncation level")
