package uadetector

import "errors"

var (
	ErrLoadCorpus    = errors.New("failed to load rule corpus")
	ErrBuildRegistry = errors.New("failed to build code registries")
	ErrBuildParsers  = errors.New("failed to build category parsers")
	ErrInvalidConfig = errors.New("invalid detector configuration")
	ErrConnectRedis  = errors.New("failed to connect redis result cache")
	ErrCacheScope    = errors.New("failed to fingerprint detector rules")
)
