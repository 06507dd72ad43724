// Package logger builds *slog.Logger values for the detector and its tools.
//
// New takes functional options selecting the output format (json or text),
// the minimum level, static attributes and ContextExtractor callbacks that
// pull request-scoped attributes out of context.Context on every record:
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithAttr(logger.Component("uadetector")),
//	)
//	log.Info("rules loaded", logger.Category("bots"), logger.Count(412))
//
// ParseLevel and ParseFormat decode the values used in environment
// configuration. Attribute helpers in attr.go keep key names consistent;
// Error and Errors return an empty Attr for nil errors so callers can log
// without a nil check.
package logger
