// Package logger builds *slog.Logger values for the session daemon and its
// storage backends.
//
// New assembles a text or JSON handler from Option values and wraps it in a
// LogHandlerDecorator, which runs the registered ContextExtractor functions on
// every record. That is how the request id and session id end up on log lines
// without being passed explicitly.
//
//	log := logger.New(
//	    logger.WithDevelopment("kvsessiond"),
//	    logger.WithContextExtractors(session.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
// Environment presets (WithDevelopment, WithStaging, WithProduction) pick the
// level and format. NewFromConfig does the same from APP_ENV, APP_NAME,
// LOG_LEVEL and LOG_FORMAT.
//
// Attribute helpers in attr.go keep key names consistent. Error and Errors
// return an empty attribute for nil errors, so
//
//	log.Info("attribute written", logger.Error(err))
//
// needs no nil check.
package logger
