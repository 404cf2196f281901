// Package requestid tags every HTTP request with a correlation id.
//
// Middleware takes the X-Request-ID header when it is at most 128 characters
// of [a-zA-Z0-9_-], otherwise it generates a UUID. The id is echoed in the
// response header and stored in the request context, where FromContext and
// the logger extractor find it:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r.Use(requestid.Middleware)
package requestid
