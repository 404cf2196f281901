package api

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/kvsession/pkg/session"
)

// HTTPError pairs a status code with a machine readable key.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string {
	return e.Key
}

var (
	ErrBadRequest          = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrInvalidJSON         = HTTPError{Code: http.StatusBadRequest, Key: "invalid_json"}
	ErrNotFound            = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrEntityTooLarge      = HTTPError{Code: http.StatusRequestEntityTooLarge, Key: "request_entity_too_large"}
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error"}
	ErrNotImplemented      = HTTPError{Code: http.StatusNotImplemented, Key: "not_implemented"}
	ErrServiceUnavailable  = HTTPError{Code: http.StatusServiceUnavailable, Key: "service_unavailable"}
	ErrSessionStart        = HTTPError{Code: http.StatusInternalServerError, Key: "session_start_failed"}
)

// toHTTPError maps session and transport failures onto HTTP errors.
func toHTTPError(err error) HTTPError {
	var httpErr HTTPError
	var maxBytes *http.MaxBytesError

	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.As(err, &maxBytes):
		return ErrEntityTooLarge
	case errors.Is(err, session.ErrInvalidKey):
		return HTTPError{Code: http.StatusBadRequest, Key: "invalid_attribute_key"}
	case errors.Is(err, session.ErrUnsupported):
		return ErrNotImplemented
	case errors.Is(err, session.ErrStore):
		return ErrServiceUnavailable
	case errors.Is(err, session.ErrDecode):
		return HTTPError{Code: http.StatusInternalServerError, Key: "decode_failed"}
	default:
		return ErrInternalServerError
	}
}
