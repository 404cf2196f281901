package session

import "errors"

var (
	// ErrNotStarted indicates the session id was requested before Start captured it
	ErrNotStarted = errors.New("session.not_started")

	// ErrNoClient indicates no store client is configured
	ErrNoClient = errors.New("session.no_client")

	// ErrNoHost indicates no host framework is configured
	ErrNoHost = errors.New("session.no_host")

	// ErrEmptySessionID indicates the host produced an empty session id
	ErrEmptySessionID = errors.New("session.empty_id")

	// ErrInvalidSessionID indicates the session id contains the key separator
	ErrInvalidSessionID = errors.New("session.invalid_id")

	// ErrInvalidKey indicates an empty attribute key or one containing the key separator
	ErrInvalidKey = errors.New("session.invalid_key")

	// ErrEncode indicates the value could not be serialized
	ErrEncode = errors.New("session.encode_failed")

	// ErrDecode indicates the stored payload could not be deserialized
	ErrDecode = errors.New("session.decode_failed")

	// ErrStore indicates the store client returned an error
	ErrStore = errors.New("session.store_failed")

	// ErrUnsupported indicates the store client lacks an optional capability
	ErrUnsupported = errors.New("session.unsupported")

	// ErrNoTransport indicates no transport is configured
	ErrNoTransport = errors.New("session.no_transport")

	// ErrTokenNotFound indicates the request carries no session token
	ErrTokenNotFound = errors.New("session.token_not_found")

	// ErrTokenGeneration indicates session id generation failed
	ErrTokenGeneration = errors.New("session.token_generation_failed")
)
