package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/kvsession/pkg/logger"
	"github.com/dmitrymomot/kvsession/pkg/session"
)

type handlers struct {
	log     *slog.Logger
	maxBody int64
}

type sessionResponse struct {
	ID string `json:"id"`
}

type destroyResponse struct {
	Removed int64 `json:"removed"`
}

func (h *handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	httpErr := toHTTPError(err)
	if httpErr.Code >= http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "session request failed", logger.Error(err))
	}
	writeError(w, httpErr)
}

// sessionFailed renders session setup failures; the middleware has logged them.
func (h *handlers) sessionFailed(w http.ResponseWriter, _ *http.Request, err error) {
	httpErr := toHTTPError(err)
	if httpErr == ErrInternalServerError {
		httpErr = ErrSessionStart
	}
	writeError(w, httpErr)
}

func (h *handlers) getSession(w http.ResponseWriter, r *http.Request) {
	s := session.MustFromContext(r.Context())
	id, err := s.ID()
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{ID: id})
}

func (h *handlers) destroySession(w http.ResponseWriter, r *http.Request) {
	s := session.MustFromContext(r.Context())
	removed, err := s.Destroy(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, destroyResponse{Removed: removed})
}

func (h *handlers) getAttribute(w http.ResponseWriter, r *http.Request) {
	s := session.MustFromContext(r.Context())

	var raw json.RawMessage
	found, err := s.Read(r.Context(), chi.URLParam(r, "key"), &raw)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if !found {
		writeError(w, ErrNotFound)
		return
	}
	writeRawJSON(w, http.StatusOK, raw)
}

func (h *handlers) putAttribute(w http.ResponseWriter, r *http.Request) {
	s := session.MustFromContext(r.Context())

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBody))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if !json.Valid(body) {
		writeError(w, ErrInvalidJSON)
		return
	}

	if err := s.Write(r.Context(), chi.URLParam(r, "key"), json.RawMessage(body)); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) deleteAttribute(w http.ResponseWriter, r *http.Request) {
	s := session.MustFromContext(r.Context())

	removed, err := s.Remove(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if !removed {
		writeError(w, ErrNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
