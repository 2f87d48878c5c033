package server

import (
	"encoding/json"
	"net/http"

	"github.com/matzehuels/mandelzoom/pkg/errors"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// statusFor maps an error to an HTTP status by its code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errors.ErrCodeSessionNotFound):
		return http.StatusNotFound
	case errors.IsValidation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// bodyFor converts err into a response body. Errors without a code are
// reported as INTERNAL_ERROR without leaking their text.
func bodyFor(err error) errorBody {
	code := errors.GetCode(err)
	if code == "" {
		return errorBody{Code: errors.ErrCodeInternal, Message: "internal error"}
	}
	return errorBody{Code: code, Message: errors.UserMessage(err)}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
	}
	writeJSON(w, status, bodyFor(err))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeImage(w http.ResponseWriter, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// decodeJSON reads a JSON request body into v, rejecting unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.New(errors.ErrCodeInvalidInput, "invalid request body: %v", err)
	}
	return nil
}
