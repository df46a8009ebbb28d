package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
)

const (
	msgReceived      = "Form submission received"
	msgInternalError = "Internal Server Error"
	msgTooLarge      = "Payload Too Large"
)

type messageResponse struct {
	Message string `json:"message"`
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	id := s.newID()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.log.Warn("server.submission.too_large", "id", id, "limit", tooLarge.Limit)
			s.metrics.observe(outcomeError)
			writeJSON(w, http.StatusRequestEntityTooLarge, msgTooLarge)
			return
		}
		s.log.Error("server.submission.read_failed", "id", id, "err", err)
		s.metrics.observe(outcomeError)
		writeJSON(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	s.log.Info("server.submission",
		"id", id,
		"remote", r.RemoteAddr,
		"content_type", r.Header.Get("Content-Type"),
		"bytes", len(body),
		payloadAttr(body),
	)
	s.metrics.observe(outcomeAccepted)
	writeJSON(w, http.StatusOK, msgReceived)
}

func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.log.Warn("server.method_not_allowed", "method", r.Method, "path", r.URL.Path)
	s.metrics.observe(outcomeRejectedMethod)
	w.Header().Set("Allow", http.MethodPost)
	writeJSON(w, http.StatusMethodNotAllowed, fmt.Sprintf("Method %s Not Allowed", r.Method))
}

func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				s.log.Error("panic.recovered",
					"where", "server.handler",
					"panic", fmt.Sprint(rec),
					"stack", string(debug.Stack()),
				)
				s.metrics.observe(outcomeError)
				writeJSON(w, http.StatusInternalServerError, msgInternalError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// payloadAttr logs valid JSON structurally and anything else as raw text.
func payloadAttr(body []byte) slog.Attr {
	var doc any
	if err := json.Unmarshal(body, &doc); err == nil {
		return slog.Any("payload", doc)
	}
	return slog.String("payload_raw", string(body))
}

func writeJSON(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(messageResponse{Message: msg})
}
