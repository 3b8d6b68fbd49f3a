package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	libmanager "github.com/lim-bo/songscatalog/internal/libManager"
	"github.com/lim-bo/songscatalog/models"
)

const notFoundText = "Endpoint not found"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response marshalling error: " + err.Error())
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.Message{Message: msg})
}

// notFound answers requests no route accepts. The body is plain text.
func notFound(w http.ResponseWriter, r *http.Request) {
	slog.Debug("no route matched", slog.String("method", r.Method), slog.String("path", r.URL.EscapedPath()))
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = io.WriteString(w, notFoundText)
}

// writeStoreError maps store errors; kind names the entity in the message.
func writeStoreError(w http.ResponseWriter, r *http.Request, kind string, err error) {
	if errors.Is(err, libmanager.ErrMissingEntity) {
		slog.Info("missing entity", slog.String("kind", kind), slog.String("path", r.URL.EscapedPath()), slog.String("from", r.RemoteAddr))
		writeMessage(w, http.StatusNotFound, kind+" not found")
		return
	}
	slog.Error("store error: "+err.Error(), slog.String("from", r.RemoteAddr))
	writeMessage(w, http.StatusInternalServerError, "internal error")
}
