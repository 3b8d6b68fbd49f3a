package api

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/lim-bo/songscatalog/internal/reqbody"
)

const requestIDHeader = "X-Request-Id"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Logging middleware tags every request with an id and logs it once it is done
func LoggingMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		h.ServeHTTP(rec, r)
		slog.Info(r.Method+" "+r.URL.RequestURI(),
			slog.Int("status", rec.status),
			slog.Duration("took", time.Since(start)),
			slog.String("request_id", id),
			slog.String("from", r.RemoteAddr))
	})
}

// Body middleware reads the whole request body and decodes it before any
// route is looked up. A malformed body ends the request with a server error.
func BodyMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, err := io.ReadAll(r.Body)
		r.Body.Close()
		if err != nil {
			slog.Error("request body reading error: "+err.Error(), slog.String("from", r.RemoteAddr))
			writeMessage(w, http.StatusInternalServerError, "request body reading error")
			return
		}
		rec, err := reqbody.Decode(r.Header.Get("Content-Type"), payload)
		if err != nil {
			slog.Error("request body decoding error: "+err.Error(), slog.String("from", r.RemoteAddr))
			writeMessage(w, http.StatusInternalServerError, reqbody.ErrMalformedBody.Error())
			return
		}
		if rec != nil {
			slog.Debug("incoming request body", slog.String("from", r.RemoteAddr), slog.Any("body", rec))
		}
		h.ServeHTTP(w, r.WithContext(reqbody.NewContext(r.Context(), rec)))
	})
}

// Rate limit middleware rejects requests above rps with 429
func RateLimitMiddleware(rps float64, burst int) func(http.Handler) http.Handler {
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				slog.Error("rate limit exceeded", slog.String("from", r.RemoteAddr))
				writeMessage(w, http.StatusTooManyRequests, "too many requests")
				return
			}
			h.ServeHTTP(w, r)
		})
	}
}

// Applying CORS options middleware
func CORSMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE")
		w.Header().Set("Access-Control-Max-Age", "20")
		w.Header().Set("Access-Control-Allow-Origin", "http://127.0.0.1:*")
		h.ServeHTTP(w, r)
	})
}
