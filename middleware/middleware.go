package middleware

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/bookmate-app/bookmate/http/request"
	"github.com/bookmate-app/bookmate/log"
	"github.com/bookmate-app/bookmate/store"
)

type Middleware struct {
	store *store.Store
}

func NewMiddleware(store *store.Store) *Middleware {
	return &Middleware{store: store}
}

func (m *Middleware) HandleCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "X-Auth-Token, Authorization, Content-Type, Accept")
		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Max-Age", "7200")
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) LoggingRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientIP := request.FindClientIP(r)
		start := time.Now()

		ctx := context.WithValue(r.Context(), request.ClientIPContextKey, clientIP)
		next.ServeHTTP(w, r.WithContext(ctx))

		log.Debug("Incoming request",
			zap.String("client_ip", clientIP),
			zap.String("method", r.Method),
			zap.String("uri", r.RequestURI),
			zap.String("user_agent", r.UserAgent()),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}
