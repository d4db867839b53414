package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	v1 "github.com/bookmate-app/bookmate/api/v1"
	"github.com/bookmate-app/bookmate/config"
	"github.com/bookmate-app/bookmate/log"
	"github.com/bookmate-app/bookmate/recommend"
	"github.com/bookmate-app/bookmate/store"
	"github.com/bookmate-app/bookmate/version"
	"github.com/bookmate-app/bookmate/worker"
)

// StartServer starts the HTTP server
func StartServer(ctx context.Context, store *store.Store, statsPool worker.WorkPool) (*http.Server, error) {
	addr := config.Opts.Host
	port := config.Opts.Port
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", addr, port),
		Handler: setupHandler(store, statsPool),
	}

	startHTTPServer(server)

	return server, nil
}

// Shutdown drains in-flight requests before stopping the server.
func Shutdown(server *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("HTTP server shutdown error", zap.Error(err))
	}
}

func startHTTPServer(server *http.Server) {
	go func() {
		log.Info("Starting HTTP server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Error("HTTP server error", zap.Error(err))
			os.Exit(1)
		}
	}()
}

func setupHandler(store *store.Store, statsPool worker.WorkPool) http.Handler {
	router := mux.NewRouter()

	var recommendClient *recommend.Client
	if config.Opts.RecommendServiceURL != "" {
		recommendClient = recommend.NewClient(
			config.Opts.RecommendServiceURL,
			time.Duration(config.Opts.RecommendTimeout)*time.Second,
		)
	}

	v1.Server(router, store, statsPool, recommendClient)

	router.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		if err := store.Ping(); err != nil {
			http.Error(w, "Database Connection Error", http.StatusInternalServerError)
			return
		}

		w.Write([]byte("OK"))
	}).Name("healthcheck")

	router.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(version.GetCurrentVersion()))
	}).Name("version")

	return router
}
