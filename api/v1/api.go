package v1

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/bookmate-app/bookmate/log"
	"github.com/bookmate-app/bookmate/middleware"
	"github.com/bookmate-app/bookmate/recommend"
	"github.com/bookmate-app/bookmate/store"
	"github.com/bookmate-app/bookmate/worker"
)

type Handler struct {
	store           *store.Store
	statsPool       worker.WorkPool
	recommendClient *recommend.Client
	router          *mux.Router
}

func Server(router *mux.Router, store *store.Store, statsPool worker.WorkPool, recommendClient *recommend.Client) {
	handler := &Handler{
		store:           store,
		statsPool:       statsPool,
		recommendClient: recommendClient,
		router:          router,
	}

	sr := router.PathPrefix("/api/v1").Subrouter()
	middleware := middleware.NewMiddleware(handler.store)
	sr.Use(middleware.HandleCORS)
	sr.Use(middleware.LoggingRequest)

	sSetting, err := store.GetOrInitSecuritySetting()
	if err != nil {
		log.Logger.Error("Error getting security setting", zap.Error(err))
		os.Exit(1)
	}
	sr.Use(NewAuthInterceptor(store, sSetting.JWTSecret).AuthenticationInterceptor)
	sr.Methods(http.MethodOptions)

	sr.HandleFunc("/signup", handler.signUp).Methods(http.MethodPost)
	sr.HandleFunc("/signin", handler.signIn).Methods(http.MethodPost)
	sr.HandleFunc("/users", handler.listUsers).Methods(http.MethodGet)

	sr.HandleFunc("/books", handler.listBooks).Methods(http.MethodGet)
	sr.HandleFunc("/genres", handler.listGenres).Methods(http.MethodGet)
	sr.HandleFunc("/book", handler.createBook).Methods(http.MethodPost)
	sr.HandleFunc("/book/{id}", handler.getBook).Methods(http.MethodGet)
	sr.HandleFunc("/book/{id}", handler.updateBook).Methods(http.MethodPut)
	sr.HandleFunc("/book/{id}", handler.deleteBook).Methods(http.MethodDelete)

	sr.HandleFunc("/catalog/stats", handler.catalogStats).Methods(http.MethodGet)
	sr.HandleFunc("/catalog/import", handler.importCatalog).Methods(http.MethodPost)
	sr.HandleFunc("/catalog/export", handler.exportCatalog).Methods(http.MethodGet)
	sr.HandleFunc("/catalog/reset", handler.resetCatalog).Methods(http.MethodPost)

	// Library routes carry the user id explicitly; the interceptor checks
	// the id against the authenticated user.
	sr.HandleFunc("/library/{userID}", handler.listLibrary).Methods(http.MethodGet)
	sr.HandleFunc("/library/{userID}/stats", handler.libraryStats).Methods(http.MethodGet)
	sr.HandleFunc("/library/{userID}/{bookID}", handler.addLibraryEntry).Methods(http.MethodPost)
	sr.HandleFunc("/library/{userID}/{bookID}", handler.updateLibraryStatus).Methods(http.MethodPut)
	sr.HandleFunc("/library/{userID}/{bookID}", handler.removeLibraryEntry).Methods(http.MethodDelete)

	sr.HandleFunc("/recommendations", handler.getRecommendations).Methods(http.MethodPost)
}
