package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/kasuboski/moviez/pkg/movies"
	"github.com/kasuboski/moviez/pkg/wishlist"
	"go.uber.org/zap"
)

// ShutdownTimeout bounds how long in flight requests may take once the server stops
const ShutdownTimeout = time.Second * 3

type GenericResponse struct {
	Error    string `json:"error,omitempty"`
	Details  any    `json:"details,omitempty"`
	Response any    `json:"response"`
}

// Server houses all dependencies of the web app: the film provider, the wishlist, loggers and templates
type Server struct {
	baseLogger *zap.SugaredLogger
	provider   movies.Provider
	wishlist   *wishlist.Store
	validate   *validator.Validate
	pages      map[string]*template.Template
}

// New creates a new web server
func New(logger *zap.SugaredLogger, provider movies.Provider, store *wishlist.Store) Server {
	return Server{
		baseLogger: logger,
		provider:   provider,
		wishlist:   store,
		validate:   newValidator(),
		pages:      parsePages(),
	}
}

func writeGenericResponse(w http.ResponseWriter, status int) error {
	return writeResponse(w, status, GenericResponse{})
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) error {
	return writeResponse(w, status, GenericResponse{
		Error: err.Error(),
	})
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	w.Write(b)
	return nil
}

// Router builds the handler serving every page and api route
func (s Server) Router() http.Handler {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.Use(ClientHintsMiddleware)
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)

	rtr.PathPrefix("/static/").Handler(staticHandler()).Methods(http.MethodGet)

	rtr.HandleFunc("/", s.HomePage()).Methods(http.MethodGet)
	rtr.HandleFunc("/movie/{id}", s.MoviePage()).Methods(http.MethodGet)
	rtr.HandleFunc("/wishlist", s.WishlistPage()).Methods(http.MethodGet)
	rtr.HandleFunc("/wishlist/toggle", s.ToggleWishlistForm()).Methods(http.MethodPost)
	rtr.HandleFunc("/wishlist/clear", s.ClearWishlistForm()).Methods(http.MethodPost)
	rtr.NotFoundHandler = s.NotFoundPage()

	api := rtr.PathPrefix("/api").Subrouter()

	v1 := api.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/movies/{category}", s.ListMovies()).Methods(http.MethodGet)
	v1.HandleFunc("/movie/{id}", s.GetMovie()).Methods(http.MethodGet)

	v1.HandleFunc("/wishlist", s.ListWishlist()).Methods(http.MethodGet)
	v1.HandleFunc("/wishlist", s.AddToWishlist()).Methods(http.MethodPost)
	v1.HandleFunc("/wishlist", s.ClearWishlist()).Methods(http.MethodDelete)
	v1.HandleFunc("/wishlist/toggle", s.ToggleWishlist()).Methods(http.MethodPost)
	v1.HandleFunc("/wishlist/{id}", s.RemoveFromWishlist()).Methods(http.MethodDelete)

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(rtr)

	return handlers.CompressHandler(corsHandler)
}

// Serve starts the http server and is a blocking call. It returns after an
// interrupt once in flight requests finished or ShutdownTimeout passed.
func (s Server) Serve(port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Router(),
		ReadHeaderTimeout: time.Second * 10,
	}

	errs := make(chan error, 1)
	go func() {
		s.baseLogger.Infow("serving...", zap.Int("port", port), zap.String("provider", s.provider.Kind()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	defer signal.Stop(c)

	select {
	case err := <-errs:
		return err
	case <-c:
	}

	s.baseLogger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	return srv.Shutdown(ctx)
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := GenericResponse{
			Response: "ok",
		}
		writeResponse(w, http.StatusOK, response)
	}
}
