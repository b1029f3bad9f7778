package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/kasuboski/moviez/pkg/logger"
	"go.uber.org/zap"
)

// ReducedMotionHint is the client hint carrying the user's reduced motion setting
const ReducedMotionHint = "Sec-CH-Prefers-Reduced-Motion"

func (s Server) LogMiddleware() mux.MiddlewareFunc {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := s.baseLogger.With(zap.String("request_path", r.URL.Path)).With(zap.String("id", uuid.New().String()))
			h.ServeHTTP(w, r.WithContext(logger.WithCtx(r.Context(), log)))
		})
	}
}

// ClientHintsMiddleware asks browsers to send the reduced motion hint on later requests
func ClientHintsMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Accept-CH", ReducedMotionHint)
		w.Header().Add("Vary", ReducedMotionHint)
		h.ServeHTTP(w, r)
	})
}

// prefersReducedMotion reads the reduced motion client hint of r
func prefersReducedMotion(r *http.Request) bool {
	return r.Header.Get(ReducedMotionHint) == "reduce"
}
