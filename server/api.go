package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/kasuboski/moviez/pkg/logger"
	"github.com/kasuboski/moviez/pkg/movies"
	"github.com/kasuboski/moviez/pkg/pagination"
	"github.com/kasuboski/moviez/pkg/wishlist"
	"go.uber.org/zap"
)

var errInvalidID = errors.New("invalid movie id")

// WishlistResponse is a page of wishlist entries
type WishlistResponse struct {
	Items      []wishlist.Entry `json:"items"`
	Pagination *pagination.Meta `json:"pagination,omitempty"`
}

// ToggleResponse reports the wishlist after a toggle
type ToggleResponse struct {
	Wishlisted bool             `json:"wishlisted"`
	Items      []wishlist.Entry `json:"items"`
}

// parseID reads a positive film id from the route
func parseID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", errInvalidID, mux.Vars(r)["id"])
	}
	return id, nil
}

// ListMovies lists the films of a category
func (s Server) ListMovies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		category, err := movies.ParseCategory(mux.Vars(r)["category"])
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		films, err := movies.List(r.Context(), s.provider, category)
		if err != nil {
			log.Errorw("failed to list movies", zap.Error(err), zap.String("category", string(category)))
			writeErrorResponse(w, http.StatusInternalServerError, errors.New("failed to list movies"))
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: films})
	}
}

// GetMovie returns the detail record of a film
func (s Server) GetMovie() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		id, err := parseID(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		film, err := s.provider.Movie(r.Context(), id)
		if errors.Is(err, movies.ErrNotFound) {
			writeErrorResponse(w, http.StatusNotFound, err)
			return
		}
		if err != nil {
			log.Errorw("failed to get movie", zap.Error(err), zap.Int("id", id))
			writeErrorResponse(w, http.StatusInternalServerError, errors.New("failed to get movie"))
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: film})
	}
}

// ListWishlist returns the wishlist in insertion order, optionally paginated
func (s Server) ListWishlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := pagination.FromQuery(r.URL.Query())
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		items, meta := pagination.Slice(s.wishlist.Items(), params)
		writeResponse(w, http.StatusOK, GenericResponse{Response: WishlistResponse{Items: items, Pagination: meta}})
	}
}

// AddToWishlist adds the film in the request body
func (s Server) AddToWishlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entry, ok := s.decodeEntry(w, r)
		if !ok {
			return
		}

		state := s.wishlist.Add(r.Context(), entry)
		writeResponse(w, http.StatusOK, GenericResponse{Response: WishlistResponse{Items: state.Items}})
	}
}

// ToggleWishlist adds the film in the request body or removes it when present
func (s Server) ToggleWishlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entry, ok := s.decodeEntry(w, r)
		if !ok {
			return
		}

		state, on := s.wishlist.Toggle(r.Context(), entry)
		writeResponse(w, http.StatusOK, GenericResponse{Response: ToggleResponse{Wishlisted: on, Items: state.Items}})
	}
}

// RemoveFromWishlist drops the film with the route id
func (s Server) RemoveFromWishlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		state := s.wishlist.Remove(r.Context(), id)
		writeResponse(w, http.StatusOK, GenericResponse{Response: WishlistResponse{Items: state.Items}})
	}
}

// ClearWishlist empties the wishlist
func (s Server) ClearWishlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.wishlist.Clear(r.Context())
		writeGenericResponse(w, http.StatusOK)
	}
}

// decodeEntry reads and validates a film summary body. It writes the error
// response itself and reports false on failure.
func (s Server) decodeEntry(w http.ResponseWriter, r *http.Request) (wishlist.Entry, bool) {
	log := logger.FromCtx(r.Context())

	b, err := io.ReadAll(r.Body)
	if err != nil {
		log.Debug("invalid request body", zap.Error(err))
		writeErrorResponse(w, http.StatusBadRequest, errors.New("invalid request body"))
		return wishlist.Entry{}, false
	}

	var entry wishlist.Entry
	if err := json.Unmarshal(b, &entry); err != nil {
		log.Debug("invalid request body", zap.ByteString("body", b))
		writeErrorResponse(w, http.StatusBadRequest, errors.New("invalid request body"))
		return wishlist.Entry{}, false
	}

	if err := s.validate.Struct(entry); err != nil {
		writeResponse(w, http.StatusBadRequest, GenericResponse{
			Error:   errValidation.Error(),
			Details: validationDetails(err),
		})
		return wishlist.Entry{}, false
	}

	return entry, true
}
