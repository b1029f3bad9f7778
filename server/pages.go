package server

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/kasuboski/moviez/pkg/logger"
	"github.com/kasuboski/moviez/pkg/movies"
	"github.com/kasuboski/moviez/pkg/wishlist"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templates embed.FS

//go:embed static
var static embed.FS

var pageNames = []string{"home", "movie", "wishlist", "error"}

var funcs = template.FuncMap{
	"dict": func(kv ...any) (map[string]any, error) {
		if len(kv)%2 != 0 {
			return nil, errors.New("dict expects key value pairs")
		}
		m := make(map[string]any, len(kv)/2)
		for i := 0; i < len(kv); i += 2 {
			k, ok := kv[i].(string)
			if !ok {
				return nil, fmt.Errorf("dict key %v is not a string", kv[i])
			}
			m[k] = kv[i+1]
		}
		return m, nil
	},
	"money": func(v int64) string {
		if v <= 0 {
			return ""
		}
		return "$" + humanize.Comma(v)
	},
	"runtime": func(minutes int) string {
		if minutes <= 0 {
			return ""
		}
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	},
	"plural": func(n int, word string) string {
		if n == 1 {
			return "1 " + word
		}
		return humanize.Comma(int64(n)) + " " + word + "s"
	},
	"popularity": func(v float64) string {
		return humanize.FormatFloat("#,###.#", v)
	},
}

// parsePages parses every page together with the shared layout
func parsePages() map[string]*template.Template {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		pages[name] = template.Must(template.New("layout.html").Funcs(funcs).ParseFS(templates, "templates/layout.html", "templates/"+name+".html"))
	}
	return pages
}

func staticHandler() http.Handler {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

type layoutData struct {
	Title         string
	Nav           string
	ReducedMotion bool
	WishlistCount int
}

type homeData struct {
	layoutData
	Carousels []carouselView
	Redirect  string
}

type movieData struct {
	layoutData
	Film       movies.Film
	Category   string
	Wishlisted bool
	Redirect   string
}

type wishlistData struct {
	layoutData
	Items []wishlist.Entry
}

type errorData struct {
	layoutData
	Status  int
	Message string
}

func (s Server) layout(r *http.Request, title, nav string) layoutData {
	return layoutData{
		Title:         title,
		Nav:           nav,
		ReducedMotion: prefersReducedMotion(r),
		WishlistCount: s.wishlist.Len(),
	}
}

// render executes page into a buffer first so a template failure still yields a clean 500
func (s Server) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	log := logger.FromCtx(r.Context())

	var buf bytes.Buffer
	if err := s.pages[page].Execute(&buf, data); err != nil {
		log.Errorw("failed to render page", zap.Error(err), zap.String("page", page))
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("content-type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func (s Server) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	s.render(w, r, status, "error", errorData{
		layoutData: s.layout(r, http.StatusText(status), ""),
		Status:     status,
		Message:    message,
	})
}

// HomePage renders the three carousels. Provider failures render empty carousels.
func (s Server) HomePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		home := movies.LoadHome(r.Context(), s.provider)
		wish := s.wishlist.State()

		data := homeData{
			layoutData: s.layout(r, "Movies", "home"),
			Redirect:   r.URL.RequestURI(),
		}
		for _, c := range movies.Categories {
			data.Carousels = append(data.Carousels, buildCarousel(r, c, home.List(c), wish))
		}

		s.render(w, r, http.StatusOK, "home", data)
	}
}

// MoviePage renders the detail page of a film
func (s Server) MoviePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		id, err := parseID(r)
		if err != nil {
			s.renderError(w, r, http.StatusBadRequest, "Invalid movie id")
			return
		}

		film, err := s.provider.Movie(r.Context(), id)
		if errors.Is(err, movies.ErrNotFound) {
			s.renderError(w, r, http.StatusNotFound, "Movie not found")
			return
		}
		if err != nil {
			log.Errorw("failed to get movie", zap.Error(err), zap.Int("id", id))
			s.renderError(w, r, http.StatusInternalServerError, "Failed to load movie")
			return
		}

		category := ""
		if c, err := movies.ParseCategory(r.URL.Query().Get("category")); err == nil {
			category = string(c)
			film.Category = c
		}

		s.render(w, r, http.StatusOK, "movie", movieData{
			layoutData: s.layout(r, film.Title, ""),
			Film:       film,
			Category:   category,
			Wishlisted: s.wishlist.Has(film.ID),
			Redirect:   r.URL.RequestURI(),
		})
	}
}

// WishlistPage renders the saved films
func (s Server) WishlistPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.render(w, r, http.StatusOK, "wishlist", wishlistData{
			layoutData: s.layout(r, "Wishlist", "wishlist"),
			Items:      s.wishlist.Items(),
		})
	}
}

// NotFoundPage renders unknown routes
func (s Server) NotFoundPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			writeErrorResponse(w, http.StatusNotFound, errors.New("not found"))
			return
		}
		s.renderError(w, r, http.StatusNotFound, "Page not found")
	}
}

// ToggleWishlistForm handles the wishlist buttons of every page and redirects back
func (s Server) ToggleWishlistForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		entry, err := entryFromForm(r)
		if err == nil {
			err = s.validate.Struct(entry)
		}
		if err != nil {
			log.Debugw("invalid wishlist form", zap.Error(err))
			s.renderError(w, r, http.StatusBadRequest, "Invalid wishlist request")
			return
		}

		s.wishlist.Toggle(r.Context(), entry)
		http.Redirect(w, r, safeRedirect(r.PostForm.Get("redirect"), "/"), http.StatusSeeOther)
	}
}

// ClearWishlistForm empties the wishlist
func (s Server) ClearWishlistForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.wishlist.Clear(r.Context())
		http.Redirect(w, r, "/wishlist", http.StatusSeeOther)
	}
}

func entryFromForm(r *http.Request) (wishlist.Entry, error) {
	if err := r.ParseForm(); err != nil {
		return wishlist.Entry{}, err
	}
	f := r.PostForm

	id, err := strconv.Atoi(f.Get("id"))
	if err != nil {
		return wishlist.Entry{}, fmt.Errorf("invalid id: %w", err)
	}

	entry := wishlist.Entry{
		ID:            id,
		Title:         f.Get("title"),
		PosterURL:     f.Get("poster"),
		ReleaseDate:   f.Get("release"),
		OriginalTitle: f.Get("original"),
		Category:      movies.Category(f.Get("category")),
	}

	if v := f.Get("vote"); v != "" {
		vote, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return wishlist.Entry{}, fmt.Errorf("invalid vote: %w", err)
		}
		entry.VoteAverage = &vote
	}

	if v := f.Get("adult"); v != "" {
		adult := v == "true"
		entry.Adult = &adult
	}

	return entry, nil
}

// safeRedirect only allows local paths so the form cannot redirect off site
func safeRedirect(target, fallback string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return fallback
	}
	return target
}
