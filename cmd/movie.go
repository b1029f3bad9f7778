package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/kasuboski/moviez/config"
	"github.com/kasuboski/moviez/pkg/logger"
	"github.com/kasuboski/moviez/pkg/movies"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var movieCategory string

// listMoviesCmd lists the films of a category
var listMoviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "list popular, top rated or upcoming films",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		log := logger.Get()
		ctx = logger.WithCtx(ctx, log)

		category, err := movies.ParseCategory(movieCategory)
		if err != nil {
			log.Fatal("invalid category", zap.Error(err))
		}

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		provider, err := movies.NewProvider(cfg.TMDB)
		if err != nil {
			log.Fatal("failed to create film provider", zap.Error(err))
		}

		films, err := movies.List(ctx, provider, category)
		if err != nil {
			log.Fatal("failed to list films", zap.Error(err))
		}

		if err := writeFilms(os.Stdout, films); err != nil {
			log.Fatal(err)
		}
	},
}

// getMovieCmd prints the details of one film
var getMovieCmd = &cobra.Command{
	Use:   "movie",
	Short: "get the details of a film",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		log := logger.Get()
		ctx = logger.WithCtx(ctx, log)

		id, err := strconv.Atoi(args[0])
		if err != nil || id <= 0 {
			log.Fatal("movie id must be a positive integer", zap.String("id", args[0]))
		}

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		provider, err := movies.NewProvider(cfg.TMDB)
		if err != nil {
			log.Fatal("failed to create film provider", zap.Error(err))
		}

		film, err := provider.Movie(ctx, id)
		if err != nil {
			log.Fatal("failed to get film", zap.Int("id", id), zap.Error(err))
		}

		if outputJSON {
			err = writeJSON(os.Stdout, film)
		} else {
			_, err = fmt.Fprint(os.Stdout, describeFilm(film))
		}
		if err != nil {
			log.Fatal(err)
		}
	},
}

func describeFilm(f movies.Film) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s", f.Title)
	if year := f.Year(); year != "" {
		fmt.Fprintf(&b, " (%s)", year)
	}
	b.WriteString("\n")

	if f.Tagline != "" {
		fmt.Fprintf(&b, "%s\n", f.Tagline)
	}
	if rating := f.Rating(); rating != "" {
		fmt.Fprintf(&b, "rating:   %s\n", rating)
	}
	if f.Runtime > 0 {
		fmt.Fprintf(&b, "runtime:  %dh %dm\n", f.Runtime/60, f.Runtime%60)
	}
	if len(f.Genres) > 0 {
		names := make([]string, 0, len(f.Genres))
		for _, g := range f.Genres {
			names = append(names, g.Name)
		}
		fmt.Fprintf(&b, "genres:   %s\n", strings.Join(names, ", "))
	}
	if f.Status != "" {
		fmt.Fprintf(&b, "status:   %s\n", f.Status)
	}
	if f.Budget > 0 {
		fmt.Fprintf(&b, "budget:   $%s\n", humanize.Comma(f.Budget))
	}
	if f.Revenue > 0 {
		fmt.Fprintf(&b, "revenue:  $%s\n", humanize.Comma(f.Revenue))
	}
	if f.Overview != "" {
		fmt.Fprintf(&b, "\n%s\n", f.Overview)
	}

	return b.String()
}

func init() {
	listMoviesCmd.Flags().StringVarP(&movieCategory, "category", "c", string(movies.CategoryPopular), "popular, top-rated or upcoming")

	listCmd.AddCommand(listMoviesCmd)
	getCmd.AddCommand(getMovieCmd)
}
