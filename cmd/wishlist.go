package cmd

import (
	"context"
	"os"
	"strconv"

	"github.com/kasuboski/moviez/config"
	"github.com/kasuboski/moviez/pkg/logger"
	"github.com/kasuboski/moviez/pkg/movies"
	"github.com/kasuboski/moviez/pkg/storage"
	"github.com/kasuboski/moviez/pkg/wishlist"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// wishlistCmd groups the wishlist mutations
var wishlistCmd = &cobra.Command{
	Use:   "wishlist",
	Short: "change the wishlist",
	Long:  `add, remove or clear films on the wishlist`,
}

// listWishlistCmd prints the saved films in the order they were added
var listWishlistCmd = &cobra.Command{
	Use:   "wishlist",
	Short: "list the films on the wishlist",
	Run: func(cmd *cobra.Command, args []string) {
		withWishlist(func(ctx context.Context, _ movies.Provider, w *wishlist.Store) {
			if err := writeFilms(os.Stdout, w.Items()); err != nil {
				logger.FromCtx(ctx).Fatal(err)
			}
		})
	},
}

var addWishlistCmd = &cobra.Command{
	Use:   "add [id...]",
	Short: "add films to the wishlist",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withWishlist(func(ctx context.Context, p movies.Provider, w *wishlist.Store) {
			log := logger.FromCtx(ctx)
			for _, id := range parseIDs(ctx, args) {
				film, err := p.Movie(ctx, id)
				if err != nil {
					log.Fatal("failed to get film", zap.Int("id", id), zap.Error(err))
				}
				w.Add(ctx, film.FilmSummary)
				log.Infow("added to wishlist", "id", id, "title", film.Title)
			}
		})
	},
}

var removeWishlistCmd = &cobra.Command{
	Use:   "remove [id...]",
	Short: "remove films from the wishlist",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withWishlist(func(ctx context.Context, _ movies.Provider, w *wishlist.Store) {
			log := logger.FromCtx(ctx)
			for _, id := range parseIDs(ctx, args) {
				if !w.Has(id) {
					log.Warnw("film is not on the wishlist", "id", id)
					continue
				}
				w.Remove(ctx, id)
				log.Infow("removed from wishlist", "id", id)
			}
		})
	},
}

var clearWishlistCmd = &cobra.Command{
	Use:   "clear",
	Short: "remove every film from the wishlist",
	Run: func(cmd *cobra.Command, args []string) {
		withWishlist(func(ctx context.Context, _ movies.Provider, w *wishlist.Store) {
			n := w.Len()
			w.Clear(ctx)
			logger.FromCtx(ctx).Infow("cleared wishlist", "removed", n)
		})
	},
}

// withWishlist loads the configuration, the provider and the persisted
// wishlist, then runs fn
func withWishlist(fn func(context.Context, movies.Provider, *wishlist.Store)) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log := logger.Get()
	ctx = logger.WithCtx(ctx, log)

	cfg, err := config.New(viper.GetViper())
	if err != nil {
		log.Fatal("failed to read configurations", zap.Error(err))
	}

	provider, err := movies.NewProvider(cfg.TMDB)
	if err != nil {
		log.Fatal("failed to create film provider", zap.Error(err))
	}

	store, err := openStorage(ctx, cfg.Storage)
	if err != nil {
		log.Fatal("failed to open storage", zap.Error(err))
	}
	defer closeStorage(ctx, store)

	fn(ctx, provider, wishlist.Open(ctx, store))
}

func closeStorage(ctx context.Context, s storage.Storage) {
	if err := s.Close(); err != nil {
		logger.FromCtx(ctx).Warnw("failed to close storage", zap.Error(err))
	}
}

func parseIDs(ctx context.Context, args []string) []int {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil || id <= 0 {
			logger.FromCtx(ctx).Fatal("movie id must be a positive integer", zap.String("id", arg))
		}
		ids = append(ids, id)
	}
	return ids
}

func init() {
	wishlistCmd.AddCommand(addWishlistCmd, removeWishlistCmd, clearWishlistCmd)
	rootCmd.AddCommand(wishlistCmd)

	listCmd.AddCommand(listWishlistCmd)
}
