package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/kasuboski/moviez/config"
	"github.com/kasuboski/moviez/pkg/logger"
	"github.com/kasuboski/moviez/pkg/movies"
	"github.com/kasuboski/moviez/pkg/tui"
	"github.com/kasuboski/moviez/pkg/wishlist"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var reducedMotion bool

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "browse films in the terminal",
	Long:  `browse films in the terminal with the keyboard or the mouse`,
	Run: func(cmd *cobra.Command, args []string) {
		// the terminal belongs to the ui, logs only go to LOG_FILE when set
		if os.Getenv("LOG_FILE") == "" {
			logger.Replace(zap.NewNop().Sugar())
		}
		log := logger.Get()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
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

		m := tui.New(provider, wishlist.Open(ctx, store),
			tui.WithContext(ctx),
			tui.WithReducedMotion(cfg.UI.ReducedMotion || reducedMotion),
		)
		if err := tui.Run(ctx, m); err != nil {
			log.Errorw("browser exited", zap.Error(err))
		}
	},
}

func init() {
	browseCmd.Flags().BoolVar(&reducedMotion, "reduced-motion", false, "jump instead of animating scrolls")
	rootCmd.AddCommand(browseCmd)
}
