package cmd

import (
	"context"

	"github.com/kasuboski/moviez/config"
	"github.com/kasuboski/moviez/pkg/logger"
	"github.com/kasuboski/moviez/pkg/movies"
	"github.com/kasuboski/moviez/pkg/wishlist"
	"github.com/kasuboski/moviez/server"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the web server",
	Long:  `serve the film browser pages and the json api`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		provider, err := movies.NewProvider(cfg.TMDB)
		if err != nil {
			log.Fatal("failed to create film provider", zap.Error(err))
		}
		log.Infow("using film provider", "kind", provider.Kind())

		store, err := openStorage(ctx, cfg.Storage)
		if err != nil {
			log.Fatal("failed to open storage", zap.Error(err))
		}
		defer closeStorage(ctx, store)

		wish := wishlist.Open(ctx, store)
		srv := server.New(log, provider, wish)
		log.Error(srv.Serve(cfg.Server.Port))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
