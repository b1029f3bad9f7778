package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "moviez",
	Short: "moviez cli",
	Long:  `browse popular, top rated and upcoming films and keep a wishlist`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default config.yaml when present)")
}

const (
	defaultConfigFile = "config.yaml"
	defaultBackoff    = time.Second
	defaultStaleTime  = time.Minute
)

func initConfig() {
	switch {
	case cfgFile != "":
		viper.SetConfigFile(cfgFile)
	case fileExists(defaultConfigFile):
		viper.SetConfigFile(defaultConfigFile)
	}

	viper.SetEnvPrefix("MOVIEZ")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("tmdb.scheme", "https")
	viper.SetDefault("tmdb.host", "api.themoviedb.org")
	viper.SetDefault("tmdb.basePath", "/3")
	viper.SetDefault("tmdb.apiKey", "")
	viper.SetDefault("tmdb.token", "")
	viper.SetDefault("tmdb.imageBase", "https://image.tmdb.org/t/p")
	viper.SetDefault("tmdb.backoff", defaultBackoff)
	viper.SetDefault("tmdb.maxRetries", 3)
	viper.SetDefault("tmdb.forceMock", false)
	viper.SetDefault("tmdb.cacheTTL", defaultStaleTime)

	viper.SetDefault("server.port", 8080)

	viper.SetDefault("storage.driver", "sqlite")
	viper.SetDefault("storage.filePath", "moviez.sqlite")
	viper.SetDefault("storage.dir", ".moviez")

	viper.SetDefault("ui.reducedMotion", false)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
