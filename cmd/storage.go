package cmd

import (
	"context"
	"fmt"

	"github.com/kasuboski/moviez/config"
	"github.com/kasuboski/moviez/pkg/storage"
	"github.com/kasuboski/moviez/pkg/storage/file"
	"github.com/kasuboski/moviez/pkg/storage/memory"
	"github.com/kasuboski/moviez/pkg/storage/sqlite"
	"github.com/spf13/afero"
)

var ephemeral bool

// openStorage opens the client storage selected by cfg. --ephemeral forces
// the in-memory driver.
func openStorage(ctx context.Context, cfg config.Storage) (storage.Storage, error) {
	driver := cfg.Driver
	if ephemeral {
		driver = storage.DriverMemory
	}

	switch driver {
	case storage.DriverSQLite, "":
		return sqlite.New(ctx, cfg.FilePath)
	case storage.DriverFile:
		return file.New(afero.NewOsFs(), cfg.Dir)
	case storage.DriverMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "keep the wishlist in memory only")
}
