package movies

import (
	"github.com/kasuboski/moviez/config"
	mhttp "github.com/kasuboski/moviez/pkg/http"
	"github.com/kasuboski/moviez/pkg/tmdb"
)

// NewProvider picks the demo catalogue when cfg forces it or carries no
// credentials, and a cached TMDB provider otherwise.
func NewProvider(cfg config.TMDB) (Provider, error) {
	if cfg.ForceMock || !cfg.HasCredentials() {
		return NewMock(), nil
	}

	baseURL, err := cfg.URL()
	if err != nil {
		return nil, err
	}

	var httpOpts []mhttp.ClientOption
	if cfg.BaseBackoff > 0 {
		httpOpts = append(httpOpts, mhttp.WithBaseBackoff(cfg.BaseBackoff))
	}
	if cfg.MaxRetries > 0 {
		httpOpts = append(httpOpts, mhttp.WithMaxRetries(cfg.MaxRetries))
	}

	auth := tmdb.SetRequestAPIKey(cfg.Token)
	if cfg.Token == "" {
		auth = tmdb.SetRequestQueryKey(cfg.APIKey)
	}

	client, err := tmdb.New(baseURL,
		tmdb.WithHTTPClient(mhttp.NewRateLimitedHTTPClient(httpOpts...)),
		tmdb.WithRequestEditorFn(auth),
	)
	if err != nil {
		return nil, err
	}

	var cacheOpts []CachedOption
	if cfg.CacheTTL > 0 {
		cacheOpts = append(cacheOpts, WithStaleTime(cfg.CacheTTL))
	}

	return NewCached(NewLive(client, cfg.ImageBase), cacheOpts...), nil
}
