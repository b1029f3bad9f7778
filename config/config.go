package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_config_unmarshaler.go github.com/kasuboski/moviez/config ConfigUnmarshaler

type Config struct {
	TMDB    TMDB    `json:"tmdb" yaml:"tmdb" mapstructure:"tmdb"`
	Storage Storage `json:"storage" yaml:"storage" mapstructure:"storage"`
	Server  Server  `json:"server" yaml:"server" mapstructure:"server"`
	UI      UI      `json:"ui" yaml:"ui" mapstructure:"ui"`
}

type TMDB struct {
	Scheme      string        `json:"scheme" yaml:"scheme" mapstructure:"scheme"`
	Host        string        `json:"host" yaml:"host" mapstructure:"host"`
	BasePath    string        `json:"basePath" yaml:"basePath" mapstructure:"basePath"`
	APIKey      string        `json:"apiKey" yaml:"apiKey" mapstructure:"apiKey"`
	Token       string        `json:"token" yaml:"token" mapstructure:"token"`
	ImageBase   string        `json:"imageBase" yaml:"imageBase" mapstructure:"imageBase"`
	BaseBackoff time.Duration `json:"backoff" yaml:"backoff" mapstructure:"backoff"`
	MaxRetries  int           `json:"maxRetries" yaml:"maxRetries" mapstructure:"maxRetries"`
	ForceMock   bool          `json:"forceMock" yaml:"forceMock" mapstructure:"forceMock"`
	CacheTTL    time.Duration `json:"cacheTTL" yaml:"cacheTTL" mapstructure:"cacheTTL"`
}

// HasCredentials reports whether a token or api key is configured
func (t TMDB) HasCredentials() bool {
	return t.Token != "" || t.APIKey != ""
}

// URL is the API root built from scheme, host and base path
func (t TMDB) URL() (string, error) {
	if t.Host == "" {
		return "", fmt.Errorf("tmdb host is not configured")
	}
	scheme := t.Scheme
	if scheme == "" {
		scheme = "https"
	}
	u := url.URL{Scheme: scheme, Host: t.Host, Path: t.BasePath}
	return u.String(), nil
}

type Server struct {
	Port int `json:"port" yaml:"port" mapstructure:"port"`
}

// Storage selects where client state such as the wishlist is kept
type Storage struct {
	Driver   string `json:"driver" yaml:"driver" mapstructure:"driver"`
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath"`
	Dir      string `json:"dir" yaml:"dir" mapstructure:"dir"`
}

type UI struct {
	ReducedMotion bool `json:"reducedMotion" yaml:"reducedMotion" mapstructure:"reducedMotion"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	return c, err
}
