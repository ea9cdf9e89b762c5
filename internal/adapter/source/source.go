package source

import (
	"fmt"
	"log/slog"
	"net/url"

	"github.com/mmcdole/cinedex/internal/adapter"
	"github.com/mmcdole/cinedex/internal/adapter/source/hexa"
	"github.com/mmcdole/cinedex/internal/domain"
)

// NewClient creates the catalog client for the configured source
func NewClient(cfg *adapter.SourceConfig, logger *slog.Logger) (domain.CatalogClient, error) {
	if cfg == nil {
		return nil, fmt.Errorf("source config is nil")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("source base URL is required")
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid source base URL %q", cfg.BaseURL)
	}
	return hexa.NewClient(cfg.BaseURL, cfg.Timeout, logger), nil
}

// NewClientFromConfig creates the catalog client from the application config
func NewClientFromConfig(cfg *adapter.Config, logger *slog.Logger) (domain.CatalogClient, error) {
	return NewClient(&cfg.Source, logger)
}
