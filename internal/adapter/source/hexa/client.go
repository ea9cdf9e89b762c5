package hexa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/cinedex/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "Cinedex/1.0"
	catalogPath    = "/api/4k"
)

// Client implements domain.CatalogClient for the 4K catalog source
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new catalog API client. A zero timeout selects the default.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// doRequest performs a GET and returns the body of a 2xx response
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	reqURL := c.baseURL + path
	if query != nil {
		reqURL = fmt.Sprintf("%s?%s", reqURL, query.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("catalog request", "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.Error("catalog request failed", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceOffline, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("catalog request error", "status", resp.StatusCode, "bodyLen", len(body))
		return nil, fmt.Errorf("%w: unexpected status code: %d", domain.ErrSourceOffline, resp.StatusCode)
	}

	return body, nil
}

// FetchPage returns one page of the catalog. success:false, a missing or
// non-array movies field, and undecodable bodies are all hard errors.
func (c *Client) FetchPage(ctx context.Context, page int) (domain.CatalogPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))

	body, err := c.doRequest(ctx, catalogPath, query)
	if err != nil {
		return domain.CatalogPage{}, err
	}

	movies, total, err := c.parsePage(body)
	if err != nil {
		return domain.CatalogPage{}, err
	}

	return domain.CatalogPage{Records: MapMovies(movies), Total: total}, nil
}

func (c *Client) parsePage(body []byte) ([]Movie, int, error) {
	var resp PageResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	if !resp.Success {
		return nil, 0, fmt.Errorf("%w: success=false", domain.ErrMalformedResponse)
	}

	raw := bytes.TrimSpace(resp.Movies)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, 0, fmt.Errorf("%w: movies is not an array", domain.ErrMalformedResponse)
	}

	var movies []Movie
	if err := json.Unmarshal(raw, &movies); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	total := len(movies) // Fallback if total not provided
	if resp.Total != nil {
		total = *resp.Total
	}

	return movies, total, nil
}
