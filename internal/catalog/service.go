package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/mmcdole/cinedex/internal/adapter"
	"github.com/mmcdole/cinedex/internal/domain"
	"github.com/mmcdole/cinedex/internal/store"
)

const (
	DefaultStaleAfter    = time.Hour
	DefaultPageDelay     = 100 * time.Millisecond
	DefaultRetries       = 2
	DefaultRetryDelay    = time.Second
	DefaultMaxRetryDelay = 30 * time.Second
)

// Options tunes the cache. Zero values select the defaults; NoPageDelay and
// NoRetry force the throttle and the retry policy off.
type Options struct {
	StaleAfter    time.Duration
	PageDelay     time.Duration
	Retries       int
	RetryDelay    time.Duration
	MaxRetryDelay time.Duration

	NoPageDelay bool // disable throttling between pages
	NoRetry     bool // single attempt for the triggering request

	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.StaleAfter <= 0 {
		o.StaleAfter = DefaultStaleAfter
	}
	if o.PageDelay <= 0 && !o.NoPageDelay {
		o.PageDelay = DefaultPageDelay
	}
	if o.NoPageDelay {
		o.PageDelay = 0
	}
	if o.Retries <= 0 && !o.NoRetry {
		o.Retries = DefaultRetries
	}
	if o.NoRetry {
		o.Retries = 0
	}
	if o.RetryDelay <= 0 {
		o.RetryDelay = DefaultRetryDelay
	}
	if o.MaxRetryDelay <= 0 {
		o.MaxRetryDelay = DefaultMaxRetryDelay
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// OptionsFromConfig maps the source section of the config file. A
// configured zero turns retries or the page delay off rather than falling
// back to the defaults.
func OptionsFromConfig(cfg *adapter.SourceConfig) Options {
	return Options{
		StaleAfter:  cfg.StaleAfter,
		PageDelay:   cfg.PageDelay,
		Retries:     cfg.Retries,
		NoPageDelay: cfg.PageDelay <= 0,
		NoRetry:     cfg.Retries <= 0,
	}
}

// Service orchestrates catalog client + store operations. It is the only
// writer of the persisted snapshot key.
type Service struct {
	client domain.CatalogClient
	kv     domain.KeyValueStore
	opts   Options
	logger *slog.Logger
}

// NewService creates a new catalog cache.
func NewService(client domain.CatalogClient, kv domain.KeyValueStore, opts Options, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{client: client, kv: kv, opts: opts.withDefaults(), logger: logger}
}

// GetCatalog returns the catalog, serving the persisted snapshot when it is
// fresh and complete. It never fails: on error it degrades to the last
// persisted snapshot, or an empty one, and reports why in the result.
func (s *Service) GetCatalog(ctx context.Context, onProgress domain.ProgressFunc) (domain.CatalogSnapshot, domain.SyncResult) {
	return s.load(ctx, false, onProgress)
}

// Refresh skips the freshness test and always walks the source.
func (s *Service) Refresh(ctx context.Context, onProgress domain.ProgressFunc) (domain.CatalogSnapshot, domain.SyncResult) {
	return s.load(ctx, true, onProgress)
}

// Invalidate drops the persisted snapshot. Favorites and watch states
// are untouched.
func (s *Service) Invalidate() {
	if err := s.kv.Delete(domain.KeyCatalog); err != nil {
		s.logger.Error("failed to invalidate catalog", "error", err)
		return
	}
	s.logger.Info("invalidated catalog cache")
}

// IsFresh reports whether a persisted snapshot can be served as-is.
func IsFresh(snap domain.CatalogSnapshot, remoteTotal int, now time.Time, staleAfter time.Duration) bool {
	if now.Sub(snap.FetchedAt) >= staleAfter {
		return false
	}
	if snap.ExpectedTotal != remoteTotal {
		return false
	}
	return snap.IsComplete()
}

func (s *Service) load(ctx context.Context, force bool, onProgress domain.ProgressFunc) (domain.CatalogSnapshot, domain.SyncResult) {
	stored, hasStored := s.readSnapshot()

	// 1. Existence check: page 1 carries the source's current total
	first, err := s.fetchFirstPage(ctx)
	if err != nil {
		return s.fallback(stored, hasStored, err)
	}

	// 2. Freshness check
	if !force && hasStored && IsFresh(stored, first.Total, s.opts.Now(), s.opts.StaleAfter) {
		s.logger.Debug("cache fresh", "count", len(stored.Records), "fetchedAt", stored.FetchedAt)
		if onProgress != nil {
			onProgress(len(stored.Records), stored.ExpectedTotal)
		}
		return stored, domain.SyncResult{Source: domain.SourceCache, Count: len(stored.Records)}
	}

	// 3. Full walk, reusing page 1
	s.logger.Debug("cache stale, fetching", "stored", len(stored.Records), "remoteTotal", first.Total, "force", force)

	records, total, err := fetchAll(ctx, first.Records, first.Total,
		func(ctx context.Context, page int) ([]domain.MediaRecord, error) {
			p, err := s.client.FetchPage(ctx, page)
			return p.Records, err
		},
		s.opts.PageDelay,
		onProgress,
	)
	if err != nil {
		return s.fallback(stored, hasStored, err)
	}
	if err := checkWalk(records, total, stored, hasStored); err != nil {
		return s.fallback(stored, hasStored, err)
	}

	snap := domain.CatalogSnapshot{
		Records:       records,
		FetchedAt:     s.opts.Now(),
		ExpectedTotal: total,
	}
	if err := store.SetJSON(s.kv, domain.KeyCatalog, snap); err != nil {
		s.logger.Error("failed to save catalog", "error", err)
	}
	if !snap.IsComplete() {
		s.logger.Warn("catalog incomplete", "count", len(records), "expected", total)
	}
	s.logger.Info("fetched catalog", "count", len(records), "total", total)

	return snap, domain.SyncResult{Source: domain.SourceNetwork, Count: len(records)}
}

// checkWalk rejects a walk that would replace good data with less. A
// source announcing records but delivering none is malformed, and a short
// walk never overwrites a complete snapshot holding more records.
func checkWalk(records []domain.MediaRecord, total int, stored domain.CatalogSnapshot, hasStored bool) error {
	if len(records) == 0 && total > 0 {
		return fmt.Errorf("%w: announced %d records, delivered none", domain.ErrMalformedResponse, total)
	}
	if len(records) < total && hasStored && stored.IsComplete() && len(records) < len(stored.Records) {
		return fmt.Errorf("%w: delivered %d of %d records", domain.ErrMalformedResponse, len(records), total)
	}
	return nil
}

// fetchFirstPage applies the consumer-level retry policy to the triggering
// request only: Retries extra attempts, backoff min(RetryDelay*2^n, MaxRetryDelay).
func (s *Service) fetchFirstPage(ctx context.Context) (domain.CatalogPage, error) {
	return retry.DoWithData(
		func() (domain.CatalogPage, error) {
			return s.client.FetchPage(ctx, 1)
		},
		retry.Context(ctx),
		retry.Attempts(uint(s.opts.Retries)+1),
		retry.Delay(s.opts.RetryDelay),
		retry.MaxDelay(s.opts.MaxRetryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
		}),
		retry.OnRetry(func(n uint, err error) {
			s.logger.Warn("catalog request failed, retrying", "attempt", n+1, "error", err)
		}),
	)
}

func (s *Service) fallback(stored domain.CatalogSnapshot, hasStored bool, err error) (domain.CatalogSnapshot, domain.SyncResult) {
	if hasStored {
		s.logger.Warn("catalog fetch failed, serving cached snapshot", "error", err, "count", len(stored.Records))
		return stored, domain.SyncResult{Source: domain.SourceFallback, Count: len(stored.Records), Err: err}
	}
	s.logger.Error("catalog fetch failed, no cached snapshot", "error", err)
	empty := domain.CatalogSnapshot{Records: []domain.MediaRecord{}}
	return empty, domain.SyncResult{Source: domain.SourceEmpty, Err: err}
}

// readSnapshot loads the persisted snapshot. Undecodable data reads as absent.
func (s *Service) readSnapshot() (domain.CatalogSnapshot, bool) {
	var snap domain.CatalogSnapshot
	if store.GetJSON(s.kv, domain.KeyCatalog, &snap) && snap.Records != nil {
		return snap, true
	}
	if _, present := s.kv.Get(domain.KeyCatalog); present {
		s.logger.Warn("ignoring persisted catalog", "error", domain.ErrStorageCorrupt)
	}
	return domain.CatalogSnapshot{}, false
}

// fetchAll is a generic pagination helper. first holds page 1, already
// fetched, and total is the count page 1 announced; pages 2..n are
// requested until a page comes back empty or the accumulated count
// reaches total. Any page error aborts the walk.
func fetchAll[T any](
	ctx context.Context,
	first []T,
	total int,
	fetch func(ctx context.Context, page int) ([]T, error),
	delay time.Duration,
	onProgress domain.ProgressFunc,
) ([]T, int, error) {
	all := append(make([]T, 0, max(total, len(first))), first...)
	if onProgress != nil {
		onProgress(len(all), total)
	}

	if len(first) == 0 {
		return all, total, nil
	}

	for page := 2; len(all) < total; page++ {
		if err := sleepCtx(ctx, delay); err != nil {
			return nil, 0, err
		}

		items, err := fetch(ctx, page)
		if err != nil {
			return nil, 0, err
		}
		if len(items) == 0 {
			break
		}

		all = append(all, items...)

		if onProgress != nil {
			onProgress(len(all), total)
		}
	}

	return all, total, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
