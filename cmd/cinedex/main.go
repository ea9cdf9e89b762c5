package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/cinedex/internal/adapter"
	"github.com/mmcdole/cinedex/internal/adapter/source"
	"github.com/mmcdole/cinedex/internal/catalog"
	"github.com/mmcdole/cinedex/internal/domain"
	"github.com/mmcdole/cinedex/internal/prefs"
	"github.com/mmcdole/cinedex/internal/store"
	"github.com/mmcdole/cinedex/internal/tui"
	"github.com/mmcdole/cinedex/internal/view"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

type options struct {
	configPath string
	list       bool
	refresh    bool
	clearCache bool
	resetGuide bool
	initConfig bool
	id         int
	search     string
	genres     string
	sort       string
}

func main() {
	var showVersion bool
	var opts options
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.StringVar(&opts.configPath, "config", "", "path to config file")
	flag.BoolVar(&opts.list, "list", false, "print the catalog instead of starting the UI")
	flag.BoolVar(&opts.refresh, "refresh", false, "refetch the catalog even when the cache is fresh")
	flag.BoolVar(&opts.clearCache, "clear-cache", false, "drop the saved catalog before starting")
	flag.BoolVar(&opts.resetGuide, "reset-guide", false, "show the welcome guide again")
	flag.BoolVar(&opts.initConfig, "init-config", false, "write the default config file and exit")
	flag.IntVar(&opts.id, "id", 0, "open the movie with this id")
	flag.StringVar(&opts.search, "search", "", "list mode: title or overview substring")
	flag.StringVar(&opts.genres, "genre", "", "list mode: comma separated genre names or ids")
	flag.StringVar(&opts.sort, "sort", string(view.DefaultSortKey), "list mode: sort key")
	flag.Parse()

	if showVersion {
		fmt.Printf("cinedex %s\n", Version)
		return
	}

	if err := run(opts); err != nil {
		// showMovie already printed the not-found state
		if !errors.Is(err, domain.ErrRecordNotFound) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(opts options) error {
	cfg, err := adapter.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if opts.initConfig {
		path := opts.configPath
		if path == "" {
			path = filepath.Join(adapter.DefaultConfigDir(), "config.yaml")
		}
		if err := adapter.SaveConfig(cfg, path); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	}

	logger, closer, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		logger = adapter.NullLogger()
	} else {
		defer closer.Close()
	}
	slog.SetDefault(logger)

	logger.Info("starting cinedex", "version", Version)

	kv, err := store.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer kv.Close()

	client, err := source.NewClientFromConfig(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create catalog client: %w", err)
	}

	catalogSvc := catalog.NewService(client, kv, catalog.OptionsFromConfig(&cfg.Source), logger)
	if opts.clearCache {
		catalogSvc.Invalidate()
		printStorage(os.Stderr, kv)
	}
	settings := prefs.NewSettings(kv, cfg.IsDarkDefault(), logger)
	if opts.resetGuide {
		if err := settings.ResetGuide(); err != nil {
			return fmt.Errorf("failed to reset guide: %w", err)
		}
	}
	selector := view.NewSelector(view.ParseLocale(cfg.UI.Locale))

	plain := opts.list || !term.IsTerminal(int(os.Stdout.Fd()))
	if plain && opts.id != 0 {
		load := func() []domain.MediaRecord {
			snap, _ := catalogSvc.GetCatalog(context.Background(), nil)
			return snap.Records
		}
		return showMovie(os.Stdout, catalog.NewQueries(kv), load, opts.id, cfg.Player.URLTemplate)
	}
	if plain {
		return runList(catalogSvc, selector, opts, logger)
	}

	model := tui.NewModel(tui.Deps{
		Catalog:   catalogSvc,
		Favorites: prefs.NewFavorites(kv, logger),
		Watch:     prefs.NewWatchStates(kv, time.Now, logger),
		Settings:  settings,
		Launcher:  adapter.NewLauncher(cfg.Player.Command, logger),
		Selector:  selector,
		PlayerURL: cfg.Player.URLTemplate,
		Debounce:  cfg.UI.Debounce,
		Rand:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		Logger:    logger,
		OpenID:    opts.id,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// runList prints the filtered catalog as a table
func runList(svc *catalog.Service, selector *view.Selector, opts options, logger *slog.Logger) error {
	query, err := buildQuery(opts)
	if err != nil {
		return err
	}

	var progress domain.ProgressFunc
	if term.IsTerminal(int(os.Stderr.Fd())) {
		progress = func(loaded, total int) {
			fmt.Fprintf(os.Stderr, "\rLoading movies... %d/%d", loaded, total)
		}
	}

	ctx := context.Background()
	load := svc.GetCatalog
	if opts.refresh {
		load = svc.Refresh
	}
	snap, result := load(ctx, progress)
	if progress != nil {
		fmt.Fprint(os.Stderr, "\r\033[K")
	}
	logger.Info("catalog ready", "source", result.Source, "count", result.Count)

	if result.Degraded() {
		fmt.Fprintln(os.Stderr, "Couldn't reach the catalog source, showing the last saved copy.")
	}

	return printList(os.Stdout, selector.Select(snap.Records, query))
}
