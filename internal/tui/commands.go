package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/cinedex/internal/domain"
)

// CatalogLoader is the catalog cache as seen by the TUI
type CatalogLoader interface {
	GetCatalog(ctx context.Context, onProgress domain.ProgressFunc) (domain.CatalogSnapshot, domain.SyncResult)
	Refresh(ctx context.Context, onProgress domain.ProgressFunc) (domain.CatalogSnapshot, domain.SyncResult)
}

const catalogLoadTimeout = 10 * time.Minute

// LoadCatalogCmd loads the catalog in the background and streams page
// progress back using the NextCmd continuation. force skips the
// freshness test.
func LoadCatalogCmd(loader CatalogLoader, seq int, force bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), catalogLoadTimeout)
		events := make(chan tea.Msg)

		go func() {
			defer cancel()
			defer close(events)

			onProgress := func(loaded, total int) {
				events <- CatalogProgressMsg{Seq: seq, Loaded: loaded, Total: total}
			}

			var snap domain.CatalogSnapshot
			var result domain.SyncResult
			if force {
				snap, result = loader.Refresh(ctx, onProgress)
			} else {
				snap, result = loader.GetCatalog(ctx, onProgress)
			}
			events <- CatalogLoadedMsg{Seq: seq, Snapshot: snap, Result: result}
		}()

		return readCatalogEvent(seq, events)
	}
}

// readCatalogEvent reads one event and attaches the continuation
func readCatalogEvent(seq int, events <-chan tea.Msg) tea.Msg {
	msg, ok := <-events
	if !ok {
		return CatalogLoadedMsg{
			Seq:    seq,
			Result: domain.SyncResult{Source: domain.SourceEmpty, Err: fmt.Errorf("catalog load ended early")},
		}
	}
	if p, ok := msg.(CatalogProgressMsg); ok {
		p.NextCmd = func() tea.Msg { return readCatalogEvent(seq, events) }
		return p
	}
	return msg
}

// DebounceCmd fires a SearchDebounceMsg after delay
func DebounceCmd(seq int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return SearchDebounceMsg{Seq: seq}
	})
}

// PlayCmd hands the player URL to the launcher
func PlayCmd(launcher domain.Launcher, record domain.MediaRecord, url string) tea.Cmd {
	return func() tea.Msg {
		if err := launcher.Launch(url); err != nil {
			return ErrMsg{Err: err, Context: "opening player"}
		}
		return PlaybackStartedMsg{ID: record.ID, Title: record.Title, URL: url}
	}
}

// TickCmd returns a command that sends a tick after the given delay
func TickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(seq int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}
