package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/cinedex/internal/domain"
)

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// CatalogProgressMsg is sent once per fetched page. NextCmd keeps
// pumping the load and must be run even when the message is stale.
type CatalogProgressMsg struct {
	Seq     int
	Loaded  int
	Total   int
	NextCmd tea.Cmd
}

// CatalogLoadedMsg carries the result of a catalog load
type CatalogLoadedMsg struct {
	Seq      int
	Snapshot domain.CatalogSnapshot
	Result   domain.SyncResult
}

// SearchDebounceMsg fires after the search input has been idle
type SearchDebounceMsg struct {
	Seq int
}

// PlaybackStartedMsg signals that the player URL was handed off
type PlaybackStartedMsg struct {
	ID    int
	Title string
	URL   string
}

// TickMsg drives the loading spinner
type TickMsg struct{}

// ClearStatusMsg clears the status bar message if it is still current
type ClearStatusMsg struct {
	Seq int
}
