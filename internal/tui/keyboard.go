package tui

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/cinedex/internal/adapter"
	"github.com/mmcdole/cinedex/internal/catalog"
	"github.com/mmcdole/cinedex/internal/domain"
	"github.com/mmcdole/cinedex/internal/prefs"
	"github.com/mmcdole/cinedex/internal/tui/styles"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.State == StateHelp {
		if key.Matches(msg, Keys.Escape, Keys.Help, Keys.Quit) {
			m.State = StateBrowsing
		}
		return m, nil
	}

	// Route to active modal if any
	if m.Jump.IsVisible() {
		var cmd tea.Cmd
		var chosen bool
		m.Jump, cmd, chosen = m.Jump.Update(msg)
		if chosen {
			if r, ok := m.Jump.Selected(); ok {
				m.jumpTo(r)
			}
		}
		return m, cmd
	}
	if handled, confirmed := m.Genres.HandleKey(msg); handled {
		if confirmed {
			m.query.RequiredGenres = m.Genres.Selection()
			m.refreshView()
		}
		return m, nil
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.Escape):
		m.clearFilters()
		return m, nil

	case key.Matches(msg, Keys.Search):
		m.searching = true
		m.Search.Focus()
		return m, textinput.Blink

	case key.Matches(msg, Keys.QuickJump):
		m.Jump.Show(m.records)
		m.Jump.SetSize(m.Width)
		return m, textinput.Blink

	case key.Matches(msg, Keys.Genres):
		m.Genres.Show(m.query.RequiredGenres)
		return m, nil

	case key.Matches(msg, Keys.Sort):
		m.query.SortKey = m.query.SortKey.Next()
		m.refreshView()
		return m, nil

	case key.Matches(msg, Keys.Mode):
		m.mode = m.mode.Next()
		m.refreshView()
		return m, nil

	case key.Matches(msg, Keys.Play):
		r, ok := m.List.Selected()
		if !ok {
			return m, nil
		}
		return m, PlayCmd(m.deps.Launcher, r, adapter.PlayerURL(m.deps.PlayerURL, r.ID))

	case key.Matches(msg, Keys.Favorite):
		return m, m.toggleFavorite()

	case key.Matches(msg, Keys.Watch):
		return m, m.toggleWatch()

	case key.Matches(msg, Keys.Untrack):
		return m, m.untrack()

	case key.Matches(msg, Keys.Random):
		return m, m.pickRandom()

	case key.Matches(msg, Keys.Refresh):
		return m, m.startLoad(true)

	case key.Matches(msg, Keys.Theme):
		dark, err := m.deps.Settings.ToggleTheme()
		m.dark = dark
		styles.Apply(dark)
		m.Search.PromptStyle = styles.PromptStyle
		if err != nil {
			return m, m.setStatus("Couldn't save theme", true)
		}
		return m, nil

	case key.Matches(msg, Keys.DismissGuide):
		if !m.ShowGuide {
			return m, nil
		}
		m.ShowGuide = false
		m.updateLayout()
		if err := m.deps.Settings.MarkGuideSeen(); err != nil {
			m.logger.Error("failed to save guide flag", "error", err)
		}
		return m, nil

	case key.Matches(msg, Keys.Up):
		m.List.Up()
	case key.Matches(msg, Keys.Down):
		m.List.Down()
	case key.Matches(msg, Keys.PageUp):
		m.List.PageUp()
	case key.Matches(msg, Keys.PageDown):
		m.List.PageDown()
	case key.Matches(msg, Keys.Home):
		m.List.Home()
	case key.Matches(msg, Keys.End):
		m.List.End()
	}

	m.updateDetail()
	return m, nil
}

// handleSearchKey routes keys while the search input has focus. Edits are
// applied after the debounce delay; enter and esc apply immediately.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searching = false
		m.Search.Blur()
		m.Search.SetValue("")
		m.searchSeq++
		m.query.SearchText = ""
		m.refreshView()
		return m, nil

	case tea.KeyEnter:
		m.searching = false
		m.Search.Blur()
		m.searchSeq++
		m.query.SearchText = m.Search.Value()
		m.refreshView()
		return m, nil
	}

	prev := m.Search.Value()
	var cmd tea.Cmd
	m.Search, cmd = m.Search.Update(msg)
	if m.Search.Value() == prev {
		return m, cmd
	}
	m.searchSeq++
	return m, tea.Batch(cmd, DebounceCmd(m.searchSeq, m.deps.Debounce))
}

// clearFilters drops the search text and genre requirements
func (m *Model) clearFilters() {
	if m.query.SearchText == "" && len(m.query.RequiredGenres) == 0 {
		return
	}
	m.Search.SetValue("")
	m.searchSeq++
	m.query.SearchText = ""
	m.query.RequiredGenres = nil
	m.refreshView()
}

func (m *Model) toggleFavorite() tea.Cmd {
	r, ok := m.List.Selected()
	if !ok {
		return nil
	}
	added, err := m.deps.Favorites.Toggle(prefs.FromRecord(r))
	m.reloadMarks()
	if m.mode == ModeFavorites {
		m.refreshView()
	} else {
		m.updateDetail()
	}
	if err != nil {
		return m.setStatus("Couldn't save favorites", true)
	}
	if added {
		return m.setStatus(fmt.Sprintf("Added %s to favorites", r.Title), false)
	}
	return m.setStatus(fmt.Sprintf("Removed %s from favorites", r.Title), false)
}

func (m *Model) toggleWatch() tea.Cmd {
	r, ok := m.List.Selected()
	if !ok {
		return nil
	}
	state, err := m.deps.Watch.Toggle(prefs.WatchTarget(r))
	m.reloadMarks()
	if m.mode == ModeWatching || m.mode == ModeCompleted {
		m.refreshView()
	} else {
		m.updateDetail()
	}
	if err != nil {
		return m.setStatus("Couldn't save watch state", true)
	}

	switch state {
	case domain.WatchWatching:
		return m.setStatus(fmt.Sprintf("Watching %s", r.Title), false)
	case domain.WatchCompleted:
		return m.setStatus(fmt.Sprintf("Completed %s", r.Title), false)
	default:
		return m.setStatus(fmt.Sprintf("Cleared watch state for %s", r.Title), false)
	}
}

// untrack forgets the selected title's watch state in one step
func (m *Model) untrack() tea.Cmd {
	r, ok := m.List.Selected()
	if !ok {
		return nil
	}
	if _, state := m.marks.lookup(r.ID); state == domain.WatchNone {
		return nil
	}
	err := m.deps.Watch.Remove(strconv.Itoa(r.ID))
	m.reloadMarks()
	if m.mode == ModeWatching || m.mode == ModeCompleted {
		m.refreshView()
	} else {
		m.updateDetail()
	}
	if err != nil {
		return m.setStatus("Couldn't save watch state", true)
	}
	return m.setStatus(fmt.Sprintf("Stopped tracking %s", r.Title), false)
}

// pickRandom selects a random record from the current list
func (m *Model) pickRandom() tea.Cmd {
	r, err := catalog.Random(m.visible, m.deps.Rand)
	if errors.Is(err, domain.ErrEmptyCatalog) {
		return m.setStatus("No movies to pick from", true)
	}
	m.List.SelectID(r.ID)
	m.updateDetail()
	return m.setStatus(fmt.Sprintf("How about %s?", r.Title), false)
}
