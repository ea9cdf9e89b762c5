package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/cinedex/internal/domain"
	"github.com/mmcdole/cinedex/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}
	if m.State == StateHelp {
		return m.renderHelp()
	}

	var sections []string
	if m.ShowGuide {
		sections = append(sections, m.renderGuide())
	}
	sections = append(sections, m.renderSearchBar())

	h := m.contentHeight()
	var content string
	switch {
	case m.Jump.IsVisible():
		content = lipgloss.Place(m.Width, h, lipgloss.Center, lipgloss.Center, m.Jump.View())
	case m.Genres.IsVisible():
		content = lipgloss.Place(m.Width, h, lipgloss.Center, lipgloss.Center, m.Genres.View())
	case m.List.Len() == 0:
		content = lipgloss.Place(m.Width, h, lipgloss.Center, lipgloss.Center, m.renderEmpty())
	default:
		_, detailW := m.columnWidths()
		if detailW > 0 {
			content = lipgloss.JoinHorizontal(lipgloss.Top, m.List.View(), m.Detail.View())
		} else {
			content = m.List.View()
		}
	}
	sections = append(sections, content, m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderGuide renders the first-run banner
func (m Model) renderGuide() string {
	text := styles.TitleStyle.Render("Welcome to cinedex.") + " " +
		styles.SubtitleStyle.Render("Press enter to open a movie in your browser. An ad blocker is recommended for the player page.") + "\n" +
		styles.DimStyle.Render("Not sure what to watch? Press ") + styles.AccentStyle.Render("r") +
		styles.DimStyle.Render(" for a random pick. Press ") + styles.AccentStyle.Render("x") +
		styles.DimStyle.Render(" to hide this guide.")
	return styles.BannerStyle.Width(m.Width).Render(text)
}

// renderSearchBar renders the search input plus the active filters
func (m Model) renderSearchBar() string {
	left := m.Search.View()
	if !m.searching && m.Search.Value() == "" {
		left = styles.DimStyle.Render("/ search")
	}

	var parts []string
	if n := len(m.query.RequiredGenres); n > 0 {
		names := make([]string, 0, n)
		for _, id := range m.query.RequiredGenres {
			if name, ok := domain.GenreName(id); ok {
				names = append(names, name)
			}
		}
		parts = append(parts, styles.BadgeStyle.Render(strings.Join(names, " + ")))
	}
	parts = append(parts, styles.DimBadgeStyle.Render(m.query.SortKey.Label()))
	right := strings.Join(parts, " ")

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderEmpty explains an empty list
func (m Model) renderEmpty() string {
	switch {
	case m.Loading:
		return RenderSpinner(m.SpinnerFrame) + " " + styles.DimStyle.Render("Loading movies...")

	case m.mode == ModeAll && len(m.records) == 0:
		if !m.lastResult.Degraded() {
			return styles.DimStyle.Render("The catalog is empty.")
		}
		return styles.ErrorStyle.Render("Couldn't load movies. Please try again later.") +
			"\n" + styles.DimStyle.Render("Press R to retry.")

	case m.mode == ModeFavorites && len(m.sourceRecords()) == 0:
		return styles.DimStyle.Render("No favorites yet. Press f on a movie to add it.")

	case m.mode != ModeAll && len(m.sourceRecords()) == 0:
		return styles.DimStyle.Render(fmt.Sprintf("Nothing marked %s. Press w on a movie.", strings.ToLower(m.mode.String())))
	}

	msg := styles.DimStyle.Render("No movies match your filters.")
	if len(m.suggestions) > 0 {
		msg += "\n" + styles.SubtitleStyle.Render("Did you mean: ") +
			styles.AccentStyle.Render(strings.Join(m.suggestions, ", ")) + "?"
	}
	return msg + "\n" + styles.DimStyle.Render("Press esc to clear filters.")
}

// renderFooter renders the status line
func (m Model) renderFooter() string {
	var left string
	if m.Loading {
		statusText := "Loading movies..."
		if m.Total > 0 {
			statusText = fmt.Sprintf("Loading movies · %d/%d", m.Loaded, m.Total)
		}
		left = RenderSpinner(m.SpinnerFrame) + " " + styles.DimStyle.Render(statusText)
	} else if m.StatusMsg != "" {
		if m.StatusIsErr {
			left = styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			left = styles.DimStyle.Render(m.StatusMsg)
		}
	}

	right := styles.AccentStyle.Render("?") + styles.DimStyle.Render(" help")

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	help := `
NAVIGATION                      MOVIE
  j/k        Up/down               Enter  Open player
  g/Home     First item            f      Toggle favorite
  G/End      Last item             w      Watching / completed / clear
  PgUp/PgDn  Scroll page           u      Stop tracking
                                   r      Random pick

SEARCH & VIEW                   OTHER
  /          Search                R      Reload catalog
  :          Jump to title         t      Light/dark theme
  c          Genres                x      Hide guide
  s          Next sort order       q      Quit
  Tab        All/Favorites/...     ?      This help
  Esc        Clear filters

Press ? or esc to return...
`

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(help))
}

// RenderSpinner renders one spinner frame
func RenderSpinner(frame int) string {
	frames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	return styles.AccentStyle.Render(frames[frame%len(frames)])
}
