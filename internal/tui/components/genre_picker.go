package components

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/cinedex/internal/domain"
	"github.com/mmcdole/cinedex/internal/tui/styles"
)

// GenrePicker is a popup for choosing the required genres
type GenrePicker struct {
	visible  bool
	options  []domain.Genre
	selected map[int]bool
	cursor   int
}

// NewGenrePicker creates a picker over options
func NewGenrePicker(options []domain.Genre) GenrePicker {
	return GenrePicker{options: options, selected: make(map[int]bool)}
}

// Show displays the picker with the current selection checked
func (p *GenrePicker) Show(current []int) {
	p.visible = true
	p.cursor = 0
	p.selected = make(map[int]bool, len(current))
	for _, id := range current {
		p.selected[id] = true
	}
}

func (p *GenrePicker) Hide() {
	p.visible = false
}

func (p GenrePicker) IsVisible() bool {
	return p.visible
}

// Selection returns the checked genre ids in picker order
func (p GenrePicker) Selection() []int {
	ids := []int{}
	for _, g := range p.options {
		if p.selected[g.ID] {
			ids = append(ids, g.ID)
		}
	}
	return ids
}

// HandleKey processes a key press. confirmed is true when the user
// applied the selection.
func (p *GenrePicker) HandleKey(msg tea.KeyMsg) (handled, confirmed bool) {
	if !p.visible {
		return false, false
	}

	switch {
	case key.Matches(msg, GenrePickerKeys.Down):
		if p.cursor < len(p.options)-1 {
			p.cursor++
		}
	case key.Matches(msg, GenrePickerKeys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(msg, GenrePickerKeys.Toggle):
		if len(p.options) > 0 {
			id := p.options[p.cursor].ID
			p.selected[id] = !p.selected[id]
		}
	case key.Matches(msg, GenrePickerKeys.Clear):
		p.selected = make(map[int]bool)
	case key.Matches(msg, GenrePickerKeys.Enter):
		p.visible = false
		return true, true
	case key.Matches(msg, GenrePickerKeys.Escape):
		p.visible = false
	}

	return true, false // consume all keys when visible
}

// View renders the picker
func (p GenrePicker) View() string {
	if !p.visible || len(p.options) == 0 {
		return ""
	}

	var lines []string
	for i, g := range p.options {
		prefix := "[ ] "
		if p.selected[g.ID] {
			prefix = "[x] "
		}
		text := styles.Pad(prefix+g.Name, 22)

		switch {
		case i == p.cursor:
			lines = append(lines, styles.SelectedItemStyle.Render(text))
		case p.selected[g.ID]:
			lines = append(lines, styles.AccentStyle.Render(text))
		default:
			lines = append(lines, styles.NormalItemStyle.Render(text))
		}
	}

	hint := styles.DimStyle.Render("space toggle · c clear · enter apply")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Colors.Accent).
		Padding(0, 1).
		Render(styles.ModalTitleStyle.Render("Genres") + "\n" + strings.Join(lines, "\n") + "\n\n" + hint)
}

// Active reports whether any genre is checked
func (p GenrePicker) Active() bool {
	return slices.ContainsFunc(p.options, func(g domain.Genre) bool { return p.selected[g.ID] })
}
