package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/cinedex/internal/domain"
	"github.com/mmcdole/cinedex/internal/tui/styles"
	"github.com/sahilm/fuzzy"
)

const quickJumpMaxResults = 10

// titleSource adapts records to fuzzy.Source
type titleSource []domain.MediaRecord

func (s titleSource) String(i int) string { return s[i].Title }
func (s titleSource) Len() int            { return len(s) }

// QuickJump is a fuzzy title finder over the whole catalog
type QuickJump struct {
	input   textinput.Model
	records []domain.MediaRecord
	matches fuzzy.Matches
	cursor  int
	visible bool
	width   int
}

// NewQuickJump creates the finder
func NewQuickJump() QuickJump {
	ti := textinput.New()
	ti.Placeholder = "Jump to title..."
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "› "

	return QuickJump{input: ti}
}

// Show opens the finder over records
func (q *QuickJump) Show(records []domain.MediaRecord) {
	q.visible = true
	q.records = records
	q.input.PromptStyle = styles.PromptStyle
	q.input.SetValue("")
	q.input.Focus()
	q.matches = nil
	q.cursor = 0
}

func (q *QuickJump) Hide() {
	q.visible = false
	q.input.Blur()
}

func (q QuickJump) IsVisible() bool {
	return q.visible
}

func (q *QuickJump) SetSize(width int) {
	q.width = width
	q.input.Width = width - 10
}

// Selected returns the highlighted match
func (q QuickJump) Selected() (domain.MediaRecord, bool) {
	if q.cursor >= len(q.matches) {
		return domain.MediaRecord{}, false
	}
	return q.records[q.matches[q.cursor].Index], true
}

func (q *QuickJump) refresh() {
	query := q.input.Value()
	if query == "" {
		q.matches = nil
	} else {
		q.matches = fuzzy.FindFrom(query, titleSource(q.records))
	}
	q.cursor = 0
}

// Update handles messages. chosen is true when the user picked a match.
func (q QuickJump) Update(msg tea.Msg) (QuickJump, tea.Cmd, bool) {
	if !q.visible {
		return q, nil, false
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, QuickJumpKeys.Escape):
			q.Hide()
			return q, nil, false
		case key.Matches(msg, QuickJumpKeys.Enter):
			if len(q.matches) > 0 {
				q.Hide()
				return q, nil, true
			}
			return q, nil, false
		case key.Matches(msg, QuickJumpKeys.Down):
			if q.cursor < min(len(q.matches), quickJumpMaxResults)-1 {
				q.cursor++
			}
			return q, nil, false
		case key.Matches(msg, QuickJumpKeys.Up):
			if q.cursor > 0 {
				q.cursor--
			}
			return q, nil, false
		}
	}

	var cmd tea.Cmd
	prev := q.input.Value()
	q.input, cmd = q.input.Update(msg)
	if q.input.Value() != prev {
		q.refresh()
	}
	return q, cmd, false
}

// View renders the finder modal
func (q QuickJump) View() string {
	if !q.visible {
		return ""
	}

	modalWidth := q.width * 2 / 3
	modalWidth = max(40, min(modalWidth, 80))

	var b strings.Builder
	b.WriteString(styles.ModalTitleStyle.Render("Quick Jump"))
	b.WriteString("\n")
	b.WriteString(q.input.View())
	b.WriteString("\n\n")

	switch {
	case q.input.Value() == "":
		b.WriteString(styles.DimStyle.Render("Type part of a title"))
	case len(q.matches) == 0:
		b.WriteString(styles.DimStyle.Render("No matches"))
	default:
		for i, m := range q.matches {
			if i >= quickJumpMaxResults {
				b.WriteString(styles.DimStyle.Render(fmt.Sprintf("… %d more", len(q.matches)-quickJumpMaxResults)))
				break
			}
			line := highlightMatch(m.Str, m.MatchedIndexes, i == q.cursor)
			if i == q.cursor {
				line = styles.SelectedItemStyle.Render("> ") + line
			} else {
				line = "  " + line
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return styles.ModalStyle.
		Width(modalWidth).
		Render(lipgloss.NewStyle().Width(modalWidth - 4).Render(strings.TrimRight(b.String(), "\n")))
}

// highlightMatch bolds the matched characters of s
func highlightMatch(s string, idx []int, selected bool) string {
	base := styles.NormalItemStyle
	if selected {
		base = styles.SelectedItemStyle
	}
	hit := make(map[int]bool, len(idx))
	for _, i := range idx {
		hit[i] = true
	}

	var b strings.Builder
	for i, r := range s {
		if hit[i] {
			b.WriteString(styles.MatchStyle.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}
