package tui

import "github.com/charmbracelet/lipgloss"

// Layout proportions
const (
	ListColumnPercent = 55
	MinColumnWidth    = 30

	// Search bar line plus footer line
	ChromeHeight = 2
)

// contentHeight is the height left for the list and detail panels
func (m Model) contentHeight() int {
	h := m.Height - ChromeHeight
	if m.ShowGuide {
		h -= lipgloss.Height(m.renderGuide())
	}
	return max(h, 3)
}

// columnWidths splits the width between list and detail. The detail
// panel is dropped on narrow terminals.
func (m Model) columnWidths() (list, detail int) {
	if m.Width < MinColumnWidth*2 {
		return m.Width, 0
	}
	list = max(m.Width*ListColumnPercent/100, MinColumnWidth)
	return list, m.Width - list
}

// updateLayout updates component sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}
	h := m.contentHeight()
	listW, detailW := m.columnWidths()

	m.List.SetSize(listW, h)
	m.Detail.SetSize(detailW, h)
	m.Jump.SetSize(m.Width)
	m.Search.Width = max(m.Width/2, 20)
}
