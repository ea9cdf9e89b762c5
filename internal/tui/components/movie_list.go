package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/cinedex/internal/domain"
	"github.com/mmcdole/cinedex/internal/tui/styles"
)

// Layout constants for the movie list
const (
	// Border adds 1 char on each side
	BorderWidth  = 2
	BorderHeight = 2

	// Header line plus the "↑ more" / "↓ more" indicators
	listChromeLines = 3
)

// MarkFunc reports the favorite flag and watch state shown next to a row
type MarkFunc func(id int) (favorite bool, state domain.WatchState)

// MovieList is a scrollable list of catalog records
type MovieList struct {
	records []domain.MediaRecord
	marks   MarkFunc

	cursor     int
	offset     int
	maxVisible int

	width   int
	height  int
	focused bool
	title   string
}

// NewMovieList creates an empty list
func NewMovieList(marks MarkFunc) MovieList {
	return MovieList{marks: marks, focused: true, maxVisible: 1}
}

// SetRecords replaces the rows. The cursor stays on the same record when
// it is still present, otherwise it is clamped.
func (l *MovieList) SetRecords(records []domain.MediaRecord) {
	prev, hadPrev := l.Selected()
	l.records = records
	if hadPrev && l.SelectID(prev.ID) {
		return
	}
	l.setCursor(l.cursor)
}

// SelectID moves the cursor to the record with id
func (l *MovieList) SelectID(id int) bool {
	for i, r := range l.records {
		if r.ID == id {
			l.setCursor(i)
			return true
		}
	}
	return false
}

// Selected returns the record under the cursor
func (l MovieList) Selected() (domain.MediaRecord, bool) {
	if l.cursor < 0 || l.cursor >= len(l.records) {
		return domain.MediaRecord{}, false
	}
	return l.records[l.cursor], true
}

// Len returns the number of rows
func (l MovieList) Len() int {
	return len(l.records)
}

func (l MovieList) Cursor() int {
	return l.cursor
}

func (l *MovieList) SetTitle(title string) {
	l.title = title
}

func (l *MovieList) SetFocused(focused bool) {
	l.focused = focused
}

func (l *MovieList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.maxVisible = height - BorderHeight - listChromeLines
	if l.maxVisible < 1 {
		l.maxVisible = 1
	}
	l.ensureVisible()
}

// Movement

func (l *MovieList) Up()       { l.setCursor(l.cursor - 1) }
func (l *MovieList) Down()     { l.setCursor(l.cursor + 1) }
func (l *MovieList) Home()     { l.setCursor(0) }
func (l *MovieList) End()      { l.setCursor(len(l.records) - 1) }
func (l *MovieList) PageUp()   { l.setCursor(l.cursor - l.maxVisible) }
func (l *MovieList) PageDown() { l.setCursor(l.cursor + l.maxVisible) }

func (l *MovieList) setCursor(idx int) {
	if idx > len(l.records)-1 {
		idx = len(l.records) - 1
	}
	if idx < 0 {
		idx = 0
	}
	l.cursor = idx
	l.ensureVisible()
}

func (l *MovieList) ensureVisible() {
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+l.maxVisible {
		l.offset = l.cursor - l.maxVisible + 1
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

// View renders the list inside a border
func (l MovieList) View() string {
	style := styles.InactiveBorder
	if l.focused {
		style = styles.ActiveBorder
	}
	frameW, frameH := style.GetFrameSize()
	inner := l.width - frameW
	if inner < 10 {
		inner = 10
	}

	var b strings.Builder
	header := fmt.Sprintf("%s (%d)", l.title, len(l.records))
	b.WriteString(styles.AccentStyle.Render(styles.Truncate(header, inner)))
	b.WriteString("\n")

	if l.offset > 0 {
		b.WriteString(styles.DimStyle.Render("↑ more"))
	}
	b.WriteString("\n")

	end := l.offset + l.maxVisible
	if end > len(l.records) {
		end = len(l.records)
	}
	for i := l.offset; i < end; i++ {
		b.WriteString(l.renderRow(l.records[i], i == l.cursor, inner))
		b.WriteString("\n")
	}

	if end < len(l.records) {
		b.WriteString(styles.DimStyle.Render("↓ more"))
	}

	return style.
		Width(inner).
		Height(l.height - frameH).
		Render(b.String())
}

// renderRow renders "★ ◐ Title            2008  8.5"
func (l MovieList) renderRow(r domain.MediaRecord, selected bool, width int) string {
	fav, state := false, domain.WatchNone
	if l.marks != nil {
		fav, state = l.marks(r.ID)
	}

	year := "    "
	if y := r.Year(); y > 0 {
		year = fmt.Sprintf("%4d", y)
	}
	meta := fmt.Sprintf("%s  %4s", year, r.FormattedRating())

	titleWidth := width - 4 - lipgloss.Width(meta) - 2
	title := styles.Pad(r.Title, titleWidth)

	rowStyle := styles.NormalItemStyle
	if selected {
		rowStyle = styles.SelectedItemStyle
	}
	return styles.RenderFavorite(fav) + " " + styles.RenderWatchState(state) + " " +
		rowStyle.Render(title+"  "+meta)
}
