package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/cinedex/internal/domain"
	"github.com/mmcdole/cinedex/internal/tui/styles"
)

// Detail shows the metadata of the selected record
type Detail struct {
	record    *domain.MediaRecord
	favorite  bool
	state     domain.WatchState
	playerURL string
	missingID int // id that was asked for but is not in the catalog
	width     int
	height    int
}

// NewDetail creates an empty detail panel
func NewDetail() Detail {
	return Detail{}
}

// SetRecord sets the record to display, nil for none
func (d *Detail) SetRecord(r *domain.MediaRecord, favorite bool, state domain.WatchState, playerURL string) {
	d.record = r
	d.favorite = favorite
	d.state = state
	d.playerURL = playerURL
	d.missingID = 0
}

// SetNotFound shows the not-found state for id until the next SetRecord
func (d *Detail) SetNotFound(id int) {
	d.record = nil
	d.missingID = id
}

// NotFound returns the id shown in the not-found state, or 0
func (d Detail) NotFound() int {
	return d.missingID
}

func (d *Detail) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// View renders the panel
func (d Detail) View() string {
	style := styles.InactiveBorder
	frameW, frameH := style.GetFrameSize()
	width := d.width - frameW - 1
	if width < 10 {
		width = 10
	}

	var content string
	if d.missingID != 0 {
		content = styles.ErrorStyle.Render("Movie not found") + "\n\n" +
			styles.DimStyle.Render(fmt.Sprintf("No movie with id %d in the catalog.", d.missingID))
	} else if d.record == nil {
		content = styles.DimStyle.Render("No movie selected")
	} else {
		content = d.render(*d.record, width)
	}

	lines := strings.Split(content, "\n")
	if limit := d.height - frameH; limit > 0 && len(lines) > limit {
		lines = lines[:limit]
	}

	return style.
		Width(d.width - frameW).
		Height(d.height - frameH).
		Render(strings.Join(lines, "\n"))
}

func (d Detail) render(r domain.MediaRecord, width int) string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(styles.Truncate(r.Title, width)))
	b.WriteString("\n")
	if r.Tagline != "" {
		b.WriteString(styles.SubtitleStyle.Render(styles.Truncate(r.Tagline, width)))
		b.WriteString("\n")
	}

	// Year · Runtime · Quality
	var meta []string
	if y := r.Year(); y > 0 {
		meta = append(meta, fmt.Sprintf("%d", y))
	}
	if rt := r.FormattedRuntime(); rt != "" {
		meta = append(meta, rt)
	}
	if r.Quality != "" {
		meta = append(meta, r.Quality)
	}
	b.WriteString(styles.DimStyle.Render(strings.Join(meta, " · ")))
	b.WriteString("\n")

	// Rating and personal state grouped left
	var status []string
	if r.Rating > 0 {
		ratingStyle := styles.ErrorStyle
		switch {
		case r.Rating >= 7:
			ratingStyle = styles.SuccessStyle
		case r.Rating >= 5:
			ratingStyle = styles.AccentStyle
		}
		status = append(status, ratingStyle.Render("★ "+r.FormattedRating()))
	}
	if d.favorite {
		status = append(status, styles.FavoriteStyle.Render(styles.FavoriteChar+" Favorite"))
	}
	switch d.state {
	case domain.WatchWatching:
		status = append(status, styles.AccentStyle.Render(styles.WatchingChar+" Watching"))
	case domain.WatchCompleted:
		status = append(status, styles.SuccessStyle.Render(styles.CompletedChar+" Completed"))
	}
	if len(status) > 0 {
		b.WriteString(strings.Join(status, "   "))
		b.WriteString("\n")
	}

	if names := r.GenreNames(); len(names) > 0 {
		badges := make([]string, len(names))
		for i, n := range names {
			badges[i] = styles.DimBadgeStyle.Render(n)
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(width).Render(strings.Join(badges, " ")))
		b.WriteString("\n")
	}

	if r.Overview != "" {
		b.WriteString("\n")
		bodyWidth := width
		if bodyWidth > 80 {
			bodyWidth = 80
		}
		b.WriteString(styles.SubtitleStyle.Render(strings.Join(styles.Wrap(r.Overview, bodyWidth), "\n")))
		b.WriteString("\n")
	}

	if d.playerURL != "" {
		b.WriteString("\n")
		b.WriteString(styles.DimStyle.Render(strings.Repeat("─", width)))
		b.WriteString("\n")
		b.WriteString(styles.DimStyle.Render(styles.Truncate(d.playerURL, width)))
	}

	return strings.TrimRight(b.String(), "\n")
}
