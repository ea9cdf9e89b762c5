package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/mmcdole/cinedex/internal/domain"
)

// Palette is one color theme
type Palette struct {
	Accent    lipgloss.Color
	Surface   lipgloss.Color
	Raised    lipgloss.Color
	Dim       lipgloss.Color
	Muted     lipgloss.Color
	Text      lipgloss.Color
	Good      lipgloss.Color
	Bad       lipgloss.Color
	Favorite  lipgloss.Color
	Highlight lipgloss.Color
}

var (
	DarkPalette = Palette{
		Accent:    lipgloss.Color("#8B5CF6"),
		Surface:   lipgloss.Color("#111827"),
		Raised:    lipgloss.Color("#374151"),
		Dim:       lipgloss.Color("#6B7280"),
		Muted:     lipgloss.Color("#9CA3AF"),
		Text:      lipgloss.Color("#F9FAFB"),
		Good:      lipgloss.Color("#10B981"),
		Bad:       lipgloss.Color("#EF4444"),
		Favorite:  lipgloss.Color("#F59E0B"),
		Highlight: lipgloss.Color("#A78BFA"),
	}

	LightPalette = Palette{
		Accent:    lipgloss.Color("#6D28D9"),
		Surface:   lipgloss.Color("#F9FAFB"),
		Raised:    lipgloss.Color("#E5E7EB"),
		Dim:       lipgloss.Color("#6B7280"),
		Muted:     lipgloss.Color("#4B5563"),
		Text:      lipgloss.Color("#111827"),
		Good:      lipgloss.Color("#047857"),
		Bad:       lipgloss.Color("#B91C1C"),
		Favorite:  lipgloss.Color("#B45309"),
		Highlight: lipgloss.Color("#7C3AED"),
	}
)

// Current palette, set by Apply
var Colors = DarkPalette

// Text styles
var (
	TitleStyle     lipgloss.Style
	SubtitleStyle  lipgloss.Style
	DimStyle       lipgloss.Style
	AccentStyle    lipgloss.Style
	ErrorStyle     lipgloss.Style
	SuccessStyle   lipgloss.Style
	FavoriteStyle  lipgloss.Style
	HighlightStyle lipgloss.Style
)

// Panel and list styles
var (
	ActiveBorder      lipgloss.Style
	InactiveBorder    lipgloss.Style
	SelectedItemStyle lipgloss.Style
	NormalItemStyle   lipgloss.Style
	ModalStyle        lipgloss.Style
	ModalTitleStyle   lipgloss.Style
	BannerStyle       lipgloss.Style
	BadgeStyle        lipgloss.Style
	DimBadgeStyle     lipgloss.Style
	PromptStyle       lipgloss.Style
	HelpKeyStyle      lipgloss.Style
	HelpDescStyle     lipgloss.Style
	MatchStyle        lipgloss.Style
)

func init() {
	Apply(true)
}

// Apply rebuilds every style from the dark or light palette
func Apply(dark bool) {
	if dark {
		Colors = DarkPalette
	} else {
		Colors = LightPalette
	}
	c := Colors

	TitleStyle = lipgloss.NewStyle().Foreground(c.Text).Bold(true)
	SubtitleStyle = lipgloss.NewStyle().Foreground(c.Muted)
	DimStyle = lipgloss.NewStyle().Foreground(c.Dim)
	AccentStyle = lipgloss.NewStyle().Foreground(c.Accent)
	ErrorStyle = lipgloss.NewStyle().Foreground(c.Bad)
	SuccessStyle = lipgloss.NewStyle().Foreground(c.Good)
	FavoriteStyle = lipgloss.NewStyle().Foreground(c.Favorite)
	HighlightStyle = lipgloss.NewStyle().
		Foreground(c.Surface).
		Background(c.Accent).
		Padding(0, 1)

	ActiveBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c.Accent)
	InactiveBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c.Dim)

	SelectedItemStyle = lipgloss.NewStyle().
		Foreground(c.Text).
		Background(c.Raised)
	NormalItemStyle = lipgloss.NewStyle().
		Foreground(c.Muted)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c.Accent).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Foreground(c.Text).
		Bold(true).
		MarginBottom(1)
	BannerStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(c.Accent).
		Foreground(c.Text).
		Padding(0, 1)

	BadgeStyle = lipgloss.NewStyle().
		Foreground(c.Surface).
		Background(c.Accent).
		Padding(0, 1)
	DimBadgeStyle = lipgloss.NewStyle().
		Foreground(c.Muted).
		Background(c.Raised).
		Padding(0, 1)

	PromptStyle = lipgloss.NewStyle().Foreground(c.Accent).Bold(true)
	HelpKeyStyle = lipgloss.NewStyle().Foreground(c.Accent)
	HelpDescStyle = lipgloss.NewStyle().Foreground(c.Dim)
	MatchStyle = lipgloss.NewStyle().Foreground(c.Highlight).Bold(true)
}

// Raw markers (unstyled)
const (
	FavoriteChar  = "★"
	WatchingChar  = "◐"
	CompletedChar = "✓"
)

// RenderWatchState renders the watch-state marker, blank for none
func RenderWatchState(state domain.WatchState) string {
	switch state {
	case domain.WatchWatching:
		return AccentStyle.Render(WatchingChar)
	case domain.WatchCompleted:
		return SuccessStyle.Render(CompletedChar)
	default:
		return " "
	}
}

// RenderFavorite renders the favorite marker, blank when not a favorite
func RenderFavorite(fav bool) string {
	if !fav {
		return " "
	}
	return FavoriteStyle.Render(FavoriteChar)
}

// Truncate shortens s to width display cells with an ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// Pad pads or cuts s to exactly width display cells
func Pad(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, width, ""), width)
}

// Wrap word-wraps s to width columns
func Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(s) {
		if line.Len() > 0 && runewidth.StringWidth(line.String())+1+runewidth.StringWidth(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
