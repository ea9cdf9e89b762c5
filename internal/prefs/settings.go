package prefs

import (
	"log/slog"

	"github.com/mmcdole/cinedex/internal/domain"
	"github.com/mmcdole/cinedex/internal/store"
)

type themeRecord struct {
	IsDark bool `json:"isDark"`
}

// Settings holds the theme flag and the onboarding flag.
type Settings struct {
	kv          domain.KeyValueStore
	defaultDark bool
	logger      *slog.Logger
}

// NewSettings creates a settings store. defaultDark applies until the
// user picks a theme.
func NewSettings(kv domain.KeyValueStore, defaultDark bool, logger *slog.Logger) *Settings {
	if logger == nil {
		logger = slog.Default()
	}
	return &Settings{kv: kv, defaultDark: defaultDark, logger: logger}
}

func (s *Settings) IsDark() bool {
	var rec themeRecord
	if !store.GetJSON(s.kv, domain.KeyTheme, &rec) {
		return s.defaultDark
	}
	return rec.IsDark
}

func (s *Settings) SetDark(dark bool) error {
	if err := store.SetJSON(s.kv, domain.KeyTheme, themeRecord{IsDark: dark}); err != nil {
		s.logger.Error("failed to save theme", "error", err)
		return err
	}
	return nil
}

// ToggleTheme flips the theme and returns the new value.
func (s *Settings) ToggleTheme() (bool, error) {
	dark := !s.IsDark()
	return dark, s.SetDark(dark)
}

// HasSeenGuide reports whether the onboarding guide was dismissed.
func (s *Settings) HasSeenGuide() bool {
	var seen bool
	return store.GetJSON(s.kv, domain.KeyOnboarding, &seen) && seen
}

func (s *Settings) MarkGuideSeen() error {
	return store.SetJSON(s.kv, domain.KeyOnboarding, true)
}

// ResetGuide shows the guide again on next launch.
func (s *Settings) ResetGuide() error {
	return s.kv.Delete(domain.KeyOnboarding)
}
