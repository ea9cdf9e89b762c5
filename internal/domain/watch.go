package domain

import "fmt"

// WatchState is a title's position in the none -> watching -> completed cycle
type WatchState int

const (
	WatchNone WatchState = iota
	WatchWatching
	WatchCompleted
)

// Advance returns the next state in the cycle
func (s WatchState) Advance() WatchState {
	switch s {
	case WatchNone:
		return WatchWatching
	case WatchWatching:
		return WatchCompleted
	default:
		return WatchNone
	}
}

func (s WatchState) String() string {
	switch s {
	case WatchWatching:
		return "watching"
	case WatchCompleted:
		return "completed"
	default:
		return "none"
	}
}

// MarshalText encodes the state as its name
func (s WatchState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a state name
func (s *WatchState) UnmarshalText(text []byte) error {
	switch string(text) {
	case "none", "":
		*s = WatchNone
	case "watching":
		*s = WatchWatching
	case "completed":
		*s = WatchCompleted
	default:
		return fmt.Errorf("unknown watch state %q", text)
	}
	return nil
}
