package adapter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerURL(t *testing.T) {
	assert.Equal(t, "https://player.videasy.net/movie/155?color=ffffff", PlayerURL("", 155))
	assert.Equal(t, "http://p/155/155", PlayerURL("http://p/{id}/{id}", 155))
	assert.Equal(t, "http://p/-1", PlayerURL("http://p/{id}", -1))
}

type startCall struct {
	name string
	args []string
}

func fakeLauncher(command, goos string, fail error) (*Launcher, *[]startCall) {
	var calls []startCall
	l := NewLauncher(command, NullLogger())
	l.goos = goos
	l.start = func(name string, args ...string) error {
		calls = append(calls, startCall{name, args})
		return fail
	}
	return l, &calls
}

func TestLauncher_SystemOpener(t *testing.T) {
	tests := []struct {
		goos string
		want startCall
	}{
		{"linux", startCall{"xdg-open", []string{"http://x"}}},
		{"darwin", startCall{"open", []string{"http://x"}}},
		{"windows", startCall{"rundll32", []string{"url.dll,FileProtocolHandler", "http://x"}}},
		{"freebsd", startCall{"xdg-open", []string{"http://x"}}},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			l, calls := fakeLauncher("", tt.goos, nil)
			require.NoError(t, l.Launch("http://x"))
			assert.Equal(t, []startCall{tt.want}, *calls)
		})
	}
}

func TestLauncher_ConfiguredCommand(t *testing.T) {
	l, calls := fakeLauncher("firefox --new-window", "linux", nil)
	require.NoError(t, l.Launch("http://a"))
	require.NoError(t, l.Launch("http://b"))

	assert.Equal(t, []startCall{
		{"firefox", []string{"--new-window", "http://a"}},
		{"firefox", []string{"--new-window", "http://b"}},
	}, *calls)
}

func TestLauncher_StartFailure(t *testing.T) {
	boom := errors.New("not found")
	l, _ := fakeLauncher("", "linux", boom)
	err := l.Launch("http://x")
	assert.ErrorIs(t, err, boom)
}
