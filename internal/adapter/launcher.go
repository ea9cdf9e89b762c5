package adapter

import (
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"strings"
)

// PlayerURL substitutes id into the player URL template. The id is passed
// through unvalidated.
func PlayerURL(template string, id int) string {
	if template == "" {
		template = DefaultPlayerURL
	}
	return strings.ReplaceAll(template, "{id}", fmt.Sprint(id))
}

// opener is a command that hands a URL to the desktop
type opener struct {
	path string
	args []string // placed before the URL
}

// openers registry - platform default URL handlers
var openers = map[string]opener{
	"darwin":  {path: "open"},
	"windows": {path: "rundll32", args: []string{"url.dll,FileProtocolHandler"}},
	"linux":   {path: "xdg-open"},
}

// Launcher opens player URLs in a browser or configured command
type Launcher struct {
	command string // configured command, empty for the system opener
	args    []string
	goos    string
	start   func(name string, args ...string) error
	logger  *slog.Logger
}

// NewLauncher creates a Launcher. command may include arguments,
// e.g. "firefox --new-window".
func NewLauncher(command string, logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.Default()
	}
	fields := strings.Fields(command)
	l := &Launcher{
		goos:   runtime.GOOS,
		start:  startDetached,
		logger: logger,
	}
	if len(fields) > 0 {
		l.command = fields[0]
		l.args = fields[1:]
	}
	return l
}

// Launch opens url without waiting for the process to exit
func (l *Launcher) Launch(url string) error {
	name, args := l.resolve(url)
	l.logger.Info("launching player", "command", name, "url", url)
	if err := l.start(name, args...); err != nil {
		return fmt.Errorf("failed to launch %s: %w", name, err)
	}
	return nil
}

// resolve picks the command and argument list for url
func (l *Launcher) resolve(url string) (string, []string) {
	if l.command != "" {
		return l.command, append(append([]string{}, l.args...), url)
	}
	op, ok := openers[l.goos]
	if !ok {
		op = openers["linux"] // other Unix-likes
	}
	return op.path, append(append([]string{}, op.args...), url)
}

func startDetached(name string, args ...string) error {
	if _, err := exec.LookPath(name); err != nil {
		return err
	}
	return exec.Command(name, args...).Start()
}
