// Package opener launches URLs in the platform's default handler. It
// is the terminal side effect behind Open/OpenLink/OpenProfile intent
// messages; failures are logged and swallowed, never surfaced to the
// UI.
package opener

import (
	"log/slog"
	"os/exec"
	"runtime"
)

// Opener shells out to the platform URL handler.
type Opener struct {
	logger *slog.Logger

	// launch starts the handler process; replaced in tests.
	launch func(name string, args ...string) error
}

// New creates an opener. A nil logger falls back to slog.Default.
func New(logger *slog.Logger) *Opener {
	if logger == nil {
		logger = slog.Default()
	}
	return &Opener{
		logger: logger,
		launch: func(name string, args ...string) error {
			return exec.Command(name, args...).Start()
		},
	}
}

// Open launches url detached in the default handler. Errors are
// logged at warn level and swallowed.
func (o *Opener) Open(url string) {
	if url == "" {
		o.logger.Warn("ignoring empty open target")
		return
	}
	name, args := handlerCommand(runtime.GOOS, url)
	if err := o.launch(name, args...); err != nil {
		o.logger.Warn("failed to open url", "url", url, "error", err)
	}
}

func handlerCommand(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}
