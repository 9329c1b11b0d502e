package cmd

import (
	"os"

	"golang.org/x/term"

	"github.com/shelldrill/shelldrill/core/config"
	"github.com/shelldrill/shelldrill/core/progress"
)

// openProgress returns a session logger appending to the workspace progress
// log, along with a close function. Commands that work without a workspace
// get a no-op logger.
func openProgress(cfg *config.Configuration) (*progress.SessionLogger, func() error) {
	if cfg == nil {
		return progress.NopLogger().NewSession(), func() error { return nil }
	}

	fd, err := cfg.OpenProgressLog()
	if err != nil {
		return progress.NopLogger().NewSession(), func() error { return nil }
	}

	return progress.NewJSONLinesRecorder(fd).NewSession(), fd.Close
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// stdoutSize reports the terminal dimensions of stdout, with sane fallbacks
// for pipes.
func stdoutSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80, 24
	}
	return width, height
}
