package term

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// SessionLogger returns the logger used while the screen is active. The
// terminal owns stderr for the whole session, so lines go to the file at path
// or are discarded when path is empty. The returned closer releases the file.
func SessionLogger(path string, level log.Level) (*log.Logger, io.Closer, error) {
	if path == "" {
		l := log.New(io.Discard)
		l.SetLevel(level)
		return l, io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	l := log.NewWithOptions(f, log.Options{ReportTimestamp: true, Prefix: "ca-term", Level: level})
	return l, f, nil
}
