// Package logging builds the logrus logger shared by a dtm run.
//
// Every entry carries a run_id so interleaved output from concurrent
// bisections, and from separate invocations appended to the same log file,
// can be told apart.
package logging

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/xid"
	"github.com/sirupsen/logrus"

	"github.com/mouse-blink/dtm/internal/config"
)

// RunIDField is the field carrying the per-invocation id.
const RunIDField = "run_id"

// Logger is the root entry of a run along with the file it may write to.
type Logger struct {
	*logrus.Entry

	RunID string
	file  *os.File
}

// New builds a logger from cfg. Output goes to stderr unless cfg.File is set.
func New(cfg config.LoggingConfig) (*Logger, error) {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter builds a logger writing to w unless cfg.File is set.
func NewWithWriter(cfg config.LoggingConfig, w io.Writer) (*Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, errors.Wrapf(err, "logging level %q", cfg.Level)
	}

	base := logrus.New()
	base.SetLevel(level)
	base.SetOutput(w)

	if cfg.Format == "json" {
		base.SetFormatter(&logrus.JSONFormatter{})
	} else {
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	var file *os.File

	if cfg.File != "" {
		// #nosec G304 - log destination chosen by the user
		file, err = os.OpenFile(cfg.File, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return nil, errors.Wrapf(err, "open log file %s", cfg.File)
		}

		base.SetOutput(file)
	}

	runID := xid.New().String()

	return &Logger{Entry: base.WithField(RunIDField, runID), RunID: runID, file: file}, nil
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}

	return l.file.Close()
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	base := logrus.New()
	base.SetOutput(io.Discard)

	return &Logger{Entry: logrus.NewEntry(base)}
}
