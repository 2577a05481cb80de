package main

import (
	"io"
	"log/slog"

	"github.com/fwojciec/pagetext"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log file rotation limits.
const (
	logMaxSizeMB  = 10
	logMaxBackups = 3
	logMaxAgeDays = 28
)

// newLogger builds the text logger for the given level. Logs go to
// stderr unless file is set, in which case they go to a rotating file.
// The returned func releases the file.
func newLogger(level, file string, stderr io.Writer) (*slog.Logger, func() error, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, nil, pagetext.Errorf(pagetext.EINVALID, "invalid log level %q", level)
	}

	var w io.Writer = stderr
	closeFn := func() error { return nil }
	if file != "" {
		lj := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    logMaxSizeMB,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAgeDays,
		}
		w = lj
		closeFn = lj.Close
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
	return logger, closeFn, nil
}
