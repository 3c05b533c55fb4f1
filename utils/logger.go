package utils

import (
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// NewLogger returns a logfmt logger writing to w and filtered at lvl
// (debug, info, warn or error).
func NewLogger(w io.Writer, lvl string) (log.Logger, error) {
	allowed, err := level.Parse(lvl)
	if err != nil {
		return nil, errors.Wrapf(err, "[NewLogger] invalid log level: %q", lvl)
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, level.Allow(allowed))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	return logger, nil
}
