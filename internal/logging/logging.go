// Package logging builds the diagnostic logger. It is separate from the
// session output log, which only ever shows command results.
package logging

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// New returns a logger at the given level writing to file, or to w when file
// is empty. The returned closer releases the file, if any.
func New(level, file string, w io.Writer) (*log.Logger, io.Closer, error) {
	l := log.New()
	l.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	var closer io.Closer = nopCloser{}
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		l.SetOutput(f)
		closer = f
	} else if w != nil {
		l.SetOutput(w)
	}
	if lvl, err := log.ParseLevel(level); err == nil {
		l.SetLevel(lvl)
	} else {
		l.SetLevel(log.InfoLevel)
		l.Warnf("invalid log level %s, defaulting to info", level)
	}
	return l, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
