package logger

import (
	"strings"

	"github.com/btcsuite/btclog"
)

// Subsystem returns a btclog.Logger for btcsuite packages such as rpcclient.
// Its lines are re-emitted through the global zap logger at their own level,
// tagged with the subsystem.
func Subsystem(tag, level string) btclog.Logger {
	l := btclog.NewBackend(subsystemWriter{tag: tag}).Logger(tag)

	lvl, ok := btclog.LevelFromString(level)
	if !ok {
		lvl = btclog.LevelInfo
	}
	l.SetLevel(lvl)

	return l
}

// subsystemWriter parses btclog lines of the form
// "2006-01-02 15:04:05.000 [INF] TAG: message".
type subsystemWriter struct {
	tag string
}

func (w subsystemWriter) Write(p []byte) (int, error) {
	line := strings.TrimSpace(string(p))

	level, msg := "INF", line
	if _, rest, ok := strings.Cut(line, " ["); ok {
		if lvl, body, ok := strings.Cut(rest, "] "); ok {
			level = lvl
			msg = strings.TrimPrefix(body, w.tag+": ")
		}
	}

	switch level {
	case "TRC", "DBG":
		logger.Debugw(msg, "subsystem", w.tag)
	case "WRN":
		logger.Warnw(msg, "subsystem", w.tag)
	case "ERR", "CRT":
		logger.Errorw(msg, "subsystem", w.tag)
	default:
		logger.Infow(msg, "subsystem", w.tag)
	}

	return len(p), nil
}
