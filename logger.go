package rangetree

import (
	"io"
	"log/slog"
	"time"
)

// NewTextLogger returns a logger writing human-readable records to w.
func NewTextLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger returns a logger writing JSON records to w.
func NewJSONLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger returns a logger that discards everything.
func NoopLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func logBuild(l *slog.Logger, cfg Config, st Stats, elapsed time.Duration) {
	l.Debug("range tree built",
		"dims", st.Dims,
		"points", st.Points,
		"leaf_size", cfg.LeafSize,
		"workers", cfg.Workers,
		"structures", st.Structures,
		"nodes", st.Nodes,
		"cascade_entries", st.CascadeEntries,
		"height", st.Height,
		"elapsed", elapsed,
	)
}
