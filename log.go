package treeview

import "log/slog"

var logger = slog.New(slog.DiscardHandler)

// SetLogger routes the package's debug records to l. Passing nil discards
// them again.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger = l
}
