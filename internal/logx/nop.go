package logx

import "log/slog"

var nop Logger = NewSlogAdapter(slog.New(slog.DiscardHandler))

// Nop returns a Logger that drops every entry. Components fall back to it
// when constructed with a nil logger.
func Nop() Logger {
	return nop
}
