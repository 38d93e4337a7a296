package logging

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// DecorateLogger names the logger of an fx module, e.g. "http"
// results in log entries from "parrot.http".
func DecorateLogger(name string) fx.Option {
	return fx.Decorate(func(log *zap.Logger) *zap.Logger {
		return log.Named(name)
	})
}
