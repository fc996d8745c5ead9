package logger

import "go.uber.org/zap"

var (
	Logger = zap.NewNop()
	Sugar  = Logger.Sugar()
	Cli, _ = zap.NewDevelopment(zap.IncreaseLevel(zap.InfoLevel))
)

func SetLogger(l *zap.Logger) {
	Logger = l
	Sugar = l.Sugar()
}

func SetCliLogger(l *zap.Logger) {
	Cli = l
}

// Verbose lowers the cli logger to debug level, so resolution misses and
// per-file generation steps become visible.
func Verbose() {
	if l, err := zap.NewDevelopment(zap.IncreaseLevel(zap.DebugLevel)); err == nil {
		Cli = l
	}
}
