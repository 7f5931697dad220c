package logger

import "go.uber.org/zap"

// Log defaults to a nop logger so packages stay usable before Init (tests).
var Log = zap.NewNop()

func Init() {
	Log = zap.Must(zap.NewProduction())
}

func Sugar() *zap.SugaredLogger {
	return Log.Sugar()
}
