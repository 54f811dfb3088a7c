package pkg

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogLevel int

const (
	LogLevelNone LogLevel = iota
	LogLevelErrOnly
	LogLevelDebug
)

var (
	log_level = LogLevelErrOnly
	log_atom  = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	logger    = newLogger()
)

func newLogger() *zap.SugaredLogger {
	config := zap.NewDevelopmentConfig()
	config.Level = log_atom
	config.DisableStacktrace = true
	l, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return l.Sugar()
}

func SetLogLevel(level LogLevel) {
	log_level = level

	switch level {
	case LogLevelNone:
		logger = zap.NewNop().Sugar()
		return
	case LogLevelErrOnly:
		log_atom.SetLevel(zapcore.ErrorLevel)
	case LogLevelDebug:
		log_atom.SetLevel(zapcore.DebugLevel)
	}

	// the previous level may have swapped in a no-op logger
	logger = newLogger()
	logger.Debugln("log level set to", level)
}

func GetLogLevel() LogLevel { return log_level }

func InfoLog(v ...any) { logger.Infoln(v...) }
func ErrorLog(v ...any) { logger.Errorln(v...) }
func WarnLog(v ...any) { logger.Warnln(v...) }
func DebugLog(v ...any) { logger.Debugln(v...) }
