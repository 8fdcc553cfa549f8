package coha_filter

import "fmt"

const (
	DebugLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

var (
	LogLevel int        = InfoLevel // control defaultLogger log level
	Logger   CohaLogger = &DefaultLogger{}
)

type (
	CohaLogger interface {
		Debugf(format string, v ...interface{})
		Infof(format string, v ...interface{})
		Warnf(format string, v ...interface{})
		Errorf(format string, v ...interface{})
	}

	// DefaultLogger a console logger use fmt lib
	DefaultLogger struct {
	}
)

// ParseLogLevel accept debug|info|warn|error, anything else is info
func ParseLogLevel(s string) int {
	switch s {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

func LogErr(format string, v ...interface{}) {
	Logger.Errorf(format, v...)
}

func LogWarn(format string, v ...interface{}) {
	Logger.Warnf(format, v...)
}

func LogInfo(format string, v ...interface{}) {
	Logger.Infof(format, v...)
}

func LogDebug(format string, v ...interface{}) {
	Logger.Debugf(format, v...)
}

func (l *DefaultLogger) Debugf(format string, v ...interface{}) {
	l.print(DebugLevel, "DEBUG", format, v...)
}

func (l *DefaultLogger) Infof(format string, v ...interface{}) {
	l.print(InfoLevel, "INFO", format, v...)
}

func (l *DefaultLogger) Warnf(format string, v ...interface{}) {
	l.print(WarnLevel, "WARN", format, v...)
}

func (l *DefaultLogger) Errorf(format string, v ...interface{}) {
	l.print(ErrorLevel, "ERROR", format, v...)
}

func (l *DefaultLogger) print(level int, tag string, format string, v ...interface{}) {
	if LogLevel > level {
		return
	}
	fmt.Printf("[%s] "+format+"\n", append([]interface{}{tag}, v...)...)
}
