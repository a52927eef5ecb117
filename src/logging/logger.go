package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// LogLevel represents severity.
type LogLevel int32

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[string]LogLevel{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

var currentLevel int32 = int32(LevelInfo)

var baseLogger = log.New(os.Stderr, "", log.Ldate|log.Ltime|log.Lmicroseconds)

// SetLogLevel parses and sets the global log level. Unknown names are ignored
// and reported as false.
func SetLogLevel(s string) bool {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return false
	}
	atomic.StoreInt32(&currentLevel, int32(l))
	return true
}

// SetOutput redirects log output.
func SetOutput(w io.Writer) { baseLogger.SetOutput(w) }

func getLevel() LogLevel { return LogLevel(atomic.LoadInt32(&currentLevel)) }

// GetLogLevel returns the current global log level.
func GetLogLevel() LogLevel { return getLevel() }

func logf(l LogLevel, component, format string, args ...interface{}) {
	if getLevel() > l {
		return
	}
	prefix := "INFO"
	switch l {
	case LevelDebug:
		prefix = "DEBUG"
	case LevelWarn:
		prefix = "WARN"
	case LevelError:
		prefix = "ERROR"
	}
	msg := format
	// Plain messages are printed as-is so literal % characters (e.g. "alpha 20%") survive.
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	if component != "" {
		baseLogger.Printf("[%s] [%s] %s", prefix, component, msg)
		return
	}
	baseLogger.Printf("[%s] %s", prefix, msg)
}

// Package-level helpers log without a component tag.
func Debugf(format string, a ...interface{}) { logf(LevelDebug, "", format, a...) }
func Infof(format string, a ...interface{})  { logf(LevelInfo, "", format, a...) }
func Warnf(format string, a ...interface{})  { logf(LevelWarn, "", format, a...) }
func Errorf(format string, a ...interface{}) { logf(LevelError, "", format, a...) }

// Logger tags every line with the component that wrote it, e.g. "[INFO] [mfp] ...".
// All loggers share the global level and output.
type Logger struct {
	component string
}

// For returns the logger of one component.
func For(component string) Logger { return Logger{component: component} }

func (lg Logger) Debugf(format string, a ...interface{}) { logf(LevelDebug, lg.component, format, a...) }
func (lg Logger) Infof(format string, a ...interface{})  { logf(LevelInfo, lg.component, format, a...) }
func (lg Logger) Warnf(format string, a ...interface{})  { logf(LevelWarn, lg.component, format, a...) }
func (lg Logger) Errorf(format string, a ...interface{}) { logf(LevelError, lg.component, format, a...) }

// TimeTrack logs how long a phase took, at debug level. Use it deferred:
//
//	defer logger.TimeTrack(time.Now(), "render")
func (lg Logger) TimeTrack(start time.Time, label string) {
	lg.Debugf("%s took %s", label, time.Since(start))
}
