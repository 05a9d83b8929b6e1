package logger

import "log"

// Level định nghĩa các mức độ log
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	ErrorLevel
)

// Logger interface định nghĩa các phương thức logging
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
	WithTag(tag string) Logger
}

// DefaultLogger implement Logger interface sử dụng log package.
// Tag dùng để phân biệt log của các job nền (quote-sweep, cache...)
type DefaultLogger struct {
	level Level
	tag   string
}

// NewDefaultLogger tạo một instance mới của DefaultLogger
func NewDefaultLogger(level Level) *DefaultLogger {
	return &DefaultLogger{
		level: level,
	}
}

// WithTag trả về logger mới với tag gắn trước mỗi dòng log
func (l *DefaultLogger) WithTag(tag string) Logger {
	return &DefaultLogger{
		level: l.level,
		tag:   tag,
	}
}

func (l *DefaultLogger) prefix(lv string) string {
	if l.tag == "" {
		return "[" + lv + "] "
	}
	return "[" + lv + "][" + l.tag + "] "
}

// Info log thông tin
func (l *DefaultLogger) Info(format string, v ...interface{}) {
	if l.level <= InfoLevel {
		log.Printf(l.prefix("INFO")+format, v...)
	}
}

// Error log lỗi
func (l *DefaultLogger) Error(format string, v ...interface{}) {
	if l.level <= ErrorLevel {
		log.Printf(l.prefix("ERROR")+format, v...)
	}
}

// Debug log debug
func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	if l.level <= DebugLevel {
		log.Printf(l.prefix("DEBUG")+format, v...)
	}
}
