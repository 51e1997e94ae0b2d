package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level định nghĩa các mức độ log
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// ParseLevel đọc level từ chuỗi (LOG_LEVEL), mặc định InfoLevel
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// Logger interface định nghĩa các phương thức logging
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// DefaultLogger implement Logger interface sử dụng log package
type DefaultLogger struct {
	level  Level
	prefix string
	out    *log.Logger
}

// NewDefaultLogger tạo một instance mới của DefaultLogger ghi ra stderr
func NewDefaultLogger(level Level) *DefaultLogger {
	return NewLogger(os.Stderr, level)
}

// NewLogger tạo DefaultLogger ghi ra w
func NewLogger(w io.Writer, level Level) *DefaultLogger {
	return &DefaultLogger{
		level: level,
		out:   log.New(w, "", log.LstdFlags),
	}
}

// Named trả về logger con có thêm tiền tố thành phần, vd "[booking]"
func (l *DefaultLogger) Named(name string) *DefaultLogger {
	return &DefaultLogger{
		level:  l.level,
		prefix: l.prefix + "[" + name + "] ",
		out:    l.out,
	}
}

func (l *DefaultLogger) logf(level Level, tag, format string, v ...interface{}) {
	if l.level <= level {
		l.out.Output(3, tag+l.prefix+fmt.Sprintf(format, v...))
	}
}

// Debug log debug
func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	l.logf(DebugLevel, "[DEBUG] ", format, v...)
}

// Info log thông tin
func (l *DefaultLogger) Info(format string, v ...interface{}) {
	l.logf(InfoLevel, "[INFO] ", format, v...)
}

// Warn log cảnh báo
func (l *DefaultLogger) Warn(format string, v ...interface{}) {
	l.logf(WarnLevel, "[WARN] ", format, v...)
}

// Error log lỗi
func (l *DefaultLogger) Error(format string, v ...interface{}) {
	l.logf(ErrorLevel, "[ERROR] ", format, v...)
}

// Printf cho phép dùng DefaultLogger làm writer của GORM logger
func (l *DefaultLogger) Printf(format string, v ...interface{}) {
	l.logf(InfoLevel, "[GORM] ", format, v...)
}

// Nop bỏ qua mọi log, dùng trong test
type Nop struct{}

func (Nop) Debug(string, ...interface{}) {}
func (Nop) Info(string, ...interface{})  {}
func (Nop) Warn(string, ...interface{})  {}
func (Nop) Error(string, ...interface{}) {}
