/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package logger provides the leveled logger used by the expression compiler and
// the executor facade. Hosts may plug in their own implementation of Logger.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// Level defines log levels
type Level int32

const (
	// DEBUG displays compilation details
	DEBUG Level = iota
	INFO
	WARN
	ERROR
	// OFF disables logging
	OFF
)

// String returns string representation of log level
func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case OFF:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel resolves a level name case-insensitively. "WARNING" is accepted for WARN.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	case "OFF", "NONE":
		return OFF, nil
	}
	return INFO, fmt.Errorf("unknown log level %q", s)
}

// Logger interface defines basic methods for logging
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
	// SetLevel sets the log level
	SetLevel(level Level)
}

type defaultLogger struct {
	level  *atomic.Int32
	prefix string
	logger *log.Logger
}

// NewLogger creates a new logger writing to output.
//
// Example:
//
//	log := NewLogger(INFO, os.Stdout)
//	log.Info("compiled %d expressions", n)
func NewLogger(level Level, output io.Writer) Logger {
	l := &defaultLogger{
		level:  new(atomic.Int32),
		logger: log.New(output, "", 0),
	}
	l.level.Store(int32(level))
	return l
}

// WithPrefix returns a logger that tags every line with [component]. The result
// shares level and output with l when l was built by NewLogger; other
// implementations are wrapped.
func WithPrefix(l Logger, component string) Logger {
	switch v := l.(type) {
	case *defaultLogger:
		return &defaultLogger{level: v.level, prefix: v.prefix + "[" + component + "] ", logger: v.logger}
	case *discardLogger:
		return v
	}
	return &prefixLogger{next: l, prefix: "[" + component + "] "}
}

func (l *defaultLogger) Debug(format string, args ...interface{}) {
	l.log(DEBUG, format, args...)
}

func (l *defaultLogger) Info(format string, args ...interface{}) {
	l.log(INFO, format, args...)
}

func (l *defaultLogger) Warn(format string, args ...interface{}) {
	l.log(WARN, format, args...)
}

func (l *defaultLogger) Error(format string, args ...interface{}) {
	l.log(ERROR, format, args...)
}

func (l *defaultLogger) SetLevel(level Level) {
	l.level.Store(int32(level))
}

func (l *defaultLogger) log(level Level, format string, args ...interface{}) {
	current := Level(l.level.Load())
	if current == OFF || level < current {
		return
	}
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	message := fmt.Sprintf(format, args...)
	l.logger.Printf("[%s] [%s] %s%s", timestamp, level.String(), l.prefix, message)
}

type prefixLogger struct {
	next   Logger
	prefix string
}

func (p *prefixLogger) Debug(format string, args ...interface{}) {
	p.next.Debug(p.prefix+format, args...)
}
func (p *prefixLogger) Info(format string, args ...interface{}) {
	p.next.Info(p.prefix+format, args...)
}
func (p *prefixLogger) Warn(format string, args ...interface{}) {
	p.next.Warn(p.prefix+format, args...)
}
func (p *prefixLogger) Error(format string, args ...interface{}) {
	p.next.Error(p.prefix+format, args...)
}
func (p *prefixLogger) SetLevel(level Level) { p.next.SetLevel(level) }

// discardLogger is a logger that discards all log output
type discardLogger struct{}

// NewDiscardLogger creates a logger that discards all logs
func NewDiscardLogger() Logger {
	return &discardLogger{}
}

func (d *discardLogger) Debug(format string, args ...interface{}) {}
func (d *discardLogger) Info(format string, args ...interface{})  {}
func (d *discardLogger) Warn(format string, args ...interface{})  {}
func (d *discardLogger) Error(format string, args ...interface{}) {}
func (d *discardLogger) SetLevel(level Level)                     {}

var defaultInstance atomic.Value

func init() {
	defaultInstance.Store(loggerHolder{NewLogger(INFO, os.Stderr)})
}

type loggerHolder struct{ Logger }

// SetDefault sets the process-wide default logger. A nil logger is ignored.
func SetDefault(logger Logger) {
	if logger == nil {
		return
	}
	defaultInstance.Store(loggerHolder{logger})
}

// GetDefault gets the process-wide default logger
func GetDefault() Logger {
	return defaultInstance.Load().(loggerHolder).Logger
}

// Debug uses the default logger to record debug information
func Debug(format string, args ...interface{}) {
	GetDefault().Debug(format, args...)
}

// Info uses the default logger to record information
func Info(format string, args ...interface{}) {
	GetDefault().Info(format, args...)
}

// Warn uses the default logger to record warnings
func Warn(format string, args ...interface{}) {
	GetDefault().Warn(format, args...)
}

// Error uses the default logger to record errors
func Error(format string, args ...interface{}) {
	GetDefault().Error(format, args...)
}
