package helper

import (
	"context"
	"sync"

	"github.com/tzsearch/timezone-search-go/tzsearch"
)

// SpyLogRecord represents a recorded log call.
type SpyLogRecord struct {
	Level   string
	Message string
	Args    []any
}

// LoggerSpy is a tzsearch.Logger implementation that captures logging calls for testing.
type LoggerSpy struct {
	records []SpyLogRecord
	mu      sync.Mutex
}

// NewLoggerSpy creates a new LoggerSpy instance.
func NewLoggerSpy() *LoggerSpy {
	return &LoggerSpy{}
}

func (s *LoggerSpy) record(level, msg string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, SpyLogRecord{Level: level, Message: msg, Args: args})
}

// Debug implements the Logger interface for testing.
func (s *LoggerSpy) Debug(msg string, args ...any) { s.record("debug", msg, args...) }

// Info implements the Logger interface for testing.
func (s *LoggerSpy) Info(msg string, args ...any) { s.record("info", msg, args...) }

// Warn implements the Logger interface for testing.
func (s *LoggerSpy) Warn(msg string, args ...any) { s.record("warn", msg, args...) }

// Error implements the Logger interface for testing.
func (s *LoggerSpy) Error(msg string, args ...any) { s.record("error", msg, args...) }

// Records returns a copy of all recorded log calls.
func (s *LoggerSpy) Records() []SpyLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpyLogRecord(nil), s.records...)
}

// RecordsForLevel returns a copy of the recorded log calls of one level.
func (s *LoggerSpy) RecordsForLevel(level string) []SpyLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	matching := make([]SpyLogRecord, 0)
	for _, r := range s.records {
		if r.Level == level {
			matching = append(matching, r)
		}
	}

	return matching
}

// Reset clears all recorded log calls.
func (s *LoggerSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = s.records[:0]
}

// Ensure LoggerSpy implements tzsearch.Logger.
var _ tzsearch.Logger = (*LoggerSpy)(nil)

// ContextualLoggerSpy is a tzsearch.ContextualLogger implementation that
// captures context-aware logging calls for testing.
type ContextualLoggerSpy struct {
	records []SpyLogRecord
	mu      sync.Mutex
}

// NewContextualLoggerSpy creates a new ContextualLoggerSpy instance.
func NewContextualLoggerSpy() *ContextualLoggerSpy {
	return &ContextualLoggerSpy{}
}

func (s *ContextualLoggerSpy) record(level, msg string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, SpyLogRecord{Level: level, Message: msg, Args: args})
}

// DebugContext implements the ContextualLogger interface for testing.
func (s *ContextualLoggerSpy) DebugContext(_ context.Context, msg string, args ...any) {
	s.record("debug", msg, args...)
}

// InfoContext implements the ContextualLogger interface for testing.
func (s *ContextualLoggerSpy) InfoContext(_ context.Context, msg string, args ...any) {
	s.record("info", msg, args...)
}

// WarnContext implements the ContextualLogger interface for testing.
func (s *ContextualLoggerSpy) WarnContext(_ context.Context, msg string, args ...any) {
	s.record("warn", msg, args...)
}

// ErrorContext implements the ContextualLogger interface for testing.
func (s *ContextualLoggerSpy) ErrorContext(_ context.Context, msg string, args ...any) {
	s.record("error", msg, args...)
}

// Records returns a copy of all recorded log calls.
func (s *ContextualLoggerSpy) Records() []SpyLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpyLogRecord(nil), s.records...)
}

// Ensure ContextualLoggerSpy implements tzsearch.ContextualLogger.
var _ tzsearch.ContextualLogger = (*ContextualLoggerSpy)(nil)
