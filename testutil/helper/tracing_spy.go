package helper

import (
	"context"
	"sync"

	"github.com/tzsearch/timezone-search-go/tzsearch"
)

// SpySpanRecord represents a recorded span lifecycle.
type SpySpanRecord struct {
	Name        string
	StartAttrs  map[string]string
	Status      string
	FinishAttrs map[string]string
	Finished    bool
}

// spySpanContext tracks status and attribute updates for a single span.
type spySpanContext struct {
	spy   *TracingSpy
	index int
}

func (s *spySpanContext) SetStatus(status string) {
	s.spy.mu.Lock()
	defer s.spy.mu.Unlock()

	s.spy.spans[s.index].Status = status
}

func (s *spySpanContext) AddAttribute(key, value string) {
	s.spy.mu.Lock()
	defer s.spy.mu.Unlock()

	if s.spy.spans[s.index].FinishAttrs == nil {
		s.spy.spans[s.index].FinishAttrs = make(map[string]string)
	}
	s.spy.spans[s.index].FinishAttrs[key] = value
}

// TracingSpy is a tzsearch.TracingCollector implementation that captures
// span starts and finishes for testing.
type TracingSpy struct {
	spans []SpySpanRecord
	mu    sync.Mutex
}

// NewTracingSpy creates a new TracingSpy instance.
func NewTracingSpy() *TracingSpy {
	return &TracingSpy{}
}

// StartSpan implements the TracingCollector interface for testing.
func (s *TracingSpy) StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, tzsearch.SpanContext) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.spans = append(s.spans, SpySpanRecord{Name: name, StartAttrs: attrs})

	return ctx, &spySpanContext{spy: s, index: len(s.spans) - 1}
}

// FinishSpan implements the TracingCollector interface for testing.
func (s *TracingSpy) FinishSpan(spanCtx tzsearch.SpanContext, status string, attrs map[string]string) {
	spanCtx.SetStatus(status)

	sc, ok := spanCtx.(*spySpanContext)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := &s.spans[sc.index]
	rec.Finished = true
	if rec.FinishAttrs == nil {
		rec.FinishAttrs = make(map[string]string)
	}
	for k, v := range attrs {
		rec.FinishAttrs[k] = v
	}
}

// Spans returns a copy of all recorded spans.
func (s *TracingSpy) Spans() []SpySpanRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	spans := make([]SpySpanRecord, len(s.spans))
	copy(spans, s.spans)

	return spans
}

// SpansForName returns a copy of the recorded spans with one name.
func (s *TracingSpy) SpansForName(name string) []SpySpanRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	matching := make([]SpySpanRecord, 0)
	for _, sp := range s.spans {
		if sp.Name == name {
			matching = append(matching, sp)
		}
	}

	return matching
}

// Reset clears all recorded spans.
func (s *TracingSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.spans = s.spans[:0]
}

// Ensure TracingSpy implements tzsearch.TracingCollector.
var _ tzsearch.TracingCollector = (*TracingSpy)(nil)
