package tzsearch

import (
	"time"

	jsoniter "github.com/json-iterator/go"
)

// Trace stages, in the order a search emits them.
const (
	TraceStageSeed       = "seed"
	TraceStageConstraint = "constraint"
	TraceStageCluster    = "cluster"
	TraceStageCacheHit   = "cache_hit"
	TraceStageCacheMiss  = "cache_miss"
	TraceStageClassify   = "classify"
)

// TraceStep is one entry of a search's debug trace: which stage ran, what it
// decided, and how many zones remained afterward.
type TraceStep struct {
	SearchID string    `json:"search_id"`
	Stage    string    `json:"stage"`
	Message  string    `json:"message"`
	Zones    int       `json:"zones"`
	At       time.Time `json:"at"`
}

// JSON renders the step as a JSON object for log shipping and trace payloads.
func (s TraceStep) JSON() []byte {
	data, err := jsoniter.ConfigFastest.Marshal(s)
	if err != nil {
		return []byte("{}")
	}

	return data
}

// TraceSink receives the debug trace of a search, one append-only step at a
// time. A sink is wired per Resolver or per search; searches without a sink
// pay no tracing cost beyond a nil check.
//
// Sinks are called synchronously from the search and must not block.
type TraceSink interface {
	Record(step TraceStep)
}

// CollectingTraceSink is a TraceSink that appends every step to a slice.
// It is the reference sink for tests and interactive debugging.
// Not safe for concurrent use, like the Resolver that feeds it.
type CollectingTraceSink struct {
	steps []TraceStep
}

// Record appends the step to the collected trace.
func (s *CollectingTraceSink) Record(step TraceStep) {
	s.steps = append(s.steps, step)
}

// Steps returns all collected steps in recording order.
func (s *CollectingTraceSink) Steps() []TraceStep {
	return s.steps
}

// StepsForStage returns the collected steps of one stage, in recording order.
func (s *CollectingTraceSink) StepsForStage(stage string) []TraceStep {
	matching := make([]TraceStep, 0)

	for _, step := range s.steps {
		if step.Stage == stage {
			matching = append(matching, step)
		}
	}

	return matching
}

// Reset drops all collected steps.
func (s *CollectingTraceSink) Reset() {
	s.steps = nil
}

// Ensure CollectingTraceSink implements TraceSink.
var _ TraceSink = (*CollectingTraceSink)(nil)
