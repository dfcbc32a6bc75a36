package testdoubles

import (
	"context"
	"maps"
	"sync"

	"github.com/aiswo/librarydesk/tablestore"
)

// SpySpanContext implements tablestore.SpanContext for testing.
type SpySpanContext struct {
	Name       string
	status     string
	attributes map[string]string
	mu         sync.Mutex
}

// SetStatus implements the SpanContext interface.
func (c *SpySpanContext) SetStatus(status string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = status
}

// AddAttribute implements the SpanContext interface.
func (c *SpySpanContext) AddAttribute(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.attributes == nil {
		c.attributes = make(map[string]string)
	}
	c.attributes[key] = value
}

// GetStatus returns the current status of the span.
func (c *SpySpanContext) GetStatus() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.status
}

// GetAttributes returns a copy of all attributes.
func (c *SpySpanContext) GetAttributes() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return maps.Clone(c.attributes)
}

// TracingCollectorSpy is a TracingCollector implementation that captures spans for testing.
type TracingCollectorSpy struct {
	started  []*SpySpanContext
	finished []*SpySpanContext
	mu       sync.Mutex
}

// NewTracingCollectorSpy creates a new TracingCollectorSpy.
func NewTracingCollectorSpy() *TracingCollectorSpy {
	return &TracingCollectorSpy{}
}

// StartSpan implements the TracingCollector interface.
func (s *TracingCollectorSpy) StartSpan(
	ctx context.Context,
	name string,
	attrs map[string]string,
) (context.Context, tablestore.SpanContext) {
	span := &SpySpanContext{Name: name, attributes: maps.Clone(attrs)}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = append(s.started, span)

	return ctx, span
}

// FinishSpan implements the TracingCollector interface.
func (s *TracingCollectorSpy) FinishSpan(spanCtx tablestore.SpanContext, status string, attrs map[string]string) {
	spySpan, ok := spanCtx.(*SpySpanContext)
	if !ok {
		return
	}

	spySpan.SetStatus(status)
	for key, value := range attrs {
		spySpan.AddAttribute(key, value)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.finished = append(s.finished, spySpan)
}

// FinishedSpans returns the spans that were finished, in order.
func (s *TracingCollectorSpy) FinishedSpans() []*SpySpanContext {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*SpySpanContext(nil), s.finished...)
}

// StartedSpanCount returns how many spans were started.
func (s *TracingCollectorSpy) StartedSpanCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.started)
}

var _ tablestore.TracingCollector = (*TracingCollectorSpy)(nil)
