package testdoubles

import (
	"maps"
	"sync"
	"time"

	"github.com/aiswo/librarydesk/tablestore"
)

// MetricsCollectorSpy is a MetricsCollector implementation that captures metrics calls for testing.
type MetricsCollectorSpy struct {
	durationRecords []SpyDurationRecord
	counterRecords  []SpyCounterRecord
	valueRecords    []SpyValueRecord
	mu              sync.Mutex
}

// SpyDurationRecord represents a recorded duration metric call.
type SpyDurationRecord struct {
	Metric   string
	Duration time.Duration
	Labels   map[string]string
}

// SpyCounterRecord represents a recorded counter increment call.
type SpyCounterRecord struct {
	Metric string
	Labels map[string]string
}

// SpyValueRecord represents a recorded value metric call.
type SpyValueRecord struct {
	Metric string
	Value  float64
	Labels map[string]string
}

// NewMetricsCollectorSpy creates a new MetricsCollectorSpy.
func NewMetricsCollectorSpy() *MetricsCollectorSpy {
	return &MetricsCollectorSpy{}
}

// RecordDuration implements the MetricsCollector interface.
func (s *MetricsCollectorSpy) RecordDuration(metric string, duration time.Duration, labels map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.durationRecords = append(s.durationRecords, SpyDurationRecord{
		Metric:   metric,
		Duration: duration,
		Labels:   maps.Clone(labels),
	})
}

// IncrementCounter implements the MetricsCollector interface.
func (s *MetricsCollectorSpy) IncrementCounter(metric string, labels map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counterRecords = append(s.counterRecords, SpyCounterRecord{
		Metric: metric,
		Labels: maps.Clone(labels),
	})
}

// RecordValue implements the MetricsCollector interface.
func (s *MetricsCollectorSpy) RecordValue(metric string, value float64, labels map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.valueRecords = append(s.valueRecords, SpyValueRecord{
		Metric: metric,
		Value:  value,
		Labels: maps.Clone(labels),
	})
}

// DurationRecords returns a copy of the captured duration records.
func (s *MetricsCollectorSpy) DurationRecords() []SpyDurationRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpyDurationRecord(nil), s.durationRecords...)
}

// CounterRecords returns a copy of the captured counter records.
func (s *MetricsCollectorSpy) CounterRecords() []SpyCounterRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpyCounterRecord(nil), s.counterRecords...)
}

// ValueRecords returns a copy of the captured value records.
func (s *MetricsCollectorSpy) ValueRecords() []SpyValueRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpyValueRecord(nil), s.valueRecords...)
}

// HasDurationRecord checks if a duration was recorded for metric with the given status label.
func (s *MetricsCollectorSpy) HasDurationRecord(metric, status string) bool {
	for _, record := range s.DurationRecords() {
		if record.Metric == metric && record.Labels["status"] == status {
			return true
		}
	}

	return false
}

// HasCounterRecord checks if metric was incremented with the given status label.
func (s *MetricsCollectorSpy) HasCounterRecord(metric, status string) bool {
	for _, record := range s.CounterRecords() {
		if record.Metric == metric && record.Labels["status"] == status {
			return true
		}
	}

	return false
}

var _ tablestore.MetricsCollector = (*MetricsCollectorSpy)(nil)
