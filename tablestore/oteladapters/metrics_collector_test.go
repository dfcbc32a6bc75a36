package oteladapters_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/aiswo/librarydesk/tablestore"
	"github.com/aiswo/librarydesk/tablestore/oteladapters"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	byName := map[string]metricdata.Metrics{}
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			byName[m.Name] = m
		}
	}

	return byName
}

func newCollector() (*oteladapters.MetricsCollector, *sdkmetric.ManualReader) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	return oteladapters.NewMetricsCollector(provider.Meter("librarydesk")), reader
}

func Test_MetricsCollector_RecordDuration_UsesSecondsHistogram(t *testing.T) {
	// arrange
	collector, reader := newCollector()
	labels := map[string]string{tablestore.LogAttrTable: "library_data", tablestore.LogAttrStatus: tablestore.StatusSuccess}

	// act
	collector.RecordDuration(tablestore.MetricLoadDuration, 250*time.Millisecond, labels)
	collector.RecordDurationContext(context.Background(), tablestore.MetricLoadDuration, 750*time.Millisecond, labels)

	// assert
	metrics := collect(t, reader)
	require.Contains(t, metrics, tablestore.MetricLoadDuration)
	assert.Equal(t, "s", metrics[tablestore.MetricLoadDuration].Unit)

	histogram, ok := metrics[tablestore.MetricLoadDuration].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, histogram.DataPoints, 1)
	assert.Equal(t, uint64(2), histogram.DataPoints[0].Count)
	assert.InDelta(t, 1.0, histogram.DataPoints[0].Sum, 0.0001)

	table, found := histogram.DataPoints[0].Attributes.Value(tablestore.LogAttrTable)
	require.True(t, found)
	assert.Equal(t, "library_data", table.AsString())
}

func Test_MetricsCollector_IncrementCounter_SeparatesLabelSets(t *testing.T) {
	// arrange
	collector, reader := newCollector()

	// act
	collector.IncrementCounter(tablestore.MetricErrors, map[string]string{tablestore.LogAttrEngine: "file"})
	collector.IncrementCounter(tablestore.MetricErrors, map[string]string{tablestore.LogAttrEngine: "file"})
	collector.IncrementCounterContext(context.Background(), tablestore.MetricErrors, map[string]string{tablestore.LogAttrEngine: "s3"})

	// assert
	sum, ok := collect(t, reader)[tablestore.MetricErrors].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	assert.True(t, sum.IsMonotonic)

	totals := map[string]int64{}
	for _, dp := range sum.DataPoints {
		engine, _ := dp.Attributes.Value(tablestore.LogAttrEngine)
		totals[engine.AsString()] = dp.Value
	}

	assert.Equal(t, map[string]int64{"file": 2, "s3": 1}, totals)
}

func Test_MetricsCollector_RecordValue_KeepsLastValue(t *testing.T) {
	// arrange
	collector, reader := newCollector()

	// act
	collector.RecordValue(tablestore.MetricRows, 3, nil)
	collector.RecordValueContext(context.Background(), tablestore.MetricRows, 4, nil)

	// assert
	gauge, ok := collect(t, reader)[tablestore.MetricRows].Data.(metricdata.Gauge[float64])
	require.True(t, ok)
	require.Len(t, gauge.DataPoints, 1)
	assert.InDelta(t, 4.0, gauge.DataPoints[0].Value, 0.0001)
}
