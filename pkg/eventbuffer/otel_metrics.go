package eventbuffer

import (
	"context"

	"go.opentelemetry.io/otel/metric"
)

// OTelSink backs MetricSink with an OpenTelemetry meter, the same
// meter.Float64Histogram/Int64Counter wiring
// observability.Provider.initREDMetrics uses for its duration histogram.
// Timers are recorded as millisecond histograms; the slice_size signal is
// recorded as a plain value histogram via Histogram.Update.
type OTelSink struct {
	meter metric.Meter
}

// NewOTelSink wraps an existing OTel meter (as produced by an
// observability.Provider.Meter() in the host application) for use as a
// Buffer's MetricSink.
func NewOTelSink(meter metric.Meter) *OTelSink {
	return &OTelSink{meter: meter}
}

func (s *OTelSink) Timer(name string) Timer {
	hist, err := s.meter.Float64Histogram(name + "_ms")
	if err != nil {
		return noopTimer{}
	}
	return &otelTimer{hist: hist}
}

func (s *OTelSink) Histogram(name string) Histogram {
	hist, err := s.meter.Int64Histogram(name)
	if err != nil {
		return noopHistogram{}
	}
	return &otelHistogram{hist: hist}
}

type otelTimer struct {
	hist metric.Float64Histogram
}

func (t *otelTimer) Time(block func()) {
	d := timeBlock(block)
	t.hist.Record(context.Background(), float64(d.Microseconds())/1000.0)
}

type otelHistogram struct {
	hist metric.Int64Histogram
}

func (h *otelHistogram) Update(value int64) {
	h.hist.Record(context.Background(), value)
}
