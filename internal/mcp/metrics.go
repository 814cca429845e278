package mcp

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for tool-call metrics.
const (
	OutcomeOK        = "ok"
	OutcomeToolError = "tool_error"
	OutcomeFailure   = "failure"
)

// Metrics tracks tool-call counts and latency.
type Metrics struct {
	ToolCalls    *prometheus.CounterVec
	ToolDuration *prometheus.HistogramVec
}

// NewMetrics creates the tool-call metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ToolCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "munival_tool_calls_total",
			Help: "Total number of MCP tool calls by tool and outcome",
		}, []string{"tool", "outcome"}),
		ToolDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "munival_tool_call_duration_seconds",
			Help:    "Duration of MCP tool calls, including a first catalog load",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"tool"}),
	}
}

// ObserveCall records one tool call. Call with time.Now() at the start of
// the call. A nil receiver records nothing.
func (m *Metrics) ObserveCall(tool, outcome string, start time.Time) {
	if m == nil {
		return
	}

	m.ToolCalls.WithLabelValues(tool, outcome).Inc()
	m.ToolDuration.WithLabelValues(tool).Observe(time.Since(start).Seconds())
}
