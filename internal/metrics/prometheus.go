//go:build !noprom

package metrics

import (
	"fmt"
	"net/http"

	prom "github.com/prometheus/client_golang/prometheus"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"
)

type promRecorder struct {
	opTotal      *prom.CounterVec
	opSeconds    *prom.HistogramVec
	toolTotal    *prom.CounterVec
	toolSeconds  *prom.HistogramVec
	rowsRejected *prom.CounterVec
	rowsAccepted *prom.CounterVec
}

func (p *promRecorder) IncOpTotal(op string, success bool) {
	p.opTotal.WithLabelValues(op, fmt.Sprintf("%t", success)).Inc()
}

func (p *promRecorder) ObserveOpSeconds(op string, success bool, seconds float64) {
	p.opSeconds.WithLabelValues(op, fmt.Sprintf("%t", success)).Observe(seconds)
}

func (p *promRecorder) IncToolTotal(tool string, success bool) {
	p.toolTotal.WithLabelValues(tool, fmt.Sprintf("%t", success)).Inc()
}

func (p *promRecorder) ObserveToolSeconds(tool string, success bool, seconds float64) {
	p.toolSeconds.WithLabelValues(tool, fmt.Sprintf("%t", success)).Observe(seconds)
}

func (p *promRecorder) IncRowsRejected(reason string) {
	p.rowsRejected.WithLabelValues(reason).Inc()
}

func (p *promRecorder) IncRowsAccepted(kind string) {
	p.rowsAccepted.WithLabelValues(kind).Inc()
}

func newPromRecorder(registry *prom.Registry) *promRecorder {
	p := &promRecorder{
		opTotal: prom.NewCounterVec(prom.CounterOpts{
			Name: "socialgraph_ops_total",
			Help: "Total number of load and query operations",
		}, []string{"op", "success"}),
		opSeconds: prom.NewHistogramVec(prom.HistogramOpts{
			Name:    "socialgraph_op_seconds",
			Help:    "Load and query operation duration in seconds",
			Buckets: prom.DefBuckets,
		}, []string{"op", "success"}),
		toolTotal: prom.NewCounterVec(prom.CounterOpts{
			Name: "tool_calls_total",
			Help: "Total number of tool handler calls",
		}, []string{"tool", "success"}),
		toolSeconds: prom.NewHistogramVec(prom.HistogramOpts{
			Name:    "tool_call_seconds",
			Help:    "Tool handler duration in seconds",
			Buckets: prom.DefBuckets,
		}, []string{"tool", "success"}),
		rowsRejected: prom.NewCounterVec(prom.CounterOpts{
			Name: "socialgraph_rows_rejected_total",
			Help: "Input rows dropped during ingestion, by reason",
		}, []string{"reason"}),
		rowsAccepted: prom.NewCounterVec(prom.CounterOpts{
			Name: "socialgraph_rows_accepted_total",
			Help: "Input rows applied to the graph during ingestion, by block kind",
		}, []string{"kind"}),
	}
	registry.MustRegister(p.opTotal, p.opSeconds, p.toolTotal, p.toolSeconds, p.rowsRejected, p.rowsAccepted)
	return p
}

func enablePrometheus(addr string) error {
	registry := prom.NewRegistry()
	SetRecorder(newPromRecorder(registry))

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	go func() { _ = http.ListenAndServe(addr, mux) }()
	return nil
}
