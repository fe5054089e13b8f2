package parfor

import "github.com/ygrebnov/parfor/metrics"

// Instrument names recorded through WithMetrics.
const (
	MetricWorkersLaunched   = "parfor_workers_launched_total"
	MetricWorkersCompleted  = "parfor_workers_completed_total"
	MetricWorkersCancelled  = "parfor_workers_cancelled_total"
	MetricWorkersFailed     = "parfor_workers_failed_total"
	MetricWorkersInflight   = "parfor_workers_inflight"
	MetricElementsProcessed = "parfor_elements_processed_total"
	MetricChunkDuration     = "parfor_chunk_duration_seconds"
)

type instruments struct {
	launched  metrics.Counter
	completed metrics.Counter
	cancelled metrics.Counter
	failed    metrics.Counter
	inflight  metrics.UpDownCounter
	elements  metrics.Counter
	duration  metrics.Histogram
}

func newInstruments(p metrics.Provider) instruments {
	return instruments{
		launched:  p.Counter(MetricWorkersLaunched, metrics.WithUnit("1")),
		completed: p.Counter(MetricWorkersCompleted, metrics.WithUnit("1")),
		cancelled: p.Counter(MetricWorkersCancelled, metrics.WithUnit("1")),
		failed:    p.Counter(MetricWorkersFailed, metrics.WithUnit("1")),
		inflight:  p.UpDownCounter(MetricWorkersInflight, metrics.WithUnit("1")),
		elements:  p.Counter(MetricElementsProcessed, metrics.WithUnit("1")),
		duration: p.Histogram(
			MetricChunkDuration,
			metrics.WithUnit("s"),
			metrics.WithDescription("time a worker spent on its chunk"),
		),
	}
}
