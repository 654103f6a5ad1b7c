package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "http_requests_total",
	Help: "Total number of requests labelled by path and status",
}, []string{"path", "status"})

var documentsIngested = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "documents_ingested_total",
	Help: "Uploaded documents by outcome",
}, []string{"outcome"})

var chunksUpserted = promauto.NewCounter(prometheus.CounterOpts{
	Name: "chunks_upserted_total",
	Help: "Chunks pushed into the vector store",
})

var activeSessions = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "active_chat_sessions",
	Help: "Chat sessions currently held in memory",
})

var answerCacheHits = promauto.NewCounter(prometheus.CounterOpts{
	Name: "answer_cache_hits_total",
	Help: "Questions answered from the semantic answer cache",
})

type HttpStatusRecorder struct {
	http.ResponseWriter
	Status int
}

func (r *HttpStatusRecorder) WriteHeader(code int) {
	r.Status = code
	r.ResponseWriter.WriteHeader(code)
}

func CountIngestedDocument(failed bool) {
	if failed {
		documentsIngested.WithLabelValues("failed").Inc()
		return
	}
	documentsIngested.WithLabelValues("ok").Inc()
}

func AddUpsertedChunks(n int) {
	chunksUpserted.Add(float64(n))
}

func IncrementActiveSessions() {
	activeSessions.Inc()
}

func DecrementActiveSessions() {
	activeSessions.Dec()
}

func CountAnswerCacheHit() {
	answerCacheHits.Inc()
}

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "process_request_duration_seconds",
	Help:    "Total time spent handling one user interaction.",
	Buckets: []float64{.1, .5, 1, 2, 5, 10, 30},
}, []string{"status"})

var dependencyLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "dependency_latency_seconds",
	Help:    "Latency of external service calls.",
	Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10},
}, []string{"service"})

func CaptureExecutionMetrics(label string, timeElapsed time.Duration) {
	dependencyLatency.WithLabelValues(label).Observe(timeElapsed.Seconds())
}

func CaptureRequestMetrics(label string, timeElapsed time.Duration) {
	requestDuration.WithLabelValues(label).Observe(timeElapsed.Seconds())
}
