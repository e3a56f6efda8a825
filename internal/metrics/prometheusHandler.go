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

var uploadsInitiated = promauto.NewCounter(prometheus.CounterOpts{
	Name: "uploads_initiated_total",
	Help: "Number of presigned upload grants issued",
})

var ingestionsFinalized = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ingestions_finalized_total",
	Help: "Number of ingestion finalizations labelled by outcome",
}, []string{"outcome"})

var questionsAsked = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "questions_asked_total",
	Help: "Number of chat questions labelled by outcome",
}, []string{"outcome"})

var dependencyLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "dependency_latency_seconds",
	Help:    "Latency of external service calls.",
	Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10, 30},
}, []string{"service"})

type HttpStatusRecorder struct {
	http.ResponseWriter
	Status int
}

func (r *HttpStatusRecorder) WriteHeader(code int) {
	r.Status = code
	r.ResponseWriter.WriteHeader(code)
}

func IncrementUploadsInitiated() {
	uploadsInitiated.Inc()
}

func CountIngestion(outcome string) {
	ingestionsFinalized.WithLabelValues(outcome).Inc()
}

func CountQuestion(outcome string) {
	questionsAsked.WithLabelValues(outcome).Inc()
}

// CaptureExecutionMetrics records how long a downstream call took,
// labelled "s3", "dynamodb" or "qa-backend".
func CaptureExecutionMetrics(label string, timeElapsed time.Duration) {
	dependencyLatency.WithLabelValues(label).Observe(timeElapsed.Seconds())
}
