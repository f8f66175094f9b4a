package gateway

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK        = "ok"
	outcomeStatus    = "http_status"
	outcomeParse     = "parse"
	outcomeTransport = "transport"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "userapp",
		Subsystem: "gateway",
		Name:      "requests_total",
		Help:      "Outbound requests to the points API by outcome.",
	}, []string{"method", "path", "outcome"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "userapp",
		Subsystem: "gateway",
		Name:      "request_duration_seconds",
		Help:      "Latency of outbound requests to the points API.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})
)
