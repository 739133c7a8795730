package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var dispatchCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "rocketapi_dispatch",
	Help: "RocketAPI dispatched calls, by outcome",
}, []string{"namespace", "outcome"})

var dispatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "rocketapi_dispatch_duration",
	Help:    "Time to complete a RocketAPI call, including classification",
	Buckets: prometheus.ExponentialBucketsRange(0.01, 120, 20),
}, []string{"namespace", "outcome"})
