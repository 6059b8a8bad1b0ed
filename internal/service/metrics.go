package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var contentDecodeFailures = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "recettes",
	Name:      "content_decode_failures_total",
	Help:      "Stored recipe contents that could not be decoded and were served as null.",
})
