package booking_submitted

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var EventsPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "booking_events_published_total",
		Help: "Total number of booking events sent to Kafka",
	},
	[]string{"topic", "result"},
)
