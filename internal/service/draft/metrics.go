package draft

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	triggerAutosave = "autosave"
	triggerStep     = "step"
	triggerManual   = "manual"

	resultOK    = "ok"
	resultError = "error"
	resultStale = "stale"
)

var (
	DraftSavesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "draft_saves_total",
			Help: "Total number of draft writes by trigger and result",
		},
		[]string{"trigger", "result"},
	)

	DraftSaveDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "draft_save_duration_seconds",
			Help:    "Duration of draft store writes",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"trigger"},
	)

	DraftCorruptedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "draft_corrupted_total",
			Help: "Total number of stored drafts discarded as corrupted",
		},
	)
)
