package supplements

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	refreshResultUpdated = "updated"
	refreshResultFailed  = "failed"
	refreshResultSkipped = "skipped"
)

var (
	refreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "supplements",
		Name:      "price_refresh_total",
		Help:      "Store info price refreshes by result.",
	}, []string{"result"})
	refreshBatchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "supplements",
		Name:      "price_refresh_batch_seconds",
		Help:      "Duration of a full price refresh batch.",
		Buckets:   prometheus.ExponentialBuckets(0.5, 2, 10),
	})
)
