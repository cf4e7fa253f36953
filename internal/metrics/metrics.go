package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"wordwatch/internal/models"
)

// Store is the persistence the metrics package reads from and records to.
type Store interface {
	GetAllDetections(ctx context.Context) ([]models.Detection, error)
	CountWords(ctx context.Context) (int, error)
	CountExceptions(ctx context.Context) (int, error)
	IncrementDetection(ctx context.Context, keyword, source string) error
}

var (
	detectionsDesc = prometheus.NewDesc(
		"wordwatch_detections_total",
		"Total alerts raised by keyword and source",
		[]string{"keyword", "source"},
		nil,
	)
	listSizeDesc = prometheus.NewDesc(
		"wordwatch_list_size",
		"Number of entries in a word list",
		[]string{"list"},
		nil,
	)
)

var (
	messagesScanned = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wordwatch_messages_scanned_total",
		Help: "Messages from watched channels that were scanned",
	})
	alertsRaised = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "wordwatch_alerts_total",
		Help: "Alerts raised since start, by source",
	}, []string{"source"})
	storeErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wordwatch_store_errors_total",
		Help: "Word list lookups that failed",
	})
	alertFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wordwatch_alert_failures_total",
		Help: "Alerts that could not be delivered",
	})
)

// DetectionCollector is a custom Prometheus collector that reads detection
// counts and list sizes from the database on each scrape.
type DetectionCollector struct {
	store Store
}

// NewDetectionCollector creates a collector reading from store.
func NewDetectionCollector(store Store) *DetectionCollector {
	return &DetectionCollector{store: store}
}

// Describe sends the metric descriptors to the channel.
func (c *DetectionCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- detectionsDesc
	ch <- listSizeDesc
}

// Collect queries the database and emits detections as counters and list
// sizes as gauges.
func (c *DetectionCollector) Collect(ch chan<- prometheus.Metric) {
	ctx := context.Background()

	detections, err := c.store.GetAllDetections(ctx)
	if err != nil {
		slog.Error("failed to collect detection metrics", "error", err)
	}
	for _, d := range detections {
		ch <- prometheus.MustNewConstMetric(
			detectionsDesc,
			prometheus.CounterValue,
			float64(d.Count),
			d.Keyword,
			d.Source,
		)
	}

	if n, err := c.store.CountWords(ctx); err != nil {
		slog.Error("failed to count words", "error", err)
	} else {
		ch <- prometheus.MustNewConstMetric(listSizeDesc, prometheus.GaugeValue, float64(n), models.ListWords)
	}
	if n, err := c.store.CountExceptions(ctx); err != nil {
		slog.Error("failed to count exceptions", "error", err)
	} else {
		ch <- prometheus.MustNewConstMetric(listSizeDesc, prometheus.GaugeValue, float64(n), models.ListExceptions)
	}
}

// Recorder provides async detection recording.
type Recorder struct {
	store Store
	wg    sync.WaitGroup
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the collectors and initializes the recorder.
// Must be called once at startup.
func Init(store Store) {
	recorderOnce.Do(func() {
		recorder = &Recorder{store: store}
		prometheus.MustRegister(
			NewDetectionCollector(store),
			messagesScanned,
			alertsRaised,
			storeErrors,
			alertFailures,
		)
	})
}

// MessageScanned counts a scanned message.
func MessageScanned() {
	messagesScanned.Inc()
}

// AlertRaised counts an alert by source.
func AlertRaised(source string) {
	alertsRaised.WithLabelValues(source).Inc()
}

// StoreError counts a failed word list lookup.
func StoreError() {
	storeErrors.Inc()
}

// AlertFailed counts an alert that could not be delivered.
func AlertFailed() {
	alertFailures.Inc()
}

// RecordDetection asynchronously persists a detection.
func RecordDetection(keyword, source string) {
	if recorder == nil {
		return
	}
	recorder.wg.Add(1)
	go func() {
		defer recorder.wg.Done()
		if err := recorder.store.IncrementDetection(context.Background(), keyword, source); err != nil {
			slog.Error("failed to record detection", "keyword", keyword, "source", source, "error", err)
		}
	}()
}

// Flush waits for pending detection writes.
func Flush() {
	if recorder == nil {
		return
	}
	recorder.wg.Wait()
}
