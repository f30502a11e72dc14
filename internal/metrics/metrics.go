package metrics

import (
	"context"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	webpagesDesc = prometheus.NewDesc(
		"searchportal_webpages",
		"Number of indexed webpages",
		nil,
		nil,
	)
	searchQueriesDesc = prometheus.NewDesc(
		"searchportal_search_queries_total",
		"Total number of logged search queries",
		nil,
		nil,
	)
)

// Counts is a point-in-time view of the store sizes.
type Counts struct {
	Webpages      int
	SearchQueries int
}

// StatsSource reports store sizes on each scrape.
type StatsSource interface {
	Counts(ctx context.Context) Counts
}

// StatsFunc adapts a function to a StatsSource.
type StatsFunc func(ctx context.Context) Counts

// Counts calls f.
func (f StatsFunc) Counts(ctx context.Context) Counts {
	return f(ctx)
}

// StoreCollector is a custom Prometheus collector that reads store sizes on
// each scrape.
type StoreCollector struct {
	source StatsSource
}

// NewStoreCollector returns a collector backed by source.
func NewStoreCollector(source StatsSource) *StoreCollector {
	return &StoreCollector{source: source}
}

// Describe sends the metric descriptors to the channel.
func (c *StoreCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- webpagesDesc
	ch <- searchQueriesDesc
}

// Collect reads the current counts and emits them.
func (c *StoreCollector) Collect(ch chan<- prometheus.Metric) {
	counts := c.source.Counts(context.Background())
	ch <- prometheus.MustNewConstMetric(webpagesDesc, prometheus.GaugeValue, float64(counts.Webpages))
	ch <- prometheus.MustNewConstMetric(searchQueriesDesc, prometheus.CounterValue, float64(counts.SearchQueries))
}

// Recorder holds the search histograms.
type Recorder struct {
	duration prometheus.Histogram
	results  prometheus.Histogram
}

// NewRecorder creates unregistered search histograms.
func NewRecorder() *Recorder {
	return &Recorder{
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "searchportal_search_duration_seconds",
			Help:    "Time spent ranking webpages for a search",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		results: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "searchportal_search_results",
			Help:    "Number of matching webpages per search",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
		}),
	}
}

// Register adds the recorder's histograms and a store collector to reg.
func (r *Recorder) Register(reg prometheus.Registerer, source StatsSource) error {
	for _, c := range []prometheus.Collector{r.duration, r.results, NewStoreCollector(source)} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Observe records one search.
func (r *Recorder) Observe(d time.Duration, results int) {
	r.duration.Observe(d.Seconds())
	r.results.Observe(float64(results))
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the collectors with the default registry.
// Must be called once at startup.
func Init(source StatsSource) {
	recorderOnce.Do(func() {
		r := NewRecorder()
		if err := r.Register(prometheus.DefaultRegisterer, source); err != nil {
			panic(err)
		}
		recorder = r
	})
}

// ObserveSearch records a search's duration and result count. It is a no-op
// until Init has been called.
func ObserveSearch(d time.Duration, results int) {
	if recorder == nil {
		return
	}
	recorder.Observe(d, results)
}

// Handler serves the default registry.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
