// Package threadmetrics exposes the humthreads registry as Prometheus
// metrics.
//
// The collector reads a fresh registry snapshot at every scrape, so no
// background work or explicit refresh is needed. Register it with any
// prometheus.Registerer:
//
//	prometheus.MustRegister(threadmetrics.NewCollector())
package threadmetrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/stefano-pogliani/humthreads"
)

var (
	registeredDesc = prometheus.NewDesc(
		"humthreads_registered_threads",
		"Number of currently registered managed threads.",
		nil, nil,
	)
	infoDesc = prometheus.NewDesc(
		"humthreads_thread_info",
		"One series per registered managed thread with its introspection names and current activity; value is always 1.",
		[]string{"name", "short_name", "activity"}, nil,
	)
)

// Collector implements prometheus.Collector over the process-wide managed
// thread registry.
type Collector struct{}

// NewCollector returns a registry-backed collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- registeredDesc
	ch <- infoDesc
}

// Collect implements prometheus.Collector. Each scrape takes one
// point-in-time registry snapshot.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	threads := humthreads.RegisteredThreads()
	ch <- prometheus.MustNewConstMetric(
		registeredDesc, prometheus.GaugeValue, float64(len(threads)),
	)
	for _, thread := range threads {
		ch <- prometheus.MustNewConstMetric(
			infoDesc, prometheus.GaugeValue, 1,
			thread.Name, thread.ShortName, thread.Activity,
		)
	}
}
