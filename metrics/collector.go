// Package metrics exports archive statistics to prometheus.
package metrics

import (
	"github.com/deroproject/archived"
	"github.com/prometheus/client_golang/prometheus"
)

// StatsSource is anything which can report archive statistics safely while being
// collected from another goroutine, eg. *archived.Locked.
type StatsSource interface {
	Stats() archived.Stats
}

type Collector struct {
	source StatsSource

	commits   *prometheus.Desc
	epoch     *prometheus.Desc
	increment *prometheus.Desc
	resets    *prometheus.Desc
	collapses *prometheus.Desc
	hops      *prometheus.Desc
}

// NewCollector returns a collector for source, every metric carries an archive=name label.
func NewCollector(name string, source StatsSource) *Collector {
	labels := prometheus.Labels{"archive": name}
	return &Collector{
		source: source,

		commits: prometheus.NewDesc(
			"archived_commits",
			"Number of commits held in the archive, including ones made unreachable by compression",
			nil, labels,
		),
		epoch: prometheus.NewDesc(
			"archived_epoch",
			"Number of times the archive history was started, construction included",
			nil, labels,
		),
		increment: prometheus.NewDesc(
			"archived_increments_total",
			"Total number of increments applied",
			nil, labels,
		),
		resets: prometheus.NewDesc(
			"archived_resets_total",
			"Total number of resets and history clears",
			nil, labels,
		),
		collapses: prometheus.NewDesc(
			"archived_collapses_total",
			"Total number of path compressions which rewired at least one commit",
			nil, labels,
		),
		hops: prometheus.NewDesc(
			"archived_collapse_hops_total",
			"Total number of commits skipped over by path compression",
			nil, labels,
		),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.commits
	ch <- c.epoch
	ch <- c.increment
	ch <- c.resets
	ch <- c.collapses
	ch <- c.hops
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.source.Stats()

	ch <- prometheus.MustNewConstMetric(c.commits, prometheus.GaugeValue, float64(stats.Commits))
	ch <- prometheus.MustNewConstMetric(c.epoch, prometheus.GaugeValue, float64(stats.Epoch))
	ch <- prometheus.MustNewConstMetric(c.increment, prometheus.CounterValue, float64(stats.Increments))
	ch <- prometheus.MustNewConstMetric(c.resets, prometheus.CounterValue, float64(stats.Resets))
	ch <- prometheus.MustNewConstMetric(c.collapses, prometheus.CounterValue, float64(stats.Collapses))
	ch <- prometheus.MustNewConstMetric(c.hops, prometheus.CounterValue, float64(stats.Hops))
}
