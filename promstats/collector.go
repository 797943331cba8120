/*
Package promstats exports region tree counters as Prometheus metrics.

	tree := regiontree.NewLocked(t)
	prometheus.MustRegister(promstats.NewCollector("heatmap", tree))

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package promstats

import (
	"github.com/npillmayer/regiontree"
	"github.com/prometheus/client_golang/prometheus"
)

// StatsSource is anything reporting tree counters. Sources used from a
// collector have to be safe for concurrent use, such as regiontree.Locked.
type StatsSource interface {
	Stats() regiontree.Stats
}

// Collector is a prometheus.Collector reading the counters of a tree on
// every scrape.
type Collector struct {
	src StatsSource

	nodesCreated *prometheus.Desc
	nodesFreed   *prometheus.Desc
	nodesLive    *prometheus.Desc
	updates      *prometheus.Desc
	queries      *prometheus.Desc
}

// NewCollector creates a collector for src. All metrics carry a constant
// label "tree" with the given name.
func NewCollector(name string, src StatsSource) *Collector {
	labels := prometheus.Labels{"tree": name}
	return &Collector{
		src: src,
		nodesCreated: prometheus.NewDesc(
			"regiontree_nodes_created_total",
			"Total number of tree nodes materialized",
			nil, labels,
		),
		nodesFreed: prometheus.NewDesc(
			"regiontree_nodes_freed_total",
			"Total number of tree nodes released",
			nil, labels,
		),
		nodesLive: prometheus.NewDesc(
			"regiontree_nodes_live",
			"Number of currently materialized tree nodes",
			nil, labels,
		),
		updates: prometheus.NewDesc(
			"regiontree_updates_total",
			"Total number of rectangle updates",
			nil, labels,
		),
		queries: prometheus.NewDesc(
			"regiontree_queries_total",
			"Total number of rectangle queries",
			nil, labels,
		),
	}
}

// Describe is part of interface prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.nodesCreated
	ch <- c.nodesFreed
	ch <- c.nodesLive
	ch <- c.updates
	ch <- c.queries
}

// Collect is part of interface prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.src.Stats()

	ch <- prometheus.MustNewConstMetric(
		c.nodesCreated,
		prometheus.CounterValue,
		float64(s.NodesCreated),
	)
	ch <- prometheus.MustNewConstMetric(
		c.nodesFreed,
		prometheus.CounterValue,
		float64(s.NodesFreed),
	)
	ch <- prometheus.MustNewConstMetric(
		c.nodesLive,
		prometheus.GaugeValue,
		float64(s.Live()),
	)
	ch <- prometheus.MustNewConstMetric(
		c.updates,
		prometheus.CounterValue,
		float64(s.Updates),
	)
	ch <- prometheus.MustNewConstMetric(
		c.queries,
		prometheus.CounterValue,
		float64(s.Queries),
	)
}

var _ prometheus.Collector = (*Collector)(nil)
