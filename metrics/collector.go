// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package metrics exports the counters of an itebdd Manager as Prometheus
// metrics.
package metrics

import (
	"github.com/dalzilio/itebdd"
	"github.com/prometheus/client_golang/prometheus"
)

const subsystem = "bdd"

// Source is the part of a Manager read by the collector. Counters must be
// safe to call while the Manager is in use.
type Source interface {
	Counters() itebdd.Counters
}

type metric struct {
	desc  *prometheus.Desc
	kind  prometheus.ValueType
	value func(c itebdd.Counters) uint64
}

// Collector implements prometheus.Collector. Each scrape takes a fresh
// snapshot of the counters.
type Collector struct {
	src     Source
	metrics []metric
}

// NewCollector returns a collector for m. Metric names are prefixed with
// namespace, when not empty, and the "bdd" subsystem.
func NewCollector(m Source, namespace string) *Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystem, name), help, nil, nil)
	}
	return &Collector{
		src: m,
		metrics: []metric{
			{desc("nodes", "Number of nodes in the arena, constants included."), prometheus.GaugeValue,
				func(c itebdd.Counters) uint64 { return c.Nodes }},
			{desc("variables", "Number of variables occurring in the arena."), prometheus.GaugeValue,
				func(c itebdd.Counters) uint64 { return c.Variables }},
			{desc("unique_hits_total", "Lookups that found an existing node in the unique table."), prometheus.CounterValue,
				func(c itebdd.Counters) uint64 { return c.UniqueHit }},
			{desc("unique_misses_total", "Lookups that created a new node."), prometheus.CounterValue,
				func(c itebdd.Counters) uint64 { return c.UniqueMiss }},
			{desc("reductions_total", "Node requests with identical children."), prometheus.CounterValue,
				func(c itebdd.Counters) uint64 { return c.Reductions }},
			{desc("cache_hits_total", "Operation cache hits."), prometheus.CounterValue,
				func(c itebdd.Counters) uint64 { return c.CacheHit }},
			{desc("cache_misses_total", "Operation cache misses."), prometheus.CounterValue,
				func(c itebdd.Counters) uint64 { return c.CacheMiss }},
		},
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, m := range c.metrics {
		ch <- m.desc
	}
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	snap := c.src.Counters()
	for _, m := range c.metrics {
		ch <- prometheus.MustNewConstMetric(m.desc, m.kind, float64(m.value(snap)))
	}
}
