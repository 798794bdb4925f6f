// Copyright (c) 2025 The pmstats Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package prometheus exposes pmstats.Monitor statistics to Prometheus.
package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gwtelemetry/pmstats/stats"
)

// StatsProvider provides monitor statistics and occupancy. *pmstats.Monitor implements it.
type StatsProvider interface {
	Stats() stats.Stats
	Len() int
	Capacity() int
}

// Collector collects statistics from a monitor and exposes them to Prometheus.
type Collector struct {
	provider           StatsProvider
	registrationsDesc  *prometheus.Desc
	updatesDesc        *prometheus.Desc
	debouncedDesc      *prometheus.Desc
	rejectionsDesc     *prometheus.Desc
	sweepsDesc         *prometheus.Desc
	overdueDesc        *prometheus.Desc
	resendFailuresDesc *prometheus.Desc
	unitsDesc          *prometheus.Desc
	capacityDesc       *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a new collector for the given monitor statistics provider.
// Metric names are prefixed with the given namespace and subsystem,
// i.e "{namespace}_{subsystem}_{metric}".
// Supported metrics:
// - registrations_total
// - updates_total
// - debounced_total
// - rejections_total
// - sweeps_total
// - overdue_total
// - resend_failures_total
// - units
// - capacity
func NewCollector(namespace, subsystem string, provider StatsProvider) *Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystem, name), help, nil, nil)
	}

	return &Collector{
		provider:           provider,
		registrationsDesc:  desc("registrations_total", "Number of units seen for the first time."),
		updatesDesc:        desc("updates_total", "Number of reports that refreshed a known unit."),
		debouncedDesc:      desc("debounced_total", "Number of reports ignored inside the debounce window."),
		rejectionsDesc:     desc("rejections_total", "Number of reports dropped because the table was full."),
		sweepsDesc:         desc("sweeps_total", "Number of completed sweeps."),
		overdueDesc:        desc("overdue_total", "Number of overdue units flagged, summed over sweeps."),
		resendFailuresDesc: desc("resend_failures_total", "Number of refused resend requests."),
		unitsDesc:          desc("units", "Number of units in the table."),
		capacityDesc:       desc("capacity", "Number of slots in the table."),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(descs chan<- *prometheus.Desc) {
	descs <- c.registrationsDesc
	descs <- c.updatesDesc
	descs <- c.debouncedDesc
	descs <- c.rejectionsDesc
	descs <- c.sweepsDesc
	descs <- c.overdueDesc
	descs <- c.resendFailuresDesc
	descs <- c.unitsDesc
	descs <- c.capacityDesc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(metrics chan<- prometheus.Metric) {
	s := c.provider.Stats()
	counter := func(d *prometheus.Desc, v uint64) {
		metrics <- prometheus.MustNewConstMetric(d, prometheus.CounterValue, float64(v))
	}
	counter(c.registrationsDesc, s.Registrations)
	counter(c.updatesDesc, s.Updates)
	counter(c.debouncedDesc, s.Debounced)
	counter(c.rejectionsDesc, s.Rejections)
	counter(c.sweepsDesc, s.Sweeps)
	counter(c.overdueDesc, s.Overdue)
	counter(c.resendFailuresDesc, s.ResendFailures)

	metrics <- prometheus.MustNewConstMetric(
		c.unitsDesc, prometheus.GaugeValue, float64(c.provider.Len()),
	)
	metrics <- prometheus.MustNewConstMetric(
		c.capacityDesc, prometheus.GaugeValue, float64(c.provider.Capacity()),
	)
}
