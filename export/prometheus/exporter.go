// Package prometheus exposes aggregated DPP metrics to a Prometheus
// registry. The collector reads a snapshot on every scrape and emits
// const metrics, so scraping never mutates the aggregator and a Clear
// on the aggregator is reflected on the next scrape.
package prometheus

import (
	prom "github.com/prometheus/client_golang/prometheus"

	dppmetrics "github.com/zulfikawr/dppmetrics"
)

// Source provides the snapshot the collector exports. *dppmetrics.Aggregator
// satisfies it.
type Source interface {
	Snapshot() dppmetrics.Snapshot
}

// Collector implements prom.Collector over an aggregator snapshot.
type Collector struct {
	source Source

	counterDescs  []counterDesc
	failureDesc   *prom.Desc
	successDesc   *prom.Desc
	operationDesc *prom.Desc
}

type counterDesc struct {
	desc  *prom.Desc
	value func(dppmetrics.Snapshot) int64
}

// NewCollector creates a collector reading from source. Register it on
// any registry:
//
//	reg.MustRegister(prometheus.NewCollector(agg))
func NewCollector(source Source) *Collector {
	return &Collector{
		source: source,
		counterDescs: []counterDesc{
			{
				desc: prom.NewDesc("dpp_configurator_initiator_requests_total",
					"Configurator-initiator provisioning requests.", nil, nil),
				value: func(s dppmetrics.Snapshot) int64 { return s.ConfiguratorInitiatorRequests },
			},
			{
				desc: prom.NewDesc("dpp_enrollee_initiator_requests_total",
					"Enrollee-initiator provisioning requests.", nil, nil),
				value: func(s dppmetrics.Snapshot) int64 { return s.EnrolleeInitiatorRequests },
			},
			{
				desc: prom.NewDesc("dpp_enrollee_responder_requests_total",
					"Enrollee-responder provisioning requests.", nil, nil),
				value: func(s dppmetrics.Snapshot) int64 { return s.EnrolleeResponderRequests },
			},
			{
				desc: prom.NewDesc("dpp_enrollee_responder_success_total",
					"Successful enrollee-responder provisionings.", nil, nil),
				value: func(s dppmetrics.Snapshot) int64 { return s.EnrolleeResponderSuccess },
			},
			{
				desc: prom.NewDesc("dpp_enrollee_success_total",
					"Successful enrollee provisionings.", nil, nil),
				value: func(s dppmetrics.Snapshot) int64 { return s.EnrolleeSuccess },
			},
			{
				desc: prom.NewDesc("dpp_r1_capable_responder_devices_total",
					"Responder devices supporting DPP R1 only.", nil, nil),
				value: func(s dppmetrics.Snapshot) int64 { return s.R1CapableResponderDevices },
			},
			{
				desc: prom.NewDesc("dpp_r2_capable_responder_devices_total",
					"Responder devices supporting DPP R2.", nil, nil),
				value: func(s dppmetrics.Snapshot) int64 { return s.R2CapableResponderDevices },
			},
			{
				desc: prom.NewDesc("dpp_r2_incompatible_configuration_total",
					"R2 compatibility checks that found the responder incompatible.", nil, nil),
				value: func(s dppmetrics.Snapshot) int64 { return s.R2IncompatibleConfiguration },
			},
		},
		failureDesc: prom.NewDesc("dpp_failures_total",
			"Provisioning failures by status code.", []string{"code"}, nil),
		successDesc: prom.NewDesc("dpp_configurator_success_total",
			"Configurator successes by status code.", []string{"code"}, nil),
		operationDesc: prom.NewDesc("dpp_operation_time_seconds",
			"DPP operation wall time.", nil, nil),
	}
}

// Describe implements prom.Collector.
func (c *Collector) Describe(ch chan<- *prom.Desc) {
	for _, cd := range c.counterDescs {
		ch <- cd.desc
	}
	ch <- c.failureDesc
	ch <- c.successDesc
	ch <- c.operationDesc
}

// Collect implements prom.Collector.
func (c *Collector) Collect(ch chan<- prom.Metric) {
	s := c.source.Snapshot()

	for _, cd := range c.counterDescs {
		ch <- prom.MustNewConstMetric(cd.desc, prom.CounterValue, float64(cd.value(s)))
	}

	for _, sc := range s.FailureCodes {
		ch <- prom.MustNewConstMetric(c.failureDesc, prom.CounterValue, float64(sc.Count), sc.Name)
	}
	for _, sc := range s.ConfiguratorSuccessCodes {
		ch <- prom.MustNewConstMetric(c.successDesc, prom.CounterValue, float64(sc.Count), sc.Name)
	}

	buckets, count := cumulativeBuckets(s.OperationTime)
	// Per-operation sums are not tracked by the aggregator; the bucket
	// counts carry all the information the pipeline consumes.
	ch <- prom.MustNewConstHistogram(c.operationDesc, count, 0, buckets)
}

// cumulativeBuckets converts the snapshot's per-bucket counts to the
// cumulative upper-bound form const histograms expect. The final
// overflow bucket is implied by the total count.
func cumulativeBuckets(d dppmetrics.DurationBuckets) (map[float64]uint64, uint64) {
	buckets := make(map[float64]uint64, len(d.BoundsSeconds))
	var running uint64
	for i, bound := range d.BoundsSeconds {
		if i < len(d.Counts) {
			running += uint64(d.Counts[i])
		}
		buckets[float64(bound)] = running
	}
	if len(d.Counts) > len(d.BoundsSeconds) {
		running += uint64(d.Counts[len(d.BoundsSeconds)])
	}
	return buckets, running
}
