package metrics

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "aliasedqueue"

// Source is the read-only view of a queue the collector needs.
// *aliasedqueue.AliasedPriorityQueue satisfies it.
type Source[A comparable] interface {
	AllAliases() []A
	LenOf(alias A) (int, error)
}

// Collector exports the depth of each sub-queue of a queue, labelled by alias,
// and the number of sub-queues. Values are read at collection time.
//
// Aliases are turned into label values with fmt.Sprint. If two aliases print the
// same, only the first is exported and the second is reported as an invalid metric.
//
// The queue isn't safe for concurrent use, so gathering must not overlap with
// mutations of the queue.
type Collector[A comparable] struct {
	source Source[A]

	depthDesc     *prometheus.Desc
	subQueuesDesc *prometheus.Desc
}

func NewCollector[A comparable](source Source[A], constLabels prometheus.Labels) *Collector[A] {
	return &Collector[A]{
		source: source,
		depthDesc: prometheus.NewDesc(
			fmt.Sprintf("%s_subqueue_depth", namespace),
			"Number of items waiting in each sub-queue.",
			[]string{"alias"},
			constLabels,
		),
		subQueuesDesc: prometheus.NewDesc(
			fmt.Sprintf("%s_subqueues", namespace),
			"Number of sub-queues.",
			nil,
			constLabels,
		),
	}
}

func (c *Collector[A]) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.depthDesc
	ch <- c.subQueuesDesc
}

func (c *Collector[A]) Collect(ch chan<- prometheus.Metric) {
	aliases := c.source.AllAliases()
	ch <- prometheus.MustNewConstMetric(c.subQueuesDesc, prometheus.GaugeValue, float64(len(aliases)))
	seen := make(map[string]bool, len(aliases))
	for _, alias := range aliases {
		label := fmt.Sprint(alias)
		if seen[label] {
			ch <- prometheus.NewInvalidMetric(c.depthDesc, errors.Errorf("more than one alias has label value %q", label))
			continue
		}
		seen[label] = true
		depth, err := c.source.LenOf(alias)
		if err != nil {
			ch <- prometheus.NewInvalidMetric(c.depthDesc, err)
			continue
		}
		ch <- prometheus.MustNewConstMetric(c.depthDesc, prometheus.GaugeValue, float64(depth), label)
	}
}
