package aliasedqueuectl

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	log "github.com/sirupsen/logrus"

	"github.com/G-Research/aliasedqueue/internal/aliasedqueuectl/configuration"
	"github.com/G-Research/aliasedqueue/pkg/aliasedqueue"
	"github.com/G-Research/aliasedqueue/pkg/aliasedqueue/metrics"
)

// Run builds the queue described by the plan at path and applies its steps in order,
// writing the outcome of each step to a.Out.
func (a *App) Run(path string) error {
	plan, err := a.LoadPlan(path)
	if err != nil {
		return err
	}
	q, priorities, err := buildQueue(plan)
	if err != nil {
		return errors.Errorf("[aliasedqueuectl.Run] %s", err)
	}
	fmt.Fprintf(a.Out, "Created %s\n", q)

	for i, step := range plan.Steps {
		err := a.runStep(q, priorities, step)
		if err == nil {
			continue
		}
		if a.Params.FailFast {
			return errors.Errorf("[aliasedqueuectl.Run] step %d (%s) failed: %s", i, step.Op, err)
		}
		log.WithField("step", i).WithField("op", step.Op).WithError(err).Warn("Step failed; continuing")
		fmt.Fprintf(a.Out, "step %d (%s) failed: %s\n", i, step.Op, err)
	}

	if a.Params.Metrics {
		return a.writeMetrics(q)
	}
	return nil
}

func (a *App) runStep(q *queue, priorities *priorityTable, step configuration.StepConfig) error {
	if log.IsLevelEnabled(log.DebugLevel) {
		log.Debugf("Running %s on %s", step.Op, q)
	}
	switch step.Op {
	case configuration.OpEnqueue:
		if err := q.Enqueue(step.Item, step.Alias); err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "enqueued %s -> %s\n", step.Item, step.Alias)
	case configuration.OpDequeue:
		count := step.Count
		if count == 0 {
			count = 1
		}
		for i := 0; i < count; i++ {
			item, err := q.Dequeue()
			if errors.Is(err, aliasedqueue.ErrEmpty) {
				fmt.Fprintln(a.Out, "queue empty")
				break
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(a.Out, "dequeued %s\n", item)
		}
	case configuration.OpAddQueue:
		added := false
		if !q.Has(step.Alias) {
			// The key function reads the table, so the priority must be set before adding.
			priorities.byAlias[step.Alias] = step.Priority
			added = q.AddQueue(step.Alias)
		}
		fmt.Fprintf(a.Out, "added queue %s: %t\n", step.Alias, added)
	case configuration.OpDelQueue:
		deleted := q.DelQueue(step.Alias)
		if deleted {
			delete(priorities.byAlias, step.Alias)
		}
		fmt.Fprintf(a.Out, "deleted queue %s: %t\n", step.Alias, deleted)
	case configuration.OpAliases:
		fmt.Fprintf(a.Out, "aliases: %v\n", q.AllAliases())
	case configuration.OpDrain:
		fmt.Fprintf(a.Out, "drained: %v\n", q.Drain())
	case configuration.OpShow:
		fmt.Fprintln(a.Out, q)
	default:
		return errors.Errorf("unknown op %q", step.Op)
	}
	return nil
}

func (a *App) writeMetrics(q *queue) error {
	registry := prometheus.NewRegistry()
	if err := registry.Register(metrics.NewCollector[string](q, nil)); err != nil {
		return errors.Errorf("[aliasedqueuectl.writeMetrics] error registering collector: %s", err)
	}
	families, err := registry.Gather()
	if err != nil {
		return errors.Errorf("[aliasedqueuectl.writeMetrics] error gathering metrics: %s", err)
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(a.Out, family); err != nil {
			return errors.Errorf("[aliasedqueuectl.writeMetrics] error writing metrics: %s", err)
		}
	}
	return nil
}
