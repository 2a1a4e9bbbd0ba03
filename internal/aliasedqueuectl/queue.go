package aliasedqueuectl

import (
	"github.com/pkg/errors"

	"github.com/G-Research/aliasedqueue/internal/aliasedqueuectl/configuration"
	commonconfig "github.com/G-Research/aliasedqueue/internal/common/config"
	"github.com/G-Research/aliasedqueue/pkg/aliasedqueue"
)

type queue = aliasedqueue.AliasedPriorityQueue[string, int, string]

// priorityTable is the key function of a queue built from a plan.
// Aliases without a configured priority have priority zero.
type priorityTable struct {
	byAlias    map[string]int
	descending bool
}

func (p *priorityTable) key(alias string) int {
	priority := p.byAlias[alias]
	if p.descending {
		return -priority
	}
	return priority
}

func buildQueue(plan *configuration.PlanConfig) (*queue, *priorityTable, error) {
	priorities := &priorityTable{
		byAlias:    make(map[string]int, len(plan.Queues)),
		descending: plan.Descending(),
	}
	entries := make([]aliasedqueue.Entry[string, string], len(plan.Queues))
	for i, qc := range plan.Queues {
		priorities.byAlias[qc.Alias] = qc.Priority
		entries[i] = aliasedqueue.Entry[string, string]{Alias: qc.Alias, Seed: seedFromItems(qc.Items)}
	}
	q, err := aliasedqueue.New(entries, priorities.key)
	if err != nil {
		return nil, nil, errors.WithMessage(err, "error building queue from plan")
	}
	return q, priorities, nil
}

func seedFromItems(items commonconfig.ScalarOrList) aliasedqueue.Seed[string] {
	if items.Single && len(items.Values) == 1 {
		return aliasedqueue.One(items.Values[0])
	}
	return aliasedqueue.Many(items.Values...)
}
