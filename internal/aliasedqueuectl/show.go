package aliasedqueuectl

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

const (
	outputFormatYaml = "yaml"
	outputFormatJson = "json"
)

type subQueueView struct {
	Alias    string   `json:"alias"`
	Priority int      `json:"priority"`
	Items    []string `json:"items"`
}

// Show prints the sub-queues of the queue built from the plan at path, in priority order.
// Steps are not run.
func (a *App) Show(path string) error {
	plan, err := a.LoadPlan(path)
	if err != nil {
		return err
	}
	q, priorities, err := buildQueue(plan)
	if err != nil {
		return errors.Errorf("[aliasedqueuectl.Show] %s", err)
	}

	entries := q.Entries()
	views := make([]subQueueView, len(entries))
	for i, entry := range entries {
		views[i] = subQueueView{
			Alias:    entry.Alias,
			Priority: priorities.byAlias[entry.Alias],
			Items:    entry.Seed.Items(),
		}
	}

	var b []byte
	switch a.Params.OutputFormat {
	case outputFormatYaml, "":
		b, err = yaml.Marshal(views)
	case outputFormatJson:
		b, err = json.MarshalIndent(views, "", "  ")
		b = append(b, '\n')
	default:
		return errors.Errorf("[aliasedqueuectl.Show] unknown output format %q; valid formats are %s and %s", a.Params.OutputFormat, outputFormatYaml, outputFormatJson)
	}
	if err != nil {
		return errors.Errorf("[aliasedqueuectl.Show] error marshalling queue: %s", err)
	}
	fmt.Fprint(a.Out, string(b))
	return nil
}

// Drain prints every item of the queue built from the plan at path, one per line, in dequeue order.
// Steps are not run.
func (a *App) Drain(path string) error {
	plan, err := a.LoadPlan(path)
	if err != nil {
		return err
	}
	q, _, err := buildQueue(plan)
	if err != nil {
		return errors.Errorf("[aliasedqueuectl.Drain] %s", err)
	}
	for _, item := range q.Drain() {
		fmt.Fprintln(a.Out, item)
	}
	return nil
}
