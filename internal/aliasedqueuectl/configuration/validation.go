package configuration

import (
	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	goslices "golang.org/x/exp/slices"

	"github.com/G-Research/aliasedqueue/internal/common/slices"
)

func (c PlanConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	return c.validatePriorities()
}

// validatePriorities checks that every alias listed more than once is always given the same priority.
func (c PlanConfig) validatePriorities() error {
	prioritiesByAlias := slices.MapAndGroupByFuncs(
		c.Queues,
		func(q QueueConfig) string { return q.Alias },
		func(q QueueConfig) int { return q.Priority },
	)
	aliases := maps.Keys(prioritiesByAlias)
	goslices.Sort(aliases)

	var result *multierror.Error
	for _, alias := range aliases {
		priorities := slices.Unique(prioritiesByAlias[alias])
		if len(priorities) > 1 {
			result = multierror.Append(result, errors.Errorf("queue %q is listed with conflicting priorities %v", alias, priorities))
		}
	}
	return result.ErrorOrNil()
}
