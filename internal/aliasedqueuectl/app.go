package aliasedqueuectl

import (
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/G-Research/aliasedqueue/internal/aliasedqueuectl/configuration"
	"github.com/G-Research/aliasedqueue/internal/common"
	commonconfig "github.com/G-Research/aliasedqueue/internal/common/config"
)

type App struct {
	// Parameters passed to the CLI by the user.
	Params *Params
	// Out is used to write the output. Defaults to standard out,
	// but can be overridden in tests to make assertions on the applications's output.
	Out io.Writer
}

// Params struct holds all user-customizable parameters.
// Using a single struct for all CLI commands ensures that all flags are distinct.
type Params struct {
	// Abort a run on the first step that fails instead of reporting it and carrying on.
	FailFast bool
	// Print prometheus metrics describing the queue once a run completes.
	Metrics bool
	// Output format of show, either yaml or json.
	OutputFormat string
}

// New instantiates an App with default parameters, including standard output.
func New() *App {
	return &App{
		Params: &Params{OutputFormat: outputFormatYaml},
		Out:    os.Stdout,
	}
}

// LoadPlan reads and validates the plan at path.
func (a *App) LoadPlan(path string) (*configuration.PlanConfig, error) {
	var plan configuration.PlanConfig
	if _, err := common.LoadConfig(&plan, path); err != nil {
		return nil, errors.Errorf("[aliasedqueuectl.LoadPlan] error loading plan %s: %s", path, err)
	}
	if err := plan.Validate(); err != nil {
		commonconfig.LogValidationErrors(err)
		return nil, errors.Errorf("[aliasedqueuectl.LoadPlan] invalid plan %s: %s", path, err)
	}
	log.WithField("plan", path).Debugf("Loaded plan with %d queues and %d steps", len(plan.Queues), len(plan.Steps))
	return &plan, nil
}
