package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/G-Research/aliasedqueue/internal/aliasedqueuectl"
)

// RootCmd is the root Cobra command that gets called from the main func.
// All other sub-commands should be registered here.
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aliasedqueuectl",
		Short: "aliasedqueuectl builds aliased priority queues from plan files and runs operations against them.",
		Long: `aliasedqueuectl builds aliased priority queues from plan files and runs operations against them.

A plan is a yaml or json file, for example:

ordering: ascending
queues:
  - alias: urgent
    priority: 1
    items: page-oncall
  - alias: batch
    priority: 20
    items: [reindex, compact]
steps:
  - op: enqueue
    alias: batch
    item: rotate-logs
  - op: dequeue
    count: 2

Top-level values can be overridden with AQ_ prefixed environment variables, e.g., AQ_ORDERING=descending.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			verbose, err := cmd.Flags().GetBool("verbose")
			if err != nil {
				return fmt.Errorf("error reading verbose: %s", err)
			}
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
	}
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Log each step as it is run.")

	cmd.AddCommand(
		runCmd(aliasedqueuectl.New()),
		showCmd(aliasedqueuectl.New()),
		drainCmd(aliasedqueuectl.New()),
	)

	return cmd
}
