package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/G-Research/aliasedqueue/internal/aliasedqueuectl"
)

// Takes a caller-supplied app struct; useful for testing.
func runCmd(a *aliasedqueuectl.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <plan>",
		Short: "Build the queue described by a plan and run its steps",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initParams(cmd, a)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Run(args[0])
		},
	}
	cmd.Flags().Bool("fail-fast", false, "Stop at the first step that fails.")
	cmd.Flags().Bool("metrics", false, "Print queue metrics in the prometheus text format once all steps have run.")
	return cmd
}

func showCmd(a *aliasedqueuectl.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <plan>",
		Short: "Print the sub-queues of the queue described by a plan, in priority order",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initParams(cmd, a)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Show(args[0])
		},
	}
	cmd.Flags().StringP("output", "o", "yaml", "Output format, either yaml or json.")
	return cmd
}

func drainCmd(a *aliasedqueuectl.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drain <plan>",
		Short: "Print every item of the queue described by a plan in dequeue order",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initParams(cmd, a)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Drain(args[0])
		},
	}
	return cmd
}

// initParams copies the flags defined on cmd into a.Params and directs output to cmd's writer.
func initParams(cmd *cobra.Command, a *aliasedqueuectl.App) error {
	a.Out = cmd.OutOrStdout()
	flags := cmd.Flags()
	if err := readBool(flags, "fail-fast", &a.Params.FailFast); err != nil {
		return err
	}
	if err := readBool(flags, "metrics", &a.Params.Metrics); err != nil {
		return err
	}
	if flags.Lookup("output") != nil {
		output, err := flags.GetString("output")
		if err != nil {
			return fmt.Errorf("error reading output: %s", err)
		}
		a.Params.OutputFormat = output
	}
	return nil
}

// readBool sets dst to the value of the named flag if the flag is defined.
func readBool(flags *pflag.FlagSet, name string, dst *bool) error {
	if flags.Lookup(name) == nil {
		return nil
	}
	v, err := flags.GetBool(name)
	if err != nil {
		return fmt.Errorf("error reading %s: %s", name, err)
	}
	*dst = v
	return nil
}
