package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ippt-coach/internal/domain"
	"ippt-coach/internal/scoring"
)

func newTargetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "target",
		Short:   "Work out what the missing station needs for an award",
		Example: "  ipptctl target --gender male --age 25 --target pass --pushups 40 --situps 40",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, age, err := personFlags(cmd)
			if err != nil {
				return err
			}
			rawTarget, _ := cmd.Flags().GetString("target")
			target, ok := domain.ParseTarget(rawTarget)
			if !ok {
				return fmt.Errorf("invalid --target %q: use pass, silver or gold", rawTarget)
			}

			q := scoring.TargetQuery{Gender: g, Age: age, Target: target}
			if cmd.Flags().Changed("pushups") {
				n, _ := cmd.Flags().GetInt("pushups")
				q.PushUps = &n
			}
			if cmd.Flags().Changed("situps") {
				n, _ := cmd.Flags().GetInt("situps")
				q.SitUps = &n
			}
			if cmd.Flags().Changed("run") {
				run, _ := cmd.Flags().GetString("run")
				if _, err := scoring.ParseRunTime(run); err != nil {
					return err
				}
				q.RunTime = run
			}
			if solveFor, _ := cmd.Flags().GetString("solve-for"); solveFor != "" {
				q.SolveFor = domain.Station(solveFor)
			}

			fmt.Fprintln(cmd.OutOrStdout(), scoring.NewEngine(nil).RequiredForTarget(q))
			return nil
		},
	}
	addPersonFlags(cmd)
	cmd.Flags().String("target", "pass", "award to aim for: pass, silver or gold")
	cmd.Flags().Int("pushups", 0, "known push-ups in one minute")
	cmd.Flags().Int("situps", 0, "known sit-ups in one minute")
	cmd.Flags().String("run", "", "known 2.4km run time as M:SS")
	cmd.Flags().String("solve-for", "", "station to solve for when more than one is unknown: push-up, sit-up or runtime")
	return cmd
}
