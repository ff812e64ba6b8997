package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ippt-coach/internal/domain"
	"ippt-coach/internal/scoring"
)

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "score",
		Short:   "Score a full set of IPPT results",
		Example: "  ipptctl score --gender male --age 25 --pushups 20 --situps 20 --run 11:30",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, age, err := personFlags(cmd)
			if err != nil {
				return err
			}
			pushUps, _ := cmd.Flags().GetInt("pushups")
			sitUps, _ := cmd.Flags().GetInt("situps")
			run, _ := cmd.Flags().GetString("run")

			result, err := scoring.NewEngine(nil).Forward(g, age, pushUps, sitUps, run)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.String())
			return nil
		},
	}
	addPersonFlags(cmd)
	cmd.Flags().Int("pushups", 0, "push-ups in one minute")
	cmd.Flags().Int("situps", 0, "sit-ups in one minute")
	cmd.Flags().String("run", "", "2.4km run time as M:SS")
	_ = cmd.MarkFlagRequired("pushups")
	_ = cmd.MarkFlagRequired("situps")
	_ = cmd.MarkFlagRequired("run")
	return cmd
}

func addPersonFlags(cmd *cobra.Command) {
	cmd.Flags().String("gender", "", "male or female (m/f)")
	cmd.Flags().Int("age", 0, "age in years (18-45)")
	_ = cmd.MarkFlagRequired("gender")
	_ = cmd.MarkFlagRequired("age")
}

func personFlags(cmd *cobra.Command) (domain.Gender, int, error) {
	raw, _ := cmd.Flags().GetString("gender")
	g, ok := domain.ParseGender(raw)
	if !ok {
		return "", 0, fmt.Errorf("invalid --gender %q: use male or female", raw)
	}
	age, _ := cmd.Flags().GetInt("age")
	if scoring.AgeGroup(age) == -1 {
		return "", 0, fmt.Errorf("invalid --age %d: must be between %d and %d", age, scoring.MinAge, scoring.MaxAge)
	}
	return g, age, nil
}
