package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mixedpower/adapters/excel"
	"mixedpower/app"
	"mixedpower/domain/design"
	apperrors "mixedpower/internal/errors"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mixedpower",
		Short: "Power analysis for crossed mixed-effects (CCC) designs",
	}

	rootCmd.AddCommand(
		newPowerCmd(),
		newSolveCmd(),
		newSweepCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// addParamFlags registers one flag per design parameter, seeded with
// the documented defaults already present in p.
func addParamFlags(cmd *cobra.Command, p *design.Params) {
	f := cmd.Flags()
	f.Float64Var(&p.CohensD, "cohens-d", p.CohensD, "effect size (Cohen's d)")
	f.Float64Var(&p.Resid, "resid", p.Resid, "residual variance")
	f.Float64Var(&p.TargetIntercept, "target-intercept", p.TargetIntercept, "target intercept variance")
	f.Float64Var(&p.ParticipantIntercept, "participant-intercept", p.ParticipantIntercept, "participant intercept variance")
	f.Float64Var(&p.ParticipantXTarget, "participant-x-target", p.ParticipantXTarget, "participant-by-target variance")
	f.Float64Var(&p.TargetSlope, "target-slope", p.TargetSlope, "target slope variance")
	f.Float64Var(&p.ParticipantSlope, "participant-slope", p.ParticipantSlope, "participant slope variance")
	f.Float64Var(&p.NParticipants, "n-participants", p.NParticipants, "number of participants")
	f.Float64Var(&p.NTargets, "n-targets", p.NTargets, "number of targets")
	f.Float64Var(&p.Code, "code", p.Code, "covariate contrast code")
	f.Float64Var(&p.Alpha, "alpha", p.Alpha, "significance level")
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func newPowerCmd() *cobra.Command {
	params := design.DefaultParams()
	var designName string

	cmd := &cobra.Command{
		Use:   "power",
		Short: "Compute power for a design",
		Long: `Compute two-tailed power for the given design and parameters.

Example: mixedpower power --cohens-d 0.4 --n-participants 60 --n-targets 40`,
		RunE: func(cmd *cobra.Command, args []string) error {
			service := app.NewPowerService()
			result, err := service.Power(designName, params)
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}

	cmd.Flags().StringVar(&designName, "design", string(design.CCC), "experimental design")
	addParamFlags(cmd, &params)
	return cmd
}

func newSolveCmd() *cobra.Command {
	params := design.DefaultParams()
	var variable string
	var targetPower float64

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve for the sample size reaching a target power",
		Long: `Find the smallest integer sample size achieving the target power.

Example: mixedpower solve --variable n_targets --power 0.9`,
		RunE: func(cmd *cobra.Command, args []string) error {
			service := app.NewPowerService()
			outcome, err := service.Solve(variable, targetPower, params)
			if err != nil {
				return err
			}
			if err := printJSON(outcome); err != nil {
				return err
			}
			if !outcome.Found {
				return apperrors.OptimizationFailure(outcome.FailureReason)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&variable, "variable", string(design.NParticipants), "sample-size variable to solve for")
	cmd.Flags().Float64Var(&targetPower, "power", app.DefaultTargetPower, "target power")
	addParamFlags(cmd, &params)
	return cmd
}

func newSweepCmd() *cobra.Command {
	params := design.DefaultParams()
	var variable string
	var from, to, step int
	var targetPower float64
	var xlsxPath string

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Evaluate a power curve over a sample-size range",
		Long: `Evaluate power across an inclusive range of one sample-size variable.

Example: mixedpower sweep --variable n_participants --from 10 --to 200 --step 5 --xlsx curve.xlsx`,
		RunE: func(cmd *cobra.Command, args []string) error {
			service := app.NewPowerService()
			result, err := service.Sweep(app.SweepRequest{
				Design:      string(design.CCC),
				Variable:    variable,
				From:        from,
				To:          to,
				Step:        step,
				TargetPower: targetPower,
				Params:      params,
			})
			if err != nil {
				return err
			}

			if xlsxPath != "" {
				if err := excel.NewReportWriter().WriteSweep(result, xlsxPath); err != nil {
					return err
				}
				fmt.Printf("Wrote power curve to %s (%d points)\n", xlsxPath, len(result.Points))
				return nil
			}
			return printJSON(result)
		},
	}

	cmd.Flags().StringVar(&variable, "variable", string(design.NParticipants), "sample-size variable to sweep")
	cmd.Flags().IntVar(&from, "from", 2, "range start (inclusive)")
	cmd.Flags().IntVar(&to, "to", 100, "range end (inclusive)")
	cmd.Flags().IntVar(&step, "step", 1, "range step")
	cmd.Flags().Float64Var(&targetPower, "power", 0, "optional target power reported in the summary")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "write the curve to this xlsx file instead of stdout")
	addParamFlags(cmd, &params)
	return cmd
}
