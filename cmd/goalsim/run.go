package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/warp/goal-engine/api"
	"github.com/warp/goal-engine/config"
	"github.com/warp/goal-engine/goal"
	"github.com/warp/goal-engine/plan"
	"github.com/warp/goal-engine/report"
)

var (
	flagPlan       string
	flagJSON       bool
	flagLang       string
	flagMaxHorizon int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Project a plan month by month",
	Example: `  goalsim run --plan house.toml
  goalsim run --plan house.toml --json
  cat house.toml | goalsim run --plan -`,
	RunE: runPlan,
}

func init() {
	runCmd.Flags().StringVarP(&flagPlan, "plan", "p", "", "TOML plan file (- for stdin)")
	runCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the JSON response instead of a table")
	runCmd.Flags().StringVar(&flagLang, "lang", "en", "Language tag for number formatting (e.g. pt-BR)")
	runCmd.Flags().IntVar(&flagMaxHorizon, "max-horizon", 0, "Largest horizon in months (default: $GOALS_MAX_HORIZON_MONTHS or 1200)")
	_ = runCmd.MarkFlagRequired("plan")
	rootCmd.AddCommand(runCmd)
}

func runPlan(cmd *cobra.Command, _ []string) error {
	p, err := loadPlan(cmd.InOrStdin(), flagPlan)
	if err != nil {
		return err
	}

	maxHorizon := flagMaxHorizon
	if maxHorizon <= 0 {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		maxHorizon = cfg.MaxHorizonMonths
	}

	resp, err := api.NewHandler(maxHorizon).Run(p.Request())
	if err != nil {
		return describe(err)
	}

	out := cmd.OutOrStdout()
	if flagJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	_, err = fmt.Fprint(out, report.Render(p.Name, resp.Data, report.Printer(flagLang)))
	return err
}

func loadPlan(stdin io.Reader, path string) (*plan.Plan, error) {
	if path == "-" {
		return plan.Load(stdin)
	}
	return plan.LoadFile(path)
}

// describe turns engine and validation errors into one readable message.
func describe(err error) error {
	var verr *api.ValidationError
	switch {
	case errors.Is(err, goal.ErrInvalidDateFormat):
		return errors.New(api.InvalidDateMessage)
	case errors.As(err, &verr):
		msg := "invalid plan:"
		for _, f := range verr.Fields {
			msg += fmt.Sprintf("\n  %s: %s", f.Field, f.Message)
		}
		return errors.New(msg)
	default:
		return err
	}
}
