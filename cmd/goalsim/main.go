/*
main.go - goalsim command line entry point

PURPOSE:
  Runs a goal projection from a TOML plan without starting the server.
  Validation and numbers go through the same code as POST /simulate.

COMMANDS:
  goalsim run --plan plan.toml           Print the projection as a table
  goalsim run --plan plan.toml --json    Print the HTTP response body
  goalsim version                        Print the version

SEE ALSO:
  - plan/plan.go: Plan file format
  - report/table.go: Table rendering
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:           "goalsim",
	Short:         "Savings goal projections",
	Long:          "Project a savings goal month by month from a TOML plan.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "goalsim: %v\n", err)
		os.Exit(1)
	}
}
