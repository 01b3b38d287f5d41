package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cockpit",
	Short: "Working-day calendar and resource-allocation engine for SAP implementation timelines",
}

func init() {
	rootCmd.AddCommand(workdaysCmd)
	rootCmd.AddCommand(holidaysCmd)
	rootCmd.AddCommand(allocCmd)
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(versionCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
