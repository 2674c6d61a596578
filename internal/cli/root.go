// Package cli implements the agenda command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd *cobra.Command

func init() {
	rootCmd = &cobra.Command{
		Use:   "agenda",
		Short: "Agenda semanal - weekly task board",
		Long: `Agenda keeps a Monday-start weekly task board: tasks with owner,
department, progress and priority, grouped into the five working days.

State lives in a local store; weeks can be exported to and imported
from .xlsx workbooks.`,
		RunE:          runList, // Default action shows the board
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

// Execute runs the root command.
func Execute(version string) error {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)

	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
