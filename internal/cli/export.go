package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/saijayin/agenda/internal/agg"
	"github.com/saijayin/agenda/internal/xlsx"
)

var (
	exportWeek string
	exportOut  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the week to a workbook",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportWeek, "week", "w", "", "Week to export (any date; snaps to its Monday)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output path (default agenda_<week>.xlsx)")
}

func runExport(cmd *cobra.Command, args []string) error {
	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	anchor, err := resolveWeek(st, exportWeek)
	if err != nil {
		return err
	}

	out := exportOut
	if out == "" {
		out = xlsx.ExportFileName(anchor)
	}

	tasks := agg.TasksInWeek(st.Tasks(), anchor)

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}
	defer f.Close()

	if err := xlsx.WriteWeek(f, tasks); err != nil {
		return err
	}

	fmt.Printf("Exported %d task(s) to %s\n", len(tasks), out)
	return nil
}
