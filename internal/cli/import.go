package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/saijayin/agenda/internal/importer"
	"github.com/saijayin/agenda/internal/xlsx"
)

var importWeek string

var importCmd = &cobra.Command{
	Use:   "import <file.xlsx>",
	Short: "Import a week from a workbook",
	Long: `Reads a workbook and replaces the selected week's tasks with its
rows. Columns are matched loosely (Tarea/Actividad, Departamento/Depto,
Responsable/Owner, ...); rows without a task name are skipped, and
every imported task lands inside the selected week.

Importing replaces the whole week: prior edits to that week are
discarded. Other weeks are untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVarP(&importWeek, "week", "w", "", "Target week (any date; snaps to its Monday)")
}

func runImport(cmd *cobra.Command, args []string) error {
	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	anchor, err := resolveWeek(st, importWeek)
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer f.Close()

	rows, err := xlsx.ReadRows(f)
	if err != nil {
		return fmt.Errorf("could not read the file; if it is Excel, save it as .xlsx and retry: %w", err)
	}

	imported, err := importer.Reconcile(rows, anchor)
	if err != nil {
		if errors.Is(err, importer.ErrNoRows) {
			return fmt.Errorf("no valid rows found; check columns Fecha/Día, Tarea, Departamento, Responsable, Progreso, Estado")
		}
		return err
	}

	if err := st.ReplaceWeek(anchor, imported); err != nil {
		return err
	}

	fmt.Printf("Imported %d task(s) into week %s\n", len(imported), anchor)
	return nil
}
