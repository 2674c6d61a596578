package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saijayin/agenda/internal/store"
	"github.com/saijayin/agenda/internal/task"
)

var addFlags struct {
	day      int
	date     string
	title    string
	dept     string
	owner    string
	progress string
	status   string
	priority string
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a task to the selected week",
	Long: `Adds a task to the selected week. The task lands on --day (0 Lunes
.. 4 Viernes) unless --date names a day inside the week.

Title, department and owner are required.`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().IntVarP(&addFlags.day, "day", "d", 0, "Weekday index, 0 (Lunes) to 4 (Viernes)")
	addCmd.Flags().StringVar(&addFlags.date, "date", "", "Explicit date (YYYY-MM-DD) inside the selected week")
	addCmd.Flags().StringVarP(&addFlags.title, "title", "t", "", "Task title")
	addCmd.Flags().StringVar(&addFlags.dept, "dept", "", "Department")
	addCmd.Flags().StringVar(&addFlags.owner, "owner", "", "Owner")
	addCmd.Flags().StringVarP(&addFlags.progress, "progress", "p", "0", "Progress 0-100")
	addCmd.Flags().StringVar(&addFlags.status, "status", "", "Estado: Pendiente, En progreso or Hecho (inferred from progress when omitted)")
	addCmd.Flags().StringVar(&addFlags.priority, "priority", "", "Prioridad: Alta, Media or Baja (default Media)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	created, err := st.Create(store.Draft{
		DateISO:  addFlags.date,
		DayIndex: addFlags.day,
		Title:    addFlags.title,
		Dept:     addFlags.dept,
		Owner:    addFlags.owner,
		Progress: task.ParseProgress(addFlags.progress),
		Status:   addFlags.status,
		Priority: addFlags.priority,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added %s\n", created.String())
	fmt.Printf("  id: %s\n", created.ID)
	return nil
}
