package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saijayin/agenda/internal/store"
	"github.com/saijayin/agenda/internal/task"
)

var editFlags struct {
	day      int
	date     string
	title    string
	dept     string
	owner    string
	progress string
	status   string
	priority string
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a task",
	Long: `Replaces a task's fields. Flags that are not given keep the task's
current value; the date snaps back into the selected week.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().IntVarP(&editFlags.day, "day", "d", -1, "Weekday index, 0 (Lunes) to 4 (Viernes)")
	editCmd.Flags().StringVar(&editFlags.date, "date", "", "Explicit date (YYYY-MM-DD) inside the selected week")
	editCmd.Flags().StringVarP(&editFlags.title, "title", "t", "", "Task title")
	editCmd.Flags().StringVar(&editFlags.dept, "dept", "", "Department")
	editCmd.Flags().StringVar(&editFlags.owner, "owner", "", "Owner")
	editCmd.Flags().StringVarP(&editFlags.progress, "progress", "p", "", "Progress 0-100")
	editCmd.Flags().StringVar(&editFlags.status, "status", "", "Estado: Pendiente, En progreso or Hecho")
	editCmd.Flags().StringVar(&editFlags.priority, "priority", "", "Prioridad: Alta, Media or Baja")
}

func runEdit(cmd *cobra.Command, args []string) error {
	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	current, ok := st.Get(args[0])
	if !ok {
		return store.ErrNotFound
	}

	// Start from the stored record; flags override.
	draft := store.Draft{
		DateISO:  current.DateISO,
		Title:    current.Title,
		Dept:     current.Dept,
		Owner:    current.Owner,
		Progress: current.Progress,
		Status:   string(current.Status),
		Priority: string(current.Priority),
	}
	if editFlags.date != "" {
		draft.DateISO = editFlags.date
	}
	if cmd.Flags().Changed("day") {
		draft.DateISO = ""
		draft.DayIndex = editFlags.day
	}
	if editFlags.title != "" {
		draft.Title = editFlags.title
	}
	if editFlags.dept != "" {
		draft.Dept = editFlags.dept
	}
	if editFlags.owner != "" {
		draft.Owner = editFlags.owner
	}
	if editFlags.progress != "" {
		draft.Progress = task.ParseProgress(editFlags.progress)
		if !cmd.Flags().Changed("status") {
			// A progress edit invalidates the stored status; let the
			// normalizer re-infer it.
			draft.Status = ""
		}
	}
	if editFlags.status != "" {
		draft.Status = editFlags.status
	}
	if editFlags.priority != "" {
		draft.Priority = editFlags.priority
	}

	updated, err := st.Update(args[0], draft)
	if err != nil {
		return err
	}

	fmt.Printf("Updated %s\n", updated.String())
	return nil
}
