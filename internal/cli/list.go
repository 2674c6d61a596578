package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saijayin/agenda/internal/agg"
	"github.com/saijayin/agenda/internal/task"
	"github.com/saijayin/agenda/internal/week"
)

var listFlags struct {
	week     string
	dept     string
	owner    string
	status   string
	byStatus bool
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the week's board",
	Long: `Shows the selected week's tasks grouped by weekday, with per-day and
week-level progress. Filters narrow the board; the week summary stays
unfiltered.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listFlags.week, "week", "w", "", "Week to show (any date; snaps to its Monday)")
	listCmd.Flags().StringVar(&listFlags.dept, "dept", "", "Filter by department")
	listCmd.Flags().StringVar(&listFlags.owner, "owner", "", "Filter by owner")
	listCmd.Flags().StringVar(&listFlags.status, "status", "", "Filter by estado")
	listCmd.Flags().BoolVar(&listFlags.byStatus, "by-status", false, "Group by estado instead of weekday")
}

func runList(cmd *cobra.Command, args []string) error {
	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	anchor, err := resolveWeek(st, listFlags.week)
	if err != nil {
		return err
	}
	label, err := week.Label(anchor)
	if err != nil {
		return err
	}

	weekTasks := agg.TasksInWeek(st.Tasks(), anchor)
	filter := agg.Filter{
		Dept:   listFlags.dept,
		Owner:  listFlags.owner,
		Status: task.Status(listFlags.status),
	}
	filtered := filter.Apply(weekTasks)

	fmt.Println(label)
	stats := agg.WeekStatsOf(weekTasks)
	fmt.Printf("Progreso: %d%% · %d tarea(s)\n\n", stats.AvgProgress, stats.Total)

	if listFlags.byStatus {
		printByStatus(filtered)
		return nil
	}
	return printBoard(filtered, anchor)
}

func printBoard(tasks []task.Task, anchor string) error {
	buckets := agg.DayBuckets(tasks, anchor)
	for i, name := range week.DayNames {
		dateISO, err := week.AddDays(anchor, i)
		if err != nil {
			return err
		}
		st := agg.PerDayStats(buckets[i])
		fmt.Printf("%s %s — %d%% · %d tarea(s)\n", name, dateISO, st.AvgProgress, st.Count)
		if len(buckets[i]) == 0 {
			fmt.Println("  (sin tareas)")
			continue
		}
		for _, t := range buckets[i] {
			printTask(t)
		}
	}
	return nil
}

func printByStatus(tasks []task.Task) {
	agg.SortList(tasks)
	var current task.Status
	for _, t := range tasks {
		if s := t.EffectiveStatus(); s != current {
			current = s
			fmt.Printf("%s\n", current)
		}
		printTask(t)
	}
	if len(tasks) == 0 {
		fmt.Println("No hay tareas para mostrar.")
	}
}

func printTask(t task.Task) {
	fmt.Printf("  [%s] %-30s %s/%s %3d%% %s  %s\n",
		t.EffectiveStatus(), t.Title, t.Dept, t.Owner, t.Progress, t.Priority, t.ID)
}
