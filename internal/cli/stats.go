package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saijayin/agenda/internal/agg"
	"github.com/saijayin/agenda/internal/week"
)

var statsWeek string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-day progress for the week",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVarP(&statsWeek, "week", "w", "", "Week to summarize (any date; snaps to its Monday)")
}

func runStats(cmd *cobra.Command, args []string) error {
	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	anchor, err := resolveWeek(st, statsWeek)
	if err != nil {
		return err
	}
	label, err := week.Label(anchor)
	if err != nil {
		return err
	}

	weekTasks := agg.TasksInWeek(st.Tasks(), anchor)
	chart := agg.Chart(weekTasks, anchor)

	fmt.Println(label)
	for i, name := range chart.Labels {
		bar := strings.Repeat("█", chart.AvgProgress[i]/5)
		fmt.Printf("%-10s %-20s %3d%%  %d tarea(s)\n", name, bar, chart.AvgProgress[i], chart.Counts[i])
	}

	stats := agg.WeekStatsOf(weekTasks)
	fmt.Printf("\nSemana: %d%% promedio · %d tarea(s)\n", stats.AvgProgress, stats.Total)
	return nil
}
