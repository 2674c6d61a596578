package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/saijayin/agenda/internal/week"
)

var weekCmd = &cobra.Command{
	Use:   "week [date|today]",
	Short: "Show or select the working week",
	Long: `Without arguments, prints the selected week. With a date (or the
word "today"), selects the week containing it; the anchor always snaps
to that week's Monday.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWeek,
}

func runWeek(cmd *cobra.Command, args []string) error {
	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	if len(args) == 1 {
		target := args[0]
		if target == "today" {
			target = week.ToISO(time.Now())
		}
		if err := st.SetWeekAnchor(target); err != nil {
			return err
		}
	}

	label, err := week.Label(st.WeekAnchor())
	if err != nil {
		return err
	}
	fmt.Println(label)
	return nil
}
