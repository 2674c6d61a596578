package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saijayin/agenda/internal/importer"
)

var sampleWeek string

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Load sample tasks into the week",
	Long:  `Replaces the selected week with a small demo data set.`,
	RunE:  runSample,
}

func init() {
	sampleCmd.Flags().StringVarP(&sampleWeek, "week", "w", "", "Target week (any date; snaps to its Monday)")
}

func runSample(cmd *cobra.Command, args []string) error {
	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	anchor, err := resolveWeek(st, sampleWeek)
	if err != nil {
		return err
	}

	tasks, err := importer.Reconcile(importer.SampleRows(anchor), anchor)
	if err != nil {
		return err
	}
	if err := st.ReplaceWeek(anchor, tasks); err != nil {
		return err
	}

	fmt.Printf("Loaded %d sample task(s) into week %s\n", len(tasks), anchor)
	return nil
}
