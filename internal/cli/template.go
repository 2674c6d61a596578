package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/saijayin/agenda/internal/xlsx"
)

var (
	templateWeek string
	templateOut  string
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Write an empty import template",
	Long: `Writes a workbook pre-filled with the week's five dates and
day names, ready to hand out and import back.`,
	RunE: runTemplate,
}

func init() {
	templateCmd.Flags().StringVarP(&templateWeek, "week", "w", "", "Week to pre-fill (any date; snaps to its Monday)")
	templateCmd.Flags().StringVarP(&templateOut, "out", "o", xlsx.TemplateFileName, "Output path")
}

func runTemplate(cmd *cobra.Command, args []string) error {
	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	anchor, err := resolveWeek(st, templateWeek)
	if err != nil {
		return err
	}

	f, err := os.Create(templateOut)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", templateOut, err)
	}
	defer f.Close()

	if err := xlsx.WriteTemplate(f, anchor); err != nil {
		return err
	}

	fmt.Printf("Template for week %s written to %s\n", anchor, templateOut)
	return nil
}
