package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"edgedata/pkg/datafactory"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available datasets",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	f := newFactory()

	tableData := pterm.TableData{{"Dataset", "Expect", "Category", "Count", "Description"}}
	for _, info := range datafactory.Datasets() {
		values, err := f.Dataset(info.Name, datafactory.InterfaceDefault)
		if err != nil {
			return err
		}
		tableData = append(tableData, []string{
			info.Name,
			info.Expect.String(),
			info.Category.String(),
			fmt.Sprintf("%d", len(values)),
			info.Description,
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
