package cmd

import (
	"fmt"
	"runtime"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"edgedata/pkg/datafactory"
	"edgedata/pkg/utils"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		utils.PrintCompactBanner(version)

		mode := "all datapoints"
		if cfg.DataFactory.RunOneDatapoint {
			mode = "one datapoint"
		}
		seedText := "random"
		if cfg.DataFactory.Seed != 0 {
			seedText = fmt.Sprintf("%d", cfg.DataFactory.Seed)
		}

		tableData := pterm.TableData{
			{"Property", "Value"},
			{"Version", version},
			{"Config", configSource()},
			{"Datasets", fmt.Sprintf("%d", len(datafactory.Datasets()))},
			{"Mode", mode},
			{"Seed", seedText},
			{"Length Range", fmt.Sprintf("%d..%d", cfg.DataFactory.MinLength, cfg.DataFactory.MaxLength)},
			{"Go Version", runtime.Version()},
			{"OS/Arch", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)},
		}

		return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
