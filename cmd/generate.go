package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"edgedata/pkg/datafactory"
	"edgedata/pkg/generator"
	"edgedata/pkg/reporter"
	"edgedata/pkg/utils"
)

var generateCmd = &cobra.Command{
	Use:   "generate [dataset...]",
	Short: "Print or export datasets",
	Long: `Generate one or more datasets and print them, one value per line, or
export them as JSON/YAML with the equivalence classes of each value.

  edgedata generate valid-names invalid-emails
  edgedata generate --all --format yaml -o datasets.yaml
  edgedata generate invalid-values --interface ui --one-datapoint`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().Bool("all", false, "Generate every dataset")
	generateCmd.Flags().StringP("interface", "i", "", "Target interface for invalid-values: api, cli, ui")
	generateCmd.Flags().IntP("length", "l", 0, "Fixed length for the strings dataset")
	generateCmd.Flags().StringP("format", "f", "", "Output format: text, json, yaml (default from config)")
	generateCmd.Flags().StringP("output", "o", "", "Write to file instead of stdout")
	generateCmd.Flags().StringP("encode", "e", generator.EncodeNone, "Encode string values: none, url, double_url, base64, hex, unicode, json_wrap, array")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")
	ifaceName, _ := cmd.Flags().GetString("interface")
	length, _ := cmd.Flags().GetInt("length")
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")
	encoding, _ := cmd.Flags().GetString("encode")

	iface, err := parseInterface(ifaceName)
	if err != nil {
		return err
	}
	if format == "" {
		format = cfg.Output.Format
	}

	names := args
	if all {
		names = nil
		for _, info := range datafactory.Datasets() {
			names = append(names, info.Name)
		}
	}
	if len(names) == 0 {
		return fmt.Errorf("no dataset given, run 'edgedata list' to see them or pass --all")
	}

	sets, err := buildDatasets(newFactory(), names, iface, length, encoding)
	if err != nil {
		return err
	}

	data, err := reporter.ExportDatasets(sets, format)
	if err != nil {
		return err
	}

	if output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := utils.WriteFile(output, data); err != nil {
		return err
	}
	utils.Success.Printf("Saved %d datasets to %s\n", len(sets), output)
	return nil
}

func buildDatasets(f *datafactory.Factory, names []string, iface datafactory.Interface, length int, encoding string) ([]reporter.Dataset, error) {
	encoder := generator.NewEncodingEngine()

	var sets []reporter.Dataset
	for _, name := range names {
		info, err := datafactory.Lookup(name)
		if err != nil {
			return nil, err
		}

		var values []any
		if name == "strings" && length > 0 {
			for _, s := range f.GenerateStrings(length) {
				values = append(values, s)
			}
		} else {
			values, err = f.Dataset(name, iface)
			if err != nil {
				return nil, err
			}
		}

		if encoding != generator.EncodeNone {
			for i, v := range values {
				if s, ok := v.(string); ok {
					values[i] = encoder.Encode(s, encoding)
				}
			}
		}

		utils.Debug.Printf("%s: %d values\n", name, len(values))
		sets = append(sets, reporter.NewDataset(name, info.Expect.String(), values))
	}
	return sets, nil
}
