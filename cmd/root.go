package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"edgedata/pkg/datafactory"
	"edgedata/pkg/utils"
)

const (
	defaultConfigPath = "configs/default.yaml"
	builtinConfig     = "built-in defaults"
)

var (
	cfgFile      string
	oneDatapoint bool
	seed         uint64
	debug        bool
	noColor      bool
	version      = "1.0.0"

	cfg *utils.Config
)

var rootCmd = &cobra.Command{
	Use:   "edgedata",
	Short: "Boundary test data generator",
	Long: `edgedata - boundary and equivalence-class datasets for parameterized tests.

Datasets cover empty, blank, over-long, unicode, HTML and malformed values for
names, emails, usernames, labels, environments and ids. With --one-datapoint
every dataset collapses to its first value for fast runs.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./"+defaultConfigPath+" when present)")
	rootCmd.PersistentFlags().BoolVar(&oneDatapoint, "one-datapoint", false, "return only the first value of every dataset")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "seed for randomized values (0 means random)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured output")
}

// loadConfig resolves configuration: defaults, then file, then environment,
// then explicitly set flags.
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	if src := configSource(); src == builtinConfig {
		cfg = utils.DefaultConfig()
	} else {
		cfg, err = utils.LoadConfig(src)
	}
	if err != nil {
		return err
	}

	if err := cfg.ApplyEnv(); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("one-datapoint") {
		cfg.DataFactory.RunOneDatapoint = oneDatapoint
	}
	if flags.Changed("seed") {
		cfg.DataFactory.Seed = seed
	}
	if flags.Changed("no-color") {
		cfg.Output.NoColor = noColor
	}

	utils.InitLogger(debug || cfg.Output.Verbose, cfg.Output.NoColor)
	utils.Debug.Printf("one-datapoint=%v seed=%d\n", cfg.DataFactory.RunOneDatapoint, cfg.DataFactory.Seed)
	return nil
}

// configSource names where the active configuration was read from.
func configSource() string {
	switch {
	case cfgFile != "":
		return cfgFile
	case utils.FileExists(defaultConfigPath):
		return defaultConfigPath
	default:
		return builtinConfig
	}
}

func newFactory() *datafactory.Factory {
	return datafactory.New(datafactory.WithSettings(cfg.DataFactory))
}

// parseInterface treats an empty flag as the default interface.
func parseInterface(s string) (datafactory.Interface, error) {
	if s == "" {
		return datafactory.InterfaceDefault, nil
	}
	return datafactory.ParseInterface(s)
}
