package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"edgedata/pkg/client"
	"edgedata/pkg/prober"
	"edgedata/pkg/reporter"
	"edgedata/pkg/utils"
)

var probeCmd = &cobra.Command{
	Use:   "probe [dataset...]",
	Short: "Send datasets to an API and check how they are validated",
	Long: `Probe a create/update endpoint with dataset values.

Each value is sent as a JSON body {FIELD: value}:
  edgedata probe -u https://satellite.example.com -p /api/organizations \
      --user admin --password changeme valid-names invalid-values

Without dataset arguments valid-names and invalid-values are sent.

The prober will:
  1. Build the selected datasets
  2. Send every value through a rate-limited worker pool
  3. Expect 2xx for valid datasets and a non-2xx status for invalid ones
  4. Report every value the target treated against expectation`,
	RunE: runProbe,
}

var defaultProbeDatasets = []string{"valid-names", "invalid-values"}

func init() {
	rootCmd.AddCommand(probeCmd)

	probeCmd.Flags().StringP("url", "u", "", "Base URL of the target (required)")
	probeCmd.Flags().StringP("path", "p", "/", "Endpoint path values are sent to")
	probeCmd.Flags().StringP("field", "F", "", "JSON field the value is written to (default from config)")
	probeCmd.Flags().StringP("method", "m", "", "HTTP method: POST, PUT, PATCH (default from config)")
	probeCmd.Flags().StringP("interface", "i", "api", "Target interface for invalid-values: api, cli, ui")
	probeCmd.Flags().IntP("threads", "t", 0, "Number of concurrent workers (default from config)")
	probeCmd.Flags().Int("rate", 0, "Max requests per second (default from config)")
	probeCmd.Flags().String("user", "", "Basic auth user")
	probeCmd.Flags().String("password", "", "Basic auth password")
	probeCmd.Flags().StringArrayP("header", "H", nil, "Custom headers (e.g. -H 'Authorization: Bearer token')")
	probeCmd.Flags().BoolP("insecure", "k", false, "Skip TLS verification")
	probeCmd.Flags().StringP("output", "o", "probe_report.json", "Output report file")
	probeCmd.Flags().String("format", "json", "Report format: json, yaml, markdown")

	probeCmd.MarkFlagRequired("url")
}

func runProbe(cmd *cobra.Command, args []string) error {
	baseURL, _ := cmd.Flags().GetString("url")
	path, _ := cmd.Flags().GetString("path")
	field, _ := cmd.Flags().GetString("field")
	method, _ := cmd.Flags().GetString("method")
	ifaceName, _ := cmd.Flags().GetString("interface")
	threads, _ := cmd.Flags().GetInt("threads")
	rateLimit, _ := cmd.Flags().GetInt("rate")
	user, _ := cmd.Flags().GetString("user")
	password, _ := cmd.Flags().GetString("password")
	customHeaders, _ := cmd.Flags().GetStringArray("header")
	insecure, _ := cmd.Flags().GetBool("insecure")
	outputFile, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")

	names := args
	if len(names) == 0 {
		names = defaultProbeDatasets
	}

	iface, err := parseInterface(ifaceName)
	if err != nil {
		return err
	}

	// Flags override config
	probeCfg := cfg.Probe
	if field != "" {
		probeCfg.Field = field
	}
	if method != "" {
		probeCfg.Method = strings.ToUpper(method)
	}
	if threads > 0 {
		probeCfg.Threads = threads
	}
	if rateLimit > 0 {
		probeCfg.RateLimit = rateLimit
	}
	if user != "" {
		probeCfg.Username = user
		probeCfg.Password = password
	}
	if insecure {
		probeCfg.VerifyTLS = false
	}

	utils.PrintCompactBanner(version)
	utils.Info.Printf("Target: %s %s%s\n", probeCfg.Method, baseURL, path)
	utils.Info.Printf("Field: %s | Threads: %d | Interface: %s\n", probeCfg.Field, probeCfg.Threads, iface)

	c, err := client.NewClient(baseURL, probeCfg)
	if err != nil {
		return err
	}

	for _, h := range customHeaders {
		parts := strings.SplitN(h, ":", 2)
		if len(parts) == 2 {
			key := strings.TrimSpace(parts[0])
			val := strings.TrimSpace(parts[1])
			c.SetDefaultHeader(key, val)
			utils.Info.Printf("Custom header: %s\n", key)
		}
	}

	jobs, err := prober.BuildJobs(newFactory(), names, iface)
	if err != nil {
		return err
	}
	utils.Info.Printf("Generated %d values from %d datasets\n", len(jobs), len(names))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	engine := prober.NewEngine(c, probeCfg.Threads, prober.Target{
		Method: probeCfg.Method,
		Path:   path,
		Field:  probeCfg.Field,
	})
	engine.Start(ctx)

	progressBar, _ := pterm.DefaultProgressbar.
		WithTotal(len(jobs)).
		WithTitle("Probing").
		WithShowElapsedTime(true).
		WithShowCount(true).
		Start()

	go func() {
		for _, job := range jobs {
			if !engine.Submit(job) {
				utils.Warning.Println("Interrupt received, stopping probe...")
				break
			}
		}
		engine.CloseQueue()
		engine.WaitAndClose()
	}()

	rep := reporter.NewReporter(format)
	rep.Target = baseURL + path
	for result := range engine.Results {
		progressBar.Increment()

		if result.Error != "" {
			utils.Warning.Printf("%s %q: %s\n", result.Job.Dataset, fmt.Sprint(result.Job.Value), result.Error)
			continue
		}
		if result.Mismatch {
			progressBar.UpdateTitle(pterm.Red("MISMATCH FOUND!"))
			utils.PrintMismatch(result.Job.Dataset, fmt.Sprint(result.Job.Value), result.StatusCode)
			rep.AddFinding(result)
		}
	}
	progressBar.Stop()

	engine.Stats.Print()

	if err := rep.GenerateReport(outputFile); err != nil {
		utils.Error.Printf("Failed to save report: %v\n", err)
	} else {
		utils.Success.Printf("Report saved to %s\n", outputFile)
	}

	if n := engine.Stats.GetMismatchCount(); n > 0 {
		return fmt.Errorf("%d values were not validated as expected", n)
	}
	if n := engine.Stats.GetFailedCount(); n > 0 {
		return fmt.Errorf("%d of %d requests failed", n, engine.Stats.GetTotal())
	}
	utils.Success.Println(engine.Stats.Summary())
	return nil
}
