package reporter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"edgedata/pkg/prober"
	"edgedata/pkg/utils"
)

// Output formats.
const (
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatMarkdown = "markdown"
	FormatText     = "text"
)

// Reporter collects probe results that went against expectation.
type Reporter struct {
	Findings []*prober.Result
	Format   string
	Target   string
}

type Report struct {
	ScanTime time.Time        `json:"scan_time" yaml:"scan_time"`
	Target   string           `json:"target" yaml:"target"`
	Findings []*prober.Result `json:"findings" yaml:"findings"`
}

func NewReporter(format string) *Reporter {
	return &Reporter{
		Format: format,
	}
}

func (r *Reporter) AddFinding(f *prober.Result) {
	r.Findings = append(r.Findings, f)
}

// Render encodes the report in the reporter's format.
func (r *Reporter) Render() ([]byte, error) {
	report := Report{
		ScanTime: time.Now().UTC(),
		Target:   r.Target,
		Findings: r.Findings,
	}

	switch r.Format {
	case FormatJSON, "":
		return json.MarshalIndent(report, "", "  ")
	case FormatYAML:
		return yaml.Marshal(report)
	case FormatMarkdown:
		return r.markdown(report), nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", r.Format)
	}
}

func (r *Reporter) GenerateReport(filename string) error {
	data, err := r.Render()
	if err != nil {
		return err
	}
	return utils.WriteFile(filename, data)
}

func (r *Reporter) markdown(report Report) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "# Probe Report\n\n")
	fmt.Fprintf(&b, "- Target: `%s`\n", report.Target)
	fmt.Fprintf(&b, "- Time: %s\n", report.ScanTime.Format(time.RFC3339))
	fmt.Fprintf(&b, "- Findings: %d\n\n", len(report.Findings))

	if len(report.Findings) == 0 {
		b.WriteString("No mismatches found.\n")
		return b.Bytes()
	}

	b.WriteString("| Dataset | Value | Expected | Status | Classes | Request ID |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for _, f := range report.Findings {
		fmt.Fprintf(&b, "| %s | %s | %s | %d | %s | %s |\n",
			f.Job.Dataset,
			markdownCell(fmt.Sprintf("%q", fmt.Sprint(f.Job.Value))),
			f.Expect,
			f.StatusCode,
			strings.Join(f.Classes, ", "),
			f.RequestID,
		)
	}
	return b.Bytes()
}

func markdownCell(s string) string {
	if r := []rune(s); len(r) > 60 {
		s = string(r[:57]) + "..."
	}
	return strings.ReplaceAll(s, "|", `\|`)
}
