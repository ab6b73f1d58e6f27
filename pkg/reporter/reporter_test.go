package reporter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"edgedata/pkg/datafactory"
	"edgedata/pkg/prober"
	"edgedata/pkg/validator"
)

func sampleFinding() *prober.Result {
	return &prober.Result{
		Job: &prober.Job{
			ID:      3,
			Dataset: "invalid-values",
			Expect:  datafactory.ExpectReject,
			Value:   "\t",
		},
		Expect:     "reject",
		StatusCode: 201,
		RequestID:  "550e8400-e29b-41d4-a716-446655440000",
		Accepted:   true,
		Mismatch:   true,
		Classes:    validator.Classes("\t"),
		Duration:   100 * time.Millisecond,
		Evidence:   `{"id":1,"name":"|"}`,
	}
}

func TestGenerateReportPermissions(t *testing.T) {
	for _, format := range []string{FormatJSON, FormatYAML, FormatMarkdown} {
		t.Run(format, func(t *testing.T) {
			reportPath := filepath.Join(t.TempDir(), "report."+format)

			r := NewReporter(format)
			r.AddFinding(sampleFinding())

			if err := r.GenerateReport(reportPath); err != nil {
				t.Fatalf("GenerateReport failed: %v", err)
			}

			info, err := os.Stat(reportPath)
			if err != nil {
				t.Fatalf("Failed to stat report file: %v", err)
			}

			mode := info.Mode().Perm()
			if mode != 0600 {
				t.Errorf("Expected file permissions 0600 (rw-------), got %04o", mode)
			}
		})
	}
}

func TestRenderJSON(t *testing.T) {
	r := NewReporter(FormatJSON)
	r.Target = "https://satellite.example.com/api/organizations"
	r.AddFinding(sampleFinding())

	data, err := r.Render()
	require.NoError(t, err)

	var decoded struct {
		Target   string `json:"target"`
		Findings []struct {
			Expect   string   `json:"expect"`
			Mismatch bool     `json:"mismatch"`
			Classes  []string `json:"classes"`
			Job      struct {
				Dataset string `json:"dataset"`
				Value   string `json:"value"`
			} `json:"job"`
		} `json:"findings"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, r.Target, decoded.Target)
	require.Len(t, decoded.Findings, 1)
	assert.Equal(t, "\t", decoded.Findings[0].Job.Value)
	assert.Equal(t, []string{validator.ClassBlank}, decoded.Findings[0].Classes)
}

func TestRenderMarkdown(t *testing.T) {
	r := NewReporter(FormatMarkdown)
	data, err := r.Render()
	require.NoError(t, err)
	assert.Contains(t, string(data), "No mismatches found.")

	r.AddFinding(sampleFinding())
	data, err = r.Render()
	require.NoError(t, err)
	assert.Contains(t, string(data), `| invalid-values | "\t" | reject | 201 | blank |`)
}

func TestMarkdownCellMultiByte(t *testing.T) {
	cell := markdownCell(fmt.Sprintf("%q", strings.Repeat("新用戶", 100)))
	assert.True(t, utf8.ValidString(cell))
	assert.Equal(t, 60, utf8.RuneCountInString(cell))
	assert.True(t, strings.HasSuffix(cell, "..."))

	assert.Equal(t, `"a\|b"`, markdownCell(`"a|b"`))
}

func TestRenderUnknownFormat(t *testing.T) {
	_, err := NewReporter("xml").Render()
	assert.Error(t, err)
}

func TestExportDatasets(t *testing.T) {
	sets := []Dataset{
		NewDataset("invalid-ids", "reject", []any{"abc", nil, "", -1}),
	}

	text, err := ExportDatasets(sets, FormatText)
	require.NoError(t, err)
	assert.Equal(t, []string{`"abc"`, "<nil>", `""`, "-1"}, strings.Split(strings.TrimSpace(string(text)), "\n"))

	data, err := ExportDatasets(sets, FormatYAML)
	require.NoError(t, err)
	var decoded []Dataset
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "invalid-ids", decoded[0].Name)
	assert.Equal(t, []string{validator.ClassNull}, decoded[0].Values[1].Classes)

	data, err = ExportDatasets(sets, FormatJSON)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))

	_, err = ExportDatasets(sets, "csv")
	assert.Error(t, err)
}
