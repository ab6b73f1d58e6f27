package prober

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edgedata/pkg/client"
	"edgedata/pkg/datafactory"
	"edgedata/pkg/utils"
	"edgedata/pkg/validator"
)

// nameServer accepts names the way the product does, except that it
// also accepts blank names when lenient is set.
func nameServer(t *testing.T, lenient bool) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		name, _ := body["name"].(string)
		if validator.ValidName(name) || (lenient && name != "" && strings.TrimSpace(name) == "") {
			w.WriteHeader(http.StatusCreated)
			return
		}
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"name is invalid"}`))
	}))
}

func newTestEngine(t *testing.T, url string) *Engine {
	t.Helper()
	cfg := utils.DefaultConfig().Probe
	cfg.RateLimit = 0
	cfg.MaxRetries = 0

	c, err := client.NewClient(url, cfg)
	require.NoError(t, err)
	return NewEngine(c, 3, Target{Method: http.MethodPost, Path: "/api/organizations", Field: "name"})
}

func TestBuildJobs(t *testing.T) {
	f := datafactory.New(datafactory.WithSeed(1))

	jobs, err := BuildJobs(f, []string{"valid-names", "invalid-values"}, datafactory.InterfaceUI)
	require.NoError(t, err)
	require.Len(t, jobs, 15+9)

	for i, job := range jobs {
		assert.Equal(t, i, job.ID)
	}
	assert.Equal(t, datafactory.ExpectAccept, jobs[0].Expect)
	assert.Equal(t, datafactory.ExpectReject, jobs[len(jobs)-1].Expect)

	_, err = BuildJobs(f, []string{"missing"}, datafactory.InterfaceDefault)
	assert.ErrorIs(t, err, datafactory.ErrUnknownDataset)
}

func TestRunNoMismatches(t *testing.T) {
	srv := nameServer(t, false)
	defer srv.Close()

	f := datafactory.New(datafactory.WithSeed(3))
	jobs, err := BuildJobs(f, []string{"valid-names", "invalid-names", "invalid-values"}, datafactory.InterfaceAPI)
	require.NoError(t, err)

	e := newTestEngine(t, srv.URL)
	results := e.Run(context.Background(), jobs)

	require.Len(t, results, len(jobs))
	for i, r := range results {
		assert.Same(t, jobs[i], r.Job)
		assert.False(t, r.Mismatch, "unexpected mismatch for %q", r.Job.Value)
		assert.NotEmpty(t, r.RequestID)
	}
	assert.Equal(t, int64(len(jobs)), e.Stats.GetTotal())
	assert.Zero(t, e.Stats.GetMismatchCount())
}

func TestRunFlagsMismatches(t *testing.T) {
	srv := nameServer(t, true)
	defer srv.Close()

	f := datafactory.New()
	jobs, err := BuildJobs(f, []string{"invalid-values"}, datafactory.InterfaceAPI)
	require.NoError(t, err)

	e := newTestEngine(t, srv.URL)
	results := e.Run(context.Background(), jobs)
	require.Len(t, results, 10)

	var mismatched []any
	for _, r := range results {
		if r.Mismatch {
			mismatched = append(mismatched, r.Job.Value)
			assert.Equal(t, http.StatusCreated, r.StatusCode)
		}
	}
	assert.ElementsMatch(t, []any{" ", "\t"}, mismatched)
	assert.Equal(t, int64(2), e.Stats.GetMismatchCount())
}

func TestRunTransportFailure(t *testing.T) {
	srv := nameServer(t, false)
	url := srv.URL
	srv.Close()

	jobs, err := BuildJobs(datafactory.New(datafactory.WithOneDatapoint(true)), []string{"valid-names"}, datafactory.InterfaceDefault)
	require.NoError(t, err)

	e := newTestEngine(t, url)
	results := e.Run(context.Background(), jobs)

	require.Len(t, results, 1)
	assert.NotEmpty(t, results[0].Error)
	assert.False(t, results[0].Mismatch)
	assert.Equal(t, int64(1), e.Stats.GetFailedCount())
}

func TestRunCancelled(t *testing.T) {
	srv := nameServer(t, false)
	defer srv.Close()

	jobs, err := BuildJobs(datafactory.New(), []string{"valid-names"}, datafactory.InterfaceDefault)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := newTestEngine(t, srv.URL)
	results := e.Run(ctx, jobs)
	assert.LessOrEqual(t, len(results), len(jobs))
	for _, r := range results {
		assert.NotNil(t, r.Job)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd...", truncate("abcdefghij", 7))

	cjk := strings.Repeat("新用戶", 200)
	got := truncate(cjk, 512)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 512, utf8.RuneCountInString(got))
	assert.Equal(t, "新用戶...", truncate("新用戶νέος", 6))
	assert.Equal(t, "新用戶", truncate("新用戶", 3))
}
