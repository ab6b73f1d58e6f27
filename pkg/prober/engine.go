package prober

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"edgedata/pkg/datafactory"
	"edgedata/pkg/validator"
)

// Sender is the transport the engine sends values through.
type Sender interface {
	Send(ctx context.Context, method, path string, body any) (*resty.Response, string, error)
}

// Target is the endpoint and JSON field values are written to.
type Target struct {
	Method string
	Path   string
	Field  string
}

type Job struct {
	ID      int                     `json:"id"`
	Dataset string                  `json:"dataset"`
	Expect  datafactory.Expectation `json:"-"`
	Value   any                     `json:"value"`
}

type Result struct {
	Job        *Job          `json:"job"`
	Expect     string        `json:"expect"`
	StatusCode int           `json:"status_code"`
	RequestID  string        `json:"request_id"`
	Accepted   bool          `json:"accepted"`
	Mismatch   bool          `json:"mismatch"`
	Classes    []string      `json:"classes"`
	Duration   time.Duration `json:"duration"`
	Evidence   string        `json:"evidence,omitempty"`
	Error      string        `json:"error,omitempty"`
}

// Engine fans jobs out to a fixed pool of workers.
type Engine struct {
	Client  Sender
	Workers int
	Target  Target
	Queue   chan *Job
	Results chan *Result
	Stats   *Stats

	ctx context.Context
	wg  sync.WaitGroup
}

func NewEngine(c Sender, workers int, target Target) *Engine {
	if workers <= 0 {
		workers = 1
	}
	return &Engine{
		Client:  c,
		Workers: workers,
		Target:  target,
		Queue:   make(chan *Job, workers*10),
		Results: make(chan *Result, workers*10),
		Stats:   NewStats(),
	}
}

func (e *Engine) Start(ctx context.Context) {
	e.ctx = ctx
	for i := 0; i < e.Workers; i++ {
		e.wg.Add(1)
		go e.worker()
	}
}

// Submit queues a job; it returns false once the context is done.
func (e *Engine) Submit(job *Job) bool {
	select {
	case <-e.ctx.Done():
		return false
	case e.Queue <- job:
		return true
	}
}

func (e *Engine) CloseQueue() {
	close(e.Queue)
}

// WaitAndClose waits for the workers to drain the queue and closes Results.
func (e *Engine) WaitAndClose() {
	e.wg.Wait()
	close(e.Results)
}

// Run submits jobs, collects every result and returns them in job order.
// Jobs skipped because ctx was cancelled have no result.
func (e *Engine) Run(ctx context.Context, jobs []*Job) []*Result {
	pos := make(map[*Job]int, len(jobs))
	for i, job := range jobs {
		pos[job] = i
	}

	e.Start(ctx)
	go func() {
		for _, job := range jobs {
			if !e.Submit(job) {
				break
			}
		}
		e.CloseQueue()
		e.WaitAndClose()
	}()

	slots := make([]*Result, len(jobs))
	for r := range e.Results {
		slots[pos[r.Job]] = r
	}

	results := slots[:0]
	for _, r := range slots {
		if r != nil {
			results = append(results, r)
		}
	}
	return results
}

func (e *Engine) worker() {
	defer e.wg.Done()

	for job := range e.Queue {
		e.Results <- e.processJob(job)
	}
}

func (e *Engine) processJob(job *Job) *Result {
	result := &Result{
		Job:     job,
		Expect:  job.Expect.String(),
		Classes: validator.Classes(job.Value),
	}
	e.Stats.IncrementTotal()

	start := time.Now()
	body := map[string]any{e.Target.Field: job.Value}
	resp, requestID, err := e.Client.Send(e.ctx, e.Target.Method, e.Target.Path, body)
	result.Duration = time.Since(start)
	result.RequestID = requestID
	if err != nil {
		e.Stats.IncrementFailed()
		result.Error = err.Error()
		return result
	}

	result.StatusCode = resp.StatusCode()
	result.Accepted = result.StatusCode >= 200 && result.StatusCode < 300
	if result.Accepted {
		e.Stats.IncrementAccepted()
	} else {
		e.Stats.IncrementRejected()
	}

	switch job.Expect {
	case datafactory.ExpectAccept:
		result.Mismatch = !result.Accepted
	case datafactory.ExpectReject:
		result.Mismatch = result.Accepted
	}
	if result.Mismatch {
		e.Stats.IncrementMismatch()
		result.Evidence = truncate(resp.String(), 512)
	}
	return result
}

// BuildJobs expands the named datasets into jobs with sequential IDs.
func BuildJobs(f *datafactory.Factory, names []string, iface datafactory.Interface) ([]*Job, error) {
	var jobs []*Job
	for _, name := range names {
		info, err := datafactory.Lookup(name)
		if err != nil {
			return nil, err
		}
		values, err := f.Dataset(name, iface)
		if err != nil {
			return nil, fmt.Errorf("build %s: %w", name, err)
		}
		for _, v := range values {
			jobs = append(jobs, &Job{
				ID:      len(jobs),
				Dataset: name,
				Expect:  info.Expect,
				Value:   v,
			})
		}
	}
	return jobs, nil
}

// truncate shortens s to at most maxLen runes.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
