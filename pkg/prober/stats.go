package prober

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/pterm/pterm"
)

// Stats tracks probe statistics in real-time
type Stats struct {
	TotalRequests int64
	AcceptedCount int64
	RejectedCount int64
	FailedCount   int64
	MismatchCount int64
	StartTime     time.Time
}

func NewStats() *Stats {
	return &Stats{
		StartTime: time.Now(),
	}
}

func (s *Stats) IncrementTotal() {
	atomic.AddInt64(&s.TotalRequests, 1)
}

func (s *Stats) IncrementAccepted() {
	atomic.AddInt64(&s.AcceptedCount, 1)
}

func (s *Stats) IncrementRejected() {
	atomic.AddInt64(&s.RejectedCount, 1)
}

func (s *Stats) IncrementFailed() {
	atomic.AddInt64(&s.FailedCount, 1)
}

func (s *Stats) IncrementMismatch() {
	atomic.AddInt64(&s.MismatchCount, 1)
}

// GetRPS calculates requests per second
func (s *Stats) GetRPS() float64 {
	elapsed := time.Since(s.StartTime).Seconds()
	if elapsed == 0 {
		return 0
	}
	return float64(atomic.LoadInt64(&s.TotalRequests)) / elapsed
}

func (s *Stats) GetElapsed() time.Duration {
	return time.Since(s.StartTime)
}

func (s *Stats) GetTotal() int64 {
	return atomic.LoadInt64(&s.TotalRequests)
}

func (s *Stats) GetMismatchCount() int64 {
	return atomic.LoadInt64(&s.MismatchCount)
}

func (s *Stats) GetFailedCount() int64 {
	return atomic.LoadInt64(&s.FailedCount)
}

// Print displays stats in a formatted table
func (s *Stats) Print() {
	pterm.DefaultSection.Println("Probe Statistics")

	tableData := pterm.TableData{
		{"Metric", "Value"},
		{"Total Requests", fmt.Sprintf("%d", atomic.LoadInt64(&s.TotalRequests))},
		{"Accepted", fmt.Sprintf("%d", atomic.LoadInt64(&s.AcceptedCount))},
		{"Rejected", fmt.Sprintf("%d", atomic.LoadInt64(&s.RejectedCount))},
		{"Failed", fmt.Sprintf("%d", atomic.LoadInt64(&s.FailedCount))},
		{"Mismatches", pterm.LightRed(fmt.Sprintf("%d", atomic.LoadInt64(&s.MismatchCount)))},
		{"RPS", fmt.Sprintf("%.2f", s.GetRPS())},
		{"Elapsed", s.GetElapsed().Round(time.Second).String()},
	}

	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}

// Summary returns a compact one-line summary
func (s *Stats) Summary() string {
	return fmt.Sprintf("Requests: %d | Mismatches: %d | Failed: %d | RPS: %.1f | Time: %s",
		s.GetTotal(), s.GetMismatchCount(), s.GetFailedCount(), s.GetRPS(), s.GetElapsed().Round(time.Second))
}
