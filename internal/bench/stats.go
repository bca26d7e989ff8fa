// Package bench aggregates solution measurements across iterations and
// renders the run summary.
package bench

import (
	"math"
	"sort"

	"github.com/abbasmoosajee07/challenge-utils/internal/runner"
)

// FileInfo describes the solution file a problem was measured with. The
// first recorded run wins, matching how the same file is measured on every
// iteration.
type FileInfo struct {
	Lang   string
	Lines  int
	SizeKB float64
}

// Collector accumulates measurements per problem across iterations.
type Collector struct {
	times map[int][]float64
	mems  map[int][]float64
	info  map[int]FileInfo
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{
		times: map[int][]float64{},
		mems:  map[int][]float64{},
		info:  map[int]FileInfo{},
	}
}

// Record adds one run's measurement.
func (c *Collector) Record(m runner.Measurement) {
	if _, ok := c.info[m.Problem]; !ok {
		c.info[m.Problem] = FileInfo{Lang: m.Lang, Lines: m.Lines, SizeKB: m.SizeKB}
	}
	c.times[m.Problem] = append(c.times[m.Problem], m.TimeMs)
	c.mems[m.Problem] = append(c.mems[m.Problem], m.MemoryMB)
}

// Len reports how many problems have at least one recorded run.
func (c *Collector) Len() int { return len(c.times) }

// Row is the aggregated result for one problem.
type Row struct {
	Problem int
	AvgTime float64
	StdTime float64
	TimePct float64
	AvgMem  float64
	StdMem  float64
	MemPct  float64
	Lang    string
	SizeKB  float64
	Lines   int
}

// Totals aggregates over all problems.
type Totals struct {
	Time    float64 // sum of per-problem average times
	TimeStd float64
	Memory  float64
	MemStd  float64
	SizeKB  float64
	Lines   int
}

// Summary is the full aggregation, sorted by problem number.
type Summary struct {
	Rows   []Row
	Totals Totals
}

// Summarize computes per-problem averages, deviations and shares of the
// total. Total deviations combine per-problem variances.
func (c *Collector) Summarize() Summary {
	problems := make([]int, 0, len(c.times))
	for p := range c.times {
		problems = append(problems, p)
	}
	sort.Ints(problems)

	var s Summary
	var timeVar, memVar float64
	for _, p := range problems {
		info := c.info[p]
		avgT, stdT := meanStd(c.times[p])
		avgM, stdM := meanStd(c.mems[p])
		s.Rows = append(s.Rows, Row{
			Problem: p,
			AvgTime: avgT, StdTime: stdT,
			AvgMem: avgM, StdMem: stdM,
			Lang: info.Lang, SizeKB: info.SizeKB, Lines: info.Lines,
		})
		s.Totals.Time += avgT
		s.Totals.Memory += avgM
		s.Totals.SizeKB += info.SizeKB
		s.Totals.Lines += info.Lines
		timeVar += stdT * stdT
		memVar += stdM * stdM
	}
	s.Totals.TimeStd = math.Sqrt(timeVar)
	s.Totals.MemStd = math.Sqrt(memVar)

	for i := range s.Rows {
		if s.Totals.Time > 0 {
			s.Rows[i].TimePct = s.Rows[i].AvgTime / s.Totals.Time * 100
		}
		if s.Totals.Memory > 0 {
			s.Rows[i].MemPct = s.Rows[i].AvgMem / s.Totals.Memory * 100
		}
	}
	return s
}

// meanStd returns the mean and population standard deviation.
func meanStd(xs []float64) (float64, float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean := sum / float64(len(xs))
	var sq float64
	for _, x := range xs {
		d := x - mean
		sq += d * d
	}
	return mean, math.Sqrt(sq / float64(len(xs)))
}
