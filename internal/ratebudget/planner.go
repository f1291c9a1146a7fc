// Package ratebudget spreads attachment-sync jobs in time so that the jobs created by one
// reconciliation run stay inside a provider's calls-per-minute budget once they execute.
//
// Jobs are delayed at creation instead of being throttled at call time, so a dequeued job
// never holds a worker slot while waiting. The scheme assumes one run owns the provider's
// budget for its window: runs for the same provider on behalf of different teams are not
// coordinated with each other.
package ratebudget

import (
	"time"

	"github.com/grachmannico95/accounting-sync/internal/domain"
)

const (
	DefaultCallsPerMinute = 60

	// 1.1 safety margin, kept as a fraction so the ceiling is computed exactly.
	marginNum = 11
	marginDen = 10
)

var callsPerMinute = map[domain.ProviderID]int{
	domain.ProviderXero:       60,
	domain.ProviderQuickBooks: 500,
	domain.ProviderFortnox:    300,
}

// CallsPerMinute returns the static budget for provider, or DefaultCallsPerMinute.
func CallsPerMinute(provider domain.ProviderID) int {
	if cpm, ok := callsPerMinute[provider]; ok && cpm > 0 {
		return cpm
	}
	return DefaultCallsPerMinute
}

// Spacing is the gap between two consecutive job starts for provider:
// ceil(60000 / callsPerMinute * 1.1) milliseconds.
func Spacing(provider domain.ProviderID) time.Duration {
	num := int64(60000 * marginNum)
	den := int64(CallsPerMinute(provider) * marginDen)
	ms := (num + den - 1) / den
	return time.Duration(ms) * time.Millisecond
}

// Delay returns the start delay of the jobIndex-th job of a run.
func Delay(provider domain.ProviderID, jobIndex int) time.Duration {
	if jobIndex <= 0 {
		return 0
	}
	return time.Duration(jobIndex) * Spacing(provider)
}

// JobIndex hands out increasing job indexes for one orchestrator run. Every phase of the
// run that schedules attachment jobs must draw from the same JobIndex.
type JobIndex struct {
	next int
}

// Next returns the current index and advances the counter. The first call returns 0.
func (j *JobIndex) Next() int {
	i := j.next
	j.next++
	return i
}

// Issued is the number of indexes handed out so far.
func (j *JobIndex) Issued() int {
	return j.next
}
