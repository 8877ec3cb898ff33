// Package batch runs extraction plans in order, continuing past individual
// failures so one bad item never blocks unrelated extractions.
package batch

import (
	"splitkit/internal/extract"
	"splitkit/internal/plan"
)

// ItemResult is the outcome of one plan item. Exactly one of Result and Err
// is set.
type ItemResult struct {
	Index  int // 0-based position in the plan
	Item   plan.Item
	Result *extract.Result
	Err    error
}

// Summary aggregates a full run.
type Summary struct {
	Succeeded int
	Failed    int
	Results   []ItemResult
}

// AllOK reports whether every item succeeded.
func (s *Summary) AllOK() bool { return s.Failed == 0 }

// Failures returns only the failed item results, in plan order.
func (s *Summary) Failures() []ItemResult {
	var out []ItemResult
	for _, r := range s.Results {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}

// Observer is notified after each item finishes, before the next one starts.
// The CLI uses it to drive progress output without this package knowing
// about terminals.
type Observer func(ItemResult)

// Run executes the plan strictly in order. Each item is fully committed
// before the next begins, so a later item reading the same source sees every
// earlier item's effect (a move earlier in the plan shrinks line numbers for
// what follows). Failures are recorded and skipped, never fatal.
func Run(p plan.Plan, observe Observer) *Summary {
	s := &Summary{Results: make([]ItemResult, 0, len(p))}
	for i, item := range p {
		res, err := extract.Extract(item.Request())
		ir := ItemResult{Index: i, Item: item, Result: res, Err: err}
		if err != nil {
			s.Failed++
		} else {
			s.Succeeded++
		}
		s.Results = append(s.Results, ir)
		if observe != nil {
			observe(ir)
		}
	}
	return s
}
