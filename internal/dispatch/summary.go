package dispatch

import "fmt"

// Summary aggregates the outcomes of one completed dispatch.
// Failed holds the names of failed targets in request order, never in
// completion order, so repeated runs report identically.
type Summary struct {
	Total     int
	Succeeded int
	Failed    []string
}

// Summarize reconciles outcomes against the requested target list.
//
// Every requested target must have exactly one outcome and every
// outcome must belong to a requested target; anything else indicates a
// dispatch engine defect and is returned as an error rather than
// folded into the summary.
func Summarize(targets []string, outcomes []Outcome) (Summary, error) {
	byTarget := make(map[string]Outcome, len(outcomes))
	for _, o := range outcomes {
		if _, dup := byTarget[o.Target]; dup {
			return Summary{}, fmt.Errorf("summarize: multiple outcomes for target %q", o.Target)
		}
		byTarget[o.Target] = o
	}

	s := Summary{Total: len(targets)}
	for _, target := range targets {
		o, ok := byTarget[target]
		if !ok {
			return Summary{}, fmt.Errorf("summarize: missing outcome for target %q", target)
		}
		delete(byTarget, target)
		if !o.OK {
			s.Failed = append(s.Failed, target)
		}
	}

	for target := range byTarget {
		return Summary{}, fmt.Errorf("summarize: outcome for unrequested target %q", target)
	}

	s.Succeeded = s.Total - len(s.Failed)
	return s, nil
}
