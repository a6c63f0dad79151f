package analytics

import (
	"strings"

	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/dataset"
)

// Voluntary departures at or past this tenure are a regrettable loss.
const regrettableTenureMonths = 12.0

// TurnoverPolicy decides which Exit Type values count as voluntary.
// Source datasets disagree on whether "Dropped" belongs here, so the
// set is configuration rather than a hard-coded rule.
type TurnoverPolicy struct {
	VoluntaryExitTypes []string
}

// DefaultTurnoverPolicy matches the dashboard's voluntary/involuntary
// split: Resigned and Dropped are voluntary, Terminated is not.
func DefaultTurnoverPolicy() TurnoverPolicy {
	return TurnoverPolicy{
		VoluntaryExitTypes: []string{dataset.ExitResigned, dataset.ExitDropped},
	}
}

// ParseTurnoverPolicy builds a policy from a comma-separated exit-type
// list, falling back to the default when the input is empty.
func ParseTurnoverPolicy(spec string) TurnoverPolicy {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return DefaultTurnoverPolicy()
	}
	var types []string
	for _, part := range strings.Split(spec, ",") {
		if part = strings.TrimSpace(part); part != "" {
			types = append(types, part)
		}
	}
	if len(types) == 0 {
		return DefaultTurnoverPolicy()
	}
	return TurnoverPolicy{VoluntaryExitTypes: types}
}

func (p TurnoverPolicy) isVoluntary(exitType string) bool {
	for _, t := range p.VoluntaryExitTypes {
		if exitType == t {
			return true
		}
	}
	return false
}

// Turnover classifies departures under the policy. The regrettable vs
// early-voluntary split needs tenure data; without it both stay 0
// while the voluntary/involuntary tallies remain valid.
func Turnover(d *dataset.Dataset, policy TurnoverPolicy) TurnoverBreakdown {
	var b TurnoverBreakdown
	departed := d.Departed()

	for _, e := range departed {
		if !policy.isVoluntary(e.ExitType) {
			b.Involuntary++
			continue
		}
		b.Voluntary++
		if !d.Derived.Tenure {
			continue
		}
		if e.Derived.TenureMonths >= regrettableTenureMonths {
			b.Regrettable++
		} else {
			b.EarlyVoluntary++
		}
	}

	b.RegrettableRate = round1(pct(b.Regrettable, len(departed)))
	return b
}
