package planner

import (
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// DefaultAllowance is the yearly vacation allowance in days
const DefaultAllowance = 28

// Balance is a snapshot of allowance usage
type Balance struct {
	Allowance    int     `yaml:"allowance"`
	UsedDays     int     `yaml:"used_days"`
	Remaining    int     `yaml:"remaining_days"`
	Overage      int     `yaml:"overage"`
	FullyPlanned bool    `yaml:"fully_planned"`
	Progress     float64 `yaml:"progress_percent"` // capped at 100
}

// ComputeBalance derives the balance from an allowance and the days used
func ComputeBalance(allowance, used int) Balance {
	b := Balance{
		Allowance:    allowance,
		UsedDays:     used,
		Remaining:    max(0, allowance-used),
		Overage:      max(0, used-allowance),
		FullyPlanned: used == allowance,
	}

	if allowance > 0 {
		b.Progress = math.Min(100, float64(used)/float64(allowance)*100)
	}

	return b
}

// ParseAllowance coerces user input into an allowance.
// Anything that is not a non-negative integer yields DefaultAllowance and ok=false.
func ParseAllowance(raw any) (days int, ok bool) {
	var (
		n   int
		err error
	)

	switch v := raw.(type) {
	case nil, bool:
		return DefaultAllowance, false
	case string:
		n, err = strconv.Atoi(strings.TrimSpace(v))
	default:
		n, err = cast.ToIntE(v)
	}

	if err != nil || n < 0 {
		return DefaultAllowance, false
	}

	return n, true
}
