package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/username/vacation-planner/internal/calendar"
	"github.com/username/vacation-planner/internal/planner"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func runPlan(t *testing.T, script string) (*planner.Session, string) {
	t.Helper()

	seq := 0
	session := planner.NewSession(calendar.MustDefault(), zap.NewNop(),
		planner.WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("p%d", seq)
		}),
		planner.WithColorSource(func() string { return "hsl(130, 70%, 50%)" }),
	)

	var out bytes.Buffer
	shell := newPlanShell(session, calendar.MustDefault(), &out, zap.NewNop())
	if err := shell.run(strings.NewReader(script)); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	return session, out.String()
}

func TestPlanShell_PickAndAdd(t *testing.T) {
	session, out := runPlan(t, `
pick 2026-05-11
hover 2026-05-01
pick 01.05.2026
add
`)

	periods := session.Periods()
	if len(periods) != 1 {
		t.Fatalf("Periods() count = %d, want 1\n%s", len(periods), out)
	}
	if periods[0].Range.String() != "2026-05-01..2026-05-11" || periods[0].VacationDays != 8 {
		t.Errorf("period = %+v, want 2026-05-01..2026-05-11 with 8 vacation days", periods[0])
	}
	if !strings.Contains(out, "Vacation days:  8") {
		t.Errorf("output missing preview metrics:\n%s", out)
	}
	if !strings.Contains(out, "Used: 8") {
		t.Errorf("output missing balance:\n%s", out)
	}
}

func TestPlanShell_AddWithoutSelection(t *testing.T) {
	session, out := runPlan(t, "pick 2026-05-11\nadd\n")

	if len(session.Periods()) != 0 {
		t.Errorf("Periods() count = %d, want 0", len(session.Periods()))
	}
	if !strings.Contains(out, "pick both a start and an end date first") {
		t.Errorf("output missing invalid-commit message:\n%s", out)
	}
	if _, ok := session.Selection().(planner.Pending); !ok {
		t.Errorf("state = %T, want Pending", session.Selection())
	}
}

func TestPlanShell_RemoveAndAllowance(t *testing.T) {
	session, out := runPlan(t, `
allowance 10
pick 2026-08-03
pick 2026-08-09
add
pick 2026-09-07
pick 2026-09-13
add
remove 1
remove p9
allowance nonsense
balance
quit
pick 2026-10-01
`)

	periods := session.Periods()
	if len(periods) != 1 || periods[0].ID != "p2" {
		t.Fatalf("Periods() = %+v, want only p2", periods)
	}
	if !strings.Contains(out, "Allowance exceeded by 4 day(s)") {
		t.Errorf("output missing overage warning:\n%s", out)
	}
	if !strings.Contains(out, "Nothing to remove for p9") {
		t.Errorf("output missing no-op removal:\n%s", out)
	}
	if session.Allowance() != planner.DefaultAllowance {
		t.Errorf("Allowance() = %d, want default after invalid input", session.Allowance())
	}
	if _, ok := session.Selection().(planner.Empty); !ok {
		t.Errorf("commands after quit were executed: state = %T", session.Selection())
	}
}

func TestPlanShell_Errors(t *testing.T) {
	_, out := runPlan(t, `
hover 2026-01-01
pick tomorrow
month 13
dance
remove 3
pick 2027-02-01
`)

	for _, want := range []string{
		"hover only works after picking a start date",
		`unrecognized date "tomorrow"`,
		`month must be 1..12, got "13"`,
		`unknown command "dance"`,
		"no period number 3",
		"Note: 2027-02-01 is outside 2026",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPlanShell_Month(t *testing.T) {
	_, out := runPlan(t, `
pick 2026-06-10
pick 2026-06-14
add
pick 2026-06-22
month 6
`)

	// June 2026 starts on Monday.
	for _, want := range []string{
		"June 2026",
		"  1   2   3   4   5   6.  7.",
		"  8   9  10# 11# 12# 13# 14#",
		" 22* ",
		" 29  30 ",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("month grid missing %q:\n%s", want, out)
		}
	}
}

func TestPlanShell_Export(t *testing.T) {
	_, out := runPlan(t, `
pick 2026-01-01
pick 2026-01-11
add
export
`)

	idx := strings.Index(out, "year: 2026")
	if idx < 0 {
		t.Fatalf("export output missing:\n%s", out)
	}

	var snapshot exportSnapshot
	if err := yaml.Unmarshal([]byte(out[idx:]), &snapshot); err != nil {
		t.Fatalf("export is not valid YAML: %v\n%s", err, out[idx:])
	}

	if len(snapshot.Periods) != 1 {
		t.Fatalf("exported periods = %d, want 1", len(snapshot.Periods))
	}
	p := snapshot.Periods[0]
	if p.Start != "2026-01-01" || p.End != "2026-01-11" {
		t.Errorf("exported range = %s..%s", p.Start, p.End)
	}
	if p.VacationDays != 2 || p.CalendarDays != 11 || p.WorkingDays != 0 {
		t.Errorf("exported metrics = %+v, want 2 vacation / 11 calendar / 0 working", p.Metrics)
	}
	if snapshot.Balance.UsedDays != 2 || snapshot.Balance.Remaining != 26 {
		t.Errorf("exported balance = %+v", snapshot.Balance)
	}
}
