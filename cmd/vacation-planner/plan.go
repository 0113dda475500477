package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/vacation-planner/internal/calendar"
	"github.com/username/vacation-planner/internal/planner"
	"github.com/username/vacation-planner/pkg/dateutil"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const planHelp = `Commands:
  pick DATE        pick a start or end date (YYYY-MM-DD or DD.MM.YYYY)
  hover DATE       preview the range up to DATE while a start is picked
  cancel           drop the current selection
  add              add the selected range as a vacation period
  remove ID|N      remove a period by id or by list number
  allowance DAYS   set the yearly allowance (invalid input resets to 28)
  list             list vacation periods
  balance          show allowance usage
  month N          show month N (1-12) of the calendar
  export           print periods and balance as YAML
  help             show this help
  quit             leave
`

func planCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Start an interactive planning session reading commands from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := loadCalendar()
			if err != nil {
				return err
			}

			session := planner.NewSession(cal, logger, planner.WithAllowance(cfg.Planner.Allowance))
			p := newPlanShell(session, cal, cmd.OutOrStdout(), logger)

			return p.run(cmd.InOrStdin())
		},
	}
}

// planShell turns text lines into session events
type planShell struct {
	session *planner.Session
	cal     *calendar.Year
	out     io.Writer
	logger  *zap.Logger
}

func newPlanShell(session *planner.Session, cal *calendar.Year, out io.Writer, logger *zap.Logger) *planShell {
	return &planShell{
		session: session,
		cal:     cal,
		out:     out,
		logger:  logger,
	}
}

var errQuit = errors.New("quit")

func (p *planShell) run(in io.Reader) error {
	fmt.Fprintf(p.out, "🗓  Vacation planner %d. Type 'help' for commands.\n", p.cal.Year())

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if err := p.exec(line); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			fmt.Fprintf(p.out, "⚠️  %v\n", err)
		}
	}

	return scanner.Err()
}

func (p *planShell) exec(line string) error {
	fields := strings.Fields(line)
	name, args := strings.ToLower(fields[0]), fields[1:]

	switch name {
	case "pick":
		date, err := p.dateArg(args)
		if err != nil {
			return err
		}
		if !p.cal.Contains(date) {
			fmt.Fprintf(p.out, "Note: %s is outside %d, holidays are unknown there\n",
				dateutil.FormatISO(date), p.cal.Year())
		}
		p.session.PickDate(date)
		p.printSelection()
	case "hover":
		date, err := p.dateArg(args)
		if err != nil {
			return err
		}
		if !p.session.Hover(date) {
			return errors.New("hover only works after picking a start date")
		}
		p.printSelection()
	case "cancel":
		p.session.Cancel()
		fmt.Fprintln(p.out, "Selection cleared")
	case "add":
		period, err := p.session.Commit()
		if err != nil {
			if errors.Is(err, planner.ErrNoCompleteSelection) {
				return errors.New("pick both a start and an end date first")
			}
			return err
		}
		fmt.Fprintf(p.out, "✅ Added %s: %d vacation day(s)\n", period.Range, period.VacationDays)
		p.printBalance()
	case "remove":
		return p.remove(args)
	case "allowance":
		var raw any
		if len(args) > 0 {
			raw = args[0]
		}
		days := p.session.SetAllowance(raw)
		fmt.Fprintf(p.out, "Allowance: %d day(s)\n", days)
	case "list":
		p.printPeriods()
	case "balance":
		p.printBalance()
	case "month":
		if len(args) != 1 {
			return errors.New("usage: month N")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 || n > 12 {
			return fmt.Errorf("month must be 1..12, got %q", args[0])
		}
		p.printMonth(time.Month(n))
	case "export":
		return p.export()
	case "help":
		fmt.Fprint(p.out, planHelp)
	case "quit", "exit":
		return errQuit
	default:
		p.logger.Debug("Unknown plan command", zap.String("command", name))
		return fmt.Errorf("unknown command %q, type 'help'", name)
	}

	return nil
}

func (p *planShell) dateArg(args []string) (time.Time, error) {
	if len(args) != 1 {
		return time.Time{}, errors.New("expected one date argument")
	}
	return dateutil.ParseDate(args[0])
}

func (p *planShell) remove(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: remove ID|N")
	}

	id := args[0]
	if n, err := strconv.Atoi(id); err == nil {
		periods := p.session.Periods()
		if n < 1 || n > len(periods) {
			return fmt.Errorf("no period number %d", n)
		}
		id = periods[n-1].ID
	}

	if p.session.RemovePeriod(id) {
		fmt.Fprintf(p.out, "🗑  Removed %s\n", id)
	} else {
		fmt.Fprintf(p.out, "Nothing to remove for %s\n", id)
	}
	return nil
}

func (p *planShell) printSelection() {
	switch st := p.session.Selection().(type) {
	case planner.Pending:
		fmt.Fprintf(p.out, "Start: %s, pick an end date\n", dateutil.FormatShort(st.Start))
	case planner.Complete:
		fmt.Fprintln(p.out, "Selected period ('add' to keep, 'cancel' to drop):")
	}

	if preview, ok := p.session.Preview(); ok {
		printRangeMetrics(p.out, preview.Range, preview.Metrics)
	}
}

func (p *planShell) printPeriods() {
	periods := p.session.Periods()
	if len(periods) == 0 {
		fmt.Fprintln(p.out, "No periods yet. Pick dates on the calendar.")
		return
	}

	for i, period := range periods {
		fmt.Fprintf(p.out, "  %d. %s — %s  %d vacation / %d calendar day(s)  [%s]\n",
			i+1,
			dateutil.FormatShort(period.Range.Start),
			dateutil.FormatShort(period.Range.End),
			period.VacationDays,
			period.CalendarDays,
			period.ID)
	}
}

func (p *planShell) printBalance() {
	b := p.session.Balance()

	fmt.Fprintf(p.out, "  Allowance: %d  Used: %d  Remaining: %d  (%.0f%%)\n",
		b.Allowance, b.UsedDays, b.Remaining, b.Progress)
	switch {
	case b.Overage > 0:
		fmt.Fprintf(p.out, "  ⚠️  Allowance exceeded by %d day(s)\n", b.Overage)
	case b.FullyPlanned:
		fmt.Fprintln(p.out, "  ✅ Vacation fully planned!")
	}
}

// printMonth renders a Monday-first grid. Markers: * selection, # period,
// ! holiday, ~ shortened day, . weekend.
func (p *planShell) printMonth(month time.Month) {
	first := dateutil.Date(p.cal.Year(), month, 1)
	days := first.AddDate(0, 1, -1).Day()

	fmt.Fprintf(p.out, "%s %d\n", month, p.cal.Year())
	fmt.Fprintln(p.out, " Mo  Tu  We  Th  Fr  Sa  Su")

	offset := (int(first.Weekday()) + 6) % 7
	fmt.Fprint(p.out, strings.Repeat("    ", offset))

	for day := 1; day <= days; day++ {
		view := p.session.DayView(dateutil.Date(p.cal.Year(), month, day))
		fmt.Fprintf(p.out, "%3d%c", day, dayMarker(view))
		if (offset+day)%7 == 0 {
			fmt.Fprintln(p.out)
		}
	}
	if (offset+days)%7 != 0 {
		fmt.Fprintln(p.out)
	}
}

func dayMarker(view planner.DayView) rune {
	switch {
	case view.Selected:
		return '*'
	case view.Period != nil:
		return '#'
	case view.IsHoliday:
		return '!'
	case view.IsShortened:
		return '~'
	case view.IsWeekend:
		return '.'
	default:
		return ' '
	}
}

type exportPeriod struct {
	ID              string `yaml:"id"`
	Start           string `yaml:"start"`
	End             string `yaml:"end"`
	planner.Metrics `yaml:",inline"`
	Color           string `yaml:"color"`
}

type exportSnapshot struct {
	Year    int             `yaml:"year"`
	Periods []exportPeriod  `yaml:"periods"`
	Balance planner.Balance `yaml:"balance"`
}

func (p *planShell) export() error {
	snapshot := exportSnapshot{
		Year:    p.cal.Year(),
		Periods: []exportPeriod{},
		Balance: p.session.Balance(),
	}
	for _, period := range p.session.Periods() {
		snapshot.Periods = append(snapshot.Periods, exportPeriod{
			ID:      period.ID,
			Start:   dateutil.FormatISO(period.Range.Start),
			End:     dateutil.FormatISO(period.Range.End),
			Metrics: period.Metrics,
			Color:   period.Color,
		})
	}

	enc := yaml.NewEncoder(p.out)
	enc.SetIndent(2)
	if err := enc.Encode(snapshot); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return enc.Close()
}
