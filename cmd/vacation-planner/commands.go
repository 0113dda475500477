package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/username/vacation-planner/internal/calendar"
	"github.com/username/vacation-planner/internal/planner"
	"github.com/username/vacation-planner/pkg/dateutil"
)

func holidaysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "holidays",
		Short: "List holidays and shortened days of the calendar year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := loadCalendar()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "🎉 Holidays %d\n", cal.Year())
			fmt.Fprintln(out, "═══════════════════════════════════════════════════════")
			for _, h := range cal.Holidays() {
				fmt.Fprintf(out, "  %s %s  %s\n", dateutil.FormatISO(h.Date), h.Date.Format("Mon"), h.Label)
			}

			fmt.Fprintln(out, "\n⏱  Shortened days")
			fmt.Fprintln(out, "═══════════════════════════════════════════════════════")
			for _, d := range cal.ShortDays() {
				info := cal.Classify(d)
				fmt.Fprintf(out, "  %s %s  %dh\n", dateutil.FormatISO(d), d.Format("Mon"), info.WorkingHours)
			}

			return nil
		},
	}
}

func classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify DATE",
		Short: "Show what kind of day a date is",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := loadCalendar()
			if err != nil {
				return err
			}

			date, err := dateutil.ParseDate(args[0])
			if err != nil {
				return err
			}

			printDayInfo(cmd.OutOrStdout(), cal.Classify(date))
			return nil
		},
	}
}

func metricsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metrics START END",
		Short: "Count vacation, working and calendar days of a range",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := loadCalendar()
			if err != nil {
				return err
			}

			start, err := dateutil.ParseDate(args[0])
			if err != nil {
				return err
			}
			end, err := dateutil.ParseDate(args[1])
			if err != nil {
				return err
			}

			r := planner.NewDateRange(start, end)
			printRangeMetrics(cmd.OutOrStdout(), r, planner.ComputeMetrics(cal, r))
			return nil
		},
	}
}

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show per-month statistics of the calendar year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := loadCalendar()
			if err != nil {
				return err
			}

			s := cal.Summary()
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "📊 Production calendar %d\n", s.Year)
			fmt.Fprintln(out, "═══════════════════════════════════════════════════════")
			fmt.Fprintln(out, "  Month      | Work | Weekend | Holiday | Short | Hours")
			fmt.Fprintln(out, "-------------+------+---------+---------+-------+------")
			for _, m := range s.Months {
				fmt.Fprintf(out, "  %-10s | %4d | %7d | %7d | %5d | %5d\n",
					m.Month, m.WorkDays, m.Weekends, m.Holidays, m.Shortened, m.WorkingHours)
			}
			fmt.Fprintln(out, "-------------+------+---------+---------+-------+------")
			fmt.Fprintf(out, "  %-10s | %4d | %7d | %7d | %5d | %5d\n",
				"Total", s.WorkDays, s.Weekends, s.Holidays, s.ShortenedDays, s.WorkingHours)

			return nil
		},
	}
}

func printDayInfo(out io.Writer, info calendar.DayInfo) {
	fmt.Fprintf(out, "%s (%s): %s\n", dateutil.FormatISO(info.Date), info.Date.Format("Monday"), info.Type)
	if info.IsHoliday {
		fmt.Fprintf(out, "  Holiday:       %s\n", info.Note)
	}
	fmt.Fprintf(out, "  Weekend:       %v\n", info.IsWeekend)
	fmt.Fprintf(out, "  Shortened:     %v\n", info.IsShortened)
	fmt.Fprintf(out, "  Working hours: %d\n", info.WorkingHours)
}

func printRangeMetrics(out io.Writer, r planner.DateRange, m planner.Metrics) {
	fmt.Fprintf(out, "  Dates:          %s — %s\n", dateutil.FormatShort(r.Start), dateutil.FormatShort(r.End))
	fmt.Fprintf(out, "  Vacation days:  %d\n", m.VacationDays)
	fmt.Fprintf(out, "  Calendar days:  %d\n", m.CalendarDays)
	fmt.Fprintf(out, "  Working days:   %d\n", m.WorkingDays)
}
