package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"chrono/internal/inspect"
	"chrono/internal/platform/config"
	"chrono/pkg/datetime"
	"chrono/pkg/platform/cast"
)

var errParseFailures = errors.New("some texts failed to parse")

type app struct {
	cfg     config.Config
	log     *slog.Logger
	service *inspect.Service
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "chrono",
		Short:         "Parse and inspect ISO 8601 calendar values",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(a.parseCommand(), a.nowCommand(), a.monthsCommand())
	return root
}

func (a *app) parseCommand() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "parse TEXT...",
		Short: "Parse texts and print their canonical form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := inspect.ParseKind(kind)
			if err != nil {
				return err
			}
			outcomes, err := a.service.Parse(cmd.Context(), k, args)
			if err != nil {
				return err
			}

			lines := lo.Map(outcomes, func(o inspect.Outcome, _ int) string {
				if o.OK() {
					return fmt.Sprintf("%s\t%s", o.Input, o.Canonical)
				}
				return fmt.Sprintf("%s\terror: %v", o.Input, o.Err)
			})
			for _, line := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}

			if lo.SomeBy(outcomes, func(o inspect.Outcome) bool { return !o.OK() }) {
				return errParseFailures
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", string(inspect.KindDate), "value kind: year, year-month, date or period")
	return cmd
}

func (a *app) nowCommand() *cobra.Command {
	var zoneID string
	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print today's date in a time zone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			zone, err := datetime.TimeZoneOf(zoneID)
			if err != nil {
				return err
			}
			today, err := a.service.Today(zone)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "zone\t%s\n", today.Zone)
			fmt.Fprintf(out, "date\t%s\n", today.Date)
			fmt.Fprintf(out, "year-month\t%s\n", today.YearMonth)
			fmt.Fprintf(out, "weekday\t%s\n", today.Weekday)
			return nil
		},
	}
	cmd.Flags().StringVar(&zoneID, "zone", a.cfg.Zone, "IANA time zone")
	return cmd
}

func (a *app) monthsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "months YEAR",
		Short: "Print a table of the months of a year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := cast.ToInt(args[0])
			if err != nil {
				return err
			}
			rows, err := a.service.Months(year)
			if err != nil {
				return err
			}
			a.log.Debug("months", "year", year)

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Month", "Days", "Starts", "Day of year"})
			table.SetAutoFormatHeaders(false)
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetBorder(false)
			table.AppendBulk(lo.Map(rows, func(r inspect.MonthRow, _ int) []string {
				return []string{
					r.YearMonth.String(),
					fmt.Sprint(r.Days),
					r.FirstWeekday.String(),
					fmt.Sprint(r.FirstDayOfYear),
				}
			}))
			table.Render()
			return nil
		},
	}
}
