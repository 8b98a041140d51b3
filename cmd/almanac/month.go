package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/almanac/internal/caldate"
	"github.com/alexisbeaulieu97/almanac/internal/cellstate"
	"github.com/alexisbeaulieu97/almanac/internal/ui/components"
)

func newMonthCmd(root *rootFlags) *cobra.Command {
	var monthArg string

	cmd := &cobra.Command{
		Use:   "month [yyyy-mm]",
		Short: "Print a month calendar",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadAppContext(root)
			if err != nil {
				return err
			}

			now := time.Now()
			year, month := now.Year(), now.Month()
			if len(args) == 1 {
				monthArg = args[0]
			}
			if monthArg != "" {
				parsed, err := parseYearMonth(monthArg)
				if err != nil {
					return err
				}
				year, month = parsed.Year, parsed.Month
			}

			cfg := app.cfg
			markers := app.loadMarkers(cmd.Context(), year, month)

			classify := func(d caldate.Date) cellstate.FlagSet {
				return cellstate.Classify(d, cellstate.Input{
					Constraints:      cfg.Constraints(),
					DisplayedMonth:   month,
					ShowNearbyMonth:  cfg.NearbyMonthDays(),
					NearbySelectable: cfg.Calendar.NearbySelectable,
					Events:           markers,
				})
			}

			view := components.NewMonthView(year, month, cfg.WeekConfig(), classify).
				WithWeekNumbers(cfg.Calendar.ShowWeekNumbers)
			ctx := components.RenderContext{Theme: cfg.Theme()}
			fmt.Fprintln(cmd.OutOrStdout(), view.ViewWithContext(ctx))
			return nil
		},
	}

	return cmd
}

// parseYearMonth parses a "yyyy-mm" argument into the first of that
// month.
func parseYearMonth(s string) (caldate.Date, error) {
	d, err := caldate.ParseDate(s + "-01")
	if err != nil {
		return caldate.Date{}, fmt.Errorf("invalid month %q (want yyyy-mm)", s)
	}
	return d, nil
}
