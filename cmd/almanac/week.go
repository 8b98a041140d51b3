package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/almanac/internal/caldate"
	"github.com/alexisbeaulieu97/almanac/internal/calmath"
)

func newWeekCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "week [yyyy-mm-dd]",
		Short: "Print the week number of a date",
		Long:  `Print the week number and week-numbering year of the given date, or of today, under the configured week rules.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadAppContext(root)
			if err != nil {
				return err
			}

			d := caldate.FromTime(time.Now())
			if len(args) == 1 {
				parsed, err := caldate.ParseDate(args[0])
				if err != nil {
					return err
				}
				d = parsed
			}

			cfg := app.cfg.WeekConfig()
			week, year := calmath.WeekYear(d, cfg)
			fmt.Fprintf(cmd.OutOrStdout(), "%s is in week %d of %d\n", d, week, year)

			span := calmath.WeekOf(d, cfg)
			fmt.Fprintf(cmd.OutOrStdout(), "week spans %s to %s\n", span.Days[0], span.Days[calmath.DaysPerWeek-1])
			return nil
		},
	}

	return cmd
}
