package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/almanac/internal/selection"
	"github.com/alexisbeaulieu97/almanac/internal/tui/datepicker"
)

func newPickCmd(root *rootFlags) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Interactively pick a date",
		Long:  `Open the interactive date picker and print the selection on exit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("pick requires an interactive terminal")
			}

			app, err := loadAppContext(root)
			if err != nil {
				return err
			}

			cfg := app.cfg
			pickerMode := cfg.Mode()
			if mode != "" {
				parsed, ok := selection.ParseMode(mode)
				if !ok {
					return fmt.Errorf("unknown mode %q (want single, range or multiple)", mode)
				}
				pickerMode = parsed
			}

			now := time.Now()
			markers := app.loadMarkers(cmd.Context(), now.Year(), now.Month())

			model := datepicker.New(
				datepicker.WithMode(pickerMode),
				datepicker.WithConstraints(cfg.Constraints()),
				datepicker.WithWeekConfig(cfg.WeekConfig()),
				datepicker.WithWeekNumbers(cfg.Calendar.ShowWeekNumbers),
				datepicker.WithNearbyMonthDays(cfg.NearbyMonthDays(), cfg.Calendar.NearbySelectable),
				datepicker.WithEvents(markers),
				datepicker.WithTheme(cfg.Theme()),
			)

			app.log.Info("starting date picker")
			final, err := tea.NewProgram(model).Run()
			if err != nil {
				return err
			}

			picker, ok := final.(datepicker.Model)
			if !ok || picker.Selection().IsEmpty() {
				return nil
			}
			for _, d := range picker.Selection().Dates() {
				fmt.Fprintln(cmd.OutOrStdout(), d)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "", "Selection mode: single, range or multiple")
	return cmd
}
