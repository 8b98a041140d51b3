package main

import (
	"context"
	"time"

	"github.com/alexisbeaulieu97/almanac/internal/caldate"
	"github.com/alexisbeaulieu97/almanac/internal/config"
	"github.com/alexisbeaulieu97/almanac/internal/event"
	"github.com/alexisbeaulieu97/almanac/internal/event/icsfeed"
	"github.com/alexisbeaulieu97/almanac/internal/logger"
)

// appContext bundles what every command needs: the resolved
// configuration and a logger.
type appContext struct {
	cfg *config.Config
	log *logger.Logger
}

// loadAppContext parses the configuration and builds the logger. With
// no config file everything falls back to defaults.
func loadAppContext(flags *rootFlags) (*appContext, error) {
	cfg := &config.Config{}
	if flags.configPath != "" {
		parsed, err := config.ParseConfig(flags.configPath)
		if err != nil {
			return nil, err
		}
		cfg = parsed
	}

	level := cfg.Logging.Level
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.Logging.HumanReadable,
	})
	if err != nil {
		return nil, err
	}

	return &appContext{cfg: cfg, log: log}, nil
}

// loadMarkers merges inline events with the configured remote feeds.
// Feed failures degrade to the inline markers rather than aborting.
func (app *appContext) loadMarkers(ctx context.Context, year int, month time.Month) []event.Marker {
	markers := app.cfg.Markers()

	sources := app.cfg.FeedSources()
	if len(sources) == 0 {
		return markers
	}

	// Fetch a window one month either side of the displayed month, so
	// nearby-month days carry their markers too.
	first := caldate.New(year, month, 1)
	window := icsfeed.Window{
		Start: first.AddMonths(-1),
		End:   first.AddMonths(2).AddDays(-1),
	}

	loader := icsfeed.NewLoader(nil, app.log)
	fetched, errs := loader.LoadAll(ctx, sources, window)
	for _, err := range errs {
		app.log.Error(err, "calendar feed failed to load")
	}
	return append(markers, fetched...)
}
