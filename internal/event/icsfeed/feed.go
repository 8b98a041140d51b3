// Package icsfeed turns ICS calendar subscriptions into event markers.
// Feeds are fetched over HTTP, parsed, and recurring events are expanded
// into concrete occurrence days inside a display window.
package icsfeed

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/alexisbeaulieu97/almanac/internal/caldate"
	"github.com/alexisbeaulieu97/almanac/internal/event"
	"github.com/alexisbeaulieu97/almanac/internal/logger"
	almanacerrors "github.com/alexisbeaulieu97/almanac/pkg/errors"
)

// Source is a single ICS subscription.
type Source struct {
	// Name identifies the feed in logs and errors.
	Name string
	// URL is the ICS endpoint.
	URL string
	// Type tags every marker produced from this feed; themes may color
	// marker types differently. Empty means "event".
	Type string
}

// Window is the inclusive day range markers are expanded into. Feeds can
// contain unbounded recurrences, so expansion always needs a window.
type Window struct {
	Start caldate.Date
	End   caldate.Date
}

// contains reports whether d falls inside the window.
func (w Window) contains(d caldate.Date) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

// Loader fetches and expands ICS feeds.
type Loader struct {
	client *http.Client
	log    *logger.Logger
}

// NewLoader constructs a Loader. A nil client falls back to a client
// with a 15 second timeout; a nil logger disables logging.
func NewLoader(client *http.Client, log *logger.Logger) *Loader {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Loader{client: client, log: log}
}

// Load fetches one feed and returns its markers within the window.
func (l *Loader) Load(ctx context.Context, src Source, window Window) ([]event.Marker, error) {
	if src.URL == "" {
		return nil, almanacerrors.NewFeedError(src.Name, errors.New("source URL is empty"))
	}
	if window.End.Before(window.Start) {
		return nil, almanacerrors.NewFeedError(src.Name, errors.New("window end precedes start"))
	}

	body, err := l.fetch(ctx, src)
	if err != nil {
		return nil, almanacerrors.NewFeedError(src.Name, err)
	}

	markers, err := Parse(body, src, window)
	if err != nil {
		return nil, err
	}

	l.info(src, "feed loaded", len(markers))
	return markers, nil
}

// LoadAll loads every source. Feeds that fail are logged and reported in
// the error slice; markers from the healthy feeds are still returned.
func (l *Loader) LoadAll(ctx context.Context, sources []Source, window Window) ([]event.Marker, []error) {
	var markers []event.Marker
	var errs []error

	for _, src := range sources {
		loaded, err := l.Load(ctx, src, window)
		if err != nil {
			errs = append(errs, err)
			if l.log != nil {
				l.log.Error(err, "feed load failed")
			}
			continue
		}
		markers = append(markers, loaded...)
	}

	return markers, errs
}

func (l *Loader) fetch(ctx context.Context, src Source) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(resp.Status)
	}

	return io.ReadAll(resp.Body)
}

func (l *Loader) info(src Source, msg string, count int) {
	if l.log == nil {
		return
	}
	l.log.WithFields(map[string]any{
		"feed":    src.Name,
		"markers": count,
	}).Info(msg)
}
