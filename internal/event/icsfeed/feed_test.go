package icsfeed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/almanac/internal/caldate"
	"github.com/alexisbeaulieu97/almanac/internal/event"
)

func icsPayload(lines ...string) []byte {
	return []byte(strings.Join(lines, "\r\n") + "\r\n")
}

func sampleCalendar() []byte {
	return icsPayload(
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//almanac//test//EN",
		"BEGIN:VEVENT",
		"UID:standup@example.com",
		"DTSTART:20210503T090000Z",
		"DTEND:20210503T091500Z",
		"SUMMARY:Standup",
		"RRULE:FREQ=WEEKLY;BYDAY=MO",
		"EXDATE:20210517T090000Z",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:launch@example.com",
		"DTSTART:20210505T120000Z",
		"DTEND:20210505T130000Z",
		"SUMMARY:Launch",
		"END:VEVENT",
		"END:VCALENDAR",
	)
}

func mayWindow() Window {
	return Window{
		Start: caldate.New(2021, time.May, 1),
		End:   caldate.New(2021, time.May, 31),
	}
}

func TestParseExpandsRecurrences(t *testing.T) {
	t.Parallel()

	markers, err := Parse(sampleCalendar(), Source{Name: "team", Type: "meeting"}, mayWindow())
	require.NoError(t, err)

	var standups, launches []event.Marker
	for _, m := range markers {
		switch m.Label {
		case "Standup":
			standups = append(standups, m)
		case "Launch":
			launches = append(launches, m)
		}
	}

	// Mondays in May 2021 are the 3rd, 10th, 17th, 24th and 31st; the
	// 17th is excluded by EXDATE.
	require.Len(t, standups, 4)
	days := make([]caldate.Date, len(standups))
	for i, m := range standups {
		days[i] = m.Date
		require.Equal(t, "meeting", m.Type)
	}
	require.Contains(t, days, caldate.New(2021, time.May, 3))
	require.Contains(t, days, caldate.New(2021, time.May, 10))
	require.Contains(t, days, caldate.New(2021, time.May, 24))
	require.Contains(t, days, caldate.New(2021, time.May, 31))
	require.NotContains(t, days, caldate.New(2021, time.May, 17))

	require.Len(t, launches, 1)
	require.Equal(t, caldate.New(2021, time.May, 5), launches[0].Date)
}

func TestParseSkipsOccurrencesOutsideWindow(t *testing.T) {
	t.Parallel()

	window := Window{
		Start: caldate.New(2021, time.June, 1),
		End:   caldate.New(2021, time.June, 7),
	}
	markers, err := Parse(sampleCalendar(), Source{Name: "team"}, window)
	require.NoError(t, err)

	// Only the weekly standup reaches June; the one-off launch is in May.
	require.Len(t, markers, 1)
	require.Equal(t, caldate.New(2021, time.June, 7), markers[0].Date)
	require.Equal(t, "event", markers[0].Type)
}

func TestParseRejectsEmptyBody(t *testing.T) {
	t.Parallel()

	_, err := Parse(nil, Source{Name: "team"}, mayWindow())
	require.Error(t, err)
}

func TestLoaderLoad(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(sampleCalendar())
	}))
	defer server.Close()

	loader := NewLoader(server.Client(), nil)
	markers, err := loader.Load(context.Background(), Source{Name: "team", URL: server.URL}, mayWindow())
	require.NoError(t, err)
	require.Len(t, markers, 5)
}

func TestLoaderReportsHTTPFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer server.Close()

	loader := NewLoader(server.Client(), nil)
	_, err := loader.Load(context.Background(), Source{Name: "team", URL: server.URL}, mayWindow())
	require.Error(t, err)
}

func TestLoaderLoadAllKeepsHealthyFeeds(t *testing.T) {
	t.Parallel()

	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(sampleCalendar())
	}))
	defer good.Close()
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer bad.Close()

	loader := NewLoader(nil, nil)
	sources := []Source{
		{Name: "good", URL: good.URL},
		{Name: "bad", URL: bad.URL},
	}

	markers, errs := loader.LoadAll(context.Background(), sources, mayWindow())
	require.Len(t, errs, 1)
	require.Len(t, markers, 5)
}

func TestLoaderValidatesInput(t *testing.T) {
	t.Parallel()

	loader := NewLoader(nil, nil)

	_, err := loader.Load(context.Background(), Source{Name: "nourl"}, mayWindow())
	require.Error(t, err)

	window := Window{Start: caldate.New(2021, time.June, 1), End: caldate.New(2021, time.May, 1)}
	_, err = loader.Load(context.Background(), Source{Name: "x", URL: "http://localhost"}, window)
	require.Error(t, err)
}
