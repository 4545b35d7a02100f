package calendar

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleStore runs event CRUD against one Google calendar. It is built
// once at process start with a static refresh token and reused across
// requests; the oauth2 TokenSource refreshes access tokens as needed.
type GoogleStore struct {
	service    *gcal.Service
	calendarID string
}

// Credentials holds the static OAuth2 client identity plus the
// long-lived refresh token obtained out of band (see
// cmd/calendar-auth-helper).
type Credentials struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	RefreshToken string
}

func NewGoogleStore(ctx context.Context, creds Credentials, calendarID string) (*GoogleStore, error) {
	conf := &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		RedirectURL:  creds.RedirectURI,
		Scopes:       []string{gcal.CalendarScope},
		Endpoint:     google.Endpoint,
	}
	ts := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: creds.RefreshToken})

	service, err := gcal.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &GoogleStore{service: service, calendarID: calendarID}, nil
}

func (g *GoogleStore) List(ctx context.Context, opts ListOptions) ([]Event, error) {
	call := g.service.Events.List(g.calendarID).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx)
	if !opts.From.IsZero() {
		call = call.TimeMin(opts.From.Format(time.RFC3339))
	}
	if !opts.To.IsZero() {
		call = call.TimeMax(opts.To.Format(time.RFC3339))
	}
	if opts.Query != "" {
		call = call.Q(opts.Query)
	}
	if opts.MaxResults > 0 {
		call = call.MaxResults(opts.MaxResults)
	}

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	events := make([]Event, 0, len(resp.Items))
	for _, item := range resp.Items {
		events = append(events, fromGoogle(item))
	}
	return events, nil
}

func (g *GoogleStore) Insert(ctx context.Context, ev Event) (Event, error) {
	created, err := g.service.Events.Insert(g.calendarID, toGoogle(ev)).Context(ctx).Do()
	if err != nil {
		return Event{}, fmt.Errorf("failed to create event: %w", err)
	}
	return fromGoogle(created), nil
}

func (g *GoogleStore) Update(ctx context.Context, eventID string, ev Event) (Event, error) {
	updated, err := g.service.Events.Update(g.calendarID, eventID, toGoogle(ev)).Context(ctx).Do()
	if err != nil {
		return Event{}, fmt.Errorf("failed to update event: %w", err)
	}
	return fromGoogle(updated), nil
}

func (g *GoogleStore) Delete(ctx context.Context, eventID string) error {
	if err := g.service.Events.Delete(g.calendarID, eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

func toGoogle(ev Event) *gcal.Event {
	out := &gcal.Event{
		Summary:     ev.Summary,
		Description: ev.Description,
		Location:    ev.Location,
		Recurrence:  ev.Recurrence,
	}
	if ev.AllDay {
		out.Start = &gcal.EventDateTime{Date: ev.Start.Format("2006-01-02")}
		out.End = &gcal.EventDateTime{Date: ev.End.Format("2006-01-02")}
	} else {
		out.Start = &gcal.EventDateTime{DateTime: ev.Start.Format(time.RFC3339), TimeZone: ev.TimeZone}
		out.End = &gcal.EventDateTime{DateTime: ev.End.Format(time.RFC3339), TimeZone: ev.TimeZone}
	}
	return out
}

func fromGoogle(item *gcal.Event) Event {
	ev := Event{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		Location:    item.Location,
		Recurrence:  item.Recurrence,
	}
	if item.Start != nil {
		ev.TimeZone = item.Start.TimeZone
		if item.Start.DateTime != "" {
			ev.Start, _ = time.Parse(time.RFC3339, item.Start.DateTime)
		} else if item.Start.Date != "" {
			ev.Start, _ = time.Parse("2006-01-02", item.Start.Date)
			ev.AllDay = true
		}
	}
	if item.End != nil {
		if item.End.DateTime != "" {
			ev.End, _ = time.Parse(time.RFC3339, item.End.DateTime)
		} else if item.End.Date != "" {
			ev.End, _ = time.Parse("2006-01-02", item.End.Date)
		}
	}
	return ev
}
