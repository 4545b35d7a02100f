// Package assistant resolves classified chat requests into concrete
// calendar operations and dispatches them against the backend store.
package assistant

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/JIYUNNNNNN/schedule/internal/calendar"
	"github.com/JIYUNNNNNN/schedule/internal/llm"
	"github.com/JIYUNNNNNN/schedule/internal/recurrence"
	"github.com/JIYUNNNNNN/schedule/internal/temporal"
)

// Request is one inbound chat message, already classified by the client
// as a plain chat, an event creation, or a deletion.
type Request struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

const (
	RequestChat   = "chat"
	RequestEvent  = "event"
	RequestDelete = "delete"
)

// Reply is the user-facing outcome; Event is set when a calendar event
// was created so the client can echo it.
type Reply struct {
	Text  string
	Event *calendar.Event
}

// Options fixes the per-process policy knobs.
type Options struct {
	// TimeZone all created events carry, e.g. "Asia/Seoul".
	TimeZone string
	// LookAheadMonths bounds upcoming-event listings.
	LookAheadMonths int
	// MaxListResults caps one listing round trip.
	MaxListResults int64
	// Now supplies the reference clock; defaults to time.Now.
	Now func() time.Time
}

// Assistant holds the two external collaborators. It is constructed
// once at startup and is safe for concurrent requests: all per-request
// state lives on the stack.
type Assistant struct {
	llm             llm.Client
	store           calendar.Store
	loc             *time.Location
	timeZone        string
	lookAheadMonths int
	maxListResults  int64
	now             func() time.Time
}

func New(llmClient llm.Client, store calendar.Store, opts Options) (*Assistant, error) {
	if opts.TimeZone == "" {
		opts.TimeZone = "Asia/Seoul"
	}
	loc, err := time.LoadLocation(opts.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("failed to load time zone %q: %w", opts.TimeZone, err)
	}
	if opts.LookAheadMonths <= 0 {
		opts.LookAheadMonths = 20
	}
	if opts.MaxListResults <= 0 {
		opts.MaxListResults = 100
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Assistant{
		llm:             llmClient,
		store:           store,
		loc:             loc,
		timeZone:        opts.TimeZone,
		lookAheadMonths: opts.LookAheadMonths,
		maxListResults:  opts.MaxListResults,
		now:             opts.Now,
	}, nil
}

// Chat routes one classified request. Unknown types fall back to the
// freeform chat path.
func (a *Assistant) Chat(ctx context.Context, req Request) (Reply, error) {
	switch req.Type {
	case RequestEvent:
		return a.createEvent(ctx, req.Content)
	case RequestDelete:
		return a.deleteEvent(ctx, req.Content)
	default:
		return a.freeChat(ctx, req.Content)
	}
}

// createEvent runs the model extraction, resolves the Korean date/time
// phrases and inserts the event. End time defaults to the start time
// (a zero-duration instant) and the end date to the start date.
func (a *Assistant) createEvent(ctx context.Context, content string) (Reply, error) {
	ext, err := a.extractEvent(ctx, content)
	if err != nil {
		return Reply{}, err
	}
	if ext.Date == nil || ext.Date.Start == "" {
		return Reply{}, &MissingDataError{Field: "date"}
	}

	startTime := "00시"
	if ext.Time != nil && ext.Time.StartTime != "" {
		startTime = ext.Time.StartTime
	}
	endTime := startTime
	if ext.Time != nil && ext.Time.EndTime != "" {
		endTime = ext.Time.EndTime
	}
	endDate := ext.Date.Start
	if ext.Date.End != "" {
		endDate = ext.Date.End
	}

	now := a.now().In(a.loc)
	startRes, err := temporal.ParseDateTime(ext.Date.Start, startTime, now)
	if err != nil {
		return Reply{}, err
	}
	endRes, err := temporal.ParseDateTime(endDate, endTime, now)
	if err != nil {
		return Reply{}, err
	}

	ev := calendar.Event{
		Summary:  ext.EventTitle,
		Start:    a.instant(startRes, now),
		End:      a.instant(endRes, now),
		TimeZone: a.timeZone,
	}

	// The regex synthesizer sees the raw message first; its specific rule
	// wins over the model-classified coarse signal.
	spec := recurrence.Parse(content)
	if spec == nil {
		spec = recurrence.ForSignal(ext.Recurrence)
	}
	if spec != nil {
		rule, err := spec.RRule()
		if err != nil {
			return Reply{}, err
		}
		ev.Recurrence = []string{rule}
	}

	created, err := a.store.Insert(ctx, ev)
	if err != nil {
		return Reply{}, fmt.Errorf("일정 추가 실패: %w", err)
	}
	log.Printf("event created: %q %s ~ %s", created.Summary, ev.Start.Format(time.RFC3339), ev.End.Format(time.RFC3339))
	return Reply{Text: "일정이 추가되었습니다: " + ext.EventTitle, Event: &created}, nil
}

// deleteEvent resolves the title through the model but the date through
// a direct regex on the raw message. The model proved unreliable at
// preserving exact titles when also asked about dates, so the two are
// kept separate.
func (a *Assistant) deleteEvent(ctx context.Context, content string) (Reply, error) {
	title, err := a.extractDeleteTitle(ctx, content)
	if err != nil {
		return Reply{}, err
	}

	month, day, ok := temporal.MonthDay(content)
	if !ok {
		return Reply{}, &MissingDateError{}
	}

	now := a.now().In(a.loc)
	dayStart := time.Date(now.Year(), month, day, 0, 0, 0, 0, a.loc)
	events, err := a.store.List(ctx, calendar.ListOptions{
		From: dayStart,
		To:   dayStart.AddDate(0, 0, 1),
	})
	if err != nil {
		return Reply{}, fmt.Errorf("일정 조회 실패: %w", err)
	}

	// Exact title match, first in chronological order wins.
	for _, ev := range events {
		if ev.Summary == title {
			if err := a.store.Delete(ctx, ev.ID); err != nil {
				return Reply{}, fmt.Errorf("일정 삭제 실패: %w", err)
			}
			log.Printf("event deleted: %q on %s", ev.Summary, dayStart.Format("2006-01-02"))
			return Reply{Text: "일정이 삭제되었습니다: " + ev.Summary}, nil
		}
	}
	return Reply{}, calendar.ErrNotFound
}

func (a *Assistant) freeChat(ctx context.Context, content string) (Reply, error) {
	resp, err := a.llm.Generate(ctx, []llm.Message{{Role: "user", Content: content}})
	if err != nil {
		return Reply{}, fmt.Errorf("chat completion failed: %w", err)
	}
	return Reply{Text: resp.Content}, nil
}

// instant places a resolved month/day/hour in the current year of the
// reference clock, in the configured zone.
func (a *Assistant) instant(r temporal.Resolved, now time.Time) time.Time {
	return time.Date(now.Year(), r.Month, r.Day, r.Hour, r.Minute, 0, 0, a.loc)
}

// ListUpcoming returns events up to the look-ahead horizon. The lower
// bound is left open so the UI can render past weeks of the current view.
func (a *Assistant) ListUpcoming(ctx context.Context) ([]calendar.Event, error) {
	now := a.now().In(a.loc)
	return a.store.List(ctx, calendar.ListOptions{
		To:         now.AddDate(0, a.lookAheadMonths, 0),
		MaxResults: a.maxListResults,
	})
}

// AddEvent inserts a caller-supplied event as-is.
func (a *Assistant) AddEvent(ctx context.Context, ev calendar.Event) (calendar.Event, error) {
	if ev.TimeZone == "" {
		ev.TimeZone = a.timeZone
	}
	return a.store.Insert(ctx, ev)
}

// UpdateEvent rewrites an event's title and time window, as produced by
// drag/resize in the UI.
func (a *Assistant) UpdateEvent(ctx context.Context, eventID string, ev calendar.Event) (calendar.Event, error) {
	if ev.Summary == "" {
		return calendar.Event{}, &ValidationError{Field: "summary"}
	}
	if ev.TimeZone == "" {
		ev.TimeZone = a.timeZone
	}
	return a.store.Update(ctx, eventID, ev)
}

// DeleteEvent removes an event by id.
func (a *Assistant) DeleteEvent(ctx context.Context, eventID string) error {
	return a.store.Delete(ctx, eventID)
}

// DeleteByTitle searches the window for the title and removes the first
// match in chronological order. ErrNotFound when nothing matched.
func (a *Assistant) DeleteByTitle(ctx context.Context, title string, from, to time.Time) (calendar.Event, error) {
	events, err := a.store.List(ctx, calendar.ListOptions{From: from, To: to, Query: title})
	if err != nil {
		return calendar.Event{}, err
	}
	for _, ev := range events {
		if ev.Summary == title {
			if err := a.store.Delete(ctx, ev.ID); err != nil {
				return calendar.Event{}, err
			}
			return ev, nil
		}
	}
	return calendar.Event{}, calendar.ErrNotFound
}
