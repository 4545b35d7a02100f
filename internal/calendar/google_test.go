package calendar

import (
	"testing"
	"time"
)

func TestGoogleEventConversion(t *testing.T) {
	loc := time.FixedZone("KST", 9*60*60)
	ev := Event{
		Summary:    "회의",
		Start:      time.Date(2024, time.November, 1, 15, 0, 0, 0, loc),
		End:        time.Date(2024, time.November, 1, 16, 0, 0, 0, loc),
		TimeZone:   "Asia/Seoul",
		Recurrence: []string{"RRULE:FREQ=WEEKLY;INTERVAL=1;COUNT=104;BYDAY=MO"},
	}

	g := toGoogle(ev)
	if g.Start.DateTime != "2024-11-01T15:00:00+09:00" {
		t.Errorf("start dateTime = %q", g.Start.DateTime)
	}
	if g.Start.TimeZone != "Asia/Seoul" {
		t.Errorf("start timeZone = %q", g.Start.TimeZone)
	}
	if g.Start.Date != "" {
		t.Error("timed event must not carry a date-only start")
	}
	if len(g.Recurrence) != 1 {
		t.Errorf("recurrence = %v", g.Recurrence)
	}

	back := fromGoogle(g)
	if !back.Start.Equal(ev.Start) || !back.End.Equal(ev.End) {
		t.Errorf("round trip changed instants: %v ~ %v", back.Start, back.End)
	}
	if back.AllDay {
		t.Error("timed event came back as all-day")
	}
}

func TestGoogleEventConversionAllDay(t *testing.T) {
	ev := Event{
		Summary: "휴가",
		Start:   time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC),
		End:     time.Date(2024, time.August, 2, 0, 0, 0, 0, time.UTC),
		AllDay:  true,
	}

	g := toGoogle(ev)
	if g.Start.Date != "2024-08-01" || g.End.Date != "2024-08-02" {
		t.Errorf("all-day dates = %q ~ %q", g.Start.Date, g.End.Date)
	}
	if g.Start.DateTime != "" {
		t.Error("all-day event must not carry a dateTime")
	}

	back := fromGoogle(g)
	if !back.AllDay {
		t.Error("all-day flag lost in round trip")
	}
}
