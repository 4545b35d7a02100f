package temporal

import (
	"errors"
	"testing"
	"time"
)

func TestParseRelativeDays(t *testing.T) {
	ref := time.Date(2024, time.November, 4, 9, 30, 0, 0, time.UTC)

	cases := []struct {
		phrase string
		day    int
	}{
		{"오늘", 4},
		{"내일", 5},
		{"모레", 6},
		{"글피", 7},
		{"그글피", 8},
		{"내일 오전 10시에 회의", 5},
	}
	for _, tc := range cases {
		got, err := ParseDateTime(tc.phrase, "", ref)
		if err != nil {
			t.Fatalf("ParseDateTime(%q) failed: %v", tc.phrase, err)
		}
		if got.Month != time.November || got.Day != tc.day {
			t.Errorf("ParseDateTime(%q) = %d/%d, want 11/%d", tc.phrase, got.Month, got.Day, tc.day)
		}
		if got.Hour != 0 || got.Minute != 0 {
			t.Errorf("ParseDateTime(%q) = %d:%d, want 0:0 without time phrase", tc.phrase, got.Hour, got.Minute)
		}
	}
}

func TestParseRelativeDayMonthBoundary(t *testing.T) {
	ref := time.Date(2024, time.January, 31, 12, 0, 0, 0, time.UTC)
	got, err := ParseDateTime("내일", "", ref)
	if err != nil {
		t.Fatalf("ParseDateTime failed: %v", err)
	}
	if got.Month != time.February || got.Day != 1 {
		t.Errorf("got %d/%d, want 2/1", got.Month, got.Day)
	}
}

func TestParseRelativeDayYearBoundary(t *testing.T) {
	ref := time.Date(2024, time.December, 30, 12, 0, 0, 0, time.UTC)
	got, err := ParseDateTime("모레", "", ref)
	if err != nil {
		t.Fatalf("ParseDateTime failed: %v", err)
	}
	if got.Month != time.January || got.Day != 1 {
		t.Errorf("got %d/%d, want 1/1", got.Month, got.Day)
	}
}

func TestParseISODate(t *testing.T) {
	ref := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	got, err := ParseDateTime("2022-11-04", "", ref)
	if err != nil {
		t.Fatalf("ParseDateTime failed: %v", err)
	}
	// Year is matched but discarded; only month/day survive.
	if got.Month != time.November || got.Day != 4 {
		t.Errorf("got %d/%d, want 11/4", got.Month, got.Day)
	}
}

func TestParseMonthDay(t *testing.T) {
	ref := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		datePhrase string
		timePhrase string
		want       Resolved
	}{
		{"11월 1일", "오후 3시", Resolved{Month: time.November, Day: 1, Hour: 15}},
		{"11월1일", "7시", Resolved{Month: time.November, Day: 1, Hour: 7}},
		{"11월 1일", "오전 12시", Resolved{Month: time.November, Day: 1, Hour: 0}},
		{"11월 1일", "오후 12시", Resolved{Month: time.November, Day: 1, Hour: 12}},
		{"3월 5일", "저녁 7시", Resolved{Month: time.March, Day: 5, Hour: 19}},
		{"3월 5일", "밤 11시", Resolved{Month: time.March, Day: 5, Hour: 23}},
		{"3월 5일", "새벽 12시", Resolved{Month: time.March, Day: 5, Hour: 0}},
		{"3월 5일", "아침 8시", Resolved{Month: time.March, Day: 5, Hour: 8}},
		{"3월 5일", "낮 3시", Resolved{Month: time.March, Day: 5, Hour: 15}},
		{"3월 5일", "낮 7시", Resolved{Month: time.March, Day: 5, Hour: 7}},
		{"3월 5일", "", Resolved{Month: time.March, Day: 5, Hour: 0}},
	}
	for _, tc := range cases {
		got, err := ParseDateTime(tc.datePhrase, tc.timePhrase, ref)
		if err != nil {
			t.Fatalf("ParseDateTime(%q, %q) failed: %v", tc.datePhrase, tc.timePhrase, err)
		}
		if got != tc.want {
			t.Errorf("ParseDateTime(%q, %q) = %+v, want %+v", tc.datePhrase, tc.timePhrase, got, tc.want)
		}
	}
}

func TestParseUnrecognizedDate(t *testing.T) {
	ref := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	_, err := ParseDateTime("not a date", "", ref)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestParseMinuteAlwaysZero(t *testing.T) {
	// Explicit minutes are outside the grammar; the hour still parses
	// and minutes stay 0.
	ref := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	got, err := ParseDateTime("11월 1일", "오후 3시 30분", ref)
	if err != nil {
		t.Fatalf("ParseDateTime failed: %v", err)
	}
	if got.Hour != 15 || got.Minute != 0 {
		t.Errorf("got %d:%d, want 15:0", got.Hour, got.Minute)
	}
}

func TestParseDatePriorityOrder(t *testing.T) {
	// Relative keyword beats an explicit month/day in the same phrase.
	ref := time.Date(2024, time.November, 4, 0, 0, 0, 0, time.UTC)
	got, err := ParseDateTime("내일 11월 20일", "", ref)
	if err != nil {
		t.Fatalf("ParseDateTime failed: %v", err)
	}
	if got.Day != 5 {
		t.Errorf("got day %d, want 5 (relative-day rule wins)", got.Day)
	}
}

func TestNormalizeHour(t *testing.T) {
	cases := []struct {
		period string
		hour   int
		want   int
	}{
		{"오후", 3, 15},
		{"오후", 12, 12},
		{"저녁", 7, 19},
		{"밤", 12, 12},
		{"오전", 12, 0},
		{"오전", 9, 9},
		{"새벽", 2, 2},
		{"낮", 1, 13},
		{"낮", 6, 6},
		{"", 7, 7},
		{"", 19, 19},
	}
	for _, tc := range cases {
		if got := NormalizeHour(tc.period, tc.hour); got != tc.want {
			t.Errorf("NormalizeHour(%q, %d) = %d, want %d", tc.period, tc.hour, got, tc.want)
		}
	}
}
