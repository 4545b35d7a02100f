// Package temporal parses Korean natural-language date and time-of-day
// phrases ("내일", "11월 1일", "오후 3시") into calendar-relative values.
package temporal

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Resolved is the outcome of parsing one date phrase plus an optional
// time phrase. The year is never taken from the phrase: callers build
// instants in the year of their reference clock. Hour is always in
// 24-hour form; minute is always 0 for the non-recurrence grammar.
type Resolved struct {
	Month  time.Month
	Day    int
	Hour   int
	Minute int
}

// ParseError means the date phrase matched none of the recognized forms.
type ParseError struct {
	Phrase string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("날짜 형식이 잘못되었습니다: %q", e.Phrase)
}

// dateRule is one entry of the ordered date grammar. Rules are tried in
// order and the first match wins.
type dateRule struct {
	name  string
	apply func(phrase string, ref time.Time) (month time.Month, day int, ok bool)
}

var dateGrammar = []dateRule{
	{name: "relative-day", apply: matchRelativeDay},
	{name: "iso-date", apply: matchISODate},
	{name: "month-day", apply: matchMonthDay},
}

// Ordered longest-first so 그글피 is not swallowed by 글피.
var relativeDays = []struct {
	word   string
	offset int
}{
	{"그글피", 4},
	{"글피", 3},
	{"모레", 2},
	{"내일", 1},
	{"오늘", 0},
}

var (
	isoDatePattern  = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)
	monthDayPattern = regexp.MustCompile(`(\d{1,2})월\s*(\d{1,2})일`)
	timePattern     = regexp.MustCompile(`(오전|오후|아침|낮|저녁|밤|새벽)?\s*(\d{1,2})시`)
)

// ParseDateTime resolves datePhrase (required) and timePhrase (may be
// empty) against the reference instant ref. ref exists so callers and
// tests control "today"; production callers pass time.Now() in the
// configured zone.
func ParseDateTime(datePhrase, timePhrase string, ref time.Time) (Resolved, error) {
	for _, rule := range dateGrammar {
		month, day, ok := rule.apply(datePhrase, ref)
		if !ok {
			continue
		}
		hour, minute := parseTimeOfDay(timePhrase)
		return Resolved{Month: month, Day: day, Hour: hour, Minute: minute}, nil
	}
	return Resolved{}, &ParseError{Phrase: datePhrase}
}

func matchRelativeDay(phrase string, ref time.Time) (time.Month, int, bool) {
	for _, rd := range relativeDays {
		if strings.Contains(phrase, rd.word) {
			d := ref.AddDate(0, 0, rd.offset)
			return d.Month(), d.Day(), true
		}
	}
	return 0, 0, false
}

// matchISODate recognizes YYYY-MM-DD anywhere in the phrase. The year is
// matched but dropped: downstream consumers construct instants in the
// reference year regardless.
func matchISODate(phrase string, _ time.Time) (time.Month, int, bool) {
	m := isoDatePattern.FindStringSubmatch(phrase)
	if m == nil {
		return 0, 0, false
	}
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, 0, false
	}
	return time.Month(month), day, true
}

// MonthDay extracts an explicit "<N>월 <N>일" date from a phrase without
// going through the full grammar. The delete flow matches raw user
// messages with this single rule.
func MonthDay(phrase string) (time.Month, int, bool) {
	return matchMonthDay(phrase, time.Time{})
}

// matchMonthDay recognizes "<N>월 <N>일" with optional whitespace between
// number and unit ("11월1일" included).
func matchMonthDay(phrase string, _ time.Time) (time.Month, int, bool) {
	m := monthDayPattern.FindStringSubmatch(phrase)
	if m == nil {
		return 0, 0, false
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, 0, false
	}
	return time.Month(month), day, true
}

// parseTimeOfDay extracts "(period)? (N)시" from the time phrase. A
// missing or unrecognized phrase defaults to midnight; minutes are not
// part of the grammar and stay 0.
func parseTimeOfDay(timePhrase string) (hour, minute int) {
	if timePhrase == "" {
		return 0, 0
	}
	m := timePattern.FindStringSubmatch(timePhrase)
	if m == nil {
		return 0, 0
	}
	h, _ := strconv.Atoi(m[2])
	return NormalizeHour(m[1], h), 0
}

// NormalizeHour converts an 1-12 hour with an optional Korean day-period
// marker into 24-hour form. A bare number is taken literally.
func NormalizeHour(period string, hour int) int {
	switch period {
	case "오후", "저녁", "밤":
		if hour < 12 {
			return hour + 12
		}
	case "오전", "아침", "새벽":
		if hour == 12 {
			return 0
		}
	case "낮":
		// Early-afternoon reading unless already given as an evening hour.
		if hour < 6 {
			return hour + 12
		}
	}
	return hour
}
