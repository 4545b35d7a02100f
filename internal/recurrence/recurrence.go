// Package recurrence turns periodic Korean phrases ("매주 월요일 저녁
// 7시") and coarse weekly/monthly/yearly signals into RRULE recurrence
// rules for the calendar backend.
package recurrence

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/teambition/rrule-go"

	"github.com/JIYUNNNNNN/schedule/internal/temporal"
)

// Repeat horizons are fixed per frequency: roughly two years of weekly
// and monthly occurrences, ten yearly ones.
const (
	weeklyCount  = 104
	monthlyCount = 24
	yearlyCount  = 10
)

// Spec is a synthesized recurrence rule plus the time-of-day the phrase
// carried. ByDay, ByMonthDay and ByMonth are populated depending on
// Frequency; unset ones stay zero.
type Spec struct {
	Frequency  rrule.Frequency
	ByDay      *rrule.Weekday
	ByMonthDay int
	ByMonth    int
	Interval   int
	Count      int
	Hour       int
}

// 매(주|달|년) + weekday name or number + optional day-period + hour.
var recurrencePattern = regexp.MustCompile(
	`매(주|달|년)\s*(?:(일요일|월요일|화요일|수요일|목요일|금요일|토요일)|(\d{1,2})\s*[일월]?)\s*(오전|오후|아침|낮|저녁|밤|새벽)?\s*(\d{1,2})시`)

var weekdayCodes = map[string]rrule.Weekday{
	"일요일": rrule.SU,
	"월요일": rrule.MO,
	"화요일": rrule.TU,
	"수요일": rrule.WE,
	"목요일": rrule.TH,
	"금요일": rrule.FR,
	"토요일": rrule.SA,
}

// Parse recognizes a periodic phrase inside content and synthesizes the
// matching rule. A nil return means the message is not periodic; that is
// the normal outcome, not an error.
func Parse(content string) *Spec {
	m := recurrencePattern.FindStringSubmatch(content)
	if m == nil {
		return nil
	}

	unit, weekday, number, period, hourStr := m[1], m[2], m[3], m[4], m[5]
	hour, _ := strconv.Atoi(hourStr)
	hour = temporal.NormalizeHour(period, hour)

	spec := &Spec{Interval: 1, Hour: hour}
	switch unit {
	case "주":
		wd, ok := weekdayCodes[weekday]
		if !ok {
			return nil
		}
		spec.Frequency = rrule.WEEKLY
		spec.ByDay = &wd
		spec.Count = weeklyCount
	case "달":
		day, err := strconv.Atoi(number)
		if err != nil || day < 1 || day > 31 {
			return nil
		}
		spec.Frequency = rrule.MONTHLY
		spec.ByMonthDay = day
		spec.Count = monthlyCount
	case "년":
		month, err := strconv.Atoi(number)
		if err != nil || month < 1 || month > 12 {
			return nil
		}
		spec.Frequency = rrule.YEARLY
		spec.ByMonth = month
		spec.Count = yearlyCount
	}
	return spec
}

// ForSignal maps a model-classified recurrence signal to the plain
// fixed-count rule for that frequency, with no by-day specificity.
func ForSignal(signal string) *Spec {
	switch signal {
	case "weekly":
		return &Spec{Frequency: rrule.WEEKLY, Interval: 1, Count: weeklyCount}
	case "monthly":
		return &Spec{Frequency: rrule.MONTHLY, Interval: 1, Count: monthlyCount}
	case "yearly":
		return &Spec{Frequency: rrule.YEARLY, Interval: 1, Count: yearlyCount}
	default:
		return nil
	}
}

// RRule renders the spec as an RRULE line for the calendar backend.
func (s *Spec) RRule() (string, error) {
	opt := rrule.ROption{
		Freq:     s.Frequency,
		Interval: s.Interval,
		Count:    s.Count,
	}
	if s.ByDay != nil {
		opt.Byweekday = []rrule.Weekday{*s.ByDay}
	}
	if s.ByMonthDay != 0 {
		opt.Bymonthday = []int{s.ByMonthDay}
	}
	if s.ByMonth != 0 {
		opt.Bymonth = []int{s.ByMonth}
	}
	r, err := rrule.NewRRule(opt)
	if err != nil {
		return "", fmt.Errorf("failed to build rrule: %w", err)
	}
	return "RRULE:" + r.OrigOptions.RRuleString(), nil
}
