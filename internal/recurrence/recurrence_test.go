package recurrence

import (
	"strings"
	"testing"

	"github.com/teambition/rrule-go"
)

func TestParseWeekly(t *testing.T) {
	spec := Parse("매주 월요일 저녁 7시")
	if spec == nil {
		t.Fatal("expected a recurrence spec, got nil")
	}
	if spec.Frequency != rrule.WEEKLY {
		t.Errorf("frequency = %v, want WEEKLY", spec.Frequency)
	}
	if spec.ByDay == nil || *spec.ByDay != rrule.MO {
		t.Errorf("byDay = %v, want MO", spec.ByDay)
	}
	if spec.Interval != 1 || spec.Count != 104 {
		t.Errorf("interval/count = %d/%d, want 1/104", spec.Interval, spec.Count)
	}
	if spec.Hour != 19 {
		t.Errorf("hour = %d, want 19", spec.Hour)
	}
}

func TestParseWeeklyAllWeekdays(t *testing.T) {
	want := map[string]rrule.Weekday{
		"일요일": rrule.SU, "월요일": rrule.MO, "화요일": rrule.TU, "수요일": rrule.WE,
		"목요일": rrule.TH, "금요일": rrule.FR, "토요일": rrule.SA,
	}
	for name, wd := range want {
		spec := Parse("매주 " + name + " 오전 9시")
		if spec == nil {
			t.Fatalf("Parse(매주 %s ...) returned nil", name)
		}
		if spec.ByDay == nil || *spec.ByDay != wd {
			t.Errorf("%s: byDay = %v, want %v", name, spec.ByDay, wd)
		}
		if spec.Hour != 9 {
			t.Errorf("%s: hour = %d, want 9", name, spec.Hour)
		}
	}
}

func TestParseMonthly(t *testing.T) {
	spec := Parse("매달 15일 오후 3시")
	if spec == nil {
		t.Fatal("expected a recurrence spec, got nil")
	}
	if spec.Frequency != rrule.MONTHLY || spec.ByMonthDay != 15 {
		t.Errorf("got freq %v byMonthDay %d, want MONTHLY/15", spec.Frequency, spec.ByMonthDay)
	}
	if spec.Count != 24 {
		t.Errorf("count = %d, want 24", spec.Count)
	}
	if spec.Hour != 15 {
		t.Errorf("hour = %d, want 15", spec.Hour)
	}
}

func TestParseYearly(t *testing.T) {
	spec := Parse("매년 3월 오전 10시")
	if spec == nil {
		t.Fatal("expected a recurrence spec, got nil")
	}
	if spec.Frequency != rrule.YEARLY || spec.ByMonth != 3 {
		t.Errorf("got freq %v byMonth %d, want YEARLY/3", spec.Frequency, spec.ByMonth)
	}
	if spec.Count != 10 {
		t.Errorf("count = %d, want 10", spec.Count)
	}
}

func TestParseNoMatch(t *testing.T) {
	if spec := Parse("아무 말"); spec != nil {
		t.Errorf("Parse(아무 말) = %+v, want nil", spec)
	}
	if spec := Parse("내일 오전 10시에 회의"); spec != nil {
		t.Errorf("non-periodic phrase parsed as recurrence: %+v", spec)
	}
}

func TestForSignal(t *testing.T) {
	cases := []struct {
		signal string
		freq   rrule.Frequency
		count  int
	}{
		{"weekly", rrule.WEEKLY, 104},
		{"monthly", rrule.MONTHLY, 24},
		{"yearly", rrule.YEARLY, 10},
	}
	for _, tc := range cases {
		spec := ForSignal(tc.signal)
		if spec == nil {
			t.Fatalf("ForSignal(%q) returned nil", tc.signal)
		}
		if spec.Frequency != tc.freq || spec.Count != tc.count || spec.Interval != 1 {
			t.Errorf("ForSignal(%q) = %+v", tc.signal, spec)
		}
		if spec.ByDay != nil || spec.ByMonthDay != 0 || spec.ByMonth != 0 {
			t.Errorf("ForSignal(%q) should carry no by-day specificity: %+v", tc.signal, spec)
		}
	}
	if ForSignal("daily") != nil {
		t.Error("unsupported signal should map to nil")
	}
}

func TestRRuleRendering(t *testing.T) {
	spec := Parse("매주 월요일 저녁 7시")
	rule, err := spec.RRule()
	if err != nil {
		t.Fatalf("RRule failed: %v", err)
	}
	if !strings.HasPrefix(rule, "RRULE:") {
		t.Errorf("rule %q missing RRULE: prefix", rule)
	}
	for _, part := range []string{"FREQ=WEEKLY", "INTERVAL=1", "COUNT=104", "BYDAY=MO"} {
		if !strings.Contains(rule, part) {
			t.Errorf("rule %q missing %s", rule, part)
		}
	}

	plain, err := ForSignal("yearly").RRule()
	if err != nil {
		t.Fatalf("RRule failed: %v", err)
	}
	for _, part := range []string{"FREQ=YEARLY", "INTERVAL=1", "COUNT=10"} {
		if !strings.Contains(plain, part) {
			t.Errorf("rule %q missing %s", plain, part)
		}
	}
	if strings.Contains(plain, "BYDAY") {
		t.Errorf("plain rule %q should not carry BYDAY", plain)
	}
}
