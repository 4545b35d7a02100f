package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/JIYUNNNNNN/schedule/internal/assistant"
	"github.com/JIYUNNNNNN/schedule/internal/calendar"
	"github.com/JIYUNNNNNN/schedule/internal/temporal"
)

// eventJSON mirrors the Google Calendar resource subset the UI reads,
// so the existing FullCalendar client keeps working unchanged.
type eventJSON struct {
	ID          string        `json:"id,omitempty"`
	Summary     string        `json:"summary"`
	Description string        `json:"description,omitempty"`
	Location    string        `json:"location,omitempty"`
	Start       eventTimeJSON `json:"start"`
	End         eventTimeJSON `json:"end"`
	Recurrence  []string      `json:"recurrence,omitempty"`
}

type eventTimeJSON struct {
	DateTime string `json:"dateTime,omitempty"`
	Date     string `json:"date,omitempty"`
	TimeZone string `json:"timeZone,omitempty"`
}

func toWire(ev calendar.Event) eventJSON {
	out := eventJSON{
		ID:          ev.ID,
		Summary:     ev.Summary,
		Description: ev.Description,
		Location:    ev.Location,
		Recurrence:  ev.Recurrence,
	}
	if ev.AllDay {
		out.Start = eventTimeJSON{Date: ev.Start.Format("2006-01-02")}
		out.End = eventTimeJSON{Date: ev.End.Format("2006-01-02")}
	} else {
		out.Start = eventTimeJSON{DateTime: ev.Start.Format(time.RFC3339), TimeZone: ev.TimeZone}
		out.End = eventTimeJSON{DateTime: ev.End.Format(time.RFC3339), TimeZone: ev.TimeZone}
	}
	return out
}

func fromWire(in eventJSON) (calendar.Event, error) {
	ev := calendar.Event{
		ID:          in.ID,
		Summary:     in.Summary,
		Description: in.Description,
		Location:    in.Location,
		TimeZone:    in.Start.TimeZone,
		Recurrence:  in.Recurrence,
	}
	var err error
	switch {
	case in.Start.DateTime != "":
		if ev.Start, err = time.Parse(time.RFC3339, in.Start.DateTime); err != nil {
			return calendar.Event{}, fmt.Errorf("invalid start dateTime: %w", err)
		}
	case in.Start.Date != "":
		if ev.Start, err = time.Parse("2006-01-02", in.Start.Date); err != nil {
			return calendar.Event{}, fmt.Errorf("invalid start date: %w", err)
		}
		ev.AllDay = true
	default:
		return calendar.Event{}, fmt.Errorf("event start is required")
	}
	switch {
	case in.End.DateTime != "":
		if ev.End, err = time.Parse(time.RFC3339, in.End.DateTime); err != nil {
			return calendar.Event{}, fmt.Errorf("invalid end dateTime: %w", err)
		}
	case in.End.Date != "":
		if ev.End, err = time.Parse("2006-01-02", in.End.Date); err != nil {
			return calendar.Event{}, fmt.Errorf("invalid end date: %w", err)
		}
	default:
		ev.End = ev.Start
	}
	return ev, nil
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeErrorMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeError maps the domain error taxonomy onto HTTP statuses. Anything
// unclassified is an upstream failure: 500 with the cause in details.
func writeError(w http.ResponseWriter, err error) {
	var (
		parseErr       *temporal.ParseError
		missingData    *assistant.MissingDataError
		missingDate    *assistant.MissingDateError
		validationErr  *assistant.ValidationError
		extractionFail *assistant.ExtractionError
	)
	switch {
	case errors.As(err, &parseErr),
		errors.As(err, &missingData),
		errors.As(err, &missingDate),
		errors.As(err, &validationErr):
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, calendar.ErrNotFound):
		writeErrorMessage(w, http.StatusNotFound, "삭제할 일정이 없습니다.")
	case errors.As(err, &extractionFail):
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "요청을 이해하지 못했습니다.",
			Details: err.Error(),
		})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "처리 중 오류 발생",
			Details: err.Error(),
		})
	}
}
