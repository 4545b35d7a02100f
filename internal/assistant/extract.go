package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/JIYUNNNNNN/schedule/internal/llm"
)

const eventExtractionPrompt = `Extract event details from the following message. Ignore phrases like "넣어줘", "추가해줘" and return a clean event title.
Return the event title, date (with start and end dates), and time (with start and end times) in a structured JSON format:
{
  "eventTitle": "Event Title",
  "date": { "start": "Start Date", "end": "End Date" },
  "time": { "startTime": "Start Time", "endTime": "End Time" },
  "recurrence": "weekly/monthly/yearly"
}
Respond with the JSON object only.
Message: "%s"`

const deleteExtractionPrompt = `Identify the title of the event to delete from the following message.
Discard verbs like "삭제", "제거", "해줘" and respond with the bare event title only, no quotes and no extra text.
Message: "%s"`

type dateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type timeRange struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type eventExtraction struct {
	EventTitle string     `json:"eventTitle"`
	Date       *dateRange `json:"date"`
	Time       *timeRange `json:"time"`
	Recurrence string     `json:"recurrence"`
}

// extractEvent asks the model for a structured event description and
// parses the reply strictly: malformed JSON becomes an ExtractionError
// instead of propagating a raw decode failure.
func (a *Assistant) extractEvent(ctx context.Context, content string) (eventExtraction, error) {
	resp, err := a.llm.Generate(ctx, []llm.Message{
		{Role: "system", Content: fmt.Sprintf(eventExtractionPrompt, content)},
	})
	if err != nil {
		return eventExtraction{}, fmt.Errorf("event extraction call failed: %w", err)
	}

	raw := stripCodeFence(resp.Content)
	var ext eventExtraction
	if err := json.Unmarshal([]byte(raw), &ext); err != nil {
		return eventExtraction{}, &ExtractionError{Raw: resp.Content, Err: err}
	}
	return ext, nil
}

// extractDeleteTitle asks the model for the bare title of the event to
// delete, then strips filler verbs again as a safety net: the model is
// told to discard them but does not always comply.
func (a *Assistant) extractDeleteTitle(ctx context.Context, content string) (string, error) {
	resp, err := a.llm.Generate(ctx, []llm.Message{
		{Role: "system", Content: fmt.Sprintf(deleteExtractionPrompt, content)},
	})
	if err != nil {
		return "", fmt.Errorf("title extraction call failed: %w", err)
	}
	return sanitizeTitle(resp.Content), nil
}

var fillerTokens = []string{"삭제해줘", "제거해줘", "삭제", "제거", "해줘"}

func sanitizeTitle(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	for _, tok := range fillerTokens {
		s = strings.ReplaceAll(s, tok, "")
	}
	return strings.TrimSpace(s)
}

// stripCodeFence unwraps ```json ... ``` style fencing some models put
// around structured replies.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.Index(s, "\n"); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
