package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/JIYUNNNNNN/schedule/internal/assistant"
	"github.com/JIYUNNNNNN/schedule/internal/calendar"
)

type chatResponse struct {
	Reply string     `json:"reply"`
	Event *eventJSON `json:"event,omitempty"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req assistant.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "잘못된 요청 형식입니다.")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		writeErrorMessage(w, http.StatusBadRequest, "메시지 내용이 비어 있습니다.")
		return
	}

	ctx, cancel := s.opCtx(r)
	defer cancel()

	reply, err := s.assistant.Chat(ctx, req)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := chatResponse{Reply: reply.Text}
	if reply.Event != nil {
		ev := toWire(*reply.Event)
		resp.Event = &ev
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx, cancel := s.opCtx(r)
	defer cancel()

	events, err := s.assistant.ListUpcoming(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]eventJSON, 0, len(events))
	for _, ev := range events {
		out = append(out, toWire(ev))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleAddEvent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var body eventJSON
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "잘못된 이벤트 형식입니다.")
		return
	}
	ev, err := fromWire(body)
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "잘못된 이벤트 형식입니다.")
		return
	}

	ctx, cancel := s.opCtx(r)
	defer cancel()

	created, err := s.assistant.AddEvent(ctx, ev)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toWire(created))
}

type updateEventRequest struct {
	Summary string `json:"summary"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

func (s *Server) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	eventID := strings.TrimPrefix(r.URL.Path, "/api/update-event/")
	if eventID == "" || eventID == r.URL.Path {
		writeErrorMessage(w, http.StatusBadRequest, "이벤트 ID가 필요합니다.")
		return
	}

	var body updateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "잘못된 요청 형식입니다.")
		return
	}
	start, errStart := time.Parse(time.RFC3339, body.Start)
	end, errEnd := time.Parse(time.RFC3339, body.End)
	if errStart != nil || errEnd != nil {
		writeErrorMessage(w, http.StatusBadRequest, "시작/종료 시간 형식이 잘못되었습니다.")
		return
	}

	ctx, cancel := s.opCtx(r)
	defer cancel()

	updated, err := s.assistant.UpdateEvent(ctx, eventID, calendar.Event{
		Summary: body.Summary,
		Start:   start,
		End:     end,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toWire(updated))
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	eventID := strings.TrimPrefix(r.URL.Path, "/api/delete-event/")
	if eventID == "" || eventID == r.URL.Path {
		writeErrorMessage(w, http.StatusBadRequest, "이벤트 ID가 필요합니다.")
		return
	}

	ctx, cancel := s.opCtx(r)
	defer cancel()

	if err := s.assistant.DeleteEvent(ctx, eventID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "이벤트 삭제됨"})
}

type deleteByTitleRequest struct {
	Title     string `json:"title"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func (s *Server) handleDeleteByTitle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var body deleteByTitleRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "잘못된 요청 형식입니다.")
		return
	}
	if body.Title == "" {
		writeErrorMessage(w, http.StatusBadRequest, "이벤트 제목이 필요합니다.")
		return
	}
	from, errFrom := time.Parse(time.RFC3339, body.StartDate)
	to, errTo := time.Parse(time.RFC3339, body.EndDate)
	if errFrom != nil || errTo != nil {
		writeErrorMessage(w, http.StatusBadRequest, "검색 기간 형식이 잘못되었습니다.")
		return
	}

	ctx, cancel := s.opCtx(r)
	defer cancel()

	removed, err := s.assistant.DeleteByTitle(ctx, body.Title, from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	log.Printf("event deleted by title: %q (%s)", removed.Summary, removed.ID)
	writeJSON(w, http.StatusOK, map[string]string{"message": "이벤트가 삭제되었습니다.", "id": removed.ID})
}
