package wusultest

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	jsoniter "github.com/json-iterator/go"

	"go.wusul.io/sdk/internal/jsonerr"
	"go.wusul.io/sdk/types"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const passURLPrefix = "https://wallet.wusul.io/passes/"

type dataResponse struct {
	Success  bool     `json:"success"`
	Data     any      `json:"data"`
	Metadata metadata `json:"metadata"`
}

type metadata struct {
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"requestId,omitempty"`
}

func (s *Server) writeData(w http.ResponseWriter, r *http.Request, status int, data any) {
	s.writeJSON(w, status, &dataResponse{
		Success: true,
		Data:    data,
		Metadata: metadata{
			Timestamp: s.clock.Now().UTC(),
			RequestID: r.Header.Get("X-Request-ID"),
		},
	})
}

// stateChange is the data of a suspend, resume, unlink or delete response.
type stateChange struct {
	ID        string                `json:"id"`
	State     types.AccessPassState `json:"state"`
	UpdatedAt time.Time             `json:"updated_at"`
}

type publishResult struct {
	ID            string    `json:"id"`
	PublishStatus string    `json:"publish_status"`
	PublishedAt   time.Time `json:"published_at"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		jsonerr.Error(w, err, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func decodeBody(r *http.Request, v any) error {
	body := readBody(r)
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("Invalid request body: %w", err)
	}
	return nil
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, types.Health{
		"status":    "ok",
		"timestamp": s.clock.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) issuePass(w http.ResponseWriter, r *http.Request) {
	var p types.IssueAccessPassParams
	if err := decodeBody(r, &p); err != nil {
		jsonerr.Error(w, err, http.StatusBadRequest)
		return
	}
	if err := p.Validate(); err != nil {
		jsonerr.Error(w, err, http.StatusBadRequest)
		return
	}

	now := s.clock.Now().UTC()
	id := "ap_" + uuid.NewString()
	pass := &types.AccessPass{
		ID:             id,
		CardTemplateID: p.CardTemplateID,
		EmployeeID:     p.EmployeeID,
		TagID:          p.TagID,
		SiteCode:       p.SiteCode,
		CardNumber:     p.CardNumber,
		FullName:       p.FullName,
		Email:          p.Email,
		PhoneNumber:    p.PhoneNumber,
		Classification: p.Classification,
		StartDate:      p.StartDate,
		ExpirationDate: p.ExpirationDate,
		State:          types.AccessPassStateActive,
		URL:            passURLPrefix + id,
		Metadata:       p.Metadata,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	s.mu.Lock()
	s.passes[id] = pass
	s.passOrder = append(s.passOrder, id)
	s.logEventLocked("access_pass_issued", id, now)
	issued := *pass
	s.mu.Unlock()

	s.writeData(w, r, http.StatusCreated, &issued)
}

func (s *Server) listPasses(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit, offset, err := pagination(query.Get("limit"), query.Get("offset"))
	if err != nil {
		jsonerr.Error(w, err, http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	matched := []types.AccessPass{}
	for _, id := range s.passOrder {
		pass := s.passes[id]
		if v := query.Get("cardTemplateId"); v != "" && pass.CardTemplateID != v {
			continue
		}
		if v := query.Get("employeeId"); v != "" && pass.EmployeeID != v {
			continue
		}
		if v := query.Get("state"); v != "" && string(pass.State) != v {
			continue
		}
		matched = append(matched, *pass)
	}
	s.mu.Unlock()

	s.writeData(w, r, http.StatusOK, page(matched, limit, offset))
}

func (s *Server) updatePass(w http.ResponseWriter, r *http.Request) {
	var p types.UpdateAccessPassParams
	if err := decodeBody(r, &p); err != nil {
		jsonerr.Error(w, err, http.StatusBadRequest)
		return
	}
	id := mux.Vars(r)["id"]

	s.mu.Lock()
	defer s.mu.Unlock()
	pass, ok := s.passes[id]
	if !ok {
		jsonerr.Error(w, errors.New("Access pass not found"), http.StatusNotFound)
		return
	}

	setIfNotEmpty(&pass.FullName, p.FullName)
	setIfNotEmpty(&pass.Email, p.Email)
	setIfNotEmpty(&pass.PhoneNumber, p.PhoneNumber)
	setIfNotEmpty(&pass.StartDate, p.StartDate)
	setIfNotEmpty(&pass.ExpirationDate, p.ExpirationDate)
	if p.Classification != "" {
		pass.Classification = p.Classification
	}
	if p.Metadata != nil {
		pass.Metadata = p.Metadata
	}
	pass.UpdatedAt = s.clock.Now().UTC()
	s.logEventLocked("access_pass_updated", id, pass.UpdatedAt)

	s.writeData(w, r, http.StatusOK, *pass)
}

// transitions lists the states each action may be applied from, and the
// state it moves the pass to.
var transitions = map[string]struct {
	from  []types.AccessPassState
	to    types.AccessPassState
	event string
}{
	"suspend": {
		from:  []types.AccessPassState{types.AccessPassStateActive},
		to:    types.AccessPassStateSuspended,
		event: "access_pass_suspended",
	},
	"resume": {
		from:  []types.AccessPassState{types.AccessPassStateSuspended},
		to:    types.AccessPassStateActive,
		event: "access_pass_resumed",
	},
	"unlink": {
		from:  []types.AccessPassState{types.AccessPassStateActive, types.AccessPassStateSuspended},
		to:    types.AccessPassStateUnlinked,
		event: "access_pass_unlinked",
	},
}

func (s *Server) transitionPass(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, action := vars["id"], vars["action"]
	transition := transitions[action]

	s.mu.Lock()
	defer s.mu.Unlock()
	pass, ok := s.passes[id]
	if !ok {
		jsonerr.Error(w, errors.New("Access pass not found"), http.StatusNotFound)
		return
	}

	allowed := false
	for _, from := range transition.from {
		allowed = allowed || pass.State == from
	}
	if !allowed {
		jsonerr.Error(w, fmt.Errorf("Cannot %s an access pass that is %s", action, pass.State), http.StatusBadRequest)
		return
	}

	pass.State = transition.to
	pass.UpdatedAt = s.clock.Now().UTC()
	s.logEventLocked(transition.event, id, pass.UpdatedAt)

	s.writeData(w, r, http.StatusOK, &stateChange{ID: id, State: pass.State, UpdatedAt: pass.UpdatedAt})
}

func (s *Server) deletePass(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	s.mu.Lock()
	defer s.mu.Unlock()
	pass, ok := s.passes[id]
	if !ok {
		jsonerr.Error(w, errors.New("Access pass not found"), http.StatusNotFound)
		return
	}

	pass.State = types.AccessPassStateDeleted
	pass.UpdatedAt = s.clock.Now().UTC()
	s.logEventLocked("access_pass_deleted", id, pass.UpdatedAt)

	s.writeData(w, r, http.StatusOK, &stateChange{ID: id, State: pass.State, UpdatedAt: pass.UpdatedAt})
}

func (s *Server) createTemplate(w http.ResponseWriter, r *http.Request) {
	var p types.CreateCardTemplateParams
	if err := decodeBody(r, &p); err != nil {
		jsonerr.Error(w, err, http.StatusBadRequest)
		return
	}
	if err := p.Validate(); err != nil {
		jsonerr.Error(w, err, http.StatusBadRequest)
		return
	}

	now := s.clock.Now().UTC()
	tmpl := &types.CardTemplate{
		ID:          "tpl_" + uuid.NewString(),
		Name:        p.Name,
		Platform:    p.Platform,
		UseCase:     p.UseCase,
		Protocol:    p.Protocol,
		Design:      p.Design,
		SupportInfo: p.SupportInfo,
		Metadata:    p.Metadata,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.mu.Lock()
	s.templates[tmpl.ID] = tmpl
	created := *tmpl
	s.mu.Unlock()

	s.writeData(w, r, http.StatusCreated, &created)
}

func (s *Server) readTemplate(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	tmpl, ok := s.templates[mux.Vars(r)["id"]]
	var found types.CardTemplate
	if ok {
		found = *tmpl
	}
	s.mu.Unlock()

	if !ok {
		jsonerr.Error(w, errors.New("Card template not found"), http.StatusNotFound)
		return
	}
	s.writeData(w, r, http.StatusOK, &found)
}

func (s *Server) updateTemplate(w http.ResponseWriter, r *http.Request) {
	var p types.UpdateCardTemplateParams
	if err := decodeBody(r, &p); err != nil {
		jsonerr.Error(w, err, http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	tmpl, ok := s.templates[mux.Vars(r)["id"]]
	if !ok {
		jsonerr.Error(w, errors.New("Card template not found"), http.StatusNotFound)
		return
	}

	setIfNotEmpty(&tmpl.Name, p.Name)
	if p.Design != nil {
		tmpl.Design = p.Design
	}
	if p.SupportInfo != nil {
		tmpl.SupportInfo = p.SupportInfo
	}
	if p.Metadata != nil {
		tmpl.Metadata = p.Metadata
	}
	tmpl.UpdatedAt = s.clock.Now().UTC()

	s.writeData(w, r, http.StatusOK, *tmpl)
}

func (s *Server) publishTemplate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.templates[id]; !ok {
		jsonerr.Error(w, errors.New("Card template not found"), http.StatusNotFound)
		return
	}
	s.published[id] = true

	s.writeData(w, r, http.StatusOK, &publishResult{
		ID:            id,
		PublishStatus: "published",
		PublishedAt:   s.clock.Now().UTC(),
	})
}

func (s *Server) eventLog(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit, offset, err := pagination(query.Get("limit"), query.Get("offset"))
	if err != nil {
		jsonerr.Error(w, err, http.StatusBadRequest)
		return
	}
	start, err := parseDate(query.Get("startDate"))
	if err != nil {
		jsonerr.Error(w, err, http.StatusBadRequest)
		return
	}
	end, err := parseDate(query.Get("endDate"))
	if err != nil {
		jsonerr.Error(w, err, http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	matched := []types.EventLogEntry{}
	for _, event := range s.events {
		if v := query.Get("accessPassId"); v != "" && event.AccessPassID != v {
			continue
		}
		if v := query.Get("eventType"); v != "" && event.EventType != v {
			continue
		}
		if !start.IsZero() && event.Timestamp.Before(start) {
			continue
		}
		// The end date is inclusive
		if !end.IsZero() && !event.Timestamp.Before(end.AddDate(0, 0, 1)) {
			continue
		}
		matched = append(matched, event)
	}
	s.mu.Unlock()

	// Newest first
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Timestamp.After(matched[j].Timestamp)
	})
	s.writeData(w, r, http.StatusOK, page(matched, limit, offset))
}

// logEventLocked appends an event to the log. s.mu must be held.
func (s *Server) logEventLocked(eventType, passID string, at time.Time) {
	s.events = append(s.events, types.EventLogEntry{
		ID:           "evt_" + uuid.NewString(),
		EventType:    eventType,
		AccessPassID: passID,
		Timestamp:    at,
	})
}

func pagination(limitStr, offsetStr string) (limit, offset int, err error) {
	limit = -1
	if limitStr != "" {
		if limit, err = strconv.Atoi(limitStr); err != nil || limit < 0 {
			return 0, 0, fmt.Errorf("Invalid limit %q", limitStr)
		}
	}
	if offsetStr != "" {
		if offset, err = strconv.Atoi(offsetStr); err != nil || offset < 0 {
			return 0, 0, fmt.Errorf("Invalid offset %q", offsetStr)
		}
	}
	return limit, offset, nil
}

// page returns the window of items selected by limit and offset.
// A negative limit means no limit.
func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit >= 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(types.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("Invalid date %q", value)
	}
	return t, nil
}

func setIfNotEmpty(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
