package types

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ReadEventLogParams filter the entries returned from the event log.
// Empty strings and nil pagination fields are not sent.
type ReadEventLogParams struct {
	AccessPassID string  `json:"accessPassId,omitempty"`
	EventType    string  `json:"eventType,omitempty"`
	StartDate    string  `json:"startDate,omitempty"`
	EndDate      string  `json:"endDate,omitempty"`
	Limit        *uint32 `json:"limit,omitempty"`
	Offset       *uint32 `json:"offset,omitempty"`
}

func (p *ReadEventLogParams) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.StartDate, validation.Date(DateLayout)),
		validation.Field(&p.EndDate, validation.Date(DateLayout)),
	)
}

// EventLogEntry is a single entry in the account event log.
type EventLogEntry struct {
	ID           string         `json:"id"`
	EventType    string         `json:"eventType"`
	AccessPassID string         `json:"accessPassId"`
	Timestamp    time.Time      `json:"timestamp"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}
