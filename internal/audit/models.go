package audit

import "time"

// Action names an auditable action.
const (
	ActionApplicationProcessed = "application_processed"
)

// Event is emitted from domain logic to capture processing decisions. Keep
// it transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp     time.Time `json:"timestamp"`
	ApplicationID string    `json:"application_id,omitempty"`
	Applicant     string    `json:"applicant"`
	Action        string    `json:"action"`
	Decision      string    `json:"decision"`
	Stage         string    `json:"stage"`
	Reasons       []string  `json:"reasons,omitempty"`
}
