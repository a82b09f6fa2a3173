package model

import (
	"encoding/json"
	"time"
)

// AuditEntry records a user-visible action for later review.
type AuditEntry struct {
	ID      int64           `json:"id"`
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload"`
	Date    time.Time       `json:"date"`
}
