package model

import (
	"encoding/json"
	"time"
)

// Audit action kinds.
const (
	AuditActionUpdate = "update"
	AuditActionCreate = "create"
	AuditActionDelete = "delete"
)

// AuditLogEntry is one append-only row of the change history. Entries are
// produced by diffing the persisted document against the saved draft and are
// never mutated or deleted.
type AuditLogEntry struct {
	ID          int64           `json:"id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UserEmail   string          `json:"user_email"`
	Action      string          `json:"action"`
	Description string          `json:"description"`
	OldValue    json.RawMessage `json:"old_value,omitempty"`
	NewValue    json.RawMessage `json:"new_value,omitempty"`
}
