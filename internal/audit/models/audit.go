package models

import (
	"encoding/json"
	"time"
)

// Audit actions recorded against census rows.
const (
	ActionCreate = "CREATE"
	ActionUpdate = "UPDATE"
)

// AuditLog is one append-only row in audit_logs, written as a side
// effect of every mutating action.
type AuditLog struct {
	ID        string          `json:"id"`
	TableName string          `json:"table_name"`
	RecordID  string          `json:"record_id"`
	Action    string          `json:"action"`
	OldData   json.RawMessage `json:"old_data,omitempty"`
	NewData   json.RawMessage `json:"new_data,omitempty"`
	ChangedBy string          `json:"changed_by"`
	ChangedAt time.Time       `json:"changed_at"`
}
