package services

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/janakpur-hospital/census-backend/internal/audit/models"
)

type AuditService struct {
	DB *sql.DB
}

func NewAuditService(db *sql.DB) *AuditService {
	return &AuditService{DB: db}
}

// RecordTx appends an audit row inside the caller's transaction so the
// audited write and its trail commit or roll back together. oldData
// and newData may be nil; anything else is stored as a JSON snapshot.
func RecordTx(tx *sql.Tx, tableName, recordID, action, changedBy string, oldData, newData interface{}) error {
	oldJSON, err := marshalSnapshot(oldData)
	if err != nil {
		return fmt.Errorf("failed to encode old data snapshot: %w", err)
	}
	newJSON, err := marshalSnapshot(newData)
	if err != nil {
		return fmt.Errorf("failed to encode new data snapshot: %w", err)
	}

	_, err = tx.Exec(`
		INSERT INTO audit_logs (id, table_name, record_id, action, old_data, new_data, changed_by)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), tableName, recordID, action, oldJSON, newJSON, changedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return nil
}

func marshalSnapshot(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// ListRecent returns the newest audit records, most recent first.
func (s *AuditService) ListRecent(limit int) ([]models.AuditLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	rows, err := s.DB.Query(`
		SELECT id, table_name, record_id, action, old_data, new_data, changed_by, changed_at
		FROM audit_logs
		ORDER BY changed_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit logs: %w", err)
	}
	defer rows.Close()

	var logs []models.AuditLog
	for rows.Next() {
		var rec models.AuditLog
		var oldData, newData sql.NullString
		if err := rows.Scan(&rec.ID, &rec.TableName, &rec.RecordID, &rec.Action,
			&oldData, &newData, &rec.ChangedBy, &rec.ChangedAt); err != nil {
			return nil, err
		}
		if oldData.Valid {
			rec.OldData = json.RawMessage(oldData.String)
		}
		if newData.Valid {
			rec.NewData = json.RawMessage(newData.String)
		}
		logs = append(logs, rec)
	}
	return logs, rows.Err()
}
