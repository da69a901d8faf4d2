// File: internal/model/audit.go
package model

import "time"

// AuditEntry records a mutation performed through the API. Entries are
// written asynchronously and never affect the request outcome.
type AuditEntry struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	Action    string    `db:"action" json:"action"`
	Entity    string    `db:"entity" json:"entity"`
	EntityID  int       `db:"entity_id" json:"entity_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
