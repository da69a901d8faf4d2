package store

import (
	"context"
	"fmt"

	"easybill/internal/database"
	"easybill/internal/model"
)

func InsertAuditEntry(ctx context.Context, db database.DB, e *model.AuditEntry) error {
	_, err := db.Exec(ctx,
		`INSERT INTO audit_log (user_id, action, entity, entity_id)
		 VALUES ($1, $2, $3, $4)`,
		e.UserID,
		e.Action,
		e.Entity,
		e.EntityID,
	)
	if err != nil {
		return fmt.Errorf("InsertAuditEntry: %w", err)
	}
	return nil
}
