package services

import (
	"encoding/json"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/AgroHub-Uni-RV/Ypetec/logger"
	"github.com/AgroHub-Uni-RV/Ypetec/models"
)

// AuditMeta carries request-scoped context for the audit trail.
type AuditMeta struct {
	IPAddress string
	UserAgent string
}

// RecordAudit writes an audit row with optional before/after snapshots. When
// called with a transaction handle the row commits or rolls back with the
// command it describes.
func RecordAudit(db *gorm.DB, actor Actor, action models.AuditAction, entity string, entityID uint64, before, after interface{}, meta AuditMeta) error {
	entry := models.AuditLog{
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
	}
	if actor.ID != 0 {
		id := actor.ID
		entry.UserID = &id
	}
	if before != nil {
		data, err := json.Marshal(before)
		if err != nil {
			return err
		}
		entry.DataBefore = data
	}
	if after != nil {
		data, err := json.Marshal(after)
		if err != nil {
			return err
		}
		entry.DataAfter = data
	}
	return db.Create(&entry).Error
}

// RecordAuditBestEffort is for events outside a transaction (logins); a
// failed write is logged and swallowed.
func RecordAuditBestEffort(db *gorm.DB, actor Actor, action models.AuditAction, entity string, entityID uint64, meta AuditMeta) {
	if err := RecordAudit(db, actor, action, entity, entityID, nil, nil, meta); err != nil {
		logger.L.Warn("failed to write audit log", zap.Error(err))
	}
}
