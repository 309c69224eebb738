package models

import (
	"encoding/json"
	"time"
)

type AuditAction string

const (
	AuditCreate    AuditAction = "CRIAR"
	AuditUpdate    AuditAction = "ATUALIZAR"
	AuditDelete    AuditAction = "DELETAR"
	AuditRestore   AuditAction = "RESTAURAR"
	AuditLogin     AuditAction = "LOGIN"
	AuditEvaluate  AuditAction = "AVALIAR"
	AuditSubmit    AuditAction = "SUBMETER"
	AuditPublish   AuditAction = "PUBLICAR"
	AuditDisengage AuditAction = "DESLIGAR"
)

// AuditLog records who did what to which entity, with before/after snapshots
// for external audit consumers.
type AuditLog struct {
	ID         uint64          `gorm:"primarykey" json:"id"`
	UserID     *uint64         `gorm:"index" json:"user_id,omitempty"`
	Action     AuditAction     `gorm:"size:80;not null;index" json:"action"`
	Entity     string          `gorm:"size:80;not null;index:idx_entity" json:"entity"`
	EntityID   uint64          `gorm:"not null;index:idx_entity" json:"entity_id"`
	DataBefore json.RawMessage `gorm:"type:json" json:"data_before,omitempty"`
	DataAfter  json.RawMessage `gorm:"type:json" json:"data_after,omitempty"`
	IPAddress  string          `gorm:"size:45" json:"ip_address,omitempty"`
	UserAgent  string          `gorm:"type:text" json:"user_agent,omitempty"`
	CreatedAt  time.Time       `gorm:"index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "ypetec_log_auditoria"
}
