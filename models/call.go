package models

import (
	"time"

	"gorm.io/gorm"
)

type CallStatus string

const (
	CallStatusDraft     CallStatus = "RASCUNHO"
	CallStatusPublished CallStatus = "PUBLICADO"
	CallStatusClosed    CallStatus = "ENCERRADO"
)

// Call ("edital") is a window during which students may submit projects.
// OpensAt must precede ClosesAt.
type Call struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	Title       string         `gorm:"size:160;not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	OpensAt     time.Time      `gorm:"not null;index" json:"opens_at" time_format:"2006-01-02T15:04:05Z07:00"`
	ClosesAt    time.Time      `gorm:"not null" json:"closes_at" time_format:"2006-01-02T15:04:05Z07:00"`
	Status      CallStatus     `gorm:"type:enum('RASCUNHO','PUBLICADO','ENCERRADO');not null;default:'RASCUNHO';index" json:"status"`
	CreatedByID uint64         `gorm:"not null" json:"created_by_id"`
	CreatedBy   *User          `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Call) TableName() string {
	return "ypetec_edital"
}

// IsOpen reports whether the call accepts submissions at the given instant.
func (c *Call) IsOpen(now time.Time) bool {
	return c.Status == CallStatusPublished &&
		!now.Before(c.OpensAt) && !now.After(c.ClosesAt)
}

func (c *Call) IsUpcoming(now time.Time) bool {
	return c.OpensAt.After(now)
}

func (c *Call) IsClosed(now time.Time) bool {
	return c.ClosesAt.Before(now) || c.Status == CallStatusClosed
}
