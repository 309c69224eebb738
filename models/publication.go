package models

import "time"

// Publication puts an approved project on the public showcase. One per
// project, enforced by the unique index on ProjectID.
type Publication struct {
	ID            uint64    `gorm:"primarykey" json:"id"`
	ProjectID     uint64    `gorm:"uniqueIndex;not null" json:"project_id"`
	Project       *Project  `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Logo          string    `gorm:"size:255;not null" json:"logo"`
	Description   string    `gorm:"type:text;not null" json:"description"`
	PublishedByID uint64    `gorm:"not null" json:"published_by_id"`
	PublishedBy   *User     `gorm:"foreignKey:PublishedByID" json:"published_by,omitempty"`
	PublishedAt   time.Time `gorm:"autoCreateTime" json:"published_at"`
	Featured      bool      `gorm:"default:false" json:"featured"`
	Active        bool      `gorm:"default:true" json:"active"`
}

func (Publication) TableName() string {
	return "ypetec_publicacao"
}
