package models

import "time"

// TeamMember belongs to a project and is removed with it (hard delete, unlike
// every other entity).
type TeamMember struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	ProjectID  uint64    `gorm:"not null;index" json:"project_id"`
	Name       string    `gorm:"size:120;not null" json:"name"`
	Email      string    `gorm:"size:120" json:"email"`
	RoleInTeam string    `gorm:"size:80;not null" json:"role_in_team"`
	CreatedAt  time.Time `json:"created_at"`
}

func (TeamMember) TableName() string {
	return "ypetec_membro_equipe"
}
