package models

import (
	"time"

	"gorm.io/gorm"
)

type ProjectStatus string

const (
	ProjectStatusPreSubmission   ProjectStatus = "PRE_SUBMISSAO"
	ProjectStatusSubmitted       ProjectStatus = "SUBMETIDO"
	ProjectStatusApproved        ProjectStatus = "APROVADO"
	ProjectStatusRejected        ProjectStatus = "REPROVADO"
	ProjectStatusNeedsAdjustment ProjectStatus = "AJUSTES"
	ProjectStatusIncubated       ProjectStatus = "INCUBADO"
	ProjectStatusInactive        ProjectStatus = "INATIVO"
	ProjectStatusDisengaged      ProjectStatus = "DESLIGADO"
)

// Project is an idea/startup created by a student, submitted to calls for
// evaluation and possible incubation. The owner never changes after creation.
type Project struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	OwnerID     uint64         `gorm:"not null;index" json:"owner_id"`
	Owner       *User          `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Title       string         `gorm:"size:160;not null" json:"title"`
	Summary     string         `gorm:"type:text;not null" json:"summary"`
	Area        string         `gorm:"size:80;not null" json:"area"`
	Status      ProjectStatus  `gorm:"type:enum('PRE_SUBMISSAO','SUBMETIDO','APROVADO','REPROVADO','AJUSTES','INCUBADO','INATIVO','DESLIGADO');not null;default:'PRE_SUBMISSAO';index" json:"status"`
	Members     []TeamMember   `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"members,omitempty"`
	Submissions []Submission   `gorm:"foreignKey:ProjectID" json:"submissions,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Project) TableName() string {
	return "ypetec_projeto"
}

// CanSubmit reports whether the project may be submitted to a call.
func (p *Project) CanSubmit() bool {
	return p.Status == ProjectStatusPreSubmission || p.Status == ProjectStatusNeedsAdjustment
}

// CanDisengage reports whether the owner may disengage the project.
func (p *Project) CanDisengage() bool {
	switch p.Status {
	case ProjectStatusIncubated, ProjectStatusApproved, ProjectStatusSubmitted,
		ProjectStatusPreSubmission, ProjectStatusNeedsAdjustment, ProjectStatusInactive:
		return true
	}
	return false
}

func (p *Project) IsIncubated() bool {
	return p.Status == ProjectStatusIncubated
}
