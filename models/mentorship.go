package models

import "time"

type MentorshipStatus string

const (
	MentorshipStatusRequested  MentorshipStatus = "SOLICITADA"
	MentorshipStatusInProgress MentorshipStatus = "EM_ANDAMENTO"
	MentorshipStatusCompleted  MentorshipStatus = "CONCLUIDA"
	MentorshipStatusDenied     MentorshipStatus = "NEGADA"
)

// ValidTransitionTarget reports whether an admin may move a request to s.
// SOLICITADA is the creation state and never a target.
func (s MentorshipStatus) ValidTransitionTarget() bool {
	switch s {
	case MentorshipStatusInProgress, MentorshipStatusCompleted, MentorshipStatusDenied:
		return true
	}
	return false
}

// MentorshipRequest asks for specialized guidance on an incubated project.
type MentorshipRequest struct {
	ID            uint64           `gorm:"primarykey" json:"id"`
	ProjectID     uint64           `gorm:"not null;index" json:"project_id"`
	Project       *Project         `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Area          string           `gorm:"size:80;not null" json:"area"`
	Justification string           `gorm:"type:text;not null" json:"justification"`
	Status        MentorshipStatus `gorm:"type:enum('SOLICITADA','EM_ANDAMENTO','CONCLUIDA','NEGADA');not null;default:'SOLICITADA';index" json:"status"`
	RequesterID   uint64           `gorm:"not null;index" json:"requester_id"`
	Requester     *User            `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	MentorID      *uint64          `gorm:"index" json:"mentor_id,omitempty"`
	Mentor        *User            `gorm:"foreignKey:MentorID" json:"mentor,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

func (MentorshipRequest) TableName() string {
	return "ypetec_solicitacao_mentoria"
}
