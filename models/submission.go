package models

import "time"

type SubmissionStatus string

const (
	SubmissionStatusSent                 SubmissionStatus = "ENVIADA"
	SubmissionStatusUnderReview          SubmissionStatus = "EM_AVALIACAO"
	SubmissionStatusApproved             SubmissionStatus = "APROVADA"
	SubmissionStatusRejected             SubmissionStatus = "REPROVADA"
	SubmissionStatusAdjustmentsRequested SubmissionStatus = "AJUSTES_SOLICITADOS"
)

// Submission ties a project to a call. The unique index serializes concurrent
// submissions of the same pair: the race loser gets a duplicate-key error.
type Submission struct {
	ID          uint64           `gorm:"primarykey" json:"id"`
	ProjectID   uint64           `gorm:"uniqueIndex:unique_project_call;not null" json:"project_id"`
	Project     *Project         `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	CallID      uint64           `gorm:"uniqueIndex:unique_project_call;not null" json:"call_id"`
	Call        *Call            `gorm:"foreignKey:CallID" json:"call,omitempty"`
	Status      SubmissionStatus `gorm:"type:enum('ENVIADA','EM_AVALIACAO','APROVADA','REPROVADA','AJUSTES_SOLICITADOS');not null;default:'ENVIADA';index" json:"status"`
	Evaluations []Evaluation     `gorm:"foreignKey:SubmissionID" json:"evaluations,omitempty"`
	SubmittedAt time.Time        `gorm:"autoCreateTime" json:"submitted_at"`
}

func (Submission) TableName() string {
	return "ypetec_submissao"
}
