package models

import (
	"sort"
	"time"
)

type EvaluationResult string

const (
	EvaluationApproved        EvaluationResult = "APROVADO"
	EvaluationRejected        EvaluationResult = "REPROVADO"
	EvaluationNeedsAdjustment EvaluationResult = "NECESSITA_AJUSTES"
)

func (r EvaluationResult) Valid() bool {
	switch r {
	case EvaluationApproved, EvaluationRejected, EvaluationNeedsAdjustment:
		return true
	}
	return false
}

// Evaluation is an evaluator's verdict on a submission. Rows are immutable
// once created; a submission accumulates them over time.
type Evaluation struct {
	ID           uint64           `gorm:"primarykey" json:"id"`
	SubmissionID uint64           `gorm:"not null;index" json:"submission_id"`
	EvaluatorID  uint64           `gorm:"not null" json:"evaluator_id"`
	Evaluator    *User            `gorm:"foreignKey:EvaluatorID" json:"evaluator,omitempty"`
	Result       EvaluationResult `gorm:"type:enum('APROVADO','REPROVADO','NECESSITA_AJUSTES');not null;index" json:"result"`
	Comments     string           `gorm:"type:text" json:"comments"`
	EvaluatedAt  time.Time        `gorm:"autoCreateTime" json:"evaluated_at"`
}

func (Evaluation) TableName() string {
	return "ypetec_avaliacao"
}

// LatestEvaluation picks the authoritative evaluation for display: newest by
// EvaluatedAt, ties broken by the higher ID so the result is stable even when
// two inserts share a timestamp.
func LatestEvaluation(evals []Evaluation) *Evaluation {
	if len(evals) == 0 {
		return nil
	}
	sorted := make([]Evaluation, len(evals))
	copy(sorted, evals)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].EvaluatedAt.Equal(sorted[j].EvaluatedAt) {
			return sorted[i].EvaluatedAt.After(sorted[j].EvaluatedAt)
		}
		return sorted[i].ID > sorted[j].ID
	})
	return &sorted[0]
}
