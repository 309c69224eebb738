package dto

import "time"

// CreateEvaluationReq keeps the legacy field names: "status" is the verdict.
type CreateEvaluationReq struct {
	SubmissionID uint64 `json:"submission_id" binding:"required"`
	Status       string `json:"status" binding:"required"`
	Comments     string `json:"comments" binding:"required"`
}

type EvaluationResp struct {
	ID            uint64    `json:"id"`
	SubmissionID  uint64    `json:"submission_id"`
	EvaluatorID   uint64    `json:"evaluator_id"`
	EvaluatorName string    `json:"evaluator_name,omitempty"`
	Result        string    `json:"result"`
	Comments      string    `json:"comments"`
	EvaluatedAt   time.Time `json:"evaluated_at"`
}
