package dto

import "time"

type CreateSubmissionReq struct {
	ProjectID uint64 `json:"project_id" binding:"required"`
	CallID    uint64 `json:"call_id" binding:"required"`
}

type SubmissionResp struct {
	ID                 uint64     `json:"id"`
	ProjectID          uint64     `json:"project_id"`
	ProjectTitle       string     `json:"project_title,omitempty"`
	ProjectSummary     string     `json:"project_summary,omitempty"`
	ProjectArea        string     `json:"project_area,omitempty"`
	ProjectStatus      string     `json:"project_status,omitempty"`
	CallID             uint64     `json:"call_id"`
	CallTitle          string     `json:"call_title,omitempty"`
	Status             string     `json:"status"`
	SubmittedAt        time.Time  `json:"submitted_at"`
	EvaluationStatus   *string    `json:"evaluation_status"`
	EvaluationComments *string    `json:"evaluation_comments"`
	EvaluationDate     *time.Time `json:"evaluation_date"`
}
