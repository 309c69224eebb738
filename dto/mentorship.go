package dto

import "time"

type CreateMentorshipReq struct {
	ProjectID     uint64 `json:"project_id" binding:"required"`
	Area          string `json:"area" binding:"required"`
	Justification string `json:"justification" binding:"required"`
}

type UpdateMentorshipReq struct {
	Status   string  `json:"status" binding:"required"`
	MentorID *uint64 `json:"mentor_id"`
}

type MentorshipResp struct {
	ID             uint64    `json:"id"`
	ProjectID      uint64    `json:"project_id"`
	ProjectTitle   string    `json:"project_title,omitempty"`
	Area           string    `json:"area"`
	Justification  string    `json:"justification"`
	Status         string    `json:"status"`
	RequesterID    uint64    `json:"requester_id"`
	RequesterName  string    `json:"requester_name,omitempty"`
	RequesterEmail string    `json:"requester_email,omitempty"`
	MentorID       *uint64   `json:"mentor_id"`
	MentorName     string    `json:"mentor_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
