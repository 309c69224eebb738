package dto

import "time"

type CreateCallReq struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	OpensAt     time.Time `json:"opens_at" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	ClosesAt    time.Time `json:"closes_at" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	Status      string    `json:"status" binding:"omitempty,oneof=RASCUNHO PUBLICADO ENCERRADO"`
}

type CallResp struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OpensAt     time.Time `json:"opens_at"`
	ClosesAt    time.Time `json:"closes_at"`
	Status      string    `json:"status"`
	Open        bool      `json:"open"`
	CreatedAt   time.Time `json:"created_at"`
}
