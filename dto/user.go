package dto

import "time"

type UserResp struct {
	ID        uint64    `json:"id"`
	CPF       string    `json:"cpf"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateUserReq is admin-only; nil fields are left untouched.
type UpdateUserReq struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Role   *string `json:"role"`
	Status *string `json:"status"`
}
