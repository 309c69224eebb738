package dto

import "time"

// CreatePublicationReq comes as multipart form data; the logo file itself is
// read from the request separately.
type CreatePublicationReq struct {
	ProjectID         uint64 `form:"project_id" binding:"required"`
	PublicDescription string `form:"public_description" binding:"required"`
}

type UpdatePublicationReq struct {
	Active   *bool `json:"active"`
	Featured *bool `json:"featured"`
}

type PublicationResp struct {
	ID          uint64    `json:"id"`
	ProjectID   uint64    `json:"project_id"`
	Logo        string    `json:"logo"`
	Description string    `json:"description"`
	Featured    bool      `json:"featured"`
	Active      bool      `json:"active"`
	PublishedAt time.Time `json:"published_at"`
}

// ShowcaseEntry is the public view of a publication; cached as-is in Redis.
type ShowcaseEntry struct {
	ID          uint64    `json:"id"`
	ProjectID   uint64    `json:"project_id"`
	Title       string    `json:"title"`
	Area        string    `json:"area"`
	Logo        string    `json:"logo"`
	Description string    `json:"description"`
	Featured    bool      `json:"featured"`
	PublishedAt time.Time `json:"published_at"`
}
