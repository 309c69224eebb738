package dto

import "time"

// TeamMemberReq uses the field names the legacy frontend sends.
type TeamMemberReq struct {
	MemberName  string `json:"member_name"`
	MemberEmail string `json:"member_email"`
	RoleInTeam  string `json:"role_in_team"`
}

type CreateProjectReq struct {
	Title   string          `json:"title" binding:"required"`
	Summary string          `json:"summary" binding:"required"`
	Area    string          `json:"area" binding:"required"`
	Team    []TeamMemberReq `json:"team"`
}

type TeamMemberResp struct {
	ID         uint64 `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	RoleInTeam string `json:"role_in_team"`
}

type ProjectResp struct {
	ID        uint64           `json:"id"`
	Title     string           `json:"title"`
	Summary   string           `json:"summary"`
	Area      string           `json:"area"`
	Status    string           `json:"status"`
	OwnerID   uint64           `json:"owner_id"`
	OwnerName string           `json:"owner_name,omitempty"`
	Members   []TeamMemberResp `json:"members"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// MyProjectItem is the student dashboard row: the project plus whatever its
// latest submission/evaluation says.
type MyProjectItem struct {
	ID               uint64  `json:"id"`
	Title            string  `json:"title"`
	Area             string  `json:"area"`
	Status           string  `json:"status"`
	StatusLabel      string  `json:"status_label"`
	CallTitle        string  `json:"call_title"`
	SubmissionID     *uint64 `json:"submission_id"`
	EvaluationStatus *string `json:"evaluation_status"`
}

type CreateProgressReportReq struct {
	ProjectID uint64 `json:"project_id" binding:"required"`
	Period    string `json:"period" binding:"required,oneof=MENSAL TRIMESTRAL"`
	Content   string `json:"content" binding:"required"`
}
