package mappers

import (
	"github.com/AgroHub-Uni-RV/Ypetec/dto"
	"github.com/AgroHub-Uni-RV/Ypetec/models"
)

func ToMentorshipResp(m *models.MentorshipRequest) dto.MentorshipResp {
	resp := dto.MentorshipResp{
		ID:            m.ID,
		ProjectID:     m.ProjectID,
		Area:          m.Area,
		Justification: m.Justification,
		Status:        string(m.Status),
		RequesterID:   m.RequesterID,
		MentorID:      m.MentorID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.Project != nil {
		resp.ProjectTitle = m.Project.Title
	}
	if m.Requester != nil {
		resp.RequesterName = m.Requester.Name
		resp.RequesterEmail = m.Requester.Email
	}
	if m.Mentor != nil {
		resp.MentorName = m.Mentor.Name
	}
	return resp
}
