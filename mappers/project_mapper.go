package mappers

import (
	"sort"

	"github.com/AgroHub-Uni-RV/Ypetec/dto"
	"github.com/AgroHub-Uni-RV/Ypetec/models"
)

func ToProjectResp(p *models.Project) dto.ProjectResp {
	resp := dto.ProjectResp{
		ID:        p.ID,
		Title:     p.Title,
		Summary:   p.Summary,
		Area:      p.Area,
		Status:    string(p.Status),
		OwnerID:   p.OwnerID,
		Members:   make([]dto.TeamMemberResp, 0, len(p.Members)),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.Owner != nil {
		resp.OwnerName = p.Owner.Name
	}
	for _, m := range p.Members {
		resp.Members = append(resp.Members, dto.TeamMemberResp{
			ID:         m.ID,
			Name:       m.Name,
			Email:      m.Email,
			RoleInTeam: m.RoleInTeam,
		})
	}
	return resp
}

// latestSubmission mirrors models.LatestEvaluation: newest SubmittedAt wins,
// higher ID breaks ties.
func latestSubmission(subs []models.Submission) *models.Submission {
	if len(subs) == 0 {
		return nil
	}
	sorted := make([]models.Submission, len(subs))
	copy(sorted, subs)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].SubmittedAt.Equal(sorted[j].SubmittedAt) {
			return sorted[i].SubmittedAt.After(sorted[j].SubmittedAt)
		}
		return sorted[i].ID > sorted[j].ID
	})
	return &sorted[0]
}

var submissionLabels = map[models.SubmissionStatus]string{
	models.SubmissionStatusUnderReview:          "Em avaliação",
	models.SubmissionStatusAdjustmentsRequested: "Ajustes solicitados",
	models.SubmissionStatusApproved:             "Aprovada (aguardando publicação)",
	models.SubmissionStatusRejected:             "Reprovada",
	models.SubmissionStatusSent:                 "Enviada",
}

var projectLabels = map[models.ProjectStatus]string{
	models.ProjectStatusSubmitted:       "Submetido",
	models.ProjectStatusNeedsAdjustment: "Ajustes",
	models.ProjectStatusApproved:        "Aprovado",
	models.ProjectStatusRejected:        "Reprovado",
}

var evaluationLabels = map[models.EvaluationResult]string{
	models.EvaluationApproved:        "Aprovado",
	models.EvaluationRejected:        "Reprovado",
	models.EvaluationNeedsAdjustment: "Necessita ajustes",
}

// ToMyProjectItem flattens a project with its submissions (and their
// evaluations preloaded) into one dashboard row. The project status prevails
// for terminal states; otherwise the latest evaluation, then the latest
// submission, decides the label.
func ToMyProjectItem(p *models.Project) dto.MyProjectItem {
	item := dto.MyProjectItem{
		ID:        p.ID,
		Title:     p.Title,
		Area:      p.Area,
		Status:    string(p.Status),
		CallTitle: "—",
	}

	sub := latestSubmissionOf(p)
	if sub != nil {
		id := sub.ID
		item.SubmissionID = &id
		if sub.Call != nil {
			item.CallTitle = sub.Call.Title
		}
		if eval := models.LatestEvaluation(sub.Evaluations); eval != nil {
			result := string(eval.Result)
			item.EvaluationStatus = &result
		}
	}

	item.StatusLabel = statusLabel(p, sub)
	return item
}

func latestSubmissionOf(p *models.Project) *models.Submission {
	return latestSubmission(p.Submissions)
}

func statusLabel(p *models.Project, sub *models.Submission) string {
	if p.Status == models.ProjectStatusIncubated {
		return "Incubado"
	}
	if p.Status == models.ProjectStatusDisengaged {
		return "Desligado"
	}
	if sub != nil {
		if eval := models.LatestEvaluation(sub.Evaluations); eval != nil {
			if label, ok := evaluationLabels[eval.Result]; ok {
				return label
			}
		}
		if label, ok := submissionLabels[sub.Status]; ok {
			return label
		}
		return string(sub.Status)
	}
	if label, ok := projectLabels[p.Status]; ok {
		return label
	}
	return "Rascunho"
}
