package mappers

import (
	"github.com/AgroHub-Uni-RV/Ypetec/dto"
	"github.com/AgroHub-Uni-RV/Ypetec/models"
)

// ToSubmissionResp expects Project, Call and Evaluations preloaded when the
// caller wants the denormalized fields filled in.
func ToSubmissionResp(s *models.Submission) dto.SubmissionResp {
	resp := dto.SubmissionResp{
		ID:          s.ID,
		ProjectID:   s.ProjectID,
		CallID:      s.CallID,
		Status:      string(s.Status),
		SubmittedAt: s.SubmittedAt,
	}
	if s.Project != nil {
		resp.ProjectTitle = s.Project.Title
		resp.ProjectSummary = s.Project.Summary
		resp.ProjectArea = s.Project.Area
		resp.ProjectStatus = string(s.Project.Status)
	}
	if s.Call != nil {
		resp.CallTitle = s.Call.Title
	}
	if eval := models.LatestEvaluation(s.Evaluations); eval != nil {
		result := string(eval.Result)
		resp.EvaluationStatus = &result
		resp.EvaluationComments = &eval.Comments
		date := eval.EvaluatedAt
		resp.EvaluationDate = &date
	}
	return resp
}

func ToEvaluationResp(e *models.Evaluation) dto.EvaluationResp {
	resp := dto.EvaluationResp{
		ID:           e.ID,
		SubmissionID: e.SubmissionID,
		EvaluatorID:  e.EvaluatorID,
		Result:       string(e.Result),
		Comments:     e.Comments,
		EvaluatedAt:  e.EvaluatedAt,
	}
	if e.Evaluator != nil {
		resp.EvaluatorName = e.Evaluator.Name
	}
	return resp
}
