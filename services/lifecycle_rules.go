package services

import "github.com/AgroHub-Uni-RV/Ypetec/models"

// Pure transition rules for the project/submission lifecycle. The service
// methods apply them inside transactions; tests exercise them directly.

// SubmissionStatusForResult maps an evaluation result onto the submission.
func SubmissionStatusForResult(result models.EvaluationResult) (models.SubmissionStatus, bool) {
	switch result {
	case models.EvaluationApproved:
		return models.SubmissionStatusApproved, true
	case models.EvaluationRejected:
		return models.SubmissionStatusRejected, true
	case models.EvaluationNeedsAdjustment:
		return models.SubmissionStatusAdjustmentsRequested, true
	}
	return "", false
}

// ProjectStatusForResult mirrors the evaluation result onto the project, in
// lock-step with the submission.
func ProjectStatusForResult(result models.EvaluationResult) (models.ProjectStatus, bool) {
	switch result {
	case models.EvaluationApproved:
		return models.ProjectStatusApproved, true
	case models.EvaluationRejected:
		return models.ProjectStatusRejected, true
	case models.EvaluationNeedsAdjustment:
		return models.ProjectStatusNeedsAdjustment, true
	}
	return "", false
}

// PublishableStatus reports whether a project in the given status may be
// published to the showcase.
func PublishableStatus(status models.ProjectStatus) bool {
	return status == models.ProjectStatusApproved || status == models.ProjectStatusIncubated
}
