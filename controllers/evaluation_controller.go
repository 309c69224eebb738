package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AgroHub-Uni-RV/Ypetec/database"
	"github.com/AgroHub-Uni-RV/Ypetec/dto"
	"github.com/AgroHub-Uni-RV/Ypetec/mappers"
	"github.com/AgroHub-Uni-RV/Ypetec/models"
	"github.com/AgroHub-Uni-RV/Ypetec/utils"
)

// CreateEvaluation records an admin verdict on a submission. Submission and
// project statuses move together inside the service transaction.
func CreateEvaluation(c *gin.Context) {
	var req dto.CreateEvaluationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, 1001, "invalid request: "+err.Error())
		return
	}

	evaluation, err := lifecycle().RecordEvaluation(
		req.SubmissionID,
		models.EvaluationResult(req.Status),
		req.Comments,
		actorFrom(c),
		auditMeta(c),
	)
	if err != nil {
		failService(c, err)
		return
	}

	utils.Created(c, "evaluation recorded", mappers.ToEvaluationResp(evaluation))
}

// GetEvaluationList is admin-only. ?submission=<id> narrows to one submission.
func GetEvaluationList(c *gin.Context) {
	db := database.DB.Model(&models.Evaluation{}).Preload("Evaluator")

	if submissionParam := c.Query("submission"); submissionParam != "" {
		submissionID, err := strconv.ParseUint(submissionParam, 10, 64)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, 1002, "invalid submission id")
			return
		}
		db = db.Where("submission_id = ?", submissionID)
	}

	var evaluations []models.Evaluation
	if err := db.Order("evaluated_at desc, id desc").Find(&evaluations).Error; err != nil {
		failService(c, err)
		return
	}

	resp := make([]dto.EvaluationResp, 0, len(evaluations))
	for i := range evaluations {
		resp = append(resp, mappers.ToEvaluationResp(&evaluations[i]))
	}
	utils.Success(c, "success", resp)
}
