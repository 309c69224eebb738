package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/AgroHub-Uni-RV/Ypetec/database"
	"github.com/AgroHub-Uni-RV/Ypetec/dto"
	"github.com/AgroHub-Uni-RV/Ypetec/logger"
	"github.com/AgroHub-Uni-RV/Ypetec/mappers"
	"github.com/AgroHub-Uni-RV/Ypetec/models"
	"github.com/AgroHub-Uni-RV/Ypetec/utils"
)

// CreateSubmission submits the student's project to a call.
func CreateSubmission(c *gin.Context) {
	var req dto.CreateSubmissionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, 1001, "invalid request: "+err.Error())
		return
	}

	submission, err := lifecycle().SubmitProject(req.ProjectID, req.CallID, actorFrom(c), auditMeta(c))
	if err != nil {
		failService(c, err)
		return
	}

	// Reload with associations for the response; fall back to the bare
	// submission when the read fails.
	full := *submission
	if err := database.DB.Preload("Project").Preload("Call").
		First(&full, submission.ID).Error; err == nil {
		submission = &full
	} else {
		logger.L.Warn("failed to reload submission", zap.Error(err),
			zap.Uint64("submission_id", submission.ID))
	}
	utils.Created(c, "submission created", mappers.ToSubmissionResp(submission))
}

// GetSubmissionList is admin-only. ?status=pending|evaluated filters on
// whether any evaluation exists yet. Disengaged projects are excluded.
func GetSubmissionList(c *gin.Context) {
	db := database.DB.Model(&models.Submission{}).
		Joins("JOIN ypetec_projeto p ON p.id = ypetec_submissao.project_id").
		Where("p.status <> ?", models.ProjectStatusDisengaged).
		Preload("Project").Preload("Call").Preload("Evaluations")

	switch c.Query("status") {
	case "pending":
		db = db.Where("NOT EXISTS (SELECT 1 FROM ypetec_avaliacao a WHERE a.submission_id = ypetec_submissao.id)")
	case "evaluated":
		db = db.Where("EXISTS (SELECT 1 FROM ypetec_avaliacao a WHERE a.submission_id = ypetec_submissao.id)")
	case "":
	default:
		utils.Error(c, http.StatusBadRequest, 1001, "unrecognized status filter")
		return
	}

	var submissions []models.Submission
	if err := db.Order("submitted_at desc").Find(&submissions).Error; err != nil {
		failService(c, err)
		return
	}

	resp := make([]dto.SubmissionResp, 0, len(submissions))
	for i := range submissions {
		resp = append(resp, mappers.ToSubmissionResp(&submissions[i]))
	}
	utils.Success(c, "success", resp)
}

func GetSubmissionDetail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var submission models.Submission
	if err := database.DB.
		Preload("Project").Preload("Call").Preload("Evaluations.Evaluator").
		First(&submission, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, 4004, "submission not found")
		return
	}
	utils.Success(c, "success", mappers.ToSubmissionResp(&submission))
}
