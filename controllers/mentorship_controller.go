package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AgroHub-Uni-RV/Ypetec/database"
	"github.com/AgroHub-Uni-RV/Ypetec/dto"
	"github.com/AgroHub-Uni-RV/Ypetec/mappers"
	"github.com/AgroHub-Uni-RV/Ypetec/models"
	"github.com/AgroHub-Uni-RV/Ypetec/utils"
)

// CreateMentorshipRequest opens a request for the student's incubated project.
func CreateMentorshipRequest(c *gin.Context) {
	var req dto.CreateMentorshipReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, 1001, "invalid request: "+err.Error())
		return
	}

	request, err := lifecycle().RequestMentorship(
		req.ProjectID, req.Area, req.Justification, actorFrom(c), auditMeta(c))
	if err != nil {
		failService(c, err)
		return
	}

	utils.Created(c, "mentorship requested", mappers.ToMentorshipResp(request))
}

// GetMyMentorshipRequests lists the student's own requests.
func GetMyMentorshipRequests(c *gin.Context) {
	actor := actorFrom(c)

	var requests []models.MentorshipRequest
	if err := database.DB.
		Where("requester_id = ?", actor.ID).
		Preload("Project").Preload("Mentor").
		Order("created_at desc").
		Find(&requests).Error; err != nil {
		failService(c, err)
		return
	}

	resp := make([]dto.MentorshipResp, 0, len(requests))
	for i := range requests {
		resp = append(resp, mappers.ToMentorshipResp(&requests[i]))
	}
	utils.Success(c, "success", resp)
}

// GetMentorshipRequestList is admin-only, optional ?status= filter.
func GetMentorshipRequestList(c *gin.Context) {
	db := database.DB.Model(&models.MentorshipRequest{}).
		Preload("Project").Preload("Requester").Preload("Mentor")

	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}

	var requests []models.MentorshipRequest
	if err := db.Order("created_at desc").Find(&requests).Error; err != nil {
		failService(c, err)
		return
	}

	resp := make([]dto.MentorshipResp, 0, len(requests))
	for i := range requests {
		resp = append(resp, mappers.ToMentorshipResp(&requests[i]))
	}
	utils.Success(c, "success", resp)
}

// UpdateMentorshipStatus moves a request forward and optionally assigns the
// mentor (admin).
func UpdateMentorshipStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateMentorshipReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, 1001, "invalid request: "+err.Error())
		return
	}

	request, err := lifecycle().UpdateMentorshipStatus(
		id, models.MentorshipStatus(req.Status), req.MentorID, actorFrom(c), auditMeta(c))
	if err != nil {
		failService(c, err)
		return
	}

	utils.Success(c, "mentorship updated", mappers.ToMentorshipResp(request))
}
