package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AgroHub-Uni-RV/Ypetec/database"
	"github.com/AgroHub-Uni-RV/Ypetec/dto"
	"github.com/AgroHub-Uni-RV/Ypetec/mappers"
	"github.com/AgroHub-Uni-RV/Ypetec/middlewares"
	"github.com/AgroHub-Uni-RV/Ypetec/models"
	"github.com/AgroHub-Uni-RV/Ypetec/services"
	"github.com/AgroHub-Uni-RV/Ypetec/utils"
)

func isAdminRequest(c *gin.Context) bool {
	actor, ok := middlewares.GetActor(c)
	return ok && actor.Role == models.RoleAdmin
}

// GetCallList is public. ?status=open|upcoming|closed|all, default open.
// Drafts only show up for admins.
func GetCallList(c *gin.Context) {
	now := time.Now()
	db := database.DB.Model(&models.Call{})

	switch c.DefaultQuery("status", "open") {
	case "open":
		db = db.Where("status = ? AND opens_at <= ? AND closes_at >= ?",
			models.CallStatusPublished, now, now)
	case "upcoming":
		db = db.Where("status = ? AND opens_at > ?", models.CallStatusPublished, now)
	case "closed":
		db = db.Where("closes_at < ? OR status = ?", now, models.CallStatusClosed)
		if !isAdminRequest(c) {
			db = db.Where("status <> ?", models.CallStatusDraft)
		}
	case "all":
		if !isAdminRequest(c) {
			db = db.Where("status <> ?", models.CallStatusDraft)
		}
	default:
		utils.Error(c, http.StatusBadRequest, 1001, "unrecognized status filter")
		return
	}

	var calls []models.Call
	if err := db.Order("opens_at desc").Find(&calls).Error; err != nil {
		failService(c, err)
		return
	}

	resp := make([]dto.CallResp, 0, len(calls))
	for i := range calls {
		resp = append(resp, mappers.ToCallResp(&calls[i], now))
	}
	utils.Success(c, "success", resp)
}

func GetCallDetail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var call models.Call
	if err := database.DB.First(&call, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, 4004, "call not found")
		return
	}
	if call.Status == models.CallStatusDraft && !isAdminRequest(c) {
		utils.Error(c, http.StatusNotFound, 4004, "call not found")
		return
	}
	utils.Success(c, "success", mappers.ToCallResp(&call, time.Now()))
}

// CreateCall is admin-only. OpensAt must precede ClosesAt.
func CreateCall(c *gin.Context) {
	var req dto.CreateCallReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, 1001, "invalid request: "+err.Error())
		return
	}
	if !req.OpensAt.Before(req.ClosesAt) {
		utils.Error(c, http.StatusBadRequest, 1001, "opens_at must be before closes_at")
		return
	}

	status := models.CallStatusDraft
	if req.Status != "" {
		status = models.CallStatus(req.Status)
	}

	actor := actorFrom(c)
	call := models.Call{
		Title:       req.Title,
		Description: req.Description,
		OpensAt:     req.OpensAt,
		ClosesAt:    req.ClosesAt,
		Status:      status,
		CreatedByID: actor.ID,
	}
	if err := database.DB.Create(&call).Error; err != nil {
		failService(c, err)
		return
	}

	services.RecordAuditBestEffort(database.DB, actor, models.AuditCreate,
		"Edital", call.ID, auditMeta(c))

	utils.Created(c, "call created", mappers.ToCallResp(&call, time.Now()))
}

// UpdateCall is admin-only.
func UpdateCall(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateCallReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, 1001, "invalid request: "+err.Error())
		return
	}
	if !req.OpensAt.Before(req.ClosesAt) {
		utils.Error(c, http.StatusBadRequest, 1001, "opens_at must be before closes_at")
		return
	}

	var call models.Call
	if err := database.DB.First(&call, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, 4004, "call not found")
		return
	}
	before := call

	call.Title = req.Title
	call.Description = req.Description
	call.OpensAt = req.OpensAt
	call.ClosesAt = req.ClosesAt
	if req.Status != "" {
		call.Status = models.CallStatus(req.Status)
	}
	if err := database.DB.Save(&call).Error; err != nil {
		failService(c, err)
		return
	}

	if err := services.RecordAudit(database.DB, actorFrom(c), models.AuditUpdate,
		"Edital", call.ID, &before, &call, auditMeta(c)); err != nil {
		failService(c, err)
		return
	}

	utils.Success(c, "call updated", mappers.ToCallResp(&call, time.Now()))
}

// DeleteCall soft-deletes; submissions referencing the call keep their rows.
func DeleteCall(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var call models.Call
	if err := database.DB.First(&call, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, 4004, "call not found")
		return
	}

	if err := database.DB.Delete(&call).Error; err != nil {
		failService(c, err)
		return
	}

	services.RecordAuditBestEffort(database.DB, actorFrom(c), models.AuditDelete,
		"Edital", call.ID, auditMeta(c))

	utils.Success(c, "call deleted", nil)
}
