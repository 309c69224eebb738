package controllers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/AgroHub-Uni-RV/Ypetec/database"
	"github.com/AgroHub-Uni-RV/Ypetec/dto"
	"github.com/AgroHub-Uni-RV/Ypetec/mappers"
	"github.com/AgroHub-Uni-RV/Ypetec/models"
	"github.com/AgroHub-Uni-RV/Ypetec/services"
	"github.com/AgroHub-Uni-RV/Ypetec/utils"
)

const uploadDir = "uploads"

// GetShowcase is the public listing of published projects, served from the
// Redis-backed showcase cache.
func GetShowcase(c *gin.Context) {
	entries, err := showcase().Showcase(c.Request.Context())
	if err != nil {
		failService(c, err)
		return
	}
	utils.Success(c, "success", entries)
}

// GetPublicationList is admin-only and includes inactive publications.
func GetPublicationList(c *gin.Context) {
	var publications []models.Publication
	if err := database.DB.Preload("Project").
		Order("published_at desc").
		Find(&publications).Error; err != nil {
		failService(c, err)
		return
	}

	resp := make([]dto.PublicationResp, 0, len(publications))
	for i := range publications {
		resp = append(resp, mappers.ToPublicationResp(&publications[i]))
	}
	utils.Success(c, "success", resp)
}

// CreatePublication publishes an approved project. Multipart form: project_id,
// public_description and a "logo" file.
func CreatePublication(c *gin.Context) {
	var req dto.CreatePublicationReq
	if err := c.ShouldBind(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, 1001, "invalid request: "+err.Error())
		return
	}

	file, err := c.FormFile("logo")
	if err != nil {
		utils.Error(c, http.StatusBadRequest, 1001, "logo file is required")
		return
	}
	logoPath := utils.GenerateLogoName(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, logoPath)); err != nil {
		failService(c, err)
		return
	}

	publication, err := lifecycle().PublishProject(
		req.ProjectID, logoPath, req.PublicDescription, actorFrom(c), auditMeta(c))
	if err != nil {
		failService(c, err)
		return
	}

	showcase().InvalidateShowcase(c.Request.Context())
	utils.Created(c, "project published", mappers.ToPublicationResp(publication))
}

// UpdatePublication toggles the featured/active flags (admin).
func UpdatePublication(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdatePublicationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, 1001, "invalid request: "+err.Error())
		return
	}

	var publication models.Publication
	if err := database.DB.First(&publication, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, 4004, "publication not found")
		return
	}
	before := publication

	updates := map[string]interface{}{}
	if req.Active != nil {
		updates["active"] = *req.Active
		publication.Active = *req.Active
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
		publication.Featured = *req.Featured
	}
	if len(updates) == 0 {
		utils.Error(c, http.StatusBadRequest, 1001, "nothing to update")
		return
	}

	if err := database.DB.Model(&models.Publication{}).Where("id = ?", id).
		Updates(updates).Error; err != nil {
		failService(c, err)
		return
	}

	if err := services.RecordAudit(database.DB, actorFrom(c), models.AuditUpdate,
		"Publicacao", id, &before, &publication, auditMeta(c)); err != nil {
		failService(c, err)
		return
	}

	showcase().InvalidateShowcase(c.Request.Context())
	utils.Success(c, "publication updated", mappers.ToPublicationResp(&publication))
}
