package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AgroHub-Uni-RV/Ypetec/database"
	"github.com/AgroHub-Uni-RV/Ypetec/dto"
	"github.com/AgroHub-Uni-RV/Ypetec/mappers"
	"github.com/AgroHub-Uni-RV/Ypetec/models"
	"github.com/AgroHub-Uni-RV/Ypetec/services"
	"github.com/AgroHub-Uni-RV/Ypetec/utils"
)

// GetUserList is admin-only: paginated listing with search and role filter.
func GetUserList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	search := c.Query("search")
	role := c.Query("role")

	var users []models.User
	var total int64

	db := database.DB.Model(&models.User{})
	if search != "" {
		db = db.Where("name LIKE ? OR email LIKE ? OR cpf LIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}
	if role != "" {
		db = db.Where("role = ?", role)
	}

	db.Count(&total)
	if err := db.Order("created_at desc").
		Offset((page - 1) * limit).Limit(limit).
		Find(&users).Error; err != nil {
		failService(c, err)
		return
	}

	resp := make([]dto.UserResp, 0, len(users))
	for i := range users {
		resp = append(resp, mappers.ToUserResp(&users[i]))
	}

	utils.Success(c, "success", gin.H{"total": total, "users": resp})
}

func GetUserDetail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	actor := actorFrom(c)
	if actor.ID != id && !services.IsAdmin(actor) {
		utils.Error(c, http.StatusForbidden, 4030, "insufficient permissions")
		return
	}

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, 4004, "user not found")
		return
	}
	utils.Success(c, "success", mappers.ToUserResp(&user))
}

// UpdateUser is admin-only; role and status changes are audited.
func UpdateUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, 1001, "invalid request: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, 4004, "user not found")
		return
	}
	before := user

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		role := models.UserRole(*req.Role)
		switch role {
		case models.RoleAdmin, models.RoleStudent, models.RoleMentor, models.RoleInvestor:
			user.Role = role
		default:
			utils.Error(c, http.StatusBadRequest, 1001, "unrecognized role")
			return
		}
	}
	if req.Status != nil {
		status := models.UserStatus(*req.Status)
		if status != models.UserStatusActive && status != models.UserStatusInactive {
			utils.Error(c, http.StatusBadRequest, 1001, "unrecognized status")
			return
		}
		user.Status = status
	}

	if err := database.DB.Save(&user).Error; err != nil {
		failService(c, err)
		return
	}

	if err := services.RecordAudit(database.DB, actorFrom(c), models.AuditUpdate,
		"Usuario", user.ID, &before, &user, auditMeta(c)); err != nil {
		failService(c, err)
		return
	}

	utils.Success(c, "user updated", mappers.ToUserResp(&user))
}

// DeleteUser soft-deletes and deactivates the account.
func DeleteUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, 4004, "user not found")
		return
	}

	if err := database.DB.Model(&user).Update("status", models.UserStatusInactive).Error; err != nil {
		failService(c, err)
		return
	}
	if err := database.DB.Delete(&user).Error; err != nil {
		failService(c, err)
		return
	}

	services.RecordAuditBestEffort(database.DB, actorFrom(c), models.AuditDelete,
		"Usuario", user.ID, auditMeta(c))

	utils.Success(c, "user deleted", nil)
}

// RestoreUser reverses a soft delete.
func RestoreUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var user models.User
	if err := database.DB.Unscoped().First(&user, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, 4004, "user not found")
		return
	}

	if err := database.DB.Unscoped().Model(&user).
		Updates(map[string]interface{}{"deleted_at": nil, "status": models.UserStatusActive}).Error; err != nil {
		failService(c, err)
		return
	}

	services.RecordAuditBestEffort(database.DB, actorFrom(c), models.AuditRestore,
		"Usuario", user.ID, auditMeta(c))

	utils.Success(c, "user restored", mappers.ToUserResp(&user))
}
