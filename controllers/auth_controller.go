package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/AgroHub-Uni-RV/Ypetec/database"
	"github.com/AgroHub-Uni-RV/Ypetec/dto"
	"github.com/AgroHub-Uni-RV/Ypetec/logger"
	"github.com/AgroHub-Uni-RV/Ypetec/mappers"
	"github.com/AgroHub-Uni-RV/Ypetec/middlewares"
	"github.com/AgroHub-Uni-RV/Ypetec/models"
	"github.com/AgroHub-Uni-RV/Ypetec/services"
	"github.com/AgroHub-Uni-RV/Ypetec/utils"
)

// Register creates a student account. Public registration never grants any
// other role.
func Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, 1001, "invalid request: "+err.Error())
		return
	}
	if !models.ValidCPF(req.CPF) {
		utils.Error(c, http.StatusBadRequest, 1001, "CPF must contain exactly 11 digits")
		return
	}

	var count int64
	database.DB.Model(&models.User{}).
		Where("cpf = ? OR email = ?", models.NormalizeCPF(req.CPF), req.Email).
		Count(&count)
	if count > 0 {
		utils.Error(c, http.StatusConflict, 4090, "CPF or email already registered")
		return
	}

	user := models.User{
		CPF:      req.CPF,
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     models.RoleStudent,
		Status:   models.UserStatusActive,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.Error(c, http.StatusConflict, 4090, "CPF or email already registered")
			return
		}
		failService(c, err)
		return
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		failService(c, err)
		return
	}

	utils.Created(c, "registered", dto.AuthResp{Token: token, User: mappers.ToUserResp(&user)})
}

// Login authenticates by CPF and password.
func Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, 1001, "invalid request: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.Where("cpf = ?", models.NormalizeCPF(req.CPF)).First(&user).Error; err != nil {
		utils.Error(c, http.StatusUnauthorized, 4010, "invalid credentials")
		return
	}
	if !user.CheckPassword(req.Password) {
		utils.Error(c, http.StatusUnauthorized, 4010, "invalid credentials")
		return
	}
	if user.Status != models.UserStatusActive {
		utils.Error(c, http.StatusForbidden, 4030, "account is inactive")
		return
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		failService(c, err)
		return
	}

	services.RecordAuditBestEffort(database.DB,
		services.Actor{ID: user.ID, Role: user.Role},
		models.AuditLogin, "Usuario", user.ID, auditMeta(c))

	utils.Success(c, "authenticated", dto.AuthResp{Token: token, User: mappers.ToUserResp(&user)})
}

// Me returns the authenticated user.
func Me(c *gin.Context) {
	actor, ok := middlewares.GetActor(c)
	if !ok {
		utils.Error(c, http.StatusUnauthorized, 4001, "authentication required")
		return
	}

	var user models.User
	if err := database.DB.First(&user, actor.ID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, 4004, "user not found")
		return
	}
	utils.Success(c, "success", mappers.ToUserResp(&user))
}

// ForgotPassword stores a reset token; the response is identical whether or
// not the email exists. Delivery is handled by an external mailer.
func ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, 1001, "invalid request: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err == nil {
		token := utils.GenerateResetToken()
		if err := passwordReset().Store(c.Request.Context(), token, user.ID); err != nil {
			logger.L.Error("failed to store reset token", zap.Error(err))
		} else {
			logger.L.Info("password reset token issued", zap.Uint64("user_id", user.ID))
		}
	}

	utils.Success(c, "if the email is registered, reset instructions will be sent", nil)
}

// ResetPassword consumes a reset token and sets a new password.
func ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, 1001, "invalid request: "+err.Error())
		return
	}

	userID, err := passwordReset().Consume(c.Request.Context(), req.Token)
	if err != nil {
		failService(c, err)
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, 4004, "user not found")
		return
	}

	// Save on the loaded struct does not mark the password as changed, so
	// hash eagerly and write the column directly.
	if err := user.SetPassword(req.Password); err != nil {
		failService(c, err)
		return
	}
	if err := database.DB.Model(&user).UpdateColumn("password", user.Password).Error; err != nil {
		failService(c, err)
		return
	}

	utils.Success(c, "password updated", nil)
}
