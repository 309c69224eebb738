package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/AgroHub-Uni-RV/Ypetec/database"
	"github.com/AgroHub-Uni-RV/Ypetec/logger"
	"github.com/AgroHub-Uni-RV/Ypetec/middlewares"
	"github.com/AgroHub-Uni-RV/Ypetec/services"
	"github.com/AgroHub-Uni-RV/Ypetec/utils"
)

func lifecycle() *services.LifecycleService {
	return services.NewLifecycleService(database.DB)
}

func showcase() *services.ShowcaseService {
	return services.NewShowcaseService(database.DB, database.RDB)
}

func passwordReset() *services.PasswordResetService {
	return services.NewPasswordResetService(database.RDB)
}

func actorFrom(c *gin.Context) services.Actor {
	actor, _ := middlewares.GetActor(c)
	return actor
}

func auditMeta(c *gin.Context) services.AuditMeta {
	return services.AuditMeta{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}

func parseID(c *gin.Context, param string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		utils.Error(c, http.StatusBadRequest, 1002, "invalid id")
		return 0, false
	}
	return id, true
}

// failService translates the service error taxonomy into the response
// envelope. Anything unclassified is an internal error and gets logged.
func failService(c *gin.Context, err error) {
	switch services.KindOf(err) {
	case services.KindNotFound:
		utils.Error(c, http.StatusNotFound, 4004, err.Error())
	case services.KindForbidden:
		utils.Error(c, http.StatusForbidden, 4030, err.Error())
	case services.KindInvalidState:
		utils.Error(c, http.StatusBadRequest, 4100, err.Error())
	case services.KindConflict:
		utils.Error(c, http.StatusConflict, 4090, err.Error())
	case services.KindInvalidArgument:
		utils.Error(c, http.StatusBadRequest, 1001, err.Error())
	default:
		logger.L.Error("internal error", zap.Error(err), zap.String("path", c.FullPath()))
		utils.Error(c, http.StatusInternalServerError, 5000, "internal error")
	}
}
