package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/AgroHub-Uni-RV/Ypetec/controllers"
	"github.com/AgroHub-Uni-RV/Ypetec/middlewares"
	"github.com/AgroHub-Uni-RV/Ypetec/models"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", controllers.Register)
			auth.POST("/login", controllers.Login)
			auth.POST("/forgot", controllers.ForgotPassword)
			auth.POST("/reset", controllers.ResetPassword)
			auth.GET("/me", middlewares.JWTAuthMiddleware(), controllers.Me)
		}

		adminUsers := api.Group("/admin/users")
		adminUsers.Use(middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin))
		{
			adminUsers.GET("", controllers.GetUserList)
			adminUsers.PUT("/:id", controllers.UpdateUser)
			adminUsers.DELETE("/:id", controllers.DeleteUser)
			adminUsers.POST("/:id/restore", controllers.RestoreUser)
		}
		api.GET("/users/:id", middlewares.JWTAuthMiddleware(), controllers.GetUserDetail)

		calls := api.Group("/calls")
		{
			calls.GET("", middlewares.JWTTryAuthMiddleware(), controllers.GetCallList)
			calls.GET("/:id", middlewares.JWTTryAuthMiddleware(), controllers.GetCallDetail)
			calls.POST("", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.CreateCall)
			calls.PUT("/:id", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.UpdateCall)
			calls.DELETE("/:id", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.DeleteCall)
		}

		projects := api.Group("/projects")
		projects.Use(middlewares.JWTAuthMiddleware())
		{
			projects.POST("", middlewares.RoleAuthMiddleware(models.RoleStudent), controllers.CreateProject)
			projects.GET("/mine", controllers.GetMyProjects)
			projects.GET("/mine/incubated", controllers.GetMyIncubatedProjects)
			projects.GET("/report", middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.GetProjectReport)
			projects.GET("/:id", controllers.GetProjectDetail)
			projects.POST("/:id/disengage", controllers.DisengageProject)
			projects.GET("/:id/reports", controllers.GetProgressReports)
		}
		api.POST("/progress-reports", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleStudent), controllers.CreateProgressReport)

		submissions := api.Group("/submissions")
		submissions.Use(middlewares.JWTAuthMiddleware())
		{
			submissions.POST("", middlewares.RoleAuthMiddleware(models.RoleStudent), controllers.CreateSubmission)
			submissions.GET("", middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.GetSubmissionList)
			submissions.GET("/:id", middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.GetSubmissionDetail)
		}

		evaluations := api.Group("/evaluations")
		evaluations.Use(middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin))
		{
			evaluations.POST("", controllers.CreateEvaluation)
			evaluations.GET("", controllers.GetEvaluationList)
		}

		publications := api.Group("/publications")
		{
			publications.GET("", controllers.GetShowcase)
			publications.GET("/all", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.GetPublicationList)
			publications.POST("", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.CreatePublication)
			publications.PUT("/:id", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.UpdatePublication)
		}

		mentorship := api.Group("/mentorship-requests")
		mentorship.Use(middlewares.JWTAuthMiddleware())
		{
			mentorship.POST("", middlewares.RoleAuthMiddleware(models.RoleStudent), controllers.CreateMentorshipRequest)
			mentorship.GET("/mine", controllers.GetMyMentorshipRequests)
			mentorship.GET("", middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.GetMentorshipRequestList)
			mentorship.PATCH("/:id/status", middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.UpdateMentorshipStatus)
		}
	}

	return r
}
