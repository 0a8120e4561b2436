package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vnkhanh/feedback-server/controllers"
	"github.com/vnkhanh/feedback-server/middleware"
	"github.com/vnkhanh/feedback-server/models"
)

func SetupRoutes(r *gin.Engine) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", controllers.Login)
		}

		protected := api.Group("/")
		protected.Use(middleware.AuthJWT())
		{
			protected.GET("/me", controllers.Me)
			protected.PUT("/me/password", controllers.ChangePassword)
		}

		// Admin: quản lý tài khoản, phiếu, lên năm
		admin := api.Group("/admin")
		admin.Use(middleware.AuthJWT(), middleware.RequireAdmin())
		{
			admin.POST("/users", controllers.CreateUser)
			admin.PUT("/students/:id/cohort", controllers.SetStudentCohort)
			admin.POST("/promote", controllers.PromoteStudents)
			admin.GET("/teachers", controllers.ListTeachers)
			admin.GET("/teachers/:id/statistics", controllers.GetTeacherStatisticsForAdmin)

			admin.POST("/forms", middleware.RateLimitFormsCreate(), controllers.CreateForm)
			admin.GET("/forms", controllers.ListForms)
			admin.PUT("/forms/:id/deactivate", controllers.DeactivateForm)
			admin.PUT("/forms/:id/restore", controllers.RestoreForm)
		}

		// Sinh viên: xem phiếu được phát và nộp phản hồi
		student := api.Group("/student")
		student.Use(middleware.AuthJWT(), middleware.RequireVaiTro(models.VaiTroSinhVien))
		{
			student.GET("/forms", controllers.GetAvailableForms)
		}
		api.POST("/forms/:id/responses",
			middleware.AuthJWT(),
			middleware.RequireVaiTro(models.VaiTroSinhVien),
			middleware.RateLimitSubmit(),
			controllers.SubmitFeedback)

		// Giảng viên (và admin): thống kê tổng hợp, không thấy từng phản hồi
		teacher := api.Group("/teacher")
		teacher.Use(middleware.AuthJWT(), middleware.RequireVaiTro(models.VaiTroGiangVien))
		{
			teacher.GET("/statistics", controllers.GetMyStatistics)
		}
		api.GET("/forms/:id/statistics",
			middleware.AuthJWT(),
			middleware.RequireVaiTro(models.VaiTroGiangVien, models.VaiTroAdmin),
			middleware.CheckPhieuGiangVien(),
			controllers.GetFormStatistics)
	}
}
