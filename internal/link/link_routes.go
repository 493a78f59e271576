package link

import (
	"go-paylink/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	admin := r.Group("/admin/links")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RoleMiddleware("admin"))
	admin.Use(middleware.ContextLogger(logger))
	{
		admin.GET("", middleware.RateLimitByUser(3, 10), handler.GetAll)
		admin.POST("", middleware.RateLimitByUser(0.5, 2), handler.Create)
	}

	employee := r.Group("/employee/links")
	employee.Use(middleware.AuthMiddleware())
	employee.Use(middleware.RoleMiddleware("employee"))
	employee.Use(middleware.ContextLogger(logger))
	{
		employee.GET("", middleware.RateLimitByUser(5, 20), handler.GetAllWithLatest)
		employee.GET("/:linkId", middleware.RateLimitByUser(5, 20), handler.GetByID)
	}
}
