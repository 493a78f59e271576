package entry

import (
	"go-paylink/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	employee := r.Group("/employee")
	employee.Use(middleware.AuthMiddleware())
	employee.Use(middleware.RoleMiddleware("employee"))
	employee.Use(middleware.ContextLogger(logger))
	{
		employee.POST("/links/:linkId/entries", middleware.RateLimitByUser(1, 3), handler.Submit)
	}

	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RoleMiddleware("admin"))
	admin.Use(middleware.ContextLogger(logger))
	{
		admin.POST("/links/entries", middleware.RateLimitByUser(3, 10), handler.GetByLink)
		admin.POST("/employees/entries", middleware.RateLimitByUser(3, 10), handler.GetByEmployee)
	}
}
