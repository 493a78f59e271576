package report

import (
	"go-paylink/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RoleMiddleware("admin"))
	admin.Use(middleware.ContextLogger(logger))
	{
		admin.POST("/employees/links", middleware.RateLimitByUser(3, 10), handler.LinksByEmployee)
		admin.POST("/employees/links/entries", middleware.RateLimitByUser(3, 10), handler.AdminEntriesByEmployeeAndLink)
		admin.POST("/links/summary", middleware.RateLimitByUser(3, 10), handler.LinkSummary)
	}

	employee := r.Group("/employee")
	employee.Use(middleware.AuthMiddleware())
	employee.Use(middleware.RoleMiddleware("employee"))
	employee.Use(middleware.ContextLogger(logger))
	{
		employee.POST("/links/entries", middleware.RateLimitByUser(3, 10), handler.EmployeeEntriesByEmployeeAndLink)
	}
}
