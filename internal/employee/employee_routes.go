package employee

import (
	"go-paylink/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	public := r.Group("/employee")
	public.Use(middleware.ContextLogger(logger))
	{
		public.POST("/register", middleware.RateLimitByIP(1, 3), handler.Register)
		public.POST("/login", middleware.RateLimitByIP(1, 5), handler.Login)
	}

	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RoleMiddleware("admin"))
	admin.Use(middleware.ContextLogger(logger))
	{
		admin.GET("/employees", middleware.RateLimitByUser(3, 10), handler.GetAll)
	}
}
