package admin

import (
	"go-paylink/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	public := r.Group("/admin")
	public.Use(middleware.ContextLogger(logger))
	{
		public.POST("/login", middleware.RateLimitByIP(1, 5), handler.Login)
	}
}
