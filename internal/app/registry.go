package app

import (
	"database/sql"

	"go-paylink/internal/admin"
	"go-paylink/internal/employee"
	"go-paylink/internal/entry"
	"go-paylink/internal/link"
	"go-paylink/internal/messaging/kafka"
	"go-paylink/internal/qr"
	"go-paylink/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {

	api := router.Group("/api")

	// Repositories
	adminRepo := admin.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	linkRepo := link.NewRepository(gormDB)
	entryRepo := entry.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// Services
	adminService := admin.NewService(adminRepo, logger)
	employeeService := employee.NewService(employeeRepo, logger)
	linkService := link.NewService(linkRepo, adminRepo, rdb, logger)
	entryService := entry.NewServiceWithOutbox(db, entryRepo, outboxRepo, qr.NewDecoder(), logger)
	reportService := report.NewService(entryRepo, linkRepo, logger)

	// Handlers & Routes
	admin.RegisterRoutes(api, admin.NewHandler(adminService, logger), logger)
	employee.RegisterRoutes(api, employee.NewHandler(employeeService, logger), logger)
	link.RegisterRoutes(api, link.NewHandler(linkService, logger), logger)
	entry.RegisterRoutes(api, entry.NewHandler(entryService, logger), logger)
	report.RegisterRoutes(api, report.NewHandler(reportService, logger), logger)

	return nil
}
