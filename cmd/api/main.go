package main

import (
	"os"
	"time"

	"go-paylink/internal/app"
	"go-paylink/internal/bootstrap"
	"go-paylink/internal/middleware"
	"go-paylink/internal/shared/apperror"
	"go-paylink/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(logger))
	router.NoRoute(func(c *gin.Context) {
		response.Error(c, apperror.ErrNotFound.HTTPStatus, apperror.ErrNotFound.Code, apperror.ErrNotFound.Message, nil)
	})

	if err := app.BuildApp(router, logger); err != nil {
		logger.Fatal("failed to build app", zap.Error(err))
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	bootstrap.StartHTTPServer(router, bootstrap.ServerConfig{
		Port:         port,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}, bootstrap.NewStdoutAuditLogger())
}
