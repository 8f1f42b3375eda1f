package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/campus-admin-api/api/swagger"
	"github.com/noah-isme/campus-admin-api/internal/handler"
	"github.com/noah-isme/campus-admin-api/internal/middleware"
	"github.com/noah-isme/campus-admin-api/internal/repository"
	"github.com/noah-isme/campus-admin-api/internal/service"
	"github.com/noah-isme/campus-admin-api/pkg/cache"
	"github.com/noah-isme/campus-admin-api/pkg/config"
	"github.com/noah-isme/campus-admin-api/pkg/database"
	"github.com/noah-isme/campus-admin-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/campus-admin-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/campus-admin-api/pkg/middleware/requestid"
)

// @title Campus Admin API
// @version 1.0.0
// @description Faculty lifecycle management for the campus administration system
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close() //nolint:errcheck

	var redisClient *redis.Client
	if cfg.Suggestions.CacheEnabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, suggestion cache disabled", "error", err)
		}
	}

	validate := validator.New()
	metricsSvc := service.NewMetricsService()
	cacheSvc := service.NewCacheService(
		repository.NewCacheRepository(redisClient),
		metricsSvc,
		cfg.Suggestions.CacheTTL,
		logr,
		cfg.Suggestions.CacheEnabled && redisClient != nil,
	)

	departmentRepo := repository.NewDepartmentRepository(db)
	facultyRepo := repository.NewFacultyRepository(db)
	approvalRepo := repository.NewApprovalRepository(db)

	departmentSvc := service.NewDepartmentService(departmentRepo, logr)
	facultySvc := service.NewFacultyService(facultyRepo, departmentSvc, cacheSvc, validate, logr)
	approvalSvc := service.NewApprovalService(approvalRepo, facultyRepo, departmentSvc, metricsSvc, validate, logr)

	facultyHandler := handler.NewFacultyHandler(facultySvc, metricsSvc)
	approvalHandler := handler.NewApprovalHandler(approvalSvc)
	departmentHandler := handler.NewDepartmentHandler(departmentSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	faculties := api.Group("/faculties")
	faculties.GET("", facultyHandler.List)
	faculties.GET("/suggestions", facultyHandler.Suggestions)
	faculties.GET("/:empCode", facultyHandler.Get)
	faculties.POST("", middleware.Admin(), facultyHandler.Create)
	faculties.POST("/bulk", middleware.Admin(), facultyHandler.BulkCreate)
	faculties.PATCH("/bulk", middleware.Admin(), facultyHandler.BulkUpdate)
	faculties.PATCH("/:empCode", middleware.Admin(), facultyHandler.Update)
	faculties.POST("/:empCode/subjects", middleware.Admin(), facultyHandler.AssignSubjects)

	requests := api.Group("/faculty-requests")
	requests.POST("", middleware.OptionalAdmin(), approvalHandler.Submit)
	requests.GET("", middleware.Admin(), approvalHandler.List)
	requests.POST("/:id/process", middleware.Admin(), approvalHandler.Process)

	api.GET("/departments", departmentHandler.List)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
