package main

import (
	_ "procurement/api/swagger" // swagger docs
	"procurement/internal/config"
	"procurement/internal/handler"
	"procurement/internal/middleware"
	"procurement/internal/repository"
	"procurement/internal/service"
	"procurement/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// setupRouter wires Repository -> Service -> Handler and registers every route
func setupRouter(cfg *config.Config, db *gorm.DB, hub *websocket.Hub, zl *zap.Logger) *gin.Engine {
	userRepo := repository.NewUserRepository(db)
	prRepo := repository.NewPurchaseRequestRepository(db)
	quotationRepo := repository.NewQuotationRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	txManager := repository.NewTransactionManager(db)

	auth := middleware.NewAuth(cfg.Secret(), userRepo, cfg.RoleCacheTTL, zl)

	metricsService := service.NewMetricsService(prRepo, quotationRepo, zl)
	profileService := service.NewProfileService(userRepo, auditRepo, txManager, zl, auth, hub)
	requisitionService := service.NewRequisitionService(prRepo, zl)
	auditService := service.NewAuditService(auditRepo)

	metricsHandler := handler.NewMetricsHandler(metricsService)
	profileHandler := handler.NewProfileHandler(profileService)
	requisitionHandler := handler.NewRequisitionHandler(requisitionService)
	auditHandler := handler.NewAuditHandler(auditService)

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(zl))

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(hub, auth, c)
	})

	root := router.Group("")
	metricsHandler.RegisterRoutes(root, auth)
	profileHandler.RegisterRoutes(root, auth)
	requisitionHandler.RegisterRoutes(root, auth)
	auditHandler.RegisterRoutes(root, auth)

	return router
}
