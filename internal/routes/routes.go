package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fleet-system/internal/controllers"
	"fleet-system/internal/listeners"
	"fleet-system/internal/repositories"
	"fleet-system/internal/services"
	"fleet-system/pkg/config"
	"fleet-system/pkg/eventbus"
	"fleet-system/pkg/filestorage"
	"fleet-system/pkg/middleware"
	"fleet-system/pkg/service"
)

func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	jwtSvc service.JWTService,
	logger *zap.Logger,
	cfg *config.Config,
) error {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	fileStorage, err := filestorage.NewLocalFileStorage(cfg.Upload.BasePath, "/uploads")
	if err != nil {
		return err
	}

	bus := eventbus.New(logger)

	// --- repositories ---
	userRepo := repositories.NewUserRepository(dbConn)
	siteRepo := repositories.NewSiteRepository(dbConn)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	inspectionRepo := repositories.NewInspectionRepository(dbConn)
	templateRepo := repositories.NewChecklistTemplateRepository(dbConn)
	maintenanceRepo := repositories.NewMaintenanceRepository(dbConn)
	purchaseRepo := repositories.NewPurchaseRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// --- services ---
	authService := services.NewAuthService(userRepo, jwtSvc, logger)
	templateService := services.NewChecklistTemplateService(templateRepo, cacheRepo, cfg.Cache.ChecklistTemplateTTL, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, logger)
	inspectionService := services.NewInspectionService(dbConn, inspectionRepo, equipmentRepo, templateService, logger)
	maintenanceService := services.NewMaintenanceService(maintenanceRepo, equipmentRepo, inspectionRepo, bus, logger)
	purchaseService := services.NewPurchaseService(dbConn, purchaseRepo, logger)
	dashboardService := services.NewDashboardService(equipmentRepo)
	siteService := services.NewSiteService(siteRepo)
	uploadService := services.NewUploadService(fileStorage, cfg.Upload.MaxPhotoSizeMB, logger)
	reportService := services.NewReportService(inspectionRepo, equipmentRepo, logger)

	// --- listeners ---
	listeners.NewMaintenanceWebhookListener(maintenanceRepo, cfg.Webhook, logger).Register(bus)

	// --- controllers ---
	authCtrl := controllers.NewAuthController(authService, logger)
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, inspectionService, logger)
	inspectionCtrl := controllers.NewInspectionController(inspectionService, logger)
	maintenanceCtrl := controllers.NewMaintenanceController(maintenanceService, logger)
	purchaseCtrl := controllers.NewPurchaseController(purchaseService, logger)
	dashboardCtrl := controllers.NewDashboardController(dashboardService, siteService, logger)
	uploadCtrl := controllers.NewUploadController(uploadService, logger)
	reportCtrl := controllers.NewReportController(reportService, logger)

	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, secureGroup, authCtrl)
	runEquipmentRouter(secureGroup, equipmentCtrl)
	runInspectionRouter(secureGroup, inspectionCtrl)
	runMaintenanceRouter(secureGroup, maintenanceCtrl)
	runPurchaseRouter(secureGroup, purchaseCtrl)
	runDashboardRouter(secureGroup, dashboardCtrl)
	runUploadRouter(secureGroup, uploadCtrl)
	runReportRouter(secureGroup, reportCtrl)

	// Uploaded photos are served straight from disk.
	e.Static("/uploads", cfg.Upload.BasePath)

	return nil
}
