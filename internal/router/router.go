package router

import (
	"time"

	"stockbook/internal/config"
	"stockbook/internal/handler"
	"stockbook/internal/middleware"
	"stockbook/internal/model"
	"stockbook/internal/repository"
	"stockbook/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	seasonRepo := repository.NewSeasonRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	movementRepo := repository.NewStockMovementRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	itemSvc := service.NewItemService(itemRepo, purchaseRepo, saleRepo, expenseRepo, movementRepo)
	seasonSvc := service.NewSeasonService(seasonRepo, purchaseRepo, saleRepo, expenseRepo)
	purchaseSvc := service.NewPurchaseService(purchaseRepo, itemRepo, seasonRepo, movementRepo)
	saleSvc := service.NewSaleService(saleRepo, itemRepo, seasonRepo, movementRepo)
	expenseSvc := service.NewExpenseService(expenseRepo, itemRepo, seasonRepo)
	reportSvc := service.NewReportService(reportRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc)
	itemsH := handler.NewItemsHandler(itemSvc)
	seasonsH := handler.NewSeasonsHandler(seasonSvc)
	purchasesH := handler.NewPurchasesHandler(purchaseSvc)
	salesH := handler.NewSalesHandler(saleSvc)
	expensesH := handler.NewExpensesHandler(expenseSvc)
	reportsH := handler.NewReportsHandler(reportSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/api/health", handler.Health(db))
	r.POST("/api/login", middleware.LoginRateLimiter(), authH.Login)

	// Open registration is a bootstrap convenience; disable once the
	// first super admin exists.
	if cfg.SetupMode {
		r.POST("/api/register", authH.Register)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	api := r.Group("/api", jwtMW)
	{
		read := middleware.RequireRole(model.AnyRole...)
		write := middleware.RequireRole(model.AdminOrAbove...)

		api.GET("/items", read, itemsH.List)
		api.POST("/items", write, itemsH.Create)
		api.DELETE("/items/:id", write, itemsH.Delete)

		api.GET("/seasons", read, seasonsH.List)
		api.POST("/seasons", write, seasonsH.Create)
		api.DELETE("/seasons/:id", write, seasonsH.Delete)

		api.GET("/purchases", read, purchasesH.List)
		api.POST("/purchases", write, purchasesH.Create)
		api.DELETE("/purchases/:id", write, purchasesH.Delete)

		api.GET("/sales", read, salesH.List)
		api.POST("/sales", write, salesH.Create)
		api.DELETE("/sales/:id", write, salesH.Delete)

		api.GET("/expenses", read, expensesH.List)
		api.POST("/expenses", write, expensesH.Create)
		api.DELETE("/expenses/:id", write, expensesH.Delete)

		api.GET("/stock-movements", write, itemsH.Movements)

		api.GET("/dashboard-summary", read, reportsH.DashboardSummary)
		api.GET("/report", read, reportsH.Report)
		api.GET("/season-items-count", read, reportsH.SeasonItemsCount)

		users := api.Group("/users", middleware.RequireRole(model.SuperAdminOnly...))
		{
			users.POST("", usersH.Create)
			users.GET("", usersH.List)
			users.PUT("/:id", usersH.Update)
			users.DELETE("/:id", usersH.Delete)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
