package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"budgetapi/internal/config"
	apperrors "budgetapi/internal/errors"
	"budgetapi/internal/metrics"
	"budgetapi/internal/middleware"
	"budgetapi/internal/services"
	"budgetapi/internal/validator"
)

// Services bundles the business logic the router dispatches to.
type Services struct {
	Accounts     services.AccountServicer
	Categories   services.CategoryServicer
	Transactions services.TransactionServicer
	Statistics   services.StatisticsServicer
}

// NewServices builds the database-backed services. observer may be nil.
func NewServices(db *gorm.DB, observer services.BalanceObserver) Services {
	accountService := services.NewAccountService(db)
	return Services{
		Accounts:     accountService,
		Categories:   services.NewCategoryService(db),
		Transactions: services.NewTransactionService(db, accountService, observer),
		Statistics:   services.NewStatisticsService(db),
	}
}

// RouterConfig configures NewRouter.
type RouterConfig struct {
	Services  Services
	ErrorMode config.ErrorMode
	// DB, when set, has one pooled connection pinned per API request.
	DB *gorm.DB
	// Metrics, when set, records per-route request counts and latency.
	Metrics *metrics.Metrics
}

// NewRouter builds the request dispatcher. Paths match exactly: no trailing
// slash redirects, no path cleaning. Unmatched paths and methods answer 404
// `{"error": "Not found"}` and preflight requests are answered before
// routing.
func NewRouter(cfg RouterConfig) *gin.Engine {
	validator.Register()

	router := gin.New()
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false
	router.HandleMethodNotAllowed = false

	router.Use(middleware.Recovery(cfg.ErrorMode))
	router.Use(middleware.RequestLogging())
	if cfg.Metrics != nil {
		router.Use(middleware.Metrics(cfg.Metrics))
	}
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler(cfg.ErrorMode))
	router.Use(middleware.RejectMarked())

	accountHandler := NewAccountHandler(cfg.Services.Accounts)
	categoryHandler := NewCategoryHandler(cfg.Services.Categories)
	transactionHandler := NewTransactionHandler(cfg.Services.Transactions)
	statisticsHandler := NewStatisticsHandler(cfg.Services.Statistics)

	api := router.Group("/")
	if cfg.DB != nil {
		api.Use(middleware.ScopedConnection(cfg.DB))
	}
	{
		api.GET("/accounts", accountHandler.ListAccounts)
		api.POST("/accounts", accountHandler.CreateAccount)

		api.GET("/categories", categoryHandler.ListCategories)
		api.POST("/categories", categoryHandler.CreateCategory)

		api.GET("/transactions", transactionHandler.ListTransactions)
		api.POST("/transactions", transactionHandler.CreateTransaction)

		api.GET("/statistics", statisticsHandler.GetStatistics)
	}

	router.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperrors.ErrNotFound)
	})

	return router
}
