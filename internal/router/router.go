package router

import (
	"net/http"

	"github.com/syukranDev/mytrackerwallet-v2/internal/config"
	"github.com/syukranDev/mytrackerwallet-v2/internal/dashboard"
	"github.com/syukranDev/mytrackerwallet-v2/internal/handler"
	"github.com/syukranDev/mytrackerwallet-v2/internal/middleware"
	"github.com/syukranDev/mytrackerwallet-v2/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Setup configures the gin engine and the full API route table.
func Setup(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), cors(cfg.Server.FrontendURL))

	// uploaded profile images are served statically
	r.Static("/uploads", cfg.Upload.Dir)

	ledger := store.NewLedgerStore(db)

	api := r.Group("/api/v1")

	authHandler := handler.NewAuthHandler(db, cfg.JWT.Secret, cfg.JWT.ExpireHours, cfg.Upload.Dir)
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	authRequired := middleware.Auth(cfg.JWT.Secret, db)
	auth.GET("/getUser", authRequired, authHandler.GetUser)
	auth.POST("/uploadProfileImage", authRequired, authHandler.UploadProfileImage)

	incomeHandler := handler.NewIncomeHandler(db)
	income := api.Group("/income", authRequired)
	income.POST("/addIncome", incomeHandler.AddIncome)
	income.GET("/getAllIncome", incomeHandler.GetAllIncome)
	income.DELETE("/deleteIncome/:id", incomeHandler.DeleteIncome)
	income.GET("/downloadIncomeExcel", incomeHandler.DownloadIncomeExcel)

	expenseHandler := handler.NewExpenseHandler(db)
	expense := api.Group("/expense", authRequired)
	expense.POST("/addExpense", expenseHandler.AddExpense)
	expense.GET("/getAllExpense", expenseHandler.GetAllExpense)
	expense.DELETE("/deleteExpense/:id", expenseHandler.DeleteExpense)
	expense.GET("/downloadExpenseExcel", expenseHandler.DownloadExpenseExcel)

	destinationHandler := handler.NewDestinationHandler(db)
	destinations := api.Group("/destinations", authRequired)
	destinations.GET("/getAllDestinations", destinationHandler.GetAllDestinations)
	destinations.POST("/addDestination", destinationHandler.AddDestination)
	destinations.PUT("/updateDestination/:id", destinationHandler.UpdateDestination)
	destinations.DELETE("/deleteDestination/:id", destinationHandler.DeleteDestination)

	transactionHandler := handler.NewTransactionHandler(ledger)
	api.GET("/transactions/getAllTransactions", authRequired, transactionHandler.GetAllTransactions)

	dashboardHandler := handler.NewDashboardHandler(dashboard.NewComposer(ledger))
	api.GET("/dashboard", authRequired, dashboardHandler.GetDashboardData)

	return r
}

// cors allows the configured frontend origin; "*" when unset.
func cors(origin string) gin.HandlerFunc {
	if origin == "" {
		origin = "*"
	}
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
