// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"easybill/internal/cache"
	"easybill/internal/database"
	"easybill/internal/handler"
	"easybill/internal/handler/auth"
	"easybill/internal/handler/transactions"
	"easybill/internal/handler/users"
	"easybill/internal/middleware"
	"easybill/internal/worker"
)

// Setup registers all routes and middleware.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, wp worker.Pool) {
	api := e.Group("/api")

	api.GET("/ping", handler.PingHandler(db, rdb))

	api.POST("/authenticate", auth.LoginHandler(db))

	// Users CRUD is unauthenticated, matching the upstream API surface.
	// TODO: restrict listing/mutation to privileged callers once the API
	// grows a role model; transactions are already owner-scoped below.
	apiUsers := api.Group("/users")
	apiUsers.POST("", users.CreateUserHandler(db))
	apiUsers.GET("", users.ListUsersHandler(db))
	apiUsers.GET("/:id", users.GetUserHandler(db))
	apiUsers.PUT("/:id", users.UpdateUserHandler(db))
	apiUsers.DELETE("/:id", users.DeleteUserHandler(db))

	apiTxs := api.Group("/transactions", middleware.RequireAuth)
	apiTxs.POST("", transactions.CreateTransactionHandler(db, wp))
	apiTxs.GET("", transactions.ListTransactionsHandler(db))
	apiTxs.GET("/:id", transactions.GetTransactionHandler(db))
	apiTxs.PUT("/:id", transactions.UpdateTransactionHandler(db, wp))
	apiTxs.DELETE("/:id", transactions.DeleteTransactionHandler(db, wp))
}
