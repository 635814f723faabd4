package routes

import (
	"github.com/go-openapi/runtime/middleware"
	"transactions-api/internal/handlers"
	"transactions-api/internal/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"time"
)

func InitRoutes(transactionHandler *handlers.TransactionHandler, sessionMiddleware *middlewares.SessionMiddleware) *gin.Engine {
	router := gin.Default()

	_ = router.SetTrustedProxies(nil)

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3333"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Cookie"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.StaticFile("/swagger.yaml", "./swagger.yaml")

	opts := middleware.SwaggerUIOpts{SpecURL: "/swagger.yaml"}
	sh := middleware.SwaggerUI(opts, nil)

	router.GET("/swagger/*any", func(c *gin.Context) {
		sh.ServeHTTP(c.Writer, c.Request)
	})

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	transactions := router.Group("/transactions")

	// create mints its own session cookie when absent
	transactions.POST("", transactionHandler.CreateTransaction)

	// read routes require an existing session cookie
	transactions.Use(sessionMiddleware.Handle())
	{
		transactions.GET("", transactionHandler.ListTransactions)
		transactions.GET("/summary", transactionHandler.GetSummary)
		transactions.GET("/:id", transactionHandler.GetTransaction)
	}

	return router
}
