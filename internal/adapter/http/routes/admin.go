package routes

import (
	"locotraq/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBlogs    = "/blogs"
	PathProducts = "/products"
	PathOrders   = "/orders"
	PathUsers    = "/users"
	PathQuotes   = "/quotes"
	PathUpload   = "/upload"
)

// addPublicRoutes wires the storefront endpoints: no session required.
func addPublicRoutes(rg *gin.RouterGroup, productHandler *handlers.ProductHandler, blogHandler *handlers.BlogHandler, orderHandler *handlers.OrderHandler, quoteHandler *handlers.QuoteHandler, authHandler *handlers.AuthHandler) {
	rg.GET(PathProducts, productHandler.List)
	rg.GET(PathProducts+"/:id", productHandler.Detail)

	rg.GET(PathBlogs, blogHandler.List)
	rg.GET(PathBlogs+"/:id", blogHandler.Get)

	rg.POST(PathOrders, orderHandler.Create)
	rg.POST(PathOrders+"/:id/payment", orderHandler.ConfirmPayment)

	quote := rg.Group("/quote")
	{
		quote.POST("/estimate", quoteHandler.Estimate)
		quote.POST("/submit", quoteHandler.Submit)
	}

	rg.POST("/auth/login", authHandler.Login)
}

// addAdminRoutes wires the back-office endpoints behind the session middleware.
func addAdminRoutes(rg *gin.RouterGroup, blogHandler *handlers.BlogHandler, productHandler *handlers.ProductHandler, orderHandler *handlers.OrderHandler, userHandler *handlers.UserHandler, quoteHandler *handlers.QuoteHandler, uploadHandler *handlers.UploadHandler, authHandler *handlers.AuthHandler) {
	blogs := rg.Group(PathBlogs)
	{
		blogs.GET("", blogHandler.List)
		blogs.POST("", blogHandler.Create)
		blogs.PUT("/:id", blogHandler.Update)
		blogs.DELETE("/:id", blogHandler.Delete)
	}

	products := rg.Group(PathProducts)
	{
		products.GET("", productHandler.List)
		products.POST("", productHandler.Create)
		products.PUT("/:id", productHandler.Update)
		products.DELETE("/:id", productHandler.Delete)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("", orderHandler.List)
		orders.PUT("/:id/status", orderHandler.SetStatus)
		orders.DELETE("/:id", orderHandler.Delete)
	}

	users := rg.Group(PathUsers)
	{
		users.GET("", userHandler.List)
		users.POST("", userHandler.Create)
		users.PUT("/:id", userHandler.Update)
		users.PUT("/:id/status", userHandler.SetStatus)
		users.DELETE("/:id", userHandler.Delete)
	}

	rg.GET(PathQuotes, quoteHandler.List)

	upload := rg.Group(PathUpload)
	{
		upload.POST("", uploadHandler.Upload)
		upload.DELETE("", uploadHandler.Remove)
	}

	rg.GET("/auth/session", authHandler.Session)
	rg.POST("/auth/logout", authHandler.Logout)
}
