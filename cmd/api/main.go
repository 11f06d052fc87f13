package main

import (
	_ "locotraq/docs"
	"locotraq/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Locotraq API
// @version         1.0
// @description     Storefront and back-office API for the Locotraq GPS tracking store.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @host localhost:8080

// @BasePath  /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	routes.Run()
}
