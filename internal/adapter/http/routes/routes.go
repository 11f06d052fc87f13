package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "locotraq/docs" // swag-generated documentation
	"locotraq/internal/adapter/http/handlers"
	"locotraq/internal/adapter/http/middleware"
	repository2 "locotraq/internal/adapter/persistence/repository"
	"locotraq/internal/infrastructure/assets"
	"locotraq/internal/infrastructure/database"
	"locotraq/internal/infrastructure/forms"
	"locotraq/internal/infrastructure/payments"
	"locotraq/internal/infrastructure/sessions"
	"locotraq/internal/usecase"
	"locotraq/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	setMiddlewares(logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(logger)

	if err := router.Run(":" + strconv.Itoa(PORT)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(logger *zap.Logger) {
	ctx := context.Background()

	ddb := database.ConnectDynamoDB()

	awsCfg, err := database.NewAWSConfigFromEnv(ctx)
	if err != nil {
		log.Fatalf("Failed to load AWS configuration: %v", err)
	}
	assetStore := assets.NewS3AssetStore(s3.NewFromConfig(awsCfg), logger)

	redisClient, err := sessions.ConnectRedis(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	sessionStore := sessions.NewRedisSessionStore(redisClient, logger)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"), logger)
	if err != nil {
		logger.Warn("Mercado Pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	blogRepo := repository2.NewBlogDynamoRepository(ddb)
	productRepo := repository2.NewProductDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)

	blogUseCase := usecase.NewBlogUseCase(blogRepo, assetStore, logger)
	productUseCase := usecase.NewProductUseCase(productRepo, assetStore, logger)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, paymentGateway, logger)
	userUseCase := usecase.NewUserUseCase(userRepo)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, forms.NewWeb3FormsRelay(logger), logger)
	authUseCase := usecase.NewAuthUseCase(userRepo, sessionStore, logger)

	blogHandler := handlers.NewBlogHandler(blogUseCase)
	productHandler := handlers.NewProductHandler(productUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	uploadHandler := handlers.NewUploadHandler(assetStore, logger)
	authHandler := handlers.NewAuthHandler(authUseCase)

	api := router.Group("/api")
	addPublicRoutes(api, productHandler, blogHandler, orderHandler, quoteHandler, authHandler)

	admin := api.Group("/admin")
	admin.Use(middleware.RequireSession(authUseCase))
	addAdminRoutes(admin, blogHandler, productHandler, orderHandler, userHandler, quoteHandler, uploadHandler, authHandler)
}

func setMiddlewares(logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
