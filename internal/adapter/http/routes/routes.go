package routes

import (
	"context"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	_ "poolworks/docs" // generated swagger docs
	"poolworks/internal/adapter/http/handlers"
	"poolworks/internal/adapter/persistence/repository"
	"poolworks/internal/adapter/persistence/session"
	"poolworks/internal/domain/pricing"
	"poolworks/internal/infrastructure/assistant"
	"poolworks/internal/infrastructure/database"
	"poolworks/internal/infrastructure/payments"
	"poolworks/internal/usecase"
	"poolworks/internal/usecase/interfaces"
	"poolworks/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	zlog := logger.New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))

	catalog := pricing.DefaultCatalog()
	if err := catalog.Validate(); err != nil {
		log.Fatalf("invalid pricing catalog: %v", err)
	}

	ddb := database.ConnectDynamoDB()
	redisClient := database.ConnectRedis()

	sessionStore := session.NewRedisSessionStore(redisClient, session.TTLFromEnv())
	estimateRepo := repository.NewEstimateDynamoRepository(ddb)
	depositRepo := repository.NewDepositDynamoRepository(ddb)

	var chatAssistant interfaces.IAssistant
	ga, err := assistant.NewGeminiAssistant(context.Background(), zlog)
	if err != nil {
		zlog.Warn("assistant not configured, using scripted replies", zap.Error(err))
	} else {
		chatAssistant = ga
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"), zlog)
	if err != nil {
		zlog.Warn("payment gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	chatUseCase := usecase.NewChatUseCase(sessionStore, chatAssistant, zlog)
	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, sessionStore, chatAssistant, catalog, zlog)
	inventoryUseCase := usecase.NewInventoryUseCase(rand.New(rand.NewSource(time.Now().UnixNano())))
	depositUseCase := usecase.NewDepositUseCase(depositRepo, estimateRepo, paymentGateway, depositRateFromEnv(), zlog)

	chatHandler := handlers.NewChatHandler(chatUseCase)
	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	reportHandler := handlers.NewReportHandler(estimateUseCase)
	inventoryHandler := handlers.NewInventoryHandler(inventoryUseCase)
	depositHandler := handlers.NewDepositHandler(depositUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimatorRoutes(v1, chatHandler, estimateHandler, reportHandler, inventoryHandler, depositHandler)
}

func depositRateFromEnv() float64 {
	raw := os.Getenv("DEPOSIT_RATE")
	if raw == "" {
		return usecase.DefaultDepositRate
	}
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("invalid DEPOSIT_RATE %q, using default", raw)
		return usecase.DefaultDepositRate
	}
	return rate
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
