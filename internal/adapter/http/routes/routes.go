package routes

import (
	"log"
	"strconv"

	_ "chennai_builders/docs" // This will be auto-generated
	"chennai_builders/internal/adapter/http/handlers"
	repository2 "chennai_builders/internal/adapter/persistence/repository"
	"chennai_builders/internal/infrastructure/database"
	"chennai_builders/internal/infrastructure/notification"
	"chennai_builders/internal/usecase"
	"chennai_builders/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
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
	ddb := database.ConnectDynamoDB()

	leadRepo := repository2.NewLeadDynamoRepository(ddb)

	estimateUseCase := usecase.NewEstimateUseCase()

	var gateway interfaces.INotificationGateway
	emailGateway, err := notification.NewEmailJSGateway()
	if err != nil {
		log.Printf("EmailJS gateway not configured: %v", err)
	} else {
		gateway = emailGateway
	}

	contactUseCase := usecase.NewContactUseCase(leadRepo, gateway)

	catalogHandler := handlers.NewCatalogHandler()
	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	contactHandler := handlers.NewContactHandler(estimateUseCase, contactUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimatorRoutes(v1, catalogHandler, estimateHandler, contactHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
