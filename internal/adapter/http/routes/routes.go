package routes

import (
	"log"
	"strconv"

	_ "temple_seva/docs" // This will be auto-generated
	"temple_seva/internal/adapter/http/handlers"
	repository2 "temple_seva/internal/adapter/persistence/repository"
	"temple_seva/internal/infrastructure/database"
	"temple_seva/internal/infrastructure/payments"
	"temple_seva/internal/usecase"
	"temple_seva/internal/usecase/interfaces"

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

	txRepo := repository2.NewPaymentTransactionDynamoRepository(ddb)
	bookingRepo := repository2.NewBookingDynamoRepository(ddb)
	storeOrderRepo := repository2.NewStoreOrderDynamoRepository(ddb)
	registrationRepo := repository2.NewEventRegistrationDynamoRepository(ddb)

	var gateway interfaces.IPaymentGateway
	gw, err := payments.NewGatewayFromEnv()
	if err != nil {
		log.Printf("Payment gateway not configured: %v", err)
	} else {
		gateway = gw
	}

	dispatcher := usecase.NewSideEffectDispatcher(bookingRepo, storeOrderRepo, registrationRepo)
	orderUseCase := usecase.NewPaymentOrderUseCase(txRepo, gateway)
	statusUseCase := usecase.NewPaymentStatusUseCase(txRepo, dispatcher)
	refundUseCase := usecase.NewRefundUseCase(txRepo, bookingRepo, registrationRepo)

	paymentHandler := handlers.NewPaymentHandler(orderUseCase, statusUseCase, refundUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
