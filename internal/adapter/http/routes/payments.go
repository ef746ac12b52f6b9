package routes

import (
	"os"

	"temple_seva/internal/adapter/http/handlers"
	"temple_seva/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const PathPayments = "/payments"

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)

	// Gateway callback; signature-verified in the handler, never token-authed.
	payments.POST("/webhook", paymentHandler.Webhook)

	authed := payments.Group("", middleware.AuthRequired(os.Getenv("JWT_SECRET")))
	{
		authed.POST("/orders", paymentHandler.CreateOrder)
		authed.GET("/orders", paymentHandler.ListOrders)
		authed.GET("/orders/:order_id", paymentHandler.GetOrder)
		authed.POST("/orders/:order_id/refund", paymentHandler.RequestRefund)
	}
}
