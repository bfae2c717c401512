package routes

import (
	"creatorhub-backend/handlers/payments"
	"creatorhub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func PaymentsRoutes(rg *gin.RouterGroup) {
	paymentRoutes := rg.Group("/payments")
	{
		// webhooks are called by providers, not by authenticated users
		paymentRoutes.POST("/stripe/webhook", payments.StripeWebhook)
		paymentRoutes.POST("/paypal/webhook", payments.PaypalWebhook)

		authed := paymentRoutes.Group("")
		authed.Use(middleware.JWTAuth())
		{
			authed.POST("/create-payment-intent", payments.CreatePaymentIntent)
			authed.POST("/confirm-payment", payments.ConfirmPayment)
			authed.GET("/history", payments.GetHistory)
			authed.GET("/earnings/stats", payments.GetEarningsStats)
			authed.GET("/:id", payments.GetPaymentByID)
			authed.POST("/:id/refund", payments.RequestRefund)
		}
	}
}
