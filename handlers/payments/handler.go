// Package payments exposes the payment API surface. Provider integration is
// out of scope, so every endpoint answers 501 rather than a fabricated
// success envelope.
package payments

import (
	"creatorhub-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Create a payment intent
// @Tags payments
// @Produce json
// @Failure 501 {object} utils.Response
// @Router /api/payments/create-payment-intent [post]
func CreatePaymentIntent(c *gin.Context) {
	utils.SendNotImplemented(c, "Create payment intent")
}

// @Summary Confirm a payment
// @Tags payments
// @Produce json
// @Failure 501 {object} utils.Response
// @Router /api/payments/confirm-payment [post]
func ConfirmPayment(c *gin.Context) {
	utils.SendNotImplemented(c, "Confirm payment")
}

// @Summary Stripe webhook
// @Tags payments
// @Produce json
// @Failure 501 {object} utils.Response
// @Router /api/payments/stripe/webhook [post]
func StripeWebhook(c *gin.Context) {
	utils.SendNotImplemented(c, "Stripe webhook")
}

// @Summary PayPal webhook
// @Tags payments
// @Produce json
// @Failure 501 {object} utils.Response
// @Router /api/payments/paypal/webhook [post]
func PaypalWebhook(c *gin.Context) {
	utils.SendNotImplemented(c, "PayPal webhook")
}

// @Summary Payment history
// @Tags payments
// @Produce json
// @Failure 501 {object} utils.Response
// @Router /api/payments/history [get]
func GetHistory(c *gin.Context) {
	utils.SendNotImplemented(c, "Payment history")
}

// @Summary Get a payment
// @Tags payments
// @Produce json
// @Failure 501 {object} utils.Response
// @Router /api/payments/{id} [get]
func GetPaymentByID(c *gin.Context) {
	utils.SendNotImplemented(c, "Payment detail")
}

// @Summary Request a refund
// @Tags payments
// @Produce json
// @Failure 501 {object} utils.Response
// @Router /api/payments/{id}/refund [post]
func RequestRefund(c *gin.Context) {
	utils.SendNotImplemented(c, "Refund request")
}

// @Summary Earnings statistics
// @Tags payments
// @Produce json
// @Failure 501 {object} utils.Response
// @Router /api/payments/earnings/stats [get]
func GetEarningsStats(c *gin.Context) {
	utils.SendNotImplemented(c, "Earnings statistics")
}
