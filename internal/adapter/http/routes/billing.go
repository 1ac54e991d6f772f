package routes

import (
	"medipay/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAppointments = "/appointments"
	PathPayments     = "/payments"
	PathAdmin        = "/admin"
)

func addAppointmentRoutes(rg *gin.RouterGroup, h *handlers.AppointmentHandler) {
	appointments := rg.Group(PathAppointments)
	{
		appointments.POST("", h.Book)
		appointments.POST("/", h.Book)
		appointments.GET("/:id", h.GetByID)
		appointments.PUT("/:id/cancel", h.Cancel)
		appointments.PUT("/:id/complete", h.Complete)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PaymentHandler, commission *handlers.CommissionHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/create-order", h.CreateOrder)
		payments.POST("/initiate-partial", h.InitiatePartial)
		payments.POST("/verify", h.Verify)

		payments.GET("/commission-settings", commission.Get)
		payments.PUT("/commission-settings", commission.Update)

		payments.GET("/status/:id", h.GetStatus)
		payments.GET("/appointment/:id", h.GetByAppointmentID)
		payments.GET("/:id", h.GetByID)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, h *handlers.AdminHandler) {
	admin := rg.Group(PathAdmin)
	{
		admin.GET("/dashboard", h.Dashboard)
		admin.GET("/payments/tracking", h.PaymentTracking)
		admin.GET("/hospitals/performance", h.HospitalPerformance)
		admin.GET("/analytics/revenue", h.Revenue)
	}
}
