package handlers

import (
	"log"
	"net/http"
	"strings"

	request "medipay/internal/adapter/http/dto/request"
	response "medipay/internal/adapter/http/dto/response"
	"medipay/internal/adapter/http/middleware"
	"medipay/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles gateway orders, verification callbacks and payment reads.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// @Summary Open a gateway order for an appointment
// @Tags payments
// @Produce json
// @Security Bearer
// @Router /payments/create-order [post]
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid create-order payload err=%v", err)
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	appointmentID, amount, err := payload.Resolve()
	if err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] create-order start appointment_id=%s amount=%s", appointmentID, amount)
	res, err := h.usecase.CreateOrder(c.Request.Context(), middleware.ActorFrom(c), appointmentID, amount)
	if err != nil {
		log.Printf("[payment][handler] create-order failed appointment_id=%s err=%v", appointmentID, err)
		respondError(c, err)
		return
	}
	log.Printf("[payment][handler] create-order success appointment_id=%s order_id=%s", appointmentID, res.OrderID)

	c.JSON(http.StatusCreated, response.FromOrderResult(res))
}

// InitiatePartial accepts the JSON body or, for older clients, the
// appointment_id and partial_amount query parameters.
//
// @Summary Open a gateway order for part of the appointment total
// @Tags payments
// @Produce json
// @Security Bearer
// @Router /payments/initiate-partial [post]
func (h *PaymentHandler) InitiatePartial(c *gin.Context) {
	var payload request.InitiatePartialRequest
	if err := c.ShouldBindQuery(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			log.Printf("[payment][handler] invalid initiate-partial payload err=%v", err)
			c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
			return
		}
	}
	appointmentID, amount, err := payload.Resolve()
	if err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	res, err := h.usecase.InitiatePartial(c.Request.Context(), middleware.ActorFrom(c), appointmentID, amount)
	if err != nil {
		log.Printf("[payment][handler] initiate-partial failed appointment_id=%s err=%v", appointmentID, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromOrderResult(res))
}

// @Summary Verify a gateway payment signature
// @Tags payments
// @Produce json
// @Security Bearer
// @Router /payments/verify [post]
func (h *PaymentHandler) Verify(c *gin.Context) {
	var payload request.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid verify payload err=%v", err)
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	res, err := h.usecase.Verify(c.Request.Context(), middleware.ActorFrom(c), usecase.VerifyPaymentInput{
		OrderID:   payload.ResolveOrderID(),
		PaymentID: payload.ResolvePaymentID(),
		Signature: payload.ResolveSignature(),
	})
	if err != nil {
		log.Printf("[payment][handler] verify failed order_id=%s err=%v", payload.ResolveOrderID(), err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromVerification(res))
}

// @Summary Get a payment
// @Tags payments
// @Produce json
// @Security Bearer
// @Param id path string true "identifier"
// @Router /payments/{id} [get]
func (h *PaymentHandler) GetByID(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// @Summary Get the status of a payment
// @Tags payments
// @Produce json
// @Security Bearer
// @Param id path string true "identifier"
// @Router /payments/status/{id} [get]
func (h *PaymentHandler) GetStatus(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentStatus(p))
}

// GetByAppointmentID returns the most recent payment of an appointment.
//
// @Summary Get the latest payment of an appointment
// @Tags payments
// @Produce json
// @Security Bearer
// @Param id path string true "identifier"
// @Router /payments/appointment/{id} [get]
func (h *PaymentHandler) GetByAppointmentID(c *gin.Context) {
	appointmentID := strings.TrimSpace(c.Param("id"))
	p, err := h.usecase.GetLatestByAppointmentID(c.Request.Context(), middleware.ActorFrom(c), appointmentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}
