package handlers

import (
	"log"
	"net/http"

	request "medipay/internal/adapter/http/dto/request"
	response "medipay/internal/adapter/http/dto/response"
	"medipay/internal/adapter/http/middleware"
	"medipay/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler exposes the appointment lifecycle.
type AppointmentHandler struct {
	usecase usecase.IAppointmentUseCase
}

func NewAppointmentHandler(uc usecase.IAppointmentUseCase) *AppointmentHandler {
	return &AppointmentHandler{usecase: uc}
}

// Book creates a BOOKED appointment. Patients book for themselves; patient_id
// defaults to the caller.
//
// @Summary Book an appointment
// @Tags appointments
// @Produce json
// @Security Bearer
// @Router /appointments [post]
func (h *AppointmentHandler) Book(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	var payload request.BookAppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[appointment][handler] invalid payload err=%v", err)
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	scheduledAt, err := payload.ResolveScheduledAt()
	if err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	created, err := h.usecase.Book(c.Request.Context(), actor, usecase.BookAppointmentInput{
		PatientID:   payload.ResolvePatientID(actor.ID),
		HospitalID:  payload.HospitalID,
		Service:     payload.Service,
		ScheduledAt: scheduledAt,
		TotalAmount: payload.ResolveTotal(),
	})
	if err != nil {
		log.Printf("[appointment][handler] book failed hospital_id=%s err=%v", payload.HospitalID, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromAppointment(created))
}

// @Summary Get an appointment
// @Tags appointments
// @Produce json
// @Security Bearer
// @Param id path string true "identifier"
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) GetByID(c *gin.Context) {
	a, err := h.usecase.GetByID(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAppointment(a))
}

// @Summary Cancel a booked appointment
// @Tags appointments
// @Produce json
// @Security Bearer
// @Param id path string true "identifier"
// @Router /appointments/{id}/cancel [put]
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id := c.Param("id")
	a, err := h.usecase.Cancel(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		log.Printf("[appointment][handler] cancel failed appointment_id=%s err=%v", id, err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAppointment(a))
}

// @Summary Mark a confirmed appointment as completed
// @Tags appointments
// @Produce json
// @Security Bearer
// @Param id path string true "identifier"
// @Router /appointments/{id}/complete [put]
func (h *AppointmentHandler) Complete(c *gin.Context) {
	id := c.Param("id")
	a, err := h.usecase.Complete(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		log.Printf("[appointment][handler] complete failed appointment_id=%s err=%v", id, err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAppointment(a))
}
