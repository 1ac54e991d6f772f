package handlers

import (
	"net/http"

	request "medipay/internal/adapter/http/dto/request"
	response "medipay/internal/adapter/http/dto/response"
	"medipay/internal/adapter/http/middleware"
	"medipay/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the operator's revenue reports.
type AdminHandler struct {
	usecase usecase.IAnalyticsUseCase
}

func NewAdminHandler(uc usecase.IAnalyticsUseCase) *AdminHandler {
	return &AdminHandler{usecase: uc}
}

// @Summary Operator dashboard
// @Tags admin
// @Produce json
// @Security Bearer
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	d, err := h.usecase.Dashboard(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(d))
}

// @Summary Track successful payments
// @Tags admin
// @Produce json
// @Security Bearer
// @Router /admin/payments/tracking [get]
func (h *AdminHandler) PaymentTracking(c *gin.Context) {
	var q request.TrackingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	t, err := h.usecase.PaymentTracking(c.Request.Context(), middleware.ActorFrom(c), usecase.TrackingQuery{
		StartDate:  q.StartDate,
		EndDate:    q.EndDate,
		HospitalID: q.HospitalID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTracking(t))
}

// @Summary Revenue per hospital
// @Tags admin
// @Produce json
// @Security Bearer
// @Router /admin/hospitals/performance [get]
func (h *AdminHandler) HospitalPerformance(c *gin.Context) {
	r, err := h.usecase.HospitalPerformance(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPerformance(r))
}

// @Summary Revenue bucketed by period
// @Tags admin
// @Produce json
// @Security Bearer
// @Router /admin/analytics/revenue [get]
func (h *AdminHandler) Revenue(c *gin.Context) {
	var q request.RevenueQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	r, err := h.usecase.RevenueByPeriod(c.Request.Context(), middleware.ActorFrom(c), usecase.RevenuePeriod(q.ResolvePeriod()))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRevenue(r))
}
