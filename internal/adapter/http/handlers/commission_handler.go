package handlers

import (
	"log"
	"net/http"

	request "medipay/internal/adapter/http/dto/request"
	response "medipay/internal/adapter/http/dto/response"
	"medipay/internal/adapter/http/middleware"
	"medipay/internal/domain/access"
	"medipay/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CommissionHandler struct {
	usecase usecase.ICommissionSettingsUseCase
}

func NewCommissionHandler(uc usecase.ICommissionSettingsUseCase) *CommissionHandler {
	return &CommissionHandler{usecase: uc}
}

// @Summary Get the active commission percentage
// @Tags commission
// @Produce json
// @Security Bearer
// @Router /payments/commission-settings [get]
func (h *CommissionHandler) Get(c *gin.Context) {
	if err := access.AuthorizeRole(middleware.ActorFrom(c), access.CapViewCommission); err != nil {
		respondError(c, err)
		return
	}
	s, err := h.usecase.GetActive(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCommissionSetting(s))
}

// @Summary Update the commission percentage
// @Tags commission
// @Produce json
// @Security Bearer
// @Router /payments/commission-settings [put]
func (h *CommissionHandler) Update(c *gin.Context) {
	var payload request.UpdateCommissionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
			return
		}
	}
	percentage, err := payload.Resolve(c.Query("commission_percentage"))
	if err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	s, err := h.usecase.Update(c.Request.Context(), middleware.ActorFrom(c), percentage)
	if err != nil {
		log.Printf("[commission][handler] update failed percentage=%s err=%v", percentage, err)
		respondError(c, err)
		return
	}

	res := response.FromCommissionSetting(s)
	res.Message = "Commission settings updated successfully"
	c.JSON(http.StatusOK, res)
}
