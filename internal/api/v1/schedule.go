package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techAMA2025/NewCRM-sub003/internal/api/dto"
	ierr "github.com/techAMA2025/NewCRM-sub003/internal/errors"
	"github.com/techAMA2025/NewCRM-sub003/internal/logger"
	"github.com/techAMA2025/NewCRM-sub003/internal/service"
)

type ScheduleHandler struct {
	service service.ScheduleService
	log     *logger.Logger
}

func NewScheduleHandler(service service.ScheduleService, log *logger.Logger) *ScheduleHandler {
	return &ScheduleHandler{service: service, log: log}
}

func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	resp, err := h.service.ComputeSchedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// PostPayment posts an amount directly against a scheduled month. The usual
// path is approval of a payment request; this endpoint exists for manual
// corrections by an administrator.
func (h *ScheduleHandler) PostPayment(c *gin.Context) {
	var req dto.PostPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	clientID := c.Param("id")
	if err := h.service.PostPayment(c.Request.Context(), clientID, req.MonthNumber, req.Amount); err != nil {
		c.Error(err)
		return
	}

	resp, err := h.service.ComputeSchedule(c.Request.Context(), clientID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
