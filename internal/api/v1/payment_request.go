package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techAMA2025/NewCRM-sub003/internal/api/dto"
	ierr "github.com/techAMA2025/NewCRM-sub003/internal/errors"
	"github.com/techAMA2025/NewCRM-sub003/internal/logger"
	"github.com/techAMA2025/NewCRM-sub003/internal/service"
	"github.com/techAMA2025/NewCRM-sub003/internal/types"
)

type PaymentRequestHandler struct {
	service service.PaymentRequestService
	log     *logger.Logger
}

func NewPaymentRequestHandler(service service.PaymentRequestService, log *logger.Logger) *PaymentRequestHandler {
	return &PaymentRequestHandler{service: service, log: log}
}

func (h *PaymentRequestHandler) SubmitPaymentRequest(c *gin.Context) {
	var req dto.SubmitPaymentRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.SubmitPaymentRequest(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *PaymentRequestHandler) GetPaymentRequest(c *gin.Context) {
	resp, err := h.service.GetPaymentRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PaymentRequestHandler) ListPaymentRequests(c *gin.Context) {
	var filter types.RequestFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListPaymentRequests(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PaymentRequestHandler) ApprovePaymentRequest(c *gin.Context) {
	resp, err := h.service.ApprovePaymentRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PaymentRequestHandler) RejectPaymentRequest(c *gin.Context) {
	resp, err := h.service.RejectPaymentRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PaymentRequestHandler) EditPaymentRequestAmount(c *gin.Context) {
	var req dto.EditAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.EditPaymentRequestAmount(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PaymentRequestHandler) DeletePaymentRequest(c *gin.Context) {
	if err := h.service.DeletePaymentRequest(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "payment request deleted successfully"})
}
