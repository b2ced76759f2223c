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

type ExpenseRequestHandler struct {
	service service.ExpenseRequestService
	log     *logger.Logger
}

func NewExpenseRequestHandler(service service.ExpenseRequestService, log *logger.Logger) *ExpenseRequestHandler {
	return &ExpenseRequestHandler{service: service, log: log}
}

func (h *ExpenseRequestHandler) SubmitExpenseRequest(c *gin.Context) {
	var req dto.SubmitExpenseRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.SubmitExpenseRequest(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *ExpenseRequestHandler) GetExpenseRequest(c *gin.Context) {
	resp, err := h.service.GetExpenseRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ExpenseRequestHandler) ListExpenseRequests(c *gin.Context) {
	var filter types.RequestFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListExpenseRequests(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ExpenseRequestHandler) ApproveExpenseRequest(c *gin.Context) {
	resp, err := h.service.ApproveExpenseRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ExpenseRequestHandler) RejectExpenseRequest(c *gin.Context) {
	resp, err := h.service.RejectExpenseRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ExpenseRequestHandler) EditExpenseRequestAmount(c *gin.Context) {
	var req dto.EditAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.EditExpenseRequestAmount(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ExpenseRequestHandler) DeleteExpenseRequest(c *gin.Context) {
	if err := h.service.DeleteExpenseRequest(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "expense request deleted successfully"})
}
