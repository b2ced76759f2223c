package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techAMA2025/NewCRM-sub003/internal/api/dto"
	ierr "github.com/techAMA2025/NewCRM-sub003/internal/errors"
	"github.com/techAMA2025/NewCRM-sub003/internal/logger"
	"github.com/techAMA2025/NewCRM-sub003/internal/service"
)

type CaseRecordHandler struct {
	service service.CaseRecordService
	log     *logger.Logger
}

func NewCaseRecordHandler(service service.CaseRecordService, log *logger.Logger) *CaseRecordHandler {
	return &CaseRecordHandler{service: service, log: log}
}

func (h *CaseRecordHandler) CreateCase(c *gin.Context) {
	var req dto.CreateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateCase(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *CaseRecordHandler) GetCase(c *gin.Context) {
	resp, err := h.service.GetCase(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CaseRecordHandler) ListCasesByClient(c *gin.Context) {
	resp, err := h.service.ListCasesByClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CaseRecordHandler) UpdateCase(c *gin.Context) {
	var req dto.UpdateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateCase(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CaseRecordHandler) MarkEmailSent(c *gin.Context) {
	resp, err := h.service.MarkEmailSent(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
