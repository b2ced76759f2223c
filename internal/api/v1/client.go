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

type ClientHandler struct {
	service service.ClientService
	log     *logger.Logger
}

func NewClientHandler(service service.ClientService, log *logger.Logger) *ClientHandler {
	return &ClientHandler{service: service, log: log}
}

func (h *ClientHandler) OnboardClient(c *gin.Context) {
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.OnboardClient(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	resp, err := h.service.GetClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ClientHandler) ListClients(c *gin.Context) {
	var filter types.ClientFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListClients(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ClientHandler) DeactivateClient(c *gin.Context) {
	if err := h.service.DeactivateClient(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "client deactivated successfully"})
}
