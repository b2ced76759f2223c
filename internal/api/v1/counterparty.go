package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techAMA2025/NewCRM-sub003/internal/api/dto"
	ierr "github.com/techAMA2025/NewCRM-sub003/internal/errors"
	"github.com/techAMA2025/NewCRM-sub003/internal/logger"
	"github.com/techAMA2025/NewCRM-sub003/internal/service"
)

type CounterpartyHandler struct {
	service service.ReconciliationService
	log     *logger.Logger
}

func NewCounterpartyHandler(service service.ReconciliationService, log *logger.Logger) *CounterpartyHandler {
	return &CounterpartyHandler{service: service, log: log}
}

func (h *CounterpartyHandler) AddCounterparty(c *gin.Context) {
	var req dto.CreateCounterpartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.AddCounterparty(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *CounterpartyHandler) ListCounterparties(c *gin.Context) {
	resp, err := h.service.ListCounterparties(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ResolveCounterparty reconciles a freeform institution name. An unmatched
// name returns 200 with matched=false.
func (h *CounterpartyHandler) ResolveCounterparty(c *gin.Context) {
	name := c.Query("name")

	resp, err := h.service.ResolveCounterparty(c.Request.Context(), name)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
