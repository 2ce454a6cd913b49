package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docketwatch/docket-api/internal/dto"
	appErrors "github.com/docketwatch/docket-api/pkg/errors"
	"github.com/docketwatch/docket-api/pkg/response"
)

type docketService interface {
	Status(ctx context.Context, docketStr string) (*dto.StatusResponse, error)
	Events(ctx context.Context, docketStr string) ([]dto.EventDTO, error)
	ConferenceAction(ctx context.Context, docketStr, rawDate string) (*dto.ConferenceActionResponse, error)
}

// DocketHandler exposes per-docket status endpoints.
type DocketHandler struct {
	service docketService
}

// NewDocketHandler builds a new handler.
func NewDocketHandler(service docketService) *DocketHandler {
	return &DocketHandler{service: service}
}

// Status godoc
// @Summary Derived status for one docket
// @Tags Dockets
// @Produce json
// @Param docket path string true "Docket identifier (22-123, 22A419, 22O151)"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /dockets/{docket} [get]
func (h *DocketHandler) Status(c *gin.Context) {
	docketStr := c.Param("docket")
	if docketStr == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "docket identifier required"))
		return
	}
	status, err := h.service.Status(c.Request.Context(), docketStr)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, status, nil)
}

// Events godoc
// @Summary Tagged event stream for one docket
// @Tags Dockets
// @Produce json
// @Param docket path string true "Docket identifier"
// @Success 200 {object} response.Envelope
// @Router /dockets/{docket}/events [get]
func (h *DocketHandler) Events(c *gin.Context) {
	events, err := h.service.Events(c.Request.Context(), c.Param("docket"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, events, nil)
}

// ConferenceAction godoc
// @Summary Outcome of one conference for one docket
// @Tags Dockets
// @Produce json
// @Param docket path string true "Docket identifier"
// @Param date path string true "Conference date (2006-01-02)"
// @Success 200 {object} response.Envelope
// @Router /dockets/{docket}/conference/{date} [get]
func (h *DocketHandler) ConferenceAction(c *gin.Context) {
	action, err := h.service.ConferenceAction(c.Request.Context(), c.Param("docket"), c.Param("date"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, action, nil)
}
