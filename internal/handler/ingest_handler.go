package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docketwatch/docket-api/internal/dto"
	appErrors "github.com/docketwatch/docket-api/pkg/errors"
	"github.com/docketwatch/docket-api/pkg/response"
)

type ingestService interface {
	Enqueue(ctx context.Context, req dto.IngestRequest) (*dto.IngestResponse, error)
}

// IngestHandler accepts docket fetch requests.
type IngestHandler struct {
	service ingestService
}

// NewIngestHandler builds a new handler.
func NewIngestHandler(service ingestService) *IngestHandler {
	return &IngestHandler{service: service}
}

// Ingest godoc
// @Summary Queue a docket number range for ingestion
// @Tags Ingest
// @Accept json
// @Produce json
// @Param payload body dto.IngestRequest true "Ingest payload"
// @Success 202 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Security BearerAuth
// @Router /ingest [post]
func (h *IngestHandler) Ingest(c *gin.Context) {
	var req dto.IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid ingest payload"))
		return
	}
	if claims := claimsFromContext(c); claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	res, err := h.service.Enqueue(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusAccepted, res, nil)
}
