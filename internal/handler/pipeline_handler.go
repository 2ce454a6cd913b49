package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docketwatch/docket-api/internal/dto"
	appErrors "github.com/docketwatch/docket-api/pkg/errors"
	"github.com/docketwatch/docket-api/pkg/response"
)

type pipelineService interface {
	Run(ctx context.Context, req dto.PipelineRequest) (*dto.PipelineResponse, error)
}

// PipelineHandler runs batch report pipelines over the local docket mirror.
type PipelineHandler struct {
	service pipelineService
}

// NewPipelineHandler builds a new handler.
func NewPipelineHandler(service pipelineService) *PipelineHandler {
	return &PipelineHandler{service: service}
}

// Run godoc
// @Summary Run a batch report pipeline over the local docket mirror
// @Tags Pipelines
// @Accept json
// @Produce json
// @Param payload body dto.PipelineRequest true "Pipeline stages"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Security BearerAuth
// @Router /pipeline/run [post]
func (h *PipelineHandler) Run(c *gin.Context) {
	var req dto.PipelineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid pipeline payload"))
		return
	}
	if claims := claimsFromContext(c); claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	res, err := h.service.Run(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, res, nil)
}
