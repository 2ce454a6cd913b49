package handler

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/docketwatch/docket-api/internal/dto"
	"github.com/docketwatch/docket-api/internal/service"
	appErrors "github.com/docketwatch/docket-api/pkg/errors"
	"github.com/docketwatch/docket-api/pkg/response"
)

type conferenceService interface {
	Report(ctx context.Context, rawDate string) (*dto.ConferenceReport, error)
	Dates(ctx context.Context, term int) (*dto.ConferenceDatesResponse, error)
}

// ConferenceHandler exposes conference resolution and export endpoints.
type ConferenceHandler struct {
	conferences conferenceService
	exports     *service.ExportService
}

// NewConferenceHandler builds a new handler. The export service is optional;
// export endpoints respond 404 when it is absent.
func NewConferenceHandler(conferences conferenceService, exports *service.ExportService) *ConferenceHandler {
	return &ConferenceHandler{conferences: conferences, exports: exports}
}

// Report godoc
// @Summary Resolve every docket against one conference date
// @Tags Conferences
// @Produce json
// @Param date path string true "Conference date (2006-01-02)"
// @Success 200 {object} response.Envelope
// @Router /conferences/{date} [get]
func (h *ConferenceHandler) Report(c *gin.Context) {
	report, err := h.conferences.Report(c.Request.Context(), c.Param("date"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, report, nil)
}

// Dates godoc
// @Summary List the conference dates of a term
// @Tags Conferences
// @Produce json
// @Param term path int true "Term number"
// @Success 200 {object} response.Envelope
// @Router /terms/{term}/conferences [get]
func (h *ConferenceHandler) Dates(c *gin.Context) {
	term, err := strconv.Atoi(c.Param("term"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "term must be numeric"))
		return
	}
	dates, err := h.conferences.Dates(c.Request.Context(), term)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dates, nil)
}

// Export godoc
// @Summary Render a conference report to CSV or PDF
// @Tags Conferences
// @Produce json
// @Param date path string true "Conference date (2006-01-02)"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {object} response.Envelope
// @Router /conferences/{date}/export [get]
func (h *ConferenceHandler) Export(c *gin.Context) {
	if h.exports == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "exports are disabled"))
		return
	}
	format := c.DefaultQuery("format", service.ExportFormatCSV)
	if format != service.ExportFormatCSV && format != service.ExportFormatPDF {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf"))
		return
	}

	report, err := h.conferences.Report(c.Request.Context(), c.Param("date"))
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.exports.Generate(report, format)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export"))
		return
	}
	response.JSON(c, http.StatusOK, dto.ExportResponse{
		URL:       result.URL,
		Format:    result.Format,
		ExpiresAt: result.ExpiresAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}, nil)
}

// Download godoc
// @Summary Download a rendered conference report
// @Tags Conferences
// @Param token path string true "Signed download token"
// @Success 200 {file} binary
// @Router /exports/{token} [get]
func (h *ConferenceHandler) Download(c *gin.Context) {
	if h.exports == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "exports are disabled"))
		return
	}
	_, relPath, _, err := h.exports.ParseToken(c.Param("token"), false)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "invalid or expired download token"))
		return
	}
	file, err := h.exports.Open(relPath)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "export no longer available"))
		return
	}
	defer file.Close()

	c.Header("Content-Disposition", "attachment; filename="+relPath)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, file); err != nil {
		_ = c.Error(err)
	}
}
