package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docketwatch/docket-api/internal/dto"
	appErrors "github.com/docketwatch/docket-api/pkg/errors"
)

type docketServiceMock struct {
	status *dto.StatusResponse
	events []dto.EventDTO
	action *dto.ConferenceActionResponse
	err    error
}

func (m *docketServiceMock) Status(ctx context.Context, docketStr string) (*dto.StatusResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.status, nil
}

func (m *docketServiceMock) Events(ctx context.Context, docketStr string) ([]dto.EventDTO, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.events, nil
}

func (m *docketServiceMock) ConferenceAction(ctx context.Context, docketStr, rawDate string) (*dto.ConferenceActionResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.action, nil
}

func TestDocketHandlerStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDocketHandler(&docketServiceMock{
		status: &dto.StatusResponse{Docket: "22-123", CurrentStatus: "denied"},
	})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/dockets/22-123", nil)
	c.Params = gin.Params{{Key: "docket", Value: "22-123"}}

	handler.Status(c)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data dto.StatusResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "22-123", envelope.Data.Docket)
	assert.Equal(t, "denied", envelope.Data.CurrentStatus)
}

func TestDocketHandlerStatusNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDocketHandler(&docketServiceMock{err: appErrors.Clone(appErrors.ErrNotFound, "docket not found")})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/dockets/22-999", nil)
	c.Params = gin.Params{{Key: "docket", Value: "22-999"}}

	handler.Status(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDocketHandlerEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDocketHandler(&docketServiceMock{
		events: []dto.EventDTO{{Date: "2023-01-09", Text: "Petition DENIED.", Tags: []string{"denied"}}},
	})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/dockets/22-123/events", nil)
	c.Params = gin.Params{{Key: "docket", Value: "22-123"}}

	handler.Events(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Petition DENIED.")
}

func TestDocketHandlerConferenceAction(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDocketHandler(&docketServiceMock{
		action: &dto.ConferenceActionResponse{Docket: "22-123", Conference: "2022-11-04", Action: "DENIED"},
	})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/dockets/22-123/conference/2022-11-04", nil)
	c.Params = gin.Params{{Key: "docket", Value: "22-123"}, {Key: "date", Value: "2022-11-04"}}

	handler.ConferenceAction(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "DENIED")
}
