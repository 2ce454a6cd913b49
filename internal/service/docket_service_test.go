package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/docketwatch/docket-api/internal/fetch"
	"github.com/docketwatch/docket-api/internal/models"
	appErrors "github.com/docketwatch/docket-api/pkg/errors"
)

type docketRepoStub struct {
	records map[string]*models.DocketRecord
	terms   map[int][]models.DocketRecord
	upserts []*models.DocketRecord
}

func (s *docketRepoStub) Upsert(ctx context.Context, rec *models.DocketRecord) error {
	s.upserts = append(s.upserts, rec)
	return nil
}

func (s *docketRepoStub) FindByDocketStr(ctx context.Context, docketStr string) (*models.DocketRecord, error) {
	rec, ok := s.records[docketStr]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return rec, nil
}

func (s *docketRepoStub) ListByTerm(ctx context.Context, term int) ([]models.DocketRecord, error) {
	return s.terms[term], nil
}

type rawEvent struct {
	date string
	text string
}

func rawDocket(t *testing.T, caseNumber string, events ...rawEvent) []byte {
	t.Helper()
	doc := models.Docket{
		CaseNumber:      caseNumber,
		PetitionerTitle: "Acme Corp., Petitioner",
		RespondentTitle: "Doe",
		Proceedings: []models.Proceeding{
			{Date: "Aug 15 2022", Text: "Petition for a writ of certiorari filed."},
		},
	}
	for _, ev := range events {
		doc.Proceedings = append(doc.Proceedings, models.Proceeding{Date: ev.date, Text: ev.text})
	}
	payload, err := json.Marshal(doc)
	require.NoError(t, err)
	return payload
}

func recordFor(t *testing.T, caseNumber, docketStr string, events ...rawEvent) *models.DocketRecord {
	t.Helper()
	return &models.DocketRecord{
		Term:      22,
		DocketStr: docketStr,
		Raw:       rawDocket(t, caseNumber, events...),
	}
}

func TestDocketServiceStatus(t *testing.T) {
	repo := &docketRepoStub{records: map[string]*models.DocketRecord{
		"22-123": recordFor(t, "22-123 ", "22-123", rawEvent{"Jan 09 2023", "Petition DENIED."}),
	}}
	svc := NewDocketService(repo, nil, nil, zap.NewNop(), DocketServiceConfig{})

	resp, err := svc.Status(context.Background(), "22-123")
	require.NoError(t, err)
	assert.Equal(t, "22-123", resp.Docket)
	assert.Equal(t, "Acme Corp. v. Doe", resp.CaseName)
	assert.Equal(t, "certiorari", resp.CaseType)
	assert.Equal(t, "denied", resp.CurrentStatus)
	assert.False(t, resp.Pending)
	assert.True(t, resp.Flags["denied"])
}

func TestDocketServiceStatusNotFound(t *testing.T) {
	repo := &docketRepoStub{records: map[string]*models.DocketRecord{}}
	svc := NewDocketService(repo, nil, nil, zap.NewNop(), DocketServiceConfig{})

	_, err := svc.Status(context.Background(), "22-999")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestDocketServiceStatusFallsBackToDisk(t *testing.T) {
	root := t.TempDir()
	_, err := fetch.Save(root, 22, 123, false, rawDocket(t, "22-123 ", rawEvent{"Jan 09 2023", "Petition DENIED."}))
	require.NoError(t, err)

	repo := &docketRepoStub{records: map[string]*models.DocketRecord{}}
	svc := NewDocketService(repo, nil, nil, zap.NewNop(), DocketServiceConfig{DataRoot: root})

	resp, err := svc.Status(context.Background(), "22-123")
	require.NoError(t, err)
	assert.Equal(t, "denied", resp.CurrentStatus)

	_, err = svc.Status(context.Background(), "22-999")
	require.Error(t, err)
}

func TestDocketServiceEvents(t *testing.T) {
	repo := &docketRepoStub{records: map[string]*models.DocketRecord{
		"22-123": recordFor(t, "22-123 ", "22-123", rawEvent{"Jan 09 2023", "Petition DENIED."}),
	}}
	svc := NewDocketService(repo, nil, nil, zap.NewNop(), DocketServiceConfig{})

	events, err := svc.Events(context.Background(), "22-123")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "2023-01-09", events[1].Date)
	assert.Contains(t, events[1].Tags, "denied")
}

func TestDocketServiceConferenceAction(t *testing.T) {
	repo := &docketRepoStub{records: map[string]*models.DocketRecord{
		"22-123": recordFor(t, "22-123 ", "22-123",
			rawEvent{"Oct 31 2022", "DISTRIBUTED for Conference of November 4, 2022."},
			rawEvent{"Nov 07 2022", "Petition DENIED."}),
	}}
	svc := NewDocketService(repo, nil, nil, zap.NewNop(), DocketServiceConfig{})

	resp, err := svc.ConferenceAction(context.Background(), "22-123", "2022-11-04")
	require.NoError(t, err)
	assert.Equal(t, "DENIED", resp.Action)
	assert.Equal(t, "2022-11-04", resp.Conference)

	_, err = svc.ConferenceAction(context.Background(), "22-123", "not a date")
	require.Error(t, err)
}

func TestDocketServiceStore(t *testing.T) {
	repo := &docketRepoStub{records: map[string]*models.DocketRecord{}}
	svc := NewDocketService(repo, nil, nil, zap.NewNop(), DocketServiceConfig{})

	raw := rawDocket(t, "22-123 ", rawEvent{"Jan 09 2023", "Petition DENIED."})
	rec, err := svc.Store(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "22-123", rec.DocketStr)
	assert.Equal(t, "denied", rec.CurrentStatus)
	assert.Equal(t, 22, rec.Term)
	require.Len(t, repo.upserts, 1)

	var flags map[string]bool
	require.NoError(t, json.Unmarshal(rec.Flags, &flags))
	assert.True(t, flags["denied"])
}

func TestDocketServiceStoreRejectsBlankCaseNumber(t *testing.T) {
	repo := &docketRepoStub{records: map[string]*models.DocketRecord{}}
	svc := NewDocketService(repo, nil, nil, zap.NewNop(), DocketServiceConfig{})

	_, err := svc.Store(context.Background(), []byte(`{"CaseNumber":""}`))
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.CodeNoDocket, appErr.Code)
	assert.Empty(t, repo.upserts)
}
