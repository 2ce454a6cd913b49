package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/docketwatch/docket-api/internal/docket"
	"github.com/docketwatch/docket-api/internal/dto"
	"github.com/docketwatch/docket-api/internal/models"
	appErrors "github.com/docketwatch/docket-api/pkg/errors"
)

const conferenceDateLayout = "2006-01-02"

// ConferenceServiceConfig tunes report caching.
type ConferenceServiceConfig struct {
	CacheTTL time.Duration
}

// ConferenceService resolves conference outcomes across a whole term.
type ConferenceService struct {
	repo    docketRepository
	cache   payloadCache
	metrics *MetricsService
	logger  *zap.Logger
	cfg     ConferenceServiceConfig
}

// NewConferenceService constructs a ConferenceService.
func NewConferenceService(repo docketRepository, cache payloadCache, metrics *MetricsService, logger *zap.Logger, cfg ConferenceServiceConfig) *ConferenceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 10 * time.Minute
	}
	return &ConferenceService{repo: repo, cache: cache, metrics: metrics, logger: logger, cfg: cfg}
}

// Report resolves every docket of the conference's term against the given
// conference date. Dockets the conference did not touch are omitted.
func (s *ConferenceService) Report(ctx context.Context, rawDate string) (*dto.ConferenceReport, error) {
	confDate, err := docket.ParseDate(rawDate)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "unparseable conference date")
	}
	term := termForDate(confDate)
	key := "conference:report:" + confDate.Format(conferenceDateLayout)

	if s.cache != nil {
		started := time.Now()
		var cached dto.ConferenceReport
		err := s.cache.Get(ctx, key, &cached)
		s.metrics.RecordCacheOperation(err == nil, time.Since(started))
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("conference cache read failed", zap.Error(err))
		}
	}

	statuses, err := s.termStatuses(ctx, term)
	if err != nil {
		return nil, err
	}

	allDates := conferenceDates(statuses)
	report := &dto.ConferenceReport{
		Date: confDate.Format(conferenceDateLayout),
		Term: term,
		Rows: []dto.ConferenceReportRow{},
	}
	for _, status := range statuses {
		action := status.ConferenceAction(confDate, allDates)
		if action == docket.ActionNone {
			continue
		}
		s.metrics.RecordConferenceResolution(action)
		report.Rows = append(report.Rows, buildReportRow(status, action))
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, report, s.cfg.CacheTTL); err != nil {
			s.logger.Warn("conference cache write failed", zap.Error(err))
		}
	}
	return report, nil
}

// Dates lists every conference date the term's dockets were distributed for.
func (s *ConferenceService) Dates(ctx context.Context, term int) (*dto.ConferenceDatesResponse, error) {
	statuses, err := s.termStatuses(ctx, term)
	if err != nil {
		return nil, err
	}
	dates := conferenceDates(statuses)
	resp := &dto.ConferenceDatesResponse{Term: term, Dates: []string{}}
	for _, d := range dates {
		resp.Dates = append(resp.Dates, d.Format(conferenceDateLayout))
	}
	return resp, nil
}

// termStatuses rebuilds the status of every docket in the term. A record
// whose stored payload no longer derives cleanly is skipped so one bad case
// cannot take down a whole report.
func (s *ConferenceService) termStatuses(ctx context.Context, term int) ([]*docket.Status, error) {
	recs, err := s.repo.ListByTerm(ctx, term)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list term dockets")
	}

	statuses := make([]*docket.Status, 0, len(recs))
	for _, rec := range recs {
		doc := &models.Docket{}
		if err := json.Unmarshal(rec.Raw, doc); err != nil {
			s.logger.Warn("skipping malformed stored docket", zap.String("docket", rec.DocketStr), zap.Error(err))
			continue
		}
		status, err := docket.Build(doc, docket.BuildOptions{IgnoreCaseNameErrors: true})
		s.metrics.ObserveDocketBuild(err)
		if err != nil {
			s.logger.Warn("skipping underivable docket", zap.String("docket", rec.DocketStr), zap.Error(err))
			continue
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

func buildReportRow(status *docket.Status, action string) dto.ConferenceReportRow {
	row := dto.ConferenceReportRow{
		Docket:            status.DocketString(),
		CaseName:          status.CaseName,
		CaseType:          string(status.CaseType),
		CurrentStatus:     status.CurrentStatus(),
		Action:            action,
		DistributionCount: len(status.Distributions),
		Flags:             status.FlagDict(),
	}
	for _, dist := range status.Distributions {
		if dist.Rescheduled {
			row.RescheduleCount++
		}
		row.Distributions = append(row.Distributions, dto.DistributionDTO{
			EventDate:      dist.EventDate.Format(conferenceDateLayout),
			ConferenceDate: dist.ConferenceDate.Format(conferenceDateLayout),
			Rescheduled:    dist.Rescheduled,
		})
	}
	return row
}

// conferenceDates returns the sorted union of conference dates across the
// given statuses.
func conferenceDates(statuses []*docket.Status) []time.Time {
	seen := map[time.Time]struct{}{}
	var dates []time.Time
	for _, status := range statuses {
		for _, dist := range status.Distributions {
			if _, ok := seen[dist.ConferenceDate]; ok {
				continue
			}
			seen[dist.ConferenceDate] = struct{}{}
			dates = append(dates, dist.ConferenceDate)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// termForDate maps a conference date to its term number. Terms begin in
// October.
func termForDate(t time.Time) int {
	year := t.Year()
	if t.Month() < time.October {
		year--
	}
	return year - 2000
}
