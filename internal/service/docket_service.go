package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/docketwatch/docket-api/internal/docket"
	"github.com/docketwatch/docket-api/internal/fetch"
	"github.com/docketwatch/docket-api/internal/dto"
	"github.com/docketwatch/docket-api/internal/models"
	appErrors "github.com/docketwatch/docket-api/pkg/errors"
)

type docketRepository interface {
	Upsert(ctx context.Context, rec *models.DocketRecord) error
	FindByDocketStr(ctx context.Context, docketStr string) (*models.DocketRecord, error)
	ListByTerm(ctx context.Context, term int) ([]models.DocketRecord, error)
}

type payloadCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// DocketServiceConfig tunes caching and the on-disk fallback.
type DocketServiceConfig struct {
	CacheTTL time.Duration
	// DataRoot points at the local docket mirror. When set, dockets absent
	// from the database are read from OT-<term>/dockets/... instead.
	DataRoot string
}

// DocketService serves derived case status for individual dockets.
type DocketService struct {
	repo    docketRepository
	cache   payloadCache
	metrics *MetricsService
	logger  *zap.Logger
	cfg     DocketServiceConfig
}

// NewDocketService constructs a DocketService.
func NewDocketService(repo docketRepository, cache payloadCache, metrics *MetricsService, logger *zap.Logger, cfg DocketServiceConfig) *DocketService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 10 * time.Minute
	}
	return &DocketService{repo: repo, cache: cache, metrics: metrics, logger: logger, cfg: cfg}
}

// Status returns the derived status for one docket, cached per docket string.
func (s *DocketService) Status(ctx context.Context, docketStr string) (*dto.StatusResponse, error) {
	key := "docket:status:" + docketStr
	if s.cache != nil {
		started := time.Now()
		var cached dto.StatusResponse
		err := s.cache.Get(ctx, key, &cached)
		s.metrics.RecordCacheOperation(err == nil, time.Since(started))
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("status cache read failed", zap.String("docket", docketStr), zap.Error(err))
		}
	}

	status, err := s.load(ctx, docketStr)
	if err != nil {
		return nil, err
	}
	resp := dto.NewStatusResponse(status)

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, resp, s.cfg.CacheTTL); err != nil {
			s.logger.Warn("status cache write failed", zap.String("docket", docketStr), zap.Error(err))
		}
	}
	return resp, nil
}

// Events returns the tagged event stream for one docket.
func (s *DocketService) Events(ctx context.Context, docketStr string) ([]dto.EventDTO, error) {
	status, err := s.load(ctx, docketStr)
	if err != nil {
		return nil, err
	}
	return dto.NewEventDTOs(status), nil
}

// ConferenceAction resolves what a specific conference did to one docket.
// Relist detection uses the docket's own distribution history.
func (s *DocketService) ConferenceAction(ctx context.Context, docketStr, rawDate string) (*dto.ConferenceActionResponse, error) {
	confDate, err := docket.ParseDate(rawDate)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "unparseable conference date")
	}
	status, err := s.load(ctx, docketStr)
	if err != nil {
		return nil, err
	}

	var allDates []time.Time
	for _, dist := range status.Distributions {
		allDates = append(allDates, dist.ConferenceDate)
	}
	action := status.ConferenceAction(confDate, allDates)
	s.metrics.RecordConferenceResolution(action)

	return &dto.ConferenceActionResponse{
		Docket:     status.DocketString(),
		Conference: confDate.Format("2006-01-02"),
		Action:     action,
	}, nil
}

// Store derives the status for a raw docket payload and persists the record.
// Used by ingest; invalidates the cached status for the docket.
func (s *DocketService) Store(ctx context.Context, raw []byte) (*models.DocketRecord, error) {
	doc := &models.Docket{}
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "malformed docket payload")
	}

	status, err := docket.Build(doc, docket.BuildOptions{})
	s.metrics.ObserveDocketBuild(err)
	if err != nil {
		return nil, err
	}

	flags, err := json.Marshal(status.FlagDict())
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to encode flags")
	}

	rec := &models.DocketRecord{
		Term:          status.Term,
		Number:        status.Number,
		Kind:          status.Kind.String(),
		DocketStr:     status.DocketString(),
		CaseType:      string(status.CaseType),
		CaseName:      status.CaseName,
		CurrentStatus: status.CurrentStatus(),
		Raw:           raw,
		Flags:         flags,
	}
	if err := s.repo.Upsert(ctx, rec); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist docket")
	}

	if s.cache != nil {
		if err := s.cache.DeleteByPattern(ctx, "docket:status:"+rec.DocketStr); err != nil {
			s.logger.Warn("status cache invalidation failed", zap.String("docket", rec.DocketStr), zap.Error(err))
		}
		if err := s.cache.DeleteByPattern(ctx, "conference:*"); err != nil {
			s.logger.Warn("conference cache invalidation failed", zap.Error(err))
		}
	}
	return rec, nil
}

func (s *DocketService) load(ctx context.Context, docketStr string) (*docket.Status, error) {
	rec, err := s.repo.FindByDocketStr(ctx, docketStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if status, ok := s.loadFromDisk(docketStr); ok {
				return status, nil
			}
			return nil, appErrors.Clone(appErrors.ErrNotFound, "docket not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch docket")
	}

	doc := &models.Docket{}
	if err := json.Unmarshal(rec.Raw, doc); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "stored docket payload is malformed")
	}

	status, err := docket.Build(doc, docket.BuildOptions{})
	s.metrics.ObserveDocketBuild(err)
	if err != nil {
		return nil, err
	}
	return status, nil
}

// loadFromDisk reads a docket from the local mirror. Original-jurisdiction
// dockets are not mirrored and always miss.
func (s *DocketService) loadFromDisk(docketStr string) (*docket.Status, bool) {
	if s.cfg.DataRoot == "" {
		return nil, false
	}
	term, number, kind, err := docket.ParseDocketNumber(docketStr)
	if err != nil || kind == docket.KindOriginal {
		return nil, false
	}

	path := filepath.Join(fetch.LocalDir(s.cfg.DataRoot, term, number, kind == docket.KindApplication), "docket.json")
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	doc := &models.Docket{}
	if err := json.Unmarshal(raw, doc); err != nil {
		s.logger.Warn("mirrored docket payload is malformed", zap.String("docket", docketStr), zap.Error(err))
		return nil, false
	}
	status, err := docket.Build(doc, docket.BuildOptions{})
	s.metrics.ObserveDocketBuild(err)
	if err != nil {
		s.logger.Warn("mirrored docket failed to build", zap.String("docket", docketStr), zap.Error(err))
		return nil, false
	}
	return status, true
}
