package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/docketwatch/docket-api/internal/dto"
	"github.com/docketwatch/docket-api/internal/fetch"
	"github.com/docketwatch/docket-api/internal/models"
	"github.com/docketwatch/docket-api/internal/ngram"
	appErrors "github.com/docketwatch/docket-api/pkg/errors"
	"github.com/docketwatch/docket-api/pkg/jobs"
)

type docketFetcher interface {
	FetchDocket(ctx context.Context, docketStr string) (*models.Docket, []byte, error)
	FetchDocument(ctx context.Context, url string) ([]byte, error)
}

type docketStore interface {
	Store(ctx context.Context, raw []byte) (*models.DocketRecord, error)
}

// IngestServiceConfig tunes the background fetch workers.
type IngestServiceConfig struct {
	DataRoot          string
	WorkerConcurrency int
	WorkerRetries     int
}

type ingestPayload struct {
	Term        int
	Number      int
	Application bool
}

// IngestService fetches docket number ranges from the public endpoint,
// mirrors them to the local data layout and persists derived records.
type IngestService struct {
	fetcher   docketFetcher
	store     docketStore
	queue     *jobs.Queue
	validator *validator.Validate
	logger    *zap.Logger
	cfg       IngestServiceConfig
}

// NewIngestService constructs an IngestService with its worker queue.
func NewIngestService(fetcher docketFetcher, store docketStore, validate *validator.Validate, logger *zap.Logger, cfg IngestServiceConfig) *IngestService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	s := &IngestService{
		fetcher:   fetcher,
		store:     store,
		validator: validate,
		logger:    logger,
		cfg:       cfg,
	}
	s.queue = jobs.NewQueue("ingest", s.handle, jobs.QueueConfig{
		Workers:    cfg.WorkerConcurrency,
		MaxRetries: cfg.WorkerRetries,
		RetryDelay: 5 * time.Second,
		Logger:     logger,
	})
	return s
}

// Start begins worker consumption.
func (s *IngestService) Start(ctx context.Context) {
	s.queue.Start(ctx)
}

// Stop drains the workers.
func (s *IngestService) Stop() {
	s.queue.Stop()
}

// Enqueue queues one fetch job per docket number in the requested range.
func (s *IngestService) Enqueue(ctx context.Context, req dto.IngestRequest) (*dto.IngestResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid ingest payload")
	}
	if req.End < req.Start {
		return nil, appErrors.Clone(appErrors.ErrValidation, "end must not precede start")
	}

	batchID := uuid.NewString()
	queued := 0
	for n := req.Start; n <= req.End; n++ {
		job := jobs.Job{
			ID:   fmt.Sprintf("%s/%d", batchID, n),
			Type: "docket",
			Payload: ingestPayload{
				Term:        req.Term,
				Number:      n,
				Application: req.Applications,
			},
		}
		if err := s.queue.Enqueue(job); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to queue ingest job")
		}
		queued++
	}

	s.logger.Sugar().Infow("ingest batch queued", "batch_id", batchID, "term", req.Term, "queued", queued)
	return &dto.IngestResponse{BatchID: batchID, Queued: queued}, nil
}

func (s *IngestService) handle(ctx context.Context, job jobs.Job) error {
	payload, ok := job.Payload.(ingestPayload)
	if !ok {
		return fmt.Errorf("unexpected payload type %T", job.Payload)
	}

	docketStr := formatDocketStr(payload)
	doc, raw, err := s.fetcher.FetchDocket(ctx, docketStr)
	if err != nil {
		// Gaps in the number space are normal; nothing to retry.
		if errors.Is(err, fetch.ErrNotFound) {
			s.logger.Debug("docket not present upstream", zap.String("docket", docketStr))
			return nil
		}
		return err
	}

	if s.cfg.DataRoot != "" {
		dir, err := fetch.Save(s.cfg.DataRoot, payload.Term, payload.Number, payload.Application, raw)
		if err != nil {
			s.logger.Warn("failed to mirror docket locally", zap.String("docket", docketStr), zap.Error(err))
		} else {
			s.mirrorPetition(ctx, doc, docketStr, dir)
		}
	}

	if _, err := s.store.Store(ctx, raw); err != nil {
		// Identity failures are permanent properties of the payload.
		var appErr *appErrors.Error
		if errors.As(err, &appErr) && appErr.Status < 500 {
			s.logger.Warn("docket rejected during ingest", zap.String("docket", docketStr), zap.Error(err))
			return nil
		}
		return err
	}
	return nil
}

// mirrorPetition downloads the docket's petition document next to
// docket.json and rebuilds the directory's n-gram index. The docket record
// itself is already persisted, so mirror failures log and move on.
func (s *IngestService) mirrorPetition(ctx context.Context, doc *models.Docket, docketStr, dir string) {
	link := petitionLink(doc)
	if link == nil || link.DocumentURL == "" {
		return
	}

	payload, err := s.fetcher.FetchDocument(ctx, link.DocumentURL)
	if err != nil {
		s.logger.Warn("failed to fetch petition", zap.String("docket", docketStr), zap.Error(err))
		return
	}
	name := link.File
	if name == "" {
		name = path.Base(link.DocumentURL)
	}
	if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
		name += ".pdf"
	}
	if err := os.WriteFile(filepath.Join(dir, name), payload, 0o644); err != nil {
		s.logger.Warn("failed to write petition", zap.String("docket", docketStr), zap.Error(err))
		return
	}

	if _, err := ngram.IndexDir(dir, s.logger); err != nil {
		s.logger.Warn("failed to index docket documents", zap.String("docket", docketStr), zap.Error(err))
	}
}

func petitionLink(doc *models.Docket) *models.DocumentLink {
	for _, p := range doc.Proceedings {
		for i := range p.Links {
			if p.Links[i].Description == "Petition" {
				return &p.Links[i]
			}
		}
	}
	return nil
}

func formatDocketStr(p ingestPayload) string {
	if p.Application {
		return fmt.Sprintf("%dA%d", p.Term, p.Number)
	}
	return fmt.Sprintf("%d-%d", p.Term, p.Number)
}
