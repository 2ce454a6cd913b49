package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/docketwatch/docket-api/internal/dto"
	"github.com/docketwatch/docket-api/internal/pipeline"
	appErrors "github.com/docketwatch/docket-api/pkg/errors"
)

// PipelineServiceConfig locates the local docket mirror batch runs read.
type PipelineServiceConfig struct {
	DataRoot string
}

// PipelineService assembles and runs batch report pipelines over the local
// docket mirror.
type PipelineService struct {
	registry *pipeline.Registry
	logger   *zap.Logger
	cfg      PipelineServiceConfig
}

// NewPipelineService constructs a PipelineService with the built-in stages.
func NewPipelineService(logger *zap.Logger, cfg PipelineServiceConfig) *PipelineService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PipelineService{
		registry: pipeline.NewRegistry(),
		logger:   logger,
		cfg:      cfg,
	}
}

// Run assembles the requested stages and executes the pipeline. Unknown
// stage names and bad arguments are the caller's mistake; failures during
// the run itself are not.
func (s *PipelineService) Run(ctx context.Context, req dto.PipelineRequest) (*dto.PipelineResponse, error) {
	p, err := s.assemble(req)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid pipeline stage")
	}

	lines, err := p.Run()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "pipeline run failed")
	}
	if lines == nil {
		lines = []string{}
	}

	s.logger.Sugar().Infow("pipeline run complete", "source", sourceName(req), "lines", len(lines))
	return &dto.PipelineResponse{Lines: lines, Count: len(lines)}, nil
}

func (s *PipelineService) assemble(req dto.PipelineRequest) (*pipeline.Pipeline, error) {
	// The data root is fixed by configuration; request arguments cannot
	// point a run at another directory.
	sourceArgs := pipeline.Args{}
	for k, v := range req.Source.Args {
		sourceArgs[k] = v
	}
	sourceArgs["root"] = s.cfg.DataRoot

	source, err := s.registry.Source(sourceName(req), sourceArgs)
	if err != nil {
		return nil, err
	}
	p := &pipeline.Pipeline{Source: source}

	for _, stage := range req.Filters {
		f, err := s.registry.Filter(stage.Name, pipeline.Args(stage.Args))
		if err != nil {
			return nil, err
		}
		p.Filters = append(p.Filters, f)
	}
	for _, stage := range req.Queries {
		q, err := s.registry.Query(stage.Name, pipeline.Args(stage.Args))
		if err != nil {
			return nil, err
		}
		p.Queries = append(p.Queries, q)
	}

	outputName := req.Output.Name
	if outputName == "" {
		outputName = "docket-oneline"
	}
	output, err := s.registry.Output(outputName, pipeline.Args(req.Output.Args))
	if err != nil {
		return nil, err
	}
	p.Output = output
	return p, nil
}

func sourceName(req dto.PipelineRequest) string {
	if req.Source.Name == "" {
		return "docket"
	}
	return req.Source.Name
}
