package dto

// PipelineStage names one registered stage with its construction arguments.
type PipelineStage struct {
	Name string                 `json:"name"`
	Args map[string]interface{} `json:"args,omitempty"`
}

// PipelineRequest assembles a batch report run from named stages. An empty
// source defaults to the term docket enumerator and an empty output to the
// one-line renderer.
type PipelineRequest struct {
	Source  PipelineStage   `json:"source"`
	Filters []PipelineStage `json:"filters,omitempty"`
	Queries []PipelineStage `json:"queries,omitempty"`
	Output  PipelineStage   `json:"output"`
}

// PipelineResponse carries the rendered report lines.
type PipelineResponse struct {
	Lines []string `json:"lines"`
	Count int      `json:"count"`
}
