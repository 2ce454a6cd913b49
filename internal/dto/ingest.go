package dto

// IngestRequest asks the service to fetch and store a docket number range
// for one term.
type IngestRequest struct {
	Term         int  `json:"term" validate:"min=0"`
	Start        int  `json:"start" validate:"required,min=1"`
	End          int  `json:"end" validate:"required,min=1"`
	Applications bool `json:"applications"`
}

// IngestResponse acknowledges the queued work.
type IngestResponse struct {
	BatchID string `json:"batch_id"`
	Queued  int    `json:"queued"`
}
