package dto

// ConferenceReportRow is one docket's line in a conference report.
type ConferenceReportRow struct {
	Docket            string            `json:"docket"`
	CaseName          string            `json:"case_name"`
	CaseType          string            `json:"case_type"`
	CurrentStatus     string            `json:"current_status"`
	Action            string            `json:"action"`
	DistributionCount int               `json:"distribution_count"`
	RescheduleCount   int               `json:"reschedule_count"`
	Distributions     []DistributionDTO `json:"distributions,omitempty"`
	Flags             map[string]bool   `json:"flags"`
}

// ConferenceReport is the full resolution of one conference date.
type ConferenceReport struct {
	Date string                `json:"date"`
	Term int                   `json:"term"`
	Rows []ConferenceReportRow `json:"rows"`
}

// ConferenceDatesResponse lists the known conference dates of a term.
type ConferenceDatesResponse struct {
	Term  int      `json:"term"`
	Dates []string `json:"dates"`
}

// ExportResponse returns a signed download handle for a rendered report.
type ExportResponse struct {
	URL       string `json:"url"`
	Format    string `json:"format"`
	ExpiresAt string `json:"expires_at"`
}
