package dto

import (
	"time"

	"github.com/docketwatch/docket-api/internal/docket"
)

const dateLayout = "2006-01-02"

// StatusResponse is the API projection of a derived case status.
type StatusResponse struct {
	Docket        string `json:"docket"`
	Term          int    `json:"term"`
	Number        int    `json:"number"`
	Kind          string `json:"kind"`
	CaseType      string `json:"case_type"`
	CaseName      string `json:"case_name"`
	CurrentStatus string `json:"current_status"`
	Pending       bool   `json:"pending"`
	Capital       bool   `json:"capital"`
	ProSe         bool   `json:"pro_se"`

	DocketedDate     string `json:"docketed_date,omitempty"`
	LowerCourt       string `json:"lower_court,omitempty"`
	LowerCourtAbbr   string `json:"lower_court_abbr,omitempty"`
	LowerCourtDocket string `json:"lower_court_docket,omitempty"`
	LowerCourtDate   string `json:"lower_court_decision_date,omitempty"`

	Related  []string        `json:"related,omitempty"`
	Flags    map[string]bool `json:"flags"`
	Tags     map[string]bool `json:"tags"`
	Holdings map[string]bool `json:"holdings"`

	Distributions []DistributionDTO `json:"distributions,omitempty"`
	Recusals      []string          `json:"recusals,omitempty"`
	CertAmici     []string          `json:"cert_amici,omitempty"`
	MeritsAmici   []string          `json:"merits_amici,omitempty"`

	FlagSummary string   `json:"flag_summary,omitempty"`
	Anomalies   []string `json:"anomalies,omitempty"`
}

// DistributionDTO is one conference distribution entry.
type DistributionDTO struct {
	EventDate      string `json:"event_date"`
	ConferenceDate string `json:"conference_date"`
	Rescheduled    bool   `json:"rescheduled"`
}

// EventDTO is one tagged docket entry.
type EventDTO struct {
	Date string   `json:"date"`
	Text string   `json:"text"`
	Tags []string `json:"tags,omitempty"`
}

// ConferenceActionResponse reports one docket's outcome for one conference.
type ConferenceActionResponse struct {
	Docket     string `json:"docket"`
	Conference string `json:"conference"`
	Action     string `json:"action"`
}

// NewStatusResponse projects a Status into its API shape.
func NewStatusResponse(s *docket.Status) *StatusResponse {
	resp := &StatusResponse{
		Docket:           s.DocketString(),
		Term:             s.Term,
		Number:           s.Number,
		Kind:             s.Kind.String(),
		CaseType:         string(s.CaseType),
		CaseName:         s.CaseName,
		CurrentStatus:    s.CurrentStatus(),
		Pending:          s.Pending(),
		Capital:          s.Capital,
		ProSe:            s.ProSe,
		LowerCourt:       s.LowerCourt,
		LowerCourtAbbr:   docket.CourtAbbreviation(s.LowerCourt),
		LowerCourtDocket: s.LowerCourtDocket,
		Related:          s.Related,
		Flags:            s.FlagDict(),
		Tags:             s.TagDict(),
		Holdings:         s.HoldingDict(),
		Recusals:         s.Recusals,
		CertAmici:        s.CertAmici,
		MeritsAmici:      s.MeritsAmici,
		FlagSummary:      s.FlagString(),
	}
	resp.DocketedDate = formatDate(s.DocketedDate)
	resp.LowerCourtDate = formatDate(s.LowerCourtDecisionDate)
	for _, d := range s.Distributions {
		resp.Distributions = append(resp.Distributions, DistributionDTO{
			EventDate:      formatDate(d.EventDate),
			ConferenceDate: formatDate(d.ConferenceDate),
			Rescheduled:    d.Rescheduled,
		})
	}
	for _, err := range s.Errors {
		resp.Anomalies = append(resp.Anomalies, err.Error())
	}
	return resp
}

// NewEventDTOs projects the tagged event stream.
func NewEventDTOs(s *docket.Status) []EventDTO {
	events := make([]EventDTO, 0, len(s.Events))
	for _, ev := range s.Events {
		tags := make([]string, 0, len(ev.Tags))
		for _, tag := range ev.Tags.List() {
			tags = append(tags, string(tag))
		}
		events = append(events, EventDTO{
			Date: formatDate(ev.Date),
			Text: ev.Text,
			Tags: tags,
		})
	}
	return events
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
