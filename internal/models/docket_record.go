package models

import (
	"encoding/json"
	"time"
)

// DocketRecord is the persisted form of one docket: the raw source JSON
// plus the derived classification columns that conference reports query.
type DocketRecord struct {
	ID            int64           `db:"id" json:"id"`
	Term          int             `db:"term" json:"term"`
	Number        int             `db:"number" json:"number"`
	Kind          string          `db:"kind" json:"kind"`
	DocketStr     string          `db:"docket_str" json:"docket_str"`
	CaseType      string          `db:"case_type" json:"case_type"`
	CaseName      string          `db:"case_name" json:"case_name"`
	CurrentStatus string          `db:"current_status" json:"current_status"`
	Raw           json.RawMessage `db:"raw" json:"-"`
	Flags         json.RawMessage `db:"flags" json:"flags"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}
