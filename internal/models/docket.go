package models

// Docket mirrors the per-case JSON document published by the court's docket
// system. Field names follow the upstream payload, which is why several of
// them are inconsistently cased.
type Docket struct {
	CaseNumber        string `json:"CaseNumber"`
	DocketedDate      string `json:"DocketedDate"`
	CapitalCase       bool   `json:"bCapitalCase"`
	PetitionerTitle   string `json:"PetitionerTitle,omitempty"`
	RespondentTitle   string `json:"RespondentTitle,omitempty"`
	QPLink            string `json:"QPLink,omitempty"`
	LowerCourt        string `json:"LowerCourt,omitempty"`
	LowerCourtCaseNum string `json:"LowerCourtCaseNumbers,omitempty"`
	LowerCourtDecided string `json:"LowerCourtDecision,omitempty"`

	Petitioner []DocketParty `json:"Petitioner,omitempty"`
	Respondent []DocketParty `json:"Respondent,omitempty"`
	Other      []DocketParty `json:"Other,omitempty"`

	RelatedCases []RelatedCase `json:"RelatedCaseNumber,omitempty"`

	Proceedings []Proceeding `json:"ProceedingsandOrder"`
}

// DocketParty is one attorney entry on a party's counsel list.
type DocketParty struct {
	Attorney        string `json:"Attorney"`
	IsCounselOfRec  bool   `json:"IsCounselofRecord"`
	PartyName       string `json:"PartyName,omitempty"`
	Email           string `json:"Email,omitempty"`
	PrisonerID      string `json:"PrisonerId,omitempty"`
	Title           string `json:"Title,omitempty"`
	Phone           string `json:"Phone,omitempty"`
	Address         string `json:"Address,omitempty"`
	City            string `json:"City,omitempty"`
	State           string `json:"State,omitempty"`
	Zip             string `json:"Zip,omitempty"`
}

// RelatedCase links this docket to another one on the court's calendar.
type RelatedCase struct {
	DisplayCaseNumber string `json:"DisplayNumber"`
	RelatedType       string `json:"RelatedType,omitempty"`
}

// Proceeding is one dated entry on the docket sheet.
type Proceeding struct {
	Date  string         `json:"Date"`
	Text  string         `json:"Text"`
	Links []DocumentLink `json:"Links,omitempty"`
}

// DocumentLink points at a filed document attached to a proceeding.
type DocumentLink struct {
	Description string `json:"Description"`
	DocumentURL string `json:"DocumentUrl,omitempty"`
	File        string `json:"File,omitempty"`
}
