package docket

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/docketwatch/docket-api/internal/models"
	appErrors "github.com/docketwatch/docket-api/pkg/errors"
)

// Kind discriminates the three docket numbering schemes.
type Kind int

const (
	KindStandard Kind = iota
	KindApplication
	KindOriginal
)

func (k Kind) String() string {
	switch k {
	case KindApplication:
		return "application"
	case KindOriginal:
		return "original"
	default:
		return "standard"
	}
}

// Distribution is one "distributed for conference" entry. Rescheduled is
// flipped when the immediately following event is a reschedule notice.
type Distribution struct {
	EventDate      time.Time `json:"event_date"`
	ConferenceDate time.Time `json:"conference_date"`
	Rescheduled    bool      `json:"rescheduled"`
}

// Attorney is one entry on a party's counsel list.
type Attorney struct {
	Name            string `json:"name"`
	CounselOfRecord bool   `json:"counsel_of_record"`
	PartyName       string `json:"party_name,omitempty"`
	Email           string `json:"email,omitempty"`
}

// LinkResolver maps a document link to a local file path. The core never
// reads the file; it only records where the petition lives.
type LinkResolver func(description, file string) string

// BuildOptions tunes Status construction.
type BuildOptions struct {
	// IgnoreCaseNameErrors suppresses the fatal case-name error and leaves
	// CaseName empty, for batch tooling that prefers throughput.
	IgnoreCaseNameErrors bool
	Resolver             LinkResolver
}

// Status is the derived, queryable record for one case. All lifecycle flags
// are monotonic: once set by a qualifying event they stay set, with the
// IFP denied/paid pair being the only two-step state.
type Status struct {
	Term   int
	Number int
	Kind   Kind

	CaseType CaseType
	CaseName string
	Capital  bool

	DocketedDate time.Time
	Related      []string

	PetitionerTitle     string
	RespondentTitle     string
	PetitionerParties   []string
	RespondentParties   []string
	PetitionerAttorneys []Attorney
	RespondentAttorneys []Attorney
	AmiciAttorneys      []Attorney
	AttorneyEmails      []string
	ProSe               bool

	LowerCourt             string
	LowerCourtDocket       string
	LowerCourtDecisionDate time.Time

	PetitionPath string

	Granted        bool
	GrantDate      time.Time
	Argued         bool
	ArgueDate      time.Time
	Dismissed      bool
	DismissDate    time.Time
	Denied         bool
	DenyDate       time.Time
	JudgmentIssued bool
	JudgmentDate   time.Time
	GVR            bool
	GVRDate        time.Time
	Removed        bool
	RemoveDate     time.Time
	Remanded       bool
	RemandDate     time.Time
	Vacated        bool
	VacateDate     time.Time
	Affirmed       bool
	AffirmDate     time.Time
	Reversed       bool
	ReverseDate    time.Time
	CVSG           bool
	CVSGDate       time.Time
	CVSGReturned   bool
	CVSGReturnDate time.Time
	Inquorate      bool
	InquorateDate  time.Time
	Abuse          bool

	IFPDenied   bool
	IFPDenyDate time.Time
	IFPPaid     bool
	IFPPayDate  time.Time

	RehearingFiled  bool
	RehearingDenied bool

	Distributions []Distribution
	Recusals      []string
	CertAmici     []string
	MeritsAmici   []string

	Events []*Event

	// Errors collects non-fatal parse anomalies. Construction continues
	// with the affected field left unset.
	Errors []error
}

// Build folds a docket document into a Status. Identity failures (missing or
// unparseable case number, undeterminable case type or name) are fatal;
// ancillary parse failures are collected into Status.Errors.
func Build(doc *models.Docket, opts BuildOptions) (*Status, error) {
	if doc == nil || strings.TrimSpace(doc.CaseNumber) == "" {
		return nil, appErrors.NoDocket("")
	}

	s := &Status{}
	if err := s.parseCaseNumber(doc.CaseNumber); err != nil {
		return nil, err
	}

	s.Capital = doc.CapitalCase
	s.PetitionerTitle = doc.PetitionerTitle
	s.RespondentTitle = doc.RespondentTitle

	if doc.DocketedDate != "" {
		if t, err := ParseDate(doc.DocketedDate); err == nil {
			s.DocketedDate = t
		} else {
			s.Errors = append(s.Errors, fmt.Errorf("docketed date: %w", err))
		}
	}

	s.collectParties(doc)
	s.collectLowerCourt(doc)
	s.collectRelated(doc)

	ctype, err := ClassifyCaseType(doc)
	if err != nil {
		return nil, err
	}
	s.CaseType = ctype

	name, err := BuildCaseName(doc, ctype)
	if err != nil {
		if !opts.IgnoreCaseNameErrors {
			return nil, err
		}
	} else {
		s.CaseName = name
	}

	s.resolvePetition(doc, opts.Resolver)

	for _, p := range doc.Proceedings {
		date, err := ParseDate(p.Date)
		if err != nil {
			return nil, appErrors.WrapDocket(err, s.DocketString())
		}
		ev := &Event{Date: date, Text: p.Text, Tags: TagSet{}}
		s.Events = append(s.Events, ev)
		s.classify(ev)
	}

	return s, nil
}

// DocketString renders the canonical docket identifier.
func (s *Status) DocketString() string {
	switch s.Kind {
	case KindApplication:
		return fmt.Sprintf("%dA%d", s.Term, s.Number)
	case KindOriginal:
		return fmt.Sprintf("22O%d", s.Number)
	default:
		return fmt.Sprintf("%d-%d", s.Term, s.Number)
	}
}

// ParseDocketNumber splits a docket identifier into its term, sequence
// number and kind without building a full status.
func ParseDocketNumber(raw string) (term, number int, kind Kind, err error) {
	var s Status
	if err := s.parseCaseNumber(raw); err != nil {
		return 0, 0, KindStandard, err
	}
	return s.Term, s.Number, s.Kind, nil
}

// Pending is true until a terminal disposition is recorded.
func (s *Status) Pending() bool {
	return !(s.Dismissed || s.Denied || s.JudgmentIssued || s.GVR || s.Removed)
}

// CurrentStatus summarizes the case with a fixed priority ordering.
func (s *Status) CurrentStatus() string {
	switch {
	case s.JudgmentIssued:
		return "issued"
	case s.Argued:
		return "argued"
	case s.Dismissed:
		return "dismissed"
	case s.Removed:
		return "removed"
	case s.Denied:
		return "denied"
	case s.GVR:
		return "gvr"
	case s.Remanded:
		return "remanded"
	case s.Granted:
		return "granted"
	default:
		return "pending"
	}
}

// TagDict is the read contract for tag-level booleans used by the pipeline.
func (s *Status) TagDict() map[string]bool {
	return map[string]bool{
		"cvsg":      s.CVSG,
		"related":   len(s.Related) > 0,
		"capital":   s.Capital,
		"abuse":     s.Abuse,
		"ifp":       s.IFPDenied,
		"paid":      s.IFPPaid,
		"rehearing": s.RehearingFiled,
	}
}

// HoldingDict exposes the merits holding booleans.
func (s *Status) HoldingDict() map[string]bool {
	return map[string]bool{
		"vacated":  s.Vacated,
		"affirmed": s.Affirmed,
		"reversed": s.Reversed,
	}
}

// FlagDict exposes the lifecycle booleans.
func (s *Status) FlagDict() map[string]bool {
	return map[string]bool{
		"granted":   s.Granted,
		"argued":    s.Argued,
		"dismissed": s.Dismissed,
		"denied":    s.Denied,
		"removed":   s.Removed,
		"issued":    s.JudgmentIssued,
		"remanded":  s.Remanded,
	}
}

// FlagString renders the set flags as a compact bracketed summary for
// one-line outputs.
func (s *Status) FlagString() string {
	var b strings.Builder
	add := func(set bool, code string) {
		if set {
			b.WriteString("[" + code + "]")
		}
	}
	add(s.Capital, "CAPITAL")
	add(s.Granted, "GRANTED")
	add(s.Argued, "ARGUED")
	add(s.GVR, "GVR")
	add(s.Remanded && !s.GVR, "REMANDED")
	add(s.Dismissed, "DISMISSED")
	add(s.Denied, "DENIED")
	add(s.Removed, "REMOVED")
	add(s.JudgmentIssued, "ISSUED")
	add(s.CVSG, "CVSG")
	add(s.Abuse, "ABUSE")
	return b.String()
}

// setFlag sets a monotonic lifecycle flag and records the first qualifying
// event's date.
func (s *Status) setFlag(flag *bool, date *time.Time, ev *Event) {
	if *flag {
		return
	}
	*flag = true
	*date = ev.Date
}

func (s *Status) parseCaseNumber(raw string) error {
	num := strings.TrimSpace(raw)
	switch {
	case strings.Contains(num, "O"):
		n, err := strconv.Atoi(num[strings.Index(num, "O")+1:])
		if err != nil {
			return appErrors.BadDocketNumber(num)
		}
		s.Kind = KindOriginal
		s.Number = n
	case strings.Contains(num, "A"):
		parts := strings.SplitN(num, "A", 2)
		term, err := strconv.Atoi(parts[0])
		if err != nil {
			return appErrors.BadDocketNumber(num)
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			return appErrors.BadDocketNumber(num)
		}
		s.Kind = KindApplication
		s.Term = term
		s.Number = n
	default:
		parts := strings.SplitN(num, "-", 2)
		if len(parts) != 2 {
			return appErrors.BadDocketNumber(num)
		}
		term, err := strconv.Atoi(parts[0])
		if err != nil {
			return appErrors.BadDocketNumber(num)
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			return appErrors.BadDocketNumber(num)
		}
		s.Kind = KindStandard
		s.Term = term
		s.Number = n
	}
	return nil
}

func (s *Status) collectParties(doc *models.Docket) {
	emails := map[string]struct{}{}
	collect := func(entries []models.DocketParty) ([]Attorney, []string) {
		var attys []Attorney
		var parties []string
		seen := map[string]struct{}{}
		for _, e := range entries {
			attys = append(attys, Attorney{
				Name:            e.Attorney,
				CounselOfRecord: e.IsCounselOfRec,
				PartyName:       e.PartyName,
				Email:           e.Email,
			})
			if e.PartyName != "" {
				if _, ok := seen[e.PartyName]; !ok {
					seen[e.PartyName] = struct{}{}
					parties = append(parties, e.PartyName)
				}
			}
			if e.Email != "" {
				emails[e.Email] = struct{}{}
			}
		}
		return attys, parties
	}

	s.PetitionerAttorneys, s.PetitionerParties = collect(doc.Petitioner)
	s.RespondentAttorneys, s.RespondentParties = collect(doc.Respondent)
	s.AmiciAttorneys, _ = collect(doc.Other)

	for email := range emails {
		s.AttorneyEmails = append(s.AttorneyEmails, email)
	}

	// A petitioner acting as their own counsel is pro se; prisoner IDs on
	// the counsel entry are treated the same way.
	for _, e := range doc.Petitioner {
		if e.PrisonerID != "" || (e.PartyName != "" && strings.EqualFold(e.Attorney, e.PartyName)) {
			s.ProSe = true
			break
		}
	}
}

func (s *Status) collectLowerCourt(doc *models.Docket) {
	s.LowerCourt = doc.LowerCourt
	s.LowerCourtDocket = doc.LowerCourtCaseNum
	if doc.LowerCourtDecided == "" {
		return
	}
	if t, err := ParseDate(doc.LowerCourtDecided); err == nil {
		s.LowerCourtDecisionDate = t
	} else {
		s.Errors = append(s.Errors, fmt.Errorf("lower court decision date: %w", err))
	}
}

func (s *Status) collectRelated(doc *models.Docket) {
	for _, rc := range doc.RelatedCases {
		num := strings.TrimSpace(rc.DisplayCaseNumber)
		if num == "" {
			s.Errors = append(s.Errors, fmt.Errorf("related case with empty docket number"))
			continue
		}
		s.Related = append(s.Related, num)
	}
}

func (s *Status) resolvePetition(doc *models.Docket, resolve LinkResolver) {
	if resolve == nil {
		return
	}
	for _, p := range doc.Proceedings {
		for _, link := range p.Links {
			if link.Description == "Petition" {
				s.PetitionPath = resolve(link.Description, link.File)
				return
			}
		}
	}
}

// addDistribution appends a distribution triple, parsing the conference date
// from the trailing text.
func (s *Status) addDistribution(ev *Event) {
	raw := strings.TrimSuffix(strings.TrimPrefix(ev.Text, distributedPrefix), ".")
	conf, err := ParseDate(raw)
	if err != nil {
		s.Errors = append(s.Errors, fmt.Errorf("distribution conference date: %w", err))
		return
	}
	s.Distributions = append(s.Distributions, Distribution{
		EventDate:      ev.Date,
		ConferenceDate: conf,
	})
}

// markRescheduled flips the Rescheduled flag on the most recent distribution.
// A reschedule notice with no prior distribution is recorded as an anomaly
// rather than rejected: construction continues.
func (s *Status) markRescheduled(ev *Event) {
	if len(s.Distributions) == 0 {
		s.Errors = append(s.Errors, fmt.Errorf("reschedule notice on %s with no prior distribution", ev.Date.Format("2006-01-02")))
		return
	}
	s.Distributions[len(s.Distributions)-1].Rescheduled = true
}

// addAmicus files the brief on the cert or merits amici list depending on
// whether the case has been granted, and detects the CVSG return when the
// government files while a call is outstanding.
func (s *Status) addAmicus(ev *Event) {
	filer := amicusFiler(ev.Text)
	if s.Granted {
		s.MeritsAmici = append(s.MeritsAmici, filer)
	} else {
		s.CertAmici = append(s.CertAmici, filer)
	}
	if s.CVSG && !s.CVSGReturned && strings.Contains(filer, "United States") {
		ev.Tags.Add(TagCVSGReturn)
		s.CVSGReturned = true
		s.CVSGReturnDate = ev.Date
	}
}

func amicusFiler(text string) string {
	for _, marker := range []string{"Brief amici curiae of ", "Brief amicus curiae of "} {
		if idx := strings.Index(text, marker); idx >= 0 {
			rest := text[idx+len(marker):]
			if end := strings.Index(rest, " filed"); end >= 0 {
				return strings.TrimSpace(rest[:end])
			}
			return strings.TrimSuffix(strings.TrimSpace(rest), ".")
		}
	}
	return ""
}

// matchCompliance handles "complied with order of <date>" events: the order
// date is matched backward against the event at that exact date, and the fee
// is considered paid only if that event was the IFP denial.
func (s *Status) matchCompliance(ev *Event) {
	idx := strings.Index(ev.Text, "order of ")
	if idx < 0 {
		return
	}
	fields := strings.Fields(ev.Text[idx+len("order of "):])
	if len(fields) < 3 {
		return
	}
	raw := strings.TrimRight(strings.Join(fields[:3], " "), ".,;")
	orderDate, err := ParseDate(raw)
	if err != nil {
		s.Errors = append(s.Errors, fmt.Errorf("compliance order date: %w", err))
		return
	}
	for _, prior := range s.Events {
		if prior.Date.Equal(orderDate) && prior.Tags.Has(TagIFPDenied) {
			ev.Tags.Add(TagIFPPaid)
			s.IFPPaid = true
			s.IFPPayDate = ev.Date
			return
		}
	}
}

// addRecusal extracts the recused justice from a "took no part in the
// consideration" notice. The name token follows the word "Justice"; a
// preceding "Chief" resolves to the term's chief justice.
func (s *Status) addRecusal(ev *Event) {
	tokens := strings.Fields(ev.Text)
	for i, tok := range tokens {
		if tok != "Justice" || i+1 >= len(tokens) {
			continue
		}
		name := strings.ToLower(strings.TrimFunc(tokens[i+1], unicode.IsPunct))
		if i > 0 && tokens[i-1] == "Chief" {
			name = chiefJustice(s.Term)
		}
		if name == "" {
			continue
		}
		for _, existing := range s.Recusals {
			if existing == name {
				return
			}
		}
		s.Recusals = append(s.Recusals, name)
		return
	}
}

// chiefJustice maps a term to the sitting chief justice identifier.
func chiefJustice(term int) string {
	if term >= 5 {
		return "roberts"
	}
	return "rehnquist"
}
