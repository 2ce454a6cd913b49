package docket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docketwatch/docket-api/internal/models"
	appErrors "github.com/docketwatch/docket-api/pkg/errors"
)

func sampleDocket() *models.Docket {
	return &models.Docket{
		CaseNumber:      "22-123",
		DocketedDate:    "Aug 15 2022",
		PetitionerTitle: "Acme Corp., Petitioner",
		RespondentTitle: "Doe",
		LowerCourt:      "United States Court of Appeals for the Ninth Circuit",
		LowerCourtCaseNum: "21-5500",
		LowerCourtDecided: "May 16 2022",
		Petitioner: []models.DocketParty{
			{Attorney: "Jane Smith", IsCounselOfRec: true, PartyName: "Acme Corp.", Email: "jsmith@example.com"},
		},
		Respondent: []models.DocketParty{
			{Attorney: "Robert Jones", IsCounselOfRec: true, PartyName: "Doe"},
		},
		Proceedings: []models.Proceeding{
			{Date: "Aug 15 2022", Text: "Petition for a writ of certiorari filed.",
				Links: []models.DocumentLink{{Description: "Petition", File: "22-123-petition.pdf"}}},
			{Date: "Dec 14 2022", Text: "DISTRIBUTED for Conference of January 6, 2023."},
			{Date: "Jan 09 2023", Text: "Petition DENIED."},
		},
	}
}

func TestBuildStandardDocket(t *testing.T) {
	s, err := Build(sampleDocket(), BuildOptions{})
	require.NoError(t, err)

	assert.Equal(t, 22, s.Term)
	assert.Equal(t, 123, s.Number)
	assert.Equal(t, KindStandard, s.Kind)
	assert.Equal(t, "22-123", s.DocketString())
	assert.Equal(t, TypeCertiorari, s.CaseType)
	assert.Equal(t, "Acme Corp. v. Doe", s.CaseName)
	assert.Equal(t, day("2022-08-15"), s.DocketedDate)
	assert.Equal(t, day("2022-05-16"), s.LowerCourtDecisionDate)
	assert.True(t, s.Denied)
	assert.Equal(t, day("2023-01-09"), s.DenyDate)
	assert.False(t, s.Pending())
	assert.Equal(t, "denied", s.CurrentStatus())
	require.Len(t, s.Events, 3)
	assert.Empty(t, s.Errors)
}

func TestBuildCaseNumberKinds(t *testing.T) {
	cases := []struct {
		number string
		kind   Kind
		str    string
	}{
		{"22-123", KindStandard, "22-123"},
		{"22A419", KindApplication, "22A419"},
		{"22O151", KindOriginal, "22O151"},
	}
	for _, tc := range cases {
		doc := sampleDocket()
		doc.CaseNumber = tc.number
		s, err := Build(doc, BuildOptions{})
		require.NoError(t, err, tc.number)
		assert.Equal(t, tc.kind, s.Kind, tc.number)
		assert.Equal(t, tc.str, s.DocketString(), tc.number)
	}
}

func TestBuildRejectsBadCaseNumber(t *testing.T) {
	doc := sampleDocket()
	doc.CaseNumber = "not-a-docket"
	_, err := Build(doc, BuildOptions{})
	require.Error(t, err)
	assert.Equal(t, appErrors.CodeBadDocketNumber, appErrors.FromError(err).Code)

	doc.CaseNumber = "   "
	_, err = Build(doc, BuildOptions{})
	require.Error(t, err)
	assert.Equal(t, appErrors.CodeNoDocket, appErrors.FromError(err).Code)
}

func TestBuildFatalOnBadEventDate(t *testing.T) {
	doc := sampleDocket()
	doc.Proceedings[1].Date = "sometime in December"
	_, err := Build(doc, BuildOptions{})
	require.Error(t, err)
	assert.Equal(t, appErrors.CodeBadEvent, appErrors.FromError(err).Code)
}

func TestBuildCollectsAncillaryParseFailures(t *testing.T) {
	doc := sampleDocket()
	doc.LowerCourtDecided = "last spring"
	s, err := Build(doc, BuildOptions{})
	require.NoError(t, err)
	assert.True(t, s.LowerCourtDecisionDate.IsZero())
	require.Len(t, s.Errors, 1)
}

func TestBuildCaseNameErrorSuppression(t *testing.T) {
	doc := sampleDocket()
	doc.RespondentTitle = ""
	doc.Respondent = nil

	_, err := Build(doc, BuildOptions{})
	require.Error(t, err)
	assert.Equal(t, appErrors.CodeCaseName, appErrors.FromError(err).Code)

	s, err := Build(doc, BuildOptions{IgnoreCaseNameErrors: true})
	require.NoError(t, err)
	assert.Empty(t, s.CaseName)
}

func TestBuildPartiesAndProSe(t *testing.T) {
	doc := sampleDocket()
	s, err := Build(doc, BuildOptions{})
	require.NoError(t, err)

	require.Len(t, s.PetitionerAttorneys, 1)
	assert.True(t, s.PetitionerAttorneys[0].CounselOfRecord)
	assert.Equal(t, []string{"Acme Corp."}, s.PetitionerParties)
	assert.Equal(t, []string{"jsmith@example.com"}, s.AttorneyEmails)
	assert.False(t, s.ProSe)

	doc.Petitioner = []models.DocketParty{
		{Attorney: "John Q. Public", IsCounselOfRec: true, PartyName: "John Q. Public", PrisonerID: "A-12345"},
	}
	s, err = Build(doc, BuildOptions{})
	require.NoError(t, err)
	assert.True(t, s.ProSe)
}

func TestBuildResolvesPetitionPath(t *testing.T) {
	doc := sampleDocket()
	s, err := Build(doc, BuildOptions{Resolver: func(description, file string) string {
		return "/data/OT-22/dockets/123/" + file
	}})
	require.NoError(t, err)
	assert.Equal(t, "/data/OT-22/dockets/123/22-123-petition.pdf", s.PetitionPath)
}

func TestBuildRelatedCases(t *testing.T) {
	doc := sampleDocket()
	doc.RelatedCases = []models.RelatedCase{{DisplayCaseNumber: "22-124"}, {DisplayCaseNumber: " "}}
	s, err := Build(doc, BuildOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"22-124"}, s.Related)
	require.Len(t, s.Errors, 1)
	assert.True(t, s.TagDict()["related"])
}

func TestBuildIsIdempotent(t *testing.T) {
	first, err := Build(sampleDocket(), BuildOptions{})
	require.NoError(t, err)
	second, err := Build(sampleDocket(), BuildOptions{})
	require.NoError(t, err)

	assert.Equal(t, first.FlagDict(), second.FlagDict())
	assert.Equal(t, first.TagDict(), second.TagDict())
	assert.Equal(t, first.Distributions, second.Distributions)
	assert.Equal(t, first.CurrentStatus(), second.CurrentStatus())
	assert.Equal(t, first.CaseName, second.CaseName)
	require.Len(t, second.Events, len(first.Events))
	for i := range first.Events {
		assert.Equal(t, first.Events[i].Tags, second.Events[i].Tags)
	}
}

func TestPendingMatchesTerminalFlags(t *testing.T) {
	s := &Status{}
	assert.True(t, s.Pending())

	for _, flip := range []func(*Status){
		func(s *Status) { s.Dismissed = true },
		func(s *Status) { s.Denied = true },
		func(s *Status) { s.JudgmentIssued = true },
		func(s *Status) { s.GVR = true },
		func(s *Status) { s.Removed = true },
	} {
		s := &Status{}
		flip(s)
		assert.False(t, s.Pending())
	}

	granted := &Status{Granted: true, Argued: true}
	assert.True(t, granted.Pending())
}

func TestCurrentStatusPriority(t *testing.T) {
	s := &Status{Granted: true, Remanded: true, GVR: true, Denied: true,
		Removed: true, Dismissed: true, Argued: true, JudgmentIssued: true}
	assert.Equal(t, "issued", s.CurrentStatus())

	s.JudgmentIssued = false
	assert.Equal(t, "argued", s.CurrentStatus())
	s.Argued = false
	assert.Equal(t, "dismissed", s.CurrentStatus())
	s.Dismissed = false
	assert.Equal(t, "removed", s.CurrentStatus())
	s.Removed = false
	assert.Equal(t, "denied", s.CurrentStatus())
	s.Denied = false
	assert.Equal(t, "gvr", s.CurrentStatus())
	s.GVR = false
	assert.Equal(t, "remanded", s.CurrentStatus())
	s.Remanded = false
	assert.Equal(t, "granted", s.CurrentStatus())
	s.Granted = false
	assert.Equal(t, "pending", s.CurrentStatus())
}

func TestSummaryDicts(t *testing.T) {
	s := &Status{Granted: true, Argued: true, Vacated: true, CVSG: true, Capital: true}
	flags := s.FlagDict()
	assert.True(t, flags["granted"])
	assert.True(t, flags["argued"])
	assert.False(t, flags["denied"])

	holdings := s.HoldingDict()
	assert.True(t, holdings["vacated"])
	assert.False(t, holdings["reversed"])

	tags := s.TagDict()
	assert.True(t, tags["cvsg"])
	assert.True(t, tags["capital"])
	assert.False(t, tags["abuse"])

	assert.Contains(t, s.FlagString(), "[GRANTED]")
	assert.Contains(t, s.FlagString(), "[CAPITAL]")
	assert.NotContains(t, s.FlagString(), "[DENIED]")
}

func TestDistributionHistoryOnlyGrows(t *testing.T) {
	doc := sampleDocket()
	doc.Proceedings = []models.Proceeding{
		{Date: "Aug 15 2022", Text: "Petition for a writ of certiorari filed.",
			Links: []models.DocumentLink{{Description: "Petition", File: "p.pdf"}}},
		{Date: "Dec 01 2022", Text: "DISTRIBUTED for Conference of December 9, 2022."},
		{Date: "Dec 14 2022", Text: "DISTRIBUTED for Conference of January 6, 2023."},
		{Date: "Dec 15 2022", Text: "Rescheduled."},
		{Date: "Jan 03 2023", Text: "DISTRIBUTED for Conference of January 20, 2023."},
	}
	s, err := Build(doc, BuildOptions{})
	require.NoError(t, err)
	require.Len(t, s.Distributions, 3)
	assert.True(t, s.Distributions[1].Rescheduled)
	assert.False(t, s.Distributions[2].Rescheduled)
}
