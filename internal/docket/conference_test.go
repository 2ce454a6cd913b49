package docket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docketwatch/docket-api/internal/models"
)

func conferenceDocket(extra ...models.Proceeding) *models.Docket {
	doc := &models.Docket{
		CaseNumber:      "22-123",
		PetitionerTitle: "Acme Corp., Petitioner",
		RespondentTitle: "Doe",
		Proceedings: []models.Proceeding{
			{Date: "Aug 15 2022", Text: "Petition for a writ of certiorari filed."},
			{Date: "Dec 14 2022", Text: "DISTRIBUTED for Conference of January 6, 2023."},
		},
	}
	doc.Proceedings = append(doc.Proceedings, extra...)
	return doc
}

func TestConferenceActionRescheduled(t *testing.T) {
	doc := conferenceDocket(models.Proceeding{Date: "Dec 15 2022", Text: "Rescheduled."})
	s, err := Build(doc, BuildOptions{})
	require.NoError(t, err)

	assert.Equal(t, ActionRescheduled, s.ConferenceAction(day("2023-01-06"), nil))
}

func TestConferenceActionRelisted(t *testing.T) {
	doc := conferenceDocket(models.Proceeding{
		Date: "Jan 09 2023", Text: "DISTRIBUTED for Conference of January 13, 2023.",
	})
	s, err := Build(doc, BuildOptions{})
	require.NoError(t, err)

	allDates := []time.Time{day("2023-01-06"), day("2023-01-13"), day("2023-01-20")}
	assert.Equal(t, ActionRelisted, s.ConferenceAction(day("2023-01-06"), allDates))
}

func TestConferenceActionNoOutcomeOnLaterDistribution(t *testing.T) {
	doc := conferenceDocket(models.Proceeding{
		Date: "Jan 11 2023", Text: "DISTRIBUTED for Conference of January 20, 2023.",
	})
	s, err := Build(doc, BuildOptions{})
	require.NoError(t, err)

	// Without the term calendar the later distribution cannot be proven to
	// be the very next conference, so no outcome is attributable.
	assert.Equal(t, ActionNone, s.ConferenceAction(day("2023-01-06"), nil))
}

func TestConferenceActionDenied(t *testing.T) {
	doc := conferenceDocket(models.Proceeding{Date: "Jan 09 2023", Text: "Petition DENIED."})
	s, err := Build(doc, BuildOptions{})
	require.NoError(t, err)

	assert.Equal(t, ActionDenied, s.ConferenceAction(day("2023-01-06"), nil))
}

func TestConferenceActionGranted(t *testing.T) {
	doc := conferenceDocket(models.Proceeding{Date: "Jan 09 2023", Text: "Petition GRANTED."})
	s, err := Build(doc, BuildOptions{})
	require.NoError(t, err)

	assert.Equal(t, ActionGranted, s.ConferenceAction(day("2023-01-06"), nil))
}

func TestConferenceActionPriorityWithinEvent(t *testing.T) {
	// A GVR event carries granted and remanded tags; remanded outranks
	// granted in the outcome priority order.
	doc := conferenceDocket(models.Proceeding{
		Date: "Jan 09 2023",
		Text: "Petition GRANTED. Judgment VACATED and case REMANDED for further consideration.",
	})
	s, err := Build(doc, BuildOptions{})
	require.NoError(t, err)

	assert.Equal(t, ActionRemanded, s.ConferenceAction(day("2023-01-06"), nil))
}

func TestConferenceActionCVSG(t *testing.T) {
	doc := conferenceDocket(models.Proceeding{
		Date: "Jan 09 2023",
		Text: "The Solicitor General is invited to file a brief in this case expressing the views of the United States.",
	})
	s, err := Build(doc, BuildOptions{})
	require.NoError(t, err)

	assert.Equal(t, ActionCVSG, s.ConferenceAction(day("2023-01-06"), nil))
}

func TestConferenceActionIFPDenied(t *testing.T) {
	doc := conferenceDocket(models.Proceeding{
		Date: "Jan 09 2023",
		Text: "Motion of petitioner for leave to proceed in forma pauperis DENIED.",
	})
	s, err := Build(doc, BuildOptions{})
	require.NoError(t, err)

	assert.Equal(t, ActionIFPDenied, s.ConferenceAction(day("2023-01-06"), nil))
}

func TestConferenceActionUnknownWhenEventsCarryNoOutcome(t *testing.T) {
	doc := conferenceDocket(models.Proceeding{
		Date: "Jan 09 2023", Text: "Letter received from counsel for respondent.",
	})
	s, err := Build(doc, BuildOptions{})
	require.NoError(t, err)

	assert.Equal(t, ActionUnknown, s.ConferenceAction(day("2023-01-06"), nil))
}

func TestConferenceActionEmptyWhenNothingFollows(t *testing.T) {
	s, err := Build(conferenceDocket(), BuildOptions{})
	require.NoError(t, err)

	assert.Equal(t, ActionNone, s.ConferenceAction(day("2023-01-06"), nil))
}

func TestConferenceActionSkipsNonOutcomeEvents(t *testing.T) {
	doc := conferenceDocket(
		models.Proceeding{Date: "Jan 06 2023", Text: "Letter received from counsel for respondent."},
		models.Proceeding{Date: "Jan 09 2023", Text: "Petition DENIED."},
	)
	s, err := Build(doc, BuildOptions{})
	require.NoError(t, err)

	assert.Equal(t, ActionDenied, s.ConferenceAction(day("2023-01-06"), nil))
}
