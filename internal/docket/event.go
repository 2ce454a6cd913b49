package docket

import (
	"fmt"
	"strings"
	"time"
)

// Event is one tagged entry from the docket sheet. Date and Text come
// straight from the source proceeding; Tags are derived during Build.
type Event struct {
	Date time.Time
	Text string
	Tags TagSet
}

func (e *Event) String() string {
	return fmt.Sprintf("(%s) %s", e.Date.Format("2006-01-02"), e.Text)
}

var eventDateLayouts = []string{
	"Jan 02 2006",
	"Jan 2 2006",
	"January 2, 2006",
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
}

// ParseDate parses the date formats seen on docket sheets.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}

// predicate decides whether a rule applies to an event's text.
type predicate func(text string) bool

func exact(phrase string) predicate {
	return func(text string) bool { return text == phrase }
}

func prefix(phrase string) predicate {
	return func(text string) bool { return strings.HasPrefix(text, phrase) }
}

func contains(phrase string) predicate {
	return func(text string) bool { return strings.Contains(text, phrase) }
}

func containsFold(phrase string) predicate {
	phrase = strings.ToLower(phrase)
	return func(text string) bool { return strings.Contains(strings.ToLower(text), phrase) }
}

func allOf(preds ...predicate) predicate {
	return func(text string) bool {
		for _, p := range preds {
			if !p(text) {
				return false
			}
		}
		return true
	}
}

func anyOf(preds ...predicate) predicate {
	return func(text string) bool {
		for _, p := range preds {
			if p(text) {
				return true
			}
		}
		return false
	}
}

// effect applies a rule's consequences: tag the event and, for several
// rules, fold aggregate flags and dates into the status under construction.
type effect func(s *Status, ev *Event)

func tag(t Tag) effect {
	return func(s *Status, ev *Event) { ev.Tags.Add(t) }
}

func seq(effects ...effect) effect {
	return func(s *Status, ev *Event) {
		for _, e := range effects {
			e(s, ev)
		}
	}
}

type rule struct {
	match predicate
	apply effect
}

// primaryRules is the mutually exclusive first tier: rules run in order and
// the first match wins. Order is load-bearing. The motion, counsel, IFP and
// application rules sit above the generic GRANTED/DENIED rules because their
// trigger phrases contain the generic keywords.
var primaryRules = []rule{
	{exact("Rescheduled."), func(s *Status, ev *Event) {
		ev.Tags.Add(TagRescheduled)
		s.markRescheduled(ev)
	}},
	{prefix(distributedPrefix), func(s *Status, ev *Event) {
		ev.Tags.Add(TagDistributed)
		s.addDistribution(ev)
	}},
	{prefix("The Solicitor General is invited to file a brief"), func(s *Status, ev *Event) {
		ev.Tags.Add(TagCVSG)
		if !s.CVSG {
			s.CVSG = true
			s.CVSGDate = ev.Date
		}
	}},
	{prefix("Argued."), func(s *Status, ev *Event) {
		ev.Tags.Add(TagArgued)
		s.setFlag(&s.Argued, &s.ArgueDate, ev)
	}},
	{contains("SET FOR ARGUMENT"), tag(TagSetForArgument)},

	{prefix("Record requested"), tag(TagRecordRequested)},
	{prefix("Record received"), tag(TagRecordReceived)},
	{prefix("Response Requested"), tag(TagResponseRequested)},

	{anyOf(contains("Brief amici curiae of"), contains("Brief amicus curiae of")), func(s *Status, ev *Event) {
		ev.Tags.Add(TagAmicusBrief)
		s.addAmicus(ev)
	}},
	{allOf(prefix("Brief of respondent"), contains("in opposition")), tag(TagBriefInOpposition)},
	{prefix("Reply of petitioner"), tag(TagReplyBrief)},
	{prefix("Supplemental brief"), tag(TagSupplementalBrief)},
	{prefix("Waiver of right of respondent"), tag(TagWaiver)},
	{prefix("Blanket Consent"), tag(TagBlanketConsent)},

	{prefix("Petition for rehearing filed"), func(s *Status, ev *Event) {
		ev.Tags.Add(TagRehearingFiled)
		s.RehearingFiled = true
	}},
	{allOf(containsFold("rehearing"), contains("DENIED")), func(s *Status, ev *Event) {
		ev.Tags.Add(TagRehearingDenied)
		s.RehearingDenied = true
	}},
	{allOf(prefix("Petition for"), contains(" filed")), tag(TagPetitionFiled)},

	{contains("leave to proceed in forma pauperis DENIED"), func(s *Status, ev *Event) {
		ev.Tags.Add(TagIFPDenied)
		if !s.IFPDenied {
			s.IFPDenied = true
			s.IFPDenyDate = ev.Date
		}
	}},
	{contains("complied with"), func(s *Status, ev *Event) {
		ev.Tags.Add(TagCompliance)
		s.matchCompliance(ev)
	}},

	{allOf(containsFold("dismiss"), contains("Rule 46")), func(s *Status, ev *Event) {
		ev.Tags.Add(TagDismissed)
		ev.Tags.Add(TagDismissedRule46)
		s.setFlag(&s.Dismissed, &s.DismissDate, ev)
	}},

	{allOf(contains("appointment of counsel"), contains("GRANTED")), tag(TagCounselGranted)},
	{allOf(contains("Motion for leave to file"), contains("GRANTED")), tag(TagMotionGranted)},
	{allOf(contains("Motion to substitute"), contains("GRANTED")), tag(TagMotionGranted)},
	{allOf(prefix("Motion"), contains("GRANTED")), tag(TagMotionGranted)},
	{allOf(prefix("Motion"), contains("DENIED")), tag(TagMotionDenied)},
	{prefix("Motion to dismiss"), tag(TagMotionDismiss)},
	{prefix("Motion"), tag(TagMotionFiled)},

	{allOf(prefix("Application"), containsFold("to stay"), containsFold("granted")), func(s *Status, ev *Event) {
		ev.Tags.Add(TagApplicationGranted)
		ev.Tags.Add(TagStayGranted)
	}},
	{allOf(prefix("Application"), containsFold("to stay"), containsFold("denied")), func(s *Status, ev *Event) {
		ev.Tags.Add(TagApplicationDenied)
		ev.Tags.Add(TagStayDenied)
	}},
	{allOf(prefix("Application"), containsFold("extend"), containsFold("granted")), func(s *Status, ev *Event) {
		ev.Tags.Add(TagApplicationGranted)
		ev.Tags.Add(TagExtensionGranted)
	}},
	{allOf(prefix("Application"), containsFold("granted")), tag(TagApplicationGranted)},
	{allOf(prefix("Application"), containsFold("denied")), tag(TagApplicationDenied)},

	{containsFold("because the Court lacks a quorum"), func(s *Status, ev *Event) {
		ev.Tags.Add(TagInquorate)
		s.setFlag(&s.Inquorate, &s.InquorateDate, ev)
	}},

	{contains("GRANTED"), func(s *Status, ev *Event) {
		ev.Tags.Add(TagGranted)
		s.setFlag(&s.Granted, &s.GrantDate, ev)
		gvr := false
		if strings.Contains(ev.Text, "VACATED") && strings.Contains(ev.Text, "REMANDED") {
			ev.Tags.Add(TagVacated)
			s.setFlag(&s.Vacated, &s.VacateDate, ev)
			gvr = true
		}
		if strings.Contains(ev.Text, "REVERSED") && strings.Contains(ev.Text, "REMANDED") {
			ev.Tags.Add(TagReversed)
			s.setFlag(&s.Reversed, &s.ReverseDate, ev)
			gvr = true
		}
		if gvr {
			ev.Tags.Add(TagRemanded)
			ev.Tags.Add(TagGVR)
			s.setFlag(&s.Remanded, &s.RemandDate, ev)
			s.setFlag(&s.GVR, &s.GVRDate, ev)
		}
	}},
	{contains("DISMISSED"), func(s *Status, ev *Event) {
		ev.Tags.Add(TagDismissed)
		s.setFlag(&s.Dismissed, &s.DismissDate, ev)
	}},
	{contains("DENIED"), func(s *Status, ev *Event) {
		ev.Tags.Add(TagDenied)
		s.setFlag(&s.Denied, &s.DenyDate, ev)
	}},

	{containsFold("judgment issued"), func(s *Status, ev *Event) {
		ev.Tags.Add(TagJudgmentIssued)
		s.setFlag(&s.JudgmentIssued, &s.JudgmentDate, ev)
	}},
	{contains("AFFIRMED"), func(s *Status, ev *Event) {
		ev.Tags.Add(TagAffirmed)
		s.setFlag(&s.Affirmed, &s.AffirmDate, ev)
	}},
	{contains("REVERSED"), func(s *Status, ev *Event) {
		ev.Tags.Add(TagReversed)
		s.setFlag(&s.Reversed, &s.ReverseDate, ev)
	}},
	{contains("VACATED"), func(s *Status, ev *Event) {
		ev.Tags.Add(TagVacated)
		s.setFlag(&s.Vacated, &s.VacateDate, ev)
	}},
	{containsFold("removed from the docket"), func(s *Status, ev *Event) {
		ev.Tags.Add(TagRemoved)
		s.setFlag(&s.Removed, &s.RemoveDate, ev)
	}},
	{containsFold("withdrawn"), tag(TagWithdrawn)},
	{contains("Appendix"), tag(TagAppendixFiled)},
}

// secondaryRules is the non-exclusive second tier: every rule is evaluated
// against every event regardless of which primary rule fired.
var secondaryRules = []rule{
	{containsFold("remanded"), func(s *Status, ev *Event) {
		ev.Tags.Add(TagRemanded)
		s.setFlag(&s.Remanded, &s.RemandDate, ev)
	}},
	{containsFold("vacated as moot"), func(s *Status, ev *Event) {
		ev.Tags.Add(TagVacated)
		ev.Tags.Add(TagMoot)
		s.setFlag(&s.Vacated, &s.VacateDate, ev)
	}},
	{containsFold("not accepted for filing"), tag(TagNotAccepted)},
	{containsFold("petitioner has repeatedly abused"), func(s *Status, ev *Event) {
		ev.Tags.Add(TagAbuse)
		s.Abuse = true
	}},
	{contains("took no part in the consideration"), func(s *Status, ev *Event) {
		ev.Tags.Add(TagRecusal)
		s.addRecusal(ev)
	}},
}

const distributedPrefix = "DISTRIBUTED for Conference of "

// classify runs both rule tiers for a single event. Matching no rule at all
// is the common case and leaves the event untagged.
func (s *Status) classify(ev *Event) {
	for _, r := range primaryRules {
		if r.match(ev.Text) {
			r.apply(s, ev)
			break
		}
	}
	for _, r := range secondaryRules {
		if r.match(ev.Text) {
			r.apply(s, ev)
		}
	}
}
